package events

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// subscriberBuffer is the per-subscriber channel capacity. A subscriber
// that falls more than this many events behind starts losing events.
const subscriberBuffer = 64

// terminalCacheSize bounds how many finished executions the bus remembers.
// Stream uses this to return an empty, closed stream for executions that
// already ended instead of waiting for events that will never come.
const terminalCacheSize = 4096

type subscriber struct {
	ch chan Event
}

// Bus is the in-process execution event bus. One Bus instance serves the
// whole process; subscriptions are keyed by execution id.
type Bus struct {
	mu     sync.RWMutex
	subs   map[string]map[uint64]*subscriber
	nextID uint64

	terminal *lru.Cache[string, struct{}]
	dropped  atomic.Int64
	logger   *slog.Logger
}

// NewBus creates an event bus.
func NewBus(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	// Only returns an error for a non-positive size
	terminal, _ := lru.New[string, struct{}](terminalCacheSize)
	return &Bus{
		subs:     make(map[string]map[uint64]*subscriber),
		terminal: terminal,
		logger:   logger,
	}
}

// Subscribe registers for an execution's events. The returned channel is
// buffered; events published while the buffer is full are dropped for
// this subscriber only. The cancel function unregisters and closes the
// channel and is safe to call more than once.
func (b *Bus) Subscribe(executionID string) (<-chan Event, func()) {
	sub := &subscriber{ch: make(chan Event, subscriberBuffer)}

	b.mu.Lock()
	b.nextID++
	id := b.nextID
	if b.subs[executionID] == nil {
		b.subs[executionID] = make(map[uint64]*subscriber)
	}
	b.subs[executionID][id] = sub
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			if subs, ok := b.subs[executionID]; ok {
				delete(subs, id)
				if len(subs) == 0 {
					delete(b.subs, executionID)
				}
			}
			close(sub.ch)
			b.mu.Unlock()
		})
	}

	return sub.ch, cancel
}

// Publish delivers an event to every subscriber of its execution without
// blocking. A zero timestamp is stamped with the current time. Terminal
// events mark the execution finished for future Stream calls.
func (b *Bus) Publish(evt Event) {
	if evt.TS == 0 {
		evt.TS = time.Now().UnixMilli()
	}

	b.mu.RLock()
	for _, sub := range b.subs[evt.ExecutionID] {
		select {
		case sub.ch <- evt:
		default:
			n := b.dropped.Add(1)
			b.logger.Warn("Dropped event for slow subscriber",
				"execution_id", evt.ExecutionID,
				"event_type", evt.Type,
				"total_dropped", n)
		}
	}
	// Mark inside the read lock: a Subscribe call either completes before
	// this publish and receives the event, or starts after and sees the
	// marker.
	if evt.Type.Terminal() {
		b.terminal.Add(evt.ExecutionID, struct{}{})
	}
	b.mu.RUnlock()
}

// Reopen clears the terminal marker for an execution so a resumed run's
// events reach new Stream subscribers again.
func (b *Bus) Reopen(executionID string) {
	b.mu.Lock()
	b.terminal.Remove(executionID)
	b.mu.Unlock()
}

// Dropped returns the total number of events dropped across all
// subscribers since the bus was created.
func (b *Bus) Dropped() int64 {
	return b.dropped.Load()
}

// Subscribers returns the number of active subscriptions for an execution.
func (b *Bus) Subscribers(executionID string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[executionID])
}

// Stream yields an execution's events until the first terminal event,
// then closes. If the execution already ended, the returned channel is
// closed immediately. Cancelling ctx ends the stream early.
func (b *Bus) Stream(ctx context.Context, executionID string) <-chan Event {
	out := make(chan Event, subscriberBuffer)

	ch, cancel := b.Subscribe(executionID)
	if _, done := b.terminal.Get(executionID); done {
		cancel()
		close(out)
		return out
	}

	go func() {
		defer cancel()
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case evt, ok := <-ch:
				if !ok {
					return
				}
				select {
				case out <- evt:
				case <-ctx.Done():
					return
				}
				if evt.Type.Terminal() {
					return
				}
			}
		}
	}()

	return out
}
