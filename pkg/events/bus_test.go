package events

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receiveOne(t *testing.T, ch <-chan Event) Event {
	t.Helper()
	select {
	case evt, ok := <-ch:
		require.True(t, ok, "channel closed before an event arrived")
		return evt
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func requireClosed(t *testing.T, ch <-chan Event) {
	t.Helper()
	select {
	case _, ok := <-ch:
		require.False(t, ok, "expected channel to be closed")
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for channel close")
	}
}

func TestBusDeliversToSubscriber(t *testing.T) {
	bus := NewBus(nil)

	ch, cancel := bus.Subscribe("exec_1")
	defer cancel()

	bus.Publish(TaskStarted("exec_1", "001"))

	evt := receiveOne(t, ch)
	assert.Equal(t, EventTypeTaskStarted, evt.Type)
	assert.Equal(t, "exec_1", evt.ExecutionID)
	assert.Equal(t, "001", evt.Data[DataKeyTaskID])
	assert.Greater(t, evt.TS, int64(0), "timestamp is stamped at build time")
}

func TestBusMultipleSubscribers(t *testing.T) {
	bus := NewBus(nil)

	ch1, cancel1 := bus.Subscribe("exec_1")
	defer cancel1()
	ch2, cancel2 := bus.Subscribe("exec_1")
	defer cancel2()

	bus.Publish(ExecutionStarted("exec_1", 3))

	assert.Equal(t, EventTypeExecutionStarted, receiveOne(t, ch1).Type)
	assert.Equal(t, EventTypeExecutionStarted, receiveOne(t, ch2).Type)
}

func TestBusIsolatesExecutions(t *testing.T) {
	bus := NewBus(nil)

	chA, cancelA := bus.Subscribe("exec_a")
	defer cancelA()
	chB, cancelB := bus.Subscribe("exec_b")
	defer cancelB()

	bus.Publish(TaskStarted("exec_a", "001"))

	assert.Equal(t, "exec_a", receiveOne(t, chA).ExecutionID)
	select {
	case evt := <-chB:
		t.Fatalf("subscriber for exec_b received foreign event %v", evt.Type)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBusPublishNeverBlocks(t *testing.T) {
	bus := NewBus(nil)

	ch, cancel := bus.Subscribe("exec_1")
	defer cancel()

	// Nobody reads: overflow past the buffer must not block Publish
	total := subscriberBuffer + 10
	done := make(chan struct{})
	go func() {
		for i := 0; i < total; i++ {
			bus.Publish(TaskProgress("exec_1", "001", fmt.Sprintf("step %d", i)))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked on a slow subscriber")
	}

	assert.Equal(t, int64(10), bus.Dropped())

	// The buffered prefix is still delivered, in order
	for i := 0; i < subscriberBuffer; i++ {
		evt := receiveOne(t, ch)
		assert.Equal(t, fmt.Sprintf("step %d", i), evt.Data[DataKeyMessage])
	}
}

func TestBusCancelIsIdempotent(t *testing.T) {
	bus := NewBus(nil)

	ch, cancel := bus.Subscribe("exec_1")
	cancel()
	cancel() // second call must not panic

	requireClosed(t, ch)
	assert.Equal(t, 0, bus.Subscribers("exec_1"))

	// Publishing after all subscribers left is a no-op
	bus.Publish(TaskStarted("exec_1", "001"))
	assert.Equal(t, int64(0), bus.Dropped())
}

func TestStreamEndsOnTerminalEvent(t *testing.T) {
	bus := NewBus(nil)
	ctx := context.Background()

	stream := bus.Stream(ctx, "exec_1")

	bus.Publish(ExecutionStarted("exec_1", 2))
	bus.Publish(TaskCompleted("exec_1", "001", 12))
	bus.Publish(ExecutionCompleted("exec_1", "completed"))
	// Anything after the terminal event must not appear
	bus.Publish(TaskStarted("exec_1", "999"))

	var got []EventType
	for evt := range stream {
		got = append(got, evt.Type)
	}
	assert.Equal(t, []EventType{
		EventTypeExecutionStarted,
		EventTypeTaskCompleted,
		EventTypeExecutionCompleted,
	}, got)
}

func TestStreamForFinishedExecutionIsClosedEmpty(t *testing.T) {
	bus := NewBus(nil)

	bus.Publish(ExecutionStopped("exec_done"))

	stream := bus.Stream(context.Background(), "exec_done")
	requireClosed(t, stream)
	assert.Equal(t, 0, bus.Subscribers("exec_done"), "fast path must not leave a subscription behind")
}

func TestStreamHonorsContextCancel(t *testing.T) {
	bus := NewBus(nil)
	ctx, cancel := context.WithCancel(context.Background())

	stream := bus.Stream(ctx, "exec_1")
	bus.Publish(TaskStarted("exec_1", "001"))
	receiveOne(t, stream)

	cancel()
	requireClosed(t, stream)

	require.Eventually(t, func() bool {
		return bus.Subscribers("exec_1") == 0
	}, 2*time.Second, 10*time.Millisecond, "stream goroutine must unsubscribe on cancel")
}

func TestStreamEachTerminalTypeCloses(t *testing.T) {
	terminals := []Event{
		ExecutionCompleted("x", "completed"),
		ExecutionFailed("x", "boom"),
		ExecutionSuspended("x", "task 002 failed"),
		ExecutionStopped("x"),
	}

	for _, terminal := range terminals {
		t.Run(string(terminal.Type), func(t *testing.T) {
			bus := NewBus(nil)
			terminal.ExecutionID = "exec_t"

			stream := bus.Stream(context.Background(), "exec_t")
			bus.Publish(terminal)

			evt := receiveOne(t, stream)
			assert.Equal(t, terminal.Type, evt.Type)
			requireClosed(t, stream)
		})
	}
}

func TestBusConcurrentPublishOrdering(t *testing.T) {
	bus := NewBus(nil)

	ch, cancel := bus.Subscribe("exec_1")
	defer cancel()

	// A second execution publishing concurrently must not disturb
	// exec_1's per-subscriber ordering.
	go func() {
		for i := 0; i < 100; i++ {
			bus.Publish(TaskProgress("exec_other", "001", "noise"))
		}
	}()

	go func() {
		for i := 0; i < 20; i++ {
			bus.Publish(TaskProgress("exec_1", "001", fmt.Sprintf("%d", i)))
		}
	}()

	for i := 0; i < 20; i++ {
		evt := receiveOne(t, ch)
		assert.Equal(t, fmt.Sprintf("%d", i), evt.Data[DataKeyMessage])
	}
}
