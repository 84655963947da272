// Package events provides the in-process execution event bus.
//
// Every execution publishes a stream of lifecycle events while it runs.
// Subscribers receive them over buffered channels; publishing never
// blocks the executor (slow subscribers lose events, which are counted).
// A stream ends with exactly one terminal event.
package events

import "time"

// EventType identifies an execution lifecycle event.
type EventType string

// Progress event types, in the order they appear during a run.
const (
	EventTypeExecutionStarted   EventType = "execution.started"
	EventTypeWaveStarted        EventType = "wave.started"
	EventTypeTaskStarted        EventType = "task.started"
	EventTypeTaskProgress       EventType = "task.progress"
	EventTypeTaskCompleted      EventType = "task.completed"
	EventTypeTaskFailed         EventType = "task.failed"
	EventTypeWaveCompleted      EventType = "wave.completed"
	EventTypeSynthesisStarted   EventType = "synthesis.started"
	EventTypeSynthesisCompleted EventType = "synthesis.completed"
)

// Terminal event types. Exactly one of these ends every stream.
const (
	EventTypeExecutionCompleted EventType = "execution.completed"
	EventTypeExecutionFailed    EventType = "execution.failed"
	EventTypeExecutionSuspended EventType = "execution.suspended"
	EventTypeExecutionStopped   EventType = "execution.stopped"
)

// Terminal reports whether the event type ends an execution's stream.
func (t EventType) Terminal() bool {
	switch t {
	case EventTypeExecutionCompleted,
		EventTypeExecutionFailed,
		EventTypeExecutionSuspended,
		EventTypeExecutionStopped:
		return true
	}
	return false
}

// EventError carries failure details on task.failed and terminal failure events.
type EventError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Event is a single execution lifecycle event.
type Event struct {
	Type        EventType              `json:"type"`
	ExecutionID string                 `json:"execution_id"`
	TS          int64                  `json:"ts"` // epoch milliseconds
	Data        map[string]interface{} `json:"data,omitempty"`
	Error       *EventError            `json:"error,omitempty"`
}

// New builds an event stamped with the current time.
func New(t EventType, executionID string, data map[string]interface{}) Event {
	return Event{
		Type:        t,
		ExecutionID: executionID,
		TS:          time.Now().UnixMilli(),
		Data:        data,
	}
}
