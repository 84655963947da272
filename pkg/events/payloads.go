package events

// Data payload keys. Kept as constants so the API layer and tests do not
// scatter string literals.
const (
	DataKeyTaskID     = "task_id"
	DataKeyWave       = "wave"
	DataKeyTaskIDs    = "task_ids"
	DataKeyTotalTasks = "total_tasks"
	DataKeyStatus     = "status"
	DataKeyDurationMs = "duration_ms"
	DataKeyMessage    = "message"
	DataKeyReason     = "reason"
)

// ExecutionStarted marks the start of a run.
func ExecutionStarted(executionID string, totalTasks int) Event {
	return New(EventTypeExecutionStarted, executionID, map[string]interface{}{
		DataKeyTotalTasks: totalTasks,
	})
}

// WaveStarted marks the start of a dependency wave.
func WaveStarted(executionID string, wave int, taskIDs []string) Event {
	return New(EventTypeWaveStarted, executionID, map[string]interface{}{
		DataKeyWave:    wave,
		DataKeyTaskIDs: taskIDs,
	})
}

// TaskStarted marks a task entering execution.
func TaskStarted(executionID, taskID string) Event {
	return New(EventTypeTaskStarted, executionID, map[string]interface{}{
		DataKeyTaskID: taskID,
	})
}

// TaskProgress carries an intermediate message from a running task.
func TaskProgress(executionID, taskID, message string) Event {
	return New(EventTypeTaskProgress, executionID, map[string]interface{}{
		DataKeyTaskID:  taskID,
		DataKeyMessage: message,
	})
}

// TaskCompleted marks a task finishing successfully.
func TaskCompleted(executionID, taskID string, durationMs int64) Event {
	return New(EventTypeTaskCompleted, executionID, map[string]interface{}{
		DataKeyTaskID:     taskID,
		DataKeyDurationMs: durationMs,
	})
}

// TaskFailed marks a task failing. The error message also reaches the
// sub-step row; the event is for live observers.
func TaskFailed(executionID, taskID, message string) Event {
	evt := New(EventTypeTaskFailed, executionID, map[string]interface{}{
		DataKeyTaskID: taskID,
	})
	evt.Error = &EventError{Message: message}
	return evt
}

// WaveCompleted marks a dependency wave settling.
func WaveCompleted(executionID string, wave int) Event {
	return New(EventTypeWaveCompleted, executionID, map[string]interface{}{
		DataKeyWave: wave,
	})
}

// SynthesisStarted marks the final synthesis step beginning.
func SynthesisStarted(executionID string) Event {
	return New(EventTypeSynthesisStarted, executionID, nil)
}

// SynthesisCompleted marks the final synthesis step finishing.
func SynthesisCompleted(executionID string) Event {
	return New(EventTypeSynthesisCompleted, executionID, nil)
}

// ExecutionCompleted ends the stream for a run that finished, fully or
// partially; status is the derived execution status.
func ExecutionCompleted(executionID, status string) Event {
	return New(EventTypeExecutionCompleted, executionID, map[string]interface{}{
		DataKeyStatus: status,
	})
}

// ExecutionFailed ends the stream for a run whose derived status is failed.
func ExecutionFailed(executionID, message string) Event {
	evt := New(EventTypeExecutionFailed, executionID, nil)
	evt.Error = &EventError{Message: message}
	return evt
}

// ExecutionSuspended ends the stream for a run halted by a task failure
// or an unresolvable dependency set.
func ExecutionSuspended(executionID, reason string) Event {
	return New(EventTypeExecutionSuspended, executionID, map[string]interface{}{
		DataKeyReason: reason,
	})
}

// ExecutionStopped ends the stream for a run halted by a stop request.
func ExecutionStopped(executionID string) Event {
	return New(EventTypeExecutionStopped, executionID, nil)
}
