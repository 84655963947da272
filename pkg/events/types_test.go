package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventTypeTerminal(t *testing.T) {
	terminal := []EventType{
		EventTypeExecutionCompleted,
		EventTypeExecutionFailed,
		EventTypeExecutionSuspended,
		EventTypeExecutionStopped,
	}
	for _, et := range terminal {
		assert.True(t, et.Terminal(), "%s must be terminal", et)
	}

	progress := []EventType{
		EventTypeExecutionStarted,
		EventTypeWaveStarted,
		EventTypeTaskStarted,
		EventTypeTaskProgress,
		EventTypeTaskCompleted,
		EventTypeTaskFailed,
		EventTypeWaveCompleted,
		EventTypeSynthesisStarted,
		EventTypeSynthesisCompleted,
	}
	for _, et := range progress {
		assert.False(t, et.Terminal(), "%s must not be terminal", et)
	}
}

func TestEventJSONShape(t *testing.T) {
	evt := TaskFailed("exec_1", "002", "connection refused")

	data, err := json.Marshal(evt)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "task.failed", decoded["type"])
	assert.Equal(t, "exec_1", decoded["execution_id"])
	assert.NotZero(t, decoded["ts"])

	errObj, ok := decoded["error"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "connection refused", errObj["message"])
	// Empty code is omitted
	_, hasCode := errObj["code"]
	assert.False(t, hasCode)
}

func TestPayloadBuilders(t *testing.T) {
	evt := WaveStarted("exec_1", 2, []string{"003", "004"})
	assert.Equal(t, 2, evt.Data[DataKeyWave])
	assert.Equal(t, []string{"003", "004"}, evt.Data[DataKeyTaskIDs])

	evt = ExecutionSuspended("exec_1", "task 002 failed")
	assert.Equal(t, "task 002 failed", evt.Data[DataKeyReason])
	assert.True(t, evt.Type.Terminal())

	evt = ExecutionCompleted("exec_1", "partial")
	assert.Equal(t, "partial", evt.Data[DataKeyStatus])
}
