package tools

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShellToolRunsCommand(t *testing.T) {
	ec := testExecContext(t)
	res, err := NewShellTool().Execute(context.Background(), map[string]interface{}{
		"command": "echo hello",
	}, ec)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", res)
}

func TestShellToolWorksInArtifactsDir(t *testing.T) {
	ec := testExecContext(t)
	res, err := NewShellTool().Execute(context.Background(), map[string]interface{}{
		"command": "pwd",
	}, ec)
	require.NoError(t, err)
	assert.Contains(t, res.(string), ec.ArtifactsDir)
}

func TestShellToolCombinesStderr(t *testing.T) {
	ec := testExecContext(t)
	res, err := NewShellTool().Execute(context.Background(), map[string]interface{}{
		"command": "echo out; echo err >&2",
	}, ec)
	require.NoError(t, err)
	assert.Equal(t, "out\n\nSTDERR:\nerr\n", res)
}

func TestShellToolFailureIncludesOutput(t *testing.T) {
	ec := testExecContext(t)
	_, err := NewShellTool().Execute(context.Background(), map[string]interface{}{
		"command": "echo diagnostics; exit 3",
	}, ec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "command failed")
	assert.Contains(t, err.Error(), "diagnostics")
}

func TestShellToolTimesOut(t *testing.T) {
	ec := testExecContext(t)
	start := time.Now()
	_, err := NewShellTool().Execute(context.Background(), map[string]interface{}{
		"command": "sleep 30",
		"timeout": 1,
	}, ec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out")
	assert.Less(t, time.Since(start), 10*time.Second)
}

func TestShellToolPropagatesAbort(t *testing.T) {
	ec := testExecContext(t)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(100 * time.Millisecond)
		cancel()
	}()

	_, err := NewShellTool().Execute(ctx, map[string]interface{}{
		"command": "sleep 30",
	}, ec)
	require.ErrorIs(t, err, context.Canceled)
}

func TestShellToolRequiresCommand(t *testing.T) {
	ec := testExecContext(t)
	_, err := NewShellTool().Execute(context.Background(), map[string]interface{}{}, ec)
	require.Error(t, err)
}
