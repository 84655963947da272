package tools

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testExecContext(t *testing.T) *ExecContext {
	t.Helper()
	return &ExecContext{
		ExecutionID:  "exec_test",
		SubStepID:    "substep_test",
		ArtifactsDir: t.TempDir(),
	}
}

func TestWriteReadEditRoundTrip(t *testing.T) {
	ec := testExecContext(t)
	ctx := context.Background()

	res, err := NewWriteFileTool().Execute(ctx, map[string]interface{}{
		"path":    "reports/summary.md",
		"content": "# Summary\n\nInitial draft.",
	}, ec)
	require.NoError(t, err)
	out := res.(map[string]interface{})
	assert.Equal(t, "reports/summary.md", out["path"])
	assert.Equal(t, len("# Summary\n\nInitial draft."), out["bytes"])

	res, err = NewEditTool().Execute(ctx, map[string]interface{}{
		"path":       "reports/summary.md",
		"old_string": "Initial draft.",
		"new_string": "Final version.",
	}, ec)
	require.NoError(t, err)
	assert.Equal(t, 1, res.(map[string]interface{})["replacements"])

	res, err = NewReadFileTool().Execute(ctx, map[string]interface{}{
		"path": "reports/summary.md",
	}, ec)
	require.NoError(t, err)
	assert.Equal(t, "# Summary\n\nFinal version.", res)
}

func TestFileToolsConfinePaths(t *testing.T) {
	ec := testExecContext(t)
	ctx := context.Background()

	escapes := []string{
		"../outside.txt",
		"reports/../../outside.txt",
		"/etc/passwd",
	}
	for _, path := range escapes {
		t.Run(path, func(t *testing.T) {
			_, err := NewWriteFileTool().Execute(ctx, map[string]interface{}{
				"path":    path,
				"content": "x",
			}, ec)
			require.Error(t, err)

			_, err = NewReadFileTool().Execute(ctx, map[string]interface{}{
				"path": path,
			}, ec)
			require.Error(t, err)
		})
	}

	// A dot-dot segment that stays inside the root is allowed.
	_, err := NewWriteFileTool().Execute(ctx, map[string]interface{}{
		"path":    "a/../inside.txt",
		"content": "ok",
	}, ec)
	require.NoError(t, err)
	_, statErr := os.Stat(filepath.Join(ec.ArtifactsDir, "inside.txt"))
	assert.NoError(t, statErr)
}

func TestFileToolsRequireArtifactsDir(t *testing.T) {
	ec := &ExecContext{ArtifactsDir: ""}
	_, err := NewWriteFileTool().Execute(context.Background(), map[string]interface{}{
		"path":    "x.txt",
		"content": "x",
	}, ec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "artifacts directory")
}

func TestReadFileNotFound(t *testing.T) {
	ec := testExecContext(t)
	_, err := NewReadFileTool().Execute(context.Background(), map[string]interface{}{
		"path": "missing.txt",
	}, ec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
}

func TestEditRequiresUniqueOccurrence(t *testing.T) {
	ec := testExecContext(t)
	ctx := context.Background()

	require.NoError(t, os.WriteFile(
		filepath.Join(ec.ArtifactsDir, "doc.txt"),
		[]byte("alpha beta alpha"), 0o644))

	_, err := NewEditTool().Execute(ctx, map[string]interface{}{
		"path":       "doc.txt",
		"old_string": "alpha",
		"new_string": "gamma",
	}, ec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "appears 2 times")

	_, err = NewEditTool().Execute(ctx, map[string]interface{}{
		"path":       "doc.txt",
		"old_string": "missing",
		"new_string": "gamma",
	}, ec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
