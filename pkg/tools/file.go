package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const maxReadSize = 1 << 20 // 1 MiB

// ReadFileTool reads a file from the artifacts directory.
type ReadFileTool struct{}

// NewReadFileTool creates the readFile tool.
func NewReadFileTool() *ReadFileTool { return &ReadFileTool{} }

func (t *ReadFileTool) Definition() Definition {
	return Definition{
		Name:        "readFile",
		Description: "Read a file from the execution's artifacts directory and return its content.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"path": {
					"type": "string",
					"description": "Path relative to the artifacts directory"
				}
			},
			"required": ["path"],
			"additionalProperties": false
		}`),
	}
}

type readFileInput struct {
	Path string `json:"path"`
}

func (t *ReadFileTool) Execute(_ context.Context, params map[string]interface{}, ec *ExecContext) (interface{}, error) {
	var in readFileInput
	if err := decodeParams(params, &in); err != nil {
		return nil, err
	}
	path, err := resolveArtifactPath(ec.ArtifactsDir, in.Path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %s", in.Path)
		}
		return nil, fmt.Errorf("failed to access %s: %w", in.Path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", in.Path)
	}
	if info.Size() > maxReadSize {
		return nil, fmt.Errorf("file %s is too large (%d bytes, max %d)", in.Path, info.Size(), maxReadSize)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", in.Path, err)
	}
	return string(content), nil
}

// WriteFileTool writes a file inside the artifacts directory, creating
// parent directories as needed.
type WriteFileTool struct{}

// NewWriteFileTool creates the writeFile tool.
func NewWriteFileTool() *WriteFileTool { return &WriteFileTool{} }

func (t *WriteFileTool) Definition() Definition {
	return Definition{
		Name:        "writeFile",
		Description: "Write content to a file in the execution's artifacts directory. Dependency results are concatenated into the content parameter.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"path": {
					"type": "string",
					"description": "Path relative to the artifacts directory"
				},
				"content": {
					"type": "string",
					"description": "The content to write"
				}
			},
			"required": ["path", "content"],
			"additionalProperties": false
		}`),
	}
}

type writeFileInput struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

func (t *WriteFileTool) Execute(_ context.Context, params map[string]interface{}, ec *ExecContext) (interface{}, error) {
	var in writeFileInput
	if err := decodeParams(params, &in); err != nil {
		return nil, err
	}
	path, err := resolveArtifactPath(ec.ArtifactsDir, in.Path)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory for %s: %w", in.Path, err)
	}
	if err := os.WriteFile(path, []byte(in.Content), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", in.Path, err)
	}

	ec.Emit().Progress(fmt.Sprintf("wrote %d bytes to %s", len(in.Content), in.Path))
	return map[string]interface{}{
		"path":  in.Path,
		"bytes": len(in.Content),
	}, nil
}

// DependencyResolver concatenates dependency results into the content
// parameter, in declared order, joined by newlines.
func (t *WriteFileTool) DependencyResolver() DependencyResolver {
	return func(params map[string]interface{}, deps []Dependency) map[string]interface{} {
		out := DefaultResolve(params, deps)
		if len(deps) == 0 {
			return out
		}
		if _, declared := out["content"]; declared {
			out["content"] = JoinDependencyContent(deps)
		}
		return out
	}
}

// EditTool replaces text in an existing artifacts file.
type EditTool struct{}

// NewEditTool creates the edit tool.
func NewEditTool() *EditTool { return &EditTool{} }

func (t *EditTool) Definition() Definition {
	return Definition{
		Name:        "edit",
		Description: "Edit a file in the execution's artifacts directory by replacing an exact text fragment. The fragment must occur exactly once.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"path": {
					"type": "string",
					"description": "Path relative to the artifacts directory"
				},
				"old_string": {
					"type": "string",
					"description": "The exact text to find (must be unique in the file)"
				},
				"new_string": {
					"type": "string",
					"description": "The replacement text"
				}
			},
			"required": ["path", "old_string", "new_string"],
			"additionalProperties": false
		}`),
	}
}

type editInput struct {
	Path      string `json:"path"`
	OldString string `json:"old_string"`
	NewString string `json:"new_string"`
}

func (t *EditTool) Execute(_ context.Context, params map[string]interface{}, ec *ExecContext) (interface{}, error) {
	var in editInput
	if err := decodeParams(params, &in); err != nil {
		return nil, err
	}
	if in.OldString == "" {
		return nil, errors.New("old_string is required")
	}
	path, err := resolveArtifactPath(ec.ArtifactsDir, in.Path)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %s", in.Path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", in.Path, err)
	}
	content := string(raw)

	switch count := strings.Count(content, in.OldString); count {
	case 0:
		return nil, fmt.Errorf("old_string not found in %s", in.Path)
	case 1:
	default:
		return nil, fmt.Errorf("old_string appears %d times in %s; provide more context", count, in.Path)
	}

	updated := strings.Replace(content, in.OldString, in.NewString, 1)
	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", in.Path, err)
	}
	return map[string]interface{}{
		"path":         in.Path,
		"replacements": 1,
	}, nil
}
