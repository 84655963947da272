// Package tools implements the builtin task tools and the registry the
// planner and executor dispatch through. Each tool declares an input
// schema and, where plain placeholder substitution is not enough, a
// dependency-resolver strategy.
package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/taskdag/taskdag/ent"
)

// Definition describes a tool to the registry, the decomposer's {{tools}}
// prompt token, and input validation.
type Definition struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"input_schema"`
}

// Tool is one executable node type. Execute receives schema-validated
// params; ctx carries cancellation from the run's abort signal.
type Tool interface {
	Definition() Definition
	Execute(ctx context.Context, params map[string]interface{}, ec *ExecContext) (interface{}, error)
}

// Emitter receives in-flight state from a running tool.
type Emitter interface {
	Progress(message string)
	Completed(message string)
}

// NopEmitter discards all notifications.
type NopEmitter struct{}

func (NopEmitter) Progress(string)  {}
func (NopEmitter) Completed(string) {}

// ExecContext carries the per-task wiring a tool may need: logging, the
// store handle, the owning execution and sub-step ids, the confined
// artifacts directory, and the progress emitter.
type ExecContext struct {
	Logger       *slog.Logger
	Store        *ent.Client
	ExecutionID  string
	SubStepID    string
	ArtifactsDir string
	Emitter      Emitter
}

// Log returns the context logger, or the default one.
func (ec *ExecContext) Log() *slog.Logger {
	if ec == nil || ec.Logger == nil {
		return slog.Default()
	}
	return ec.Logger
}

// Emit returns the context emitter, or a no-op one.
func (ec *ExecContext) Emit() Emitter {
	if ec == nil || ec.Emitter == nil {
		return NopEmitter{}
	}
	return ec.Emitter
}

// decodeParams converts generic JSON params into a typed input struct.
func decodeParams(params map[string]interface{}, out interface{}) error {
	raw, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("failed to encode tool params: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode tool params: %w", err)
	}
	return nil
}

// resolveArtifactPath confines p inside the artifacts root. Absolute
// paths and parent traversal are refused; file tools never touch anything
// outside the execution's artifacts directory.
func resolveArtifactPath(root, p string) (string, error) {
	if root == "" {
		return "", errors.New("artifacts directory is not configured")
	}
	if p == "" {
		return "", errors.New("path is required")
	}
	if filepath.IsAbs(p) {
		return "", fmt.Errorf("path %q must be relative to the artifacts directory", p)
	}
	rootClean := filepath.Clean(root)
	resolved := filepath.Clean(filepath.Join(rootClean, p))
	if resolved != rootClean && !strings.HasPrefix(resolved, rootClean+string(os.PathSeparator)) {
		return "", fmt.Errorf("path %q escapes the artifacts directory", p)
	}
	return resolved, nil
}
