package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

const (
	shellDefaultTimeout = 30 * time.Second
	shellMaxTimeout     = 5 * time.Minute
	shellMaxOutput      = 100_000
)

// ShellTool runs a command through bash, working inside the execution's
// artifacts directory.
type ShellTool struct{}

// NewShellTool creates the shell tool.
func NewShellTool() *ShellTool { return &ShellTool{} }

func (t *ShellTool) Definition() Definition {
	return Definition{
		Name:        "shell",
		Description: "Execute a shell command and return its combined output. The working directory is the execution's artifacts directory.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"command": {
					"type": "string",
					"description": "The shell command to execute"
				},
				"timeout": {
					"type": "integer",
					"description": "Optional timeout in seconds (default: 30, max: 300)"
				}
			},
			"required": ["command"],
			"additionalProperties": false
		}`),
	}
}

type shellInput struct {
	Command string `json:"command"`
	Timeout int    `json:"timeout,omitempty"`
}

func (t *ShellTool) Execute(ctx context.Context, params map[string]interface{}, ec *ExecContext) (interface{}, error) {
	var in shellInput
	if err := decodeParams(params, &in); err != nil {
		return nil, err
	}
	if in.Command == "" {
		return nil, errors.New("command is required")
	}

	timeout := shellDefaultTimeout
	if in.Timeout > 0 {
		timeout = min(time.Duration(in.Timeout)*time.Second, shellMaxTimeout)
	}
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, "bash", "-c", in.Command)
	if ec != nil && ec.ArtifactsDir != "" {
		cmd.Dir = ec.ArtifactsDir
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	output := combineOutput(stdout.String(), stderr.String())

	if err != nil {
		// The run's abort signal propagates as-is so the task resets
		// instead of failing.
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if runCtx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("command timed out after %s\n%s", timeout, output)
		}
		return nil, fmt.Errorf("command failed: %w\n%s", err, output)
	}

	if output == "" {
		output = "(no output)"
	}
	return output, nil
}

func combineOutput(stdout, stderr string) string {
	stdout = truncateOutput(stdout)
	stderr = truncateOutput(stderr)
	switch {
	case stderr == "":
		return stdout
	case stdout == "":
		return "STDERR:\n" + stderr
	default:
		return stdout + "\nSTDERR:\n" + stderr
	}
}

func truncateOutput(s string) string {
	if len(s) > shellMaxOutput {
		return s[:shellMaxOutput] + "\n... [output truncated]"
	}
	return s
}
