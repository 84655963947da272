package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTool struct {
	name   string
	schema string
}

func (f *fakeTool) Definition() Definition {
	return Definition{
		Name:        f.name,
		Description: "a test tool",
		InputSchema: json.RawMessage(f.schema),
	}
}

func (f *fakeTool) Execute(_ context.Context, params map[string]interface{}, _ *ExecContext) (interface{}, error) {
	return params, nil
}

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&fakeTool{name: "alpha", schema: `{"type":"object"}`}))

	_, ok := r.Get("alpha")
	assert.True(t, ok)
	_, ok = r.Get("beta")
	assert.False(t, ok)
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&fakeTool{name: "alpha", schema: `{"type":"object"}`}))

	err := r.Register(&fakeTool{name: "alpha", schema: `{"type":"object"}`})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestRegistryRejectsReservedName(t *testing.T) {
	r := NewRegistry()
	err := r.Register(&fakeTool{name: "inference", schema: `{"type":"object"}`})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reserved")
}

func TestRegistryRejectsInvalidSchema(t *testing.T) {
	r := NewRegistry()
	err := r.Register(&fakeTool{name: "broken", schema: `{"type":`})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid input schema")
}

func TestBuiltinRegistry(t *testing.T) {
	r, err := NewBuiltinRegistry(Options{})
	require.NoError(t, err)

	defs := r.Definitions()
	names := make([]string, len(defs))
	for i, d := range defs {
		names[i] = d.Name
	}
	assert.Equal(t, []string{
		"edit", "fetchURLs", "readFile", "sendEmail",
		"shell", "webSearch", "webhook", "writeFile",
	}, names)

	raw, err := r.DefinitionsJSON()
	require.NoError(t, err)

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &decoded))
	require.Len(t, decoded, 8)
	for _, d := range decoded {
		assert.NotEmpty(t, d["name"])
		assert.NotEmpty(t, d["description"])
		assert.NotNil(t, d["input_schema"])
	}
}

func TestValidateInput(t *testing.T) {
	r, err := NewBuiltinRegistry(Options{})
	require.NoError(t, err)

	tests := []struct {
		name    string
		tool    string
		params  map[string]interface{}
		wantErr string
	}{
		{
			name:   "valid shell input",
			tool:   "shell",
			params: map[string]interface{}{"command": "echo hi"},
		},
		{
			name:    "missing required field",
			tool:    "shell",
			params:  map[string]interface{}{"timeout": 5},
			wantErr: "invalid input",
		},
		{
			name:    "wrong type",
			tool:    "shell",
			params:  map[string]interface{}{"command": 42},
			wantErr: "invalid input",
		},
		{
			name:    "unexpected property",
			tool:    "shell",
			params:  map[string]interface{}{"command": "ls", "cwd": "/tmp"},
			wantErr: "invalid input",
		},
		{
			name:   "valid fetch input",
			tool:   "fetchURLs",
			params: map[string]interface{}{"urls": []interface{}{"https://example.com"}},
		},
		{
			name:    "empty urls array",
			tool:    "fetchURLs",
			params:  map[string]interface{}{"urls": []interface{}{}},
			wantErr: "invalid input",
		},
		{
			name:    "unknown tool",
			tool:    "teleport",
			params:  map[string]interface{}{},
			wantErr: `unknown tool "teleport"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := r.ValidateInput(tt.tool, tt.params)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidateInputNormalizesGoTypes(t *testing.T) {
	r, err := NewBuiltinRegistry(Options{})
	require.NoError(t, err)

	// Params built in Go code carry int and []string instead of the
	// JSON-decoded float64 and []interface{}.
	err = r.ValidateInput("shell", map[string]interface{}{
		"command": "ls",
		"timeout": 5,
	})
	assert.NoError(t, err)

	err = r.ValidateInput("fetchURLs", map[string]interface{}{
		"urls": []string{"https://example.com"},
	})
	assert.NoError(t, err)
}

func TestRegistryResolveDispatchesStrategies(t *testing.T) {
	r, err := NewBuiltinRegistry(Options{})
	require.NoError(t, err)

	deps := []Dependency{
		{TaskID: "001", Result: "see https://example.com/report"},
	}

	// fetchURLs declares a URL-collection strategy.
	resolved := r.Resolve("fetchURLs", map[string]interface{}{
		"urls": []interface{}{"https://static.example.com"},
	}, deps)
	assert.Equal(t, []interface{}{
		"https://static.example.com",
		"https://example.com/report",
	}, resolved["urls"])

	// shell has no strategy and falls back to placeholder substitution.
	resolved = r.Resolve("shell", map[string]interface{}{
		"command": "echo '<Result from Task 001>'",
	}, deps)
	assert.Equal(t, "echo 'see https://example.com/report'", resolved["command"])

	// Unknown tools get the fallback too.
	resolved = r.Resolve("teleport", map[string]interface{}{
		"arg": "<Result from Task 001>",
	}, deps)
	assert.Equal(t, "see https://example.com/report", resolved["arg"])
}
