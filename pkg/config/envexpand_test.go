package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestExpandEnv(t *testing.T) {
	tests := []struct {
		name  string
		input string
		env   map[string]string
		want  string
	}{
		{
			name:  "simple substitution with {{.VAR}}",
			input: "address: {{.LLM_GRPC_ADDR}}",
			env:   map[string]string{"LLM_GRPC_ADDR": "localhost:9090"},
			want:  "address: localhost:9090",
		},
		{
			name:  "literal ${VAR} is NOT expanded (no collision)",
			input: "replacement: ${MASKED}",
			env:   map[string]string{"MASKED": "nope"},
			want:  "replacement: ${MASKED}",
		},
		{
			name:  "multiple substitutions in one line",
			input: "base_url: {{.SCHEME}}://{{.HOST}}/v1",
			env: map[string]string{
				"SCHEME": "https",
				"HOST":   "api.example.com",
			},
			want: "base_url: https://api.example.com/v1",
		},
		{
			name:  "missing variable expands to empty",
			input: "base_url: {{.NOT_SET_ANYWHERE}}",
			env:   map[string]string{},
			want:  "base_url: ",
		},
		{
			name:  "no substitution when no variables",
			input: "model: gpt-4o-mini",
			env:   map[string]string{"UNUSED": "value"},
			want:  "model: gpt-4o-mini",
		},
		{
			name:  "variables in nested YAML structure",
			input: "server:\n  host: {{.BIND_HOST}}\n  port: {{.BIND_PORT}}",
			env: map[string]string{
				"BIND_HOST": "127.0.0.1",
				"BIND_PORT": "8000",
			},
			want: "server:\n  host: 127.0.0.1\n  port: 8000",
		},
		{
			name:  "regex pattern with $ preserved",
			input: `pattern: "AKIA[0-9A-Z]{16}$"`,
			env:   map[string]string{},
			want:  `pattern: "AKIA[0-9A-Z]{16}$"`,
		},
		{
			name:  "special characters in expanded value",
			input: "auth_token_env: {{.TOKEN_VAR}}",
			env:   map[string]string{"TOKEN_VAR": "MY_T0KEN!#$"},
			want:  "auth_token_env: MY_T0KEN!#$",
		},
		{
			name:  "empty string variable",
			input: "value: {{.EMPTY}}",
			env:   map[string]string{"EMPTY": ""},
			want:  "value: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			result := ExpandEnv([]byte(tt.input))
			assert.Equal(t, tt.want, string(result))
		})
	}
}

// Malformed template syntax must pass through unchanged so the YAML
// parser can either accept it as a literal or fail with a clearer error.
func TestExpandEnvMalformedTemplates(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "unclosed template",
			input: "api_key_env: {{.API_KEY",
		},
		{
			name:  "missing one closing brace",
			input: "api_key_env: {{.API_KEY}",
		},
		{
			name:  "variable without leading dot",
			input: "api_key_env: {{API_KEY}}",
		},
		{
			name:  "undefined function in pipeline",
			input: "api_key_env: {{.API_KEY | upper}}",
		},
		{
			name:  "unclosed template in the middle of valid YAML",
			input: "host: localhost\napi_key_env: {{.API_KEY\nport: 8000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("API_KEY", "should-not-appear")

			result := ExpandEnv([]byte(tt.input))

			assert.Equal(t, tt.input, string(result))
			assert.NotContains(t, string(result), "should-not-appear")
		})
	}
}

func TestExpandEnvPassThroughToYAMLParser(t *testing.T) {
	// A malformed template inside a quoted scalar is still valid YAML
	// once ExpandEnv passes it through untouched.
	input := `
host: localhost
api_key_env: "{{.API_KEY"
port: 8000
`
	expanded := ExpandEnv([]byte(input))

	var result map[string]any
	err := yaml.Unmarshal(expanded, &result)
	assert.NoError(t, err)
	assert.Equal(t, "{{.API_KEY", result["api_key_env"])
}

func TestExpandEnvThreadSafety(t *testing.T) {
	input := []byte("key: {{.TEST_VAR}}")
	t.Setenv("TEST_VAR", "value")

	const goroutines = 50
	results := make([]string, goroutines)
	done := make(chan struct{})

	for i := 0; i < goroutines; i++ {
		go func(index int) {
			results[index] = string(ExpandEnv(input))
			done <- struct{}{}
		}(i)
	}
	for i := 0; i < goroutines; i++ {
		<-done
	}

	for i, result := range results {
		assert.Equal(t, "key: value", result, "result %d should match", i)
	}
}
