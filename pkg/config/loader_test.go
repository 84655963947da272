package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestInitializeWithDefaults(t *testing.T) {
	// Empty config dir: every section falls back to built-in defaults.
	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "./artifacts", cfg.Executor.ArtifactsDir)
	assert.True(t, cfg.Executor.BatchDBUpdates)
	assert.True(t, cfg.Scheduler.Enabled)
	assert.Equal(t, 60*time.Second, cfg.Scheduler.ReloadInterval)
	assert.True(t, cfg.Retention.Enabled)
	assert.True(t, cfg.Masking.Enabled)
	assert.NotEmpty(t, cfg.Masking.Patterns)

	require.NotNil(t, cfg.LLM)
	assert.Equal(t, "openai", cfg.LLM.DefaultProvider)
	assert.Contains(t, cfg.LLM.Providers, "openai")

	// Built-in agents are always seeded
	names := make([]string, 0, len(cfg.Agents))
	for _, a := range cfg.Agents {
		names = append(names, a.Name)
	}
	assert.Contains(t, names, BuiltinPlannerAgentName)
	assert.Contains(t, names, BuiltinTitleAgentName)
}

func TestInitializeFromFiles(t *testing.T) {
	dir := t.TempDir()

	writeConfigFile(t, dir, "taskdag.yaml", `
server:
  host: 127.0.0.1
  port: 9000
executor:
  artifacts_dir: /tmp/taskdag-artifacts
  synthesis_provider: local
  batch_db_updates: false
scheduler:
  enabled: false
retention:
  execution_age: 720h
  check_interval: 1h
masking:
  patterns:
    - name: internal_id
      pattern: "EMP-[0-9]{6}"
      replacement: "***MASKED_EMPLOYEE_ID***"
`)

	writeConfigFile(t, dir, "llm-providers.yaml", `
default_provider: local
llm_providers:
  local:
    type: grpc
    model: llama-3.1-8b
    address: localhost:9090
  openrouter:
    type: openrouter
    model: anthropic/claude-sonnet-4
    api_key_env: OPENROUTER_API_KEY
    base_url: https://openrouter.ai/api/v1
    pricing:
      anthropic/claude-sonnet-4:
        prompt_per_1m: "3.00"
        completion_per_1m: "15.00"
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "/tmp/taskdag-artifacts", cfg.Executor.ArtifactsDir)
	assert.Equal(t, "local", cfg.Executor.SynthesisProvider)
	assert.False(t, cfg.Executor.BatchDBUpdates, "explicit false must win over the default")
	assert.False(t, cfg.Scheduler.Enabled)
	assert.Equal(t, 720*time.Hour, cfg.Retention.ExecutionAge)
	assert.Equal(t, time.Hour, cfg.Retention.CheckInterval)

	assert.Equal(t, "local", cfg.LLM.DefaultProvider)
	assert.Contains(t, cfg.LLM.Providers, "local")
	assert.Contains(t, cfg.LLM.Providers, "openrouter")
	// Built-in providers survive the merge
	assert.Contains(t, cfg.LLM.Providers, "openai")

	local := cfg.LLM.Providers["local"]
	assert.Equal(t, LLMProviderTypeGRPC, local.Type)
	assert.Equal(t, "localhost:9090", local.Address)

	// User masking patterns extend the built-in set
	var found bool
	for _, p := range cfg.Masking.Patterns {
		if p.Name == "internal_id" {
			found = true
		}
	}
	assert.True(t, found, "user masking pattern should be appended")
	assert.Greater(t, len(cfg.Masking.Patterns), 1)
}

func TestInitializeExpandsEnvInYAML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TEST_LLM_ADDR", "10.0.0.5:9090")

	writeConfigFile(t, dir, "llm-providers.yaml", `
default_provider: local
llm_providers:
  local:
    type: grpc
    model: llama-3.1-8b
    address: {{.TEST_LLM_ADDR}}
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.5:9090", cfg.LLM.Providers["local"].Address)
}

func TestInitializeResolvesAuthTokenFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MY_CUSTOM_TOKEN", "s3cret")

	writeConfigFile(t, dir, "taskdag.yaml", `
server:
  auth_token_env: MY_CUSTOM_TOKEN
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.Server.AuthToken)
}

func TestInitializeInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "taskdag.yaml", "server:\n  host: [unclosed")

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestInitializeValidationFailure(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "llm-providers.yaml", `
default_provider: broken
llm_providers:
  broken:
    type: carrier-pigeon
    model: x
`)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "llm_provider", verr.Component)
	assert.Equal(t, "broken", verr.ID)
}

func TestMergeAgentsUserOverridesBuiltin(t *testing.T) {
	user := []AgentSeedConfig{
		{
			Name:  BuiltinPlannerAgentName,
			Model: "gpt-4o",
		},
		{
			Name:           "custom-planner",
			PromptTemplate: "You decompose goals into tasks. Reply with JSON only.",
		},
	}

	merged, err := mergeAgents(BuiltinAgents(), user)
	require.NoError(t, err)

	byName := make(map[string]AgentSeedConfig, len(merged))
	for _, a := range merged {
		byName[a.Name] = a
	}

	// Override sets the model but inherits the built-in prompt template
	planner := byName[BuiltinPlannerAgentName]
	assert.Equal(t, "gpt-4o", planner.Model)
	assert.NotEmpty(t, planner.PromptTemplate)
	assert.Equal(t, builtinPlannerTemplate, planner.PromptTemplate)

	// New user agents are appended
	assert.Contains(t, byName, "custom-planner")
	// Built-ins not overridden are untouched
	assert.Equal(t, builtinTitleTemplate, byName[BuiltinTitleAgentName].PromptTemplate)
}
