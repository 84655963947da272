package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig builds a configuration that passes ValidateAll, for tests
// to break one field at a time.
func validConfig() *Config {
	llm := DefaultLLMConfig()
	return &Config{
		Server:    DefaultServerConfig(),
		Executor:  DefaultExecutorConfig(),
		Scheduler: DefaultSchedulerConfig(),
		Retention: DefaultRetentionConfig(),
		Masking:   DefaultMaskingConfig(),
		Agents:    BuiltinAgents(),
		LLM:       &llm,
	}
}

func TestValidateAllAcceptsDefaults(t *testing.T) {
	require.NoError(t, NewValidator(validConfig()).ValidateAll())
}

func TestValidateLLMProviders(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		errText string
	}{
		{
			name: "no providers",
			mutate: func(c *Config) {
				c.LLM = &LLMConfig{}
			},
			errText: "at least one LLM provider",
		},
		{
			name: "default provider not found",
			mutate: func(c *Config) {
				c.LLM.DefaultProvider = "missing"
			},
			errText: "provider 'missing'",
		},
		{
			name: "unknown provider type",
			mutate: func(c *Config) {
				p := c.LLM.Providers["openai"]
				p.Type = "smoke-signals"
				c.LLM.Providers["openai"] = p
			},
			errText: "smoke-signals",
		},
		{
			name: "openai provider without api_key_env",
			mutate: func(c *Config) {
				p := c.LLM.Providers["openai"]
				p.APIKeyEnv = ""
				c.LLM.Providers["openai"] = p
			},
			errText: "api_key_env",
		},
		{
			name: "grpc provider without address",
			mutate: func(c *Config) {
				c.LLM.Providers["local"] = LLMProviderConfig{
					Type:  LLMProviderTypeGRPC,
					Model: "llama-3.1-8b",
				}
			},
			errText: "address",
		},
		{
			name: "provider without model",
			mutate: func(c *Config) {
				p := c.LLM.Providers["openai"]
				p.Model = ""
				c.LLM.Providers["openai"] = p
			},
			errText: "model",
		},
		{
			name: "non-decimal pricing",
			mutate: func(c *Config) {
				p := c.LLM.Providers["openai"]
				p.Pricing = map[string]ModelPricing{
					"gpt-4o-mini": {PromptPer1M: "cheap", CompletionPer1M: "0.60"},
				}
				c.LLM.Providers["openai"] = p
			},
			errText: "not a decimal number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := NewValidator(cfg).ValidateAll()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

func TestValidateSections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		errText string
	}{
		{
			name: "port out of range",
			mutate: func(c *Config) {
				c.Server.Port = 70000
			},
			errText: "port",
		},
		{
			name: "empty artifacts dir",
			mutate: func(c *Config) {
				c.Executor.ArtifactsDir = ""
			},
			errText: "artifacts_dir",
		},
		{
			name: "synthesis provider not found",
			mutate: func(c *Config) {
				c.Executor.SynthesisProvider = "missing"
			},
			errText: "synthesis_provider",
		},
		{
			name: "scheduler enabled without reload interval",
			mutate: func(c *Config) {
				c.Scheduler.ReloadInterval = 0
			},
			errText: "reload_interval",
		},
		{
			name: "retention enabled without execution age",
			mutate: func(c *Config) {
				c.Retention.ExecutionAge = 0
			},
			errText: "execution_age",
		},
		{
			name: "masking pattern does not compile",
			mutate: func(c *Config) {
				c.Masking.Patterns = append(c.Masking.Patterns, MaskingPattern{
					Name:        "broken",
					Pattern:     "[unclosed",
					Replacement: "***",
				})
			},
			errText: "broken",
		},
		{
			name: "duplicate agent seed name",
			mutate: func(c *Config) {
				c.Agents = append(c.Agents, AgentSeedConfig{
					Name:           BuiltinPlannerAgentName,
					PromptTemplate: "duplicate",
				})
			},
			errText: "duplicate agent name",
		},
		{
			name: "agent references unknown provider",
			mutate: func(c *Config) {
				c.Agents = append(c.Agents, AgentSeedConfig{
					Name:           "my-agent",
					PromptTemplate: "Decompose the goal into tasks.",
					Provider:       "missing",
				})
			},
			errText: "provider",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := NewValidator(cfg).ValidateAll()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

func TestValidateDisabledSectionsSkipChecks(t *testing.T) {
	cfg := validConfig()
	cfg.Scheduler.Enabled = false
	cfg.Scheduler.ReloadInterval = 0
	cfg.Retention.Enabled = false
	cfg.Retention.ExecutionAge = 0
	cfg.Retention.CheckInterval = 0

	require.NoError(t, NewValidator(cfg).ValidateAll())
}
