package config

import (
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"
)

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	// Validate in order: providers → agents → sections that reference providers
	if err := v.validateLLMProviders(); err != nil {
		return fmt.Errorf("LLM provider validation failed: %w", err)
	}

	if err := v.validateAgents(); err != nil {
		return fmt.Errorf("agent validation failed: %w", err)
	}

	if err := v.validateServer(); err != nil {
		return fmt.Errorf("server validation failed: %w", err)
	}

	if err := v.validateExecutor(); err != nil {
		return fmt.Errorf("executor validation failed: %w", err)
	}

	if err := v.validateScheduler(); err != nil {
		return fmt.Errorf("scheduler validation failed: %w", err)
	}

	if err := v.validateRetention(); err != nil {
		return fmt.Errorf("retention validation failed: %w", err)
	}

	if err := v.validateMasking(); err != nil {
		return fmt.Errorf("masking validation failed: %w", err)
	}

	return nil
}

func (v *ConfigValidator) validateLLMProviders() error {
	llm := v.cfg.LLM
	if llm == nil || len(llm.Providers) == 0 {
		return fmt.Errorf("%w: at least one LLM provider required", ErrValidationFailed)
	}

	if llm.DefaultProvider == "" {
		return NewValidationError("llm", "default_provider", "", ErrMissingRequiredField)
	}
	if _, ok := llm.Providers[llm.DefaultProvider]; !ok {
		return NewValidationError("llm", "default_provider", "",
			fmt.Errorf("%w: provider '%s'", ErrLLMProviderNotFound, llm.DefaultProvider))
	}

	for name, provider := range llm.Providers {
		switch provider.Type {
		case LLMProviderTypeOpenAI, LLMProviderTypeOpenRouter:
			if provider.APIKeyEnv == "" {
				return NewValidationError("llm_provider", name, "api_key_env", ErrMissingRequiredField)
			}
		case LLMProviderTypeGRPC:
			if provider.Address == "" {
				return NewValidationError("llm_provider", name, "address", ErrMissingRequiredField)
			}
		default:
			return NewValidationError("llm_provider", name, "type",
				fmt.Errorf("%w: '%s' (expected openai, openrouter, or grpc)", ErrInvalidValue, provider.Type))
		}

		if provider.Model == "" {
			return NewValidationError("llm_provider", name, "model", ErrMissingRequiredField)
		}
		if provider.TimeoutSeconds < 0 {
			return NewValidationError("llm_provider", name, "timeout_seconds",
				fmt.Errorf("%w: must not be negative", ErrInvalidValue))
		}

		for model, pricing := range provider.Pricing {
			for field, value := range map[string]string{
				"prompt_per_1m":     pricing.PromptPer1M,
				"completion_per_1m": pricing.CompletionPer1M,
			} {
				if value == "" {
					continue
				}
				if _, err := decimal.NewFromString(value); err != nil {
					return NewValidationError("llm_provider", name,
						fmt.Sprintf("pricing.%s.%s", model, field),
						fmt.Errorf("%w: not a decimal number: %q", ErrInvalidValue, value))
				}
			}
		}
	}

	return nil
}

func (v *ConfigValidator) validateAgents() error {
	seen := make(map[string]bool, len(v.cfg.Agents))

	for _, agent := range v.cfg.Agents {
		if agent.Name == "" {
			return NewValidationError("agent_seed", "?", "name", ErrMissingRequiredField)
		}
		if seen[agent.Name] {
			return NewValidationError("agent_seed", agent.Name, "name",
				fmt.Errorf("%w: duplicate agent name", ErrInvalidValue))
		}
		seen[agent.Name] = true

		if agent.PromptTemplate == "" {
			return NewValidationError("agent_seed", agent.Name, "prompt_template", ErrMissingRequiredField)
		}

		if agent.Provider != "" {
			if _, ok := v.cfg.LLM.Providers[agent.Provider]; !ok {
				return NewValidationError("agent_seed", agent.Name, "provider",
					fmt.Errorf("%w: '%s'", ErrLLMProviderNotFound, agent.Provider))
			}
		}
	}

	return nil
}

func (v *ConfigValidator) validateServer() error {
	if v.cfg.Server.Port < 1 || v.cfg.Server.Port > 65535 {
		return NewValidationError("server", "server", "port",
			fmt.Errorf("%w: %d (expected 1-65535)", ErrInvalidValue, v.cfg.Server.Port))
	}
	return nil
}

func (v *ConfigValidator) validateExecutor() error {
	if v.cfg.Executor.ArtifactsDir == "" {
		return NewValidationError("executor", "executor", "artifacts_dir", ErrMissingRequiredField)
	}

	if v.cfg.Executor.SynthesisProvider != "" {
		if _, ok := v.cfg.LLM.Providers[v.cfg.Executor.SynthesisProvider]; !ok {
			return NewValidationError("executor", "executor", "synthesis_provider",
				fmt.Errorf("%w: '%s'", ErrLLMProviderNotFound, v.cfg.Executor.SynthesisProvider))
		}
	}

	return nil
}

func (v *ConfigValidator) validateScheduler() error {
	if v.cfg.Scheduler.Enabled && v.cfg.Scheduler.ReloadInterval <= 0 {
		return NewValidationError("scheduler", "scheduler", "reload_interval",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	return nil
}

func (v *ConfigValidator) validateRetention() error {
	if !v.cfg.Retention.Enabled {
		return nil
	}
	if v.cfg.Retention.ExecutionAge <= 0 {
		return NewValidationError("retention", "retention", "execution_age",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if v.cfg.Retention.CheckInterval <= 0 {
		return NewValidationError("retention", "retention", "check_interval",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	return nil
}

func (v *ConfigValidator) validateMasking() error {
	for i, pattern := range v.cfg.Masking.Patterns {
		id := pattern.Name
		if id == "" {
			return NewValidationError("masking_pattern", fmt.Sprintf("[%d]", i), "name", ErrMissingRequiredField)
		}
		if pattern.Pattern == "" {
			return NewValidationError("masking_pattern", id, "pattern", ErrMissingRequiredField)
		}
		if _, err := regexp.Compile(pattern.Pattern); err != nil {
			return NewValidationError("masking_pattern", id, "pattern",
				fmt.Errorf("%w: %v", ErrInvalidValue, err))
		}
		if pattern.Replacement == "" {
			return NewValidationError("masking_pattern", id, "replacement", ErrMissingRequiredField)
		}
	}
	return nil
}
