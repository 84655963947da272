package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// TaskdagYAMLConfig represents the complete taskdag.yaml file structure
type TaskdagYAMLConfig struct {
	Server    *ServerYAMLConfig    `yaml:"server"`
	Executor  *ExecutorYAMLConfig  `yaml:"executor"`
	Scheduler *SchedulerYAMLConfig `yaml:"scheduler"`
	Retention *RetentionYAMLConfig `yaml:"retention"`
	Masking   *MaskingYAMLConfig   `yaml:"masking"`
	Agents    []AgentSeedConfig    `yaml:"agents"`
}

// ServerYAMLConfig holds HTTP server settings from YAML.
type ServerYAMLConfig struct {
	Host             string   `yaml:"host,omitempty"`
	Port             int      `yaml:"port,omitempty"`
	AuthTokenEnv     string   `yaml:"auth_token_env,omitempty"` // Defaults to "TASKDAG_API_TOKEN"
	AllowedWSOrigins []string `yaml:"allowed_ws_origins,omitempty"`
}

// ExecutorYAMLConfig holds execution engine settings from YAML.
type ExecutorYAMLConfig struct {
	ArtifactsDir      string `yaml:"artifacts_dir,omitempty"`
	SynthesisProvider string `yaml:"synthesis_provider,omitempty"`
	SynthesisModel    string `yaml:"synthesis_model,omitempty"`
	BatchDBUpdates    *bool  `yaml:"batch_db_updates,omitempty"`
}

// SchedulerYAMLConfig holds cron scheduler settings from YAML.
type SchedulerYAMLConfig struct {
	Enabled        *bool         `yaml:"enabled,omitempty"`
	ReloadInterval time.Duration `yaml:"reload_interval,omitempty"`
}

// RetentionYAMLConfig holds data retention settings from YAML.
type RetentionYAMLConfig struct {
	Enabled       *bool         `yaml:"enabled,omitempty"`
	ExecutionAge  time.Duration `yaml:"execution_age,omitempty"`
	CheckInterval time.Duration `yaml:"check_interval,omitempty"`
}

// MaskingYAMLConfig holds masking settings from YAML. User patterns are
// appended to the built-in set.
type MaskingYAMLConfig struct {
	Enabled  *bool            `yaml:"enabled,omitempty"`
	Patterns []MaskingPattern `yaml:"patterns,omitempty"`
}

// LLMProvidersYAMLConfig represents the complete llm-providers.yaml file structure
type LLMProvidersYAMLConfig struct {
	DefaultProvider string                       `yaml:"default_provider"`
	LLMProviders    map[string]LLMProviderConfig `yaml:"llm_providers"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load YAML files from configDir
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Merge built-in + user-defined configurations
//  5. Apply default values
//  6. Validate all configuration
//  7. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"agents", stats.Agents,
		"llm_providers", stats.LLMProviders,
		"masking_patterns", stats.MaskingPatterns)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	// 1. Load taskdag.yaml (server, executor, scheduler, retention, masking, agents)
	mainConfig, err := loader.loadTaskdagYAML()
	if err != nil {
		return nil, NewLoadError("taskdag.yaml", err)
	}

	// 2. Load llm-providers.yaml
	llmConfig, err := loader.loadLLMProvidersYAML()
	if err != nil {
		return nil, NewLoadError("llm-providers.yaml", err)
	}

	// 3. Merge built-in + user-defined agents (user overrides built-in)
	agents, err := mergeAgents(BuiltinAgents(), mainConfig.Agents)
	if err != nil {
		return nil, fmt.Errorf("failed to merge agent definitions: %w", err)
	}

	// 4. Resolve each section (YAML overrides built-in defaults)
	serverCfg := resolveServerConfig(mainConfig.Server)
	executorCfg := resolveExecutorConfig(mainConfig.Executor)
	schedulerCfg := resolveSchedulerConfig(mainConfig.Scheduler)
	retentionCfg := resolveRetentionConfig(mainConfig.Retention)
	maskingCfg := resolveMaskingConfig(mainConfig.Masking)

	return &Config{
		configDir: configDir,
		Server:    serverCfg,
		Executor:  executorCfg,
		Scheduler: schedulerCfg,
		Retention: retentionCfg,
		Masking:   maskingCfg,
		Agents:    agents,
		LLM:       llmConfig,
	}, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax.
	// ExpandEnv passes through original data on parse/execution errors,
	// letting the YAML parser surface a clearer error message.
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

// loadTaskdagYAML loads taskdag.yaml. A missing file is not an error;
// built-in defaults cover every section.
func (l *configLoader) loadTaskdagYAML() (*TaskdagYAMLConfig, error) {
	var config TaskdagYAMLConfig

	if err := l.loadYAML("taskdag.yaml", &config); err != nil {
		if isNotFound(err) {
			slog.Info("No taskdag.yaml found, using built-in defaults")
			return &config, nil
		}
		return nil, err
	}

	return &config, nil
}

// loadLLMProvidersYAML loads llm-providers.yaml and merges it with the
// built-in provider registry. A missing file leaves only the built-ins.
func (l *configLoader) loadLLMProvidersYAML() (*LLMConfig, error) {
	var config LLMProvidersYAMLConfig
	config.LLMProviders = make(map[string]LLMProviderConfig)

	if err := l.loadYAML("llm-providers.yaml", &config); err != nil {
		if isNotFound(err) {
			slog.Info("No llm-providers.yaml found, using built-in providers")
			builtin := DefaultLLMConfig()
			return &builtin, nil
		}
		return nil, err
	}

	merged := mergeLLMProviders(DefaultLLMConfig().Providers, config.LLMProviders)

	defaultProvider := config.DefaultProvider
	if defaultProvider == "" {
		defaultProvider = DefaultLLMConfig().DefaultProvider
	}

	return &LLMConfig{
		DefaultProvider: defaultProvider,
		Providers:       merged,
	}, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrConfigNotFound)
}

// mergeAgents merges built-in and user-defined agent seed definitions.
// A user entry with a built-in name overrides the fields it sets and
// inherits the rest from the built-in definition.
func mergeAgents(builtin []AgentSeedConfig, user []AgentSeedConfig) ([]AgentSeedConfig, error) {
	byName := make(map[string]AgentSeedConfig, len(builtin))
	order := make([]string, 0, len(builtin)+len(user))

	for _, b := range builtin {
		byName[b.Name] = b
		order = append(order, b.Name)
	}

	for _, u := range user {
		if b, ok := byName[u.Name]; ok {
			// Fill unset fields of the user override from the built-in
			if err := mergo.Merge(&u, b); err != nil {
				return nil, fmt.Errorf("failed to merge agent '%s': %w", u.Name, err)
			}
			byName[u.Name] = u
			continue
		}
		byName[u.Name] = u
		order = append(order, u.Name)
	}

	result := make([]AgentSeedConfig, 0, len(order))
	for _, name := range order {
		result = append(result, byName[name])
	}
	return result, nil
}

// mergeLLMProviders merges built-in and user-defined LLM provider configurations.
// User-defined providers replace built-ins with the same name wholesale.
func mergeLLMProviders(builtinProviders, userProviders map[string]LLMProviderConfig) map[string]LLMProviderConfig {
	result := make(map[string]LLMProviderConfig)

	for name, provider := range builtinProviders {
		result[name] = provider
	}

	for name, provider := range userProviders {
		result[name] = provider
	}

	return result
}

// resolveServerConfig resolves server configuration from YAML, applying defaults.
// The auth token itself comes from the environment variable named by
// auth_token_env; an empty value disables request authentication.
func resolveServerConfig(y *ServerYAMLConfig) ServerConfig {
	cfg := DefaultServerConfig()

	tokenEnv := "TASKDAG_API_TOKEN"
	if y != nil {
		if y.Host != "" {
			cfg.Host = y.Host
		}
		if y.Port != 0 {
			cfg.Port = y.Port
		}
		if y.AuthTokenEnv != "" {
			tokenEnv = y.AuthTokenEnv
		}
		cfg.AllowedWSOrigins = y.AllowedWSOrigins
	}
	cfg.AuthToken = os.Getenv(tokenEnv)

	return cfg
}

// resolveExecutorConfig resolves executor configuration from YAML, applying defaults.
func resolveExecutorConfig(y *ExecutorYAMLConfig) ExecutorConfig {
	cfg := DefaultExecutorConfig()

	if y == nil {
		return cfg
	}

	if y.ArtifactsDir != "" {
		cfg.ArtifactsDir = y.ArtifactsDir
	}
	if y.SynthesisProvider != "" {
		cfg.SynthesisProvider = y.SynthesisProvider
	}
	if y.SynthesisModel != "" {
		cfg.SynthesisModel = y.SynthesisModel
	}
	if y.BatchDBUpdates != nil {
		cfg.BatchDBUpdates = *y.BatchDBUpdates
	}

	return cfg
}

// resolveSchedulerConfig resolves scheduler configuration from YAML, applying defaults.
func resolveSchedulerConfig(y *SchedulerYAMLConfig) SchedulerConfig {
	cfg := DefaultSchedulerConfig()

	if y == nil {
		return cfg
	}

	if y.Enabled != nil {
		cfg.Enabled = *y.Enabled
	}
	if y.ReloadInterval > 0 {
		cfg.ReloadInterval = y.ReloadInterval
	}

	return cfg
}

// resolveRetentionConfig resolves retention configuration from YAML, applying defaults.
func resolveRetentionConfig(y *RetentionYAMLConfig) RetentionConfig {
	cfg := DefaultRetentionConfig()

	if y == nil {
		return cfg
	}

	if y.Enabled != nil {
		cfg.Enabled = *y.Enabled
	}
	if y.ExecutionAge > 0 {
		cfg.ExecutionAge = y.ExecutionAge
	}
	if y.CheckInterval > 0 {
		cfg.CheckInterval = y.CheckInterval
	}

	return cfg
}

// resolveMaskingConfig resolves masking configuration from YAML. User
// patterns extend the built-in set rather than replacing it.
func resolveMaskingConfig(y *MaskingYAMLConfig) MaskingConfig {
	cfg := DefaultMaskingConfig()

	if y == nil {
		return cfg
	}

	if y.Enabled != nil {
		cfg.Enabled = *y.Enabled
	}
	if len(y.Patterns) > 0 {
		cfg.Patterns = append(cfg.Patterns, y.Patterns...)
	}

	return cfg
}
