package config

import "time"

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host             string   `yaml:"host" json:"host"`
	Port             int      `yaml:"port" json:"port"`
	AuthToken        string   `yaml:"auth_token,omitempty" json:"-"`
	AllowedWSOrigins []string `yaml:"allowed_ws_origins,omitempty" json:"allowed_ws_origins,omitempty"`
}

// DefaultServerConfig returns server defaults
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Host: "0.0.0.0",
		Port: 8000,
	}
}

// ExecutorConfig holds execution engine settings
type ExecutorConfig struct {
	// ArtifactsDir is the root under which per-execution working
	// directories are created for file tools.
	ArtifactsDir string `yaml:"artifacts_dir" json:"artifacts_dir"`
	// SynthesisProvider/SynthesisModel override the provider used for
	// the final synthesis step. Empty means the default provider.
	SynthesisProvider string `yaml:"synthesis_provider,omitempty" json:"synthesis_provider,omitempty"`
	SynthesisModel    string `yaml:"synthesis_model,omitempty" json:"synthesis_model,omitempty"`
	// BatchDBUpdates batches sub-step status writes per wave instead of
	// writing each transition as it happens.
	BatchDBUpdates bool `yaml:"batch_db_updates" json:"batch_db_updates"`
}

// DefaultExecutorConfig returns executor defaults
func DefaultExecutorConfig() ExecutorConfig {
	return ExecutorConfig{
		ArtifactsDir:   "./artifacts",
		BatchDBUpdates: true,
	}
}

// SchedulerConfig holds cron scheduler settings
type SchedulerConfig struct {
	Enabled        bool          `yaml:"enabled" json:"enabled"`
	ReloadInterval time.Duration `yaml:"reload_interval" json:"reload_interval"`
}

// DefaultSchedulerConfig returns scheduler defaults
func DefaultSchedulerConfig() SchedulerConfig {
	return SchedulerConfig{
		Enabled:        true,
		ReloadInterval: 60 * time.Second,
	}
}

// RetentionConfig holds data retention settings for the cleanup service
type RetentionConfig struct {
	Enabled       bool          `yaml:"enabled" json:"enabled"`
	ExecutionAge  time.Duration `yaml:"execution_age" json:"execution_age"`
	CheckInterval time.Duration `yaml:"check_interval" json:"check_interval"`
}

// DefaultRetentionConfig returns retention defaults
func DefaultRetentionConfig() RetentionConfig {
	return RetentionConfig{
		Enabled:       true,
		ExecutionAge:  90 * 24 * time.Hour,
		CheckInterval: 12 * time.Hour,
	}
}

// MaskingPattern is a named regular expression replaced in tool and
// LLM output before persistence.
type MaskingPattern struct {
	Name        string `yaml:"name" json:"name"`
	Pattern     string `yaml:"pattern" json:"pattern"`
	Replacement string `yaml:"replacement" json:"replacement"`
}

// MaskingConfig holds sensitive-data masking settings
type MaskingConfig struct {
	Enabled  bool             `yaml:"enabled" json:"enabled"`
	Patterns []MaskingPattern `yaml:"patterns,omitempty" json:"patterns,omitempty"`
}

// DefaultMaskingConfig returns masking defaults with builtin patterns enabled
func DefaultMaskingConfig() MaskingConfig {
	return MaskingConfig{
		Enabled:  true,
		Patterns: BuiltinMaskingPatterns(),
	}
}
