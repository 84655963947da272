package config

// Config is the fully resolved runtime configuration.
//
// It is built by Initialize from taskdag.yaml and llm-providers.yaml,
// with built-in defaults filling everything the files leave unset.
type Config struct {
	configDir string

	Server    ServerConfig
	Executor  ExecutorConfig
	Scheduler SchedulerConfig
	Retention RetentionConfig
	Masking   MaskingConfig

	// Agents are the seed definitions applied to the database at startup,
	// built-in agents merged with user-defined ones.
	Agents []AgentSeedConfig

	// LLM is the provider registry from llm-providers.yaml.
	LLM *LLMConfig
}

// ConfigDir returns the directory configuration was loaded from
func (c *Config) ConfigDir() string {
	return c.configDir
}

// Stats summarizes loaded configuration for startup logging
type Stats struct {
	Agents          int
	LLMProviders    int
	MaskingPatterns int
}

// Stats returns configuration statistics
func (c *Config) Stats() Stats {
	s := Stats{
		Agents:          len(c.Agents),
		MaskingPatterns: len(c.Masking.Patterns),
	}
	if c.LLM != nil {
		s.LLMProviders = len(c.LLM.Providers)
	}
	return s
}
