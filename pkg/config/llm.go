package config

// LLMProviderType identifies the transport used to reach a provider
type LLMProviderType string

const (
	// LLMProviderTypeOpenAI is an OpenAI-compatible HTTP API
	LLMProviderTypeOpenAI LLMProviderType = "openai"
	// LLMProviderTypeOpenRouter is the OpenRouter HTTP API (OpenAI-compatible)
	LLMProviderTypeOpenRouter LLMProviderType = "openrouter"
	// LLMProviderTypeGRPC is a streaming gRPC generation service
	LLMProviderTypeGRPC LLMProviderType = "grpc"
)

// ModelPricing holds per-million-token prices as decimal strings.
// Prices are kept as strings end to end so cost arithmetic never
// round-trips through binary floats.
type ModelPricing struct {
	PromptPer1M     string `yaml:"prompt_per_1m" json:"prompt_per_1m"`
	CompletionPer1M string `yaml:"completion_per_1m" json:"completion_per_1m"`
}

// LLMProviderConfig defines a single LLM provider
type LLMProviderConfig struct {
	Type           LLMProviderType         `yaml:"type" json:"type"`
	Model          string                  `yaml:"model" json:"model"`
	APIKeyEnv      string                  `yaml:"api_key_env" json:"api_key_env"`
	BaseURL        string                  `yaml:"base_url,omitempty" json:"base_url,omitempty"`
	Address        string                  `yaml:"address,omitempty" json:"address,omitempty"`
	TimeoutSeconds int                     `yaml:"timeout_seconds,omitempty" json:"timeout_seconds,omitempty"`
	Pricing        map[string]ModelPricing `yaml:"pricing,omitempty" json:"pricing,omitempty"`
}

// LLMConfig holds the LLM provider registry loaded from llm-providers.yaml
type LLMConfig struct {
	DefaultProvider string                       `yaml:"default_provider" json:"default_provider"`
	Providers       map[string]LLMProviderConfig `yaml:"providers" json:"providers"`
}

// GetProvider returns the named provider configuration
func (c *LLMConfig) GetProvider(name string) (LLMProviderConfig, bool) {
	p, ok := c.Providers[name]
	return p, ok
}

// ProviderNames returns the configured provider names
func (c *LLMConfig) ProviderNames() []string {
	names := make([]string, 0, len(c.Providers))
	for name := range c.Providers {
		names = append(names, name)
	}
	return names
}
