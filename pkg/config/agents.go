package config

// AgentSeedConfig defines an agent to be seeded into the database at startup.
// Seeding inserts a new version only when the prompt template differs from
// the latest stored version for the same name.
type AgentSeedConfig struct {
	Name           string                 `yaml:"name" json:"name"`
	PromptTemplate string                 `yaml:"prompt_template" json:"prompt_template"`
	Provider       string                 `yaml:"provider,omitempty" json:"provider,omitempty"`
	Model          string                 `yaml:"model,omitempty" json:"model,omitempty"`
	Activate       bool                   `yaml:"activate,omitempty" json:"activate,omitempty"`
	Metadata       map[string]interface{} `yaml:"metadata,omitempty" json:"metadata,omitempty"`
}
