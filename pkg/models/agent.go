package models

// CreateAgentRequest contains fields for registering a new agent version.
// The version number is assigned by the store (latest for the name + 1).
type CreateAgentRequest struct {
	Name           string                 `json:"name"`
	PromptTemplate string                 `json:"prompt_template"`
	Provider       string                 `json:"provider,omitempty"`
	Model          string                 `json:"model,omitempty"`
	Metadata       map[string]interface{} `json:"metadata,omitempty"`
	Activate       bool                   `json:"activate,omitempty"`
}

// UpdateAgentRequest contains the mutable fields of an agent version.
// Nil pointers leave the stored value untouched.
type UpdateAgentRequest struct {
	PromptTemplate *string                `json:"prompt_template,omitempty"`
	Provider       *string                `json:"provider,omitempty"`
	Model          *string                `json:"model,omitempty"`
	Metadata       map[string]interface{} `json:"metadata,omitempty"`
}

// AgentFilters contains filtering options for listing agents.
type AgentFilters struct {
	Name       string `json:"name,omitempty"`
	ActiveOnly bool   `json:"active_only,omitempty"`
}
