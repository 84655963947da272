package models

// TokenUsage carries token counts for one or more LLM calls.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Add accumulates other into u.
func (u *TokenUsage) Add(other *TokenUsage) {
	if other == nil {
		return
	}
	u.PromptTokens += other.PromptTokens
	u.CompletionTokens += other.CompletionTokens
	u.TotalTokens += other.TotalTokens
}

// IsZero reports whether no tokens were recorded.
func (u *TokenUsage) IsZero() bool {
	return u == nil || (u.PromptTokens == 0 && u.CompletionTokens == 0 && u.TotalTokens == 0)
}

// ToMap converts the usage into the generic JSON shape stored by ent.
func (u *TokenUsage) ToMap() map[string]interface{} {
	if u == nil {
		return nil
	}
	return map[string]interface{}{
		"prompt_tokens":     u.PromptTokens,
		"completion_tokens": u.CompletionTokens,
		"total_tokens":      u.TotalTokens,
	}
}

// UsageFromMap converts a stored JSON map back into a TokenUsage.
// Returns nil for an empty map.
func UsageFromMap(m map[string]interface{}) *TokenUsage {
	if len(m) == 0 {
		return nil
	}
	return &TokenUsage{
		PromptTokens:     intFromJSON(m["prompt_tokens"]),
		CompletionTokens: intFromJSON(m["completion_tokens"]),
		TotalTokens:      intFromJSON(m["total_tokens"]),
	}
}

// intFromJSON tolerates the float64 that encoding/json produces for numbers.
func intFromJSON(v interface{}) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case int64:
		return int(n)
	}
	return 0
}

// PlanningAttempt records one planner LLM call for post-hoc diagnosis.
type PlanningAttempt struct {
	Reason     AttemptReason `json:"reason"`
	Usage      *TokenUsage   `json:"usage,omitempty"`
	CostUsd    string        `json:"cost_usd,omitempty"`
	Error      string        `json:"error,omitempty"`
	DurationMs int64         `json:"duration_ms,omitempty"`
}

// ToMap converts the attempt into the generic JSON shape stored by ent.
func (a PlanningAttempt) ToMap() map[string]interface{} {
	m := map[string]interface{}{
		"reason": string(a.Reason),
	}
	if a.Usage != nil {
		m["usage"] = a.Usage.ToMap()
	}
	if a.CostUsd != "" {
		m["cost_usd"] = a.CostUsd
	}
	if a.Error != "" {
		m["error"] = a.Error
	}
	if a.DurationMs > 0 {
		m["duration_ms"] = a.DurationMs
	}
	return m
}

// AttemptsToMaps converts an attempt log for persistence.
func AttemptsToMaps(attempts []PlanningAttempt) []map[string]interface{} {
	if len(attempts) == 0 {
		return nil
	}
	out := make([]map[string]interface{}, 0, len(attempts))
	for _, a := range attempts {
		out = append(out, a.ToMap())
	}
	return out
}
