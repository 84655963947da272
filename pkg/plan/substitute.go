package plan

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Runtime tokens the decomposer may leave in task parameters for the
// executor to fill in at run time.
const (
	TokenCurrentDate = "{{currentDate}}"
	TokenToday       = "{{Today}}"
)

// SubstituteRuntimeTokens replaces date tokens throughout the plan,
// wherever they occur, by round-tripping through JSON. Returns a new plan;
// the input is not modified.
func SubstituteRuntimeTokens(p *Plan, now time.Time) (*Plan, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal plan for token substitution: %w", err)
	}
	date := now.Format("2006-01-02")
	s := string(raw)
	s = strings.ReplaceAll(s, TokenCurrentDate, date)
	s = strings.ReplaceAll(s, TokenToday, date)
	var out Plan
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal plan after token substitution: %w", err)
	}
	return &out, nil
}

// ToMap converts the plan into the generic JSON shape stored by ent.
func (p *Plan) ToMap() (map[string]interface{}, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal plan: %w", err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to convert plan to map: %w", err)
	}
	return m, nil
}

// FromMap rebuilds a Plan from the stored JSON shape.
func FromMap(m map[string]interface{}) (*Plan, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal stored plan: %w", err)
	}
	var p Plan
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("failed to decode stored plan: %w", err)
	}
	return &p, nil
}
