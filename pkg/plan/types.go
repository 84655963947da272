package plan

import (
	"github.com/taskdag/taskdag/pkg/models"
)

// Plan is the structured output of goal decomposition, exchanged with the
// LLM as a fenced JSON block and persisted as the DAG result.
type Plan struct {
	OriginalRequest     string     `json:"original_request,omitempty"`
	Intent              Intent     `json:"intent"`
	Entities            []any      `json:"entities,omitempty"`
	SynthesisPlan       string     `json:"synthesis_plan,omitempty"`
	Validation          Validation `json:"validation"`
	ClarificationNeeded bool       `json:"clarification_needed,omitempty"`
	ClarificationQuery  string     `json:"clarification_query,omitempty"`
	SubTasks            []SubTask  `json:"sub_tasks"`
}

// Intent captures what the decomposer understood the goal to be.
type Intent struct {
	Primary    string   `json:"primary"`
	SubIntents []string `json:"sub_intents,omitempty"`
}

// Validation is the decomposer's self-assessment of the plan.
type Validation struct {
	Coverage          models.Coverage `json:"coverage"`
	Gaps              []string        `json:"gaps,omitempty"`
	IterationTriggers []string        `json:"iteration_triggers,omitempty"`
}

// SubTask is one node of the plan.
type SubTask struct {
	ID             string            `json:"id"`
	Description    string            `json:"description"`
	Thought        string            `json:"thought,omitempty"`
	ActionType     models.ActionType `json:"action_type"`
	ToolOrPrompt   ToolOrPrompt      `json:"tool_or_prompt"`
	ExpectedOutput string            `json:"expected_output,omitempty"`
	Dependencies   []string          `json:"dependencies"`
}

// ToolOrPrompt names the tool (or inference persona) a sub-task invokes.
type ToolOrPrompt struct {
	Name   string                 `json:"name"`
	Params map[string]interface{} `json:"params,omitempty"`
}

// IsRoot reports whether the sub-task has no real dependencies. The
// decomposer emits the literal ["none"] for roots; an empty list is
// tolerated the same way.
func (t SubTask) IsRoot() bool {
	if len(t.Dependencies) == 0 {
		return true
	}
	return len(t.Dependencies) == 1 && t.Dependencies[0] == "none"
}

// RealDependencies returns the dependency ids with the "none" marker
// filtered out.
func (t SubTask) RealDependencies() []string {
	if t.IsRoot() {
		return nil
	}
	deps := make([]string, 0, len(t.Dependencies))
	for _, d := range t.Dependencies {
		if d != "none" && d != "" {
			deps = append(deps, d)
		}
	}
	return deps
}

// TaskByID returns the sub-task with the given id, or nil.
func (p *Plan) TaskByID(id string) *SubTask {
	for i := range p.SubTasks {
		if p.SubTasks[i].ID == id {
			return &p.SubTasks[i]
		}
	}
	return nil
}
