package models

import (
	"encoding/json"

	"github.com/taskdag/taskdag/ent"
)

// CreateExecutionRequest contains fields for creating an execution together
// with one pending sub-step per plan task.
type CreateExecutionRequest struct {
	DagID           *string       `json:"dag_id,omitempty"`
	OriginalRequest string        `json:"original_request"`
	PrimaryIntent   string        `json:"primary_intent,omitempty"`
	Tasks           []SubStepSeed `json:"tasks"`
}

// SubStepSeed is one pending sub-step row at execution creation time.
type SubStepSeed struct {
	TaskID             string                 `json:"task_id"`
	Description        string                 `json:"description"`
	Thought            string                 `json:"thought,omitempty"`
	ActionType         ActionType             `json:"action_type"`
	ToolOrPromptName   string                 `json:"tool_or_prompt_name"`
	ToolOrPromptParams map[string]interface{} `json:"tool_or_prompt_params,omitempty"`
	Dependencies       []string               `json:"dependencies,omitempty"`
}

// SubStepCompletion records a successful sub-step outcome.
type SubStepCompletion struct {
	TaskID          string
	Result          json.RawMessage
	DurationMs      int64
	Usage           *TokenUsage
	CostUsd         string // decimal string, empty when the step cost nothing
	GenerationStats map[string]interface{}
}

// SubStepFailure records a failed sub-step outcome. Inference steps can
// fail after consuming tokens, so usage and cost travel with the error.
type SubStepFailure struct {
	TaskID     string
	Error      string
	DurationMs int64
	Usage      *TokenUsage
	CostUsd    string
}

// SynthesisRecord is the persisted outcome of the synthesis call. The row
// is created directly in the completed state under SynthesisTaskID.
type SynthesisRecord struct {
	Description     string
	Dependencies    []string
	Result          json.RawMessage
	DurationMs      int64
	Usage           *TokenUsage
	CostUsd         string
	GenerationStats map[string]interface{}
}

// ExecutionFilters contains filtering options for listing executions.
type ExecutionFilters struct {
	DagID  string `json:"dag_id,omitempty"`
	Status string `json:"status,omitempty"`
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
}

// ExecutionListResponse contains a paginated execution list.
type ExecutionListResponse struct {
	Executions []*ent.DagExecution `json:"executions"`
	TotalCount int                 `json:"total_count"`
	Limit      int                 `json:"limit"`
	Offset     int                 `json:"offset"`
}

// ExecutionAggregate summarizes the sub-step state of one execution.
// Counts cover plan tasks only; usage and cost totals fold in the
// synthesis row. Deleted rows are ignored throughout.
type ExecutionAggregate struct {
	Total        int
	Completed    int
	Failed       int
	Running      int
	Waiting      int
	Pending      int
	TotalUsage   TokenUsage
	TotalCostUsd string // decimal string, empty when no sub-step carried a cost
}

// FinalizeExecutionRequest carries the terminal fields written once a run
// settles.
type FinalizeExecutionRequest struct {
	Status          ExecutionStatus
	FinalResult     *string
	SynthesisResult map[string]interface{}
	CompletedTasks  int
	FailedTasks     int
	WaitingTasks    int
	TotalUsage      *TokenUsage
	TotalCostUsd    string
}
