package models

// PlanningStatus tags the outcome of a planning call.
type PlanningStatus string

const (
	PlanningStatusSuccess               PlanningStatus = "success"
	PlanningStatusClarificationRequired PlanningStatus = "clarification_required"
	PlanningStatusValidationError       PlanningStatus = "validation_error"
	PlanningStatusFailed                PlanningStatus = "failed" // stop or abort before persistence
)

// PlanningRequest contains the inputs for creating a plan from a goal.
type PlanningRequest struct {
	GoalText string `json:"goal_text"`
	// DagID optionally pins the id of the DAG row the planner will create.
	// Callers that expose the id up front can target it with a stop request
	// while planning is still in flight.
	DagID          string   `json:"dag_id,omitempty"`
	AgentName      string   `json:"agent_name"`
	Provider       string   `json:"provider,omitempty"`
	Model          string   `json:"model,omitempty"`
	Temperature    *float32 `json:"temperature,omitempty"` // default 0.7
	MaxTokens      *int     `json:"max_tokens,omitempty"`  // default 10000
	Seed           *int     `json:"seed,omitempty"`
	CronSchedule   string   `json:"cron_schedule,omitempty"`
	ScheduleActive bool     `json:"schedule_active,omitempty"`
	Timezone       string   `json:"timezone,omitempty"` // default "UTC"
}

// PlanningResult is the tagged outcome of CreateFromGoal. Every variant
// except "failed" carries the id of a persisted DAG row.
type PlanningResult struct {
	Status             PlanningStatus `json:"status"`
	DagID              string         `json:"dag_id,omitempty"`
	ClarificationQuery string         `json:"clarification_query,omitempty"`
	Coverage           Coverage       `json:"coverage,omitempty"`
	Error              string         `json:"error,omitempty"`
}
