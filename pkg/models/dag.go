package models

import (
	"time"

	"github.com/taskdag/taskdag/ent"
)

// CreateDagRequest contains every field of a DAG row at insert time. The
// planner fills it from a finished planning round; Result carries the plan
// in its generic JSON form.
type CreateDagRequest struct {
	ID                   string
	Status               DagStatus
	Result               map[string]interface{}
	Params               map[string]interface{}
	AgentName            string
	Title                *string
	CronSchedule         *string
	ScheduleActive       bool
	Timezone             string
	PlanningTotalUsage   *TokenUsage
	PlanningTotalCostUsd string
	PlanningAttempts     []PlanningAttempt
}

// UpdateDagRequest contains the mutable title and schedule fields.
// Nil pointers leave the stored value untouched.
type UpdateDagRequest struct {
	Title             *string `json:"title,omitempty"`
	CronSchedule      *string `json:"cron_schedule,omitempty"`
	ClearCronSchedule bool    `json:"clear_cron_schedule,omitempty"`
	ScheduleActive    *bool   `json:"schedule_active,omitempty"`
	Timezone          *string `json:"timezone,omitempty"`
}

// DagFilters contains filtering options for listing DAGs.
type DagFilters struct {
	Status    string `json:"status,omitempty"`
	AgentName string `json:"agent_name,omitempty"`
	Limit     int    `json:"limit,omitempty"`
	Offset    int    `json:"offset,omitempty"`
}

// DagListResponse contains a paginated DAG list.
type DagListResponse struct {
	Dags       []*ent.Dag `json:"dags"`
	TotalCount int        `json:"total_count"`
	Limit      int        `json:"limit"`
	Offset     int        `json:"offset"`
}

// ScheduledDagInfo is one row of the scheduled-DAG listing.
type ScheduledDagInfo struct {
	ID                string     `json:"id"`
	Title             string     `json:"title,omitempty"`
	CronSchedule      string     `json:"cron_schedule"`
	HumanReadableCron string     `json:"human_readable_cron,omitempty"`
	Active            bool       `json:"active"`
	Timezone          string     `json:"timezone"`
	LastRunAt         *time.Time `json:"last_run_at,omitempty"`
}
