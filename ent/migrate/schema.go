// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentsColumns holds the columns for the "agents" table.
	AgentsColumns = []*schema.Column{
		{Name: "agent_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "prompt_template", Type: field.TypeString, Size: 2147483647},
		{Name: "provider", Type: field.TypeString, Nullable: true},
		{Name: "model", Type: field.TypeString, Nullable: true},
		{Name: "active", Type: field.TypeBool, Default: false},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AgentsTable holds the schema information for the "agents" table.
	AgentsTable = &schema.Table{
		Name:       "agents",
		Columns:    AgentsColumns,
		PrimaryKey: []*schema.Column{AgentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agent_name_version",
				Unique:  true,
				Columns: []*schema.Column{AgentsColumns[1], AgentsColumns[2]},
			},
			{
				Name:    "agent_name",
				Unique:  true,
				Columns: []*schema.Column{AgentsColumns[1]},
				Annotation: &entsql.IndexAnnotation{
					Where: "active",
				},
			},
		},
	}
	// DagsColumns holds the columns for the "dags" table.
	DagsColumns = []*schema.Column{
		{Name: "dag_id", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"success", "pending", "validation_error"}},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "params", Type: field.TypeJSON, Nullable: true},
		{Name: "agent_name", Type: field.TypeString},
		{Name: "dag_title", Type: field.TypeString, Nullable: true},
		{Name: "cron_schedule", Type: field.TypeString, Nullable: true},
		{Name: "schedule_active", Type: field.TypeBool, Default: false},
		{Name: "last_run_at", Type: field.TypeTime, Nullable: true},
		{Name: "timezone", Type: field.TypeString, Default: "UTC"},
		{Name: "planning_total_usage", Type: field.TypeJSON, Nullable: true},
		{Name: "planning_total_cost_usd", Type: field.TypeString, Nullable: true},
		{Name: "planning_attempts", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DagsTable holds the schema information for the "dags" table.
	DagsTable = &schema.Table{
		Name:       "dags",
		Columns:    DagsColumns,
		PrimaryKey: []*schema.Column{DagsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "dag_status",
				Unique:  false,
				Columns: []*schema.Column{DagsColumns[1]},
			},
			{
				Name:    "dag_agent_name",
				Unique:  false,
				Columns: []*schema.Column{DagsColumns[4]},
			},
			{
				Name:    "dag_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{DagsColumns[1], DagsColumns[13]},
			},
			{
				Name:    "dag_schedule_active",
				Unique:  false,
				Columns: []*schema.Column{DagsColumns[7]},
				Annotation: &entsql.IndexAnnotation{
					Where: "schedule_active AND cron_schedule IS NOT NULL",
				},
			},
		},
	}
	// DagExecutionsColumns holds the columns for the "dag_executions" table.
	DagExecutionsColumns = []*schema.Column{
		{Name: "execution_id", Type: field.TypeString, Unique: true},
		{Name: "original_request", Type: field.TypeString, Size: 2147483647},
		{Name: "primary_intent", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "waiting", "completed", "failed", "partial", "suspended"}, Default: "pending"},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "total_tasks", Type: field.TypeInt, Default: 0},
		{Name: "completed_tasks", Type: field.TypeInt, Default: 0},
		{Name: "failed_tasks", Type: field.TypeInt, Default: 0},
		{Name: "waiting_tasks", Type: field.TypeInt, Default: 0},
		{Name: "final_result", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "synthesis_result", Type: field.TypeJSON, Nullable: true},
		{Name: "suspended_reason", Type: field.TypeString, Nullable: true},
		{Name: "suspended_at", Type: field.TypeTime, Nullable: true},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "last_retry_at", Type: field.TypeTime, Nullable: true},
		{Name: "total_usage", Type: field.TypeJSON, Nullable: true},
		{Name: "total_cost_usd", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "dag_id", Type: field.TypeString, Nullable: true},
	}
	// DagExecutionsTable holds the schema information for the "dag_executions" table.
	DagExecutionsTable = &schema.Table{
		Name:       "dag_executions",
		Columns:    DagExecutionsColumns,
		PrimaryKey: []*schema.Column{DagExecutionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "dag_executions_dags_executions",
				Columns:    []*schema.Column{DagExecutionsColumns[21]},
				RefColumns: []*schema.Column{DagsColumns[0]},
				OnDelete:   schema.Restrict,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "dagexecution_status",
				Unique:  false,
				Columns: []*schema.Column{DagExecutionsColumns[3]},
			},
			{
				Name:    "dagexecution_dag_id",
				Unique:  false,
				Columns: []*schema.Column{DagExecutionsColumns[21]},
			},
			{
				Name:    "dagexecution_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{DagExecutionsColumns[3], DagExecutionsColumns[19]},
			},
			{
				Name:    "dagexecution_status_completed_at",
				Unique:  false,
				Columns: []*schema.Column{DagExecutionsColumns[3], DagExecutionsColumns[5]},
			},
		},
	}
	// StopRequestsColumns holds the columns for the "stop_requests" table.
	StopRequestsColumns = []*schema.Column{
		{Name: "stop_request_id", Type: field.TypeString, Unique: true},
		{Name: "dag_id", Type: field.TypeString, Nullable: true},
		{Name: "execution_id", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"requested", "handled"}, Default: "requested"},
		{Name: "requested_at", Type: field.TypeTime},
		{Name: "handled_at", Type: field.TypeTime, Nullable: true},
	}
	// StopRequestsTable holds the schema information for the "stop_requests" table.
	StopRequestsTable = &schema.Table{
		Name:       "stop_requests",
		Columns:    StopRequestsColumns,
		PrimaryKey: []*schema.Column{StopRequestsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "stoprequest_dag_id_status",
				Unique:  false,
				Columns: []*schema.Column{StopRequestsColumns[1], StopRequestsColumns[3]},
			},
			{
				Name:    "stoprequest_execution_id_status",
				Unique:  false,
				Columns: []*schema.Column{StopRequestsColumns[2], StopRequestsColumns[3]},
			},
			{
				Name:    "stoprequest_dag_id",
				Unique:  true,
				Columns: []*schema.Column{StopRequestsColumns[1]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status = 'requested' AND dag_id IS NOT NULL",
				},
			},
			{
				Name:    "stoprequest_execution_id",
				Unique:  true,
				Columns: []*schema.Column{StopRequestsColumns[2]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status = 'requested' AND execution_id IS NOT NULL",
				},
			},
		},
	}
	// SubStepsColumns holds the columns for the "sub_steps" table.
	SubStepsColumns = []*schema.Column{
		{Name: "sub_step_id", Type: field.TypeString, Unique: true},
		{Name: "task_id", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "thought", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "action_type", Type: field.TypeEnum, Enums: []string{"tool", "inference"}},
		{Name: "tool_or_prompt_name", Type: field.TypeString},
		{Name: "tool_or_prompt_params", Type: field.TypeJSON, Nullable: true},
		{Name: "dependencies", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "waiting", "completed", "failed", "deleted"}, Default: "pending"},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "error", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "usage", Type: field.TypeJSON, Nullable: true},
		{Name: "cost_usd", Type: field.TypeString, Nullable: true},
		{Name: "generation_stats", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "execution_id", Type: field.TypeString},
	}
	// SubStepsTable holds the schema information for the "sub_steps" table.
	SubStepsTable = &schema.Table{
		Name:       "sub_steps",
		Columns:    SubStepsColumns,
		PrimaryKey: []*schema.Column{SubStepsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "sub_steps_dag_executions_sub_steps",
				Columns:    []*schema.Column{SubStepsColumns[19]},
				RefColumns: []*schema.Column{DagExecutionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "substep_execution_id_task_id",
				Unique:  true,
				Columns: []*schema.Column{SubStepsColumns[19], SubStepsColumns[1]},
			},
			{
				Name:    "substep_status",
				Unique:  false,
				Columns: []*schema.Column{SubStepsColumns[8]},
			},
			{
				Name:    "substep_execution_id_status",
				Unique:  false,
				Columns: []*schema.Column{SubStepsColumns[19], SubStepsColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentsTable,
		DagsTable,
		DagExecutionsTable,
		StopRequestsTable,
		SubStepsTable,
	}
)

func init() {
	DagExecutionsTable.ForeignKeys[0].RefTable = DagsTable
	StopRequestsTable.Annotation = &entsql.Annotation{}
	StopRequestsTable.Annotation.Checks = map[string]string{
		"stop_request_target": "(dag_id IS NULL) != (execution_id IS NULL)",
	}
	SubStepsTable.ForeignKeys[0].RefTable = DagExecutionsTable
}
