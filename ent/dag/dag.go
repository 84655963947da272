// Code generated by ent, DO NOT EDIT.

package dag

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the dag type in the database.
	Label = "dag"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "dag_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldResult holds the string denoting the result field in the database.
	FieldResult = "result"
	// FieldParams holds the string denoting the params field in the database.
	FieldParams = "params"
	// FieldAgentName holds the string denoting the agent_name field in the database.
	FieldAgentName = "agent_name"
	// FieldDagTitle holds the string denoting the dag_title field in the database.
	FieldDagTitle = "dag_title"
	// FieldCronSchedule holds the string denoting the cron_schedule field in the database.
	FieldCronSchedule = "cron_schedule"
	// FieldScheduleActive holds the string denoting the schedule_active field in the database.
	FieldScheduleActive = "schedule_active"
	// FieldLastRunAt holds the string denoting the last_run_at field in the database.
	FieldLastRunAt = "last_run_at"
	// FieldTimezone holds the string denoting the timezone field in the database.
	FieldTimezone = "timezone"
	// FieldPlanningTotalUsage holds the string denoting the planning_total_usage field in the database.
	FieldPlanningTotalUsage = "planning_total_usage"
	// FieldPlanningTotalCostUsd holds the string denoting the planning_total_cost_usd field in the database.
	FieldPlanningTotalCostUsd = "planning_total_cost_usd"
	// FieldPlanningAttempts holds the string denoting the planning_attempts field in the database.
	FieldPlanningAttempts = "planning_attempts"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeExecutions holds the string denoting the executions edge name in mutations.
	EdgeExecutions = "executions"
	// DagExecutionFieldID holds the string denoting the ID field of the DagExecution.
	DagExecutionFieldID = "execution_id"
	// Table holds the table name of the dag in the database.
	Table = "dags"
	// ExecutionsTable is the table that holds the executions relation/edge.
	ExecutionsTable = "dag_executions"
	// ExecutionsInverseTable is the table name for the DagExecution entity.
	// It exists in this package in order to avoid circular dependency with the "dagexecution" package.
	ExecutionsInverseTable = "dag_executions"
	// ExecutionsColumn is the table column denoting the executions relation/edge.
	ExecutionsColumn = "dag_id"
)

// Columns holds all SQL columns for dag fields.
var Columns = []string{
	FieldID,
	FieldStatus,
	FieldResult,
	FieldParams,
	FieldAgentName,
	FieldDagTitle,
	FieldCronSchedule,
	FieldScheduleActive,
	FieldLastRunAt,
	FieldTimezone,
	FieldPlanningTotalUsage,
	FieldPlanningTotalCostUsd,
	FieldPlanningAttempts,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultScheduleActive holds the default value on creation for the "schedule_active" field.
	DefaultScheduleActive bool
	// DefaultTimezone holds the default value on creation for the "timezone" field.
	DefaultTimezone string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// Status values.
const (
	StatusSuccess         Status = "success"
	StatusPending         Status = "pending"
	StatusValidationError Status = "validation_error"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusSuccess, StatusPending, StatusValidationError:
		return nil
	default:
		return fmt.Errorf("dag: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Dag queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByAgentName orders the results by the agent_name field.
func ByAgentName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentName, opts...).ToFunc()
}

// ByDagTitle orders the results by the dag_title field.
func ByDagTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDagTitle, opts...).ToFunc()
}

// ByCronSchedule orders the results by the cron_schedule field.
func ByCronSchedule(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCronSchedule, opts...).ToFunc()
}

// ByScheduleActive orders the results by the schedule_active field.
func ByScheduleActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScheduleActive, opts...).ToFunc()
}

// ByLastRunAt orders the results by the last_run_at field.
func ByLastRunAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastRunAt, opts...).ToFunc()
}

// ByTimezone orders the results by the timezone field.
func ByTimezone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimezone, opts...).ToFunc()
}

// ByPlanningTotalCostUsd orders the results by the planning_total_cost_usd field.
func ByPlanningTotalCostUsd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanningTotalCostUsd, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByExecutionsCount orders the results by executions count.
func ByExecutionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newExecutionsStep(), opts...)
	}
}

// ByExecutions orders the results by executions terms.
func ByExecutions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExecutionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newExecutionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExecutionsInverseTable, DagExecutionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ExecutionsTable, ExecutionsColumn),
	)
}
