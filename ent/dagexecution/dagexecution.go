// Code generated by ent, DO NOT EDIT.

package dagexecution

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the dagexecution type in the database.
	Label = "dag_execution"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "execution_id"
	// FieldDagID holds the string denoting the dag_id field in the database.
	FieldDagID = "dag_id"
	// FieldOriginalRequest holds the string denoting the original_request field in the database.
	FieldOriginalRequest = "original_request"
	// FieldPrimaryIntent holds the string denoting the primary_intent field in the database.
	FieldPrimaryIntent = "primary_intent"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldDurationMs holds the string denoting the duration_ms field in the database.
	FieldDurationMs = "duration_ms"
	// FieldTotalTasks holds the string denoting the total_tasks field in the database.
	FieldTotalTasks = "total_tasks"
	// FieldCompletedTasks holds the string denoting the completed_tasks field in the database.
	FieldCompletedTasks = "completed_tasks"
	// FieldFailedTasks holds the string denoting the failed_tasks field in the database.
	FieldFailedTasks = "failed_tasks"
	// FieldWaitingTasks holds the string denoting the waiting_tasks field in the database.
	FieldWaitingTasks = "waiting_tasks"
	// FieldFinalResult holds the string denoting the final_result field in the database.
	FieldFinalResult = "final_result"
	// FieldSynthesisResult holds the string denoting the synthesis_result field in the database.
	FieldSynthesisResult = "synthesis_result"
	// FieldSuspendedReason holds the string denoting the suspended_reason field in the database.
	FieldSuspendedReason = "suspended_reason"
	// FieldSuspendedAt holds the string denoting the suspended_at field in the database.
	FieldSuspendedAt = "suspended_at"
	// FieldRetryCount holds the string denoting the retry_count field in the database.
	FieldRetryCount = "retry_count"
	// FieldLastRetryAt holds the string denoting the last_retry_at field in the database.
	FieldLastRetryAt = "last_retry_at"
	// FieldTotalUsage holds the string denoting the total_usage field in the database.
	FieldTotalUsage = "total_usage"
	// FieldTotalCostUsd holds the string denoting the total_cost_usd field in the database.
	FieldTotalCostUsd = "total_cost_usd"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeDag holds the string denoting the dag edge name in mutations.
	EdgeDag = "dag"
	// EdgeSubSteps holds the string denoting the sub_steps edge name in mutations.
	EdgeSubSteps = "sub_steps"
	// DagFieldID holds the string denoting the ID field of the Dag.
	DagFieldID = "dag_id"
	// SubStepFieldID holds the string denoting the ID field of the SubStep.
	SubStepFieldID = "sub_step_id"
	// Table holds the table name of the dagexecution in the database.
	Table = "dag_executions"
	// DagTable is the table that holds the dag relation/edge.
	DagTable = "dag_executions"
	// DagInverseTable is the table name for the Dag entity.
	// It exists in this package in order to avoid circular dependency with the "dag" package.
	DagInverseTable = "dags"
	// DagColumn is the table column denoting the dag relation/edge.
	DagColumn = "dag_id"
	// SubStepsTable is the table that holds the sub_steps relation/edge.
	SubStepsTable = "sub_steps"
	// SubStepsInverseTable is the table name for the SubStep entity.
	// It exists in this package in order to avoid circular dependency with the "substep" package.
	SubStepsInverseTable = "sub_steps"
	// SubStepsColumn is the table column denoting the sub_steps relation/edge.
	SubStepsColumn = "execution_id"
)

// Columns holds all SQL columns for dagexecution fields.
var Columns = []string{
	FieldID,
	FieldDagID,
	FieldOriginalRequest,
	FieldPrimaryIntent,
	FieldStatus,
	FieldStartedAt,
	FieldCompletedAt,
	FieldDurationMs,
	FieldTotalTasks,
	FieldCompletedTasks,
	FieldFailedTasks,
	FieldWaitingTasks,
	FieldFinalResult,
	FieldSynthesisResult,
	FieldSuspendedReason,
	FieldSuspendedAt,
	FieldRetryCount,
	FieldLastRetryAt,
	FieldTotalUsage,
	FieldTotalCostUsd,
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
	// DefaultTotalTasks holds the default value on creation for the "total_tasks" field.
	DefaultTotalTasks int
	// DefaultCompletedTasks holds the default value on creation for the "completed_tasks" field.
	DefaultCompletedTasks int
	// DefaultFailedTasks holds the default value on creation for the "failed_tasks" field.
	DefaultFailedTasks int
	// DefaultWaitingTasks holds the default value on creation for the "waiting_tasks" field.
	DefaultWaitingTasks int
	// DefaultRetryCount holds the default value on creation for the "retry_count" field.
	DefaultRetryCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusWaiting   Status = "waiting"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusPartial   Status = "partial"
	StatusSuspended Status = "suspended"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusRunning, StatusWaiting, StatusCompleted, StatusFailed, StatusPartial, StatusSuspended:
		return nil
	default:
		return fmt.Errorf("dagexecution: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the DagExecution queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDagID orders the results by the dag_id field.
func ByDagID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDagID, opts...).ToFunc()
}

// ByOriginalRequest orders the results by the original_request field.
func ByOriginalRequest(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginalRequest, opts...).ToFunc()
}

// ByPrimaryIntent orders the results by the primary_intent field.
func ByPrimaryIntent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrimaryIntent, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByDurationMs orders the results by the duration_ms field.
func ByDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMs, opts...).ToFunc()
}

// ByTotalTasks orders the results by the total_tasks field.
func ByTotalTasks(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalTasks, opts...).ToFunc()
}

// ByCompletedTasks orders the results by the completed_tasks field.
func ByCompletedTasks(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedTasks, opts...).ToFunc()
}

// ByFailedTasks orders the results by the failed_tasks field.
func ByFailedTasks(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailedTasks, opts...).ToFunc()
}

// ByWaitingTasks orders the results by the waiting_tasks field.
func ByWaitingTasks(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWaitingTasks, opts...).ToFunc()
}

// ByFinalResult orders the results by the final_result field.
func ByFinalResult(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalResult, opts...).ToFunc()
}

// BySuspendedReason orders the results by the suspended_reason field.
func BySuspendedReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuspendedReason, opts...).ToFunc()
}

// BySuspendedAt orders the results by the suspended_at field.
func BySuspendedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuspendedAt, opts...).ToFunc()
}

// ByRetryCount orders the results by the retry_count field.
func ByRetryCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetryCount, opts...).ToFunc()
}

// ByLastRetryAt orders the results by the last_retry_at field.
func ByLastRetryAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastRetryAt, opts...).ToFunc()
}

// ByTotalCostUsd orders the results by the total_cost_usd field.
func ByTotalCostUsd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalCostUsd, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByDagField orders the results by dag field.
func ByDagField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDagStep(), sql.OrderByField(field, opts...))
	}
}

// BySubStepsCount orders the results by sub_steps count.
func BySubStepsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSubStepsStep(), opts...)
	}
}

// BySubSteps orders the results by sub_steps terms.
func BySubSteps(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSubStepsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newDagStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DagInverseTable, DagFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DagTable, DagColumn),
	)
}
func newSubStepsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SubStepsInverseTable, SubStepFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SubStepsTable, SubStepsColumn),
	)
}
