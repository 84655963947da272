// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/taskdag/taskdag/ent/dag"
	"github.com/taskdag/taskdag/ent/dagexecution"
)

// DagExecution is the model entity for the DagExecution schema.
type DagExecution struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Null for ad-hoc plan runs
	DagID *string `json:"dag_id,omitempty"`
	// OriginalRequest holds the value of the "original_request" field.
	OriginalRequest string `json:"original_request,omitempty"`
	// PrimaryIntent holds the value of the "primary_intent" field.
	PrimaryIntent string `json:"primary_intent,omitempty"`
	// Derived from sub-step counts except for stop (pending) and suspension
	Status dagexecution.Status `json:"status,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// DurationMs holds the value of the "duration_ms" field.
	DurationMs *int64 `json:"duration_ms,omitempty"`
	// TotalTasks holds the value of the "total_tasks" field.
	TotalTasks int `json:"total_tasks,omitempty"`
	// CompletedTasks holds the value of the "completed_tasks" field.
	CompletedTasks int `json:"completed_tasks,omitempty"`
	// FailedTasks holds the value of the "failed_tasks" field.
	FailedTasks int `json:"failed_tasks,omitempty"`
	// WaitingTasks holds the value of the "waiting_tasks" field.
	WaitingTasks int `json:"waiting_tasks,omitempty"`
	// Validated synthesis markdown
	FinalResult *string `json:"final_result,omitempty"`
	// Raw synthesis output plus timing
	SynthesisResult map[string]interface{} `json:"synthesis_result,omitempty"`
	// SuspendedReason holds the value of the "suspended_reason" field.
	SuspendedReason *string `json:"suspended_reason,omitempty"`
	// SuspendedAt holds the value of the "suspended_at" field.
	SuspendedAt *time.Time `json:"suspended_at,omitempty"`
	// RetryCount holds the value of the "retry_count" field.
	RetryCount int `json:"retry_count,omitempty"`
	// LastRetryAt holds the value of the "last_retry_at" field.
	LastRetryAt *time.Time `json:"last_retry_at,omitempty"`
	// Token totals across all sub-steps including synthesis
	TotalUsage map[string]interface{} `json:"total_usage,omitempty"`
	// Decimal string, never a float
	TotalCostUsd *string `json:"total_cost_usd,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DagExecutionQuery when eager-loading is set.
	Edges        DagExecutionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DagExecutionEdges holds the relations/edges for other nodes in the graph.
type DagExecutionEdges struct {
	// Dag holds the value of the dag edge.
	Dag *Dag `json:"dag,omitempty"`
	// SubSteps holds the value of the sub_steps edge.
	SubSteps []*SubStep `json:"sub_steps,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// DagOrErr returns the Dag value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DagExecutionEdges) DagOrErr() (*Dag, error) {
	if e.Dag != nil {
		return e.Dag, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: dag.Label}
	}
	return nil, &NotLoadedError{edge: "dag"}
}

// SubStepsOrErr returns the SubSteps value or an error if the edge
// was not loaded in eager-loading.
func (e DagExecutionEdges) SubStepsOrErr() ([]*SubStep, error) {
	if e.loadedTypes[1] {
		return e.SubSteps, nil
	}
	return nil, &NotLoadedError{edge: "sub_steps"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DagExecution) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case dagexecution.FieldSynthesisResult, dagexecution.FieldTotalUsage:
			values[i] = new([]byte)
		case dagexecution.FieldDurationMs, dagexecution.FieldTotalTasks, dagexecution.FieldCompletedTasks, dagexecution.FieldFailedTasks, dagexecution.FieldWaitingTasks, dagexecution.FieldRetryCount:
			values[i] = new(sql.NullInt64)
		case dagexecution.FieldID, dagexecution.FieldDagID, dagexecution.FieldOriginalRequest, dagexecution.FieldPrimaryIntent, dagexecution.FieldStatus, dagexecution.FieldFinalResult, dagexecution.FieldSuspendedReason, dagexecution.FieldTotalCostUsd:
			values[i] = new(sql.NullString)
		case dagexecution.FieldStartedAt, dagexecution.FieldCompletedAt, dagexecution.FieldSuspendedAt, dagexecution.FieldLastRetryAt, dagexecution.FieldCreatedAt, dagexecution.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DagExecution fields.
func (_m *DagExecution) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case dagexecution.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case dagexecution.FieldDagID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dag_id", values[i])
			} else if value.Valid {
				_m.DagID = new(string)
				*_m.DagID = value.String
			}
		case dagexecution.FieldOriginalRequest:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field original_request", values[i])
			} else if value.Valid {
				_m.OriginalRequest = value.String
			}
		case dagexecution.FieldPrimaryIntent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field primary_intent", values[i])
			} else if value.Valid {
				_m.PrimaryIntent = value.String
			}
		case dagexecution.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = dagexecution.Status(value.String)
			}
		case dagexecution.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case dagexecution.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case dagexecution.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = new(int64)
				*_m.DurationMs = value.Int64
			}
		case dagexecution.FieldTotalTasks:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_tasks", values[i])
			} else if value.Valid {
				_m.TotalTasks = int(value.Int64)
			}
		case dagexecution.FieldCompletedTasks:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field completed_tasks", values[i])
			} else if value.Valid {
				_m.CompletedTasks = int(value.Int64)
			}
		case dagexecution.FieldFailedTasks:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field failed_tasks", values[i])
			} else if value.Valid {
				_m.FailedTasks = int(value.Int64)
			}
		case dagexecution.FieldWaitingTasks:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field waiting_tasks", values[i])
			} else if value.Valid {
				_m.WaitingTasks = int(value.Int64)
			}
		case dagexecution.FieldFinalResult:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field final_result", values[i])
			} else if value.Valid {
				_m.FinalResult = new(string)
				*_m.FinalResult = value.String
			}
		case dagexecution.FieldSynthesisResult:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field synthesis_result", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SynthesisResult); err != nil {
					return fmt.Errorf("unmarshal field synthesis_result: %w", err)
				}
			}
		case dagexecution.FieldSuspendedReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field suspended_reason", values[i])
			} else if value.Valid {
				_m.SuspendedReason = new(string)
				*_m.SuspendedReason = value.String
			}
		case dagexecution.FieldSuspendedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field suspended_at", values[i])
			} else if value.Valid {
				_m.SuspendedAt = new(time.Time)
				*_m.SuspendedAt = value.Time
			}
		case dagexecution.FieldRetryCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field retry_count", values[i])
			} else if value.Valid {
				_m.RetryCount = int(value.Int64)
			}
		case dagexecution.FieldLastRetryAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_retry_at", values[i])
			} else if value.Valid {
				_m.LastRetryAt = new(time.Time)
				*_m.LastRetryAt = value.Time
			}
		case dagexecution.FieldTotalUsage:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field total_usage", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TotalUsage); err != nil {
					return fmt.Errorf("unmarshal field total_usage: %w", err)
				}
			}
		case dagexecution.FieldTotalCostUsd:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field total_cost_usd", values[i])
			} else if value.Valid {
				_m.TotalCostUsd = new(string)
				*_m.TotalCostUsd = value.String
			}
		case dagexecution.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case dagexecution.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DagExecution.
// This includes values selected through modifiers, order, etc.
func (_m *DagExecution) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDag queries the "dag" edge of the DagExecution entity.
func (_m *DagExecution) QueryDag() *DagQuery {
	return NewDagExecutionClient(_m.config).QueryDag(_m)
}

// QuerySubSteps queries the "sub_steps" edge of the DagExecution entity.
func (_m *DagExecution) QuerySubSteps() *SubStepQuery {
	return NewDagExecutionClient(_m.config).QuerySubSteps(_m)
}

// Update returns a builder for updating this DagExecution.
// Note that you need to call DagExecution.Unwrap() before calling this method if this DagExecution
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DagExecution) Update() *DagExecutionUpdateOne {
	return NewDagExecutionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DagExecution entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DagExecution) Unwrap() *DagExecution {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DagExecution is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DagExecution) String() string {
	var builder strings.Builder
	builder.WriteString("DagExecution(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.DagID; v != nil {
		builder.WriteString("dag_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("original_request=")
	builder.WriteString(_m.OriginalRequest)
	builder.WriteString(", ")
	builder.WriteString("primary_intent=")
	builder.WriteString(_m.PrimaryIntent)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DurationMs; v != nil {
		builder.WriteString("duration_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("total_tasks=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalTasks))
	builder.WriteString(", ")
	builder.WriteString("completed_tasks=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletedTasks))
	builder.WriteString(", ")
	builder.WriteString("failed_tasks=")
	builder.WriteString(fmt.Sprintf("%v", _m.FailedTasks))
	builder.WriteString(", ")
	builder.WriteString("waiting_tasks=")
	builder.WriteString(fmt.Sprintf("%v", _m.WaitingTasks))
	builder.WriteString(", ")
	if v := _m.FinalResult; v != nil {
		builder.WriteString("final_result=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("synthesis_result=")
	builder.WriteString(fmt.Sprintf("%v", _m.SynthesisResult))
	builder.WriteString(", ")
	if v := _m.SuspendedReason; v != nil {
		builder.WriteString("suspended_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SuspendedAt; v != nil {
		builder.WriteString("suspended_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("retry_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RetryCount))
	builder.WriteString(", ")
	if v := _m.LastRetryAt; v != nil {
		builder.WriteString("last_retry_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("total_usage=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalUsage))
	builder.WriteString(", ")
	if v := _m.TotalCostUsd; v != nil {
		builder.WriteString("total_cost_usd=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DagExecutions is a parsable slice of DagExecution.
type DagExecutions []*DagExecution
