// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/taskdag/taskdag/ent/dagexecution"
	"github.com/taskdag/taskdag/ent/substep"
)

// SubStep is the model entity for the SubStep schema.
type SubStep struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ExecutionID holds the value of the "execution_id" field.
	ExecutionID string `json:"execution_id,omitempty"`
	// Mirrors the plan id ('001', ...) or '__SYNTHESIS__'
	TaskID string `json:"task_id,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Thought holds the value of the "thought" field.
	Thought string `json:"thought,omitempty"`
	// ActionType holds the value of the "action_type" field.
	ActionType substep.ActionType `json:"action_type,omitempty"`
	// ToolOrPromptName holds the value of the "tool_or_prompt_name" field.
	ToolOrPromptName string `json:"tool_or_prompt_name,omitempty"`
	// ToolOrPromptParams holds the value of the "tool_or_prompt_params" field.
	ToolOrPromptParams map[string]interface{} `json:"tool_or_prompt_params,omitempty"`
	// Dependencies holds the value of the "dependencies" field.
	Dependencies []string `json:"dependencies,omitempty"`
	// Status holds the value of the "status" field.
	Status substep.Status `json:"status,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// DurationMs holds the value of the "duration_ms" field.
	DurationMs *int64 `json:"duration_ms,omitempty"`
	// Any JSON value the task produced
	Result json.RawMessage `json:"result,omitempty"`
	// Error holds the value of the "error" field.
	Error *string `json:"error,omitempty"`
	// Usage holds the value of the "usage" field.
	Usage map[string]interface{} `json:"usage,omitempty"`
	// Decimal string, never a float
	CostUsd *string `json:"cost_usd,omitempty"`
	// GenerationStats holds the value of the "generation_stats" field.
	GenerationStats map[string]interface{} `json:"generation_stats,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SubStepQuery when eager-loading is set.
	Edges        SubStepEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SubStepEdges holds the relations/edges for other nodes in the graph.
type SubStepEdges struct {
	// Execution holds the value of the execution edge.
	Execution *DagExecution `json:"execution,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ExecutionOrErr returns the Execution value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SubStepEdges) ExecutionOrErr() (*DagExecution, error) {
	if e.Execution != nil {
		return e.Execution, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: dagexecution.Label}
	}
	return nil, &NotLoadedError{edge: "execution"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SubStep) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case substep.FieldToolOrPromptParams, substep.FieldDependencies, substep.FieldResult, substep.FieldUsage, substep.FieldGenerationStats:
			values[i] = new([]byte)
		case substep.FieldDurationMs:
			values[i] = new(sql.NullInt64)
		case substep.FieldID, substep.FieldExecutionID, substep.FieldTaskID, substep.FieldDescription, substep.FieldThought, substep.FieldActionType, substep.FieldToolOrPromptName, substep.FieldStatus, substep.FieldError, substep.FieldCostUsd:
			values[i] = new(sql.NullString)
		case substep.FieldStartedAt, substep.FieldCompletedAt, substep.FieldCreatedAt, substep.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SubStep fields.
func (_m *SubStep) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case substep.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case substep.FieldExecutionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field execution_id", values[i])
			} else if value.Valid {
				_m.ExecutionID = value.String
			}
		case substep.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case substep.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case substep.FieldThought:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field thought", values[i])
			} else if value.Valid {
				_m.Thought = value.String
			}
		case substep.FieldActionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action_type", values[i])
			} else if value.Valid {
				_m.ActionType = substep.ActionType(value.String)
			}
		case substep.FieldToolOrPromptName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tool_or_prompt_name", values[i])
			} else if value.Valid {
				_m.ToolOrPromptName = value.String
			}
		case substep.FieldToolOrPromptParams:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tool_or_prompt_params", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ToolOrPromptParams); err != nil {
					return fmt.Errorf("unmarshal field tool_or_prompt_params: %w", err)
				}
			}
		case substep.FieldDependencies:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field dependencies", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Dependencies); err != nil {
					return fmt.Errorf("unmarshal field dependencies: %w", err)
				}
			}
		case substep.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = substep.Status(value.String)
			}
		case substep.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case substep.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case substep.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = new(int64)
				*_m.DurationMs = value.Int64
			}
		case substep.FieldResult:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field result", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Result); err != nil {
					return fmt.Errorf("unmarshal field result: %w", err)
				}
			}
		case substep.FieldError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error", values[i])
			} else if value.Valid {
				_m.Error = new(string)
				*_m.Error = value.String
			}
		case substep.FieldUsage:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field usage", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Usage); err != nil {
					return fmt.Errorf("unmarshal field usage: %w", err)
				}
			}
		case substep.FieldCostUsd:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cost_usd", values[i])
			} else if value.Valid {
				_m.CostUsd = new(string)
				*_m.CostUsd = value.String
			}
		case substep.FieldGenerationStats:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field generation_stats", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.GenerationStats); err != nil {
					return fmt.Errorf("unmarshal field generation_stats: %w", err)
				}
			}
		case substep.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case substep.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the SubStep.
// This includes values selected through modifiers, order, etc.
func (_m *SubStep) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryExecution queries the "execution" edge of the SubStep entity.
func (_m *SubStep) QueryExecution() *DagExecutionQuery {
	return NewSubStepClient(_m.config).QueryExecution(_m)
}

// Update returns a builder for updating this SubStep.
// Note that you need to call SubStep.Unwrap() before calling this method if this SubStep
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SubStep) Update() *SubStepUpdateOne {
	return NewSubStepClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SubStep entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SubStep) Unwrap() *SubStep {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SubStep is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SubStep) String() string {
	var builder strings.Builder
	builder.WriteString("SubStep(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("execution_id=")
	builder.WriteString(_m.ExecutionID)
	builder.WriteString(", ")
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("thought=")
	builder.WriteString(_m.Thought)
	builder.WriteString(", ")
	builder.WriteString("action_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActionType))
	builder.WriteString(", ")
	builder.WriteString("tool_or_prompt_name=")
	builder.WriteString(_m.ToolOrPromptName)
	builder.WriteString(", ")
	builder.WriteString("tool_or_prompt_params=")
	builder.WriteString(fmt.Sprintf("%v", _m.ToolOrPromptParams))
	builder.WriteString(", ")
	builder.WriteString("dependencies=")
	builder.WriteString(fmt.Sprintf("%v", _m.Dependencies))
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
	builder.WriteString("result=")
	builder.WriteString(fmt.Sprintf("%v", _m.Result))
	builder.WriteString(", ")
	if v := _m.Error; v != nil {
		builder.WriteString("error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("usage=")
	builder.WriteString(fmt.Sprintf("%v", _m.Usage))
	builder.WriteString(", ")
	if v := _m.CostUsd; v != nil {
		builder.WriteString("cost_usd=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("generation_stats=")
	builder.WriteString(fmt.Sprintf("%v", _m.GenerationStats))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SubSteps is a parsable slice of SubStep.
type SubSteps []*SubStep
