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
)

// Dag is the model entity for the Dag schema.
type Dag struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// 'pending' means awaiting clarification
	Status dag.Status `json:"status,omitempty"`
	// The structured plan, or {raw_response} for rejected output
	Result map[string]interface{} `json:"result,omitempty"`
	// The planning inputs that produced this DAG
	Params map[string]interface{} `json:"params,omitempty"`
	// AgentName holds the value of the "agent_name" field.
	AgentName string `json:"agent_name,omitempty"`
	// Short label from the title-master side call
	DagTitle *string `json:"dag_title,omitempty"`
	// CronSchedule holds the value of the "cron_schedule" field.
	CronSchedule *string `json:"cron_schedule,omitempty"`
	// ScheduleActive holds the value of the "schedule_active" field.
	ScheduleActive bool `json:"schedule_active,omitempty"`
	// LastRunAt holds the value of the "last_run_at" field.
	LastRunAt *time.Time `json:"last_run_at,omitempty"`
	// Timezone holds the value of the "timezone" field.
	Timezone string `json:"timezone,omitempty"`
	// Token totals across all planning attempts
	PlanningTotalUsage map[string]interface{} `json:"planning_total_usage,omitempty"`
	// Decimal string, never a float
	PlanningTotalCostUsd *string `json:"planning_total_cost_usd,omitempty"`
	// One entry per LLM call with reason, usage, cost, error
	PlanningAttempts []map[string]interface{} `json:"planning_attempts,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DagQuery when eager-loading is set.
	Edges        DagEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DagEdges holds the relations/edges for other nodes in the graph.
type DagEdges struct {
	// Executions holds the value of the executions edge.
	Executions []*DagExecution `json:"executions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ExecutionsOrErr returns the Executions value or an error if the edge
// was not loaded in eager-loading.
func (e DagEdges) ExecutionsOrErr() ([]*DagExecution, error) {
	if e.loadedTypes[0] {
		return e.Executions, nil
	}
	return nil, &NotLoadedError{edge: "executions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Dag) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case dag.FieldResult, dag.FieldParams, dag.FieldPlanningTotalUsage, dag.FieldPlanningAttempts:
			values[i] = new([]byte)
		case dag.FieldScheduleActive:
			values[i] = new(sql.NullBool)
		case dag.FieldID, dag.FieldStatus, dag.FieldAgentName, dag.FieldDagTitle, dag.FieldCronSchedule, dag.FieldTimezone, dag.FieldPlanningTotalCostUsd:
			values[i] = new(sql.NullString)
		case dag.FieldLastRunAt, dag.FieldCreatedAt, dag.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Dag fields.
func (_m *Dag) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case dag.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case dag.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = dag.Status(value.String)
			}
		case dag.FieldResult:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field result", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Result); err != nil {
					return fmt.Errorf("unmarshal field result: %w", err)
				}
			}
		case dag.FieldParams:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field params", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Params); err != nil {
					return fmt.Errorf("unmarshal field params: %w", err)
				}
			}
		case dag.FieldAgentName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_name", values[i])
			} else if value.Valid {
				_m.AgentName = value.String
			}
		case dag.FieldDagTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dag_title", values[i])
			} else if value.Valid {
				_m.DagTitle = new(string)
				*_m.DagTitle = value.String
			}
		case dag.FieldCronSchedule:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cron_schedule", values[i])
			} else if value.Valid {
				_m.CronSchedule = new(string)
				*_m.CronSchedule = value.String
			}
		case dag.FieldScheduleActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field schedule_active", values[i])
			} else if value.Valid {
				_m.ScheduleActive = value.Bool
			}
		case dag.FieldLastRunAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_run_at", values[i])
			} else if value.Valid {
				_m.LastRunAt = new(time.Time)
				*_m.LastRunAt = value.Time
			}
		case dag.FieldTimezone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field timezone", values[i])
			} else if value.Valid {
				_m.Timezone = value.String
			}
		case dag.FieldPlanningTotalUsage:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field planning_total_usage", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PlanningTotalUsage); err != nil {
					return fmt.Errorf("unmarshal field planning_total_usage: %w", err)
				}
			}
		case dag.FieldPlanningTotalCostUsd:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field planning_total_cost_usd", values[i])
			} else if value.Valid {
				_m.PlanningTotalCostUsd = new(string)
				*_m.PlanningTotalCostUsd = value.String
			}
		case dag.FieldPlanningAttempts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field planning_attempts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PlanningAttempts); err != nil {
					return fmt.Errorf("unmarshal field planning_attempts: %w", err)
				}
			}
		case dag.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case dag.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Dag.
// This includes values selected through modifiers, order, etc.
func (_m *Dag) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryExecutions queries the "executions" edge of the Dag entity.
func (_m *Dag) QueryExecutions() *DagExecutionQuery {
	return NewDagClient(_m.config).QueryExecutions(_m)
}

// Update returns a builder for updating this Dag.
// Note that you need to call Dag.Unwrap() before calling this method if this Dag
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Dag) Update() *DagUpdateOne {
	return NewDagClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Dag entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Dag) Unwrap() *Dag {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Dag is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Dag) String() string {
	var builder strings.Builder
	builder.WriteString("Dag(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("result=")
	builder.WriteString(fmt.Sprintf("%v", _m.Result))
	builder.WriteString(", ")
	builder.WriteString("params=")
	builder.WriteString(fmt.Sprintf("%v", _m.Params))
	builder.WriteString(", ")
	builder.WriteString("agent_name=")
	builder.WriteString(_m.AgentName)
	builder.WriteString(", ")
	if v := _m.DagTitle; v != nil {
		builder.WriteString("dag_title=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CronSchedule; v != nil {
		builder.WriteString("cron_schedule=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("schedule_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScheduleActive))
	builder.WriteString(", ")
	if v := _m.LastRunAt; v != nil {
		builder.WriteString("last_run_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("timezone=")
	builder.WriteString(_m.Timezone)
	builder.WriteString(", ")
	builder.WriteString("planning_total_usage=")
	builder.WriteString(fmt.Sprintf("%v", _m.PlanningTotalUsage))
	builder.WriteString(", ")
	if v := _m.PlanningTotalCostUsd; v != nil {
		builder.WriteString("planning_total_cost_usd=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("planning_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.PlanningAttempts))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Dags is a parsable slice of Dag.
type Dags []*Dag
