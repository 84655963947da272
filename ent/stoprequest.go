// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/taskdag/taskdag/ent/stoprequest"
)

// StopRequest is the model entity for the StopRequest schema.
type StopRequest struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// DagID holds the value of the "dag_id" field.
	DagID *string `json:"dag_id,omitempty"`
	// ExecutionID holds the value of the "execution_id" field.
	ExecutionID *string `json:"execution_id,omitempty"`
	// Status holds the value of the "status" field.
	Status stoprequest.Status `json:"status,omitempty"`
	// RequestedAt holds the value of the "requested_at" field.
	RequestedAt time.Time `json:"requested_at,omitempty"`
	// HandledAt holds the value of the "handled_at" field.
	HandledAt    *time.Time `json:"handled_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StopRequest) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case stoprequest.FieldID, stoprequest.FieldDagID, stoprequest.FieldExecutionID, stoprequest.FieldStatus:
			values[i] = new(sql.NullString)
		case stoprequest.FieldRequestedAt, stoprequest.FieldHandledAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StopRequest fields.
func (_m *StopRequest) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case stoprequest.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case stoprequest.FieldDagID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dag_id", values[i])
			} else if value.Valid {
				_m.DagID = new(string)
				*_m.DagID = value.String
			}
		case stoprequest.FieldExecutionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field execution_id", values[i])
			} else if value.Valid {
				_m.ExecutionID = new(string)
				*_m.ExecutionID = value.String
			}
		case stoprequest.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = stoprequest.Status(value.String)
			}
		case stoprequest.FieldRequestedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field requested_at", values[i])
			} else if value.Valid {
				_m.RequestedAt = value.Time
			}
		case stoprequest.FieldHandledAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field handled_at", values[i])
			} else if value.Valid {
				_m.HandledAt = new(time.Time)
				*_m.HandledAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StopRequest.
// This includes values selected through modifiers, order, etc.
func (_m *StopRequest) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this StopRequest.
// Note that you need to call StopRequest.Unwrap() before calling this method if this StopRequest
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StopRequest) Update() *StopRequestUpdateOne {
	return NewStopRequestClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StopRequest entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StopRequest) Unwrap() *StopRequest {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StopRequest is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StopRequest) String() string {
	var builder strings.Builder
	builder.WriteString("StopRequest(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.DagID; v != nil {
		builder.WriteString("dag_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ExecutionID; v != nil {
		builder.WriteString("execution_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("requested_at=")
	builder.WriteString(_m.RequestedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.HandledAt; v != nil {
		builder.WriteString("handled_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// StopRequests is a parsable slice of StopRequest.
type StopRequests []*StopRequest
