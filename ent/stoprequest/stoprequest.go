// Code generated by ent, DO NOT EDIT.

package stoprequest

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the stoprequest type in the database.
	Label = "stop_request"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "stop_request_id"
	// FieldDagID holds the string denoting the dag_id field in the database.
	FieldDagID = "dag_id"
	// FieldExecutionID holds the string denoting the execution_id field in the database.
	FieldExecutionID = "execution_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldRequestedAt holds the string denoting the requested_at field in the database.
	FieldRequestedAt = "requested_at"
	// FieldHandledAt holds the string denoting the handled_at field in the database.
	FieldHandledAt = "handled_at"
	// Table holds the table name of the stoprequest in the database.
	Table = "stop_requests"
)

// Columns holds all SQL columns for stoprequest fields.
var Columns = []string{
	FieldID,
	FieldDagID,
	FieldExecutionID,
	FieldStatus,
	FieldRequestedAt,
	FieldHandledAt,
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
	// DefaultRequestedAt holds the default value on creation for the "requested_at" field.
	DefaultRequestedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusRequested is the default value of the Status enum.
const DefaultStatus = StatusRequested

// Status values.
const (
	StatusRequested Status = "requested"
	StatusHandled   Status = "handled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusRequested, StatusHandled:
		return nil
	default:
		return fmt.Errorf("stoprequest: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the StopRequest queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDagID orders the results by the dag_id field.
func ByDagID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDagID, opts...).ToFunc()
}

// ByExecutionID orders the results by the execution_id field.
func ByExecutionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutionID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByRequestedAt orders the results by the requested_at field.
func ByRequestedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestedAt, opts...).ToFunc()
}

// ByHandledAt orders the results by the handled_at field.
func ByHandledAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHandledAt, opts...).ToFunc()
}
