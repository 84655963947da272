// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/taskdag/taskdag/ent/predicate"
	"github.com/taskdag/taskdag/ent/stoprequest"
)

// StopRequestUpdate is the builder for updating StopRequest entities.
type StopRequestUpdate struct {
	config
	hooks    []Hook
	mutation *StopRequestMutation
}

// Where appends a list predicates to the StopRequestUpdate builder.
func (_u *StopRequestUpdate) Where(ps ...predicate.StopRequest) *StopRequestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDagID sets the "dag_id" field.
func (_u *StopRequestUpdate) SetDagID(v string) *StopRequestUpdate {
	_u.mutation.SetDagID(v)
	return _u
}

// SetNillableDagID sets the "dag_id" field if the given value is not nil.
func (_u *StopRequestUpdate) SetNillableDagID(v *string) *StopRequestUpdate {
	if v != nil {
		_u.SetDagID(*v)
	}
	return _u
}

// ClearDagID clears the value of the "dag_id" field.
func (_u *StopRequestUpdate) ClearDagID() *StopRequestUpdate {
	_u.mutation.ClearDagID()
	return _u
}

// SetExecutionID sets the "execution_id" field.
func (_u *StopRequestUpdate) SetExecutionID(v string) *StopRequestUpdate {
	_u.mutation.SetExecutionID(v)
	return _u
}

// SetNillableExecutionID sets the "execution_id" field if the given value is not nil.
func (_u *StopRequestUpdate) SetNillableExecutionID(v *string) *StopRequestUpdate {
	if v != nil {
		_u.SetExecutionID(*v)
	}
	return _u
}

// ClearExecutionID clears the value of the "execution_id" field.
func (_u *StopRequestUpdate) ClearExecutionID() *StopRequestUpdate {
	_u.mutation.ClearExecutionID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *StopRequestUpdate) SetStatus(v stoprequest.Status) *StopRequestUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StopRequestUpdate) SetNillableStatus(v *stoprequest.Status) *StopRequestUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetHandledAt sets the "handled_at" field.
func (_u *StopRequestUpdate) SetHandledAt(v time.Time) *StopRequestUpdate {
	_u.mutation.SetHandledAt(v)
	return _u
}

// SetNillableHandledAt sets the "handled_at" field if the given value is not nil.
func (_u *StopRequestUpdate) SetNillableHandledAt(v *time.Time) *StopRequestUpdate {
	if v != nil {
		_u.SetHandledAt(*v)
	}
	return _u
}

// ClearHandledAt clears the value of the "handled_at" field.
func (_u *StopRequestUpdate) ClearHandledAt() *StopRequestUpdate {
	_u.mutation.ClearHandledAt()
	return _u
}

// Mutation returns the StopRequestMutation object of the builder.
func (_u *StopRequestUpdate) Mutation() *StopRequestMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StopRequestUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StopRequestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StopRequestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StopRequestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StopRequestUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := stoprequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StopRequest.status": %w`, err)}
		}
	}
	return nil
}

func (_u *StopRequestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stoprequest.Table, stoprequest.Columns, sqlgraph.NewFieldSpec(stoprequest.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DagID(); ok {
		_spec.SetField(stoprequest.FieldDagID, field.TypeString, value)
	}
	if _u.mutation.DagIDCleared() {
		_spec.ClearField(stoprequest.FieldDagID, field.TypeString)
	}
	if value, ok := _u.mutation.ExecutionID(); ok {
		_spec.SetField(stoprequest.FieldExecutionID, field.TypeString, value)
	}
	if _u.mutation.ExecutionIDCleared() {
		_spec.ClearField(stoprequest.FieldExecutionID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(stoprequest.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.HandledAt(); ok {
		_spec.SetField(stoprequest.FieldHandledAt, field.TypeTime, value)
	}
	if _u.mutation.HandledAtCleared() {
		_spec.ClearField(stoprequest.FieldHandledAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stoprequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StopRequestUpdateOne is the builder for updating a single StopRequest entity.
type StopRequestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StopRequestMutation
}

// SetDagID sets the "dag_id" field.
func (_u *StopRequestUpdateOne) SetDagID(v string) *StopRequestUpdateOne {
	_u.mutation.SetDagID(v)
	return _u
}

// SetNillableDagID sets the "dag_id" field if the given value is not nil.
func (_u *StopRequestUpdateOne) SetNillableDagID(v *string) *StopRequestUpdateOne {
	if v != nil {
		_u.SetDagID(*v)
	}
	return _u
}

// ClearDagID clears the value of the "dag_id" field.
func (_u *StopRequestUpdateOne) ClearDagID() *StopRequestUpdateOne {
	_u.mutation.ClearDagID()
	return _u
}

// SetExecutionID sets the "execution_id" field.
func (_u *StopRequestUpdateOne) SetExecutionID(v string) *StopRequestUpdateOne {
	_u.mutation.SetExecutionID(v)
	return _u
}

// SetNillableExecutionID sets the "execution_id" field if the given value is not nil.
func (_u *StopRequestUpdateOne) SetNillableExecutionID(v *string) *StopRequestUpdateOne {
	if v != nil {
		_u.SetExecutionID(*v)
	}
	return _u
}

// ClearExecutionID clears the value of the "execution_id" field.
func (_u *StopRequestUpdateOne) ClearExecutionID() *StopRequestUpdateOne {
	_u.mutation.ClearExecutionID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *StopRequestUpdateOne) SetStatus(v stoprequest.Status) *StopRequestUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StopRequestUpdateOne) SetNillableStatus(v *stoprequest.Status) *StopRequestUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetHandledAt sets the "handled_at" field.
func (_u *StopRequestUpdateOne) SetHandledAt(v time.Time) *StopRequestUpdateOne {
	_u.mutation.SetHandledAt(v)
	return _u
}

// SetNillableHandledAt sets the "handled_at" field if the given value is not nil.
func (_u *StopRequestUpdateOne) SetNillableHandledAt(v *time.Time) *StopRequestUpdateOne {
	if v != nil {
		_u.SetHandledAt(*v)
	}
	return _u
}

// ClearHandledAt clears the value of the "handled_at" field.
func (_u *StopRequestUpdateOne) ClearHandledAt() *StopRequestUpdateOne {
	_u.mutation.ClearHandledAt()
	return _u
}

// Mutation returns the StopRequestMutation object of the builder.
func (_u *StopRequestUpdateOne) Mutation() *StopRequestMutation {
	return _u.mutation
}

// Where appends a list predicates to the StopRequestUpdate builder.
func (_u *StopRequestUpdateOne) Where(ps ...predicate.StopRequest) *StopRequestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StopRequestUpdateOne) Select(field string, fields ...string) *StopRequestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StopRequest entity.
func (_u *StopRequestUpdateOne) Save(ctx context.Context) (*StopRequest, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StopRequestUpdateOne) SaveX(ctx context.Context) *StopRequest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StopRequestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StopRequestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StopRequestUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := stoprequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StopRequest.status": %w`, err)}
		}
	}
	return nil
}

func (_u *StopRequestUpdateOne) sqlSave(ctx context.Context) (_node *StopRequest, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stoprequest.Table, stoprequest.Columns, sqlgraph.NewFieldSpec(stoprequest.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StopRequest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stoprequest.FieldID)
		for _, f := range fields {
			if !stoprequest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stoprequest.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DagID(); ok {
		_spec.SetField(stoprequest.FieldDagID, field.TypeString, value)
	}
	if _u.mutation.DagIDCleared() {
		_spec.ClearField(stoprequest.FieldDagID, field.TypeString)
	}
	if value, ok := _u.mutation.ExecutionID(); ok {
		_spec.SetField(stoprequest.FieldExecutionID, field.TypeString, value)
	}
	if _u.mutation.ExecutionIDCleared() {
		_spec.ClearField(stoprequest.FieldExecutionID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(stoprequest.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.HandledAt(); ok {
		_spec.SetField(stoprequest.FieldHandledAt, field.TypeTime, value)
	}
	if _u.mutation.HandledAtCleared() {
		_spec.ClearField(stoprequest.FieldHandledAt, field.TypeTime)
	}
	_node = &StopRequest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stoprequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
