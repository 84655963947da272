// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/taskdag/taskdag/ent/stoprequest"
)

// StopRequestCreate is the builder for creating a StopRequest entity.
type StopRequestCreate struct {
	config
	mutation *StopRequestMutation
	hooks    []Hook
}

// SetDagID sets the "dag_id" field.
func (_c *StopRequestCreate) SetDagID(v string) *StopRequestCreate {
	_c.mutation.SetDagID(v)
	return _c
}

// SetNillableDagID sets the "dag_id" field if the given value is not nil.
func (_c *StopRequestCreate) SetNillableDagID(v *string) *StopRequestCreate {
	if v != nil {
		_c.SetDagID(*v)
	}
	return _c
}

// SetExecutionID sets the "execution_id" field.
func (_c *StopRequestCreate) SetExecutionID(v string) *StopRequestCreate {
	_c.mutation.SetExecutionID(v)
	return _c
}

// SetNillableExecutionID sets the "execution_id" field if the given value is not nil.
func (_c *StopRequestCreate) SetNillableExecutionID(v *string) *StopRequestCreate {
	if v != nil {
		_c.SetExecutionID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *StopRequestCreate) SetStatus(v stoprequest.Status) *StopRequestCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *StopRequestCreate) SetNillableStatus(v *stoprequest.Status) *StopRequestCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRequestedAt sets the "requested_at" field.
func (_c *StopRequestCreate) SetRequestedAt(v time.Time) *StopRequestCreate {
	_c.mutation.SetRequestedAt(v)
	return _c
}

// SetNillableRequestedAt sets the "requested_at" field if the given value is not nil.
func (_c *StopRequestCreate) SetNillableRequestedAt(v *time.Time) *StopRequestCreate {
	if v != nil {
		_c.SetRequestedAt(*v)
	}
	return _c
}

// SetHandledAt sets the "handled_at" field.
func (_c *StopRequestCreate) SetHandledAt(v time.Time) *StopRequestCreate {
	_c.mutation.SetHandledAt(v)
	return _c
}

// SetNillableHandledAt sets the "handled_at" field if the given value is not nil.
func (_c *StopRequestCreate) SetNillableHandledAt(v *time.Time) *StopRequestCreate {
	if v != nil {
		_c.SetHandledAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StopRequestCreate) SetID(v string) *StopRequestCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the StopRequestMutation object of the builder.
func (_c *StopRequestCreate) Mutation() *StopRequestMutation {
	return _c.mutation
}

// Save creates the StopRequest in the database.
func (_c *StopRequestCreate) Save(ctx context.Context) (*StopRequest, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StopRequestCreate) SaveX(ctx context.Context) *StopRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StopRequestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StopRequestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StopRequestCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := stoprequest.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RequestedAt(); !ok {
		v := stoprequest.DefaultRequestedAt()
		_c.mutation.SetRequestedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StopRequestCreate) check() error {
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "StopRequest.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := stoprequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StopRequest.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RequestedAt(); !ok {
		return &ValidationError{Name: "requested_at", err: errors.New(`ent: missing required field "StopRequest.requested_at"`)}
	}
	return nil
}

func (_c *StopRequestCreate) sqlSave(ctx context.Context) (*StopRequest, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected StopRequest.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StopRequestCreate) createSpec() (*StopRequest, *sqlgraph.CreateSpec) {
	var (
		_node = &StopRequest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stoprequest.Table, sqlgraph.NewFieldSpec(stoprequest.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.DagID(); ok {
		_spec.SetField(stoprequest.FieldDagID, field.TypeString, value)
		_node.DagID = &value
	}
	if value, ok := _c.mutation.ExecutionID(); ok {
		_spec.SetField(stoprequest.FieldExecutionID, field.TypeString, value)
		_node.ExecutionID = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(stoprequest.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.RequestedAt(); ok {
		_spec.SetField(stoprequest.FieldRequestedAt, field.TypeTime, value)
		_node.RequestedAt = value
	}
	if value, ok := _c.mutation.HandledAt(); ok {
		_spec.SetField(stoprequest.FieldHandledAt, field.TypeTime, value)
		_node.HandledAt = &value
	}
	return _node, _spec
}

// StopRequestCreateBulk is the builder for creating many StopRequest entities in bulk.
type StopRequestCreateBulk struct {
	config
	err      error
	builders []*StopRequestCreate
}

// Save creates the StopRequest entities in the database.
func (_c *StopRequestCreateBulk) Save(ctx context.Context) ([]*StopRequest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StopRequest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StopRequestMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *StopRequestCreateBulk) SaveX(ctx context.Context) []*StopRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StopRequestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StopRequestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
