// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/taskdag/taskdag/ent/dag"
	"github.com/taskdag/taskdag/ent/dagexecution"
	"github.com/taskdag/taskdag/ent/substep"
)

// DagExecutionCreate is the builder for creating a DagExecution entity.
type DagExecutionCreate struct {
	config
	mutation *DagExecutionMutation
	hooks    []Hook
}

// SetDagID sets the "dag_id" field.
func (_c *DagExecutionCreate) SetDagID(v string) *DagExecutionCreate {
	_c.mutation.SetDagID(v)
	return _c
}

// SetNillableDagID sets the "dag_id" field if the given value is not nil.
func (_c *DagExecutionCreate) SetNillableDagID(v *string) *DagExecutionCreate {
	if v != nil {
		_c.SetDagID(*v)
	}
	return _c
}

// SetOriginalRequest sets the "original_request" field.
func (_c *DagExecutionCreate) SetOriginalRequest(v string) *DagExecutionCreate {
	_c.mutation.SetOriginalRequest(v)
	return _c
}

// SetPrimaryIntent sets the "primary_intent" field.
func (_c *DagExecutionCreate) SetPrimaryIntent(v string) *DagExecutionCreate {
	_c.mutation.SetPrimaryIntent(v)
	return _c
}

// SetNillablePrimaryIntent sets the "primary_intent" field if the given value is not nil.
func (_c *DagExecutionCreate) SetNillablePrimaryIntent(v *string) *DagExecutionCreate {
	if v != nil {
		_c.SetPrimaryIntent(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *DagExecutionCreate) SetStatus(v dagexecution.Status) *DagExecutionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DagExecutionCreate) SetNillableStatus(v *dagexecution.Status) *DagExecutionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *DagExecutionCreate) SetStartedAt(v time.Time) *DagExecutionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *DagExecutionCreate) SetNillableStartedAt(v *time.Time) *DagExecutionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *DagExecutionCreate) SetCompletedAt(v time.Time) *DagExecutionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *DagExecutionCreate) SetNillableCompletedAt(v *time.Time) *DagExecutionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *DagExecutionCreate) SetDurationMs(v int64) *DagExecutionCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *DagExecutionCreate) SetNillableDurationMs(v *int64) *DagExecutionCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetTotalTasks sets the "total_tasks" field.
func (_c *DagExecutionCreate) SetTotalTasks(v int) *DagExecutionCreate {
	_c.mutation.SetTotalTasks(v)
	return _c
}

// SetNillableTotalTasks sets the "total_tasks" field if the given value is not nil.
func (_c *DagExecutionCreate) SetNillableTotalTasks(v *int) *DagExecutionCreate {
	if v != nil {
		_c.SetTotalTasks(*v)
	}
	return _c
}

// SetCompletedTasks sets the "completed_tasks" field.
func (_c *DagExecutionCreate) SetCompletedTasks(v int) *DagExecutionCreate {
	_c.mutation.SetCompletedTasks(v)
	return _c
}

// SetNillableCompletedTasks sets the "completed_tasks" field if the given value is not nil.
func (_c *DagExecutionCreate) SetNillableCompletedTasks(v *int) *DagExecutionCreate {
	if v != nil {
		_c.SetCompletedTasks(*v)
	}
	return _c
}

// SetFailedTasks sets the "failed_tasks" field.
func (_c *DagExecutionCreate) SetFailedTasks(v int) *DagExecutionCreate {
	_c.mutation.SetFailedTasks(v)
	return _c
}

// SetNillableFailedTasks sets the "failed_tasks" field if the given value is not nil.
func (_c *DagExecutionCreate) SetNillableFailedTasks(v *int) *DagExecutionCreate {
	if v != nil {
		_c.SetFailedTasks(*v)
	}
	return _c
}

// SetWaitingTasks sets the "waiting_tasks" field.
func (_c *DagExecutionCreate) SetWaitingTasks(v int) *DagExecutionCreate {
	_c.mutation.SetWaitingTasks(v)
	return _c
}

// SetNillableWaitingTasks sets the "waiting_tasks" field if the given value is not nil.
func (_c *DagExecutionCreate) SetNillableWaitingTasks(v *int) *DagExecutionCreate {
	if v != nil {
		_c.SetWaitingTasks(*v)
	}
	return _c
}

// SetFinalResult sets the "final_result" field.
func (_c *DagExecutionCreate) SetFinalResult(v string) *DagExecutionCreate {
	_c.mutation.SetFinalResult(v)
	return _c
}

// SetNillableFinalResult sets the "final_result" field if the given value is not nil.
func (_c *DagExecutionCreate) SetNillableFinalResult(v *string) *DagExecutionCreate {
	if v != nil {
		_c.SetFinalResult(*v)
	}
	return _c
}

// SetSynthesisResult sets the "synthesis_result" field.
func (_c *DagExecutionCreate) SetSynthesisResult(v map[string]interface{}) *DagExecutionCreate {
	_c.mutation.SetSynthesisResult(v)
	return _c
}

// SetSuspendedReason sets the "suspended_reason" field.
func (_c *DagExecutionCreate) SetSuspendedReason(v string) *DagExecutionCreate {
	_c.mutation.SetSuspendedReason(v)
	return _c
}

// SetNillableSuspendedReason sets the "suspended_reason" field if the given value is not nil.
func (_c *DagExecutionCreate) SetNillableSuspendedReason(v *string) *DagExecutionCreate {
	if v != nil {
		_c.SetSuspendedReason(*v)
	}
	return _c
}

// SetSuspendedAt sets the "suspended_at" field.
func (_c *DagExecutionCreate) SetSuspendedAt(v time.Time) *DagExecutionCreate {
	_c.mutation.SetSuspendedAt(v)
	return _c
}

// SetNillableSuspendedAt sets the "suspended_at" field if the given value is not nil.
func (_c *DagExecutionCreate) SetNillableSuspendedAt(v *time.Time) *DagExecutionCreate {
	if v != nil {
		_c.SetSuspendedAt(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *DagExecutionCreate) SetRetryCount(v int) *DagExecutionCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *DagExecutionCreate) SetNillableRetryCount(v *int) *DagExecutionCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetLastRetryAt sets the "last_retry_at" field.
func (_c *DagExecutionCreate) SetLastRetryAt(v time.Time) *DagExecutionCreate {
	_c.mutation.SetLastRetryAt(v)
	return _c
}

// SetNillableLastRetryAt sets the "last_retry_at" field if the given value is not nil.
func (_c *DagExecutionCreate) SetNillableLastRetryAt(v *time.Time) *DagExecutionCreate {
	if v != nil {
		_c.SetLastRetryAt(*v)
	}
	return _c
}

// SetTotalUsage sets the "total_usage" field.
func (_c *DagExecutionCreate) SetTotalUsage(v map[string]interface{}) *DagExecutionCreate {
	_c.mutation.SetTotalUsage(v)
	return _c
}

// SetTotalCostUsd sets the "total_cost_usd" field.
func (_c *DagExecutionCreate) SetTotalCostUsd(v string) *DagExecutionCreate {
	_c.mutation.SetTotalCostUsd(v)
	return _c
}

// SetNillableTotalCostUsd sets the "total_cost_usd" field if the given value is not nil.
func (_c *DagExecutionCreate) SetNillableTotalCostUsd(v *string) *DagExecutionCreate {
	if v != nil {
		_c.SetTotalCostUsd(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DagExecutionCreate) SetCreatedAt(v time.Time) *DagExecutionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DagExecutionCreate) SetNillableCreatedAt(v *time.Time) *DagExecutionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DagExecutionCreate) SetUpdatedAt(v time.Time) *DagExecutionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DagExecutionCreate) SetNillableUpdatedAt(v *time.Time) *DagExecutionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DagExecutionCreate) SetID(v string) *DagExecutionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetDag sets the "dag" edge to the Dag entity.
func (_c *DagExecutionCreate) SetDag(v *Dag) *DagExecutionCreate {
	return _c.SetDagID(v.ID)
}

// AddSubStepIDs adds the "sub_steps" edge to the SubStep entity by IDs.
func (_c *DagExecutionCreate) AddSubStepIDs(ids ...string) *DagExecutionCreate {
	_c.mutation.AddSubStepIDs(ids...)
	return _c
}

// AddSubSteps adds the "sub_steps" edges to the SubStep entity.
func (_c *DagExecutionCreate) AddSubSteps(v ...*SubStep) *DagExecutionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSubStepIDs(ids...)
}

// Mutation returns the DagExecutionMutation object of the builder.
func (_c *DagExecutionCreate) Mutation() *DagExecutionMutation {
	return _c.mutation
}

// Save creates the DagExecution in the database.
func (_c *DagExecutionCreate) Save(ctx context.Context) (*DagExecution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DagExecutionCreate) SaveX(ctx context.Context) *DagExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DagExecutionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DagExecutionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DagExecutionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := dagexecution.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.TotalTasks(); !ok {
		v := dagexecution.DefaultTotalTasks
		_c.mutation.SetTotalTasks(v)
	}
	if _, ok := _c.mutation.CompletedTasks(); !ok {
		v := dagexecution.DefaultCompletedTasks
		_c.mutation.SetCompletedTasks(v)
	}
	if _, ok := _c.mutation.FailedTasks(); !ok {
		v := dagexecution.DefaultFailedTasks
		_c.mutation.SetFailedTasks(v)
	}
	if _, ok := _c.mutation.WaitingTasks(); !ok {
		v := dagexecution.DefaultWaitingTasks
		_c.mutation.SetWaitingTasks(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := dagexecution.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := dagexecution.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := dagexecution.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DagExecutionCreate) check() error {
	if _, ok := _c.mutation.OriginalRequest(); !ok {
		return &ValidationError{Name: "original_request", err: errors.New(`ent: missing required field "DagExecution.original_request"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "DagExecution.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := dagexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DagExecution.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalTasks(); !ok {
		return &ValidationError{Name: "total_tasks", err: errors.New(`ent: missing required field "DagExecution.total_tasks"`)}
	}
	if _, ok := _c.mutation.CompletedTasks(); !ok {
		return &ValidationError{Name: "completed_tasks", err: errors.New(`ent: missing required field "DagExecution.completed_tasks"`)}
	}
	if _, ok := _c.mutation.FailedTasks(); !ok {
		return &ValidationError{Name: "failed_tasks", err: errors.New(`ent: missing required field "DagExecution.failed_tasks"`)}
	}
	if _, ok := _c.mutation.WaitingTasks(); !ok {
		return &ValidationError{Name: "waiting_tasks", err: errors.New(`ent: missing required field "DagExecution.waiting_tasks"`)}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "DagExecution.retry_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DagExecution.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "DagExecution.updated_at"`)}
	}
	return nil
}

func (_c *DagExecutionCreate) sqlSave(ctx context.Context) (*DagExecution, error) {
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
			return nil, fmt.Errorf("unexpected DagExecution.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DagExecutionCreate) createSpec() (*DagExecution, *sqlgraph.CreateSpec) {
	var (
		_node = &DagExecution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(dagexecution.Table, sqlgraph.NewFieldSpec(dagexecution.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OriginalRequest(); ok {
		_spec.SetField(dagexecution.FieldOriginalRequest, field.TypeString, value)
		_node.OriginalRequest = value
	}
	if value, ok := _c.mutation.PrimaryIntent(); ok {
		_spec.SetField(dagexecution.FieldPrimaryIntent, field.TypeString, value)
		_node.PrimaryIntent = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(dagexecution.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(dagexecution.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(dagexecution.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(dagexecution.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = &value
	}
	if value, ok := _c.mutation.TotalTasks(); ok {
		_spec.SetField(dagexecution.FieldTotalTasks, field.TypeInt, value)
		_node.TotalTasks = value
	}
	if value, ok := _c.mutation.CompletedTasks(); ok {
		_spec.SetField(dagexecution.FieldCompletedTasks, field.TypeInt, value)
		_node.CompletedTasks = value
	}
	if value, ok := _c.mutation.FailedTasks(); ok {
		_spec.SetField(dagexecution.FieldFailedTasks, field.TypeInt, value)
		_node.FailedTasks = value
	}
	if value, ok := _c.mutation.WaitingTasks(); ok {
		_spec.SetField(dagexecution.FieldWaitingTasks, field.TypeInt, value)
		_node.WaitingTasks = value
	}
	if value, ok := _c.mutation.FinalResult(); ok {
		_spec.SetField(dagexecution.FieldFinalResult, field.TypeString, value)
		_node.FinalResult = &value
	}
	if value, ok := _c.mutation.SynthesisResult(); ok {
		_spec.SetField(dagexecution.FieldSynthesisResult, field.TypeJSON, value)
		_node.SynthesisResult = value
	}
	if value, ok := _c.mutation.SuspendedReason(); ok {
		_spec.SetField(dagexecution.FieldSuspendedReason, field.TypeString, value)
		_node.SuspendedReason = &value
	}
	if value, ok := _c.mutation.SuspendedAt(); ok {
		_spec.SetField(dagexecution.FieldSuspendedAt, field.TypeTime, value)
		_node.SuspendedAt = &value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(dagexecution.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.LastRetryAt(); ok {
		_spec.SetField(dagexecution.FieldLastRetryAt, field.TypeTime, value)
		_node.LastRetryAt = &value
	}
	if value, ok := _c.mutation.TotalUsage(); ok {
		_spec.SetField(dagexecution.FieldTotalUsage, field.TypeJSON, value)
		_node.TotalUsage = value
	}
	if value, ok := _c.mutation.TotalCostUsd(); ok {
		_spec.SetField(dagexecution.FieldTotalCostUsd, field.TypeString, value)
		_node.TotalCostUsd = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(dagexecution.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(dagexecution.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.DagIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   dagexecution.DagTable,
			Columns: []string{dagexecution.DagColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dag.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DagID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SubStepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   dagexecution.SubStepsTable,
			Columns: []string{dagexecution.SubStepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(substep.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DagExecutionCreateBulk is the builder for creating many DagExecution entities in bulk.
type DagExecutionCreateBulk struct {
	config
	err      error
	builders []*DagExecutionCreate
}

// Save creates the DagExecution entities in the database.
func (_c *DagExecutionCreateBulk) Save(ctx context.Context) ([]*DagExecution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DagExecution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DagExecutionMutation)
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
func (_c *DagExecutionCreateBulk) SaveX(ctx context.Context) []*DagExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DagExecutionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DagExecutionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
