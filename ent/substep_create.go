// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/taskdag/taskdag/ent/dagexecution"
	"github.com/taskdag/taskdag/ent/substep"
)

// SubStepCreate is the builder for creating a SubStep entity.
type SubStepCreate struct {
	config
	mutation *SubStepMutation
	hooks    []Hook
}

// SetExecutionID sets the "execution_id" field.
func (_c *SubStepCreate) SetExecutionID(v string) *SubStepCreate {
	_c.mutation.SetExecutionID(v)
	return _c
}

// SetTaskID sets the "task_id" field.
func (_c *SubStepCreate) SetTaskID(v string) *SubStepCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *SubStepCreate) SetDescription(v string) *SubStepCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetThought sets the "thought" field.
func (_c *SubStepCreate) SetThought(v string) *SubStepCreate {
	_c.mutation.SetThought(v)
	return _c
}

// SetNillableThought sets the "thought" field if the given value is not nil.
func (_c *SubStepCreate) SetNillableThought(v *string) *SubStepCreate {
	if v != nil {
		_c.SetThought(*v)
	}
	return _c
}

// SetActionType sets the "action_type" field.
func (_c *SubStepCreate) SetActionType(v substep.ActionType) *SubStepCreate {
	_c.mutation.SetActionType(v)
	return _c
}

// SetToolOrPromptName sets the "tool_or_prompt_name" field.
func (_c *SubStepCreate) SetToolOrPromptName(v string) *SubStepCreate {
	_c.mutation.SetToolOrPromptName(v)
	return _c
}

// SetToolOrPromptParams sets the "tool_or_prompt_params" field.
func (_c *SubStepCreate) SetToolOrPromptParams(v map[string]interface{}) *SubStepCreate {
	_c.mutation.SetToolOrPromptParams(v)
	return _c
}

// SetDependencies sets the "dependencies" field.
func (_c *SubStepCreate) SetDependencies(v []string) *SubStepCreate {
	_c.mutation.SetDependencies(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *SubStepCreate) SetStatus(v substep.Status) *SubStepCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SubStepCreate) SetNillableStatus(v *substep.Status) *SubStepCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *SubStepCreate) SetStartedAt(v time.Time) *SubStepCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *SubStepCreate) SetNillableStartedAt(v *time.Time) *SubStepCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *SubStepCreate) SetCompletedAt(v time.Time) *SubStepCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *SubStepCreate) SetNillableCompletedAt(v *time.Time) *SubStepCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *SubStepCreate) SetDurationMs(v int64) *SubStepCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *SubStepCreate) SetNillableDurationMs(v *int64) *SubStepCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetResult sets the "result" field.
func (_c *SubStepCreate) SetResult(v json.RawMessage) *SubStepCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetError sets the "error" field.
func (_c *SubStepCreate) SetError(v string) *SubStepCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *SubStepCreate) SetNillableError(v *string) *SubStepCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetUsage sets the "usage" field.
func (_c *SubStepCreate) SetUsage(v map[string]interface{}) *SubStepCreate {
	_c.mutation.SetUsage(v)
	return _c
}

// SetCostUsd sets the "cost_usd" field.
func (_c *SubStepCreate) SetCostUsd(v string) *SubStepCreate {
	_c.mutation.SetCostUsd(v)
	return _c
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_c *SubStepCreate) SetNillableCostUsd(v *string) *SubStepCreate {
	if v != nil {
		_c.SetCostUsd(*v)
	}
	return _c
}

// SetGenerationStats sets the "generation_stats" field.
func (_c *SubStepCreate) SetGenerationStats(v map[string]interface{}) *SubStepCreate {
	_c.mutation.SetGenerationStats(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SubStepCreate) SetCreatedAt(v time.Time) *SubStepCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SubStepCreate) SetNillableCreatedAt(v *time.Time) *SubStepCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SubStepCreate) SetUpdatedAt(v time.Time) *SubStepCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SubStepCreate) SetNillableUpdatedAt(v *time.Time) *SubStepCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SubStepCreate) SetID(v string) *SubStepCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetExecution sets the "execution" edge to the DagExecution entity.
func (_c *SubStepCreate) SetExecution(v *DagExecution) *SubStepCreate {
	return _c.SetExecutionID(v.ID)
}

// Mutation returns the SubStepMutation object of the builder.
func (_c *SubStepCreate) Mutation() *SubStepMutation {
	return _c.mutation
}

// Save creates the SubStep in the database.
func (_c *SubStepCreate) Save(ctx context.Context) (*SubStep, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SubStepCreate) SaveX(ctx context.Context) *SubStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubStepCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubStepCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SubStepCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := substep.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := substep.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := substep.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SubStepCreate) check() error {
	if _, ok := _c.mutation.ExecutionID(); !ok {
		return &ValidationError{Name: "execution_id", err: errors.New(`ent: missing required field "SubStep.execution_id"`)}
	}
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "SubStep.task_id"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "SubStep.description"`)}
	}
	if _, ok := _c.mutation.ActionType(); !ok {
		return &ValidationError{Name: "action_type", err: errors.New(`ent: missing required field "SubStep.action_type"`)}
	}
	if v, ok := _c.mutation.ActionType(); ok {
		if err := substep.ActionTypeValidator(v); err != nil {
			return &ValidationError{Name: "action_type", err: fmt.Errorf(`ent: validator failed for field "SubStep.action_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ToolOrPromptName(); !ok {
		return &ValidationError{Name: "tool_or_prompt_name", err: errors.New(`ent: missing required field "SubStep.tool_or_prompt_name"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "SubStep.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := substep.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SubStep.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SubStep.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SubStep.updated_at"`)}
	}
	if len(_c.mutation.ExecutionIDs()) == 0 {
		return &ValidationError{Name: "execution", err: errors.New(`ent: missing required edge "SubStep.execution"`)}
	}
	return nil
}

func (_c *SubStepCreate) sqlSave(ctx context.Context) (*SubStep, error) {
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
			return nil, fmt.Errorf("unexpected SubStep.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SubStepCreate) createSpec() (*SubStep, *sqlgraph.CreateSpec) {
	var (
		_node = &SubStep{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(substep.Table, sqlgraph.NewFieldSpec(substep.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(substep.FieldTaskID, field.TypeString, value)
		_node.TaskID = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(substep.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Thought(); ok {
		_spec.SetField(substep.FieldThought, field.TypeString, value)
		_node.Thought = value
	}
	if value, ok := _c.mutation.ActionType(); ok {
		_spec.SetField(substep.FieldActionType, field.TypeEnum, value)
		_node.ActionType = value
	}
	if value, ok := _c.mutation.ToolOrPromptName(); ok {
		_spec.SetField(substep.FieldToolOrPromptName, field.TypeString, value)
		_node.ToolOrPromptName = value
	}
	if value, ok := _c.mutation.ToolOrPromptParams(); ok {
		_spec.SetField(substep.FieldToolOrPromptParams, field.TypeJSON, value)
		_node.ToolOrPromptParams = value
	}
	if value, ok := _c.mutation.Dependencies(); ok {
		_spec.SetField(substep.FieldDependencies, field.TypeJSON, value)
		_node.Dependencies = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(substep.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(substep.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(substep.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(substep.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = &value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(substep.FieldResult, field.TypeJSON, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(substep.FieldError, field.TypeString, value)
		_node.Error = &value
	}
	if value, ok := _c.mutation.Usage(); ok {
		_spec.SetField(substep.FieldUsage, field.TypeJSON, value)
		_node.Usage = value
	}
	if value, ok := _c.mutation.CostUsd(); ok {
		_spec.SetField(substep.FieldCostUsd, field.TypeString, value)
		_node.CostUsd = &value
	}
	if value, ok := _c.mutation.GenerationStats(); ok {
		_spec.SetField(substep.FieldGenerationStats, field.TypeJSON, value)
		_node.GenerationStats = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(substep.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(substep.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ExecutionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   substep.ExecutionTable,
			Columns: []string{substep.ExecutionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dagexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ExecutionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SubStepCreateBulk is the builder for creating many SubStep entities in bulk.
type SubStepCreateBulk struct {
	config
	err      error
	builders []*SubStepCreate
}

// Save creates the SubStep entities in the database.
func (_c *SubStepCreateBulk) Save(ctx context.Context) ([]*SubStep, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SubStep, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubStepMutation)
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
func (_c *SubStepCreateBulk) SaveX(ctx context.Context) []*SubStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubStepCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubStepCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
