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
)

// DagCreate is the builder for creating a Dag entity.
type DagCreate struct {
	config
	mutation *DagMutation
	hooks    []Hook
}

// SetStatus sets the "status" field.
func (_c *DagCreate) SetStatus(v dag.Status) *DagCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetResult sets the "result" field.
func (_c *DagCreate) SetResult(v map[string]interface{}) *DagCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetParams sets the "params" field.
func (_c *DagCreate) SetParams(v map[string]interface{}) *DagCreate {
	_c.mutation.SetParams(v)
	return _c
}

// SetAgentName sets the "agent_name" field.
func (_c *DagCreate) SetAgentName(v string) *DagCreate {
	_c.mutation.SetAgentName(v)
	return _c
}

// SetDagTitle sets the "dag_title" field.
func (_c *DagCreate) SetDagTitle(v string) *DagCreate {
	_c.mutation.SetDagTitle(v)
	return _c
}

// SetNillableDagTitle sets the "dag_title" field if the given value is not nil.
func (_c *DagCreate) SetNillableDagTitle(v *string) *DagCreate {
	if v != nil {
		_c.SetDagTitle(*v)
	}
	return _c
}

// SetCronSchedule sets the "cron_schedule" field.
func (_c *DagCreate) SetCronSchedule(v string) *DagCreate {
	_c.mutation.SetCronSchedule(v)
	return _c
}

// SetNillableCronSchedule sets the "cron_schedule" field if the given value is not nil.
func (_c *DagCreate) SetNillableCronSchedule(v *string) *DagCreate {
	if v != nil {
		_c.SetCronSchedule(*v)
	}
	return _c
}

// SetScheduleActive sets the "schedule_active" field.
func (_c *DagCreate) SetScheduleActive(v bool) *DagCreate {
	_c.mutation.SetScheduleActive(v)
	return _c
}

// SetNillableScheduleActive sets the "schedule_active" field if the given value is not nil.
func (_c *DagCreate) SetNillableScheduleActive(v *bool) *DagCreate {
	if v != nil {
		_c.SetScheduleActive(*v)
	}
	return _c
}

// SetLastRunAt sets the "last_run_at" field.
func (_c *DagCreate) SetLastRunAt(v time.Time) *DagCreate {
	_c.mutation.SetLastRunAt(v)
	return _c
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (_c *DagCreate) SetNillableLastRunAt(v *time.Time) *DagCreate {
	if v != nil {
		_c.SetLastRunAt(*v)
	}
	return _c
}

// SetTimezone sets the "timezone" field.
func (_c *DagCreate) SetTimezone(v string) *DagCreate {
	_c.mutation.SetTimezone(v)
	return _c
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_c *DagCreate) SetNillableTimezone(v *string) *DagCreate {
	if v != nil {
		_c.SetTimezone(*v)
	}
	return _c
}

// SetPlanningTotalUsage sets the "planning_total_usage" field.
func (_c *DagCreate) SetPlanningTotalUsage(v map[string]interface{}) *DagCreate {
	_c.mutation.SetPlanningTotalUsage(v)
	return _c
}

// SetPlanningTotalCostUsd sets the "planning_total_cost_usd" field.
func (_c *DagCreate) SetPlanningTotalCostUsd(v string) *DagCreate {
	_c.mutation.SetPlanningTotalCostUsd(v)
	return _c
}

// SetNillablePlanningTotalCostUsd sets the "planning_total_cost_usd" field if the given value is not nil.
func (_c *DagCreate) SetNillablePlanningTotalCostUsd(v *string) *DagCreate {
	if v != nil {
		_c.SetPlanningTotalCostUsd(*v)
	}
	return _c
}

// SetPlanningAttempts sets the "planning_attempts" field.
func (_c *DagCreate) SetPlanningAttempts(v []map[string]interface{}) *DagCreate {
	_c.mutation.SetPlanningAttempts(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DagCreate) SetCreatedAt(v time.Time) *DagCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DagCreate) SetNillableCreatedAt(v *time.Time) *DagCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DagCreate) SetUpdatedAt(v time.Time) *DagCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DagCreate) SetNillableUpdatedAt(v *time.Time) *DagCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DagCreate) SetID(v string) *DagCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddExecutionIDs adds the "executions" edge to the DagExecution entity by IDs.
func (_c *DagCreate) AddExecutionIDs(ids ...string) *DagCreate {
	_c.mutation.AddExecutionIDs(ids...)
	return _c
}

// AddExecutions adds the "executions" edges to the DagExecution entity.
func (_c *DagCreate) AddExecutions(v ...*DagExecution) *DagCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddExecutionIDs(ids...)
}

// Mutation returns the DagMutation object of the builder.
func (_c *DagCreate) Mutation() *DagMutation {
	return _c.mutation
}

// Save creates the Dag in the database.
func (_c *DagCreate) Save(ctx context.Context) (*Dag, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DagCreate) SaveX(ctx context.Context) *Dag {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DagCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DagCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DagCreate) defaults() {
	if _, ok := _c.mutation.ScheduleActive(); !ok {
		v := dag.DefaultScheduleActive
		_c.mutation.SetScheduleActive(v)
	}
	if _, ok := _c.mutation.Timezone(); !ok {
		v := dag.DefaultTimezone
		_c.mutation.SetTimezone(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := dag.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := dag.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DagCreate) check() error {
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Dag.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := dag.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Dag.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AgentName(); !ok {
		return &ValidationError{Name: "agent_name", err: errors.New(`ent: missing required field "Dag.agent_name"`)}
	}
	if _, ok := _c.mutation.ScheduleActive(); !ok {
		return &ValidationError{Name: "schedule_active", err: errors.New(`ent: missing required field "Dag.schedule_active"`)}
	}
	if _, ok := _c.mutation.Timezone(); !ok {
		return &ValidationError{Name: "timezone", err: errors.New(`ent: missing required field "Dag.timezone"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Dag.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Dag.updated_at"`)}
	}
	return nil
}

func (_c *DagCreate) sqlSave(ctx context.Context) (*Dag, error) {
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
			return nil, fmt.Errorf("unexpected Dag.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DagCreate) createSpec() (*Dag, *sqlgraph.CreateSpec) {
	var (
		_node = &Dag{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(dag.Table, sqlgraph.NewFieldSpec(dag.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(dag.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(dag.FieldResult, field.TypeJSON, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.Params(); ok {
		_spec.SetField(dag.FieldParams, field.TypeJSON, value)
		_node.Params = value
	}
	if value, ok := _c.mutation.AgentName(); ok {
		_spec.SetField(dag.FieldAgentName, field.TypeString, value)
		_node.AgentName = value
	}
	if value, ok := _c.mutation.DagTitle(); ok {
		_spec.SetField(dag.FieldDagTitle, field.TypeString, value)
		_node.DagTitle = &value
	}
	if value, ok := _c.mutation.CronSchedule(); ok {
		_spec.SetField(dag.FieldCronSchedule, field.TypeString, value)
		_node.CronSchedule = &value
	}
	if value, ok := _c.mutation.ScheduleActive(); ok {
		_spec.SetField(dag.FieldScheduleActive, field.TypeBool, value)
		_node.ScheduleActive = value
	}
	if value, ok := _c.mutation.LastRunAt(); ok {
		_spec.SetField(dag.FieldLastRunAt, field.TypeTime, value)
		_node.LastRunAt = &value
	}
	if value, ok := _c.mutation.Timezone(); ok {
		_spec.SetField(dag.FieldTimezone, field.TypeString, value)
		_node.Timezone = value
	}
	if value, ok := _c.mutation.PlanningTotalUsage(); ok {
		_spec.SetField(dag.FieldPlanningTotalUsage, field.TypeJSON, value)
		_node.PlanningTotalUsage = value
	}
	if value, ok := _c.mutation.PlanningTotalCostUsd(); ok {
		_spec.SetField(dag.FieldPlanningTotalCostUsd, field.TypeString, value)
		_node.PlanningTotalCostUsd = &value
	}
	if value, ok := _c.mutation.PlanningAttempts(); ok {
		_spec.SetField(dag.FieldPlanningAttempts, field.TypeJSON, value)
		_node.PlanningAttempts = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(dag.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(dag.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ExecutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   dag.ExecutionsTable,
			Columns: []string{dag.ExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dagexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DagCreateBulk is the builder for creating many Dag entities in bulk.
type DagCreateBulk struct {
	config
	err      error
	builders []*DagCreate
}

// Save creates the Dag entities in the database.
func (_c *DagCreateBulk) Save(ctx context.Context) ([]*Dag, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Dag, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DagMutation)
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
func (_c *DagCreateBulk) SaveX(ctx context.Context) []*Dag {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DagCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DagCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
