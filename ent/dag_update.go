// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/taskdag/taskdag/ent/dag"
	"github.com/taskdag/taskdag/ent/dagexecution"
	"github.com/taskdag/taskdag/ent/predicate"
)

// DagUpdate is the builder for updating Dag entities.
type DagUpdate struct {
	config
	hooks    []Hook
	mutation *DagMutation
}

// Where appends a list predicates to the DagUpdate builder.
func (_u *DagUpdate) Where(ps ...predicate.Dag) *DagUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *DagUpdate) SetStatus(v dag.Status) *DagUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DagUpdate) SetNillableStatus(v *dag.Status) *DagUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *DagUpdate) SetResult(v map[string]interface{}) *DagUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *DagUpdate) ClearResult() *DagUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetParams sets the "params" field.
func (_u *DagUpdate) SetParams(v map[string]interface{}) *DagUpdate {
	_u.mutation.SetParams(v)
	return _u
}

// ClearParams clears the value of the "params" field.
func (_u *DagUpdate) ClearParams() *DagUpdate {
	_u.mutation.ClearParams()
	return _u
}

// SetAgentName sets the "agent_name" field.
func (_u *DagUpdate) SetAgentName(v string) *DagUpdate {
	_u.mutation.SetAgentName(v)
	return _u
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_u *DagUpdate) SetNillableAgentName(v *string) *DagUpdate {
	if v != nil {
		_u.SetAgentName(*v)
	}
	return _u
}

// SetDagTitle sets the "dag_title" field.
func (_u *DagUpdate) SetDagTitle(v string) *DagUpdate {
	_u.mutation.SetDagTitle(v)
	return _u
}

// SetNillableDagTitle sets the "dag_title" field if the given value is not nil.
func (_u *DagUpdate) SetNillableDagTitle(v *string) *DagUpdate {
	if v != nil {
		_u.SetDagTitle(*v)
	}
	return _u
}

// ClearDagTitle clears the value of the "dag_title" field.
func (_u *DagUpdate) ClearDagTitle() *DagUpdate {
	_u.mutation.ClearDagTitle()
	return _u
}

// SetCronSchedule sets the "cron_schedule" field.
func (_u *DagUpdate) SetCronSchedule(v string) *DagUpdate {
	_u.mutation.SetCronSchedule(v)
	return _u
}

// SetNillableCronSchedule sets the "cron_schedule" field if the given value is not nil.
func (_u *DagUpdate) SetNillableCronSchedule(v *string) *DagUpdate {
	if v != nil {
		_u.SetCronSchedule(*v)
	}
	return _u
}

// ClearCronSchedule clears the value of the "cron_schedule" field.
func (_u *DagUpdate) ClearCronSchedule() *DagUpdate {
	_u.mutation.ClearCronSchedule()
	return _u
}

// SetScheduleActive sets the "schedule_active" field.
func (_u *DagUpdate) SetScheduleActive(v bool) *DagUpdate {
	_u.mutation.SetScheduleActive(v)
	return _u
}

// SetNillableScheduleActive sets the "schedule_active" field if the given value is not nil.
func (_u *DagUpdate) SetNillableScheduleActive(v *bool) *DagUpdate {
	if v != nil {
		_u.SetScheduleActive(*v)
	}
	return _u
}

// SetLastRunAt sets the "last_run_at" field.
func (_u *DagUpdate) SetLastRunAt(v time.Time) *DagUpdate {
	_u.mutation.SetLastRunAt(v)
	return _u
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (_u *DagUpdate) SetNillableLastRunAt(v *time.Time) *DagUpdate {
	if v != nil {
		_u.SetLastRunAt(*v)
	}
	return _u
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (_u *DagUpdate) ClearLastRunAt() *DagUpdate {
	_u.mutation.ClearLastRunAt()
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *DagUpdate) SetTimezone(v string) *DagUpdate {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *DagUpdate) SetNillableTimezone(v *string) *DagUpdate {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetPlanningTotalUsage sets the "planning_total_usage" field.
func (_u *DagUpdate) SetPlanningTotalUsage(v map[string]interface{}) *DagUpdate {
	_u.mutation.SetPlanningTotalUsage(v)
	return _u
}

// ClearPlanningTotalUsage clears the value of the "planning_total_usage" field.
func (_u *DagUpdate) ClearPlanningTotalUsage() *DagUpdate {
	_u.mutation.ClearPlanningTotalUsage()
	return _u
}

// SetPlanningTotalCostUsd sets the "planning_total_cost_usd" field.
func (_u *DagUpdate) SetPlanningTotalCostUsd(v string) *DagUpdate {
	_u.mutation.SetPlanningTotalCostUsd(v)
	return _u
}

// SetNillablePlanningTotalCostUsd sets the "planning_total_cost_usd" field if the given value is not nil.
func (_u *DagUpdate) SetNillablePlanningTotalCostUsd(v *string) *DagUpdate {
	if v != nil {
		_u.SetPlanningTotalCostUsd(*v)
	}
	return _u
}

// ClearPlanningTotalCostUsd clears the value of the "planning_total_cost_usd" field.
func (_u *DagUpdate) ClearPlanningTotalCostUsd() *DagUpdate {
	_u.mutation.ClearPlanningTotalCostUsd()
	return _u
}

// SetPlanningAttempts sets the "planning_attempts" field.
func (_u *DagUpdate) SetPlanningAttempts(v []map[string]interface{}) *DagUpdate {
	_u.mutation.SetPlanningAttempts(v)
	return _u
}

// AppendPlanningAttempts appends value to the "planning_attempts" field.
func (_u *DagUpdate) AppendPlanningAttempts(v []map[string]interface{}) *DagUpdate {
	_u.mutation.AppendPlanningAttempts(v)
	return _u
}

// ClearPlanningAttempts clears the value of the "planning_attempts" field.
func (_u *DagUpdate) ClearPlanningAttempts() *DagUpdate {
	_u.mutation.ClearPlanningAttempts()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DagUpdate) SetUpdatedAt(v time.Time) *DagUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddExecutionIDs adds the "executions" edge to the DagExecution entity by IDs.
func (_u *DagUpdate) AddExecutionIDs(ids ...string) *DagUpdate {
	_u.mutation.AddExecutionIDs(ids...)
	return _u
}

// AddExecutions adds the "executions" edges to the DagExecution entity.
func (_u *DagUpdate) AddExecutions(v ...*DagExecution) *DagUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExecutionIDs(ids...)
}

// Mutation returns the DagMutation object of the builder.
func (_u *DagUpdate) Mutation() *DagMutation {
	return _u.mutation
}

// ClearExecutions clears all "executions" edges to the DagExecution entity.
func (_u *DagUpdate) ClearExecutions() *DagUpdate {
	_u.mutation.ClearExecutions()
	return _u
}

// RemoveExecutionIDs removes the "executions" edge to DagExecution entities by IDs.
func (_u *DagUpdate) RemoveExecutionIDs(ids ...string) *DagUpdate {
	_u.mutation.RemoveExecutionIDs(ids...)
	return _u
}

// RemoveExecutions removes "executions" edges to DagExecution entities.
func (_u *DagUpdate) RemoveExecutions(v ...*DagExecution) *DagUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExecutionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DagUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DagUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DagUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DagUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DagUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := dag.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DagUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := dag.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Dag.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DagUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dag.Table, dag.Columns, sqlgraph.NewFieldSpec(dag.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(dag.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(dag.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(dag.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.Params(); ok {
		_spec.SetField(dag.FieldParams, field.TypeJSON, value)
	}
	if _u.mutation.ParamsCleared() {
		_spec.ClearField(dag.FieldParams, field.TypeJSON)
	}
	if value, ok := _u.mutation.AgentName(); ok {
		_spec.SetField(dag.FieldAgentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DagTitle(); ok {
		_spec.SetField(dag.FieldDagTitle, field.TypeString, value)
	}
	if _u.mutation.DagTitleCleared() {
		_spec.ClearField(dag.FieldDagTitle, field.TypeString)
	}
	if value, ok := _u.mutation.CronSchedule(); ok {
		_spec.SetField(dag.FieldCronSchedule, field.TypeString, value)
	}
	if _u.mutation.CronScheduleCleared() {
		_spec.ClearField(dag.FieldCronSchedule, field.TypeString)
	}
	if value, ok := _u.mutation.ScheduleActive(); ok {
		_spec.SetField(dag.FieldScheduleActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastRunAt(); ok {
		_spec.SetField(dag.FieldLastRunAt, field.TypeTime, value)
	}
	if _u.mutation.LastRunAtCleared() {
		_spec.ClearField(dag.FieldLastRunAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(dag.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlanningTotalUsage(); ok {
		_spec.SetField(dag.FieldPlanningTotalUsage, field.TypeJSON, value)
	}
	if _u.mutation.PlanningTotalUsageCleared() {
		_spec.ClearField(dag.FieldPlanningTotalUsage, field.TypeJSON)
	}
	if value, ok := _u.mutation.PlanningTotalCostUsd(); ok {
		_spec.SetField(dag.FieldPlanningTotalCostUsd, field.TypeString, value)
	}
	if _u.mutation.PlanningTotalCostUsdCleared() {
		_spec.ClearField(dag.FieldPlanningTotalCostUsd, field.TypeString)
	}
	if value, ok := _u.mutation.PlanningAttempts(); ok {
		_spec.SetField(dag.FieldPlanningAttempts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPlanningAttempts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, dag.FieldPlanningAttempts, value)
		})
	}
	if _u.mutation.PlanningAttemptsCleared() {
		_spec.ClearField(dag.FieldPlanningAttempts, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(dag.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExecutionsIDs(); len(nodes) > 0 && !_u.mutation.ExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExecutionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dag.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DagUpdateOne is the builder for updating a single Dag entity.
type DagUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DagMutation
}

// SetStatus sets the "status" field.
func (_u *DagUpdateOne) SetStatus(v dag.Status) *DagUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DagUpdateOne) SetNillableStatus(v *dag.Status) *DagUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *DagUpdateOne) SetResult(v map[string]interface{}) *DagUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *DagUpdateOne) ClearResult() *DagUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetParams sets the "params" field.
func (_u *DagUpdateOne) SetParams(v map[string]interface{}) *DagUpdateOne {
	_u.mutation.SetParams(v)
	return _u
}

// ClearParams clears the value of the "params" field.
func (_u *DagUpdateOne) ClearParams() *DagUpdateOne {
	_u.mutation.ClearParams()
	return _u
}

// SetAgentName sets the "agent_name" field.
func (_u *DagUpdateOne) SetAgentName(v string) *DagUpdateOne {
	_u.mutation.SetAgentName(v)
	return _u
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_u *DagUpdateOne) SetNillableAgentName(v *string) *DagUpdateOne {
	if v != nil {
		_u.SetAgentName(*v)
	}
	return _u
}

// SetDagTitle sets the "dag_title" field.
func (_u *DagUpdateOne) SetDagTitle(v string) *DagUpdateOne {
	_u.mutation.SetDagTitle(v)
	return _u
}

// SetNillableDagTitle sets the "dag_title" field if the given value is not nil.
func (_u *DagUpdateOne) SetNillableDagTitle(v *string) *DagUpdateOne {
	if v != nil {
		_u.SetDagTitle(*v)
	}
	return _u
}

// ClearDagTitle clears the value of the "dag_title" field.
func (_u *DagUpdateOne) ClearDagTitle() *DagUpdateOne {
	_u.mutation.ClearDagTitle()
	return _u
}

// SetCronSchedule sets the "cron_schedule" field.
func (_u *DagUpdateOne) SetCronSchedule(v string) *DagUpdateOne {
	_u.mutation.SetCronSchedule(v)
	return _u
}

// SetNillableCronSchedule sets the "cron_schedule" field if the given value is not nil.
func (_u *DagUpdateOne) SetNillableCronSchedule(v *string) *DagUpdateOne {
	if v != nil {
		_u.SetCronSchedule(*v)
	}
	return _u
}

// ClearCronSchedule clears the value of the "cron_schedule" field.
func (_u *DagUpdateOne) ClearCronSchedule() *DagUpdateOne {
	_u.mutation.ClearCronSchedule()
	return _u
}

// SetScheduleActive sets the "schedule_active" field.
func (_u *DagUpdateOne) SetScheduleActive(v bool) *DagUpdateOne {
	_u.mutation.SetScheduleActive(v)
	return _u
}

// SetNillableScheduleActive sets the "schedule_active" field if the given value is not nil.
func (_u *DagUpdateOne) SetNillableScheduleActive(v *bool) *DagUpdateOne {
	if v != nil {
		_u.SetScheduleActive(*v)
	}
	return _u
}

// SetLastRunAt sets the "last_run_at" field.
func (_u *DagUpdateOne) SetLastRunAt(v time.Time) *DagUpdateOne {
	_u.mutation.SetLastRunAt(v)
	return _u
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (_u *DagUpdateOne) SetNillableLastRunAt(v *time.Time) *DagUpdateOne {
	if v != nil {
		_u.SetLastRunAt(*v)
	}
	return _u
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (_u *DagUpdateOne) ClearLastRunAt() *DagUpdateOne {
	_u.mutation.ClearLastRunAt()
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *DagUpdateOne) SetTimezone(v string) *DagUpdateOne {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *DagUpdateOne) SetNillableTimezone(v *string) *DagUpdateOne {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetPlanningTotalUsage sets the "planning_total_usage" field.
func (_u *DagUpdateOne) SetPlanningTotalUsage(v map[string]interface{}) *DagUpdateOne {
	_u.mutation.SetPlanningTotalUsage(v)
	return _u
}

// ClearPlanningTotalUsage clears the value of the "planning_total_usage" field.
func (_u *DagUpdateOne) ClearPlanningTotalUsage() *DagUpdateOne {
	_u.mutation.ClearPlanningTotalUsage()
	return _u
}

// SetPlanningTotalCostUsd sets the "planning_total_cost_usd" field.
func (_u *DagUpdateOne) SetPlanningTotalCostUsd(v string) *DagUpdateOne {
	_u.mutation.SetPlanningTotalCostUsd(v)
	return _u
}

// SetNillablePlanningTotalCostUsd sets the "planning_total_cost_usd" field if the given value is not nil.
func (_u *DagUpdateOne) SetNillablePlanningTotalCostUsd(v *string) *DagUpdateOne {
	if v != nil {
		_u.SetPlanningTotalCostUsd(*v)
	}
	return _u
}

// ClearPlanningTotalCostUsd clears the value of the "planning_total_cost_usd" field.
func (_u *DagUpdateOne) ClearPlanningTotalCostUsd() *DagUpdateOne {
	_u.mutation.ClearPlanningTotalCostUsd()
	return _u
}

// SetPlanningAttempts sets the "planning_attempts" field.
func (_u *DagUpdateOne) SetPlanningAttempts(v []map[string]interface{}) *DagUpdateOne {
	_u.mutation.SetPlanningAttempts(v)
	return _u
}

// AppendPlanningAttempts appends value to the "planning_attempts" field.
func (_u *DagUpdateOne) AppendPlanningAttempts(v []map[string]interface{}) *DagUpdateOne {
	_u.mutation.AppendPlanningAttempts(v)
	return _u
}

// ClearPlanningAttempts clears the value of the "planning_attempts" field.
func (_u *DagUpdateOne) ClearPlanningAttempts() *DagUpdateOne {
	_u.mutation.ClearPlanningAttempts()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DagUpdateOne) SetUpdatedAt(v time.Time) *DagUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddExecutionIDs adds the "executions" edge to the DagExecution entity by IDs.
func (_u *DagUpdateOne) AddExecutionIDs(ids ...string) *DagUpdateOne {
	_u.mutation.AddExecutionIDs(ids...)
	return _u
}

// AddExecutions adds the "executions" edges to the DagExecution entity.
func (_u *DagUpdateOne) AddExecutions(v ...*DagExecution) *DagUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExecutionIDs(ids...)
}

// Mutation returns the DagMutation object of the builder.
func (_u *DagUpdateOne) Mutation() *DagMutation {
	return _u.mutation
}

// ClearExecutions clears all "executions" edges to the DagExecution entity.
func (_u *DagUpdateOne) ClearExecutions() *DagUpdateOne {
	_u.mutation.ClearExecutions()
	return _u
}

// RemoveExecutionIDs removes the "executions" edge to DagExecution entities by IDs.
func (_u *DagUpdateOne) RemoveExecutionIDs(ids ...string) *DagUpdateOne {
	_u.mutation.RemoveExecutionIDs(ids...)
	return _u
}

// RemoveExecutions removes "executions" edges to DagExecution entities.
func (_u *DagUpdateOne) RemoveExecutions(v ...*DagExecution) *DagUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExecutionIDs(ids...)
}

// Where appends a list predicates to the DagUpdate builder.
func (_u *DagUpdateOne) Where(ps ...predicate.Dag) *DagUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DagUpdateOne) Select(field string, fields ...string) *DagUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Dag entity.
func (_u *DagUpdateOne) Save(ctx context.Context) (*Dag, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DagUpdateOne) SaveX(ctx context.Context) *Dag {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DagUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DagUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DagUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := dag.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DagUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := dag.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Dag.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DagUpdateOne) sqlSave(ctx context.Context) (_node *Dag, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dag.Table, dag.Columns, sqlgraph.NewFieldSpec(dag.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Dag.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dag.FieldID)
		for _, f := range fields {
			if !dag.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != dag.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(dag.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(dag.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(dag.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.Params(); ok {
		_spec.SetField(dag.FieldParams, field.TypeJSON, value)
	}
	if _u.mutation.ParamsCleared() {
		_spec.ClearField(dag.FieldParams, field.TypeJSON)
	}
	if value, ok := _u.mutation.AgentName(); ok {
		_spec.SetField(dag.FieldAgentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DagTitle(); ok {
		_spec.SetField(dag.FieldDagTitle, field.TypeString, value)
	}
	if _u.mutation.DagTitleCleared() {
		_spec.ClearField(dag.FieldDagTitle, field.TypeString)
	}
	if value, ok := _u.mutation.CronSchedule(); ok {
		_spec.SetField(dag.FieldCronSchedule, field.TypeString, value)
	}
	if _u.mutation.CronScheduleCleared() {
		_spec.ClearField(dag.FieldCronSchedule, field.TypeString)
	}
	if value, ok := _u.mutation.ScheduleActive(); ok {
		_spec.SetField(dag.FieldScheduleActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastRunAt(); ok {
		_spec.SetField(dag.FieldLastRunAt, field.TypeTime, value)
	}
	if _u.mutation.LastRunAtCleared() {
		_spec.ClearField(dag.FieldLastRunAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(dag.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlanningTotalUsage(); ok {
		_spec.SetField(dag.FieldPlanningTotalUsage, field.TypeJSON, value)
	}
	if _u.mutation.PlanningTotalUsageCleared() {
		_spec.ClearField(dag.FieldPlanningTotalUsage, field.TypeJSON)
	}
	if value, ok := _u.mutation.PlanningTotalCostUsd(); ok {
		_spec.SetField(dag.FieldPlanningTotalCostUsd, field.TypeString, value)
	}
	if _u.mutation.PlanningTotalCostUsdCleared() {
		_spec.ClearField(dag.FieldPlanningTotalCostUsd, field.TypeString)
	}
	if value, ok := _u.mutation.PlanningAttempts(); ok {
		_spec.SetField(dag.FieldPlanningAttempts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPlanningAttempts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, dag.FieldPlanningAttempts, value)
		})
	}
	if _u.mutation.PlanningAttemptsCleared() {
		_spec.ClearField(dag.FieldPlanningAttempts, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(dag.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExecutionsIDs(); len(nodes) > 0 && !_u.mutation.ExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExecutionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Dag{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dag.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
