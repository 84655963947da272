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
	"github.com/taskdag/taskdag/ent/dag"
	"github.com/taskdag/taskdag/ent/dagexecution"
	"github.com/taskdag/taskdag/ent/predicate"
	"github.com/taskdag/taskdag/ent/substep"
)

// DagExecutionUpdate is the builder for updating DagExecution entities.
type DagExecutionUpdate struct {
	config
	hooks    []Hook
	mutation *DagExecutionMutation
}

// Where appends a list predicates to the DagExecutionUpdate builder.
func (_u *DagExecutionUpdate) Where(ps ...predicate.DagExecution) *DagExecutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDagID sets the "dag_id" field.
func (_u *DagExecutionUpdate) SetDagID(v string) *DagExecutionUpdate {
	_u.mutation.SetDagID(v)
	return _u
}

// SetNillableDagID sets the "dag_id" field if the given value is not nil.
func (_u *DagExecutionUpdate) SetNillableDagID(v *string) *DagExecutionUpdate {
	if v != nil {
		_u.SetDagID(*v)
	}
	return _u
}

// ClearDagID clears the value of the "dag_id" field.
func (_u *DagExecutionUpdate) ClearDagID() *DagExecutionUpdate {
	_u.mutation.ClearDagID()
	return _u
}

// SetOriginalRequest sets the "original_request" field.
func (_u *DagExecutionUpdate) SetOriginalRequest(v string) *DagExecutionUpdate {
	_u.mutation.SetOriginalRequest(v)
	return _u
}

// SetNillableOriginalRequest sets the "original_request" field if the given value is not nil.
func (_u *DagExecutionUpdate) SetNillableOriginalRequest(v *string) *DagExecutionUpdate {
	if v != nil {
		_u.SetOriginalRequest(*v)
	}
	return _u
}

// SetPrimaryIntent sets the "primary_intent" field.
func (_u *DagExecutionUpdate) SetPrimaryIntent(v string) *DagExecutionUpdate {
	_u.mutation.SetPrimaryIntent(v)
	return _u
}

// SetNillablePrimaryIntent sets the "primary_intent" field if the given value is not nil.
func (_u *DagExecutionUpdate) SetNillablePrimaryIntent(v *string) *DagExecutionUpdate {
	if v != nil {
		_u.SetPrimaryIntent(*v)
	}
	return _u
}

// ClearPrimaryIntent clears the value of the "primary_intent" field.
func (_u *DagExecutionUpdate) ClearPrimaryIntent() *DagExecutionUpdate {
	_u.mutation.ClearPrimaryIntent()
	return _u
}

// SetStatus sets the "status" field.
func (_u *DagExecutionUpdate) SetStatus(v dagexecution.Status) *DagExecutionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DagExecutionUpdate) SetNillableStatus(v *dagexecution.Status) *DagExecutionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *DagExecutionUpdate) SetStartedAt(v time.Time) *DagExecutionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *DagExecutionUpdate) SetNillableStartedAt(v *time.Time) *DagExecutionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *DagExecutionUpdate) ClearStartedAt() *DagExecutionUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *DagExecutionUpdate) SetCompletedAt(v time.Time) *DagExecutionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *DagExecutionUpdate) SetNillableCompletedAt(v *time.Time) *DagExecutionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *DagExecutionUpdate) ClearCompletedAt() *DagExecutionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *DagExecutionUpdate) SetDurationMs(v int64) *DagExecutionUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *DagExecutionUpdate) SetNillableDurationMs(v *int64) *DagExecutionUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *DagExecutionUpdate) AddDurationMs(v int64) *DagExecutionUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *DagExecutionUpdate) ClearDurationMs() *DagExecutionUpdate {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetTotalTasks sets the "total_tasks" field.
func (_u *DagExecutionUpdate) SetTotalTasks(v int) *DagExecutionUpdate {
	_u.mutation.ResetTotalTasks()
	_u.mutation.SetTotalTasks(v)
	return _u
}

// SetNillableTotalTasks sets the "total_tasks" field if the given value is not nil.
func (_u *DagExecutionUpdate) SetNillableTotalTasks(v *int) *DagExecutionUpdate {
	if v != nil {
		_u.SetTotalTasks(*v)
	}
	return _u
}

// AddTotalTasks adds value to the "total_tasks" field.
func (_u *DagExecutionUpdate) AddTotalTasks(v int) *DagExecutionUpdate {
	_u.mutation.AddTotalTasks(v)
	return _u
}

// SetCompletedTasks sets the "completed_tasks" field.
func (_u *DagExecutionUpdate) SetCompletedTasks(v int) *DagExecutionUpdate {
	_u.mutation.ResetCompletedTasks()
	_u.mutation.SetCompletedTasks(v)
	return _u
}

// SetNillableCompletedTasks sets the "completed_tasks" field if the given value is not nil.
func (_u *DagExecutionUpdate) SetNillableCompletedTasks(v *int) *DagExecutionUpdate {
	if v != nil {
		_u.SetCompletedTasks(*v)
	}
	return _u
}

// AddCompletedTasks adds value to the "completed_tasks" field.
func (_u *DagExecutionUpdate) AddCompletedTasks(v int) *DagExecutionUpdate {
	_u.mutation.AddCompletedTasks(v)
	return _u
}

// SetFailedTasks sets the "failed_tasks" field.
func (_u *DagExecutionUpdate) SetFailedTasks(v int) *DagExecutionUpdate {
	_u.mutation.ResetFailedTasks()
	_u.mutation.SetFailedTasks(v)
	return _u
}

// SetNillableFailedTasks sets the "failed_tasks" field if the given value is not nil.
func (_u *DagExecutionUpdate) SetNillableFailedTasks(v *int) *DagExecutionUpdate {
	if v != nil {
		_u.SetFailedTasks(*v)
	}
	return _u
}

// AddFailedTasks adds value to the "failed_tasks" field.
func (_u *DagExecutionUpdate) AddFailedTasks(v int) *DagExecutionUpdate {
	_u.mutation.AddFailedTasks(v)
	return _u
}

// SetWaitingTasks sets the "waiting_tasks" field.
func (_u *DagExecutionUpdate) SetWaitingTasks(v int) *DagExecutionUpdate {
	_u.mutation.ResetWaitingTasks()
	_u.mutation.SetWaitingTasks(v)
	return _u
}

// SetNillableWaitingTasks sets the "waiting_tasks" field if the given value is not nil.
func (_u *DagExecutionUpdate) SetNillableWaitingTasks(v *int) *DagExecutionUpdate {
	if v != nil {
		_u.SetWaitingTasks(*v)
	}
	return _u
}

// AddWaitingTasks adds value to the "waiting_tasks" field.
func (_u *DagExecutionUpdate) AddWaitingTasks(v int) *DagExecutionUpdate {
	_u.mutation.AddWaitingTasks(v)
	return _u
}

// SetFinalResult sets the "final_result" field.
func (_u *DagExecutionUpdate) SetFinalResult(v string) *DagExecutionUpdate {
	_u.mutation.SetFinalResult(v)
	return _u
}

// SetNillableFinalResult sets the "final_result" field if the given value is not nil.
func (_u *DagExecutionUpdate) SetNillableFinalResult(v *string) *DagExecutionUpdate {
	if v != nil {
		_u.SetFinalResult(*v)
	}
	return _u
}

// ClearFinalResult clears the value of the "final_result" field.
func (_u *DagExecutionUpdate) ClearFinalResult() *DagExecutionUpdate {
	_u.mutation.ClearFinalResult()
	return _u
}

// SetSynthesisResult sets the "synthesis_result" field.
func (_u *DagExecutionUpdate) SetSynthesisResult(v map[string]interface{}) *DagExecutionUpdate {
	_u.mutation.SetSynthesisResult(v)
	return _u
}

// ClearSynthesisResult clears the value of the "synthesis_result" field.
func (_u *DagExecutionUpdate) ClearSynthesisResult() *DagExecutionUpdate {
	_u.mutation.ClearSynthesisResult()
	return _u
}

// SetSuspendedReason sets the "suspended_reason" field.
func (_u *DagExecutionUpdate) SetSuspendedReason(v string) *DagExecutionUpdate {
	_u.mutation.SetSuspendedReason(v)
	return _u
}

// SetNillableSuspendedReason sets the "suspended_reason" field if the given value is not nil.
func (_u *DagExecutionUpdate) SetNillableSuspendedReason(v *string) *DagExecutionUpdate {
	if v != nil {
		_u.SetSuspendedReason(*v)
	}
	return _u
}

// ClearSuspendedReason clears the value of the "suspended_reason" field.
func (_u *DagExecutionUpdate) ClearSuspendedReason() *DagExecutionUpdate {
	_u.mutation.ClearSuspendedReason()
	return _u
}

// SetSuspendedAt sets the "suspended_at" field.
func (_u *DagExecutionUpdate) SetSuspendedAt(v time.Time) *DagExecutionUpdate {
	_u.mutation.SetSuspendedAt(v)
	return _u
}

// SetNillableSuspendedAt sets the "suspended_at" field if the given value is not nil.
func (_u *DagExecutionUpdate) SetNillableSuspendedAt(v *time.Time) *DagExecutionUpdate {
	if v != nil {
		_u.SetSuspendedAt(*v)
	}
	return _u
}

// ClearSuspendedAt clears the value of the "suspended_at" field.
func (_u *DagExecutionUpdate) ClearSuspendedAt() *DagExecutionUpdate {
	_u.mutation.ClearSuspendedAt()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *DagExecutionUpdate) SetRetryCount(v int) *DagExecutionUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *DagExecutionUpdate) SetNillableRetryCount(v *int) *DagExecutionUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *DagExecutionUpdate) AddRetryCount(v int) *DagExecutionUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetLastRetryAt sets the "last_retry_at" field.
func (_u *DagExecutionUpdate) SetLastRetryAt(v time.Time) *DagExecutionUpdate {
	_u.mutation.SetLastRetryAt(v)
	return _u
}

// SetNillableLastRetryAt sets the "last_retry_at" field if the given value is not nil.
func (_u *DagExecutionUpdate) SetNillableLastRetryAt(v *time.Time) *DagExecutionUpdate {
	if v != nil {
		_u.SetLastRetryAt(*v)
	}
	return _u
}

// ClearLastRetryAt clears the value of the "last_retry_at" field.
func (_u *DagExecutionUpdate) ClearLastRetryAt() *DagExecutionUpdate {
	_u.mutation.ClearLastRetryAt()
	return _u
}

// SetTotalUsage sets the "total_usage" field.
func (_u *DagExecutionUpdate) SetTotalUsage(v map[string]interface{}) *DagExecutionUpdate {
	_u.mutation.SetTotalUsage(v)
	return _u
}

// ClearTotalUsage clears the value of the "total_usage" field.
func (_u *DagExecutionUpdate) ClearTotalUsage() *DagExecutionUpdate {
	_u.mutation.ClearTotalUsage()
	return _u
}

// SetTotalCostUsd sets the "total_cost_usd" field.
func (_u *DagExecutionUpdate) SetTotalCostUsd(v string) *DagExecutionUpdate {
	_u.mutation.SetTotalCostUsd(v)
	return _u
}

// SetNillableTotalCostUsd sets the "total_cost_usd" field if the given value is not nil.
func (_u *DagExecutionUpdate) SetNillableTotalCostUsd(v *string) *DagExecutionUpdate {
	if v != nil {
		_u.SetTotalCostUsd(*v)
	}
	return _u
}

// ClearTotalCostUsd clears the value of the "total_cost_usd" field.
func (_u *DagExecutionUpdate) ClearTotalCostUsd() *DagExecutionUpdate {
	_u.mutation.ClearTotalCostUsd()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DagExecutionUpdate) SetUpdatedAt(v time.Time) *DagExecutionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDag sets the "dag" edge to the Dag entity.
func (_u *DagExecutionUpdate) SetDag(v *Dag) *DagExecutionUpdate {
	return _u.SetDagID(v.ID)
}

// AddSubStepIDs adds the "sub_steps" edge to the SubStep entity by IDs.
func (_u *DagExecutionUpdate) AddSubStepIDs(ids ...string) *DagExecutionUpdate {
	_u.mutation.AddSubStepIDs(ids...)
	return _u
}

// AddSubSteps adds the "sub_steps" edges to the SubStep entity.
func (_u *DagExecutionUpdate) AddSubSteps(v ...*SubStep) *DagExecutionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubStepIDs(ids...)
}

// Mutation returns the DagExecutionMutation object of the builder.
func (_u *DagExecutionUpdate) Mutation() *DagExecutionMutation {
	return _u.mutation
}

// ClearDag clears the "dag" edge to the Dag entity.
func (_u *DagExecutionUpdate) ClearDag() *DagExecutionUpdate {
	_u.mutation.ClearDag()
	return _u
}

// ClearSubSteps clears all "sub_steps" edges to the SubStep entity.
func (_u *DagExecutionUpdate) ClearSubSteps() *DagExecutionUpdate {
	_u.mutation.ClearSubSteps()
	return _u
}

// RemoveSubStepIDs removes the "sub_steps" edge to SubStep entities by IDs.
func (_u *DagExecutionUpdate) RemoveSubStepIDs(ids ...string) *DagExecutionUpdate {
	_u.mutation.RemoveSubStepIDs(ids...)
	return _u
}

// RemoveSubSteps removes "sub_steps" edges to SubStep entities.
func (_u *DagExecutionUpdate) RemoveSubSteps(v ...*SubStep) *DagExecutionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubStepIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DagExecutionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DagExecutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DagExecutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DagExecutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DagExecutionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := dagexecution.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DagExecutionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := dagexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DagExecution.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DagExecutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dagexecution.Table, dagexecution.Columns, sqlgraph.NewFieldSpec(dagexecution.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OriginalRequest(); ok {
		_spec.SetField(dagexecution.FieldOriginalRequest, field.TypeString, value)
	}
	if value, ok := _u.mutation.PrimaryIntent(); ok {
		_spec.SetField(dagexecution.FieldPrimaryIntent, field.TypeString, value)
	}
	if _u.mutation.PrimaryIntentCleared() {
		_spec.ClearField(dagexecution.FieldPrimaryIntent, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(dagexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(dagexecution.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(dagexecution.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(dagexecution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(dagexecution.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(dagexecution.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(dagexecution.FieldDurationMs, field.TypeInt64, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(dagexecution.FieldDurationMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.TotalTasks(); ok {
		_spec.SetField(dagexecution.FieldTotalTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTasks(); ok {
		_spec.AddField(dagexecution.FieldTotalTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedTasks(); ok {
		_spec.SetField(dagexecution.FieldCompletedTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedTasks(); ok {
		_spec.AddField(dagexecution.FieldCompletedTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedTasks(); ok {
		_spec.SetField(dagexecution.FieldFailedTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedTasks(); ok {
		_spec.AddField(dagexecution.FieldFailedTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WaitingTasks(); ok {
		_spec.SetField(dagexecution.FieldWaitingTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWaitingTasks(); ok {
		_spec.AddField(dagexecution.FieldWaitingTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FinalResult(); ok {
		_spec.SetField(dagexecution.FieldFinalResult, field.TypeString, value)
	}
	if _u.mutation.FinalResultCleared() {
		_spec.ClearField(dagexecution.FieldFinalResult, field.TypeString)
	}
	if value, ok := _u.mutation.SynthesisResult(); ok {
		_spec.SetField(dagexecution.FieldSynthesisResult, field.TypeJSON, value)
	}
	if _u.mutation.SynthesisResultCleared() {
		_spec.ClearField(dagexecution.FieldSynthesisResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.SuspendedReason(); ok {
		_spec.SetField(dagexecution.FieldSuspendedReason, field.TypeString, value)
	}
	if _u.mutation.SuspendedReasonCleared() {
		_spec.ClearField(dagexecution.FieldSuspendedReason, field.TypeString)
	}
	if value, ok := _u.mutation.SuspendedAt(); ok {
		_spec.SetField(dagexecution.FieldSuspendedAt, field.TypeTime, value)
	}
	if _u.mutation.SuspendedAtCleared() {
		_spec.ClearField(dagexecution.FieldSuspendedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(dagexecution.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(dagexecution.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastRetryAt(); ok {
		_spec.SetField(dagexecution.FieldLastRetryAt, field.TypeTime, value)
	}
	if _u.mutation.LastRetryAtCleared() {
		_spec.ClearField(dagexecution.FieldLastRetryAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TotalUsage(); ok {
		_spec.SetField(dagexecution.FieldTotalUsage, field.TypeJSON, value)
	}
	if _u.mutation.TotalUsageCleared() {
		_spec.ClearField(dagexecution.FieldTotalUsage, field.TypeJSON)
	}
	if value, ok := _u.mutation.TotalCostUsd(); ok {
		_spec.SetField(dagexecution.FieldTotalCostUsd, field.TypeString, value)
	}
	if _u.mutation.TotalCostUsdCleared() {
		_spec.ClearField(dagexecution.FieldTotalCostUsd, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(dagexecution.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DagCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DagIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SubStepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubStepsIDs(); len(nodes) > 0 && !_u.mutation.SubStepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubStepsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dagexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DagExecutionUpdateOne is the builder for updating a single DagExecution entity.
type DagExecutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DagExecutionMutation
}

// SetDagID sets the "dag_id" field.
func (_u *DagExecutionUpdateOne) SetDagID(v string) *DagExecutionUpdateOne {
	_u.mutation.SetDagID(v)
	return _u
}

// SetNillableDagID sets the "dag_id" field if the given value is not nil.
func (_u *DagExecutionUpdateOne) SetNillableDagID(v *string) *DagExecutionUpdateOne {
	if v != nil {
		_u.SetDagID(*v)
	}
	return _u
}

// ClearDagID clears the value of the "dag_id" field.
func (_u *DagExecutionUpdateOne) ClearDagID() *DagExecutionUpdateOne {
	_u.mutation.ClearDagID()
	return _u
}

// SetOriginalRequest sets the "original_request" field.
func (_u *DagExecutionUpdateOne) SetOriginalRequest(v string) *DagExecutionUpdateOne {
	_u.mutation.SetOriginalRequest(v)
	return _u
}

// SetNillableOriginalRequest sets the "original_request" field if the given value is not nil.
func (_u *DagExecutionUpdateOne) SetNillableOriginalRequest(v *string) *DagExecutionUpdateOne {
	if v != nil {
		_u.SetOriginalRequest(*v)
	}
	return _u
}

// SetPrimaryIntent sets the "primary_intent" field.
func (_u *DagExecutionUpdateOne) SetPrimaryIntent(v string) *DagExecutionUpdateOne {
	_u.mutation.SetPrimaryIntent(v)
	return _u
}

// SetNillablePrimaryIntent sets the "primary_intent" field if the given value is not nil.
func (_u *DagExecutionUpdateOne) SetNillablePrimaryIntent(v *string) *DagExecutionUpdateOne {
	if v != nil {
		_u.SetPrimaryIntent(*v)
	}
	return _u
}

// ClearPrimaryIntent clears the value of the "primary_intent" field.
func (_u *DagExecutionUpdateOne) ClearPrimaryIntent() *DagExecutionUpdateOne {
	_u.mutation.ClearPrimaryIntent()
	return _u
}

// SetStatus sets the "status" field.
func (_u *DagExecutionUpdateOne) SetStatus(v dagexecution.Status) *DagExecutionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DagExecutionUpdateOne) SetNillableStatus(v *dagexecution.Status) *DagExecutionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *DagExecutionUpdateOne) SetStartedAt(v time.Time) *DagExecutionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *DagExecutionUpdateOne) SetNillableStartedAt(v *time.Time) *DagExecutionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *DagExecutionUpdateOne) ClearStartedAt() *DagExecutionUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *DagExecutionUpdateOne) SetCompletedAt(v time.Time) *DagExecutionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *DagExecutionUpdateOne) SetNillableCompletedAt(v *time.Time) *DagExecutionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *DagExecutionUpdateOne) ClearCompletedAt() *DagExecutionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *DagExecutionUpdateOne) SetDurationMs(v int64) *DagExecutionUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *DagExecutionUpdateOne) SetNillableDurationMs(v *int64) *DagExecutionUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *DagExecutionUpdateOne) AddDurationMs(v int64) *DagExecutionUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *DagExecutionUpdateOne) ClearDurationMs() *DagExecutionUpdateOne {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetTotalTasks sets the "total_tasks" field.
func (_u *DagExecutionUpdateOne) SetTotalTasks(v int) *DagExecutionUpdateOne {
	_u.mutation.ResetTotalTasks()
	_u.mutation.SetTotalTasks(v)
	return _u
}

// SetNillableTotalTasks sets the "total_tasks" field if the given value is not nil.
func (_u *DagExecutionUpdateOne) SetNillableTotalTasks(v *int) *DagExecutionUpdateOne {
	if v != nil {
		_u.SetTotalTasks(*v)
	}
	return _u
}

// AddTotalTasks adds value to the "total_tasks" field.
func (_u *DagExecutionUpdateOne) AddTotalTasks(v int) *DagExecutionUpdateOne {
	_u.mutation.AddTotalTasks(v)
	return _u
}

// SetCompletedTasks sets the "completed_tasks" field.
func (_u *DagExecutionUpdateOne) SetCompletedTasks(v int) *DagExecutionUpdateOne {
	_u.mutation.ResetCompletedTasks()
	_u.mutation.SetCompletedTasks(v)
	return _u
}

// SetNillableCompletedTasks sets the "completed_tasks" field if the given value is not nil.
func (_u *DagExecutionUpdateOne) SetNillableCompletedTasks(v *int) *DagExecutionUpdateOne {
	if v != nil {
		_u.SetCompletedTasks(*v)
	}
	return _u
}

// AddCompletedTasks adds value to the "completed_tasks" field.
func (_u *DagExecutionUpdateOne) AddCompletedTasks(v int) *DagExecutionUpdateOne {
	_u.mutation.AddCompletedTasks(v)
	return _u
}

// SetFailedTasks sets the "failed_tasks" field.
func (_u *DagExecutionUpdateOne) SetFailedTasks(v int) *DagExecutionUpdateOne {
	_u.mutation.ResetFailedTasks()
	_u.mutation.SetFailedTasks(v)
	return _u
}

// SetNillableFailedTasks sets the "failed_tasks" field if the given value is not nil.
func (_u *DagExecutionUpdateOne) SetNillableFailedTasks(v *int) *DagExecutionUpdateOne {
	if v != nil {
		_u.SetFailedTasks(*v)
	}
	return _u
}

// AddFailedTasks adds value to the "failed_tasks" field.
func (_u *DagExecutionUpdateOne) AddFailedTasks(v int) *DagExecutionUpdateOne {
	_u.mutation.AddFailedTasks(v)
	return _u
}

// SetWaitingTasks sets the "waiting_tasks" field.
func (_u *DagExecutionUpdateOne) SetWaitingTasks(v int) *DagExecutionUpdateOne {
	_u.mutation.ResetWaitingTasks()
	_u.mutation.SetWaitingTasks(v)
	return _u
}

// SetNillableWaitingTasks sets the "waiting_tasks" field if the given value is not nil.
func (_u *DagExecutionUpdateOne) SetNillableWaitingTasks(v *int) *DagExecutionUpdateOne {
	if v != nil {
		_u.SetWaitingTasks(*v)
	}
	return _u
}

// AddWaitingTasks adds value to the "waiting_tasks" field.
func (_u *DagExecutionUpdateOne) AddWaitingTasks(v int) *DagExecutionUpdateOne {
	_u.mutation.AddWaitingTasks(v)
	return _u
}

// SetFinalResult sets the "final_result" field.
func (_u *DagExecutionUpdateOne) SetFinalResult(v string) *DagExecutionUpdateOne {
	_u.mutation.SetFinalResult(v)
	return _u
}

// SetNillableFinalResult sets the "final_result" field if the given value is not nil.
func (_u *DagExecutionUpdateOne) SetNillableFinalResult(v *string) *DagExecutionUpdateOne {
	if v != nil {
		_u.SetFinalResult(*v)
	}
	return _u
}

// ClearFinalResult clears the value of the "final_result" field.
func (_u *DagExecutionUpdateOne) ClearFinalResult() *DagExecutionUpdateOne {
	_u.mutation.ClearFinalResult()
	return _u
}

// SetSynthesisResult sets the "synthesis_result" field.
func (_u *DagExecutionUpdateOne) SetSynthesisResult(v map[string]interface{}) *DagExecutionUpdateOne {
	_u.mutation.SetSynthesisResult(v)
	return _u
}

// ClearSynthesisResult clears the value of the "synthesis_result" field.
func (_u *DagExecutionUpdateOne) ClearSynthesisResult() *DagExecutionUpdateOne {
	_u.mutation.ClearSynthesisResult()
	return _u
}

// SetSuspendedReason sets the "suspended_reason" field.
func (_u *DagExecutionUpdateOne) SetSuspendedReason(v string) *DagExecutionUpdateOne {
	_u.mutation.SetSuspendedReason(v)
	return _u
}

// SetNillableSuspendedReason sets the "suspended_reason" field if the given value is not nil.
func (_u *DagExecutionUpdateOne) SetNillableSuspendedReason(v *string) *DagExecutionUpdateOne {
	if v != nil {
		_u.SetSuspendedReason(*v)
	}
	return _u
}

// ClearSuspendedReason clears the value of the "suspended_reason" field.
func (_u *DagExecutionUpdateOne) ClearSuspendedReason() *DagExecutionUpdateOne {
	_u.mutation.ClearSuspendedReason()
	return _u
}

// SetSuspendedAt sets the "suspended_at" field.
func (_u *DagExecutionUpdateOne) SetSuspendedAt(v time.Time) *DagExecutionUpdateOne {
	_u.mutation.SetSuspendedAt(v)
	return _u
}

// SetNillableSuspendedAt sets the "suspended_at" field if the given value is not nil.
func (_u *DagExecutionUpdateOne) SetNillableSuspendedAt(v *time.Time) *DagExecutionUpdateOne {
	if v != nil {
		_u.SetSuspendedAt(*v)
	}
	return _u
}

// ClearSuspendedAt clears the value of the "suspended_at" field.
func (_u *DagExecutionUpdateOne) ClearSuspendedAt() *DagExecutionUpdateOne {
	_u.mutation.ClearSuspendedAt()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *DagExecutionUpdateOne) SetRetryCount(v int) *DagExecutionUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *DagExecutionUpdateOne) SetNillableRetryCount(v *int) *DagExecutionUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *DagExecutionUpdateOne) AddRetryCount(v int) *DagExecutionUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetLastRetryAt sets the "last_retry_at" field.
func (_u *DagExecutionUpdateOne) SetLastRetryAt(v time.Time) *DagExecutionUpdateOne {
	_u.mutation.SetLastRetryAt(v)
	return _u
}

// SetNillableLastRetryAt sets the "last_retry_at" field if the given value is not nil.
func (_u *DagExecutionUpdateOne) SetNillableLastRetryAt(v *time.Time) *DagExecutionUpdateOne {
	if v != nil {
		_u.SetLastRetryAt(*v)
	}
	return _u
}

// ClearLastRetryAt clears the value of the "last_retry_at" field.
func (_u *DagExecutionUpdateOne) ClearLastRetryAt() *DagExecutionUpdateOne {
	_u.mutation.ClearLastRetryAt()
	return _u
}

// SetTotalUsage sets the "total_usage" field.
func (_u *DagExecutionUpdateOne) SetTotalUsage(v map[string]interface{}) *DagExecutionUpdateOne {
	_u.mutation.SetTotalUsage(v)
	return _u
}

// ClearTotalUsage clears the value of the "total_usage" field.
func (_u *DagExecutionUpdateOne) ClearTotalUsage() *DagExecutionUpdateOne {
	_u.mutation.ClearTotalUsage()
	return _u
}

// SetTotalCostUsd sets the "total_cost_usd" field.
func (_u *DagExecutionUpdateOne) SetTotalCostUsd(v string) *DagExecutionUpdateOne {
	_u.mutation.SetTotalCostUsd(v)
	return _u
}

// SetNillableTotalCostUsd sets the "total_cost_usd" field if the given value is not nil.
func (_u *DagExecutionUpdateOne) SetNillableTotalCostUsd(v *string) *DagExecutionUpdateOne {
	if v != nil {
		_u.SetTotalCostUsd(*v)
	}
	return _u
}

// ClearTotalCostUsd clears the value of the "total_cost_usd" field.
func (_u *DagExecutionUpdateOne) ClearTotalCostUsd() *DagExecutionUpdateOne {
	_u.mutation.ClearTotalCostUsd()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DagExecutionUpdateOne) SetUpdatedAt(v time.Time) *DagExecutionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDag sets the "dag" edge to the Dag entity.
func (_u *DagExecutionUpdateOne) SetDag(v *Dag) *DagExecutionUpdateOne {
	return _u.SetDagID(v.ID)
}

// AddSubStepIDs adds the "sub_steps" edge to the SubStep entity by IDs.
func (_u *DagExecutionUpdateOne) AddSubStepIDs(ids ...string) *DagExecutionUpdateOne {
	_u.mutation.AddSubStepIDs(ids...)
	return _u
}

// AddSubSteps adds the "sub_steps" edges to the SubStep entity.
func (_u *DagExecutionUpdateOne) AddSubSteps(v ...*SubStep) *DagExecutionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubStepIDs(ids...)
}

// Mutation returns the DagExecutionMutation object of the builder.
func (_u *DagExecutionUpdateOne) Mutation() *DagExecutionMutation {
	return _u.mutation
}

// ClearDag clears the "dag" edge to the Dag entity.
func (_u *DagExecutionUpdateOne) ClearDag() *DagExecutionUpdateOne {
	_u.mutation.ClearDag()
	return _u
}

// ClearSubSteps clears all "sub_steps" edges to the SubStep entity.
func (_u *DagExecutionUpdateOne) ClearSubSteps() *DagExecutionUpdateOne {
	_u.mutation.ClearSubSteps()
	return _u
}

// RemoveSubStepIDs removes the "sub_steps" edge to SubStep entities by IDs.
func (_u *DagExecutionUpdateOne) RemoveSubStepIDs(ids ...string) *DagExecutionUpdateOne {
	_u.mutation.RemoveSubStepIDs(ids...)
	return _u
}

// RemoveSubSteps removes "sub_steps" edges to SubStep entities.
func (_u *DagExecutionUpdateOne) RemoveSubSteps(v ...*SubStep) *DagExecutionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubStepIDs(ids...)
}

// Where appends a list predicates to the DagExecutionUpdate builder.
func (_u *DagExecutionUpdateOne) Where(ps ...predicate.DagExecution) *DagExecutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DagExecutionUpdateOne) Select(field string, fields ...string) *DagExecutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DagExecution entity.
func (_u *DagExecutionUpdateOne) Save(ctx context.Context) (*DagExecution, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DagExecutionUpdateOne) SaveX(ctx context.Context) *DagExecution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DagExecutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DagExecutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DagExecutionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := dagexecution.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DagExecutionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := dagexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DagExecution.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DagExecutionUpdateOne) sqlSave(ctx context.Context) (_node *DagExecution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dagexecution.Table, dagexecution.Columns, sqlgraph.NewFieldSpec(dagexecution.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DagExecution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dagexecution.FieldID)
		for _, f := range fields {
			if !dagexecution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != dagexecution.FieldID {
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
	if value, ok := _u.mutation.OriginalRequest(); ok {
		_spec.SetField(dagexecution.FieldOriginalRequest, field.TypeString, value)
	}
	if value, ok := _u.mutation.PrimaryIntent(); ok {
		_spec.SetField(dagexecution.FieldPrimaryIntent, field.TypeString, value)
	}
	if _u.mutation.PrimaryIntentCleared() {
		_spec.ClearField(dagexecution.FieldPrimaryIntent, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(dagexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(dagexecution.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(dagexecution.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(dagexecution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(dagexecution.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(dagexecution.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(dagexecution.FieldDurationMs, field.TypeInt64, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(dagexecution.FieldDurationMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.TotalTasks(); ok {
		_spec.SetField(dagexecution.FieldTotalTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTasks(); ok {
		_spec.AddField(dagexecution.FieldTotalTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedTasks(); ok {
		_spec.SetField(dagexecution.FieldCompletedTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedTasks(); ok {
		_spec.AddField(dagexecution.FieldCompletedTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedTasks(); ok {
		_spec.SetField(dagexecution.FieldFailedTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedTasks(); ok {
		_spec.AddField(dagexecution.FieldFailedTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WaitingTasks(); ok {
		_spec.SetField(dagexecution.FieldWaitingTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWaitingTasks(); ok {
		_spec.AddField(dagexecution.FieldWaitingTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FinalResult(); ok {
		_spec.SetField(dagexecution.FieldFinalResult, field.TypeString, value)
	}
	if _u.mutation.FinalResultCleared() {
		_spec.ClearField(dagexecution.FieldFinalResult, field.TypeString)
	}
	if value, ok := _u.mutation.SynthesisResult(); ok {
		_spec.SetField(dagexecution.FieldSynthesisResult, field.TypeJSON, value)
	}
	if _u.mutation.SynthesisResultCleared() {
		_spec.ClearField(dagexecution.FieldSynthesisResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.SuspendedReason(); ok {
		_spec.SetField(dagexecution.FieldSuspendedReason, field.TypeString, value)
	}
	if _u.mutation.SuspendedReasonCleared() {
		_spec.ClearField(dagexecution.FieldSuspendedReason, field.TypeString)
	}
	if value, ok := _u.mutation.SuspendedAt(); ok {
		_spec.SetField(dagexecution.FieldSuspendedAt, field.TypeTime, value)
	}
	if _u.mutation.SuspendedAtCleared() {
		_spec.ClearField(dagexecution.FieldSuspendedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(dagexecution.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(dagexecution.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastRetryAt(); ok {
		_spec.SetField(dagexecution.FieldLastRetryAt, field.TypeTime, value)
	}
	if _u.mutation.LastRetryAtCleared() {
		_spec.ClearField(dagexecution.FieldLastRetryAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TotalUsage(); ok {
		_spec.SetField(dagexecution.FieldTotalUsage, field.TypeJSON, value)
	}
	if _u.mutation.TotalUsageCleared() {
		_spec.ClearField(dagexecution.FieldTotalUsage, field.TypeJSON)
	}
	if value, ok := _u.mutation.TotalCostUsd(); ok {
		_spec.SetField(dagexecution.FieldTotalCostUsd, field.TypeString, value)
	}
	if _u.mutation.TotalCostUsdCleared() {
		_spec.ClearField(dagexecution.FieldTotalCostUsd, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(dagexecution.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DagCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DagIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SubStepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubStepsIDs(); len(nodes) > 0 && !_u.mutation.SubStepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubStepsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DagExecution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dagexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
