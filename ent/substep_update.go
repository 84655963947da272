// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/taskdag/taskdag/ent/predicate"
	"github.com/taskdag/taskdag/ent/substep"
)

// SubStepUpdate is the builder for updating SubStep entities.
type SubStepUpdate struct {
	config
	hooks    []Hook
	mutation *SubStepMutation
}

// Where appends a list predicates to the SubStepUpdate builder.
func (_u *SubStepUpdate) Where(ps ...predicate.SubStep) *SubStepUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *SubStepUpdate) SetTaskID(v string) *SubStepUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *SubStepUpdate) SetNillableTaskID(v *string) *SubStepUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *SubStepUpdate) SetDescription(v string) *SubStepUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SubStepUpdate) SetNillableDescription(v *string) *SubStepUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetThought sets the "thought" field.
func (_u *SubStepUpdate) SetThought(v string) *SubStepUpdate {
	_u.mutation.SetThought(v)
	return _u
}

// SetNillableThought sets the "thought" field if the given value is not nil.
func (_u *SubStepUpdate) SetNillableThought(v *string) *SubStepUpdate {
	if v != nil {
		_u.SetThought(*v)
	}
	return _u
}

// ClearThought clears the value of the "thought" field.
func (_u *SubStepUpdate) ClearThought() *SubStepUpdate {
	_u.mutation.ClearThought()
	return _u
}

// SetActionType sets the "action_type" field.
func (_u *SubStepUpdate) SetActionType(v substep.ActionType) *SubStepUpdate {
	_u.mutation.SetActionType(v)
	return _u
}

// SetNillableActionType sets the "action_type" field if the given value is not nil.
func (_u *SubStepUpdate) SetNillableActionType(v *substep.ActionType) *SubStepUpdate {
	if v != nil {
		_u.SetActionType(*v)
	}
	return _u
}

// SetToolOrPromptName sets the "tool_or_prompt_name" field.
func (_u *SubStepUpdate) SetToolOrPromptName(v string) *SubStepUpdate {
	_u.mutation.SetToolOrPromptName(v)
	return _u
}

// SetNillableToolOrPromptName sets the "tool_or_prompt_name" field if the given value is not nil.
func (_u *SubStepUpdate) SetNillableToolOrPromptName(v *string) *SubStepUpdate {
	if v != nil {
		_u.SetToolOrPromptName(*v)
	}
	return _u
}

// SetToolOrPromptParams sets the "tool_or_prompt_params" field.
func (_u *SubStepUpdate) SetToolOrPromptParams(v map[string]interface{}) *SubStepUpdate {
	_u.mutation.SetToolOrPromptParams(v)
	return _u
}

// ClearToolOrPromptParams clears the value of the "tool_or_prompt_params" field.
func (_u *SubStepUpdate) ClearToolOrPromptParams() *SubStepUpdate {
	_u.mutation.ClearToolOrPromptParams()
	return _u
}

// SetDependencies sets the "dependencies" field.
func (_u *SubStepUpdate) SetDependencies(v []string) *SubStepUpdate {
	_u.mutation.SetDependencies(v)
	return _u
}

// AppendDependencies appends value to the "dependencies" field.
func (_u *SubStepUpdate) AppendDependencies(v []string) *SubStepUpdate {
	_u.mutation.AppendDependencies(v)
	return _u
}

// ClearDependencies clears the value of the "dependencies" field.
func (_u *SubStepUpdate) ClearDependencies() *SubStepUpdate {
	_u.mutation.ClearDependencies()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SubStepUpdate) SetStatus(v substep.Status) *SubStepUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SubStepUpdate) SetNillableStatus(v *substep.Status) *SubStepUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *SubStepUpdate) SetStartedAt(v time.Time) *SubStepUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *SubStepUpdate) SetNillableStartedAt(v *time.Time) *SubStepUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *SubStepUpdate) ClearStartedAt() *SubStepUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SubStepUpdate) SetCompletedAt(v time.Time) *SubStepUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SubStepUpdate) SetNillableCompletedAt(v *time.Time) *SubStepUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SubStepUpdate) ClearCompletedAt() *SubStepUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *SubStepUpdate) SetDurationMs(v int64) *SubStepUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *SubStepUpdate) SetNillableDurationMs(v *int64) *SubStepUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *SubStepUpdate) AddDurationMs(v int64) *SubStepUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *SubStepUpdate) ClearDurationMs() *SubStepUpdate {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetResult sets the "result" field.
func (_u *SubStepUpdate) SetResult(v json.RawMessage) *SubStepUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// AppendResult appends value to the "result" field.
func (_u *SubStepUpdate) AppendResult(v json.RawMessage) *SubStepUpdate {
	_u.mutation.AppendResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *SubStepUpdate) ClearResult() *SubStepUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetError sets the "error" field.
func (_u *SubStepUpdate) SetError(v string) *SubStepUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *SubStepUpdate) SetNillableError(v *string) *SubStepUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *SubStepUpdate) ClearError() *SubStepUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetUsage sets the "usage" field.
func (_u *SubStepUpdate) SetUsage(v map[string]interface{}) *SubStepUpdate {
	_u.mutation.SetUsage(v)
	return _u
}

// ClearUsage clears the value of the "usage" field.
func (_u *SubStepUpdate) ClearUsage() *SubStepUpdate {
	_u.mutation.ClearUsage()
	return _u
}

// SetCostUsd sets the "cost_usd" field.
func (_u *SubStepUpdate) SetCostUsd(v string) *SubStepUpdate {
	_u.mutation.SetCostUsd(v)
	return _u
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_u *SubStepUpdate) SetNillableCostUsd(v *string) *SubStepUpdate {
	if v != nil {
		_u.SetCostUsd(*v)
	}
	return _u
}

// ClearCostUsd clears the value of the "cost_usd" field.
func (_u *SubStepUpdate) ClearCostUsd() *SubStepUpdate {
	_u.mutation.ClearCostUsd()
	return _u
}

// SetGenerationStats sets the "generation_stats" field.
func (_u *SubStepUpdate) SetGenerationStats(v map[string]interface{}) *SubStepUpdate {
	_u.mutation.SetGenerationStats(v)
	return _u
}

// ClearGenerationStats clears the value of the "generation_stats" field.
func (_u *SubStepUpdate) ClearGenerationStats() *SubStepUpdate {
	_u.mutation.ClearGenerationStats()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SubStepUpdate) SetUpdatedAt(v time.Time) *SubStepUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SubStepMutation object of the builder.
func (_u *SubStepUpdate) Mutation() *SubStepMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubStepUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubStepUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubStepUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubStepUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SubStepUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := substep.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubStepUpdate) check() error {
	if v, ok := _u.mutation.ActionType(); ok {
		if err := substep.ActionTypeValidator(v); err != nil {
			return &ValidationError{Name: "action_type", err: fmt.Errorf(`ent: validator failed for field "SubStep.action_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := substep.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SubStep.status": %w`, err)}
		}
	}
	if _u.mutation.ExecutionCleared() && len(_u.mutation.ExecutionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SubStep.execution"`)
	}
	return nil
}

func (_u *SubStepUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(substep.Table, substep.Columns, sqlgraph.NewFieldSpec(substep.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(substep.FieldTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(substep.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Thought(); ok {
		_spec.SetField(substep.FieldThought, field.TypeString, value)
	}
	if _u.mutation.ThoughtCleared() {
		_spec.ClearField(substep.FieldThought, field.TypeString)
	}
	if value, ok := _u.mutation.ActionType(); ok {
		_spec.SetField(substep.FieldActionType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ToolOrPromptName(); ok {
		_spec.SetField(substep.FieldToolOrPromptName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToolOrPromptParams(); ok {
		_spec.SetField(substep.FieldToolOrPromptParams, field.TypeJSON, value)
	}
	if _u.mutation.ToolOrPromptParamsCleared() {
		_spec.ClearField(substep.FieldToolOrPromptParams, field.TypeJSON)
	}
	if value, ok := _u.mutation.Dependencies(); ok {
		_spec.SetField(substep.FieldDependencies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDependencies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, substep.FieldDependencies, value)
		})
	}
	if _u.mutation.DependenciesCleared() {
		_spec.ClearField(substep.FieldDependencies, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(substep.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(substep.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(substep.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(substep.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(substep.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(substep.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(substep.FieldDurationMs, field.TypeInt64, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(substep.FieldDurationMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(substep.FieldResult, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResult(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, substep.FieldResult, value)
		})
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(substep.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(substep.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(substep.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.Usage(); ok {
		_spec.SetField(substep.FieldUsage, field.TypeJSON, value)
	}
	if _u.mutation.UsageCleared() {
		_spec.ClearField(substep.FieldUsage, field.TypeJSON)
	}
	if value, ok := _u.mutation.CostUsd(); ok {
		_spec.SetField(substep.FieldCostUsd, field.TypeString, value)
	}
	if _u.mutation.CostUsdCleared() {
		_spec.ClearField(substep.FieldCostUsd, field.TypeString)
	}
	if value, ok := _u.mutation.GenerationStats(); ok {
		_spec.SetField(substep.FieldGenerationStats, field.TypeJSON, value)
	}
	if _u.mutation.GenerationStatsCleared() {
		_spec.ClearField(substep.FieldGenerationStats, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(substep.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{substep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubStepUpdateOne is the builder for updating a single SubStep entity.
type SubStepUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubStepMutation
}

// SetTaskID sets the "task_id" field.
func (_u *SubStepUpdateOne) SetTaskID(v string) *SubStepUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *SubStepUpdateOne) SetNillableTaskID(v *string) *SubStepUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *SubStepUpdateOne) SetDescription(v string) *SubStepUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SubStepUpdateOne) SetNillableDescription(v *string) *SubStepUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetThought sets the "thought" field.
func (_u *SubStepUpdateOne) SetThought(v string) *SubStepUpdateOne {
	_u.mutation.SetThought(v)
	return _u
}

// SetNillableThought sets the "thought" field if the given value is not nil.
func (_u *SubStepUpdateOne) SetNillableThought(v *string) *SubStepUpdateOne {
	if v != nil {
		_u.SetThought(*v)
	}
	return _u
}

// ClearThought clears the value of the "thought" field.
func (_u *SubStepUpdateOne) ClearThought() *SubStepUpdateOne {
	_u.mutation.ClearThought()
	return _u
}

// SetActionType sets the "action_type" field.
func (_u *SubStepUpdateOne) SetActionType(v substep.ActionType) *SubStepUpdateOne {
	_u.mutation.SetActionType(v)
	return _u
}

// SetNillableActionType sets the "action_type" field if the given value is not nil.
func (_u *SubStepUpdateOne) SetNillableActionType(v *substep.ActionType) *SubStepUpdateOne {
	if v != nil {
		_u.SetActionType(*v)
	}
	return _u
}

// SetToolOrPromptName sets the "tool_or_prompt_name" field.
func (_u *SubStepUpdateOne) SetToolOrPromptName(v string) *SubStepUpdateOne {
	_u.mutation.SetToolOrPromptName(v)
	return _u
}

// SetNillableToolOrPromptName sets the "tool_or_prompt_name" field if the given value is not nil.
func (_u *SubStepUpdateOne) SetNillableToolOrPromptName(v *string) *SubStepUpdateOne {
	if v != nil {
		_u.SetToolOrPromptName(*v)
	}
	return _u
}

// SetToolOrPromptParams sets the "tool_or_prompt_params" field.
func (_u *SubStepUpdateOne) SetToolOrPromptParams(v map[string]interface{}) *SubStepUpdateOne {
	_u.mutation.SetToolOrPromptParams(v)
	return _u
}

// ClearToolOrPromptParams clears the value of the "tool_or_prompt_params" field.
func (_u *SubStepUpdateOne) ClearToolOrPromptParams() *SubStepUpdateOne {
	_u.mutation.ClearToolOrPromptParams()
	return _u
}

// SetDependencies sets the "dependencies" field.
func (_u *SubStepUpdateOne) SetDependencies(v []string) *SubStepUpdateOne {
	_u.mutation.SetDependencies(v)
	return _u
}

// AppendDependencies appends value to the "dependencies" field.
func (_u *SubStepUpdateOne) AppendDependencies(v []string) *SubStepUpdateOne {
	_u.mutation.AppendDependencies(v)
	return _u
}

// ClearDependencies clears the value of the "dependencies" field.
func (_u *SubStepUpdateOne) ClearDependencies() *SubStepUpdateOne {
	_u.mutation.ClearDependencies()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SubStepUpdateOne) SetStatus(v substep.Status) *SubStepUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SubStepUpdateOne) SetNillableStatus(v *substep.Status) *SubStepUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *SubStepUpdateOne) SetStartedAt(v time.Time) *SubStepUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *SubStepUpdateOne) SetNillableStartedAt(v *time.Time) *SubStepUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *SubStepUpdateOne) ClearStartedAt() *SubStepUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SubStepUpdateOne) SetCompletedAt(v time.Time) *SubStepUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SubStepUpdateOne) SetNillableCompletedAt(v *time.Time) *SubStepUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SubStepUpdateOne) ClearCompletedAt() *SubStepUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *SubStepUpdateOne) SetDurationMs(v int64) *SubStepUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *SubStepUpdateOne) SetNillableDurationMs(v *int64) *SubStepUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *SubStepUpdateOne) AddDurationMs(v int64) *SubStepUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *SubStepUpdateOne) ClearDurationMs() *SubStepUpdateOne {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetResult sets the "result" field.
func (_u *SubStepUpdateOne) SetResult(v json.RawMessage) *SubStepUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// AppendResult appends value to the "result" field.
func (_u *SubStepUpdateOne) AppendResult(v json.RawMessage) *SubStepUpdateOne {
	_u.mutation.AppendResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *SubStepUpdateOne) ClearResult() *SubStepUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetError sets the "error" field.
func (_u *SubStepUpdateOne) SetError(v string) *SubStepUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *SubStepUpdateOne) SetNillableError(v *string) *SubStepUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *SubStepUpdateOne) ClearError() *SubStepUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetUsage sets the "usage" field.
func (_u *SubStepUpdateOne) SetUsage(v map[string]interface{}) *SubStepUpdateOne {
	_u.mutation.SetUsage(v)
	return _u
}

// ClearUsage clears the value of the "usage" field.
func (_u *SubStepUpdateOne) ClearUsage() *SubStepUpdateOne {
	_u.mutation.ClearUsage()
	return _u
}

// SetCostUsd sets the "cost_usd" field.
func (_u *SubStepUpdateOne) SetCostUsd(v string) *SubStepUpdateOne {
	_u.mutation.SetCostUsd(v)
	return _u
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_u *SubStepUpdateOne) SetNillableCostUsd(v *string) *SubStepUpdateOne {
	if v != nil {
		_u.SetCostUsd(*v)
	}
	return _u
}

// ClearCostUsd clears the value of the "cost_usd" field.
func (_u *SubStepUpdateOne) ClearCostUsd() *SubStepUpdateOne {
	_u.mutation.ClearCostUsd()
	return _u
}

// SetGenerationStats sets the "generation_stats" field.
func (_u *SubStepUpdateOne) SetGenerationStats(v map[string]interface{}) *SubStepUpdateOne {
	_u.mutation.SetGenerationStats(v)
	return _u
}

// ClearGenerationStats clears the value of the "generation_stats" field.
func (_u *SubStepUpdateOne) ClearGenerationStats() *SubStepUpdateOne {
	_u.mutation.ClearGenerationStats()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SubStepUpdateOne) SetUpdatedAt(v time.Time) *SubStepUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SubStepMutation object of the builder.
func (_u *SubStepUpdateOne) Mutation() *SubStepMutation {
	return _u.mutation
}

// Where appends a list predicates to the SubStepUpdate builder.
func (_u *SubStepUpdateOne) Where(ps ...predicate.SubStep) *SubStepUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubStepUpdateOne) Select(field string, fields ...string) *SubStepUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SubStep entity.
func (_u *SubStepUpdateOne) Save(ctx context.Context) (*SubStep, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubStepUpdateOne) SaveX(ctx context.Context) *SubStep {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubStepUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubStepUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SubStepUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := substep.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubStepUpdateOne) check() error {
	if v, ok := _u.mutation.ActionType(); ok {
		if err := substep.ActionTypeValidator(v); err != nil {
			return &ValidationError{Name: "action_type", err: fmt.Errorf(`ent: validator failed for field "SubStep.action_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := substep.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SubStep.status": %w`, err)}
		}
	}
	if _u.mutation.ExecutionCleared() && len(_u.mutation.ExecutionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SubStep.execution"`)
	}
	return nil
}

func (_u *SubStepUpdateOne) sqlSave(ctx context.Context) (_node *SubStep, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(substep.Table, substep.Columns, sqlgraph.NewFieldSpec(substep.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SubStep.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, substep.FieldID)
		for _, f := range fields {
			if !substep.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != substep.FieldID {
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
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(substep.FieldTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(substep.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Thought(); ok {
		_spec.SetField(substep.FieldThought, field.TypeString, value)
	}
	if _u.mutation.ThoughtCleared() {
		_spec.ClearField(substep.FieldThought, field.TypeString)
	}
	if value, ok := _u.mutation.ActionType(); ok {
		_spec.SetField(substep.FieldActionType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ToolOrPromptName(); ok {
		_spec.SetField(substep.FieldToolOrPromptName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToolOrPromptParams(); ok {
		_spec.SetField(substep.FieldToolOrPromptParams, field.TypeJSON, value)
	}
	if _u.mutation.ToolOrPromptParamsCleared() {
		_spec.ClearField(substep.FieldToolOrPromptParams, field.TypeJSON)
	}
	if value, ok := _u.mutation.Dependencies(); ok {
		_spec.SetField(substep.FieldDependencies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDependencies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, substep.FieldDependencies, value)
		})
	}
	if _u.mutation.DependenciesCleared() {
		_spec.ClearField(substep.FieldDependencies, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(substep.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(substep.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(substep.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(substep.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(substep.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(substep.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(substep.FieldDurationMs, field.TypeInt64, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(substep.FieldDurationMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(substep.FieldResult, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResult(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, substep.FieldResult, value)
		})
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(substep.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(substep.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(substep.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.Usage(); ok {
		_spec.SetField(substep.FieldUsage, field.TypeJSON, value)
	}
	if _u.mutation.UsageCleared() {
		_spec.ClearField(substep.FieldUsage, field.TypeJSON)
	}
	if value, ok := _u.mutation.CostUsd(); ok {
		_spec.SetField(substep.FieldCostUsd, field.TypeString, value)
	}
	if _u.mutation.CostUsdCleared() {
		_spec.ClearField(substep.FieldCostUsd, field.TypeString)
	}
	if value, ok := _u.mutation.GenerationStats(); ok {
		_spec.SetField(substep.FieldGenerationStats, field.TypeJSON, value)
	}
	if _u.mutation.GenerationStatsCleared() {
		_spec.ClearField(substep.FieldGenerationStats, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(substep.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SubStep{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{substep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
