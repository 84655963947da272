// Code generated by ent, DO NOT EDIT.

package substep

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/taskdag/taskdag/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SubStep {
	return predicate.SubStep(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SubStep {
	return predicate.SubStep(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SubStep {
	return predicate.SubStep(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SubStep {
	return predicate.SubStep(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SubStep {
	return predicate.SubStep(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SubStep {
	return predicate.SubStep(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SubStep {
	return predicate.SubStep(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SubStep {
	return predicate.SubStep(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SubStep {
	return predicate.SubStep(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SubStep {
	return predicate.SubStep(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SubStep {
	return predicate.SubStep(sql.FieldContainsFold(FieldID, id))
}

// ExecutionID applies equality check predicate on the "execution_id" field. It's identical to ExecutionIDEQ.
func ExecutionID(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldEQ(FieldExecutionID, v))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldEQ(FieldTaskID, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldEQ(FieldDescription, v))
}

// Thought applies equality check predicate on the "thought" field. It's identical to ThoughtEQ.
func Thought(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldEQ(FieldThought, v))
}

// ToolOrPromptName applies equality check predicate on the "tool_or_prompt_name" field. It's identical to ToolOrPromptNameEQ.
func ToolOrPromptName(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldEQ(FieldToolOrPromptName, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.SubStep {
	return predicate.SubStep(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.SubStep {
	return predicate.SubStep(sql.FieldEQ(FieldCompletedAt, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int64) predicate.SubStep {
	return predicate.SubStep(sql.FieldEQ(FieldDurationMs, v))
}

// Error applies equality check predicate on the "error" field. It's identical to ErrorEQ.
func Error(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldEQ(FieldError, v))
}

// CostUsd applies equality check predicate on the "cost_usd" field. It's identical to CostUsdEQ.
func CostUsd(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldEQ(FieldCostUsd, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SubStep {
	return predicate.SubStep(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SubStep {
	return predicate.SubStep(sql.FieldEQ(FieldUpdatedAt, v))
}

// ExecutionIDEQ applies the EQ predicate on the "execution_id" field.
func ExecutionIDEQ(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldEQ(FieldExecutionID, v))
}

// ExecutionIDNEQ applies the NEQ predicate on the "execution_id" field.
func ExecutionIDNEQ(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldNEQ(FieldExecutionID, v))
}

// ExecutionIDIn applies the In predicate on the "execution_id" field.
func ExecutionIDIn(vs ...string) predicate.SubStep {
	return predicate.SubStep(sql.FieldIn(FieldExecutionID, vs...))
}

// ExecutionIDNotIn applies the NotIn predicate on the "execution_id" field.
func ExecutionIDNotIn(vs ...string) predicate.SubStep {
	return predicate.SubStep(sql.FieldNotIn(FieldExecutionID, vs...))
}

// ExecutionIDGT applies the GT predicate on the "execution_id" field.
func ExecutionIDGT(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldGT(FieldExecutionID, v))
}

// ExecutionIDGTE applies the GTE predicate on the "execution_id" field.
func ExecutionIDGTE(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldGTE(FieldExecutionID, v))
}

// ExecutionIDLT applies the LT predicate on the "execution_id" field.
func ExecutionIDLT(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldLT(FieldExecutionID, v))
}

// ExecutionIDLTE applies the LTE predicate on the "execution_id" field.
func ExecutionIDLTE(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldLTE(FieldExecutionID, v))
}

// ExecutionIDContains applies the Contains predicate on the "execution_id" field.
func ExecutionIDContains(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldContains(FieldExecutionID, v))
}

// ExecutionIDHasPrefix applies the HasPrefix predicate on the "execution_id" field.
func ExecutionIDHasPrefix(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldHasPrefix(FieldExecutionID, v))
}

// ExecutionIDHasSuffix applies the HasSuffix predicate on the "execution_id" field.
func ExecutionIDHasSuffix(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldHasSuffix(FieldExecutionID, v))
}

// ExecutionIDEqualFold applies the EqualFold predicate on the "execution_id" field.
func ExecutionIDEqualFold(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldEqualFold(FieldExecutionID, v))
}

// ExecutionIDContainsFold applies the ContainsFold predicate on the "execution_id" field.
func ExecutionIDContainsFold(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldContainsFold(FieldExecutionID, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.SubStep {
	return predicate.SubStep(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.SubStep {
	return predicate.SubStep(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldContainsFold(FieldTaskID, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.SubStep {
	return predicate.SubStep(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.SubStep {
	return predicate.SubStep(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldContainsFold(FieldDescription, v))
}

// ThoughtEQ applies the EQ predicate on the "thought" field.
func ThoughtEQ(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldEQ(FieldThought, v))
}

// ThoughtNEQ applies the NEQ predicate on the "thought" field.
func ThoughtNEQ(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldNEQ(FieldThought, v))
}

// ThoughtIn applies the In predicate on the "thought" field.
func ThoughtIn(vs ...string) predicate.SubStep {
	return predicate.SubStep(sql.FieldIn(FieldThought, vs...))
}

// ThoughtNotIn applies the NotIn predicate on the "thought" field.
func ThoughtNotIn(vs ...string) predicate.SubStep {
	return predicate.SubStep(sql.FieldNotIn(FieldThought, vs...))
}

// ThoughtGT applies the GT predicate on the "thought" field.
func ThoughtGT(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldGT(FieldThought, v))
}

// ThoughtGTE applies the GTE predicate on the "thought" field.
func ThoughtGTE(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldGTE(FieldThought, v))
}

// ThoughtLT applies the LT predicate on the "thought" field.
func ThoughtLT(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldLT(FieldThought, v))
}

// ThoughtLTE applies the LTE predicate on the "thought" field.
func ThoughtLTE(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldLTE(FieldThought, v))
}

// ThoughtContains applies the Contains predicate on the "thought" field.
func ThoughtContains(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldContains(FieldThought, v))
}

// ThoughtHasPrefix applies the HasPrefix predicate on the "thought" field.
func ThoughtHasPrefix(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldHasPrefix(FieldThought, v))
}

// ThoughtHasSuffix applies the HasSuffix predicate on the "thought" field.
func ThoughtHasSuffix(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldHasSuffix(FieldThought, v))
}

// ThoughtIsNil applies the IsNil predicate on the "thought" field.
func ThoughtIsNil() predicate.SubStep {
	return predicate.SubStep(sql.FieldIsNull(FieldThought))
}

// ThoughtNotNil applies the NotNil predicate on the "thought" field.
func ThoughtNotNil() predicate.SubStep {
	return predicate.SubStep(sql.FieldNotNull(FieldThought))
}

// ThoughtEqualFold applies the EqualFold predicate on the "thought" field.
func ThoughtEqualFold(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldEqualFold(FieldThought, v))
}

// ThoughtContainsFold applies the ContainsFold predicate on the "thought" field.
func ThoughtContainsFold(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldContainsFold(FieldThought, v))
}

// ActionTypeEQ applies the EQ predicate on the "action_type" field.
func ActionTypeEQ(v ActionType) predicate.SubStep {
	return predicate.SubStep(sql.FieldEQ(FieldActionType, v))
}

// ActionTypeNEQ applies the NEQ predicate on the "action_type" field.
func ActionTypeNEQ(v ActionType) predicate.SubStep {
	return predicate.SubStep(sql.FieldNEQ(FieldActionType, v))
}

// ActionTypeIn applies the In predicate on the "action_type" field.
func ActionTypeIn(vs ...ActionType) predicate.SubStep {
	return predicate.SubStep(sql.FieldIn(FieldActionType, vs...))
}

// ActionTypeNotIn applies the NotIn predicate on the "action_type" field.
func ActionTypeNotIn(vs ...ActionType) predicate.SubStep {
	return predicate.SubStep(sql.FieldNotIn(FieldActionType, vs...))
}

// ToolOrPromptNameEQ applies the EQ predicate on the "tool_or_prompt_name" field.
func ToolOrPromptNameEQ(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldEQ(FieldToolOrPromptName, v))
}

// ToolOrPromptNameNEQ applies the NEQ predicate on the "tool_or_prompt_name" field.
func ToolOrPromptNameNEQ(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldNEQ(FieldToolOrPromptName, v))
}

// ToolOrPromptNameIn applies the In predicate on the "tool_or_prompt_name" field.
func ToolOrPromptNameIn(vs ...string) predicate.SubStep {
	return predicate.SubStep(sql.FieldIn(FieldToolOrPromptName, vs...))
}

// ToolOrPromptNameNotIn applies the NotIn predicate on the "tool_or_prompt_name" field.
func ToolOrPromptNameNotIn(vs ...string) predicate.SubStep {
	return predicate.SubStep(sql.FieldNotIn(FieldToolOrPromptName, vs...))
}

// ToolOrPromptNameGT applies the GT predicate on the "tool_or_prompt_name" field.
func ToolOrPromptNameGT(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldGT(FieldToolOrPromptName, v))
}

// ToolOrPromptNameGTE applies the GTE predicate on the "tool_or_prompt_name" field.
func ToolOrPromptNameGTE(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldGTE(FieldToolOrPromptName, v))
}

// ToolOrPromptNameLT applies the LT predicate on the "tool_or_prompt_name" field.
func ToolOrPromptNameLT(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldLT(FieldToolOrPromptName, v))
}

// ToolOrPromptNameLTE applies the LTE predicate on the "tool_or_prompt_name" field.
func ToolOrPromptNameLTE(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldLTE(FieldToolOrPromptName, v))
}

// ToolOrPromptNameContains applies the Contains predicate on the "tool_or_prompt_name" field.
func ToolOrPromptNameContains(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldContains(FieldToolOrPromptName, v))
}

// ToolOrPromptNameHasPrefix applies the HasPrefix predicate on the "tool_or_prompt_name" field.
func ToolOrPromptNameHasPrefix(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldHasPrefix(FieldToolOrPromptName, v))
}

// ToolOrPromptNameHasSuffix applies the HasSuffix predicate on the "tool_or_prompt_name" field.
func ToolOrPromptNameHasSuffix(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldHasSuffix(FieldToolOrPromptName, v))
}

// ToolOrPromptNameEqualFold applies the EqualFold predicate on the "tool_or_prompt_name" field.
func ToolOrPromptNameEqualFold(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldEqualFold(FieldToolOrPromptName, v))
}

// ToolOrPromptNameContainsFold applies the ContainsFold predicate on the "tool_or_prompt_name" field.
func ToolOrPromptNameContainsFold(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldContainsFold(FieldToolOrPromptName, v))
}

// ToolOrPromptParamsIsNil applies the IsNil predicate on the "tool_or_prompt_params" field.
func ToolOrPromptParamsIsNil() predicate.SubStep {
	return predicate.SubStep(sql.FieldIsNull(FieldToolOrPromptParams))
}

// ToolOrPromptParamsNotNil applies the NotNil predicate on the "tool_or_prompt_params" field.
func ToolOrPromptParamsNotNil() predicate.SubStep {
	return predicate.SubStep(sql.FieldNotNull(FieldToolOrPromptParams))
}

// DependenciesIsNil applies the IsNil predicate on the "dependencies" field.
func DependenciesIsNil() predicate.SubStep {
	return predicate.SubStep(sql.FieldIsNull(FieldDependencies))
}

// DependenciesNotNil applies the NotNil predicate on the "dependencies" field.
func DependenciesNotNil() predicate.SubStep {
	return predicate.SubStep(sql.FieldNotNull(FieldDependencies))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.SubStep {
	return predicate.SubStep(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.SubStep {
	return predicate.SubStep(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.SubStep {
	return predicate.SubStep(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.SubStep {
	return predicate.SubStep(sql.FieldNotIn(FieldStatus, vs...))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.SubStep {
	return predicate.SubStep(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.SubStep {
	return predicate.SubStep(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.SubStep {
	return predicate.SubStep(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.SubStep {
	return predicate.SubStep(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.SubStep {
	return predicate.SubStep(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.SubStep {
	return predicate.SubStep(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.SubStep {
	return predicate.SubStep(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.SubStep {
	return predicate.SubStep(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.SubStep {
	return predicate.SubStep(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.SubStep {
	return predicate.SubStep(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.SubStep {
	return predicate.SubStep(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.SubStep {
	return predicate.SubStep(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.SubStep {
	return predicate.SubStep(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.SubStep {
	return predicate.SubStep(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.SubStep {
	return predicate.SubStep(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.SubStep {
	return predicate.SubStep(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.SubStep {
	return predicate.SubStep(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.SubStep {
	return predicate.SubStep(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.SubStep {
	return predicate.SubStep(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.SubStep {
	return predicate.SubStep(sql.FieldNotNull(FieldCompletedAt))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int64) predicate.SubStep {
	return predicate.SubStep(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int64) predicate.SubStep {
	return predicate.SubStep(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int64) predicate.SubStep {
	return predicate.SubStep(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int64) predicate.SubStep {
	return predicate.SubStep(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int64) predicate.SubStep {
	return predicate.SubStep(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int64) predicate.SubStep {
	return predicate.SubStep(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int64) predicate.SubStep {
	return predicate.SubStep(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int64) predicate.SubStep {
	return predicate.SubStep(sql.FieldLTE(FieldDurationMs, v))
}

// DurationMsIsNil applies the IsNil predicate on the "duration_ms" field.
func DurationMsIsNil() predicate.SubStep {
	return predicate.SubStep(sql.FieldIsNull(FieldDurationMs))
}

// DurationMsNotNil applies the NotNil predicate on the "duration_ms" field.
func DurationMsNotNil() predicate.SubStep {
	return predicate.SubStep(sql.FieldNotNull(FieldDurationMs))
}

// ResultIsNil applies the IsNil predicate on the "result" field.
func ResultIsNil() predicate.SubStep {
	return predicate.SubStep(sql.FieldIsNull(FieldResult))
}

// ResultNotNil applies the NotNil predicate on the "result" field.
func ResultNotNil() predicate.SubStep {
	return predicate.SubStep(sql.FieldNotNull(FieldResult))
}

// ErrorEQ applies the EQ predicate on the "error" field.
func ErrorEQ(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldEQ(FieldError, v))
}

// ErrorNEQ applies the NEQ predicate on the "error" field.
func ErrorNEQ(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldNEQ(FieldError, v))
}

// ErrorIn applies the In predicate on the "error" field.
func ErrorIn(vs ...string) predicate.SubStep {
	return predicate.SubStep(sql.FieldIn(FieldError, vs...))
}

// ErrorNotIn applies the NotIn predicate on the "error" field.
func ErrorNotIn(vs ...string) predicate.SubStep {
	return predicate.SubStep(sql.FieldNotIn(FieldError, vs...))
}

// ErrorGT applies the GT predicate on the "error" field.
func ErrorGT(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldGT(FieldError, v))
}

// ErrorGTE applies the GTE predicate on the "error" field.
func ErrorGTE(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldGTE(FieldError, v))
}

// ErrorLT applies the LT predicate on the "error" field.
func ErrorLT(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldLT(FieldError, v))
}

// ErrorLTE applies the LTE predicate on the "error" field.
func ErrorLTE(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldLTE(FieldError, v))
}

// ErrorContains applies the Contains predicate on the "error" field.
func ErrorContains(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldContains(FieldError, v))
}

// ErrorHasPrefix applies the HasPrefix predicate on the "error" field.
func ErrorHasPrefix(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldHasPrefix(FieldError, v))
}

// ErrorHasSuffix applies the HasSuffix predicate on the "error" field.
func ErrorHasSuffix(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldHasSuffix(FieldError, v))
}

// ErrorIsNil applies the IsNil predicate on the "error" field.
func ErrorIsNil() predicate.SubStep {
	return predicate.SubStep(sql.FieldIsNull(FieldError))
}

// ErrorNotNil applies the NotNil predicate on the "error" field.
func ErrorNotNil() predicate.SubStep {
	return predicate.SubStep(sql.FieldNotNull(FieldError))
}

// ErrorEqualFold applies the EqualFold predicate on the "error" field.
func ErrorEqualFold(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldEqualFold(FieldError, v))
}

// ErrorContainsFold applies the ContainsFold predicate on the "error" field.
func ErrorContainsFold(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldContainsFold(FieldError, v))
}

// UsageIsNil applies the IsNil predicate on the "usage" field.
func UsageIsNil() predicate.SubStep {
	return predicate.SubStep(sql.FieldIsNull(FieldUsage))
}

// UsageNotNil applies the NotNil predicate on the "usage" field.
func UsageNotNil() predicate.SubStep {
	return predicate.SubStep(sql.FieldNotNull(FieldUsage))
}

// CostUsdEQ applies the EQ predicate on the "cost_usd" field.
func CostUsdEQ(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldEQ(FieldCostUsd, v))
}

// CostUsdNEQ applies the NEQ predicate on the "cost_usd" field.
func CostUsdNEQ(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldNEQ(FieldCostUsd, v))
}

// CostUsdIn applies the In predicate on the "cost_usd" field.
func CostUsdIn(vs ...string) predicate.SubStep {
	return predicate.SubStep(sql.FieldIn(FieldCostUsd, vs...))
}

// CostUsdNotIn applies the NotIn predicate on the "cost_usd" field.
func CostUsdNotIn(vs ...string) predicate.SubStep {
	return predicate.SubStep(sql.FieldNotIn(FieldCostUsd, vs...))
}

// CostUsdGT applies the GT predicate on the "cost_usd" field.
func CostUsdGT(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldGT(FieldCostUsd, v))
}

// CostUsdGTE applies the GTE predicate on the "cost_usd" field.
func CostUsdGTE(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldGTE(FieldCostUsd, v))
}

// CostUsdLT applies the LT predicate on the "cost_usd" field.
func CostUsdLT(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldLT(FieldCostUsd, v))
}

// CostUsdLTE applies the LTE predicate on the "cost_usd" field.
func CostUsdLTE(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldLTE(FieldCostUsd, v))
}

// CostUsdContains applies the Contains predicate on the "cost_usd" field.
func CostUsdContains(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldContains(FieldCostUsd, v))
}

// CostUsdHasPrefix applies the HasPrefix predicate on the "cost_usd" field.
func CostUsdHasPrefix(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldHasPrefix(FieldCostUsd, v))
}

// CostUsdHasSuffix applies the HasSuffix predicate on the "cost_usd" field.
func CostUsdHasSuffix(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldHasSuffix(FieldCostUsd, v))
}

// CostUsdIsNil applies the IsNil predicate on the "cost_usd" field.
func CostUsdIsNil() predicate.SubStep {
	return predicate.SubStep(sql.FieldIsNull(FieldCostUsd))
}

// CostUsdNotNil applies the NotNil predicate on the "cost_usd" field.
func CostUsdNotNil() predicate.SubStep {
	return predicate.SubStep(sql.FieldNotNull(FieldCostUsd))
}

// CostUsdEqualFold applies the EqualFold predicate on the "cost_usd" field.
func CostUsdEqualFold(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldEqualFold(FieldCostUsd, v))
}

// CostUsdContainsFold applies the ContainsFold predicate on the "cost_usd" field.
func CostUsdContainsFold(v string) predicate.SubStep {
	return predicate.SubStep(sql.FieldContainsFold(FieldCostUsd, v))
}

// GenerationStatsIsNil applies the IsNil predicate on the "generation_stats" field.
func GenerationStatsIsNil() predicate.SubStep {
	return predicate.SubStep(sql.FieldIsNull(FieldGenerationStats))
}

// GenerationStatsNotNil applies the NotNil predicate on the "generation_stats" field.
func GenerationStatsNotNil() predicate.SubStep {
	return predicate.SubStep(sql.FieldNotNull(FieldGenerationStats))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SubStep {
	return predicate.SubStep(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SubStep {
	return predicate.SubStep(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SubStep {
	return predicate.SubStep(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SubStep {
	return predicate.SubStep(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SubStep {
	return predicate.SubStep(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SubStep {
	return predicate.SubStep(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SubStep {
	return predicate.SubStep(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SubStep {
	return predicate.SubStep(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SubStep {
	return predicate.SubStep(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SubStep {
	return predicate.SubStep(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SubStep {
	return predicate.SubStep(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SubStep {
	return predicate.SubStep(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SubStep {
	return predicate.SubStep(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SubStep {
	return predicate.SubStep(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SubStep {
	return predicate.SubStep(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SubStep {
	return predicate.SubStep(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasExecution applies the HasEdge predicate on the "execution" edge.
func HasExecution() predicate.SubStep {
	return predicate.SubStep(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ExecutionTable, ExecutionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExecutionWith applies the HasEdge predicate on the "execution" edge with a given conditions (other predicates).
func HasExecutionWith(preds ...predicate.DagExecution) predicate.SubStep {
	return predicate.SubStep(func(s *sql.Selector) {
		step := newExecutionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SubStep) predicate.SubStep {
	return predicate.SubStep(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SubStep) predicate.SubStep {
	return predicate.SubStep(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SubStep) predicate.SubStep {
	return predicate.SubStep(sql.NotPredicates(p))
}
