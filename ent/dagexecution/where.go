// Code generated by ent, DO NOT EDIT.

package dagexecution

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/taskdag/taskdag/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldContainsFold(FieldID, id))
}

// DagID applies equality check predicate on the "dag_id" field. It's identical to DagIDEQ.
func DagID(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldEQ(FieldDagID, v))
}

// OriginalRequest applies equality check predicate on the "original_request" field. It's identical to OriginalRequestEQ.
func OriginalRequest(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldEQ(FieldOriginalRequest, v))
}

// PrimaryIntent applies equality check predicate on the "primary_intent" field. It's identical to PrimaryIntentEQ.
func PrimaryIntent(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldEQ(FieldPrimaryIntent, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldEQ(FieldCompletedAt, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int64) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldEQ(FieldDurationMs, v))
}

// TotalTasks applies equality check predicate on the "total_tasks" field. It's identical to TotalTasksEQ.
func TotalTasks(v int) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldEQ(FieldTotalTasks, v))
}

// CompletedTasks applies equality check predicate on the "completed_tasks" field. It's identical to CompletedTasksEQ.
func CompletedTasks(v int) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldEQ(FieldCompletedTasks, v))
}

// FailedTasks applies equality check predicate on the "failed_tasks" field. It's identical to FailedTasksEQ.
func FailedTasks(v int) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldEQ(FieldFailedTasks, v))
}

// WaitingTasks applies equality check predicate on the "waiting_tasks" field. It's identical to WaitingTasksEQ.
func WaitingTasks(v int) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldEQ(FieldWaitingTasks, v))
}

// FinalResult applies equality check predicate on the "final_result" field. It's identical to FinalResultEQ.
func FinalResult(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldEQ(FieldFinalResult, v))
}

// SuspendedReason applies equality check predicate on the "suspended_reason" field. It's identical to SuspendedReasonEQ.
func SuspendedReason(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldEQ(FieldSuspendedReason, v))
}

// SuspendedAt applies equality check predicate on the "suspended_at" field. It's identical to SuspendedAtEQ.
func SuspendedAt(v time.Time) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldEQ(FieldSuspendedAt, v))
}

// RetryCount applies equality check predicate on the "retry_count" field. It's identical to RetryCountEQ.
func RetryCount(v int) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldEQ(FieldRetryCount, v))
}

// LastRetryAt applies equality check predicate on the "last_retry_at" field. It's identical to LastRetryAtEQ.
func LastRetryAt(v time.Time) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldEQ(FieldLastRetryAt, v))
}

// TotalCostUsd applies equality check predicate on the "total_cost_usd" field. It's identical to TotalCostUsdEQ.
func TotalCostUsd(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldEQ(FieldTotalCostUsd, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldEQ(FieldUpdatedAt, v))
}

// DagIDEQ applies the EQ predicate on the "dag_id" field.
func DagIDEQ(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldEQ(FieldDagID, v))
}

// DagIDNEQ applies the NEQ predicate on the "dag_id" field.
func DagIDNEQ(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldNEQ(FieldDagID, v))
}

// DagIDIn applies the In predicate on the "dag_id" field.
func DagIDIn(vs ...string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldIn(FieldDagID, vs...))
}

// DagIDNotIn applies the NotIn predicate on the "dag_id" field.
func DagIDNotIn(vs ...string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldNotIn(FieldDagID, vs...))
}

// DagIDGT applies the GT predicate on the "dag_id" field.
func DagIDGT(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldGT(FieldDagID, v))
}

// DagIDGTE applies the GTE predicate on the "dag_id" field.
func DagIDGTE(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldGTE(FieldDagID, v))
}

// DagIDLT applies the LT predicate on the "dag_id" field.
func DagIDLT(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldLT(FieldDagID, v))
}

// DagIDLTE applies the LTE predicate on the "dag_id" field.
func DagIDLTE(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldLTE(FieldDagID, v))
}

// DagIDContains applies the Contains predicate on the "dag_id" field.
func DagIDContains(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldContains(FieldDagID, v))
}

// DagIDHasPrefix applies the HasPrefix predicate on the "dag_id" field.
func DagIDHasPrefix(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldHasPrefix(FieldDagID, v))
}

// DagIDHasSuffix applies the HasSuffix predicate on the "dag_id" field.
func DagIDHasSuffix(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldHasSuffix(FieldDagID, v))
}

// DagIDIsNil applies the IsNil predicate on the "dag_id" field.
func DagIDIsNil() predicate.DagExecution {
	return predicate.DagExecution(sql.FieldIsNull(FieldDagID))
}

// DagIDNotNil applies the NotNil predicate on the "dag_id" field.
func DagIDNotNil() predicate.DagExecution {
	return predicate.DagExecution(sql.FieldNotNull(FieldDagID))
}

// DagIDEqualFold applies the EqualFold predicate on the "dag_id" field.
func DagIDEqualFold(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldEqualFold(FieldDagID, v))
}

// DagIDContainsFold applies the ContainsFold predicate on the "dag_id" field.
func DagIDContainsFold(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldContainsFold(FieldDagID, v))
}

// OriginalRequestEQ applies the EQ predicate on the "original_request" field.
func OriginalRequestEQ(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldEQ(FieldOriginalRequest, v))
}

// OriginalRequestNEQ applies the NEQ predicate on the "original_request" field.
func OriginalRequestNEQ(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldNEQ(FieldOriginalRequest, v))
}

// OriginalRequestIn applies the In predicate on the "original_request" field.
func OriginalRequestIn(vs ...string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldIn(FieldOriginalRequest, vs...))
}

// OriginalRequestNotIn applies the NotIn predicate on the "original_request" field.
func OriginalRequestNotIn(vs ...string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldNotIn(FieldOriginalRequest, vs...))
}

// OriginalRequestGT applies the GT predicate on the "original_request" field.
func OriginalRequestGT(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldGT(FieldOriginalRequest, v))
}

// OriginalRequestGTE applies the GTE predicate on the "original_request" field.
func OriginalRequestGTE(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldGTE(FieldOriginalRequest, v))
}

// OriginalRequestLT applies the LT predicate on the "original_request" field.
func OriginalRequestLT(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldLT(FieldOriginalRequest, v))
}

// OriginalRequestLTE applies the LTE predicate on the "original_request" field.
func OriginalRequestLTE(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldLTE(FieldOriginalRequest, v))
}

// OriginalRequestContains applies the Contains predicate on the "original_request" field.
func OriginalRequestContains(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldContains(FieldOriginalRequest, v))
}

// OriginalRequestHasPrefix applies the HasPrefix predicate on the "original_request" field.
func OriginalRequestHasPrefix(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldHasPrefix(FieldOriginalRequest, v))
}

// OriginalRequestHasSuffix applies the HasSuffix predicate on the "original_request" field.
func OriginalRequestHasSuffix(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldHasSuffix(FieldOriginalRequest, v))
}

// OriginalRequestEqualFold applies the EqualFold predicate on the "original_request" field.
func OriginalRequestEqualFold(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldEqualFold(FieldOriginalRequest, v))
}

// OriginalRequestContainsFold applies the ContainsFold predicate on the "original_request" field.
func OriginalRequestContainsFold(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldContainsFold(FieldOriginalRequest, v))
}

// PrimaryIntentEQ applies the EQ predicate on the "primary_intent" field.
func PrimaryIntentEQ(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldEQ(FieldPrimaryIntent, v))
}

// PrimaryIntentNEQ applies the NEQ predicate on the "primary_intent" field.
func PrimaryIntentNEQ(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldNEQ(FieldPrimaryIntent, v))
}

// PrimaryIntentIn applies the In predicate on the "primary_intent" field.
func PrimaryIntentIn(vs ...string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldIn(FieldPrimaryIntent, vs...))
}

// PrimaryIntentNotIn applies the NotIn predicate on the "primary_intent" field.
func PrimaryIntentNotIn(vs ...string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldNotIn(FieldPrimaryIntent, vs...))
}

// PrimaryIntentGT applies the GT predicate on the "primary_intent" field.
func PrimaryIntentGT(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldGT(FieldPrimaryIntent, v))
}

// PrimaryIntentGTE applies the GTE predicate on the "primary_intent" field.
func PrimaryIntentGTE(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldGTE(FieldPrimaryIntent, v))
}

// PrimaryIntentLT applies the LT predicate on the "primary_intent" field.
func PrimaryIntentLT(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldLT(FieldPrimaryIntent, v))
}

// PrimaryIntentLTE applies the LTE predicate on the "primary_intent" field.
func PrimaryIntentLTE(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldLTE(FieldPrimaryIntent, v))
}

// PrimaryIntentContains applies the Contains predicate on the "primary_intent" field.
func PrimaryIntentContains(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldContains(FieldPrimaryIntent, v))
}

// PrimaryIntentHasPrefix applies the HasPrefix predicate on the "primary_intent" field.
func PrimaryIntentHasPrefix(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldHasPrefix(FieldPrimaryIntent, v))
}

// PrimaryIntentHasSuffix applies the HasSuffix predicate on the "primary_intent" field.
func PrimaryIntentHasSuffix(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldHasSuffix(FieldPrimaryIntent, v))
}

// PrimaryIntentIsNil applies the IsNil predicate on the "primary_intent" field.
func PrimaryIntentIsNil() predicate.DagExecution {
	return predicate.DagExecution(sql.FieldIsNull(FieldPrimaryIntent))
}

// PrimaryIntentNotNil applies the NotNil predicate on the "primary_intent" field.
func PrimaryIntentNotNil() predicate.DagExecution {
	return predicate.DagExecution(sql.FieldNotNull(FieldPrimaryIntent))
}

// PrimaryIntentEqualFold applies the EqualFold predicate on the "primary_intent" field.
func PrimaryIntentEqualFold(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldEqualFold(FieldPrimaryIntent, v))
}

// PrimaryIntentContainsFold applies the ContainsFold predicate on the "primary_intent" field.
func PrimaryIntentContainsFold(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldContainsFold(FieldPrimaryIntent, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldNotIn(FieldStatus, vs...))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.DagExecution {
	return predicate.DagExecution(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.DagExecution {
	return predicate.DagExecution(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.DagExecution {
	return predicate.DagExecution(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.DagExecution {
	return predicate.DagExecution(sql.FieldNotNull(FieldCompletedAt))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int64) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int64) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int64) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int64) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int64) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int64) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int64) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int64) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldLTE(FieldDurationMs, v))
}

// DurationMsIsNil applies the IsNil predicate on the "duration_ms" field.
func DurationMsIsNil() predicate.DagExecution {
	return predicate.DagExecution(sql.FieldIsNull(FieldDurationMs))
}

// DurationMsNotNil applies the NotNil predicate on the "duration_ms" field.
func DurationMsNotNil() predicate.DagExecution {
	return predicate.DagExecution(sql.FieldNotNull(FieldDurationMs))
}

// TotalTasksEQ applies the EQ predicate on the "total_tasks" field.
func TotalTasksEQ(v int) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldEQ(FieldTotalTasks, v))
}

// TotalTasksNEQ applies the NEQ predicate on the "total_tasks" field.
func TotalTasksNEQ(v int) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldNEQ(FieldTotalTasks, v))
}

// TotalTasksIn applies the In predicate on the "total_tasks" field.
func TotalTasksIn(vs ...int) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldIn(FieldTotalTasks, vs...))
}

// TotalTasksNotIn applies the NotIn predicate on the "total_tasks" field.
func TotalTasksNotIn(vs ...int) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldNotIn(FieldTotalTasks, vs...))
}

// TotalTasksGT applies the GT predicate on the "total_tasks" field.
func TotalTasksGT(v int) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldGT(FieldTotalTasks, v))
}

// TotalTasksGTE applies the GTE predicate on the "total_tasks" field.
func TotalTasksGTE(v int) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldGTE(FieldTotalTasks, v))
}

// TotalTasksLT applies the LT predicate on the "total_tasks" field.
func TotalTasksLT(v int) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldLT(FieldTotalTasks, v))
}

// TotalTasksLTE applies the LTE predicate on the "total_tasks" field.
func TotalTasksLTE(v int) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldLTE(FieldTotalTasks, v))
}

// CompletedTasksEQ applies the EQ predicate on the "completed_tasks" field.
func CompletedTasksEQ(v int) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldEQ(FieldCompletedTasks, v))
}

// CompletedTasksNEQ applies the NEQ predicate on the "completed_tasks" field.
func CompletedTasksNEQ(v int) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldNEQ(FieldCompletedTasks, v))
}

// CompletedTasksIn applies the In predicate on the "completed_tasks" field.
func CompletedTasksIn(vs ...int) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldIn(FieldCompletedTasks, vs...))
}

// CompletedTasksNotIn applies the NotIn predicate on the "completed_tasks" field.
func CompletedTasksNotIn(vs ...int) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldNotIn(FieldCompletedTasks, vs...))
}

// CompletedTasksGT applies the GT predicate on the "completed_tasks" field.
func CompletedTasksGT(v int) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldGT(FieldCompletedTasks, v))
}

// CompletedTasksGTE applies the GTE predicate on the "completed_tasks" field.
func CompletedTasksGTE(v int) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldGTE(FieldCompletedTasks, v))
}

// CompletedTasksLT applies the LT predicate on the "completed_tasks" field.
func CompletedTasksLT(v int) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldLT(FieldCompletedTasks, v))
}

// CompletedTasksLTE applies the LTE predicate on the "completed_tasks" field.
func CompletedTasksLTE(v int) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldLTE(FieldCompletedTasks, v))
}

// FailedTasksEQ applies the EQ predicate on the "failed_tasks" field.
func FailedTasksEQ(v int) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldEQ(FieldFailedTasks, v))
}

// FailedTasksNEQ applies the NEQ predicate on the "failed_tasks" field.
func FailedTasksNEQ(v int) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldNEQ(FieldFailedTasks, v))
}

// FailedTasksIn applies the In predicate on the "failed_tasks" field.
func FailedTasksIn(vs ...int) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldIn(FieldFailedTasks, vs...))
}

// FailedTasksNotIn applies the NotIn predicate on the "failed_tasks" field.
func FailedTasksNotIn(vs ...int) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldNotIn(FieldFailedTasks, vs...))
}

// FailedTasksGT applies the GT predicate on the "failed_tasks" field.
func FailedTasksGT(v int) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldGT(FieldFailedTasks, v))
}

// FailedTasksGTE applies the GTE predicate on the "failed_tasks" field.
func FailedTasksGTE(v int) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldGTE(FieldFailedTasks, v))
}

// FailedTasksLT applies the LT predicate on the "failed_tasks" field.
func FailedTasksLT(v int) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldLT(FieldFailedTasks, v))
}

// FailedTasksLTE applies the LTE predicate on the "failed_tasks" field.
func FailedTasksLTE(v int) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldLTE(FieldFailedTasks, v))
}

// WaitingTasksEQ applies the EQ predicate on the "waiting_tasks" field.
func WaitingTasksEQ(v int) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldEQ(FieldWaitingTasks, v))
}

// WaitingTasksNEQ applies the NEQ predicate on the "waiting_tasks" field.
func WaitingTasksNEQ(v int) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldNEQ(FieldWaitingTasks, v))
}

// WaitingTasksIn applies the In predicate on the "waiting_tasks" field.
func WaitingTasksIn(vs ...int) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldIn(FieldWaitingTasks, vs...))
}

// WaitingTasksNotIn applies the NotIn predicate on the "waiting_tasks" field.
func WaitingTasksNotIn(vs ...int) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldNotIn(FieldWaitingTasks, vs...))
}

// WaitingTasksGT applies the GT predicate on the "waiting_tasks" field.
func WaitingTasksGT(v int) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldGT(FieldWaitingTasks, v))
}

// WaitingTasksGTE applies the GTE predicate on the "waiting_tasks" field.
func WaitingTasksGTE(v int) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldGTE(FieldWaitingTasks, v))
}

// WaitingTasksLT applies the LT predicate on the "waiting_tasks" field.
func WaitingTasksLT(v int) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldLT(FieldWaitingTasks, v))
}

// WaitingTasksLTE applies the LTE predicate on the "waiting_tasks" field.
func WaitingTasksLTE(v int) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldLTE(FieldWaitingTasks, v))
}

// FinalResultEQ applies the EQ predicate on the "final_result" field.
func FinalResultEQ(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldEQ(FieldFinalResult, v))
}

// FinalResultNEQ applies the NEQ predicate on the "final_result" field.
func FinalResultNEQ(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldNEQ(FieldFinalResult, v))
}

// FinalResultIn applies the In predicate on the "final_result" field.
func FinalResultIn(vs ...string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldIn(FieldFinalResult, vs...))
}

// FinalResultNotIn applies the NotIn predicate on the "final_result" field.
func FinalResultNotIn(vs ...string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldNotIn(FieldFinalResult, vs...))
}

// FinalResultGT applies the GT predicate on the "final_result" field.
func FinalResultGT(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldGT(FieldFinalResult, v))
}

// FinalResultGTE applies the GTE predicate on the "final_result" field.
func FinalResultGTE(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldGTE(FieldFinalResult, v))
}

// FinalResultLT applies the LT predicate on the "final_result" field.
func FinalResultLT(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldLT(FieldFinalResult, v))
}

// FinalResultLTE applies the LTE predicate on the "final_result" field.
func FinalResultLTE(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldLTE(FieldFinalResult, v))
}

// FinalResultContains applies the Contains predicate on the "final_result" field.
func FinalResultContains(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldContains(FieldFinalResult, v))
}

// FinalResultHasPrefix applies the HasPrefix predicate on the "final_result" field.
func FinalResultHasPrefix(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldHasPrefix(FieldFinalResult, v))
}

// FinalResultHasSuffix applies the HasSuffix predicate on the "final_result" field.
func FinalResultHasSuffix(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldHasSuffix(FieldFinalResult, v))
}

// FinalResultIsNil applies the IsNil predicate on the "final_result" field.
func FinalResultIsNil() predicate.DagExecution {
	return predicate.DagExecution(sql.FieldIsNull(FieldFinalResult))
}

// FinalResultNotNil applies the NotNil predicate on the "final_result" field.
func FinalResultNotNil() predicate.DagExecution {
	return predicate.DagExecution(sql.FieldNotNull(FieldFinalResult))
}

// FinalResultEqualFold applies the EqualFold predicate on the "final_result" field.
func FinalResultEqualFold(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldEqualFold(FieldFinalResult, v))
}

// FinalResultContainsFold applies the ContainsFold predicate on the "final_result" field.
func FinalResultContainsFold(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldContainsFold(FieldFinalResult, v))
}

// SynthesisResultIsNil applies the IsNil predicate on the "synthesis_result" field.
func SynthesisResultIsNil() predicate.DagExecution {
	return predicate.DagExecution(sql.FieldIsNull(FieldSynthesisResult))
}

// SynthesisResultNotNil applies the NotNil predicate on the "synthesis_result" field.
func SynthesisResultNotNil() predicate.DagExecution {
	return predicate.DagExecution(sql.FieldNotNull(FieldSynthesisResult))
}

// SuspendedReasonEQ applies the EQ predicate on the "suspended_reason" field.
func SuspendedReasonEQ(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldEQ(FieldSuspendedReason, v))
}

// SuspendedReasonNEQ applies the NEQ predicate on the "suspended_reason" field.
func SuspendedReasonNEQ(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldNEQ(FieldSuspendedReason, v))
}

// SuspendedReasonIn applies the In predicate on the "suspended_reason" field.
func SuspendedReasonIn(vs ...string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldIn(FieldSuspendedReason, vs...))
}

// SuspendedReasonNotIn applies the NotIn predicate on the "suspended_reason" field.
func SuspendedReasonNotIn(vs ...string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldNotIn(FieldSuspendedReason, vs...))
}

// SuspendedReasonGT applies the GT predicate on the "suspended_reason" field.
func SuspendedReasonGT(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldGT(FieldSuspendedReason, v))
}

// SuspendedReasonGTE applies the GTE predicate on the "suspended_reason" field.
func SuspendedReasonGTE(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldGTE(FieldSuspendedReason, v))
}

// SuspendedReasonLT applies the LT predicate on the "suspended_reason" field.
func SuspendedReasonLT(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldLT(FieldSuspendedReason, v))
}

// SuspendedReasonLTE applies the LTE predicate on the "suspended_reason" field.
func SuspendedReasonLTE(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldLTE(FieldSuspendedReason, v))
}

// SuspendedReasonContains applies the Contains predicate on the "suspended_reason" field.
func SuspendedReasonContains(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldContains(FieldSuspendedReason, v))
}

// SuspendedReasonHasPrefix applies the HasPrefix predicate on the "suspended_reason" field.
func SuspendedReasonHasPrefix(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldHasPrefix(FieldSuspendedReason, v))
}

// SuspendedReasonHasSuffix applies the HasSuffix predicate on the "suspended_reason" field.
func SuspendedReasonHasSuffix(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldHasSuffix(FieldSuspendedReason, v))
}

// SuspendedReasonIsNil applies the IsNil predicate on the "suspended_reason" field.
func SuspendedReasonIsNil() predicate.DagExecution {
	return predicate.DagExecution(sql.FieldIsNull(FieldSuspendedReason))
}

// SuspendedReasonNotNil applies the NotNil predicate on the "suspended_reason" field.
func SuspendedReasonNotNil() predicate.DagExecution {
	return predicate.DagExecution(sql.FieldNotNull(FieldSuspendedReason))
}

// SuspendedReasonEqualFold applies the EqualFold predicate on the "suspended_reason" field.
func SuspendedReasonEqualFold(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldEqualFold(FieldSuspendedReason, v))
}

// SuspendedReasonContainsFold applies the ContainsFold predicate on the "suspended_reason" field.
func SuspendedReasonContainsFold(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldContainsFold(FieldSuspendedReason, v))
}

// SuspendedAtEQ applies the EQ predicate on the "suspended_at" field.
func SuspendedAtEQ(v time.Time) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldEQ(FieldSuspendedAt, v))
}

// SuspendedAtNEQ applies the NEQ predicate on the "suspended_at" field.
func SuspendedAtNEQ(v time.Time) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldNEQ(FieldSuspendedAt, v))
}

// SuspendedAtIn applies the In predicate on the "suspended_at" field.
func SuspendedAtIn(vs ...time.Time) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldIn(FieldSuspendedAt, vs...))
}

// SuspendedAtNotIn applies the NotIn predicate on the "suspended_at" field.
func SuspendedAtNotIn(vs ...time.Time) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldNotIn(FieldSuspendedAt, vs...))
}

// SuspendedAtGT applies the GT predicate on the "suspended_at" field.
func SuspendedAtGT(v time.Time) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldGT(FieldSuspendedAt, v))
}

// SuspendedAtGTE applies the GTE predicate on the "suspended_at" field.
func SuspendedAtGTE(v time.Time) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldGTE(FieldSuspendedAt, v))
}

// SuspendedAtLT applies the LT predicate on the "suspended_at" field.
func SuspendedAtLT(v time.Time) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldLT(FieldSuspendedAt, v))
}

// SuspendedAtLTE applies the LTE predicate on the "suspended_at" field.
func SuspendedAtLTE(v time.Time) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldLTE(FieldSuspendedAt, v))
}

// SuspendedAtIsNil applies the IsNil predicate on the "suspended_at" field.
func SuspendedAtIsNil() predicate.DagExecution {
	return predicate.DagExecution(sql.FieldIsNull(FieldSuspendedAt))
}

// SuspendedAtNotNil applies the NotNil predicate on the "suspended_at" field.
func SuspendedAtNotNil() predicate.DagExecution {
	return predicate.DagExecution(sql.FieldNotNull(FieldSuspendedAt))
}

// RetryCountEQ applies the EQ predicate on the "retry_count" field.
func RetryCountEQ(v int) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldEQ(FieldRetryCount, v))
}

// RetryCountNEQ applies the NEQ predicate on the "retry_count" field.
func RetryCountNEQ(v int) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldNEQ(FieldRetryCount, v))
}

// RetryCountIn applies the In predicate on the "retry_count" field.
func RetryCountIn(vs ...int) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldIn(FieldRetryCount, vs...))
}

// RetryCountNotIn applies the NotIn predicate on the "retry_count" field.
func RetryCountNotIn(vs ...int) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldNotIn(FieldRetryCount, vs...))
}

// RetryCountGT applies the GT predicate on the "retry_count" field.
func RetryCountGT(v int) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldGT(FieldRetryCount, v))
}

// RetryCountGTE applies the GTE predicate on the "retry_count" field.
func RetryCountGTE(v int) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldGTE(FieldRetryCount, v))
}

// RetryCountLT applies the LT predicate on the "retry_count" field.
func RetryCountLT(v int) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldLT(FieldRetryCount, v))
}

// RetryCountLTE applies the LTE predicate on the "retry_count" field.
func RetryCountLTE(v int) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldLTE(FieldRetryCount, v))
}

// LastRetryAtEQ applies the EQ predicate on the "last_retry_at" field.
func LastRetryAtEQ(v time.Time) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldEQ(FieldLastRetryAt, v))
}

// LastRetryAtNEQ applies the NEQ predicate on the "last_retry_at" field.
func LastRetryAtNEQ(v time.Time) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldNEQ(FieldLastRetryAt, v))
}

// LastRetryAtIn applies the In predicate on the "last_retry_at" field.
func LastRetryAtIn(vs ...time.Time) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldIn(FieldLastRetryAt, vs...))
}

// LastRetryAtNotIn applies the NotIn predicate on the "last_retry_at" field.
func LastRetryAtNotIn(vs ...time.Time) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldNotIn(FieldLastRetryAt, vs...))
}

// LastRetryAtGT applies the GT predicate on the "last_retry_at" field.
func LastRetryAtGT(v time.Time) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldGT(FieldLastRetryAt, v))
}

// LastRetryAtGTE applies the GTE predicate on the "last_retry_at" field.
func LastRetryAtGTE(v time.Time) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldGTE(FieldLastRetryAt, v))
}

// LastRetryAtLT applies the LT predicate on the "last_retry_at" field.
func LastRetryAtLT(v time.Time) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldLT(FieldLastRetryAt, v))
}

// LastRetryAtLTE applies the LTE predicate on the "last_retry_at" field.
func LastRetryAtLTE(v time.Time) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldLTE(FieldLastRetryAt, v))
}

// LastRetryAtIsNil applies the IsNil predicate on the "last_retry_at" field.
func LastRetryAtIsNil() predicate.DagExecution {
	return predicate.DagExecution(sql.FieldIsNull(FieldLastRetryAt))
}

// LastRetryAtNotNil applies the NotNil predicate on the "last_retry_at" field.
func LastRetryAtNotNil() predicate.DagExecution {
	return predicate.DagExecution(sql.FieldNotNull(FieldLastRetryAt))
}

// TotalUsageIsNil applies the IsNil predicate on the "total_usage" field.
func TotalUsageIsNil() predicate.DagExecution {
	return predicate.DagExecution(sql.FieldIsNull(FieldTotalUsage))
}

// TotalUsageNotNil applies the NotNil predicate on the "total_usage" field.
func TotalUsageNotNil() predicate.DagExecution {
	return predicate.DagExecution(sql.FieldNotNull(FieldTotalUsage))
}

// TotalCostUsdEQ applies the EQ predicate on the "total_cost_usd" field.
func TotalCostUsdEQ(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldEQ(FieldTotalCostUsd, v))
}

// TotalCostUsdNEQ applies the NEQ predicate on the "total_cost_usd" field.
func TotalCostUsdNEQ(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldNEQ(FieldTotalCostUsd, v))
}

// TotalCostUsdIn applies the In predicate on the "total_cost_usd" field.
func TotalCostUsdIn(vs ...string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldIn(FieldTotalCostUsd, vs...))
}

// TotalCostUsdNotIn applies the NotIn predicate on the "total_cost_usd" field.
func TotalCostUsdNotIn(vs ...string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldNotIn(FieldTotalCostUsd, vs...))
}

// TotalCostUsdGT applies the GT predicate on the "total_cost_usd" field.
func TotalCostUsdGT(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldGT(FieldTotalCostUsd, v))
}

// TotalCostUsdGTE applies the GTE predicate on the "total_cost_usd" field.
func TotalCostUsdGTE(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldGTE(FieldTotalCostUsd, v))
}

// TotalCostUsdLT applies the LT predicate on the "total_cost_usd" field.
func TotalCostUsdLT(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldLT(FieldTotalCostUsd, v))
}

// TotalCostUsdLTE applies the LTE predicate on the "total_cost_usd" field.
func TotalCostUsdLTE(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldLTE(FieldTotalCostUsd, v))
}

// TotalCostUsdContains applies the Contains predicate on the "total_cost_usd" field.
func TotalCostUsdContains(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldContains(FieldTotalCostUsd, v))
}

// TotalCostUsdHasPrefix applies the HasPrefix predicate on the "total_cost_usd" field.
func TotalCostUsdHasPrefix(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldHasPrefix(FieldTotalCostUsd, v))
}

// TotalCostUsdHasSuffix applies the HasSuffix predicate on the "total_cost_usd" field.
func TotalCostUsdHasSuffix(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldHasSuffix(FieldTotalCostUsd, v))
}

// TotalCostUsdIsNil applies the IsNil predicate on the "total_cost_usd" field.
func TotalCostUsdIsNil() predicate.DagExecution {
	return predicate.DagExecution(sql.FieldIsNull(FieldTotalCostUsd))
}

// TotalCostUsdNotNil applies the NotNil predicate on the "total_cost_usd" field.
func TotalCostUsdNotNil() predicate.DagExecution {
	return predicate.DagExecution(sql.FieldNotNull(FieldTotalCostUsd))
}

// TotalCostUsdEqualFold applies the EqualFold predicate on the "total_cost_usd" field.
func TotalCostUsdEqualFold(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldEqualFold(FieldTotalCostUsd, v))
}

// TotalCostUsdContainsFold applies the ContainsFold predicate on the "total_cost_usd" field.
func TotalCostUsdContainsFold(v string) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldContainsFold(FieldTotalCostUsd, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DagExecution {
	return predicate.DagExecution(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasDag applies the HasEdge predicate on the "dag" edge.
func HasDag() predicate.DagExecution {
	return predicate.DagExecution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DagTable, DagColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDagWith applies the HasEdge predicate on the "dag" edge with a given conditions (other predicates).
func HasDagWith(preds ...predicate.Dag) predicate.DagExecution {
	return predicate.DagExecution(func(s *sql.Selector) {
		step := newDagStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSubSteps applies the HasEdge predicate on the "sub_steps" edge.
func HasSubSteps() predicate.DagExecution {
	return predicate.DagExecution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SubStepsTable, SubStepsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSubStepsWith applies the HasEdge predicate on the "sub_steps" edge with a given conditions (other predicates).
func HasSubStepsWith(preds ...predicate.SubStep) predicate.DagExecution {
	return predicate.DagExecution(func(s *sql.Selector) {
		step := newSubStepsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DagExecution) predicate.DagExecution {
	return predicate.DagExecution(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DagExecution) predicate.DagExecution {
	return predicate.DagExecution(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DagExecution) predicate.DagExecution {
	return predicate.DagExecution(sql.NotPredicates(p))
}
