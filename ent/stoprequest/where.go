// Code generated by ent, DO NOT EDIT.

package stoprequest

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/taskdag/taskdag/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.StopRequest {
	return predicate.StopRequest(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.StopRequest {
	return predicate.StopRequest(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.StopRequest {
	return predicate.StopRequest(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.StopRequest {
	return predicate.StopRequest(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.StopRequest {
	return predicate.StopRequest(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.StopRequest {
	return predicate.StopRequest(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.StopRequest {
	return predicate.StopRequest(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.StopRequest {
	return predicate.StopRequest(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.StopRequest {
	return predicate.StopRequest(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.StopRequest {
	return predicate.StopRequest(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.StopRequest {
	return predicate.StopRequest(sql.FieldContainsFold(FieldID, id))
}

// DagID applies equality check predicate on the "dag_id" field. It's identical to DagIDEQ.
func DagID(v string) predicate.StopRequest {
	return predicate.StopRequest(sql.FieldEQ(FieldDagID, v))
}

// ExecutionID applies equality check predicate on the "execution_id" field. It's identical to ExecutionIDEQ.
func ExecutionID(v string) predicate.StopRequest {
	return predicate.StopRequest(sql.FieldEQ(FieldExecutionID, v))
}

// RequestedAt applies equality check predicate on the "requested_at" field. It's identical to RequestedAtEQ.
func RequestedAt(v time.Time) predicate.StopRequest {
	return predicate.StopRequest(sql.FieldEQ(FieldRequestedAt, v))
}

// HandledAt applies equality check predicate on the "handled_at" field. It's identical to HandledAtEQ.
func HandledAt(v time.Time) predicate.StopRequest {
	return predicate.StopRequest(sql.FieldEQ(FieldHandledAt, v))
}

// DagIDEQ applies the EQ predicate on the "dag_id" field.
func DagIDEQ(v string) predicate.StopRequest {
	return predicate.StopRequest(sql.FieldEQ(FieldDagID, v))
}

// DagIDNEQ applies the NEQ predicate on the "dag_id" field.
func DagIDNEQ(v string) predicate.StopRequest {
	return predicate.StopRequest(sql.FieldNEQ(FieldDagID, v))
}

// DagIDIn applies the In predicate on the "dag_id" field.
func DagIDIn(vs ...string) predicate.StopRequest {
	return predicate.StopRequest(sql.FieldIn(FieldDagID, vs...))
}

// DagIDNotIn applies the NotIn predicate on the "dag_id" field.
func DagIDNotIn(vs ...string) predicate.StopRequest {
	return predicate.StopRequest(sql.FieldNotIn(FieldDagID, vs...))
}

// DagIDGT applies the GT predicate on the "dag_id" field.
func DagIDGT(v string) predicate.StopRequest {
	return predicate.StopRequest(sql.FieldGT(FieldDagID, v))
}

// DagIDGTE applies the GTE predicate on the "dag_id" field.
func DagIDGTE(v string) predicate.StopRequest {
	return predicate.StopRequest(sql.FieldGTE(FieldDagID, v))
}

// DagIDLT applies the LT predicate on the "dag_id" field.
func DagIDLT(v string) predicate.StopRequest {
	return predicate.StopRequest(sql.FieldLT(FieldDagID, v))
}

// DagIDLTE applies the LTE predicate on the "dag_id" field.
func DagIDLTE(v string) predicate.StopRequest {
	return predicate.StopRequest(sql.FieldLTE(FieldDagID, v))
}

// DagIDContains applies the Contains predicate on the "dag_id" field.
func DagIDContains(v string) predicate.StopRequest {
	return predicate.StopRequest(sql.FieldContains(FieldDagID, v))
}

// DagIDHasPrefix applies the HasPrefix predicate on the "dag_id" field.
func DagIDHasPrefix(v string) predicate.StopRequest {
	return predicate.StopRequest(sql.FieldHasPrefix(FieldDagID, v))
}

// DagIDHasSuffix applies the HasSuffix predicate on the "dag_id" field.
func DagIDHasSuffix(v string) predicate.StopRequest {
	return predicate.StopRequest(sql.FieldHasSuffix(FieldDagID, v))
}

// DagIDIsNil applies the IsNil predicate on the "dag_id" field.
func DagIDIsNil() predicate.StopRequest {
	return predicate.StopRequest(sql.FieldIsNull(FieldDagID))
}

// DagIDNotNil applies the NotNil predicate on the "dag_id" field.
func DagIDNotNil() predicate.StopRequest {
	return predicate.StopRequest(sql.FieldNotNull(FieldDagID))
}

// DagIDEqualFold applies the EqualFold predicate on the "dag_id" field.
func DagIDEqualFold(v string) predicate.StopRequest {
	return predicate.StopRequest(sql.FieldEqualFold(FieldDagID, v))
}

// DagIDContainsFold applies the ContainsFold predicate on the "dag_id" field.
func DagIDContainsFold(v string) predicate.StopRequest {
	return predicate.StopRequest(sql.FieldContainsFold(FieldDagID, v))
}

// ExecutionIDEQ applies the EQ predicate on the "execution_id" field.
func ExecutionIDEQ(v string) predicate.StopRequest {
	return predicate.StopRequest(sql.FieldEQ(FieldExecutionID, v))
}

// ExecutionIDNEQ applies the NEQ predicate on the "execution_id" field.
func ExecutionIDNEQ(v string) predicate.StopRequest {
	return predicate.StopRequest(sql.FieldNEQ(FieldExecutionID, v))
}

// ExecutionIDIn applies the In predicate on the "execution_id" field.
func ExecutionIDIn(vs ...string) predicate.StopRequest {
	return predicate.StopRequest(sql.FieldIn(FieldExecutionID, vs...))
}

// ExecutionIDNotIn applies the NotIn predicate on the "execution_id" field.
func ExecutionIDNotIn(vs ...string) predicate.StopRequest {
	return predicate.StopRequest(sql.FieldNotIn(FieldExecutionID, vs...))
}

// ExecutionIDGT applies the GT predicate on the "execution_id" field.
func ExecutionIDGT(v string) predicate.StopRequest {
	return predicate.StopRequest(sql.FieldGT(FieldExecutionID, v))
}

// ExecutionIDGTE applies the GTE predicate on the "execution_id" field.
func ExecutionIDGTE(v string) predicate.StopRequest {
	return predicate.StopRequest(sql.FieldGTE(FieldExecutionID, v))
}

// ExecutionIDLT applies the LT predicate on the "execution_id" field.
func ExecutionIDLT(v string) predicate.StopRequest {
	return predicate.StopRequest(sql.FieldLT(FieldExecutionID, v))
}

// ExecutionIDLTE applies the LTE predicate on the "execution_id" field.
func ExecutionIDLTE(v string) predicate.StopRequest {
	return predicate.StopRequest(sql.FieldLTE(FieldExecutionID, v))
}

// ExecutionIDContains applies the Contains predicate on the "execution_id" field.
func ExecutionIDContains(v string) predicate.StopRequest {
	return predicate.StopRequest(sql.FieldContains(FieldExecutionID, v))
}

// ExecutionIDHasPrefix applies the HasPrefix predicate on the "execution_id" field.
func ExecutionIDHasPrefix(v string) predicate.StopRequest {
	return predicate.StopRequest(sql.FieldHasPrefix(FieldExecutionID, v))
}

// ExecutionIDHasSuffix applies the HasSuffix predicate on the "execution_id" field.
func ExecutionIDHasSuffix(v string) predicate.StopRequest {
	return predicate.StopRequest(sql.FieldHasSuffix(FieldExecutionID, v))
}

// ExecutionIDIsNil applies the IsNil predicate on the "execution_id" field.
func ExecutionIDIsNil() predicate.StopRequest {
	return predicate.StopRequest(sql.FieldIsNull(FieldExecutionID))
}

// ExecutionIDNotNil applies the NotNil predicate on the "execution_id" field.
func ExecutionIDNotNil() predicate.StopRequest {
	return predicate.StopRequest(sql.FieldNotNull(FieldExecutionID))
}

// ExecutionIDEqualFold applies the EqualFold predicate on the "execution_id" field.
func ExecutionIDEqualFold(v string) predicate.StopRequest {
	return predicate.StopRequest(sql.FieldEqualFold(FieldExecutionID, v))
}

// ExecutionIDContainsFold applies the ContainsFold predicate on the "execution_id" field.
func ExecutionIDContainsFold(v string) predicate.StopRequest {
	return predicate.StopRequest(sql.FieldContainsFold(FieldExecutionID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.StopRequest {
	return predicate.StopRequest(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.StopRequest {
	return predicate.StopRequest(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.StopRequest {
	return predicate.StopRequest(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.StopRequest {
	return predicate.StopRequest(sql.FieldNotIn(FieldStatus, vs...))
}

// RequestedAtEQ applies the EQ predicate on the "requested_at" field.
func RequestedAtEQ(v time.Time) predicate.StopRequest {
	return predicate.StopRequest(sql.FieldEQ(FieldRequestedAt, v))
}

// RequestedAtNEQ applies the NEQ predicate on the "requested_at" field.
func RequestedAtNEQ(v time.Time) predicate.StopRequest {
	return predicate.StopRequest(sql.FieldNEQ(FieldRequestedAt, v))
}

// RequestedAtIn applies the In predicate on the "requested_at" field.
func RequestedAtIn(vs ...time.Time) predicate.StopRequest {
	return predicate.StopRequest(sql.FieldIn(FieldRequestedAt, vs...))
}

// RequestedAtNotIn applies the NotIn predicate on the "requested_at" field.
func RequestedAtNotIn(vs ...time.Time) predicate.StopRequest {
	return predicate.StopRequest(sql.FieldNotIn(FieldRequestedAt, vs...))
}

// RequestedAtGT applies the GT predicate on the "requested_at" field.
func RequestedAtGT(v time.Time) predicate.StopRequest {
	return predicate.StopRequest(sql.FieldGT(FieldRequestedAt, v))
}

// RequestedAtGTE applies the GTE predicate on the "requested_at" field.
func RequestedAtGTE(v time.Time) predicate.StopRequest {
	return predicate.StopRequest(sql.FieldGTE(FieldRequestedAt, v))
}

// RequestedAtLT applies the LT predicate on the "requested_at" field.
func RequestedAtLT(v time.Time) predicate.StopRequest {
	return predicate.StopRequest(sql.FieldLT(FieldRequestedAt, v))
}

// RequestedAtLTE applies the LTE predicate on the "requested_at" field.
func RequestedAtLTE(v time.Time) predicate.StopRequest {
	return predicate.StopRequest(sql.FieldLTE(FieldRequestedAt, v))
}

// HandledAtEQ applies the EQ predicate on the "handled_at" field.
func HandledAtEQ(v time.Time) predicate.StopRequest {
	return predicate.StopRequest(sql.FieldEQ(FieldHandledAt, v))
}

// HandledAtNEQ applies the NEQ predicate on the "handled_at" field.
func HandledAtNEQ(v time.Time) predicate.StopRequest {
	return predicate.StopRequest(sql.FieldNEQ(FieldHandledAt, v))
}

// HandledAtIn applies the In predicate on the "handled_at" field.
func HandledAtIn(vs ...time.Time) predicate.StopRequest {
	return predicate.StopRequest(sql.FieldIn(FieldHandledAt, vs...))
}

// HandledAtNotIn applies the NotIn predicate on the "handled_at" field.
func HandledAtNotIn(vs ...time.Time) predicate.StopRequest {
	return predicate.StopRequest(sql.FieldNotIn(FieldHandledAt, vs...))
}

// HandledAtGT applies the GT predicate on the "handled_at" field.
func HandledAtGT(v time.Time) predicate.StopRequest {
	return predicate.StopRequest(sql.FieldGT(FieldHandledAt, v))
}

// HandledAtGTE applies the GTE predicate on the "handled_at" field.
func HandledAtGTE(v time.Time) predicate.StopRequest {
	return predicate.StopRequest(sql.FieldGTE(FieldHandledAt, v))
}

// HandledAtLT applies the LT predicate on the "handled_at" field.
func HandledAtLT(v time.Time) predicate.StopRequest {
	return predicate.StopRequest(sql.FieldLT(FieldHandledAt, v))
}

// HandledAtLTE applies the LTE predicate on the "handled_at" field.
func HandledAtLTE(v time.Time) predicate.StopRequest {
	return predicate.StopRequest(sql.FieldLTE(FieldHandledAt, v))
}

// HandledAtIsNil applies the IsNil predicate on the "handled_at" field.
func HandledAtIsNil() predicate.StopRequest {
	return predicate.StopRequest(sql.FieldIsNull(FieldHandledAt))
}

// HandledAtNotNil applies the NotNil predicate on the "handled_at" field.
func HandledAtNotNil() predicate.StopRequest {
	return predicate.StopRequest(sql.FieldNotNull(FieldHandledAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StopRequest) predicate.StopRequest {
	return predicate.StopRequest(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StopRequest) predicate.StopRequest {
	return predicate.StopRequest(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StopRequest) predicate.StopRequest {
	return predicate.StopRequest(sql.NotPredicates(p))
}
