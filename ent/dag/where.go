// Code generated by ent, DO NOT EDIT.

package dag

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/taskdag/taskdag/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Dag {
	return predicate.Dag(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Dag {
	return predicate.Dag(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Dag {
	return predicate.Dag(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Dag {
	return predicate.Dag(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Dag {
	return predicate.Dag(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Dag {
	return predicate.Dag(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Dag {
	return predicate.Dag(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Dag {
	return predicate.Dag(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Dag {
	return predicate.Dag(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Dag {
	return predicate.Dag(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Dag {
	return predicate.Dag(sql.FieldContainsFold(FieldID, id))
}

// AgentName applies equality check predicate on the "agent_name" field. It's identical to AgentNameEQ.
func AgentName(v string) predicate.Dag {
	return predicate.Dag(sql.FieldEQ(FieldAgentName, v))
}

// DagTitle applies equality check predicate on the "dag_title" field. It's identical to DagTitleEQ.
func DagTitle(v string) predicate.Dag {
	return predicate.Dag(sql.FieldEQ(FieldDagTitle, v))
}

// CronSchedule applies equality check predicate on the "cron_schedule" field. It's identical to CronScheduleEQ.
func CronSchedule(v string) predicate.Dag {
	return predicate.Dag(sql.FieldEQ(FieldCronSchedule, v))
}

// ScheduleActive applies equality check predicate on the "schedule_active" field. It's identical to ScheduleActiveEQ.
func ScheduleActive(v bool) predicate.Dag {
	return predicate.Dag(sql.FieldEQ(FieldScheduleActive, v))
}

// LastRunAt applies equality check predicate on the "last_run_at" field. It's identical to LastRunAtEQ.
func LastRunAt(v time.Time) predicate.Dag {
	return predicate.Dag(sql.FieldEQ(FieldLastRunAt, v))
}

// Timezone applies equality check predicate on the "timezone" field. It's identical to TimezoneEQ.
func Timezone(v string) predicate.Dag {
	return predicate.Dag(sql.FieldEQ(FieldTimezone, v))
}

// PlanningTotalCostUsd applies equality check predicate on the "planning_total_cost_usd" field. It's identical to PlanningTotalCostUsdEQ.
func PlanningTotalCostUsd(v string) predicate.Dag {
	return predicate.Dag(sql.FieldEQ(FieldPlanningTotalCostUsd, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Dag {
	return predicate.Dag(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Dag {
	return predicate.Dag(sql.FieldEQ(FieldUpdatedAt, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Dag {
	return predicate.Dag(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Dag {
	return predicate.Dag(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Dag {
	return predicate.Dag(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Dag {
	return predicate.Dag(sql.FieldNotIn(FieldStatus, vs...))
}

// ResultIsNil applies the IsNil predicate on the "result" field.
func ResultIsNil() predicate.Dag {
	return predicate.Dag(sql.FieldIsNull(FieldResult))
}

// ResultNotNil applies the NotNil predicate on the "result" field.
func ResultNotNil() predicate.Dag {
	return predicate.Dag(sql.FieldNotNull(FieldResult))
}

// ParamsIsNil applies the IsNil predicate on the "params" field.
func ParamsIsNil() predicate.Dag {
	return predicate.Dag(sql.FieldIsNull(FieldParams))
}

// ParamsNotNil applies the NotNil predicate on the "params" field.
func ParamsNotNil() predicate.Dag {
	return predicate.Dag(sql.FieldNotNull(FieldParams))
}

// AgentNameEQ applies the EQ predicate on the "agent_name" field.
func AgentNameEQ(v string) predicate.Dag {
	return predicate.Dag(sql.FieldEQ(FieldAgentName, v))
}

// AgentNameNEQ applies the NEQ predicate on the "agent_name" field.
func AgentNameNEQ(v string) predicate.Dag {
	return predicate.Dag(sql.FieldNEQ(FieldAgentName, v))
}

// AgentNameIn applies the In predicate on the "agent_name" field.
func AgentNameIn(vs ...string) predicate.Dag {
	return predicate.Dag(sql.FieldIn(FieldAgentName, vs...))
}

// AgentNameNotIn applies the NotIn predicate on the "agent_name" field.
func AgentNameNotIn(vs ...string) predicate.Dag {
	return predicate.Dag(sql.FieldNotIn(FieldAgentName, vs...))
}

// AgentNameGT applies the GT predicate on the "agent_name" field.
func AgentNameGT(v string) predicate.Dag {
	return predicate.Dag(sql.FieldGT(FieldAgentName, v))
}

// AgentNameGTE applies the GTE predicate on the "agent_name" field.
func AgentNameGTE(v string) predicate.Dag {
	return predicate.Dag(sql.FieldGTE(FieldAgentName, v))
}

// AgentNameLT applies the LT predicate on the "agent_name" field.
func AgentNameLT(v string) predicate.Dag {
	return predicate.Dag(sql.FieldLT(FieldAgentName, v))
}

// AgentNameLTE applies the LTE predicate on the "agent_name" field.
func AgentNameLTE(v string) predicate.Dag {
	return predicate.Dag(sql.FieldLTE(FieldAgentName, v))
}

// AgentNameContains applies the Contains predicate on the "agent_name" field.
func AgentNameContains(v string) predicate.Dag {
	return predicate.Dag(sql.FieldContains(FieldAgentName, v))
}

// AgentNameHasPrefix applies the HasPrefix predicate on the "agent_name" field.
func AgentNameHasPrefix(v string) predicate.Dag {
	return predicate.Dag(sql.FieldHasPrefix(FieldAgentName, v))
}

// AgentNameHasSuffix applies the HasSuffix predicate on the "agent_name" field.
func AgentNameHasSuffix(v string) predicate.Dag {
	return predicate.Dag(sql.FieldHasSuffix(FieldAgentName, v))
}

// AgentNameEqualFold applies the EqualFold predicate on the "agent_name" field.
func AgentNameEqualFold(v string) predicate.Dag {
	return predicate.Dag(sql.FieldEqualFold(FieldAgentName, v))
}

// AgentNameContainsFold applies the ContainsFold predicate on the "agent_name" field.
func AgentNameContainsFold(v string) predicate.Dag {
	return predicate.Dag(sql.FieldContainsFold(FieldAgentName, v))
}

// DagTitleEQ applies the EQ predicate on the "dag_title" field.
func DagTitleEQ(v string) predicate.Dag {
	return predicate.Dag(sql.FieldEQ(FieldDagTitle, v))
}

// DagTitleNEQ applies the NEQ predicate on the "dag_title" field.
func DagTitleNEQ(v string) predicate.Dag {
	return predicate.Dag(sql.FieldNEQ(FieldDagTitle, v))
}

// DagTitleIn applies the In predicate on the "dag_title" field.
func DagTitleIn(vs ...string) predicate.Dag {
	return predicate.Dag(sql.FieldIn(FieldDagTitle, vs...))
}

// DagTitleNotIn applies the NotIn predicate on the "dag_title" field.
func DagTitleNotIn(vs ...string) predicate.Dag {
	return predicate.Dag(sql.FieldNotIn(FieldDagTitle, vs...))
}

// DagTitleGT applies the GT predicate on the "dag_title" field.
func DagTitleGT(v string) predicate.Dag {
	return predicate.Dag(sql.FieldGT(FieldDagTitle, v))
}

// DagTitleGTE applies the GTE predicate on the "dag_title" field.
func DagTitleGTE(v string) predicate.Dag {
	return predicate.Dag(sql.FieldGTE(FieldDagTitle, v))
}

// DagTitleLT applies the LT predicate on the "dag_title" field.
func DagTitleLT(v string) predicate.Dag {
	return predicate.Dag(sql.FieldLT(FieldDagTitle, v))
}

// DagTitleLTE applies the LTE predicate on the "dag_title" field.
func DagTitleLTE(v string) predicate.Dag {
	return predicate.Dag(sql.FieldLTE(FieldDagTitle, v))
}

// DagTitleContains applies the Contains predicate on the "dag_title" field.
func DagTitleContains(v string) predicate.Dag {
	return predicate.Dag(sql.FieldContains(FieldDagTitle, v))
}

// DagTitleHasPrefix applies the HasPrefix predicate on the "dag_title" field.
func DagTitleHasPrefix(v string) predicate.Dag {
	return predicate.Dag(sql.FieldHasPrefix(FieldDagTitle, v))
}

// DagTitleHasSuffix applies the HasSuffix predicate on the "dag_title" field.
func DagTitleHasSuffix(v string) predicate.Dag {
	return predicate.Dag(sql.FieldHasSuffix(FieldDagTitle, v))
}

// DagTitleIsNil applies the IsNil predicate on the "dag_title" field.
func DagTitleIsNil() predicate.Dag {
	return predicate.Dag(sql.FieldIsNull(FieldDagTitle))
}

// DagTitleNotNil applies the NotNil predicate on the "dag_title" field.
func DagTitleNotNil() predicate.Dag {
	return predicate.Dag(sql.FieldNotNull(FieldDagTitle))
}

// DagTitleEqualFold applies the EqualFold predicate on the "dag_title" field.
func DagTitleEqualFold(v string) predicate.Dag {
	return predicate.Dag(sql.FieldEqualFold(FieldDagTitle, v))
}

// DagTitleContainsFold applies the ContainsFold predicate on the "dag_title" field.
func DagTitleContainsFold(v string) predicate.Dag {
	return predicate.Dag(sql.FieldContainsFold(FieldDagTitle, v))
}

// CronScheduleEQ applies the EQ predicate on the "cron_schedule" field.
func CronScheduleEQ(v string) predicate.Dag {
	return predicate.Dag(sql.FieldEQ(FieldCronSchedule, v))
}

// CronScheduleNEQ applies the NEQ predicate on the "cron_schedule" field.
func CronScheduleNEQ(v string) predicate.Dag {
	return predicate.Dag(sql.FieldNEQ(FieldCronSchedule, v))
}

// CronScheduleIn applies the In predicate on the "cron_schedule" field.
func CronScheduleIn(vs ...string) predicate.Dag {
	return predicate.Dag(sql.FieldIn(FieldCronSchedule, vs...))
}

// CronScheduleNotIn applies the NotIn predicate on the "cron_schedule" field.
func CronScheduleNotIn(vs ...string) predicate.Dag {
	return predicate.Dag(sql.FieldNotIn(FieldCronSchedule, vs...))
}

// CronScheduleGT applies the GT predicate on the "cron_schedule" field.
func CronScheduleGT(v string) predicate.Dag {
	return predicate.Dag(sql.FieldGT(FieldCronSchedule, v))
}

// CronScheduleGTE applies the GTE predicate on the "cron_schedule" field.
func CronScheduleGTE(v string) predicate.Dag {
	return predicate.Dag(sql.FieldGTE(FieldCronSchedule, v))
}

// CronScheduleLT applies the LT predicate on the "cron_schedule" field.
func CronScheduleLT(v string) predicate.Dag {
	return predicate.Dag(sql.FieldLT(FieldCronSchedule, v))
}

// CronScheduleLTE applies the LTE predicate on the "cron_schedule" field.
func CronScheduleLTE(v string) predicate.Dag {
	return predicate.Dag(sql.FieldLTE(FieldCronSchedule, v))
}

// CronScheduleContains applies the Contains predicate on the "cron_schedule" field.
func CronScheduleContains(v string) predicate.Dag {
	return predicate.Dag(sql.FieldContains(FieldCronSchedule, v))
}

// CronScheduleHasPrefix applies the HasPrefix predicate on the "cron_schedule" field.
func CronScheduleHasPrefix(v string) predicate.Dag {
	return predicate.Dag(sql.FieldHasPrefix(FieldCronSchedule, v))
}

// CronScheduleHasSuffix applies the HasSuffix predicate on the "cron_schedule" field.
func CronScheduleHasSuffix(v string) predicate.Dag {
	return predicate.Dag(sql.FieldHasSuffix(FieldCronSchedule, v))
}

// CronScheduleIsNil applies the IsNil predicate on the "cron_schedule" field.
func CronScheduleIsNil() predicate.Dag {
	return predicate.Dag(sql.FieldIsNull(FieldCronSchedule))
}

// CronScheduleNotNil applies the NotNil predicate on the "cron_schedule" field.
func CronScheduleNotNil() predicate.Dag {
	return predicate.Dag(sql.FieldNotNull(FieldCronSchedule))
}

// CronScheduleEqualFold applies the EqualFold predicate on the "cron_schedule" field.
func CronScheduleEqualFold(v string) predicate.Dag {
	return predicate.Dag(sql.FieldEqualFold(FieldCronSchedule, v))
}

// CronScheduleContainsFold applies the ContainsFold predicate on the "cron_schedule" field.
func CronScheduleContainsFold(v string) predicate.Dag {
	return predicate.Dag(sql.FieldContainsFold(FieldCronSchedule, v))
}

// ScheduleActiveEQ applies the EQ predicate on the "schedule_active" field.
func ScheduleActiveEQ(v bool) predicate.Dag {
	return predicate.Dag(sql.FieldEQ(FieldScheduleActive, v))
}

// ScheduleActiveNEQ applies the NEQ predicate on the "schedule_active" field.
func ScheduleActiveNEQ(v bool) predicate.Dag {
	return predicate.Dag(sql.FieldNEQ(FieldScheduleActive, v))
}

// LastRunAtEQ applies the EQ predicate on the "last_run_at" field.
func LastRunAtEQ(v time.Time) predicate.Dag {
	return predicate.Dag(sql.FieldEQ(FieldLastRunAt, v))
}

// LastRunAtNEQ applies the NEQ predicate on the "last_run_at" field.
func LastRunAtNEQ(v time.Time) predicate.Dag {
	return predicate.Dag(sql.FieldNEQ(FieldLastRunAt, v))
}

// LastRunAtIn applies the In predicate on the "last_run_at" field.
func LastRunAtIn(vs ...time.Time) predicate.Dag {
	return predicate.Dag(sql.FieldIn(FieldLastRunAt, vs...))
}

// LastRunAtNotIn applies the NotIn predicate on the "last_run_at" field.
func LastRunAtNotIn(vs ...time.Time) predicate.Dag {
	return predicate.Dag(sql.FieldNotIn(FieldLastRunAt, vs...))
}

// LastRunAtGT applies the GT predicate on the "last_run_at" field.
func LastRunAtGT(v time.Time) predicate.Dag {
	return predicate.Dag(sql.FieldGT(FieldLastRunAt, v))
}

// LastRunAtGTE applies the GTE predicate on the "last_run_at" field.
func LastRunAtGTE(v time.Time) predicate.Dag {
	return predicate.Dag(sql.FieldGTE(FieldLastRunAt, v))
}

// LastRunAtLT applies the LT predicate on the "last_run_at" field.
func LastRunAtLT(v time.Time) predicate.Dag {
	return predicate.Dag(sql.FieldLT(FieldLastRunAt, v))
}

// LastRunAtLTE applies the LTE predicate on the "last_run_at" field.
func LastRunAtLTE(v time.Time) predicate.Dag {
	return predicate.Dag(sql.FieldLTE(FieldLastRunAt, v))
}

// LastRunAtIsNil applies the IsNil predicate on the "last_run_at" field.
func LastRunAtIsNil() predicate.Dag {
	return predicate.Dag(sql.FieldIsNull(FieldLastRunAt))
}

// LastRunAtNotNil applies the NotNil predicate on the "last_run_at" field.
func LastRunAtNotNil() predicate.Dag {
	return predicate.Dag(sql.FieldNotNull(FieldLastRunAt))
}

// TimezoneEQ applies the EQ predicate on the "timezone" field.
func TimezoneEQ(v string) predicate.Dag {
	return predicate.Dag(sql.FieldEQ(FieldTimezone, v))
}

// TimezoneNEQ applies the NEQ predicate on the "timezone" field.
func TimezoneNEQ(v string) predicate.Dag {
	return predicate.Dag(sql.FieldNEQ(FieldTimezone, v))
}

// TimezoneIn applies the In predicate on the "timezone" field.
func TimezoneIn(vs ...string) predicate.Dag {
	return predicate.Dag(sql.FieldIn(FieldTimezone, vs...))
}

// TimezoneNotIn applies the NotIn predicate on the "timezone" field.
func TimezoneNotIn(vs ...string) predicate.Dag {
	return predicate.Dag(sql.FieldNotIn(FieldTimezone, vs...))
}

// TimezoneGT applies the GT predicate on the "timezone" field.
func TimezoneGT(v string) predicate.Dag {
	return predicate.Dag(sql.FieldGT(FieldTimezone, v))
}

// TimezoneGTE applies the GTE predicate on the "timezone" field.
func TimezoneGTE(v string) predicate.Dag {
	return predicate.Dag(sql.FieldGTE(FieldTimezone, v))
}

// TimezoneLT applies the LT predicate on the "timezone" field.
func TimezoneLT(v string) predicate.Dag {
	return predicate.Dag(sql.FieldLT(FieldTimezone, v))
}

// TimezoneLTE applies the LTE predicate on the "timezone" field.
func TimezoneLTE(v string) predicate.Dag {
	return predicate.Dag(sql.FieldLTE(FieldTimezone, v))
}

// TimezoneContains applies the Contains predicate on the "timezone" field.
func TimezoneContains(v string) predicate.Dag {
	return predicate.Dag(sql.FieldContains(FieldTimezone, v))
}

// TimezoneHasPrefix applies the HasPrefix predicate on the "timezone" field.
func TimezoneHasPrefix(v string) predicate.Dag {
	return predicate.Dag(sql.FieldHasPrefix(FieldTimezone, v))
}

// TimezoneHasSuffix applies the HasSuffix predicate on the "timezone" field.
func TimezoneHasSuffix(v string) predicate.Dag {
	return predicate.Dag(sql.FieldHasSuffix(FieldTimezone, v))
}

// TimezoneEqualFold applies the EqualFold predicate on the "timezone" field.
func TimezoneEqualFold(v string) predicate.Dag {
	return predicate.Dag(sql.FieldEqualFold(FieldTimezone, v))
}

// TimezoneContainsFold applies the ContainsFold predicate on the "timezone" field.
func TimezoneContainsFold(v string) predicate.Dag {
	return predicate.Dag(sql.FieldContainsFold(FieldTimezone, v))
}

// PlanningTotalUsageIsNil applies the IsNil predicate on the "planning_total_usage" field.
func PlanningTotalUsageIsNil() predicate.Dag {
	return predicate.Dag(sql.FieldIsNull(FieldPlanningTotalUsage))
}

// PlanningTotalUsageNotNil applies the NotNil predicate on the "planning_total_usage" field.
func PlanningTotalUsageNotNil() predicate.Dag {
	return predicate.Dag(sql.FieldNotNull(FieldPlanningTotalUsage))
}

// PlanningTotalCostUsdEQ applies the EQ predicate on the "planning_total_cost_usd" field.
func PlanningTotalCostUsdEQ(v string) predicate.Dag {
	return predicate.Dag(sql.FieldEQ(FieldPlanningTotalCostUsd, v))
}

// PlanningTotalCostUsdNEQ applies the NEQ predicate on the "planning_total_cost_usd" field.
func PlanningTotalCostUsdNEQ(v string) predicate.Dag {
	return predicate.Dag(sql.FieldNEQ(FieldPlanningTotalCostUsd, v))
}

// PlanningTotalCostUsdIn applies the In predicate on the "planning_total_cost_usd" field.
func PlanningTotalCostUsdIn(vs ...string) predicate.Dag {
	return predicate.Dag(sql.FieldIn(FieldPlanningTotalCostUsd, vs...))
}

// PlanningTotalCostUsdNotIn applies the NotIn predicate on the "planning_total_cost_usd" field.
func PlanningTotalCostUsdNotIn(vs ...string) predicate.Dag {
	return predicate.Dag(sql.FieldNotIn(FieldPlanningTotalCostUsd, vs...))
}

// PlanningTotalCostUsdGT applies the GT predicate on the "planning_total_cost_usd" field.
func PlanningTotalCostUsdGT(v string) predicate.Dag {
	return predicate.Dag(sql.FieldGT(FieldPlanningTotalCostUsd, v))
}

// PlanningTotalCostUsdGTE applies the GTE predicate on the "planning_total_cost_usd" field.
func PlanningTotalCostUsdGTE(v string) predicate.Dag {
	return predicate.Dag(sql.FieldGTE(FieldPlanningTotalCostUsd, v))
}

// PlanningTotalCostUsdLT applies the LT predicate on the "planning_total_cost_usd" field.
func PlanningTotalCostUsdLT(v string) predicate.Dag {
	return predicate.Dag(sql.FieldLT(FieldPlanningTotalCostUsd, v))
}

// PlanningTotalCostUsdLTE applies the LTE predicate on the "planning_total_cost_usd" field.
func PlanningTotalCostUsdLTE(v string) predicate.Dag {
	return predicate.Dag(sql.FieldLTE(FieldPlanningTotalCostUsd, v))
}

// PlanningTotalCostUsdContains applies the Contains predicate on the "planning_total_cost_usd" field.
func PlanningTotalCostUsdContains(v string) predicate.Dag {
	return predicate.Dag(sql.FieldContains(FieldPlanningTotalCostUsd, v))
}

// PlanningTotalCostUsdHasPrefix applies the HasPrefix predicate on the "planning_total_cost_usd" field.
func PlanningTotalCostUsdHasPrefix(v string) predicate.Dag {
	return predicate.Dag(sql.FieldHasPrefix(FieldPlanningTotalCostUsd, v))
}

// PlanningTotalCostUsdHasSuffix applies the HasSuffix predicate on the "planning_total_cost_usd" field.
func PlanningTotalCostUsdHasSuffix(v string) predicate.Dag {
	return predicate.Dag(sql.FieldHasSuffix(FieldPlanningTotalCostUsd, v))
}

// PlanningTotalCostUsdIsNil applies the IsNil predicate on the "planning_total_cost_usd" field.
func PlanningTotalCostUsdIsNil() predicate.Dag {
	return predicate.Dag(sql.FieldIsNull(FieldPlanningTotalCostUsd))
}

// PlanningTotalCostUsdNotNil applies the NotNil predicate on the "planning_total_cost_usd" field.
func PlanningTotalCostUsdNotNil() predicate.Dag {
	return predicate.Dag(sql.FieldNotNull(FieldPlanningTotalCostUsd))
}

// PlanningTotalCostUsdEqualFold applies the EqualFold predicate on the "planning_total_cost_usd" field.
func PlanningTotalCostUsdEqualFold(v string) predicate.Dag {
	return predicate.Dag(sql.FieldEqualFold(FieldPlanningTotalCostUsd, v))
}

// PlanningTotalCostUsdContainsFold applies the ContainsFold predicate on the "planning_total_cost_usd" field.
func PlanningTotalCostUsdContainsFold(v string) predicate.Dag {
	return predicate.Dag(sql.FieldContainsFold(FieldPlanningTotalCostUsd, v))
}

// PlanningAttemptsIsNil applies the IsNil predicate on the "planning_attempts" field.
func PlanningAttemptsIsNil() predicate.Dag {
	return predicate.Dag(sql.FieldIsNull(FieldPlanningAttempts))
}

// PlanningAttemptsNotNil applies the NotNil predicate on the "planning_attempts" field.
func PlanningAttemptsNotNil() predicate.Dag {
	return predicate.Dag(sql.FieldNotNull(FieldPlanningAttempts))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Dag {
	return predicate.Dag(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Dag {
	return predicate.Dag(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Dag {
	return predicate.Dag(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Dag {
	return predicate.Dag(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Dag {
	return predicate.Dag(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Dag {
	return predicate.Dag(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Dag {
	return predicate.Dag(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Dag {
	return predicate.Dag(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Dag {
	return predicate.Dag(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Dag {
	return predicate.Dag(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Dag {
	return predicate.Dag(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Dag {
	return predicate.Dag(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Dag {
	return predicate.Dag(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Dag {
	return predicate.Dag(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Dag {
	return predicate.Dag(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Dag {
	return predicate.Dag(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasExecutions applies the HasEdge predicate on the "executions" edge.
func HasExecutions() predicate.Dag {
	return predicate.Dag(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ExecutionsTable, ExecutionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExecutionsWith applies the HasEdge predicate on the "executions" edge with a given conditions (other predicates).
func HasExecutionsWith(preds ...predicate.DagExecution) predicate.Dag {
	return predicate.Dag(func(s *sql.Selector) {
		step := newExecutionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Dag) predicate.Dag {
	return predicate.Dag(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Dag) predicate.Dag {
	return predicate.Dag(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Dag) predicate.Dag {
	return predicate.Dag(sql.NotPredicates(p))
}
