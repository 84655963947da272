package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Dag holds the schema definition for the Dag entity: a persisted plan
// produced by the planner, successful or not.
type Dag struct {
	ent.Schema
}

// Fields of the Dag.
func (Dag) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("dag_id").
			Unique().
			Immutable(),
		field.Enum("status").
			Values("success", "pending", "validation_error").
			Comment("'pending' means awaiting clarification"),
		field.JSON("result", map[string]interface{}{}).
			Optional().
			Comment("The structured plan, or {raw_response} for rejected output"),
		field.JSON("params", map[string]interface{}{}).
			Optional().
			Comment("The planning inputs that produced this DAG"),
		field.String("agent_name"),
		field.String("dag_title").
			Optional().
			Nillable().
			Comment("Short label from the title-master side call"),
		field.String("cron_schedule").
			Optional().
			Nillable(),
		field.Bool("schedule_active").
			Default(false),
		field.Time("last_run_at").
			Optional().
			Nillable(),
		field.String("timezone").
			Default("UTC"),
		field.JSON("planning_total_usage", map[string]interface{}{}).
			Optional().
			Comment("Token totals across all planning attempts"),
		field.String("planning_total_cost_usd").
			Optional().
			Nillable().
			Comment("Decimal string, never a float"),
		field.JSON("planning_attempts", []map[string]interface{}{}).
			Optional().
			Comment("One entry per LLM call with reason, usage, cost, error"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Dag.
func (Dag) Edges() []ent.Edge {
	return []ent.Edge{
		// Deleting a DAG with executions is refused, not cascaded.
		edge.To("executions", DagExecution.Type).
			Annotations(entsql.OnDelete(entsql.Restrict)),
	}
}

// Indexes of the Dag.
func (Dag) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("agent_name"),
		index.Fields("status", "created_at"),
		index.Fields("schedule_active").
			Annotations(entsql.IndexWhere("schedule_active AND cron_schedule IS NOT NULL")),
	}
}
