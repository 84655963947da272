package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DagExecution holds the schema definition for the DagExecution entity:
// one run of a DAG.
type DagExecution struct {
	ent.Schema
}

// Fields of the DagExecution.
func (DagExecution) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("execution_id").
			Unique().
			Immutable(),
		field.String("dag_id").
			Optional().
			Nillable().
			Comment("Null for ad-hoc plan runs"),
		field.Text("original_request"),
		field.String("primary_intent").
			Optional(),
		field.Enum("status").
			Values("pending", "running", "waiting", "completed", "failed", "partial", "suspended").
			Default("pending").
			Comment("Derived from sub-step counts except for stop (pending) and suspension"),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int64("duration_ms").
			Optional().
			Nillable(),
		field.Int("total_tasks").
			Default(0),
		field.Int("completed_tasks").
			Default(0),
		field.Int("failed_tasks").
			Default(0),
		field.Int("waiting_tasks").
			Default(0),
		field.Text("final_result").
			Optional().
			Nillable().
			Comment("Validated synthesis markdown"),
		field.JSON("synthesis_result", map[string]interface{}{}).
			Optional().
			Comment("Raw synthesis output plus timing"),
		field.String("suspended_reason").
			Optional().
			Nillable(),
		field.Time("suspended_at").
			Optional().
			Nillable(),
		field.Int("retry_count").
			Default(0),
		field.Time("last_retry_at").
			Optional().
			Nillable(),
		field.JSON("total_usage", map[string]interface{}{}).
			Optional().
			Comment("Token totals across all sub-steps including synthesis"),
		field.String("total_cost_usd").
			Optional().
			Nillable().
			Comment("Decimal string, never a float"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the DagExecution.
func (DagExecution) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("dag", Dag.Type).
			Ref("executions").
			Field("dag_id").
			Unique(),
		edge.To("sub_steps", SubStep.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the DagExecution.
func (DagExecution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("dag_id"),
		index.Fields("status", "created_at"),
		index.Fields("status", "completed_at"),
	}
}
