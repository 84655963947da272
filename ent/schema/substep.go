package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SubStep holds the schema definition for the SubStep entity: one node of
// an execution, 1:1 with a plan sub-task plus the synthetic __SYNTHESIS__ row.
type SubStep struct {
	ent.Schema
}

// Fields of the SubStep.
func (SubStep) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("sub_step_id").
			Unique().
			Immutable(),
		field.String("execution_id").
			Immutable(),
		field.String("task_id").
			Comment("Mirrors the plan id ('001', ...) or '__SYNTHESIS__'"),
		field.Text("description"),
		field.Text("thought").
			Optional(),
		field.Enum("action_type").
			Values("tool", "inference"),
		field.String("tool_or_prompt_name"),
		field.JSON("tool_or_prompt_params", map[string]interface{}{}).
			Optional(),
		field.JSON("dependencies", []string{}).
			Optional(),
		field.Enum("status").
			Values("pending", "running", "waiting", "completed", "failed", "deleted").
			Default("pending"),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int64("duration_ms").
			Optional().
			Nillable(),
		field.JSON("result", json.RawMessage{}).
			Optional().
			Comment("Any JSON value the task produced"),
		field.Text("error").
			Optional().
			Nillable(),
		field.JSON("usage", map[string]interface{}{}).
			Optional(),
		field.String("cost_usd").
			Optional().
			Nillable().
			Comment("Decimal string, never a float"),
		field.JSON("generation_stats", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the SubStep.
func (SubStep) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("execution", DagExecution.Type).
			Ref("sub_steps").
			Field("execution_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the SubStep.
func (SubStep) Indexes() []ent.Index {
	return []ent.Index{
		// The executor addresses rows by (execution, task).
		index.Fields("execution_id", "task_id").
			Unique(),
		index.Fields("status"),
		index.Fields("execution_id", "status"),
	}
}
