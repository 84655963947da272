package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Agent holds the schema definition for the Agent entity.
// An agent is a named, versioned prompt persona (decomposer, title master,
// inference personas) with an optional provider/model pin.
type Agent struct {
	ent.Schema
}

// Fields of the Agent.
func (Agent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.Int("version").
			Default(1),
		field.Text("prompt_template").
			Comment("May contain {{tools}} and {{currentDate}} tokens"),
		field.String("provider").
			Optional().
			Comment("Empty means the configured default provider"),
		field.String("model").
			Optional().
			Comment("Empty means the provider's default model"),
		field.Bool("active").
			Default(false),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Agent.
func (Agent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name", "version").
			Unique(),

		// At most one active version per name.
		index.Fields("name").
			Unique().
			Annotations(entsql.IndexWhere("active")),
	}
}
