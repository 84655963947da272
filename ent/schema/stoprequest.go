package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StopRequest holds the schema definition for the StopRequest entity: a
// cooperative stop signal keyed by either a DAG id or an execution id.
type StopRequest struct {
	ent.Schema
}

// Fields of the StopRequest.
func (StopRequest) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("stop_request_id").
			Unique().
			Immutable(),
		field.String("dag_id").
			Optional().
			Nillable(),
		field.String("execution_id").
			Optional().
			Nillable(),
		field.Enum("status").
			Values("requested", "handled").
			Default("requested"),
		field.Time("requested_at").
			Default(time.Now).
			Immutable(),
		field.Time("handled_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the StopRequest.
func (StopRequest) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("dag_id", "status"),
		index.Fields("execution_id", "status"),

		// At most one open request per key.
		index.Fields("dag_id").
			Unique().
			Annotations(entsql.IndexWhere("status = 'requested' AND dag_id IS NOT NULL")),
		index.Fields("execution_id").
			Unique().
			Annotations(entsql.IndexWhere("status = 'requested' AND execution_id IS NOT NULL")),
	}
}

// Annotations of the StopRequest.
func (StopRequest) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Checks(map[string]string{
			"stop_request_target": "(dag_id IS NULL) != (execution_id IS NULL)",
		}),
	}
}
