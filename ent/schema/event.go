package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity: the persisted
// progress stream consumed over WebSocket. The serial id doubles as the
// client resume cursor, so rows are append-only and never rewritten.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		// Implicit int id: serial, monotonic per insert order.
		field.String("transcript_id").
			Immutable(),
		field.String("kind").
			NotEmpty().
			Immutable().
			Comment("Wire event name, e.g. STATUS, TOPIC, FINAL_TITLE"),
		field.JSON("payload", json.RawMessage{}).
			Comment("Wire \"data\" object, stored verbatim"),
		field.String("dedupe_key").
			Immutable().
			Comment("Logical identity for at-most-once appends; random for fire-and-forget kinds"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Event.
func (Event) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("transcript", Transcript.Type).
			Ref("events").
			Field("transcript_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("transcript_id"),
		index.Fields("transcript_id", "dedupe_key").
			Unique(),
		index.Fields("created_at"),
	}
}
