package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/monadical-sas/reflector/pkg/models"
)

// Topic holds the schema definition for the Topic entity. One row per
// detected discussion segment; ids are deterministic per (transcript,
// chunk index) so pipeline reruns replace rather than duplicate.
type Topic struct {
	ent.Schema
}

// Fields of the Topic.
func (Topic) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("topic_id").
			Unique().
			Immutable(),
		field.String("transcript_id").
			Immutable(),
		field.Int("chunk_index").
			Comment("Position in the chunked transcript: 0, 1, 2..."),
		field.String("title"),
		field.Text("summary"),
		field.Float("timestamp").
			Comment("Start of the segment, seconds from meeting start"),
		field.Float("duration").
			Comment("Segment length in seconds"),
		field.JSON("words", []models.Word{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Topic.
func (Topic) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("transcript", Transcript.Type).
			Ref("topics").
			Field("transcript_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Topic.
func (Topic) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("transcript_id", "chunk_index").
			Unique(),
	}
}
