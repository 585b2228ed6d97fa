package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Participant holds the schema definition for the Participant entity.
// Maps a diarization speaker index (multitrack: the track index) to a
// human-readable name, optionally backed by a platform user.
type Participant struct {
	ent.Schema
}

// Fields of the Participant.
func (Participant) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("participant_id").
			Unique().
			Immutable(),
		field.String("transcript_id").
			Immutable(),
		field.Int("speaker_index").
			Comment("Speaker label used in word payloads; track index for multitrack"),
		field.String("display_name").
			NotEmpty(),
		field.String("platform_id").
			Optional().
			Nillable().
			Comment("Recording-platform participant id"),
		field.String("user_id").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Participant.
func (Participant) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("transcript", Transcript.Type).
			Ref("participants").
			Field("transcript_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Participant.
func (Participant) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("transcript_id", "speaker_index").
			Unique(),
	}
}
