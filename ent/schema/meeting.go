package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Meeting holds the schema definition for the Meeting entity. A meeting ties
// a recording session to a room and carries the consent records collected
// while the meeting ran.
type Meeting struct {
	ent.Schema
}

// Fields of the Meeting.
func (Meeting) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("meeting_id").
			Unique().
			Immutable(),
		field.String("room_id").
			Optional().
			Nillable(),
		field.String("recording_id").
			Optional().
			Nillable().
			Comment("Platform-side recording identifier"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Meeting.
func (Meeting) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("room", Room.Type).
			Ref("meetings").
			Field("room_id").
			Unique(),
		edge.To("consents", MeetingConsent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("transcripts", Transcript.Type).
			Annotations(entsql.OnDelete(entsql.SetNull)),
	}
}
