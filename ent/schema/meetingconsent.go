package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MeetingConsent holds the schema definition for the MeetingConsent entity.
// One row per participant decision about keeping the recording audio.
type MeetingConsent struct {
	ent.Schema
}

// Fields of the MeetingConsent.
func (MeetingConsent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("consent_id").
			Unique().
			Immutable(),
		field.String("meeting_id").
			Immutable(),
		field.String("participant_identifier").
			Optional().
			Nillable().
			Comment("Platform participant id, null for anonymous attendees"),
		field.Bool("approved").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the MeetingConsent.
func (MeetingConsent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("meeting", Meeting.Type).
			Ref("consents").
			Field("meeting_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the MeetingConsent.
func (MeetingConsent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("meeting_id"),
	}
}
