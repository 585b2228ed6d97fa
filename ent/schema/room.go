package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Room holds the schema definition for the Room entity. A room is the
// standing configuration a meeting happens in: webhook delivery and Zulip
// posting are configured per room, not per transcript.
type Room struct {
	ent.Schema
}

// Fields of the Room.
func (Room) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("room_id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty().
			Unique(),
		field.String("webhook_url").
			Optional().
			Nillable(),
		field.String("webhook_secret").
			Optional().
			Nillable().
			Sensitive().
			Comment("HMAC key for signing webhook deliveries"),
		field.Bool("zulip_auto_post").
			Default(false),
		field.String("zulip_stream").
			Optional().
			Nillable(),
		field.String("zulip_topic").
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

// Edges of the Room.
func (Room) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("meetings", Meeting.Type).
			Annotations(entsql.OnDelete(entsql.SetNull)),
		edge.To("transcripts", Transcript.Type).
			Annotations(entsql.OnDelete(entsql.SetNull)),
	}
}
