package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/monadical-sas/reflector/pkg/models"
)

// Transcript holds the schema definition for the Transcript entity. This is
// the aggregate the whole pipeline hangs off: recording metadata, pipeline
// outputs (title, summaries, action items, words) and lifecycle status.
type Transcript struct {
	ent.Schema
}

// Fields of the Transcript.
func (Transcript) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("transcript_id").
			Unique().
			Immutable(),
		field.Enum("status").
			Values("idle", "processing", "ended", "error").
			Default("idle"),
		field.String("name").
			Default(""),
		field.String("source_language").
			Default("en"),
		field.String("target_language").
			Default("en"),
		field.String("title").
			Optional().
			Nillable().
			Comment("User-editable; the pipeline never overwrites a non-empty value"),
		field.Text("short_summary").
			Optional().
			Nillable(),
		field.Text("long_summary").
			Optional().
			Nillable().
			Comment("Markdown recap + per-subject summary"),
		field.JSON("action_items", &models.ActionItems{}).
			Optional(),
		field.Float("duration_ms").
			Optional().
			Nillable().
			Comment("Mixed-down recording duration"),
		field.Enum("audio_location").
			Values("local", "storage").
			Default("storage"),
		field.Bool("audio_deleted").
			Default(false).
			Comment("True only after originals and mixdown are both gone"),
		field.JSON("words", []models.Word{}).
			Optional().
			Comment("Merged meeting-global word stream, speaker = track index"),
		field.String("workflow_run_id").
			Optional().
			Nillable().
			Comment("Set while a pipeline run owns this transcript"),
		field.Int64("zulip_message_id").
			Optional().
			Nillable().
			Comment("For create-then-update message threading"),
		field.String("room_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("meeting_id").
			Optional().
			Nillable().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Transcript.
func (Transcript) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("room", Room.Type).
			Ref("transcripts").
			Field("room_id").
			Unique().
			Immutable(),
		edge.From("meeting", Meeting.Type).
			Ref("transcripts").
			Field("meeting_id").
			Unique().
			Immutable(),
		edge.To("topics", Topic.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("participants", Participant.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", Event.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("tasks", PipelineTask.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Transcript.
func (Transcript) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("room_id"),
		index.Fields("meeting_id"),
		index.Fields("status", "created_at"),
	}
}
