package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PipelineTask holds the schema definition for the PipelineTask entity:
// one node of the durable task DAG. Workers claim pending rows with
// SELECT ... FOR UPDATE SKIP LOCKED; a task stays "waiting" until every
// row it depends on has completed.
type PipelineTask struct {
	ent.Schema
}

// Fields of the PipelineTask.
func (PipelineTask) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("transcript_id").
			Immutable(),
		field.String("workflow_run_id").
			Immutable().
			Comment("Groups every task of one pipeline run"),
		field.String("name").
			NotEmpty().
			Comment("Handler name, e.g. 'mixdown'"),
		field.Enum("queue").
			Values("default", "cpu").
			Default("default"),
		field.Enum("status").
			Values("waiting", "pending", "running", "completed", "failed", "cancelled").
			Default("waiting"),
		field.JSON("params", json.RawMessage{}).
			Optional(),
		field.JSON("result", json.RawMessage{}).
			Optional(),
		field.Int("attempt").
			Default(0),
		field.Int("max_attempts").
			Default(3),
		field.Time("run_after").
			Default(time.Now).
			Comment("Earliest claim time; pushed out by the retry backoff"),
		field.Float("timeout_seconds").
			Default(600),
		field.String("concurrency_key").
			Optional().
			Nillable(),
		field.Int("max_concurrency").
			Default(0).
			Comment("Running cap across tasks sharing concurrency_key; 0 = unlimited"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("last_interaction_at").
			Optional().
			Nillable().
			Comment("Heartbeat; stale running rows get re-driven as orphans"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the PipelineTask.
func (PipelineTask) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("transcript", Transcript.Type).
			Ref("tasks").
			Field("transcript_id").
			Unique().
			Required().
			Immutable(),
		edge.To("depends_on", PipelineTask.Type).
			From("dependents"),
	}
}

// Indexes of the PipelineTask.
func (PipelineTask) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("workflow_run_id"),
		index.Fields("transcript_id"),
		index.Fields("status", "queue", "run_after"),
		index.Fields("status", "concurrency_key"),
		index.Fields("status", "pod_id"),
		index.Fields("status", "last_interaction_at"),
	}
}
