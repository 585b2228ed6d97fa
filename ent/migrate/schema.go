// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "kind", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "dedupe_key", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "transcript_id", Type: field.TypeString},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "events_transcripts_events",
				Columns:    []*schema.Column{EventsColumns[5]},
				RefColumns: []*schema.Column{TranscriptsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "event_transcript_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[5]},
			},
			{
				Name:    "event_transcript_id_dedupe_key",
				Unique:  true,
				Columns: []*schema.Column{EventsColumns[5], EventsColumns[3]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4]},
			},
		},
	}
	// MeetingsColumns holds the columns for the "meetings" table.
	MeetingsColumns = []*schema.Column{
		{Name: "meeting_id", Type: field.TypeString, Unique: true},
		{Name: "recording_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "room_id", Type: field.TypeString, Nullable: true},
	}
	// MeetingsTable holds the schema information for the "meetings" table.
	MeetingsTable = &schema.Table{
		Name:       "meetings",
		Columns:    MeetingsColumns,
		PrimaryKey: []*schema.Column{MeetingsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "meetings_rooms_meetings",
				Columns:    []*schema.Column{MeetingsColumns[3]},
				RefColumns: []*schema.Column{RoomsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
	}
	// MeetingConsentsColumns holds the columns for the "meeting_consents" table.
	MeetingConsentsColumns = []*schema.Column{
		{Name: "consent_id", Type: field.TypeString, Unique: true},
		{Name: "participant_identifier", Type: field.TypeString, Nullable: true},
		{Name: "approved", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "meeting_id", Type: field.TypeString},
	}
	// MeetingConsentsTable holds the schema information for the "meeting_consents" table.
	MeetingConsentsTable = &schema.Table{
		Name:       "meeting_consents",
		Columns:    MeetingConsentsColumns,
		PrimaryKey: []*schema.Column{MeetingConsentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "meeting_consents_meetings_consents",
				Columns:    []*schema.Column{MeetingConsentsColumns[5]},
				RefColumns: []*schema.Column{MeetingsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "meetingconsent_meeting_id",
				Unique:  false,
				Columns: []*schema.Column{MeetingConsentsColumns[5]},
			},
		},
	}
	// ParticipantsColumns holds the columns for the "participants" table.
	ParticipantsColumns = []*schema.Column{
		{Name: "participant_id", Type: field.TypeString, Unique: true},
		{Name: "speaker_index", Type: field.TypeInt},
		{Name: "display_name", Type: field.TypeString},
		{Name: "platform_id", Type: field.TypeString, Nullable: true},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "transcript_id", Type: field.TypeString},
	}
	// ParticipantsTable holds the schema information for the "participants" table.
	ParticipantsTable = &schema.Table{
		Name:       "participants",
		Columns:    ParticipantsColumns,
		PrimaryKey: []*schema.Column{ParticipantsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "participants_transcripts_participants",
				Columns:    []*schema.Column{ParticipantsColumns[7]},
				RefColumns: []*schema.Column{TranscriptsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "participant_transcript_id_speaker_index",
				Unique:  true,
				Columns: []*schema.Column{ParticipantsColumns[7], ParticipantsColumns[1]},
			},
		},
	}
	// PipelineTasksColumns holds the columns for the "pipeline_tasks" table.
	PipelineTasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "workflow_run_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "queue", Type: field.TypeEnum, Enums: []string{"default", "cpu"}, Default: "default"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"waiting", "pending", "running", "completed", "failed", "cancelled"}, Default: "waiting"},
		{Name: "params", Type: field.TypeJSON, Nullable: true},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "attempt", Type: field.TypeInt, Default: 0},
		{Name: "max_attempts", Type: field.TypeInt, Default: 3},
		{Name: "run_after", Type: field.TypeTime},
		{Name: "timeout_seconds", Type: field.TypeFloat64, Default: 600},
		{Name: "concurrency_key", Type: field.TypeString, Nullable: true},
		{Name: "max_concurrency", Type: field.TypeInt, Default: 0},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_interaction_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "transcript_id", Type: field.TypeString},
	}
	// PipelineTasksTable holds the schema information for the "pipeline_tasks" table.
	PipelineTasksTable = &schema.Table{
		Name:       "pipeline_tasks",
		Columns:    PipelineTasksColumns,
		PrimaryKey: []*schema.Column{PipelineTasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "pipeline_tasks_transcripts_tasks",
				Columns:    []*schema.Column{PipelineTasksColumns[20]},
				RefColumns: []*schema.Column{TranscriptsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "pipelinetask_status",
				Unique:  false,
				Columns: []*schema.Column{PipelineTasksColumns[4]},
			},
			{
				Name:    "pipelinetask_workflow_run_id",
				Unique:  false,
				Columns: []*schema.Column{PipelineTasksColumns[1]},
			},
			{
				Name:    "pipelinetask_transcript_id",
				Unique:  false,
				Columns: []*schema.Column{PipelineTasksColumns[20]},
			},
			{
				Name:    "pipelinetask_status_queue_run_after",
				Unique:  false,
				Columns: []*schema.Column{PipelineTasksColumns[4], PipelineTasksColumns[3], PipelineTasksColumns[9]},
			},
			{
				Name:    "pipelinetask_status_concurrency_key",
				Unique:  false,
				Columns: []*schema.Column{PipelineTasksColumns[4], PipelineTasksColumns[11]},
			},
			{
				Name:    "pipelinetask_status_pod_id",
				Unique:  false,
				Columns: []*schema.Column{PipelineTasksColumns[4], PipelineTasksColumns[14]},
			},
			{
				Name:    "pipelinetask_status_last_interaction_at",
				Unique:  false,
				Columns: []*schema.Column{PipelineTasksColumns[4], PipelineTasksColumns[17]},
			},
		},
	}
	// RoomsColumns holds the columns for the "rooms" table.
	RoomsColumns = []*schema.Column{
		{Name: "room_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "webhook_url", Type: field.TypeString, Nullable: true},
		{Name: "webhook_secret", Type: field.TypeString, Nullable: true},
		{Name: "zulip_auto_post", Type: field.TypeBool, Default: false},
		{Name: "zulip_stream", Type: field.TypeString, Nullable: true},
		{Name: "zulip_topic", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// RoomsTable holds the schema information for the "rooms" table.
	RoomsTable = &schema.Table{
		Name:       "rooms",
		Columns:    RoomsColumns,
		PrimaryKey: []*schema.Column{RoomsColumns[0]},
	}
	// TopicsColumns holds the columns for the "topics" table.
	TopicsColumns = []*schema.Column{
		{Name: "topic_id", Type: field.TypeString, Unique: true},
		{Name: "chunk_index", Type: field.TypeInt},
		{Name: "title", Type: field.TypeString},
		{Name: "summary", Type: field.TypeString, Size: 2147483647},
		{Name: "timestamp", Type: field.TypeFloat64},
		{Name: "duration", Type: field.TypeFloat64},
		{Name: "words", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "transcript_id", Type: field.TypeString},
	}
	// TopicsTable holds the schema information for the "topics" table.
	TopicsTable = &schema.Table{
		Name:       "topics",
		Columns:    TopicsColumns,
		PrimaryKey: []*schema.Column{TopicsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "topics_transcripts_topics",
				Columns:    []*schema.Column{TopicsColumns[9]},
				RefColumns: []*schema.Column{TranscriptsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "topic_transcript_id_chunk_index",
				Unique:  true,
				Columns: []*schema.Column{TopicsColumns[9], TopicsColumns[1]},
			},
		},
	}
	// TranscriptsColumns holds the columns for the "transcripts" table.
	TranscriptsColumns = []*schema.Column{
		{Name: "transcript_id", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"idle", "processing", "ended", "error"}, Default: "idle"},
		{Name: "name", Type: field.TypeString, Default: ""},
		{Name: "source_language", Type: field.TypeString, Default: "en"},
		{Name: "target_language", Type: field.TypeString, Default: "en"},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "short_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "long_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "action_items", Type: field.TypeJSON, Nullable: true},
		{Name: "duration_ms", Type: field.TypeFloat64, Nullable: true},
		{Name: "audio_location", Type: field.TypeEnum, Enums: []string{"local", "storage"}, Default: "storage"},
		{Name: "audio_deleted", Type: field.TypeBool, Default: false},
		{Name: "words", Type: field.TypeJSON, Nullable: true},
		{Name: "workflow_run_id", Type: field.TypeString, Nullable: true},
		{Name: "zulip_message_id", Type: field.TypeInt64, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "meeting_id", Type: field.TypeString, Nullable: true},
		{Name: "room_id", Type: field.TypeString, Nullable: true},
	}
	// TranscriptsTable holds the schema information for the "transcripts" table.
	TranscriptsTable = &schema.Table{
		Name:       "transcripts",
		Columns:    TranscriptsColumns,
		PrimaryKey: []*schema.Column{TranscriptsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "transcripts_meetings_transcripts",
				Columns:    []*schema.Column{TranscriptsColumns[17]},
				RefColumns: []*schema.Column{MeetingsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "transcripts_rooms_transcripts",
				Columns:    []*schema.Column{TranscriptsColumns[18]},
				RefColumns: []*schema.Column{RoomsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "transcript_status",
				Unique:  false,
				Columns: []*schema.Column{TranscriptsColumns[1]},
			},
			{
				Name:    "transcript_room_id",
				Unique:  false,
				Columns: []*schema.Column{TranscriptsColumns[18]},
			},
			{
				Name:    "transcript_meeting_id",
				Unique:  false,
				Columns: []*schema.Column{TranscriptsColumns[17]},
			},
			{
				Name:    "transcript_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{TranscriptsColumns[1], TranscriptsColumns[15]},
			},
		},
	}
	// PipelineTaskDependsOnColumns holds the columns for the "pipeline_task_depends_on" table.
	PipelineTaskDependsOnColumns = []*schema.Column{
		{Name: "pipeline_task_id", Type: field.TypeString},
		{Name: "dependent_id", Type: field.TypeString},
	}
	// PipelineTaskDependsOnTable holds the schema information for the "pipeline_task_depends_on" table.
	PipelineTaskDependsOnTable = &schema.Table{
		Name:       "pipeline_task_depends_on",
		Columns:    PipelineTaskDependsOnColumns,
		PrimaryKey: []*schema.Column{PipelineTaskDependsOnColumns[0], PipelineTaskDependsOnColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "pipeline_task_depends_on_pipeline_task_id",
				Columns:    []*schema.Column{PipelineTaskDependsOnColumns[0]},
				RefColumns: []*schema.Column{PipelineTasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "pipeline_task_depends_on_dependent_id",
				Columns:    []*schema.Column{PipelineTaskDependsOnColumns[1]},
				RefColumns: []*schema.Column{PipelineTasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		EventsTable,
		MeetingsTable,
		MeetingConsentsTable,
		ParticipantsTable,
		PipelineTasksTable,
		RoomsTable,
		TopicsTable,
		TranscriptsTable,
		PipelineTaskDependsOnTable,
	}
)

func init() {
	EventsTable.ForeignKeys[0].RefTable = TranscriptsTable
	MeetingsTable.ForeignKeys[0].RefTable = RoomsTable
	MeetingConsentsTable.ForeignKeys[0].RefTable = MeetingsTable
	ParticipantsTable.ForeignKeys[0].RefTable = TranscriptsTable
	PipelineTasksTable.ForeignKeys[0].RefTable = TranscriptsTable
	TopicsTable.ForeignKeys[0].RefTable = TranscriptsTable
	TranscriptsTable.ForeignKeys[0].RefTable = MeetingsTable
	TranscriptsTable.ForeignKeys[1].RefTable = RoomsTable
	PipelineTaskDependsOnTable.ForeignKeys[0].RefTable = PipelineTasksTable
	PipelineTaskDependsOnTable.ForeignKeys[1].RefTable = PipelineTasksTable
}
