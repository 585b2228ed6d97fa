// Code generated by ent, DO NOT EDIT.

package transcript

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the transcript type in the database.
	Label = "transcript"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "transcript_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldSourceLanguage holds the string denoting the source_language field in the database.
	FieldSourceLanguage = "source_language"
	// FieldTargetLanguage holds the string denoting the target_language field in the database.
	FieldTargetLanguage = "target_language"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldShortSummary holds the string denoting the short_summary field in the database.
	FieldShortSummary = "short_summary"
	// FieldLongSummary holds the string denoting the long_summary field in the database.
	FieldLongSummary = "long_summary"
	// FieldActionItems holds the string denoting the action_items field in the database.
	FieldActionItems = "action_items"
	// FieldDurationMs holds the string denoting the duration_ms field in the database.
	FieldDurationMs = "duration_ms"
	// FieldAudioLocation holds the string denoting the audio_location field in the database.
	FieldAudioLocation = "audio_location"
	// FieldAudioDeleted holds the string denoting the audio_deleted field in the database.
	FieldAudioDeleted = "audio_deleted"
	// FieldWords holds the string denoting the words field in the database.
	FieldWords = "words"
	// FieldWorkflowRunID holds the string denoting the workflow_run_id field in the database.
	FieldWorkflowRunID = "workflow_run_id"
	// FieldZulipMessageID holds the string denoting the zulip_message_id field in the database.
	FieldZulipMessageID = "zulip_message_id"
	// FieldRoomID holds the string denoting the room_id field in the database.
	FieldRoomID = "room_id"
	// FieldMeetingID holds the string denoting the meeting_id field in the database.
	FieldMeetingID = "meeting_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeRoom holds the string denoting the room edge name in mutations.
	EdgeRoom = "room"
	// EdgeMeeting holds the string denoting the meeting edge name in mutations.
	EdgeMeeting = "meeting"
	// EdgeTopics holds the string denoting the topics edge name in mutations.
	EdgeTopics = "topics"
	// EdgeParticipants holds the string denoting the participants edge name in mutations.
	EdgeParticipants = "participants"
	// EdgeEvents holds the string denoting the events edge name in mutations.
	EdgeEvents = "events"
	// EdgeTasks holds the string denoting the tasks edge name in mutations.
	EdgeTasks = "tasks"
	// RoomFieldID holds the string denoting the ID field of the Room.
	RoomFieldID = "room_id"
	// MeetingFieldID holds the string denoting the ID field of the Meeting.
	MeetingFieldID = "meeting_id"
	// TopicFieldID holds the string denoting the ID field of the Topic.
	TopicFieldID = "topic_id"
	// ParticipantFieldID holds the string denoting the ID field of the Participant.
	ParticipantFieldID = "participant_id"
	// EventFieldID holds the string denoting the ID field of the Event.
	EventFieldID = "id"
	// PipelineTaskFieldID holds the string denoting the ID field of the PipelineTask.
	PipelineTaskFieldID = "task_id"
	// Table holds the table name of the transcript in the database.
	Table = "transcripts"
	// RoomTable is the table that holds the room relation/edge.
	RoomTable = "transcripts"
	// RoomInverseTable is the table name for the Room entity.
	// It exists in this package in order to avoid circular dependency with the "room" package.
	RoomInverseTable = "rooms"
	// RoomColumn is the table column denoting the room relation/edge.
	RoomColumn = "room_id"
	// MeetingTable is the table that holds the meeting relation/edge.
	MeetingTable = "transcripts"
	// MeetingInverseTable is the table name for the Meeting entity.
	// It exists in this package in order to avoid circular dependency with the "meeting" package.
	MeetingInverseTable = "meetings"
	// MeetingColumn is the table column denoting the meeting relation/edge.
	MeetingColumn = "meeting_id"
	// TopicsTable is the table that holds the topics relation/edge.
	TopicsTable = "topics"
	// TopicsInverseTable is the table name for the Topic entity.
	// It exists in this package in order to avoid circular dependency with the "topic" package.
	TopicsInverseTable = "topics"
	// TopicsColumn is the table column denoting the topics relation/edge.
	TopicsColumn = "transcript_id"
	// ParticipantsTable is the table that holds the participants relation/edge.
	ParticipantsTable = "participants"
	// ParticipantsInverseTable is the table name for the Participant entity.
	// It exists in this package in order to avoid circular dependency with the "participant" package.
	ParticipantsInverseTable = "participants"
	// ParticipantsColumn is the table column denoting the participants relation/edge.
	ParticipantsColumn = "transcript_id"
	// EventsTable is the table that holds the events relation/edge.
	EventsTable = "events"
	// EventsInverseTable is the table name for the Event entity.
	// It exists in this package in order to avoid circular dependency with the "event" package.
	EventsInverseTable = "events"
	// EventsColumn is the table column denoting the events relation/edge.
	EventsColumn = "transcript_id"
	// TasksTable is the table that holds the tasks relation/edge.
	TasksTable = "pipeline_tasks"
	// TasksInverseTable is the table name for the PipelineTask entity.
	// It exists in this package in order to avoid circular dependency with the "pipelinetask" package.
	TasksInverseTable = "pipeline_tasks"
	// TasksColumn is the table column denoting the tasks relation/edge.
	TasksColumn = "transcript_id"
)

// Columns holds all SQL columns for transcript fields.
var Columns = []string{
	FieldID,
	FieldStatus,
	FieldName,
	FieldSourceLanguage,
	FieldTargetLanguage,
	FieldTitle,
	FieldShortSummary,
	FieldLongSummary,
	FieldActionItems,
	FieldDurationMs,
	FieldAudioLocation,
	FieldAudioDeleted,
	FieldWords,
	FieldWorkflowRunID,
	FieldZulipMessageID,
	FieldRoomID,
	FieldMeetingID,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultName holds the default value on creation for the "name" field.
	DefaultName string
	// DefaultSourceLanguage holds the default value on creation for the "source_language" field.
	DefaultSourceLanguage string
	// DefaultTargetLanguage holds the default value on creation for the "target_language" field.
	DefaultTargetLanguage string
	// DefaultAudioDeleted holds the default value on creation for the "audio_deleted" field.
	DefaultAudioDeleted bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusIdle is the default value of the Status enum.
const DefaultStatus = StatusIdle

// Status values.
const (
	StatusIdle       Status = "idle"
	StatusProcessing Status = "processing"
	StatusEnded      Status = "ended"
	StatusError      Status = "error"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusIdle, StatusProcessing, StatusEnded, StatusError:
		return nil
	default:
		return fmt.Errorf("transcript: invalid enum value for status field: %q", s)
	}
}

// AudioLocation defines the type for the "audio_location" enum field.
type AudioLocation string

// AudioLocationStorage is the default value of the AudioLocation enum.
const DefaultAudioLocation = AudioLocationStorage

// AudioLocation values.
const (
	AudioLocationLocal   AudioLocation = "local"
	AudioLocationStorage AudioLocation = "storage"
)

func (al AudioLocation) String() string {
	return string(al)
}

// AudioLocationValidator is a validator for the "audio_location" field enum values. It is called by the builders before save.
func AudioLocationValidator(al AudioLocation) error {
	switch al {
	case AudioLocationLocal, AudioLocationStorage:
		return nil
	default:
		return fmt.Errorf("transcript: invalid enum value for audio_location field: %q", al)
	}
}

// OrderOption defines the ordering options for the Transcript queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// BySourceLanguage orders the results by the source_language field.
func BySourceLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceLanguage, opts...).ToFunc()
}

// ByTargetLanguage orders the results by the target_language field.
func ByTargetLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetLanguage, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByShortSummary orders the results by the short_summary field.
func ByShortSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldShortSummary, opts...).ToFunc()
}

// ByLongSummary orders the results by the long_summary field.
func ByLongSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLongSummary, opts...).ToFunc()
}

// ByDurationMs orders the results by the duration_ms field.
func ByDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMs, opts...).ToFunc()
}

// ByAudioLocation orders the results by the audio_location field.
func ByAudioLocation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAudioLocation, opts...).ToFunc()
}

// ByAudioDeleted orders the results by the audio_deleted field.
func ByAudioDeleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAudioDeleted, opts...).ToFunc()
}

// ByWorkflowRunID orders the results by the workflow_run_id field.
func ByWorkflowRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkflowRunID, opts...).ToFunc()
}

// ByZulipMessageID orders the results by the zulip_message_id field.
func ByZulipMessageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldZulipMessageID, opts...).ToFunc()
}

// ByRoomID orders the results by the room_id field.
func ByRoomID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoomID, opts...).ToFunc()
}

// ByMeetingID orders the results by the meeting_id field.
func ByMeetingID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMeetingID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByRoomField orders the results by room field.
func ByRoomField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRoomStep(), sql.OrderByField(field, opts...))
	}
}

// ByMeetingField orders the results by meeting field.
func ByMeetingField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMeetingStep(), sql.OrderByField(field, opts...))
	}
}

// ByTopicsCount orders the results by topics count.
func ByTopicsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTopicsStep(), opts...)
	}
}

// ByTopics orders the results by topics terms.
func ByTopics(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTopicsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByParticipantsCount orders the results by participants count.
func ByParticipantsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newParticipantsStep(), opts...)
	}
}

// ByParticipants orders the results by participants terms.
func ByParticipants(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newParticipantsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByEventsCount orders the results by events count.
func ByEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventsStep(), opts...)
	}
}

// ByEvents orders the results by events terms.
func ByEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTasksCount orders the results by tasks count.
func ByTasksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTasksStep(), opts...)
	}
}

// ByTasks orders the results by tasks terms.
func ByTasks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTasksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newRoomStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RoomInverseTable, RoomFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RoomTable, RoomColumn),
	)
}
func newMeetingStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MeetingInverseTable, MeetingFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, MeetingTable, MeetingColumn),
	)
}
func newTopicsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TopicsInverseTable, TopicFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TopicsTable, TopicsColumn),
	)
}
func newParticipantsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ParticipantsInverseTable, ParticipantFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ParticipantsTable, ParticipantsColumn),
	)
}
func newEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventsInverseTable, EventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
	)
}
func newTasksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TasksInverseTable, PipelineTaskFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TasksTable, TasksColumn),
	)
}
