// Code generated by ent, DO NOT EDIT.

package meeting

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the meeting type in the database.
	Label = "meeting"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "meeting_id"
	// FieldRoomID holds the string denoting the room_id field in the database.
	FieldRoomID = "room_id"
	// FieldRecordingID holds the string denoting the recording_id field in the database.
	FieldRecordingID = "recording_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeRoom holds the string denoting the room edge name in mutations.
	EdgeRoom = "room"
	// EdgeConsents holds the string denoting the consents edge name in mutations.
	EdgeConsents = "consents"
	// EdgeTranscripts holds the string denoting the transcripts edge name in mutations.
	EdgeTranscripts = "transcripts"
	// RoomFieldID holds the string denoting the ID field of the Room.
	RoomFieldID = "room_id"
	// MeetingConsentFieldID holds the string denoting the ID field of the MeetingConsent.
	MeetingConsentFieldID = "consent_id"
	// TranscriptFieldID holds the string denoting the ID field of the Transcript.
	TranscriptFieldID = "transcript_id"
	// Table holds the table name of the meeting in the database.
	Table = "meetings"
	// RoomTable is the table that holds the room relation/edge.
	RoomTable = "meetings"
	// RoomInverseTable is the table name for the Room entity.
	// It exists in this package in order to avoid circular dependency with the "room" package.
	RoomInverseTable = "rooms"
	// RoomColumn is the table column denoting the room relation/edge.
	RoomColumn = "room_id"
	// ConsentsTable is the table that holds the consents relation/edge.
	ConsentsTable = "meeting_consents"
	// ConsentsInverseTable is the table name for the MeetingConsent entity.
	// It exists in this package in order to avoid circular dependency with the "meetingconsent" package.
	ConsentsInverseTable = "meeting_consents"
	// ConsentsColumn is the table column denoting the consents relation/edge.
	ConsentsColumn = "meeting_id"
	// TranscriptsTable is the table that holds the transcripts relation/edge.
	TranscriptsTable = "transcripts"
	// TranscriptsInverseTable is the table name for the Transcript entity.
	// It exists in this package in order to avoid circular dependency with the "transcript" package.
	TranscriptsInverseTable = "transcripts"
	// TranscriptsColumn is the table column denoting the transcripts relation/edge.
	TranscriptsColumn = "meeting_id"
)

// Columns holds all SQL columns for meeting fields.
var Columns = []string{
	FieldID,
	FieldRoomID,
	FieldRecordingID,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Meeting queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRoomID orders the results by the room_id field.
func ByRoomID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoomID, opts...).ToFunc()
}

// ByRecordingID orders the results by the recording_id field.
func ByRecordingID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecordingID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByRoomField orders the results by room field.
func ByRoomField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRoomStep(), sql.OrderByField(field, opts...))
	}
}

// ByConsentsCount orders the results by consents count.
func ByConsentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newConsentsStep(), opts...)
	}
}

// ByConsents orders the results by consents terms.
func ByConsents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newConsentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTranscriptsCount orders the results by transcripts count.
func ByTranscriptsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTranscriptsStep(), opts...)
	}
}

// ByTranscripts orders the results by transcripts terms.
func ByTranscripts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTranscriptsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newRoomStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RoomInverseTable, RoomFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RoomTable, RoomColumn),
	)
}
func newConsentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ConsentsInverseTable, MeetingConsentFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ConsentsTable, ConsentsColumn),
	)
}
func newTranscriptsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TranscriptsInverseTable, TranscriptFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TranscriptsTable, TranscriptsColumn),
	)
}
