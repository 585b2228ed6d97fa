// Code generated by ent, DO NOT EDIT.

package participant

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the participant type in the database.
	Label = "participant"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "participant_id"
	// FieldTranscriptID holds the string denoting the transcript_id field in the database.
	FieldTranscriptID = "transcript_id"
	// FieldSpeakerIndex holds the string denoting the speaker_index field in the database.
	FieldSpeakerIndex = "speaker_index"
	// FieldDisplayName holds the string denoting the display_name field in the database.
	FieldDisplayName = "display_name"
	// FieldPlatformID holds the string denoting the platform_id field in the database.
	FieldPlatformID = "platform_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeTranscript holds the string denoting the transcript edge name in mutations.
	EdgeTranscript = "transcript"
	// TranscriptFieldID holds the string denoting the ID field of the Transcript.
	TranscriptFieldID = "transcript_id"
	// Table holds the table name of the participant in the database.
	Table = "participants"
	// TranscriptTable is the table that holds the transcript relation/edge.
	TranscriptTable = "participants"
	// TranscriptInverseTable is the table name for the Transcript entity.
	// It exists in this package in order to avoid circular dependency with the "transcript" package.
	TranscriptInverseTable = "transcripts"
	// TranscriptColumn is the table column denoting the transcript relation/edge.
	TranscriptColumn = "transcript_id"
)

// Columns holds all SQL columns for participant fields.
var Columns = []string{
	FieldID,
	FieldTranscriptID,
	FieldSpeakerIndex,
	FieldDisplayName,
	FieldPlatformID,
	FieldUserID,
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
	// DisplayNameValidator is a validator for the "display_name" field. It is called by the builders before save.
	DisplayNameValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Participant queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTranscriptID orders the results by the transcript_id field.
func ByTranscriptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTranscriptID, opts...).ToFunc()
}

// BySpeakerIndex orders the results by the speaker_index field.
func BySpeakerIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpeakerIndex, opts...).ToFunc()
}

// ByDisplayName orders the results by the display_name field.
func ByDisplayName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisplayName, opts...).ToFunc()
}

// ByPlatformID orders the results by the platform_id field.
func ByPlatformID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlatformID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByTranscriptField orders the results by transcript field.
func ByTranscriptField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTranscriptStep(), sql.OrderByField(field, opts...))
	}
}
func newTranscriptStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TranscriptInverseTable, TranscriptFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TranscriptTable, TranscriptColumn),
	)
}
