// Code generated by ent, DO NOT EDIT.

package event

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the event type in the database.
	Label = "event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTranscriptID holds the string denoting the transcript_id field in the database.
	FieldTranscriptID = "transcript_id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldDedupeKey holds the string denoting the dedupe_key field in the database.
	FieldDedupeKey = "dedupe_key"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeTranscript holds the string denoting the transcript edge name in mutations.
	EdgeTranscript = "transcript"
	// TranscriptFieldID holds the string denoting the ID field of the Transcript.
	TranscriptFieldID = "transcript_id"
	// Table holds the table name of the event in the database.
	Table = "events"
	// TranscriptTable is the table that holds the transcript relation/edge.
	TranscriptTable = "events"
	// TranscriptInverseTable is the table name for the Transcript entity.
	// It exists in this package in order to avoid circular dependency with the "transcript" package.
	TranscriptInverseTable = "transcripts"
	// TranscriptColumn is the table column denoting the transcript relation/edge.
	TranscriptColumn = "transcript_id"
)

// Columns holds all SQL columns for event fields.
var Columns = []string{
	FieldID,
	FieldTranscriptID,
	FieldKind,
	FieldPayload,
	FieldDedupeKey,
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
	// KindValidator is a validator for the "kind" field. It is called by the builders before save.
	KindValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Event queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTranscriptID orders the results by the transcript_id field.
func ByTranscriptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTranscriptID, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByDedupeKey orders the results by the dedupe_key field.
func ByDedupeKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDedupeKey, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
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
