// Code generated by ent, DO NOT EDIT.

package room

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the room type in the database.
	Label = "room"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "room_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldWebhookURL holds the string denoting the webhook_url field in the database.
	FieldWebhookURL = "webhook_url"
	// FieldWebhookSecret holds the string denoting the webhook_secret field in the database.
	FieldWebhookSecret = "webhook_secret"
	// FieldZulipAutoPost holds the string denoting the zulip_auto_post field in the database.
	FieldZulipAutoPost = "zulip_auto_post"
	// FieldZulipStream holds the string denoting the zulip_stream field in the database.
	FieldZulipStream = "zulip_stream"
	// FieldZulipTopic holds the string denoting the zulip_topic field in the database.
	FieldZulipTopic = "zulip_topic"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeMeetings holds the string denoting the meetings edge name in mutations.
	EdgeMeetings = "meetings"
	// EdgeTranscripts holds the string denoting the transcripts edge name in mutations.
	EdgeTranscripts = "transcripts"
	// MeetingFieldID holds the string denoting the ID field of the Meeting.
	MeetingFieldID = "meeting_id"
	// TranscriptFieldID holds the string denoting the ID field of the Transcript.
	TranscriptFieldID = "transcript_id"
	// Table holds the table name of the room in the database.
	Table = "rooms"
	// MeetingsTable is the table that holds the meetings relation/edge.
	MeetingsTable = "meetings"
	// MeetingsInverseTable is the table name for the Meeting entity.
	// It exists in this package in order to avoid circular dependency with the "meeting" package.
	MeetingsInverseTable = "meetings"
	// MeetingsColumn is the table column denoting the meetings relation/edge.
	MeetingsColumn = "room_id"
	// TranscriptsTable is the table that holds the transcripts relation/edge.
	TranscriptsTable = "transcripts"
	// TranscriptsInverseTable is the table name for the Transcript entity.
	// It exists in this package in order to avoid circular dependency with the "transcript" package.
	TranscriptsInverseTable = "transcripts"
	// TranscriptsColumn is the table column denoting the transcripts relation/edge.
	TranscriptsColumn = "room_id"
)

// Columns holds all SQL columns for room fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldWebhookURL,
	FieldWebhookSecret,
	FieldZulipAutoPost,
	FieldZulipStream,
	FieldZulipTopic,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultZulipAutoPost holds the default value on creation for the "zulip_auto_post" field.
	DefaultZulipAutoPost bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Room queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByWebhookURL orders the results by the webhook_url field.
func ByWebhookURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWebhookURL, opts...).ToFunc()
}

// ByWebhookSecret orders the results by the webhook_secret field.
func ByWebhookSecret(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWebhookSecret, opts...).ToFunc()
}

// ByZulipAutoPost orders the results by the zulip_auto_post field.
func ByZulipAutoPost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldZulipAutoPost, opts...).ToFunc()
}

// ByZulipStream orders the results by the zulip_stream field.
func ByZulipStream(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldZulipStream, opts...).ToFunc()
}

// ByZulipTopic orders the results by the zulip_topic field.
func ByZulipTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldZulipTopic, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByMeetingsCount orders the results by meetings count.
func ByMeetingsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMeetingsStep(), opts...)
	}
}

// ByMeetings orders the results by meetings terms.
func ByMeetings(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMeetingsStep(), append([]sql.OrderTerm{term}, terms...)...)
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
func newMeetingsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MeetingsInverseTable, MeetingFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MeetingsTable, MeetingsColumn),
	)
}
func newTranscriptsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TranscriptsInverseTable, TranscriptFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TranscriptsTable, TranscriptsColumn),
	)
}
