// Code generated by ent, DO NOT EDIT.

package meetingconsent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the meetingconsent type in the database.
	Label = "meeting_consent"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "consent_id"
	// FieldMeetingID holds the string denoting the meeting_id field in the database.
	FieldMeetingID = "meeting_id"
	// FieldParticipantIdentifier holds the string denoting the participant_identifier field in the database.
	FieldParticipantIdentifier = "participant_identifier"
	// FieldApproved holds the string denoting the approved field in the database.
	FieldApproved = "approved"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeMeeting holds the string denoting the meeting edge name in mutations.
	EdgeMeeting = "meeting"
	// MeetingFieldID holds the string denoting the ID field of the Meeting.
	MeetingFieldID = "meeting_id"
	// Table holds the table name of the meetingconsent in the database.
	Table = "meeting_consents"
	// MeetingTable is the table that holds the meeting relation/edge.
	MeetingTable = "meeting_consents"
	// MeetingInverseTable is the table name for the Meeting entity.
	// It exists in this package in order to avoid circular dependency with the "meeting" package.
	MeetingInverseTable = "meetings"
	// MeetingColumn is the table column denoting the meeting relation/edge.
	MeetingColumn = "meeting_id"
)

// Columns holds all SQL columns for meetingconsent fields.
var Columns = []string{
	FieldID,
	FieldMeetingID,
	FieldParticipantIdentifier,
	FieldApproved,
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
	// DefaultApproved holds the default value on creation for the "approved" field.
	DefaultApproved bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the MeetingConsent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByMeetingID orders the results by the meeting_id field.
func ByMeetingID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMeetingID, opts...).ToFunc()
}

// ByParticipantIdentifier orders the results by the participant_identifier field.
func ByParticipantIdentifier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParticipantIdentifier, opts...).ToFunc()
}

// ByApproved orders the results by the approved field.
func ByApproved(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApproved, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByMeetingField orders the results by meeting field.
func ByMeetingField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMeetingStep(), sql.OrderByField(field, opts...))
	}
}
func newMeetingStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MeetingInverseTable, MeetingFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, MeetingTable, MeetingColumn),
	)
}
