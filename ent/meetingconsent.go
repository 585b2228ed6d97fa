// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/monadical-sas/reflector/ent/meeting"
	"github.com/monadical-sas/reflector/ent/meetingconsent"
)

// MeetingConsent is the model entity for the MeetingConsent schema.
type MeetingConsent struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// MeetingID holds the value of the "meeting_id" field.
	MeetingID string `json:"meeting_id,omitempty"`
	// Platform participant id, null for anonymous attendees
	ParticipantIdentifier *string `json:"participant_identifier,omitempty"`
	// Approved holds the value of the "approved" field.
	Approved bool `json:"approved,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MeetingConsentQuery when eager-loading is set.
	Edges        MeetingConsentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MeetingConsentEdges holds the relations/edges for other nodes in the graph.
type MeetingConsentEdges struct {
	// Meeting holds the value of the meeting edge.
	Meeting *Meeting `json:"meeting,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// MeetingOrErr returns the Meeting value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MeetingConsentEdges) MeetingOrErr() (*Meeting, error) {
	if e.Meeting != nil {
		return e.Meeting, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: meeting.Label}
	}
	return nil, &NotLoadedError{edge: "meeting"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MeetingConsent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case meetingconsent.FieldApproved:
			values[i] = new(sql.NullBool)
		case meetingconsent.FieldID, meetingconsent.FieldMeetingID, meetingconsent.FieldParticipantIdentifier:
			values[i] = new(sql.NullString)
		case meetingconsent.FieldCreatedAt, meetingconsent.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MeetingConsent fields.
func (_m *MeetingConsent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case meetingconsent.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case meetingconsent.FieldMeetingID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field meeting_id", values[i])
			} else if value.Valid {
				_m.MeetingID = value.String
			}
		case meetingconsent.FieldParticipantIdentifier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field participant_identifier", values[i])
			} else if value.Valid {
				_m.ParticipantIdentifier = new(string)
				*_m.ParticipantIdentifier = value.String
			}
		case meetingconsent.FieldApproved:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field approved", values[i])
			} else if value.Valid {
				_m.Approved = value.Bool
			}
		case meetingconsent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case meetingconsent.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MeetingConsent.
// This includes values selected through modifiers, order, etc.
func (_m *MeetingConsent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMeeting queries the "meeting" edge of the MeetingConsent entity.
func (_m *MeetingConsent) QueryMeeting() *MeetingQuery {
	return NewMeetingConsentClient(_m.config).QueryMeeting(_m)
}

// Update returns a builder for updating this MeetingConsent.
// Note that you need to call MeetingConsent.Unwrap() before calling this method if this MeetingConsent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MeetingConsent) Update() *MeetingConsentUpdateOne {
	return NewMeetingConsentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MeetingConsent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MeetingConsent) Unwrap() *MeetingConsent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MeetingConsent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MeetingConsent) String() string {
	var builder strings.Builder
	builder.WriteString("MeetingConsent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("meeting_id=")
	builder.WriteString(_m.MeetingID)
	builder.WriteString(", ")
	if v := _m.ParticipantIdentifier; v != nil {
		builder.WriteString("participant_identifier=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("approved=")
	builder.WriteString(fmt.Sprintf("%v", _m.Approved))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MeetingConsents is a parsable slice of MeetingConsent.
type MeetingConsents []*MeetingConsent
