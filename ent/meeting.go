// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/monadical-sas/reflector/ent/meeting"
	"github.com/monadical-sas/reflector/ent/room"
)

// Meeting is the model entity for the Meeting schema.
type Meeting struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RoomID holds the value of the "room_id" field.
	RoomID *string `json:"room_id,omitempty"`
	// Platform-side recording identifier
	RecordingID *string `json:"recording_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MeetingQuery when eager-loading is set.
	Edges        MeetingEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MeetingEdges holds the relations/edges for other nodes in the graph.
type MeetingEdges struct {
	// Room holds the value of the room edge.
	Room *Room `json:"room,omitempty"`
	// Consents holds the value of the consents edge.
	Consents []*MeetingConsent `json:"consents,omitempty"`
	// Transcripts holds the value of the transcripts edge.
	Transcripts []*Transcript `json:"transcripts,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// RoomOrErr returns the Room value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MeetingEdges) RoomOrErr() (*Room, error) {
	if e.Room != nil {
		return e.Room, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: room.Label}
	}
	return nil, &NotLoadedError{edge: "room"}
}

// ConsentsOrErr returns the Consents value or an error if the edge
// was not loaded in eager-loading.
func (e MeetingEdges) ConsentsOrErr() ([]*MeetingConsent, error) {
	if e.loadedTypes[1] {
		return e.Consents, nil
	}
	return nil, &NotLoadedError{edge: "consents"}
}

// TranscriptsOrErr returns the Transcripts value or an error if the edge
// was not loaded in eager-loading.
func (e MeetingEdges) TranscriptsOrErr() ([]*Transcript, error) {
	if e.loadedTypes[2] {
		return e.Transcripts, nil
	}
	return nil, &NotLoadedError{edge: "transcripts"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Meeting) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case meeting.FieldID, meeting.FieldRoomID, meeting.FieldRecordingID:
			values[i] = new(sql.NullString)
		case meeting.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Meeting fields.
func (_m *Meeting) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case meeting.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case meeting.FieldRoomID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field room_id", values[i])
			} else if value.Valid {
				_m.RoomID = new(string)
				*_m.RoomID = value.String
			}
		case meeting.FieldRecordingID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recording_id", values[i])
			} else if value.Valid {
				_m.RecordingID = new(string)
				*_m.RecordingID = value.String
			}
		case meeting.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Meeting.
// This includes values selected through modifiers, order, etc.
func (_m *Meeting) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRoom queries the "room" edge of the Meeting entity.
func (_m *Meeting) QueryRoom() *RoomQuery {
	return NewMeetingClient(_m.config).QueryRoom(_m)
}

// QueryConsents queries the "consents" edge of the Meeting entity.
func (_m *Meeting) QueryConsents() *MeetingConsentQuery {
	return NewMeetingClient(_m.config).QueryConsents(_m)
}

// QueryTranscripts queries the "transcripts" edge of the Meeting entity.
func (_m *Meeting) QueryTranscripts() *TranscriptQuery {
	return NewMeetingClient(_m.config).QueryTranscripts(_m)
}

// Update returns a builder for updating this Meeting.
// Note that you need to call Meeting.Unwrap() before calling this method if this Meeting
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Meeting) Update() *MeetingUpdateOne {
	return NewMeetingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Meeting entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Meeting) Unwrap() *Meeting {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Meeting is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Meeting) String() string {
	var builder strings.Builder
	builder.WriteString("Meeting(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.RoomID; v != nil {
		builder.WriteString("room_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RecordingID; v != nil {
		builder.WriteString("recording_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Meetings is a parsable slice of Meeting.
type Meetings []*Meeting
