// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/monadical-sas/reflector/ent/room"
)

// Room is the model entity for the Room schema.
type Room struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// WebhookURL holds the value of the "webhook_url" field.
	WebhookURL *string `json:"webhook_url,omitempty"`
	// HMAC key for signing webhook deliveries
	WebhookSecret *string `json:"-"`
	// ZulipAutoPost holds the value of the "zulip_auto_post" field.
	ZulipAutoPost bool `json:"zulip_auto_post,omitempty"`
	// ZulipStream holds the value of the "zulip_stream" field.
	ZulipStream *string `json:"zulip_stream,omitempty"`
	// ZulipTopic holds the value of the "zulip_topic" field.
	ZulipTopic *string `json:"zulip_topic,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RoomQuery when eager-loading is set.
	Edges        RoomEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RoomEdges holds the relations/edges for other nodes in the graph.
type RoomEdges struct {
	// Meetings holds the value of the meetings edge.
	Meetings []*Meeting `json:"meetings,omitempty"`
	// Transcripts holds the value of the transcripts edge.
	Transcripts []*Transcript `json:"transcripts,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// MeetingsOrErr returns the Meetings value or an error if the edge
// was not loaded in eager-loading.
func (e RoomEdges) MeetingsOrErr() ([]*Meeting, error) {
	if e.loadedTypes[0] {
		return e.Meetings, nil
	}
	return nil, &NotLoadedError{edge: "meetings"}
}

// TranscriptsOrErr returns the Transcripts value or an error if the edge
// was not loaded in eager-loading.
func (e RoomEdges) TranscriptsOrErr() ([]*Transcript, error) {
	if e.loadedTypes[1] {
		return e.Transcripts, nil
	}
	return nil, &NotLoadedError{edge: "transcripts"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Room) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case room.FieldZulipAutoPost:
			values[i] = new(sql.NullBool)
		case room.FieldID, room.FieldName, room.FieldWebhookURL, room.FieldWebhookSecret, room.FieldZulipStream, room.FieldZulipTopic:
			values[i] = new(sql.NullString)
		case room.FieldCreatedAt, room.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Room fields.
func (_m *Room) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case room.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case room.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case room.FieldWebhookURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field webhook_url", values[i])
			} else if value.Valid {
				_m.WebhookURL = new(string)
				*_m.WebhookURL = value.String
			}
		case room.FieldWebhookSecret:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field webhook_secret", values[i])
			} else if value.Valid {
				_m.WebhookSecret = new(string)
				*_m.WebhookSecret = value.String
			}
		case room.FieldZulipAutoPost:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field zulip_auto_post", values[i])
			} else if value.Valid {
				_m.ZulipAutoPost = value.Bool
			}
		case room.FieldZulipStream:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field zulip_stream", values[i])
			} else if value.Valid {
				_m.ZulipStream = new(string)
				*_m.ZulipStream = value.String
			}
		case room.FieldZulipTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field zulip_topic", values[i])
			} else if value.Valid {
				_m.ZulipTopic = new(string)
				*_m.ZulipTopic = value.String
			}
		case room.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case room.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Room.
// This includes values selected through modifiers, order, etc.
func (_m *Room) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMeetings queries the "meetings" edge of the Room entity.
func (_m *Room) QueryMeetings() *MeetingQuery {
	return NewRoomClient(_m.config).QueryMeetings(_m)
}

// QueryTranscripts queries the "transcripts" edge of the Room entity.
func (_m *Room) QueryTranscripts() *TranscriptQuery {
	return NewRoomClient(_m.config).QueryTranscripts(_m)
}

// Update returns a builder for updating this Room.
// Note that you need to call Room.Unwrap() before calling this method if this Room
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Room) Update() *RoomUpdateOne {
	return NewRoomClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Room entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Room) Unwrap() *Room {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Room is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Room) String() string {
	var builder strings.Builder
	builder.WriteString("Room(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	if v := _m.WebhookURL; v != nil {
		builder.WriteString("webhook_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("webhook_secret=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("zulip_auto_post=")
	builder.WriteString(fmt.Sprintf("%v", _m.ZulipAutoPost))
	builder.WriteString(", ")
	if v := _m.ZulipStream; v != nil {
		builder.WriteString("zulip_stream=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ZulipTopic; v != nil {
		builder.WriteString("zulip_topic=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Rooms is a parsable slice of Room.
type Rooms []*Room
