// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/monadical-sas/reflector/ent/meeting"
	"github.com/monadical-sas/reflector/ent/room"
	"github.com/monadical-sas/reflector/ent/transcript"
	"github.com/monadical-sas/reflector/pkg/models"
)

// Transcript is the model entity for the Transcript schema.
type Transcript struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Status holds the value of the "status" field.
	Status transcript.Status `json:"status,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// SourceLanguage holds the value of the "source_language" field.
	SourceLanguage string `json:"source_language,omitempty"`
	// TargetLanguage holds the value of the "target_language" field.
	TargetLanguage string `json:"target_language,omitempty"`
	// User-editable; the pipeline never overwrites a non-empty value
	Title *string `json:"title,omitempty"`
	// ShortSummary holds the value of the "short_summary" field.
	ShortSummary *string `json:"short_summary,omitempty"`
	// Markdown recap + per-subject summary
	LongSummary *string `json:"long_summary,omitempty"`
	// ActionItems holds the value of the "action_items" field.
	ActionItems *models.ActionItems `json:"action_items,omitempty"`
	// Mixed-down recording duration
	DurationMs *float64 `json:"duration_ms,omitempty"`
	// AudioLocation holds the value of the "audio_location" field.
	AudioLocation transcript.AudioLocation `json:"audio_location,omitempty"`
	// True only after originals and mixdown are both gone
	AudioDeleted bool `json:"audio_deleted,omitempty"`
	// Merged meeting-global word stream, speaker = track index
	Words []models.Word `json:"words,omitempty"`
	// Set while a pipeline run owns this transcript
	WorkflowRunID *string `json:"workflow_run_id,omitempty"`
	// For create-then-update message threading
	ZulipMessageID *int64 `json:"zulip_message_id,omitempty"`
	// RoomID holds the value of the "room_id" field.
	RoomID *string `json:"room_id,omitempty"`
	// MeetingID holds the value of the "meeting_id" field.
	MeetingID *string `json:"meeting_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TranscriptQuery when eager-loading is set.
	Edges        TranscriptEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TranscriptEdges holds the relations/edges for other nodes in the graph.
type TranscriptEdges struct {
	// Room holds the value of the room edge.
	Room *Room `json:"room,omitempty"`
	// Meeting holds the value of the meeting edge.
	Meeting *Meeting `json:"meeting,omitempty"`
	// Topics holds the value of the topics edge.
	Topics []*Topic `json:"topics,omitempty"`
	// Participants holds the value of the participants edge.
	Participants []*Participant `json:"participants,omitempty"`
	// Events holds the value of the events edge.
	Events []*Event `json:"events,omitempty"`
	// Tasks holds the value of the tasks edge.
	Tasks []*PipelineTask `json:"tasks,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [6]bool
}

// RoomOrErr returns the Room value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TranscriptEdges) RoomOrErr() (*Room, error) {
	if e.Room != nil {
		return e.Room, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: room.Label}
	}
	return nil, &NotLoadedError{edge: "room"}
}

// MeetingOrErr returns the Meeting value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TranscriptEdges) MeetingOrErr() (*Meeting, error) {
	if e.Meeting != nil {
		return e.Meeting, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: meeting.Label}
	}
	return nil, &NotLoadedError{edge: "meeting"}
}

// TopicsOrErr returns the Topics value or an error if the edge
// was not loaded in eager-loading.
func (e TranscriptEdges) TopicsOrErr() ([]*Topic, error) {
	if e.loadedTypes[2] {
		return e.Topics, nil
	}
	return nil, &NotLoadedError{edge: "topics"}
}

// ParticipantsOrErr returns the Participants value or an error if the edge
// was not loaded in eager-loading.
func (e TranscriptEdges) ParticipantsOrErr() ([]*Participant, error) {
	if e.loadedTypes[3] {
		return e.Participants, nil
	}
	return nil, &NotLoadedError{edge: "participants"}
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e TranscriptEdges) EventsOrErr() ([]*Event, error) {
	if e.loadedTypes[4] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// TasksOrErr returns the Tasks value or an error if the edge
// was not loaded in eager-loading.
func (e TranscriptEdges) TasksOrErr() ([]*PipelineTask, error) {
	if e.loadedTypes[5] {
		return e.Tasks, nil
	}
	return nil, &NotLoadedError{edge: "tasks"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Transcript) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case transcript.FieldActionItems, transcript.FieldWords:
			values[i] = new([]byte)
		case transcript.FieldAudioDeleted:
			values[i] = new(sql.NullBool)
		case transcript.FieldDurationMs:
			values[i] = new(sql.NullFloat64)
		case transcript.FieldZulipMessageID:
			values[i] = new(sql.NullInt64)
		case transcript.FieldID, transcript.FieldStatus, transcript.FieldName, transcript.FieldSourceLanguage, transcript.FieldTargetLanguage, transcript.FieldTitle, transcript.FieldShortSummary, transcript.FieldLongSummary, transcript.FieldAudioLocation, transcript.FieldWorkflowRunID, transcript.FieldRoomID, transcript.FieldMeetingID:
			values[i] = new(sql.NullString)
		case transcript.FieldCreatedAt, transcript.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Transcript fields.
func (_m *Transcript) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case transcript.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case transcript.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = transcript.Status(value.String)
			}
		case transcript.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case transcript.FieldSourceLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_language", values[i])
			} else if value.Valid {
				_m.SourceLanguage = value.String
			}
		case transcript.FieldTargetLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_language", values[i])
			} else if value.Valid {
				_m.TargetLanguage = value.String
			}
		case transcript.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = new(string)
				*_m.Title = value.String
			}
		case transcript.FieldShortSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field short_summary", values[i])
			} else if value.Valid {
				_m.ShortSummary = new(string)
				*_m.ShortSummary = value.String
			}
		case transcript.FieldLongSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field long_summary", values[i])
			} else if value.Valid {
				_m.LongSummary = new(string)
				*_m.LongSummary = value.String
			}
		case transcript.FieldActionItems:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field action_items", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ActionItems); err != nil {
					return fmt.Errorf("unmarshal field action_items: %w", err)
				}
			}
		case transcript.FieldDurationMs:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = new(float64)
				*_m.DurationMs = value.Float64
			}
		case transcript.FieldAudioLocation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field audio_location", values[i])
			} else if value.Valid {
				_m.AudioLocation = transcript.AudioLocation(value.String)
			}
		case transcript.FieldAudioDeleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field audio_deleted", values[i])
			} else if value.Valid {
				_m.AudioDeleted = value.Bool
			}
		case transcript.FieldWords:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field words", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Words); err != nil {
					return fmt.Errorf("unmarshal field words: %w", err)
				}
			}
		case transcript.FieldWorkflowRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workflow_run_id", values[i])
			} else if value.Valid {
				_m.WorkflowRunID = new(string)
				*_m.WorkflowRunID = value.String
			}
		case transcript.FieldZulipMessageID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field zulip_message_id", values[i])
			} else if value.Valid {
				_m.ZulipMessageID = new(int64)
				*_m.ZulipMessageID = value.Int64
			}
		case transcript.FieldRoomID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field room_id", values[i])
			} else if value.Valid {
				_m.RoomID = new(string)
				*_m.RoomID = value.String
			}
		case transcript.FieldMeetingID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field meeting_id", values[i])
			} else if value.Valid {
				_m.MeetingID = new(string)
				*_m.MeetingID = value.String
			}
		case transcript.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case transcript.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Transcript.
// This includes values selected through modifiers, order, etc.
func (_m *Transcript) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRoom queries the "room" edge of the Transcript entity.
func (_m *Transcript) QueryRoom() *RoomQuery {
	return NewTranscriptClient(_m.config).QueryRoom(_m)
}

// QueryMeeting queries the "meeting" edge of the Transcript entity.
func (_m *Transcript) QueryMeeting() *MeetingQuery {
	return NewTranscriptClient(_m.config).QueryMeeting(_m)
}

// QueryTopics queries the "topics" edge of the Transcript entity.
func (_m *Transcript) QueryTopics() *TopicQuery {
	return NewTranscriptClient(_m.config).QueryTopics(_m)
}

// QueryParticipants queries the "participants" edge of the Transcript entity.
func (_m *Transcript) QueryParticipants() *ParticipantQuery {
	return NewTranscriptClient(_m.config).QueryParticipants(_m)
}

// QueryEvents queries the "events" edge of the Transcript entity.
func (_m *Transcript) QueryEvents() *EventQuery {
	return NewTranscriptClient(_m.config).QueryEvents(_m)
}

// QueryTasks queries the "tasks" edge of the Transcript entity.
func (_m *Transcript) QueryTasks() *PipelineTaskQuery {
	return NewTranscriptClient(_m.config).QueryTasks(_m)
}

// Update returns a builder for updating this Transcript.
// Note that you need to call Transcript.Unwrap() before calling this method if this Transcript
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Transcript) Update() *TranscriptUpdateOne {
	return NewTranscriptClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Transcript entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Transcript) Unwrap() *Transcript {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Transcript is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Transcript) String() string {
	var builder strings.Builder
	builder.WriteString("Transcript(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("source_language=")
	builder.WriteString(_m.SourceLanguage)
	builder.WriteString(", ")
	builder.WriteString("target_language=")
	builder.WriteString(_m.TargetLanguage)
	builder.WriteString(", ")
	if v := _m.Title; v != nil {
		builder.WriteString("title=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ShortSummary; v != nil {
		builder.WriteString("short_summary=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LongSummary; v != nil {
		builder.WriteString("long_summary=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("action_items=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActionItems))
	builder.WriteString(", ")
	if v := _m.DurationMs; v != nil {
		builder.WriteString("duration_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("audio_location=")
	builder.WriteString(fmt.Sprintf("%v", _m.AudioLocation))
	builder.WriteString(", ")
	builder.WriteString("audio_deleted=")
	builder.WriteString(fmt.Sprintf("%v", _m.AudioDeleted))
	builder.WriteString(", ")
	builder.WriteString("words=")
	builder.WriteString(fmt.Sprintf("%v", _m.Words))
	builder.WriteString(", ")
	if v := _m.WorkflowRunID; v != nil {
		builder.WriteString("workflow_run_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ZulipMessageID; v != nil {
		builder.WriteString("zulip_message_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.RoomID; v != nil {
		builder.WriteString("room_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.MeetingID; v != nil {
		builder.WriteString("meeting_id=")
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

// Transcripts is a parsable slice of Transcript.
type Transcripts []*Transcript
