// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/monadical-sas/reflector/ent/event"
	"github.com/monadical-sas/reflector/ent/meeting"
	"github.com/monadical-sas/reflector/ent/meetingconsent"
	"github.com/monadical-sas/reflector/ent/participant"
	"github.com/monadical-sas/reflector/ent/pipelinetask"
	"github.com/monadical-sas/reflector/ent/predicate"
	"github.com/monadical-sas/reflector/ent/room"
	"github.com/monadical-sas/reflector/ent/topic"
	"github.com/monadical-sas/reflector/ent/transcript"
	"github.com/monadical-sas/reflector/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeEvent          = "Event"
	TypeMeeting        = "Meeting"
	TypeMeetingConsent = "MeetingConsent"
	TypeParticipant    = "Participant"
	TypePipelineTask   = "PipelineTask"
	TypeRoom           = "Room"
	TypeTopic          = "Topic"
	TypeTranscript     = "Transcript"
)

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op                Op
	typ               string
	id                *int
	kind              *string
	payload           *json.RawMessage
	appendpayload     json.RawMessage
	dedupe_key        *string
	created_at        *time.Time
	clearedFields     map[string]struct{}
	transcript        *string
	clearedtranscript bool
	done              bool
	oldValue          func(context.Context) (*Event, error)
	predicates        []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTranscriptID sets the "transcript_id" field.
func (m *EventMutation) SetTranscriptID(s string) {
	m.transcript = &s
}

// TranscriptID returns the value of the "transcript_id" field in the mutation.
func (m *EventMutation) TranscriptID() (r string, exists bool) {
	v := m.transcript
	if v == nil {
		return
	}
	return *v, true
}

// OldTranscriptID returns the old "transcript_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldTranscriptID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTranscriptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTranscriptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTranscriptID: %w", err)
	}
	return oldValue.TranscriptID, nil
}

// ResetTranscriptID resets all changes to the "transcript_id" field.
func (m *EventMutation) ResetTranscriptID() {
	m.transcript = nil
}

// SetKind sets the "kind" field.
func (m *EventMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *EventMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *EventMutation) ResetKind() {
	m.kind = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(jm json.RawMessage) {
	m.payload = &jm
	m.appendpayload = nil
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r json.RawMessage, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// AppendPayload adds jm to the "payload" field.
func (m *EventMutation) AppendPayload(jm json.RawMessage) {
	m.appendpayload = append(m.appendpayload, jm...)
}

// AppendedPayload returns the list of values that were appended to the "payload" field in this mutation.
func (m *EventMutation) AppendedPayload() (json.RawMessage, bool) {
	if len(m.appendpayload) == 0 {
		return nil, false
	}
	return m.appendpayload, true
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
	m.appendpayload = nil
}

// SetDedupeKey sets the "dedupe_key" field.
func (m *EventMutation) SetDedupeKey(s string) {
	m.dedupe_key = &s
}

// DedupeKey returns the value of the "dedupe_key" field in the mutation.
func (m *EventMutation) DedupeKey() (r string, exists bool) {
	v := m.dedupe_key
	if v == nil {
		return
	}
	return *v, true
}

// OldDedupeKey returns the old "dedupe_key" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldDedupeKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDedupeKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDedupeKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDedupeKey: %w", err)
	}
	return oldValue.DedupeKey, nil
}

// ResetDedupeKey resets all changes to the "dedupe_key" field.
func (m *EventMutation) ResetDedupeKey() {
	m.dedupe_key = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTranscript clears the "transcript" edge to the Transcript entity.
func (m *EventMutation) ClearTranscript() {
	m.clearedtranscript = true
	m.clearedFields[event.FieldTranscriptID] = struct{}{}
}

// TranscriptCleared reports if the "transcript" edge to the Transcript entity was cleared.
func (m *EventMutation) TranscriptCleared() bool {
	return m.clearedtranscript
}

// TranscriptIDs returns the "transcript" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TranscriptID instead. It exists only for internal usage by the builders.
func (m *EventMutation) TranscriptIDs() (ids []string) {
	if id := m.transcript; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTranscript resets all changes to the "transcript" edge.
func (m *EventMutation) ResetTranscript() {
	m.transcript = nil
	m.clearedtranscript = false
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.transcript != nil {
		fields = append(fields, event.FieldTranscriptID)
	}
	if m.kind != nil {
		fields = append(fields, event.FieldKind)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.dedupe_key != nil {
		fields = append(fields, event.FieldDedupeKey)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldTranscriptID:
		return m.TranscriptID()
	case event.FieldKind:
		return m.Kind()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldDedupeKey:
		return m.DedupeKey()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldTranscriptID:
		return m.OldTranscriptID(ctx)
	case event.FieldKind:
		return m.OldKind(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldDedupeKey:
		return m.OldDedupeKey(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldTranscriptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTranscriptID(v)
		return nil
	case event.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldDedupeKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDedupeKey(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldTranscriptID:
		m.ResetTranscriptID()
		return nil
	case event.FieldKind:
		m.ResetKind()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldDedupeKey:
		m.ResetDedupeKey()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.transcript != nil {
		edges = append(edges, event.EdgeTranscript)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case event.EdgeTranscript:
		if id := m.transcript; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtranscript {
		edges = append(edges, event.EdgeTranscript)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	switch name {
	case event.EdgeTranscript:
		return m.clearedtranscript
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	switch name {
	case event.EdgeTranscript:
		m.ClearTranscript()
		return nil
	}
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	switch name {
	case event.EdgeTranscript:
		m.ResetTranscript()
		return nil
	}
	return fmt.Errorf("unknown Event edge %s", name)
}

// MeetingMutation represents an operation that mutates the Meeting nodes in the graph.
type MeetingMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	recording_id       *string
	created_at         *time.Time
	clearedFields      map[string]struct{}
	room               *string
	clearedroom        bool
	consents           map[string]struct{}
	removedconsents    map[string]struct{}
	clearedconsents    bool
	transcripts        map[string]struct{}
	removedtranscripts map[string]struct{}
	clearedtranscripts bool
	done               bool
	oldValue           func(context.Context) (*Meeting, error)
	predicates         []predicate.Meeting
}

var _ ent.Mutation = (*MeetingMutation)(nil)

// meetingOption allows management of the mutation configuration using functional options.
type meetingOption func(*MeetingMutation)

// newMeetingMutation creates new mutation for the Meeting entity.
func newMeetingMutation(c config, op Op, opts ...meetingOption) *MeetingMutation {
	m := &MeetingMutation{
		config:        c,
		op:            op,
		typ:           TypeMeeting,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMeetingID sets the ID field of the mutation.
func withMeetingID(id string) meetingOption {
	return func(m *MeetingMutation) {
		var (
			err   error
			once  sync.Once
			value *Meeting
		)
		m.oldValue = func(ctx context.Context) (*Meeting, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Meeting.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMeeting sets the old Meeting of the mutation.
func withMeeting(node *Meeting) meetingOption {
	return func(m *MeetingMutation) {
		m.oldValue = func(context.Context) (*Meeting, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MeetingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MeetingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Meeting entities.
func (m *MeetingMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MeetingMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MeetingMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Meeting.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRoomID sets the "room_id" field.
func (m *MeetingMutation) SetRoomID(s string) {
	m.room = &s
}

// RoomID returns the value of the "room_id" field in the mutation.
func (m *MeetingMutation) RoomID() (r string, exists bool) {
	v := m.room
	if v == nil {
		return
	}
	return *v, true
}

// OldRoomID returns the old "room_id" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldRoomID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoomID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoomID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoomID: %w", err)
	}
	return oldValue.RoomID, nil
}

// ClearRoomID clears the value of the "room_id" field.
func (m *MeetingMutation) ClearRoomID() {
	m.room = nil
	m.clearedFields[meeting.FieldRoomID] = struct{}{}
}

// RoomIDCleared returns if the "room_id" field was cleared in this mutation.
func (m *MeetingMutation) RoomIDCleared() bool {
	_, ok := m.clearedFields[meeting.FieldRoomID]
	return ok
}

// ResetRoomID resets all changes to the "room_id" field.
func (m *MeetingMutation) ResetRoomID() {
	m.room = nil
	delete(m.clearedFields, meeting.FieldRoomID)
}

// SetRecordingID sets the "recording_id" field.
func (m *MeetingMutation) SetRecordingID(s string) {
	m.recording_id = &s
}

// RecordingID returns the value of the "recording_id" field in the mutation.
func (m *MeetingMutation) RecordingID() (r string, exists bool) {
	v := m.recording_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordingID returns the old "recording_id" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldRecordingID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordingID: %w", err)
	}
	return oldValue.RecordingID, nil
}

// ClearRecordingID clears the value of the "recording_id" field.
func (m *MeetingMutation) ClearRecordingID() {
	m.recording_id = nil
	m.clearedFields[meeting.FieldRecordingID] = struct{}{}
}

// RecordingIDCleared returns if the "recording_id" field was cleared in this mutation.
func (m *MeetingMutation) RecordingIDCleared() bool {
	_, ok := m.clearedFields[meeting.FieldRecordingID]
	return ok
}

// ResetRecordingID resets all changes to the "recording_id" field.
func (m *MeetingMutation) ResetRecordingID() {
	m.recording_id = nil
	delete(m.clearedFields, meeting.FieldRecordingID)
}

// SetCreatedAt sets the "created_at" field.
func (m *MeetingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MeetingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MeetingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRoom clears the "room" edge to the Room entity.
func (m *MeetingMutation) ClearRoom() {
	m.clearedroom = true
	m.clearedFields[meeting.FieldRoomID] = struct{}{}
}

// RoomCleared reports if the "room" edge to the Room entity was cleared.
func (m *MeetingMutation) RoomCleared() bool {
	return m.RoomIDCleared() || m.clearedroom
}

// RoomIDs returns the "room" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RoomID instead. It exists only for internal usage by the builders.
func (m *MeetingMutation) RoomIDs() (ids []string) {
	if id := m.room; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRoom resets all changes to the "room" edge.
func (m *MeetingMutation) ResetRoom() {
	m.room = nil
	m.clearedroom = false
}

// AddConsentIDs adds the "consents" edge to the MeetingConsent entity by ids.
func (m *MeetingMutation) AddConsentIDs(ids ...string) {
	if m.consents == nil {
		m.consents = make(map[string]struct{})
	}
	for i := range ids {
		m.consents[ids[i]] = struct{}{}
	}
}

// ClearConsents clears the "consents" edge to the MeetingConsent entity.
func (m *MeetingMutation) ClearConsents() {
	m.clearedconsents = true
}

// ConsentsCleared reports if the "consents" edge to the MeetingConsent entity was cleared.
func (m *MeetingMutation) ConsentsCleared() bool {
	return m.clearedconsents
}

// RemoveConsentIDs removes the "consents" edge to the MeetingConsent entity by IDs.
func (m *MeetingMutation) RemoveConsentIDs(ids ...string) {
	if m.removedconsents == nil {
		m.removedconsents = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.consents, ids[i])
		m.removedconsents[ids[i]] = struct{}{}
	}
}

// RemovedConsents returns the removed IDs of the "consents" edge to the MeetingConsent entity.
func (m *MeetingMutation) RemovedConsentsIDs() (ids []string) {
	for id := range m.removedconsents {
		ids = append(ids, id)
	}
	return
}

// ConsentsIDs returns the "consents" edge IDs in the mutation.
func (m *MeetingMutation) ConsentsIDs() (ids []string) {
	for id := range m.consents {
		ids = append(ids, id)
	}
	return
}

// ResetConsents resets all changes to the "consents" edge.
func (m *MeetingMutation) ResetConsents() {
	m.consents = nil
	m.clearedconsents = false
	m.removedconsents = nil
}

// AddTranscriptIDs adds the "transcripts" edge to the Transcript entity by ids.
func (m *MeetingMutation) AddTranscriptIDs(ids ...string) {
	if m.transcripts == nil {
		m.transcripts = make(map[string]struct{})
	}
	for i := range ids {
		m.transcripts[ids[i]] = struct{}{}
	}
}

// ClearTranscripts clears the "transcripts" edge to the Transcript entity.
func (m *MeetingMutation) ClearTranscripts() {
	m.clearedtranscripts = true
}

// TranscriptsCleared reports if the "transcripts" edge to the Transcript entity was cleared.
func (m *MeetingMutation) TranscriptsCleared() bool {
	return m.clearedtranscripts
}

// RemoveTranscriptIDs removes the "transcripts" edge to the Transcript entity by IDs.
func (m *MeetingMutation) RemoveTranscriptIDs(ids ...string) {
	if m.removedtranscripts == nil {
		m.removedtranscripts = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.transcripts, ids[i])
		m.removedtranscripts[ids[i]] = struct{}{}
	}
}

// RemovedTranscripts returns the removed IDs of the "transcripts" edge to the Transcript entity.
func (m *MeetingMutation) RemovedTranscriptsIDs() (ids []string) {
	for id := range m.removedtranscripts {
		ids = append(ids, id)
	}
	return
}

// TranscriptsIDs returns the "transcripts" edge IDs in the mutation.
func (m *MeetingMutation) TranscriptsIDs() (ids []string) {
	for id := range m.transcripts {
		ids = append(ids, id)
	}
	return
}

// ResetTranscripts resets all changes to the "transcripts" edge.
func (m *MeetingMutation) ResetTranscripts() {
	m.transcripts = nil
	m.clearedtranscripts = false
	m.removedtranscripts = nil
}

// Where appends a list predicates to the MeetingMutation builder.
func (m *MeetingMutation) Where(ps ...predicate.Meeting) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MeetingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MeetingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Meeting, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MeetingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MeetingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Meeting).
func (m *MeetingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MeetingMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.room != nil {
		fields = append(fields, meeting.FieldRoomID)
	}
	if m.recording_id != nil {
		fields = append(fields, meeting.FieldRecordingID)
	}
	if m.created_at != nil {
		fields = append(fields, meeting.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MeetingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case meeting.FieldRoomID:
		return m.RoomID()
	case meeting.FieldRecordingID:
		return m.RecordingID()
	case meeting.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MeetingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case meeting.FieldRoomID:
		return m.OldRoomID(ctx)
	case meeting.FieldRecordingID:
		return m.OldRecordingID(ctx)
	case meeting.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Meeting field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MeetingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case meeting.FieldRoomID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoomID(v)
		return nil
	case meeting.FieldRecordingID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordingID(v)
		return nil
	case meeting.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Meeting field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MeetingMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MeetingMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MeetingMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Meeting numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MeetingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(meeting.FieldRoomID) {
		fields = append(fields, meeting.FieldRoomID)
	}
	if m.FieldCleared(meeting.FieldRecordingID) {
		fields = append(fields, meeting.FieldRecordingID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MeetingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MeetingMutation) ClearField(name string) error {
	switch name {
	case meeting.FieldRoomID:
		m.ClearRoomID()
		return nil
	case meeting.FieldRecordingID:
		m.ClearRecordingID()
		return nil
	}
	return fmt.Errorf("unknown Meeting nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MeetingMutation) ResetField(name string) error {
	switch name {
	case meeting.FieldRoomID:
		m.ResetRoomID()
		return nil
	case meeting.FieldRecordingID:
		m.ResetRecordingID()
		return nil
	case meeting.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Meeting field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MeetingMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.room != nil {
		edges = append(edges, meeting.EdgeRoom)
	}
	if m.consents != nil {
		edges = append(edges, meeting.EdgeConsents)
	}
	if m.transcripts != nil {
		edges = append(edges, meeting.EdgeTranscripts)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MeetingMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case meeting.EdgeRoom:
		if id := m.room; id != nil {
			return []ent.Value{*id}
		}
	case meeting.EdgeConsents:
		ids := make([]ent.Value, 0, len(m.consents))
		for id := range m.consents {
			ids = append(ids, id)
		}
		return ids
	case meeting.EdgeTranscripts:
		ids := make([]ent.Value, 0, len(m.transcripts))
		for id := range m.transcripts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MeetingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedconsents != nil {
		edges = append(edges, meeting.EdgeConsents)
	}
	if m.removedtranscripts != nil {
		edges = append(edges, meeting.EdgeTranscripts)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MeetingMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case meeting.EdgeConsents:
		ids := make([]ent.Value, 0, len(m.removedconsents))
		for id := range m.removedconsents {
			ids = append(ids, id)
		}
		return ids
	case meeting.EdgeTranscripts:
		ids := make([]ent.Value, 0, len(m.removedtranscripts))
		for id := range m.removedtranscripts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MeetingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedroom {
		edges = append(edges, meeting.EdgeRoom)
	}
	if m.clearedconsents {
		edges = append(edges, meeting.EdgeConsents)
	}
	if m.clearedtranscripts {
		edges = append(edges, meeting.EdgeTranscripts)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MeetingMutation) EdgeCleared(name string) bool {
	switch name {
	case meeting.EdgeRoom:
		return m.clearedroom
	case meeting.EdgeConsents:
		return m.clearedconsents
	case meeting.EdgeTranscripts:
		return m.clearedtranscripts
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MeetingMutation) ClearEdge(name string) error {
	switch name {
	case meeting.EdgeRoom:
		m.ClearRoom()
		return nil
	}
	return fmt.Errorf("unknown Meeting unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MeetingMutation) ResetEdge(name string) error {
	switch name {
	case meeting.EdgeRoom:
		m.ResetRoom()
		return nil
	case meeting.EdgeConsents:
		m.ResetConsents()
		return nil
	case meeting.EdgeTranscripts:
		m.ResetTranscripts()
		return nil
	}
	return fmt.Errorf("unknown Meeting edge %s", name)
}

// MeetingConsentMutation represents an operation that mutates the MeetingConsent nodes in the graph.
type MeetingConsentMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	participant_identifier *string
	approved               *bool
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	meeting                *string
	clearedmeeting         bool
	done                   bool
	oldValue               func(context.Context) (*MeetingConsent, error)
	predicates             []predicate.MeetingConsent
}

var _ ent.Mutation = (*MeetingConsentMutation)(nil)

// meetingconsentOption allows management of the mutation configuration using functional options.
type meetingconsentOption func(*MeetingConsentMutation)

// newMeetingConsentMutation creates new mutation for the MeetingConsent entity.
func newMeetingConsentMutation(c config, op Op, opts ...meetingconsentOption) *MeetingConsentMutation {
	m := &MeetingConsentMutation{
		config:        c,
		op:            op,
		typ:           TypeMeetingConsent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMeetingConsentID sets the ID field of the mutation.
func withMeetingConsentID(id string) meetingconsentOption {
	return func(m *MeetingConsentMutation) {
		var (
			err   error
			once  sync.Once
			value *MeetingConsent
		)
		m.oldValue = func(ctx context.Context) (*MeetingConsent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MeetingConsent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMeetingConsent sets the old MeetingConsent of the mutation.
func withMeetingConsent(node *MeetingConsent) meetingconsentOption {
	return func(m *MeetingConsentMutation) {
		m.oldValue = func(context.Context) (*MeetingConsent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MeetingConsentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MeetingConsentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MeetingConsent entities.
func (m *MeetingConsentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MeetingConsentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MeetingConsentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MeetingConsent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMeetingID sets the "meeting_id" field.
func (m *MeetingConsentMutation) SetMeetingID(s string) {
	m.meeting = &s
}

// MeetingID returns the value of the "meeting_id" field in the mutation.
func (m *MeetingConsentMutation) MeetingID() (r string, exists bool) {
	v := m.meeting
	if v == nil {
		return
	}
	return *v, true
}

// OldMeetingID returns the old "meeting_id" field's value of the MeetingConsent entity.
// If the MeetingConsent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingConsentMutation) OldMeetingID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMeetingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMeetingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMeetingID: %w", err)
	}
	return oldValue.MeetingID, nil
}

// ResetMeetingID resets all changes to the "meeting_id" field.
func (m *MeetingConsentMutation) ResetMeetingID() {
	m.meeting = nil
}

// SetParticipantIdentifier sets the "participant_identifier" field.
func (m *MeetingConsentMutation) SetParticipantIdentifier(s string) {
	m.participant_identifier = &s
}

// ParticipantIdentifier returns the value of the "participant_identifier" field in the mutation.
func (m *MeetingConsentMutation) ParticipantIdentifier() (r string, exists bool) {
	v := m.participant_identifier
	if v == nil {
		return
	}
	return *v, true
}

// OldParticipantIdentifier returns the old "participant_identifier" field's value of the MeetingConsent entity.
// If the MeetingConsent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingConsentMutation) OldParticipantIdentifier(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParticipantIdentifier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParticipantIdentifier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParticipantIdentifier: %w", err)
	}
	return oldValue.ParticipantIdentifier, nil
}

// ClearParticipantIdentifier clears the value of the "participant_identifier" field.
func (m *MeetingConsentMutation) ClearParticipantIdentifier() {
	m.participant_identifier = nil
	m.clearedFields[meetingconsent.FieldParticipantIdentifier] = struct{}{}
}

// ParticipantIdentifierCleared returns if the "participant_identifier" field was cleared in this mutation.
func (m *MeetingConsentMutation) ParticipantIdentifierCleared() bool {
	_, ok := m.clearedFields[meetingconsent.FieldParticipantIdentifier]
	return ok
}

// ResetParticipantIdentifier resets all changes to the "participant_identifier" field.
func (m *MeetingConsentMutation) ResetParticipantIdentifier() {
	m.participant_identifier = nil
	delete(m.clearedFields, meetingconsent.FieldParticipantIdentifier)
}

// SetApproved sets the "approved" field.
func (m *MeetingConsentMutation) SetApproved(b bool) {
	m.approved = &b
}

// Approved returns the value of the "approved" field in the mutation.
func (m *MeetingConsentMutation) Approved() (r bool, exists bool) {
	v := m.approved
	if v == nil {
		return
	}
	return *v, true
}

// OldApproved returns the old "approved" field's value of the MeetingConsent entity.
// If the MeetingConsent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingConsentMutation) OldApproved(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApproved is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApproved requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApproved: %w", err)
	}
	return oldValue.Approved, nil
}

// ResetApproved resets all changes to the "approved" field.
func (m *MeetingConsentMutation) ResetApproved() {
	m.approved = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *MeetingConsentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MeetingConsentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MeetingConsent entity.
// If the MeetingConsent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingConsentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MeetingConsentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MeetingConsentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MeetingConsentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the MeetingConsent entity.
// If the MeetingConsent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingConsentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MeetingConsentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearMeeting clears the "meeting" edge to the Meeting entity.
func (m *MeetingConsentMutation) ClearMeeting() {
	m.clearedmeeting = true
	m.clearedFields[meetingconsent.FieldMeetingID] = struct{}{}
}

// MeetingCleared reports if the "meeting" edge to the Meeting entity was cleared.
func (m *MeetingConsentMutation) MeetingCleared() bool {
	return m.clearedmeeting
}

// MeetingIDs returns the "meeting" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MeetingID instead. It exists only for internal usage by the builders.
func (m *MeetingConsentMutation) MeetingIDs() (ids []string) {
	if id := m.meeting; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMeeting resets all changes to the "meeting" edge.
func (m *MeetingConsentMutation) ResetMeeting() {
	m.meeting = nil
	m.clearedmeeting = false
}

// Where appends a list predicates to the MeetingConsentMutation builder.
func (m *MeetingConsentMutation) Where(ps ...predicate.MeetingConsent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MeetingConsentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MeetingConsentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MeetingConsent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MeetingConsentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MeetingConsentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MeetingConsent).
func (m *MeetingConsentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MeetingConsentMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.meeting != nil {
		fields = append(fields, meetingconsent.FieldMeetingID)
	}
	if m.participant_identifier != nil {
		fields = append(fields, meetingconsent.FieldParticipantIdentifier)
	}
	if m.approved != nil {
		fields = append(fields, meetingconsent.FieldApproved)
	}
	if m.created_at != nil {
		fields = append(fields, meetingconsent.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, meetingconsent.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MeetingConsentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case meetingconsent.FieldMeetingID:
		return m.MeetingID()
	case meetingconsent.FieldParticipantIdentifier:
		return m.ParticipantIdentifier()
	case meetingconsent.FieldApproved:
		return m.Approved()
	case meetingconsent.FieldCreatedAt:
		return m.CreatedAt()
	case meetingconsent.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MeetingConsentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case meetingconsent.FieldMeetingID:
		return m.OldMeetingID(ctx)
	case meetingconsent.FieldParticipantIdentifier:
		return m.OldParticipantIdentifier(ctx)
	case meetingconsent.FieldApproved:
		return m.OldApproved(ctx)
	case meetingconsent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case meetingconsent.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MeetingConsent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MeetingConsentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case meetingconsent.FieldMeetingID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMeetingID(v)
		return nil
	case meetingconsent.FieldParticipantIdentifier:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParticipantIdentifier(v)
		return nil
	case meetingconsent.FieldApproved:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApproved(v)
		return nil
	case meetingconsent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case meetingconsent.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MeetingConsent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MeetingConsentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MeetingConsentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MeetingConsentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown MeetingConsent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MeetingConsentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(meetingconsent.FieldParticipantIdentifier) {
		fields = append(fields, meetingconsent.FieldParticipantIdentifier)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MeetingConsentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MeetingConsentMutation) ClearField(name string) error {
	switch name {
	case meetingconsent.FieldParticipantIdentifier:
		m.ClearParticipantIdentifier()
		return nil
	}
	return fmt.Errorf("unknown MeetingConsent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MeetingConsentMutation) ResetField(name string) error {
	switch name {
	case meetingconsent.FieldMeetingID:
		m.ResetMeetingID()
		return nil
	case meetingconsent.FieldParticipantIdentifier:
		m.ResetParticipantIdentifier()
		return nil
	case meetingconsent.FieldApproved:
		m.ResetApproved()
		return nil
	case meetingconsent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case meetingconsent.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown MeetingConsent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MeetingConsentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.meeting != nil {
		edges = append(edges, meetingconsent.EdgeMeeting)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MeetingConsentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case meetingconsent.EdgeMeeting:
		if id := m.meeting; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MeetingConsentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MeetingConsentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MeetingConsentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedmeeting {
		edges = append(edges, meetingconsent.EdgeMeeting)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MeetingConsentMutation) EdgeCleared(name string) bool {
	switch name {
	case meetingconsent.EdgeMeeting:
		return m.clearedmeeting
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MeetingConsentMutation) ClearEdge(name string) error {
	switch name {
	case meetingconsent.EdgeMeeting:
		m.ClearMeeting()
		return nil
	}
	return fmt.Errorf("unknown MeetingConsent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MeetingConsentMutation) ResetEdge(name string) error {
	switch name {
	case meetingconsent.EdgeMeeting:
		m.ResetMeeting()
		return nil
	}
	return fmt.Errorf("unknown MeetingConsent edge %s", name)
}

// ParticipantMutation represents an operation that mutates the Participant nodes in the graph.
type ParticipantMutation struct {
	config
	op                Op
	typ               string
	id                *string
	speaker_index     *int
	addspeaker_index  *int
	display_name      *string
	platform_id       *string
	user_id           *string
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	transcript        *string
	clearedtranscript bool
	done              bool
	oldValue          func(context.Context) (*Participant, error)
	predicates        []predicate.Participant
}

var _ ent.Mutation = (*ParticipantMutation)(nil)

// participantOption allows management of the mutation configuration using functional options.
type participantOption func(*ParticipantMutation)

// newParticipantMutation creates new mutation for the Participant entity.
func newParticipantMutation(c config, op Op, opts ...participantOption) *ParticipantMutation {
	m := &ParticipantMutation{
		config:        c,
		op:            op,
		typ:           TypeParticipant,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withParticipantID sets the ID field of the mutation.
func withParticipantID(id string) participantOption {
	return func(m *ParticipantMutation) {
		var (
			err   error
			once  sync.Once
			value *Participant
		)
		m.oldValue = func(ctx context.Context) (*Participant, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Participant.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withParticipant sets the old Participant of the mutation.
func withParticipant(node *Participant) participantOption {
	return func(m *ParticipantMutation) {
		m.oldValue = func(context.Context) (*Participant, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ParticipantMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ParticipantMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Participant entities.
func (m *ParticipantMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ParticipantMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ParticipantMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Participant.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTranscriptID sets the "transcript_id" field.
func (m *ParticipantMutation) SetTranscriptID(s string) {
	m.transcript = &s
}

// TranscriptID returns the value of the "transcript_id" field in the mutation.
func (m *ParticipantMutation) TranscriptID() (r string, exists bool) {
	v := m.transcript
	if v == nil {
		return
	}
	return *v, true
}

// OldTranscriptID returns the old "transcript_id" field's value of the Participant entity.
// If the Participant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantMutation) OldTranscriptID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTranscriptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTranscriptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTranscriptID: %w", err)
	}
	return oldValue.TranscriptID, nil
}

// ResetTranscriptID resets all changes to the "transcript_id" field.
func (m *ParticipantMutation) ResetTranscriptID() {
	m.transcript = nil
}

// SetSpeakerIndex sets the "speaker_index" field.
func (m *ParticipantMutation) SetSpeakerIndex(i int) {
	m.speaker_index = &i
	m.addspeaker_index = nil
}

// SpeakerIndex returns the value of the "speaker_index" field in the mutation.
func (m *ParticipantMutation) SpeakerIndex() (r int, exists bool) {
	v := m.speaker_index
	if v == nil {
		return
	}
	return *v, true
}

// OldSpeakerIndex returns the old "speaker_index" field's value of the Participant entity.
// If the Participant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantMutation) OldSpeakerIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpeakerIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpeakerIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpeakerIndex: %w", err)
	}
	return oldValue.SpeakerIndex, nil
}

// AddSpeakerIndex adds i to the "speaker_index" field.
func (m *ParticipantMutation) AddSpeakerIndex(i int) {
	if m.addspeaker_index != nil {
		*m.addspeaker_index += i
	} else {
		m.addspeaker_index = &i
	}
}

// AddedSpeakerIndex returns the value that was added to the "speaker_index" field in this mutation.
func (m *ParticipantMutation) AddedSpeakerIndex() (r int, exists bool) {
	v := m.addspeaker_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetSpeakerIndex resets all changes to the "speaker_index" field.
func (m *ParticipantMutation) ResetSpeakerIndex() {
	m.speaker_index = nil
	m.addspeaker_index = nil
}

// SetDisplayName sets the "display_name" field.
func (m *ParticipantMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *ParticipantMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the Participant entity.
// If the Participant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *ParticipantMutation) ResetDisplayName() {
	m.display_name = nil
}

// SetPlatformID sets the "platform_id" field.
func (m *ParticipantMutation) SetPlatformID(s string) {
	m.platform_id = &s
}

// PlatformID returns the value of the "platform_id" field in the mutation.
func (m *ParticipantMutation) PlatformID() (r string, exists bool) {
	v := m.platform_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatformID returns the old "platform_id" field's value of the Participant entity.
// If the Participant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantMutation) OldPlatformID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatformID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatformID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatformID: %w", err)
	}
	return oldValue.PlatformID, nil
}

// ClearPlatformID clears the value of the "platform_id" field.
func (m *ParticipantMutation) ClearPlatformID() {
	m.platform_id = nil
	m.clearedFields[participant.FieldPlatformID] = struct{}{}
}

// PlatformIDCleared returns if the "platform_id" field was cleared in this mutation.
func (m *ParticipantMutation) PlatformIDCleared() bool {
	_, ok := m.clearedFields[participant.FieldPlatformID]
	return ok
}

// ResetPlatformID resets all changes to the "platform_id" field.
func (m *ParticipantMutation) ResetPlatformID() {
	m.platform_id = nil
	delete(m.clearedFields, participant.FieldPlatformID)
}

// SetUserID sets the "user_id" field.
func (m *ParticipantMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ParticipantMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Participant entity.
// If the Participant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantMutation) OldUserID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *ParticipantMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[participant.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *ParticipantMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[participant.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ParticipantMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, participant.FieldUserID)
}

// SetCreatedAt sets the "created_at" field.
func (m *ParticipantMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ParticipantMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Participant entity.
// If the Participant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ParticipantMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ParticipantMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ParticipantMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Participant entity.
// If the Participant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ParticipantMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearTranscript clears the "transcript" edge to the Transcript entity.
func (m *ParticipantMutation) ClearTranscript() {
	m.clearedtranscript = true
	m.clearedFields[participant.FieldTranscriptID] = struct{}{}
}

// TranscriptCleared reports if the "transcript" edge to the Transcript entity was cleared.
func (m *ParticipantMutation) TranscriptCleared() bool {
	return m.clearedtranscript
}

// TranscriptIDs returns the "transcript" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TranscriptID instead. It exists only for internal usage by the builders.
func (m *ParticipantMutation) TranscriptIDs() (ids []string) {
	if id := m.transcript; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTranscript resets all changes to the "transcript" edge.
func (m *ParticipantMutation) ResetTranscript() {
	m.transcript = nil
	m.clearedtranscript = false
}

// Where appends a list predicates to the ParticipantMutation builder.
func (m *ParticipantMutation) Where(ps ...predicate.Participant) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ParticipantMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ParticipantMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Participant, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ParticipantMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ParticipantMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Participant).
func (m *ParticipantMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ParticipantMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.transcript != nil {
		fields = append(fields, participant.FieldTranscriptID)
	}
	if m.speaker_index != nil {
		fields = append(fields, participant.FieldSpeakerIndex)
	}
	if m.display_name != nil {
		fields = append(fields, participant.FieldDisplayName)
	}
	if m.platform_id != nil {
		fields = append(fields, participant.FieldPlatformID)
	}
	if m.user_id != nil {
		fields = append(fields, participant.FieldUserID)
	}
	if m.created_at != nil {
		fields = append(fields, participant.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, participant.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ParticipantMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case participant.FieldTranscriptID:
		return m.TranscriptID()
	case participant.FieldSpeakerIndex:
		return m.SpeakerIndex()
	case participant.FieldDisplayName:
		return m.DisplayName()
	case participant.FieldPlatformID:
		return m.PlatformID()
	case participant.FieldUserID:
		return m.UserID()
	case participant.FieldCreatedAt:
		return m.CreatedAt()
	case participant.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ParticipantMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case participant.FieldTranscriptID:
		return m.OldTranscriptID(ctx)
	case participant.FieldSpeakerIndex:
		return m.OldSpeakerIndex(ctx)
	case participant.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case participant.FieldPlatformID:
		return m.OldPlatformID(ctx)
	case participant.FieldUserID:
		return m.OldUserID(ctx)
	case participant.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case participant.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Participant field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ParticipantMutation) SetField(name string, value ent.Value) error {
	switch name {
	case participant.FieldTranscriptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTranscriptID(v)
		return nil
	case participant.FieldSpeakerIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpeakerIndex(v)
		return nil
	case participant.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case participant.FieldPlatformID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatformID(v)
		return nil
	case participant.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case participant.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case participant.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Participant field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ParticipantMutation) AddedFields() []string {
	var fields []string
	if m.addspeaker_index != nil {
		fields = append(fields, participant.FieldSpeakerIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ParticipantMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case participant.FieldSpeakerIndex:
		return m.AddedSpeakerIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ParticipantMutation) AddField(name string, value ent.Value) error {
	switch name {
	case participant.FieldSpeakerIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSpeakerIndex(v)
		return nil
	}
	return fmt.Errorf("unknown Participant numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ParticipantMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(participant.FieldPlatformID) {
		fields = append(fields, participant.FieldPlatformID)
	}
	if m.FieldCleared(participant.FieldUserID) {
		fields = append(fields, participant.FieldUserID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ParticipantMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ParticipantMutation) ClearField(name string) error {
	switch name {
	case participant.FieldPlatformID:
		m.ClearPlatformID()
		return nil
	case participant.FieldUserID:
		m.ClearUserID()
		return nil
	}
	return fmt.Errorf("unknown Participant nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ParticipantMutation) ResetField(name string) error {
	switch name {
	case participant.FieldTranscriptID:
		m.ResetTranscriptID()
		return nil
	case participant.FieldSpeakerIndex:
		m.ResetSpeakerIndex()
		return nil
	case participant.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case participant.FieldPlatformID:
		m.ResetPlatformID()
		return nil
	case participant.FieldUserID:
		m.ResetUserID()
		return nil
	case participant.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case participant.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Participant field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ParticipantMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.transcript != nil {
		edges = append(edges, participant.EdgeTranscript)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ParticipantMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case participant.EdgeTranscript:
		if id := m.transcript; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ParticipantMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ParticipantMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ParticipantMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtranscript {
		edges = append(edges, participant.EdgeTranscript)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ParticipantMutation) EdgeCleared(name string) bool {
	switch name {
	case participant.EdgeTranscript:
		return m.clearedtranscript
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ParticipantMutation) ClearEdge(name string) error {
	switch name {
	case participant.EdgeTranscript:
		m.ClearTranscript()
		return nil
	}
	return fmt.Errorf("unknown Participant unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ParticipantMutation) ResetEdge(name string) error {
	switch name {
	case participant.EdgeTranscript:
		m.ResetTranscript()
		return nil
	}
	return fmt.Errorf("unknown Participant edge %s", name)
}

// PipelineTaskMutation represents an operation that mutates the PipelineTask nodes in the graph.
type PipelineTaskMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	workflow_run_id     *string
	name                *string
	queue               *pipelinetask.Queue
	status              *pipelinetask.Status
	params              *json.RawMessage
	appendparams        json.RawMessage
	result              *json.RawMessage
	appendresult        json.RawMessage
	attempt             *int
	addattempt          *int
	max_attempts        *int
	addmax_attempts     *int
	run_after           *time.Time
	timeout_seconds     *float64
	addtimeout_seconds  *float64
	concurrency_key     *string
	max_concurrency     *int
	addmax_concurrency  *int
	error_message       *string
	pod_id              *string
	started_at          *time.Time
	completed_at        *time.Time
	last_interaction_at *time.Time
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	transcript          *string
	clearedtranscript   bool
	dependents          map[string]struct{}
	removeddependents   map[string]struct{}
	cleareddependents   bool
	depends_on          map[string]struct{}
	removeddepends_on   map[string]struct{}
	cleareddepends_on   bool
	done                bool
	oldValue            func(context.Context) (*PipelineTask, error)
	predicates          []predicate.PipelineTask
}

var _ ent.Mutation = (*PipelineTaskMutation)(nil)

// pipelinetaskOption allows management of the mutation configuration using functional options.
type pipelinetaskOption func(*PipelineTaskMutation)

// newPipelineTaskMutation creates new mutation for the PipelineTask entity.
func newPipelineTaskMutation(c config, op Op, opts ...pipelinetaskOption) *PipelineTaskMutation {
	m := &PipelineTaskMutation{
		config:        c,
		op:            op,
		typ:           TypePipelineTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPipelineTaskID sets the ID field of the mutation.
func withPipelineTaskID(id string) pipelinetaskOption {
	return func(m *PipelineTaskMutation) {
		var (
			err   error
			once  sync.Once
			value *PipelineTask
		)
		m.oldValue = func(ctx context.Context) (*PipelineTask, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PipelineTask.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPipelineTask sets the old PipelineTask of the mutation.
func withPipelineTask(node *PipelineTask) pipelinetaskOption {
	return func(m *PipelineTaskMutation) {
		m.oldValue = func(context.Context) (*PipelineTask, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PipelineTaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PipelineTaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PipelineTask entities.
func (m *PipelineTaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PipelineTaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PipelineTaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PipelineTask.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTranscriptID sets the "transcript_id" field.
func (m *PipelineTaskMutation) SetTranscriptID(s string) {
	m.transcript = &s
}

// TranscriptID returns the value of the "transcript_id" field in the mutation.
func (m *PipelineTaskMutation) TranscriptID() (r string, exists bool) {
	v := m.transcript
	if v == nil {
		return
	}
	return *v, true
}

// OldTranscriptID returns the old "transcript_id" field's value of the PipelineTask entity.
// If the PipelineTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineTaskMutation) OldTranscriptID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTranscriptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTranscriptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTranscriptID: %w", err)
	}
	return oldValue.TranscriptID, nil
}

// ResetTranscriptID resets all changes to the "transcript_id" field.
func (m *PipelineTaskMutation) ResetTranscriptID() {
	m.transcript = nil
}

// SetWorkflowRunID sets the "workflow_run_id" field.
func (m *PipelineTaskMutation) SetWorkflowRunID(s string) {
	m.workflow_run_id = &s
}

// WorkflowRunID returns the value of the "workflow_run_id" field in the mutation.
func (m *PipelineTaskMutation) WorkflowRunID() (r string, exists bool) {
	v := m.workflow_run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowRunID returns the old "workflow_run_id" field's value of the PipelineTask entity.
// If the PipelineTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineTaskMutation) OldWorkflowRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowRunID: %w", err)
	}
	return oldValue.WorkflowRunID, nil
}

// ResetWorkflowRunID resets all changes to the "workflow_run_id" field.
func (m *PipelineTaskMutation) ResetWorkflowRunID() {
	m.workflow_run_id = nil
}

// SetName sets the "name" field.
func (m *PipelineTaskMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *PipelineTaskMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the PipelineTask entity.
// If the PipelineTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineTaskMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *PipelineTaskMutation) ResetName() {
	m.name = nil
}

// SetQueue sets the "queue" field.
func (m *PipelineTaskMutation) SetQueue(pi pipelinetask.Queue) {
	m.queue = &pi
}

// Queue returns the value of the "queue" field in the mutation.
func (m *PipelineTaskMutation) Queue() (r pipelinetask.Queue, exists bool) {
	v := m.queue
	if v == nil {
		return
	}
	return *v, true
}

// OldQueue returns the old "queue" field's value of the PipelineTask entity.
// If the PipelineTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineTaskMutation) OldQueue(ctx context.Context) (v pipelinetask.Queue, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueue: %w", err)
	}
	return oldValue.Queue, nil
}

// ResetQueue resets all changes to the "queue" field.
func (m *PipelineTaskMutation) ResetQueue() {
	m.queue = nil
}

// SetStatus sets the "status" field.
func (m *PipelineTaskMutation) SetStatus(pi pipelinetask.Status) {
	m.status = &pi
}

// Status returns the value of the "status" field in the mutation.
func (m *PipelineTaskMutation) Status() (r pipelinetask.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PipelineTask entity.
// If the PipelineTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineTaskMutation) OldStatus(ctx context.Context) (v pipelinetask.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PipelineTaskMutation) ResetStatus() {
	m.status = nil
}

// SetParams sets the "params" field.
func (m *PipelineTaskMutation) SetParams(jm json.RawMessage) {
	m.params = &jm
	m.appendparams = nil
}

// Params returns the value of the "params" field in the mutation.
func (m *PipelineTaskMutation) Params() (r json.RawMessage, exists bool) {
	v := m.params
	if v == nil {
		return
	}
	return *v, true
}

// OldParams returns the old "params" field's value of the PipelineTask entity.
// If the PipelineTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineTaskMutation) OldParams(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParams is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParams requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParams: %w", err)
	}
	return oldValue.Params, nil
}

// AppendParams adds jm to the "params" field.
func (m *PipelineTaskMutation) AppendParams(jm json.RawMessage) {
	m.appendparams = append(m.appendparams, jm...)
}

// AppendedParams returns the list of values that were appended to the "params" field in this mutation.
func (m *PipelineTaskMutation) AppendedParams() (json.RawMessage, bool) {
	if len(m.appendparams) == 0 {
		return nil, false
	}
	return m.appendparams, true
}

// ClearParams clears the value of the "params" field.
func (m *PipelineTaskMutation) ClearParams() {
	m.params = nil
	m.appendparams = nil
	m.clearedFields[pipelinetask.FieldParams] = struct{}{}
}

// ParamsCleared returns if the "params" field was cleared in this mutation.
func (m *PipelineTaskMutation) ParamsCleared() bool {
	_, ok := m.clearedFields[pipelinetask.FieldParams]
	return ok
}

// ResetParams resets all changes to the "params" field.
func (m *PipelineTaskMutation) ResetParams() {
	m.params = nil
	m.appendparams = nil
	delete(m.clearedFields, pipelinetask.FieldParams)
}

// SetResult sets the "result" field.
func (m *PipelineTaskMutation) SetResult(jm json.RawMessage) {
	m.result = &jm
	m.appendresult = nil
}

// Result returns the value of the "result" field in the mutation.
func (m *PipelineTaskMutation) Result() (r json.RawMessage, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the PipelineTask entity.
// If the PipelineTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineTaskMutation) OldResult(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// AppendResult adds jm to the "result" field.
func (m *PipelineTaskMutation) AppendResult(jm json.RawMessage) {
	m.appendresult = append(m.appendresult, jm...)
}

// AppendedResult returns the list of values that were appended to the "result" field in this mutation.
func (m *PipelineTaskMutation) AppendedResult() (json.RawMessage, bool) {
	if len(m.appendresult) == 0 {
		return nil, false
	}
	return m.appendresult, true
}

// ClearResult clears the value of the "result" field.
func (m *PipelineTaskMutation) ClearResult() {
	m.result = nil
	m.appendresult = nil
	m.clearedFields[pipelinetask.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *PipelineTaskMutation) ResultCleared() bool {
	_, ok := m.clearedFields[pipelinetask.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *PipelineTaskMutation) ResetResult() {
	m.result = nil
	m.appendresult = nil
	delete(m.clearedFields, pipelinetask.FieldResult)
}

// SetAttempt sets the "attempt" field.
func (m *PipelineTaskMutation) SetAttempt(i int) {
	m.attempt = &i
	m.addattempt = nil
}

// Attempt returns the value of the "attempt" field in the mutation.
func (m *PipelineTaskMutation) Attempt() (r int, exists bool) {
	v := m.attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempt returns the old "attempt" field's value of the PipelineTask entity.
// If the PipelineTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineTaskMutation) OldAttempt(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempt: %w", err)
	}
	return oldValue.Attempt, nil
}

// AddAttempt adds i to the "attempt" field.
func (m *PipelineTaskMutation) AddAttempt(i int) {
	if m.addattempt != nil {
		*m.addattempt += i
	} else {
		m.addattempt = &i
	}
}

// AddedAttempt returns the value that was added to the "attempt" field in this mutation.
func (m *PipelineTaskMutation) AddedAttempt() (r int, exists bool) {
	v := m.addattempt
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempt resets all changes to the "attempt" field.
func (m *PipelineTaskMutation) ResetAttempt() {
	m.attempt = nil
	m.addattempt = nil
}

// SetMaxAttempts sets the "max_attempts" field.
func (m *PipelineTaskMutation) SetMaxAttempts(i int) {
	m.max_attempts = &i
	m.addmax_attempts = nil
}

// MaxAttempts returns the value of the "max_attempts" field in the mutation.
func (m *PipelineTaskMutation) MaxAttempts() (r int, exists bool) {
	v := m.max_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxAttempts returns the old "max_attempts" field's value of the PipelineTask entity.
// If the PipelineTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineTaskMutation) OldMaxAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxAttempts: %w", err)
	}
	return oldValue.MaxAttempts, nil
}

// AddMaxAttempts adds i to the "max_attempts" field.
func (m *PipelineTaskMutation) AddMaxAttempts(i int) {
	if m.addmax_attempts != nil {
		*m.addmax_attempts += i
	} else {
		m.addmax_attempts = &i
	}
}

// AddedMaxAttempts returns the value that was added to the "max_attempts" field in this mutation.
func (m *PipelineTaskMutation) AddedMaxAttempts() (r int, exists bool) {
	v := m.addmax_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxAttempts resets all changes to the "max_attempts" field.
func (m *PipelineTaskMutation) ResetMaxAttempts() {
	m.max_attempts = nil
	m.addmax_attempts = nil
}

// SetRunAfter sets the "run_after" field.
func (m *PipelineTaskMutation) SetRunAfter(t time.Time) {
	m.run_after = &t
}

// RunAfter returns the value of the "run_after" field in the mutation.
func (m *PipelineTaskMutation) RunAfter() (r time.Time, exists bool) {
	v := m.run_after
	if v == nil {
		return
	}
	return *v, true
}

// OldRunAfter returns the old "run_after" field's value of the PipelineTask entity.
// If the PipelineTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineTaskMutation) OldRunAfter(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunAfter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunAfter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunAfter: %w", err)
	}
	return oldValue.RunAfter, nil
}

// ResetRunAfter resets all changes to the "run_after" field.
func (m *PipelineTaskMutation) ResetRunAfter() {
	m.run_after = nil
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (m *PipelineTaskMutation) SetTimeoutSeconds(f float64) {
	m.timeout_seconds = &f
	m.addtimeout_seconds = nil
}

// TimeoutSeconds returns the value of the "timeout_seconds" field in the mutation.
func (m *PipelineTaskMutation) TimeoutSeconds() (r float64, exists bool) {
	v := m.timeout_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeoutSeconds returns the old "timeout_seconds" field's value of the PipelineTask entity.
// If the PipelineTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineTaskMutation) OldTimeoutSeconds(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeoutSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeoutSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeoutSeconds: %w", err)
	}
	return oldValue.TimeoutSeconds, nil
}

// AddTimeoutSeconds adds f to the "timeout_seconds" field.
func (m *PipelineTaskMutation) AddTimeoutSeconds(f float64) {
	if m.addtimeout_seconds != nil {
		*m.addtimeout_seconds += f
	} else {
		m.addtimeout_seconds = &f
	}
}

// AddedTimeoutSeconds returns the value that was added to the "timeout_seconds" field in this mutation.
func (m *PipelineTaskMutation) AddedTimeoutSeconds() (r float64, exists bool) {
	v := m.addtimeout_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeoutSeconds resets all changes to the "timeout_seconds" field.
func (m *PipelineTaskMutation) ResetTimeoutSeconds() {
	m.timeout_seconds = nil
	m.addtimeout_seconds = nil
}

// SetConcurrencyKey sets the "concurrency_key" field.
func (m *PipelineTaskMutation) SetConcurrencyKey(s string) {
	m.concurrency_key = &s
}

// ConcurrencyKey returns the value of the "concurrency_key" field in the mutation.
func (m *PipelineTaskMutation) ConcurrencyKey() (r string, exists bool) {
	v := m.concurrency_key
	if v == nil {
		return
	}
	return *v, true
}

// OldConcurrencyKey returns the old "concurrency_key" field's value of the PipelineTask entity.
// If the PipelineTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineTaskMutation) OldConcurrencyKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConcurrencyKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConcurrencyKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConcurrencyKey: %w", err)
	}
	return oldValue.ConcurrencyKey, nil
}

// ClearConcurrencyKey clears the value of the "concurrency_key" field.
func (m *PipelineTaskMutation) ClearConcurrencyKey() {
	m.concurrency_key = nil
	m.clearedFields[pipelinetask.FieldConcurrencyKey] = struct{}{}
}

// ConcurrencyKeyCleared returns if the "concurrency_key" field was cleared in this mutation.
func (m *PipelineTaskMutation) ConcurrencyKeyCleared() bool {
	_, ok := m.clearedFields[pipelinetask.FieldConcurrencyKey]
	return ok
}

// ResetConcurrencyKey resets all changes to the "concurrency_key" field.
func (m *PipelineTaskMutation) ResetConcurrencyKey() {
	m.concurrency_key = nil
	delete(m.clearedFields, pipelinetask.FieldConcurrencyKey)
}

// SetMaxConcurrency sets the "max_concurrency" field.
func (m *PipelineTaskMutation) SetMaxConcurrency(i int) {
	m.max_concurrency = &i
	m.addmax_concurrency = nil
}

// MaxConcurrency returns the value of the "max_concurrency" field in the mutation.
func (m *PipelineTaskMutation) MaxConcurrency() (r int, exists bool) {
	v := m.max_concurrency
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxConcurrency returns the old "max_concurrency" field's value of the PipelineTask entity.
// If the PipelineTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineTaskMutation) OldMaxConcurrency(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxConcurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxConcurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxConcurrency: %w", err)
	}
	return oldValue.MaxConcurrency, nil
}

// AddMaxConcurrency adds i to the "max_concurrency" field.
func (m *PipelineTaskMutation) AddMaxConcurrency(i int) {
	if m.addmax_concurrency != nil {
		*m.addmax_concurrency += i
	} else {
		m.addmax_concurrency = &i
	}
}

// AddedMaxConcurrency returns the value that was added to the "max_concurrency" field in this mutation.
func (m *PipelineTaskMutation) AddedMaxConcurrency() (r int, exists bool) {
	v := m.addmax_concurrency
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxConcurrency resets all changes to the "max_concurrency" field.
func (m *PipelineTaskMutation) ResetMaxConcurrency() {
	m.max_concurrency = nil
	m.addmax_concurrency = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *PipelineTaskMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *PipelineTaskMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the PipelineTask entity.
// If the PipelineTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineTaskMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *PipelineTaskMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[pipelinetask.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *PipelineTaskMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[pipelinetask.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *PipelineTaskMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, pipelinetask.FieldErrorMessage)
}

// SetPodID sets the "pod_id" field.
func (m *PipelineTaskMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *PipelineTaskMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the PipelineTask entity.
// If the PipelineTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineTaskMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *PipelineTaskMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[pipelinetask.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *PipelineTaskMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[pipelinetask.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *PipelineTaskMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, pipelinetask.FieldPodID)
}

// SetStartedAt sets the "started_at" field.
func (m *PipelineTaskMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *PipelineTaskMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the PipelineTask entity.
// If the PipelineTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineTaskMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *PipelineTaskMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[pipelinetask.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *PipelineTaskMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[pipelinetask.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *PipelineTaskMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, pipelinetask.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *PipelineTaskMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *PipelineTaskMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the PipelineTask entity.
// If the PipelineTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineTaskMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *PipelineTaskMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[pipelinetask.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *PipelineTaskMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[pipelinetask.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *PipelineTaskMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, pipelinetask.FieldCompletedAt)
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (m *PipelineTaskMutation) SetLastInteractionAt(t time.Time) {
	m.last_interaction_at = &t
}

// LastInteractionAt returns the value of the "last_interaction_at" field in the mutation.
func (m *PipelineTaskMutation) LastInteractionAt() (r time.Time, exists bool) {
	v := m.last_interaction_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastInteractionAt returns the old "last_interaction_at" field's value of the PipelineTask entity.
// If the PipelineTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineTaskMutation) OldLastInteractionAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastInteractionAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastInteractionAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastInteractionAt: %w", err)
	}
	return oldValue.LastInteractionAt, nil
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (m *PipelineTaskMutation) ClearLastInteractionAt() {
	m.last_interaction_at = nil
	m.clearedFields[pipelinetask.FieldLastInteractionAt] = struct{}{}
}

// LastInteractionAtCleared returns if the "last_interaction_at" field was cleared in this mutation.
func (m *PipelineTaskMutation) LastInteractionAtCleared() bool {
	_, ok := m.clearedFields[pipelinetask.FieldLastInteractionAt]
	return ok
}

// ResetLastInteractionAt resets all changes to the "last_interaction_at" field.
func (m *PipelineTaskMutation) ResetLastInteractionAt() {
	m.last_interaction_at = nil
	delete(m.clearedFields, pipelinetask.FieldLastInteractionAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *PipelineTaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PipelineTaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PipelineTask entity.
// If the PipelineTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineTaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PipelineTaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PipelineTaskMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PipelineTaskMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PipelineTask entity.
// If the PipelineTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineTaskMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PipelineTaskMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearTranscript clears the "transcript" edge to the Transcript entity.
func (m *PipelineTaskMutation) ClearTranscript() {
	m.clearedtranscript = true
	m.clearedFields[pipelinetask.FieldTranscriptID] = struct{}{}
}

// TranscriptCleared reports if the "transcript" edge to the Transcript entity was cleared.
func (m *PipelineTaskMutation) TranscriptCleared() bool {
	return m.clearedtranscript
}

// TranscriptIDs returns the "transcript" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TranscriptID instead. It exists only for internal usage by the builders.
func (m *PipelineTaskMutation) TranscriptIDs() (ids []string) {
	if id := m.transcript; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTranscript resets all changes to the "transcript" edge.
func (m *PipelineTaskMutation) ResetTranscript() {
	m.transcript = nil
	m.clearedtranscript = false
}

// AddDependentIDs adds the "dependents" edge to the PipelineTask entity by ids.
func (m *PipelineTaskMutation) AddDependentIDs(ids ...string) {
	if m.dependents == nil {
		m.dependents = make(map[string]struct{})
	}
	for i := range ids {
		m.dependents[ids[i]] = struct{}{}
	}
}

// ClearDependents clears the "dependents" edge to the PipelineTask entity.
func (m *PipelineTaskMutation) ClearDependents() {
	m.cleareddependents = true
}

// DependentsCleared reports if the "dependents" edge to the PipelineTask entity was cleared.
func (m *PipelineTaskMutation) DependentsCleared() bool {
	return m.cleareddependents
}

// RemoveDependentIDs removes the "dependents" edge to the PipelineTask entity by IDs.
func (m *PipelineTaskMutation) RemoveDependentIDs(ids ...string) {
	if m.removeddependents == nil {
		m.removeddependents = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.dependents, ids[i])
		m.removeddependents[ids[i]] = struct{}{}
	}
}

// RemovedDependents returns the removed IDs of the "dependents" edge to the PipelineTask entity.
func (m *PipelineTaskMutation) RemovedDependentsIDs() (ids []string) {
	for id := range m.removeddependents {
		ids = append(ids, id)
	}
	return
}

// DependentsIDs returns the "dependents" edge IDs in the mutation.
func (m *PipelineTaskMutation) DependentsIDs() (ids []string) {
	for id := range m.dependents {
		ids = append(ids, id)
	}
	return
}

// ResetDependents resets all changes to the "dependents" edge.
func (m *PipelineTaskMutation) ResetDependents() {
	m.dependents = nil
	m.cleareddependents = false
	m.removeddependents = nil
}

// AddDependsOnIDs adds the "depends_on" edge to the PipelineTask entity by ids.
func (m *PipelineTaskMutation) AddDependsOnIDs(ids ...string) {
	if m.depends_on == nil {
		m.depends_on = make(map[string]struct{})
	}
	for i := range ids {
		m.depends_on[ids[i]] = struct{}{}
	}
}

// ClearDependsOn clears the "depends_on" edge to the PipelineTask entity.
func (m *PipelineTaskMutation) ClearDependsOn() {
	m.cleareddepends_on = true
}

// DependsOnCleared reports if the "depends_on" edge to the PipelineTask entity was cleared.
func (m *PipelineTaskMutation) DependsOnCleared() bool {
	return m.cleareddepends_on
}

// RemoveDependsOnIDs removes the "depends_on" edge to the PipelineTask entity by IDs.
func (m *PipelineTaskMutation) RemoveDependsOnIDs(ids ...string) {
	if m.removeddepends_on == nil {
		m.removeddepends_on = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.depends_on, ids[i])
		m.removeddepends_on[ids[i]] = struct{}{}
	}
}

// RemovedDependsOn returns the removed IDs of the "depends_on" edge to the PipelineTask entity.
func (m *PipelineTaskMutation) RemovedDependsOnIDs() (ids []string) {
	for id := range m.removeddepends_on {
		ids = append(ids, id)
	}
	return
}

// DependsOnIDs returns the "depends_on" edge IDs in the mutation.
func (m *PipelineTaskMutation) DependsOnIDs() (ids []string) {
	for id := range m.depends_on {
		ids = append(ids, id)
	}
	return
}

// ResetDependsOn resets all changes to the "depends_on" edge.
func (m *PipelineTaskMutation) ResetDependsOn() {
	m.depends_on = nil
	m.cleareddepends_on = false
	m.removeddepends_on = nil
}

// Where appends a list predicates to the PipelineTaskMutation builder.
func (m *PipelineTaskMutation) Where(ps ...predicate.PipelineTask) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PipelineTaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PipelineTaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PipelineTask, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PipelineTaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PipelineTaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PipelineTask).
func (m *PipelineTaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PipelineTaskMutation) Fields() []string {
	fields := make([]string, 0, 20)
	if m.transcript != nil {
		fields = append(fields, pipelinetask.FieldTranscriptID)
	}
	if m.workflow_run_id != nil {
		fields = append(fields, pipelinetask.FieldWorkflowRunID)
	}
	if m.name != nil {
		fields = append(fields, pipelinetask.FieldName)
	}
	if m.queue != nil {
		fields = append(fields, pipelinetask.FieldQueue)
	}
	if m.status != nil {
		fields = append(fields, pipelinetask.FieldStatus)
	}
	if m.params != nil {
		fields = append(fields, pipelinetask.FieldParams)
	}
	if m.result != nil {
		fields = append(fields, pipelinetask.FieldResult)
	}
	if m.attempt != nil {
		fields = append(fields, pipelinetask.FieldAttempt)
	}
	if m.max_attempts != nil {
		fields = append(fields, pipelinetask.FieldMaxAttempts)
	}
	if m.run_after != nil {
		fields = append(fields, pipelinetask.FieldRunAfter)
	}
	if m.timeout_seconds != nil {
		fields = append(fields, pipelinetask.FieldTimeoutSeconds)
	}
	if m.concurrency_key != nil {
		fields = append(fields, pipelinetask.FieldConcurrencyKey)
	}
	if m.max_concurrency != nil {
		fields = append(fields, pipelinetask.FieldMaxConcurrency)
	}
	if m.error_message != nil {
		fields = append(fields, pipelinetask.FieldErrorMessage)
	}
	if m.pod_id != nil {
		fields = append(fields, pipelinetask.FieldPodID)
	}
	if m.started_at != nil {
		fields = append(fields, pipelinetask.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, pipelinetask.FieldCompletedAt)
	}
	if m.last_interaction_at != nil {
		fields = append(fields, pipelinetask.FieldLastInteractionAt)
	}
	if m.created_at != nil {
		fields = append(fields, pipelinetask.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, pipelinetask.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PipelineTaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pipelinetask.FieldTranscriptID:
		return m.TranscriptID()
	case pipelinetask.FieldWorkflowRunID:
		return m.WorkflowRunID()
	case pipelinetask.FieldName:
		return m.Name()
	case pipelinetask.FieldQueue:
		return m.Queue()
	case pipelinetask.FieldStatus:
		return m.Status()
	case pipelinetask.FieldParams:
		return m.Params()
	case pipelinetask.FieldResult:
		return m.Result()
	case pipelinetask.FieldAttempt:
		return m.Attempt()
	case pipelinetask.FieldMaxAttempts:
		return m.MaxAttempts()
	case pipelinetask.FieldRunAfter:
		return m.RunAfter()
	case pipelinetask.FieldTimeoutSeconds:
		return m.TimeoutSeconds()
	case pipelinetask.FieldConcurrencyKey:
		return m.ConcurrencyKey()
	case pipelinetask.FieldMaxConcurrency:
		return m.MaxConcurrency()
	case pipelinetask.FieldErrorMessage:
		return m.ErrorMessage()
	case pipelinetask.FieldPodID:
		return m.PodID()
	case pipelinetask.FieldStartedAt:
		return m.StartedAt()
	case pipelinetask.FieldCompletedAt:
		return m.CompletedAt()
	case pipelinetask.FieldLastInteractionAt:
		return m.LastInteractionAt()
	case pipelinetask.FieldCreatedAt:
		return m.CreatedAt()
	case pipelinetask.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PipelineTaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pipelinetask.FieldTranscriptID:
		return m.OldTranscriptID(ctx)
	case pipelinetask.FieldWorkflowRunID:
		return m.OldWorkflowRunID(ctx)
	case pipelinetask.FieldName:
		return m.OldName(ctx)
	case pipelinetask.FieldQueue:
		return m.OldQueue(ctx)
	case pipelinetask.FieldStatus:
		return m.OldStatus(ctx)
	case pipelinetask.FieldParams:
		return m.OldParams(ctx)
	case pipelinetask.FieldResult:
		return m.OldResult(ctx)
	case pipelinetask.FieldAttempt:
		return m.OldAttempt(ctx)
	case pipelinetask.FieldMaxAttempts:
		return m.OldMaxAttempts(ctx)
	case pipelinetask.FieldRunAfter:
		return m.OldRunAfter(ctx)
	case pipelinetask.FieldTimeoutSeconds:
		return m.OldTimeoutSeconds(ctx)
	case pipelinetask.FieldConcurrencyKey:
		return m.OldConcurrencyKey(ctx)
	case pipelinetask.FieldMaxConcurrency:
		return m.OldMaxConcurrency(ctx)
	case pipelinetask.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case pipelinetask.FieldPodID:
		return m.OldPodID(ctx)
	case pipelinetask.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case pipelinetask.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case pipelinetask.FieldLastInteractionAt:
		return m.OldLastInteractionAt(ctx)
	case pipelinetask.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case pipelinetask.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PipelineTask field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineTaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pipelinetask.FieldTranscriptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTranscriptID(v)
		return nil
	case pipelinetask.FieldWorkflowRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowRunID(v)
		return nil
	case pipelinetask.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case pipelinetask.FieldQueue:
		v, ok := value.(pipelinetask.Queue)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueue(v)
		return nil
	case pipelinetask.FieldStatus:
		v, ok := value.(pipelinetask.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case pipelinetask.FieldParams:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParams(v)
		return nil
	case pipelinetask.FieldResult:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case pipelinetask.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempt(v)
		return nil
	case pipelinetask.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxAttempts(v)
		return nil
	case pipelinetask.FieldRunAfter:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunAfter(v)
		return nil
	case pipelinetask.FieldTimeoutSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeoutSeconds(v)
		return nil
	case pipelinetask.FieldConcurrencyKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConcurrencyKey(v)
		return nil
	case pipelinetask.FieldMaxConcurrency:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxConcurrency(v)
		return nil
	case pipelinetask.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case pipelinetask.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case pipelinetask.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case pipelinetask.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case pipelinetask.FieldLastInteractionAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastInteractionAt(v)
		return nil
	case pipelinetask.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case pipelinetask.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineTask field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PipelineTaskMutation) AddedFields() []string {
	var fields []string
	if m.addattempt != nil {
		fields = append(fields, pipelinetask.FieldAttempt)
	}
	if m.addmax_attempts != nil {
		fields = append(fields, pipelinetask.FieldMaxAttempts)
	}
	if m.addtimeout_seconds != nil {
		fields = append(fields, pipelinetask.FieldTimeoutSeconds)
	}
	if m.addmax_concurrency != nil {
		fields = append(fields, pipelinetask.FieldMaxConcurrency)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PipelineTaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pipelinetask.FieldAttempt:
		return m.AddedAttempt()
	case pipelinetask.FieldMaxAttempts:
		return m.AddedMaxAttempts()
	case pipelinetask.FieldTimeoutSeconds:
		return m.AddedTimeoutSeconds()
	case pipelinetask.FieldMaxConcurrency:
		return m.AddedMaxConcurrency()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineTaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pipelinetask.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempt(v)
		return nil
	case pipelinetask.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxAttempts(v)
		return nil
	case pipelinetask.FieldTimeoutSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeoutSeconds(v)
		return nil
	case pipelinetask.FieldMaxConcurrency:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxConcurrency(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineTask numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PipelineTaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pipelinetask.FieldParams) {
		fields = append(fields, pipelinetask.FieldParams)
	}
	if m.FieldCleared(pipelinetask.FieldResult) {
		fields = append(fields, pipelinetask.FieldResult)
	}
	if m.FieldCleared(pipelinetask.FieldConcurrencyKey) {
		fields = append(fields, pipelinetask.FieldConcurrencyKey)
	}
	if m.FieldCleared(pipelinetask.FieldErrorMessage) {
		fields = append(fields, pipelinetask.FieldErrorMessage)
	}
	if m.FieldCleared(pipelinetask.FieldPodID) {
		fields = append(fields, pipelinetask.FieldPodID)
	}
	if m.FieldCleared(pipelinetask.FieldStartedAt) {
		fields = append(fields, pipelinetask.FieldStartedAt)
	}
	if m.FieldCleared(pipelinetask.FieldCompletedAt) {
		fields = append(fields, pipelinetask.FieldCompletedAt)
	}
	if m.FieldCleared(pipelinetask.FieldLastInteractionAt) {
		fields = append(fields, pipelinetask.FieldLastInteractionAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PipelineTaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PipelineTaskMutation) ClearField(name string) error {
	switch name {
	case pipelinetask.FieldParams:
		m.ClearParams()
		return nil
	case pipelinetask.FieldResult:
		m.ClearResult()
		return nil
	case pipelinetask.FieldConcurrencyKey:
		m.ClearConcurrencyKey()
		return nil
	case pipelinetask.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case pipelinetask.FieldPodID:
		m.ClearPodID()
		return nil
	case pipelinetask.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case pipelinetask.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case pipelinetask.FieldLastInteractionAt:
		m.ClearLastInteractionAt()
		return nil
	}
	return fmt.Errorf("unknown PipelineTask nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PipelineTaskMutation) ResetField(name string) error {
	switch name {
	case pipelinetask.FieldTranscriptID:
		m.ResetTranscriptID()
		return nil
	case pipelinetask.FieldWorkflowRunID:
		m.ResetWorkflowRunID()
		return nil
	case pipelinetask.FieldName:
		m.ResetName()
		return nil
	case pipelinetask.FieldQueue:
		m.ResetQueue()
		return nil
	case pipelinetask.FieldStatus:
		m.ResetStatus()
		return nil
	case pipelinetask.FieldParams:
		m.ResetParams()
		return nil
	case pipelinetask.FieldResult:
		m.ResetResult()
		return nil
	case pipelinetask.FieldAttempt:
		m.ResetAttempt()
		return nil
	case pipelinetask.FieldMaxAttempts:
		m.ResetMaxAttempts()
		return nil
	case pipelinetask.FieldRunAfter:
		m.ResetRunAfter()
		return nil
	case pipelinetask.FieldTimeoutSeconds:
		m.ResetTimeoutSeconds()
		return nil
	case pipelinetask.FieldConcurrencyKey:
		m.ResetConcurrencyKey()
		return nil
	case pipelinetask.FieldMaxConcurrency:
		m.ResetMaxConcurrency()
		return nil
	case pipelinetask.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case pipelinetask.FieldPodID:
		m.ResetPodID()
		return nil
	case pipelinetask.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case pipelinetask.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case pipelinetask.FieldLastInteractionAt:
		m.ResetLastInteractionAt()
		return nil
	case pipelinetask.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case pipelinetask.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown PipelineTask field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PipelineTaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.transcript != nil {
		edges = append(edges, pipelinetask.EdgeTranscript)
	}
	if m.dependents != nil {
		edges = append(edges, pipelinetask.EdgeDependents)
	}
	if m.depends_on != nil {
		edges = append(edges, pipelinetask.EdgeDependsOn)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PipelineTaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case pipelinetask.EdgeTranscript:
		if id := m.transcript; id != nil {
			return []ent.Value{*id}
		}
	case pipelinetask.EdgeDependents:
		ids := make([]ent.Value, 0, len(m.dependents))
		for id := range m.dependents {
			ids = append(ids, id)
		}
		return ids
	case pipelinetask.EdgeDependsOn:
		ids := make([]ent.Value, 0, len(m.depends_on))
		for id := range m.depends_on {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PipelineTaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removeddependents != nil {
		edges = append(edges, pipelinetask.EdgeDependents)
	}
	if m.removeddepends_on != nil {
		edges = append(edges, pipelinetask.EdgeDependsOn)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PipelineTaskMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case pipelinetask.EdgeDependents:
		ids := make([]ent.Value, 0, len(m.removeddependents))
		for id := range m.removeddependents {
			ids = append(ids, id)
		}
		return ids
	case pipelinetask.EdgeDependsOn:
		ids := make([]ent.Value, 0, len(m.removeddepends_on))
		for id := range m.removeddepends_on {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PipelineTaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedtranscript {
		edges = append(edges, pipelinetask.EdgeTranscript)
	}
	if m.cleareddependents {
		edges = append(edges, pipelinetask.EdgeDependents)
	}
	if m.cleareddepends_on {
		edges = append(edges, pipelinetask.EdgeDependsOn)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PipelineTaskMutation) EdgeCleared(name string) bool {
	switch name {
	case pipelinetask.EdgeTranscript:
		return m.clearedtranscript
	case pipelinetask.EdgeDependents:
		return m.cleareddependents
	case pipelinetask.EdgeDependsOn:
		return m.cleareddepends_on
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PipelineTaskMutation) ClearEdge(name string) error {
	switch name {
	case pipelinetask.EdgeTranscript:
		m.ClearTranscript()
		return nil
	}
	return fmt.Errorf("unknown PipelineTask unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PipelineTaskMutation) ResetEdge(name string) error {
	switch name {
	case pipelinetask.EdgeTranscript:
		m.ResetTranscript()
		return nil
	case pipelinetask.EdgeDependents:
		m.ResetDependents()
		return nil
	case pipelinetask.EdgeDependsOn:
		m.ResetDependsOn()
		return nil
	}
	return fmt.Errorf("unknown PipelineTask edge %s", name)
}

// RoomMutation represents an operation that mutates the Room nodes in the graph.
type RoomMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	name               *string
	webhook_url        *string
	webhook_secret     *string
	zulip_auto_post    *bool
	zulip_stream       *string
	zulip_topic        *string
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	meetings           map[string]struct{}
	removedmeetings    map[string]struct{}
	clearedmeetings    bool
	transcripts        map[string]struct{}
	removedtranscripts map[string]struct{}
	clearedtranscripts bool
	done               bool
	oldValue           func(context.Context) (*Room, error)
	predicates         []predicate.Room
}

var _ ent.Mutation = (*RoomMutation)(nil)

// roomOption allows management of the mutation configuration using functional options.
type roomOption func(*RoomMutation)

// newRoomMutation creates new mutation for the Room entity.
func newRoomMutation(c config, op Op, opts ...roomOption) *RoomMutation {
	m := &RoomMutation{
		config:        c,
		op:            op,
		typ:           TypeRoom,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRoomID sets the ID field of the mutation.
func withRoomID(id string) roomOption {
	return func(m *RoomMutation) {
		var (
			err   error
			once  sync.Once
			value *Room
		)
		m.oldValue = func(ctx context.Context) (*Room, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Room.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRoom sets the old Room of the mutation.
func withRoom(node *Room) roomOption {
	return func(m *RoomMutation) {
		m.oldValue = func(context.Context) (*Room, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RoomMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RoomMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Room entities.
func (m *RoomMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RoomMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RoomMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Room.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *RoomMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *RoomMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Room entity.
// If the Room object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *RoomMutation) ResetName() {
	m.name = nil
}

// SetWebhookURL sets the "webhook_url" field.
func (m *RoomMutation) SetWebhookURL(s string) {
	m.webhook_url = &s
}

// WebhookURL returns the value of the "webhook_url" field in the mutation.
func (m *RoomMutation) WebhookURL() (r string, exists bool) {
	v := m.webhook_url
	if v == nil {
		return
	}
	return *v, true
}

// OldWebhookURL returns the old "webhook_url" field's value of the Room entity.
// If the Room object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomMutation) OldWebhookURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWebhookURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWebhookURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWebhookURL: %w", err)
	}
	return oldValue.WebhookURL, nil
}

// ClearWebhookURL clears the value of the "webhook_url" field.
func (m *RoomMutation) ClearWebhookURL() {
	m.webhook_url = nil
	m.clearedFields[room.FieldWebhookURL] = struct{}{}
}

// WebhookURLCleared returns if the "webhook_url" field was cleared in this mutation.
func (m *RoomMutation) WebhookURLCleared() bool {
	_, ok := m.clearedFields[room.FieldWebhookURL]
	return ok
}

// ResetWebhookURL resets all changes to the "webhook_url" field.
func (m *RoomMutation) ResetWebhookURL() {
	m.webhook_url = nil
	delete(m.clearedFields, room.FieldWebhookURL)
}

// SetWebhookSecret sets the "webhook_secret" field.
func (m *RoomMutation) SetWebhookSecret(s string) {
	m.webhook_secret = &s
}

// WebhookSecret returns the value of the "webhook_secret" field in the mutation.
func (m *RoomMutation) WebhookSecret() (r string, exists bool) {
	v := m.webhook_secret
	if v == nil {
		return
	}
	return *v, true
}

// OldWebhookSecret returns the old "webhook_secret" field's value of the Room entity.
// If the Room object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomMutation) OldWebhookSecret(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWebhookSecret is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWebhookSecret requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWebhookSecret: %w", err)
	}
	return oldValue.WebhookSecret, nil
}

// ClearWebhookSecret clears the value of the "webhook_secret" field.
func (m *RoomMutation) ClearWebhookSecret() {
	m.webhook_secret = nil
	m.clearedFields[room.FieldWebhookSecret] = struct{}{}
}

// WebhookSecretCleared returns if the "webhook_secret" field was cleared in this mutation.
func (m *RoomMutation) WebhookSecretCleared() bool {
	_, ok := m.clearedFields[room.FieldWebhookSecret]
	return ok
}

// ResetWebhookSecret resets all changes to the "webhook_secret" field.
func (m *RoomMutation) ResetWebhookSecret() {
	m.webhook_secret = nil
	delete(m.clearedFields, room.FieldWebhookSecret)
}

// SetZulipAutoPost sets the "zulip_auto_post" field.
func (m *RoomMutation) SetZulipAutoPost(b bool) {
	m.zulip_auto_post = &b
}

// ZulipAutoPost returns the value of the "zulip_auto_post" field in the mutation.
func (m *RoomMutation) ZulipAutoPost() (r bool, exists bool) {
	v := m.zulip_auto_post
	if v == nil {
		return
	}
	return *v, true
}

// OldZulipAutoPost returns the old "zulip_auto_post" field's value of the Room entity.
// If the Room object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomMutation) OldZulipAutoPost(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldZulipAutoPost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldZulipAutoPost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldZulipAutoPost: %w", err)
	}
	return oldValue.ZulipAutoPost, nil
}

// ResetZulipAutoPost resets all changes to the "zulip_auto_post" field.
func (m *RoomMutation) ResetZulipAutoPost() {
	m.zulip_auto_post = nil
}

// SetZulipStream sets the "zulip_stream" field.
func (m *RoomMutation) SetZulipStream(s string) {
	m.zulip_stream = &s
}

// ZulipStream returns the value of the "zulip_stream" field in the mutation.
func (m *RoomMutation) ZulipStream() (r string, exists bool) {
	v := m.zulip_stream
	if v == nil {
		return
	}
	return *v, true
}

// OldZulipStream returns the old "zulip_stream" field's value of the Room entity.
// If the Room object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomMutation) OldZulipStream(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldZulipStream is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldZulipStream requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldZulipStream: %w", err)
	}
	return oldValue.ZulipStream, nil
}

// ClearZulipStream clears the value of the "zulip_stream" field.
func (m *RoomMutation) ClearZulipStream() {
	m.zulip_stream = nil
	m.clearedFields[room.FieldZulipStream] = struct{}{}
}

// ZulipStreamCleared returns if the "zulip_stream" field was cleared in this mutation.
func (m *RoomMutation) ZulipStreamCleared() bool {
	_, ok := m.clearedFields[room.FieldZulipStream]
	return ok
}

// ResetZulipStream resets all changes to the "zulip_stream" field.
func (m *RoomMutation) ResetZulipStream() {
	m.zulip_stream = nil
	delete(m.clearedFields, room.FieldZulipStream)
}

// SetZulipTopic sets the "zulip_topic" field.
func (m *RoomMutation) SetZulipTopic(s string) {
	m.zulip_topic = &s
}

// ZulipTopic returns the value of the "zulip_topic" field in the mutation.
func (m *RoomMutation) ZulipTopic() (r string, exists bool) {
	v := m.zulip_topic
	if v == nil {
		return
	}
	return *v, true
}

// OldZulipTopic returns the old "zulip_topic" field's value of the Room entity.
// If the Room object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomMutation) OldZulipTopic(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldZulipTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldZulipTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldZulipTopic: %w", err)
	}
	return oldValue.ZulipTopic, nil
}

// ClearZulipTopic clears the value of the "zulip_topic" field.
func (m *RoomMutation) ClearZulipTopic() {
	m.zulip_topic = nil
	m.clearedFields[room.FieldZulipTopic] = struct{}{}
}

// ZulipTopicCleared returns if the "zulip_topic" field was cleared in this mutation.
func (m *RoomMutation) ZulipTopicCleared() bool {
	_, ok := m.clearedFields[room.FieldZulipTopic]
	return ok
}

// ResetZulipTopic resets all changes to the "zulip_topic" field.
func (m *RoomMutation) ResetZulipTopic() {
	m.zulip_topic = nil
	delete(m.clearedFields, room.FieldZulipTopic)
}

// SetCreatedAt sets the "created_at" field.
func (m *RoomMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RoomMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Room entity.
// If the Room object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RoomMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RoomMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RoomMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Room entity.
// If the Room object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RoomMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddMeetingIDs adds the "meetings" edge to the Meeting entity by ids.
func (m *RoomMutation) AddMeetingIDs(ids ...string) {
	if m.meetings == nil {
		m.meetings = make(map[string]struct{})
	}
	for i := range ids {
		m.meetings[ids[i]] = struct{}{}
	}
}

// ClearMeetings clears the "meetings" edge to the Meeting entity.
func (m *RoomMutation) ClearMeetings() {
	m.clearedmeetings = true
}

// MeetingsCleared reports if the "meetings" edge to the Meeting entity was cleared.
func (m *RoomMutation) MeetingsCleared() bool {
	return m.clearedmeetings
}

// RemoveMeetingIDs removes the "meetings" edge to the Meeting entity by IDs.
func (m *RoomMutation) RemoveMeetingIDs(ids ...string) {
	if m.removedmeetings == nil {
		m.removedmeetings = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.meetings, ids[i])
		m.removedmeetings[ids[i]] = struct{}{}
	}
}

// RemovedMeetings returns the removed IDs of the "meetings" edge to the Meeting entity.
func (m *RoomMutation) RemovedMeetingsIDs() (ids []string) {
	for id := range m.removedmeetings {
		ids = append(ids, id)
	}
	return
}

// MeetingsIDs returns the "meetings" edge IDs in the mutation.
func (m *RoomMutation) MeetingsIDs() (ids []string) {
	for id := range m.meetings {
		ids = append(ids, id)
	}
	return
}

// ResetMeetings resets all changes to the "meetings" edge.
func (m *RoomMutation) ResetMeetings() {
	m.meetings = nil
	m.clearedmeetings = false
	m.removedmeetings = nil
}

// AddTranscriptIDs adds the "transcripts" edge to the Transcript entity by ids.
func (m *RoomMutation) AddTranscriptIDs(ids ...string) {
	if m.transcripts == nil {
		m.transcripts = make(map[string]struct{})
	}
	for i := range ids {
		m.transcripts[ids[i]] = struct{}{}
	}
}

// ClearTranscripts clears the "transcripts" edge to the Transcript entity.
func (m *RoomMutation) ClearTranscripts() {
	m.clearedtranscripts = true
}

// TranscriptsCleared reports if the "transcripts" edge to the Transcript entity was cleared.
func (m *RoomMutation) TranscriptsCleared() bool {
	return m.clearedtranscripts
}

// RemoveTranscriptIDs removes the "transcripts" edge to the Transcript entity by IDs.
func (m *RoomMutation) RemoveTranscriptIDs(ids ...string) {
	if m.removedtranscripts == nil {
		m.removedtranscripts = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.transcripts, ids[i])
		m.removedtranscripts[ids[i]] = struct{}{}
	}
}

// RemovedTranscripts returns the removed IDs of the "transcripts" edge to the Transcript entity.
func (m *RoomMutation) RemovedTranscriptsIDs() (ids []string) {
	for id := range m.removedtranscripts {
		ids = append(ids, id)
	}
	return
}

// TranscriptsIDs returns the "transcripts" edge IDs in the mutation.
func (m *RoomMutation) TranscriptsIDs() (ids []string) {
	for id := range m.transcripts {
		ids = append(ids, id)
	}
	return
}

// ResetTranscripts resets all changes to the "transcripts" edge.
func (m *RoomMutation) ResetTranscripts() {
	m.transcripts = nil
	m.clearedtranscripts = false
	m.removedtranscripts = nil
}

// Where appends a list predicates to the RoomMutation builder.
func (m *RoomMutation) Where(ps ...predicate.Room) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RoomMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RoomMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Room, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RoomMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RoomMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Room).
func (m *RoomMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RoomMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.name != nil {
		fields = append(fields, room.FieldName)
	}
	if m.webhook_url != nil {
		fields = append(fields, room.FieldWebhookURL)
	}
	if m.webhook_secret != nil {
		fields = append(fields, room.FieldWebhookSecret)
	}
	if m.zulip_auto_post != nil {
		fields = append(fields, room.FieldZulipAutoPost)
	}
	if m.zulip_stream != nil {
		fields = append(fields, room.FieldZulipStream)
	}
	if m.zulip_topic != nil {
		fields = append(fields, room.FieldZulipTopic)
	}
	if m.created_at != nil {
		fields = append(fields, room.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, room.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RoomMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case room.FieldName:
		return m.Name()
	case room.FieldWebhookURL:
		return m.WebhookURL()
	case room.FieldWebhookSecret:
		return m.WebhookSecret()
	case room.FieldZulipAutoPost:
		return m.ZulipAutoPost()
	case room.FieldZulipStream:
		return m.ZulipStream()
	case room.FieldZulipTopic:
		return m.ZulipTopic()
	case room.FieldCreatedAt:
		return m.CreatedAt()
	case room.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RoomMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case room.FieldName:
		return m.OldName(ctx)
	case room.FieldWebhookURL:
		return m.OldWebhookURL(ctx)
	case room.FieldWebhookSecret:
		return m.OldWebhookSecret(ctx)
	case room.FieldZulipAutoPost:
		return m.OldZulipAutoPost(ctx)
	case room.FieldZulipStream:
		return m.OldZulipStream(ctx)
	case room.FieldZulipTopic:
		return m.OldZulipTopic(ctx)
	case room.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case room.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Room field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RoomMutation) SetField(name string, value ent.Value) error {
	switch name {
	case room.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case room.FieldWebhookURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWebhookURL(v)
		return nil
	case room.FieldWebhookSecret:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWebhookSecret(v)
		return nil
	case room.FieldZulipAutoPost:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetZulipAutoPost(v)
		return nil
	case room.FieldZulipStream:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetZulipStream(v)
		return nil
	case room.FieldZulipTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetZulipTopic(v)
		return nil
	case room.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case room.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Room field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RoomMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RoomMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RoomMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Room numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RoomMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(room.FieldWebhookURL) {
		fields = append(fields, room.FieldWebhookURL)
	}
	if m.FieldCleared(room.FieldWebhookSecret) {
		fields = append(fields, room.FieldWebhookSecret)
	}
	if m.FieldCleared(room.FieldZulipStream) {
		fields = append(fields, room.FieldZulipStream)
	}
	if m.FieldCleared(room.FieldZulipTopic) {
		fields = append(fields, room.FieldZulipTopic)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RoomMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RoomMutation) ClearField(name string) error {
	switch name {
	case room.FieldWebhookURL:
		m.ClearWebhookURL()
		return nil
	case room.FieldWebhookSecret:
		m.ClearWebhookSecret()
		return nil
	case room.FieldZulipStream:
		m.ClearZulipStream()
		return nil
	case room.FieldZulipTopic:
		m.ClearZulipTopic()
		return nil
	}
	return fmt.Errorf("unknown Room nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RoomMutation) ResetField(name string) error {
	switch name {
	case room.FieldName:
		m.ResetName()
		return nil
	case room.FieldWebhookURL:
		m.ResetWebhookURL()
		return nil
	case room.FieldWebhookSecret:
		m.ResetWebhookSecret()
		return nil
	case room.FieldZulipAutoPost:
		m.ResetZulipAutoPost()
		return nil
	case room.FieldZulipStream:
		m.ResetZulipStream()
		return nil
	case room.FieldZulipTopic:
		m.ResetZulipTopic()
		return nil
	case room.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case room.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Room field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RoomMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.meetings != nil {
		edges = append(edges, room.EdgeMeetings)
	}
	if m.transcripts != nil {
		edges = append(edges, room.EdgeTranscripts)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RoomMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case room.EdgeMeetings:
		ids := make([]ent.Value, 0, len(m.meetings))
		for id := range m.meetings {
			ids = append(ids, id)
		}
		return ids
	case room.EdgeTranscripts:
		ids := make([]ent.Value, 0, len(m.transcripts))
		for id := range m.transcripts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RoomMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedmeetings != nil {
		edges = append(edges, room.EdgeMeetings)
	}
	if m.removedtranscripts != nil {
		edges = append(edges, room.EdgeTranscripts)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RoomMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case room.EdgeMeetings:
		ids := make([]ent.Value, 0, len(m.removedmeetings))
		for id := range m.removedmeetings {
			ids = append(ids, id)
		}
		return ids
	case room.EdgeTranscripts:
		ids := make([]ent.Value, 0, len(m.removedtranscripts))
		for id := range m.removedtranscripts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RoomMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedmeetings {
		edges = append(edges, room.EdgeMeetings)
	}
	if m.clearedtranscripts {
		edges = append(edges, room.EdgeTranscripts)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RoomMutation) EdgeCleared(name string) bool {
	switch name {
	case room.EdgeMeetings:
		return m.clearedmeetings
	case room.EdgeTranscripts:
		return m.clearedtranscripts
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RoomMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Room unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RoomMutation) ResetEdge(name string) error {
	switch name {
	case room.EdgeMeetings:
		m.ResetMeetings()
		return nil
	case room.EdgeTranscripts:
		m.ResetTranscripts()
		return nil
	}
	return fmt.Errorf("unknown Room edge %s", name)
}

// TopicMutation represents an operation that mutates the Topic nodes in the graph.
type TopicMutation struct {
	config
	op                Op
	typ               string
	id                *string
	chunk_index       *int
	addchunk_index    *int
	title             *string
	summary           *string
	timestamp         *float64
	addtimestamp      *float64
	duration          *float64
	addduration       *float64
	words             *[]models.Word
	appendwords       []models.Word
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	transcript        *string
	clearedtranscript bool
	done              bool
	oldValue          func(context.Context) (*Topic, error)
	predicates        []predicate.Topic
}

var _ ent.Mutation = (*TopicMutation)(nil)

// topicOption allows management of the mutation configuration using functional options.
type topicOption func(*TopicMutation)

// newTopicMutation creates new mutation for the Topic entity.
func newTopicMutation(c config, op Op, opts ...topicOption) *TopicMutation {
	m := &TopicMutation{
		config:        c,
		op:            op,
		typ:           TypeTopic,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTopicID sets the ID field of the mutation.
func withTopicID(id string) topicOption {
	return func(m *TopicMutation) {
		var (
			err   error
			once  sync.Once
			value *Topic
		)
		m.oldValue = func(ctx context.Context) (*Topic, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Topic.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTopic sets the old Topic of the mutation.
func withTopic(node *Topic) topicOption {
	return func(m *TopicMutation) {
		m.oldValue = func(context.Context) (*Topic, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TopicMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TopicMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Topic entities.
func (m *TopicMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TopicMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TopicMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Topic.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTranscriptID sets the "transcript_id" field.
func (m *TopicMutation) SetTranscriptID(s string) {
	m.transcript = &s
}

// TranscriptID returns the value of the "transcript_id" field in the mutation.
func (m *TopicMutation) TranscriptID() (r string, exists bool) {
	v := m.transcript
	if v == nil {
		return
	}
	return *v, true
}

// OldTranscriptID returns the old "transcript_id" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldTranscriptID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTranscriptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTranscriptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTranscriptID: %w", err)
	}
	return oldValue.TranscriptID, nil
}

// ResetTranscriptID resets all changes to the "transcript_id" field.
func (m *TopicMutation) ResetTranscriptID() {
	m.transcript = nil
}

// SetChunkIndex sets the "chunk_index" field.
func (m *TopicMutation) SetChunkIndex(i int) {
	m.chunk_index = &i
	m.addchunk_index = nil
}

// ChunkIndex returns the value of the "chunk_index" field in the mutation.
func (m *TopicMutation) ChunkIndex() (r int, exists bool) {
	v := m.chunk_index
	if v == nil {
		return
	}
	return *v, true
}

// OldChunkIndex returns the old "chunk_index" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldChunkIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChunkIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChunkIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChunkIndex: %w", err)
	}
	return oldValue.ChunkIndex, nil
}

// AddChunkIndex adds i to the "chunk_index" field.
func (m *TopicMutation) AddChunkIndex(i int) {
	if m.addchunk_index != nil {
		*m.addchunk_index += i
	} else {
		m.addchunk_index = &i
	}
}

// AddedChunkIndex returns the value that was added to the "chunk_index" field in this mutation.
func (m *TopicMutation) AddedChunkIndex() (r int, exists bool) {
	v := m.addchunk_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetChunkIndex resets all changes to the "chunk_index" field.
func (m *TopicMutation) ResetChunkIndex() {
	m.chunk_index = nil
	m.addchunk_index = nil
}

// SetTitle sets the "title" field.
func (m *TopicMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *TopicMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *TopicMutation) ResetTitle() {
	m.title = nil
}

// SetSummary sets the "summary" field.
func (m *TopicMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *TopicMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ResetSummary resets all changes to the "summary" field.
func (m *TopicMutation) ResetSummary() {
	m.summary = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *TopicMutation) SetTimestamp(f float64) {
	m.timestamp = &f
	m.addtimestamp = nil
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *TopicMutation) Timestamp() (r float64, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldTimestamp(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// AddTimestamp adds f to the "timestamp" field.
func (m *TopicMutation) AddTimestamp(f float64) {
	if m.addtimestamp != nil {
		*m.addtimestamp += f
	} else {
		m.addtimestamp = &f
	}
}

// AddedTimestamp returns the value that was added to the "timestamp" field in this mutation.
func (m *TopicMutation) AddedTimestamp() (r float64, exists bool) {
	v := m.addtimestamp
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *TopicMutation) ResetTimestamp() {
	m.timestamp = nil
	m.addtimestamp = nil
}

// SetDuration sets the "duration" field.
func (m *TopicMutation) SetDuration(f float64) {
	m.duration = &f
	m.addduration = nil
}

// Duration returns the value of the "duration" field in the mutation.
func (m *TopicMutation) Duration() (r float64, exists bool) {
	v := m.duration
	if v == nil {
		return
	}
	return *v, true
}

// OldDuration returns the old "duration" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldDuration(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDuration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDuration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDuration: %w", err)
	}
	return oldValue.Duration, nil
}

// AddDuration adds f to the "duration" field.
func (m *TopicMutation) AddDuration(f float64) {
	if m.addduration != nil {
		*m.addduration += f
	} else {
		m.addduration = &f
	}
}

// AddedDuration returns the value that was added to the "duration" field in this mutation.
func (m *TopicMutation) AddedDuration() (r float64, exists bool) {
	v := m.addduration
	if v == nil {
		return
	}
	return *v, true
}

// ResetDuration resets all changes to the "duration" field.
func (m *TopicMutation) ResetDuration() {
	m.duration = nil
	m.addduration = nil
}

// SetWords sets the "words" field.
func (m *TopicMutation) SetWords(value []models.Word) {
	m.words = &value
	m.appendwords = nil
}

// Words returns the value of the "words" field in the mutation.
func (m *TopicMutation) Words() (r []models.Word, exists bool) {
	v := m.words
	if v == nil {
		return
	}
	return *v, true
}

// OldWords returns the old "words" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldWords(ctx context.Context) (v []models.Word, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWords is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWords requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWords: %w", err)
	}
	return oldValue.Words, nil
}

// AppendWords adds value to the "words" field.
func (m *TopicMutation) AppendWords(value []models.Word) {
	m.appendwords = append(m.appendwords, value...)
}

// AppendedWords returns the list of values that were appended to the "words" field in this mutation.
func (m *TopicMutation) AppendedWords() ([]models.Word, bool) {
	if len(m.appendwords) == 0 {
		return nil, false
	}
	return m.appendwords, true
}

// ClearWords clears the value of the "words" field.
func (m *TopicMutation) ClearWords() {
	m.words = nil
	m.appendwords = nil
	m.clearedFields[topic.FieldWords] = struct{}{}
}

// WordsCleared returns if the "words" field was cleared in this mutation.
func (m *TopicMutation) WordsCleared() bool {
	_, ok := m.clearedFields[topic.FieldWords]
	return ok
}

// ResetWords resets all changes to the "words" field.
func (m *TopicMutation) ResetWords() {
	m.words = nil
	m.appendwords = nil
	delete(m.clearedFields, topic.FieldWords)
}

// SetCreatedAt sets the "created_at" field.
func (m *TopicMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TopicMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TopicMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TopicMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TopicMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TopicMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearTranscript clears the "transcript" edge to the Transcript entity.
func (m *TopicMutation) ClearTranscript() {
	m.clearedtranscript = true
	m.clearedFields[topic.FieldTranscriptID] = struct{}{}
}

// TranscriptCleared reports if the "transcript" edge to the Transcript entity was cleared.
func (m *TopicMutation) TranscriptCleared() bool {
	return m.clearedtranscript
}

// TranscriptIDs returns the "transcript" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TranscriptID instead. It exists only for internal usage by the builders.
func (m *TopicMutation) TranscriptIDs() (ids []string) {
	if id := m.transcript; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTranscript resets all changes to the "transcript" edge.
func (m *TopicMutation) ResetTranscript() {
	m.transcript = nil
	m.clearedtranscript = false
}

// Where appends a list predicates to the TopicMutation builder.
func (m *TopicMutation) Where(ps ...predicate.Topic) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TopicMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TopicMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Topic, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TopicMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TopicMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Topic).
func (m *TopicMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TopicMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.transcript != nil {
		fields = append(fields, topic.FieldTranscriptID)
	}
	if m.chunk_index != nil {
		fields = append(fields, topic.FieldChunkIndex)
	}
	if m.title != nil {
		fields = append(fields, topic.FieldTitle)
	}
	if m.summary != nil {
		fields = append(fields, topic.FieldSummary)
	}
	if m.timestamp != nil {
		fields = append(fields, topic.FieldTimestamp)
	}
	if m.duration != nil {
		fields = append(fields, topic.FieldDuration)
	}
	if m.words != nil {
		fields = append(fields, topic.FieldWords)
	}
	if m.created_at != nil {
		fields = append(fields, topic.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, topic.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TopicMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case topic.FieldTranscriptID:
		return m.TranscriptID()
	case topic.FieldChunkIndex:
		return m.ChunkIndex()
	case topic.FieldTitle:
		return m.Title()
	case topic.FieldSummary:
		return m.Summary()
	case topic.FieldTimestamp:
		return m.Timestamp()
	case topic.FieldDuration:
		return m.Duration()
	case topic.FieldWords:
		return m.Words()
	case topic.FieldCreatedAt:
		return m.CreatedAt()
	case topic.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TopicMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case topic.FieldTranscriptID:
		return m.OldTranscriptID(ctx)
	case topic.FieldChunkIndex:
		return m.OldChunkIndex(ctx)
	case topic.FieldTitle:
		return m.OldTitle(ctx)
	case topic.FieldSummary:
		return m.OldSummary(ctx)
	case topic.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case topic.FieldDuration:
		return m.OldDuration(ctx)
	case topic.FieldWords:
		return m.OldWords(ctx)
	case topic.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case topic.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Topic field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicMutation) SetField(name string, value ent.Value) error {
	switch name {
	case topic.FieldTranscriptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTranscriptID(v)
		return nil
	case topic.FieldChunkIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChunkIndex(v)
		return nil
	case topic.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case topic.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case topic.FieldTimestamp:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case topic.FieldDuration:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDuration(v)
		return nil
	case topic.FieldWords:
		v, ok := value.([]models.Word)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWords(v)
		return nil
	case topic.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case topic.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Topic field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TopicMutation) AddedFields() []string {
	var fields []string
	if m.addchunk_index != nil {
		fields = append(fields, topic.FieldChunkIndex)
	}
	if m.addtimestamp != nil {
		fields = append(fields, topic.FieldTimestamp)
	}
	if m.addduration != nil {
		fields = append(fields, topic.FieldDuration)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TopicMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case topic.FieldChunkIndex:
		return m.AddedChunkIndex()
	case topic.FieldTimestamp:
		return m.AddedTimestamp()
	case topic.FieldDuration:
		return m.AddedDuration()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicMutation) AddField(name string, value ent.Value) error {
	switch name {
	case topic.FieldChunkIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChunkIndex(v)
		return nil
	case topic.FieldTimestamp:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimestamp(v)
		return nil
	case topic.FieldDuration:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDuration(v)
		return nil
	}
	return fmt.Errorf("unknown Topic numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TopicMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(topic.FieldWords) {
		fields = append(fields, topic.FieldWords)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TopicMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TopicMutation) ClearField(name string) error {
	switch name {
	case topic.FieldWords:
		m.ClearWords()
		return nil
	}
	return fmt.Errorf("unknown Topic nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TopicMutation) ResetField(name string) error {
	switch name {
	case topic.FieldTranscriptID:
		m.ResetTranscriptID()
		return nil
	case topic.FieldChunkIndex:
		m.ResetChunkIndex()
		return nil
	case topic.FieldTitle:
		m.ResetTitle()
		return nil
	case topic.FieldSummary:
		m.ResetSummary()
		return nil
	case topic.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case topic.FieldDuration:
		m.ResetDuration()
		return nil
	case topic.FieldWords:
		m.ResetWords()
		return nil
	case topic.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case topic.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Topic field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TopicMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.transcript != nil {
		edges = append(edges, topic.EdgeTranscript)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TopicMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case topic.EdgeTranscript:
		if id := m.transcript; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TopicMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TopicMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TopicMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtranscript {
		edges = append(edges, topic.EdgeTranscript)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TopicMutation) EdgeCleared(name string) bool {
	switch name {
	case topic.EdgeTranscript:
		return m.clearedtranscript
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TopicMutation) ClearEdge(name string) error {
	switch name {
	case topic.EdgeTranscript:
		m.ClearTranscript()
		return nil
	}
	return fmt.Errorf("unknown Topic unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TopicMutation) ResetEdge(name string) error {
	switch name {
	case topic.EdgeTranscript:
		m.ResetTranscript()
		return nil
	}
	return fmt.Errorf("unknown Topic edge %s", name)
}

// TranscriptMutation represents an operation that mutates the Transcript nodes in the graph.
type TranscriptMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	status              *transcript.Status
	name                *string
	source_language     *string
	target_language     *string
	title               *string
	short_summary       *string
	long_summary        *string
	action_items        **models.ActionItems
	duration_ms         *float64
	addduration_ms      *float64
	audio_location      *transcript.AudioLocation
	audio_deleted       *bool
	words               *[]models.Word
	appendwords         []models.Word
	workflow_run_id     *string
	zulip_message_id    *int64
	addzulip_message_id *int64
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	room                *string
	clearedroom         bool
	meeting             *string
	clearedmeeting      bool
	topics              map[string]struct{}
	removedtopics       map[string]struct{}
	clearedtopics       bool
	participants        map[string]struct{}
	removedparticipants map[string]struct{}
	clearedparticipants bool
	events              map[int]struct{}
	removedevents       map[int]struct{}
	clearedevents       bool
	tasks               map[string]struct{}
	removedtasks        map[string]struct{}
	clearedtasks        bool
	done                bool
	oldValue            func(context.Context) (*Transcript, error)
	predicates          []predicate.Transcript
}

var _ ent.Mutation = (*TranscriptMutation)(nil)

// transcriptOption allows management of the mutation configuration using functional options.
type transcriptOption func(*TranscriptMutation)

// newTranscriptMutation creates new mutation for the Transcript entity.
func newTranscriptMutation(c config, op Op, opts ...transcriptOption) *TranscriptMutation {
	m := &TranscriptMutation{
		config:        c,
		op:            op,
		typ:           TypeTranscript,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTranscriptID sets the ID field of the mutation.
func withTranscriptID(id string) transcriptOption {
	return func(m *TranscriptMutation) {
		var (
			err   error
			once  sync.Once
			value *Transcript
		)
		m.oldValue = func(ctx context.Context) (*Transcript, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Transcript.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTranscript sets the old Transcript of the mutation.
func withTranscript(node *Transcript) transcriptOption {
	return func(m *TranscriptMutation) {
		m.oldValue = func(context.Context) (*Transcript, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TranscriptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TranscriptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Transcript entities.
func (m *TranscriptMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TranscriptMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TranscriptMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Transcript.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStatus sets the "status" field.
func (m *TranscriptMutation) SetStatus(t transcript.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TranscriptMutation) Status() (r transcript.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldStatus(ctx context.Context) (v transcript.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TranscriptMutation) ResetStatus() {
	m.status = nil
}

// SetName sets the "name" field.
func (m *TranscriptMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TranscriptMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TranscriptMutation) ResetName() {
	m.name = nil
}

// SetSourceLanguage sets the "source_language" field.
func (m *TranscriptMutation) SetSourceLanguage(s string) {
	m.source_language = &s
}

// SourceLanguage returns the value of the "source_language" field in the mutation.
func (m *TranscriptMutation) SourceLanguage() (r string, exists bool) {
	v := m.source_language
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceLanguage returns the old "source_language" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldSourceLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceLanguage: %w", err)
	}
	return oldValue.SourceLanguage, nil
}

// ResetSourceLanguage resets all changes to the "source_language" field.
func (m *TranscriptMutation) ResetSourceLanguage() {
	m.source_language = nil
}

// SetTargetLanguage sets the "target_language" field.
func (m *TranscriptMutation) SetTargetLanguage(s string) {
	m.target_language = &s
}

// TargetLanguage returns the value of the "target_language" field in the mutation.
func (m *TranscriptMutation) TargetLanguage() (r string, exists bool) {
	v := m.target_language
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetLanguage returns the old "target_language" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldTargetLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetLanguage: %w", err)
	}
	return oldValue.TargetLanguage, nil
}

// ResetTargetLanguage resets all changes to the "target_language" field.
func (m *TranscriptMutation) ResetTargetLanguage() {
	m.target_language = nil
}

// SetTitle sets the "title" field.
func (m *TranscriptMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *TranscriptMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldTitle(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *TranscriptMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[transcript.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *TranscriptMutation) TitleCleared() bool {
	_, ok := m.clearedFields[transcript.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *TranscriptMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, transcript.FieldTitle)
}

// SetShortSummary sets the "short_summary" field.
func (m *TranscriptMutation) SetShortSummary(s string) {
	m.short_summary = &s
}

// ShortSummary returns the value of the "short_summary" field in the mutation.
func (m *TranscriptMutation) ShortSummary() (r string, exists bool) {
	v := m.short_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldShortSummary returns the old "short_summary" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldShortSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldShortSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldShortSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldShortSummary: %w", err)
	}
	return oldValue.ShortSummary, nil
}

// ClearShortSummary clears the value of the "short_summary" field.
func (m *TranscriptMutation) ClearShortSummary() {
	m.short_summary = nil
	m.clearedFields[transcript.FieldShortSummary] = struct{}{}
}

// ShortSummaryCleared returns if the "short_summary" field was cleared in this mutation.
func (m *TranscriptMutation) ShortSummaryCleared() bool {
	_, ok := m.clearedFields[transcript.FieldShortSummary]
	return ok
}

// ResetShortSummary resets all changes to the "short_summary" field.
func (m *TranscriptMutation) ResetShortSummary() {
	m.short_summary = nil
	delete(m.clearedFields, transcript.FieldShortSummary)
}

// SetLongSummary sets the "long_summary" field.
func (m *TranscriptMutation) SetLongSummary(s string) {
	m.long_summary = &s
}

// LongSummary returns the value of the "long_summary" field in the mutation.
func (m *TranscriptMutation) LongSummary() (r string, exists bool) {
	v := m.long_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldLongSummary returns the old "long_summary" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldLongSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLongSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLongSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLongSummary: %w", err)
	}
	return oldValue.LongSummary, nil
}

// ClearLongSummary clears the value of the "long_summary" field.
func (m *TranscriptMutation) ClearLongSummary() {
	m.long_summary = nil
	m.clearedFields[transcript.FieldLongSummary] = struct{}{}
}

// LongSummaryCleared returns if the "long_summary" field was cleared in this mutation.
func (m *TranscriptMutation) LongSummaryCleared() bool {
	_, ok := m.clearedFields[transcript.FieldLongSummary]
	return ok
}

// ResetLongSummary resets all changes to the "long_summary" field.
func (m *TranscriptMutation) ResetLongSummary() {
	m.long_summary = nil
	delete(m.clearedFields, transcript.FieldLongSummary)
}

// SetActionItems sets the "action_items" field.
func (m *TranscriptMutation) SetActionItems(mi *models.ActionItems) {
	m.action_items = &mi
}

// ActionItems returns the value of the "action_items" field in the mutation.
func (m *TranscriptMutation) ActionItems() (r *models.ActionItems, exists bool) {
	v := m.action_items
	if v == nil {
		return
	}
	return *v, true
}

// OldActionItems returns the old "action_items" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldActionItems(ctx context.Context) (v *models.ActionItems, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionItems is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionItems requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionItems: %w", err)
	}
	return oldValue.ActionItems, nil
}

// ClearActionItems clears the value of the "action_items" field.
func (m *TranscriptMutation) ClearActionItems() {
	m.action_items = nil
	m.clearedFields[transcript.FieldActionItems] = struct{}{}
}

// ActionItemsCleared returns if the "action_items" field was cleared in this mutation.
func (m *TranscriptMutation) ActionItemsCleared() bool {
	_, ok := m.clearedFields[transcript.FieldActionItems]
	return ok
}

// ResetActionItems resets all changes to the "action_items" field.
func (m *TranscriptMutation) ResetActionItems() {
	m.action_items = nil
	delete(m.clearedFields, transcript.FieldActionItems)
}

// SetDurationMs sets the "duration_ms" field.
func (m *TranscriptMutation) SetDurationMs(f float64) {
	m.duration_ms = &f
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *TranscriptMutation) DurationMs() (r float64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldDurationMs(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds f to the "duration_ms" field.
func (m *TranscriptMutation) AddDurationMs(f float64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += f
	} else {
		m.addduration_ms = &f
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *TranscriptMutation) AddedDurationMs() (r float64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *TranscriptMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[transcript.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *TranscriptMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[transcript.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *TranscriptMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, transcript.FieldDurationMs)
}

// SetAudioLocation sets the "audio_location" field.
func (m *TranscriptMutation) SetAudioLocation(tl transcript.AudioLocation) {
	m.audio_location = &tl
}

// AudioLocation returns the value of the "audio_location" field in the mutation.
func (m *TranscriptMutation) AudioLocation() (r transcript.AudioLocation, exists bool) {
	v := m.audio_location
	if v == nil {
		return
	}
	return *v, true
}

// OldAudioLocation returns the old "audio_location" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldAudioLocation(ctx context.Context) (v transcript.AudioLocation, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAudioLocation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAudioLocation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAudioLocation: %w", err)
	}
	return oldValue.AudioLocation, nil
}

// ResetAudioLocation resets all changes to the "audio_location" field.
func (m *TranscriptMutation) ResetAudioLocation() {
	m.audio_location = nil
}

// SetAudioDeleted sets the "audio_deleted" field.
func (m *TranscriptMutation) SetAudioDeleted(b bool) {
	m.audio_deleted = &b
}

// AudioDeleted returns the value of the "audio_deleted" field in the mutation.
func (m *TranscriptMutation) AudioDeleted() (r bool, exists bool) {
	v := m.audio_deleted
	if v == nil {
		return
	}
	return *v, true
}

// OldAudioDeleted returns the old "audio_deleted" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldAudioDeleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAudioDeleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAudioDeleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAudioDeleted: %w", err)
	}
	return oldValue.AudioDeleted, nil
}

// ResetAudioDeleted resets all changes to the "audio_deleted" field.
func (m *TranscriptMutation) ResetAudioDeleted() {
	m.audio_deleted = nil
}

// SetWords sets the "words" field.
func (m *TranscriptMutation) SetWords(value []models.Word) {
	m.words = &value
	m.appendwords = nil
}

// Words returns the value of the "words" field in the mutation.
func (m *TranscriptMutation) Words() (r []models.Word, exists bool) {
	v := m.words
	if v == nil {
		return
	}
	return *v, true
}

// OldWords returns the old "words" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldWords(ctx context.Context) (v []models.Word, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWords is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWords requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWords: %w", err)
	}
	return oldValue.Words, nil
}

// AppendWords adds value to the "words" field.
func (m *TranscriptMutation) AppendWords(value []models.Word) {
	m.appendwords = append(m.appendwords, value...)
}

// AppendedWords returns the list of values that were appended to the "words" field in this mutation.
func (m *TranscriptMutation) AppendedWords() ([]models.Word, bool) {
	if len(m.appendwords) == 0 {
		return nil, false
	}
	return m.appendwords, true
}

// ClearWords clears the value of the "words" field.
func (m *TranscriptMutation) ClearWords() {
	m.words = nil
	m.appendwords = nil
	m.clearedFields[transcript.FieldWords] = struct{}{}
}

// WordsCleared returns if the "words" field was cleared in this mutation.
func (m *TranscriptMutation) WordsCleared() bool {
	_, ok := m.clearedFields[transcript.FieldWords]
	return ok
}

// ResetWords resets all changes to the "words" field.
func (m *TranscriptMutation) ResetWords() {
	m.words = nil
	m.appendwords = nil
	delete(m.clearedFields, transcript.FieldWords)
}

// SetWorkflowRunID sets the "workflow_run_id" field.
func (m *TranscriptMutation) SetWorkflowRunID(s string) {
	m.workflow_run_id = &s
}

// WorkflowRunID returns the value of the "workflow_run_id" field in the mutation.
func (m *TranscriptMutation) WorkflowRunID() (r string, exists bool) {
	v := m.workflow_run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowRunID returns the old "workflow_run_id" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldWorkflowRunID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowRunID: %w", err)
	}
	return oldValue.WorkflowRunID, nil
}

// ClearWorkflowRunID clears the value of the "workflow_run_id" field.
func (m *TranscriptMutation) ClearWorkflowRunID() {
	m.workflow_run_id = nil
	m.clearedFields[transcript.FieldWorkflowRunID] = struct{}{}
}

// WorkflowRunIDCleared returns if the "workflow_run_id" field was cleared in this mutation.
func (m *TranscriptMutation) WorkflowRunIDCleared() bool {
	_, ok := m.clearedFields[transcript.FieldWorkflowRunID]
	return ok
}

// ResetWorkflowRunID resets all changes to the "workflow_run_id" field.
func (m *TranscriptMutation) ResetWorkflowRunID() {
	m.workflow_run_id = nil
	delete(m.clearedFields, transcript.FieldWorkflowRunID)
}

// SetZulipMessageID sets the "zulip_message_id" field.
func (m *TranscriptMutation) SetZulipMessageID(i int64) {
	m.zulip_message_id = &i
	m.addzulip_message_id = nil
}

// ZulipMessageID returns the value of the "zulip_message_id" field in the mutation.
func (m *TranscriptMutation) ZulipMessageID() (r int64, exists bool) {
	v := m.zulip_message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldZulipMessageID returns the old "zulip_message_id" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldZulipMessageID(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldZulipMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldZulipMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldZulipMessageID: %w", err)
	}
	return oldValue.ZulipMessageID, nil
}

// AddZulipMessageID adds i to the "zulip_message_id" field.
func (m *TranscriptMutation) AddZulipMessageID(i int64) {
	if m.addzulip_message_id != nil {
		*m.addzulip_message_id += i
	} else {
		m.addzulip_message_id = &i
	}
}

// AddedZulipMessageID returns the value that was added to the "zulip_message_id" field in this mutation.
func (m *TranscriptMutation) AddedZulipMessageID() (r int64, exists bool) {
	v := m.addzulip_message_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearZulipMessageID clears the value of the "zulip_message_id" field.
func (m *TranscriptMutation) ClearZulipMessageID() {
	m.zulip_message_id = nil
	m.addzulip_message_id = nil
	m.clearedFields[transcript.FieldZulipMessageID] = struct{}{}
}

// ZulipMessageIDCleared returns if the "zulip_message_id" field was cleared in this mutation.
func (m *TranscriptMutation) ZulipMessageIDCleared() bool {
	_, ok := m.clearedFields[transcript.FieldZulipMessageID]
	return ok
}

// ResetZulipMessageID resets all changes to the "zulip_message_id" field.
func (m *TranscriptMutation) ResetZulipMessageID() {
	m.zulip_message_id = nil
	m.addzulip_message_id = nil
	delete(m.clearedFields, transcript.FieldZulipMessageID)
}

// SetRoomID sets the "room_id" field.
func (m *TranscriptMutation) SetRoomID(s string) {
	m.room = &s
}

// RoomID returns the value of the "room_id" field in the mutation.
func (m *TranscriptMutation) RoomID() (r string, exists bool) {
	v := m.room
	if v == nil {
		return
	}
	return *v, true
}

// OldRoomID returns the old "room_id" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldRoomID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoomID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoomID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoomID: %w", err)
	}
	return oldValue.RoomID, nil
}

// ClearRoomID clears the value of the "room_id" field.
func (m *TranscriptMutation) ClearRoomID() {
	m.room = nil
	m.clearedFields[transcript.FieldRoomID] = struct{}{}
}

// RoomIDCleared returns if the "room_id" field was cleared in this mutation.
func (m *TranscriptMutation) RoomIDCleared() bool {
	_, ok := m.clearedFields[transcript.FieldRoomID]
	return ok
}

// ResetRoomID resets all changes to the "room_id" field.
func (m *TranscriptMutation) ResetRoomID() {
	m.room = nil
	delete(m.clearedFields, transcript.FieldRoomID)
}

// SetMeetingID sets the "meeting_id" field.
func (m *TranscriptMutation) SetMeetingID(s string) {
	m.meeting = &s
}

// MeetingID returns the value of the "meeting_id" field in the mutation.
func (m *TranscriptMutation) MeetingID() (r string, exists bool) {
	v := m.meeting
	if v == nil {
		return
	}
	return *v, true
}

// OldMeetingID returns the old "meeting_id" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldMeetingID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMeetingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMeetingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMeetingID: %w", err)
	}
	return oldValue.MeetingID, nil
}

// ClearMeetingID clears the value of the "meeting_id" field.
func (m *TranscriptMutation) ClearMeetingID() {
	m.meeting = nil
	m.clearedFields[transcript.FieldMeetingID] = struct{}{}
}

// MeetingIDCleared returns if the "meeting_id" field was cleared in this mutation.
func (m *TranscriptMutation) MeetingIDCleared() bool {
	_, ok := m.clearedFields[transcript.FieldMeetingID]
	return ok
}

// ResetMeetingID resets all changes to the "meeting_id" field.
func (m *TranscriptMutation) ResetMeetingID() {
	m.meeting = nil
	delete(m.clearedFields, transcript.FieldMeetingID)
}

// SetCreatedAt sets the "created_at" field.
func (m *TranscriptMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TranscriptMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TranscriptMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TranscriptMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TranscriptMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TranscriptMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearRoom clears the "room" edge to the Room entity.
func (m *TranscriptMutation) ClearRoom() {
	m.clearedroom = true
	m.clearedFields[transcript.FieldRoomID] = struct{}{}
}

// RoomCleared reports if the "room" edge to the Room entity was cleared.
func (m *TranscriptMutation) RoomCleared() bool {
	return m.RoomIDCleared() || m.clearedroom
}

// RoomIDs returns the "room" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RoomID instead. It exists only for internal usage by the builders.
func (m *TranscriptMutation) RoomIDs() (ids []string) {
	if id := m.room; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRoom resets all changes to the "room" edge.
func (m *TranscriptMutation) ResetRoom() {
	m.room = nil
	m.clearedroom = false
}

// ClearMeeting clears the "meeting" edge to the Meeting entity.
func (m *TranscriptMutation) ClearMeeting() {
	m.clearedmeeting = true
	m.clearedFields[transcript.FieldMeetingID] = struct{}{}
}

// MeetingCleared reports if the "meeting" edge to the Meeting entity was cleared.
func (m *TranscriptMutation) MeetingCleared() bool {
	return m.MeetingIDCleared() || m.clearedmeeting
}

// MeetingIDs returns the "meeting" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MeetingID instead. It exists only for internal usage by the builders.
func (m *TranscriptMutation) MeetingIDs() (ids []string) {
	if id := m.meeting; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMeeting resets all changes to the "meeting" edge.
func (m *TranscriptMutation) ResetMeeting() {
	m.meeting = nil
	m.clearedmeeting = false
}

// AddTopicIDs adds the "topics" edge to the Topic entity by ids.
func (m *TranscriptMutation) AddTopicIDs(ids ...string) {
	if m.topics == nil {
		m.topics = make(map[string]struct{})
	}
	for i := range ids {
		m.topics[ids[i]] = struct{}{}
	}
}

// ClearTopics clears the "topics" edge to the Topic entity.
func (m *TranscriptMutation) ClearTopics() {
	m.clearedtopics = true
}

// TopicsCleared reports if the "topics" edge to the Topic entity was cleared.
func (m *TranscriptMutation) TopicsCleared() bool {
	return m.clearedtopics
}

// RemoveTopicIDs removes the "topics" edge to the Topic entity by IDs.
func (m *TranscriptMutation) RemoveTopicIDs(ids ...string) {
	if m.removedtopics == nil {
		m.removedtopics = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.topics, ids[i])
		m.removedtopics[ids[i]] = struct{}{}
	}
}

// RemovedTopics returns the removed IDs of the "topics" edge to the Topic entity.
func (m *TranscriptMutation) RemovedTopicsIDs() (ids []string) {
	for id := range m.removedtopics {
		ids = append(ids, id)
	}
	return
}

// TopicsIDs returns the "topics" edge IDs in the mutation.
func (m *TranscriptMutation) TopicsIDs() (ids []string) {
	for id := range m.topics {
		ids = append(ids, id)
	}
	return
}

// ResetTopics resets all changes to the "topics" edge.
func (m *TranscriptMutation) ResetTopics() {
	m.topics = nil
	m.clearedtopics = false
	m.removedtopics = nil
}

// AddParticipantIDs adds the "participants" edge to the Participant entity by ids.
func (m *TranscriptMutation) AddParticipantIDs(ids ...string) {
	if m.participants == nil {
		m.participants = make(map[string]struct{})
	}
	for i := range ids {
		m.participants[ids[i]] = struct{}{}
	}
}

// ClearParticipants clears the "participants" edge to the Participant entity.
func (m *TranscriptMutation) ClearParticipants() {
	m.clearedparticipants = true
}

// ParticipantsCleared reports if the "participants" edge to the Participant entity was cleared.
func (m *TranscriptMutation) ParticipantsCleared() bool {
	return m.clearedparticipants
}

// RemoveParticipantIDs removes the "participants" edge to the Participant entity by IDs.
func (m *TranscriptMutation) RemoveParticipantIDs(ids ...string) {
	if m.removedparticipants == nil {
		m.removedparticipants = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.participants, ids[i])
		m.removedparticipants[ids[i]] = struct{}{}
	}
}

// RemovedParticipants returns the removed IDs of the "participants" edge to the Participant entity.
func (m *TranscriptMutation) RemovedParticipantsIDs() (ids []string) {
	for id := range m.removedparticipants {
		ids = append(ids, id)
	}
	return
}

// ParticipantsIDs returns the "participants" edge IDs in the mutation.
func (m *TranscriptMutation) ParticipantsIDs() (ids []string) {
	for id := range m.participants {
		ids = append(ids, id)
	}
	return
}

// ResetParticipants resets all changes to the "participants" edge.
func (m *TranscriptMutation) ResetParticipants() {
	m.participants = nil
	m.clearedparticipants = false
	m.removedparticipants = nil
}

// AddEventIDs adds the "events" edge to the Event entity by ids.
func (m *TranscriptMutation) AddEventIDs(ids ...int) {
	if m.events == nil {
		m.events = make(map[int]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the Event entity.
func (m *TranscriptMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the Event entity was cleared.
func (m *TranscriptMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the Event entity by IDs.
func (m *TranscriptMutation) RemoveEventIDs(ids ...int) {
	if m.removedevents == nil {
		m.removedevents = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the Event entity.
func (m *TranscriptMutation) RemovedEventsIDs() (ids []int) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *TranscriptMutation) EventsIDs() (ids []int) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *TranscriptMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// AddTaskIDs adds the "tasks" edge to the PipelineTask entity by ids.
func (m *TranscriptMutation) AddTaskIDs(ids ...string) {
	if m.tasks == nil {
		m.tasks = make(map[string]struct{})
	}
	for i := range ids {
		m.tasks[ids[i]] = struct{}{}
	}
}

// ClearTasks clears the "tasks" edge to the PipelineTask entity.
func (m *TranscriptMutation) ClearTasks() {
	m.clearedtasks = true
}

// TasksCleared reports if the "tasks" edge to the PipelineTask entity was cleared.
func (m *TranscriptMutation) TasksCleared() bool {
	return m.clearedtasks
}

// RemoveTaskIDs removes the "tasks" edge to the PipelineTask entity by IDs.
func (m *TranscriptMutation) RemoveTaskIDs(ids ...string) {
	if m.removedtasks == nil {
		m.removedtasks = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.tasks, ids[i])
		m.removedtasks[ids[i]] = struct{}{}
	}
}

// RemovedTasks returns the removed IDs of the "tasks" edge to the PipelineTask entity.
func (m *TranscriptMutation) RemovedTasksIDs() (ids []string) {
	for id := range m.removedtasks {
		ids = append(ids, id)
	}
	return
}

// TasksIDs returns the "tasks" edge IDs in the mutation.
func (m *TranscriptMutation) TasksIDs() (ids []string) {
	for id := range m.tasks {
		ids = append(ids, id)
	}
	return
}

// ResetTasks resets all changes to the "tasks" edge.
func (m *TranscriptMutation) ResetTasks() {
	m.tasks = nil
	m.clearedtasks = false
	m.removedtasks = nil
}

// Where appends a list predicates to the TranscriptMutation builder.
func (m *TranscriptMutation) Where(ps ...predicate.Transcript) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TranscriptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TranscriptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Transcript, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TranscriptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TranscriptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Transcript).
func (m *TranscriptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TranscriptMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.status != nil {
		fields = append(fields, transcript.FieldStatus)
	}
	if m.name != nil {
		fields = append(fields, transcript.FieldName)
	}
	if m.source_language != nil {
		fields = append(fields, transcript.FieldSourceLanguage)
	}
	if m.target_language != nil {
		fields = append(fields, transcript.FieldTargetLanguage)
	}
	if m.title != nil {
		fields = append(fields, transcript.FieldTitle)
	}
	if m.short_summary != nil {
		fields = append(fields, transcript.FieldShortSummary)
	}
	if m.long_summary != nil {
		fields = append(fields, transcript.FieldLongSummary)
	}
	if m.action_items != nil {
		fields = append(fields, transcript.FieldActionItems)
	}
	if m.duration_ms != nil {
		fields = append(fields, transcript.FieldDurationMs)
	}
	if m.audio_location != nil {
		fields = append(fields, transcript.FieldAudioLocation)
	}
	if m.audio_deleted != nil {
		fields = append(fields, transcript.FieldAudioDeleted)
	}
	if m.words != nil {
		fields = append(fields, transcript.FieldWords)
	}
	if m.workflow_run_id != nil {
		fields = append(fields, transcript.FieldWorkflowRunID)
	}
	if m.zulip_message_id != nil {
		fields = append(fields, transcript.FieldZulipMessageID)
	}
	if m.room != nil {
		fields = append(fields, transcript.FieldRoomID)
	}
	if m.meeting != nil {
		fields = append(fields, transcript.FieldMeetingID)
	}
	if m.created_at != nil {
		fields = append(fields, transcript.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, transcript.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TranscriptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case transcript.FieldStatus:
		return m.Status()
	case transcript.FieldName:
		return m.Name()
	case transcript.FieldSourceLanguage:
		return m.SourceLanguage()
	case transcript.FieldTargetLanguage:
		return m.TargetLanguage()
	case transcript.FieldTitle:
		return m.Title()
	case transcript.FieldShortSummary:
		return m.ShortSummary()
	case transcript.FieldLongSummary:
		return m.LongSummary()
	case transcript.FieldActionItems:
		return m.ActionItems()
	case transcript.FieldDurationMs:
		return m.DurationMs()
	case transcript.FieldAudioLocation:
		return m.AudioLocation()
	case transcript.FieldAudioDeleted:
		return m.AudioDeleted()
	case transcript.FieldWords:
		return m.Words()
	case transcript.FieldWorkflowRunID:
		return m.WorkflowRunID()
	case transcript.FieldZulipMessageID:
		return m.ZulipMessageID()
	case transcript.FieldRoomID:
		return m.RoomID()
	case transcript.FieldMeetingID:
		return m.MeetingID()
	case transcript.FieldCreatedAt:
		return m.CreatedAt()
	case transcript.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TranscriptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case transcript.FieldStatus:
		return m.OldStatus(ctx)
	case transcript.FieldName:
		return m.OldName(ctx)
	case transcript.FieldSourceLanguage:
		return m.OldSourceLanguage(ctx)
	case transcript.FieldTargetLanguage:
		return m.OldTargetLanguage(ctx)
	case transcript.FieldTitle:
		return m.OldTitle(ctx)
	case transcript.FieldShortSummary:
		return m.OldShortSummary(ctx)
	case transcript.FieldLongSummary:
		return m.OldLongSummary(ctx)
	case transcript.FieldActionItems:
		return m.OldActionItems(ctx)
	case transcript.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case transcript.FieldAudioLocation:
		return m.OldAudioLocation(ctx)
	case transcript.FieldAudioDeleted:
		return m.OldAudioDeleted(ctx)
	case transcript.FieldWords:
		return m.OldWords(ctx)
	case transcript.FieldWorkflowRunID:
		return m.OldWorkflowRunID(ctx)
	case transcript.FieldZulipMessageID:
		return m.OldZulipMessageID(ctx)
	case transcript.FieldRoomID:
		return m.OldRoomID(ctx)
	case transcript.FieldMeetingID:
		return m.OldMeetingID(ctx)
	case transcript.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case transcript.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Transcript field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TranscriptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case transcript.FieldStatus:
		v, ok := value.(transcript.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case transcript.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case transcript.FieldSourceLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceLanguage(v)
		return nil
	case transcript.FieldTargetLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetLanguage(v)
		return nil
	case transcript.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case transcript.FieldShortSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetShortSummary(v)
		return nil
	case transcript.FieldLongSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLongSummary(v)
		return nil
	case transcript.FieldActionItems:
		v, ok := value.(*models.ActionItems)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionItems(v)
		return nil
	case transcript.FieldDurationMs:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case transcript.FieldAudioLocation:
		v, ok := value.(transcript.AudioLocation)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAudioLocation(v)
		return nil
	case transcript.FieldAudioDeleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAudioDeleted(v)
		return nil
	case transcript.FieldWords:
		v, ok := value.([]models.Word)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWords(v)
		return nil
	case transcript.FieldWorkflowRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowRunID(v)
		return nil
	case transcript.FieldZulipMessageID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetZulipMessageID(v)
		return nil
	case transcript.FieldRoomID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoomID(v)
		return nil
	case transcript.FieldMeetingID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMeetingID(v)
		return nil
	case transcript.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case transcript.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Transcript field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TranscriptMutation) AddedFields() []string {
	var fields []string
	if m.addduration_ms != nil {
		fields = append(fields, transcript.FieldDurationMs)
	}
	if m.addzulip_message_id != nil {
		fields = append(fields, transcript.FieldZulipMessageID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TranscriptMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case transcript.FieldDurationMs:
		return m.AddedDurationMs()
	case transcript.FieldZulipMessageID:
		return m.AddedZulipMessageID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TranscriptMutation) AddField(name string, value ent.Value) error {
	switch name {
	case transcript.FieldDurationMs:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	case transcript.FieldZulipMessageID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddZulipMessageID(v)
		return nil
	}
	return fmt.Errorf("unknown Transcript numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TranscriptMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(transcript.FieldTitle) {
		fields = append(fields, transcript.FieldTitle)
	}
	if m.FieldCleared(transcript.FieldShortSummary) {
		fields = append(fields, transcript.FieldShortSummary)
	}
	if m.FieldCleared(transcript.FieldLongSummary) {
		fields = append(fields, transcript.FieldLongSummary)
	}
	if m.FieldCleared(transcript.FieldActionItems) {
		fields = append(fields, transcript.FieldActionItems)
	}
	if m.FieldCleared(transcript.FieldDurationMs) {
		fields = append(fields, transcript.FieldDurationMs)
	}
	if m.FieldCleared(transcript.FieldWords) {
		fields = append(fields, transcript.FieldWords)
	}
	if m.FieldCleared(transcript.FieldWorkflowRunID) {
		fields = append(fields, transcript.FieldWorkflowRunID)
	}
	if m.FieldCleared(transcript.FieldZulipMessageID) {
		fields = append(fields, transcript.FieldZulipMessageID)
	}
	if m.FieldCleared(transcript.FieldRoomID) {
		fields = append(fields, transcript.FieldRoomID)
	}
	if m.FieldCleared(transcript.FieldMeetingID) {
		fields = append(fields, transcript.FieldMeetingID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TranscriptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TranscriptMutation) ClearField(name string) error {
	switch name {
	case transcript.FieldTitle:
		m.ClearTitle()
		return nil
	case transcript.FieldShortSummary:
		m.ClearShortSummary()
		return nil
	case transcript.FieldLongSummary:
		m.ClearLongSummary()
		return nil
	case transcript.FieldActionItems:
		m.ClearActionItems()
		return nil
	case transcript.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	case transcript.FieldWords:
		m.ClearWords()
		return nil
	case transcript.FieldWorkflowRunID:
		m.ClearWorkflowRunID()
		return nil
	case transcript.FieldZulipMessageID:
		m.ClearZulipMessageID()
		return nil
	case transcript.FieldRoomID:
		m.ClearRoomID()
		return nil
	case transcript.FieldMeetingID:
		m.ClearMeetingID()
		return nil
	}
	return fmt.Errorf("unknown Transcript nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TranscriptMutation) ResetField(name string) error {
	switch name {
	case transcript.FieldStatus:
		m.ResetStatus()
		return nil
	case transcript.FieldName:
		m.ResetName()
		return nil
	case transcript.FieldSourceLanguage:
		m.ResetSourceLanguage()
		return nil
	case transcript.FieldTargetLanguage:
		m.ResetTargetLanguage()
		return nil
	case transcript.FieldTitle:
		m.ResetTitle()
		return nil
	case transcript.FieldShortSummary:
		m.ResetShortSummary()
		return nil
	case transcript.FieldLongSummary:
		m.ResetLongSummary()
		return nil
	case transcript.FieldActionItems:
		m.ResetActionItems()
		return nil
	case transcript.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case transcript.FieldAudioLocation:
		m.ResetAudioLocation()
		return nil
	case transcript.FieldAudioDeleted:
		m.ResetAudioDeleted()
		return nil
	case transcript.FieldWords:
		m.ResetWords()
		return nil
	case transcript.FieldWorkflowRunID:
		m.ResetWorkflowRunID()
		return nil
	case transcript.FieldZulipMessageID:
		m.ResetZulipMessageID()
		return nil
	case transcript.FieldRoomID:
		m.ResetRoomID()
		return nil
	case transcript.FieldMeetingID:
		m.ResetMeetingID()
		return nil
	case transcript.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case transcript.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Transcript field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TranscriptMutation) AddedEdges() []string {
	edges := make([]string, 0, 6)
	if m.room != nil {
		edges = append(edges, transcript.EdgeRoom)
	}
	if m.meeting != nil {
		edges = append(edges, transcript.EdgeMeeting)
	}
	if m.topics != nil {
		edges = append(edges, transcript.EdgeTopics)
	}
	if m.participants != nil {
		edges = append(edges, transcript.EdgeParticipants)
	}
	if m.events != nil {
		edges = append(edges, transcript.EdgeEvents)
	}
	if m.tasks != nil {
		edges = append(edges, transcript.EdgeTasks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TranscriptMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case transcript.EdgeRoom:
		if id := m.room; id != nil {
			return []ent.Value{*id}
		}
	case transcript.EdgeMeeting:
		if id := m.meeting; id != nil {
			return []ent.Value{*id}
		}
	case transcript.EdgeTopics:
		ids := make([]ent.Value, 0, len(m.topics))
		for id := range m.topics {
			ids = append(ids, id)
		}
		return ids
	case transcript.EdgeParticipants:
		ids := make([]ent.Value, 0, len(m.participants))
		for id := range m.participants {
			ids = append(ids, id)
		}
		return ids
	case transcript.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	case transcript.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.tasks))
		for id := range m.tasks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TranscriptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 6)
	if m.removedtopics != nil {
		edges = append(edges, transcript.EdgeTopics)
	}
	if m.removedparticipants != nil {
		edges = append(edges, transcript.EdgeParticipants)
	}
	if m.removedevents != nil {
		edges = append(edges, transcript.EdgeEvents)
	}
	if m.removedtasks != nil {
		edges = append(edges, transcript.EdgeTasks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TranscriptMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case transcript.EdgeTopics:
		ids := make([]ent.Value, 0, len(m.removedtopics))
		for id := range m.removedtopics {
			ids = append(ids, id)
		}
		return ids
	case transcript.EdgeParticipants:
		ids := make([]ent.Value, 0, len(m.removedparticipants))
		for id := range m.removedparticipants {
			ids = append(ids, id)
		}
		return ids
	case transcript.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	case transcript.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.removedtasks))
		for id := range m.removedtasks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TranscriptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 6)
	if m.clearedroom {
		edges = append(edges, transcript.EdgeRoom)
	}
	if m.clearedmeeting {
		edges = append(edges, transcript.EdgeMeeting)
	}
	if m.clearedtopics {
		edges = append(edges, transcript.EdgeTopics)
	}
	if m.clearedparticipants {
		edges = append(edges, transcript.EdgeParticipants)
	}
	if m.clearedevents {
		edges = append(edges, transcript.EdgeEvents)
	}
	if m.clearedtasks {
		edges = append(edges, transcript.EdgeTasks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TranscriptMutation) EdgeCleared(name string) bool {
	switch name {
	case transcript.EdgeRoom:
		return m.clearedroom
	case transcript.EdgeMeeting:
		return m.clearedmeeting
	case transcript.EdgeTopics:
		return m.clearedtopics
	case transcript.EdgeParticipants:
		return m.clearedparticipants
	case transcript.EdgeEvents:
		return m.clearedevents
	case transcript.EdgeTasks:
		return m.clearedtasks
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TranscriptMutation) ClearEdge(name string) error {
	switch name {
	case transcript.EdgeRoom:
		m.ClearRoom()
		return nil
	case transcript.EdgeMeeting:
		m.ClearMeeting()
		return nil
	}
	return fmt.Errorf("unknown Transcript unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TranscriptMutation) ResetEdge(name string) error {
	switch name {
	case transcript.EdgeRoom:
		m.ResetRoom()
		return nil
	case transcript.EdgeMeeting:
		m.ResetMeeting()
		return nil
	case transcript.EdgeTopics:
		m.ResetTopics()
		return nil
	case transcript.EdgeParticipants:
		m.ResetParticipants()
		return nil
	case transcript.EdgeEvents:
		m.ResetEvents()
		return nil
	case transcript.EdgeTasks:
		m.ResetTasks()
		return nil
	}
	return fmt.Errorf("unknown Transcript edge %s", name)
}
