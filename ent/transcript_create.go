// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/monadical-sas/reflector/ent/event"
	"github.com/monadical-sas/reflector/ent/meeting"
	"github.com/monadical-sas/reflector/ent/participant"
	"github.com/monadical-sas/reflector/ent/pipelinetask"
	"github.com/monadical-sas/reflector/ent/room"
	"github.com/monadical-sas/reflector/ent/topic"
	"github.com/monadical-sas/reflector/ent/transcript"
	"github.com/monadical-sas/reflector/pkg/models"
)

// TranscriptCreate is the builder for creating a Transcript entity.
type TranscriptCreate struct {
	config
	mutation *TranscriptMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetStatus sets the "status" field.
func (_c *TranscriptCreate) SetStatus(v transcript.Status) *TranscriptCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TranscriptCreate) SetNillableStatus(v *transcript.Status) *TranscriptCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *TranscriptCreate) SetName(v string) *TranscriptCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_c *TranscriptCreate) SetNillableName(v *string) *TranscriptCreate {
	if v != nil {
		_c.SetName(*v)
	}
	return _c
}

// SetSourceLanguage sets the "source_language" field.
func (_c *TranscriptCreate) SetSourceLanguage(v string) *TranscriptCreate {
	_c.mutation.SetSourceLanguage(v)
	return _c
}

// SetNillableSourceLanguage sets the "source_language" field if the given value is not nil.
func (_c *TranscriptCreate) SetNillableSourceLanguage(v *string) *TranscriptCreate {
	if v != nil {
		_c.SetSourceLanguage(*v)
	}
	return _c
}

// SetTargetLanguage sets the "target_language" field.
func (_c *TranscriptCreate) SetTargetLanguage(v string) *TranscriptCreate {
	_c.mutation.SetTargetLanguage(v)
	return _c
}

// SetNillableTargetLanguage sets the "target_language" field if the given value is not nil.
func (_c *TranscriptCreate) SetNillableTargetLanguage(v *string) *TranscriptCreate {
	if v != nil {
		_c.SetTargetLanguage(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *TranscriptCreate) SetTitle(v string) *TranscriptCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *TranscriptCreate) SetNillableTitle(v *string) *TranscriptCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetShortSummary sets the "short_summary" field.
func (_c *TranscriptCreate) SetShortSummary(v string) *TranscriptCreate {
	_c.mutation.SetShortSummary(v)
	return _c
}

// SetNillableShortSummary sets the "short_summary" field if the given value is not nil.
func (_c *TranscriptCreate) SetNillableShortSummary(v *string) *TranscriptCreate {
	if v != nil {
		_c.SetShortSummary(*v)
	}
	return _c
}

// SetLongSummary sets the "long_summary" field.
func (_c *TranscriptCreate) SetLongSummary(v string) *TranscriptCreate {
	_c.mutation.SetLongSummary(v)
	return _c
}

// SetNillableLongSummary sets the "long_summary" field if the given value is not nil.
func (_c *TranscriptCreate) SetNillableLongSummary(v *string) *TranscriptCreate {
	if v != nil {
		_c.SetLongSummary(*v)
	}
	return _c
}

// SetActionItems sets the "action_items" field.
func (_c *TranscriptCreate) SetActionItems(v *models.ActionItems) *TranscriptCreate {
	_c.mutation.SetActionItems(v)
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *TranscriptCreate) SetDurationMs(v float64) *TranscriptCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *TranscriptCreate) SetNillableDurationMs(v *float64) *TranscriptCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetAudioLocation sets the "audio_location" field.
func (_c *TranscriptCreate) SetAudioLocation(v transcript.AudioLocation) *TranscriptCreate {
	_c.mutation.SetAudioLocation(v)
	return _c
}

// SetNillableAudioLocation sets the "audio_location" field if the given value is not nil.
func (_c *TranscriptCreate) SetNillableAudioLocation(v *transcript.AudioLocation) *TranscriptCreate {
	if v != nil {
		_c.SetAudioLocation(*v)
	}
	return _c
}

// SetAudioDeleted sets the "audio_deleted" field.
func (_c *TranscriptCreate) SetAudioDeleted(v bool) *TranscriptCreate {
	_c.mutation.SetAudioDeleted(v)
	return _c
}

// SetNillableAudioDeleted sets the "audio_deleted" field if the given value is not nil.
func (_c *TranscriptCreate) SetNillableAudioDeleted(v *bool) *TranscriptCreate {
	if v != nil {
		_c.SetAudioDeleted(*v)
	}
	return _c
}

// SetWords sets the "words" field.
func (_c *TranscriptCreate) SetWords(v []models.Word) *TranscriptCreate {
	_c.mutation.SetWords(v)
	return _c
}

// SetWorkflowRunID sets the "workflow_run_id" field.
func (_c *TranscriptCreate) SetWorkflowRunID(v string) *TranscriptCreate {
	_c.mutation.SetWorkflowRunID(v)
	return _c
}

// SetNillableWorkflowRunID sets the "workflow_run_id" field if the given value is not nil.
func (_c *TranscriptCreate) SetNillableWorkflowRunID(v *string) *TranscriptCreate {
	if v != nil {
		_c.SetWorkflowRunID(*v)
	}
	return _c
}

// SetZulipMessageID sets the "zulip_message_id" field.
func (_c *TranscriptCreate) SetZulipMessageID(v int64) *TranscriptCreate {
	_c.mutation.SetZulipMessageID(v)
	return _c
}

// SetNillableZulipMessageID sets the "zulip_message_id" field if the given value is not nil.
func (_c *TranscriptCreate) SetNillableZulipMessageID(v *int64) *TranscriptCreate {
	if v != nil {
		_c.SetZulipMessageID(*v)
	}
	return _c
}

// SetRoomID sets the "room_id" field.
func (_c *TranscriptCreate) SetRoomID(v string) *TranscriptCreate {
	_c.mutation.SetRoomID(v)
	return _c
}

// SetNillableRoomID sets the "room_id" field if the given value is not nil.
func (_c *TranscriptCreate) SetNillableRoomID(v *string) *TranscriptCreate {
	if v != nil {
		_c.SetRoomID(*v)
	}
	return _c
}

// SetMeetingID sets the "meeting_id" field.
func (_c *TranscriptCreate) SetMeetingID(v string) *TranscriptCreate {
	_c.mutation.SetMeetingID(v)
	return _c
}

// SetNillableMeetingID sets the "meeting_id" field if the given value is not nil.
func (_c *TranscriptCreate) SetNillableMeetingID(v *string) *TranscriptCreate {
	if v != nil {
		_c.SetMeetingID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TranscriptCreate) SetCreatedAt(v time.Time) *TranscriptCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TranscriptCreate) SetNillableCreatedAt(v *time.Time) *TranscriptCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TranscriptCreate) SetUpdatedAt(v time.Time) *TranscriptCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TranscriptCreate) SetNillableUpdatedAt(v *time.Time) *TranscriptCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TranscriptCreate) SetID(v string) *TranscriptCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRoom sets the "room" edge to the Room entity.
func (_c *TranscriptCreate) SetRoom(v *Room) *TranscriptCreate {
	return _c.SetRoomID(v.ID)
}

// SetMeeting sets the "meeting" edge to the Meeting entity.
func (_c *TranscriptCreate) SetMeeting(v *Meeting) *TranscriptCreate {
	return _c.SetMeetingID(v.ID)
}

// AddTopicIDs adds the "topics" edge to the Topic entity by IDs.
func (_c *TranscriptCreate) AddTopicIDs(ids ...string) *TranscriptCreate {
	_c.mutation.AddTopicIDs(ids...)
	return _c
}

// AddTopics adds the "topics" edges to the Topic entity.
func (_c *TranscriptCreate) AddTopics(v ...*Topic) *TranscriptCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTopicIDs(ids...)
}

// AddParticipantIDs adds the "participants" edge to the Participant entity by IDs.
func (_c *TranscriptCreate) AddParticipantIDs(ids ...string) *TranscriptCreate {
	_c.mutation.AddParticipantIDs(ids...)
	return _c
}

// AddParticipants adds the "participants" edges to the Participant entity.
func (_c *TranscriptCreate) AddParticipants(v ...*Participant) *TranscriptCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddParticipantIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_c *TranscriptCreate) AddEventIDs(ids ...int) *TranscriptCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the Event entity.
func (_c *TranscriptCreate) AddEvents(v ...*Event) *TranscriptCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// AddTaskIDs adds the "tasks" edge to the PipelineTask entity by IDs.
func (_c *TranscriptCreate) AddTaskIDs(ids ...string) *TranscriptCreate {
	_c.mutation.AddTaskIDs(ids...)
	return _c
}

// AddTasks adds the "tasks" edges to the PipelineTask entity.
func (_c *TranscriptCreate) AddTasks(v ...*PipelineTask) *TranscriptCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTaskIDs(ids...)
}

// Mutation returns the TranscriptMutation object of the builder.
func (_c *TranscriptCreate) Mutation() *TranscriptMutation {
	return _c.mutation
}

// Save creates the Transcript in the database.
func (_c *TranscriptCreate) Save(ctx context.Context) (*Transcript, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TranscriptCreate) SaveX(ctx context.Context) *Transcript {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TranscriptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TranscriptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TranscriptCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := transcript.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Name(); !ok {
		v := transcript.DefaultName
		_c.mutation.SetName(v)
	}
	if _, ok := _c.mutation.SourceLanguage(); !ok {
		v := transcript.DefaultSourceLanguage
		_c.mutation.SetSourceLanguage(v)
	}
	if _, ok := _c.mutation.TargetLanguage(); !ok {
		v := transcript.DefaultTargetLanguage
		_c.mutation.SetTargetLanguage(v)
	}
	if _, ok := _c.mutation.AudioLocation(); !ok {
		v := transcript.DefaultAudioLocation
		_c.mutation.SetAudioLocation(v)
	}
	if _, ok := _c.mutation.AudioDeleted(); !ok {
		v := transcript.DefaultAudioDeleted
		_c.mutation.SetAudioDeleted(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := transcript.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := transcript.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TranscriptCreate) check() error {
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Transcript.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := transcript.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Transcript.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Transcript.name"`)}
	}
	if _, ok := _c.mutation.SourceLanguage(); !ok {
		return &ValidationError{Name: "source_language", err: errors.New(`ent: missing required field "Transcript.source_language"`)}
	}
	if _, ok := _c.mutation.TargetLanguage(); !ok {
		return &ValidationError{Name: "target_language", err: errors.New(`ent: missing required field "Transcript.target_language"`)}
	}
	if _, ok := _c.mutation.AudioLocation(); !ok {
		return &ValidationError{Name: "audio_location", err: errors.New(`ent: missing required field "Transcript.audio_location"`)}
	}
	if v, ok := _c.mutation.AudioLocation(); ok {
		if err := transcript.AudioLocationValidator(v); err != nil {
			return &ValidationError{Name: "audio_location", err: fmt.Errorf(`ent: validator failed for field "Transcript.audio_location": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AudioDeleted(); !ok {
		return &ValidationError{Name: "audio_deleted", err: errors.New(`ent: missing required field "Transcript.audio_deleted"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Transcript.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Transcript.updated_at"`)}
	}
	return nil
}

func (_c *TranscriptCreate) sqlSave(ctx context.Context) (*Transcript, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Transcript.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TranscriptCreate) createSpec() (*Transcript, *sqlgraph.CreateSpec) {
	var (
		_node = &Transcript{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(transcript.Table, sqlgraph.NewFieldSpec(transcript.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(transcript.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(transcript.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.SourceLanguage(); ok {
		_spec.SetField(transcript.FieldSourceLanguage, field.TypeString, value)
		_node.SourceLanguage = value
	}
	if value, ok := _c.mutation.TargetLanguage(); ok {
		_spec.SetField(transcript.FieldTargetLanguage, field.TypeString, value)
		_node.TargetLanguage = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(transcript.FieldTitle, field.TypeString, value)
		_node.Title = &value
	}
	if value, ok := _c.mutation.ShortSummary(); ok {
		_spec.SetField(transcript.FieldShortSummary, field.TypeString, value)
		_node.ShortSummary = &value
	}
	if value, ok := _c.mutation.LongSummary(); ok {
		_spec.SetField(transcript.FieldLongSummary, field.TypeString, value)
		_node.LongSummary = &value
	}
	if value, ok := _c.mutation.ActionItems(); ok {
		_spec.SetField(transcript.FieldActionItems, field.TypeJSON, value)
		_node.ActionItems = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(transcript.FieldDurationMs, field.TypeFloat64, value)
		_node.DurationMs = &value
	}
	if value, ok := _c.mutation.AudioLocation(); ok {
		_spec.SetField(transcript.FieldAudioLocation, field.TypeEnum, value)
		_node.AudioLocation = value
	}
	if value, ok := _c.mutation.AudioDeleted(); ok {
		_spec.SetField(transcript.FieldAudioDeleted, field.TypeBool, value)
		_node.AudioDeleted = value
	}
	if value, ok := _c.mutation.Words(); ok {
		_spec.SetField(transcript.FieldWords, field.TypeJSON, value)
		_node.Words = value
	}
	if value, ok := _c.mutation.WorkflowRunID(); ok {
		_spec.SetField(transcript.FieldWorkflowRunID, field.TypeString, value)
		_node.WorkflowRunID = &value
	}
	if value, ok := _c.mutation.ZulipMessageID(); ok {
		_spec.SetField(transcript.FieldZulipMessageID, field.TypeInt64, value)
		_node.ZulipMessageID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(transcript.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(transcript.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.RoomIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   transcript.RoomTable,
			Columns: []string{transcript.RoomColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(room.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RoomID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MeetingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   transcript.MeetingTable,
			Columns: []string{transcript.MeetingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(meeting.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.MeetingID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TopicsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   transcript.TopicsTable,
			Columns: []string{transcript.TopicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topic.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ParticipantsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   transcript.ParticipantsTable,
			Columns: []string{transcript.ParticipantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(participant.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   transcript.EventsTable,
			Columns: []string{transcript.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   transcript.TasksTable,
			Columns: []string{transcript.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipelinetask.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Transcript.Create().
//		SetStatus(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TranscriptUpsert) {
//			SetStatus(v+v).
//		}).
//		Exec(ctx)
func (_c *TranscriptCreate) OnConflict(opts ...sql.ConflictOption) *TranscriptUpsertOne {
	_c.conflict = opts
	return &TranscriptUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Transcript.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TranscriptCreate) OnConflictColumns(columns ...string) *TranscriptUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TranscriptUpsertOne{
		create: _c,
	}
}

type (
	// TranscriptUpsertOne is the builder for "upsert"-ing
	//  one Transcript node.
	TranscriptUpsertOne struct {
		create *TranscriptCreate
	}

	// TranscriptUpsert is the "OnConflict" setter.
	TranscriptUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *TranscriptUpsert) SetStatus(v transcript.Status) *TranscriptUpsert {
	u.Set(transcript.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TranscriptUpsert) UpdateStatus() *TranscriptUpsert {
	u.SetExcluded(transcript.FieldStatus)
	return u
}

// SetName sets the "name" field.
func (u *TranscriptUpsert) SetName(v string) *TranscriptUpsert {
	u.Set(transcript.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *TranscriptUpsert) UpdateName() *TranscriptUpsert {
	u.SetExcluded(transcript.FieldName)
	return u
}

// SetSourceLanguage sets the "source_language" field.
func (u *TranscriptUpsert) SetSourceLanguage(v string) *TranscriptUpsert {
	u.Set(transcript.FieldSourceLanguage, v)
	return u
}

// UpdateSourceLanguage sets the "source_language" field to the value that was provided on create.
func (u *TranscriptUpsert) UpdateSourceLanguage() *TranscriptUpsert {
	u.SetExcluded(transcript.FieldSourceLanguage)
	return u
}

// SetTargetLanguage sets the "target_language" field.
func (u *TranscriptUpsert) SetTargetLanguage(v string) *TranscriptUpsert {
	u.Set(transcript.FieldTargetLanguage, v)
	return u
}

// UpdateTargetLanguage sets the "target_language" field to the value that was provided on create.
func (u *TranscriptUpsert) UpdateTargetLanguage() *TranscriptUpsert {
	u.SetExcluded(transcript.FieldTargetLanguage)
	return u
}

// SetTitle sets the "title" field.
func (u *TranscriptUpsert) SetTitle(v string) *TranscriptUpsert {
	u.Set(transcript.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *TranscriptUpsert) UpdateTitle() *TranscriptUpsert {
	u.SetExcluded(transcript.FieldTitle)
	return u
}

// ClearTitle clears the value of the "title" field.
func (u *TranscriptUpsert) ClearTitle() *TranscriptUpsert {
	u.SetNull(transcript.FieldTitle)
	return u
}

// SetShortSummary sets the "short_summary" field.
func (u *TranscriptUpsert) SetShortSummary(v string) *TranscriptUpsert {
	u.Set(transcript.FieldShortSummary, v)
	return u
}

// UpdateShortSummary sets the "short_summary" field to the value that was provided on create.
func (u *TranscriptUpsert) UpdateShortSummary() *TranscriptUpsert {
	u.SetExcluded(transcript.FieldShortSummary)
	return u
}

// ClearShortSummary clears the value of the "short_summary" field.
func (u *TranscriptUpsert) ClearShortSummary() *TranscriptUpsert {
	u.SetNull(transcript.FieldShortSummary)
	return u
}

// SetLongSummary sets the "long_summary" field.
func (u *TranscriptUpsert) SetLongSummary(v string) *TranscriptUpsert {
	u.Set(transcript.FieldLongSummary, v)
	return u
}

// UpdateLongSummary sets the "long_summary" field to the value that was provided on create.
func (u *TranscriptUpsert) UpdateLongSummary() *TranscriptUpsert {
	u.SetExcluded(transcript.FieldLongSummary)
	return u
}

// ClearLongSummary clears the value of the "long_summary" field.
func (u *TranscriptUpsert) ClearLongSummary() *TranscriptUpsert {
	u.SetNull(transcript.FieldLongSummary)
	return u
}

// SetActionItems sets the "action_items" field.
func (u *TranscriptUpsert) SetActionItems(v *models.ActionItems) *TranscriptUpsert {
	u.Set(transcript.FieldActionItems, v)
	return u
}

// UpdateActionItems sets the "action_items" field to the value that was provided on create.
func (u *TranscriptUpsert) UpdateActionItems() *TranscriptUpsert {
	u.SetExcluded(transcript.FieldActionItems)
	return u
}

// ClearActionItems clears the value of the "action_items" field.
func (u *TranscriptUpsert) ClearActionItems() *TranscriptUpsert {
	u.SetNull(transcript.FieldActionItems)
	return u
}

// SetDurationMs sets the "duration_ms" field.
func (u *TranscriptUpsert) SetDurationMs(v float64) *TranscriptUpsert {
	u.Set(transcript.FieldDurationMs, v)
	return u
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *TranscriptUpsert) UpdateDurationMs() *TranscriptUpsert {
	u.SetExcluded(transcript.FieldDurationMs)
	return u
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *TranscriptUpsert) AddDurationMs(v float64) *TranscriptUpsert {
	u.Add(transcript.FieldDurationMs, v)
	return u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *TranscriptUpsert) ClearDurationMs() *TranscriptUpsert {
	u.SetNull(transcript.FieldDurationMs)
	return u
}

// SetAudioLocation sets the "audio_location" field.
func (u *TranscriptUpsert) SetAudioLocation(v transcript.AudioLocation) *TranscriptUpsert {
	u.Set(transcript.FieldAudioLocation, v)
	return u
}

// UpdateAudioLocation sets the "audio_location" field to the value that was provided on create.
func (u *TranscriptUpsert) UpdateAudioLocation() *TranscriptUpsert {
	u.SetExcluded(transcript.FieldAudioLocation)
	return u
}

// SetAudioDeleted sets the "audio_deleted" field.
func (u *TranscriptUpsert) SetAudioDeleted(v bool) *TranscriptUpsert {
	u.Set(transcript.FieldAudioDeleted, v)
	return u
}

// UpdateAudioDeleted sets the "audio_deleted" field to the value that was provided on create.
func (u *TranscriptUpsert) UpdateAudioDeleted() *TranscriptUpsert {
	u.SetExcluded(transcript.FieldAudioDeleted)
	return u
}

// SetWords sets the "words" field.
func (u *TranscriptUpsert) SetWords(v []models.Word) *TranscriptUpsert {
	u.Set(transcript.FieldWords, v)
	return u
}

// UpdateWords sets the "words" field to the value that was provided on create.
func (u *TranscriptUpsert) UpdateWords() *TranscriptUpsert {
	u.SetExcluded(transcript.FieldWords)
	return u
}

// ClearWords clears the value of the "words" field.
func (u *TranscriptUpsert) ClearWords() *TranscriptUpsert {
	u.SetNull(transcript.FieldWords)
	return u
}

// SetWorkflowRunID sets the "workflow_run_id" field.
func (u *TranscriptUpsert) SetWorkflowRunID(v string) *TranscriptUpsert {
	u.Set(transcript.FieldWorkflowRunID, v)
	return u
}

// UpdateWorkflowRunID sets the "workflow_run_id" field to the value that was provided on create.
func (u *TranscriptUpsert) UpdateWorkflowRunID() *TranscriptUpsert {
	u.SetExcluded(transcript.FieldWorkflowRunID)
	return u
}

// ClearWorkflowRunID clears the value of the "workflow_run_id" field.
func (u *TranscriptUpsert) ClearWorkflowRunID() *TranscriptUpsert {
	u.SetNull(transcript.FieldWorkflowRunID)
	return u
}

// SetZulipMessageID sets the "zulip_message_id" field.
func (u *TranscriptUpsert) SetZulipMessageID(v int64) *TranscriptUpsert {
	u.Set(transcript.FieldZulipMessageID, v)
	return u
}

// UpdateZulipMessageID sets the "zulip_message_id" field to the value that was provided on create.
func (u *TranscriptUpsert) UpdateZulipMessageID() *TranscriptUpsert {
	u.SetExcluded(transcript.FieldZulipMessageID)
	return u
}

// AddZulipMessageID adds v to the "zulip_message_id" field.
func (u *TranscriptUpsert) AddZulipMessageID(v int64) *TranscriptUpsert {
	u.Add(transcript.FieldZulipMessageID, v)
	return u
}

// ClearZulipMessageID clears the value of the "zulip_message_id" field.
func (u *TranscriptUpsert) ClearZulipMessageID() *TranscriptUpsert {
	u.SetNull(transcript.FieldZulipMessageID)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TranscriptUpsert) SetUpdatedAt(v time.Time) *TranscriptUpsert {
	u.Set(transcript.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TranscriptUpsert) UpdateUpdatedAt() *TranscriptUpsert {
	u.SetExcluded(transcript.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Transcript.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(transcript.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TranscriptUpsertOne) UpdateNewValues() *TranscriptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(transcript.FieldID)
		}
		if _, exists := u.create.mutation.RoomID(); exists {
			s.SetIgnore(transcript.FieldRoomID)
		}
		if _, exists := u.create.mutation.MeetingID(); exists {
			s.SetIgnore(transcript.FieldMeetingID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(transcript.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Transcript.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TranscriptUpsertOne) Ignore() *TranscriptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TranscriptUpsertOne) DoNothing() *TranscriptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TranscriptCreate.OnConflict
// documentation for more info.
func (u *TranscriptUpsertOne) Update(set func(*TranscriptUpsert)) *TranscriptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TranscriptUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *TranscriptUpsertOne) SetStatus(v transcript.Status) *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TranscriptUpsertOne) UpdateStatus() *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateStatus()
	})
}

// SetName sets the "name" field.
func (u *TranscriptUpsertOne) SetName(v string) *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *TranscriptUpsertOne) UpdateName() *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateName()
	})
}

// SetSourceLanguage sets the "source_language" field.
func (u *TranscriptUpsertOne) SetSourceLanguage(v string) *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetSourceLanguage(v)
	})
}

// UpdateSourceLanguage sets the "source_language" field to the value that was provided on create.
func (u *TranscriptUpsertOne) UpdateSourceLanguage() *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateSourceLanguage()
	})
}

// SetTargetLanguage sets the "target_language" field.
func (u *TranscriptUpsertOne) SetTargetLanguage(v string) *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetTargetLanguage(v)
	})
}

// UpdateTargetLanguage sets the "target_language" field to the value that was provided on create.
func (u *TranscriptUpsertOne) UpdateTargetLanguage() *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateTargetLanguage()
	})
}

// SetTitle sets the "title" field.
func (u *TranscriptUpsertOne) SetTitle(v string) *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *TranscriptUpsertOne) UpdateTitle() *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *TranscriptUpsertOne) ClearTitle() *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.ClearTitle()
	})
}

// SetShortSummary sets the "short_summary" field.
func (u *TranscriptUpsertOne) SetShortSummary(v string) *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetShortSummary(v)
	})
}

// UpdateShortSummary sets the "short_summary" field to the value that was provided on create.
func (u *TranscriptUpsertOne) UpdateShortSummary() *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateShortSummary()
	})
}

// ClearShortSummary clears the value of the "short_summary" field.
func (u *TranscriptUpsertOne) ClearShortSummary() *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.ClearShortSummary()
	})
}

// SetLongSummary sets the "long_summary" field.
func (u *TranscriptUpsertOne) SetLongSummary(v string) *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetLongSummary(v)
	})
}

// UpdateLongSummary sets the "long_summary" field to the value that was provided on create.
func (u *TranscriptUpsertOne) UpdateLongSummary() *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateLongSummary()
	})
}

// ClearLongSummary clears the value of the "long_summary" field.
func (u *TranscriptUpsertOne) ClearLongSummary() *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.ClearLongSummary()
	})
}

// SetActionItems sets the "action_items" field.
func (u *TranscriptUpsertOne) SetActionItems(v *models.ActionItems) *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetActionItems(v)
	})
}

// UpdateActionItems sets the "action_items" field to the value that was provided on create.
func (u *TranscriptUpsertOne) UpdateActionItems() *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateActionItems()
	})
}

// ClearActionItems clears the value of the "action_items" field.
func (u *TranscriptUpsertOne) ClearActionItems() *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.ClearActionItems()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *TranscriptUpsertOne) SetDurationMs(v float64) *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *TranscriptUpsertOne) AddDurationMs(v float64) *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *TranscriptUpsertOne) UpdateDurationMs() *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateDurationMs()
	})
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *TranscriptUpsertOne) ClearDurationMs() *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.ClearDurationMs()
	})
}

// SetAudioLocation sets the "audio_location" field.
func (u *TranscriptUpsertOne) SetAudioLocation(v transcript.AudioLocation) *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetAudioLocation(v)
	})
}

// UpdateAudioLocation sets the "audio_location" field to the value that was provided on create.
func (u *TranscriptUpsertOne) UpdateAudioLocation() *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateAudioLocation()
	})
}

// SetAudioDeleted sets the "audio_deleted" field.
func (u *TranscriptUpsertOne) SetAudioDeleted(v bool) *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetAudioDeleted(v)
	})
}

// UpdateAudioDeleted sets the "audio_deleted" field to the value that was provided on create.
func (u *TranscriptUpsertOne) UpdateAudioDeleted() *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateAudioDeleted()
	})
}

// SetWords sets the "words" field.
func (u *TranscriptUpsertOne) SetWords(v []models.Word) *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetWords(v)
	})
}

// UpdateWords sets the "words" field to the value that was provided on create.
func (u *TranscriptUpsertOne) UpdateWords() *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateWords()
	})
}

// ClearWords clears the value of the "words" field.
func (u *TranscriptUpsertOne) ClearWords() *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.ClearWords()
	})
}

// SetWorkflowRunID sets the "workflow_run_id" field.
func (u *TranscriptUpsertOne) SetWorkflowRunID(v string) *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetWorkflowRunID(v)
	})
}

// UpdateWorkflowRunID sets the "workflow_run_id" field to the value that was provided on create.
func (u *TranscriptUpsertOne) UpdateWorkflowRunID() *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateWorkflowRunID()
	})
}

// ClearWorkflowRunID clears the value of the "workflow_run_id" field.
func (u *TranscriptUpsertOne) ClearWorkflowRunID() *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.ClearWorkflowRunID()
	})
}

// SetZulipMessageID sets the "zulip_message_id" field.
func (u *TranscriptUpsertOne) SetZulipMessageID(v int64) *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetZulipMessageID(v)
	})
}

// AddZulipMessageID adds v to the "zulip_message_id" field.
func (u *TranscriptUpsertOne) AddZulipMessageID(v int64) *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.AddZulipMessageID(v)
	})
}

// UpdateZulipMessageID sets the "zulip_message_id" field to the value that was provided on create.
func (u *TranscriptUpsertOne) UpdateZulipMessageID() *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateZulipMessageID()
	})
}

// ClearZulipMessageID clears the value of the "zulip_message_id" field.
func (u *TranscriptUpsertOne) ClearZulipMessageID() *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.ClearZulipMessageID()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TranscriptUpsertOne) SetUpdatedAt(v time.Time) *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TranscriptUpsertOne) UpdateUpdatedAt() *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *TranscriptUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TranscriptCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TranscriptUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TranscriptUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TranscriptUpsertOne.ID is not supported by MySQL driver. Use TranscriptUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TranscriptUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TranscriptCreateBulk is the builder for creating many Transcript entities in bulk.
type TranscriptCreateBulk struct {
	config
	err      error
	builders []*TranscriptCreate
	conflict []sql.ConflictOption
}

// Save creates the Transcript entities in the database.
func (_c *TranscriptCreateBulk) Save(ctx context.Context) ([]*Transcript, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Transcript, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TranscriptMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TranscriptCreateBulk) SaveX(ctx context.Context) []*Transcript {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TranscriptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TranscriptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Transcript.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TranscriptUpsert) {
//			SetStatus(v+v).
//		}).
//		Exec(ctx)
func (_c *TranscriptCreateBulk) OnConflict(opts ...sql.ConflictOption) *TranscriptUpsertBulk {
	_c.conflict = opts
	return &TranscriptUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Transcript.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TranscriptCreateBulk) OnConflictColumns(columns ...string) *TranscriptUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TranscriptUpsertBulk{
		create: _c,
	}
}

// TranscriptUpsertBulk is the builder for "upsert"-ing
// a bulk of Transcript nodes.
type TranscriptUpsertBulk struct {
	create *TranscriptCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Transcript.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(transcript.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TranscriptUpsertBulk) UpdateNewValues() *TranscriptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(transcript.FieldID)
			}
			if _, exists := b.mutation.RoomID(); exists {
				s.SetIgnore(transcript.FieldRoomID)
			}
			if _, exists := b.mutation.MeetingID(); exists {
				s.SetIgnore(transcript.FieldMeetingID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(transcript.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Transcript.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TranscriptUpsertBulk) Ignore() *TranscriptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TranscriptUpsertBulk) DoNothing() *TranscriptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TranscriptCreateBulk.OnConflict
// documentation for more info.
func (u *TranscriptUpsertBulk) Update(set func(*TranscriptUpsert)) *TranscriptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TranscriptUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *TranscriptUpsertBulk) SetStatus(v transcript.Status) *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TranscriptUpsertBulk) UpdateStatus() *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateStatus()
	})
}

// SetName sets the "name" field.
func (u *TranscriptUpsertBulk) SetName(v string) *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *TranscriptUpsertBulk) UpdateName() *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateName()
	})
}

// SetSourceLanguage sets the "source_language" field.
func (u *TranscriptUpsertBulk) SetSourceLanguage(v string) *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetSourceLanguage(v)
	})
}

// UpdateSourceLanguage sets the "source_language" field to the value that was provided on create.
func (u *TranscriptUpsertBulk) UpdateSourceLanguage() *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateSourceLanguage()
	})
}

// SetTargetLanguage sets the "target_language" field.
func (u *TranscriptUpsertBulk) SetTargetLanguage(v string) *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetTargetLanguage(v)
	})
}

// UpdateTargetLanguage sets the "target_language" field to the value that was provided on create.
func (u *TranscriptUpsertBulk) UpdateTargetLanguage() *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateTargetLanguage()
	})
}

// SetTitle sets the "title" field.
func (u *TranscriptUpsertBulk) SetTitle(v string) *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *TranscriptUpsertBulk) UpdateTitle() *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *TranscriptUpsertBulk) ClearTitle() *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.ClearTitle()
	})
}

// SetShortSummary sets the "short_summary" field.
func (u *TranscriptUpsertBulk) SetShortSummary(v string) *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetShortSummary(v)
	})
}

// UpdateShortSummary sets the "short_summary" field to the value that was provided on create.
func (u *TranscriptUpsertBulk) UpdateShortSummary() *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateShortSummary()
	})
}

// ClearShortSummary clears the value of the "short_summary" field.
func (u *TranscriptUpsertBulk) ClearShortSummary() *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.ClearShortSummary()
	})
}

// SetLongSummary sets the "long_summary" field.
func (u *TranscriptUpsertBulk) SetLongSummary(v string) *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetLongSummary(v)
	})
}

// UpdateLongSummary sets the "long_summary" field to the value that was provided on create.
func (u *TranscriptUpsertBulk) UpdateLongSummary() *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateLongSummary()
	})
}

// ClearLongSummary clears the value of the "long_summary" field.
func (u *TranscriptUpsertBulk) ClearLongSummary() *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.ClearLongSummary()
	})
}

// SetActionItems sets the "action_items" field.
func (u *TranscriptUpsertBulk) SetActionItems(v *models.ActionItems) *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetActionItems(v)
	})
}

// UpdateActionItems sets the "action_items" field to the value that was provided on create.
func (u *TranscriptUpsertBulk) UpdateActionItems() *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateActionItems()
	})
}

// ClearActionItems clears the value of the "action_items" field.
func (u *TranscriptUpsertBulk) ClearActionItems() *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.ClearActionItems()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *TranscriptUpsertBulk) SetDurationMs(v float64) *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *TranscriptUpsertBulk) AddDurationMs(v float64) *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *TranscriptUpsertBulk) UpdateDurationMs() *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateDurationMs()
	})
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *TranscriptUpsertBulk) ClearDurationMs() *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.ClearDurationMs()
	})
}

// SetAudioLocation sets the "audio_location" field.
func (u *TranscriptUpsertBulk) SetAudioLocation(v transcript.AudioLocation) *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetAudioLocation(v)
	})
}

// UpdateAudioLocation sets the "audio_location" field to the value that was provided on create.
func (u *TranscriptUpsertBulk) UpdateAudioLocation() *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateAudioLocation()
	})
}

// SetAudioDeleted sets the "audio_deleted" field.
func (u *TranscriptUpsertBulk) SetAudioDeleted(v bool) *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetAudioDeleted(v)
	})
}

// UpdateAudioDeleted sets the "audio_deleted" field to the value that was provided on create.
func (u *TranscriptUpsertBulk) UpdateAudioDeleted() *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateAudioDeleted()
	})
}

// SetWords sets the "words" field.
func (u *TranscriptUpsertBulk) SetWords(v []models.Word) *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetWords(v)
	})
}

// UpdateWords sets the "words" field to the value that was provided on create.
func (u *TranscriptUpsertBulk) UpdateWords() *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateWords()
	})
}

// ClearWords clears the value of the "words" field.
func (u *TranscriptUpsertBulk) ClearWords() *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.ClearWords()
	})
}

// SetWorkflowRunID sets the "workflow_run_id" field.
func (u *TranscriptUpsertBulk) SetWorkflowRunID(v string) *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetWorkflowRunID(v)
	})
}

// UpdateWorkflowRunID sets the "workflow_run_id" field to the value that was provided on create.
func (u *TranscriptUpsertBulk) UpdateWorkflowRunID() *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateWorkflowRunID()
	})
}

// ClearWorkflowRunID clears the value of the "workflow_run_id" field.
func (u *TranscriptUpsertBulk) ClearWorkflowRunID() *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.ClearWorkflowRunID()
	})
}

// SetZulipMessageID sets the "zulip_message_id" field.
func (u *TranscriptUpsertBulk) SetZulipMessageID(v int64) *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetZulipMessageID(v)
	})
}

// AddZulipMessageID adds v to the "zulip_message_id" field.
func (u *TranscriptUpsertBulk) AddZulipMessageID(v int64) *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.AddZulipMessageID(v)
	})
}

// UpdateZulipMessageID sets the "zulip_message_id" field to the value that was provided on create.
func (u *TranscriptUpsertBulk) UpdateZulipMessageID() *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateZulipMessageID()
	})
}

// ClearZulipMessageID clears the value of the "zulip_message_id" field.
func (u *TranscriptUpsertBulk) ClearZulipMessageID() *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.ClearZulipMessageID()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TranscriptUpsertBulk) SetUpdatedAt(v time.Time) *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TranscriptUpsertBulk) UpdateUpdatedAt() *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *TranscriptUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TranscriptCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TranscriptCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TranscriptUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
