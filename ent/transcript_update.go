// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/monadical-sas/reflector/ent/event"
	"github.com/monadical-sas/reflector/ent/participant"
	"github.com/monadical-sas/reflector/ent/pipelinetask"
	"github.com/monadical-sas/reflector/ent/predicate"
	"github.com/monadical-sas/reflector/ent/topic"
	"github.com/monadical-sas/reflector/ent/transcript"
	"github.com/monadical-sas/reflector/pkg/models"
)

// TranscriptUpdate is the builder for updating Transcript entities.
type TranscriptUpdate struct {
	config
	hooks    []Hook
	mutation *TranscriptMutation
}

// Where appends a list predicates to the TranscriptUpdate builder.
func (_u *TranscriptUpdate) Where(ps ...predicate.Transcript) *TranscriptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *TranscriptUpdate) SetStatus(v transcript.Status) *TranscriptUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TranscriptUpdate) SetNillableStatus(v *transcript.Status) *TranscriptUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *TranscriptUpdate) SetName(v string) *TranscriptUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TranscriptUpdate) SetNillableName(v *string) *TranscriptUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSourceLanguage sets the "source_language" field.
func (_u *TranscriptUpdate) SetSourceLanguage(v string) *TranscriptUpdate {
	_u.mutation.SetSourceLanguage(v)
	return _u
}

// SetNillableSourceLanguage sets the "source_language" field if the given value is not nil.
func (_u *TranscriptUpdate) SetNillableSourceLanguage(v *string) *TranscriptUpdate {
	if v != nil {
		_u.SetSourceLanguage(*v)
	}
	return _u
}

// SetTargetLanguage sets the "target_language" field.
func (_u *TranscriptUpdate) SetTargetLanguage(v string) *TranscriptUpdate {
	_u.mutation.SetTargetLanguage(v)
	return _u
}

// SetNillableTargetLanguage sets the "target_language" field if the given value is not nil.
func (_u *TranscriptUpdate) SetNillableTargetLanguage(v *string) *TranscriptUpdate {
	if v != nil {
		_u.SetTargetLanguage(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *TranscriptUpdate) SetTitle(v string) *TranscriptUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TranscriptUpdate) SetNillableTitle(v *string) *TranscriptUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *TranscriptUpdate) ClearTitle() *TranscriptUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetShortSummary sets the "short_summary" field.
func (_u *TranscriptUpdate) SetShortSummary(v string) *TranscriptUpdate {
	_u.mutation.SetShortSummary(v)
	return _u
}

// SetNillableShortSummary sets the "short_summary" field if the given value is not nil.
func (_u *TranscriptUpdate) SetNillableShortSummary(v *string) *TranscriptUpdate {
	if v != nil {
		_u.SetShortSummary(*v)
	}
	return _u
}

// ClearShortSummary clears the value of the "short_summary" field.
func (_u *TranscriptUpdate) ClearShortSummary() *TranscriptUpdate {
	_u.mutation.ClearShortSummary()
	return _u
}

// SetLongSummary sets the "long_summary" field.
func (_u *TranscriptUpdate) SetLongSummary(v string) *TranscriptUpdate {
	_u.mutation.SetLongSummary(v)
	return _u
}

// SetNillableLongSummary sets the "long_summary" field if the given value is not nil.
func (_u *TranscriptUpdate) SetNillableLongSummary(v *string) *TranscriptUpdate {
	if v != nil {
		_u.SetLongSummary(*v)
	}
	return _u
}

// ClearLongSummary clears the value of the "long_summary" field.
func (_u *TranscriptUpdate) ClearLongSummary() *TranscriptUpdate {
	_u.mutation.ClearLongSummary()
	return _u
}

// SetActionItems sets the "action_items" field.
func (_u *TranscriptUpdate) SetActionItems(v *models.ActionItems) *TranscriptUpdate {
	_u.mutation.SetActionItems(v)
	return _u
}

// ClearActionItems clears the value of the "action_items" field.
func (_u *TranscriptUpdate) ClearActionItems() *TranscriptUpdate {
	_u.mutation.ClearActionItems()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *TranscriptUpdate) SetDurationMs(v float64) *TranscriptUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *TranscriptUpdate) SetNillableDurationMs(v *float64) *TranscriptUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *TranscriptUpdate) AddDurationMs(v float64) *TranscriptUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *TranscriptUpdate) ClearDurationMs() *TranscriptUpdate {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetAudioLocation sets the "audio_location" field.
func (_u *TranscriptUpdate) SetAudioLocation(v transcript.AudioLocation) *TranscriptUpdate {
	_u.mutation.SetAudioLocation(v)
	return _u
}

// SetNillableAudioLocation sets the "audio_location" field if the given value is not nil.
func (_u *TranscriptUpdate) SetNillableAudioLocation(v *transcript.AudioLocation) *TranscriptUpdate {
	if v != nil {
		_u.SetAudioLocation(*v)
	}
	return _u
}

// SetAudioDeleted sets the "audio_deleted" field.
func (_u *TranscriptUpdate) SetAudioDeleted(v bool) *TranscriptUpdate {
	_u.mutation.SetAudioDeleted(v)
	return _u
}

// SetNillableAudioDeleted sets the "audio_deleted" field if the given value is not nil.
func (_u *TranscriptUpdate) SetNillableAudioDeleted(v *bool) *TranscriptUpdate {
	if v != nil {
		_u.SetAudioDeleted(*v)
	}
	return _u
}

// SetWords sets the "words" field.
func (_u *TranscriptUpdate) SetWords(v []models.Word) *TranscriptUpdate {
	_u.mutation.SetWords(v)
	return _u
}

// AppendWords appends value to the "words" field.
func (_u *TranscriptUpdate) AppendWords(v []models.Word) *TranscriptUpdate {
	_u.mutation.AppendWords(v)
	return _u
}

// ClearWords clears the value of the "words" field.
func (_u *TranscriptUpdate) ClearWords() *TranscriptUpdate {
	_u.mutation.ClearWords()
	return _u
}

// SetWorkflowRunID sets the "workflow_run_id" field.
func (_u *TranscriptUpdate) SetWorkflowRunID(v string) *TranscriptUpdate {
	_u.mutation.SetWorkflowRunID(v)
	return _u
}

// SetNillableWorkflowRunID sets the "workflow_run_id" field if the given value is not nil.
func (_u *TranscriptUpdate) SetNillableWorkflowRunID(v *string) *TranscriptUpdate {
	if v != nil {
		_u.SetWorkflowRunID(*v)
	}
	return _u
}

// ClearWorkflowRunID clears the value of the "workflow_run_id" field.
func (_u *TranscriptUpdate) ClearWorkflowRunID() *TranscriptUpdate {
	_u.mutation.ClearWorkflowRunID()
	return _u
}

// SetZulipMessageID sets the "zulip_message_id" field.
func (_u *TranscriptUpdate) SetZulipMessageID(v int64) *TranscriptUpdate {
	_u.mutation.ResetZulipMessageID()
	_u.mutation.SetZulipMessageID(v)
	return _u
}

// SetNillableZulipMessageID sets the "zulip_message_id" field if the given value is not nil.
func (_u *TranscriptUpdate) SetNillableZulipMessageID(v *int64) *TranscriptUpdate {
	if v != nil {
		_u.SetZulipMessageID(*v)
	}
	return _u
}

// AddZulipMessageID adds value to the "zulip_message_id" field.
func (_u *TranscriptUpdate) AddZulipMessageID(v int64) *TranscriptUpdate {
	_u.mutation.AddZulipMessageID(v)
	return _u
}

// ClearZulipMessageID clears the value of the "zulip_message_id" field.
func (_u *TranscriptUpdate) ClearZulipMessageID() *TranscriptUpdate {
	_u.mutation.ClearZulipMessageID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TranscriptUpdate) SetUpdatedAt(v time.Time) *TranscriptUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddTopicIDs adds the "topics" edge to the Topic entity by IDs.
func (_u *TranscriptUpdate) AddTopicIDs(ids ...string) *TranscriptUpdate {
	_u.mutation.AddTopicIDs(ids...)
	return _u
}

// AddTopics adds the "topics" edges to the Topic entity.
func (_u *TranscriptUpdate) AddTopics(v ...*Topic) *TranscriptUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTopicIDs(ids...)
}

// AddParticipantIDs adds the "participants" edge to the Participant entity by IDs.
func (_u *TranscriptUpdate) AddParticipantIDs(ids ...string) *TranscriptUpdate {
	_u.mutation.AddParticipantIDs(ids...)
	return _u
}

// AddParticipants adds the "participants" edges to the Participant entity.
func (_u *TranscriptUpdate) AddParticipants(v ...*Participant) *TranscriptUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddParticipantIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *TranscriptUpdate) AddEventIDs(ids ...int) *TranscriptUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *TranscriptUpdate) AddEvents(v ...*Event) *TranscriptUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddTaskIDs adds the "tasks" edge to the PipelineTask entity by IDs.
func (_u *TranscriptUpdate) AddTaskIDs(ids ...string) *TranscriptUpdate {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the PipelineTask entity.
func (_u *TranscriptUpdate) AddTasks(v ...*PipelineTask) *TranscriptUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// Mutation returns the TranscriptMutation object of the builder.
func (_u *TranscriptUpdate) Mutation() *TranscriptMutation {
	return _u.mutation
}

// ClearTopics clears all "topics" edges to the Topic entity.
func (_u *TranscriptUpdate) ClearTopics() *TranscriptUpdate {
	_u.mutation.ClearTopics()
	return _u
}

// RemoveTopicIDs removes the "topics" edge to Topic entities by IDs.
func (_u *TranscriptUpdate) RemoveTopicIDs(ids ...string) *TranscriptUpdate {
	_u.mutation.RemoveTopicIDs(ids...)
	return _u
}

// RemoveTopics removes "topics" edges to Topic entities.
func (_u *TranscriptUpdate) RemoveTopics(v ...*Topic) *TranscriptUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTopicIDs(ids...)
}

// ClearParticipants clears all "participants" edges to the Participant entity.
func (_u *TranscriptUpdate) ClearParticipants() *TranscriptUpdate {
	_u.mutation.ClearParticipants()
	return _u
}

// RemoveParticipantIDs removes the "participants" edge to Participant entities by IDs.
func (_u *TranscriptUpdate) RemoveParticipantIDs(ids ...string) *TranscriptUpdate {
	_u.mutation.RemoveParticipantIDs(ids...)
	return _u
}

// RemoveParticipants removes "participants" edges to Participant entities.
func (_u *TranscriptUpdate) RemoveParticipants(v ...*Participant) *TranscriptUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveParticipantIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *TranscriptUpdate) ClearEvents() *TranscriptUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *TranscriptUpdate) RemoveEventIDs(ids ...int) *TranscriptUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *TranscriptUpdate) RemoveEvents(v ...*Event) *TranscriptUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearTasks clears all "tasks" edges to the PipelineTask entity.
func (_u *TranscriptUpdate) ClearTasks() *TranscriptUpdate {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to PipelineTask entities by IDs.
func (_u *TranscriptUpdate) RemoveTaskIDs(ids ...string) *TranscriptUpdate {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to PipelineTask entities.
func (_u *TranscriptUpdate) RemoveTasks(v ...*PipelineTask) *TranscriptUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TranscriptUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TranscriptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TranscriptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TranscriptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TranscriptUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := transcript.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TranscriptUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := transcript.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Transcript.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AudioLocation(); ok {
		if err := transcript.AudioLocationValidator(v); err != nil {
			return &ValidationError{Name: "audio_location", err: fmt.Errorf(`ent: validator failed for field "Transcript.audio_location": %w`, err)}
		}
	}
	return nil
}

func (_u *TranscriptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transcript.Table, transcript.Columns, sqlgraph.NewFieldSpec(transcript.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(transcript.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(transcript.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceLanguage(); ok {
		_spec.SetField(transcript.FieldSourceLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetLanguage(); ok {
		_spec.SetField(transcript.FieldTargetLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(transcript.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(transcript.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.ShortSummary(); ok {
		_spec.SetField(transcript.FieldShortSummary, field.TypeString, value)
	}
	if _u.mutation.ShortSummaryCleared() {
		_spec.ClearField(transcript.FieldShortSummary, field.TypeString)
	}
	if value, ok := _u.mutation.LongSummary(); ok {
		_spec.SetField(transcript.FieldLongSummary, field.TypeString, value)
	}
	if _u.mutation.LongSummaryCleared() {
		_spec.ClearField(transcript.FieldLongSummary, field.TypeString)
	}
	if value, ok := _u.mutation.ActionItems(); ok {
		_spec.SetField(transcript.FieldActionItems, field.TypeJSON, value)
	}
	if _u.mutation.ActionItemsCleared() {
		_spec.ClearField(transcript.FieldActionItems, field.TypeJSON)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(transcript.FieldDurationMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(transcript.FieldDurationMs, field.TypeFloat64, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(transcript.FieldDurationMs, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AudioLocation(); ok {
		_spec.SetField(transcript.FieldAudioLocation, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AudioDeleted(); ok {
		_spec.SetField(transcript.FieldAudioDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Words(); ok {
		_spec.SetField(transcript.FieldWords, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWords(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, transcript.FieldWords, value)
		})
	}
	if _u.mutation.WordsCleared() {
		_spec.ClearField(transcript.FieldWords, field.TypeJSON)
	}
	if value, ok := _u.mutation.WorkflowRunID(); ok {
		_spec.SetField(transcript.FieldWorkflowRunID, field.TypeString, value)
	}
	if _u.mutation.WorkflowRunIDCleared() {
		_spec.ClearField(transcript.FieldWorkflowRunID, field.TypeString)
	}
	if value, ok := _u.mutation.ZulipMessageID(); ok {
		_spec.SetField(transcript.FieldZulipMessageID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedZulipMessageID(); ok {
		_spec.AddField(transcript.FieldZulipMessageID, field.TypeInt64, value)
	}
	if _u.mutation.ZulipMessageIDCleared() {
		_spec.ClearField(transcript.FieldZulipMessageID, field.TypeInt64)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(transcript.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TopicsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTopicsIDs(); len(nodes) > 0 && !_u.mutation.TopicsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TopicsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ParticipantsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedParticipantsIDs(); len(nodes) > 0 && !_u.mutation.ParticipantsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParticipantsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transcript.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TranscriptUpdateOne is the builder for updating a single Transcript entity.
type TranscriptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TranscriptMutation
}

// SetStatus sets the "status" field.
func (_u *TranscriptUpdateOne) SetStatus(v transcript.Status) *TranscriptUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TranscriptUpdateOne) SetNillableStatus(v *transcript.Status) *TranscriptUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *TranscriptUpdateOne) SetName(v string) *TranscriptUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TranscriptUpdateOne) SetNillableName(v *string) *TranscriptUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSourceLanguage sets the "source_language" field.
func (_u *TranscriptUpdateOne) SetSourceLanguage(v string) *TranscriptUpdateOne {
	_u.mutation.SetSourceLanguage(v)
	return _u
}

// SetNillableSourceLanguage sets the "source_language" field if the given value is not nil.
func (_u *TranscriptUpdateOne) SetNillableSourceLanguage(v *string) *TranscriptUpdateOne {
	if v != nil {
		_u.SetSourceLanguage(*v)
	}
	return _u
}

// SetTargetLanguage sets the "target_language" field.
func (_u *TranscriptUpdateOne) SetTargetLanguage(v string) *TranscriptUpdateOne {
	_u.mutation.SetTargetLanguage(v)
	return _u
}

// SetNillableTargetLanguage sets the "target_language" field if the given value is not nil.
func (_u *TranscriptUpdateOne) SetNillableTargetLanguage(v *string) *TranscriptUpdateOne {
	if v != nil {
		_u.SetTargetLanguage(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *TranscriptUpdateOne) SetTitle(v string) *TranscriptUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TranscriptUpdateOne) SetNillableTitle(v *string) *TranscriptUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *TranscriptUpdateOne) ClearTitle() *TranscriptUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetShortSummary sets the "short_summary" field.
func (_u *TranscriptUpdateOne) SetShortSummary(v string) *TranscriptUpdateOne {
	_u.mutation.SetShortSummary(v)
	return _u
}

// SetNillableShortSummary sets the "short_summary" field if the given value is not nil.
func (_u *TranscriptUpdateOne) SetNillableShortSummary(v *string) *TranscriptUpdateOne {
	if v != nil {
		_u.SetShortSummary(*v)
	}
	return _u
}

// ClearShortSummary clears the value of the "short_summary" field.
func (_u *TranscriptUpdateOne) ClearShortSummary() *TranscriptUpdateOne {
	_u.mutation.ClearShortSummary()
	return _u
}

// SetLongSummary sets the "long_summary" field.
func (_u *TranscriptUpdateOne) SetLongSummary(v string) *TranscriptUpdateOne {
	_u.mutation.SetLongSummary(v)
	return _u
}

// SetNillableLongSummary sets the "long_summary" field if the given value is not nil.
func (_u *TranscriptUpdateOne) SetNillableLongSummary(v *string) *TranscriptUpdateOne {
	if v != nil {
		_u.SetLongSummary(*v)
	}
	return _u
}

// ClearLongSummary clears the value of the "long_summary" field.
func (_u *TranscriptUpdateOne) ClearLongSummary() *TranscriptUpdateOne {
	_u.mutation.ClearLongSummary()
	return _u
}

// SetActionItems sets the "action_items" field.
func (_u *TranscriptUpdateOne) SetActionItems(v *models.ActionItems) *TranscriptUpdateOne {
	_u.mutation.SetActionItems(v)
	return _u
}

// ClearActionItems clears the value of the "action_items" field.
func (_u *TranscriptUpdateOne) ClearActionItems() *TranscriptUpdateOne {
	_u.mutation.ClearActionItems()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *TranscriptUpdateOne) SetDurationMs(v float64) *TranscriptUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *TranscriptUpdateOne) SetNillableDurationMs(v *float64) *TranscriptUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *TranscriptUpdateOne) AddDurationMs(v float64) *TranscriptUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *TranscriptUpdateOne) ClearDurationMs() *TranscriptUpdateOne {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetAudioLocation sets the "audio_location" field.
func (_u *TranscriptUpdateOne) SetAudioLocation(v transcript.AudioLocation) *TranscriptUpdateOne {
	_u.mutation.SetAudioLocation(v)
	return _u
}

// SetNillableAudioLocation sets the "audio_location" field if the given value is not nil.
func (_u *TranscriptUpdateOne) SetNillableAudioLocation(v *transcript.AudioLocation) *TranscriptUpdateOne {
	if v != nil {
		_u.SetAudioLocation(*v)
	}
	return _u
}

// SetAudioDeleted sets the "audio_deleted" field.
func (_u *TranscriptUpdateOne) SetAudioDeleted(v bool) *TranscriptUpdateOne {
	_u.mutation.SetAudioDeleted(v)
	return _u
}

// SetNillableAudioDeleted sets the "audio_deleted" field if the given value is not nil.
func (_u *TranscriptUpdateOne) SetNillableAudioDeleted(v *bool) *TranscriptUpdateOne {
	if v != nil {
		_u.SetAudioDeleted(*v)
	}
	return _u
}

// SetWords sets the "words" field.
func (_u *TranscriptUpdateOne) SetWords(v []models.Word) *TranscriptUpdateOne {
	_u.mutation.SetWords(v)
	return _u
}

// AppendWords appends value to the "words" field.
func (_u *TranscriptUpdateOne) AppendWords(v []models.Word) *TranscriptUpdateOne {
	_u.mutation.AppendWords(v)
	return _u
}

// ClearWords clears the value of the "words" field.
func (_u *TranscriptUpdateOne) ClearWords() *TranscriptUpdateOne {
	_u.mutation.ClearWords()
	return _u
}

// SetWorkflowRunID sets the "workflow_run_id" field.
func (_u *TranscriptUpdateOne) SetWorkflowRunID(v string) *TranscriptUpdateOne {
	_u.mutation.SetWorkflowRunID(v)
	return _u
}

// SetNillableWorkflowRunID sets the "workflow_run_id" field if the given value is not nil.
func (_u *TranscriptUpdateOne) SetNillableWorkflowRunID(v *string) *TranscriptUpdateOne {
	if v != nil {
		_u.SetWorkflowRunID(*v)
	}
	return _u
}

// ClearWorkflowRunID clears the value of the "workflow_run_id" field.
func (_u *TranscriptUpdateOne) ClearWorkflowRunID() *TranscriptUpdateOne {
	_u.mutation.ClearWorkflowRunID()
	return _u
}

// SetZulipMessageID sets the "zulip_message_id" field.
func (_u *TranscriptUpdateOne) SetZulipMessageID(v int64) *TranscriptUpdateOne {
	_u.mutation.ResetZulipMessageID()
	_u.mutation.SetZulipMessageID(v)
	return _u
}

// SetNillableZulipMessageID sets the "zulip_message_id" field if the given value is not nil.
func (_u *TranscriptUpdateOne) SetNillableZulipMessageID(v *int64) *TranscriptUpdateOne {
	if v != nil {
		_u.SetZulipMessageID(*v)
	}
	return _u
}

// AddZulipMessageID adds value to the "zulip_message_id" field.
func (_u *TranscriptUpdateOne) AddZulipMessageID(v int64) *TranscriptUpdateOne {
	_u.mutation.AddZulipMessageID(v)
	return _u
}

// ClearZulipMessageID clears the value of the "zulip_message_id" field.
func (_u *TranscriptUpdateOne) ClearZulipMessageID() *TranscriptUpdateOne {
	_u.mutation.ClearZulipMessageID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TranscriptUpdateOne) SetUpdatedAt(v time.Time) *TranscriptUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddTopicIDs adds the "topics" edge to the Topic entity by IDs.
func (_u *TranscriptUpdateOne) AddTopicIDs(ids ...string) *TranscriptUpdateOne {
	_u.mutation.AddTopicIDs(ids...)
	return _u
}

// AddTopics adds the "topics" edges to the Topic entity.
func (_u *TranscriptUpdateOne) AddTopics(v ...*Topic) *TranscriptUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTopicIDs(ids...)
}

// AddParticipantIDs adds the "participants" edge to the Participant entity by IDs.
func (_u *TranscriptUpdateOne) AddParticipantIDs(ids ...string) *TranscriptUpdateOne {
	_u.mutation.AddParticipantIDs(ids...)
	return _u
}

// AddParticipants adds the "participants" edges to the Participant entity.
func (_u *TranscriptUpdateOne) AddParticipants(v ...*Participant) *TranscriptUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddParticipantIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *TranscriptUpdateOne) AddEventIDs(ids ...int) *TranscriptUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *TranscriptUpdateOne) AddEvents(v ...*Event) *TranscriptUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddTaskIDs adds the "tasks" edge to the PipelineTask entity by IDs.
func (_u *TranscriptUpdateOne) AddTaskIDs(ids ...string) *TranscriptUpdateOne {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the PipelineTask entity.
func (_u *TranscriptUpdateOne) AddTasks(v ...*PipelineTask) *TranscriptUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// Mutation returns the TranscriptMutation object of the builder.
func (_u *TranscriptUpdateOne) Mutation() *TranscriptMutation {
	return _u.mutation
}

// ClearTopics clears all "topics" edges to the Topic entity.
func (_u *TranscriptUpdateOne) ClearTopics() *TranscriptUpdateOne {
	_u.mutation.ClearTopics()
	return _u
}

// RemoveTopicIDs removes the "topics" edge to Topic entities by IDs.
func (_u *TranscriptUpdateOne) RemoveTopicIDs(ids ...string) *TranscriptUpdateOne {
	_u.mutation.RemoveTopicIDs(ids...)
	return _u
}

// RemoveTopics removes "topics" edges to Topic entities.
func (_u *TranscriptUpdateOne) RemoveTopics(v ...*Topic) *TranscriptUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTopicIDs(ids...)
}

// ClearParticipants clears all "participants" edges to the Participant entity.
func (_u *TranscriptUpdateOne) ClearParticipants() *TranscriptUpdateOne {
	_u.mutation.ClearParticipants()
	return _u
}

// RemoveParticipantIDs removes the "participants" edge to Participant entities by IDs.
func (_u *TranscriptUpdateOne) RemoveParticipantIDs(ids ...string) *TranscriptUpdateOne {
	_u.mutation.RemoveParticipantIDs(ids...)
	return _u
}

// RemoveParticipants removes "participants" edges to Participant entities.
func (_u *TranscriptUpdateOne) RemoveParticipants(v ...*Participant) *TranscriptUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveParticipantIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *TranscriptUpdateOne) ClearEvents() *TranscriptUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *TranscriptUpdateOne) RemoveEventIDs(ids ...int) *TranscriptUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *TranscriptUpdateOne) RemoveEvents(v ...*Event) *TranscriptUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearTasks clears all "tasks" edges to the PipelineTask entity.
func (_u *TranscriptUpdateOne) ClearTasks() *TranscriptUpdateOne {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to PipelineTask entities by IDs.
func (_u *TranscriptUpdateOne) RemoveTaskIDs(ids ...string) *TranscriptUpdateOne {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to PipelineTask entities.
func (_u *TranscriptUpdateOne) RemoveTasks(v ...*PipelineTask) *TranscriptUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// Where appends a list predicates to the TranscriptUpdate builder.
func (_u *TranscriptUpdateOne) Where(ps ...predicate.Transcript) *TranscriptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TranscriptUpdateOne) Select(field string, fields ...string) *TranscriptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Transcript entity.
func (_u *TranscriptUpdateOne) Save(ctx context.Context) (*Transcript, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TranscriptUpdateOne) SaveX(ctx context.Context) *Transcript {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TranscriptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TranscriptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TranscriptUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := transcript.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TranscriptUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := transcript.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Transcript.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AudioLocation(); ok {
		if err := transcript.AudioLocationValidator(v); err != nil {
			return &ValidationError{Name: "audio_location", err: fmt.Errorf(`ent: validator failed for field "Transcript.audio_location": %w`, err)}
		}
	}
	return nil
}

func (_u *TranscriptUpdateOne) sqlSave(ctx context.Context) (_node *Transcript, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transcript.Table, transcript.Columns, sqlgraph.NewFieldSpec(transcript.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Transcript.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, transcript.FieldID)
		for _, f := range fields {
			if !transcript.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != transcript.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(transcript.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(transcript.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceLanguage(); ok {
		_spec.SetField(transcript.FieldSourceLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetLanguage(); ok {
		_spec.SetField(transcript.FieldTargetLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(transcript.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(transcript.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.ShortSummary(); ok {
		_spec.SetField(transcript.FieldShortSummary, field.TypeString, value)
	}
	if _u.mutation.ShortSummaryCleared() {
		_spec.ClearField(transcript.FieldShortSummary, field.TypeString)
	}
	if value, ok := _u.mutation.LongSummary(); ok {
		_spec.SetField(transcript.FieldLongSummary, field.TypeString, value)
	}
	if _u.mutation.LongSummaryCleared() {
		_spec.ClearField(transcript.FieldLongSummary, field.TypeString)
	}
	if value, ok := _u.mutation.ActionItems(); ok {
		_spec.SetField(transcript.FieldActionItems, field.TypeJSON, value)
	}
	if _u.mutation.ActionItemsCleared() {
		_spec.ClearField(transcript.FieldActionItems, field.TypeJSON)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(transcript.FieldDurationMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(transcript.FieldDurationMs, field.TypeFloat64, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(transcript.FieldDurationMs, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AudioLocation(); ok {
		_spec.SetField(transcript.FieldAudioLocation, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AudioDeleted(); ok {
		_spec.SetField(transcript.FieldAudioDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Words(); ok {
		_spec.SetField(transcript.FieldWords, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWords(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, transcript.FieldWords, value)
		})
	}
	if _u.mutation.WordsCleared() {
		_spec.ClearField(transcript.FieldWords, field.TypeJSON)
	}
	if value, ok := _u.mutation.WorkflowRunID(); ok {
		_spec.SetField(transcript.FieldWorkflowRunID, field.TypeString, value)
	}
	if _u.mutation.WorkflowRunIDCleared() {
		_spec.ClearField(transcript.FieldWorkflowRunID, field.TypeString)
	}
	if value, ok := _u.mutation.ZulipMessageID(); ok {
		_spec.SetField(transcript.FieldZulipMessageID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedZulipMessageID(); ok {
		_spec.AddField(transcript.FieldZulipMessageID, field.TypeInt64, value)
	}
	if _u.mutation.ZulipMessageIDCleared() {
		_spec.ClearField(transcript.FieldZulipMessageID, field.TypeInt64)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(transcript.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TopicsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTopicsIDs(); len(nodes) > 0 && !_u.mutation.TopicsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TopicsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ParticipantsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedParticipantsIDs(); len(nodes) > 0 && !_u.mutation.ParticipantsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParticipantsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Transcript{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transcript.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
