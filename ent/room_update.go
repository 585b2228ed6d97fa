// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/monadical-sas/reflector/ent/meeting"
	"github.com/monadical-sas/reflector/ent/predicate"
	"github.com/monadical-sas/reflector/ent/room"
	"github.com/monadical-sas/reflector/ent/transcript"
)

// RoomUpdate is the builder for updating Room entities.
type RoomUpdate struct {
	config
	hooks    []Hook
	mutation *RoomMutation
}

// Where appends a list predicates to the RoomUpdate builder.
func (_u *RoomUpdate) Where(ps ...predicate.Room) *RoomUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *RoomUpdate) SetName(v string) *RoomUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *RoomUpdate) SetNillableName(v *string) *RoomUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetWebhookURL sets the "webhook_url" field.
func (_u *RoomUpdate) SetWebhookURL(v string) *RoomUpdate {
	_u.mutation.SetWebhookURL(v)
	return _u
}

// SetNillableWebhookURL sets the "webhook_url" field if the given value is not nil.
func (_u *RoomUpdate) SetNillableWebhookURL(v *string) *RoomUpdate {
	if v != nil {
		_u.SetWebhookURL(*v)
	}
	return _u
}

// ClearWebhookURL clears the value of the "webhook_url" field.
func (_u *RoomUpdate) ClearWebhookURL() *RoomUpdate {
	_u.mutation.ClearWebhookURL()
	return _u
}

// SetWebhookSecret sets the "webhook_secret" field.
func (_u *RoomUpdate) SetWebhookSecret(v string) *RoomUpdate {
	_u.mutation.SetWebhookSecret(v)
	return _u
}

// SetNillableWebhookSecret sets the "webhook_secret" field if the given value is not nil.
func (_u *RoomUpdate) SetNillableWebhookSecret(v *string) *RoomUpdate {
	if v != nil {
		_u.SetWebhookSecret(*v)
	}
	return _u
}

// ClearWebhookSecret clears the value of the "webhook_secret" field.
func (_u *RoomUpdate) ClearWebhookSecret() *RoomUpdate {
	_u.mutation.ClearWebhookSecret()
	return _u
}

// SetZulipAutoPost sets the "zulip_auto_post" field.
func (_u *RoomUpdate) SetZulipAutoPost(v bool) *RoomUpdate {
	_u.mutation.SetZulipAutoPost(v)
	return _u
}

// SetNillableZulipAutoPost sets the "zulip_auto_post" field if the given value is not nil.
func (_u *RoomUpdate) SetNillableZulipAutoPost(v *bool) *RoomUpdate {
	if v != nil {
		_u.SetZulipAutoPost(*v)
	}
	return _u
}

// SetZulipStream sets the "zulip_stream" field.
func (_u *RoomUpdate) SetZulipStream(v string) *RoomUpdate {
	_u.mutation.SetZulipStream(v)
	return _u
}

// SetNillableZulipStream sets the "zulip_stream" field if the given value is not nil.
func (_u *RoomUpdate) SetNillableZulipStream(v *string) *RoomUpdate {
	if v != nil {
		_u.SetZulipStream(*v)
	}
	return _u
}

// ClearZulipStream clears the value of the "zulip_stream" field.
func (_u *RoomUpdate) ClearZulipStream() *RoomUpdate {
	_u.mutation.ClearZulipStream()
	return _u
}

// SetZulipTopic sets the "zulip_topic" field.
func (_u *RoomUpdate) SetZulipTopic(v string) *RoomUpdate {
	_u.mutation.SetZulipTopic(v)
	return _u
}

// SetNillableZulipTopic sets the "zulip_topic" field if the given value is not nil.
func (_u *RoomUpdate) SetNillableZulipTopic(v *string) *RoomUpdate {
	if v != nil {
		_u.SetZulipTopic(*v)
	}
	return _u
}

// ClearZulipTopic clears the value of the "zulip_topic" field.
func (_u *RoomUpdate) ClearZulipTopic() *RoomUpdate {
	_u.mutation.ClearZulipTopic()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RoomUpdate) SetUpdatedAt(v time.Time) *RoomUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMeetingIDs adds the "meetings" edge to the Meeting entity by IDs.
func (_u *RoomUpdate) AddMeetingIDs(ids ...string) *RoomUpdate {
	_u.mutation.AddMeetingIDs(ids...)
	return _u
}

// AddMeetings adds the "meetings" edges to the Meeting entity.
func (_u *RoomUpdate) AddMeetings(v ...*Meeting) *RoomUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMeetingIDs(ids...)
}

// AddTranscriptIDs adds the "transcripts" edge to the Transcript entity by IDs.
func (_u *RoomUpdate) AddTranscriptIDs(ids ...string) *RoomUpdate {
	_u.mutation.AddTranscriptIDs(ids...)
	return _u
}

// AddTranscripts adds the "transcripts" edges to the Transcript entity.
func (_u *RoomUpdate) AddTranscripts(v ...*Transcript) *RoomUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTranscriptIDs(ids...)
}

// Mutation returns the RoomMutation object of the builder.
func (_u *RoomUpdate) Mutation() *RoomMutation {
	return _u.mutation
}

// ClearMeetings clears all "meetings" edges to the Meeting entity.
func (_u *RoomUpdate) ClearMeetings() *RoomUpdate {
	_u.mutation.ClearMeetings()
	return _u
}

// RemoveMeetingIDs removes the "meetings" edge to Meeting entities by IDs.
func (_u *RoomUpdate) RemoveMeetingIDs(ids ...string) *RoomUpdate {
	_u.mutation.RemoveMeetingIDs(ids...)
	return _u
}

// RemoveMeetings removes "meetings" edges to Meeting entities.
func (_u *RoomUpdate) RemoveMeetings(v ...*Meeting) *RoomUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMeetingIDs(ids...)
}

// ClearTranscripts clears all "transcripts" edges to the Transcript entity.
func (_u *RoomUpdate) ClearTranscripts() *RoomUpdate {
	_u.mutation.ClearTranscripts()
	return _u
}

// RemoveTranscriptIDs removes the "transcripts" edge to Transcript entities by IDs.
func (_u *RoomUpdate) RemoveTranscriptIDs(ids ...string) *RoomUpdate {
	_u.mutation.RemoveTranscriptIDs(ids...)
	return _u
}

// RemoveTranscripts removes "transcripts" edges to Transcript entities.
func (_u *RoomUpdate) RemoveTranscripts(v ...*Transcript) *RoomUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTranscriptIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RoomUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoomUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RoomUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoomUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RoomUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := room.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RoomUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := room.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Room.name": %w`, err)}
		}
	}
	return nil
}

func (_u *RoomUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(room.Table, room.Columns, sqlgraph.NewFieldSpec(room.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(room.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.WebhookURL(); ok {
		_spec.SetField(room.FieldWebhookURL, field.TypeString, value)
	}
	if _u.mutation.WebhookURLCleared() {
		_spec.ClearField(room.FieldWebhookURL, field.TypeString)
	}
	if value, ok := _u.mutation.WebhookSecret(); ok {
		_spec.SetField(room.FieldWebhookSecret, field.TypeString, value)
	}
	if _u.mutation.WebhookSecretCleared() {
		_spec.ClearField(room.FieldWebhookSecret, field.TypeString)
	}
	if value, ok := _u.mutation.ZulipAutoPost(); ok {
		_spec.SetField(room.FieldZulipAutoPost, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ZulipStream(); ok {
		_spec.SetField(room.FieldZulipStream, field.TypeString, value)
	}
	if _u.mutation.ZulipStreamCleared() {
		_spec.ClearField(room.FieldZulipStream, field.TypeString)
	}
	if value, ok := _u.mutation.ZulipTopic(); ok {
		_spec.SetField(room.FieldZulipTopic, field.TypeString, value)
	}
	if _u.mutation.ZulipTopicCleared() {
		_spec.ClearField(room.FieldZulipTopic, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(room.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MeetingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   room.MeetingsTable,
			Columns: []string{room.MeetingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(meeting.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMeetingsIDs(); len(nodes) > 0 && !_u.mutation.MeetingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   room.MeetingsTable,
			Columns: []string{room.MeetingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(meeting.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MeetingsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   room.MeetingsTable,
			Columns: []string{room.MeetingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(meeting.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TranscriptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   room.TranscriptsTable,
			Columns: []string{room.TranscriptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transcript.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTranscriptsIDs(); len(nodes) > 0 && !_u.mutation.TranscriptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   room.TranscriptsTable,
			Columns: []string{room.TranscriptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transcript.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TranscriptsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   room.TranscriptsTable,
			Columns: []string{room.TranscriptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transcript.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{room.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RoomUpdateOne is the builder for updating a single Room entity.
type RoomUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RoomMutation
}

// SetName sets the "name" field.
func (_u *RoomUpdateOne) SetName(v string) *RoomUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *RoomUpdateOne) SetNillableName(v *string) *RoomUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetWebhookURL sets the "webhook_url" field.
func (_u *RoomUpdateOne) SetWebhookURL(v string) *RoomUpdateOne {
	_u.mutation.SetWebhookURL(v)
	return _u
}

// SetNillableWebhookURL sets the "webhook_url" field if the given value is not nil.
func (_u *RoomUpdateOne) SetNillableWebhookURL(v *string) *RoomUpdateOne {
	if v != nil {
		_u.SetWebhookURL(*v)
	}
	return _u
}

// ClearWebhookURL clears the value of the "webhook_url" field.
func (_u *RoomUpdateOne) ClearWebhookURL() *RoomUpdateOne {
	_u.mutation.ClearWebhookURL()
	return _u
}

// SetWebhookSecret sets the "webhook_secret" field.
func (_u *RoomUpdateOne) SetWebhookSecret(v string) *RoomUpdateOne {
	_u.mutation.SetWebhookSecret(v)
	return _u
}

// SetNillableWebhookSecret sets the "webhook_secret" field if the given value is not nil.
func (_u *RoomUpdateOne) SetNillableWebhookSecret(v *string) *RoomUpdateOne {
	if v != nil {
		_u.SetWebhookSecret(*v)
	}
	return _u
}

// ClearWebhookSecret clears the value of the "webhook_secret" field.
func (_u *RoomUpdateOne) ClearWebhookSecret() *RoomUpdateOne {
	_u.mutation.ClearWebhookSecret()
	return _u
}

// SetZulipAutoPost sets the "zulip_auto_post" field.
func (_u *RoomUpdateOne) SetZulipAutoPost(v bool) *RoomUpdateOne {
	_u.mutation.SetZulipAutoPost(v)
	return _u
}

// SetNillableZulipAutoPost sets the "zulip_auto_post" field if the given value is not nil.
func (_u *RoomUpdateOne) SetNillableZulipAutoPost(v *bool) *RoomUpdateOne {
	if v != nil {
		_u.SetZulipAutoPost(*v)
	}
	return _u
}

// SetZulipStream sets the "zulip_stream" field.
func (_u *RoomUpdateOne) SetZulipStream(v string) *RoomUpdateOne {
	_u.mutation.SetZulipStream(v)
	return _u
}

// SetNillableZulipStream sets the "zulip_stream" field if the given value is not nil.
func (_u *RoomUpdateOne) SetNillableZulipStream(v *string) *RoomUpdateOne {
	if v != nil {
		_u.SetZulipStream(*v)
	}
	return _u
}

// ClearZulipStream clears the value of the "zulip_stream" field.
func (_u *RoomUpdateOne) ClearZulipStream() *RoomUpdateOne {
	_u.mutation.ClearZulipStream()
	return _u
}

// SetZulipTopic sets the "zulip_topic" field.
func (_u *RoomUpdateOne) SetZulipTopic(v string) *RoomUpdateOne {
	_u.mutation.SetZulipTopic(v)
	return _u
}

// SetNillableZulipTopic sets the "zulip_topic" field if the given value is not nil.
func (_u *RoomUpdateOne) SetNillableZulipTopic(v *string) *RoomUpdateOne {
	if v != nil {
		_u.SetZulipTopic(*v)
	}
	return _u
}

// ClearZulipTopic clears the value of the "zulip_topic" field.
func (_u *RoomUpdateOne) ClearZulipTopic() *RoomUpdateOne {
	_u.mutation.ClearZulipTopic()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RoomUpdateOne) SetUpdatedAt(v time.Time) *RoomUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMeetingIDs adds the "meetings" edge to the Meeting entity by IDs.
func (_u *RoomUpdateOne) AddMeetingIDs(ids ...string) *RoomUpdateOne {
	_u.mutation.AddMeetingIDs(ids...)
	return _u
}

// AddMeetings adds the "meetings" edges to the Meeting entity.
func (_u *RoomUpdateOne) AddMeetings(v ...*Meeting) *RoomUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMeetingIDs(ids...)
}

// AddTranscriptIDs adds the "transcripts" edge to the Transcript entity by IDs.
func (_u *RoomUpdateOne) AddTranscriptIDs(ids ...string) *RoomUpdateOne {
	_u.mutation.AddTranscriptIDs(ids...)
	return _u
}

// AddTranscripts adds the "transcripts" edges to the Transcript entity.
func (_u *RoomUpdateOne) AddTranscripts(v ...*Transcript) *RoomUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTranscriptIDs(ids...)
}

// Mutation returns the RoomMutation object of the builder.
func (_u *RoomUpdateOne) Mutation() *RoomMutation {
	return _u.mutation
}

// ClearMeetings clears all "meetings" edges to the Meeting entity.
func (_u *RoomUpdateOne) ClearMeetings() *RoomUpdateOne {
	_u.mutation.ClearMeetings()
	return _u
}

// RemoveMeetingIDs removes the "meetings" edge to Meeting entities by IDs.
func (_u *RoomUpdateOne) RemoveMeetingIDs(ids ...string) *RoomUpdateOne {
	_u.mutation.RemoveMeetingIDs(ids...)
	return _u
}

// RemoveMeetings removes "meetings" edges to Meeting entities.
func (_u *RoomUpdateOne) RemoveMeetings(v ...*Meeting) *RoomUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMeetingIDs(ids...)
}

// ClearTranscripts clears all "transcripts" edges to the Transcript entity.
func (_u *RoomUpdateOne) ClearTranscripts() *RoomUpdateOne {
	_u.mutation.ClearTranscripts()
	return _u
}

// RemoveTranscriptIDs removes the "transcripts" edge to Transcript entities by IDs.
func (_u *RoomUpdateOne) RemoveTranscriptIDs(ids ...string) *RoomUpdateOne {
	_u.mutation.RemoveTranscriptIDs(ids...)
	return _u
}

// RemoveTranscripts removes "transcripts" edges to Transcript entities.
func (_u *RoomUpdateOne) RemoveTranscripts(v ...*Transcript) *RoomUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTranscriptIDs(ids...)
}

// Where appends a list predicates to the RoomUpdate builder.
func (_u *RoomUpdateOne) Where(ps ...predicate.Room) *RoomUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RoomUpdateOne) Select(field string, fields ...string) *RoomUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Room entity.
func (_u *RoomUpdateOne) Save(ctx context.Context) (*Room, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoomUpdateOne) SaveX(ctx context.Context) *Room {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RoomUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoomUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RoomUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := room.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RoomUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := room.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Room.name": %w`, err)}
		}
	}
	return nil
}

func (_u *RoomUpdateOne) sqlSave(ctx context.Context) (_node *Room, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(room.Table, room.Columns, sqlgraph.NewFieldSpec(room.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Room.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, room.FieldID)
		for _, f := range fields {
			if !room.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != room.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(room.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.WebhookURL(); ok {
		_spec.SetField(room.FieldWebhookURL, field.TypeString, value)
	}
	if _u.mutation.WebhookURLCleared() {
		_spec.ClearField(room.FieldWebhookURL, field.TypeString)
	}
	if value, ok := _u.mutation.WebhookSecret(); ok {
		_spec.SetField(room.FieldWebhookSecret, field.TypeString, value)
	}
	if _u.mutation.WebhookSecretCleared() {
		_spec.ClearField(room.FieldWebhookSecret, field.TypeString)
	}
	if value, ok := _u.mutation.ZulipAutoPost(); ok {
		_spec.SetField(room.FieldZulipAutoPost, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ZulipStream(); ok {
		_spec.SetField(room.FieldZulipStream, field.TypeString, value)
	}
	if _u.mutation.ZulipStreamCleared() {
		_spec.ClearField(room.FieldZulipStream, field.TypeString)
	}
	if value, ok := _u.mutation.ZulipTopic(); ok {
		_spec.SetField(room.FieldZulipTopic, field.TypeString, value)
	}
	if _u.mutation.ZulipTopicCleared() {
		_spec.ClearField(room.FieldZulipTopic, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(room.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MeetingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   room.MeetingsTable,
			Columns: []string{room.MeetingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(meeting.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMeetingsIDs(); len(nodes) > 0 && !_u.mutation.MeetingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   room.MeetingsTable,
			Columns: []string{room.MeetingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(meeting.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MeetingsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   room.MeetingsTable,
			Columns: []string{room.MeetingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(meeting.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TranscriptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   room.TranscriptsTable,
			Columns: []string{room.TranscriptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transcript.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTranscriptsIDs(); len(nodes) > 0 && !_u.mutation.TranscriptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   room.TranscriptsTable,
			Columns: []string{room.TranscriptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transcript.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TranscriptsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   room.TranscriptsTable,
			Columns: []string{room.TranscriptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transcript.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Room{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{room.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
