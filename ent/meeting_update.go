// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/monadical-sas/reflector/ent/meeting"
	"github.com/monadical-sas/reflector/ent/meetingconsent"
	"github.com/monadical-sas/reflector/ent/predicate"
	"github.com/monadical-sas/reflector/ent/room"
	"github.com/monadical-sas/reflector/ent/transcript"
)

// MeetingUpdate is the builder for updating Meeting entities.
type MeetingUpdate struct {
	config
	hooks    []Hook
	mutation *MeetingMutation
}

// Where appends a list predicates to the MeetingUpdate builder.
func (_u *MeetingUpdate) Where(ps ...predicate.Meeting) *MeetingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRoomID sets the "room_id" field.
func (_u *MeetingUpdate) SetRoomID(v string) *MeetingUpdate {
	_u.mutation.SetRoomID(v)
	return _u
}

// SetNillableRoomID sets the "room_id" field if the given value is not nil.
func (_u *MeetingUpdate) SetNillableRoomID(v *string) *MeetingUpdate {
	if v != nil {
		_u.SetRoomID(*v)
	}
	return _u
}

// ClearRoomID clears the value of the "room_id" field.
func (_u *MeetingUpdate) ClearRoomID() *MeetingUpdate {
	_u.mutation.ClearRoomID()
	return _u
}

// SetRecordingID sets the "recording_id" field.
func (_u *MeetingUpdate) SetRecordingID(v string) *MeetingUpdate {
	_u.mutation.SetRecordingID(v)
	return _u
}

// SetNillableRecordingID sets the "recording_id" field if the given value is not nil.
func (_u *MeetingUpdate) SetNillableRecordingID(v *string) *MeetingUpdate {
	if v != nil {
		_u.SetRecordingID(*v)
	}
	return _u
}

// ClearRecordingID clears the value of the "recording_id" field.
func (_u *MeetingUpdate) ClearRecordingID() *MeetingUpdate {
	_u.mutation.ClearRecordingID()
	return _u
}

// SetRoom sets the "room" edge to the Room entity.
func (_u *MeetingUpdate) SetRoom(v *Room) *MeetingUpdate {
	return _u.SetRoomID(v.ID)
}

// AddConsentIDs adds the "consents" edge to the MeetingConsent entity by IDs.
func (_u *MeetingUpdate) AddConsentIDs(ids ...string) *MeetingUpdate {
	_u.mutation.AddConsentIDs(ids...)
	return _u
}

// AddConsents adds the "consents" edges to the MeetingConsent entity.
func (_u *MeetingUpdate) AddConsents(v ...*MeetingConsent) *MeetingUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddConsentIDs(ids...)
}

// AddTranscriptIDs adds the "transcripts" edge to the Transcript entity by IDs.
func (_u *MeetingUpdate) AddTranscriptIDs(ids ...string) *MeetingUpdate {
	_u.mutation.AddTranscriptIDs(ids...)
	return _u
}

// AddTranscripts adds the "transcripts" edges to the Transcript entity.
func (_u *MeetingUpdate) AddTranscripts(v ...*Transcript) *MeetingUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTranscriptIDs(ids...)
}

// Mutation returns the MeetingMutation object of the builder.
func (_u *MeetingUpdate) Mutation() *MeetingMutation {
	return _u.mutation
}

// ClearRoom clears the "room" edge to the Room entity.
func (_u *MeetingUpdate) ClearRoom() *MeetingUpdate {
	_u.mutation.ClearRoom()
	return _u
}

// ClearConsents clears all "consents" edges to the MeetingConsent entity.
func (_u *MeetingUpdate) ClearConsents() *MeetingUpdate {
	_u.mutation.ClearConsents()
	return _u
}

// RemoveConsentIDs removes the "consents" edge to MeetingConsent entities by IDs.
func (_u *MeetingUpdate) RemoveConsentIDs(ids ...string) *MeetingUpdate {
	_u.mutation.RemoveConsentIDs(ids...)
	return _u
}

// RemoveConsents removes "consents" edges to MeetingConsent entities.
func (_u *MeetingUpdate) RemoveConsents(v ...*MeetingConsent) *MeetingUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveConsentIDs(ids...)
}

// ClearTranscripts clears all "transcripts" edges to the Transcript entity.
func (_u *MeetingUpdate) ClearTranscripts() *MeetingUpdate {
	_u.mutation.ClearTranscripts()
	return _u
}

// RemoveTranscriptIDs removes the "transcripts" edge to Transcript entities by IDs.
func (_u *MeetingUpdate) RemoveTranscriptIDs(ids ...string) *MeetingUpdate {
	_u.mutation.RemoveTranscriptIDs(ids...)
	return _u
}

// RemoveTranscripts removes "transcripts" edges to Transcript entities.
func (_u *MeetingUpdate) RemoveTranscripts(v ...*Transcript) *MeetingUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTranscriptIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MeetingUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MeetingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MeetingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MeetingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *MeetingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(meeting.Table, meeting.Columns, sqlgraph.NewFieldSpec(meeting.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RecordingID(); ok {
		_spec.SetField(meeting.FieldRecordingID, field.TypeString, value)
	}
	if _u.mutation.RecordingIDCleared() {
		_spec.ClearField(meeting.FieldRecordingID, field.TypeString)
	}
	if _u.mutation.RoomCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   meeting.RoomTable,
			Columns: []string{meeting.RoomColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(room.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RoomIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   meeting.RoomTable,
			Columns: []string{meeting.RoomColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(room.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ConsentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   meeting.ConsentsTable,
			Columns: []string{meeting.ConsentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(meetingconsent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedConsentsIDs(); len(nodes) > 0 && !_u.mutation.ConsentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   meeting.ConsentsTable,
			Columns: []string{meeting.ConsentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(meetingconsent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConsentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   meeting.ConsentsTable,
			Columns: []string{meeting.ConsentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(meetingconsent.FieldID, field.TypeString),
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
			Table:   meeting.TranscriptsTable,
			Columns: []string{meeting.TranscriptsColumn},
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
			Table:   meeting.TranscriptsTable,
			Columns: []string{meeting.TranscriptsColumn},
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
			Table:   meeting.TranscriptsTable,
			Columns: []string{meeting.TranscriptsColumn},
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
			err = &NotFoundError{meeting.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MeetingUpdateOne is the builder for updating a single Meeting entity.
type MeetingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MeetingMutation
}

// SetRoomID sets the "room_id" field.
func (_u *MeetingUpdateOne) SetRoomID(v string) *MeetingUpdateOne {
	_u.mutation.SetRoomID(v)
	return _u
}

// SetNillableRoomID sets the "room_id" field if the given value is not nil.
func (_u *MeetingUpdateOne) SetNillableRoomID(v *string) *MeetingUpdateOne {
	if v != nil {
		_u.SetRoomID(*v)
	}
	return _u
}

// ClearRoomID clears the value of the "room_id" field.
func (_u *MeetingUpdateOne) ClearRoomID() *MeetingUpdateOne {
	_u.mutation.ClearRoomID()
	return _u
}

// SetRecordingID sets the "recording_id" field.
func (_u *MeetingUpdateOne) SetRecordingID(v string) *MeetingUpdateOne {
	_u.mutation.SetRecordingID(v)
	return _u
}

// SetNillableRecordingID sets the "recording_id" field if the given value is not nil.
func (_u *MeetingUpdateOne) SetNillableRecordingID(v *string) *MeetingUpdateOne {
	if v != nil {
		_u.SetRecordingID(*v)
	}
	return _u
}

// ClearRecordingID clears the value of the "recording_id" field.
func (_u *MeetingUpdateOne) ClearRecordingID() *MeetingUpdateOne {
	_u.mutation.ClearRecordingID()
	return _u
}

// SetRoom sets the "room" edge to the Room entity.
func (_u *MeetingUpdateOne) SetRoom(v *Room) *MeetingUpdateOne {
	return _u.SetRoomID(v.ID)
}

// AddConsentIDs adds the "consents" edge to the MeetingConsent entity by IDs.
func (_u *MeetingUpdateOne) AddConsentIDs(ids ...string) *MeetingUpdateOne {
	_u.mutation.AddConsentIDs(ids...)
	return _u
}

// AddConsents adds the "consents" edges to the MeetingConsent entity.
func (_u *MeetingUpdateOne) AddConsents(v ...*MeetingConsent) *MeetingUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddConsentIDs(ids...)
}

// AddTranscriptIDs adds the "transcripts" edge to the Transcript entity by IDs.
func (_u *MeetingUpdateOne) AddTranscriptIDs(ids ...string) *MeetingUpdateOne {
	_u.mutation.AddTranscriptIDs(ids...)
	return _u
}

// AddTranscripts adds the "transcripts" edges to the Transcript entity.
func (_u *MeetingUpdateOne) AddTranscripts(v ...*Transcript) *MeetingUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTranscriptIDs(ids...)
}

// Mutation returns the MeetingMutation object of the builder.
func (_u *MeetingUpdateOne) Mutation() *MeetingMutation {
	return _u.mutation
}

// ClearRoom clears the "room" edge to the Room entity.
func (_u *MeetingUpdateOne) ClearRoom() *MeetingUpdateOne {
	_u.mutation.ClearRoom()
	return _u
}

// ClearConsents clears all "consents" edges to the MeetingConsent entity.
func (_u *MeetingUpdateOne) ClearConsents() *MeetingUpdateOne {
	_u.mutation.ClearConsents()
	return _u
}

// RemoveConsentIDs removes the "consents" edge to MeetingConsent entities by IDs.
func (_u *MeetingUpdateOne) RemoveConsentIDs(ids ...string) *MeetingUpdateOne {
	_u.mutation.RemoveConsentIDs(ids...)
	return _u
}

// RemoveConsents removes "consents" edges to MeetingConsent entities.
func (_u *MeetingUpdateOne) RemoveConsents(v ...*MeetingConsent) *MeetingUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveConsentIDs(ids...)
}

// ClearTranscripts clears all "transcripts" edges to the Transcript entity.
func (_u *MeetingUpdateOne) ClearTranscripts() *MeetingUpdateOne {
	_u.mutation.ClearTranscripts()
	return _u
}

// RemoveTranscriptIDs removes the "transcripts" edge to Transcript entities by IDs.
func (_u *MeetingUpdateOne) RemoveTranscriptIDs(ids ...string) *MeetingUpdateOne {
	_u.mutation.RemoveTranscriptIDs(ids...)
	return _u
}

// RemoveTranscripts removes "transcripts" edges to Transcript entities.
func (_u *MeetingUpdateOne) RemoveTranscripts(v ...*Transcript) *MeetingUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTranscriptIDs(ids...)
}

// Where appends a list predicates to the MeetingUpdate builder.
func (_u *MeetingUpdateOne) Where(ps ...predicate.Meeting) *MeetingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MeetingUpdateOne) Select(field string, fields ...string) *MeetingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Meeting entity.
func (_u *MeetingUpdateOne) Save(ctx context.Context) (*Meeting, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MeetingUpdateOne) SaveX(ctx context.Context) *Meeting {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MeetingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MeetingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *MeetingUpdateOne) sqlSave(ctx context.Context) (_node *Meeting, err error) {
	_spec := sqlgraph.NewUpdateSpec(meeting.Table, meeting.Columns, sqlgraph.NewFieldSpec(meeting.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Meeting.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, meeting.FieldID)
		for _, f := range fields {
			if !meeting.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != meeting.FieldID {
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
	if value, ok := _u.mutation.RecordingID(); ok {
		_spec.SetField(meeting.FieldRecordingID, field.TypeString, value)
	}
	if _u.mutation.RecordingIDCleared() {
		_spec.ClearField(meeting.FieldRecordingID, field.TypeString)
	}
	if _u.mutation.RoomCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   meeting.RoomTable,
			Columns: []string{meeting.RoomColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(room.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RoomIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   meeting.RoomTable,
			Columns: []string{meeting.RoomColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(room.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ConsentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   meeting.ConsentsTable,
			Columns: []string{meeting.ConsentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(meetingconsent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedConsentsIDs(); len(nodes) > 0 && !_u.mutation.ConsentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   meeting.ConsentsTable,
			Columns: []string{meeting.ConsentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(meetingconsent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConsentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   meeting.ConsentsTable,
			Columns: []string{meeting.ConsentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(meetingconsent.FieldID, field.TypeString),
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
			Table:   meeting.TranscriptsTable,
			Columns: []string{meeting.TranscriptsColumn},
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
			Table:   meeting.TranscriptsTable,
			Columns: []string{meeting.TranscriptsColumn},
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
			Table:   meeting.TranscriptsTable,
			Columns: []string{meeting.TranscriptsColumn},
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
	_node = &Meeting{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{meeting.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
