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
	"github.com/monadical-sas/reflector/ent/participant"
	"github.com/monadical-sas/reflector/ent/predicate"
)

// ParticipantUpdate is the builder for updating Participant entities.
type ParticipantUpdate struct {
	config
	hooks    []Hook
	mutation *ParticipantMutation
}

// Where appends a list predicates to the ParticipantUpdate builder.
func (_u *ParticipantUpdate) Where(ps ...predicate.Participant) *ParticipantUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSpeakerIndex sets the "speaker_index" field.
func (_u *ParticipantUpdate) SetSpeakerIndex(v int) *ParticipantUpdate {
	_u.mutation.ResetSpeakerIndex()
	_u.mutation.SetSpeakerIndex(v)
	return _u
}

// SetNillableSpeakerIndex sets the "speaker_index" field if the given value is not nil.
func (_u *ParticipantUpdate) SetNillableSpeakerIndex(v *int) *ParticipantUpdate {
	if v != nil {
		_u.SetSpeakerIndex(*v)
	}
	return _u
}

// AddSpeakerIndex adds value to the "speaker_index" field.
func (_u *ParticipantUpdate) AddSpeakerIndex(v int) *ParticipantUpdate {
	_u.mutation.AddSpeakerIndex(v)
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *ParticipantUpdate) SetDisplayName(v string) *ParticipantUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *ParticipantUpdate) SetNillableDisplayName(v *string) *ParticipantUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetPlatformID sets the "platform_id" field.
func (_u *ParticipantUpdate) SetPlatformID(v string) *ParticipantUpdate {
	_u.mutation.SetPlatformID(v)
	return _u
}

// SetNillablePlatformID sets the "platform_id" field if the given value is not nil.
func (_u *ParticipantUpdate) SetNillablePlatformID(v *string) *ParticipantUpdate {
	if v != nil {
		_u.SetPlatformID(*v)
	}
	return _u
}

// ClearPlatformID clears the value of the "platform_id" field.
func (_u *ParticipantUpdate) ClearPlatformID() *ParticipantUpdate {
	_u.mutation.ClearPlatformID()
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ParticipantUpdate) SetUserID(v string) *ParticipantUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ParticipantUpdate) SetNillableUserID(v *string) *ParticipantUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *ParticipantUpdate) ClearUserID() *ParticipantUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ParticipantUpdate) SetUpdatedAt(v time.Time) *ParticipantUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ParticipantMutation object of the builder.
func (_u *ParticipantUpdate) Mutation() *ParticipantMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ParticipantUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ParticipantUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ParticipantUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ParticipantUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ParticipantUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := participant.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ParticipantUpdate) check() error {
	if v, ok := _u.mutation.DisplayName(); ok {
		if err := participant.DisplayNameValidator(v); err != nil {
			return &ValidationError{Name: "display_name", err: fmt.Errorf(`ent: validator failed for field "Participant.display_name": %w`, err)}
		}
	}
	if _u.mutation.TranscriptCleared() && len(_u.mutation.TranscriptIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Participant.transcript"`)
	}
	return nil
}

func (_u *ParticipantUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(participant.Table, participant.Columns, sqlgraph.NewFieldSpec(participant.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SpeakerIndex(); ok {
		_spec.SetField(participant.FieldSpeakerIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSpeakerIndex(); ok {
		_spec.AddField(participant.FieldSpeakerIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(participant.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlatformID(); ok {
		_spec.SetField(participant.FieldPlatformID, field.TypeString, value)
	}
	if _u.mutation.PlatformIDCleared() {
		_spec.ClearField(participant.FieldPlatformID, field.TypeString)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(participant.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(participant.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(participant.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{participant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ParticipantUpdateOne is the builder for updating a single Participant entity.
type ParticipantUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ParticipantMutation
}

// SetSpeakerIndex sets the "speaker_index" field.
func (_u *ParticipantUpdateOne) SetSpeakerIndex(v int) *ParticipantUpdateOne {
	_u.mutation.ResetSpeakerIndex()
	_u.mutation.SetSpeakerIndex(v)
	return _u
}

// SetNillableSpeakerIndex sets the "speaker_index" field if the given value is not nil.
func (_u *ParticipantUpdateOne) SetNillableSpeakerIndex(v *int) *ParticipantUpdateOne {
	if v != nil {
		_u.SetSpeakerIndex(*v)
	}
	return _u
}

// AddSpeakerIndex adds value to the "speaker_index" field.
func (_u *ParticipantUpdateOne) AddSpeakerIndex(v int) *ParticipantUpdateOne {
	_u.mutation.AddSpeakerIndex(v)
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *ParticipantUpdateOne) SetDisplayName(v string) *ParticipantUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *ParticipantUpdateOne) SetNillableDisplayName(v *string) *ParticipantUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetPlatformID sets the "platform_id" field.
func (_u *ParticipantUpdateOne) SetPlatformID(v string) *ParticipantUpdateOne {
	_u.mutation.SetPlatformID(v)
	return _u
}

// SetNillablePlatformID sets the "platform_id" field if the given value is not nil.
func (_u *ParticipantUpdateOne) SetNillablePlatformID(v *string) *ParticipantUpdateOne {
	if v != nil {
		_u.SetPlatformID(*v)
	}
	return _u
}

// ClearPlatformID clears the value of the "platform_id" field.
func (_u *ParticipantUpdateOne) ClearPlatformID() *ParticipantUpdateOne {
	_u.mutation.ClearPlatformID()
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ParticipantUpdateOne) SetUserID(v string) *ParticipantUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ParticipantUpdateOne) SetNillableUserID(v *string) *ParticipantUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *ParticipantUpdateOne) ClearUserID() *ParticipantUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ParticipantUpdateOne) SetUpdatedAt(v time.Time) *ParticipantUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ParticipantMutation object of the builder.
func (_u *ParticipantUpdateOne) Mutation() *ParticipantMutation {
	return _u.mutation
}

// Where appends a list predicates to the ParticipantUpdate builder.
func (_u *ParticipantUpdateOne) Where(ps ...predicate.Participant) *ParticipantUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ParticipantUpdateOne) Select(field string, fields ...string) *ParticipantUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Participant entity.
func (_u *ParticipantUpdateOne) Save(ctx context.Context) (*Participant, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ParticipantUpdateOne) SaveX(ctx context.Context) *Participant {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ParticipantUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ParticipantUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ParticipantUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := participant.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ParticipantUpdateOne) check() error {
	if v, ok := _u.mutation.DisplayName(); ok {
		if err := participant.DisplayNameValidator(v); err != nil {
			return &ValidationError{Name: "display_name", err: fmt.Errorf(`ent: validator failed for field "Participant.display_name": %w`, err)}
		}
	}
	if _u.mutation.TranscriptCleared() && len(_u.mutation.TranscriptIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Participant.transcript"`)
	}
	return nil
}

func (_u *ParticipantUpdateOne) sqlSave(ctx context.Context) (_node *Participant, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(participant.Table, participant.Columns, sqlgraph.NewFieldSpec(participant.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Participant.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, participant.FieldID)
		for _, f := range fields {
			if !participant.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != participant.FieldID {
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
	if value, ok := _u.mutation.SpeakerIndex(); ok {
		_spec.SetField(participant.FieldSpeakerIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSpeakerIndex(); ok {
		_spec.AddField(participant.FieldSpeakerIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(participant.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlatformID(); ok {
		_spec.SetField(participant.FieldPlatformID, field.TypeString, value)
	}
	if _u.mutation.PlatformIDCleared() {
		_spec.ClearField(participant.FieldPlatformID, field.TypeString)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(participant.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(participant.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(participant.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Participant{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{participant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
