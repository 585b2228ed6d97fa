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
	"github.com/monadical-sas/reflector/ent/meetingconsent"
	"github.com/monadical-sas/reflector/ent/predicate"
)

// MeetingConsentUpdate is the builder for updating MeetingConsent entities.
type MeetingConsentUpdate struct {
	config
	hooks    []Hook
	mutation *MeetingConsentMutation
}

// Where appends a list predicates to the MeetingConsentUpdate builder.
func (_u *MeetingConsentUpdate) Where(ps ...predicate.MeetingConsent) *MeetingConsentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetParticipantIdentifier sets the "participant_identifier" field.
func (_u *MeetingConsentUpdate) SetParticipantIdentifier(v string) *MeetingConsentUpdate {
	_u.mutation.SetParticipantIdentifier(v)
	return _u
}

// SetNillableParticipantIdentifier sets the "participant_identifier" field if the given value is not nil.
func (_u *MeetingConsentUpdate) SetNillableParticipantIdentifier(v *string) *MeetingConsentUpdate {
	if v != nil {
		_u.SetParticipantIdentifier(*v)
	}
	return _u
}

// ClearParticipantIdentifier clears the value of the "participant_identifier" field.
func (_u *MeetingConsentUpdate) ClearParticipantIdentifier() *MeetingConsentUpdate {
	_u.mutation.ClearParticipantIdentifier()
	return _u
}

// SetApproved sets the "approved" field.
func (_u *MeetingConsentUpdate) SetApproved(v bool) *MeetingConsentUpdate {
	_u.mutation.SetApproved(v)
	return _u
}

// SetNillableApproved sets the "approved" field if the given value is not nil.
func (_u *MeetingConsentUpdate) SetNillableApproved(v *bool) *MeetingConsentUpdate {
	if v != nil {
		_u.SetApproved(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MeetingConsentUpdate) SetUpdatedAt(v time.Time) *MeetingConsentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the MeetingConsentMutation object of the builder.
func (_u *MeetingConsentUpdate) Mutation() *MeetingConsentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MeetingConsentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MeetingConsentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MeetingConsentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MeetingConsentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MeetingConsentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := meetingconsent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MeetingConsentUpdate) check() error {
	if _u.mutation.MeetingCleared() && len(_u.mutation.MeetingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MeetingConsent.meeting"`)
	}
	return nil
}

func (_u *MeetingConsentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(meetingconsent.Table, meetingconsent.Columns, sqlgraph.NewFieldSpec(meetingconsent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ParticipantIdentifier(); ok {
		_spec.SetField(meetingconsent.FieldParticipantIdentifier, field.TypeString, value)
	}
	if _u.mutation.ParticipantIdentifierCleared() {
		_spec.ClearField(meetingconsent.FieldParticipantIdentifier, field.TypeString)
	}
	if value, ok := _u.mutation.Approved(); ok {
		_spec.SetField(meetingconsent.FieldApproved, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(meetingconsent.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{meetingconsent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MeetingConsentUpdateOne is the builder for updating a single MeetingConsent entity.
type MeetingConsentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MeetingConsentMutation
}

// SetParticipantIdentifier sets the "participant_identifier" field.
func (_u *MeetingConsentUpdateOne) SetParticipantIdentifier(v string) *MeetingConsentUpdateOne {
	_u.mutation.SetParticipantIdentifier(v)
	return _u
}

// SetNillableParticipantIdentifier sets the "participant_identifier" field if the given value is not nil.
func (_u *MeetingConsentUpdateOne) SetNillableParticipantIdentifier(v *string) *MeetingConsentUpdateOne {
	if v != nil {
		_u.SetParticipantIdentifier(*v)
	}
	return _u
}

// ClearParticipantIdentifier clears the value of the "participant_identifier" field.
func (_u *MeetingConsentUpdateOne) ClearParticipantIdentifier() *MeetingConsentUpdateOne {
	_u.mutation.ClearParticipantIdentifier()
	return _u
}

// SetApproved sets the "approved" field.
func (_u *MeetingConsentUpdateOne) SetApproved(v bool) *MeetingConsentUpdateOne {
	_u.mutation.SetApproved(v)
	return _u
}

// SetNillableApproved sets the "approved" field if the given value is not nil.
func (_u *MeetingConsentUpdateOne) SetNillableApproved(v *bool) *MeetingConsentUpdateOne {
	if v != nil {
		_u.SetApproved(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MeetingConsentUpdateOne) SetUpdatedAt(v time.Time) *MeetingConsentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the MeetingConsentMutation object of the builder.
func (_u *MeetingConsentUpdateOne) Mutation() *MeetingConsentMutation {
	return _u.mutation
}

// Where appends a list predicates to the MeetingConsentUpdate builder.
func (_u *MeetingConsentUpdateOne) Where(ps ...predicate.MeetingConsent) *MeetingConsentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MeetingConsentUpdateOne) Select(field string, fields ...string) *MeetingConsentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MeetingConsent entity.
func (_u *MeetingConsentUpdateOne) Save(ctx context.Context) (*MeetingConsent, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MeetingConsentUpdateOne) SaveX(ctx context.Context) *MeetingConsent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MeetingConsentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MeetingConsentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MeetingConsentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := meetingconsent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MeetingConsentUpdateOne) check() error {
	if _u.mutation.MeetingCleared() && len(_u.mutation.MeetingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MeetingConsent.meeting"`)
	}
	return nil
}

func (_u *MeetingConsentUpdateOne) sqlSave(ctx context.Context) (_node *MeetingConsent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(meetingconsent.Table, meetingconsent.Columns, sqlgraph.NewFieldSpec(meetingconsent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MeetingConsent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, meetingconsent.FieldID)
		for _, f := range fields {
			if !meetingconsent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != meetingconsent.FieldID {
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
	if value, ok := _u.mutation.ParticipantIdentifier(); ok {
		_spec.SetField(meetingconsent.FieldParticipantIdentifier, field.TypeString, value)
	}
	if _u.mutation.ParticipantIdentifierCleared() {
		_spec.ClearField(meetingconsent.FieldParticipantIdentifier, field.TypeString)
	}
	if value, ok := _u.mutation.Approved(); ok {
		_spec.SetField(meetingconsent.FieldApproved, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(meetingconsent.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &MeetingConsent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{meetingconsent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
