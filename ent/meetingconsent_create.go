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
	"github.com/monadical-sas/reflector/ent/meeting"
	"github.com/monadical-sas/reflector/ent/meetingconsent"
)

// MeetingConsentCreate is the builder for creating a MeetingConsent entity.
type MeetingConsentCreate struct {
	config
	mutation *MeetingConsentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetMeetingID sets the "meeting_id" field.
func (_c *MeetingConsentCreate) SetMeetingID(v string) *MeetingConsentCreate {
	_c.mutation.SetMeetingID(v)
	return _c
}

// SetParticipantIdentifier sets the "participant_identifier" field.
func (_c *MeetingConsentCreate) SetParticipantIdentifier(v string) *MeetingConsentCreate {
	_c.mutation.SetParticipantIdentifier(v)
	return _c
}

// SetNillableParticipantIdentifier sets the "participant_identifier" field if the given value is not nil.
func (_c *MeetingConsentCreate) SetNillableParticipantIdentifier(v *string) *MeetingConsentCreate {
	if v != nil {
		_c.SetParticipantIdentifier(*v)
	}
	return _c
}

// SetApproved sets the "approved" field.
func (_c *MeetingConsentCreate) SetApproved(v bool) *MeetingConsentCreate {
	_c.mutation.SetApproved(v)
	return _c
}

// SetNillableApproved sets the "approved" field if the given value is not nil.
func (_c *MeetingConsentCreate) SetNillableApproved(v *bool) *MeetingConsentCreate {
	if v != nil {
		_c.SetApproved(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MeetingConsentCreate) SetCreatedAt(v time.Time) *MeetingConsentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MeetingConsentCreate) SetNillableCreatedAt(v *time.Time) *MeetingConsentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MeetingConsentCreate) SetUpdatedAt(v time.Time) *MeetingConsentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MeetingConsentCreate) SetNillableUpdatedAt(v *time.Time) *MeetingConsentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MeetingConsentCreate) SetID(v string) *MeetingConsentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetMeeting sets the "meeting" edge to the Meeting entity.
func (_c *MeetingConsentCreate) SetMeeting(v *Meeting) *MeetingConsentCreate {
	return _c.SetMeetingID(v.ID)
}

// Mutation returns the MeetingConsentMutation object of the builder.
func (_c *MeetingConsentCreate) Mutation() *MeetingConsentMutation {
	return _c.mutation
}

// Save creates the MeetingConsent in the database.
func (_c *MeetingConsentCreate) Save(ctx context.Context) (*MeetingConsent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MeetingConsentCreate) SaveX(ctx context.Context) *MeetingConsent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MeetingConsentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MeetingConsentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MeetingConsentCreate) defaults() {
	if _, ok := _c.mutation.Approved(); !ok {
		v := meetingconsent.DefaultApproved
		_c.mutation.SetApproved(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := meetingconsent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := meetingconsent.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MeetingConsentCreate) check() error {
	if _, ok := _c.mutation.MeetingID(); !ok {
		return &ValidationError{Name: "meeting_id", err: errors.New(`ent: missing required field "MeetingConsent.meeting_id"`)}
	}
	if _, ok := _c.mutation.Approved(); !ok {
		return &ValidationError{Name: "approved", err: errors.New(`ent: missing required field "MeetingConsent.approved"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MeetingConsent.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "MeetingConsent.updated_at"`)}
	}
	if len(_c.mutation.MeetingIDs()) == 0 {
		return &ValidationError{Name: "meeting", err: errors.New(`ent: missing required edge "MeetingConsent.meeting"`)}
	}
	return nil
}

func (_c *MeetingConsentCreate) sqlSave(ctx context.Context) (*MeetingConsent, error) {
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
			return nil, fmt.Errorf("unexpected MeetingConsent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MeetingConsentCreate) createSpec() (*MeetingConsent, *sqlgraph.CreateSpec) {
	var (
		_node = &MeetingConsent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(meetingconsent.Table, sqlgraph.NewFieldSpec(meetingconsent.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ParticipantIdentifier(); ok {
		_spec.SetField(meetingconsent.FieldParticipantIdentifier, field.TypeString, value)
		_node.ParticipantIdentifier = &value
	}
	if value, ok := _c.mutation.Approved(); ok {
		_spec.SetField(meetingconsent.FieldApproved, field.TypeBool, value)
		_node.Approved = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(meetingconsent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(meetingconsent.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.MeetingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   meetingconsent.MeetingTable,
			Columns: []string{meetingconsent.MeetingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(meeting.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.MeetingID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MeetingConsent.Create().
//		SetMeetingID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MeetingConsentUpsert) {
//			SetMeetingID(v+v).
//		}).
//		Exec(ctx)
func (_c *MeetingConsentCreate) OnConflict(opts ...sql.ConflictOption) *MeetingConsentUpsertOne {
	_c.conflict = opts
	return &MeetingConsentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MeetingConsent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MeetingConsentCreate) OnConflictColumns(columns ...string) *MeetingConsentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MeetingConsentUpsertOne{
		create: _c,
	}
}

type (
	// MeetingConsentUpsertOne is the builder for "upsert"-ing
	//  one MeetingConsent node.
	MeetingConsentUpsertOne struct {
		create *MeetingConsentCreate
	}

	// MeetingConsentUpsert is the "OnConflict" setter.
	MeetingConsentUpsert struct {
		*sql.UpdateSet
	}
)

// SetParticipantIdentifier sets the "participant_identifier" field.
func (u *MeetingConsentUpsert) SetParticipantIdentifier(v string) *MeetingConsentUpsert {
	u.Set(meetingconsent.FieldParticipantIdentifier, v)
	return u
}

// UpdateParticipantIdentifier sets the "participant_identifier" field to the value that was provided on create.
func (u *MeetingConsentUpsert) UpdateParticipantIdentifier() *MeetingConsentUpsert {
	u.SetExcluded(meetingconsent.FieldParticipantIdentifier)
	return u
}

// ClearParticipantIdentifier clears the value of the "participant_identifier" field.
func (u *MeetingConsentUpsert) ClearParticipantIdentifier() *MeetingConsentUpsert {
	u.SetNull(meetingconsent.FieldParticipantIdentifier)
	return u
}

// SetApproved sets the "approved" field.
func (u *MeetingConsentUpsert) SetApproved(v bool) *MeetingConsentUpsert {
	u.Set(meetingconsent.FieldApproved, v)
	return u
}

// UpdateApproved sets the "approved" field to the value that was provided on create.
func (u *MeetingConsentUpsert) UpdateApproved() *MeetingConsentUpsert {
	u.SetExcluded(meetingconsent.FieldApproved)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MeetingConsentUpsert) SetUpdatedAt(v time.Time) *MeetingConsentUpsert {
	u.Set(meetingconsent.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MeetingConsentUpsert) UpdateUpdatedAt() *MeetingConsentUpsert {
	u.SetExcluded(meetingconsent.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.MeetingConsent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(meetingconsent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MeetingConsentUpsertOne) UpdateNewValues() *MeetingConsentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(meetingconsent.FieldID)
		}
		if _, exists := u.create.mutation.MeetingID(); exists {
			s.SetIgnore(meetingconsent.FieldMeetingID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(meetingconsent.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MeetingConsent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MeetingConsentUpsertOne) Ignore() *MeetingConsentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MeetingConsentUpsertOne) DoNothing() *MeetingConsentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MeetingConsentCreate.OnConflict
// documentation for more info.
func (u *MeetingConsentUpsertOne) Update(set func(*MeetingConsentUpsert)) *MeetingConsentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MeetingConsentUpsert{UpdateSet: update})
	}))
	return u
}

// SetParticipantIdentifier sets the "participant_identifier" field.
func (u *MeetingConsentUpsertOne) SetParticipantIdentifier(v string) *MeetingConsentUpsertOne {
	return u.Update(func(s *MeetingConsentUpsert) {
		s.SetParticipantIdentifier(v)
	})
}

// UpdateParticipantIdentifier sets the "participant_identifier" field to the value that was provided on create.
func (u *MeetingConsentUpsertOne) UpdateParticipantIdentifier() *MeetingConsentUpsertOne {
	return u.Update(func(s *MeetingConsentUpsert) {
		s.UpdateParticipantIdentifier()
	})
}

// ClearParticipantIdentifier clears the value of the "participant_identifier" field.
func (u *MeetingConsentUpsertOne) ClearParticipantIdentifier() *MeetingConsentUpsertOne {
	return u.Update(func(s *MeetingConsentUpsert) {
		s.ClearParticipantIdentifier()
	})
}

// SetApproved sets the "approved" field.
func (u *MeetingConsentUpsertOne) SetApproved(v bool) *MeetingConsentUpsertOne {
	return u.Update(func(s *MeetingConsentUpsert) {
		s.SetApproved(v)
	})
}

// UpdateApproved sets the "approved" field to the value that was provided on create.
func (u *MeetingConsentUpsertOne) UpdateApproved() *MeetingConsentUpsertOne {
	return u.Update(func(s *MeetingConsentUpsert) {
		s.UpdateApproved()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MeetingConsentUpsertOne) SetUpdatedAt(v time.Time) *MeetingConsentUpsertOne {
	return u.Update(func(s *MeetingConsentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MeetingConsentUpsertOne) UpdateUpdatedAt() *MeetingConsentUpsertOne {
	return u.Update(func(s *MeetingConsentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *MeetingConsentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MeetingConsentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MeetingConsentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MeetingConsentUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: MeetingConsentUpsertOne.ID is not supported by MySQL driver. Use MeetingConsentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MeetingConsentUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MeetingConsentCreateBulk is the builder for creating many MeetingConsent entities in bulk.
type MeetingConsentCreateBulk struct {
	config
	err      error
	builders []*MeetingConsentCreate
	conflict []sql.ConflictOption
}

// Save creates the MeetingConsent entities in the database.
func (_c *MeetingConsentCreateBulk) Save(ctx context.Context) ([]*MeetingConsent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MeetingConsent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MeetingConsentMutation)
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
func (_c *MeetingConsentCreateBulk) SaveX(ctx context.Context) []*MeetingConsent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MeetingConsentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MeetingConsentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MeetingConsent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MeetingConsentUpsert) {
//			SetMeetingID(v+v).
//		}).
//		Exec(ctx)
func (_c *MeetingConsentCreateBulk) OnConflict(opts ...sql.ConflictOption) *MeetingConsentUpsertBulk {
	_c.conflict = opts
	return &MeetingConsentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MeetingConsent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MeetingConsentCreateBulk) OnConflictColumns(columns ...string) *MeetingConsentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MeetingConsentUpsertBulk{
		create: _c,
	}
}

// MeetingConsentUpsertBulk is the builder for "upsert"-ing
// a bulk of MeetingConsent nodes.
type MeetingConsentUpsertBulk struct {
	create *MeetingConsentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.MeetingConsent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(meetingconsent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MeetingConsentUpsertBulk) UpdateNewValues() *MeetingConsentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(meetingconsent.FieldID)
			}
			if _, exists := b.mutation.MeetingID(); exists {
				s.SetIgnore(meetingconsent.FieldMeetingID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(meetingconsent.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MeetingConsent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MeetingConsentUpsertBulk) Ignore() *MeetingConsentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MeetingConsentUpsertBulk) DoNothing() *MeetingConsentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MeetingConsentCreateBulk.OnConflict
// documentation for more info.
func (u *MeetingConsentUpsertBulk) Update(set func(*MeetingConsentUpsert)) *MeetingConsentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MeetingConsentUpsert{UpdateSet: update})
	}))
	return u
}

// SetParticipantIdentifier sets the "participant_identifier" field.
func (u *MeetingConsentUpsertBulk) SetParticipantIdentifier(v string) *MeetingConsentUpsertBulk {
	return u.Update(func(s *MeetingConsentUpsert) {
		s.SetParticipantIdentifier(v)
	})
}

// UpdateParticipantIdentifier sets the "participant_identifier" field to the value that was provided on create.
func (u *MeetingConsentUpsertBulk) UpdateParticipantIdentifier() *MeetingConsentUpsertBulk {
	return u.Update(func(s *MeetingConsentUpsert) {
		s.UpdateParticipantIdentifier()
	})
}

// ClearParticipantIdentifier clears the value of the "participant_identifier" field.
func (u *MeetingConsentUpsertBulk) ClearParticipantIdentifier() *MeetingConsentUpsertBulk {
	return u.Update(func(s *MeetingConsentUpsert) {
		s.ClearParticipantIdentifier()
	})
}

// SetApproved sets the "approved" field.
func (u *MeetingConsentUpsertBulk) SetApproved(v bool) *MeetingConsentUpsertBulk {
	return u.Update(func(s *MeetingConsentUpsert) {
		s.SetApproved(v)
	})
}

// UpdateApproved sets the "approved" field to the value that was provided on create.
func (u *MeetingConsentUpsertBulk) UpdateApproved() *MeetingConsentUpsertBulk {
	return u.Update(func(s *MeetingConsentUpsert) {
		s.UpdateApproved()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MeetingConsentUpsertBulk) SetUpdatedAt(v time.Time) *MeetingConsentUpsertBulk {
	return u.Update(func(s *MeetingConsentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MeetingConsentUpsertBulk) UpdateUpdatedAt() *MeetingConsentUpsertBulk {
	return u.Update(func(s *MeetingConsentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *MeetingConsentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MeetingConsentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MeetingConsentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MeetingConsentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
