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
	"github.com/monadical-sas/reflector/ent/room"
	"github.com/monadical-sas/reflector/ent/transcript"
)

// MeetingCreate is the builder for creating a Meeting entity.
type MeetingCreate struct {
	config
	mutation *MeetingMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetRoomID sets the "room_id" field.
func (_c *MeetingCreate) SetRoomID(v string) *MeetingCreate {
	_c.mutation.SetRoomID(v)
	return _c
}

// SetNillableRoomID sets the "room_id" field if the given value is not nil.
func (_c *MeetingCreate) SetNillableRoomID(v *string) *MeetingCreate {
	if v != nil {
		_c.SetRoomID(*v)
	}
	return _c
}

// SetRecordingID sets the "recording_id" field.
func (_c *MeetingCreate) SetRecordingID(v string) *MeetingCreate {
	_c.mutation.SetRecordingID(v)
	return _c
}

// SetNillableRecordingID sets the "recording_id" field if the given value is not nil.
func (_c *MeetingCreate) SetNillableRecordingID(v *string) *MeetingCreate {
	if v != nil {
		_c.SetRecordingID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MeetingCreate) SetCreatedAt(v time.Time) *MeetingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MeetingCreate) SetNillableCreatedAt(v *time.Time) *MeetingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MeetingCreate) SetID(v string) *MeetingCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRoom sets the "room" edge to the Room entity.
func (_c *MeetingCreate) SetRoom(v *Room) *MeetingCreate {
	return _c.SetRoomID(v.ID)
}

// AddConsentIDs adds the "consents" edge to the MeetingConsent entity by IDs.
func (_c *MeetingCreate) AddConsentIDs(ids ...string) *MeetingCreate {
	_c.mutation.AddConsentIDs(ids...)
	return _c
}

// AddConsents adds the "consents" edges to the MeetingConsent entity.
func (_c *MeetingCreate) AddConsents(v ...*MeetingConsent) *MeetingCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddConsentIDs(ids...)
}

// AddTranscriptIDs adds the "transcripts" edge to the Transcript entity by IDs.
func (_c *MeetingCreate) AddTranscriptIDs(ids ...string) *MeetingCreate {
	_c.mutation.AddTranscriptIDs(ids...)
	return _c
}

// AddTranscripts adds the "transcripts" edges to the Transcript entity.
func (_c *MeetingCreate) AddTranscripts(v ...*Transcript) *MeetingCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTranscriptIDs(ids...)
}

// Mutation returns the MeetingMutation object of the builder.
func (_c *MeetingCreate) Mutation() *MeetingMutation {
	return _c.mutation
}

// Save creates the Meeting in the database.
func (_c *MeetingCreate) Save(ctx context.Context) (*Meeting, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MeetingCreate) SaveX(ctx context.Context) *Meeting {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MeetingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MeetingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MeetingCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := meeting.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MeetingCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Meeting.created_at"`)}
	}
	return nil
}

func (_c *MeetingCreate) sqlSave(ctx context.Context) (*Meeting, error) {
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
			return nil, fmt.Errorf("unexpected Meeting.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MeetingCreate) createSpec() (*Meeting, *sqlgraph.CreateSpec) {
	var (
		_node = &Meeting{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(meeting.Table, sqlgraph.NewFieldSpec(meeting.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.RecordingID(); ok {
		_spec.SetField(meeting.FieldRecordingID, field.TypeString, value)
		_node.RecordingID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(meeting.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RoomIDs(); len(nodes) > 0 {
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
		_node.RoomID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ConsentsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TranscriptsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Meeting.Create().
//		SetRoomID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MeetingUpsert) {
//			SetRoomID(v+v).
//		}).
//		Exec(ctx)
func (_c *MeetingCreate) OnConflict(opts ...sql.ConflictOption) *MeetingUpsertOne {
	_c.conflict = opts
	return &MeetingUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Meeting.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MeetingCreate) OnConflictColumns(columns ...string) *MeetingUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MeetingUpsertOne{
		create: _c,
	}
}

type (
	// MeetingUpsertOne is the builder for "upsert"-ing
	//  one Meeting node.
	MeetingUpsertOne struct {
		create *MeetingCreate
	}

	// MeetingUpsert is the "OnConflict" setter.
	MeetingUpsert struct {
		*sql.UpdateSet
	}
)

// SetRoomID sets the "room_id" field.
func (u *MeetingUpsert) SetRoomID(v string) *MeetingUpsert {
	u.Set(meeting.FieldRoomID, v)
	return u
}

// UpdateRoomID sets the "room_id" field to the value that was provided on create.
func (u *MeetingUpsert) UpdateRoomID() *MeetingUpsert {
	u.SetExcluded(meeting.FieldRoomID)
	return u
}

// ClearRoomID clears the value of the "room_id" field.
func (u *MeetingUpsert) ClearRoomID() *MeetingUpsert {
	u.SetNull(meeting.FieldRoomID)
	return u
}

// SetRecordingID sets the "recording_id" field.
func (u *MeetingUpsert) SetRecordingID(v string) *MeetingUpsert {
	u.Set(meeting.FieldRecordingID, v)
	return u
}

// UpdateRecordingID sets the "recording_id" field to the value that was provided on create.
func (u *MeetingUpsert) UpdateRecordingID() *MeetingUpsert {
	u.SetExcluded(meeting.FieldRecordingID)
	return u
}

// ClearRecordingID clears the value of the "recording_id" field.
func (u *MeetingUpsert) ClearRecordingID() *MeetingUpsert {
	u.SetNull(meeting.FieldRecordingID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Meeting.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(meeting.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MeetingUpsertOne) UpdateNewValues() *MeetingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(meeting.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(meeting.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Meeting.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MeetingUpsertOne) Ignore() *MeetingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MeetingUpsertOne) DoNothing() *MeetingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MeetingCreate.OnConflict
// documentation for more info.
func (u *MeetingUpsertOne) Update(set func(*MeetingUpsert)) *MeetingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MeetingUpsert{UpdateSet: update})
	}))
	return u
}

// SetRoomID sets the "room_id" field.
func (u *MeetingUpsertOne) SetRoomID(v string) *MeetingUpsertOne {
	return u.Update(func(s *MeetingUpsert) {
		s.SetRoomID(v)
	})
}

// UpdateRoomID sets the "room_id" field to the value that was provided on create.
func (u *MeetingUpsertOne) UpdateRoomID() *MeetingUpsertOne {
	return u.Update(func(s *MeetingUpsert) {
		s.UpdateRoomID()
	})
}

// ClearRoomID clears the value of the "room_id" field.
func (u *MeetingUpsertOne) ClearRoomID() *MeetingUpsertOne {
	return u.Update(func(s *MeetingUpsert) {
		s.ClearRoomID()
	})
}

// SetRecordingID sets the "recording_id" field.
func (u *MeetingUpsertOne) SetRecordingID(v string) *MeetingUpsertOne {
	return u.Update(func(s *MeetingUpsert) {
		s.SetRecordingID(v)
	})
}

// UpdateRecordingID sets the "recording_id" field to the value that was provided on create.
func (u *MeetingUpsertOne) UpdateRecordingID() *MeetingUpsertOne {
	return u.Update(func(s *MeetingUpsert) {
		s.UpdateRecordingID()
	})
}

// ClearRecordingID clears the value of the "recording_id" field.
func (u *MeetingUpsertOne) ClearRecordingID() *MeetingUpsertOne {
	return u.Update(func(s *MeetingUpsert) {
		s.ClearRecordingID()
	})
}

// Exec executes the query.
func (u *MeetingUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MeetingCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MeetingUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MeetingUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: MeetingUpsertOne.ID is not supported by MySQL driver. Use MeetingUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MeetingUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MeetingCreateBulk is the builder for creating many Meeting entities in bulk.
type MeetingCreateBulk struct {
	config
	err      error
	builders []*MeetingCreate
	conflict []sql.ConflictOption
}

// Save creates the Meeting entities in the database.
func (_c *MeetingCreateBulk) Save(ctx context.Context) ([]*Meeting, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Meeting, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MeetingMutation)
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
func (_c *MeetingCreateBulk) SaveX(ctx context.Context) []*Meeting {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MeetingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MeetingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Meeting.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MeetingUpsert) {
//			SetRoomID(v+v).
//		}).
//		Exec(ctx)
func (_c *MeetingCreateBulk) OnConflict(opts ...sql.ConflictOption) *MeetingUpsertBulk {
	_c.conflict = opts
	return &MeetingUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Meeting.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MeetingCreateBulk) OnConflictColumns(columns ...string) *MeetingUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MeetingUpsertBulk{
		create: _c,
	}
}

// MeetingUpsertBulk is the builder for "upsert"-ing
// a bulk of Meeting nodes.
type MeetingUpsertBulk struct {
	create *MeetingCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Meeting.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(meeting.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MeetingUpsertBulk) UpdateNewValues() *MeetingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(meeting.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(meeting.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Meeting.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MeetingUpsertBulk) Ignore() *MeetingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MeetingUpsertBulk) DoNothing() *MeetingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MeetingCreateBulk.OnConflict
// documentation for more info.
func (u *MeetingUpsertBulk) Update(set func(*MeetingUpsert)) *MeetingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MeetingUpsert{UpdateSet: update})
	}))
	return u
}

// SetRoomID sets the "room_id" field.
func (u *MeetingUpsertBulk) SetRoomID(v string) *MeetingUpsertBulk {
	return u.Update(func(s *MeetingUpsert) {
		s.SetRoomID(v)
	})
}

// UpdateRoomID sets the "room_id" field to the value that was provided on create.
func (u *MeetingUpsertBulk) UpdateRoomID() *MeetingUpsertBulk {
	return u.Update(func(s *MeetingUpsert) {
		s.UpdateRoomID()
	})
}

// ClearRoomID clears the value of the "room_id" field.
func (u *MeetingUpsertBulk) ClearRoomID() *MeetingUpsertBulk {
	return u.Update(func(s *MeetingUpsert) {
		s.ClearRoomID()
	})
}

// SetRecordingID sets the "recording_id" field.
func (u *MeetingUpsertBulk) SetRecordingID(v string) *MeetingUpsertBulk {
	return u.Update(func(s *MeetingUpsert) {
		s.SetRecordingID(v)
	})
}

// UpdateRecordingID sets the "recording_id" field to the value that was provided on create.
func (u *MeetingUpsertBulk) UpdateRecordingID() *MeetingUpsertBulk {
	return u.Update(func(s *MeetingUpsert) {
		s.UpdateRecordingID()
	})
}

// ClearRecordingID clears the value of the "recording_id" field.
func (u *MeetingUpsertBulk) ClearRecordingID() *MeetingUpsertBulk {
	return u.Update(func(s *MeetingUpsert) {
		s.ClearRecordingID()
	})
}

// Exec executes the query.
func (u *MeetingUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MeetingCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MeetingCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MeetingUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
