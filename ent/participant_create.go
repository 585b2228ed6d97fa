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
	"github.com/monadical-sas/reflector/ent/participant"
	"github.com/monadical-sas/reflector/ent/transcript"
)

// ParticipantCreate is the builder for creating a Participant entity.
type ParticipantCreate struct {
	config
	mutation *ParticipantMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTranscriptID sets the "transcript_id" field.
func (_c *ParticipantCreate) SetTranscriptID(v string) *ParticipantCreate {
	_c.mutation.SetTranscriptID(v)
	return _c
}

// SetSpeakerIndex sets the "speaker_index" field.
func (_c *ParticipantCreate) SetSpeakerIndex(v int) *ParticipantCreate {
	_c.mutation.SetSpeakerIndex(v)
	return _c
}

// SetDisplayName sets the "display_name" field.
func (_c *ParticipantCreate) SetDisplayName(v string) *ParticipantCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetPlatformID sets the "platform_id" field.
func (_c *ParticipantCreate) SetPlatformID(v string) *ParticipantCreate {
	_c.mutation.SetPlatformID(v)
	return _c
}

// SetNillablePlatformID sets the "platform_id" field if the given value is not nil.
func (_c *ParticipantCreate) SetNillablePlatformID(v *string) *ParticipantCreate {
	if v != nil {
		_c.SetPlatformID(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ParticipantCreate) SetUserID(v string) *ParticipantCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *ParticipantCreate) SetNillableUserID(v *string) *ParticipantCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ParticipantCreate) SetCreatedAt(v time.Time) *ParticipantCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ParticipantCreate) SetNillableCreatedAt(v *time.Time) *ParticipantCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ParticipantCreate) SetUpdatedAt(v time.Time) *ParticipantCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ParticipantCreate) SetNillableUpdatedAt(v *time.Time) *ParticipantCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ParticipantCreate) SetID(v string) *ParticipantCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTranscript sets the "transcript" edge to the Transcript entity.
func (_c *ParticipantCreate) SetTranscript(v *Transcript) *ParticipantCreate {
	return _c.SetTranscriptID(v.ID)
}

// Mutation returns the ParticipantMutation object of the builder.
func (_c *ParticipantCreate) Mutation() *ParticipantMutation {
	return _c.mutation
}

// Save creates the Participant in the database.
func (_c *ParticipantCreate) Save(ctx context.Context) (*Participant, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ParticipantCreate) SaveX(ctx context.Context) *Participant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ParticipantCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ParticipantCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ParticipantCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := participant.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := participant.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ParticipantCreate) check() error {
	if _, ok := _c.mutation.TranscriptID(); !ok {
		return &ValidationError{Name: "transcript_id", err: errors.New(`ent: missing required field "Participant.transcript_id"`)}
	}
	if _, ok := _c.mutation.SpeakerIndex(); !ok {
		return &ValidationError{Name: "speaker_index", err: errors.New(`ent: missing required field "Participant.speaker_index"`)}
	}
	if _, ok := _c.mutation.DisplayName(); !ok {
		return &ValidationError{Name: "display_name", err: errors.New(`ent: missing required field "Participant.display_name"`)}
	}
	if v, ok := _c.mutation.DisplayName(); ok {
		if err := participant.DisplayNameValidator(v); err != nil {
			return &ValidationError{Name: "display_name", err: fmt.Errorf(`ent: validator failed for field "Participant.display_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Participant.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Participant.updated_at"`)}
	}
	if len(_c.mutation.TranscriptIDs()) == 0 {
		return &ValidationError{Name: "transcript", err: errors.New(`ent: missing required edge "Participant.transcript"`)}
	}
	return nil
}

func (_c *ParticipantCreate) sqlSave(ctx context.Context) (*Participant, error) {
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
			return nil, fmt.Errorf("unexpected Participant.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ParticipantCreate) createSpec() (*Participant, *sqlgraph.CreateSpec) {
	var (
		_node = &Participant{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(participant.Table, sqlgraph.NewFieldSpec(participant.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SpeakerIndex(); ok {
		_spec.SetField(participant.FieldSpeakerIndex, field.TypeInt, value)
		_node.SpeakerIndex = value
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(participant.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	if value, ok := _c.mutation.PlatformID(); ok {
		_spec.SetField(participant.FieldPlatformID, field.TypeString, value)
		_node.PlatformID = &value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(participant.FieldUserID, field.TypeString, value)
		_node.UserID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(participant.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(participant.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.TranscriptIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   participant.TranscriptTable,
			Columns: []string{participant.TranscriptColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transcript.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TranscriptID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Participant.Create().
//		SetTranscriptID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ParticipantUpsert) {
//			SetTranscriptID(v+v).
//		}).
//		Exec(ctx)
func (_c *ParticipantCreate) OnConflict(opts ...sql.ConflictOption) *ParticipantUpsertOne {
	_c.conflict = opts
	return &ParticipantUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Participant.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ParticipantCreate) OnConflictColumns(columns ...string) *ParticipantUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ParticipantUpsertOne{
		create: _c,
	}
}

type (
	// ParticipantUpsertOne is the builder for "upsert"-ing
	//  one Participant node.
	ParticipantUpsertOne struct {
		create *ParticipantCreate
	}

	// ParticipantUpsert is the "OnConflict" setter.
	ParticipantUpsert struct {
		*sql.UpdateSet
	}
)

// SetSpeakerIndex sets the "speaker_index" field.
func (u *ParticipantUpsert) SetSpeakerIndex(v int) *ParticipantUpsert {
	u.Set(participant.FieldSpeakerIndex, v)
	return u
}

// UpdateSpeakerIndex sets the "speaker_index" field to the value that was provided on create.
func (u *ParticipantUpsert) UpdateSpeakerIndex() *ParticipantUpsert {
	u.SetExcluded(participant.FieldSpeakerIndex)
	return u
}

// AddSpeakerIndex adds v to the "speaker_index" field.
func (u *ParticipantUpsert) AddSpeakerIndex(v int) *ParticipantUpsert {
	u.Add(participant.FieldSpeakerIndex, v)
	return u
}

// SetDisplayName sets the "display_name" field.
func (u *ParticipantUpsert) SetDisplayName(v string) *ParticipantUpsert {
	u.Set(participant.FieldDisplayName, v)
	return u
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *ParticipantUpsert) UpdateDisplayName() *ParticipantUpsert {
	u.SetExcluded(participant.FieldDisplayName)
	return u
}

// SetPlatformID sets the "platform_id" field.
func (u *ParticipantUpsert) SetPlatformID(v string) *ParticipantUpsert {
	u.Set(participant.FieldPlatformID, v)
	return u
}

// UpdatePlatformID sets the "platform_id" field to the value that was provided on create.
func (u *ParticipantUpsert) UpdatePlatformID() *ParticipantUpsert {
	u.SetExcluded(participant.FieldPlatformID)
	return u
}

// ClearPlatformID clears the value of the "platform_id" field.
func (u *ParticipantUpsert) ClearPlatformID() *ParticipantUpsert {
	u.SetNull(participant.FieldPlatformID)
	return u
}

// SetUserID sets the "user_id" field.
func (u *ParticipantUpsert) SetUserID(v string) *ParticipantUpsert {
	u.Set(participant.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ParticipantUpsert) UpdateUserID() *ParticipantUpsert {
	u.SetExcluded(participant.FieldUserID)
	return u
}

// ClearUserID clears the value of the "user_id" field.
func (u *ParticipantUpsert) ClearUserID() *ParticipantUpsert {
	u.SetNull(participant.FieldUserID)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ParticipantUpsert) SetUpdatedAt(v time.Time) *ParticipantUpsert {
	u.Set(participant.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ParticipantUpsert) UpdateUpdatedAt() *ParticipantUpsert {
	u.SetExcluded(participant.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Participant.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(participant.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ParticipantUpsertOne) UpdateNewValues() *ParticipantUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(participant.FieldID)
		}
		if _, exists := u.create.mutation.TranscriptID(); exists {
			s.SetIgnore(participant.FieldTranscriptID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(participant.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Participant.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ParticipantUpsertOne) Ignore() *ParticipantUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ParticipantUpsertOne) DoNothing() *ParticipantUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ParticipantCreate.OnConflict
// documentation for more info.
func (u *ParticipantUpsertOne) Update(set func(*ParticipantUpsert)) *ParticipantUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ParticipantUpsert{UpdateSet: update})
	}))
	return u
}

// SetSpeakerIndex sets the "speaker_index" field.
func (u *ParticipantUpsertOne) SetSpeakerIndex(v int) *ParticipantUpsertOne {
	return u.Update(func(s *ParticipantUpsert) {
		s.SetSpeakerIndex(v)
	})
}

// AddSpeakerIndex adds v to the "speaker_index" field.
func (u *ParticipantUpsertOne) AddSpeakerIndex(v int) *ParticipantUpsertOne {
	return u.Update(func(s *ParticipantUpsert) {
		s.AddSpeakerIndex(v)
	})
}

// UpdateSpeakerIndex sets the "speaker_index" field to the value that was provided on create.
func (u *ParticipantUpsertOne) UpdateSpeakerIndex() *ParticipantUpsertOne {
	return u.Update(func(s *ParticipantUpsert) {
		s.UpdateSpeakerIndex()
	})
}

// SetDisplayName sets the "display_name" field.
func (u *ParticipantUpsertOne) SetDisplayName(v string) *ParticipantUpsertOne {
	return u.Update(func(s *ParticipantUpsert) {
		s.SetDisplayName(v)
	})
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *ParticipantUpsertOne) UpdateDisplayName() *ParticipantUpsertOne {
	return u.Update(func(s *ParticipantUpsert) {
		s.UpdateDisplayName()
	})
}

// SetPlatformID sets the "platform_id" field.
func (u *ParticipantUpsertOne) SetPlatformID(v string) *ParticipantUpsertOne {
	return u.Update(func(s *ParticipantUpsert) {
		s.SetPlatformID(v)
	})
}

// UpdatePlatformID sets the "platform_id" field to the value that was provided on create.
func (u *ParticipantUpsertOne) UpdatePlatformID() *ParticipantUpsertOne {
	return u.Update(func(s *ParticipantUpsert) {
		s.UpdatePlatformID()
	})
}

// ClearPlatformID clears the value of the "platform_id" field.
func (u *ParticipantUpsertOne) ClearPlatformID() *ParticipantUpsertOne {
	return u.Update(func(s *ParticipantUpsert) {
		s.ClearPlatformID()
	})
}

// SetUserID sets the "user_id" field.
func (u *ParticipantUpsertOne) SetUserID(v string) *ParticipantUpsertOne {
	return u.Update(func(s *ParticipantUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ParticipantUpsertOne) UpdateUserID() *ParticipantUpsertOne {
	return u.Update(func(s *ParticipantUpsert) {
		s.UpdateUserID()
	})
}

// ClearUserID clears the value of the "user_id" field.
func (u *ParticipantUpsertOne) ClearUserID() *ParticipantUpsertOne {
	return u.Update(func(s *ParticipantUpsert) {
		s.ClearUserID()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ParticipantUpsertOne) SetUpdatedAt(v time.Time) *ParticipantUpsertOne {
	return u.Update(func(s *ParticipantUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ParticipantUpsertOne) UpdateUpdatedAt() *ParticipantUpsertOne {
	return u.Update(func(s *ParticipantUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ParticipantUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ParticipantCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ParticipantUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ParticipantUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ParticipantUpsertOne.ID is not supported by MySQL driver. Use ParticipantUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ParticipantUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ParticipantCreateBulk is the builder for creating many Participant entities in bulk.
type ParticipantCreateBulk struct {
	config
	err      error
	builders []*ParticipantCreate
	conflict []sql.ConflictOption
}

// Save creates the Participant entities in the database.
func (_c *ParticipantCreateBulk) Save(ctx context.Context) ([]*Participant, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Participant, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ParticipantMutation)
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
func (_c *ParticipantCreateBulk) SaveX(ctx context.Context) []*Participant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ParticipantCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ParticipantCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Participant.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ParticipantUpsert) {
//			SetTranscriptID(v+v).
//		}).
//		Exec(ctx)
func (_c *ParticipantCreateBulk) OnConflict(opts ...sql.ConflictOption) *ParticipantUpsertBulk {
	_c.conflict = opts
	return &ParticipantUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Participant.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ParticipantCreateBulk) OnConflictColumns(columns ...string) *ParticipantUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ParticipantUpsertBulk{
		create: _c,
	}
}

// ParticipantUpsertBulk is the builder for "upsert"-ing
// a bulk of Participant nodes.
type ParticipantUpsertBulk struct {
	create *ParticipantCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Participant.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(participant.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ParticipantUpsertBulk) UpdateNewValues() *ParticipantUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(participant.FieldID)
			}
			if _, exists := b.mutation.TranscriptID(); exists {
				s.SetIgnore(participant.FieldTranscriptID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(participant.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Participant.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ParticipantUpsertBulk) Ignore() *ParticipantUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ParticipantUpsertBulk) DoNothing() *ParticipantUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ParticipantCreateBulk.OnConflict
// documentation for more info.
func (u *ParticipantUpsertBulk) Update(set func(*ParticipantUpsert)) *ParticipantUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ParticipantUpsert{UpdateSet: update})
	}))
	return u
}

// SetSpeakerIndex sets the "speaker_index" field.
func (u *ParticipantUpsertBulk) SetSpeakerIndex(v int) *ParticipantUpsertBulk {
	return u.Update(func(s *ParticipantUpsert) {
		s.SetSpeakerIndex(v)
	})
}

// AddSpeakerIndex adds v to the "speaker_index" field.
func (u *ParticipantUpsertBulk) AddSpeakerIndex(v int) *ParticipantUpsertBulk {
	return u.Update(func(s *ParticipantUpsert) {
		s.AddSpeakerIndex(v)
	})
}

// UpdateSpeakerIndex sets the "speaker_index" field to the value that was provided on create.
func (u *ParticipantUpsertBulk) UpdateSpeakerIndex() *ParticipantUpsertBulk {
	return u.Update(func(s *ParticipantUpsert) {
		s.UpdateSpeakerIndex()
	})
}

// SetDisplayName sets the "display_name" field.
func (u *ParticipantUpsertBulk) SetDisplayName(v string) *ParticipantUpsertBulk {
	return u.Update(func(s *ParticipantUpsert) {
		s.SetDisplayName(v)
	})
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *ParticipantUpsertBulk) UpdateDisplayName() *ParticipantUpsertBulk {
	return u.Update(func(s *ParticipantUpsert) {
		s.UpdateDisplayName()
	})
}

// SetPlatformID sets the "platform_id" field.
func (u *ParticipantUpsertBulk) SetPlatformID(v string) *ParticipantUpsertBulk {
	return u.Update(func(s *ParticipantUpsert) {
		s.SetPlatformID(v)
	})
}

// UpdatePlatformID sets the "platform_id" field to the value that was provided on create.
func (u *ParticipantUpsertBulk) UpdatePlatformID() *ParticipantUpsertBulk {
	return u.Update(func(s *ParticipantUpsert) {
		s.UpdatePlatformID()
	})
}

// ClearPlatformID clears the value of the "platform_id" field.
func (u *ParticipantUpsertBulk) ClearPlatformID() *ParticipantUpsertBulk {
	return u.Update(func(s *ParticipantUpsert) {
		s.ClearPlatformID()
	})
}

// SetUserID sets the "user_id" field.
func (u *ParticipantUpsertBulk) SetUserID(v string) *ParticipantUpsertBulk {
	return u.Update(func(s *ParticipantUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ParticipantUpsertBulk) UpdateUserID() *ParticipantUpsertBulk {
	return u.Update(func(s *ParticipantUpsert) {
		s.UpdateUserID()
	})
}

// ClearUserID clears the value of the "user_id" field.
func (u *ParticipantUpsertBulk) ClearUserID() *ParticipantUpsertBulk {
	return u.Update(func(s *ParticipantUpsert) {
		s.ClearUserID()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ParticipantUpsertBulk) SetUpdatedAt(v time.Time) *ParticipantUpsertBulk {
	return u.Update(func(s *ParticipantUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ParticipantUpsertBulk) UpdateUpdatedAt() *ParticipantUpsertBulk {
	return u.Update(func(s *ParticipantUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ParticipantUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ParticipantCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ParticipantCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ParticipantUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
