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
	"github.com/monadical-sas/reflector/ent/topic"
	"github.com/monadical-sas/reflector/ent/transcript"
	"github.com/monadical-sas/reflector/pkg/models"
)

// TopicCreate is the builder for creating a Topic entity.
type TopicCreate struct {
	config
	mutation *TopicMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTranscriptID sets the "transcript_id" field.
func (_c *TopicCreate) SetTranscriptID(v string) *TopicCreate {
	_c.mutation.SetTranscriptID(v)
	return _c
}

// SetChunkIndex sets the "chunk_index" field.
func (_c *TopicCreate) SetChunkIndex(v int) *TopicCreate {
	_c.mutation.SetChunkIndex(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *TopicCreate) SetTitle(v string) *TopicCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *TopicCreate) SetSummary(v string) *TopicCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *TopicCreate) SetTimestamp(v float64) *TopicCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetDuration sets the "duration" field.
func (_c *TopicCreate) SetDuration(v float64) *TopicCreate {
	_c.mutation.SetDuration(v)
	return _c
}

// SetWords sets the "words" field.
func (_c *TopicCreate) SetWords(v []models.Word) *TopicCreate {
	_c.mutation.SetWords(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TopicCreate) SetCreatedAt(v time.Time) *TopicCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TopicCreate) SetNillableCreatedAt(v *time.Time) *TopicCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TopicCreate) SetUpdatedAt(v time.Time) *TopicCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TopicCreate) SetNillableUpdatedAt(v *time.Time) *TopicCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TopicCreate) SetID(v string) *TopicCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTranscript sets the "transcript" edge to the Transcript entity.
func (_c *TopicCreate) SetTranscript(v *Transcript) *TopicCreate {
	return _c.SetTranscriptID(v.ID)
}

// Mutation returns the TopicMutation object of the builder.
func (_c *TopicCreate) Mutation() *TopicMutation {
	return _c.mutation
}

// Save creates the Topic in the database.
func (_c *TopicCreate) Save(ctx context.Context) (*Topic, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TopicCreate) SaveX(ctx context.Context) *Topic {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TopicCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TopicCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TopicCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := topic.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := topic.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TopicCreate) check() error {
	if _, ok := _c.mutation.TranscriptID(); !ok {
		return &ValidationError{Name: "transcript_id", err: errors.New(`ent: missing required field "Topic.transcript_id"`)}
	}
	if _, ok := _c.mutation.ChunkIndex(); !ok {
		return &ValidationError{Name: "chunk_index", err: errors.New(`ent: missing required field "Topic.chunk_index"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Topic.title"`)}
	}
	if _, ok := _c.mutation.Summary(); !ok {
		return &ValidationError{Name: "summary", err: errors.New(`ent: missing required field "Topic.summary"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "Topic.timestamp"`)}
	}
	if _, ok := _c.mutation.Duration(); !ok {
		return &ValidationError{Name: "duration", err: errors.New(`ent: missing required field "Topic.duration"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Topic.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Topic.updated_at"`)}
	}
	if len(_c.mutation.TranscriptIDs()) == 0 {
		return &ValidationError{Name: "transcript", err: errors.New(`ent: missing required edge "Topic.transcript"`)}
	}
	return nil
}

func (_c *TopicCreate) sqlSave(ctx context.Context) (*Topic, error) {
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
			return nil, fmt.Errorf("unexpected Topic.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TopicCreate) createSpec() (*Topic, *sqlgraph.CreateSpec) {
	var (
		_node = &Topic{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(topic.Table, sqlgraph.NewFieldSpec(topic.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ChunkIndex(); ok {
		_spec.SetField(topic.FieldChunkIndex, field.TypeInt, value)
		_node.ChunkIndex = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(topic.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(topic.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(topic.FieldTimestamp, field.TypeFloat64, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Duration(); ok {
		_spec.SetField(topic.FieldDuration, field.TypeFloat64, value)
		_node.Duration = value
	}
	if value, ok := _c.mutation.Words(); ok {
		_spec.SetField(topic.FieldWords, field.TypeJSON, value)
		_node.Words = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(topic.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(topic.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.TranscriptIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   topic.TranscriptTable,
			Columns: []string{topic.TranscriptColumn},
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
//	client.Topic.Create().
//		SetTranscriptID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TopicUpsert) {
//			SetTranscriptID(v+v).
//		}).
//		Exec(ctx)
func (_c *TopicCreate) OnConflict(opts ...sql.ConflictOption) *TopicUpsertOne {
	_c.conflict = opts
	return &TopicUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Topic.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TopicCreate) OnConflictColumns(columns ...string) *TopicUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TopicUpsertOne{
		create: _c,
	}
}

type (
	// TopicUpsertOne is the builder for "upsert"-ing
	//  one Topic node.
	TopicUpsertOne struct {
		create *TopicCreate
	}

	// TopicUpsert is the "OnConflict" setter.
	TopicUpsert struct {
		*sql.UpdateSet
	}
)

// SetChunkIndex sets the "chunk_index" field.
func (u *TopicUpsert) SetChunkIndex(v int) *TopicUpsert {
	u.Set(topic.FieldChunkIndex, v)
	return u
}

// UpdateChunkIndex sets the "chunk_index" field to the value that was provided on create.
func (u *TopicUpsert) UpdateChunkIndex() *TopicUpsert {
	u.SetExcluded(topic.FieldChunkIndex)
	return u
}

// AddChunkIndex adds v to the "chunk_index" field.
func (u *TopicUpsert) AddChunkIndex(v int) *TopicUpsert {
	u.Add(topic.FieldChunkIndex, v)
	return u
}

// SetTitle sets the "title" field.
func (u *TopicUpsert) SetTitle(v string) *TopicUpsert {
	u.Set(topic.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *TopicUpsert) UpdateTitle() *TopicUpsert {
	u.SetExcluded(topic.FieldTitle)
	return u
}

// SetSummary sets the "summary" field.
func (u *TopicUpsert) SetSummary(v string) *TopicUpsert {
	u.Set(topic.FieldSummary, v)
	return u
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *TopicUpsert) UpdateSummary() *TopicUpsert {
	u.SetExcluded(topic.FieldSummary)
	return u
}

// SetTimestamp sets the "timestamp" field.
func (u *TopicUpsert) SetTimestamp(v float64) *TopicUpsert {
	u.Set(topic.FieldTimestamp, v)
	return u
}

// UpdateTimestamp sets the "timestamp" field to the value that was provided on create.
func (u *TopicUpsert) UpdateTimestamp() *TopicUpsert {
	u.SetExcluded(topic.FieldTimestamp)
	return u
}

// AddTimestamp adds v to the "timestamp" field.
func (u *TopicUpsert) AddTimestamp(v float64) *TopicUpsert {
	u.Add(topic.FieldTimestamp, v)
	return u
}

// SetDuration sets the "duration" field.
func (u *TopicUpsert) SetDuration(v float64) *TopicUpsert {
	u.Set(topic.FieldDuration, v)
	return u
}

// UpdateDuration sets the "duration" field to the value that was provided on create.
func (u *TopicUpsert) UpdateDuration() *TopicUpsert {
	u.SetExcluded(topic.FieldDuration)
	return u
}

// AddDuration adds v to the "duration" field.
func (u *TopicUpsert) AddDuration(v float64) *TopicUpsert {
	u.Add(topic.FieldDuration, v)
	return u
}

// SetWords sets the "words" field.
func (u *TopicUpsert) SetWords(v []models.Word) *TopicUpsert {
	u.Set(topic.FieldWords, v)
	return u
}

// UpdateWords sets the "words" field to the value that was provided on create.
func (u *TopicUpsert) UpdateWords() *TopicUpsert {
	u.SetExcluded(topic.FieldWords)
	return u
}

// ClearWords clears the value of the "words" field.
func (u *TopicUpsert) ClearWords() *TopicUpsert {
	u.SetNull(topic.FieldWords)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TopicUpsert) SetUpdatedAt(v time.Time) *TopicUpsert {
	u.Set(topic.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TopicUpsert) UpdateUpdatedAt() *TopicUpsert {
	u.SetExcluded(topic.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Topic.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(topic.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TopicUpsertOne) UpdateNewValues() *TopicUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(topic.FieldID)
		}
		if _, exists := u.create.mutation.TranscriptID(); exists {
			s.SetIgnore(topic.FieldTranscriptID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(topic.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Topic.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TopicUpsertOne) Ignore() *TopicUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TopicUpsertOne) DoNothing() *TopicUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TopicCreate.OnConflict
// documentation for more info.
func (u *TopicUpsertOne) Update(set func(*TopicUpsert)) *TopicUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TopicUpsert{UpdateSet: update})
	}))
	return u
}

// SetChunkIndex sets the "chunk_index" field.
func (u *TopicUpsertOne) SetChunkIndex(v int) *TopicUpsertOne {
	return u.Update(func(s *TopicUpsert) {
		s.SetChunkIndex(v)
	})
}

// AddChunkIndex adds v to the "chunk_index" field.
func (u *TopicUpsertOne) AddChunkIndex(v int) *TopicUpsertOne {
	return u.Update(func(s *TopicUpsert) {
		s.AddChunkIndex(v)
	})
}

// UpdateChunkIndex sets the "chunk_index" field to the value that was provided on create.
func (u *TopicUpsertOne) UpdateChunkIndex() *TopicUpsertOne {
	return u.Update(func(s *TopicUpsert) {
		s.UpdateChunkIndex()
	})
}

// SetTitle sets the "title" field.
func (u *TopicUpsertOne) SetTitle(v string) *TopicUpsertOne {
	return u.Update(func(s *TopicUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *TopicUpsertOne) UpdateTitle() *TopicUpsertOne {
	return u.Update(func(s *TopicUpsert) {
		s.UpdateTitle()
	})
}

// SetSummary sets the "summary" field.
func (u *TopicUpsertOne) SetSummary(v string) *TopicUpsertOne {
	return u.Update(func(s *TopicUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *TopicUpsertOne) UpdateSummary() *TopicUpsertOne {
	return u.Update(func(s *TopicUpsert) {
		s.UpdateSummary()
	})
}

// SetTimestamp sets the "timestamp" field.
func (u *TopicUpsertOne) SetTimestamp(v float64) *TopicUpsertOne {
	return u.Update(func(s *TopicUpsert) {
		s.SetTimestamp(v)
	})
}

// AddTimestamp adds v to the "timestamp" field.
func (u *TopicUpsertOne) AddTimestamp(v float64) *TopicUpsertOne {
	return u.Update(func(s *TopicUpsert) {
		s.AddTimestamp(v)
	})
}

// UpdateTimestamp sets the "timestamp" field to the value that was provided on create.
func (u *TopicUpsertOne) UpdateTimestamp() *TopicUpsertOne {
	return u.Update(func(s *TopicUpsert) {
		s.UpdateTimestamp()
	})
}

// SetDuration sets the "duration" field.
func (u *TopicUpsertOne) SetDuration(v float64) *TopicUpsertOne {
	return u.Update(func(s *TopicUpsert) {
		s.SetDuration(v)
	})
}

// AddDuration adds v to the "duration" field.
func (u *TopicUpsertOne) AddDuration(v float64) *TopicUpsertOne {
	return u.Update(func(s *TopicUpsert) {
		s.AddDuration(v)
	})
}

// UpdateDuration sets the "duration" field to the value that was provided on create.
func (u *TopicUpsertOne) UpdateDuration() *TopicUpsertOne {
	return u.Update(func(s *TopicUpsert) {
		s.UpdateDuration()
	})
}

// SetWords sets the "words" field.
func (u *TopicUpsertOne) SetWords(v []models.Word) *TopicUpsertOne {
	return u.Update(func(s *TopicUpsert) {
		s.SetWords(v)
	})
}

// UpdateWords sets the "words" field to the value that was provided on create.
func (u *TopicUpsertOne) UpdateWords() *TopicUpsertOne {
	return u.Update(func(s *TopicUpsert) {
		s.UpdateWords()
	})
}

// ClearWords clears the value of the "words" field.
func (u *TopicUpsertOne) ClearWords() *TopicUpsertOne {
	return u.Update(func(s *TopicUpsert) {
		s.ClearWords()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TopicUpsertOne) SetUpdatedAt(v time.Time) *TopicUpsertOne {
	return u.Update(func(s *TopicUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TopicUpsertOne) UpdateUpdatedAt() *TopicUpsertOne {
	return u.Update(func(s *TopicUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *TopicUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TopicCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TopicUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TopicUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TopicUpsertOne.ID is not supported by MySQL driver. Use TopicUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TopicUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TopicCreateBulk is the builder for creating many Topic entities in bulk.
type TopicCreateBulk struct {
	config
	err      error
	builders []*TopicCreate
	conflict []sql.ConflictOption
}

// Save creates the Topic entities in the database.
func (_c *TopicCreateBulk) Save(ctx context.Context) ([]*Topic, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Topic, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TopicMutation)
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
func (_c *TopicCreateBulk) SaveX(ctx context.Context) []*Topic {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TopicCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TopicCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Topic.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TopicUpsert) {
//			SetTranscriptID(v+v).
//		}).
//		Exec(ctx)
func (_c *TopicCreateBulk) OnConflict(opts ...sql.ConflictOption) *TopicUpsertBulk {
	_c.conflict = opts
	return &TopicUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Topic.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TopicCreateBulk) OnConflictColumns(columns ...string) *TopicUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TopicUpsertBulk{
		create: _c,
	}
}

// TopicUpsertBulk is the builder for "upsert"-ing
// a bulk of Topic nodes.
type TopicUpsertBulk struct {
	create *TopicCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Topic.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(topic.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TopicUpsertBulk) UpdateNewValues() *TopicUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(topic.FieldID)
			}
			if _, exists := b.mutation.TranscriptID(); exists {
				s.SetIgnore(topic.FieldTranscriptID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(topic.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Topic.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TopicUpsertBulk) Ignore() *TopicUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TopicUpsertBulk) DoNothing() *TopicUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TopicCreateBulk.OnConflict
// documentation for more info.
func (u *TopicUpsertBulk) Update(set func(*TopicUpsert)) *TopicUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TopicUpsert{UpdateSet: update})
	}))
	return u
}

// SetChunkIndex sets the "chunk_index" field.
func (u *TopicUpsertBulk) SetChunkIndex(v int) *TopicUpsertBulk {
	return u.Update(func(s *TopicUpsert) {
		s.SetChunkIndex(v)
	})
}

// AddChunkIndex adds v to the "chunk_index" field.
func (u *TopicUpsertBulk) AddChunkIndex(v int) *TopicUpsertBulk {
	return u.Update(func(s *TopicUpsert) {
		s.AddChunkIndex(v)
	})
}

// UpdateChunkIndex sets the "chunk_index" field to the value that was provided on create.
func (u *TopicUpsertBulk) UpdateChunkIndex() *TopicUpsertBulk {
	return u.Update(func(s *TopicUpsert) {
		s.UpdateChunkIndex()
	})
}

// SetTitle sets the "title" field.
func (u *TopicUpsertBulk) SetTitle(v string) *TopicUpsertBulk {
	return u.Update(func(s *TopicUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *TopicUpsertBulk) UpdateTitle() *TopicUpsertBulk {
	return u.Update(func(s *TopicUpsert) {
		s.UpdateTitle()
	})
}

// SetSummary sets the "summary" field.
func (u *TopicUpsertBulk) SetSummary(v string) *TopicUpsertBulk {
	return u.Update(func(s *TopicUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *TopicUpsertBulk) UpdateSummary() *TopicUpsertBulk {
	return u.Update(func(s *TopicUpsert) {
		s.UpdateSummary()
	})
}

// SetTimestamp sets the "timestamp" field.
func (u *TopicUpsertBulk) SetTimestamp(v float64) *TopicUpsertBulk {
	return u.Update(func(s *TopicUpsert) {
		s.SetTimestamp(v)
	})
}

// AddTimestamp adds v to the "timestamp" field.
func (u *TopicUpsertBulk) AddTimestamp(v float64) *TopicUpsertBulk {
	return u.Update(func(s *TopicUpsert) {
		s.AddTimestamp(v)
	})
}

// UpdateTimestamp sets the "timestamp" field to the value that was provided on create.
func (u *TopicUpsertBulk) UpdateTimestamp() *TopicUpsertBulk {
	return u.Update(func(s *TopicUpsert) {
		s.UpdateTimestamp()
	})
}

// SetDuration sets the "duration" field.
func (u *TopicUpsertBulk) SetDuration(v float64) *TopicUpsertBulk {
	return u.Update(func(s *TopicUpsert) {
		s.SetDuration(v)
	})
}

// AddDuration adds v to the "duration" field.
func (u *TopicUpsertBulk) AddDuration(v float64) *TopicUpsertBulk {
	return u.Update(func(s *TopicUpsert) {
		s.AddDuration(v)
	})
}

// UpdateDuration sets the "duration" field to the value that was provided on create.
func (u *TopicUpsertBulk) UpdateDuration() *TopicUpsertBulk {
	return u.Update(func(s *TopicUpsert) {
		s.UpdateDuration()
	})
}

// SetWords sets the "words" field.
func (u *TopicUpsertBulk) SetWords(v []models.Word) *TopicUpsertBulk {
	return u.Update(func(s *TopicUpsert) {
		s.SetWords(v)
	})
}

// UpdateWords sets the "words" field to the value that was provided on create.
func (u *TopicUpsertBulk) UpdateWords() *TopicUpsertBulk {
	return u.Update(func(s *TopicUpsert) {
		s.UpdateWords()
	})
}

// ClearWords clears the value of the "words" field.
func (u *TopicUpsertBulk) ClearWords() *TopicUpsertBulk {
	return u.Update(func(s *TopicUpsert) {
		s.ClearWords()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TopicUpsertBulk) SetUpdatedAt(v time.Time) *TopicUpsertBulk {
	return u.Update(func(s *TopicUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TopicUpsertBulk) UpdateUpdatedAt() *TopicUpsertBulk {
	return u.Update(func(s *TopicUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *TopicUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TopicCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TopicCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TopicUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
