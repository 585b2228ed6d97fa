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
	"github.com/monadical-sas/reflector/ent/room"
	"github.com/monadical-sas/reflector/ent/transcript"
)

// RoomCreate is the builder for creating a Room entity.
type RoomCreate struct {
	config
	mutation *RoomMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *RoomCreate) SetName(v string) *RoomCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetWebhookURL sets the "webhook_url" field.
func (_c *RoomCreate) SetWebhookURL(v string) *RoomCreate {
	_c.mutation.SetWebhookURL(v)
	return _c
}

// SetNillableWebhookURL sets the "webhook_url" field if the given value is not nil.
func (_c *RoomCreate) SetNillableWebhookURL(v *string) *RoomCreate {
	if v != nil {
		_c.SetWebhookURL(*v)
	}
	return _c
}

// SetWebhookSecret sets the "webhook_secret" field.
func (_c *RoomCreate) SetWebhookSecret(v string) *RoomCreate {
	_c.mutation.SetWebhookSecret(v)
	return _c
}

// SetNillableWebhookSecret sets the "webhook_secret" field if the given value is not nil.
func (_c *RoomCreate) SetNillableWebhookSecret(v *string) *RoomCreate {
	if v != nil {
		_c.SetWebhookSecret(*v)
	}
	return _c
}

// SetZulipAutoPost sets the "zulip_auto_post" field.
func (_c *RoomCreate) SetZulipAutoPost(v bool) *RoomCreate {
	_c.mutation.SetZulipAutoPost(v)
	return _c
}

// SetNillableZulipAutoPost sets the "zulip_auto_post" field if the given value is not nil.
func (_c *RoomCreate) SetNillableZulipAutoPost(v *bool) *RoomCreate {
	if v != nil {
		_c.SetZulipAutoPost(*v)
	}
	return _c
}

// SetZulipStream sets the "zulip_stream" field.
func (_c *RoomCreate) SetZulipStream(v string) *RoomCreate {
	_c.mutation.SetZulipStream(v)
	return _c
}

// SetNillableZulipStream sets the "zulip_stream" field if the given value is not nil.
func (_c *RoomCreate) SetNillableZulipStream(v *string) *RoomCreate {
	if v != nil {
		_c.SetZulipStream(*v)
	}
	return _c
}

// SetZulipTopic sets the "zulip_topic" field.
func (_c *RoomCreate) SetZulipTopic(v string) *RoomCreate {
	_c.mutation.SetZulipTopic(v)
	return _c
}

// SetNillableZulipTopic sets the "zulip_topic" field if the given value is not nil.
func (_c *RoomCreate) SetNillableZulipTopic(v *string) *RoomCreate {
	if v != nil {
		_c.SetZulipTopic(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RoomCreate) SetCreatedAt(v time.Time) *RoomCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RoomCreate) SetNillableCreatedAt(v *time.Time) *RoomCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RoomCreate) SetUpdatedAt(v time.Time) *RoomCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RoomCreate) SetNillableUpdatedAt(v *time.Time) *RoomCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RoomCreate) SetID(v string) *RoomCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddMeetingIDs adds the "meetings" edge to the Meeting entity by IDs.
func (_c *RoomCreate) AddMeetingIDs(ids ...string) *RoomCreate {
	_c.mutation.AddMeetingIDs(ids...)
	return _c
}

// AddMeetings adds the "meetings" edges to the Meeting entity.
func (_c *RoomCreate) AddMeetings(v ...*Meeting) *RoomCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMeetingIDs(ids...)
}

// AddTranscriptIDs adds the "transcripts" edge to the Transcript entity by IDs.
func (_c *RoomCreate) AddTranscriptIDs(ids ...string) *RoomCreate {
	_c.mutation.AddTranscriptIDs(ids...)
	return _c
}

// AddTranscripts adds the "transcripts" edges to the Transcript entity.
func (_c *RoomCreate) AddTranscripts(v ...*Transcript) *RoomCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTranscriptIDs(ids...)
}

// Mutation returns the RoomMutation object of the builder.
func (_c *RoomCreate) Mutation() *RoomMutation {
	return _c.mutation
}

// Save creates the Room in the database.
func (_c *RoomCreate) Save(ctx context.Context) (*Room, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RoomCreate) SaveX(ctx context.Context) *Room {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoomCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoomCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RoomCreate) defaults() {
	if _, ok := _c.mutation.ZulipAutoPost(); !ok {
		v := room.DefaultZulipAutoPost
		_c.mutation.SetZulipAutoPost(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := room.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := room.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RoomCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Room.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := room.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Room.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ZulipAutoPost(); !ok {
		return &ValidationError{Name: "zulip_auto_post", err: errors.New(`ent: missing required field "Room.zulip_auto_post"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Room.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Room.updated_at"`)}
	}
	return nil
}

func (_c *RoomCreate) sqlSave(ctx context.Context) (*Room, error) {
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
			return nil, fmt.Errorf("unexpected Room.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RoomCreate) createSpec() (*Room, *sqlgraph.CreateSpec) {
	var (
		_node = &Room{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(room.Table, sqlgraph.NewFieldSpec(room.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(room.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.WebhookURL(); ok {
		_spec.SetField(room.FieldWebhookURL, field.TypeString, value)
		_node.WebhookURL = &value
	}
	if value, ok := _c.mutation.WebhookSecret(); ok {
		_spec.SetField(room.FieldWebhookSecret, field.TypeString, value)
		_node.WebhookSecret = &value
	}
	if value, ok := _c.mutation.ZulipAutoPost(); ok {
		_spec.SetField(room.FieldZulipAutoPost, field.TypeBool, value)
		_node.ZulipAutoPost = value
	}
	if value, ok := _c.mutation.ZulipStream(); ok {
		_spec.SetField(room.FieldZulipStream, field.TypeString, value)
		_node.ZulipStream = &value
	}
	if value, ok := _c.mutation.ZulipTopic(); ok {
		_spec.SetField(room.FieldZulipTopic, field.TypeString, value)
		_node.ZulipTopic = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(room.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(room.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.MeetingsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TranscriptsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Room.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RoomUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *RoomCreate) OnConflict(opts ...sql.ConflictOption) *RoomUpsertOne {
	_c.conflict = opts
	return &RoomUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Room.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RoomCreate) OnConflictColumns(columns ...string) *RoomUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RoomUpsertOne{
		create: _c,
	}
}

type (
	// RoomUpsertOne is the builder for "upsert"-ing
	//  one Room node.
	RoomUpsertOne struct {
		create *RoomCreate
	}

	// RoomUpsert is the "OnConflict" setter.
	RoomUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *RoomUpsert) SetName(v string) *RoomUpsert {
	u.Set(room.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *RoomUpsert) UpdateName() *RoomUpsert {
	u.SetExcluded(room.FieldName)
	return u
}

// SetWebhookURL sets the "webhook_url" field.
func (u *RoomUpsert) SetWebhookURL(v string) *RoomUpsert {
	u.Set(room.FieldWebhookURL, v)
	return u
}

// UpdateWebhookURL sets the "webhook_url" field to the value that was provided on create.
func (u *RoomUpsert) UpdateWebhookURL() *RoomUpsert {
	u.SetExcluded(room.FieldWebhookURL)
	return u
}

// ClearWebhookURL clears the value of the "webhook_url" field.
func (u *RoomUpsert) ClearWebhookURL() *RoomUpsert {
	u.SetNull(room.FieldWebhookURL)
	return u
}

// SetWebhookSecret sets the "webhook_secret" field.
func (u *RoomUpsert) SetWebhookSecret(v string) *RoomUpsert {
	u.Set(room.FieldWebhookSecret, v)
	return u
}

// UpdateWebhookSecret sets the "webhook_secret" field to the value that was provided on create.
func (u *RoomUpsert) UpdateWebhookSecret() *RoomUpsert {
	u.SetExcluded(room.FieldWebhookSecret)
	return u
}

// ClearWebhookSecret clears the value of the "webhook_secret" field.
func (u *RoomUpsert) ClearWebhookSecret() *RoomUpsert {
	u.SetNull(room.FieldWebhookSecret)
	return u
}

// SetZulipAutoPost sets the "zulip_auto_post" field.
func (u *RoomUpsert) SetZulipAutoPost(v bool) *RoomUpsert {
	u.Set(room.FieldZulipAutoPost, v)
	return u
}

// UpdateZulipAutoPost sets the "zulip_auto_post" field to the value that was provided on create.
func (u *RoomUpsert) UpdateZulipAutoPost() *RoomUpsert {
	u.SetExcluded(room.FieldZulipAutoPost)
	return u
}

// SetZulipStream sets the "zulip_stream" field.
func (u *RoomUpsert) SetZulipStream(v string) *RoomUpsert {
	u.Set(room.FieldZulipStream, v)
	return u
}

// UpdateZulipStream sets the "zulip_stream" field to the value that was provided on create.
func (u *RoomUpsert) UpdateZulipStream() *RoomUpsert {
	u.SetExcluded(room.FieldZulipStream)
	return u
}

// ClearZulipStream clears the value of the "zulip_stream" field.
func (u *RoomUpsert) ClearZulipStream() *RoomUpsert {
	u.SetNull(room.FieldZulipStream)
	return u
}

// SetZulipTopic sets the "zulip_topic" field.
func (u *RoomUpsert) SetZulipTopic(v string) *RoomUpsert {
	u.Set(room.FieldZulipTopic, v)
	return u
}

// UpdateZulipTopic sets the "zulip_topic" field to the value that was provided on create.
func (u *RoomUpsert) UpdateZulipTopic() *RoomUpsert {
	u.SetExcluded(room.FieldZulipTopic)
	return u
}

// ClearZulipTopic clears the value of the "zulip_topic" field.
func (u *RoomUpsert) ClearZulipTopic() *RoomUpsert {
	u.SetNull(room.FieldZulipTopic)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RoomUpsert) SetUpdatedAt(v time.Time) *RoomUpsert {
	u.Set(room.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RoomUpsert) UpdateUpdatedAt() *RoomUpsert {
	u.SetExcluded(room.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Room.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(room.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RoomUpsertOne) UpdateNewValues() *RoomUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(room.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(room.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Room.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RoomUpsertOne) Ignore() *RoomUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RoomUpsertOne) DoNothing() *RoomUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RoomCreate.OnConflict
// documentation for more info.
func (u *RoomUpsertOne) Update(set func(*RoomUpsert)) *RoomUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RoomUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *RoomUpsertOne) SetName(v string) *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *RoomUpsertOne) UpdateName() *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.UpdateName()
	})
}

// SetWebhookURL sets the "webhook_url" field.
func (u *RoomUpsertOne) SetWebhookURL(v string) *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.SetWebhookURL(v)
	})
}

// UpdateWebhookURL sets the "webhook_url" field to the value that was provided on create.
func (u *RoomUpsertOne) UpdateWebhookURL() *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.UpdateWebhookURL()
	})
}

// ClearWebhookURL clears the value of the "webhook_url" field.
func (u *RoomUpsertOne) ClearWebhookURL() *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.ClearWebhookURL()
	})
}

// SetWebhookSecret sets the "webhook_secret" field.
func (u *RoomUpsertOne) SetWebhookSecret(v string) *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.SetWebhookSecret(v)
	})
}

// UpdateWebhookSecret sets the "webhook_secret" field to the value that was provided on create.
func (u *RoomUpsertOne) UpdateWebhookSecret() *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.UpdateWebhookSecret()
	})
}

// ClearWebhookSecret clears the value of the "webhook_secret" field.
func (u *RoomUpsertOne) ClearWebhookSecret() *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.ClearWebhookSecret()
	})
}

// SetZulipAutoPost sets the "zulip_auto_post" field.
func (u *RoomUpsertOne) SetZulipAutoPost(v bool) *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.SetZulipAutoPost(v)
	})
}

// UpdateZulipAutoPost sets the "zulip_auto_post" field to the value that was provided on create.
func (u *RoomUpsertOne) UpdateZulipAutoPost() *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.UpdateZulipAutoPost()
	})
}

// SetZulipStream sets the "zulip_stream" field.
func (u *RoomUpsertOne) SetZulipStream(v string) *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.SetZulipStream(v)
	})
}

// UpdateZulipStream sets the "zulip_stream" field to the value that was provided on create.
func (u *RoomUpsertOne) UpdateZulipStream() *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.UpdateZulipStream()
	})
}

// ClearZulipStream clears the value of the "zulip_stream" field.
func (u *RoomUpsertOne) ClearZulipStream() *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.ClearZulipStream()
	})
}

// SetZulipTopic sets the "zulip_topic" field.
func (u *RoomUpsertOne) SetZulipTopic(v string) *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.SetZulipTopic(v)
	})
}

// UpdateZulipTopic sets the "zulip_topic" field to the value that was provided on create.
func (u *RoomUpsertOne) UpdateZulipTopic() *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.UpdateZulipTopic()
	})
}

// ClearZulipTopic clears the value of the "zulip_topic" field.
func (u *RoomUpsertOne) ClearZulipTopic() *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.ClearZulipTopic()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RoomUpsertOne) SetUpdatedAt(v time.Time) *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RoomUpsertOne) UpdateUpdatedAt() *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *RoomUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RoomCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RoomUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RoomUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: RoomUpsertOne.ID is not supported by MySQL driver. Use RoomUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RoomUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RoomCreateBulk is the builder for creating many Room entities in bulk.
type RoomCreateBulk struct {
	config
	err      error
	builders []*RoomCreate
	conflict []sql.ConflictOption
}

// Save creates the Room entities in the database.
func (_c *RoomCreateBulk) Save(ctx context.Context) ([]*Room, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Room, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RoomMutation)
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
func (_c *RoomCreateBulk) SaveX(ctx context.Context) []*Room {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoomCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoomCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Room.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RoomUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *RoomCreateBulk) OnConflict(opts ...sql.ConflictOption) *RoomUpsertBulk {
	_c.conflict = opts
	return &RoomUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Room.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RoomCreateBulk) OnConflictColumns(columns ...string) *RoomUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RoomUpsertBulk{
		create: _c,
	}
}

// RoomUpsertBulk is the builder for "upsert"-ing
// a bulk of Room nodes.
type RoomUpsertBulk struct {
	create *RoomCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Room.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(room.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RoomUpsertBulk) UpdateNewValues() *RoomUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(room.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(room.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Room.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RoomUpsertBulk) Ignore() *RoomUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RoomUpsertBulk) DoNothing() *RoomUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RoomCreateBulk.OnConflict
// documentation for more info.
func (u *RoomUpsertBulk) Update(set func(*RoomUpsert)) *RoomUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RoomUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *RoomUpsertBulk) SetName(v string) *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *RoomUpsertBulk) UpdateName() *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.UpdateName()
	})
}

// SetWebhookURL sets the "webhook_url" field.
func (u *RoomUpsertBulk) SetWebhookURL(v string) *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.SetWebhookURL(v)
	})
}

// UpdateWebhookURL sets the "webhook_url" field to the value that was provided on create.
func (u *RoomUpsertBulk) UpdateWebhookURL() *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.UpdateWebhookURL()
	})
}

// ClearWebhookURL clears the value of the "webhook_url" field.
func (u *RoomUpsertBulk) ClearWebhookURL() *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.ClearWebhookURL()
	})
}

// SetWebhookSecret sets the "webhook_secret" field.
func (u *RoomUpsertBulk) SetWebhookSecret(v string) *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.SetWebhookSecret(v)
	})
}

// UpdateWebhookSecret sets the "webhook_secret" field to the value that was provided on create.
func (u *RoomUpsertBulk) UpdateWebhookSecret() *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.UpdateWebhookSecret()
	})
}

// ClearWebhookSecret clears the value of the "webhook_secret" field.
func (u *RoomUpsertBulk) ClearWebhookSecret() *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.ClearWebhookSecret()
	})
}

// SetZulipAutoPost sets the "zulip_auto_post" field.
func (u *RoomUpsertBulk) SetZulipAutoPost(v bool) *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.SetZulipAutoPost(v)
	})
}

// UpdateZulipAutoPost sets the "zulip_auto_post" field to the value that was provided on create.
func (u *RoomUpsertBulk) UpdateZulipAutoPost() *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.UpdateZulipAutoPost()
	})
}

// SetZulipStream sets the "zulip_stream" field.
func (u *RoomUpsertBulk) SetZulipStream(v string) *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.SetZulipStream(v)
	})
}

// UpdateZulipStream sets the "zulip_stream" field to the value that was provided on create.
func (u *RoomUpsertBulk) UpdateZulipStream() *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.UpdateZulipStream()
	})
}

// ClearZulipStream clears the value of the "zulip_stream" field.
func (u *RoomUpsertBulk) ClearZulipStream() *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.ClearZulipStream()
	})
}

// SetZulipTopic sets the "zulip_topic" field.
func (u *RoomUpsertBulk) SetZulipTopic(v string) *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.SetZulipTopic(v)
	})
}

// UpdateZulipTopic sets the "zulip_topic" field to the value that was provided on create.
func (u *RoomUpsertBulk) UpdateZulipTopic() *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.UpdateZulipTopic()
	})
}

// ClearZulipTopic clears the value of the "zulip_topic" field.
func (u *RoomUpsertBulk) ClearZulipTopic() *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.ClearZulipTopic()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RoomUpsertBulk) SetUpdatedAt(v time.Time) *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RoomUpsertBulk) UpdateUpdatedAt() *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *RoomUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RoomCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RoomCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RoomUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
