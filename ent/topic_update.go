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
	"github.com/monadical-sas/reflector/ent/predicate"
	"github.com/monadical-sas/reflector/ent/topic"
	"github.com/monadical-sas/reflector/pkg/models"
)

// TopicUpdate is the builder for updating Topic entities.
type TopicUpdate struct {
	config
	hooks    []Hook
	mutation *TopicMutation
}

// Where appends a list predicates to the TopicUpdate builder.
func (_u *TopicUpdate) Where(ps ...predicate.Topic) *TopicUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetChunkIndex sets the "chunk_index" field.
func (_u *TopicUpdate) SetChunkIndex(v int) *TopicUpdate {
	_u.mutation.ResetChunkIndex()
	_u.mutation.SetChunkIndex(v)
	return _u
}

// SetNillableChunkIndex sets the "chunk_index" field if the given value is not nil.
func (_u *TopicUpdate) SetNillableChunkIndex(v *int) *TopicUpdate {
	if v != nil {
		_u.SetChunkIndex(*v)
	}
	return _u
}

// AddChunkIndex adds value to the "chunk_index" field.
func (_u *TopicUpdate) AddChunkIndex(v int) *TopicUpdate {
	_u.mutation.AddChunkIndex(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *TopicUpdate) SetTitle(v string) *TopicUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TopicUpdate) SetNillableTitle(v *string) *TopicUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *TopicUpdate) SetSummary(v string) *TopicUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *TopicUpdate) SetNillableSummary(v *string) *TopicUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *TopicUpdate) SetTimestamp(v float64) *TopicUpdate {
	_u.mutation.ResetTimestamp()
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *TopicUpdate) SetNillableTimestamp(v *float64) *TopicUpdate {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// AddTimestamp adds value to the "timestamp" field.
func (_u *TopicUpdate) AddTimestamp(v float64) *TopicUpdate {
	_u.mutation.AddTimestamp(v)
	return _u
}

// SetDuration sets the "duration" field.
func (_u *TopicUpdate) SetDuration(v float64) *TopicUpdate {
	_u.mutation.ResetDuration()
	_u.mutation.SetDuration(v)
	return _u
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_u *TopicUpdate) SetNillableDuration(v *float64) *TopicUpdate {
	if v != nil {
		_u.SetDuration(*v)
	}
	return _u
}

// AddDuration adds value to the "duration" field.
func (_u *TopicUpdate) AddDuration(v float64) *TopicUpdate {
	_u.mutation.AddDuration(v)
	return _u
}

// SetWords sets the "words" field.
func (_u *TopicUpdate) SetWords(v []models.Word) *TopicUpdate {
	_u.mutation.SetWords(v)
	return _u
}

// AppendWords appends value to the "words" field.
func (_u *TopicUpdate) AppendWords(v []models.Word) *TopicUpdate {
	_u.mutation.AppendWords(v)
	return _u
}

// ClearWords clears the value of the "words" field.
func (_u *TopicUpdate) ClearWords() *TopicUpdate {
	_u.mutation.ClearWords()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TopicUpdate) SetUpdatedAt(v time.Time) *TopicUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TopicMutation object of the builder.
func (_u *TopicUpdate) Mutation() *TopicMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TopicUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TopicUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TopicUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TopicUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TopicUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := topic.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TopicUpdate) check() error {
	if _u.mutation.TranscriptCleared() && len(_u.mutation.TranscriptIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Topic.transcript"`)
	}
	return nil
}

func (_u *TopicUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(topic.Table, topic.Columns, sqlgraph.NewFieldSpec(topic.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ChunkIndex(); ok {
		_spec.SetField(topic.FieldChunkIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChunkIndex(); ok {
		_spec.AddField(topic.FieldChunkIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(topic.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(topic.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(topic.FieldTimestamp, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTimestamp(); ok {
		_spec.AddField(topic.FieldTimestamp, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Duration(); ok {
		_spec.SetField(topic.FieldDuration, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDuration(); ok {
		_spec.AddField(topic.FieldDuration, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Words(); ok {
		_spec.SetField(topic.FieldWords, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWords(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, topic.FieldWords, value)
		})
	}
	if _u.mutation.WordsCleared() {
		_spec.ClearField(topic.FieldWords, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(topic.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TopicUpdateOne is the builder for updating a single Topic entity.
type TopicUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TopicMutation
}

// SetChunkIndex sets the "chunk_index" field.
func (_u *TopicUpdateOne) SetChunkIndex(v int) *TopicUpdateOne {
	_u.mutation.ResetChunkIndex()
	_u.mutation.SetChunkIndex(v)
	return _u
}

// SetNillableChunkIndex sets the "chunk_index" field if the given value is not nil.
func (_u *TopicUpdateOne) SetNillableChunkIndex(v *int) *TopicUpdateOne {
	if v != nil {
		_u.SetChunkIndex(*v)
	}
	return _u
}

// AddChunkIndex adds value to the "chunk_index" field.
func (_u *TopicUpdateOne) AddChunkIndex(v int) *TopicUpdateOne {
	_u.mutation.AddChunkIndex(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *TopicUpdateOne) SetTitle(v string) *TopicUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TopicUpdateOne) SetNillableTitle(v *string) *TopicUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *TopicUpdateOne) SetSummary(v string) *TopicUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *TopicUpdateOne) SetNillableSummary(v *string) *TopicUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *TopicUpdateOne) SetTimestamp(v float64) *TopicUpdateOne {
	_u.mutation.ResetTimestamp()
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *TopicUpdateOne) SetNillableTimestamp(v *float64) *TopicUpdateOne {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// AddTimestamp adds value to the "timestamp" field.
func (_u *TopicUpdateOne) AddTimestamp(v float64) *TopicUpdateOne {
	_u.mutation.AddTimestamp(v)
	return _u
}

// SetDuration sets the "duration" field.
func (_u *TopicUpdateOne) SetDuration(v float64) *TopicUpdateOne {
	_u.mutation.ResetDuration()
	_u.mutation.SetDuration(v)
	return _u
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_u *TopicUpdateOne) SetNillableDuration(v *float64) *TopicUpdateOne {
	if v != nil {
		_u.SetDuration(*v)
	}
	return _u
}

// AddDuration adds value to the "duration" field.
func (_u *TopicUpdateOne) AddDuration(v float64) *TopicUpdateOne {
	_u.mutation.AddDuration(v)
	return _u
}

// SetWords sets the "words" field.
func (_u *TopicUpdateOne) SetWords(v []models.Word) *TopicUpdateOne {
	_u.mutation.SetWords(v)
	return _u
}

// AppendWords appends value to the "words" field.
func (_u *TopicUpdateOne) AppendWords(v []models.Word) *TopicUpdateOne {
	_u.mutation.AppendWords(v)
	return _u
}

// ClearWords clears the value of the "words" field.
func (_u *TopicUpdateOne) ClearWords() *TopicUpdateOne {
	_u.mutation.ClearWords()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TopicUpdateOne) SetUpdatedAt(v time.Time) *TopicUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TopicMutation object of the builder.
func (_u *TopicUpdateOne) Mutation() *TopicMutation {
	return _u.mutation
}

// Where appends a list predicates to the TopicUpdate builder.
func (_u *TopicUpdateOne) Where(ps ...predicate.Topic) *TopicUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TopicUpdateOne) Select(field string, fields ...string) *TopicUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Topic entity.
func (_u *TopicUpdateOne) Save(ctx context.Context) (*Topic, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TopicUpdateOne) SaveX(ctx context.Context) *Topic {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TopicUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TopicUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TopicUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := topic.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TopicUpdateOne) check() error {
	if _u.mutation.TranscriptCleared() && len(_u.mutation.TranscriptIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Topic.transcript"`)
	}
	return nil
}

func (_u *TopicUpdateOne) sqlSave(ctx context.Context) (_node *Topic, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(topic.Table, topic.Columns, sqlgraph.NewFieldSpec(topic.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Topic.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, topic.FieldID)
		for _, f := range fields {
			if !topic.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != topic.FieldID {
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
	if value, ok := _u.mutation.ChunkIndex(); ok {
		_spec.SetField(topic.FieldChunkIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChunkIndex(); ok {
		_spec.AddField(topic.FieldChunkIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(topic.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(topic.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(topic.FieldTimestamp, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTimestamp(); ok {
		_spec.AddField(topic.FieldTimestamp, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Duration(); ok {
		_spec.SetField(topic.FieldDuration, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDuration(); ok {
		_spec.AddField(topic.FieldDuration, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Words(); ok {
		_spec.SetField(topic.FieldWords, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWords(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, topic.FieldWords, value)
		})
	}
	if _u.mutation.WordsCleared() {
		_spec.ClearField(topic.FieldWords, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(topic.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Topic{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
