// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/monadical-sas/reflector/ent/pipelinetask"
	"github.com/monadical-sas/reflector/ent/transcript"
)

// PipelineTaskCreate is the builder for creating a PipelineTask entity.
type PipelineTaskCreate struct {
	config
	mutation *PipelineTaskMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTranscriptID sets the "transcript_id" field.
func (_c *PipelineTaskCreate) SetTranscriptID(v string) *PipelineTaskCreate {
	_c.mutation.SetTranscriptID(v)
	return _c
}

// SetWorkflowRunID sets the "workflow_run_id" field.
func (_c *PipelineTaskCreate) SetWorkflowRunID(v string) *PipelineTaskCreate {
	_c.mutation.SetWorkflowRunID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *PipelineTaskCreate) SetName(v string) *PipelineTaskCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetQueue sets the "queue" field.
func (_c *PipelineTaskCreate) SetQueue(v pipelinetask.Queue) *PipelineTaskCreate {
	_c.mutation.SetQueue(v)
	return _c
}

// SetNillableQueue sets the "queue" field if the given value is not nil.
func (_c *PipelineTaskCreate) SetNillableQueue(v *pipelinetask.Queue) *PipelineTaskCreate {
	if v != nil {
		_c.SetQueue(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *PipelineTaskCreate) SetStatus(v pipelinetask.Status) *PipelineTaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PipelineTaskCreate) SetNillableStatus(v *pipelinetask.Status) *PipelineTaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetParams sets the "params" field.
func (_c *PipelineTaskCreate) SetParams(v json.RawMessage) *PipelineTaskCreate {
	_c.mutation.SetParams(v)
	return _c
}

// SetResult sets the "result" field.
func (_c *PipelineTaskCreate) SetResult(v json.RawMessage) *PipelineTaskCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetAttempt sets the "attempt" field.
func (_c *PipelineTaskCreate) SetAttempt(v int) *PipelineTaskCreate {
	_c.mutation.SetAttempt(v)
	return _c
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_c *PipelineTaskCreate) SetNillableAttempt(v *int) *PipelineTaskCreate {
	if v != nil {
		_c.SetAttempt(*v)
	}
	return _c
}

// SetMaxAttempts sets the "max_attempts" field.
func (_c *PipelineTaskCreate) SetMaxAttempts(v int) *PipelineTaskCreate {
	_c.mutation.SetMaxAttempts(v)
	return _c
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_c *PipelineTaskCreate) SetNillableMaxAttempts(v *int) *PipelineTaskCreate {
	if v != nil {
		_c.SetMaxAttempts(*v)
	}
	return _c
}

// SetRunAfter sets the "run_after" field.
func (_c *PipelineTaskCreate) SetRunAfter(v time.Time) *PipelineTaskCreate {
	_c.mutation.SetRunAfter(v)
	return _c
}

// SetNillableRunAfter sets the "run_after" field if the given value is not nil.
func (_c *PipelineTaskCreate) SetNillableRunAfter(v *time.Time) *PipelineTaskCreate {
	if v != nil {
		_c.SetRunAfter(*v)
	}
	return _c
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (_c *PipelineTaskCreate) SetTimeoutSeconds(v float64) *PipelineTaskCreate {
	_c.mutation.SetTimeoutSeconds(v)
	return _c
}

// SetNillableTimeoutSeconds sets the "timeout_seconds" field if the given value is not nil.
func (_c *PipelineTaskCreate) SetNillableTimeoutSeconds(v *float64) *PipelineTaskCreate {
	if v != nil {
		_c.SetTimeoutSeconds(*v)
	}
	return _c
}

// SetConcurrencyKey sets the "concurrency_key" field.
func (_c *PipelineTaskCreate) SetConcurrencyKey(v string) *PipelineTaskCreate {
	_c.mutation.SetConcurrencyKey(v)
	return _c
}

// SetNillableConcurrencyKey sets the "concurrency_key" field if the given value is not nil.
func (_c *PipelineTaskCreate) SetNillableConcurrencyKey(v *string) *PipelineTaskCreate {
	if v != nil {
		_c.SetConcurrencyKey(*v)
	}
	return _c
}

// SetMaxConcurrency sets the "max_concurrency" field.
func (_c *PipelineTaskCreate) SetMaxConcurrency(v int) *PipelineTaskCreate {
	_c.mutation.SetMaxConcurrency(v)
	return _c
}

// SetNillableMaxConcurrency sets the "max_concurrency" field if the given value is not nil.
func (_c *PipelineTaskCreate) SetNillableMaxConcurrency(v *int) *PipelineTaskCreate {
	if v != nil {
		_c.SetMaxConcurrency(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *PipelineTaskCreate) SetErrorMessage(v string) *PipelineTaskCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *PipelineTaskCreate) SetNillableErrorMessage(v *string) *PipelineTaskCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *PipelineTaskCreate) SetPodID(v string) *PipelineTaskCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *PipelineTaskCreate) SetNillablePodID(v *string) *PipelineTaskCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *PipelineTaskCreate) SetStartedAt(v time.Time) *PipelineTaskCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *PipelineTaskCreate) SetNillableStartedAt(v *time.Time) *PipelineTaskCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *PipelineTaskCreate) SetCompletedAt(v time.Time) *PipelineTaskCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *PipelineTaskCreate) SetNillableCompletedAt(v *time.Time) *PipelineTaskCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_c *PipelineTaskCreate) SetLastInteractionAt(v time.Time) *PipelineTaskCreate {
	_c.mutation.SetLastInteractionAt(v)
	return _c
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_c *PipelineTaskCreate) SetNillableLastInteractionAt(v *time.Time) *PipelineTaskCreate {
	if v != nil {
		_c.SetLastInteractionAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PipelineTaskCreate) SetCreatedAt(v time.Time) *PipelineTaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PipelineTaskCreate) SetNillableCreatedAt(v *time.Time) *PipelineTaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PipelineTaskCreate) SetUpdatedAt(v time.Time) *PipelineTaskCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PipelineTaskCreate) SetNillableUpdatedAt(v *time.Time) *PipelineTaskCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PipelineTaskCreate) SetID(v string) *PipelineTaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTranscript sets the "transcript" edge to the Transcript entity.
func (_c *PipelineTaskCreate) SetTranscript(v *Transcript) *PipelineTaskCreate {
	return _c.SetTranscriptID(v.ID)
}

// AddDependentIDs adds the "dependents" edge to the PipelineTask entity by IDs.
func (_c *PipelineTaskCreate) AddDependentIDs(ids ...string) *PipelineTaskCreate {
	_c.mutation.AddDependentIDs(ids...)
	return _c
}

// AddDependents adds the "dependents" edges to the PipelineTask entity.
func (_c *PipelineTaskCreate) AddDependents(v ...*PipelineTask) *PipelineTaskCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDependentIDs(ids...)
}

// AddDependsOnIDs adds the "depends_on" edge to the PipelineTask entity by IDs.
func (_c *PipelineTaskCreate) AddDependsOnIDs(ids ...string) *PipelineTaskCreate {
	_c.mutation.AddDependsOnIDs(ids...)
	return _c
}

// AddDependsOn adds the "depends_on" edges to the PipelineTask entity.
func (_c *PipelineTaskCreate) AddDependsOn(v ...*PipelineTask) *PipelineTaskCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDependsOnIDs(ids...)
}

// Mutation returns the PipelineTaskMutation object of the builder.
func (_c *PipelineTaskCreate) Mutation() *PipelineTaskMutation {
	return _c.mutation
}

// Save creates the PipelineTask in the database.
func (_c *PipelineTaskCreate) Save(ctx context.Context) (*PipelineTask, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PipelineTaskCreate) SaveX(ctx context.Context) *PipelineTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineTaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineTaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PipelineTaskCreate) defaults() {
	if _, ok := _c.mutation.Queue(); !ok {
		v := pipelinetask.DefaultQueue
		_c.mutation.SetQueue(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := pipelinetask.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		v := pipelinetask.DefaultAttempt
		_c.mutation.SetAttempt(v)
	}
	if _, ok := _c.mutation.MaxAttempts(); !ok {
		v := pipelinetask.DefaultMaxAttempts
		_c.mutation.SetMaxAttempts(v)
	}
	if _, ok := _c.mutation.RunAfter(); !ok {
		v := pipelinetask.DefaultRunAfter()
		_c.mutation.SetRunAfter(v)
	}
	if _, ok := _c.mutation.TimeoutSeconds(); !ok {
		v := pipelinetask.DefaultTimeoutSeconds
		_c.mutation.SetTimeoutSeconds(v)
	}
	if _, ok := _c.mutation.MaxConcurrency(); !ok {
		v := pipelinetask.DefaultMaxConcurrency
		_c.mutation.SetMaxConcurrency(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pipelinetask.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := pipelinetask.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PipelineTaskCreate) check() error {
	if _, ok := _c.mutation.TranscriptID(); !ok {
		return &ValidationError{Name: "transcript_id", err: errors.New(`ent: missing required field "PipelineTask.transcript_id"`)}
	}
	if _, ok := _c.mutation.WorkflowRunID(); !ok {
		return &ValidationError{Name: "workflow_run_id", err: errors.New(`ent: missing required field "PipelineTask.workflow_run_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "PipelineTask.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := pipelinetask.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "PipelineTask.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Queue(); !ok {
		return &ValidationError{Name: "queue", err: errors.New(`ent: missing required field "PipelineTask.queue"`)}
	}
	if v, ok := _c.mutation.Queue(); ok {
		if err := pipelinetask.QueueValidator(v); err != nil {
			return &ValidationError{Name: "queue", err: fmt.Errorf(`ent: validator failed for field "PipelineTask.queue": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PipelineTask.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := pipelinetask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PipelineTask.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		return &ValidationError{Name: "attempt", err: errors.New(`ent: missing required field "PipelineTask.attempt"`)}
	}
	if _, ok := _c.mutation.MaxAttempts(); !ok {
		return &ValidationError{Name: "max_attempts", err: errors.New(`ent: missing required field "PipelineTask.max_attempts"`)}
	}
	if _, ok := _c.mutation.RunAfter(); !ok {
		return &ValidationError{Name: "run_after", err: errors.New(`ent: missing required field "PipelineTask.run_after"`)}
	}
	if _, ok := _c.mutation.TimeoutSeconds(); !ok {
		return &ValidationError{Name: "timeout_seconds", err: errors.New(`ent: missing required field "PipelineTask.timeout_seconds"`)}
	}
	if _, ok := _c.mutation.MaxConcurrency(); !ok {
		return &ValidationError{Name: "max_concurrency", err: errors.New(`ent: missing required field "PipelineTask.max_concurrency"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PipelineTask.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PipelineTask.updated_at"`)}
	}
	if len(_c.mutation.TranscriptIDs()) == 0 {
		return &ValidationError{Name: "transcript", err: errors.New(`ent: missing required edge "PipelineTask.transcript"`)}
	}
	return nil
}

func (_c *PipelineTaskCreate) sqlSave(ctx context.Context) (*PipelineTask, error) {
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
			return nil, fmt.Errorf("unexpected PipelineTask.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PipelineTaskCreate) createSpec() (*PipelineTask, *sqlgraph.CreateSpec) {
	var (
		_node = &PipelineTask{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pipelinetask.Table, sqlgraph.NewFieldSpec(pipelinetask.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkflowRunID(); ok {
		_spec.SetField(pipelinetask.FieldWorkflowRunID, field.TypeString, value)
		_node.WorkflowRunID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(pipelinetask.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Queue(); ok {
		_spec.SetField(pipelinetask.FieldQueue, field.TypeEnum, value)
		_node.Queue = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(pipelinetask.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Params(); ok {
		_spec.SetField(pipelinetask.FieldParams, field.TypeJSON, value)
		_node.Params = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(pipelinetask.FieldResult, field.TypeJSON, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.Attempt(); ok {
		_spec.SetField(pipelinetask.FieldAttempt, field.TypeInt, value)
		_node.Attempt = value
	}
	if value, ok := _c.mutation.MaxAttempts(); ok {
		_spec.SetField(pipelinetask.FieldMaxAttempts, field.TypeInt, value)
		_node.MaxAttempts = value
	}
	if value, ok := _c.mutation.RunAfter(); ok {
		_spec.SetField(pipelinetask.FieldRunAfter, field.TypeTime, value)
		_node.RunAfter = value
	}
	if value, ok := _c.mutation.TimeoutSeconds(); ok {
		_spec.SetField(pipelinetask.FieldTimeoutSeconds, field.TypeFloat64, value)
		_node.TimeoutSeconds = value
	}
	if value, ok := _c.mutation.ConcurrencyKey(); ok {
		_spec.SetField(pipelinetask.FieldConcurrencyKey, field.TypeString, value)
		_node.ConcurrencyKey = &value
	}
	if value, ok := _c.mutation.MaxConcurrency(); ok {
		_spec.SetField(pipelinetask.FieldMaxConcurrency, field.TypeInt, value)
		_node.MaxConcurrency = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(pipelinetask.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(pipelinetask.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(pipelinetask.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(pipelinetask.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.LastInteractionAt(); ok {
		_spec.SetField(pipelinetask.FieldLastInteractionAt, field.TypeTime, value)
		_node.LastInteractionAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pipelinetask.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(pipelinetask.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.TranscriptIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pipelinetask.TranscriptTable,
			Columns: []string{pipelinetask.TranscriptColumn},
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
	if nodes := _c.mutation.DependentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   pipelinetask.DependentsTable,
			Columns: pipelinetask.DependentsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipelinetask.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DependsOnIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   pipelinetask.DependsOnTable,
			Columns: pipelinetask.DependsOnPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipelinetask.FieldID, field.TypeString),
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
//	client.PipelineTask.Create().
//		SetTranscriptID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PipelineTaskUpsert) {
//			SetTranscriptID(v+v).
//		}).
//		Exec(ctx)
func (_c *PipelineTaskCreate) OnConflict(opts ...sql.ConflictOption) *PipelineTaskUpsertOne {
	_c.conflict = opts
	return &PipelineTaskUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PipelineTask.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PipelineTaskCreate) OnConflictColumns(columns ...string) *PipelineTaskUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PipelineTaskUpsertOne{
		create: _c,
	}
}

type (
	// PipelineTaskUpsertOne is the builder for "upsert"-ing
	//  one PipelineTask node.
	PipelineTaskUpsertOne struct {
		create *PipelineTaskCreate
	}

	// PipelineTaskUpsert is the "OnConflict" setter.
	PipelineTaskUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *PipelineTaskUpsert) SetName(v string) *PipelineTaskUpsert {
	u.Set(pipelinetask.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PipelineTaskUpsert) UpdateName() *PipelineTaskUpsert {
	u.SetExcluded(pipelinetask.FieldName)
	return u
}

// SetQueue sets the "queue" field.
func (u *PipelineTaskUpsert) SetQueue(v pipelinetask.Queue) *PipelineTaskUpsert {
	u.Set(pipelinetask.FieldQueue, v)
	return u
}

// UpdateQueue sets the "queue" field to the value that was provided on create.
func (u *PipelineTaskUpsert) UpdateQueue() *PipelineTaskUpsert {
	u.SetExcluded(pipelinetask.FieldQueue)
	return u
}

// SetStatus sets the "status" field.
func (u *PipelineTaskUpsert) SetStatus(v pipelinetask.Status) *PipelineTaskUpsert {
	u.Set(pipelinetask.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PipelineTaskUpsert) UpdateStatus() *PipelineTaskUpsert {
	u.SetExcluded(pipelinetask.FieldStatus)
	return u
}

// SetParams sets the "params" field.
func (u *PipelineTaskUpsert) SetParams(v json.RawMessage) *PipelineTaskUpsert {
	u.Set(pipelinetask.FieldParams, v)
	return u
}

// UpdateParams sets the "params" field to the value that was provided on create.
func (u *PipelineTaskUpsert) UpdateParams() *PipelineTaskUpsert {
	u.SetExcluded(pipelinetask.FieldParams)
	return u
}

// ClearParams clears the value of the "params" field.
func (u *PipelineTaskUpsert) ClearParams() *PipelineTaskUpsert {
	u.SetNull(pipelinetask.FieldParams)
	return u
}

// SetResult sets the "result" field.
func (u *PipelineTaskUpsert) SetResult(v json.RawMessage) *PipelineTaskUpsert {
	u.Set(pipelinetask.FieldResult, v)
	return u
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *PipelineTaskUpsert) UpdateResult() *PipelineTaskUpsert {
	u.SetExcluded(pipelinetask.FieldResult)
	return u
}

// ClearResult clears the value of the "result" field.
func (u *PipelineTaskUpsert) ClearResult() *PipelineTaskUpsert {
	u.SetNull(pipelinetask.FieldResult)
	return u
}

// SetAttempt sets the "attempt" field.
func (u *PipelineTaskUpsert) SetAttempt(v int) *PipelineTaskUpsert {
	u.Set(pipelinetask.FieldAttempt, v)
	return u
}

// UpdateAttempt sets the "attempt" field to the value that was provided on create.
func (u *PipelineTaskUpsert) UpdateAttempt() *PipelineTaskUpsert {
	u.SetExcluded(pipelinetask.FieldAttempt)
	return u
}

// AddAttempt adds v to the "attempt" field.
func (u *PipelineTaskUpsert) AddAttempt(v int) *PipelineTaskUpsert {
	u.Add(pipelinetask.FieldAttempt, v)
	return u
}

// SetMaxAttempts sets the "max_attempts" field.
func (u *PipelineTaskUpsert) SetMaxAttempts(v int) *PipelineTaskUpsert {
	u.Set(pipelinetask.FieldMaxAttempts, v)
	return u
}

// UpdateMaxAttempts sets the "max_attempts" field to the value that was provided on create.
func (u *PipelineTaskUpsert) UpdateMaxAttempts() *PipelineTaskUpsert {
	u.SetExcluded(pipelinetask.FieldMaxAttempts)
	return u
}

// AddMaxAttempts adds v to the "max_attempts" field.
func (u *PipelineTaskUpsert) AddMaxAttempts(v int) *PipelineTaskUpsert {
	u.Add(pipelinetask.FieldMaxAttempts, v)
	return u
}

// SetRunAfter sets the "run_after" field.
func (u *PipelineTaskUpsert) SetRunAfter(v time.Time) *PipelineTaskUpsert {
	u.Set(pipelinetask.FieldRunAfter, v)
	return u
}

// UpdateRunAfter sets the "run_after" field to the value that was provided on create.
func (u *PipelineTaskUpsert) UpdateRunAfter() *PipelineTaskUpsert {
	u.SetExcluded(pipelinetask.FieldRunAfter)
	return u
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (u *PipelineTaskUpsert) SetTimeoutSeconds(v float64) *PipelineTaskUpsert {
	u.Set(pipelinetask.FieldTimeoutSeconds, v)
	return u
}

// UpdateTimeoutSeconds sets the "timeout_seconds" field to the value that was provided on create.
func (u *PipelineTaskUpsert) UpdateTimeoutSeconds() *PipelineTaskUpsert {
	u.SetExcluded(pipelinetask.FieldTimeoutSeconds)
	return u
}

// AddTimeoutSeconds adds v to the "timeout_seconds" field.
func (u *PipelineTaskUpsert) AddTimeoutSeconds(v float64) *PipelineTaskUpsert {
	u.Add(pipelinetask.FieldTimeoutSeconds, v)
	return u
}

// SetConcurrencyKey sets the "concurrency_key" field.
func (u *PipelineTaskUpsert) SetConcurrencyKey(v string) *PipelineTaskUpsert {
	u.Set(pipelinetask.FieldConcurrencyKey, v)
	return u
}

// UpdateConcurrencyKey sets the "concurrency_key" field to the value that was provided on create.
func (u *PipelineTaskUpsert) UpdateConcurrencyKey() *PipelineTaskUpsert {
	u.SetExcluded(pipelinetask.FieldConcurrencyKey)
	return u
}

// ClearConcurrencyKey clears the value of the "concurrency_key" field.
func (u *PipelineTaskUpsert) ClearConcurrencyKey() *PipelineTaskUpsert {
	u.SetNull(pipelinetask.FieldConcurrencyKey)
	return u
}

// SetMaxConcurrency sets the "max_concurrency" field.
func (u *PipelineTaskUpsert) SetMaxConcurrency(v int) *PipelineTaskUpsert {
	u.Set(pipelinetask.FieldMaxConcurrency, v)
	return u
}

// UpdateMaxConcurrency sets the "max_concurrency" field to the value that was provided on create.
func (u *PipelineTaskUpsert) UpdateMaxConcurrency() *PipelineTaskUpsert {
	u.SetExcluded(pipelinetask.FieldMaxConcurrency)
	return u
}

// AddMaxConcurrency adds v to the "max_concurrency" field.
func (u *PipelineTaskUpsert) AddMaxConcurrency(v int) *PipelineTaskUpsert {
	u.Add(pipelinetask.FieldMaxConcurrency, v)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *PipelineTaskUpsert) SetErrorMessage(v string) *PipelineTaskUpsert {
	u.Set(pipelinetask.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *PipelineTaskUpsert) UpdateErrorMessage() *PipelineTaskUpsert {
	u.SetExcluded(pipelinetask.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *PipelineTaskUpsert) ClearErrorMessage() *PipelineTaskUpsert {
	u.SetNull(pipelinetask.FieldErrorMessage)
	return u
}

// SetPodID sets the "pod_id" field.
func (u *PipelineTaskUpsert) SetPodID(v string) *PipelineTaskUpsert {
	u.Set(pipelinetask.FieldPodID, v)
	return u
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *PipelineTaskUpsert) UpdatePodID() *PipelineTaskUpsert {
	u.SetExcluded(pipelinetask.FieldPodID)
	return u
}

// ClearPodID clears the value of the "pod_id" field.
func (u *PipelineTaskUpsert) ClearPodID() *PipelineTaskUpsert {
	u.SetNull(pipelinetask.FieldPodID)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *PipelineTaskUpsert) SetStartedAt(v time.Time) *PipelineTaskUpsert {
	u.Set(pipelinetask.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *PipelineTaskUpsert) UpdateStartedAt() *PipelineTaskUpsert {
	u.SetExcluded(pipelinetask.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *PipelineTaskUpsert) ClearStartedAt() *PipelineTaskUpsert {
	u.SetNull(pipelinetask.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *PipelineTaskUpsert) SetCompletedAt(v time.Time) *PipelineTaskUpsert {
	u.Set(pipelinetask.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *PipelineTaskUpsert) UpdateCompletedAt() *PipelineTaskUpsert {
	u.SetExcluded(pipelinetask.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *PipelineTaskUpsert) ClearCompletedAt() *PipelineTaskUpsert {
	u.SetNull(pipelinetask.FieldCompletedAt)
	return u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (u *PipelineTaskUpsert) SetLastInteractionAt(v time.Time) *PipelineTaskUpsert {
	u.Set(pipelinetask.FieldLastInteractionAt, v)
	return u
}

// UpdateLastInteractionAt sets the "last_interaction_at" field to the value that was provided on create.
func (u *PipelineTaskUpsert) UpdateLastInteractionAt() *PipelineTaskUpsert {
	u.SetExcluded(pipelinetask.FieldLastInteractionAt)
	return u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (u *PipelineTaskUpsert) ClearLastInteractionAt() *PipelineTaskUpsert {
	u.SetNull(pipelinetask.FieldLastInteractionAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PipelineTaskUpsert) SetUpdatedAt(v time.Time) *PipelineTaskUpsert {
	u.Set(pipelinetask.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PipelineTaskUpsert) UpdateUpdatedAt() *PipelineTaskUpsert {
	u.SetExcluded(pipelinetask.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PipelineTask.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(pipelinetask.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PipelineTaskUpsertOne) UpdateNewValues() *PipelineTaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(pipelinetask.FieldID)
		}
		if _, exists := u.create.mutation.TranscriptID(); exists {
			s.SetIgnore(pipelinetask.FieldTranscriptID)
		}
		if _, exists := u.create.mutation.WorkflowRunID(); exists {
			s.SetIgnore(pipelinetask.FieldWorkflowRunID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(pipelinetask.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PipelineTask.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PipelineTaskUpsertOne) Ignore() *PipelineTaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PipelineTaskUpsertOne) DoNothing() *PipelineTaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PipelineTaskCreate.OnConflict
// documentation for more info.
func (u *PipelineTaskUpsertOne) Update(set func(*PipelineTaskUpsert)) *PipelineTaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PipelineTaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *PipelineTaskUpsertOne) SetName(v string) *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PipelineTaskUpsertOne) UpdateName() *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateName()
	})
}

// SetQueue sets the "queue" field.
func (u *PipelineTaskUpsertOne) SetQueue(v pipelinetask.Queue) *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetQueue(v)
	})
}

// UpdateQueue sets the "queue" field to the value that was provided on create.
func (u *PipelineTaskUpsertOne) UpdateQueue() *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateQueue()
	})
}

// SetStatus sets the "status" field.
func (u *PipelineTaskUpsertOne) SetStatus(v pipelinetask.Status) *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PipelineTaskUpsertOne) UpdateStatus() *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateStatus()
	})
}

// SetParams sets the "params" field.
func (u *PipelineTaskUpsertOne) SetParams(v json.RawMessage) *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetParams(v)
	})
}

// UpdateParams sets the "params" field to the value that was provided on create.
func (u *PipelineTaskUpsertOne) UpdateParams() *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateParams()
	})
}

// ClearParams clears the value of the "params" field.
func (u *PipelineTaskUpsertOne) ClearParams() *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.ClearParams()
	})
}

// SetResult sets the "result" field.
func (u *PipelineTaskUpsertOne) SetResult(v json.RawMessage) *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetResult(v)
	})
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *PipelineTaskUpsertOne) UpdateResult() *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateResult()
	})
}

// ClearResult clears the value of the "result" field.
func (u *PipelineTaskUpsertOne) ClearResult() *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.ClearResult()
	})
}

// SetAttempt sets the "attempt" field.
func (u *PipelineTaskUpsertOne) SetAttempt(v int) *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetAttempt(v)
	})
}

// AddAttempt adds v to the "attempt" field.
func (u *PipelineTaskUpsertOne) AddAttempt(v int) *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.AddAttempt(v)
	})
}

// UpdateAttempt sets the "attempt" field to the value that was provided on create.
func (u *PipelineTaskUpsertOne) UpdateAttempt() *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateAttempt()
	})
}

// SetMaxAttempts sets the "max_attempts" field.
func (u *PipelineTaskUpsertOne) SetMaxAttempts(v int) *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetMaxAttempts(v)
	})
}

// AddMaxAttempts adds v to the "max_attempts" field.
func (u *PipelineTaskUpsertOne) AddMaxAttempts(v int) *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.AddMaxAttempts(v)
	})
}

// UpdateMaxAttempts sets the "max_attempts" field to the value that was provided on create.
func (u *PipelineTaskUpsertOne) UpdateMaxAttempts() *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateMaxAttempts()
	})
}

// SetRunAfter sets the "run_after" field.
func (u *PipelineTaskUpsertOne) SetRunAfter(v time.Time) *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetRunAfter(v)
	})
}

// UpdateRunAfter sets the "run_after" field to the value that was provided on create.
func (u *PipelineTaskUpsertOne) UpdateRunAfter() *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateRunAfter()
	})
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (u *PipelineTaskUpsertOne) SetTimeoutSeconds(v float64) *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetTimeoutSeconds(v)
	})
}

// AddTimeoutSeconds adds v to the "timeout_seconds" field.
func (u *PipelineTaskUpsertOne) AddTimeoutSeconds(v float64) *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.AddTimeoutSeconds(v)
	})
}

// UpdateTimeoutSeconds sets the "timeout_seconds" field to the value that was provided on create.
func (u *PipelineTaskUpsertOne) UpdateTimeoutSeconds() *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateTimeoutSeconds()
	})
}

// SetConcurrencyKey sets the "concurrency_key" field.
func (u *PipelineTaskUpsertOne) SetConcurrencyKey(v string) *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetConcurrencyKey(v)
	})
}

// UpdateConcurrencyKey sets the "concurrency_key" field to the value that was provided on create.
func (u *PipelineTaskUpsertOne) UpdateConcurrencyKey() *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateConcurrencyKey()
	})
}

// ClearConcurrencyKey clears the value of the "concurrency_key" field.
func (u *PipelineTaskUpsertOne) ClearConcurrencyKey() *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.ClearConcurrencyKey()
	})
}

// SetMaxConcurrency sets the "max_concurrency" field.
func (u *PipelineTaskUpsertOne) SetMaxConcurrency(v int) *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetMaxConcurrency(v)
	})
}

// AddMaxConcurrency adds v to the "max_concurrency" field.
func (u *PipelineTaskUpsertOne) AddMaxConcurrency(v int) *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.AddMaxConcurrency(v)
	})
}

// UpdateMaxConcurrency sets the "max_concurrency" field to the value that was provided on create.
func (u *PipelineTaskUpsertOne) UpdateMaxConcurrency() *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateMaxConcurrency()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *PipelineTaskUpsertOne) SetErrorMessage(v string) *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *PipelineTaskUpsertOne) UpdateErrorMessage() *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *PipelineTaskUpsertOne) ClearErrorMessage() *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.ClearErrorMessage()
	})
}

// SetPodID sets the "pod_id" field.
func (u *PipelineTaskUpsertOne) SetPodID(v string) *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *PipelineTaskUpsertOne) UpdatePodID() *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *PipelineTaskUpsertOne) ClearPodID() *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.ClearPodID()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *PipelineTaskUpsertOne) SetStartedAt(v time.Time) *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *PipelineTaskUpsertOne) UpdateStartedAt() *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *PipelineTaskUpsertOne) ClearStartedAt() *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *PipelineTaskUpsertOne) SetCompletedAt(v time.Time) *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *PipelineTaskUpsertOne) UpdateCompletedAt() *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *PipelineTaskUpsertOne) ClearCompletedAt() *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.ClearCompletedAt()
	})
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (u *PipelineTaskUpsertOne) SetLastInteractionAt(v time.Time) *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetLastInteractionAt(v)
	})
}

// UpdateLastInteractionAt sets the "last_interaction_at" field to the value that was provided on create.
func (u *PipelineTaskUpsertOne) UpdateLastInteractionAt() *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateLastInteractionAt()
	})
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (u *PipelineTaskUpsertOne) ClearLastInteractionAt() *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.ClearLastInteractionAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PipelineTaskUpsertOne) SetUpdatedAt(v time.Time) *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PipelineTaskUpsertOne) UpdateUpdatedAt() *PipelineTaskUpsertOne {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *PipelineTaskUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PipelineTaskCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PipelineTaskUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PipelineTaskUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PipelineTaskUpsertOne.ID is not supported by MySQL driver. Use PipelineTaskUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PipelineTaskUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PipelineTaskCreateBulk is the builder for creating many PipelineTask entities in bulk.
type PipelineTaskCreateBulk struct {
	config
	err      error
	builders []*PipelineTaskCreate
	conflict []sql.ConflictOption
}

// Save creates the PipelineTask entities in the database.
func (_c *PipelineTaskCreateBulk) Save(ctx context.Context) ([]*PipelineTask, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PipelineTask, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PipelineTaskMutation)
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
func (_c *PipelineTaskCreateBulk) SaveX(ctx context.Context) []*PipelineTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineTaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineTaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PipelineTask.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PipelineTaskUpsert) {
//			SetTranscriptID(v+v).
//		}).
//		Exec(ctx)
func (_c *PipelineTaskCreateBulk) OnConflict(opts ...sql.ConflictOption) *PipelineTaskUpsertBulk {
	_c.conflict = opts
	return &PipelineTaskUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PipelineTask.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PipelineTaskCreateBulk) OnConflictColumns(columns ...string) *PipelineTaskUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PipelineTaskUpsertBulk{
		create: _c,
	}
}

// PipelineTaskUpsertBulk is the builder for "upsert"-ing
// a bulk of PipelineTask nodes.
type PipelineTaskUpsertBulk struct {
	create *PipelineTaskCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PipelineTask.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(pipelinetask.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PipelineTaskUpsertBulk) UpdateNewValues() *PipelineTaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(pipelinetask.FieldID)
			}
			if _, exists := b.mutation.TranscriptID(); exists {
				s.SetIgnore(pipelinetask.FieldTranscriptID)
			}
			if _, exists := b.mutation.WorkflowRunID(); exists {
				s.SetIgnore(pipelinetask.FieldWorkflowRunID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(pipelinetask.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PipelineTask.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PipelineTaskUpsertBulk) Ignore() *PipelineTaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PipelineTaskUpsertBulk) DoNothing() *PipelineTaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PipelineTaskCreateBulk.OnConflict
// documentation for more info.
func (u *PipelineTaskUpsertBulk) Update(set func(*PipelineTaskUpsert)) *PipelineTaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PipelineTaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *PipelineTaskUpsertBulk) SetName(v string) *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PipelineTaskUpsertBulk) UpdateName() *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateName()
	})
}

// SetQueue sets the "queue" field.
func (u *PipelineTaskUpsertBulk) SetQueue(v pipelinetask.Queue) *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetQueue(v)
	})
}

// UpdateQueue sets the "queue" field to the value that was provided on create.
func (u *PipelineTaskUpsertBulk) UpdateQueue() *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateQueue()
	})
}

// SetStatus sets the "status" field.
func (u *PipelineTaskUpsertBulk) SetStatus(v pipelinetask.Status) *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PipelineTaskUpsertBulk) UpdateStatus() *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateStatus()
	})
}

// SetParams sets the "params" field.
func (u *PipelineTaskUpsertBulk) SetParams(v json.RawMessage) *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetParams(v)
	})
}

// UpdateParams sets the "params" field to the value that was provided on create.
func (u *PipelineTaskUpsertBulk) UpdateParams() *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateParams()
	})
}

// ClearParams clears the value of the "params" field.
func (u *PipelineTaskUpsertBulk) ClearParams() *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.ClearParams()
	})
}

// SetResult sets the "result" field.
func (u *PipelineTaskUpsertBulk) SetResult(v json.RawMessage) *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetResult(v)
	})
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *PipelineTaskUpsertBulk) UpdateResult() *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateResult()
	})
}

// ClearResult clears the value of the "result" field.
func (u *PipelineTaskUpsertBulk) ClearResult() *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.ClearResult()
	})
}

// SetAttempt sets the "attempt" field.
func (u *PipelineTaskUpsertBulk) SetAttempt(v int) *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetAttempt(v)
	})
}

// AddAttempt adds v to the "attempt" field.
func (u *PipelineTaskUpsertBulk) AddAttempt(v int) *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.AddAttempt(v)
	})
}

// UpdateAttempt sets the "attempt" field to the value that was provided on create.
func (u *PipelineTaskUpsertBulk) UpdateAttempt() *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateAttempt()
	})
}

// SetMaxAttempts sets the "max_attempts" field.
func (u *PipelineTaskUpsertBulk) SetMaxAttempts(v int) *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetMaxAttempts(v)
	})
}

// AddMaxAttempts adds v to the "max_attempts" field.
func (u *PipelineTaskUpsertBulk) AddMaxAttempts(v int) *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.AddMaxAttempts(v)
	})
}

// UpdateMaxAttempts sets the "max_attempts" field to the value that was provided on create.
func (u *PipelineTaskUpsertBulk) UpdateMaxAttempts() *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateMaxAttempts()
	})
}

// SetRunAfter sets the "run_after" field.
func (u *PipelineTaskUpsertBulk) SetRunAfter(v time.Time) *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetRunAfter(v)
	})
}

// UpdateRunAfter sets the "run_after" field to the value that was provided on create.
func (u *PipelineTaskUpsertBulk) UpdateRunAfter() *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateRunAfter()
	})
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (u *PipelineTaskUpsertBulk) SetTimeoutSeconds(v float64) *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetTimeoutSeconds(v)
	})
}

// AddTimeoutSeconds adds v to the "timeout_seconds" field.
func (u *PipelineTaskUpsertBulk) AddTimeoutSeconds(v float64) *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.AddTimeoutSeconds(v)
	})
}

// UpdateTimeoutSeconds sets the "timeout_seconds" field to the value that was provided on create.
func (u *PipelineTaskUpsertBulk) UpdateTimeoutSeconds() *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateTimeoutSeconds()
	})
}

// SetConcurrencyKey sets the "concurrency_key" field.
func (u *PipelineTaskUpsertBulk) SetConcurrencyKey(v string) *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetConcurrencyKey(v)
	})
}

// UpdateConcurrencyKey sets the "concurrency_key" field to the value that was provided on create.
func (u *PipelineTaskUpsertBulk) UpdateConcurrencyKey() *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateConcurrencyKey()
	})
}

// ClearConcurrencyKey clears the value of the "concurrency_key" field.
func (u *PipelineTaskUpsertBulk) ClearConcurrencyKey() *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.ClearConcurrencyKey()
	})
}

// SetMaxConcurrency sets the "max_concurrency" field.
func (u *PipelineTaskUpsertBulk) SetMaxConcurrency(v int) *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetMaxConcurrency(v)
	})
}

// AddMaxConcurrency adds v to the "max_concurrency" field.
func (u *PipelineTaskUpsertBulk) AddMaxConcurrency(v int) *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.AddMaxConcurrency(v)
	})
}

// UpdateMaxConcurrency sets the "max_concurrency" field to the value that was provided on create.
func (u *PipelineTaskUpsertBulk) UpdateMaxConcurrency() *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateMaxConcurrency()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *PipelineTaskUpsertBulk) SetErrorMessage(v string) *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *PipelineTaskUpsertBulk) UpdateErrorMessage() *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *PipelineTaskUpsertBulk) ClearErrorMessage() *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.ClearErrorMessage()
	})
}

// SetPodID sets the "pod_id" field.
func (u *PipelineTaskUpsertBulk) SetPodID(v string) *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *PipelineTaskUpsertBulk) UpdatePodID() *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *PipelineTaskUpsertBulk) ClearPodID() *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.ClearPodID()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *PipelineTaskUpsertBulk) SetStartedAt(v time.Time) *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *PipelineTaskUpsertBulk) UpdateStartedAt() *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *PipelineTaskUpsertBulk) ClearStartedAt() *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *PipelineTaskUpsertBulk) SetCompletedAt(v time.Time) *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *PipelineTaskUpsertBulk) UpdateCompletedAt() *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *PipelineTaskUpsertBulk) ClearCompletedAt() *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.ClearCompletedAt()
	})
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (u *PipelineTaskUpsertBulk) SetLastInteractionAt(v time.Time) *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetLastInteractionAt(v)
	})
}

// UpdateLastInteractionAt sets the "last_interaction_at" field to the value that was provided on create.
func (u *PipelineTaskUpsertBulk) UpdateLastInteractionAt() *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateLastInteractionAt()
	})
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (u *PipelineTaskUpsertBulk) ClearLastInteractionAt() *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.ClearLastInteractionAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PipelineTaskUpsertBulk) SetUpdatedAt(v time.Time) *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PipelineTaskUpsertBulk) UpdateUpdatedAt() *PipelineTaskUpsertBulk {
	return u.Update(func(s *PipelineTaskUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *PipelineTaskUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PipelineTaskCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PipelineTaskCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PipelineTaskUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
