// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/monadical-sas/reflector/ent/pipelinetask"
	"github.com/monadical-sas/reflector/ent/predicate"
)

// PipelineTaskUpdate is the builder for updating PipelineTask entities.
type PipelineTaskUpdate struct {
	config
	hooks    []Hook
	mutation *PipelineTaskMutation
}

// Where appends a list predicates to the PipelineTaskUpdate builder.
func (_u *PipelineTaskUpdate) Where(ps ...predicate.PipelineTask) *PipelineTaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *PipelineTaskUpdate) SetName(v string) *PipelineTaskUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PipelineTaskUpdate) SetNillableName(v *string) *PipelineTaskUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetQueue sets the "queue" field.
func (_u *PipelineTaskUpdate) SetQueue(v pipelinetask.Queue) *PipelineTaskUpdate {
	_u.mutation.SetQueue(v)
	return _u
}

// SetNillableQueue sets the "queue" field if the given value is not nil.
func (_u *PipelineTaskUpdate) SetNillableQueue(v *pipelinetask.Queue) *PipelineTaskUpdate {
	if v != nil {
		_u.SetQueue(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PipelineTaskUpdate) SetStatus(v pipelinetask.Status) *PipelineTaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PipelineTaskUpdate) SetNillableStatus(v *pipelinetask.Status) *PipelineTaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetParams sets the "params" field.
func (_u *PipelineTaskUpdate) SetParams(v json.RawMessage) *PipelineTaskUpdate {
	_u.mutation.SetParams(v)
	return _u
}

// AppendParams appends value to the "params" field.
func (_u *PipelineTaskUpdate) AppendParams(v json.RawMessage) *PipelineTaskUpdate {
	_u.mutation.AppendParams(v)
	return _u
}

// ClearParams clears the value of the "params" field.
func (_u *PipelineTaskUpdate) ClearParams() *PipelineTaskUpdate {
	_u.mutation.ClearParams()
	return _u
}

// SetResult sets the "result" field.
func (_u *PipelineTaskUpdate) SetResult(v json.RawMessage) *PipelineTaskUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// AppendResult appends value to the "result" field.
func (_u *PipelineTaskUpdate) AppendResult(v json.RawMessage) *PipelineTaskUpdate {
	_u.mutation.AppendResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *PipelineTaskUpdate) ClearResult() *PipelineTaskUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *PipelineTaskUpdate) SetAttempt(v int) *PipelineTaskUpdate {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *PipelineTaskUpdate) SetNillableAttempt(v *int) *PipelineTaskUpdate {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *PipelineTaskUpdate) AddAttempt(v int) *PipelineTaskUpdate {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetMaxAttempts sets the "max_attempts" field.
func (_u *PipelineTaskUpdate) SetMaxAttempts(v int) *PipelineTaskUpdate {
	_u.mutation.ResetMaxAttempts()
	_u.mutation.SetMaxAttempts(v)
	return _u
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_u *PipelineTaskUpdate) SetNillableMaxAttempts(v *int) *PipelineTaskUpdate {
	if v != nil {
		_u.SetMaxAttempts(*v)
	}
	return _u
}

// AddMaxAttempts adds value to the "max_attempts" field.
func (_u *PipelineTaskUpdate) AddMaxAttempts(v int) *PipelineTaskUpdate {
	_u.mutation.AddMaxAttempts(v)
	return _u
}

// SetRunAfter sets the "run_after" field.
func (_u *PipelineTaskUpdate) SetRunAfter(v time.Time) *PipelineTaskUpdate {
	_u.mutation.SetRunAfter(v)
	return _u
}

// SetNillableRunAfter sets the "run_after" field if the given value is not nil.
func (_u *PipelineTaskUpdate) SetNillableRunAfter(v *time.Time) *PipelineTaskUpdate {
	if v != nil {
		_u.SetRunAfter(*v)
	}
	return _u
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (_u *PipelineTaskUpdate) SetTimeoutSeconds(v float64) *PipelineTaskUpdate {
	_u.mutation.ResetTimeoutSeconds()
	_u.mutation.SetTimeoutSeconds(v)
	return _u
}

// SetNillableTimeoutSeconds sets the "timeout_seconds" field if the given value is not nil.
func (_u *PipelineTaskUpdate) SetNillableTimeoutSeconds(v *float64) *PipelineTaskUpdate {
	if v != nil {
		_u.SetTimeoutSeconds(*v)
	}
	return _u
}

// AddTimeoutSeconds adds value to the "timeout_seconds" field.
func (_u *PipelineTaskUpdate) AddTimeoutSeconds(v float64) *PipelineTaskUpdate {
	_u.mutation.AddTimeoutSeconds(v)
	return _u
}

// SetConcurrencyKey sets the "concurrency_key" field.
func (_u *PipelineTaskUpdate) SetConcurrencyKey(v string) *PipelineTaskUpdate {
	_u.mutation.SetConcurrencyKey(v)
	return _u
}

// SetNillableConcurrencyKey sets the "concurrency_key" field if the given value is not nil.
func (_u *PipelineTaskUpdate) SetNillableConcurrencyKey(v *string) *PipelineTaskUpdate {
	if v != nil {
		_u.SetConcurrencyKey(*v)
	}
	return _u
}

// ClearConcurrencyKey clears the value of the "concurrency_key" field.
func (_u *PipelineTaskUpdate) ClearConcurrencyKey() *PipelineTaskUpdate {
	_u.mutation.ClearConcurrencyKey()
	return _u
}

// SetMaxConcurrency sets the "max_concurrency" field.
func (_u *PipelineTaskUpdate) SetMaxConcurrency(v int) *PipelineTaskUpdate {
	_u.mutation.ResetMaxConcurrency()
	_u.mutation.SetMaxConcurrency(v)
	return _u
}

// SetNillableMaxConcurrency sets the "max_concurrency" field if the given value is not nil.
func (_u *PipelineTaskUpdate) SetNillableMaxConcurrency(v *int) *PipelineTaskUpdate {
	if v != nil {
		_u.SetMaxConcurrency(*v)
	}
	return _u
}

// AddMaxConcurrency adds value to the "max_concurrency" field.
func (_u *PipelineTaskUpdate) AddMaxConcurrency(v int) *PipelineTaskUpdate {
	_u.mutation.AddMaxConcurrency(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *PipelineTaskUpdate) SetErrorMessage(v string) *PipelineTaskUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *PipelineTaskUpdate) SetNillableErrorMessage(v *string) *PipelineTaskUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *PipelineTaskUpdate) ClearErrorMessage() *PipelineTaskUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *PipelineTaskUpdate) SetPodID(v string) *PipelineTaskUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *PipelineTaskUpdate) SetNillablePodID(v *string) *PipelineTaskUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *PipelineTaskUpdate) ClearPodID() *PipelineTaskUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *PipelineTaskUpdate) SetStartedAt(v time.Time) *PipelineTaskUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *PipelineTaskUpdate) SetNillableStartedAt(v *time.Time) *PipelineTaskUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *PipelineTaskUpdate) ClearStartedAt() *PipelineTaskUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PipelineTaskUpdate) SetCompletedAt(v time.Time) *PipelineTaskUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PipelineTaskUpdate) SetNillableCompletedAt(v *time.Time) *PipelineTaskUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *PipelineTaskUpdate) ClearCompletedAt() *PipelineTaskUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *PipelineTaskUpdate) SetLastInteractionAt(v time.Time) *PipelineTaskUpdate {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *PipelineTaskUpdate) SetNillableLastInteractionAt(v *time.Time) *PipelineTaskUpdate {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *PipelineTaskUpdate) ClearLastInteractionAt() *PipelineTaskUpdate {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PipelineTaskUpdate) SetUpdatedAt(v time.Time) *PipelineTaskUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddDependentIDs adds the "dependents" edge to the PipelineTask entity by IDs.
func (_u *PipelineTaskUpdate) AddDependentIDs(ids ...string) *PipelineTaskUpdate {
	_u.mutation.AddDependentIDs(ids...)
	return _u
}

// AddDependents adds the "dependents" edges to the PipelineTask entity.
func (_u *PipelineTaskUpdate) AddDependents(v ...*PipelineTask) *PipelineTaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDependentIDs(ids...)
}

// AddDependsOnIDs adds the "depends_on" edge to the PipelineTask entity by IDs.
func (_u *PipelineTaskUpdate) AddDependsOnIDs(ids ...string) *PipelineTaskUpdate {
	_u.mutation.AddDependsOnIDs(ids...)
	return _u
}

// AddDependsOn adds the "depends_on" edges to the PipelineTask entity.
func (_u *PipelineTaskUpdate) AddDependsOn(v ...*PipelineTask) *PipelineTaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDependsOnIDs(ids...)
}

// Mutation returns the PipelineTaskMutation object of the builder.
func (_u *PipelineTaskUpdate) Mutation() *PipelineTaskMutation {
	return _u.mutation
}

// ClearDependents clears all "dependents" edges to the PipelineTask entity.
func (_u *PipelineTaskUpdate) ClearDependents() *PipelineTaskUpdate {
	_u.mutation.ClearDependents()
	return _u
}

// RemoveDependentIDs removes the "dependents" edge to PipelineTask entities by IDs.
func (_u *PipelineTaskUpdate) RemoveDependentIDs(ids ...string) *PipelineTaskUpdate {
	_u.mutation.RemoveDependentIDs(ids...)
	return _u
}

// RemoveDependents removes "dependents" edges to PipelineTask entities.
func (_u *PipelineTaskUpdate) RemoveDependents(v ...*PipelineTask) *PipelineTaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDependentIDs(ids...)
}

// ClearDependsOn clears all "depends_on" edges to the PipelineTask entity.
func (_u *PipelineTaskUpdate) ClearDependsOn() *PipelineTaskUpdate {
	_u.mutation.ClearDependsOn()
	return _u
}

// RemoveDependsOnIDs removes the "depends_on" edge to PipelineTask entities by IDs.
func (_u *PipelineTaskUpdate) RemoveDependsOnIDs(ids ...string) *PipelineTaskUpdate {
	_u.mutation.RemoveDependsOnIDs(ids...)
	return _u
}

// RemoveDependsOn removes "depends_on" edges to PipelineTask entities.
func (_u *PipelineTaskUpdate) RemoveDependsOn(v ...*PipelineTask) *PipelineTaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDependsOnIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PipelineTaskUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineTaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PipelineTaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineTaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PipelineTaskUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pipelinetask.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineTaskUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := pipelinetask.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "PipelineTask.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Queue(); ok {
		if err := pipelinetask.QueueValidator(v); err != nil {
			return &ValidationError{Name: "queue", err: fmt.Errorf(`ent: validator failed for field "PipelineTask.queue": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := pipelinetask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PipelineTask.status": %w`, err)}
		}
	}
	if _u.mutation.TranscriptCleared() && len(_u.mutation.TranscriptIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PipelineTask.transcript"`)
	}
	return nil
}

func (_u *PipelineTaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipelinetask.Table, pipelinetask.Columns, sqlgraph.NewFieldSpec(pipelinetask.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(pipelinetask.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Queue(); ok {
		_spec.SetField(pipelinetask.FieldQueue, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pipelinetask.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Params(); ok {
		_spec.SetField(pipelinetask.FieldParams, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedParams(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pipelinetask.FieldParams, value)
		})
	}
	if _u.mutation.ParamsCleared() {
		_spec.ClearField(pipelinetask.FieldParams, field.TypeJSON)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(pipelinetask.FieldResult, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResult(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pipelinetask.FieldResult, value)
		})
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(pipelinetask.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(pipelinetask.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(pipelinetask.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxAttempts(); ok {
		_spec.SetField(pipelinetask.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAttempts(); ok {
		_spec.AddField(pipelinetask.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RunAfter(); ok {
		_spec.SetField(pipelinetask.FieldRunAfter, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TimeoutSeconds(); ok {
		_spec.SetField(pipelinetask.FieldTimeoutSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTimeoutSeconds(); ok {
		_spec.AddField(pipelinetask.FieldTimeoutSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ConcurrencyKey(); ok {
		_spec.SetField(pipelinetask.FieldConcurrencyKey, field.TypeString, value)
	}
	if _u.mutation.ConcurrencyKeyCleared() {
		_spec.ClearField(pipelinetask.FieldConcurrencyKey, field.TypeString)
	}
	if value, ok := _u.mutation.MaxConcurrency(); ok {
		_spec.SetField(pipelinetask.FieldMaxConcurrency, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxConcurrency(); ok {
		_spec.AddField(pipelinetask.FieldMaxConcurrency, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(pipelinetask.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(pipelinetask.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(pipelinetask.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(pipelinetask.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(pipelinetask.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(pipelinetask.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(pipelinetask.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(pipelinetask.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(pipelinetask.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(pipelinetask.FieldLastInteractionAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(pipelinetask.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DependentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDependentsIDs(); len(nodes) > 0 && !_u.mutation.DependentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DependentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DependsOnCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDependsOnIDs(); len(nodes) > 0 && !_u.mutation.DependsOnCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DependsOnIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelinetask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PipelineTaskUpdateOne is the builder for updating a single PipelineTask entity.
type PipelineTaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PipelineTaskMutation
}

// SetName sets the "name" field.
func (_u *PipelineTaskUpdateOne) SetName(v string) *PipelineTaskUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PipelineTaskUpdateOne) SetNillableName(v *string) *PipelineTaskUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetQueue sets the "queue" field.
func (_u *PipelineTaskUpdateOne) SetQueue(v pipelinetask.Queue) *PipelineTaskUpdateOne {
	_u.mutation.SetQueue(v)
	return _u
}

// SetNillableQueue sets the "queue" field if the given value is not nil.
func (_u *PipelineTaskUpdateOne) SetNillableQueue(v *pipelinetask.Queue) *PipelineTaskUpdateOne {
	if v != nil {
		_u.SetQueue(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PipelineTaskUpdateOne) SetStatus(v pipelinetask.Status) *PipelineTaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PipelineTaskUpdateOne) SetNillableStatus(v *pipelinetask.Status) *PipelineTaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetParams sets the "params" field.
func (_u *PipelineTaskUpdateOne) SetParams(v json.RawMessage) *PipelineTaskUpdateOne {
	_u.mutation.SetParams(v)
	return _u
}

// AppendParams appends value to the "params" field.
func (_u *PipelineTaskUpdateOne) AppendParams(v json.RawMessage) *PipelineTaskUpdateOne {
	_u.mutation.AppendParams(v)
	return _u
}

// ClearParams clears the value of the "params" field.
func (_u *PipelineTaskUpdateOne) ClearParams() *PipelineTaskUpdateOne {
	_u.mutation.ClearParams()
	return _u
}

// SetResult sets the "result" field.
func (_u *PipelineTaskUpdateOne) SetResult(v json.RawMessage) *PipelineTaskUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// AppendResult appends value to the "result" field.
func (_u *PipelineTaskUpdateOne) AppendResult(v json.RawMessage) *PipelineTaskUpdateOne {
	_u.mutation.AppendResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *PipelineTaskUpdateOne) ClearResult() *PipelineTaskUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *PipelineTaskUpdateOne) SetAttempt(v int) *PipelineTaskUpdateOne {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *PipelineTaskUpdateOne) SetNillableAttempt(v *int) *PipelineTaskUpdateOne {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *PipelineTaskUpdateOne) AddAttempt(v int) *PipelineTaskUpdateOne {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetMaxAttempts sets the "max_attempts" field.
func (_u *PipelineTaskUpdateOne) SetMaxAttempts(v int) *PipelineTaskUpdateOne {
	_u.mutation.ResetMaxAttempts()
	_u.mutation.SetMaxAttempts(v)
	return _u
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_u *PipelineTaskUpdateOne) SetNillableMaxAttempts(v *int) *PipelineTaskUpdateOne {
	if v != nil {
		_u.SetMaxAttempts(*v)
	}
	return _u
}

// AddMaxAttempts adds value to the "max_attempts" field.
func (_u *PipelineTaskUpdateOne) AddMaxAttempts(v int) *PipelineTaskUpdateOne {
	_u.mutation.AddMaxAttempts(v)
	return _u
}

// SetRunAfter sets the "run_after" field.
func (_u *PipelineTaskUpdateOne) SetRunAfter(v time.Time) *PipelineTaskUpdateOne {
	_u.mutation.SetRunAfter(v)
	return _u
}

// SetNillableRunAfter sets the "run_after" field if the given value is not nil.
func (_u *PipelineTaskUpdateOne) SetNillableRunAfter(v *time.Time) *PipelineTaskUpdateOne {
	if v != nil {
		_u.SetRunAfter(*v)
	}
	return _u
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (_u *PipelineTaskUpdateOne) SetTimeoutSeconds(v float64) *PipelineTaskUpdateOne {
	_u.mutation.ResetTimeoutSeconds()
	_u.mutation.SetTimeoutSeconds(v)
	return _u
}

// SetNillableTimeoutSeconds sets the "timeout_seconds" field if the given value is not nil.
func (_u *PipelineTaskUpdateOne) SetNillableTimeoutSeconds(v *float64) *PipelineTaskUpdateOne {
	if v != nil {
		_u.SetTimeoutSeconds(*v)
	}
	return _u
}

// AddTimeoutSeconds adds value to the "timeout_seconds" field.
func (_u *PipelineTaskUpdateOne) AddTimeoutSeconds(v float64) *PipelineTaskUpdateOne {
	_u.mutation.AddTimeoutSeconds(v)
	return _u
}

// SetConcurrencyKey sets the "concurrency_key" field.
func (_u *PipelineTaskUpdateOne) SetConcurrencyKey(v string) *PipelineTaskUpdateOne {
	_u.mutation.SetConcurrencyKey(v)
	return _u
}

// SetNillableConcurrencyKey sets the "concurrency_key" field if the given value is not nil.
func (_u *PipelineTaskUpdateOne) SetNillableConcurrencyKey(v *string) *PipelineTaskUpdateOne {
	if v != nil {
		_u.SetConcurrencyKey(*v)
	}
	return _u
}

// ClearConcurrencyKey clears the value of the "concurrency_key" field.
func (_u *PipelineTaskUpdateOne) ClearConcurrencyKey() *PipelineTaskUpdateOne {
	_u.mutation.ClearConcurrencyKey()
	return _u
}

// SetMaxConcurrency sets the "max_concurrency" field.
func (_u *PipelineTaskUpdateOne) SetMaxConcurrency(v int) *PipelineTaskUpdateOne {
	_u.mutation.ResetMaxConcurrency()
	_u.mutation.SetMaxConcurrency(v)
	return _u
}

// SetNillableMaxConcurrency sets the "max_concurrency" field if the given value is not nil.
func (_u *PipelineTaskUpdateOne) SetNillableMaxConcurrency(v *int) *PipelineTaskUpdateOne {
	if v != nil {
		_u.SetMaxConcurrency(*v)
	}
	return _u
}

// AddMaxConcurrency adds value to the "max_concurrency" field.
func (_u *PipelineTaskUpdateOne) AddMaxConcurrency(v int) *PipelineTaskUpdateOne {
	_u.mutation.AddMaxConcurrency(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *PipelineTaskUpdateOne) SetErrorMessage(v string) *PipelineTaskUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *PipelineTaskUpdateOne) SetNillableErrorMessage(v *string) *PipelineTaskUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *PipelineTaskUpdateOne) ClearErrorMessage() *PipelineTaskUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *PipelineTaskUpdateOne) SetPodID(v string) *PipelineTaskUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *PipelineTaskUpdateOne) SetNillablePodID(v *string) *PipelineTaskUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *PipelineTaskUpdateOne) ClearPodID() *PipelineTaskUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *PipelineTaskUpdateOne) SetStartedAt(v time.Time) *PipelineTaskUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *PipelineTaskUpdateOne) SetNillableStartedAt(v *time.Time) *PipelineTaskUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *PipelineTaskUpdateOne) ClearStartedAt() *PipelineTaskUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PipelineTaskUpdateOne) SetCompletedAt(v time.Time) *PipelineTaskUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PipelineTaskUpdateOne) SetNillableCompletedAt(v *time.Time) *PipelineTaskUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *PipelineTaskUpdateOne) ClearCompletedAt() *PipelineTaskUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *PipelineTaskUpdateOne) SetLastInteractionAt(v time.Time) *PipelineTaskUpdateOne {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *PipelineTaskUpdateOne) SetNillableLastInteractionAt(v *time.Time) *PipelineTaskUpdateOne {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *PipelineTaskUpdateOne) ClearLastInteractionAt() *PipelineTaskUpdateOne {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PipelineTaskUpdateOne) SetUpdatedAt(v time.Time) *PipelineTaskUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddDependentIDs adds the "dependents" edge to the PipelineTask entity by IDs.
func (_u *PipelineTaskUpdateOne) AddDependentIDs(ids ...string) *PipelineTaskUpdateOne {
	_u.mutation.AddDependentIDs(ids...)
	return _u
}

// AddDependents adds the "dependents" edges to the PipelineTask entity.
func (_u *PipelineTaskUpdateOne) AddDependents(v ...*PipelineTask) *PipelineTaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDependentIDs(ids...)
}

// AddDependsOnIDs adds the "depends_on" edge to the PipelineTask entity by IDs.
func (_u *PipelineTaskUpdateOne) AddDependsOnIDs(ids ...string) *PipelineTaskUpdateOne {
	_u.mutation.AddDependsOnIDs(ids...)
	return _u
}

// AddDependsOn adds the "depends_on" edges to the PipelineTask entity.
func (_u *PipelineTaskUpdateOne) AddDependsOn(v ...*PipelineTask) *PipelineTaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDependsOnIDs(ids...)
}

// Mutation returns the PipelineTaskMutation object of the builder.
func (_u *PipelineTaskUpdateOne) Mutation() *PipelineTaskMutation {
	return _u.mutation
}

// ClearDependents clears all "dependents" edges to the PipelineTask entity.
func (_u *PipelineTaskUpdateOne) ClearDependents() *PipelineTaskUpdateOne {
	_u.mutation.ClearDependents()
	return _u
}

// RemoveDependentIDs removes the "dependents" edge to PipelineTask entities by IDs.
func (_u *PipelineTaskUpdateOne) RemoveDependentIDs(ids ...string) *PipelineTaskUpdateOne {
	_u.mutation.RemoveDependentIDs(ids...)
	return _u
}

// RemoveDependents removes "dependents" edges to PipelineTask entities.
func (_u *PipelineTaskUpdateOne) RemoveDependents(v ...*PipelineTask) *PipelineTaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDependentIDs(ids...)
}

// ClearDependsOn clears all "depends_on" edges to the PipelineTask entity.
func (_u *PipelineTaskUpdateOne) ClearDependsOn() *PipelineTaskUpdateOne {
	_u.mutation.ClearDependsOn()
	return _u
}

// RemoveDependsOnIDs removes the "depends_on" edge to PipelineTask entities by IDs.
func (_u *PipelineTaskUpdateOne) RemoveDependsOnIDs(ids ...string) *PipelineTaskUpdateOne {
	_u.mutation.RemoveDependsOnIDs(ids...)
	return _u
}

// RemoveDependsOn removes "depends_on" edges to PipelineTask entities.
func (_u *PipelineTaskUpdateOne) RemoveDependsOn(v ...*PipelineTask) *PipelineTaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDependsOnIDs(ids...)
}

// Where appends a list predicates to the PipelineTaskUpdate builder.
func (_u *PipelineTaskUpdateOne) Where(ps ...predicate.PipelineTask) *PipelineTaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PipelineTaskUpdateOne) Select(field string, fields ...string) *PipelineTaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PipelineTask entity.
func (_u *PipelineTaskUpdateOne) Save(ctx context.Context) (*PipelineTask, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineTaskUpdateOne) SaveX(ctx context.Context) *PipelineTask {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PipelineTaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineTaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PipelineTaskUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pipelinetask.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineTaskUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := pipelinetask.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "PipelineTask.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Queue(); ok {
		if err := pipelinetask.QueueValidator(v); err != nil {
			return &ValidationError{Name: "queue", err: fmt.Errorf(`ent: validator failed for field "PipelineTask.queue": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := pipelinetask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PipelineTask.status": %w`, err)}
		}
	}
	if _u.mutation.TranscriptCleared() && len(_u.mutation.TranscriptIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PipelineTask.transcript"`)
	}
	return nil
}

func (_u *PipelineTaskUpdateOne) sqlSave(ctx context.Context) (_node *PipelineTask, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipelinetask.Table, pipelinetask.Columns, sqlgraph.NewFieldSpec(pipelinetask.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PipelineTask.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pipelinetask.FieldID)
		for _, f := range fields {
			if !pipelinetask.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pipelinetask.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(pipelinetask.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Queue(); ok {
		_spec.SetField(pipelinetask.FieldQueue, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pipelinetask.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Params(); ok {
		_spec.SetField(pipelinetask.FieldParams, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedParams(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pipelinetask.FieldParams, value)
		})
	}
	if _u.mutation.ParamsCleared() {
		_spec.ClearField(pipelinetask.FieldParams, field.TypeJSON)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(pipelinetask.FieldResult, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResult(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pipelinetask.FieldResult, value)
		})
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(pipelinetask.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(pipelinetask.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(pipelinetask.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxAttempts(); ok {
		_spec.SetField(pipelinetask.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAttempts(); ok {
		_spec.AddField(pipelinetask.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RunAfter(); ok {
		_spec.SetField(pipelinetask.FieldRunAfter, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TimeoutSeconds(); ok {
		_spec.SetField(pipelinetask.FieldTimeoutSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTimeoutSeconds(); ok {
		_spec.AddField(pipelinetask.FieldTimeoutSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ConcurrencyKey(); ok {
		_spec.SetField(pipelinetask.FieldConcurrencyKey, field.TypeString, value)
	}
	if _u.mutation.ConcurrencyKeyCleared() {
		_spec.ClearField(pipelinetask.FieldConcurrencyKey, field.TypeString)
	}
	if value, ok := _u.mutation.MaxConcurrency(); ok {
		_spec.SetField(pipelinetask.FieldMaxConcurrency, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxConcurrency(); ok {
		_spec.AddField(pipelinetask.FieldMaxConcurrency, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(pipelinetask.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(pipelinetask.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(pipelinetask.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(pipelinetask.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(pipelinetask.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(pipelinetask.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(pipelinetask.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(pipelinetask.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(pipelinetask.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(pipelinetask.FieldLastInteractionAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(pipelinetask.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DependentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDependentsIDs(); len(nodes) > 0 && !_u.mutation.DependentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DependentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DependsOnCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDependsOnIDs(); len(nodes) > 0 && !_u.mutation.DependsOnCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DependsOnIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PipelineTask{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelinetask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
