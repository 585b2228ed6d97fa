// Code generated by ent, DO NOT EDIT.

package pipelinetask

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/monadical-sas/reflector/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldContainsFold(FieldID, id))
}

// TranscriptID applies equality check predicate on the "transcript_id" field. It's identical to TranscriptIDEQ.
func TranscriptID(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldTranscriptID, v))
}

// WorkflowRunID applies equality check predicate on the "workflow_run_id" field. It's identical to WorkflowRunIDEQ.
func WorkflowRunID(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldWorkflowRunID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldName, v))
}

// Attempt applies equality check predicate on the "attempt" field. It's identical to AttemptEQ.
func Attempt(v int) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldAttempt, v))
}

// MaxAttempts applies equality check predicate on the "max_attempts" field. It's identical to MaxAttemptsEQ.
func MaxAttempts(v int) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldMaxAttempts, v))
}

// RunAfter applies equality check predicate on the "run_after" field. It's identical to RunAfterEQ.
func RunAfter(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldRunAfter, v))
}

// TimeoutSeconds applies equality check predicate on the "timeout_seconds" field. It's identical to TimeoutSecondsEQ.
func TimeoutSeconds(v float64) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldTimeoutSeconds, v))
}

// ConcurrencyKey applies equality check predicate on the "concurrency_key" field. It's identical to ConcurrencyKeyEQ.
func ConcurrencyKey(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldConcurrencyKey, v))
}

// MaxConcurrency applies equality check predicate on the "max_concurrency" field. It's identical to MaxConcurrencyEQ.
func MaxConcurrency(v int) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldMaxConcurrency, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldErrorMessage, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldPodID, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldCompletedAt, v))
}

// LastInteractionAt applies equality check predicate on the "last_interaction_at" field. It's identical to LastInteractionAtEQ.
func LastInteractionAt(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldLastInteractionAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldUpdatedAt, v))
}

// TranscriptIDEQ applies the EQ predicate on the "transcript_id" field.
func TranscriptIDEQ(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldTranscriptID, v))
}

// TranscriptIDNEQ applies the NEQ predicate on the "transcript_id" field.
func TranscriptIDNEQ(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNEQ(FieldTranscriptID, v))
}

// TranscriptIDIn applies the In predicate on the "transcript_id" field.
func TranscriptIDIn(vs ...string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldIn(FieldTranscriptID, vs...))
}

// TranscriptIDNotIn applies the NotIn predicate on the "transcript_id" field.
func TranscriptIDNotIn(vs ...string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNotIn(FieldTranscriptID, vs...))
}

// TranscriptIDGT applies the GT predicate on the "transcript_id" field.
func TranscriptIDGT(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGT(FieldTranscriptID, v))
}

// TranscriptIDGTE applies the GTE predicate on the "transcript_id" field.
func TranscriptIDGTE(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGTE(FieldTranscriptID, v))
}

// TranscriptIDLT applies the LT predicate on the "transcript_id" field.
func TranscriptIDLT(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLT(FieldTranscriptID, v))
}

// TranscriptIDLTE applies the LTE predicate on the "transcript_id" field.
func TranscriptIDLTE(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLTE(FieldTranscriptID, v))
}

// TranscriptIDContains applies the Contains predicate on the "transcript_id" field.
func TranscriptIDContains(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldContains(FieldTranscriptID, v))
}

// TranscriptIDHasPrefix applies the HasPrefix predicate on the "transcript_id" field.
func TranscriptIDHasPrefix(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldHasPrefix(FieldTranscriptID, v))
}

// TranscriptIDHasSuffix applies the HasSuffix predicate on the "transcript_id" field.
func TranscriptIDHasSuffix(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldHasSuffix(FieldTranscriptID, v))
}

// TranscriptIDEqualFold applies the EqualFold predicate on the "transcript_id" field.
func TranscriptIDEqualFold(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEqualFold(FieldTranscriptID, v))
}

// TranscriptIDContainsFold applies the ContainsFold predicate on the "transcript_id" field.
func TranscriptIDContainsFold(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldContainsFold(FieldTranscriptID, v))
}

// WorkflowRunIDEQ applies the EQ predicate on the "workflow_run_id" field.
func WorkflowRunIDEQ(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldWorkflowRunID, v))
}

// WorkflowRunIDNEQ applies the NEQ predicate on the "workflow_run_id" field.
func WorkflowRunIDNEQ(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNEQ(FieldWorkflowRunID, v))
}

// WorkflowRunIDIn applies the In predicate on the "workflow_run_id" field.
func WorkflowRunIDIn(vs ...string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldIn(FieldWorkflowRunID, vs...))
}

// WorkflowRunIDNotIn applies the NotIn predicate on the "workflow_run_id" field.
func WorkflowRunIDNotIn(vs ...string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNotIn(FieldWorkflowRunID, vs...))
}

// WorkflowRunIDGT applies the GT predicate on the "workflow_run_id" field.
func WorkflowRunIDGT(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGT(FieldWorkflowRunID, v))
}

// WorkflowRunIDGTE applies the GTE predicate on the "workflow_run_id" field.
func WorkflowRunIDGTE(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGTE(FieldWorkflowRunID, v))
}

// WorkflowRunIDLT applies the LT predicate on the "workflow_run_id" field.
func WorkflowRunIDLT(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLT(FieldWorkflowRunID, v))
}

// WorkflowRunIDLTE applies the LTE predicate on the "workflow_run_id" field.
func WorkflowRunIDLTE(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLTE(FieldWorkflowRunID, v))
}

// WorkflowRunIDContains applies the Contains predicate on the "workflow_run_id" field.
func WorkflowRunIDContains(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldContains(FieldWorkflowRunID, v))
}

// WorkflowRunIDHasPrefix applies the HasPrefix predicate on the "workflow_run_id" field.
func WorkflowRunIDHasPrefix(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldHasPrefix(FieldWorkflowRunID, v))
}

// WorkflowRunIDHasSuffix applies the HasSuffix predicate on the "workflow_run_id" field.
func WorkflowRunIDHasSuffix(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldHasSuffix(FieldWorkflowRunID, v))
}

// WorkflowRunIDEqualFold applies the EqualFold predicate on the "workflow_run_id" field.
func WorkflowRunIDEqualFold(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEqualFold(FieldWorkflowRunID, v))
}

// WorkflowRunIDContainsFold applies the ContainsFold predicate on the "workflow_run_id" field.
func WorkflowRunIDContainsFold(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldContainsFold(FieldWorkflowRunID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldContainsFold(FieldName, v))
}

// QueueEQ applies the EQ predicate on the "queue" field.
func QueueEQ(v Queue) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldQueue, v))
}

// QueueNEQ applies the NEQ predicate on the "queue" field.
func QueueNEQ(v Queue) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNEQ(FieldQueue, v))
}

// QueueIn applies the In predicate on the "queue" field.
func QueueIn(vs ...Queue) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldIn(FieldQueue, vs...))
}

// QueueNotIn applies the NotIn predicate on the "queue" field.
func QueueNotIn(vs ...Queue) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNotIn(FieldQueue, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNotIn(FieldStatus, vs...))
}

// ParamsIsNil applies the IsNil predicate on the "params" field.
func ParamsIsNil() predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldIsNull(FieldParams))
}

// ParamsNotNil applies the NotNil predicate on the "params" field.
func ParamsNotNil() predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNotNull(FieldParams))
}

// ResultIsNil applies the IsNil predicate on the "result" field.
func ResultIsNil() predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldIsNull(FieldResult))
}

// ResultNotNil applies the NotNil predicate on the "result" field.
func ResultNotNil() predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNotNull(FieldResult))
}

// AttemptEQ applies the EQ predicate on the "attempt" field.
func AttemptEQ(v int) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldAttempt, v))
}

// AttemptNEQ applies the NEQ predicate on the "attempt" field.
func AttemptNEQ(v int) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNEQ(FieldAttempt, v))
}

// AttemptIn applies the In predicate on the "attempt" field.
func AttemptIn(vs ...int) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldIn(FieldAttempt, vs...))
}

// AttemptNotIn applies the NotIn predicate on the "attempt" field.
func AttemptNotIn(vs ...int) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNotIn(FieldAttempt, vs...))
}

// AttemptGT applies the GT predicate on the "attempt" field.
func AttemptGT(v int) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGT(FieldAttempt, v))
}

// AttemptGTE applies the GTE predicate on the "attempt" field.
func AttemptGTE(v int) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGTE(FieldAttempt, v))
}

// AttemptLT applies the LT predicate on the "attempt" field.
func AttemptLT(v int) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLT(FieldAttempt, v))
}

// AttemptLTE applies the LTE predicate on the "attempt" field.
func AttemptLTE(v int) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLTE(FieldAttempt, v))
}

// MaxAttemptsEQ applies the EQ predicate on the "max_attempts" field.
func MaxAttemptsEQ(v int) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldMaxAttempts, v))
}

// MaxAttemptsNEQ applies the NEQ predicate on the "max_attempts" field.
func MaxAttemptsNEQ(v int) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNEQ(FieldMaxAttempts, v))
}

// MaxAttemptsIn applies the In predicate on the "max_attempts" field.
func MaxAttemptsIn(vs ...int) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldIn(FieldMaxAttempts, vs...))
}

// MaxAttemptsNotIn applies the NotIn predicate on the "max_attempts" field.
func MaxAttemptsNotIn(vs ...int) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNotIn(FieldMaxAttempts, vs...))
}

// MaxAttemptsGT applies the GT predicate on the "max_attempts" field.
func MaxAttemptsGT(v int) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGT(FieldMaxAttempts, v))
}

// MaxAttemptsGTE applies the GTE predicate on the "max_attempts" field.
func MaxAttemptsGTE(v int) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGTE(FieldMaxAttempts, v))
}

// MaxAttemptsLT applies the LT predicate on the "max_attempts" field.
func MaxAttemptsLT(v int) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLT(FieldMaxAttempts, v))
}

// MaxAttemptsLTE applies the LTE predicate on the "max_attempts" field.
func MaxAttemptsLTE(v int) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLTE(FieldMaxAttempts, v))
}

// RunAfterEQ applies the EQ predicate on the "run_after" field.
func RunAfterEQ(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldRunAfter, v))
}

// RunAfterNEQ applies the NEQ predicate on the "run_after" field.
func RunAfterNEQ(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNEQ(FieldRunAfter, v))
}

// RunAfterIn applies the In predicate on the "run_after" field.
func RunAfterIn(vs ...time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldIn(FieldRunAfter, vs...))
}

// RunAfterNotIn applies the NotIn predicate on the "run_after" field.
func RunAfterNotIn(vs ...time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNotIn(FieldRunAfter, vs...))
}

// RunAfterGT applies the GT predicate on the "run_after" field.
func RunAfterGT(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGT(FieldRunAfter, v))
}

// RunAfterGTE applies the GTE predicate on the "run_after" field.
func RunAfterGTE(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGTE(FieldRunAfter, v))
}

// RunAfterLT applies the LT predicate on the "run_after" field.
func RunAfterLT(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLT(FieldRunAfter, v))
}

// RunAfterLTE applies the LTE predicate on the "run_after" field.
func RunAfterLTE(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLTE(FieldRunAfter, v))
}

// TimeoutSecondsEQ applies the EQ predicate on the "timeout_seconds" field.
func TimeoutSecondsEQ(v float64) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldTimeoutSeconds, v))
}

// TimeoutSecondsNEQ applies the NEQ predicate on the "timeout_seconds" field.
func TimeoutSecondsNEQ(v float64) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNEQ(FieldTimeoutSeconds, v))
}

// TimeoutSecondsIn applies the In predicate on the "timeout_seconds" field.
func TimeoutSecondsIn(vs ...float64) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldIn(FieldTimeoutSeconds, vs...))
}

// TimeoutSecondsNotIn applies the NotIn predicate on the "timeout_seconds" field.
func TimeoutSecondsNotIn(vs ...float64) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNotIn(FieldTimeoutSeconds, vs...))
}

// TimeoutSecondsGT applies the GT predicate on the "timeout_seconds" field.
func TimeoutSecondsGT(v float64) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGT(FieldTimeoutSeconds, v))
}

// TimeoutSecondsGTE applies the GTE predicate on the "timeout_seconds" field.
func TimeoutSecondsGTE(v float64) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGTE(FieldTimeoutSeconds, v))
}

// TimeoutSecondsLT applies the LT predicate on the "timeout_seconds" field.
func TimeoutSecondsLT(v float64) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLT(FieldTimeoutSeconds, v))
}

// TimeoutSecondsLTE applies the LTE predicate on the "timeout_seconds" field.
func TimeoutSecondsLTE(v float64) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLTE(FieldTimeoutSeconds, v))
}

// ConcurrencyKeyEQ applies the EQ predicate on the "concurrency_key" field.
func ConcurrencyKeyEQ(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldConcurrencyKey, v))
}

// ConcurrencyKeyNEQ applies the NEQ predicate on the "concurrency_key" field.
func ConcurrencyKeyNEQ(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNEQ(FieldConcurrencyKey, v))
}

// ConcurrencyKeyIn applies the In predicate on the "concurrency_key" field.
func ConcurrencyKeyIn(vs ...string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldIn(FieldConcurrencyKey, vs...))
}

// ConcurrencyKeyNotIn applies the NotIn predicate on the "concurrency_key" field.
func ConcurrencyKeyNotIn(vs ...string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNotIn(FieldConcurrencyKey, vs...))
}

// ConcurrencyKeyGT applies the GT predicate on the "concurrency_key" field.
func ConcurrencyKeyGT(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGT(FieldConcurrencyKey, v))
}

// ConcurrencyKeyGTE applies the GTE predicate on the "concurrency_key" field.
func ConcurrencyKeyGTE(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGTE(FieldConcurrencyKey, v))
}

// ConcurrencyKeyLT applies the LT predicate on the "concurrency_key" field.
func ConcurrencyKeyLT(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLT(FieldConcurrencyKey, v))
}

// ConcurrencyKeyLTE applies the LTE predicate on the "concurrency_key" field.
func ConcurrencyKeyLTE(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLTE(FieldConcurrencyKey, v))
}

// ConcurrencyKeyContains applies the Contains predicate on the "concurrency_key" field.
func ConcurrencyKeyContains(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldContains(FieldConcurrencyKey, v))
}

// ConcurrencyKeyHasPrefix applies the HasPrefix predicate on the "concurrency_key" field.
func ConcurrencyKeyHasPrefix(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldHasPrefix(FieldConcurrencyKey, v))
}

// ConcurrencyKeyHasSuffix applies the HasSuffix predicate on the "concurrency_key" field.
func ConcurrencyKeyHasSuffix(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldHasSuffix(FieldConcurrencyKey, v))
}

// ConcurrencyKeyIsNil applies the IsNil predicate on the "concurrency_key" field.
func ConcurrencyKeyIsNil() predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldIsNull(FieldConcurrencyKey))
}

// ConcurrencyKeyNotNil applies the NotNil predicate on the "concurrency_key" field.
func ConcurrencyKeyNotNil() predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNotNull(FieldConcurrencyKey))
}

// ConcurrencyKeyEqualFold applies the EqualFold predicate on the "concurrency_key" field.
func ConcurrencyKeyEqualFold(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEqualFold(FieldConcurrencyKey, v))
}

// ConcurrencyKeyContainsFold applies the ContainsFold predicate on the "concurrency_key" field.
func ConcurrencyKeyContainsFold(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldContainsFold(FieldConcurrencyKey, v))
}

// MaxConcurrencyEQ applies the EQ predicate on the "max_concurrency" field.
func MaxConcurrencyEQ(v int) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldMaxConcurrency, v))
}

// MaxConcurrencyNEQ applies the NEQ predicate on the "max_concurrency" field.
func MaxConcurrencyNEQ(v int) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNEQ(FieldMaxConcurrency, v))
}

// MaxConcurrencyIn applies the In predicate on the "max_concurrency" field.
func MaxConcurrencyIn(vs ...int) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldIn(FieldMaxConcurrency, vs...))
}

// MaxConcurrencyNotIn applies the NotIn predicate on the "max_concurrency" field.
func MaxConcurrencyNotIn(vs ...int) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNotIn(FieldMaxConcurrency, vs...))
}

// MaxConcurrencyGT applies the GT predicate on the "max_concurrency" field.
func MaxConcurrencyGT(v int) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGT(FieldMaxConcurrency, v))
}

// MaxConcurrencyGTE applies the GTE predicate on the "max_concurrency" field.
func MaxConcurrencyGTE(v int) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGTE(FieldMaxConcurrency, v))
}

// MaxConcurrencyLT applies the LT predicate on the "max_concurrency" field.
func MaxConcurrencyLT(v int) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLT(FieldMaxConcurrency, v))
}

// MaxConcurrencyLTE applies the LTE predicate on the "max_concurrency" field.
func MaxConcurrencyLTE(v int) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLTE(FieldMaxConcurrency, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldContainsFold(FieldErrorMessage, v))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldContainsFold(FieldPodID, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNotNull(FieldCompletedAt))
}

// LastInteractionAtEQ applies the EQ predicate on the "last_interaction_at" field.
func LastInteractionAtEQ(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldLastInteractionAt, v))
}

// LastInteractionAtNEQ applies the NEQ predicate on the "last_interaction_at" field.
func LastInteractionAtNEQ(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNEQ(FieldLastInteractionAt, v))
}

// LastInteractionAtIn applies the In predicate on the "last_interaction_at" field.
func LastInteractionAtIn(vs ...time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldIn(FieldLastInteractionAt, vs...))
}

// LastInteractionAtNotIn applies the NotIn predicate on the "last_interaction_at" field.
func LastInteractionAtNotIn(vs ...time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNotIn(FieldLastInteractionAt, vs...))
}

// LastInteractionAtGT applies the GT predicate on the "last_interaction_at" field.
func LastInteractionAtGT(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGT(FieldLastInteractionAt, v))
}

// LastInteractionAtGTE applies the GTE predicate on the "last_interaction_at" field.
func LastInteractionAtGTE(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGTE(FieldLastInteractionAt, v))
}

// LastInteractionAtLT applies the LT predicate on the "last_interaction_at" field.
func LastInteractionAtLT(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLT(FieldLastInteractionAt, v))
}

// LastInteractionAtLTE applies the LTE predicate on the "last_interaction_at" field.
func LastInteractionAtLTE(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLTE(FieldLastInteractionAt, v))
}

// LastInteractionAtIsNil applies the IsNil predicate on the "last_interaction_at" field.
func LastInteractionAtIsNil() predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldIsNull(FieldLastInteractionAt))
}

// LastInteractionAtNotNil applies the NotNil predicate on the "last_interaction_at" field.
func LastInteractionAtNotNil() predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNotNull(FieldLastInteractionAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PipelineTask {
	return predicate.PipelineTask(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasTranscript applies the HasEdge predicate on the "transcript" edge.
func HasTranscript() predicate.PipelineTask {
	return predicate.PipelineTask(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TranscriptTable, TranscriptColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTranscriptWith applies the HasEdge predicate on the "transcript" edge with a given conditions (other predicates).
func HasTranscriptWith(preds ...predicate.Transcript) predicate.PipelineTask {
	return predicate.PipelineTask(func(s *sql.Selector) {
		step := newTranscriptStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDependents applies the HasEdge predicate on the "dependents" edge.
func HasDependents() predicate.PipelineTask {
	return predicate.PipelineTask(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, DependentsTable, DependentsPrimaryKey...),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDependentsWith applies the HasEdge predicate on the "dependents" edge with a given conditions (other predicates).
func HasDependentsWith(preds ...predicate.PipelineTask) predicate.PipelineTask {
	return predicate.PipelineTask(func(s *sql.Selector) {
		step := newDependentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDependsOn applies the HasEdge predicate on the "depends_on" edge.
func HasDependsOn() predicate.PipelineTask {
	return predicate.PipelineTask(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, DependsOnTable, DependsOnPrimaryKey...),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDependsOnWith applies the HasEdge predicate on the "depends_on" edge with a given conditions (other predicates).
func HasDependsOnWith(preds ...predicate.PipelineTask) predicate.PipelineTask {
	return predicate.PipelineTask(func(s *sql.Selector) {
		step := newDependsOnStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PipelineTask) predicate.PipelineTask {
	return predicate.PipelineTask(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PipelineTask) predicate.PipelineTask {
	return predicate.PipelineTask(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PipelineTask) predicate.PipelineTask {
	return predicate.PipelineTask(sql.NotPredicates(p))
}
