// Code generated by ent, DO NOT EDIT.

package pipelinetask

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the pipelinetask type in the database.
	Label = "pipeline_task"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "task_id"
	// FieldTranscriptID holds the string denoting the transcript_id field in the database.
	FieldTranscriptID = "transcript_id"
	// FieldWorkflowRunID holds the string denoting the workflow_run_id field in the database.
	FieldWorkflowRunID = "workflow_run_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldQueue holds the string denoting the queue field in the database.
	FieldQueue = "queue"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldParams holds the string denoting the params field in the database.
	FieldParams = "params"
	// FieldResult holds the string denoting the result field in the database.
	FieldResult = "result"
	// FieldAttempt holds the string denoting the attempt field in the database.
	FieldAttempt = "attempt"
	// FieldMaxAttempts holds the string denoting the max_attempts field in the database.
	FieldMaxAttempts = "max_attempts"
	// FieldRunAfter holds the string denoting the run_after field in the database.
	FieldRunAfter = "run_after"
	// FieldTimeoutSeconds holds the string denoting the timeout_seconds field in the database.
	FieldTimeoutSeconds = "timeout_seconds"
	// FieldConcurrencyKey holds the string denoting the concurrency_key field in the database.
	FieldConcurrencyKey = "concurrency_key"
	// FieldMaxConcurrency holds the string denoting the max_concurrency field in the database.
	FieldMaxConcurrency = "max_concurrency"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldPodID holds the string denoting the pod_id field in the database.
	FieldPodID = "pod_id"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldLastInteractionAt holds the string denoting the last_interaction_at field in the database.
	FieldLastInteractionAt = "last_interaction_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeTranscript holds the string denoting the transcript edge name in mutations.
	EdgeTranscript = "transcript"
	// EdgeDependents holds the string denoting the dependents edge name in mutations.
	EdgeDependents = "dependents"
	// EdgeDependsOn holds the string denoting the depends_on edge name in mutations.
	EdgeDependsOn = "depends_on"
	// TranscriptFieldID holds the string denoting the ID field of the Transcript.
	TranscriptFieldID = "transcript_id"
	// Table holds the table name of the pipelinetask in the database.
	Table = "pipeline_tasks"
	// TranscriptTable is the table that holds the transcript relation/edge.
	TranscriptTable = "pipeline_tasks"
	// TranscriptInverseTable is the table name for the Transcript entity.
	// It exists in this package in order to avoid circular dependency with the "transcript" package.
	TranscriptInverseTable = "transcripts"
	// TranscriptColumn is the table column denoting the transcript relation/edge.
	TranscriptColumn = "transcript_id"
	// DependentsTable is the table that holds the dependents relation/edge. The primary key declared below.
	DependentsTable = "pipeline_task_depends_on"
	// DependsOnTable is the table that holds the depends_on relation/edge. The primary key declared below.
	DependsOnTable = "pipeline_task_depends_on"
)

// Columns holds all SQL columns for pipelinetask fields.
var Columns = []string{
	FieldID,
	FieldTranscriptID,
	FieldWorkflowRunID,
	FieldName,
	FieldQueue,
	FieldStatus,
	FieldParams,
	FieldResult,
	FieldAttempt,
	FieldMaxAttempts,
	FieldRunAfter,
	FieldTimeoutSeconds,
	FieldConcurrencyKey,
	FieldMaxConcurrency,
	FieldErrorMessage,
	FieldPodID,
	FieldStartedAt,
	FieldCompletedAt,
	FieldLastInteractionAt,
	FieldCreatedAt,
	FieldUpdatedAt,
}

var (
	// DependentsPrimaryKey and DependentsColumn2 are the table columns denoting the
	// primary key for the dependents relation (M2M).
	DependentsPrimaryKey = []string{"pipeline_task_id", "dependent_id"}
	// DependsOnPrimaryKey and DependsOnColumn2 are the table columns denoting the
	// primary key for the depends_on relation (M2M).
	DependsOnPrimaryKey = []string{"pipeline_task_id", "dependent_id"}
)

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultAttempt holds the default value on creation for the "attempt" field.
	DefaultAttempt int
	// DefaultMaxAttempts holds the default value on creation for the "max_attempts" field.
	DefaultMaxAttempts int
	// DefaultRunAfter holds the default value on creation for the "run_after" field.
	DefaultRunAfter func() time.Time
	// DefaultTimeoutSeconds holds the default value on creation for the "timeout_seconds" field.
	DefaultTimeoutSeconds float64
	// DefaultMaxConcurrency holds the default value on creation for the "max_concurrency" field.
	DefaultMaxConcurrency int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Queue defines the type for the "queue" enum field.
type Queue string

// QueueDefault is the default value of the Queue enum.
const DefaultQueue = QueueDefault

// Queue values.
const (
	QueueDefault Queue = "default"
	QueueCPU     Queue = "cpu"
)

func (q Queue) String() string {
	return string(q)
}

// QueueValidator is a validator for the "queue" field enum values. It is called by the builders before save.
func QueueValidator(q Queue) error {
	switch q {
	case QueueDefault, QueueCPU:
		return nil
	default:
		return fmt.Errorf("pipelinetask: invalid enum value for queue field: %q", q)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusWaiting is the default value of the Status enum.
const DefaultStatus = StatusWaiting

// Status values.
const (
	StatusWaiting   Status = "waiting"
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusWaiting, StatusPending, StatusRunning, StatusCompleted, StatusFailed, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("pipelinetask: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the PipelineTask queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTranscriptID orders the results by the transcript_id field.
func ByTranscriptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTranscriptID, opts...).ToFunc()
}

// ByWorkflowRunID orders the results by the workflow_run_id field.
func ByWorkflowRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkflowRunID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByQueue orders the results by the queue field.
func ByQueue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQueue, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByAttempt orders the results by the attempt field.
func ByAttempt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttempt, opts...).ToFunc()
}

// ByMaxAttempts orders the results by the max_attempts field.
func ByMaxAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxAttempts, opts...).ToFunc()
}

// ByRunAfter orders the results by the run_after field.
func ByRunAfter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunAfter, opts...).ToFunc()
}

// ByTimeoutSeconds orders the results by the timeout_seconds field.
func ByTimeoutSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeoutSeconds, opts...).ToFunc()
}

// ByConcurrencyKey orders the results by the concurrency_key field.
func ByConcurrencyKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConcurrencyKey, opts...).ToFunc()
}

// ByMaxConcurrency orders the results by the max_concurrency field.
func ByMaxConcurrency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxConcurrency, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByPodID orders the results by the pod_id field.
func ByPodID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodID, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByLastInteractionAt orders the results by the last_interaction_at field.
func ByLastInteractionAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastInteractionAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByTranscriptField orders the results by transcript field.
func ByTranscriptField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTranscriptStep(), sql.OrderByField(field, opts...))
	}
}

// ByDependentsCount orders the results by dependents count.
func ByDependentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDependentsStep(), opts...)
	}
}

// ByDependents orders the results by dependents terms.
func ByDependents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDependentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByDependsOnCount orders the results by depends_on count.
func ByDependsOnCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDependsOnStep(), opts...)
	}
}

// ByDependsOn orders the results by depends_on terms.
func ByDependsOn(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDependsOnStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newTranscriptStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TranscriptInverseTable, TranscriptFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TranscriptTable, TranscriptColumn),
	)
}
func newDependentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(Table, FieldID),
		sqlgraph.Edge(sqlgraph.M2M, true, DependentsTable, DependentsPrimaryKey...),
	)
}
func newDependsOnStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(Table, FieldID),
		sqlgraph.Edge(sqlgraph.M2M, false, DependsOnTable, DependsOnPrimaryKey...),
	)
}
