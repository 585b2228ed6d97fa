// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/monadical-sas/reflector/ent/pipelinetask"
	"github.com/monadical-sas/reflector/ent/transcript"
)

// PipelineTask is the model entity for the PipelineTask schema.
type PipelineTask struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TranscriptID holds the value of the "transcript_id" field.
	TranscriptID string `json:"transcript_id,omitempty"`
	// Groups every task of one pipeline run
	WorkflowRunID string `json:"workflow_run_id,omitempty"`
	// Handler name, e.g. 'mixdown'
	Name string `json:"name,omitempty"`
	// Queue holds the value of the "queue" field.
	Queue pipelinetask.Queue `json:"queue,omitempty"`
	// Status holds the value of the "status" field.
	Status pipelinetask.Status `json:"status,omitempty"`
	// Params holds the value of the "params" field.
	Params json.RawMessage `json:"params,omitempty"`
	// Result holds the value of the "result" field.
	Result json.RawMessage `json:"result,omitempty"`
	// Attempt holds the value of the "attempt" field.
	Attempt int `json:"attempt,omitempty"`
	// MaxAttempts holds the value of the "max_attempts" field.
	MaxAttempts int `json:"max_attempts,omitempty"`
	// Earliest claim time; pushed out by the retry backoff
	RunAfter time.Time `json:"run_after,omitempty"`
	// TimeoutSeconds holds the value of the "timeout_seconds" field.
	TimeoutSeconds float64 `json:"timeout_seconds,omitempty"`
	// ConcurrencyKey holds the value of the "concurrency_key" field.
	ConcurrencyKey *string `json:"concurrency_key,omitempty"`
	// Running cap across tasks sharing concurrency_key; 0 = unlimited
	MaxConcurrency int `json:"max_concurrency,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// For multi-replica coordination
	PodID *string `json:"pod_id,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Heartbeat; stale running rows get re-driven as orphans
	LastInteractionAt *time.Time `json:"last_interaction_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PipelineTaskQuery when eager-loading is set.
	Edges        PipelineTaskEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PipelineTaskEdges holds the relations/edges for other nodes in the graph.
type PipelineTaskEdges struct {
	// Transcript holds the value of the transcript edge.
	Transcript *Transcript `json:"transcript,omitempty"`
	// Dependents holds the value of the dependents edge.
	Dependents []*PipelineTask `json:"dependents,omitempty"`
	// DependsOn holds the value of the depends_on edge.
	DependsOn []*PipelineTask `json:"depends_on,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// TranscriptOrErr returns the Transcript value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PipelineTaskEdges) TranscriptOrErr() (*Transcript, error) {
	if e.Transcript != nil {
		return e.Transcript, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: transcript.Label}
	}
	return nil, &NotLoadedError{edge: "transcript"}
}

// DependentsOrErr returns the Dependents value or an error if the edge
// was not loaded in eager-loading.
func (e PipelineTaskEdges) DependentsOrErr() ([]*PipelineTask, error) {
	if e.loadedTypes[1] {
		return e.Dependents, nil
	}
	return nil, &NotLoadedError{edge: "dependents"}
}

// DependsOnOrErr returns the DependsOn value or an error if the edge
// was not loaded in eager-loading.
func (e PipelineTaskEdges) DependsOnOrErr() ([]*PipelineTask, error) {
	if e.loadedTypes[2] {
		return e.DependsOn, nil
	}
	return nil, &NotLoadedError{edge: "depends_on"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PipelineTask) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pipelinetask.FieldParams, pipelinetask.FieldResult:
			values[i] = new([]byte)
		case pipelinetask.FieldTimeoutSeconds:
			values[i] = new(sql.NullFloat64)
		case pipelinetask.FieldAttempt, pipelinetask.FieldMaxAttempts, pipelinetask.FieldMaxConcurrency:
			values[i] = new(sql.NullInt64)
		case pipelinetask.FieldID, pipelinetask.FieldTranscriptID, pipelinetask.FieldWorkflowRunID, pipelinetask.FieldName, pipelinetask.FieldQueue, pipelinetask.FieldStatus, pipelinetask.FieldConcurrencyKey, pipelinetask.FieldErrorMessage, pipelinetask.FieldPodID:
			values[i] = new(sql.NullString)
		case pipelinetask.FieldRunAfter, pipelinetask.FieldStartedAt, pipelinetask.FieldCompletedAt, pipelinetask.FieldLastInteractionAt, pipelinetask.FieldCreatedAt, pipelinetask.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PipelineTask fields.
func (_m *PipelineTask) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pipelinetask.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case pipelinetask.FieldTranscriptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field transcript_id", values[i])
			} else if value.Valid {
				_m.TranscriptID = value.String
			}
		case pipelinetask.FieldWorkflowRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workflow_run_id", values[i])
			} else if value.Valid {
				_m.WorkflowRunID = value.String
			}
		case pipelinetask.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case pipelinetask.FieldQueue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field queue", values[i])
			} else if value.Valid {
				_m.Queue = pipelinetask.Queue(value.String)
			}
		case pipelinetask.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = pipelinetask.Status(value.String)
			}
		case pipelinetask.FieldParams:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field params", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Params); err != nil {
					return fmt.Errorf("unmarshal field params: %w", err)
				}
			}
		case pipelinetask.FieldResult:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field result", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Result); err != nil {
					return fmt.Errorf("unmarshal field result: %w", err)
				}
			}
		case pipelinetask.FieldAttempt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt", values[i])
			} else if value.Valid {
				_m.Attempt = int(value.Int64)
			}
		case pipelinetask.FieldMaxAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_attempts", values[i])
			} else if value.Valid {
				_m.MaxAttempts = int(value.Int64)
			}
		case pipelinetask.FieldRunAfter:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field run_after", values[i])
			} else if value.Valid {
				_m.RunAfter = value.Time
			}
		case pipelinetask.FieldTimeoutSeconds:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field timeout_seconds", values[i])
			} else if value.Valid {
				_m.TimeoutSeconds = value.Float64
			}
		case pipelinetask.FieldConcurrencyKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field concurrency_key", values[i])
			} else if value.Valid {
				_m.ConcurrencyKey = new(string)
				*_m.ConcurrencyKey = value.String
			}
		case pipelinetask.FieldMaxConcurrency:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_concurrency", values[i])
			} else if value.Valid {
				_m.MaxConcurrency = int(value.Int64)
			}
		case pipelinetask.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case pipelinetask.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		case pipelinetask.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case pipelinetask.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case pipelinetask.FieldLastInteractionAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_interaction_at", values[i])
			} else if value.Valid {
				_m.LastInteractionAt = new(time.Time)
				*_m.LastInteractionAt = value.Time
			}
		case pipelinetask.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case pipelinetask.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PipelineTask.
// This includes values selected through modifiers, order, etc.
func (_m *PipelineTask) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTranscript queries the "transcript" edge of the PipelineTask entity.
func (_m *PipelineTask) QueryTranscript() *TranscriptQuery {
	return NewPipelineTaskClient(_m.config).QueryTranscript(_m)
}

// QueryDependents queries the "dependents" edge of the PipelineTask entity.
func (_m *PipelineTask) QueryDependents() *PipelineTaskQuery {
	return NewPipelineTaskClient(_m.config).QueryDependents(_m)
}

// QueryDependsOn queries the "depends_on" edge of the PipelineTask entity.
func (_m *PipelineTask) QueryDependsOn() *PipelineTaskQuery {
	return NewPipelineTaskClient(_m.config).QueryDependsOn(_m)
}

// Update returns a builder for updating this PipelineTask.
// Note that you need to call PipelineTask.Unwrap() before calling this method if this PipelineTask
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PipelineTask) Update() *PipelineTaskUpdateOne {
	return NewPipelineTaskClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PipelineTask entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PipelineTask) Unwrap() *PipelineTask {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PipelineTask is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PipelineTask) String() string {
	var builder strings.Builder
	builder.WriteString("PipelineTask(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("transcript_id=")
	builder.WriteString(_m.TranscriptID)
	builder.WriteString(", ")
	builder.WriteString("workflow_run_id=")
	builder.WriteString(_m.WorkflowRunID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("queue=")
	builder.WriteString(fmt.Sprintf("%v", _m.Queue))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("params=")
	builder.WriteString(fmt.Sprintf("%v", _m.Params))
	builder.WriteString(", ")
	builder.WriteString("result=")
	builder.WriteString(fmt.Sprintf("%v", _m.Result))
	builder.WriteString(", ")
	builder.WriteString("attempt=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempt))
	builder.WriteString(", ")
	builder.WriteString("max_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxAttempts))
	builder.WriteString(", ")
	builder.WriteString("run_after=")
	builder.WriteString(_m.RunAfter.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("timeout_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeoutSeconds))
	builder.WriteString(", ")
	if v := _m.ConcurrencyKey; v != nil {
		builder.WriteString("concurrency_key=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("max_concurrency=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxConcurrency))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastInteractionAt; v != nil {
		builder.WriteString("last_interaction_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PipelineTasks is a parsable slice of PipelineTask.
type PipelineTasks []*PipelineTask
