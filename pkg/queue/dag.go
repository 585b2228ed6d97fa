package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/monadical-sas/reflector/ent"
	"github.com/monadical-sas/reflector/ent/pipelinetask"
)

// TaskSpec describes one task row to insert. Specs reference each other
// by ID, so callers generate IDs up front and list dependencies before
// dependents.
type TaskSpec struct {
	ID             string
	Name           string
	Queue          pipelinetask.Queue
	Params         any
	MaxAttempts    int
	TimeoutSeconds float64
	ConcurrencyKey string
	MaxConcurrency int
	DependsOn      []string
}

// NewTaskID returns a fresh task identifier.
func NewTaskID() string {
	return uuid.NewString()
}

// EnqueueRun inserts a whole task DAG inside the caller's transaction.
// Specs without dependencies start pending; the rest start waiting and
// are promoted as their dependencies complete. Specs must be listed in
// dependency order.
func EnqueueRun(ctx context.Context, tx *ent.Tx, transcriptID, workflowRunID string, specs []TaskSpec) error {
	for _, spec := range specs {
		if _, err := insertTask(ctx, tx, transcriptID, workflowRunID, spec, len(spec.DependsOn) == 0); err != nil {
			return err
		}
	}
	return nil
}

// FanOut inserts the children a parent handler discovered at runtime
// and attaches them as dependencies of the pre-created join task, all
// in one transaction. Children start pending immediately; the join
// stays waiting until the parent and every child have completed.
// A fan-out of zero children leaves the join gated on the parent alone.
func FanOut(ctx context.Context, client *ent.Client, parent *ent.PipelineTask, joinID string, children []TaskSpec) error {
	tx, err := client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	childIDs := make([]string, 0, len(children))
	for _, spec := range children {
		created, err := insertTask(ctx, tx, parent.TranscriptID, parent.WorkflowRunID, spec, true)
		if err != nil {
			return err
		}
		childIDs = append(childIDs, created.ID)
	}

	if len(childIDs) > 0 {
		if err := tx.PipelineTask.UpdateOneID(joinID).
			AddDependsOnIDs(childIDs...).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to attach fan-out to join %s: %w", joinID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit fan-out: %w", err)
	}
	return nil
}

// insertTask creates one task row from a spec.
func insertTask(ctx context.Context, tx *ent.Tx, transcriptID, workflowRunID string, spec TaskSpec, runnable bool) (*ent.PipelineTask, error) {
	id := spec.ID
	if id == "" {
		id = NewTaskID()
	}

	status := pipelinetask.StatusWaiting
	if runnable {
		status = pipelinetask.StatusPending
	}

	builder := tx.PipelineTask.Create().
		SetID(id).
		SetTranscriptID(transcriptID).
		SetWorkflowRunID(workflowRunID).
		SetName(spec.Name).
		SetStatus(status).
		SetRunAfter(time.Now())
	if spec.Queue != "" {
		builder.SetQueue(spec.Queue)
	}
	if spec.MaxAttempts > 0 {
		builder.SetMaxAttempts(spec.MaxAttempts)
	}
	if spec.TimeoutSeconds > 0 {
		builder.SetTimeoutSeconds(spec.TimeoutSeconds)
	}
	if spec.ConcurrencyKey != "" {
		builder.SetConcurrencyKey(spec.ConcurrencyKey)
		builder.SetMaxConcurrency(spec.MaxConcurrency)
	}
	if spec.Params != nil {
		raw, err := json.Marshal(spec.Params)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal params for task %s: %w", spec.Name, err)
		}
		builder.SetParams(raw)
	}
	if len(spec.DependsOn) > 0 {
		builder.AddDependsOnIDs(spec.DependsOn...)
	}

	task, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to insert task %s: %w", spec.Name, err)
	}
	return task, nil
}

// DecodeParams unmarshals a task's params column into out.
func DecodeParams(task *ent.PipelineTask, out any) error {
	if len(task.Params) == 0 {
		return fmt.Errorf("task %s has no params", task.Name)
	}
	if err := json.Unmarshal(task.Params, out); err != nil {
		return fmt.Errorf("failed to decode params for task %s: %w", task.Name, err)
	}
	return nil
}

// DecodeResult unmarshals a completed task's result column into out.
func DecodeResult(task *ent.PipelineTask, out any) error {
	if len(task.Result) == 0 {
		return fmt.Errorf("task %s has no result", task.Name)
	}
	if err := json.Unmarshal(task.Result, out); err != nil {
		return fmt.Errorf("failed to decode result for task %s: %w", task.Name, err)
	}
	return nil
}
