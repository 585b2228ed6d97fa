// Package queue runs the durable task engine behind pipeline runs.
// Tasks are PostgreSQL rows claimed with SELECT ... FOR UPDATE SKIP
// LOCKED; a task stays waiting until every dependency has completed,
// retries with exponential run_after backoff, and heartbeats while
// running so crashed pods can be detected and their work re-driven.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/monadical-sas/reflector/ent"
)

// Sentinel errors for queue operations.
var (
	// ErrNoTasksAvailable indicates no claimable task is in the queue.
	ErrNoTasksAvailable = errors.New("no tasks available")

	// ErrUnknownTask indicates no handler is registered for a task name.
	ErrUnknownTask = errors.New("unknown task")
)

// Handler executes one claimed task. The returned value is marshaled
// into the task's result column; dependent tasks read it from there.
// Handlers own their progress events and intermediate persistence — the
// worker only handles claiming, heartbeat, terminal status, retry
// scheduling and dependent promotion.
type Handler func(ctx context.Context, task *ent.PipelineTask) (any, error)

// Registry maps task names to handlers.
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry creates an empty handler registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Register binds a handler to a task name, replacing any previous one.
func (r *Registry) Register(name string, h Handler) {
	r.handlers[name] = h
}

// Resolve looks up the handler for a task name.
func (r *Registry) Resolve(name string) (Handler, bool) {
	h, ok := r.handlers[name]
	return h, ok
}

// FailureHook is invoked once, outside any transaction, after a task
// exhausts its attempts and its run has been cancelled. The pipeline
// uses it to flip the transcript to error and publish the terminal
// status event.
type FailureHook func(ctx context.Context, task *ent.PipelineTask)

// TaskRegistry is the subset of WorkerPool used by Worker for cancel
// registration and run-wide aborts.
type TaskRegistry interface {
	RegisterTask(taskID, workflowRunID string, cancel context.CancelFunc)
	UnregisterTask(taskID string)
	CancelRunInFlight(workflowRunID, excludeTaskID string)
}

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	RunningTasks     int            `json:"running_tasks"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID             string       `json:"id"`
	Queue          string       `json:"queue"`
	Status         WorkerStatus `json:"status"`
	CurrentTaskID  string       `json:"current_task_id,omitempty"`
	TasksProcessed int          `json:"tasks_processed"`
	LastActivity   time.Time    `json:"last_activity"`
}
