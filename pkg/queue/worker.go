package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/monadical-sas/reflector/ent"
	"github.com/monadical-sas/reflector/ent/pipelinetask"
	"github.com/monadical-sas/reflector/pkg/config"
)

const (
	// claimScanLimit bounds how many pending candidates one claim
	// transaction locks while looking for an admissible task.
	claimScanLimit = 10

	retryBaseDelay = 5 * time.Second
	retryMaxDelay  = 5 * time.Minute
)

// Worker is a single queue worker that polls one queue for claimable
// tasks and processes them.
type Worker struct {
	id          string
	podID       string
	queue       pipelinetask.Queue
	client      *ent.Client
	config      *config.QueueConfig
	registry    *Registry
	pool        TaskRegistry
	failureHook FailureHook
	stopCh      chan struct{}
	stopOnce    sync.Once
	wg          sync.WaitGroup

	// Health tracking
	mu             sync.RWMutex
	status         WorkerStatus
	currentTaskID  string
	tasksProcessed int
	lastActivity   time.Time
}

// NewWorker creates a new queue worker bound to one queue.
// hook may be nil (no workflow-failure reaction).
func NewWorker(id, podID string, queue pipelinetask.Queue, client *ent.Client, cfg *config.QueueConfig, registry *Registry, pool TaskRegistry, hook FailureHook) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		queue:        queue,
		client:       client,
		config:       cfg,
		registry:     registry,
		pool:         pool,
		failureHook:  hook,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish its
// current task. It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:             w.id,
		Queue:          string(w.queue),
		Status:         w.status,
		CurrentTaskID:  w.currentTaskID,
		TasksProcessed: w.tasksProcessed,
		LastActivity:   w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "queue", w.queue, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoTasksAvailable) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing task", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess claims the next admissible task and runs it to a
// terminal or rescheduled state.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	task, err := w.claimNextTask(ctx)
	if err != nil {
		return err
	}

	log := slog.With("task_id", task.ID, "task", task.Name, "worker_id", w.id)
	log.Info("Task claimed", "attempt", task.Attempt, "max_attempts", task.MaxAttempts)

	w.setStatus(WorkerStatusWorking, task.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	timeout := time.Duration(task.TimeoutSeconds * float64(time.Second))
	taskCtx, cancelTask := context.WithTimeout(ctx, timeout)
	defer cancelTask()

	// Register for run-level cancellation.
	w.pool.RegisterTask(task.ID, task.WorkflowRunID, cancelTask)
	defer w.pool.UnregisterTask(task.ID)

	heartbeatCtx, cancelHeartbeat := context.WithCancel(taskCtx)
	go w.runHeartbeat(heartbeatCtx, task.ID)

	handler, ok := w.registry.Resolve(task.Name)
	if !ok {
		cancelHeartbeat()
		// A name nothing handles never becomes runnable; don't burn
		// retries on it.
		return w.failTerminally(context.Background(), task, fmt.Errorf("%w: %s", ErrUnknownTask, task.Name))
	}

	result, execErr := handler(taskCtx, task)
	cancelHeartbeat()

	// Terminal updates use a background context: taskCtx may already be
	// cancelled or past its deadline.
	finishCtx := context.Background()

	var finishErr error
	switch {
	case execErr == nil:
		finishErr = w.completeTask(finishCtx, task, result)
		log.Info("Task completed")
	case errors.Is(taskCtx.Err(), context.Canceled) && ctx.Err() != nil:
		// Pod is shutting down: hand the task back untouched.
		finishErr = w.requeueForShutdown(finishCtx, task)
		log.Info("Task requeued for shutdown")
	case errors.Is(taskCtx.Err(), context.Canceled):
		// Cancelled through the registry (run abort).
		finishErr = w.markCancelled(finishCtx, task, execErr)
		log.Info("Task cancelled")
	default:
		if errors.Is(taskCtx.Err(), context.DeadlineExceeded) {
			execErr = fmt.Errorf("timed out after %s: %w", timeout, execErr)
		}
		finishErr = w.failTask(finishCtx, task, execErr)
		log.Warn("Task attempt failed", "attempt", task.Attempt, "error", execErr)
	}
	if finishErr != nil {
		log.Error("Failed to record task outcome", "error", finishErr)
		return finishErr
	}

	w.mu.Lock()
	w.tasksProcessed++
	w.mu.Unlock()
	return nil
}

// claimNextTask atomically claims the next pending task using
// FOR UPDATE SKIP LOCKED, scanning past candidates held back by a
// concurrency cap.
func (w *Worker) claimNextTask(ctx context.Context) (*ent.PipelineTask, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	candidates, err := tx.PipelineTask.Query().
		Where(
			pipelinetask.StatusEQ(pipelinetask.StatusPending),
			pipelinetask.QueueEQ(w.queue),
			pipelinetask.RunAfterLTE(time.Now()),
		).
		Order(ent.Asc(pipelinetask.FieldCreatedAt)).
		Limit(claimScanLimit).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending tasks: %w", err)
	}

	for _, task := range candidates {
		ok, err := w.admissible(ctx, tx, task)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		now := time.Now()
		claimed, err := task.Update().
			SetStatus(pipelinetask.StatusRunning).
			SetAttempt(task.Attempt + 1).
			SetPodID(w.podID).
			SetStartedAt(now).
			SetLastInteractionAt(now).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to claim task %s: %w", task.ID, err)
		}
		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("failed to commit claim: %w", err)
		}
		return claimed, nil
	}

	return nil, ErrNoTasksAvailable
}

// admissible enforces the running cap for tasks sharing a concurrency
// key. The advisory lock serializes the count against concurrent
// claimers of the same key; SKIP LOCKED alone would let two workers
// admit two rows before either commit is visible.
func (w *Worker) admissible(ctx context.Context, tx *ent.Tx, task *ent.PipelineTask) (bool, error) {
	if task.ConcurrencyKey == nil || task.MaxConcurrency <= 0 {
		return true, nil
	}
	key := *task.ConcurrencyKey
	if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", key); err != nil {
		return false, fmt.Errorf("failed to lock concurrency key %q: %w", key, err)
	}
	running, err := tx.PipelineTask.Query().
		Where(
			pipelinetask.StatusEQ(pipelinetask.StatusRunning),
			pipelinetask.ConcurrencyKeyEQ(key),
		).
		Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to count running tasks for key %q: %w", key, err)
	}
	return running < task.MaxConcurrency, nil
}

// runHeartbeat periodically updates last_interaction_at for orphan
// detection.
func (w *Worker) runHeartbeat(ctx context.Context, taskID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.client.PipelineTask.UpdateOneID(taskID).
				SetLastInteractionAt(time.Now()).
				Exec(ctx); err != nil {
				slog.Warn("Heartbeat update failed", "task_id", taskID, "error", err)
			}
		}
	}
}

// completeTask persists the result and promotes dependents whose
// dependencies are now all completed, in one transaction.
func (w *Worker) completeTask(ctx context.Context, task *ent.PipelineTask, result any) error {
	var raw json.RawMessage
	if result != nil {
		b, err := json.Marshal(result)
		if err != nil {
			return w.failTask(ctx, task, fmt.Errorf("failed to marshal result: %w", err))
		}
		raw = b
	}

	tx, err := w.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Serialize sibling completions within a run so two dependencies
	// finishing together cannot both miss the join promotion.
	if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", task.WorkflowRunID); err != nil {
		return fmt.Errorf("failed to lock run %s: %w", task.WorkflowRunID, err)
	}

	upd := tx.PipelineTask.UpdateOneID(task.ID).
		SetStatus(pipelinetask.StatusCompleted).
		SetCompletedAt(time.Now()).
		ClearErrorMessage()
	if raw != nil {
		upd.SetResult(raw)
	}
	if err := upd.Exec(ctx); err != nil {
		return fmt.Errorf("failed to complete task %s: %w", task.ID, err)
	}

	promoted, err := tx.PipelineTask.Update().
		Where(
			pipelinetask.WorkflowRunIDEQ(task.WorkflowRunID),
			pipelinetask.StatusEQ(pipelinetask.StatusWaiting),
			pipelinetask.HasDependsOnWith(pipelinetask.IDEQ(task.ID)),
			pipelinetask.Not(pipelinetask.HasDependsOnWith(pipelinetask.StatusNEQ(pipelinetask.StatusCompleted))),
		).
		SetStatus(pipelinetask.StatusPending).
		SetRunAfter(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to promote dependents of %s: %w", task.ID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit completion: %w", err)
	}
	if promoted > 0 {
		slog.Debug("Promoted dependent tasks", "task", task.Name, "count", promoted)
	}
	return nil
}

// failTask reschedules a failed task with backoff, or fails it
// terminally once attempts are exhausted.
func (w *Worker) failTask(ctx context.Context, task *ent.PipelineTask, execErr error) error {
	if task.Attempt >= task.MaxAttempts {
		return w.failTerminally(ctx, task, execErr)
	}

	delay := retryDelay(task.Attempt)
	if err := w.client.PipelineTask.UpdateOneID(task.ID).
		SetStatus(pipelinetask.StatusPending).
		SetRunAfter(time.Now().Add(delay)).
		SetErrorMessage(execErr.Error()).
		ClearPodID().
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to reschedule task %s: %w", task.ID, err)
	}
	slog.Info("Task rescheduled", "task_id", task.ID, "task", task.Name,
		"attempt", task.Attempt, "retry_in", delay)
	return nil
}

// failTerminally marks the task failed, cancels the remainder of its
// run, and fires the workflow-failure hook.
func (w *Worker) failTerminally(ctx context.Context, task *ent.PipelineTask, execErr error) error {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := tx.PipelineTask.UpdateOneID(task.ID).
		SetStatus(pipelinetask.StatusFailed).
		SetCompletedAt(time.Now()).
		SetErrorMessage(execErr.Error()).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to mark task %s failed: %w", task.ID, err)
	}

	cancelled, err := cancelQueuedTasksTx(ctx, tx, task.WorkflowRunID, task.ID,
		fmt.Sprintf("workflow failed at %s", task.Name))
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit failure: %w", err)
	}

	w.pool.CancelRunInFlight(task.WorkflowRunID, task.ID)
	slog.Error("Task failed permanently, run cancelled",
		"task_id", task.ID, "task", task.Name, "workflow_run_id", task.WorkflowRunID,
		"cancelled_tasks", cancelled, "error", execErr)

	if w.failureHook != nil {
		w.failureHook(ctx, task)
	}
	return nil
}

// markCancelled records a registry-triggered cancellation.
func (w *Worker) markCancelled(ctx context.Context, task *ent.PipelineTask, execErr error) error {
	reason := "run cancelled"
	if execErr != nil {
		reason = fmt.Sprintf("run cancelled: %v", execErr)
	}
	if err := w.client.PipelineTask.UpdateOneID(task.ID).
		SetStatus(pipelinetask.StatusCancelled).
		SetCompletedAt(time.Now()).
		SetErrorMessage(reason).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to mark task %s cancelled: %w", task.ID, err)
	}
	return nil
}

// requeueForShutdown hands an interrupted task back to the queue when
// the pod is stopping. The attempt consumed at claim time stays spent.
func (w *Worker) requeueForShutdown(ctx context.Context, task *ent.PipelineTask) error {
	if err := w.client.PipelineTask.UpdateOneID(task.ID).
		SetStatus(pipelinetask.StatusPending).
		SetRunAfter(time.Now()).
		ClearPodID().
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to requeue task %s: %w", task.ID, err)
	}
	return nil
}

// cancelQueuedTasksTx cancels every not-yet-running task of a run
// inside the caller's transaction. Running tasks are aborted through
// the pool's cancel registry instead.
func cancelQueuedTasksTx(ctx context.Context, tx *ent.Tx, workflowRunID, excludeTaskID, reason string) (int, error) {
	upd := tx.PipelineTask.Update().
		Where(
			pipelinetask.WorkflowRunIDEQ(workflowRunID),
			pipelinetask.StatusIn(pipelinetask.StatusWaiting, pipelinetask.StatusPending),
		)
	if excludeTaskID != "" {
		upd.Where(pipelinetask.IDNEQ(excludeTaskID))
	}
	n, err := upd.
		SetStatus(pipelinetask.StatusCancelled).
		SetCompletedAt(time.Now()).
		SetErrorMessage(reason).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to cancel queued tasks of run %s: %w", workflowRunID, err)
	}
	return n, nil
}

// retryDelay is the wait before re-running a task that has failed
// attempt times: 5s, 10s, 20s... capped at 5m.
func retryDelay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	if attempt > 7 {
		return retryMaxDelay
	}
	d := retryBaseDelay << (attempt - 1)
	if d > retryMaxDelay {
		return retryMaxDelay
	}
	return d
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, taskID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentTaskID = taskID
	w.lastActivity = time.Now()
}
