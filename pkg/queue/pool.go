package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/monadical-sas/reflector/ent"
	"github.com/monadical-sas/reflector/ent/pipelinetask"
	"github.com/monadical-sas/reflector/pkg/config"
)

// WorkerPool manages the default and cpu worker sets, the in-flight
// cancel registry, and orphan detection.
type WorkerPool struct {
	podID       string
	client      *ent.Client
	config      *config.QueueConfig
	registry    *Registry
	failureHook FailureHook
	workers     []*Worker
	stopCh      chan struct{}
	stopOnce    sync.Once
	wg          sync.WaitGroup

	// Cancel registry: task_id → in-flight cancel and owning run.
	mu          sync.RWMutex
	activeTasks map[string]activeTask
	started     bool

	// Orphan detection state
	orphans orphanState
}

type activeTask struct {
	workflowRunID string
	cancel        context.CancelFunc
}

// NewWorkerPool creates a new worker pool. hook may be nil.
func NewWorkerPool(podID string, client *ent.Client, cfg *config.QueueConfig, registry *Registry, hook FailureHook) *WorkerPool {
	return &WorkerPool{
		podID:       podID,
		client:      client,
		config:      cfg,
		registry:    registry,
		failureHook: hook,
		workers:     make([]*Worker, 0, cfg.DefaultWorkers+cfg.CPUWorkers),
		stopCh:      make(chan struct{}),
		activeTasks: make(map[string]activeTask),
	}
}

// Start spawns the worker goroutines and the orphan detection loop.
// It is safe to call multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	slog.Info("Starting worker pool", "pod_id", p.podID,
		"default_workers", p.config.DefaultWorkers, "cpu_workers", p.config.CPUWorkers)

	for i := 0; i < p.config.DefaultWorkers; i++ {
		p.spawnWorker(ctx, pipelinetask.QueueDefault, i)
	}
	for i := 0; i < p.config.CPUWorkers; i++ {
		p.spawnWorker(ctx, pipelinetask.QueueCPU, i)
	}

	// Start orphan detection
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runOrphanDetection(ctx)
	}()

	slog.Info("Worker pool started")
	return nil
}

func (p *WorkerPool) spawnWorker(ctx context.Context, queue pipelinetask.Queue, n int) {
	workerID := fmt.Sprintf("%s-%s-%d", p.podID, queue, n)
	worker := NewWorker(workerID, p.podID, queue, p.client, p.config, p.registry, p, p.failureHook)
	p.workers = append(p.workers, worker)
	worker.Start(ctx)
}

// Stop signals all workers to stop and waits for them to finish.
// Workers finish their current tasks before exiting (graceful shutdown).
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	active := p.getActiveTaskIDs()
	if len(active) > 0 {
		slog.Info("Waiting for active tasks to complete",
			"count", len(active),
			"task_ids", active)
	}

	for _, worker := range p.workers {
		worker.Stop()
	}

	// Signal orphan detection to stop
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Worker pool stopped gracefully")
}

// RegisterTask stores a cancel function for run-level cancellation.
func (p *WorkerPool) RegisterTask(taskID, workflowRunID string, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.activeTasks[taskID] = activeTask{workflowRunID: workflowRunID, cancel: cancel}
}

// UnregisterTask removes the cancel function when processing ends.
func (p *WorkerPool) UnregisterTask(taskID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.activeTasks, taskID)
}

// CancelRunInFlight aborts every in-flight task of a run on this pod,
// except excludeTaskID (the task whose failure triggered the abort).
func (p *WorkerPool) CancelRunInFlight(workflowRunID, excludeTaskID string) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for id, at := range p.activeTasks {
		if at.workflowRunID == workflowRunID && id != excludeTaskID {
			at.cancel()
		}
	}
}

// CancelRun cancels every queued task of a run in the database and
// aborts its in-flight handlers on this pod. In-flight tasks on other
// pods finish their current attempt; their dependents are already
// cancelled by then.
func (p *WorkerPool) CancelRun(ctx context.Context, workflowRunID, reason string) (int, error) {
	tx, err := p.client.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	n, err := cancelQueuedTasksTx(ctx, tx, workflowRunID, "", reason)
	if err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit cancellation: %w", err)
	}

	p.CancelRunInFlight(workflowRunID, "")
	slog.Info("Run cancelled", "workflow_run_id", workflowRunID, "queued_cancelled", n)
	return n, nil
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.client.PipelineTask.Query().
		Where(pipelinetask.StatusEQ(pipelinetask.StatusPending)).
		Count(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check",
			"pod_id", p.podID,
			"error", errQ)
	}

	runningTasks, errA := p.client.PipelineTask.Query().
		Where(
			pipelinetask.StatusEQ(pipelinetask.StatusRunning),
			pipelinetask.PodIDEQ(p.podID),
		).
		Count(ctx)
	if errA != nil {
		slog.Error("Failed to query running tasks for health check",
			"pod_id", p.podID,
			"error", errA)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == WorkerStatusWorking {
			activeWorkers++
		}
	}

	// DB errors affect health status - if we can't reach the DB, we're not healthy
	dbHealthy := errQ == nil && errA == nil
	isHealthy := len(p.workers) > 0 && dbHealthy

	p.orphans.mu.Lock()
	lastOrphanScan := p.orphans.lastOrphanScan
	orphansRecovered := p.orphans.orphansRecovered
	p.orphans.mu.Unlock()

	var dbError string
	if !dbHealthy {
		if errQ != nil {
			dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
		} else if errA != nil {
			dbError = fmt.Sprintf("running tasks query failed: %v", errA)
		}
	}

	return &PoolHealth{
		IsHealthy:        isHealthy,
		DBReachable:      dbHealthy,
		DBError:          dbError,
		PodID:            p.podID,
		ActiveWorkers:    activeWorkers,
		TotalWorkers:     len(p.workers),
		RunningTasks:     runningTasks,
		QueueDepth:       queueDepth,
		WorkerStats:      workerStats,
		LastOrphanScan:   lastOrphanScan,
		OrphansRecovered: orphansRecovered,
	}
}

// getActiveTaskIDs returns IDs of currently processing tasks (for logging).
func (p *WorkerPool) getActiveTaskIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	tasks := make([]string, 0, len(p.activeTasks))
	for id := range p.activeTasks {
		tasks = append(tasks, id)
	}
	return tasks
}
