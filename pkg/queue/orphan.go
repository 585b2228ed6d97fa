package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/monadical-sas/reflector/ent"
	"github.com/monadical-sas/reflector/ent/pipelinetask"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for orphaned tasks.
// All pods run this independently — operations are idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans re-drives running tasks whose heartbeat has
// gone stale. The attempt consumed at claim time stays spent, so a
// task crashing its pod on every run still fails terminally once
// attempts are exhausted.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.client.PipelineTask.Query().
		Where(
			pipelinetask.StatusEQ(pipelinetask.StatusRunning),
			pipelinetask.LastInteractionAtNotNil(),
			pipelinetask.LastInteractionAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned tasks: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned tasks", "count", len(orphans))

	recovered := 0
	for _, task := range orphans {
		if err := p.redriveOrphan(ctx, task, orphanReason(task)); err != nil {
			slog.Error("Failed to recover orphaned task",
				"task_id", task.ID,
				"error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// redriveOrphan puts a single orphaned task back in the queue, or fails
// it terminally when its attempts are spent.
func (p *WorkerPool) redriveOrphan(ctx context.Context, task *ent.PipelineTask, reason string) error {
	log := slog.With("task_id", task.ID, "task", task.Name, "old_pod_id", task.PodID)

	if task.Attempt >= task.MaxAttempts {
		tx, err := p.client.Tx(ctx)
		if err != nil {
			return fmt.Errorf("failed to start transaction: %w", err)
		}
		defer func() { _ = tx.Rollback() }()

		if err := tx.PipelineTask.UpdateOneID(task.ID).
			SetStatus(pipelinetask.StatusFailed).
			SetCompletedAt(time.Now()).
			SetErrorMessage(reason).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to mark orphan failed: %w", err)
		}
		if _, err := cancelQueuedTasksTx(ctx, tx, task.WorkflowRunID, task.ID,
			fmt.Sprintf("workflow failed at %s", task.Name)); err != nil {
			return err
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit orphan failure: %w", err)
		}

		log.Error("Orphaned task out of attempts, run cancelled", "attempt", task.Attempt)
		if p.failureHook != nil {
			p.failureHook(ctx, task)
		}
		return nil
	}

	if err := p.client.PipelineTask.UpdateOneID(task.ID).
		SetStatus(pipelinetask.StatusPending).
		SetRunAfter(time.Now()).
		SetErrorMessage(reason).
		ClearPodID().
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to requeue orphan: %w", err)
	}

	log.Warn("Orphaned task requeued", "attempt", task.Attempt)
	return nil
}

// RecoverStartupOrphans re-drives tasks this pod was running when it
// previously crashed. Called once during startup, before the pool
// begins processing.
func (p *WorkerPool) RecoverStartupOrphans(ctx context.Context) error {
	orphans, err := p.client.PipelineTask.Query().
		Where(
			pipelinetask.StatusEQ(pipelinetask.StatusRunning),
			pipelinetask.PodIDEQ(p.podID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", p.podID,
		"count", len(orphans))

	for _, task := range orphans {
		reason := fmt.Sprintf("orphaned: pod %s restarted while task was running", p.podID)
		if err := p.redriveOrphan(ctx, task, reason); err != nil {
			slog.Error("Failed to recover startup orphan",
				"task_id", task.ID,
				"error", err)
			continue
		}
		slog.Info("Startup orphan recovered", "task_id", task.ID, "task", task.Name)
	}

	return nil
}

func orphanReason(task *ent.PipelineTask) string {
	lastHeartbeat := "unknown"
	if task.LastInteractionAt != nil {
		lastHeartbeat = task.LastInteractionAt.Format(time.RFC3339)
	}
	podID := "unknown"
	if task.PodID != nil {
		podID = *task.PodID
	}
	return fmt.Sprintf("orphaned: no heartbeat from pod %s since %s", podID, lastHeartbeat)
}
