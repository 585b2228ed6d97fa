package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/monadical-sas/reflector/ent"
	"github.com/monadical-sas/reflector/ent/transcript"
	"github.com/monadical-sas/reflector/pkg/events"
	"github.com/monadical-sas/reflector/pkg/queue"
	"github.com/monadical-sas/reflector/pkg/services"
)

// errorStatusTimeout bounds the bookkeeping writes that run after a
// handler failed; the task's own context is usually already dead.
const errorStatusTimeout = 10 * time.Second

// deliveryResult is what notification handlers complete with when the
// delivery was skipped or abandoned rather than made.
type deliveryResult struct {
	Delivered bool   `json:"delivered"`
	Skipped   string `json:"skipped,omitempty"`
	Error     string `json:"error,omitempty"`
}

func delivered() deliveryResult { return deliveryResult{Delivered: true} }

func skipped(reason string) deliveryResult { return deliveryResult{Skipped: reason} }

// instrument wraps a handler with shared failure bookkeeping: any error
// flips the transcript to status=error and emits a STATUS event, keyed
// per attempt so replays dedupe. Context cancellation passes through
// untouched; shutdown requeues and run aborts are accounted for in the
// queue, not here.
func (p *Pipeline) instrument(h queue.Handler) queue.Handler {
	return func(ctx context.Context, task *ent.PipelineTask) (any, error) {
		result, err := h(ctx, task)
		if err == nil {
			return result, nil
		}
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		p.logger.Error("Task failed",
			"task", task.Name,
			"task_id", task.ID,
			"transcript_id", task.TranscriptID,
			"attempt", task.Attempt,
			"error", err)
		p.markTranscriptError(task, false)
		return nil, err
	}
}

// instrumentNonFatal wraps delivery handlers: errors retry on the
// task's own budget, and the final failed attempt completes the task
// instead of failing the run. The transcript never flips to error for
// a missed notification.
func (p *Pipeline) instrumentNonFatal(h queue.Handler) queue.Handler {
	return func(ctx context.Context, task *ent.PipelineTask) (any, error) {
		result, err := h(ctx, task)
		if err == nil {
			return result, nil
		}
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		if task.Attempt >= task.MaxAttempts {
			p.logger.Error("Delivery failed, giving up",
				"task", task.Name,
				"task_id", task.ID,
				"transcript_id", task.TranscriptID,
				"attempt", task.Attempt,
				"error", err)
			return deliveryResult{Error: err.Error()}, nil
		}
		p.logger.Warn("Delivery attempt failed",
			"task", task.Name,
			"transcript_id", task.TranscriptID,
			"attempt", task.Attempt,
			"error", err)
		return nil, err
	}
}

// FailureHook reacts to terminal failures raised inside the queue:
// exhausted retries, timeouts on the last attempt, orphans out of
// attempts. It records the error on the transcript and releases the
// workflow claim so the recording can be re-submitted.
func (p *Pipeline) FailureHook() queue.FailureHook {
	return func(_ context.Context, task *ent.PipelineTask) {
		if task.Name == TaskPostNotification || task.Name == TaskSendWebhook {
			p.logger.Warn("Delivery task failed terminally, transcript untouched",
				"task", task.Name, "transcript_id", task.TranscriptID)
			return
		}
		p.logger.Error("Workflow failed terminally",
			"task", task.Name,
			"transcript_id", task.TranscriptID,
			"workflow_run_id", task.WorkflowRunID)
		p.markTranscriptError(task, true)
	}
}

// markTranscriptError sets status=error and publishes the matching
// STATUS event, deduped per task attempt so the hook and the handler
// wrapper can both fire without double-publishing. releaseRun also
// clears the workflow claim, which is only correct once the run is
// terminally dead.
func (p *Pipeline) markTranscriptError(task *ent.PipelineTask, releaseRun bool) {
	ctx, cancel := context.WithTimeout(context.Background(), errorStatusTimeout)
	defer cancel()

	fields := map[string]any{"status": transcript.StatusError}
	if releaseRun {
		fields["workflow_run_id"] = nil
	}
	err := services.WithTx(ctx, p.client, func(tx *ent.Tx) error {
		if _, err := p.transcripts.UpdateTx(ctx, tx, task.TranscriptID, fields); err != nil {
			return err
		}
		return p.publisher.PublishStatusTx(ctx, tx, task.TranscriptID,
			events.StatusPayload{Value: string(transcript.StatusError)},
			fmt.Sprintf("status:error:%s:%d", task.Name, task.Attempt))
	})
	if err != nil {
		p.logger.Error("Failed to record error status",
			"transcript_id", task.TranscriptID, "task", task.Name, "error", err)
	}
}
