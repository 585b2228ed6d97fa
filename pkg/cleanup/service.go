// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/monadical-sas/reflector/ent"
	"github.com/monadical-sas/reflector/ent/pipelinetask"
	"github.com/monadical-sas/reflector/ent/transcript"
	"github.com/monadical-sas/reflector/pkg/config"
	"github.com/monadical-sas/reflector/pkg/models"
	"github.com/monadical-sas/reflector/pkg/objectstore"
)

// Service periodically enforces retention policies:
//   - Purges finished pipeline-task rows past their retention window
//   - Removes orphaned padded-track blobs left behind by errored runs
//     (finalize sweeps them on the happy path)
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config *config.RetentionConfig
	client *ent.Client
	store  *objectstore.Store

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, client *ent.Client, store *objectstore.Store) *Service {
	return &Service{
		config: cfg,
		client: client,
		store:  store,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"task_retention", s.config.TaskRetention,
		"padded_blob_retention", s.config.PaddedBlobRetention,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

// sweepTimeout bounds one full retention pass.
const sweepTimeout = 2 * time.Minute

func (s *Service) runAll(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, sweepTimeout)
	defer cancel()
	s.purgeFinishedTasks(ctx)
	s.sweepErroredRunBlobs(ctx)
}

// purgeFinishedTasks deletes completed and cancelled task rows past the
// retention window. Failed rows stay for post-mortems.
func (s *Service) purgeFinishedTasks(ctx context.Context) {
	cutoff := time.Now().Add(-s.config.TaskRetention)
	count, err := s.client.PipelineTask.Delete().
		Where(
			pipelinetask.StatusIn(pipelinetask.StatusCompleted, pipelinetask.StatusCancelled),
			pipelinetask.UpdatedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		slog.Error("Retention: task purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged finished tasks", "count", count)
	}
}

// sweepErroredRunBlobs removes padded-track blobs for transcripts stuck in
// error long enough that no retry will reuse them. Only transcripts younger
// than the task-retention horizon are scanned; older ones have had every
// cycle in between and are assumed clean.
func (s *Service) sweepErroredRunBlobs(ctx context.Context) {
	now := time.Now()

	ids, err := s.client.Transcript.Query().
		Where(
			transcript.StatusEQ(transcript.StatusError),
			transcript.UpdatedAtLT(now.Add(-s.config.PaddedBlobRetention)),
			transcript.UpdatedAtGT(now.Add(-s.config.TaskRetention)),
		).
		IDs(ctx)
	if err != nil {
		slog.Error("Retention: errored transcript scan failed", "error", err)
		return
	}

	removed := 0
	for _, id := range ids {
		count, err := s.store.DeletePrefix(ctx, s.store.Bucket(), models.PaddedTrackPrefix(id))
		if err != nil {
			slog.Warn("Retention: padded blob sweep failed",
				"transcript_id", id, "error", err)
			continue
		}
		removed += count
	}
	if removed > 0 {
		slog.Info("Retention: removed orphaned padded tracks", "count", removed)
	}
}
