package pipeline

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/monadical-sas/reflector/ent"
	"github.com/monadical-sas/reflector/pkg/audio"
	"github.com/monadical-sas/reflector/pkg/models"
	"github.com/monadical-sas/reflector/pkg/queue"
)

const paddedContentType = "audio/webm"

// processPaddings fans one pad_track child out per source track. The
// children gate paddings_join, so the join runs only once every track
// is aligned.
func (p *Pipeline) processPaddings(ctx context.Context, task *ent.PipelineTask) (any, error) {
	recording, err := p.recordingForRun(ctx, task.WorkflowRunID)
	if err != nil {
		return nil, err
	}
	join, err := p.taskByName(ctx, task.WorkflowRunID, TaskPaddingsJoin)
	if err != nil {
		return nil, err
	}

	medium := p.cfg.Pipeline.TimeoutMedium.Seconds()
	children := make([]queue.TaskSpec, 0, len(recording.TrackKeys))
	for i, key := range recording.TrackKeys {
		children = append(children, queue.TaskSpec{
			ID:             queue.NewTaskID(),
			Name:           TaskPadTrack,
			TimeoutSeconds: medium,
			Params: padTrackParams{
				TrackIndex: i,
				Bucket:     recording.Bucket,
				S3Key:      key,
			},
		})
	}

	if err := queue.FanOut(ctx, p.client, task, join.ID, children); err != nil {
		return nil, err
	}
	return countResult{Count: len(children)}, nil
}

// padTrack aligns one track onto the meeting clock. Tracks that start
// at t=0 are passed through untouched; anything else gets re-encoded
// with leading silence and staged under the run's tmp/ namespace.
func (p *Pipeline) padTrack(ctx context.Context, task *ent.PipelineTask) (any, error) {
	var params padTrackParams
	if err := queue.DecodeParams(task, &params); err != nil {
		return nil, err
	}
	logger := p.logger.With(
		"transcript_id", task.TranscriptID,
		"track", params.TrackIndex,
	)

	sourceURL, err := p.presign(ctx, params.Bucket, params.S3Key)
	if err != nil {
		return nil, fmt.Errorf("presign track %d: %w", params.TrackIndex, err)
	}

	info, err := p.codec.Probe(ctx, sourceURL)
	if err != nil {
		return nil, fmt.Errorf("probe track %d: %w", params.TrackIndex, err)
	}
	offset := audio.ExtractStartOffset(info)

	// Sub-millisecond offsets round to zero padding; skip the re-encode
	// and point downstream at the original object.
	if audio.OffsetMS(offset) <= 0 {
		head, err := p.store.Head(ctx, params.Bucket, params.S3Key)
		if err != nil {
			return nil, fmt.Errorf("stat track %d: %w", params.TrackIndex, err)
		}
		logger.Info("Track starts at zero, no padding needed", "size", head.Size)
		return paddedTrack{
			TrackIndex: params.TrackIndex,
			Bucket:     params.Bucket,
			PaddedKey:  params.S3Key,
			Size:       head.Size,
		}, nil
	}

	scratch, err := os.CreateTemp("", "pad-*.webm")
	if err != nil {
		return nil, fmt.Errorf("create scratch file: %w", err)
	}
	scratchPath := scratch.Name()
	scratch.Close()
	defer os.Remove(scratchPath)

	if err := p.codec.PadWithSilence(ctx, sourceURL, scratchPath, offset); err != nil {
		return nil, fmt.Errorf("pad track %d: %w", params.TrackIndex, err)
	}

	f, err := os.Open(scratchPath)
	if err != nil {
		return nil, fmt.Errorf("open padded track %d: %w", params.TrackIndex, err)
	}
	defer f.Close()
	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat padded track %d: %w", params.TrackIndex, err)
	}

	key := models.PaddedTrackKey(task.TranscriptID, params.TrackIndex)
	if err := p.store.Put(ctx, p.store.Bucket(), key, f, paddedContentType); err != nil {
		return nil, fmt.Errorf("upload padded track %d: %w", params.TrackIndex, err)
	}

	logger.Info("Track padded", "offset_seconds", offset, "size", stat.Size())
	return paddedTrack{
		TrackIndex: params.TrackIndex,
		Bucket:     p.store.Bucket(),
		PaddedKey:  key,
		Size:       stat.Size(),
	}, nil
}

// paddingsJoin assembles the aligned track list and re-budgets the
// mixdown timeout now that the recording duration is known. The
// mixdown row is still waiting on this join, so the update cannot race
// a claim.
func (p *Pipeline) paddingsJoin(ctx context.Context, task *ent.PipelineTask) (any, error) {
	recording, err := p.recordingForRun(ctx, task.WorkflowRunID)
	if err != nil {
		return nil, err
	}
	children, err := p.completedByName(ctx, task.WorkflowRunID, TaskPadTrack)
	if err != nil {
		return nil, err
	}
	if len(children) != len(recording.TrackKeys) {
		return nil, fmt.Errorf("padded %d of %d tracks", len(children), len(recording.TrackKeys))
	}

	tracks := make([]paddedTrack, 0, len(children))
	for _, child := range children {
		var padded paddedTrack
		if err := queue.DecodeResult(child, &padded); err != nil {
			return nil, err
		}
		tracks = append(tracks, padded)
	}
	sort.Slice(tracks, func(i, j int) bool { return tracks[i].TrackIndex < tracks[j].TrackIndex })

	if recording.DurationSeconds > 0 {
		mixdown, err := p.taskByName(ctx, task.WorkflowRunID, TaskMixdown)
		if err != nil {
			return nil, err
		}
		budget := mixdownTimeoutSeconds(len(tracks), recording.DurationSeconds)
		if err := p.client.PipelineTask.UpdateOneID(mixdown.ID).
			SetTimeoutSeconds(budget).
			Exec(ctx); err != nil {
			return nil, fmt.Errorf("update mixdown budget: %w", err)
		}
	}

	return paddedTracks{Tracks: tracks}, nil
}
