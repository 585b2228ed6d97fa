package pipeline

import (
	"context"
	"fmt"

	"github.com/monadical-sas/reflector/ent"
	"github.com/monadical-sas/reflector/pkg/queue"
)

// processTranscriptions fans one transcribe_track child out per aligned
// track, carrying the transcript's source language as the ASR hint.
func (p *Pipeline) processTranscriptions(ctx context.Context, task *ent.PipelineTask) (any, error) {
	tracks, err := p.paddedTracksForRun(ctx, task.WorkflowRunID)
	if err != nil {
		return nil, err
	}
	tr, err := p.transcripts.GetByID(ctx, task.TranscriptID)
	if err != nil {
		return nil, err
	}
	join, err := p.taskByName(ctx, task.WorkflowRunID, TaskTranscriptionsJoin)
	if err != nil {
		return nil, err
	}

	long := p.cfg.Pipeline.TimeoutLong.Seconds()
	children := make([]queue.TaskSpec, 0, len(tracks))
	for _, track := range tracks {
		children = append(children, queue.TaskSpec{
			ID:             queue.NewTaskID(),
			Name:           TaskTranscribeTrack,
			TimeoutSeconds: long,
			Params: transcribeParams{
				TrackIndex: track.TrackIndex,
				Bucket:     track.Bucket,
				PaddedKey:  track.PaddedKey,
				Language:   tr.SourceLanguage,
			},
		})
	}

	if err := queue.FanOut(ctx, p.client, task, join.ID, children); err != nil {
		return nil, err
	}
	return countResult{Count: len(children)}, nil
}

// transcribeTrack sends one aligned track to the ASR service. The
// padded rendition already sits on the meeting clock, so returned
// timestamps are meeting-absolute; this handler only stamps the
// speaker, which is the track index by construction.
func (p *Pipeline) transcribeTrack(ctx context.Context, task *ent.PipelineTask) (any, error) {
	var params transcribeParams
	if err := queue.DecodeParams(task, &params); err != nil {
		return nil, err
	}

	audioURL, err := p.presign(ctx, params.Bucket, params.PaddedKey)
	if err != nil {
		return nil, fmt.Errorf("presign track %d: %w", params.TrackIndex, err)
	}

	words, err := p.asr.Transcribe(ctx, audioURL, params.Language)
	if err != nil {
		return nil, fmt.Errorf("transcribe track %d: %w", params.TrackIndex, err)
	}
	for i := range words {
		words[i].Speaker = params.TrackIndex
	}

	p.logger.Info("Track transcribed",
		"transcript_id", task.TranscriptID,
		"track", params.TrackIndex,
		"words", len(words))
	return transcribeResult{TrackIndex: params.TrackIndex, Words: words}, nil
}

// transcriptionsJoin gates the text stages on every track being
// transcribed and reports the combined word count.
func (p *Pipeline) transcriptionsJoin(ctx context.Context, task *ent.PipelineTask) (any, error) {
	tracks, err := p.paddedTracksForRun(ctx, task.WorkflowRunID)
	if err != nil {
		return nil, err
	}
	transcribed, err := p.transcribedTracks(ctx, task.WorkflowRunID)
	if err != nil {
		return nil, err
	}
	if len(transcribed) != len(tracks) {
		return nil, fmt.Errorf("transcribed %d of %d tracks", len(transcribed), len(tracks))
	}

	words := 0
	for _, track := range transcribed {
		words += len(track.Words)
	}
	return transcriptionsResult{Tracks: len(transcribed), Words: words}, nil
}

// transcriptionsResult summarizes the join for observability.
type transcriptionsResult struct {
	Tracks int `json:"tracks"`
	Words  int `json:"words"`
}
