package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/monadical-sas/reflector/ent"
	"github.com/monadical-sas/reflector/ent/transcript"
	"github.com/monadical-sas/reflector/pkg/events"
	"github.com/monadical-sas/reflector/pkg/models"
	"github.com/monadical-sas/reflector/pkg/queue"
	"github.com/monadical-sas/reflector/pkg/services"
	"github.com/monadical-sas/reflector/pkg/zulip"
)

type finalizeResult struct {
	Words      int     `json:"words"`
	DurationMS float64 `json:"duration_ms"`
}

// finalize commits the run's outcome in one transaction: the merged
// word stream, the duration, status=ended and the release of the
// workflow claim, each announced to subscribers. The staged padded
// tracks are swept afterwards; a leaked blob is not worth failing a
// finished run over.
func (p *Pipeline) finalize(ctx context.Context, task *ent.PipelineTask) (any, error) {
	words, err := p.mergedWords(ctx, task.WorkflowRunID)
	if err != nil {
		return nil, err
	}
	mixTask, err := p.taskByName(ctx, task.WorkflowRunID, TaskMixdown)
	if err != nil {
		return nil, err
	}
	var mix mixdownResult
	if err := queue.DecodeResult(mixTask, &mix); err != nil {
		return nil, err
	}

	err = services.WithTx(ctx, p.client, func(tx *ent.Tx) error {
		if _, err := p.transcripts.UpdateTx(ctx, tx, task.TranscriptID, map[string]any{
			"words":           words,
			"duration_ms":     mix.DurationMS,
			"status":          transcript.StatusEnded,
			"workflow_run_id": nil,
		}); err != nil {
			return err
		}
		if err := p.publisher.PublishTranscriptTx(ctx, tx, task.TranscriptID,
			events.TranscriptPayload{Text: models.JoinWords(words)}); err != nil {
			return err
		}
		if err := p.publisher.PublishDurationTx(ctx, tx, task.TranscriptID,
			events.DurationPayload{Duration: mix.DurationMS}); err != nil {
			return err
		}
		return p.publisher.PublishStatusTx(ctx, tx, task.TranscriptID,
			events.StatusPayload{Value: string(transcript.StatusEnded)},
			"status:ended:"+task.WorkflowRunID)
	})
	if err != nil {
		return nil, err
	}

	p.sweepPaddedTracks(ctx, task)

	p.logger.Info("Workflow finalized",
		"transcript_id", task.TranscriptID,
		"workflow_run_id", task.WorkflowRunID,
		"words", len(words),
		"duration_ms", mix.DurationMS)
	return finalizeResult{Words: len(words), DurationMS: mix.DurationMS}, nil
}

// sweepPaddedTracks deletes the staged padded renditions in parallel.
// Pass-through tracks point at source objects outside the tmp/
// namespace and are left strictly alone.
func (p *Pipeline) sweepPaddedTracks(ctx context.Context, task *ent.PipelineTask) {
	tracks, err := p.paddedTracksForRun(ctx, task.WorkflowRunID)
	if err != nil {
		p.logger.Warn("Cannot list padded tracks for sweep",
			"transcript_id", task.TranscriptID, "error", err)
		return
	}

	prefix := models.PaddedTrackPrefix(task.TranscriptID)
	var wg sync.WaitGroup
	for _, track := range tracks {
		if !strings.HasPrefix(track.PaddedKey, prefix) {
			continue
		}
		wg.Add(1)
		go func(tr paddedTrack) {
			defer wg.Done()
			if err := p.store.Delete(ctx, tr.Bucket, tr.PaddedKey); err != nil {
				p.logger.Warn("Failed to delete padded track",
					"transcript_id", task.TranscriptID,
					"key", tr.PaddedKey,
					"error", err)
			}
		}(track)
	}
	wg.Wait()
}

type cleanupResult struct {
	Denied       bool `json:"denied"`
	AudioDeleted bool `json:"audio_deleted"`
}

// cleanupConsent honors recording consent: if any participant denied,
// the source tracks and the mixed audio are deleted. audio_deleted is
// set only when every deletion succeeded, so a partial failure leaves
// the flag honest and a re-run converges.
func (p *Pipeline) cleanupConsent(ctx context.Context, task *ent.PipelineTask) (any, error) {
	manifest, err := p.manifestForRun(ctx, task.WorkflowRunID)
	if err != nil {
		return nil, err
	}

	meeting, err := p.meetings.GetMeetingByRecordingID(ctx, manifest.RecordingID)
	if errors.Is(err, services.ErrNotFound) {
		return cleanupResult{}, nil
	}
	if err != nil {
		return nil, err
	}

	denied, err := p.meetings.HasConsentDenial(ctx, meeting.ID)
	if err != nil {
		return nil, err
	}
	if !denied {
		return cleanupResult{}, nil
	}

	p.logger.Info("Consent denied, deleting audio",
		"transcript_id", task.TranscriptID,
		"meeting_id", meeting.ID,
		"tracks", len(manifest.Tracks))

	g, gctx := errgroup.WithContext(ctx)
	for _, key := range manifest.TrackKeys() {
		g.Go(func() error {
			return p.store.Delete(gctx, manifest.Bucket, key)
		})
	}
	g.Go(func() error {
		return p.store.Delete(gctx, p.store.Bucket(), models.MixedAudioKey(task.TranscriptID))
	})
	if err := g.Wait(); err != nil {
		p.logger.Warn("Consent cleanup incomplete, audio_deleted left unset",
			"transcript_id", task.TranscriptID, "error", err)
		return cleanupResult{Denied: true}, nil
	}

	if _, err := p.transcripts.Update(ctx, task.TranscriptID, map[string]any{"audio_deleted": true}); err != nil {
		return nil, err
	}
	return cleanupResult{Denied: true, AudioDeleted: true}, nil
}

// postNotification posts the summary to the room's Zulip stream, or
// edits the message posted by an earlier run. Skips quietly whenever
// the room has not opted in.
func (p *Pipeline) postNotification(ctx context.Context, task *ent.PipelineTask) (any, error) {
	tr, err := p.transcripts.GetByID(ctx, task.TranscriptID)
	if err != nil {
		return nil, err
	}
	if tr.RoomID == nil || *tr.RoomID == "" {
		return skipped("transcript has no room"), nil
	}
	room, err := p.meetings.GetRoom(ctx, *tr.RoomID)
	if errors.Is(err, services.ErrNotFound) {
		return skipped("room is gone"), nil
	}
	if err != nil {
		return nil, err
	}
	if !room.ZulipAutoPost {
		return skipped("auto-post disabled"), nil
	}
	if p.zulip == nil {
		return skipped("zulip not configured"), nil
	}
	stream := strVal(room.ZulipStream)
	if stream == "" {
		return skipped("no zulip stream configured"), nil
	}
	topic := strVal(room.ZulipTopic)
	if topic == "" {
		topic = room.Name
	}

	var messageID int64
	if tr.ZulipMessageID != nil {
		messageID = *tr.ZulipMessageID
	}
	id, err := p.zulip.PostSummary(ctx, zulip.SummaryInput{
		Stream:       stream,
		Topic:        topic,
		Title:        strVal(tr.Title),
		ShortSummary: strVal(tr.ShortSummary),
		MessageID:    messageID,
	})
	if err != nil {
		return nil, err
	}
	if id != 0 && id != messageID {
		if _, err := p.transcripts.Update(ctx, task.TranscriptID, map[string]any{"zulip_message_id": id}); err != nil {
			return nil, err
		}
	}
	return delivered(), nil
}

type webhookTopic struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Summary   string  `json:"summary"`
	Timestamp float64 `json:"timestamp"`
	Duration  float64 `json:"duration"`
}

type webhookParticipant struct {
	SpeakerIndex int    `json:"speaker_index"`
	Name         string `json:"name"`
}

type webhookTranscript struct {
	ID           string               `json:"id"`
	Title        string               `json:"title"`
	ShortSummary string               `json:"short_summary"`
	LongSummary  string               `json:"long_summary"`
	DurationMS   float64              `json:"duration_ms"`
	Topics       []webhookTopic       `json:"topics"`
	Participants []webhookParticipant `json:"participants"`
	ActionItems  *models.ActionItems  `json:"action_items,omitempty"`
	AudioURL     string               `json:"audio_url,omitempty"`
}

type webhookEvent struct {
	EventType  string            `json:"event_type"`
	Transcript webhookTranscript `json:"transcript"`
}

// sendWebhook delivers the completion callback to the room's endpoint.
// The audio URL is included only while the MP3 actually exists and
// consent has not forced its deletion.
func (p *Pipeline) sendWebhook(ctx context.Context, task *ent.PipelineTask) (any, error) {
	tr, err := p.transcripts.GetByID(ctx, task.TranscriptID)
	if err != nil {
		return nil, err
	}
	if tr.RoomID == nil || *tr.RoomID == "" {
		return skipped("transcript has no room"), nil
	}
	room, err := p.meetings.GetRoom(ctx, *tr.RoomID)
	if errors.Is(err, services.ErrNotFound) {
		return skipped("room is gone"), nil
	}
	if err != nil {
		return nil, err
	}
	url := strVal(room.WebhookURL)
	secret := strVal(room.WebhookSecret)
	if url == "" || secret == "" {
		return skipped("no webhook configured"), nil
	}

	event, err := p.buildWebhookEvent(ctx, tr)
	if err != nil {
		return nil, err
	}
	if err := p.webhook.Send(ctx, url, secret, event); err != nil {
		return nil, err
	}
	return delivered(), nil
}

// buildWebhookEvent flattens the transcript and its relations into the
// callback payload.
func (p *Pipeline) buildWebhookEvent(ctx context.Context, tr *ent.Transcript) (*webhookEvent, error) {
	topics, err := p.transcripts.ListTopics(ctx, tr.ID)
	if err != nil {
		return nil, err
	}
	participants, err := p.transcripts.ListParticipants(ctx, tr.ID)
	if err != nil {
		return nil, err
	}

	out := webhookTranscript{
		ID:           tr.ID,
		Title:        strVal(tr.Title),
		ShortSummary: strVal(tr.ShortSummary),
		LongSummary:  strVal(tr.LongSummary),
		ActionItems:  tr.ActionItems,
		Topics:       make([]webhookTopic, 0, len(topics)),
		Participants: make([]webhookParticipant, 0, len(participants)),
	}
	if tr.DurationMs != nil {
		out.DurationMS = *tr.DurationMs
	}
	for _, t := range topics {
		out.Topics = append(out.Topics, webhookTopic{
			ID:        t.ID,
			Title:     t.Title,
			Summary:   t.Summary,
			Timestamp: t.Timestamp,
			Duration:  t.Duration,
		})
	}
	for _, member := range participants {
		out.Participants = append(out.Participants, webhookParticipant{
			SpeakerIndex: member.SpeakerIndex,
			Name:         member.DisplayName,
		})
	}

	if !tr.AudioDeleted {
		key := models.MixedAudioKey(tr.ID)
		exists, err := p.store.Exists(ctx, p.store.Bucket(), key)
		if err != nil {
			return nil, fmt.Errorf("check mixed audio: %w", err)
		}
		if exists {
			audioURL, err := p.presign(ctx, p.store.Bucket(), key)
			if err != nil {
				return nil, fmt.Errorf("presign mixed audio: %w", err)
			}
			out.AudioURL = audioURL
		}
	}

	return &webhookEvent{EventType: "transcript.completed", Transcript: out}, nil
}

func strVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
