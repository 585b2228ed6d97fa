package pipeline

import (
	"context"
	"errors"

	"github.com/monadical-sas/reflector/ent"
	"github.com/monadical-sas/reflector/pkg/models"
	"github.com/monadical-sas/reflector/pkg/platform"
	"github.com/monadical-sas/reflector/pkg/queue"
	"github.com/monadical-sas/reflector/pkg/services"
)

// getRecording confirms the recording against the platform API and
// publishes the source inventory as its result. The manifest stays
// authoritative for bucket and keys; a missing or unconfigured platform
// only costs the duration enrichment.
func (p *Pipeline) getRecording(ctx context.Context, task *ent.PipelineTask) (any, error) {
	var manifest models.RecordingManifest
	if err := queue.DecodeParams(task, &manifest); err != nil {
		return nil, err
	}

	info := recordingInfo{
		Bucket:    manifest.Bucket,
		TrackKeys: manifest.TrackKeys(),
	}

	rec, err := p.platform.GetRecording(ctx, manifest.RecordingID)
	switch {
	case err == nil:
		info.DurationSeconds = rec.DurationSeconds
		if len(rec.Tracks) != len(manifest.Tracks) {
			p.logger.Warn("Platform track count differs from manifest",
				"transcript_id", task.TranscriptID,
				"recording_id", manifest.RecordingID,
				"platform_tracks", len(rec.Tracks),
				"manifest_tracks", len(manifest.Tracks))
		}
	case errors.Is(err, platform.ErrNotConfigured):
		p.logger.Debug("Platform not configured, using manifest as-is",
			"transcript_id", task.TranscriptID)
	default:
		p.logger.Warn("Platform recording lookup failed, using manifest as-is",
			"transcript_id", task.TranscriptID,
			"recording_id", manifest.RecordingID,
			"error", err)
	}

	return info, nil
}

// getParticipants pulls the roster for the meeting session and stores
// one participant row per track. Roster entries map onto speaker
// indices in track order; anything the platform cannot provide falls
// back to synthesized speaker names downstream.
func (p *Pipeline) getParticipants(ctx context.Context, task *ent.PipelineTask) (any, error) {
	var params participantsParams
	if err := queue.DecodeParams(task, &params); err != nil {
		return nil, err
	}
	if params.MeetingSessionID == "" {
		p.logger.Debug("No meeting session on manifest, skipping roster",
			"transcript_id", task.TranscriptID)
		return countResult{}, nil
	}

	roster, err := p.platform.GetParticipants(ctx, params.MeetingSessionID)
	if err != nil {
		if !errors.Is(err, platform.ErrNotConfigured) {
			p.logger.Warn("Roster lookup failed, speakers stay numbered",
				"transcript_id", task.TranscriptID,
				"meeting_session_id", params.MeetingSessionID,
				"error", err)
		}
		return countResult{}, nil
	}

	stored := 0
	for i, member := range roster {
		if i >= params.Tracks {
			break
		}
		err := p.transcripts.UpsertParticipant(ctx, task.TranscriptID, services.ParticipantUpsert{
			SpeakerIndex: i,
			DisplayName:  member.DisplayName,
			PlatformID:   member.ParticipantID,
			UserID:       member.UserID,
		})
		if err != nil {
			return nil, err
		}
		stored++
	}

	return countResult{Count: stored}, nil
}
