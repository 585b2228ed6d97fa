package models

import (
	"errors"
	"fmt"
	"strings"
)

// ManifestTrack is one per-participant source recording.
type ManifestTrack struct {
	S3Key string `json:"s3_key"`
}

// RecordingManifest is the input that initiates a pipeline run: the source
// bucket, the ordered per-participant track keys and the meeting linkage.
// It is immutable for the life of a workflow run.
type RecordingManifest struct {
	RecordingID      string          `json:"recording_id"`
	MeetingSessionID string          `json:"meeting_session_id,omitempty"`
	Bucket           string          `json:"bucket"`
	Tracks           []ManifestTrack `json:"tracks"`
	TranscriptID     string          `json:"transcript_id"`
	RoomID           string          `json:"room_id,omitempty"`
}

// Validate checks the manifest is complete enough to start a run.
func (m *RecordingManifest) Validate() error {
	if m == nil {
		return errors.New("manifest is required")
	}
	if strings.TrimSpace(m.RecordingID) == "" {
		return errors.New("recording_id is required")
	}
	if strings.TrimSpace(m.TranscriptID) == "" {
		return errors.New("transcript_id is required")
	}
	if strings.TrimSpace(m.Bucket) == "" {
		return errors.New("bucket is required")
	}
	if len(m.Tracks) == 0 {
		return errors.New("at least one track is required")
	}
	for i, t := range m.Tracks {
		if strings.TrimSpace(t.S3Key) == "" {
			return fmt.Errorf("tracks[%d]: s3_key is required", i)
		}
	}
	return nil
}

// TrackKeys returns the source keys in manifest order.
func (m *RecordingManifest) TrackKeys() []string {
	keys := make([]string, len(m.Tracks))
	for i, t := range m.Tracks {
		keys[i] = t.S3Key
	}
	return keys
}
