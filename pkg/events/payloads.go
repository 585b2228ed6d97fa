package events

import (
	"github.com/monadical-sas/reflector/ent"
	"github.com/monadical-sas/reflector/pkg/models"
)

// StatusPayload is the payload for STATUS events.
// Published on every transcript lifecycle transition.
type StatusPayload struct {
	Value string `json:"value"` // "processing", "ended", "error"
}

// TopicPayload is the payload for TOPIC events.
// Carries the full topic aggregate so clients can render it without a fetch.
type TopicPayload struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Summary   string        `json:"summary"`
	Timestamp float64       `json:"timestamp"` // seconds from meeting start
	Duration  float64       `json:"duration"`  // seconds
	Words     []models.Word `json:"words,omitempty"`
}

// TopicPayloadFromEnt builds a TopicPayload from a stored topic row.
func TopicPayloadFromEnt(t *ent.Topic) TopicPayload {
	return TopicPayload{
		ID:        t.ID,
		Title:     t.Title,
		Summary:   t.Summary,
		Timestamp: t.Timestamp,
		Duration:  t.Duration,
		Words:     t.Words,
	}
}

// FinalTitlePayload is the payload for FINAL_TITLE events.
type FinalTitlePayload struct {
	Title string `json:"title"`
}

// FinalShortSummaryPayload is the payload for FINAL_SHORT_SUMMARY events.
type FinalShortSummaryPayload struct {
	ShortSummary string `json:"short_summary"`
}

// FinalLongSummaryPayload is the payload for FINAL_LONG_SUMMARY events.
type FinalLongSummaryPayload struct {
	LongSummary string `json:"long_summary"`
}

// ActionItemsPayload is the payload for ACTION_ITEMS events.
type ActionItemsPayload struct {
	ActionItems models.ActionItems `json:"action_items"`
}

// TranscriptPayload is the payload for TRANSCRIPT events.
// Carries the joined transcript text, plus a translation when the target
// language differs from the source.
type TranscriptPayload struct {
	Text        string `json:"text"`
	Translation string `json:"translation,omitempty"`
}

// DurationPayload is the payload for DURATION events. Duration is in
// milliseconds.
type DurationPayload struct {
	Duration float64 `json:"duration"`
}

// WaveformPayload is the payload for WAVEFORM events.
type WaveformPayload struct {
	Waveform []float64 `json:"waveform"`
}
