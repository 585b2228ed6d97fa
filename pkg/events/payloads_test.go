package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monadical-sas/reflector/ent"
	"github.com/monadical-sas/reflector/pkg/models"
)

// The payload field names below are a wire contract with WebSocket clients.
// Renaming a struct field must not change the JSON.

func TestPayloadWireContract(t *testing.T) {
	tests := []struct {
		name    string
		payload any
		want    string
	}{
		{
			name:    "STATUS",
			payload: StatusPayload{Value: "processing"},
			want:    `{"value":"processing"}`,
		},
		{
			name:    "FINAL_TITLE",
			payload: FinalTitlePayload{Title: "Weekly Sync"},
			want:    `{"title":"Weekly Sync"}`,
		},
		{
			name:    "FINAL_SHORT_SUMMARY",
			payload: FinalShortSummaryPayload{ShortSummary: "short"},
			want:    `{"short_summary":"short"}`,
		},
		{
			name:    "FINAL_LONG_SUMMARY",
			payload: FinalLongSummaryPayload{LongSummary: "long"},
			want:    `{"long_summary":"long"}`,
		},
		{
			name: "ACTION_ITEMS",
			payload: ActionItemsPayload{ActionItems: models.ActionItems{
				Decisions: []string{"ship it"},
				NextSteps: []string{"write docs"},
			}},
			want: `{"action_items":{"decisions":["ship it"],"next_steps":["write docs"]}}`,
		},
		{
			name:    "TRANSCRIPT without translation",
			payload: TranscriptPayload{Text: "hello world"},
			want:    `{"text":"hello world"}`,
		},
		{
			name:    "TRANSCRIPT with translation",
			payload: TranscriptPayload{Text: "hello", Translation: "bonjour"},
			want:    `{"text":"hello","translation":"bonjour"}`,
		},
		{
			name:    "DURATION in milliseconds",
			payload: DurationPayload{Duration: 153000.25},
			want:    `{"duration":153000.25}`,
		},
		{
			name:    "WAVEFORM",
			payload: WaveformPayload{Waveform: []float64{0, 0.5, 1}},
			want:    `{"waveform":[0,0.5,1]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := json.Marshal(tt.payload)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(raw))
		})
	}
}

func TestTopicPayloadFromEnt(t *testing.T) {
	row := &ent.Topic{
		ID:        "topic-1",
		Title:     "Roadmap",
		Summary:   "Q3 planning discussion",
		Timestamp: 12.5,
		Duration:  30.0,
		Words: []models.Word{
			{Text: "roadmap", Start: 12.5, End: 13.0, Speaker: 1},
		},
	}

	payload := TopicPayloadFromEnt(row)
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": "topic-1",
		"title": "Roadmap",
		"summary": "Q3 planning discussion",
		"timestamp": 12.5,
		"duration": 30.0,
		"words": [{"text":"roadmap","start":12.5,"end":13.0,"speaker":1}]
	}`, string(raw))
}
