package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monadical-sas/reflector/ent"
	"github.com/monadical-sas/reflector/ent/pipelinetask"
	"github.com/monadical-sas/reflector/ent/topic"
	"github.com/monadical-sas/reflector/ent/transcript"
	"github.com/monadical-sas/reflector/pkg/events"
	"github.com/monadical-sas/reflector/pkg/models"
	"github.com/monadical-sas/reflector/pkg/webhook"
)

// TestMultitrack_EndToEnd runs one recording through the entire DAG:
// real ffmpeg mixes two seeded WAV tracks, the scripted ASR and LLM
// fakes supply the language steps, and the run must come out the other
// side with a finished transcript, a mixed MP3, a waveform file, both
// deliveries and a complete event stream.
func TestMultitrack_EndToEnd(t *testing.T) {
	requireFFmpeg(t)
	app := NewTestApp(t, WithWorkers(3), WithTopicChunkWords(12))
	ctx := context.Background()

	// A room with both delivery channels configured.
	_, err := app.EntClient.Room.Create().
		SetID("room-e2e").
		SetName("engineering-standup").
		SetWebhookURL(app.Webhooks.URL()).
		SetWebhookSecret("whsec-e2e").
		SetZulipAutoPost(true).
		SetZulipStream("engineering").
		Save(ctx)
	require.NoError(t, err)

	// Two speaker tracks. WAVs carry no container start offset, so
	// padding passes them through untouched and mixdown reads them
	// straight from the source bucket.
	app.S3.Put(sourceBucket, "rec-e2e/track_0.wav", wavBytes(3.0, 440), "audio/wav")
	app.S3.Put(sourceBucket, "rec-e2e/track_1.wav", wavBytes(5.0, 330), "audio/wav")

	// 9 + 10 words with a 12-word topic window: two topic chunks.
	app.ASR.Script["track_0"] = wordSeq(0.2,
		"We", "shipped", "the", "beta", "to", "the", "pilot", "customers", "yesterday.")
	app.ASR.Script["track_1"] = wordSeq(2.9,
		"Great,", "let", "us", "schedule", "the", "wider", "rollout", "for", "next", "week.")

	transcriptID := uuid.NewString()
	manifest := newManifest("rec-e2e", transcriptID,
		"rec-e2e/track_0.wav", "rec-e2e/track_1.wav")
	manifest.RoomID = "room-e2e"

	ws := NewWSClient(t, app)
	ws.Subscribe("transcript:" + transcriptID)

	runID := app.Submit(manifest)
	app.WaitForTranscriptStatus(transcriptID, transcript.StatusEnded, 120*time.Second)

	// ---- transcript row
	tr := app.Transcript(transcriptID)
	require.NotNil(t, tr.Title)
	assert.Equal(t, app.LLM.MeetingTitle, *tr.Title)
	require.NotNil(t, tr.ShortSummary)
	assert.Equal(t, app.LLM.Recap, *tr.ShortSummary)
	require.NotNil(t, tr.LongSummary)
	assert.Contains(t, *tr.LongSummary, "# Quick recap")
	assert.Contains(t, *tr.LongSummary, app.LLM.Recap)
	for _, subject := range app.LLM.Subjects {
		assert.Contains(t, *tr.LongSummary, "**"+subject+"**")
	}
	require.NotNil(t, tr.ActionItems)
	assert.Equal(t, app.LLM.Items.Decisions, tr.ActionItems.Decisions)
	assert.Equal(t, app.LLM.Items.NextSteps, tr.ActionItems.NextSteps)
	require.NotNil(t, tr.DurationMs)
	assert.InDelta(t, 5000, *tr.DurationMs, 2000, "mix should run as long as the longest track")
	assert.Nil(t, tr.WorkflowRunID, "claim must be released on completion")
	assert.False(t, tr.AudioDeleted)

	// Words merged across tracks, stamped with the track index, ordered
	// by start time.
	require.Len(t, tr.Words, 19)
	assert.Equal(t, 0, tr.Words[0].Speaker)
	assert.Equal(t, 1, tr.Words[18].Speaker)
	for i := 1; i < len(tr.Words); i++ {
		assert.LessOrEqual(t, tr.Words[i-1].Start, tr.Words[i].Start)
	}

	// ---- topics
	topics, err := app.EntClient.Topic.Query().
		Where(topic.TranscriptIDEQ(transcriptID)).
		Order(ent.Asc(topic.FieldChunkIndex)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, topics, 2)
	for i, tp := range topics {
		assert.Equal(t, fmt.Sprintf("%s-topic-%d", transcriptID, i), tp.ID)
		assert.Equal(t, "Beta Rollout Planning", tp.Title, "titles are title-cased")
		assert.Equal(t, app.LLM.TopicSummary, tp.Summary)
	}

	// ---- store: mixed MP3 present, scratch prefix empty
	mixed, ok := app.S3.Object("recordings", models.MixedAudioKey(transcriptID))
	require.True(t, ok, "mixed audio missing from store")
	assert.Greater(t, len(mixed), 1000)
	assert.Empty(t, app.S3.Keys("recordings", models.PaddedTrackPrefix(transcriptID)))

	// ---- waveform file for the player
	raw, err := os.ReadFile(filepath.Join(app.Config.DataDir, transcriptID, "audio.json"))
	require.NoError(t, err)
	var wf events.WaveformPayload
	require.NoError(t, json.Unmarshal(raw, &wf))
	assert.Len(t, wf.Waveform, app.Config.Pipeline.WaveformSegments)

	// ---- event stream
	ws.WaitForStatus("ended", 10*time.Second)
	statusValues := envelopeStatusValues(t, ws.Envelopes(events.KindStatus))
	require.NotEmpty(t, statusValues)
	assert.Equal(t, "processing", statusValues[0])
	assert.Equal(t, "ended", statusValues[len(statusValues)-1])

	var titlePayload events.FinalTitlePayload
	env := ws.WaitForEnvelope(events.KindFinalTitle, 10*time.Second)
	require.NoError(t, json.Unmarshal(env.Data, &titlePayload))
	assert.Equal(t, app.LLM.MeetingTitle, titlePayload.Title)

	assert.Len(t, ws.Envelopes(events.KindTopic), 2)
	for _, kind := range []string{
		events.KindTranscript,
		events.KindDuration,
		events.KindWaveform,
		events.KindFinalShortSummary,
		events.KindFinalLongSummary,
		events.KindActionItems,
	} {
		ws.WaitForEnvelope(kind, 10*time.Second)
	}

	// ---- deliveries run after finalize, so give them a moment
	require.Eventually(t, func() bool {
		return len(app.Webhooks.Deliveries()) > 0 && len(app.Zulip.Sent()) > 0
	}, 15*time.Second, 100*time.Millisecond, "deliveries never arrived")

	// Zulip: message created on the room's stream, id persisted for
	// later edits.
	sent := app.Zulip.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "engineering", sent[0].Stream)
	assert.Equal(t, "engineering-standup", sent[0].Topic, "topic falls back to the room name")
	assert.Contains(t, sent[0].Content, app.LLM.MeetingTitle)
	require.Eventually(t, func() bool {
		return app.Transcript(transcriptID).ZulipMessageID != nil
	}, 10*time.Second, 100*time.Millisecond)
	assert.Equal(t, sent[0].ID, *app.Transcript(transcriptID).ZulipMessageID)

	// Webhook: signed payload carrying the finished transcript.
	deliveries := app.Webhooks.Deliveries()
	require.Len(t, deliveries, 1)
	require.NoError(t, webhook.Verify("whsec-e2e", deliveries[0].Signature,
		deliveries[0].Body, time.Now(), 5*time.Minute))

	var event struct {
		EventType  string `json:"event_type"`
		Transcript struct {
			ID           string              `json:"id"`
			Title        string              `json:"title"`
			ShortSummary string              `json:"short_summary"`
			DurationMS   float64             `json:"duration_ms"`
			Topics       []json.RawMessage   `json:"topics"`
			Participants []json.RawMessage   `json:"participants"`
			ActionItems  *models.ActionItems `json:"action_items"`
			AudioURL     string              `json:"audio_url"`
		} `json:"transcript"`
	}
	require.NoError(t, json.Unmarshal(deliveries[0].Body, &event))
	assert.Equal(t, "transcript.completed", event.EventType)
	assert.Equal(t, transcriptID, event.Transcript.ID)
	assert.Equal(t, app.LLM.MeetingTitle, event.Transcript.Title)
	assert.Equal(t, app.LLM.Recap, event.Transcript.ShortSummary)
	assert.Greater(t, event.Transcript.DurationMS, 0.0)
	assert.Len(t, event.Transcript.Topics, 2)
	assert.Empty(t, event.Transcript.Participants, "no platform connected")
	require.NotNil(t, event.Transcript.ActionItems)
	assert.Contains(t, event.Transcript.AudioURL, models.MixedAudioKey(transcriptID),
		"audio link must be presigned while the audio exists")

	// ---- every task row, static and fanned out, finished cleanly
	tasks := app.Tasks(runID)
	assert.Len(t, tasks, 27) // 19 static + 2 pads + 2 transcribes + 2 chunks + 2 subjects
	for _, task := range tasks {
		assert.Equal(t, pipelinetask.StatusCompleted, task.Status, task.Name)
	}

	// ---- fakes saw exactly the expected traffic
	asrReqs := app.ASR.Requests()
	require.Len(t, asrReqs, 2)
	for _, req := range asrReqs {
		assert.Equal(t, "en", req.Language)
	}
	assert.Equal(t, 2, app.LLM.Calls("topic"))
	assert.Equal(t, 1, app.LLM.Calls("title"))
	assert.Equal(t, 1, app.LLM.Calls("subjects"))
	assert.Equal(t, len(app.LLM.Subjects), app.LLM.Calls("subject"))
	assert.Equal(t, 1, app.LLM.Calls("recap"))
	assert.Equal(t, 1, app.LLM.Calls("action_items"))
}

// wordSeq lays out words at a fixed cadence starting at a given time.
func wordSeq(start float64, texts ...string) []models.Word {
	words := make([]models.Word, len(texts))
	for i, text := range texts {
		words[i] = models.Word{
			Text:  text,
			Start: start + float64(i)*0.25,
			End:   start + float64(i)*0.25 + 0.2,
		}
	}
	return words
}

func envelopeStatusValues(t *testing.T, envs []*events.Envelope) []string {
	t.Helper()
	values := make([]string, 0, len(envs))
	for _, env := range envs {
		var payload events.StatusPayload
		require.NoError(t, json.Unmarshal(env.Data, &payload))
		values = append(values, payload.Value)
	}
	return values
}
