package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monadical-sas/reflector/ent"
	"github.com/monadical-sas/reflector/ent/transcript"
	"github.com/monadical-sas/reflector/pkg/models"
	testdb "github.com/monadical-sas/reflector/test/database"
)

func TestTranscriptService_Create(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTranscriptService(client.Client)
	ctx := context.Background()

	t.Run("creates with defaults", func(t *testing.T) {
		tr, err := svc.Create(ctx, CreateTranscriptRequest{Name: "standup"})
		require.NoError(t, err)
		assert.NotEmpty(t, tr.ID)
		assert.Equal(t, transcript.StatusIdle, tr.Status)
		assert.Equal(t, "en", tr.SourceLanguage)
		assert.Equal(t, "en", tr.TargetLanguage)
		assert.Nil(t, tr.Title)
		assert.False(t, tr.AudioDeleted)
	})

	t.Run("rejects duplicate id", func(t *testing.T) {
		id := uuid.NewString()
		_, err := svc.Create(ctx, CreateTranscriptRequest{ID: id})
		require.NoError(t, err)
		_, err = svc.Create(ctx, CreateTranscriptRequest{ID: id})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})
}

func TestTranscriptService_GetByID(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTranscriptService(client.Client)
	ctx := context.Background()

	t.Run("returns ErrNotFound for missing transcript", func(t *testing.T) {
		_, err := svc.GetByID(ctx, uuid.NewString())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("loads an existing transcript", func(t *testing.T) {
		created := createTestTranscript(t, client.Client)
		got, err := svc.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
	})
}

func TestTranscriptService_Update(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTranscriptService(client.Client)
	ctx := context.Background()
	tr := createTestTranscript(t, client.Client)

	t.Run("applies partial field map", func(t *testing.T) {
		updated, err := svc.Update(ctx, tr.ID, map[string]any{
			"title":       "Weekly Sync",
			"duration_ms": 1234.56,
			"words": []models.Word{
				{Text: "hello", Start: 0.0, End: 0.4, Speaker: 0},
			},
		})
		require.NoError(t, err)
		require.NotNil(t, updated.Title)
		assert.Equal(t, "Weekly Sync", *updated.Title)
		require.NotNil(t, updated.DurationMs)
		assert.InDelta(t, 1234.56, *updated.DurationMs, 0.001)
		require.Len(t, updated.Words, 1)
		assert.Equal(t, "hello", updated.Words[0].Text)
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		_, err := svc.Update(ctx, tr.ID, map[string]any{"nope": 1})
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects wrong value types", func(t *testing.T) {
		_, err := svc.Update(ctx, tr.ID, map[string]any{"title": 42})
		assert.True(t, IsValidationError(err))
	})

	t.Run("clears workflow_run_id with nil", func(t *testing.T) {
		_, err := svc.Update(ctx, tr.ID, map[string]any{"workflow_run_id": "run-1"})
		require.NoError(t, err)
		updated, err := svc.Update(ctx, tr.ID, map[string]any{"workflow_run_id": nil})
		require.NoError(t, err)
		assert.Nil(t, updated.WorkflowRunID)
	})

	t.Run("returns ErrNotFound for missing transcript", func(t *testing.T) {
		_, err := svc.Update(ctx, uuid.NewString(), map[string]any{"title": "x"})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("validates status values", func(t *testing.T) {
		_, err := svc.Update(ctx, tr.ID, map[string]any{"status": "exploded"})
		assert.True(t, IsValidationError(err))

		updated, err := svc.Update(ctx, tr.ID, map[string]any{"status": "processing"})
		require.NoError(t, err)
		assert.Equal(t, transcript.StatusProcessing, updated.Status)
	})
}

func TestTranscriptService_ClaimWorkflowRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTranscriptService(client.Client)
	ctx := context.Background()

	t.Run("claims an idle transcript", func(t *testing.T) {
		tr := createTestTranscript(t, client.Client)
		err := svc.ClaimWorkflowRun(ctx, tr.ID, "run-abc")
		require.NoError(t, err)

		got, err := svc.GetByID(ctx, tr.ID)
		require.NoError(t, err)
		assert.Equal(t, transcript.StatusProcessing, got.Status)
		require.NotNil(t, got.WorkflowRunID)
		assert.Equal(t, "run-abc", *got.WorkflowRunID)
	})

	t.Run("rejects a second claim while a run is active", func(t *testing.T) {
		tr := createTestTranscript(t, client.Client)
		require.NoError(t, svc.ClaimWorkflowRun(ctx, tr.ID, "run-1"))
		err := svc.ClaimWorkflowRun(ctx, tr.ID, "run-2")
		assert.ErrorIs(t, err, ErrActiveRun)
	})

	t.Run("allows a new claim after the run id is cleared", func(t *testing.T) {
		tr := createTestTranscript(t, client.Client)
		require.NoError(t, svc.ClaimWorkflowRun(ctx, tr.ID, "run-1"))
		_, err := svc.Update(ctx, tr.ID, map[string]any{"workflow_run_id": nil})
		require.NoError(t, err)
		assert.NoError(t, svc.ClaimWorkflowRun(ctx, tr.ID, "run-2"))
	})

	t.Run("returns ErrNotFound for missing transcript", func(t *testing.T) {
		err := svc.ClaimWorkflowRun(ctx, uuid.NewString(), "run-1")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestTranscriptService_UpsertTopic(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTranscriptService(client.Client)
	ctx := context.Background()
	tr := createTestTranscript(t, client.Client)

	topicID := uuid.NewString()

	t.Run("inserts a new topic", func(t *testing.T) {
		err := svc.WithTx(ctx, func(tx *ent.Tx) error {
			return svc.UpsertTopicTx(ctx, tx, tr.ID, TopicUpsert{
				ID:         topicID,
				ChunkIndex: 0,
				Title:      "Intro",
				Summary:    "Opening remarks",
				Timestamp:  0.0,
				Duration:   12.5,
			})
		})
		require.NoError(t, err)

		topics, err := svc.ListTopics(ctx, tr.ID)
		require.NoError(t, err)
		require.Len(t, topics, 1)
		assert.Equal(t, "Intro", topics[0].Title)
	})

	t.Run("replaces the topic with the same id", func(t *testing.T) {
		err := svc.WithTx(ctx, func(tx *ent.Tx) error {
			return svc.UpsertTopicTx(ctx, tx, tr.ID, TopicUpsert{
				ID:         topicID,
				ChunkIndex: 0,
				Title:      "Introduction",
				Summary:    "Opening remarks, revised",
				Timestamp:  0.0,
				Duration:   14.0,
			})
		})
		require.NoError(t, err)

		topics, err := svc.ListTopics(ctx, tr.ID)
		require.NoError(t, err)
		require.Len(t, topics, 1)
		assert.Equal(t, "Introduction", topics[0].Title)
		assert.InDelta(t, 14.0, topics[0].Duration, 0.001)
	})

	t.Run("appends topics with new ids in chunk order", func(t *testing.T) {
		err := svc.WithTx(ctx, func(tx *ent.Tx) error {
			return svc.UpsertTopicTx(ctx, tx, tr.ID, TopicUpsert{
				ID:         uuid.NewString(),
				ChunkIndex: 1,
				Title:      "Roadmap",
				Summary:    "Q3 planning",
				Timestamp:  12.5,
				Duration:   30.0,
			})
		})
		require.NoError(t, err)

		topics, err := svc.ListTopics(ctx, tr.ID)
		require.NoError(t, err)
		require.Len(t, topics, 2)
		assert.Equal(t, 0, topics[0].ChunkIndex)
		assert.Equal(t, 1, topics[1].ChunkIndex)
	})
}

func TestTranscriptService_Participants(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTranscriptService(client.Client)
	ctx := context.Background()
	tr := createTestTranscript(t, client.Client)

	t.Run("inserts a participant per speaker index", func(t *testing.T) {
		err := svc.UpsertParticipant(ctx, tr.ID, ParticipantUpsert{
			SpeakerIndex: 0,
			DisplayName:  "Ada",
			PlatformID:   "platform-ada",
		})
		require.NoError(t, err)
		err = svc.UpsertParticipant(ctx, tr.ID, ParticipantUpsert{
			SpeakerIndex: 1,
			DisplayName:  "Grace",
		})
		require.NoError(t, err)

		parts, err := svc.ListParticipants(ctx, tr.ID)
		require.NoError(t, err)
		require.Len(t, parts, 2)
		assert.Equal(t, "Ada", parts[0].DisplayName)
		assert.Equal(t, "Grace", parts[1].DisplayName)
	})

	t.Run("updates in place on repeated speaker index", func(t *testing.T) {
		err := svc.UpsertParticipant(ctx, tr.ID, ParticipantUpsert{
			SpeakerIndex: 0,
			DisplayName:  "Ada Lovelace",
		})
		require.NoError(t, err)

		parts, err := svc.ListParticipants(ctx, tr.ID)
		require.NoError(t, err)
		require.Len(t, parts, 2)
		assert.Equal(t, "Ada Lovelace", parts[0].DisplayName)
		// Platform id from the first upsert survives.
		require.NotNil(t, parts[0].PlatformID)
		assert.Equal(t, "platform-ada", *parts[0].PlatformID)
	})

	t.Run("requires a display name", func(t *testing.T) {
		err := svc.UpsertParticipant(ctx, tr.ID, ParticipantUpsert{SpeakerIndex: 2})
		assert.True(t, IsValidationError(err))
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		require.NoError(t, svc.DeleteParticipant(ctx, tr.ID, 1))
		require.NoError(t, svc.DeleteParticipant(ctx, tr.ID, 1))

		parts, err := svc.ListParticipants(ctx, tr.ID)
		require.NoError(t, err)
		assert.Len(t, parts, 1)
	})

	t.Run("speaker name falls back for unknown indexes", func(t *testing.T) {
		parts, err := svc.ListParticipants(ctx, tr.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", SpeakerName(parts, 0))
		assert.Equal(t, "Speaker 7", SpeakerName(parts, 7))
	})
}
