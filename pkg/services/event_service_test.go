package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monadical-sas/reflector/ent"
	testdb "github.com/monadical-sas/reflector/test/database"
)

func TestEventService_Append(t *testing.T) {
	client := testdb.NewTestClient(t)
	eventService := NewEventService(client.Client)
	ctx := context.Background()
	tr := createTestTranscript(t, client.Client)

	t.Run("assigns increasing ids in append order", func(t *testing.T) {
		evt1, err := eventService.Append(ctx, tr.ID, "STATUS", map[string]any{"value": "processing"}, "")
		require.NoError(t, err)
		evt2, err := eventService.Append(ctx, tr.ID, "STATUS", map[string]any{"value": "ended"}, "")
		require.NoError(t, err)
		assert.Greater(t, evt2.ID, evt1.ID)
	})

	t.Run("accepts raw json payloads", func(t *testing.T) {
		evt, err := eventService.Append(ctx, tr.ID, "TOPIC", json.RawMessage(`{"title":"Intro"}`), "")
		require.NoError(t, err)
		assert.JSONEq(t, `{"title":"Intro"}`, string(evt.Payload))
	})

	t.Run("defaults nil payloads to an empty object", func(t *testing.T) {
		evt, err := eventService.Append(ctx, tr.ID, "PING", nil, "")
		require.NoError(t, err)
		assert.JSONEq(t, `{}`, string(evt.Payload))
	})

	t.Run("requires transcript id and kind", func(t *testing.T) {
		_, err := eventService.Append(ctx, "", "STATUS", nil, "")
		assert.True(t, IsValidationError(err))
		_, err = eventService.Append(ctx, tr.ID, "", nil, "")
		assert.True(t, IsValidationError(err))
	})
}

func TestEventService_Dedupe(t *testing.T) {
	client := testdb.NewTestClient(t)
	eventService := NewEventService(client.Client)
	ctx := context.Background()
	tr := createTestTranscript(t, client.Client)

	t.Run("rejects a repeated dedupe key", func(t *testing.T) {
		_, err := eventService.Append(ctx, tr.ID, "STATUS", map[string]any{"value": "error"}, "status:error:finalize:1")
		require.NoError(t, err)
		_, err = eventService.Append(ctx, tr.ID, "STATUS", map[string]any{"value": "error"}, "status:error:finalize:1")
		assert.ErrorIs(t, err, ErrDuplicateEvent)

		events, err := eventService.ListSince(ctx, tr.ID, 0, 100)
		require.NoError(t, err)
		assert.Len(t, events, 1)
	})

	t.Run("same key is fine on another transcript", func(t *testing.T) {
		other := createTestTranscript(t, client.Client)
		_, err := eventService.Append(ctx, other.ID, "STATUS", map[string]any{"value": "error"}, "status:error:finalize:1")
		assert.NoError(t, err)
	})

	t.Run("empty keys never collide", func(t *testing.T) {
		before, err := eventService.ListSince(ctx, tr.ID, 0, 100)
		require.NoError(t, err)
		_, err = eventService.Append(ctx, tr.ID, "DURATION", map[string]any{"duration": 1.0}, "")
		require.NoError(t, err)
		_, err = eventService.Append(ctx, tr.ID, "DURATION", map[string]any{"duration": 1.0}, "")
		require.NoError(t, err)
		after, err := eventService.ListSince(ctx, tr.ID, 0, 100)
		require.NoError(t, err)
		assert.Len(t, after, len(before)+2)
	})
}

func TestEventService_ListSince(t *testing.T) {
	client := testdb.NewTestClient(t)
	eventService := NewEventService(client.Client)
	ctx := context.Background()
	tr := createTestTranscript(t, client.Client)

	evt1, err := eventService.Append(ctx, tr.ID, "STATUS", map[string]any{"seq": 1}, "")
	require.NoError(t, err)
	evt2, err := eventService.Append(ctx, tr.ID, "STATUS", map[string]any{"seq": 2}, "")
	require.NoError(t, err)
	evt3, err := eventService.Append(ctx, tr.ID, "STATUS", map[string]any{"seq": 3}, "")
	require.NoError(t, err)

	t.Run("resumes after a cursor", func(t *testing.T) {
		events, err := eventService.ListSince(ctx, tr.ID, evt1.ID, 100)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, evt2.ID, events[0].ID)
		assert.Equal(t, evt3.ID, events[1].ID)
	})

	t.Run("replays from the beginning with cursor 0", func(t *testing.T) {
		events, err := eventService.ListSince(ctx, tr.ID, 0, 100)
		require.NoError(t, err)
		assert.Len(t, events, 3)
	})

	t.Run("respects the limit", func(t *testing.T) {
		events, err := eventService.ListSince(ctx, tr.ID, 0, 2)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, evt1.ID, events[0].ID)
	})

	t.Run("rejects non-positive limits", func(t *testing.T) {
		_, err := eventService.ListSince(ctx, tr.ID, 0, 0)
		assert.True(t, IsValidationError(err))
	})

	t.Run("does not leak events across transcripts", func(t *testing.T) {
		other := createTestTranscript(t, client.Client)
		events, err := eventService.ListSince(ctx, other.ID, 0, 100)
		require.NoError(t, err)
		assert.Len(t, events, 0)
	})
}

func TestEventService_LatestID(t *testing.T) {
	client := testdb.NewTestClient(t)
	eventService := NewEventService(client.Client)
	ctx := context.Background()
	tr := createTestTranscript(t, client.Client)

	t.Run("returns 0 for an empty log", func(t *testing.T) {
		id, err := eventService.LatestID(ctx, tr.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, id)
	})

	t.Run("tracks the newest event", func(t *testing.T) {
		_, err := eventService.Append(ctx, tr.ID, "STATUS", nil, "")
		require.NoError(t, err)
		evt, err := eventService.Append(ctx, tr.ID, "STATUS", nil, "")
		require.NoError(t, err)

		id, err := eventService.LatestID(ctx, tr.ID)
		require.NoError(t, err)
		assert.Equal(t, evt.ID, id)
	})
}

func TestEventService_AppendTxRollsBackWithCaller(t *testing.T) {
	client := testdb.NewTestClient(t)
	eventService := NewEventService(client.Client)
	ctx := context.Background()
	tr := createTestTranscript(t, client.Client)

	sentinel := errors.New("boom")
	err := WithTx(ctx, client.Client, func(tx *ent.Tx) error {
		_, appendErr := eventService.AppendTx(ctx, tx, tr.ID, "STATUS", map[string]any{"value": "ended"}, "")
		require.NoError(t, appendErr)
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)

	events, err := eventService.ListSince(ctx, tr.ID, 0, 100)
	require.NoError(t, err)
	assert.Len(t, events, 0, "event must not survive a rolled back transaction")
}
