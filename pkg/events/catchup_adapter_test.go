package events

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monadical-sas/reflector/pkg/services"
	testdb "github.com/monadical-sas/reflector/test/database"
)

func TestEventServiceAdapter_ChannelParsing(t *testing.T) {
	adapter := NewEventServiceAdapter(nil)
	ctx := context.Background()

	t.Run("unknown channel formats yield no events", func(t *testing.T) {
		events, err := adapter.GetCatchupEvents(ctx, "sessions", 0, 10)
		require.NoError(t, err)
		assert.Nil(t, events)
	})

	t.Run("empty transcript id yields no events", func(t *testing.T) {
		events, err := adapter.GetCatchupEvents(ctx, "transcript:", 0, 10)
		require.NoError(t, err)
		assert.Nil(t, events)
	})
}

func TestEventServiceAdapter_GetCatchupEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	eventService := services.NewEventService(client.Client)
	adapter := NewEventServiceAdapter(eventService)
	ctx := context.Background()

	tr, err := client.Transcript.Create().SetID(uuid.NewString()).Save(ctx)
	require.NoError(t, err)

	evt1, err := eventService.Append(ctx, tr.ID, KindStatus, StatusPayload{Value: "processing"}, "")
	require.NoError(t, err)
	_, err = eventService.Append(ctx, tr.ID, KindFinalTitle, FinalTitlePayload{Title: "Sync"}, "")
	require.NoError(t, err)

	t.Run("returns stored events in order", func(t *testing.T) {
		events, err := adapter.GetCatchupEvents(ctx, TranscriptChannel(tr.ID), 0, 10)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, KindStatus, events[0].Kind)
		assert.Equal(t, KindFinalTitle, events[1].Kind)
		assert.JSONEq(t, `{"title":"Sync"}`, string(events[1].Payload))
	})

	t.Run("honors the cursor", func(t *testing.T) {
		events, err := adapter.GetCatchupEvents(ctx, TranscriptChannel(tr.ID), evt1.ID, 10)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, KindFinalTitle, events[0].Kind)
	})
}
