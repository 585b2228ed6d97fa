package events

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monadical-sas/reflector/ent"
	"github.com/monadical-sas/reflector/pkg/services"
	testdb "github.com/monadical-sas/reflector/test/database"
)

func TestMarshalEnvelope(t *testing.T) {
	t.Run("small payloads pass through intact", func(t *testing.T) {
		out, err := marshalEnvelope(7, KindStatus, json.RawMessage(`{"value":"ended"}`))
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":7,"event":"STATUS","data":{"value":"ended"}}`, out)
	})

	t.Run("oversize payloads become a truncation envelope", func(t *testing.T) {
		big := `{"waveform":"` + strings.Repeat("x", notifyPayloadLimit) + `"}`
		out, err := marshalEnvelope(9, KindWaveform, json.RawMessage(big))
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":9,"event":"WAVEFORM","truncated":true}`, out)
		assert.LessOrEqual(t, len(out), notifyPayloadLimit)
	})

	t.Run("payload exactly at the limit is not truncated", func(t *testing.T) {
		// Envelope overhead plus data sized to land exactly on the limit.
		overhead := len(`{"id":1,"event":"STATUS","data":}`)
		data := `"` + strings.Repeat("x", notifyPayloadLimit-overhead-2) + `"`
		out, err := marshalEnvelope(1, KindStatus, json.RawMessage(data))
		require.NoError(t, err)
		assert.Equal(t, notifyPayloadLimit, len(out))
		assert.NotContains(t, out, "truncated")
	})
}

func TestPublisher_Publish(t *testing.T) {
	client := testdb.NewTestClient(t)
	eventService := services.NewEventService(client.Client)
	publisher := NewPublisher(client.Client, eventService)
	ctx := context.Background()

	tr, err := client.Transcript.Create().SetID(uuid.NewString()).Save(ctx)
	require.NoError(t, err)

	t.Run("appends the event with its payload", func(t *testing.T) {
		err := publisher.PublishStatus(ctx, tr.ID, StatusPayload{Value: "processing"}, "")
		require.NoError(t, err)

		events, err := eventService.ListSince(ctx, tr.ID, 0, 10)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, KindStatus, events[0].Kind)
		assert.JSONEq(t, `{"value":"processing"}`, string(events[0].Payload))
	})

	t.Run("dedupe key absorbs a replayed publish", func(t *testing.T) {
		key := "status:error:finalize:2"
		require.NoError(t, publisher.PublishStatus(ctx, tr.ID, StatusPayload{Value: "error"}, key))
		require.NoError(t, publisher.PublishStatus(ctx, tr.ID, StatusPayload{Value: "error"}, key))

		events, err := eventService.ListSince(ctx, tr.ID, 0, 10)
		require.NoError(t, err)
		assert.Len(t, events, 2, "replayed publish must not append a second row")
	})
}

func TestPublisher_PublishTxRollsBackWithCaller(t *testing.T) {
	client := testdb.NewTestClient(t)
	eventService := services.NewEventService(client.Client)
	publisher := NewPublisher(client.Client, eventService)
	ctx := context.Background()

	tr, err := client.Transcript.Create().SetID(uuid.NewString()).Save(ctx)
	require.NoError(t, err)

	sentinel := errors.New("boom")
	err = services.WithTx(ctx, client.Client, func(tx *ent.Tx) error {
		if err := publisher.PublishStatusTx(ctx, tx, tr.ID, StatusPayload{Value: "ended"}, ""); err != nil {
			return err
		}
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)

	events, err := eventService.ListSince(ctx, tr.ID, 0, 10)
	require.NoError(t, err)
	assert.Len(t, events, 0, "rolled back publish must leave no event behind")
}
