package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monadical-sas/reflector/pkg/database"
	"github.com/monadical-sas/reflector/pkg/services"
	testdb "github.com/monadical-sas/reflector/test/database"
	"github.com/monadical-sas/reflector/test/util"
)

// progressTestEnv holds all wired-up components for an integration test.
type progressTestEnv struct {
	dbClient     *database.Client
	publisher    *Publisher
	eventService *services.EventService
	manager      *ConnectionManager
	listener     *NotifyListener
	server       *httptest.Server
	transcriptID string
	channel      string
}

// setupProgressTest wires all real components together against a real
// PostgreSQL database (testcontainers locally, service container in CI).
func setupProgressTest(t *testing.T) *progressTestEnv {
	t.Helper()

	dbClient := testdb.NewTestClient(t)
	ctx := context.Background()

	transcriptID := uuid.NewString()
	_, err := dbClient.Transcript.Create().SetID(transcriptID).Save(ctx)
	require.NoError(t, err)

	eventService := services.NewEventService(dbClient.Client)
	publisher := NewPublisher(dbClient.Client, eventService)
	manager := NewConnectionManager(NewEventServiceAdapter(eventService), 5*time.Second)

	// NotifyListener needs the base connection string (no schema
	// search_path): NOTIFY/LISTEN is database-level, not schema-level.
	listener := NewNotifyListener(util.GetBaseConnectionString(t), manager)
	require.NoError(t, listener.Start(ctx))
	manager.SetListener(listener)
	t.Cleanup(func() { listener.Stop(context.Background()) })

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			t.Logf("WebSocket accept error: %v", err)
			return
		}
		manager.HandleConnection(r.Context(), conn)
	}))
	t.Cleanup(func() { server.Close() })

	return &progressTestEnv{
		dbClient:     dbClient,
		publisher:    publisher,
		eventService: eventService,
		manager:      manager,
		listener:     listener,
		server:       server,
		transcriptID: transcriptID,
		channel:      TranscriptChannel(transcriptID),
	}
}

// subscribeAndWait connects a WebSocket, subscribes to the env's channel,
// and waits until the LISTEN is active on the dedicated connection.
func (env *progressTestEnv) subscribeAndWait(t *testing.T) *websocket.Conn {
	t.Helper()
	conn := connectWS(t, env.server)

	msg := readJSON(t, conn)
	require.Equal(t, "connection.established", msg["type"])

	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: env.channel})
	msg = readJSON(t, conn)
	require.Equal(t, "subscription.confirmed", msg["type"])

	require.Eventually(t, func() bool {
		return env.listener.isListening(env.channel)
	}, 2*time.Second, 10*time.Millisecond, "LISTEN did not propagate for channel %s", env.channel)

	return conn
}

func TestIntegration_PublishPersistsInCommitOrder(t *testing.T) {
	env := setupProgressTest(t)
	ctx := context.Background()

	require.NoError(t, env.publisher.PublishStatus(ctx, env.transcriptID, StatusPayload{Value: "processing"}, ""))
	require.NoError(t, env.publisher.Publish(ctx, env.transcriptID, KindFinalTitle, FinalTitlePayload{Title: "Weekly Sync"}, ""))

	events, err := env.eventService.ListSince(ctx, env.transcriptID, 0, 100)
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, KindStatus, events[0].Kind)
	assert.JSONEq(t, `{"value":"processing"}`, string(events[0].Payload))
	assert.Equal(t, KindFinalTitle, events[1].Kind)
	assert.Greater(t, events[1].ID, events[0].ID)
}

func TestIntegration_EndToEnd_PublishToWebSocket(t *testing.T) {
	env := setupProgressTest(t)
	ctx := context.Background()

	conn := env.subscribeAndWait(t)

	require.NoError(t, env.publisher.PublishStatus(ctx, env.transcriptID, StatusPayload{Value: "processing"}, ""))

	// The event arrives via pg_notify → listener → manager.
	msg := readJSON(t, conn)
	assert.Equal(t, KindStatus, msg["event"])
	assert.NotNil(t, msg["id"])
	data, ok := msg["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "processing", data["value"])
}

func TestIntegration_CatchupOnSubscribe(t *testing.T) {
	env := setupProgressTest(t)
	ctx := context.Background()

	// Publish history before any subscriber exists.
	require.NoError(t, env.publisher.PublishStatus(ctx, env.transcriptID, StatusPayload{Value: "processing"}, ""))
	require.NoError(t, env.publisher.Publish(ctx, env.transcriptID, KindFinalTitle, FinalTitlePayload{Title: "Sync"}, ""))
	require.NoError(t, env.publisher.PublishStatus(ctx, env.transcriptID, StatusPayload{Value: "ended"}, ""))

	all, err := env.eventService.ListSince(ctx, env.transcriptID, 0, 100)
	require.NoError(t, err)
	require.Len(t, all, 3)
	firstID := all[0].ID

	// A late subscriber replays the full history on subscribe.
	conn := connectWS(t, env.server)
	msg := readJSON(t, conn)
	require.Equal(t, "connection.established", msg["type"])
	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: env.channel})
	msg = readJSON(t, conn)
	require.Equal(t, "subscription.confirmed", msg["type"])

	kinds := []string{KindStatus, KindFinalTitle, KindStatus}
	for i, want := range kinds {
		msg = readJSON(t, conn)
		assert.Equal(t, want, msg["event"], "catchup event %d", i)
		assert.Equal(t, float64(all[i].ID), msg["id"])
	}

	// Explicit catchup from the first id replays only the rest.
	writeJSON(t, conn, ClientMessage{Action: "catchup", Channel: env.channel, LastEventID: &firstID})
	msg = readJSON(t, conn)
	assert.Equal(t, float64(all[1].ID), msg["id"])
	msg = readJSON(t, conn)
	assert.Equal(t, float64(all[2].ID), msg["id"])

	// No more messages.
	readCtx, readCancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer readCancel()
	_, _, err = conn.Read(readCtx)
	assert.Error(t, err, "should not receive more messages after catchup")
}

func TestIntegration_DedupeSuppressesNotify(t *testing.T) {
	env := setupProgressTest(t)
	ctx := context.Background()

	conn := env.subscribeAndWait(t)

	key := "status:error:mixdown:1"
	require.NoError(t, env.publisher.PublishStatus(ctx, env.transcriptID, StatusPayload{Value: "error"}, key))

	msg := readJSON(t, conn)
	require.Equal(t, KindStatus, msg["event"])

	// The replayed publish is absorbed: no second delivery.
	require.NoError(t, env.publisher.PublishStatus(ctx, env.transcriptID, StatusPayload{Value: "error"}, key))
	// A sentinel event proves the duplicate was skipped, not delayed.
	require.NoError(t, env.publisher.Publish(ctx, env.transcriptID, KindDuration, DurationPayload{Duration: 1000}, ""))

	msg = readJSON(t, conn)
	assert.Equal(t, KindDuration, msg["event"], "duplicate STATUS must not be delivered before the sentinel")
}

func TestIntegration_OversizeEventTruncatedLive(t *testing.T) {
	env := setupProgressTest(t)
	ctx := context.Background()

	conn := env.subscribeAndWait(t)

	// ~19KB of waveform JSON, far past the NOTIFY limit.
	waveform := make([]float64, 1000)
	for i := range waveform {
		waveform[i] = float64(i) / 3.0
	}
	require.NoError(t, env.publisher.PublishWaveform(ctx, env.transcriptID, WaveformPayload{Waveform: waveform}))

	// Live delivery degrades to the truncation envelope.
	msg := readJSON(t, conn)
	assert.Equal(t, KindWaveform, msg["event"])
	assert.Equal(t, true, msg["truncated"])
	assert.NotContains(t, msg, "data")
	id := int(msg["id"].(float64))

	// Catchup has no size limit and returns the full payload.
	before := id - 1
	writeJSON(t, conn, ClientMessage{Action: "catchup", Channel: env.channel, LastEventID: &before})
	msg = readJSON(t, conn)
	require.Equal(t, KindWaveform, msg["event"])
	data, ok := msg["data"].(map[string]interface{})
	require.True(t, ok)
	samples, ok := data["waveform"].([]interface{})
	require.True(t, ok)
	assert.Len(t, samples, 1000)
}

func TestIntegration_EnvelopeMatchesBetweenLiveAndCatchup(t *testing.T) {
	env := setupProgressTest(t)
	ctx := context.Background()

	conn := env.subscribeAndWait(t)

	require.NoError(t, env.publisher.Publish(ctx, env.transcriptID, KindTranscript, TranscriptPayload{Text: "hello world"}, ""))
	live, err := json.Marshal(readJSON(t, conn))
	require.NoError(t, err)

	zero := 0
	writeJSON(t, conn, ClientMessage{Action: "catchup", Channel: env.channel, LastEventID: &zero})
	replayed, err := json.Marshal(readJSON(t, conn))
	require.NoError(t, err)

	assert.JSONEq(t, string(live), string(replayed), "live and catchup deliveries must be byte-compatible")
}
