package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCatchupQuerier implements CatchupQuerier for tests. It honors the
// sinceID cursor so catchup semantics can be asserted without a database.
type mockCatchupQuerier struct {
	events []CatchupEvent
	err    error
}

func (m *mockCatchupQuerier) GetCatchupEvents(_ context.Context, _ string, sinceID, limit int) ([]CatchupEvent, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []CatchupEvent
	for _, evt := range m.events {
		if evt.ID > sinceID {
			out = append(out, evt)
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func setupTestManager(t *testing.T, querier CatchupQuerier) (*ConnectionManager, *httptest.Server) {
	t.Helper()

	manager := NewConnectionManager(querier, 5*time.Second)
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
	return manager, server
}

func connectWS(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func readJSON(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func writeJSON(t *testing.T, conn *websocket.Conn, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
}

func TestConnectionManager_ConnectionEstablished(t *testing.T) {
	_, server := setupTestManager(t, &mockCatchupQuerier{})
	conn := connectWS(t, server)

	msg := readJSON(t, conn)
	assert.Equal(t, "connection.established", msg["type"])
	assert.NotEmpty(t, msg["connection_id"])
}

func TestConnectionManager_SubscribeDeliversCatchup(t *testing.T) {
	querier := &mockCatchupQuerier{events: []CatchupEvent{
		{ID: 1, Kind: KindStatus, Payload: json.RawMessage(`{"value":"processing"}`)},
		{ID: 2, Kind: KindFinalTitle, Payload: json.RawMessage(`{"title":"Sync"}`)},
	}}
	_, server := setupTestManager(t, querier)
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: "transcript:test-123"})

	msg := readJSON(t, conn)
	assert.Equal(t, "subscription.confirmed", msg["type"])
	assert.Equal(t, "transcript:test-123", msg["channel"])

	// Auto-catchup replays the stored history in id order.
	first := readJSON(t, conn)
	assert.Equal(t, float64(1), first["id"])
	assert.Equal(t, KindStatus, first["event"])

	second := readJSON(t, conn)
	assert.Equal(t, float64(2), second["id"])
	assert.Equal(t, KindFinalTitle, second["event"])
	data, ok := second["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Sync", data["title"])
}

func TestConnectionManager_CatchupFromCursor(t *testing.T) {
	querier := &mockCatchupQuerier{events: []CatchupEvent{
		{ID: 1, Kind: KindStatus, Payload: json.RawMessage(`{"value":"processing"}`)},
		{ID: 2, Kind: KindDuration, Payload: json.RawMessage(`{"duration":1000}`)},
		{ID: 3, Kind: KindStatus, Payload: json.RawMessage(`{"value":"ended"}`)},
	}}
	_, server := setupTestManager(t, querier)
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: "transcript:cursor-test"})
	readJSON(t, conn) // subscription.confirmed
	for i := 0; i < 3; i++ {
		readJSON(t, conn) // auto-catchup
	}

	// Explicit catchup from id 1 returns only events 2 and 3.
	last := 1
	writeJSON(t, conn, ClientMessage{Action: "catchup", Channel: "transcript:cursor-test", LastEventID: &last})

	msg := readJSON(t, conn)
	assert.Equal(t, float64(2), msg["id"])
	msg = readJSON(t, conn)
	assert.Equal(t, float64(3), msg["id"])
}

func TestConnectionManager_CatchupOverflow(t *testing.T) {
	manyEvents := make([]CatchupEvent, catchupLimit+5)
	for i := range manyEvents {
		manyEvents[i] = CatchupEvent{
			ID:      i + 1,
			Kind:    KindStatus,
			Payload: json.RawMessage(`{"value":"processing"}`),
		}
	}

	_, server := setupTestManager(t, &mockCatchupQuerier{events: manyEvents})
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: "transcript:overflow-test"})
	readJSON(t, conn) // subscription.confirmed

	// Auto-catchup delivers up to the limit, then the overflow marker.
	var overflowReceived bool
	for i := 0; i < catchupLimit+5; i++ {
		msg := readJSON(t, conn)
		if msg["type"] == "catchup.overflow" {
			overflowReceived = true
			assert.Equal(t, true, msg["has_more"])
			break
		}
	}
	assert.True(t, overflowReceived, "expected catchup.overflow message")
}

func TestConnectionManager_PingPong(t *testing.T) {
	_, server := setupTestManager(t, &mockCatchupQuerier{})
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	writeJSON(t, conn, ClientMessage{Action: "ping"})

	msg := readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestConnectionManager_Broadcast(t *testing.T) {
	manager, server := setupTestManager(t, &mockCatchupQuerier{})

	conn1 := connectWS(t, server)
	conn2 := connectWS(t, server)
	readJSON(t, conn1)
	readJSON(t, conn2)

	channel := "transcript:broadcast-test"
	writeJSON(t, conn1, ClientMessage{Action: "subscribe", Channel: channel})
	writeJSON(t, conn2, ClientMessage{Action: "subscribe", Channel: channel})
	readJSON(t, conn1) // subscription.confirmed
	readJSON(t, conn2)

	require.Eventually(t, func() bool {
		return manager.subscriberCount(channel) == 2
	}, 2*time.Second, 10*time.Millisecond)

	payload, _ := json.Marshal(Envelope{ID: 5, Event: KindStatus, Data: json.RawMessage(`{"value":"ended"}`)})
	manager.Broadcast(channel, payload)

	msg1 := readJSON(t, conn1)
	msg2 := readJSON(t, conn2)
	assert.Equal(t, KindStatus, msg1["event"])
	assert.Equal(t, float64(5), msg1["id"])
	assert.Equal(t, KindStatus, msg2["event"])
}

func TestConnectionManager_ConcurrentBroadcast(t *testing.T) {
	manager, server := setupTestManager(t, &mockCatchupQuerier{})
	conn := connectWS(t, server)
	readJSON(t, conn)

	channel := "transcript:concurrent-test"
	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: channel})
	readJSON(t, conn) // subscription.confirmed

	require.Eventually(t, func() bool {
		return manager.subscriberCount(channel) == 1
	}, 2*time.Second, 10*time.Millisecond)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			payload, _ := json.Marshal(Envelope{ID: idx + 1, Event: KindStatus, Data: json.RawMessage(`{"value":"processing"}`)})
			manager.Broadcast(channel, payload)
		}(i)
	}
	wg.Wait()

	received := 0
	var firstErr error
	for i := 0; i < 20; i++ {
		readCtx, readCancel := context.WithTimeout(context.Background(), 5*time.Second)
		_, _, err := conn.Read(readCtx)
		readCancel()
		if err != nil {
			firstErr = err
			break
		}
		received++
	}
	assert.Equal(t, 20, received, "should receive all 20 broadcast messages; first error: %v", firstErr)
}

func TestConnectionManager_BroadcastToNonExistentChannel(t *testing.T) {
	manager, _ := setupTestManager(t, &mockCatchupQuerier{})

	// Must not panic.
	payload, _ := json.Marshal(Envelope{ID: 1, Event: KindStatus})
	manager.Broadcast("transcript:nobody-here", payload)
}

func TestConnectionManager_Unsubscribe(t *testing.T) {
	manager, server := setupTestManager(t, &mockCatchupQuerier{})
	conn := connectWS(t, server)
	readJSON(t, conn)

	channel := "transcript:unsub-test"
	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: channel})
	readJSON(t, conn) // subscription.confirmed

	writeJSON(t, conn, ClientMessage{Action: "unsubscribe", Channel: channel})

	require.Eventually(t, func() bool {
		return manager.subscriberCount(channel) == 0
	}, 2*time.Second, 10*time.Millisecond)

	payload, _ := json.Marshal(Envelope{ID: 1, Event: KindStatus, Data: json.RawMessage(`{"value":"ended"}`)})
	manager.Broadcast(channel, payload)

	readCtx, readCancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer readCancel()
	_, _, err := conn.Read(readCtx)
	assert.Error(t, err, "must not receive broadcasts after unsubscribe")
}

func TestConnectionManager_MultipleChannels(t *testing.T) {
	manager, server := setupTestManager(t, &mockCatchupQuerier{})
	conn := connectWS(t, server)
	readJSON(t, conn)

	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: "transcript:ch1"})
	readJSON(t, conn) // subscription.confirmed
	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: "transcript:ch2"})
	readJSON(t, conn) // subscription.confirmed

	require.Eventually(t, func() bool {
		return manager.subscriberCount("transcript:ch1") == 1 && manager.subscriberCount("transcript:ch2") == 1
	}, 2*time.Second, 10*time.Millisecond)

	payload1, _ := json.Marshal(Envelope{ID: 1, Event: KindFinalTitle, Data: json.RawMessage(`{"title":"one"}`)})
	manager.Broadcast("transcript:ch1", payload1)
	msg := readJSON(t, conn)
	assert.Equal(t, KindFinalTitle, msg["event"])

	payload2, _ := json.Marshal(Envelope{ID: 2, Event: KindDuration, Data: json.RawMessage(`{"duration":10}`)})
	manager.Broadcast("transcript:ch2", payload2)
	msg = readJSON(t, conn)
	assert.Equal(t, KindDuration, msg["event"])
}

func TestConnectionManager_SubscribeRequiresChannel(t *testing.T) {
	_, server := setupTestManager(t, &mockCatchupQuerier{})
	conn := connectWS(t, server)
	readJSON(t, conn)

	writeJSON(t, conn, ClientMessage{Action: "subscribe"})
	msg := readJSON(t, conn)
	assert.Equal(t, "error", msg["type"])
}
