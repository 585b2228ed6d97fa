package e2e

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/stretchr/testify/require"

	"github.com/monadical-sas/reflector/pkg/events"
)

// WSMessage is one server-to-client frame. Infra messages carry Type
// ("connection.established", "subscription.confirmed", "pong", ...);
// event deliveries carry an Envelope instead.
type WSMessage struct {
	Type     string
	Envelope *events.Envelope
}

// WSClient records everything the server pushes so tests can assert on
// the stream after the fact.
type WSClient struct {
	t      *testing.T
	conn   *websocket.Conn
	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	messages []WSMessage

	closeOnce sync.Once
}

// NewWSClient dials the app's websocket endpoint and waits for the
// connection handshake.
func NewWSClient(t *testing.T, app *TestApp) *WSClient {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	dialCtx, dialCancel := context.WithTimeout(ctx, 5*time.Second)
	defer dialCancel()

	conn, _, err := websocket.Dial(dialCtx, app.WSURL, nil)
	require.NoError(t, err)
	conn.SetReadLimit(1 << 20)

	c := &WSClient{t: t, conn: conn, ctx: ctx, cancel: cancel}
	go c.readLoop()
	t.Cleanup(c.Close)

	c.waitForType("connection.established", 5*time.Second)
	return c
}

func (c *WSClient) readLoop() {
	for {
		_, data, err := c.conn.Read(c.ctx)
		if err != nil {
			return
		}

		var probe struct {
			Type  string `json:"type"`
			Event string `json:"event"`
		}
		if err := json.Unmarshal(data, &probe); err != nil {
			continue
		}

		msg := WSMessage{Type: probe.Type}
		if probe.Type == "" && probe.Event != "" {
			var env events.Envelope
			if err := json.Unmarshal(data, &env); err == nil {
				msg.Envelope = &env
			}
		}

		c.mu.Lock()
		c.messages = append(c.messages, msg)
		c.mu.Unlock()
	}
}

// Subscribe subscribes to a channel and waits for the confirmation.
// The server runs catchup as part of the subscribe, so any already
// persisted events follow immediately after.
func (c *WSClient) Subscribe(channel string) {
	c.t.Helper()
	writeCtx, cancel := context.WithTimeout(c.ctx, 5*time.Second)
	defer cancel()
	require.NoError(c.t, wsjson.Write(writeCtx, c.conn, events.ClientMessage{
		Action:  "subscribe",
		Channel: channel,
	}))
	c.waitForType("subscription.confirmed", 5*time.Second)
}

// Ping sends a ping and waits for the pong.
func (c *WSClient) Ping() {
	c.t.Helper()
	writeCtx, cancel := context.WithTimeout(c.ctx, 5*time.Second)
	defer cancel()
	require.NoError(c.t, wsjson.Write(writeCtx, c.conn, events.ClientMessage{Action: "ping"}))
	c.waitForType("pong", 5*time.Second)
}

// Envelopes returns the event deliveries of one kind seen so far.
func (c *WSClient) Envelopes(kind string) []*events.Envelope {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []*events.Envelope
	for _, msg := range c.messages {
		if msg.Envelope != nil && msg.Envelope.Event == kind {
			out = append(out, msg.Envelope)
		}
	}
	return out
}

// WaitForEnvelope blocks until a delivery of the given kind arrives and
// returns the first one.
func (c *WSClient) WaitForEnvelope(kind string, timeout time.Duration) *events.Envelope {
	c.t.Helper()
	msg := c.waitFor(timeout, "envelope "+kind, func(m WSMessage) bool {
		return m.Envelope != nil && m.Envelope.Event == kind
	})
	return msg.Envelope
}

// WaitForStatus blocks until a STATUS delivery with the given value
// arrives.
func (c *WSClient) WaitForStatus(value string, timeout time.Duration) {
	c.t.Helper()
	c.waitFor(timeout, "status "+value, func(m WSMessage) bool {
		if m.Envelope == nil || m.Envelope.Event != events.KindStatus {
			return false
		}
		var payload events.StatusPayload
		return json.Unmarshal(m.Envelope.Data, &payload) == nil && payload.Value == value
	})
}

func (c *WSClient) waitForType(typ string, timeout time.Duration) {
	c.t.Helper()
	c.waitFor(timeout, typ, func(m WSMessage) bool { return m.Type == typ })
}

func (c *WSClient) waitFor(timeout time.Duration, what string, pred func(WSMessage) bool) WSMessage {
	c.t.Helper()
	deadline := time.Now().Add(timeout)
	seen := 0
	for {
		c.mu.Lock()
		for ; seen < len(c.messages); seen++ {
			if pred(c.messages[seen]) {
				msg := c.messages[seen]
				c.mu.Unlock()
				return msg
			}
		}
		c.mu.Unlock()

		if time.Now().After(deadline) {
			c.t.Fatalf("timed out waiting for websocket message: %s", what)
			return WSMessage{}
		}
		time.Sleep(20 * time.Millisecond)
	}
}

// Close tears the connection down; safe to call twice.
func (c *WSClient) Close() {
	c.closeOnce.Do(func() {
		c.cancel()
		_ = c.conn.Close(websocket.StatusNormalClosure, "test done")
	})
}
