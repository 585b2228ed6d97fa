package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// catchupLimit is the maximum number of events returned in a catchup
// response. If more events were missed, a catchup.overflow message tells
// the client to do a full REST reload instead.
const catchupLimit = 200

// listenTimeout bounds how long a LISTEN command may block when
// subscribing to a new PG channel.
const listenTimeout = 10 * time.Second

// CatchupEvent is one stored event returned by the catchup query.
type CatchupEvent struct {
	ID      int
	Kind    string
	Payload json.RawMessage
}

// CatchupQuerier queries stored events for catchup. Implemented by
// EventServiceAdapter.
type CatchupQuerier interface {
	GetCatchupEvents(ctx context.Context, channel string, sinceID, limit int) ([]CatchupEvent, error)
}

// ConnectionManager manages WebSocket connections and channel
// subscriptions. Each pod has one ConnectionManager instance.
type ConnectionManager struct {
	connections map[string]*Connection
	mu          sync.RWMutex

	// channel → set of connection ids
	channels  map[string]map[string]bool
	channelMu sync.RWMutex

	catchupQuerier CatchupQuerier

	// set after construction, once the NotifyListener exists
	listener   *NotifyListener
	listenerMu sync.RWMutex

	writeTimeout time.Duration
}

// Connection represents a single WebSocket client.
//
// subscriptions is accessed without a lock: all reads and writes happen on
// the goroutine that owns the connection (HandleConnection's read loop and
// its deferred cleanup).
type Connection struct {
	ID            string
	Conn          *websocket.Conn
	subscriptions map[string]bool
	ctx           context.Context
	cancel        context.CancelFunc
}

// NewConnectionManager creates a new ConnectionManager.
func NewConnectionManager(catchupQuerier CatchupQuerier, writeTimeout time.Duration) *ConnectionManager {
	return &ConnectionManager{
		connections:    make(map[string]*Connection),
		channels:       make(map[string]map[string]bool),
		catchupQuerier: catchupQuerier,
		writeTimeout:   writeTimeout,
	}
}

// SetListener wires in the NotifyListener for dynamic LISTEN/UNLISTEN.
// Called once during startup.
func (m *ConnectionManager) SetListener(l *NotifyListener) {
	m.listenerMu.Lock()
	defer m.listenerMu.Unlock()
	m.listener = l
}

// HandleConnection manages the lifecycle of a single WebSocket connection.
// Called by the WebSocket HTTP handler after upgrade. Blocks until the
// connection closes.
func (m *ConnectionManager) HandleConnection(parentCtx context.Context, conn *websocket.Conn) {
	connID := uuid.New().String()
	ctx, cancel := context.WithCancel(parentCtx)

	c := &Connection{
		ID:            connID,
		Conn:          conn,
		subscriptions: make(map[string]bool),
		ctx:           ctx,
		cancel:        cancel,
	}

	m.registerConnection(c)
	defer m.unregisterConnection(c)

	m.sendJSON(c, map[string]string{
		"type":          "connection.established",
		"connection_id": connID,
	})

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("Invalid WebSocket message",
				"connection_id", connID, "error", err)
			continue
		}

		m.handleClientMessage(ctx, c, &msg)
	}
}

// Broadcast sends an event payload to all connections subscribed to the
// given channel.
func (m *ConnectionManager) Broadcast(channel string, event []byte) {
	m.channelMu.RLock()
	connIDs, exists := m.channels[channel]
	if !exists {
		m.channelMu.RUnlock()
		return
	}
	ids := make([]string, 0, len(connIDs))
	for id := range connIDs {
		ids = append(ids, id)
	}
	m.channelMu.RUnlock()

	// Snapshot connection pointers, then send without holding any lock:
	// a slow client write (up to writeTimeout) must not stall
	// register/unregister.
	m.mu.RLock()
	conns := make([]*Connection, 0, len(ids))
	for _, id := range ids {
		if conn, ok := m.connections[id]; ok {
			conns = append(conns, conn)
		}
	}
	m.mu.RUnlock()

	for _, conn := range conns {
		if err := m.sendRaw(conn, event); err != nil {
			slog.Warn("Failed to send to WebSocket client",
				"connection_id", conn.ID, "error", err)
		}
	}
}

// ActiveConnections returns the count of active WebSocket connections.
func (m *ConnectionManager) ActiveConnections() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections)
}

// subscriberCount returns the number of subscribers for a channel.
// Unexported — tests poll this instead of sleeping.
func (m *ConnectionManager) subscriberCount(channel string) int {
	m.channelMu.RLock()
	defer m.channelMu.RUnlock()
	return len(m.channels[channel])
}

// handleClientMessage dispatches a client message to the appropriate
// handler.
func (m *ConnectionManager) handleClientMessage(ctx context.Context, c *Connection, msg *ClientMessage) {
	switch msg.Action {
	case "subscribe":
		if msg.Channel == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "channel is required for subscribe"})
			return
		}
		if err := m.subscribe(c, msg.Channel); err != nil {
			m.sendJSON(c, map[string]string{
				"type":    "subscription.error",
				"channel": msg.Channel,
				"message": "failed to subscribe to channel",
			})
			return
		}
		m.sendJSON(c, map[string]string{
			"type":    "subscription.confirmed",
			"channel": msg.Channel,
		})
		// Auto catch-up so late subscribers receive the full history.
		m.handleCatchup(ctx, c, msg.Channel, 0)

	case "unsubscribe":
		if msg.Channel == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "channel is required for unsubscribe"})
			return
		}
		m.unsubscribe(c, msg.Channel)

	case "catchup":
		if msg.Channel == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "channel is required for catchup"})
			return
		}
		if msg.LastEventID != nil {
			m.handleCatchup(ctx, c, msg.Channel, *msg.LastEventID)
		}

	case "ping":
		m.sendJSON(c, map[string]string{"type": "pong"})
	}
}

// subscribe registers a connection for a channel and starts LISTEN if it is
// the first subscriber. LISTEN completes before subscribe returns, so the
// subsequent auto-catchup runs with LISTEN already active; events published
// between the two paths cannot be lost, only delivered twice (clients
// dedupe on id).
func (m *ConnectionManager) subscribe(c *Connection, channel string) error {
	m.channelMu.Lock()
	needsListen := false
	if _, exists := m.channels[channel]; !exists {
		m.channels[channel] = make(map[string]bool)
		needsListen = true
	}
	m.channels[channel][c.ID] = true
	m.channelMu.Unlock()

	if needsListen {
		m.listenerMu.RLock()
		l := m.listener
		m.listenerMu.RUnlock()
		if l != nil {
			listenCtx, listenCancel := context.WithTimeout(context.Background(), listenTimeout)
			defer listenCancel()
			if err := l.Subscribe(listenCtx, channel); err != nil {
				slog.Error("Failed to LISTEN on channel", "channel", channel, "error", err)
				m.cleanupFailedChannel(c, channel)
				return fmt.Errorf("LISTEN on channel %s: %w", channel, err)
			}
		}
	}

	c.subscriptions[channel] = true
	return nil
}

// cleanupFailedChannel removes ALL subscribers from a channel after a
// LISTEN failure and notifies every affected connection except the
// triggering one (notified by the caller via the returned error).
//
// Between creating the channel entry and LISTEN completing, other
// goroutines may have subscribed and skipped LISTEN because the entry
// existed. Those connections received subscription.confirmed without a
// working LISTEN; subscription.error tells them to re-subscribe or fall
// back to REST.
func (m *ConnectionManager) cleanupFailedChannel(triggering *Connection, channel string) {
	m.channelMu.Lock()
	affectedIDs := make([]string, 0, len(m.channels[channel]))
	for connID := range m.channels[channel] {
		if connID != triggering.ID {
			affectedIDs = append(affectedIDs, connID)
		}
	}
	delete(m.channels, channel)
	m.channelMu.Unlock()

	if len(affectedIDs) == 0 {
		return
	}

	m.mu.RLock()
	conns := make([]*Connection, 0, len(affectedIDs))
	for _, id := range affectedIDs {
		if conn, ok := m.connections[id]; ok {
			conns = append(conns, conn)
		}
	}
	m.mu.RUnlock()

	for _, conn := range conns {
		slog.Warn("Removing orphaned subscriber after LISTEN failure",
			"connection_id", conn.ID, "channel", channel)
		m.sendJSON(conn, map[string]string{
			"type":    "subscription.error",
			"channel": channel,
			"message": "channel listen failed; subscription removed",
		})
	}
}

// unsubscribe removes a connection from a channel and stops LISTEN if it
// was the last subscriber.
func (m *ConnectionManager) unsubscribe(c *Connection, channel string) {
	m.channelMu.Lock()
	if subs, exists := m.channels[channel]; exists {
		delete(subs, c.ID)
		if len(subs) == 0 {
			delete(m.channels, channel)
			// The goroutine re-checks m.channels before UNLISTEN so a
			// rapid unsubscribe/resubscribe cycle cannot drop an active
			// LISTEN.
			m.listenerMu.RLock()
			l := m.listener
			m.listenerMu.RUnlock()
			if l != nil {
				go func() {
					m.channelMu.RLock()
					_, resubscribed := m.channels[channel]
					m.channelMu.RUnlock()
					if resubscribed {
						return
					}
					if err := l.Unsubscribe(context.Background(), channel); err != nil {
						slog.Error("Failed to UNLISTEN channel", "channel", channel, "error", err)
					}
				}()
			}
		}
	}
	m.channelMu.Unlock()

	delete(c.subscriptions, channel)
}

// handleCatchup sends stored events after lastEventID to the client, in
// commit order, wrapped in the same envelope as live deliveries.
func (m *ConnectionManager) handleCatchup(ctx context.Context, c *Connection, channel string, lastEventID int) {
	if m.catchupQuerier == nil {
		return
	}

	// Query one extra row to detect overflow.
	events, err := m.catchupQuerier.GetCatchupEvents(ctx, channel, lastEventID, catchupLimit+1)
	if err != nil {
		slog.Error("Catchup query failed", "channel", channel, "error", err)
		return
	}

	hasMore := len(events) > catchupLimit
	if hasMore {
		events = events[:catchupLimit]
	}

	for _, evt := range events {
		payload, err := json.Marshal(Envelope{ID: evt.ID, Event: evt.Kind, Data: evt.Payload})
		if err != nil {
			continue
		}
		if err := m.sendRaw(c, payload); err != nil {
			slog.Warn("Failed to send catchup event",
				"connection_id", c.ID, "error", err)
			return
		}
	}

	if hasMore {
		m.sendJSON(c, map[string]interface{}{
			"type":     "catchup.overflow",
			"channel":  channel,
			"has_more": true,
		})
	}
}

// registerConnection adds a connection to the tracking map.
func (m *ConnectionManager) registerConnection(c *Connection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connections[c.ID] = c
}

// unregisterConnection removes a connection and all its subscriptions.
func (m *ConnectionManager) unregisterConnection(c *Connection) {
	for ch := range c.subscriptions {
		m.unsubscribe(c, ch)
	}

	m.mu.Lock()
	delete(m.connections, c.ID)
	m.mu.Unlock()

	c.cancel()
	_ = c.Conn.Close(websocket.StatusNormalClosure, "")
}

// sendJSON marshals and sends a JSON message to a single connection.
func (m *ConnectionManager) sendJSON(c *Connection, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Warn("Failed to marshal WebSocket message",
			"connection_id", c.ID, "error", err)
		return
	}
	if err := m.sendRaw(c, data); err != nil {
		slog.Warn("Failed to send WebSocket message",
			"connection_id", c.ID, "error", err)
	}
}

// sendRaw sends raw bytes to a single connection with a write timeout.
func (m *ConnectionManager) sendRaw(c *Connection, data []byte) error {
	writeCtx, cancel := context.WithTimeout(c.ctx, m.writeTimeout)
	defer cancel()
	return c.Conn.Write(writeCtx, websocket.MessageText, data)
}
