package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5"
)

// listenCmd is a LISTEN/UNLISTEN command executed by the receive loop,
// which is the sole goroutine that touches the pgx connection.
type listenCmd struct {
	sql    string
	result chan error
}

// NotifyListener holds one dedicated PostgreSQL connection in LISTEN mode
// and dispatches received notifications to the local ConnectionManager.
// NOTIFY/LISTEN is database-level, so one listener per pod covers every
// transcript channel.
type NotifyListener struct {
	connString string
	conn       *pgx.Conn
	connMu     sync.Mutex
	manager    *ConnectionManager
	channels   map[string]bool // channels currently in LISTEN mode
	channelsMu sync.RWMutex

	// cmdCh serializes LISTEN/UNLISTEN through the receive loop. pgx
	// connections are not safe for concurrent WaitForNotification + Exec.
	cmdCh   chan listenCmd
	running atomic.Bool

	cancelLoop context.CancelFunc
	loopDone   chan struct{}
}

// NewNotifyListener creates a new PostgreSQL NOTIFY listener.
func NewNotifyListener(connString string, manager *ConnectionManager) *NotifyListener {
	return &NotifyListener{
		connString: connString,
		manager:    manager,
		channels:   make(map[string]bool),
		cmdCh:      make(chan listenCmd, 16),
	}
}

// Start establishes the dedicated LISTEN connection and begins receiving
// notifications.
func (l *NotifyListener) Start(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, l.connString)
	if err != nil {
		return fmt.Errorf("failed to connect for LISTEN: %w", err)
	}

	l.connMu.Lock()
	l.conn = conn
	l.connMu.Unlock()

	l.running.Store(true)

	loopCtx, cancel := context.WithCancel(ctx)
	l.cancelLoop = cancel
	l.loopDone = make(chan struct{})
	go func() {
		defer close(l.loopDone)
		l.receiveLoop(loopCtx)
	}()

	slog.Info("NotifyListener started")
	return nil
}

// Subscribe issues LISTEN for a channel on the dedicated connection.
func (l *NotifyListener) Subscribe(ctx context.Context, channel string) error {
	l.channelsMu.Lock()
	if l.channels[channel] {
		l.channelsMu.Unlock()
		return nil
	}
	l.channelsMu.Unlock()

	if !l.running.Load() {
		return fmt.Errorf("LISTEN connection not established")
	}

	sanitized := pgx.Identifier{channel}.Sanitize()
	if err := l.exec(ctx, "LISTEN "+sanitized); err != nil {
		return fmt.Errorf("LISTEN %s failed: %w", sanitized, err)
	}

	l.channelsMu.Lock()
	l.channels[channel] = true
	l.channelsMu.Unlock()
	slog.Debug("Subscribed to NOTIFY channel", "channel", channel)
	return nil
}

// Unsubscribe issues UNLISTEN for a channel.
func (l *NotifyListener) Unsubscribe(ctx context.Context, channel string) error {
	l.channelsMu.Lock()
	if !l.channels[channel] {
		l.channelsMu.Unlock()
		return nil
	}
	l.channelsMu.Unlock()

	if !l.running.Load() {
		return nil
	}

	sanitized := pgx.Identifier{channel}.Sanitize()
	if err := l.exec(ctx, "UNLISTEN "+sanitized); err != nil {
		return fmt.Errorf("UNLISTEN %s failed: %w", sanitized, err)
	}

	l.channelsMu.Lock()
	delete(l.channels, channel)
	l.channelsMu.Unlock()
	return nil
}

// isListening reports whether the channel is in LISTEN mode. Unexported —
// tests poll this instead of sleeping.
func (l *NotifyListener) isListening(channel string) bool {
	l.channelsMu.RLock()
	defer l.channelsMu.RUnlock()
	return l.channels[channel]
}

// exec routes a LISTEN/UNLISTEN statement through the receive loop and
// waits for its result.
func (l *NotifyListener) exec(ctx context.Context, sql string) error {
	cmd := listenCmd{sql: sql, result: make(chan error, 1)}

	select {
	case l.cmdCh <- cmd:
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-cmd.result:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// receiveLoop continuously receives notifications and dispatches them to
// the ConnectionManager. It is the sole goroutine that touches the pgx
// connection.
func (l *NotifyListener) receiveLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		l.processPendingCmds(ctx)

		l.connMu.Lock()
		conn := l.conn
		l.connMu.Unlock()

		if conn == nil {
			l.reconnect(ctx)
			continue
		}

		// Short timeout so the loop periodically returns to drain cmdCh.
		waitCtx, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
		notification, err := conn.WaitForNotification(waitCtx)
		cancel()

		if err != nil {
			if ctx.Err() != nil {
				return
			}
			if waitCtx.Err() != nil {
				continue
			}
			slog.Error("NOTIFY receive error", "error", err)
			l.reconnect(ctx)
			continue
		}

		l.manager.Broadcast(notification.Channel, []byte(notification.Payload))
	}
}

// processPendingCmds drains the command channel and executes each
// LISTEN/UNLISTEN statement on the pgx connection.
func (l *NotifyListener) processPendingCmds(ctx context.Context) {
	for {
		select {
		case cmd := <-l.cmdCh:
			l.connMu.Lock()
			conn := l.conn
			l.connMu.Unlock()

			if conn == nil {
				cmd.result <- fmt.Errorf("LISTEN connection not established")
				continue
			}

			_, err := conn.Exec(ctx, cmd.sql)
			cmd.result <- err
		default:
			return
		}
	}
}

// reconnect re-establishes the LISTEN connection with exponential backoff
// and re-issues LISTEN for every subscribed channel. Events published while
// disconnected are not lost to clients: catchup replays them from the
// events table on the next subscribe or reconnect.
func (l *NotifyListener) reconnect(ctx context.Context) {
	l.connMu.Lock()
	defer l.connMu.Unlock()

	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = time.Second
	bo.MaxInterval = 30 * time.Second
	bo.MaxElapsedTime = 0 // retry until the context is cancelled

	conn, err := backoff.RetryWithData(func() (*pgx.Conn, error) {
		conn, err := pgx.Connect(ctx, l.connString)
		if err != nil {
			slog.Error("LISTEN reconnect failed", "error", err)
			return nil, err
		}
		return conn, nil
	}, backoff.WithContext(bo, ctx))
	if err != nil {
		return // context cancelled
	}
	l.conn = conn

	l.channelsMu.RLock()
	for ch := range l.channels {
		sanitized := pgx.Identifier{ch}.Sanitize()
		if _, err := conn.Exec(ctx, "LISTEN "+sanitized); err != nil {
			slog.Error("Re-LISTEN failed", "channel", ch, "error", err)
		}
	}
	l.channelsMu.RUnlock()

	slog.Info("NotifyListener reconnected")
}

// Stop signals the receive loop to exit, waits for it to finish, then
// closes the LISTEN connection.
func (l *NotifyListener) Stop(ctx context.Context) {
	l.running.Store(false)

	// Wait for the loop before closing the connection so Close never races
	// WaitForNotification.
	if l.cancelLoop != nil {
		l.cancelLoop()
	}
	if l.loopDone != nil {
		<-l.loopDone
	}

	l.connMu.Lock()
	defer l.connMu.Unlock()
	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}
}
