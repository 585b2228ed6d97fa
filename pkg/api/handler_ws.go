package api

import (
	"github.com/coder/websocket"
	echo "github.com/labstack/echo/v5"
)

// wsHandler upgrades HTTP connections to WebSocket and delegates to ConnectionManager.
func (s *Server) wsHandler(c *echo.Context) error {
	if s.connManager == nil {
		return echo.NewHTTPError(503, "WebSocket not available")
	}

	// Upgrade HTTP to WebSocket. Origin checks are left to the reverse
	// proxy in front of this service.
	conn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		return err
	}

	// Register connection with the ConnectionManager.
	// HandleConnection blocks until the WebSocket closes.
	s.connManager.HandleConnection(c.Request().Context(), conn)
	return nil
}
