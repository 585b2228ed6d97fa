package api

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Routes are exercised through the full echo stack (middleware + error
// handler) without a network listener.
func TestServerRoutes(t *testing.T) {
	s := NewServer(nil, nil, nil, nil, nil)

	t.Run("invalid manifest returns 400", func(t *testing.T) {
		body := `{"recording_id":"rec-1","bucket":"recordings","tracks":[]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/pipelines/multitrack", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		s.echo.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "track")
	})

	t.Run("ws without manager returns 503", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/ws", nil)
		rec := httptest.NewRecorder()

		s.echo.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("unknown route returns 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/nope", nil)
		rec := httptest.NewRecorder()

		s.echo.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("security headers are set", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/ws", nil)
		rec := httptest.NewRecorder()

		s.echo.ServeHTTP(rec, req)
		assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
		assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	})
}

func TestServerListenerLifecycle(t *testing.T) {
	s := NewServer(nil, nil, nil, nil, nil)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	go func() {
		_ = s.StartWithListener(ln)
	}()

	resp, err := http.Get(fmt.Sprintf("http://%s/v1/ws", ln.Addr()))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, s.Shutdown(shutdownCtx))
}
