package platform

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monadical-sas/reflector/pkg/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient(config.PlatformConfig{URL: srv.URL, APIKey: "test-key"})
	c.http.SetRetryWaitTime(time.Millisecond)
	return c
}

func TestGetRecording_Success(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/recordings/rec-42", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "rec-42",
			"duration_seconds": 1843.2,
			"tracks": [{"s3_key": "recordings/a.webm"}, {"s3_key": "recordings/b.webm"}]
		}`))
	})

	rec, err := c.GetRecording(context.Background(), "rec-42")
	require.NoError(t, err)
	assert.Equal(t, "rec-42", rec.ID)
	assert.InDelta(t, 1843.2, rec.DurationSeconds, 1e-9)
	require.Len(t, rec.Tracks, 2)
	assert.Equal(t, "recordings/b.webm", rec.Tracks[1].S3Key)
}

func TestGetRecording_NotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such recording", http.StatusNotFound)
	})

	_, err := c.GetRecording(context.Background(), "rec-missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetRecording_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			http.Error(w, "warming up", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "rec-1", "duration_seconds": 10}`))
	})

	rec, err := c.GetRecording(context.Background(), "rec-1")
	require.NoError(t, err)
	assert.Equal(t, "rec-1", rec.ID)
	assert.Equal(t, int32(3), calls.Load())
}

func TestGetRecording_SurfacesServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal", http.StatusInternalServerError)
	})

	_, err := c.GetRecording(context.Background(), "rec-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestGetParticipants_Success(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/sessions/sess-7/participants", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"participants": [
			{"participant_id": "p1", "user_id": "u1", "display_name": "Ada"},
			{"participant_id": "p2", "display_name": "Grace"}
		]}`))
	})

	roster, err := c.GetParticipants(context.Background(), "sess-7")
	require.NoError(t, err)
	require.Len(t, roster, 2)
	assert.Equal(t, "Ada", roster[0].DisplayName)
	assert.Equal(t, "u1", roster[0].UserID)
	assert.Equal(t, "p2", roster[1].ParticipantID)
	assert.Empty(t, roster[1].UserID)
}

func TestGetParticipants_EmptyRoster(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"participants": []}`))
	})

	roster, err := c.GetParticipants(context.Background(), "sess-7")
	require.NoError(t, err)
	assert.Empty(t, roster)
}

func TestNilClient(t *testing.T) {
	var c *Client

	_, err := c.GetRecording(context.Background(), "rec-1")
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = c.GetParticipants(context.Background(), "sess-1")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
