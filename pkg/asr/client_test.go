package asr

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monadical-sas/reflector/pkg/config"
	"github.com/monadical-sas/reflector/pkg/models"
)

func newTestClient(t *testing.T, handler http.Handler, attempts int) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient(config.ASRConfig{
		URL:           srv.URL,
		APIKey:        "test-key",
		RetryAttempts: attempts,
	})
	c.retryInterval = time.Millisecond
	return c
}

func TestTranscribe_Success(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/transcribe", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req transcribeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "https://store/padded_0.webm?sig=abc", req.AudioURL)
		assert.Equal(t, "en", req.Language)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"words": [
			{"text": "hello", "start": 0.5, "end": 0.9},
			{"text": "there", "start": 1.0, "end": 1.4}
		]}`))
	}), 1)

	words, err := client.Transcribe(context.Background(), "https://store/padded_0.webm?sig=abc", "en")
	require.NoError(t, err)
	assert.Equal(t, []models.Word{
		{Text: "hello", Start: 0.5, End: 0.9},
		{Text: "there", Start: 1.0, End: 1.4},
	}, words)
}

func TestTranscribe_EmptyWordList(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"words": []}`))
	}), 1)

	words, err := client.Transcribe(context.Background(), "https://store/silent.webm", "en")
	require.NoError(t, err)
	assert.Empty(t, words)
}

func TestTranscribe_InvalidMediaDoesNotRetry(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "unsupported codec", http.StatusUnsupportedMediaType)
	}), 3)

	_, err := client.Transcribe(context.Background(), "https://store/broken.webm", "en")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidMedia)
	assert.Equal(t, int32(1), calls.Load())
}

func TestTranscribe_RetriesTransient(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) <= 2 {
			http.Error(w, "worker starting", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"words": [{"text": "late", "start": 0, "end": 0.3}]}`))
	}), 3)

	words, err := client.Transcribe(context.Background(), "https://store/a.webm", "en")
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, "late", words[0].Text)
	assert.Equal(t, int32(3), calls.Load())
}

func TestTranscribe_ExhaustsRetryBudget(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "crashed", http.StatusInternalServerError)
	}), 2)

	_, err := client.Transcribe(context.Background(), "https://store/a.webm", "en")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
	assert.Equal(t, int32(2), calls.Load())
}

func TestTranscribe_QuotaSurfacesAfterRetries(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Retry-After", "0")
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}), 2)

	_, err := client.Transcribe(context.Background(), "https://store/a.webm", "en")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrQuota)
	assert.Equal(t, int32(2), calls.Load())
}

func TestRetryAfterBackOff(t *testing.T) {
	t.Run("hint stretches the next delay once", func(t *testing.T) {
		hint := 2 * time.Second
		bo := &retryAfterBackOff{
			BackOff: backoff.NewConstantBackOff(time.Millisecond),
			hint:    &hint,
		}
		assert.Equal(t, 2*time.Second, bo.NextBackOff())
		assert.Equal(t, time.Millisecond, bo.NextBackOff())
	})

	t.Run("shorter hint keeps the backoff delay", func(t *testing.T) {
		hint := time.Microsecond
		bo := &retryAfterBackOff{
			BackOff: backoff.NewConstantBackOff(time.Millisecond),
			hint:    &hint,
		}
		assert.Equal(t, time.Millisecond, bo.NextBackOff())
	})

	t.Run("stop passes through untouched", func(t *testing.T) {
		hint := time.Minute
		bo := &retryAfterBackOff{
			BackOff: backoff.WithMaxRetries(backoff.NewConstantBackOff(time.Millisecond), 0),
			hint:    &hint,
		}
		assert.Equal(t, backoff.Stop, bo.NextBackOff())
		assert.Equal(t, time.Minute, hint)
	})
}

func TestParseRetryAfter(t *testing.T) {
	assert.Equal(t, 3*time.Second, parseRetryAfter("3"))
	assert.Equal(t, time.Duration(0), parseRetryAfter(""))
	assert.Equal(t, time.Duration(0), parseRetryAfter("soon"))
	assert.Equal(t, time.Duration(0), parseRetryAfter("-5"))

	future := time.Now().Add(90 * time.Second).UTC().Format(http.TimeFormat)
	d := parseRetryAfter(future)
	assert.Greater(t, d, 80*time.Second)
	assert.LessOrEqual(t, d, 90*time.Second)

	past := time.Now().Add(-time.Minute).UTC().Format(http.TimeFormat)
	assert.Equal(t, time.Duration(0), parseRetryAfter(past))
}
