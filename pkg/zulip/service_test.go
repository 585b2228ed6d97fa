package zulip

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monadical-sas/reflector/pkg/config"
)

func TestService_NilReceiver(t *testing.T) {
	var s *Service

	id, err := s.PostSummary(context.Background(), SummaryInput{
		Stream: "engineering",
		Topic:  "standup",
		Title:  "Weekly Sync",
	})
	assert.NoError(t, err)
	assert.Zero(t, id)
}

func TestNewService(t *testing.T) {
	t.Run("returns nil when site URL empty", func(t *testing.T) {
		assert.Nil(t, NewService(config.ZulipConfig{BotEmail: "bot@example.com", APIKey: "key"}))
	})

	t.Run("returns nil when bot email empty", func(t *testing.T) {
		assert.Nil(t, NewService(config.ZulipConfig{SiteURL: "https://chat.example.com", APIKey: "key"}))
	})

	t.Run("returns nil when API key empty", func(t *testing.T) {
		assert.Nil(t, NewService(config.ZulipConfig{SiteURL: "https://chat.example.com", BotEmail: "bot@example.com"}))
	})

	t.Run("returns service when configured", func(t *testing.T) {
		svc := NewService(config.ZulipConfig{
			SiteURL:  "https://chat.example.com",
			BotEmail: "bot@example.com",
			APIKey:   "key",
		})
		assert.NotNil(t, svc)
	})
}

func TestService_PostSummary_CreatesMessage(t *testing.T) {
	var gotForm map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/messages", r.URL.Path)
		email, key, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "bot@example.com", email)
		assert.Equal(t, "secret", key)

		require.NoError(t, r.ParseForm())
		gotForm = map[string]string{
			"type":    r.PostFormValue("type"),
			"to":      r.PostFormValue("to"),
			"topic":   r.PostFormValue("topic"),
			"content": r.PostFormValue("content"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":"success","msg":"","id":4242}`))
	}))
	defer server.Close()

	svc := NewServiceWithClient(NewClientWithBaseURL(server.URL, "bot@example.com", "secret"))
	id, err := svc.PostSummary(context.Background(), SummaryInput{
		Stream:       "recordings",
		Topic:        "Weekly Sync",
		Title:        "Weekly Sync",
		ShortSummary: "We planned the release.",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4242), id)
	assert.Equal(t, "stream", gotForm["type"])
	assert.Equal(t, "recordings", gotForm["to"])
	assert.Equal(t, "Weekly Sync", gotForm["topic"])
	assert.Contains(t, gotForm["content"], "**Weekly Sync**")
	assert.Contains(t, gotForm["content"], "We planned the release.")
}

func TestService_PostSummary_UpdatesExistingMessage(t *testing.T) {
	var patchedPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		patchedPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":"success","msg":""}`))
	}))
	defer server.Close()

	svc := NewServiceWithClient(NewClientWithBaseURL(server.URL, "bot@example.com", "secret"))
	id, err := svc.PostSummary(context.Background(), SummaryInput{
		Stream:       "recordings",
		Topic:        "Weekly Sync",
		Title:        "Weekly Sync",
		ShortSummary: "Updated recap.",
		MessageID:    99,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(99), id, "existing message ID is kept")
	assert.Equal(t, "/api/v1/messages/99", patchedPath)
}

func TestService_PostSummary_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"result":"error","msg":"Invalid stream"}`))
	}))
	defer server.Close()

	svc := NewServiceWithClient(NewClientWithBaseURL(server.URL, "bot@example.com", "secret"))
	_, err := svc.PostSummary(context.Background(), SummaryInput{
		Stream: "nope",
		Topic:  "t",
		Title:  "t",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid stream")
}
