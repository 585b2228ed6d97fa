package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monadical-sas/reflector/pkg/config"
)

// chatRequest mirrors the fields of the completion request the tests
// care about.
type chatRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

type scriptStep struct {
	status int
	body   string
}

// scriptServer replays a fixed sequence of responses, repeating the
// last step once the script runs out, and records every request.
type scriptServer struct {
	t     *testing.T
	steps []scriptStep

	mu    sync.Mutex
	calls int
	auth  string
	reqs  []chatRequest
}

func (s *scriptServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	assert.Equal(s.t, http.MethodPost, r.Method)
	assert.Equal(s.t, "/v1/chat/completions", r.URL.Path)
	s.auth = r.Header.Get("Authorization")

	var req chatRequest
	if assert.NoError(s.t, json.NewDecoder(r.Body).Decode(&req)) {
		s.reqs = append(s.reqs, req)
	}

	step := s.steps[len(s.steps)-1]
	if s.calls < len(s.steps) {
		step = s.steps[s.calls]
	}
	s.calls++

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(step.status)
	_, _ = w.Write([]byte(step.body))
}

func (s *scriptServer) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func (s *scriptServer) request(i int) chatRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reqs[i]
}

func newScriptedClient(t *testing.T, retry RetryConfig, steps ...scriptStep) (*Client, *scriptServer) {
	t.Helper()
	srv := &scriptServer{t: t, steps: steps}
	hs := httptest.NewServer(srv)
	t.Cleanup(hs.Close)

	c := NewClient(config.LLMConfig{
		URL:    hs.URL + "/v1",
		APIKey: "test-key",
		Model:  "test-model",
	}, retry)
	c.retryInterval = time.Millisecond
	return c, srv
}

func completionBody(t *testing.T, content string) string {
	t.Helper()
	b, err := json.Marshal(map[string]any{
		"id":      "chatcmpl-1",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   "test-model",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": content},
			"finish_reason": "stop",
		}},
	})
	require.NoError(t, err)
	return string(b)
}

func errorBody(msg, typ string) string {
	return fmt.Sprintf(`{"error":{"message":%q,"type":%q}}`, msg, typ)
}

const titleSchema = `{
	"type": "object",
	"properties": {
		"title": {"type": "string"}
	},
	"required": ["title"],
	"additionalProperties": false
}`

func TestComplete_Success(t *testing.T) {
	c, srv := newScriptedClient(t, RetryConfig{},
		scriptStep{http.StatusOK, completionBody(t, "A Planning Session")})

	got, err := c.Complete(context.Background(), "Name this meeting.", "Transcript: we planned the quarter.")
	require.NoError(t, err)
	assert.Equal(t, "A Planning Session", got)
	assert.Equal(t, 1, srv.callCount())
	assert.Equal(t, "Bearer test-key", srv.auth)

	req := srv.request(0)
	assert.Equal(t, "test-model", req.Model)
	require.Len(t, req.Messages, 2)
	assert.Equal(t, "system", req.Messages[0].Role)
	assert.Equal(t, "Transcript: we planned the quarter.", req.Messages[0].Content)
	assert.Equal(t, "user", req.Messages[1].Role)
	assert.Equal(t, "Name this meeting.", req.Messages[1].Content)
}

func TestComplete_RetriesTransient(t *testing.T) {
	// A JSON error envelope and a bare proxy error both count as
	// transient when the status says so.
	c, srv := newScriptedClient(t, RetryConfig{NetworkAttempts: 3},
		scriptStep{http.StatusTooManyRequests, errorBody("rate limited", "rate_limit_exceeded")},
		scriptStep{http.StatusServiceUnavailable, "upstream unavailable"},
		scriptStep{http.StatusOK, completionBody(t, "third time lucky")})

	got, err := c.Complete(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "third time lucky", got)
	assert.Equal(t, 3, srv.callCount())
}

func TestComplete_PermanentErrorDoesNotRetry(t *testing.T) {
	c, srv := newScriptedClient(t, RetryConfig{NetworkAttempts: 4},
		scriptStep{http.StatusBadRequest, errorBody("model not found", "invalid_request_error")})

	_, err := c.Complete(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model not found")
	assert.Equal(t, 1, srv.callCount())
}

func TestComplete_ExhaustsRetryBudget(t *testing.T) {
	c, srv := newScriptedClient(t, RetryConfig{NetworkAttempts: 2},
		scriptStep{http.StatusInternalServerError, errorBody("boom", "server_error")})

	_, err := c.Complete(context.Background(), "hello")
	require.Error(t, err)
	assert.Equal(t, 2, srv.callCount())
}

func TestComplete_NoChoices(t *testing.T) {
	c, srv := newScriptedClient(t, RetryConfig{NetworkAttempts: 3},
		scriptStep{http.StatusOK, `{"id":"chatcmpl-1","object":"chat.completion","created":1,"model":"test-model","choices":[]}`})

	_, err := c.Complete(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
	assert.Equal(t, 1, srv.callCount())
}

func TestCompleteStructured_Success(t *testing.T) {
	c, srv := newScriptedClient(t, RetryConfig{},
		scriptStep{http.StatusOK, completionBody(t, `{"title":"Budget Review"}`)})

	var got struct {
		Title string `json:"title"`
	}
	err := c.CompleteStructured(context.Background(), "Title this.", nil, titleSchema, &got)
	require.NoError(t, err)
	assert.Equal(t, "Budget Review", got.Title)
	assert.Equal(t, 1, srv.callCount())

	req := srv.request(0)
	require.Len(t, req.Messages, 1)
	assert.Contains(t, req.Messages[0].Content, "Title this.")
	assert.Contains(t, req.Messages[0].Content, "JSON Schema")
}

func TestCompleteStructured_AcceptsFencedJSON(t *testing.T) {
	c, srv := newScriptedClient(t, RetryConfig{},
		scriptStep{http.StatusOK, completionBody(t, "```json\n{\"title\":\"Weekly Sync\"}\n```")})

	var got struct {
		Title string `json:"title"`
	}
	err := c.CompleteStructured(context.Background(), "Title this.", nil, titleSchema, &got)
	require.NoError(t, err)
	assert.Equal(t, "Weekly Sync", got.Title)
	assert.Equal(t, 1, srv.callCount())
}

func TestCompleteStructured_RepromptsOnInvalidJSON(t *testing.T) {
	c, srv := newScriptedClient(t, RetryConfig{ParseAttempts: 3},
		scriptStep{http.StatusOK, completionBody(t, "Sure! Here is the JSON you asked for.")},
		scriptStep{http.StatusOK, completionBody(t, `{"title":"Weekly Sync"}`)})

	var got struct {
		Title string `json:"title"`
	}
	err := c.CompleteStructured(context.Background(), "Title this.", nil, titleSchema, &got)
	require.NoError(t, err)
	assert.Equal(t, "Weekly Sync", got.Title)
	assert.Equal(t, 2, srv.callCount())

	// The second request carries the failed turn plus a correction.
	req := srv.request(1)
	require.Len(t, req.Messages, 3)
	assert.Equal(t, "assistant", req.Messages[1].Role)
	assert.Equal(t, "Sure! Here is the JSON you asked for.", req.Messages[1].Content)
	assert.Equal(t, "user", req.Messages[2].Role)
	assert.Contains(t, req.Messages[2].Content, "could not be used")
	assert.Contains(t, req.Messages[2].Content, "Reply again with only the corrected JSON object.")
}

func TestCompleteStructured_RepromptsOnSchemaViolation(t *testing.T) {
	c, srv := newScriptedClient(t, RetryConfig{ParseAttempts: 3},
		scriptStep{http.StatusOK, completionBody(t, `{"name":"wrong field"}`)},
		scriptStep{http.StatusOK, completionBody(t, `{"title":"Retro"}`)})

	var got struct {
		Title string `json:"title"`
	}
	err := c.CompleteStructured(context.Background(), "Title this.", nil, titleSchema, &got)
	require.NoError(t, err)
	assert.Equal(t, "Retro", got.Title)
	assert.Equal(t, 2, srv.callCount())
}

func TestCompleteStructured_ExhaustsParseBudget(t *testing.T) {
	c, srv := newScriptedClient(t, RetryConfig{ParseAttempts: 2},
		scriptStep{http.StatusOK, completionBody(t, `{"title": 42}`)})

	var got struct {
		Title string `json:"title"`
	}
	err := c.CompleteStructured(context.Background(), "Title this.", nil, titleSchema, &got)
	require.Error(t, err)
	assert.True(t, IsParseError(err))

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, `{"title": 42}`, perr.Raw)
	assert.NotEmpty(t, perr.Issues)
	assert.Equal(t, 2, srv.callCount())
}

func TestCompleteStructured_NetworkErrorSkipsParseBudget(t *testing.T) {
	c, srv := newScriptedClient(t, RetryConfig{NetworkAttempts: 2, ParseAttempts: 3},
		scriptStep{http.StatusInternalServerError, errorBody("boom", "server_error")})

	var got struct {
		Title string `json:"title"`
	}
	err := c.CompleteStructured(context.Background(), "Title this.", nil, titleSchema, &got)
	require.Error(t, err)
	assert.False(t, IsParseError(err))
	// Two network attempts, not 2*3.
	assert.Equal(t, 2, srv.callCount())
}

func TestCompleteStructured_RejectsBadSchema(t *testing.T) {
	c, srv := newScriptedClient(t, RetryConfig{},
		scriptStep{http.StatusOK, completionBody(t, "{}")})

	var got map[string]any
	err := c.CompleteStructured(context.Background(), "Title this.", nil, `{"type":`, &got)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "compile schema")
	assert.Equal(t, 0, srv.callCount())
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient(config.LLMConfig{APIKey: "k"}, RetryConfig{})
	assert.Equal(t, defaultModel, c.model)
	assert.Equal(t, defaultNetworkAttempts, c.networkAttempts)
	assert.Equal(t, defaultParseAttempts, c.parseAttempts)
}
