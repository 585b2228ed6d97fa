// Package platform fetches recording metadata and the participant
// roster from the conferencing platform. The platform is optional: a
// nil client reports ErrNotConfigured and callers fall back to the
// manifest and synthesized speaker names.
package platform

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/monadical-sas/reflector/pkg/config"
	"github.com/monadical-sas/reflector/pkg/version"
)

var (
	// ErrNotConfigured is returned by every method of a nil Client.
	ErrNotConfigured = errors.New("platform not configured")
	// ErrNotFound means the platform has no record of the id.
	ErrNotFound = errors.New("not found")
)

const (
	requestTimeout = 15 * time.Second
	retryCount     = 2
	retryWait      = 500 * time.Millisecond
)

// Recording is the platform's view of a finished recording. Tracks may
// be empty; the ingress manifest stays authoritative for track layout.
type Recording struct {
	ID              string  `json:"id"`
	DurationSeconds float64 `json:"duration_seconds"`
	Tracks          []Track `json:"tracks"`
}

type Track struct {
	S3Key string `json:"s3_key"`
}

// Participant is one roster entry for a meeting session.
type Participant struct {
	ParticipantID string `json:"participant_id"`
	UserID        string `json:"user_id,omitempty"`
	DisplayName   string `json:"display_name"`
}

type participantsResponse struct {
	Participants []Participant `json:"participants"`
}

// Client is a thin wrapper around the platform REST API.
type Client struct {
	http   *resty.Client
	logger *slog.Logger
}

// NewClient builds a platform client. Lookups are cheap metadata reads,
// so transient failures retry inline rather than through a task-level
// backoff budget.
func NewClient(cfg config.PlatformConfig) *Client {
	httpClient := resty.New().
		SetBaseURL(cfg.URL).
		SetTimeout(requestTimeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", version.Full()).
		SetRetryCount(retryCount).
		SetRetryWaitTime(retryWait).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil ||
				r.StatusCode() == http.StatusTooManyRequests ||
				r.StatusCode() >= http.StatusInternalServerError
		})
	if cfg.APIKey != "" {
		httpClient.SetAuthToken(cfg.APIKey)
	}
	return &Client{
		http:   httpClient,
		logger: slog.Default().With("component", "platform"),
	}
}

// GetRecording fetches duration and track metadata for a recording.
func (c *Client) GetRecording(ctx context.Context, recordingID string) (*Recording, error) {
	if c == nil {
		return nil, ErrNotConfigured
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", recordingID).
		SetResult(&Recording{}).
		Get("/api/v1/recordings/{id}")
	if err != nil {
		return nil, fmt.Errorf("platform: get recording %s: %w", recordingID, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, fmt.Errorf("platform: recording %s: %w", recordingID, ErrNotFound)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("platform: get recording %s: status %d: %s",
			recordingID, resp.StatusCode(), bodySnippet(resp))
	}

	rec, ok := resp.Result().(*Recording)
	if !ok {
		return nil, fmt.Errorf("platform: get recording %s: unexpected response shape", recordingID)
	}
	return rec, nil
}

// GetParticipants fetches the roster for a meeting session.
func (c *Client) GetParticipants(ctx context.Context, meetingSessionID string) ([]Participant, error) {
	if c == nil {
		return nil, ErrNotConfigured
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("session", meetingSessionID).
		SetResult(&participantsResponse{}).
		Get("/api/v1/sessions/{session}/participants")
	if err != nil {
		return nil, fmt.Errorf("platform: get participants %s: %w", meetingSessionID, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, fmt.Errorf("platform: session %s: %w", meetingSessionID, ErrNotFound)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("platform: get participants %s: status %d: %s",
			meetingSessionID, resp.StatusCode(), bodySnippet(resp))
	}

	roster, ok := resp.Result().(*participantsResponse)
	if !ok {
		return nil, fmt.Errorf("platform: get participants %s: unexpected response shape", meetingSessionID)
	}
	c.logger.Debug("fetched roster", "session", meetingSessionID, "participants", len(roster.Participants))
	return roster.Participants, nil
}

func bodySnippet(resp *resty.Response) string {
	s := strings.TrimSpace(resp.String())
	if len(s) > 200 {
		s = s[:200]
	}
	return s
}
