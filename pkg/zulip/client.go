package zulip

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/monadical-sas/reflector/pkg/version"
)

// requestTimeout bounds a single API call. The task context enforces
// the overall deadline; this catches a hung connection.
const requestTimeout = 15 * time.Second

// Client is a thin wrapper around the Zulip REST API. Messages are sent
// with the bot's credentials via HTTP basic auth.
type Client struct {
	http   *resty.Client
	logger *slog.Logger
}

// NewClient creates a Zulip API client for the given site.
func NewClient(siteURL, botEmail, apiKey string) *Client {
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(siteURL, "/")).
		SetBasicAuth(botEmail, apiKey).
		SetTimeout(requestTimeout).
		SetHeader("User-Agent", version.Full())
	return &Client{
		http:   httpClient,
		logger: slog.Default().With("component", "zulip-client"),
	}
}

// NewClientWithBaseURL creates a client that targets a custom API URL.
// Useful for testing with a mock server.
func NewClientWithBaseURL(baseURL, botEmail, apiKey string) *Client {
	return NewClient(baseURL, botEmail, apiKey)
}

// apiResponse is the envelope Zulip wraps every response in.
type apiResponse struct {
	Result string `json:"result"`
	Msg    string `json:"msg"`
	ID     int64  `json:"id"`
}

// SendMessage posts a new message to a stream topic and returns the
// message ID Zulip assigned to it.
func (c *Client) SendMessage(ctx context.Context, stream, topic, content string) (int64, error) {
	var out apiResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"type":    "stream",
			"to":      stream,
			"topic":   topic,
			"content": content,
		}).
		SetResult(&out).
		SetError(&out).
		Post("/api/v1/messages")
	if err != nil {
		return 0, fmt.Errorf("send message: %w", err)
	}
	if resp.IsError() || out.Result != "success" {
		return 0, fmt.Errorf("send message: %s: %s", resp.Status(), out.Msg)
	}
	return out.ID, nil
}

// UpdateMessage replaces the content of a previously sent message.
func (c *Client) UpdateMessage(ctx context.Context, messageID int64, content string) error {
	var out apiResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{"content": content}).
		SetResult(&out).
		SetError(&out).
		Patch(fmt.Sprintf("/api/v1/messages/%d", messageID))
	if err != nil {
		return fmt.Errorf("update message %d: %w", messageID, err)
	}
	if resp.IsError() || out.Result != "success" {
		return fmt.Errorf("update message %d: %s: %s", messageID, resp.Status(), out.Msg)
	}
	return nil
}
