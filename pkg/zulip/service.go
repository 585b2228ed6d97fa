package zulip

import (
	"context"
	"log/slog"

	"github.com/monadical-sas/reflector/pkg/config"
)

// SummaryInput carries everything needed to post or refresh a recording
// summary message. MessageID zero means no message exists yet.
type SummaryInput struct {
	Stream       string
	Topic        string
	Title        string
	ShortSummary string
	MessageID    int64
}

// Service posts recording summaries to Zulip streams.
// Nil-safe: all methods are no-ops when service is nil.
type Service struct {
	client *Client
	logger *slog.Logger
}

// NewService creates a Zulip notification service.
// Returns nil unless site URL, bot email and API key are all set.
func NewService(cfg config.ZulipConfig) *Service {
	if cfg.SiteURL == "" || cfg.BotEmail == "" || cfg.APIKey == "" {
		return nil
	}
	return &Service{
		client: NewClient(cfg.SiteURL, cfg.BotEmail, cfg.APIKey),
		logger: slog.Default().With("component", "zulip-service"),
	}
}

// NewServiceWithClient creates a Service backed by a pre-built Client.
// Useful for testing with a mock API server.
func NewServiceWithClient(client *Client) *Service {
	return &Service{
		client: client,
		logger: slog.Default().With("component", "zulip-service"),
	}
}

// PostSummary creates the summary message on first delivery and edits it
// in place on every subsequent one, so a re-run refreshes rather than
// duplicates. Returns the message ID the caller should persist.
func (s *Service) PostSummary(ctx context.Context, input SummaryInput) (int64, error) {
	if s == nil {
		return 0, nil
	}

	content := BuildSummaryMessage(input.Title, input.ShortSummary)

	if input.MessageID != 0 {
		if err := s.client.UpdateMessage(ctx, input.MessageID, content); err != nil {
			return input.MessageID, err
		}
		s.logger.Info("Updated Zulip summary message",
			"stream", input.Stream, "message_id", input.MessageID)
		return input.MessageID, nil
	}

	id, err := s.client.SendMessage(ctx, input.Stream, input.Topic, content)
	if err != nil {
		return 0, err
	}
	s.logger.Info("Posted Zulip summary message",
		"stream", input.Stream, "message_id", id)
	return id, nil
}
