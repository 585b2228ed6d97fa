// Package asr calls the remote GPU transcription service. Input is a
// presigned audio URL plus a language hint; output is the word list
// with track-local timestamps. Shifting into meeting time and speaker
// tagging are the caller's job.
package asr

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"

	"github.com/monadical-sas/reflector/pkg/config"
	"github.com/monadical-sas/reflector/pkg/models"
	"github.com/monadical-sas/reflector/pkg/version"
)

var (
	// ErrInvalidMedia is returned when the service rejects the audio
	// itself (bad container, unsupported codec). Retrying cannot help.
	ErrInvalidMedia = errors.New("transcription rejected the media")

	// ErrQuota marks rate-limit responses. The client retries these,
	// honoring Retry-After; the sentinel survives budget exhaustion.
	ErrQuota = errors.New("transcription quota exceeded")
)

const (
	defaultRetryAttempts = 3

	// transcribeTimeout is a per-request backstop; a long track on a
	// cold GPU can take minutes. The task context enforces the real
	// deadline.
	transcribeTimeout = 10 * time.Minute

	retryInitialInterval = 500 * time.Millisecond
)

// Client talks to the transcription endpoint.
type Client struct {
	http          *resty.Client
	retryAttempts int
	retryInterval time.Duration
	logger        *slog.Logger
}

// NewClient creates a transcription client from configuration.
func NewClient(cfg config.ASRConfig) *Client {
	attempts := cfg.RetryAttempts
	if attempts <= 0 {
		attempts = defaultRetryAttempts
	}
	httpClient := resty.New().
		SetBaseURL(cfg.URL).
		SetAuthToken(cfg.APIKey).
		SetTimeout(transcribeTimeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", version.Full())

	return &Client{
		http:          httpClient,
		retryAttempts: attempts,
		retryInterval: retryInitialInterval,
		logger:        slog.Default().With("component", "asr"),
	}
}

type transcribeRequest struct {
	AudioURL string `json:"audio_url"`
	Language string `json:"language,omitempty"`
}

type transcribeWord struct {
	Text  string  `json:"text"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

type transcribeResponse struct {
	Words []transcribeWord `json:"words"`
}

// Transcribe posts the presigned URL and returns the transcribed
// words. Transient failures (5xx, timeouts, 429) are retried with
// exponential backoff up to the configured attempt budget; media
// rejections fail immediately with ErrInvalidMedia.
func (c *Client) Transcribe(ctx context.Context, audioURL, language string) ([]models.Word, error) {
	var retryAfterHint time.Duration

	op := func() ([]models.Word, error) {
		resp, err := c.http.R().
			SetContext(ctx).
			SetBody(transcribeRequest{AudioURL: audioURL, Language: language}).
			SetResult(&transcribeResponse{}).
			Post("/v1/transcribe")
		if err != nil {
			return nil, fmt.Errorf("transcribe request: %w", err)
		}
		if resp.IsError() {
			return nil, c.statusError(resp, &retryAfterHint)
		}

		result, ok := resp.Result().(*transcribeResponse)
		if !ok {
			return nil, backoff.Permanent(fmt.Errorf("transcribe: unexpected response shape"))
		}
		words := make([]models.Word, len(result.Words))
		for i, w := range result.Words {
			words[i] = models.Word{Text: w.Text, Start: w.Start, End: w.End}
		}
		return words, nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.retryInterval
	bo.MaxElapsedTime = 0
	hinted := &retryAfterBackOff{
		BackOff: backoff.WithMaxRetries(bo, uint64(c.retryAttempts-1)),
		hint:    &retryAfterHint,
	}
	words, err := backoff.RetryWithData(op, backoff.WithContext(hinted, ctx))
	if err != nil {
		return nil, err
	}
	return words, nil
}

func (c *Client) statusError(resp *resty.Response, retryAfterHint *time.Duration) error {
	status := resp.StatusCode()
	body := resp.String()
	if len(body) > 200 {
		body = body[:200]
	}

	switch {
	case status == http.StatusBadRequest,
		status == http.StatusUnsupportedMediaType,
		status == http.StatusUnprocessableEntity:
		return backoff.Permanent(fmt.Errorf("%w: status %d: %s", ErrInvalidMedia, status, body))

	case status == http.StatusTooManyRequests:
		*retryAfterHint = parseRetryAfter(resp.Header().Get("Retry-After"))
		c.logger.Warn("transcription rate limited", "retry_after", *retryAfterHint)
		return fmt.Errorf("%w: status %d", ErrQuota, status)

	case status >= http.StatusInternalServerError:
		return fmt.Errorf("transcribe: status %d: %s", status, body)

	default:
		return backoff.Permanent(fmt.Errorf("transcribe: status %d: %s", status, body))
	}
}

// retryAfterBackOff stretches the next delay to at least the server's
// Retry-After hint, then discards the hint.
type retryAfterBackOff struct {
	backoff.BackOff
	hint *time.Duration
}

func (b *retryAfterBackOff) NextBackOff() time.Duration {
	next := b.BackOff.NextBackOff()
	if next == backoff.Stop {
		return next
	}
	if *b.hint > next {
		next = *b.hint
	}
	*b.hint = 0
	return next
}

func parseRetryAfter(value string) time.Duration {
	if value == "" {
		return 0
	}
	if seconds, err := strconv.Atoi(value); err == nil && seconds >= 0 {
		return time.Duration(seconds) * time.Second
	}
	if t, err := http.ParseTime(value); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}
