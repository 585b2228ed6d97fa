// Package llm wraps an OpenAI-compatible completion endpoint with two
// call modes: free-form text and schema-validated structured output.
// Network failures and rate limits retry on one budget; parse and
// validation failures re-prompt the model on a separate budget, feeding
// the validator's complaints back as conversation turns.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	openai "github.com/sashabaranov/go-openai"
	"github.com/xeipuuv/gojsonschema"

	"github.com/monadical-sas/reflector/pkg/config"
)

const (
	defaultModel           = "gpt-4o-mini"
	defaultNetworkAttempts = 5
	defaultParseAttempts   = 3

	retryInitialInterval = 500 * time.Millisecond
)

// RetryConfig carries the two independent retry budgets.
type RetryConfig struct {
	// NetworkAttempts bounds tries per request for transport, 5xx, and
	// rate-limit failures.
	NetworkAttempts int

	// ParseAttempts bounds re-prompts after JSON-parse or
	// schema-validation failures.
	ParseAttempts int

	// Jitter randomizes backoff delays when true.
	Jitter bool
}

// Client talks to the completion gateway.
type Client struct {
	api             *openai.Client
	model           string
	networkAttempts int
	parseAttempts   int
	jitter          bool
	retryInterval   time.Duration
	logger          *slog.Logger
}

// NewClient creates a completion client from configuration.
func NewClient(cfg config.LLMConfig, retry RetryConfig) *Client {
	if retry.NetworkAttempts <= 0 {
		retry.NetworkAttempts = defaultNetworkAttempts
	}
	if retry.ParseAttempts <= 0 {
		retry.ParseAttempts = defaultParseAttempts
	}
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.URL != "" {
		apiCfg.BaseURL = cfg.URL
	}

	return &Client{
		api:             openai.NewClientWithConfig(apiCfg),
		model:           model,
		networkAttempts: retry.NetworkAttempts,
		parseAttempts:   retry.ParseAttempts,
		jitter:          retry.Jitter,
		retryInterval:   retryInitialInterval,
		logger:          slog.Default().With("component", "llm"),
	}
}

// Complete sends the prompt (plus optional context blocks) and returns
// the model's text response.
func (c *Client) Complete(ctx context.Context, prompt string, contexts ...string) (string, error) {
	return c.chat(ctx, buildMessages(prompt, contexts))
}

// CompleteStructured asks for a JSON object matching schema and
// unmarshals it into out. A response that fails to parse or validate
// is echoed back to the model with the validator's error list, up to
// the parse budget; exhaustion returns the last *ParseError.
func (c *Client) CompleteStructured(ctx context.Context, prompt string, contexts []string, schema string, out any) error {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schema))
	if err != nil {
		return fmt.Errorf("llm: compile schema: %w", err)
	}

	messages := buildMessages(structuredPrompt(prompt, schema), contexts)

	var lastErr *ParseError
	for attempt := 1; attempt <= c.parseAttempts; attempt++ {
		raw, err := c.chat(ctx, messages)
		if err != nil {
			return err
		}

		candidate := extractJSON(raw)
		issues := validateAgainst(compiled, candidate)
		if issues == nil {
			if err := json.Unmarshal([]byte(candidate), out); err != nil {
				issues = []string{fmt.Sprintf("json decode: %v", err)}
			} else {
				return nil
			}
		}

		lastErr = &ParseError{Raw: raw, Issues: issues}
		c.logger.Warn("structured completion failed validation",
			"attempt", attempt, "issues", issues)
		messages = append(messages,
			openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: raw},
			openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: feedbackPrompt(lastErr)},
		)
	}
	return lastErr
}

// chat performs one completion with the network retry budget.
func (c *Client) chat(ctx context.Context, messages []openai.ChatCompletionMessage) (string, error) {
	op := func() (string, error) {
		resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:    c.model,
			Messages: messages,
		})
		if err != nil {
			return "", classifyAPIError(err)
		}
		if len(resp.Choices) == 0 {
			return "", backoff.Permanent(errors.New("llm: completion returned no choices"))
		}
		return resp.Choices[0].Message.Content, nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.retryInterval
	bo.MaxElapsedTime = 0
	if !c.jitter {
		bo.RandomizationFactor = 0
	}
	limited := backoff.WithMaxRetries(bo, uint64(c.networkAttempts-1))
	return backoff.RetryWithData(op, backoff.WithContext(limited, ctx))
}

// classifyAPIError marks rate limits and server errors retryable;
// every other API failure is permanent. Gateways that answer with a
// non-OpenAI error body surface as *RequestError instead of *APIError.
func classifyAPIError(err error) error {
	status := 0
	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatusCode
	case errors.As(err, &reqErr):
		status = reqErr.HTTPStatusCode
	default:
		return fmt.Errorf("llm request: %w", err)
	}

	if status == http.StatusTooManyRequests || status >= http.StatusInternalServerError {
		return fmt.Errorf("llm: %w", err)
	}
	return backoff.Permanent(fmt.Errorf("llm: %w", err))
}

// buildMessages places context blocks as system turns ahead of the
// user prompt.
func buildMessages(prompt string, contexts []string) []openai.ChatCompletionMessage {
	messages := make([]openai.ChatCompletionMessage, 0, len(contexts)+1)
	for _, block := range contexts {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: block,
		})
	}
	return append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: prompt,
	})
}

func structuredPrompt(prompt, schema string) string {
	return prompt +
		"\n\nRespond with a single JSON object that validates against this JSON Schema, with no surrounding prose:\n" +
		schema
}

func feedbackPrompt(perr *ParseError) string {
	msg := "Your previous response could not be used:\n"
	for _, issue := range perr.Issues {
		msg += "- " + issue + "\n"
	}
	return msg + "Reply again with only the corrected JSON object."
}
