package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"google.golang.org/genai"

	"github.com/randalmurphal/promptpager/provider"
)

// contentGenerator is the slice of the genai Models service this client uses.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Client implements provider.Generator on the Gemini API.
// It is safe for concurrent use.
type Client struct {
	cfg    Config
	models contentGenerator
}

// New creates a Gemini API client. The configuration is validated here so a
// missing API key fails at construction rather than on the first request.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    cfg.BaseURL,
			APIVersion: cfg.APIVersion,
		},
	})
	if err != nil {
		return nil, provider.NewError(ProviderName, "connect", err)
	}

	return &Client{cfg: cfg, models: gc.Models}, nil
}

// Generate implements provider.Generator.
// The prompt is sent as the only content of a single generateContent call.
func (c *Client) Generate(ctx context.Context, model, prompt string) (string, error) {
	if model == "" {
		model = c.cfg.Model
	}

	start := time.Now()
	resp, err := c.models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", provider.NewError(ProviderName, "generate", classify(err))
	}

	text, err := responseText(resp)
	if err != nil {
		return "", provider.NewError(ProviderName, "generate", err)
	}

	slog.Debug("gemini generate completed",
		slog.String("model", model),
		slog.Int("prompt_chars", len(prompt)),
		slog.Int("response_chars", len(text)),
		slog.Duration("duration", time.Since(start)))

	return text, nil
}

// Provider implements provider.Generator.
func (c *Client) Provider() string {
	return ProviderName
}

// Model returns the model used when a request leaves it empty.
func (c *Client) Model() string {
	return c.cfg.Model
}

// responseText extracts the completion text, rejecting answers without any.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", provider.ErrEmptyResponse
	}
	if len(resp.Candidates) == 0 {
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			return "", fmt.Errorf("%w: prompt blocked: %s", provider.ErrEmptyResponse, resp.PromptFeedback.BlockReason)
		}
		return "", fmt.Errorf("%w: no candidates", provider.ErrEmptyResponse)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("%w: finish reason %s", provider.ErrEmptyResponse, resp.Candidates[0].FinishReason)
	}
	return text, nil
}

// classify tags API errors with the matching provider sentinel.
func classify(err error) error {
	code := 0
	var apiErr genai.APIError
	var apiErrPtr *genai.APIError
	switch {
	case errors.As(err, &apiErr):
		code = apiErr.Code
	case errors.As(err, &apiErrPtr) && apiErrPtr != nil:
		code = apiErrPtr.Code
	default:
		return err
	}

	switch {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return fmt.Errorf("%w: %w", provider.ErrUnauthorized, err)
	case code == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %w", provider.ErrRateLimited, err)
	case code == http.StatusBadRequest || code == http.StatusNotFound:
		return fmt.Errorf("%w: %w", provider.ErrInvalidRequest, err)
	case code >= http.StatusInternalServerError:
		return fmt.Errorf("%w: %w", provider.ErrUnavailable, err)
	}
	return err
}
