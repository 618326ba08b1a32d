package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-finance-advisor/internal/config"
	"github.com/MKhiriev/go-finance-advisor/internal/logger"
	"github.com/MKhiriev/go-finance-advisor/internal/utils"
	"github.com/MKhiriev/go-finance-advisor/models"
	"github.com/avast/retry-go/v4"
	"github.com/go-resty/resty/v2"
)

type openAIAdapter struct {
	client *utils.HTTPClient

	attempts uint
	minWait  time.Duration
	maxWait  time.Duration

	logger *logger.Logger
}

// NewOpenAIAdapter constructs an [LLMProvider] for an OpenAI-compatible API.
// The API key is sent as a bearer token and Organization, when set, as the
// OpenAI-Organization header.
//
// Returns [ErrNotConfigured] if cfg.APIKey is empty, or an error if
// cfg.BaseURL cannot be parsed as a URL.
func NewOpenAIAdapter(cfg config.OpenAI, logger *logger.Logger) (LLMProvider, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrNotConfigured
	}

	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid openai base url: %w", err)
	}

	client := utils.NewAPIClient(baseURL, cfg.Timeout).WithBearer(cfg.APIKey)
	client.SetHeader("Content-Type", "application/json")
	if cfg.Organization != "" {
		client.SetHeader("OpenAI-Organization", cfg.Organization)
	}

	attempts := uint(1)
	if cfg.MaxRetries > 0 {
		attempts = uint(cfg.MaxRetries)
	}

	return &openAIAdapter{
		client:   client,
		attempts: attempts,
		minWait:  cfg.RetryMinWait,
		maxWait:  cfg.RetryMaxWait,
		logger:   logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// CreateChatCompletion implements [LLMProvider]. It POSTs to
// /chat/completions, retrying on rate limits and connection errors.
func (a *openAIAdapter) CreateChatCompletion(ctx context.Context, req models.ChatCompletionRequest) (models.ChatCompletionResponse, error) {
	var out models.ChatCompletionResponse
	err := a.withRetry(ctx, "chat_completion", func() error {
		return a.post(ctx, "/chat/completions", req, &out)
	})

	return out, err
}

// CreateEmbeddings implements [LLMProvider].
func (a *openAIAdapter) CreateEmbeddings(ctx context.Context, req models.EmbeddingRequest) (models.EmbeddingResponse, error) {
	var out models.EmbeddingResponse
	err := a.withRetry(ctx, "embeddings", func() error {
		return a.post(ctx, "/embeddings", req, &out)
	})

	return out, err
}

// CreateImage implements [LLMProvider].
func (a *openAIAdapter) CreateImage(ctx context.Context, req models.ImageGenerationRequest) (models.ImageResponse, error) {
	var out models.ImageResponse
	err := a.withRetry(ctx, "image_generation", func() error {
		return a.post(ctx, "/images/generations", req, &out)
	})

	return out, err
}

// ModerateContent implements [LLMProvider]. Moderation is not retried.
func (a *openAIAdapter) ModerateContent(ctx context.Context, req models.ModerationRequest) (models.ModerationResponse, error) {
	var out models.ModerationResponse
	err := a.post(ctx, "/moderations", req, &out)

	return out, err
}

// ListModels implements [LLMProvider].
func (a *openAIAdapter) ListModels(ctx context.Context) (models.ModelList, error) {
	var out models.ModelList
	err := a.get(ctx, "/models", &out)

	return out, err
}

// GetModel implements [LLMProvider].
func (a *openAIAdapter) GetModel(ctx context.Context, modelID string) (models.ModelInfo, error) {
	var out models.ModelInfo
	err := a.get(ctx, "/models/"+url.PathEscape(modelID), &out)

	return out, err
}

func (a *openAIAdapter) post(ctx context.Context, path string, body, result any) error {
	resp, err := a.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(result).
		ForceContentType("application/json").
		Post(path)

	return a.check(path, resp, err)
}

func (a *openAIAdapter) get(ctx context.Context, path string, result any) error {
	resp, err := a.client.R().
		SetContext(ctx).
		SetResult(result).
		ForceContentType("application/json").
		Get(path)

	return a.check(path, resp, err)
}

func (a *openAIAdapter) check(path string, resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrConnection, path, err)
	}

	return mapHTTPError(resp)
}

// withRetry repeats fn with exponential backoff between minWait and maxWait
// while it fails with a retryable error.
func (a *openAIAdapter) withRetry(ctx context.Context, operation string, fn func() error) error {
	return retry.Do(fn,
		retry.Context(ctx),
		retry.Attempts(a.attempts),
		retry.Delay(a.minWait),
		retry.MaxDelay(a.maxWait),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(retryable),
		retry.OnRetry(func(attempt uint, err error) {
			logger.FromContext(ctx).Warn().Err(err).
				Str("func", "*openAIAdapter.withRetry").
				Str("operation", operation).
				Uint("attempt", attempt+1).
				Msg("retrying llm request")
		}),
	)
}
