package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-finance-advisor/internal/adapter"
	"github.com/MKhiriev/go-finance-advisor/internal/config"
	"github.com/MKhiriev/go-finance-advisor/internal/logger"
	"github.com/MKhiriev/go-finance-advisor/internal/metrics"
	"github.com/MKhiriev/go-finance-advisor/models"
	"github.com/allegro/bigcache/v3"
)

// Request defaults applied when the caller leaves a field empty.
const (
	DefaultChatModel         = "gpt-4o"
	DefaultChatTemperature   = 0.7
	DefaultEmbeddingModel    = "text-embedding-3-small"
	DefaultEmbeddingEncoding = "float"
	DefaultImageModel        = "dall-e-3"
	DefaultImageSize         = "1024x1024"
	DefaultImageQuality      = "standard"
	DefaultImageCount        = 1
)

// Health statuses reported by LLMService.Health and FinanceAdvisorService.Health.
const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// Operation labels of the llm requests counter.
const (
	opChatCompletion = "chat_completion"
	opEmbeddings     = "embeddings"
	opImage          = "image_generation"
	opModeration     = "moderation"
	opListModels     = "list_models"
	opGetModel       = "get_model"
)

const modelListCacheKey = "models"

// timestampLayout matches an ISO-8601 UTC timestamp with microseconds.
const timestampLayout = "2006-01-02T15:04:05.000000"

type llmService struct {
	provider adapter.LLMProvider
	cache    *bigcache.BigCache
	metrics  *metrics.Metrics
	now      func() time.Time

	logger *logger.Logger
}

// NewLLMService wraps provider, which may be nil when no API key is
// configured. The model list is cached for cfg.ModelsCacheTTL when it is
// positive; the cache janitor stops with ctx.
func NewLLMService(ctx context.Context, provider adapter.LLMProvider, cfg config.OpenAI, m *metrics.Metrics, logger *logger.Logger) (LLMService, error) {
	s := &llmService{
		provider: provider,
		metrics:  m,
		now:      time.Now,
		logger:   logger,
	}

	if cfg.ModelsCacheTTL > 0 {
		cacheConfig := bigcache.DefaultConfig(cfg.ModelsCacheTTL)
		cacheConfig.Shards = 16
		cacheConfig.MaxEntriesInWindow = 16
		cacheConfig.CleanWindow = time.Second
		cacheConfig.Verbose = false

		cache, err := bigcache.New(ctx, cacheConfig)
		if err != nil {
			return nil, fmt.Errorf("error creating model list cache: %w", err)
		}
		s.cache = cache
	}

	return s, nil
}

func (s *llmService) CreateChatCompletion(ctx context.Context, request models.ChatCompletionRequest) (models.ChatCompletionResponse, error) {
	if s.provider == nil {
		return models.ChatCompletionResponse{}, adapter.ErrNotConfigured
	}

	if request.Model == "" {
		request.Model = DefaultChatModel
	}
	if request.Temperature == nil {
		t := DefaultChatTemperature
		request.Temperature = &t
	}

	logger.FromContext(ctx).Info().
		Str("model", request.Model).
		Int("messages", len(request.Messages)).
		Msg("creating chat completion")

	response, err := s.provider.CreateChatCompletion(ctx, request)
	s.observe(ctx, opChatCompletion, err)
	return response, err
}

func (s *llmService) CreateEmbeddings(ctx context.Context, request models.EmbeddingRequest) (models.EmbeddingResponse, error) {
	if s.provider == nil {
		return models.EmbeddingResponse{}, adapter.ErrNotConfigured
	}

	if request.Model == "" {
		request.Model = DefaultEmbeddingModel
	}
	if request.EncodingFormat == "" {
		request.EncodingFormat = DefaultEmbeddingEncoding
	}

	logger.FromContext(ctx).Info().
		Str("model", request.Model).
		Int("inputs", len(request.Input)).
		Msg("creating embeddings")

	response, err := s.provider.CreateEmbeddings(ctx, request)
	s.observe(ctx, opEmbeddings, err)
	return response, err
}

func (s *llmService) CreateImage(ctx context.Context, request models.ImageGenerationRequest) (models.ImageResponse, error) {
	if s.provider == nil {
		return models.ImageResponse{}, adapter.ErrNotConfigured
	}

	if request.Model == "" {
		request.Model = DefaultImageModel
	}
	if request.Size == "" {
		request.Size = DefaultImageSize
	}
	if request.Quality == "" {
		request.Quality = DefaultImageQuality
	}
	if request.N == 0 {
		request.N = DefaultImageCount
	}

	logger.FromContext(ctx).Info().Str("model", request.Model).Msg("generating image")

	response, err := s.provider.CreateImage(ctx, request)
	s.observe(ctx, opImage, err)
	return response, err
}

func (s *llmService) ModerateContent(ctx context.Context, request models.ModerationRequest) (models.ModerationResponse, error) {
	if s.provider == nil {
		return models.ModerationResponse{}, adapter.ErrNotConfigured
	}

	response, err := s.provider.ModerateContent(ctx, request)
	s.observe(ctx, opModeration, err)
	return response, err
}

// ListModels serves the listing from cache when possible.
func (s *llmService) ListModels(ctx context.Context) (models.ModelList, error) {
	if s.provider == nil {
		return models.ModelList{}, adapter.ErrNotConfigured
	}
	log := logger.FromContext(ctx)

	if list, ok := s.cachedModels(ctx); ok {
		log.Debug().Int("models", len(list.Data)).Msg("model list served from cache")
		return list, nil
	}

	list, err := s.provider.ListModels(ctx)
	s.observe(ctx, opListModels, err)
	if err != nil {
		return models.ModelList{}, err
	}

	if s.cache != nil {
		if raw, mErr := json.Marshal(list); mErr == nil {
			if cErr := s.cache.Set(modelListCacheKey, raw); cErr != nil {
				log.Warn().Err(cErr).Msg("model list was not cached")
			}
		}
	}

	return list, nil
}

func (s *llmService) GetModel(ctx context.Context, modelID string) (models.ModelInfo, error) {
	if s.provider == nil {
		return models.ModelInfo{}, adapter.ErrNotConfigured
	}

	info, err := s.provider.GetModel(ctx, modelID)
	s.observe(ctx, opGetModel, err)
	return info, err
}

// Ping bypasses the cache.
func (s *llmService) Ping(ctx context.Context) error {
	if s.provider == nil {
		return adapter.ErrNotConfigured
	}

	_, err := s.provider.ListModels(ctx)
	s.observe(ctx, opListModels, err)
	return err
}

func (s *llmService) Health(ctx context.Context) models.HealthResponse {
	status := StatusHealthy
	if err := s.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Msg("llm provider health check failed")
		status = StatusUnhealthy
	}

	return models.HealthResponse{
		Status:    status,
		Timestamp: s.now().UTC().Format(timestampLayout),
	}
}

func (s *llmService) cachedModels(ctx context.Context) (models.ModelList, bool) {
	if s.cache == nil {
		return models.ModelList{}, false
	}

	raw, err := s.cache.Get(modelListCacheKey)
	if err != nil {
		if !errors.Is(err, bigcache.ErrEntryNotFound) {
			logger.FromContext(ctx).Warn().Err(err).Msg("model list cache read failed")
		}
		return models.ModelList{}, false
	}

	var list models.ModelList
	if err = json.Unmarshal(raw, &list); err != nil {
		return models.ModelList{}, false
	}
	return list, true
}

func (s *llmService) observe(ctx context.Context, operation string, err error) {
	s.metrics.ObserveLLM(operation, err)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("operation", operation).Msg("llm provider call failed")
	}
}
