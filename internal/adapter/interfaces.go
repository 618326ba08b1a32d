// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the third-party large language
// model API used by the finance advisor.
//
// The primary abstraction is [LLMProvider], which decouples the service layer
// from the provider's wire protocol. The package ships an implementation for
// OpenAI-compatible HTTP APIs ([NewOpenAIAdapter]).
//
// HTTP status codes returned by the provider are mapped to the sentinel errors
// in errors.go by mapHTTPError so callers can use [errors.Is] (e.g.
// [ErrRateLimited] for 429, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-finance-advisor/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/llm_provider_mock.go -package=mock

// LLMProvider is a transport-agnostic client of a large language model API.
// Requests are sent as given; defaults are applied by the caller.
type LLMProvider interface {
	// CreateChatCompletion sends a chat conversation and returns the
	// generated choices.
	CreateChatCompletion(ctx context.Context, req models.ChatCompletionRequest) (models.ChatCompletionResponse, error)

	// CreateEmbeddings returns one embedding vector per input string.
	CreateEmbeddings(ctx context.Context, req models.EmbeddingRequest) (models.EmbeddingResponse, error)

	// CreateImage generates images from a text prompt.
	CreateImage(ctx context.Context, req models.ImageGenerationRequest) (models.ImageResponse, error)

	// ModerateContent classifies inputs against the provider's content policy.
	ModerateContent(ctx context.Context, req models.ModerationRequest) (models.ModerationResponse, error)

	// ListModels returns every model visible to the configured API key.
	ListModels(ctx context.Context) (models.ModelList, error)

	// GetModel returns a single model. Unknown ids yield [ErrNotFound].
	GetModel(ctx context.Context, modelID string) (models.ModelInfo, error)
}
