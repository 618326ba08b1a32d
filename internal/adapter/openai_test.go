// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-finance-advisor/internal/config"
	"github.com/MKhiriev/go-finance-advisor/internal/logger"
	"github.com/MKhiriev/go-finance-advisor/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter returns an adapter pointed at the test server with fast retries.
func newTestAdapter(t *testing.T, serverURL string) *openAIAdapter {
	t.Helper()
	cfg := config.OpenAI{
		APIKey:       "sk-test",
		BaseURL:      serverURL,
		Organization: "org-test",
		Timeout:      5 * time.Second,
		MaxRetries:   3,
		RetryMinWait: time.Millisecond,
		RetryMaxWait: 5 * time.Millisecond,
	}

	a, err := NewOpenAIAdapter(cfg, logger.Nop())
	require.NoError(t, err)
	return a.(*openAIAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestNewOpenAIAdapter_NotConfigured(t *testing.T) {
	_, err := NewOpenAIAdapter(config.OpenAI{BaseURL: "https://api.openai.com/v1"}, logger.Nop())
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestNewOpenAIAdapter_InvalidBaseURL(t *testing.T) {
	_, err := NewOpenAIAdapter(config.OpenAI{APIKey: "k"}, logger.Nop())
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	got, err := normalizeBaseURL(" api.example.com/v1/ ")
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/v1", got)

	_, err = normalizeBaseURL("")
	assert.Error(t, err)
}

// ── Chat completions ────────────────────────────────────────────────────────

func TestCreateChatCompletion_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		assert.Equal(t, "org-test", r.Header.Get("OpenAI-Organization"))

		var req models.ChatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o", req.Model)
		require.Len(t, req.Messages, 1)

		writeJSON(t, w, http.StatusOK, models.ChatCompletionResponse{
			ID:    "chatcmpl-1",
			Model: "gpt-4o",
			Choices: []models.ChatCompletionChoice{
				{Message: models.ChatMessage{Role: models.RoleAssistant, Content: "hello"}, FinishReason: "stop"},
			},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL+"/v1")
	got, err := a.CreateChatCompletion(context.Background(), models.ChatCompletionRequest{
		Model:    "gpt-4o",
		Messages: []models.ChatMessage{{Role: models.RoleUser, Content: "hi"}},
	})

	require.NoError(t, err)
	require.Len(t, got.Choices, 1)
	assert.Equal(t, "hello", got.Choices[0].Message.Content)
}

func TestCreateChatCompletion_RetriesOnRateLimit(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			writeJSON(t, w, http.StatusTooManyRequests, map[string]any{"error": map[string]any{"message": "slow down"}})
			return
		}
		writeJSON(t, w, http.StatusOK, models.ChatCompletionResponse{ID: "ok"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.CreateChatCompletion(context.Background(), models.ChatCompletionRequest{})

	require.NoError(t, err)
	assert.Equal(t, "ok", got.ID)
	assert.Equal(t, int32(3), calls.Load())
}

func TestCreateChatCompletion_RateLimitExhausted(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(t, w, http.StatusTooManyRequests, map[string]any{"error": map[string]any{"message": "slow down"}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.CreateChatCompletion(context.Background(), models.ChatCompletionRequest{})

	require.ErrorIs(t, err, ErrRateLimited)
	assert.Contains(t, err.Error(), "slow down")
	assert.Equal(t, int32(3), calls.Load())
}

func TestCreateChatCompletion_NoRetryOnAuthError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(t, w, http.StatusUnauthorized, map[string]any{"error": map[string]any{"message": "bad key"}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.CreateChatCompletion(context.Background(), models.ChatCompletionRequest{})

	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, int32(1), calls.Load())
}

func TestCreateChatCompletion_ConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url)
	_, err := a.CreateChatCompletion(context.Background(), models.ChatCompletionRequest{})

	require.ErrorIs(t, err, ErrConnection)
}

// ── Embeddings / images / moderation ────────────────────────────────────────

func TestCreateEmbeddings_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/embeddings", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.EmbeddingResponse{
			Object: "list",
			Data:   []models.EmbeddingData{{Object: "embedding", Embedding: []float64{0.1, 0.2}}},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.CreateEmbeddings(context.Background(), models.EmbeddingRequest{Input: models.StringList{"hi"}})

	require.NoError(t, err)
	require.Len(t, got.Data, 1)
	assert.Equal(t, []float64{0.1, 0.2}, got.Data[0].Embedding)
}

func TestCreateImage_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/images/generations", r.URL.Path)
		writeJSON(t, w, http.StatusBadRequest, map[string]any{"error": map[string]any{"message": "prompt rejected"}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.CreateImage(context.Background(), models.ImageGenerationRequest{Prompt: "x"})

	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "prompt rejected")
}

func TestModerateContent_NotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.ModerateContent(context.Background(), models.ModerationRequest{Input: models.StringList{"x"}})

	require.ErrorIs(t, err, ErrRateLimited)
	assert.Equal(t, int32(1), calls.Load())
}

// ── Models ──────────────────────────────────────────────────────────────────

func TestListModels(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/models", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.ModelList{
			Object: "list",
			Data:   []models.ModelInfo{{ID: "gpt-4o"}, {ID: "o3-mini"}},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.ListModels(context.Background())

	require.NoError(t, err)
	assert.Len(t, got.Data, 2)
}

func TestGetModel_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/unknown", r.URL.Path)
		writeJSON(t, w, http.StatusNotFound, map[string]any{"error": map[string]any{"message": "no such model"}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetModel(context.Background(), "unknown")

	require.ErrorIs(t, err, ErrNotFound)
}

func TestProviderFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.ListModels(context.Background())

	require.ErrorIs(t, err, ErrProviderFailure)
	assert.Contains(t, err.Error(), "upstream down")
}

func TestRetryable(t *testing.T) {
	assert.True(t, retryable(ErrRateLimited))
	assert.True(t, retryable(errors.Join(errors.New("x"), ErrConnection)))
	assert.False(t, retryable(ErrUnauthorized))
	assert.False(t, retryable(ErrProviderFailure))
}
