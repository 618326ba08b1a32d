package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-finance-advisor/internal/adapter"
	"github.com/MKhiriev/go-finance-advisor/internal/logger"
	"github.com/MKhiriev/go-finance-advisor/internal/mock"
	"github.com/MKhiriev/go-finance-advisor/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAdvisor(t *testing.T) (*financeAdvisorService, *mock.MockLLMProvider) {
	t.Helper()

	llm, provider, _ := newTestLLMService(t, 0)
	advisor := NewFinanceAdvisorService(llm, logger.Nop()).(*financeAdvisorService)
	advisor.now = func() time.Time { return fixedNow }

	return advisor, provider
}

func completion(content string) models.ChatCompletionResponse {
	return models.ChatCompletionResponse{
		ID:      "chatcmpl-1",
		Model:   AdvisorModel,
		Choices: []models.ChatCompletionChoice{{Message: models.ChatMessage{Role: models.RoleAssistant, Content: content}}},
	}
}

// ─────────────────────────────────────────────
// GetAdvice
// ─────────────────────────────────────────────

func TestGetAdvice_BuildsConversation(t *testing.T) {
	advisor, provider := newTestAdvisor(t)

	history := make([]models.ChatMessage, 0, 12)
	for i := range 12 {
		history = append(history, models.ChatMessage{Role: models.RoleUser, Content: fmt.Sprintf("msg %d", i)})
	}

	provider.EXPECT().CreateChatCompletion(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.ChatCompletionRequest) (models.ChatCompletionResponse, error) {
			assert.Equal(t, AdvisorModel, req.Model)
			assert.Equal(t, 0.7, *req.Temperature)
			assert.Equal(t, 2000, *req.MaxTokens)

			require.Len(t, req.Messages, 12)
			assert.Equal(t, models.RoleSystem, req.Messages[0].Role)
			assert.Contains(t, req.Messages[0].Content, "For investment-related questions:")
			assert.Equal(t, "msg 2", req.Messages[1].Content)
			assert.Equal(t, "msg 11", req.Messages[10].Content)
			assert.Equal(t, models.ChatMessage{Role: models.RoleUser, Content: "Should I buy stocks?"}, req.Messages[11])

			return completion("Diversify."), nil
		})

	resp, err := advisor.GetAdvice(context.Background(), models.FinanceAdviceRequest{
		Query:               "Should I buy stocks?",
		ConversationHistory: history,
	})

	require.NoError(t, err)
	assert.Equal(t, "Diversify."+safetyDisclaimer, resp.Choices[0].Message.Content)
	assert.True(t, strings.HasPrefix(safetyDisclaimer, "\n\n---\n\n**Important Disclaimers:**"))
}

func TestGetAdvice_CustomTemperature(t *testing.T) {
	advisor, provider := newTestAdvisor(t)
	temperature := 1.2

	provider.EXPECT().CreateChatCompletion(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.ChatCompletionRequest) (models.ChatCompletionResponse, error) {
			assert.Equal(t, 1.2, *req.Temperature)
			assert.Len(t, req.Messages, 2)
			return models.ChatCompletionResponse{}, nil
		})

	resp, err := advisor.GetAdvice(context.Background(), models.FinanceAdviceRequest{Query: "hello", Temperature: &temperature})

	require.NoError(t, err)
	assert.Empty(t, resp.Choices)
}

func TestGetAdvice_ProviderError(t *testing.T) {
	advisor, provider := newTestAdvisor(t)

	provider.EXPECT().CreateChatCompletion(gomock.Any(), gomock.Any()).
		Return(models.ChatCompletionResponse{}, adapter.ErrRateLimited)

	_, err := advisor.GetAdvice(context.Background(), models.FinanceAdviceRequest{Query: "hello"})

	assert.ErrorIs(t, err, adapter.ErrRateLimited)
}

// ─────────────────────────────────────────────
// AssessRiskProfile / ExplainConcept
// ─────────────────────────────────────────────

func TestAssessRiskProfile(t *testing.T) {
	advisor, provider := newTestAdvisor(t)

	provider.EXPECT().CreateChatCompletion(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.ChatCompletionRequest) (models.ChatCompletionResponse, error) {
			assert.Equal(t, 0.3, *req.Temperature)
			assert.Equal(t, 1500, *req.MaxTokens)
			require.Len(t, req.Messages, 2)
			assert.Equal(t, advisorSystemInstructions, req.Messages[0].Content)
			assert.Contains(t, req.Messages[1].Content, "{\n  \"age\": 40\n}")
			return completion("Moderate"), nil
		})

	resp, err := advisor.AssessRiskProfile(context.Background(), models.RiskAssessmentRequest{
		Answers: map[string]any{"age": 40},
	})

	require.NoError(t, err)
	assert.Equal(t, "Moderate", resp.Choices[0].Message.Content)
}

func TestExplainConcept_DefaultLevel(t *testing.T) {
	advisor, provider := newTestAdvisor(t)

	provider.EXPECT().CreateChatCompletion(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.ChatCompletionRequest) (models.ChatCompletionResponse, error) {
			assert.Equal(t, 0.5, *req.Temperature)
			assert.Equal(t, 1500, *req.MaxTokens)
			assert.Contains(t, req.Messages[1].Content, `"ETF" to a beginner level investor`)
			return completion("An ETF is..."), nil
		})

	_, err := advisor.ExplainConcept(context.Background(), models.ConceptExplanationRequest{Concept: "ETF"})
	require.NoError(t, err)
}

// ─────────────────────────────────────────────
// Health / Capabilities
// ─────────────────────────────────────────────

func TestAdvisorHealth(t *testing.T) {
	advisor, provider := newTestAdvisor(t)

	provider.EXPECT().ListModels(gomock.Any()).Return(models.ModelList{}, nil)
	assert.Equal(t, models.HealthResponse{
		Status:    StatusHealthy,
		Timestamp: "2026-03-01T12:00:00.000000",
		Version:   AdvisorModel,
	}, advisor.Health(context.Background()))

	provider.EXPECT().ListModels(gomock.Any()).Return(models.ModelList{}, errors.New("down"))
	unhealthy := advisor.Health(context.Background())
	assert.Equal(t, StatusUnhealthy, unhealthy.Status)
	assert.Empty(t, unhealthy.Version)
}

func TestCapabilities(t *testing.T) {
	advisor, _ := newTestAdvisor(t)

	caps := advisor.Capabilities(context.Background())

	assert.Equal(t, AdvisorModel, caps.Model)
	assert.Len(t, caps.Capabilities, 8)
	assert.Equal(t, []string{"English"}, caps.SupportedLanguages)
	assert.Equal(t, map[string]string{
		"advice":              "15 requests/minute",
		"risk_assessment":     "10 requests/minute",
		"concept_explanation": "20 requests/minute",
	}, caps.RateLimits)
}
