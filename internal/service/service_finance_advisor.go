package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-finance-advisor/internal/logger"
	"github.com/MKhiriev/go-finance-advisor/models"
)

// AdvisorModel is the model every advisor conversation runs on.
const AdvisorModel = "o3-mini"

// Per-client limits of the advisor endpoints, in ratelimit.ParseLimit form.
const (
	AdviceRateLimit         = "15/minute"
	RiskAssessmentRateLimit = "10/minute"
	ConceptRateLimit        = "20/minute"
)

const (
	// historyWindow is how many trailing history messages reach the model.
	historyWindow = 10

	adviceTemperature  = 0.7
	adviceMaxTokens    = 2000
	riskTemperature    = 0.3
	riskMaxTokens      = 1500
	conceptTemperature = 0.5
	conceptMaxTokens   = 1500
)

type financeAdvisorService struct {
	llm LLMService
	now func() time.Time

	logger *logger.Logger
}

func NewFinanceAdvisorService(llm LLMService, logger *logger.Logger) FinanceAdvisorService {
	return &financeAdvisorService{
		llm:    llm,
		now:    time.Now,
		logger: logger,
	}
}

// GetAdvice answers query in the advisor persona and appends the safety
// disclaimer to the first choice.
func (s *financeAdvisorService) GetAdvice(ctx context.Context, request models.FinanceAdviceRequest) (models.ChatCompletionResponse, error) {
	log := logger.FromContext(ctx)
	log.Info().
		Int("history", len(request.ConversationHistory)).
		Msg("processing financial advice request")

	temperature := adviceTemperature
	if request.Temperature != nil {
		temperature = *request.Temperature
	}

	history := request.ConversationHistory
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}

	messages := make([]models.ChatMessage, 0, len(history)+2)
	messages = append(messages, models.ChatMessage{Role: models.RoleSystem, Content: advicePrompt(request.Query)})
	messages = append(messages, history...)
	messages = append(messages, models.ChatMessage{Role: models.RoleUser, Content: request.Query})

	response, err := s.complete(ctx, messages, temperature, adviceMaxTokens)
	if err != nil {
		log.Err(err).Msg("error generating financial advice")
		return models.ChatCompletionResponse{}, err
	}

	if len(response.Choices) > 0 {
		response.Choices[0].Message.Content += safetyDisclaimer
	}

	log.Info().Msg("financial advice generated")
	return response, nil
}

func (s *financeAdvisorService) AssessRiskProfile(ctx context.Context, request models.RiskAssessmentRequest) (models.ChatCompletionResponse, error) {
	log := logger.FromContext(ctx)

	prompt, err := riskAssessmentPrompt(request.Answers)
	if err != nil {
		return models.ChatCompletionResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	response, err := s.complete(ctx, []models.ChatMessage{
		{Role: models.RoleSystem, Content: advisorSystemInstructions},
		{Role: models.RoleUser, Content: prompt},
	}, riskTemperature, riskMaxTokens)
	if err != nil {
		log.Err(err).Msg("error assessing risk profile")
		return models.ChatCompletionResponse{}, err
	}

	log.Info().Msg("risk profile assessment completed")
	return response, nil
}

// ExplainConcept defaults the knowledge level to beginner.
func (s *financeAdvisorService) ExplainConcept(ctx context.Context, request models.ConceptExplanationRequest) (models.ChatCompletionResponse, error) {
	level := request.KnowledgeLevel
	if level == "" {
		level = models.KnowledgeBeginner
	}

	log := logger.FromContext(ctx)
	log.Info().Str("concept", request.Concept).Str("level", level).Msg("explaining financial concept")

	response, err := s.complete(ctx, []models.ChatMessage{
		{Role: models.RoleSystem, Content: advisorSystemInstructions},
		{Role: models.RoleUser, Content: conceptExplanationPrompt(request.Concept, level)},
	}, conceptTemperature, conceptMaxTokens)
	if err != nil {
		log.Err(err).Msg("error explaining financial concept")
		return models.ChatCompletionResponse{}, err
	}

	return response, nil
}

func (s *financeAdvisorService) Health(ctx context.Context) models.HealthResponse {
	health := models.HealthResponse{
		Status:    StatusHealthy,
		Timestamp: s.now().UTC().Format(timestampLayout),
		Version:   AdvisorModel,
	}

	if err := s.llm.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Msg("finance advisor health check failed")
		health.Status = StatusUnhealthy
		health.Version = ""
	}

	return health
}

func (s *financeAdvisorService) Capabilities(_ context.Context) models.AdvisorCapabilities {
	return models.AdvisorCapabilities{
		Model: AdvisorModel,
		Capabilities: []string{
			"Financial planning advice",
			"Investment education",
			"Risk assessment",
			"Debt management guidance",
			"Budgeting assistance",
			"Retirement planning",
			"Concept explanations",
			"Market education",
		},
		Specializations: []string{
			"Personal finance",
			"Investment basics",
			"Risk management",
			"Financial literacy",
			"Long-term planning",
		},
		Limitations: []string{
			"Not a licensed financial advisor",
			"Cannot give personalized investment recommendations",
			"Cannot guarantee returns",
			"Users should consult professionals",
			"Educational and informational purposes only",
		},
		SupportedLanguages: []string{"English"},
		ResponseTime:       "Typically 2-5 seconds",
		RateLimits: map[string]string{
			"advice":              describeRate(AdviceRateLimit),
			"risk_assessment":     describeRate(RiskAssessmentRateLimit),
			"concept_explanation": describeRate(ConceptRateLimit),
		},
	}
}

func (s *financeAdvisorService) complete(ctx context.Context, messages []models.ChatMessage, temperature float64, maxTokens int) (models.ChatCompletionResponse, error) {
	return s.llm.CreateChatCompletion(ctx, models.ChatCompletionRequest{
		Messages:    messages,
		Model:       AdvisorModel,
		Temperature: &temperature,
		MaxTokens:   &maxTokens,
	})
}

// describeRate turns "15/minute" into "15 requests/minute".
func describeRate(limit string) string {
	return strings.Replace(limit, "/", " requests/", 1)
}
