package models

// Knowledge levels accepted by the concept explainer.
const (
	KnowledgeBeginner     = "beginner"
	KnowledgeIntermediate = "intermediate"
	KnowledgeAdvanced     = "advanced"
)

// FinanceAdviceRequest is the body of POST /api/v1/finance-advisor/advice.
type FinanceAdviceRequest struct {
	Query               string        `json:"query" validate:"required,max=4000"`
	Temperature         *float64      `json:"temperature,omitempty" validate:"omitempty,gte=0,lte=2"`
	ConversationHistory []ChatMessage `json:"conversation_history,omitempty" validate:"omitempty,dive"`
}

// RiskAssessmentRequest is the body of POST /api/v1/finance-advisor/risk-assessment.
type RiskAssessmentRequest struct {
	Answers map[string]any `json:"answers" validate:"required,min=1"`
}

// ConceptExplanationRequest is the body of POST /api/v1/finance-advisor/explain-concept.
type ConceptExplanationRequest struct {
	Concept        string `json:"concept" validate:"required,max=200"`
	KnowledgeLevel string `json:"knowledge_level,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`
}

// AdvisorCapabilities is the static capability sheet of the finance advisor.
type AdvisorCapabilities struct {
	Model              string            `json:"model"`
	Capabilities       []string          `json:"capabilities"`
	Specializations    []string          `json:"specializations"`
	Limitations        []string          `json:"limitations"`
	SupportedLanguages []string          `json:"supported_languages"`
	ResponseTime       string            `json:"response_time"`
	RateLimits         map[string]string `json:"rate_limits"`
}
