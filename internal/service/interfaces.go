package service

import (
	"context"

	"github.com/MKhiriev/go-finance-advisor/models"
	"github.com/google/uuid"
)

type AuthService interface {
	RegisterUser(ctx context.Context, request models.RegisterUserRequest) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type UserService interface {
	GetUser(ctx context.Context, userID uuid.UUID) (models.User, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, request models.PasswordChangeRequest) error
}

// TodoService manages the todos of a single owner. Every method is scoped by
// userID; a todo of another owner is reported as not found.
type TodoService interface {
	CreateTodo(ctx context.Context, userID uuid.UUID, request models.TodoCreateRequest) (models.Todo, error)
	GetTodos(ctx context.Context, userID uuid.UUID) ([]models.Todo, error)
	GetTodo(ctx context.Context, userID, todoID uuid.UUID) (models.Todo, error)
	UpdateTodo(ctx context.Context, userID, todoID uuid.UUID, request models.TodoUpdateRequest) (models.Todo, error)
	CompleteTodo(ctx context.Context, userID, todoID uuid.UUID) (models.Todo, error)
	DeleteTodo(ctx context.Context, userID, todoID uuid.UUID) error
}

// TodoServiceWrapper defines middleware composition for TodoService.
// Implementations wrap an existing TodoService to add behavior such as
// logging or validating.
type TodoServiceWrapper interface {
	Wrap(TodoService) TodoService // returns a decorated TodoService applying additional behavior
}

// LLMService applies request defaults on top of the provider and caches the
// model listing. All methods fail with adapter.ErrNotConfigured while no API
// key is set.
type LLMService interface {
	CreateChatCompletion(ctx context.Context, request models.ChatCompletionRequest) (models.ChatCompletionResponse, error)
	CreateEmbeddings(ctx context.Context, request models.EmbeddingRequest) (models.EmbeddingResponse, error)
	CreateImage(ctx context.Context, request models.ImageGenerationRequest) (models.ImageResponse, error)
	ModerateContent(ctx context.Context, request models.ModerationRequest) (models.ModerationResponse, error)
	ListModels(ctx context.Context) (models.ModelList, error)
	GetModel(ctx context.Context, modelID string) (models.ModelInfo, error)

	// Ping succeeds when the provider answers a model listing.
	Ping(ctx context.Context) error
	Health(ctx context.Context) models.HealthResponse
}

type FinanceAdvisorService interface {
	GetAdvice(ctx context.Context, request models.FinanceAdviceRequest) (models.ChatCompletionResponse, error)
	AssessRiskProfile(ctx context.Context, request models.RiskAssessmentRequest) (models.ChatCompletionResponse, error)
	ExplainConcept(ctx context.Context, request models.ConceptExplanationRequest) (models.ChatCompletionResponse, error)
	Health(ctx context.Context) models.HealthResponse
	Capabilities(ctx context.Context) models.AdvisorCapabilities
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetRoot(ctx context.Context) models.RootResponse
	GetInfo(ctx context.Context) models.InfoResponse
}

type HealthService interface {
	// CheckDatabase runs a trivial query. The returned body is meaningful
	// on both success and ErrDatabaseUnavailable.
	CheckDatabase(ctx context.Context) (models.DatabaseHealth, error)
}
