package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-finance-advisor/internal/logger"
	"github.com/MKhiriev/go-finance-advisor/internal/utils"
	"github.com/MKhiriev/go-finance-advisor/models"
)

type apiClient struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// New returns a Client for the API at baseURL. A bare "host:port" is treated
// as http.
func New(baseURL string, timeout time.Duration, logger *logger.Logger) (Client, error) {
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	return &apiClient{
		client: utils.NewAPIClient(normalized, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
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

func (c *apiClient) SetToken(token string) {
	c.client.WithBearer(strings.TrimSpace(token))
}

func (c *apiClient) Register(ctx context.Context, request models.RegisterUserRequest) error {
	return c.do(ctx, "POST", "/auth/register", request, nil)
}

// Login stores the issued token for subsequent calls.
func (c *apiClient) Login(ctx context.Context, email, password string) (models.AuthResponse, error) {
	var response models.AuthResponse
	err := c.do(ctx, "POST", "/auth/login", models.LoginRequest{Email: email, Password: password}, &response)
	if err != nil {
		return models.AuthResponse{}, err
	}

	c.SetToken(response.AccessToken)
	return response, nil
}

func (c *apiClient) Me(ctx context.Context) (models.UserResponse, error) {
	var user models.UserResponse
	err := c.do(ctx, "GET", "/users/me", nil, &user)
	return user, err
}

func (c *apiClient) ListTodos(ctx context.Context) ([]models.Todo, error) {
	var todos []models.Todo
	err := c.do(ctx, "GET", "/todos", nil, &todos)
	return todos, err
}

func (c *apiClient) CreateTodo(ctx context.Context, request models.TodoCreateRequest) (models.Todo, error) {
	var todo models.Todo
	err := c.do(ctx, "POST", "/todos", request, &todo)
	return todo, err
}

func (c *apiClient) CompleteTodo(ctx context.Context, todoID uuid.UUID) (models.Todo, error) {
	var todo models.Todo
	err := c.do(ctx, "PUT", "/todos/"+todoID.String()+"/complete", nil, &todo)
	return todo, err
}

func (c *apiClient) DeleteTodo(ctx context.Context, todoID uuid.UUID) error {
	return c.do(ctx, "DELETE", "/todos/"+todoID.String(), nil, nil)
}

func (c *apiClient) Advice(ctx context.Context, request models.FinanceAdviceRequest) (models.ChatCompletionResponse, error) {
	var response models.ChatCompletionResponse
	err := c.do(ctx, "POST", "/api/v1/finance-advisor/advice", request, &response)
	return response, err
}

func (c *apiClient) AssessRisk(ctx context.Context, request models.RiskAssessmentRequest) (models.ChatCompletionResponse, error) {
	var response models.ChatCompletionResponse
	err := c.do(ctx, "POST", "/api/v1/finance-advisor/risk-assessment", request, &response)
	return response, err
}

func (c *apiClient) ExplainConcept(ctx context.Context, request models.ConceptExplanationRequest) (models.ChatCompletionResponse, error) {
	var response models.ChatCompletionResponse
	err := c.do(ctx, "POST", "/api/v1/finance-advisor/explain-concept", request, &response)
	return response, err
}

func (c *apiClient) AdvisorCapabilities(ctx context.Context) (models.AdvisorCapabilities, error) {
	var caps models.AdvisorCapabilities
	err := c.do(ctx, "GET", "/api/v1/finance-advisor/capabilities", nil, &caps)
	return caps, err
}

func (c *apiClient) AdvisorHealth(ctx context.Context) (models.HealthResponse, error) {
	var health models.HealthResponse
	err := c.do(ctx, "GET", "/api/v1/finance-advisor/health", nil, &health)
	return health, err
}

func (c *apiClient) ServerVersion(ctx context.Context) (string, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// do sends body as JSON and decodes a successful answer into result.
func (c *apiClient) do(ctx context.Context, method, path string, body, result any) error {
	req := c.client.R().SetContext(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s request: %w", method, path, err)
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("api call")

	return mapHTTPError(resp)
}
