// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-finance-advisor/internal/config"
	"github.com/MKhiriev/go-finance-advisor/internal/logger"
	"github.com/MKhiriev/go-finance-advisor/internal/metrics"
	"github.com/MKhiriev/go-finance-advisor/internal/ratelimit"
	"github.com/MKhiriev/go-finance-advisor/internal/service"
	"github.com/MKhiriev/go-finance-advisor/models"
)

// ─────────────────────────────────────────────
// Fake services
// ─────────────────────────────────────────────

// Every fake method falls back to a zero result when its fn field is nil.

type fakeAuthService struct {
	registerUserFn func(ctx context.Context, request models.RegisterUserRequest) (models.User, error)
	loginFn        func(ctx context.Context, email, password string) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (f *fakeAuthService) RegisterUser(ctx context.Context, request models.RegisterUserRequest) (models.User, error) {
	if f.registerUserFn == nil {
		return models.User{}, nil
	}
	return f.registerUserFn(ctx, request)
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	if f.loginFn == nil {
		return models.User{}, nil
	}
	return f.loginFn(ctx, email, password)
}

func (f *fakeAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if f.createTokenFn == nil {
		return models.Token{SignedString: "signed-token", UserID: user.ID}, nil
	}
	return f.createTokenFn(ctx, user)
}

func (f *fakeAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if f.parseTokenFn == nil {
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}
	return f.parseTokenFn(ctx, tokenString)
}

type fakeUserService struct {
	getUserFn        func(ctx context.Context, userID uuid.UUID) (models.User, error)
	changePasswordFn func(ctx context.Context, userID uuid.UUID, request models.PasswordChangeRequest) error
}

func (f *fakeUserService) GetUser(ctx context.Context, userID uuid.UUID) (models.User, error) {
	if f.getUserFn == nil {
		return models.User{}, nil
	}
	return f.getUserFn(ctx, userID)
}

func (f *fakeUserService) ChangePassword(ctx context.Context, userID uuid.UUID, request models.PasswordChangeRequest) error {
	if f.changePasswordFn == nil {
		return nil
	}
	return f.changePasswordFn(ctx, userID, request)
}

type fakeTodoService struct {
	createTodoFn   func(ctx context.Context, userID uuid.UUID, request models.TodoCreateRequest) (models.Todo, error)
	getTodosFn     func(ctx context.Context, userID uuid.UUID) ([]models.Todo, error)
	getTodoFn      func(ctx context.Context, userID, todoID uuid.UUID) (models.Todo, error)
	updateTodoFn   func(ctx context.Context, userID, todoID uuid.UUID, request models.TodoUpdateRequest) (models.Todo, error)
	completeTodoFn func(ctx context.Context, userID, todoID uuid.UUID) (models.Todo, error)
	deleteTodoFn   func(ctx context.Context, userID, todoID uuid.UUID) error
}

func (f *fakeTodoService) CreateTodo(ctx context.Context, userID uuid.UUID, request models.TodoCreateRequest) (models.Todo, error) {
	if f.createTodoFn == nil {
		return models.Todo{}, nil
	}
	return f.createTodoFn(ctx, userID, request)
}

func (f *fakeTodoService) GetTodos(ctx context.Context, userID uuid.UUID) ([]models.Todo, error) {
	if f.getTodosFn == nil {
		return nil, nil
	}
	return f.getTodosFn(ctx, userID)
}

func (f *fakeTodoService) GetTodo(ctx context.Context, userID, todoID uuid.UUID) (models.Todo, error) {
	if f.getTodoFn == nil {
		return models.Todo{}, nil
	}
	return f.getTodoFn(ctx, userID, todoID)
}

func (f *fakeTodoService) UpdateTodo(ctx context.Context, userID, todoID uuid.UUID, request models.TodoUpdateRequest) (models.Todo, error) {
	if f.updateTodoFn == nil {
		return models.Todo{}, nil
	}
	return f.updateTodoFn(ctx, userID, todoID, request)
}

func (f *fakeTodoService) CompleteTodo(ctx context.Context, userID, todoID uuid.UUID) (models.Todo, error) {
	if f.completeTodoFn == nil {
		return models.Todo{}, nil
	}
	return f.completeTodoFn(ctx, userID, todoID)
}

func (f *fakeTodoService) DeleteTodo(ctx context.Context, userID, todoID uuid.UUID) error {
	if f.deleteTodoFn == nil {
		return nil
	}
	return f.deleteTodoFn(ctx, userID, todoID)
}

type fakeLLMService struct {
	chatFn       func(ctx context.Context, request models.ChatCompletionRequest) (models.ChatCompletionResponse, error)
	embeddingsFn func(ctx context.Context, request models.EmbeddingRequest) (models.EmbeddingResponse, error)
	imageFn      func(ctx context.Context, request models.ImageGenerationRequest) (models.ImageResponse, error)
	moderateFn   func(ctx context.Context, request models.ModerationRequest) (models.ModerationResponse, error)
	listModelsFn func(ctx context.Context) (models.ModelList, error)
	getModelFn   func(ctx context.Context, modelID string) (models.ModelInfo, error)
	pingFn       func(ctx context.Context) error
	health       models.HealthResponse
}

func (f *fakeLLMService) CreateChatCompletion(ctx context.Context, request models.ChatCompletionRequest) (models.ChatCompletionResponse, error) {
	if f.chatFn == nil {
		return models.ChatCompletionResponse{}, nil
	}
	return f.chatFn(ctx, request)
}

func (f *fakeLLMService) CreateEmbeddings(ctx context.Context, request models.EmbeddingRequest) (models.EmbeddingResponse, error) {
	if f.embeddingsFn == nil {
		return models.EmbeddingResponse{}, nil
	}
	return f.embeddingsFn(ctx, request)
}

func (f *fakeLLMService) CreateImage(ctx context.Context, request models.ImageGenerationRequest) (models.ImageResponse, error) {
	if f.imageFn == nil {
		return models.ImageResponse{}, nil
	}
	return f.imageFn(ctx, request)
}

func (f *fakeLLMService) ModerateContent(ctx context.Context, request models.ModerationRequest) (models.ModerationResponse, error) {
	if f.moderateFn == nil {
		return models.ModerationResponse{}, nil
	}
	return f.moderateFn(ctx, request)
}

func (f *fakeLLMService) ListModels(ctx context.Context) (models.ModelList, error) {
	if f.listModelsFn == nil {
		return models.ModelList{}, nil
	}
	return f.listModelsFn(ctx)
}

func (f *fakeLLMService) GetModel(ctx context.Context, modelID string) (models.ModelInfo, error) {
	if f.getModelFn == nil {
		return models.ModelInfo{ID: modelID}, nil
	}
	return f.getModelFn(ctx, modelID)
}

func (f *fakeLLMService) Ping(ctx context.Context) error {
	if f.pingFn == nil {
		return nil
	}
	return f.pingFn(ctx)
}

func (f *fakeLLMService) Health(context.Context) models.HealthResponse {
	return f.health
}

type fakeAdvisorService struct {
	adviceFn  func(ctx context.Context, request models.FinanceAdviceRequest) (models.ChatCompletionResponse, error)
	riskFn    func(ctx context.Context, request models.RiskAssessmentRequest) (models.ChatCompletionResponse, error)
	explainFn func(ctx context.Context, request models.ConceptExplanationRequest) (models.ChatCompletionResponse, error)
	health    models.HealthResponse
	caps      models.AdvisorCapabilities
}

func (f *fakeAdvisorService) GetAdvice(ctx context.Context, request models.FinanceAdviceRequest) (models.ChatCompletionResponse, error) {
	if f.adviceFn == nil {
		return models.ChatCompletionResponse{}, nil
	}
	return f.adviceFn(ctx, request)
}

func (f *fakeAdvisorService) AssessRiskProfile(ctx context.Context, request models.RiskAssessmentRequest) (models.ChatCompletionResponse, error) {
	if f.riskFn == nil {
		return models.ChatCompletionResponse{}, nil
	}
	return f.riskFn(ctx, request)
}

func (f *fakeAdvisorService) ExplainConcept(ctx context.Context, request models.ConceptExplanationRequest) (models.ChatCompletionResponse, error) {
	if f.explainFn == nil {
		return models.ChatCompletionResponse{}, nil
	}
	return f.explainFn(ctx, request)
}

func (f *fakeAdvisorService) Health(context.Context) models.HealthResponse {
	return f.health
}

func (f *fakeAdvisorService) Capabilities(context.Context) models.AdvisorCapabilities {
	return f.caps
}

type fakeAppInfoService struct {
	version string
	root    models.RootResponse
	info    models.InfoResponse
}

func (f *fakeAppInfoService) GetAppVersion(context.Context) string { return f.version }
func (f *fakeAppInfoService) GetRoot(context.Context) models.RootResponse { return f.root }
func (f *fakeAppInfoService) GetInfo(context.Context) models.InfoResponse { return f.info }

type fakeHealthService struct {
	checkFn func(ctx context.Context) (models.DatabaseHealth, error)
}

func (f *fakeHealthService) CheckDatabase(ctx context.Context) (models.DatabaseHealth, error) {
	if f.checkFn == nil {
		return models.DatabaseHealth{Status: "ok", Database: "connected"}, nil
	}
	return f.checkFn(ctx)
}

// fakeLimiter returns scripted results and records the keys it was asked for.
type fakeLimiter struct {
	mu     sync.Mutex
	keys   []string
	allow  func(key string, limit ratelimit.Limit) (ratelimit.Result, error)
	closed bool
}

func (f *fakeLimiter) Allow(_ context.Context, key string, limit ratelimit.Limit) (ratelimit.Result, error) {
	f.mu.Lock()
	f.keys = append(f.keys, key)
	f.mu.Unlock()

	if f.allow == nil {
		return ratelimit.Result{Allowed: true, Limit: limit.Requests, Remaining: limit.Requests - 1}, nil
	}
	return f.allow(key, limit)
}

func (f *fakeLimiter) Close() error {
	f.closed = true
	return nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

var testUserID = uuid.MustParse("0190a8c4-8f3e-7a4b-9c2d-1e2f3a4b5c6d")

const validToken = "valid-token"

// testDeps bundles the fakes behind a Handler so tests can script them.
type testDeps struct {
	auth    *fakeAuthService
	users   *fakeUserService
	todos   *fakeTodoService
	llm     *fakeLLMService
	advisor *fakeAdvisorService
	appInfo *fakeAppInfoService
	health  *fakeHealthService
	limiter *fakeLimiter
	metrics *metrics.Metrics
}

func newTestDeps() *testDeps {
	return &testDeps{
		auth: &fakeAuthService{
			parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
				if tokenString != validToken {
					return models.Token{}, service.ErrTokenIsExpiredOrInvalid
				}
				return models.Token{UserID: testUserID, SignedString: tokenString}, nil
			},
		},
		users:   &fakeUserService{},
		todos:   &fakeTodoService{},
		llm:     &fakeLLMService{},
		advisor: &fakeAdvisorService{},
		appInfo: &fakeAppInfoService{version: "1.2.3"},
		health:  &fakeHealthService{},
		limiter: &fakeLimiter{},
		metrics: metrics.New(),
	}
}

func (d *testDeps) handler() *Handler {
	svcs := &service.Services{
		AuthService:           d.auth,
		UserService:           d.users,
		TodoService:           d.todos,
		LLMService:            d.llm,
		FinanceAdvisorService: d.advisor,
		AppInfoService:        d.appInfo,
		HealthService:         d.health,
	}

	var limiter ratelimit.Store
	if d.limiter != nil {
		limiter = d.limiter
	}

	return NewHandler(svcs, limiter, d.metrics, config.Server{CORSOrigins: []string{"http://localhost:3000"}}, logger.Nop())
}

func (d *testDeps) router() http.Handler {
	return d.handler().Init()
}

// do sends a request through the full router.
func do(t *testing.T, router http.Handler, method, target, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// doAuthed is do with a valid bearer token.
func doAuthed(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	return do(t, router, method, target, body, "Authorization", "Bearer "+validToken)
}
