// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-finance-advisor/models"
)

// Client is the remote API as seen by command-line tools. Calls that need a
// user identity use the token set with SetToken.
type Client interface {
	SetToken(token string)

	Register(ctx context.Context, request models.RegisterUserRequest) error
	Login(ctx context.Context, email, password string) (models.AuthResponse, error)
	Me(ctx context.Context) (models.UserResponse, error)

	ListTodos(ctx context.Context) ([]models.Todo, error)
	CreateTodo(ctx context.Context, request models.TodoCreateRequest) (models.Todo, error)
	CompleteTodo(ctx context.Context, todoID uuid.UUID) (models.Todo, error)
	DeleteTodo(ctx context.Context, todoID uuid.UUID) error

	Advice(ctx context.Context, request models.FinanceAdviceRequest) (models.ChatCompletionResponse, error)
	AssessRisk(ctx context.Context, request models.RiskAssessmentRequest) (models.ChatCompletionResponse, error)
	ExplainConcept(ctx context.Context, request models.ConceptExplanationRequest) (models.ChatCompletionResponse, error)
	AdvisorCapabilities(ctx context.Context) (models.AdvisorCapabilities, error)
	AdvisorHealth(ctx context.Context) (models.HealthResponse, error)

	ServerVersion(ctx context.Context) (string, error)
}
