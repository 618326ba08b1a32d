package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-finance-advisor/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID uuid.UUID) (models.User, error)
	UpdatePasswordHash(ctx context.Context, userID uuid.UUID, passwordHash string) error
}

// TodoRepository persists todos. Every method is scoped by the owner id.
type TodoRepository interface {
	CreateTodo(ctx context.Context, todo models.Todo) (models.Todo, error)
	GetTodos(ctx context.Context, userID uuid.UUID) ([]models.Todo, error)
	GetTodo(ctx context.Context, userID, todoID uuid.UUID) (models.Todo, error)
	UpdateTodo(ctx context.Context, userID, todoID uuid.UUID, update models.TodoUpdateRequest) (models.Todo, error)
	CompleteTodo(ctx context.Context, userID, todoID uuid.UUID, completedAt time.Time) (models.Todo, error)
	DeleteTodo(ctx context.Context, userID, todoID uuid.UUID) error
}

// Database is the part of [DB] used by health and info endpoints.
type Database interface {
	Ping(ctx context.Context) error
	Version(ctx context.Context) (string, error)
	Info(ctx context.Context) models.DatabaseInfo
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
