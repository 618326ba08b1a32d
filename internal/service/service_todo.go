package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-finance-advisor/internal/logger"
	"github.com/MKhiriev/go-finance-advisor/internal/store"
	"github.com/MKhiriev/go-finance-advisor/internal/utils"
	"github.com/MKhiriev/go-finance-advisor/models"
	"github.com/google/uuid"
)

type todoService struct {
	todoRepository store.TodoRepository
	ids            *utils.UUIDGenerator
	now            func() time.Time

	logger *logger.Logger
}

func NewTodoService(todoRepository store.TodoRepository, logger *logger.Logger) TodoService {
	return &todoService{
		todoRepository: todoRepository,
		ids:            utils.NewUUIDGenerator(),
		now:            time.Now,
		logger:         logger,
	}
}

// CreateTodo stores a new todo for userID. A missing priority becomes Medium.
func (s *todoService) CreateTodo(ctx context.Context, userID uuid.UUID, request models.TodoCreateRequest) (models.Todo, error) {
	log := logger.FromContext(ctx)

	priority := models.PriorityMedium
	if request.Priority != nil {
		priority = *request.Priority
	}

	todo := models.Todo{
		ID:          s.ids.Generate(),
		UserID:      userID,
		Description: strings.TrimSpace(request.Description),
		DueDate:     utcOrNil(request.DueDate),
		CreatedAt:   s.now().UTC(),
		Priority:    priority,
	}

	created, err := s.todoRepository.CreateTodo(ctx, todo)
	if err != nil {
		log.Err(err).Str("user_id", userID.String()).Msg("todo creation failed")
		return models.Todo{}, fmt.Errorf("todo creation failed: %w", err)
	}

	log.Info().Str("user_id", userID.String()).Str("todo_id", created.ID.String()).Msg("todo created")
	return created, nil
}

func (s *todoService) GetTodos(ctx context.Context, userID uuid.UUID) ([]models.Todo, error) {
	todos, err := s.todoRepository.GetTodos(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", userID.String()).Msg("todo listing failed")
		return nil, fmt.Errorf("todo listing failed: %w", err)
	}

	return todos, nil
}

func (s *todoService) GetTodo(ctx context.Context, userID, todoID uuid.UUID) (models.Todo, error) {
	todo, err := s.todoRepository.GetTodo(ctx, userID, todoID)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("user_id", userID.String()).
			Str("todo_id", todoID.String()).
			Msg("todo lookup failed")
		return models.Todo{}, fmt.Errorf("todo lookup failed: %w", err)
	}

	return todo, nil
}

// UpdateTodo applies only the fields present in request. An empty request
// returns the todo unchanged.
func (s *todoService) UpdateTodo(ctx context.Context, userID, todoID uuid.UUID, request models.TodoUpdateRequest) (models.Todo, error) {
	if request.Empty() {
		return s.GetTodo(ctx, userID, todoID)
	}

	if request.Description != nil {
		trimmed := strings.TrimSpace(*request.Description)
		request.Description = &trimmed
	}
	if request.DueDate.Set {
		request.DueDate.Time = utcOrNil(request.DueDate.Time)
	}

	todo, err := s.todoRepository.UpdateTodo(ctx, userID, todoID, request)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("user_id", userID.String()).
			Str("todo_id", todoID.String()).
			Msg("todo update failed")
		return models.Todo{}, fmt.Errorf("todo update failed: %w", err)
	}

	return todo, nil
}

// CompleteTodo marks the todo done. Completing twice keeps the first
// completed_at.
func (s *todoService) CompleteTodo(ctx context.Context, userID, todoID uuid.UUID) (models.Todo, error) {
	log := logger.FromContext(ctx)

	todo, err := s.todoRepository.CompleteTodo(ctx, userID, todoID, s.now().UTC())
	if err != nil {
		log.Err(err).Str("user_id", userID.String()).Str("todo_id", todoID.String()).Msg("todo completion failed")
		return models.Todo{}, fmt.Errorf("todo completion failed: %w", err)
	}

	log.Info().Str("user_id", userID.String()).Str("todo_id", todoID.String()).Msg("todo completed")
	return todo, nil
}

func (s *todoService) DeleteTodo(ctx context.Context, userID, todoID uuid.UUID) error {
	log := logger.FromContext(ctx)

	if err := s.todoRepository.DeleteTodo(ctx, userID, todoID); err != nil {
		log.Err(err).Str("user_id", userID.String()).Str("todo_id", todoID.String()).Msg("todo deletion failed")
		return fmt.Errorf("todo deletion failed: %w", err)
	}

	log.Info().Str("user_id", userID.String()).Str("todo_id", todoID.String()).Msg("todo deleted")
	return nil
}

func utcOrNil(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	utc := t.UTC()
	return &utc
}
