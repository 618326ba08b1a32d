package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-finance-advisor/internal/validators"
	"github.com/MKhiriev/go-finance-advisor/models"
	"github.com/google/uuid"
)

// TodoValidationService checks owner ids and request bodies before handing
// them to the wrapped TodoService.
type TodoValidationService struct {
	inner     TodoService
	validator validators.Validator
}

func NewTodoValidationService() TodoServiceWrapper {
	return &TodoValidationService{
		validator: validators.NewTodoValidator(),
	}
}

func (v *TodoValidationService) CreateTodo(ctx context.Context, userID uuid.UUID, request models.TodoCreateRequest) (models.Todo, error) {
	if userID == uuid.Nil {
		return models.Todo{}, ErrNoUserID
	}
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Todo{}, fmt.Errorf("error during todo validation before saving: %w", err)
	}

	return v.inner.CreateTodo(ctx, userID, request)
}

func (v *TodoValidationService) GetTodos(ctx context.Context, userID uuid.UUID) ([]models.Todo, error) {
	if userID == uuid.Nil {
		return nil, ErrNoUserID
	}

	return v.inner.GetTodos(ctx, userID)
}

func (v *TodoValidationService) GetTodo(ctx context.Context, userID, todoID uuid.UUID) (models.Todo, error) {
	if err := v.validateIDs(ctx, userID, todoID); err != nil {
		return models.Todo{}, err
	}

	return v.inner.GetTodo(ctx, userID, todoID)
}

func (v *TodoValidationService) UpdateTodo(ctx context.Context, userID, todoID uuid.UUID, request models.TodoUpdateRequest) (models.Todo, error) {
	if err := v.validateIDs(ctx, userID, todoID); err != nil {
		return models.Todo{}, err
	}
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Todo{}, fmt.Errorf("error during todo validation before update: %w", err)
	}

	return v.inner.UpdateTodo(ctx, userID, todoID, request)
}

func (v *TodoValidationService) CompleteTodo(ctx context.Context, userID, todoID uuid.UUID) (models.Todo, error) {
	if err := v.validateIDs(ctx, userID, todoID); err != nil {
		return models.Todo{}, err
	}

	return v.inner.CompleteTodo(ctx, userID, todoID)
}

func (v *TodoValidationService) DeleteTodo(ctx context.Context, userID, todoID uuid.UUID) error {
	if err := v.validateIDs(ctx, userID, todoID); err != nil {
		return err
	}

	return v.inner.DeleteTodo(ctx, userID, todoID)
}

func (v *TodoValidationService) Wrap(wrapped TodoService) TodoService {
	v.inner = wrapped
	return v
}

func (v *TodoValidationService) validateIDs(ctx context.Context, userID, todoID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrNoUserID
	}

	return v.validator.Validate(ctx, models.Todo{ID: todoID, UserID: userID}, validators.FieldTodoID, validators.FieldUserID)
}
