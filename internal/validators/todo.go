package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-finance-advisor/models"
	"github.com/google/uuid"
)

// Field name constants used to restrict TodoValidator to a subset of rules.
const (
	// FieldTodoID targets the todo identifier.
	FieldTodoID = "id"

	// FieldUserID targets the owner identifier.
	FieldUserID = "user_id"

	// FieldDescription targets the todo text. Blank text is rejected.
	FieldDescription = "description"

	// FieldPriority targets the priority enum.
	FieldPriority = "priority"
)

// MaxDescriptionLength is the longest accepted todo description, in runes.
const MaxDescriptionLength = 1000

// TodoValidator enforces the business rules of todos that struct tags
// cannot express (trimmed text, enum membership, ownership ids).
type TodoValidator struct {
}

// NewTodoValidator constructs a new TodoValidator and returns it as the
// Validator interface.
func NewTodoValidator() Validator {
	return &TodoValidator{}
}

// Validate dispatches on the dynamic type of obj. Supported types, by value
// or pointer: models.Todo, models.TodoCreateRequest, models.TodoUpdateRequest.
func (v *TodoValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Todo:
		return v.validateTodo(ctx, value, fields...)
	case *models.Todo:
		return v.validateTodo(ctx, *value, fields...)
	case models.TodoCreateRequest:
		return v.validateCreateRequest(ctx, value, fields...)
	case *models.TodoCreateRequest:
		return v.validateCreateRequest(ctx, *value, fields...)
	case models.TodoUpdateRequest:
		return v.validateUpdateRequest(ctx, value, fields...)
	case *models.TodoUpdateRequest:
		return v.validateUpdateRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *TodoValidator) validateTodo(_ context.Context, todo models.Todo, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTodoID, FieldUserID, FieldDescription, FieldPriority}
	}

	for _, f := range fields {
		switch f {
		case FieldTodoID:
			if todo.ID == uuid.Nil {
				return ErrInvalidTodoID
			}
		case FieldUserID:
			if todo.UserID == uuid.Nil {
				return ErrInvalidUserID
			}
		case FieldDescription:
			if err := validateDescription(todo.Description); err != nil {
				return err
			}
		case FieldPriority:
			if !todo.Priority.Valid() {
				return ErrInvalidPriority
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *TodoValidator) validateCreateRequest(_ context.Context, request models.TodoCreateRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDescription, FieldPriority}
	}

	for _, f := range fields {
		switch f {
		case FieldDescription:
			if err := validateDescription(request.Description); err != nil {
				return err
			}
		case FieldPriority:
			if request.Priority != nil && !request.Priority.Valid() {
				return ErrInvalidPriority
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *TodoValidator) validateUpdateRequest(_ context.Context, request models.TodoUpdateRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDescription, FieldPriority}
	}

	for _, f := range fields {
		switch f {
		case FieldDescription:
			if request.Description != nil {
				if err := validateDescription(*request.Description); err != nil {
					return err
				}
			}
		case FieldPriority:
			if request.Priority != nil && !request.Priority.Valid() {
				return ErrInvalidPriority
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return ErrEmptyDescription
	}
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	return nil
}
