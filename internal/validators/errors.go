package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrValidation is matched by every *ValidationError.
	ErrValidation = errors.New("validation failed")

	ErrInvalidUserID      = errors.New("invalid user ID")
	ErrInvalidTodoID      = errors.New("invalid todo ID")
	ErrEmptyDescription   = errors.New("description is required")
	ErrDescriptionTooLong = errors.New("description is too long")
	ErrInvalidPriority    = errors.New("invalid priority")
)
