package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-finance-advisor/internal/validators"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

// decodeJSON reads the body into dst and runs struct-tag validation on it.
// Any failure is reported as a validation error.
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := decoder.Decode(dst); err != nil {
		return &validators.ValidationError{Fields: []validators.FieldError{{
			Field:   "body",
			Message: fmt.Sprintf("%s: %s", ErrInvalidJSON, err),
		}}}
	}

	return h.validator.Validate(r.Context(), dst)
}

// todoIDFromPath parses the {todoID} URL parameter.
func todoIDFromPath(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "todoID")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, &validators.ValidationError{Fields: []validators.FieldError{{
			Field:   "todoID",
			Message: fmt.Sprintf("%q is not a valid UUID", raw),
		}}}
	}
	return id, nil
}
