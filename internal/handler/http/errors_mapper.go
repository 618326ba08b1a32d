package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-finance-advisor/internal/adapter"
	"github.com/MKhiriev/go-finance-advisor/internal/logger"
	"github.com/MKhiriev/go-finance-advisor/internal/service"
	"github.com/MKhiriev/go-finance-advisor/internal/store"
	"github.com/MKhiriev/go-finance-advisor/internal/utils"
	"github.com/MKhiriev/go-finance-advisor/internal/validators"
	"github.com/MKhiriev/go-finance-advisor/models"
)

// providerRetryAfter is sent with 429 answers caused by the LLM provider.
const providerRetryAfter = "60"

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrPasswordMismatch:        http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrNoUserID:                http.StatusUnauthorized,
	service.ErrDatabaseUnavailable:     http.StatusServiceUnavailable,

	validators.ErrValidation:         http.StatusUnprocessableEntity,
	validators.ErrEmptyDescription:   http.StatusUnprocessableEntity,
	validators.ErrDescriptionTooLong: http.StatusUnprocessableEntity,
	validators.ErrInvalidPriority:    http.StatusUnprocessableEntity,
	validators.ErrInvalidTodoID:      http.StatusUnprocessableEntity,
	validators.ErrInvalidUserID:      http.StatusUnprocessableEntity,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrTodoNotFound:       http.StatusNotFound,

	adapter.ErrNotConfigured: http.StatusServiceUnavailable,
	adapter.ErrRateLimited:   http.StatusTooManyRequests,
	adapter.ErrUnauthorized:  http.StatusUnauthorized,
}

// errorDetails holds the client-facing text of mapped errors. Errors missing
// here are reported with their own message.
var errorDetails = map[error]string{
	service.ErrInvalidCredentials:      "Invalid email or password",
	service.ErrWrongPassword:           "Current password is incorrect",
	service.ErrPasswordMismatch:        "New passwords do not match",
	service.ErrTokenIsExpiredOrInvalid: "Could not validate user",
	service.ErrNoUserID:                "Could not validate user",

	store.ErrEmailAlreadyExists: "Email already registered",
	store.ErrNoUserWasFound:     "User not found",

	adapter.ErrNotConfigured: "OpenAI service is not configured",
	adapter.ErrRateLimited:   "Rate limit exceeded. Please try again later.",
	adapter.ErrUnauthorized:  "Authentication failed. Check your API key.",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func detailFromError(err error) string {
	for target, detail := range errorDetails {
		if errors.Is(err, target) {
			return detail
		}
	}

	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Error()
	}
	for target := range errorStatusMap {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return err.Error()
}

// writeError renders err with the status chosen by errorStatusMap. Unmapped
// errors become a generic 500 so internals never reach the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	log := logger.FromRequest(r)

	switch status {
	case http.StatusInternalServerError:
		log.Err(err).Msg("unexpected error")
		writeInternalError(w)
		return
	case http.StatusUnprocessableEntity:
		log.Debug().Err(err).Msg("validation failed")
		writeValidationError(w, detailFromError(err))
		return
	case http.StatusTooManyRequests:
		w.Header().Set("Retry-After", providerRetryAfter)
	case http.StatusUnauthorized:
		if !errors.Is(err, adapter.ErrUnauthorized) {
			w.Header().Set("WWW-Authenticate", "Bearer")
		}
	}

	log.Warn().Err(err).Int("status", status).Msg("request failed")
	writeHTTPError(w, status, detailFromError(err))
}

func writeHTTPError(w http.ResponseWriter, status int, detail string) {
	utils.WriteJSON(w, models.ErrorResponse{
		Error:      detail,
		StatusCode: status,
		Type:       models.ErrorTypeHTTP,
	}, status)
}

func writeValidationError(w http.ResponseWriter, detail string) {
	utils.WriteJSON(w, models.ErrorResponse{
		Error:      detail,
		StatusCode: http.StatusUnprocessableEntity,
		Type:       models.ErrorTypeValidation,
	}, http.StatusUnprocessableEntity)
}

func writeInternalError(w http.ResponseWriter) {
	utils.WriteJSON(w, models.ErrorResponse{
		Error:   "Internal server error",
		Message: "An unexpected error occurred. Please try again later.",
		Type:    models.ErrorTypeInternal,
	}, http.StatusInternalServerError)
}
