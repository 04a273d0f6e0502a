package api

import (
	"errors"
	"net/http"

	"github.com/osumare/task-api/internal/api/shared"
	"github.com/osumare/task-api/internal/domain"
	"github.com/osumare/task-api/internal/service"
	"github.com/osumare/task-api/internal/service/auth"
	"github.com/osumare/task-api/internal/store"
)

// Client-facing error messages.
const (
	MsgInvalidRequestFormat = "Invalid request format"
	MsgTaskFieldsRequired   = "Title and description are required."
	MsgUsernameRequired     = "Username is required"
	MsgInvalidQuery         = "Invalid query parameters"
	MsgTaskNotFound         = "Task not found."
	MsgTaskDeleted          = "Task deleted successfully."
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken):
		return http.StatusForbidden

	// Not found errors
	case errors.Is(err, service.ErrTaskNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, auth.ErrMissingUsername):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return shared.MsgInternalError
	}

	switch {
	case errors.Is(err, auth.ErrMissingToken):
		return shared.MsgTokenMissing

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken):
		return shared.MsgInvalidToken

	case errors.Is(err, service.ErrTaskNotFound),
		errors.Is(err, store.ErrNotFound):
		return MsgTaskNotFound

	case errors.Is(err, auth.ErrMissingUsername):
		return MsgUsernameRequired

	case errors.Is(err, domain.ErrInvalidSortField),
		errors.Is(err, domain.ErrInvalidSortOrder),
		errors.Is(err, domain.ErrInvalidPagination):
		return MsgInvalidQuery

	case errors.Is(err, domain.ErrEmptyTaskTitle),
		errors.Is(err, domain.ErrEmptyTaskDescription):
		return MsgTaskFieldsRequired

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return MsgInvalidRequestFormat

	default:
		return shared.MsgInternalError
	}
}

// HandleAPIError writes the error response for err, choosing the status code
// and client message from its type. A non-empty message overrides the default.
// The underlying error is logged (redacted) but never returned to the client.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, message string) {
	status := MapErrorToStatusCode(err)
	if message == "" || status == http.StatusInternalServerError {
		message = GetSafeErrorMessage(err)
	}

	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
