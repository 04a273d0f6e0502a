package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/osumare/task-api/internal/api/shared"
	"github.com/osumare/task-api/internal/domain"
	"github.com/osumare/task-api/internal/platform/logger"
	"github.com/osumare/task-api/internal/service"
	"github.com/osumare/task-api/internal/service/auth"
	"github.com/osumare/task-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{name: "nil error", err: nil, expectedStatus: http.StatusInternalServerError},
		{name: "missing token", err: auth.ErrMissingToken, expectedStatus: http.StatusUnauthorized},
		{name: "invalid token", err: auth.ErrInvalidToken, expectedStatus: http.StatusForbidden},
		{
			name:           "wrapped expired token",
			err:            fmt.Errorf("failed to authenticate: %w", auth.ErrExpiredToken),
			expectedStatus: http.StatusForbidden,
		},
		{name: "service not found", err: service.ErrTaskNotFound, expectedStatus: http.StatusNotFound},
		{name: "store not found", err: store.ErrTaskNotFound, expectedStatus: http.StatusNotFound},
		{name: "domain validation", err: domain.ErrEmptyTaskTitle, expectedStatus: http.StatusBadRequest},
		{
			name:           "validation error type",
			err:            domain.NewValidationError("page", "must be positive", domain.ErrInvalidPagination),
			expectedStatus: http.StatusBadRequest,
		},
		{name: "invalid entity", err: store.ErrInvalidEntity, expectedStatus: http.StatusBadRequest},
		{name: "missing username", err: auth.ErrMissingUsername, expectedStatus: http.StatusBadRequest},
		{
			name:           "service failure",
			err:            service.NewTaskServiceError("list", "failed", errors.New("boom")),
			expectedStatus: http.StatusInternalServerError,
		},
		{name: "unknown error", err: errors.New("unknown"), expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedStatus, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "nil error", err: nil, expected: shared.MsgInternalError},
		{name: "missing token", err: auth.ErrMissingToken, expected: "Token missing"},
		{name: "expired token", err: auth.ErrExpiredToken, expected: "Invalid token"},
		{name: "not found", err: service.ErrTaskNotFound, expected: "Task not found."},
		{name: "missing username", err: auth.ErrMissingUsername, expected: "Username is required"},
		{name: "bad sort field", err: domain.ErrInvalidSortField, expected: "Invalid query parameters"},
		{name: "empty description", err: domain.ErrEmptyTaskDescription, expected: "Title and description are required."},
		{name: "generic validation", err: domain.ErrValidation, expected: "Invalid request format"},
		{
			name:     "internal details never leak",
			err:      errors.New("open /var/lib/tasks.db: permission denied"),
			expected: "Something went wrong!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetSafeErrorMessage(tt.err))
		})
	}
}

func TestHandleAPIError(t *testing.T) {
	t.Run("uses safe message for server errors", func(t *testing.T) {
		logBuf, _ := logger.SetupTestLogger(t)

		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		w := httptest.NewRecorder()

		HandleAPIError(w, req, errors.New("connection to /srv/db refused"), "custom message")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		var resp shared.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, shared.MsgInternalError, resp.Error)

		logger.AssertLogContains(t, logBuf, `"level":"ERROR"`)
		logger.AssertLogNotContains(t, logBuf, "/srv/db")
	})

	t.Run("custom message for client errors", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		w := httptest.NewRecorder()

		HandleAPIError(w, req, domain.ErrInvalidPagination, MsgInvalidQuery)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Invalid query parameters"}`, w.Body.String())
	})
}
