package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/osumare/task-api/internal/api/shared"
	"github.com/osumare/task-api/internal/domain"
	"github.com/osumare/task-api/internal/service"
)

// TaskIDParam is the chi URL parameter holding the task ID.
const TaskIDParam = "id"

type taskPayloadKey struct{}

// getTaskID extracts the task ID from the URL path parameters.
// An empty ID can never match a stored task, so it reports not found.
func getTaskID(r *http.Request) (string, error) {
	id := chi.URLParam(r, TaskIDParam)
	if id == "" {
		return "", fmt.Errorf("%w: empty task ID", service.ErrTaskNotFound)
	}
	return id, nil
}

// parseListParams reads page, limit, sortBy, order and search from the query
// string. Absent or empty values fall back to the defaults.
func parseListParams(query url.Values) (service.ListParams, error) {
	params := service.DefaultListParams()

	var err error
	if params.Page, err = positiveInt(query, "page", params.Page); err != nil {
		return params, err
	}
	if params.Limit, err = positiveInt(query, "limit", params.Limit); err != nil {
		return params, err
	}
	if v := query.Get("sortBy"); v != "" {
		params.SortBy = v
	}
	if v := query.Get("order"); v != "" {
		params.Order = strings.ToLower(v)
	}
	params.Search = query.Get("search")

	return params, params.Validate()
}

func positiveInt(query url.Values, name string, fallback int) (int, error) {
	raw := query.Get(name)
	if raw == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, domain.NewValidationError(name, "must be a positive integer", domain.ErrInvalidPagination)
	}
	return n, nil
}

// withTaskPayload stores a validated task payload in the context.
func withTaskPayload(ctx context.Context, req *TaskRequest) context.Context {
	return context.WithValue(ctx, taskPayloadKey{}, req)
}

// taskPayloadFromContext returns the payload stored by ValidateTaskPayload.
func taskPayloadFromContext(ctx context.Context) (*TaskRequest, bool) {
	req, ok := ctx.Value(taskPayloadKey{}).(*TaskRequest)
	return req, ok && req != nil
}

// ValidateTaskPayload decodes and validates a task payload before the handler
// runs. Malformed JSON yields 400 "Invalid request format"; a missing or empty
// title or description yields 400 "Title and description are required.".
func ValidateTaskPayload(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req TaskRequest
		if err := shared.DecodeJSON(r, &req); err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, MsgInvalidRequestFormat)
			return
		}

		if err := shared.ValidateRequest(&req); err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, MsgTaskFieldsRequired)
			return
		}

		next.ServeHTTP(w, r.WithContext(withTaskPayload(r.Context(), &req)))
	})
}
