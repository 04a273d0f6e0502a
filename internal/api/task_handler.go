package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/osumare/task-api/internal/api/shared"
	"github.com/osumare/task-api/internal/platform/logger"
	"github.com/osumare/task-api/internal/service"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskService service.TaskService
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// CreateTask handles POST /tasks requests.
// It expects ValidateTaskPayload to have run first.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	req, ok := taskPayloadFromContext(r.Context())
	if !ok {
		HandleAPIError(w, r, errors.New("task payload missing from context"), "")
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), req.Title, req.Description)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, taskToResponse(task))
}

// ListTasks handles GET /tasks requests.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	params, err := parseListParams(r.URL.Query())
	if err != nil {
		HandleAPIError(w, r, err, MsgInvalidQuery)
		return
	}

	page, err := h.taskService.ListTasks(r.Context(), params)
	if err != nil {
		HandleAPIError(w, r, err, MsgInvalidQuery)
		return
	}

	response := TaskListResponse{
		Page:       page.Page,
		TotalTasks: page.TotalTasks,
		TotalPages: page.TotalPages,
		Tasks:      make([]TaskResponse, 0, len(page.Tasks)),
	}
	for i := range page.Tasks {
		response.Tasks = append(response.Tasks, taskToResponse(&page.Tasks[i]))
	}

	logger.FromContextOrDefault(r.Context(), slog.Default()).Debug("listed tasks",
		slog.Int("page", page.Page),
		slog.Int("returned", len(response.Tasks)),
		slog.Int("total", page.TotalTasks))

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// GetTask handles GET /tasks/{id} requests.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, err := getTaskID(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	task, err := h.taskService.GetTask(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// UpdateTask handles PUT /tasks/{id} requests.
// It expects ValidateTaskPayload to have run first.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, err := getTaskID(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	req, ok := taskPayloadFromContext(r.Context())
	if !ok {
		HandleAPIError(w, r, errors.New("task payload missing from context"), "")
		return
	}

	task, err := h.taskService.UpdateTask(r.Context(), id, req.toUpdate())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// DeleteTask handles DELETE /tasks/{id} requests.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := getTaskID(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{Message: MsgTaskDeleted})
}
