package api

import "github.com/osumare/task-api/internal/domain"

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
}

// LoginResponse defines the successful response for the login endpoint.
type LoginResponse struct {
	Token string `json:"token"`
}

// TaskRequest defines the payload for creating or replacing a task.
// A client-supplied id is not part of the payload and is ignored.
type TaskRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
}

// toUpdate converts the payload into a full-replacement update.
func (req TaskRequest) toUpdate() domain.TaskUpdate {
	return domain.TaskUpdate{
		Title:       &req.Title,
		Description: &req.Description,
	}
}

// TaskResponse is the JSON representation of a task.
type TaskResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// TaskListResponse is one page of a task listing.
type TaskListResponse struct {
	Page       int            `json:"page"`
	TotalTasks int            `json:"totalTasks"`
	TotalPages int            `json:"totalPages"`
	Tasks      []TaskResponse `json:"tasks"`
}

// taskToResponse converts a domain.Task to a TaskResponse
func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
	}
}
