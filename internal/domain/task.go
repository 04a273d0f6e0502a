package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Common validation errors for Task
var (
	ErrEmptyTaskID          = fmt.Errorf("%w: task ID cannot be empty", ErrValidation)
	ErrEmptyTaskTitle       = fmt.Errorf("%w: task title cannot be empty", ErrValidation)
	ErrEmptyTaskDescription = fmt.Errorf("%w: task description cannot be empty", ErrValidation)
)

// Task is the single resource managed by the API.
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// NewTask creates a Task with a freshly generated random ID.
// Returns an error if the title or description is empty.
func NewTask(title, description string) (*Task, error) {
	task := &Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
func (t *Task) Validate() error {
	if t.ID == "" {
		return ErrEmptyTaskID
	}

	if t.Title == "" {
		return ErrEmptyTaskTitle
	}

	if t.Description == "" {
		return ErrEmptyTaskDescription
	}

	return nil
}

// TaskUpdate lists the fields a client may change on an existing task.
// Nil fields are left untouched. The ID is deliberately absent.
type TaskUpdate struct {
	Title       *string
	Description *string
}

// IsEmpty reports whether the update would change nothing.
func (u TaskUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil
}

// Apply merges the supplied fields onto t and re-validates the result.
// On validation failure t is left unchanged.
func (u TaskUpdate) Apply(t *Task) error {
	merged := *t
	if u.Title != nil {
		merged.Title = *u.Title
	}
	if u.Description != nil {
		merged.Description = *u.Description
	}

	if err := merged.Validate(); err != nil {
		return err
	}

	*t = merged
	return nil
}

// Sortable task fields accepted by list requests.
const (
	TaskFieldID          = "id"
	TaskFieldTitle       = "title"
	TaskFieldDescription = "description"
)

// Field returns the value of the named JSON field and whether the task has it.
func (t *Task) Field(name string) (string, bool) {
	switch name {
	case TaskFieldID:
		return t.ID, true
	case TaskFieldTitle:
		return t.Title, true
	case TaskFieldDescription:
		return t.Description, true
	default:
		return "", false
	}
}
