package store

import (
	"context"

	"github.com/osumare/task-api/internal/domain"
)

// TaskStore defines the interface for task persistence.
type TaskStore interface {
	// Create appends a new task to the store.
	// Returns ErrTaskExists if a task with the same ID is already stored and
	// ErrInvalidEntity if the task fails domain validation.
	Create(ctx context.Context, task *domain.Task) error

	// List returns a snapshot of every task in insertion order.
	// The returned slice is owned by the caller; changing it never affects the store.
	List(ctx context.Context) ([]domain.Task, error)

	// GetByID retrieves a task by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id string) (*domain.Task, error)

	// Update runs fn against the stored task while holding the write lock and
	// keeps the result only if fn returns nil. The ID cannot be changed.
	// Returns ErrTaskNotFound if the task does not exist; errors from fn are
	// returned unchanged.
	Update(ctx context.Context, id string, fn func(task *domain.Task) error) (*domain.Task, error)

	// Delete removes a task by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id string) error
}
