package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/osumare/task-api/internal/domain"
	"github.com/osumare/task-api/internal/platform/logger"
	"github.com/osumare/task-api/internal/store"
)

// TaskStore implements the store.TaskStore interface with an ordered slice
// held in process memory. All access is serialised by an RWMutex.
type TaskStore struct {
	mu     sync.RWMutex
	tasks  []domain.Task
	index  map[string]int // task ID -> position in tasks
	logger *slog.Logger
}

// NewTaskStore creates an empty in-memory task store.
// If logger is nil, a default logger will be used.
func NewTaskStore(logger *slog.Logger) *TaskStore {
	if logger == nil {
		logger = slog.Default()
	}

	return &TaskStore{
		index:  make(map[string]int),
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure TaskStore implements store.TaskStore interface
var _ store.TaskStore = (*TaskStore)(nil)

// Create implements store.TaskStore.Create
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.index[task.ID]; exists {
		return store.ErrTaskExists
	}

	s.index[task.ID] = len(s.tasks)
	s.tasks = append(s.tasks, *task)

	logger.FromContextOrDefault(ctx, s.logger).Debug("task stored",
		slog.String("task_id", task.ID),
		slog.Int("task_count", len(s.tasks)))
	return nil
}

// List implements store.TaskStore.List
func (s *TaskStore) List(_ context.Context) ([]domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]domain.Task, len(s.tasks))
	copy(snapshot, s.tasks)
	return snapshot, nil
}

// GetByID implements store.TaskStore.GetByID
func (s *TaskStore) GetByID(_ context.Context, id string) (*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pos, ok := s.index[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}

	task := s.tasks[pos]
	return &task, nil
}

// Update implements store.TaskStore.Update
func (s *TaskStore) Update(
	ctx context.Context,
	id string,
	fn func(task *domain.Task) error,
) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}

	working := s.tasks[pos]
	if err := fn(&working); err != nil {
		return nil, err
	}
	working.ID = id

	s.tasks[pos] = working

	logger.FromContextOrDefault(ctx, s.logger).Debug("task updated",
		slog.String("task_id", id))

	updated := working
	return &updated, nil
}

// Delete implements store.TaskStore.Delete
func (s *TaskStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[id]
	if !ok {
		return store.ErrTaskNotFound
	}

	s.tasks = append(s.tasks[:pos], s.tasks[pos+1:]...)
	delete(s.index, id)
	for i := pos; i < len(s.tasks); i++ {
		s.index[s.tasks[i].ID] = i
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("task deleted",
		slog.String("task_id", id),
		slog.Int("task_count", len(s.tasks)))
	return nil
}

// Len returns the number of stored tasks.
func (s *TaskStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}
