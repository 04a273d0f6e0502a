package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/osumare/task-api/internal/domain"
	"github.com/osumare/task-api/internal/events"
	"github.com/osumare/task-api/internal/platform/logger"
	"github.com/osumare/task-api/internal/store"
)

// TaskService provides the task operations exposed by the API.
type TaskService interface {
	// CreateTask stores a new task with a generated ID.
	CreateTask(ctx context.Context, title, description string) (*domain.Task, error)

	// GetTask retrieves a task by ID. Returns ErrTaskNotFound if absent.
	GetTask(ctx context.Context, id string) (*domain.Task, error)

	// ListTasks runs the query engine over a snapshot of the store.
	ListTasks(ctx context.Context, params ListParams) (*TaskPage, error)

	// UpdateTask merges update onto the stored task. Returns ErrTaskNotFound if absent.
	UpdateTask(ctx context.Context, id string, update domain.TaskUpdate) (*domain.Task, error)

	// DeleteTask removes a task. Returns ErrTaskNotFound if absent.
	DeleteTask(ctx context.Context, id string) error
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	tasks   store.TaskStore
	emitter events.EventEmitter
	logger  *slog.Logger
}

// NewTaskService creates a new TaskService.
// It returns an error if the task store is nil. A nil emitter disables task events.
func NewTaskService(
	tasks store.TaskStore,
	emitter events.EventEmitter,
	logger *slog.Logger,
) (TaskService, error) {
	if tasks == nil {
		return nil, domain.NewValidationError("tasks", "cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		tasks:   tasks,
		emitter: emitter,
		logger:  logger.With(slog.String("component", "task_service")),
	}, nil
}

// CreateTask implements TaskService.CreateTask
func (s *taskServiceImpl) CreateTask(ctx context.Context, title, description string) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := domain.NewTask(title, description)
	if err != nil {
		return nil, err
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		log.Error("failed to store task", slog.String("task_id", task.ID), slog.Any("error", err))
		return nil, NewTaskServiceError("create", "failed to store task", err)
	}

	log.Info("task created", slog.String("task_id", task.ID))
	s.emit(ctx, events.TypeTaskCreated, task.ID, task)
	return task, nil
}

// GetTask implements TaskService.GetTask
func (s *taskServiceImpl) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, s.translate("get", id, err)
	}
	return task, nil
}

// ListTasks implements TaskService.ListTasks
func (s *taskServiceImpl) ListTasks(ctx context.Context, params ListParams) (*TaskPage, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	snapshot, err := s.tasks.List(ctx)
	if err != nil {
		return nil, NewTaskServiceError("list", "failed to read tasks", err)
	}

	return QueryTasks(snapshot, params)
}

// UpdateTask implements TaskService.UpdateTask
func (s *taskServiceImpl) UpdateTask(
	ctx context.Context,
	id string,
	update domain.TaskUpdate,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if update.IsEmpty() {
		return nil, domain.NewValidationError("update", "must change at least one field", domain.ErrValidation)
	}

	task, err := s.tasks.Update(ctx, id, update.Apply)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return nil, err
		}
		return nil, s.translate("update", id, err)
	}

	log.Info("task updated", slog.String("task_id", id))
	s.emit(ctx, events.TypeTaskUpdated, id, task)
	return task, nil
}

// DeleteTask implements TaskService.DeleteTask
func (s *taskServiceImpl) DeleteTask(ctx context.Context, id string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.tasks.Delete(ctx, id); err != nil {
		return s.translate("delete", id, err)
	}

	log.Info("task deleted", slog.String("task_id", id))
	s.emit(ctx, events.TypeTaskDeleted, id, nil)
	return nil
}

// translate maps store errors onto service errors for the given operation.
func (s *taskServiceImpl) translate(operation, id string, err error) error {
	if store.IsNotFoundError(err) {
		return ErrTaskNotFound
	}
	s.logger.Error("task store operation failed",
		slog.String("operation", operation),
		slog.String("task_id", id),
		slog.Any("error", err))
	return NewTaskServiceError(operation, "task store failure", err)
}

// emit publishes a task event. The change is already committed, so failures
// are logged rather than returned.
func (s *taskServiceImpl) emit(ctx context.Context, eventType, taskID string, task *domain.Task) {
	if s.emitter == nil {
		return
	}
	log := logger.FromContextOrDefault(ctx, s.logger)

	var payload interface{}
	if task != nil {
		payload = task
	}

	event, err := events.NewTaskEvent(eventType, taskID, payload)
	if err != nil {
		log.Error("failed to build task event",
			slog.String("event_type", eventType),
			slog.String("task_id", taskID),
			slog.Any("error", err))
		return
	}

	if err := s.emitter.EmitEvent(ctx, event); err != nil {
		log.Warn("task event handler failed",
			slog.String("event_type", eventType),
			slog.String("task_id", taskID),
			slog.Any("error", err))
	}
}
