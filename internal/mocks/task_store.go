package mocks

import (
	"context"

	"github.com/osumare/task-api/internal/domain"
	"github.com/osumare/task-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockTaskStore implements store.TaskStore with function fields.
// Unset functions return zero values.
type MockTaskStore struct {
	CreateFn  func(ctx context.Context, task *domain.Task) error
	ListFn    func(ctx context.Context) ([]domain.Task, error)
	GetByIDFn func(ctx context.Context, id string) (*domain.Task, error)
	UpdateFn  func(ctx context.Context, id string, fn func(task *domain.Task) error) (*domain.Task, error)
	DeleteFn  func(ctx context.Context, id string) error
}

// Create implements store.TaskStore
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}
	return nil
}

// List implements store.TaskStore
func (m *MockTaskStore) List(ctx context.Context) ([]domain.Task, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return []domain.Task{}, nil
}

// GetByID implements store.TaskStore
func (m *MockTaskStore) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrTaskNotFound
}

// Update implements store.TaskStore
func (m *MockTaskStore) Update(
	ctx context.Context,
	id string,
	fn func(task *domain.Task) error,
) (*domain.Task, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, fn)
	}
	return nil, store.ErrTaskNotFound
}

// Delete implements store.TaskStore
func (m *MockTaskStore) Delete(ctx context.Context, id string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

// TestifyMockTaskStore is a mock of store.TaskStore for use with testify/mock
type TestifyMockTaskStore struct {
	mock.Mock
}

// Create is a mock implementation of store.TaskStore.Create
func (m *TestifyMockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

// List is a mock implementation of store.TaskStore.List
func (m *TestifyMockTaskStore) List(ctx context.Context) ([]domain.Task, error) {
	args := m.Called(ctx)
	if tasks, ok := args.Get(0).([]domain.Task); ok {
		return tasks, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetByID is a mock implementation of store.TaskStore.GetByID
func (m *TestifyMockTaskStore) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	args := m.Called(ctx, id)
	if task, ok := args.Get(0).(*domain.Task); ok {
		return task, args.Error(1)
	}
	return nil, args.Error(1)
}

// Update is a mock implementation of store.TaskStore.Update
func (m *TestifyMockTaskStore) Update(
	ctx context.Context,
	id string,
	fn func(task *domain.Task) error,
) (*domain.Task, error) {
	args := m.Called(ctx, id, fn)
	if task, ok := args.Get(0).(*domain.Task); ok {
		return task, args.Error(1)
	}
	return nil, args.Error(1)
}

// Delete is a mock implementation of store.TaskStore.Delete
func (m *TestifyMockTaskStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var (
	_ store.TaskStore = (*MockTaskStore)(nil)
	_ store.TaskStore = (*TestifyMockTaskStore)(nil)
)
