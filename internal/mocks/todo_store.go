package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/todokeeper/todokeeper-server/internal/model"
)

// TodoStore is a mock of model.TodoStore.
type TodoStore struct {
	mock.Mock
}

var _ model.TodoStore = (*TodoStore)(nil)

// NewTodoStore creates a TodoStore mock that asserts its expectations
// on test cleanup.
func NewTodoStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *TodoStore {
	m := &TodoStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *TodoStore) List(ctx context.Context, ownerID uuid.UUID, filter model.TodoFilter, skip, limit int) ([]model.Todo, int64, error) {
	args := m.Called(ctx, ownerID, filter, skip, limit)
	var todos []model.Todo
	if args.Get(0) != nil {
		todos = args.Get(0).([]model.Todo)
	}
	return todos, args.Get(1).(int64), args.Error(2)
}

func (m *TodoStore) GetByID(ctx context.Context, id, ownerID uuid.UUID) (model.Todo, error) {
	args := m.Called(ctx, id, ownerID)
	return args.Get(0).(model.Todo), args.Error(1)
}

func (m *TodoStore) Create(ctx context.Context, todo model.Todo) (model.Todo, error) {
	args := m.Called(ctx, todo)
	return args.Get(0).(model.Todo), args.Error(1)
}

func (m *TodoStore) Update(ctx context.Context, id, ownerID uuid.UUID, patch model.TodoPatch) (model.Todo, error) {
	args := m.Called(ctx, id, ownerID, patch)
	return args.Get(0).(model.Todo), args.Error(1)
}

func (m *TodoStore) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}
