package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/todokeeper/todokeeper-server/internal/model"
)

// AuthService is a mock of the handler-side AuthService interface.
type AuthService struct {
	mock.Mock
}

// NewAuthService creates an AuthService mock that asserts its
// expectations on test cleanup.
func NewAuthService(t interface {
	mock.TestingT
	Cleanup(func())
}) *AuthService {
	m := &AuthService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *AuthService) Signup(ctx context.Context, params model.SignupParams) (model.Session, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.Session), args.Error(1)
}

func (m *AuthService) Login(ctx context.Context, params model.LoginParams) (model.Session, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.Session), args.Error(1)
}

func (m *AuthService) UpdateName(ctx context.Context, id uuid.UUID, name string) (model.User, error) {
	args := m.Called(ctx, id, name)
	return args.Get(0).(model.User), args.Error(1)
}

// TodoService is a mock of the handler-side TodoService interface.
type TodoService struct {
	mock.Mock
}

// NewTodoService creates a TodoService mock that asserts its
// expectations on test cleanup.
func NewTodoService(t interface {
	mock.TestingT
	Cleanup(func())
}) *TodoService {
	m := &TodoService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *TodoService) List(ctx context.Context, ownerID uuid.UUID, params model.ListTodosParams) (model.TodoPage, error) {
	args := m.Called(ctx, ownerID, params)
	return args.Get(0).(model.TodoPage), args.Error(1)
}

func (m *TodoService) Create(ctx context.Context, ownerID uuid.UUID, params model.CreateTodoParams) (model.Todo, error) {
	args := m.Called(ctx, ownerID, params)
	return args.Get(0).(model.Todo), args.Error(1)
}

func (m *TodoService) Get(ctx context.Context, ownerID, id uuid.UUID) (model.Todo, error) {
	args := m.Called(ctx, ownerID, id)
	return args.Get(0).(model.Todo), args.Error(1)
}

func (m *TodoService) Update(ctx context.Context, ownerID, id uuid.UUID, patch model.TodoPatch) (model.Todo, error) {
	args := m.Called(ctx, ownerID, id, patch)
	return args.Get(0).(model.Todo), args.Error(1)
}

func (m *TodoService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}
