package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/todokeeper/todokeeper-server/internal/logger"
	"github.com/todokeeper/todokeeper-server/internal/model"
)

const (
	// DefaultListLimit is the page size when the caller does not give one.
	DefaultListLimit = 10
	// MaxListLimit caps the page size.
	MaxListLimit = 100
)

type Todo struct {
	todoStore model.TodoStore
	logger    *logger.Logger
}

func NewTodo(todoStore model.TodoStore, logger *logger.Logger) *Todo {
	return &Todo{
		todoStore: todoStore,
		logger:    logger,
	}
}

// List returns one page of the owner's todos. Out-of-range bounds are
// clamped rather than rejected; the handler has already validated
// caller-supplied values.
func (s *Todo) List(ctx context.Context, ownerID uuid.UUID, params model.ListTodosParams) (model.TodoPage, error) {
	if params.Limit <= 0 {
		params.Limit = DefaultListLimit
	}
	if params.Limit > MaxListLimit {
		params.Limit = MaxListLimit
	}
	if params.Skip < 0 {
		params.Skip = 0
	}

	todos, total, err := s.todoStore.List(ctx, ownerID, params.Filter, params.Skip, params.Limit)
	if err != nil {
		s.logger.Error("Todo service: failed to list todos",
			"owner_id", ownerID,
			"error", err.Error())
		return model.TodoPage{}, fmt.Errorf("failed to list todos: %w", err)
	}

	return model.TodoPage{
		Todos: todos,
		Total: total,
		Skip:  params.Skip,
		Limit: params.Limit,
	}, nil
}

// Create stores a new todo bound to ownerID. The owner, completed flag
// and timestamps are set here regardless of the caller's input.
func (s *Todo) Create(ctx context.Context, ownerID uuid.UUID, params model.CreateTodoParams) (model.Todo, error) {
	now := time.Now().UTC()
	todo := model.Todo{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Title:       params.Title,
		Description: params.Description,
		Completed:   false,
		Category:    params.Category,
		Priority:    params.Priority,
		DueDate:     params.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	savedTodo, err := s.todoStore.Create(ctx, todo)
	if err != nil {
		s.logger.Error("Todo service: failed to create todo",
			"owner_id", ownerID,
			"error", err.Error())
		return model.Todo{}, fmt.Errorf("failed to create todo: %w", err)
	}

	s.logger.Info("Todo service: todo created",
		"owner_id", ownerID,
		"todo_id", savedTodo.ID)

	return savedTodo, nil
}

func (s *Todo) Get(ctx context.Context, ownerID, id uuid.UUID) (model.Todo, error) {
	todo, err := s.todoStore.GetByID(ctx, id, ownerID)
	if err != nil {
		return model.Todo{}, fmt.Errorf("failed to get todo: %w", err)
	}

	return todo, nil
}

func (s *Todo) Update(ctx context.Context, ownerID, id uuid.UUID, patch model.TodoPatch) (model.Todo, error) {
	todo, err := s.todoStore.Update(ctx, id, ownerID, patch)
	if err != nil {
		return model.Todo{}, fmt.Errorf("failed to update todo: %w", err)
	}

	s.logger.Info("Todo service: todo updated",
		"owner_id", ownerID,
		"todo_id", id)

	return todo, nil
}

func (s *Todo) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := s.todoStore.Delete(ctx, id, ownerID); err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}

	s.logger.Info("Todo service: todo deleted",
		"owner_id", ownerID,
		"todo_id", id)

	return nil
}
