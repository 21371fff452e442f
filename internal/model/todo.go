package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TodoStore defines persistence operations for todos. Every operation
// takes the owner's id so ownership isolation is enforced at the data
// access boundary, not only in handlers.
type TodoStore interface {
	List(ctx context.Context, ownerID uuid.UUID, filter TodoFilter, skip, limit int) ([]Todo, int64, error)
	GetByID(ctx context.Context, id, ownerID uuid.UUID) (Todo, error)
	Create(ctx context.Context, todo Todo) (Todo, error)
	Update(ctx context.Context, id, ownerID uuid.UUID, patch TodoPatch) (Todo, error)
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
}

// Todo represents a stored todo item.
type Todo struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Title       string
	Description *string
	Completed   bool
	Category    Category
	Priority    Priority
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Category enumerates todo categories.
type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryStudy    Category = "study"
	CategoryShopping Category = "shopping"
	CategoryOther    Category = "other"
)

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryWork, CategoryPersonal, CategoryStudy, CategoryShopping, CategoryOther:
		return true
	}
	return false
}

// Priority enumerates todo priorities.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// TodoFilter holds optional, conjunctive list filters. Nil fields are
// not applied.
type TodoFilter struct {
	Category  *Category
	Priority  *Priority
	Completed *bool
}

// TodoPatch is a partial update. Nil fields leave the stored value
// untouched.
type TodoPatch struct {
	Title       *string
	Description *string
	Completed   *bool
	Category    *Category
	Priority    *Priority
	DueDate     *time.Time
}

// CreateTodoParams contains caller-settable fields for a new todo.
// Owner, completed flag and timestamps are always set by the service.
type CreateTodoParams struct {
	Title       string
	Description *string
	Category    Category
	Priority    Priority
	DueDate     *time.Time
}

// ListTodosParams bounds and filters a listing request.
type ListTodosParams struct {
	Filter TodoFilter
	Skip   int
	Limit  int
}

// TodoPage is one page of todos plus the total count matching the
// filter before pagination.
type TodoPage struct {
	Todos []Todo
	Total int64
	Skip  int
	Limit int
}
