package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/todokeeper/todokeeper-server/internal/model"
)

var _ model.TodoStore = (*TodoRepository)(nil)

type TodoRepository struct {
	db Querier
}

func NewTodoRepository(db Querier) *TodoRepository {
	return &TodoRepository{
		db: db,
	}
}

const todoColumns = `id, owner_id, title, description, completed, category, priority, due_date, created_at, updated_at`

func scanTodo(row pgx.Row) (model.Todo, error) {
	var todo model.Todo
	err := row.Scan(
		&todo.ID, &todo.OwnerID, &todo.Title, &todo.Description, &todo.Completed,
		&todo.Category, &todo.Priority, &todo.DueDate, &todo.CreatedAt, &todo.UpdatedAt,
	)
	return todo, err
}

// listPredicate builds the shared WHERE clause for List's count and page
// queries. The owner predicate is always first; filters are conjunctive.
func listPredicate(ownerID uuid.UUID, filter model.TodoFilter) (string, []any) {
	where := "owner_id = $1"
	args := []any{ownerID}

	if filter.Category != nil {
		args = append(args, string(*filter.Category))
		where += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if filter.Priority != nil {
		args = append(args, string(*filter.Priority))
		where += fmt.Sprintf(" AND priority = $%d", len(args))
	}
	if filter.Completed != nil {
		args = append(args, *filter.Completed)
		where += fmt.Sprintf(" AND completed = $%d", len(args))
	}

	return where, args
}

// List returns one page of the owner's todos, newest first, and the
// total count matching the filter before pagination.
func (r *TodoRepository) List(ctx context.Context, ownerID uuid.UUID, filter model.TodoFilter, skip, limit int) ([]model.Todo, int64, error) {
	where, args := listPredicate(ownerID, filter)

	var total int64
	countQuery := `SELECT COUNT(*) FROM todos WHERE ` + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count todos: %w", err)
	}

	pageQuery := fmt.Sprintf(
		`SELECT %s FROM todos WHERE %s ORDER BY created_at DESC, id DESC OFFSET $%d LIMIT $%d`,
		todoColumns, where, len(args)+1, len(args)+2,
	)
	args = append(args, skip, limit)

	rows, err := r.db.Query(ctx, pageQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list todos: %w", err)
	}
	defer rows.Close()

	todos := []model.Todo{}
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan todo: %w", err)
		}
		todos = append(todos, todo)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read todos: %w", err)
	}

	return todos, total, nil
}

// GetByID fetches a todo by id and owner in one predicate, so a missing
// todo and another user's todo are indistinguishable to the caller.
func (r *TodoRepository) GetByID(ctx context.Context, id, ownerID uuid.UUID) (model.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE id = $1 AND owner_id = $2`

	todo, err := scanTodo(r.db.QueryRow(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Todo{}, model.ErrNotFound
		}
		return model.Todo{}, fmt.Errorf("failed to get todo by id: %w", err)
	}

	return todo, nil
}

func (r *TodoRepository) Create(ctx context.Context, todo model.Todo) (model.Todo, error) {
	query := `INSERT INTO todos (id, owner_id, title, description, completed, category, priority, due_date, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			  RETURNING ` + todoColumns

	savedTodo, err := scanTodo(r.db.QueryRow(ctx, query,
		todo.ID, todo.OwnerID, todo.Title, todo.Description, todo.Completed,
		string(todo.Category), string(todo.Priority), todo.DueDate, todo.CreatedAt, todo.UpdatedAt,
	))
	if err != nil {
		return model.Todo{}, fmt.Errorf("failed to create todo: %w", err)
	}

	return savedTodo, nil
}

// Update applies only the fields set in patch and bumps updated_at, in
// one statement fused with the ownership predicate. There is no
// check-then-act window against a concurrent update or delete.
func (r *TodoRepository) Update(ctx context.Context, id, ownerID uuid.UUID, patch model.TodoPatch) (model.Todo, error) {
	query := `UPDATE todos
			  SET title = COALESCE($3, title),
			      description = COALESCE($4, description),
			      completed = COALESCE($5, completed),
			      category = COALESCE($6, category),
			      priority = COALESCE($7, priority),
			      due_date = COALESCE($8, due_date),
			      updated_at = now()
			  WHERE id = $1 AND owner_id = $2
			  RETURNING ` + todoColumns

	todo, err := scanTodo(r.db.QueryRow(ctx, query,
		id, ownerID,
		patch.Title, patch.Description, patch.Completed,
		(*string)(patch.Category), (*string)(patch.Priority), patch.DueDate,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Todo{}, model.ErrNotFound
		}
		return model.Todo{}, fmt.Errorf("failed to update todo: %w", err)
	}

	return todo, nil
}

// Delete removes a todo owned by ownerID. A second delete of the same
// id reports ErrNotFound.
func (r *TodoRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	query := `DELETE FROM todos WHERE id = $1 AND owner_id = $2`

	cmd, err := r.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}
