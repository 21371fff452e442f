package handler

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/todokeeper/todokeeper-server/internal/logger"
	"github.com/todokeeper/todokeeper-server/internal/model"
	"github.com/todokeeper/todokeeper-server/internal/service"
)

// TodoService defines todo operations scoped to an owner.
type TodoService interface {
	List(ctx context.Context, ownerID uuid.UUID, params model.ListTodosParams) (model.TodoPage, error)
	Create(ctx context.Context, ownerID uuid.UUID, params model.CreateTodoParams) (model.Todo, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (model.Todo, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, patch model.TodoPatch) (model.Todo, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// Todo handles HTTP endpoints for todos.
type Todo struct {
	todoService    TodoService
	contextManager model.ContextManager
	validate       *validator.Validate
	logger         *logger.Logger
}

// NewTodo creates a new Todo handler.
func NewTodo(todoService TodoService, contextManager model.ContextManager, logger *logger.Logger) *Todo {
	return &Todo{
		todoService:    todoService,
		contextManager: contextManager,
		validate:       validator.New(),
		logger:         logger,
	}
}

type listTodosQuery struct {
	Skip      int     `query:"skip" validate:"min=0"`
	Limit     int     `query:"limit" validate:"min=1,max=100"`
	Category  *string `query:"category" validate:"omitempty,oneof=work personal study shopping other"`
	Priority  *string `query:"priority" validate:"omitempty,oneof=low medium high"`
	Completed *bool   `query:"completed"`
}

type createTodoRequest struct {
	Title       string     `json:"title" validate:"required,min=1,max=200"`
	Description *string    `json:"description" validate:"omitempty,max=1000"`
	Category    string     `json:"category" validate:"required,oneof=work personal study shopping other"`
	Priority    string     `json:"priority" validate:"required,oneof=low medium high"`
	DueDate     *time.Time `json:"due_date"`
}

type updateTodoRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string    `json:"description" validate:"omitempty,max=1000"`
	Completed   *bool      `json:"completed"`
	Category    *string    `json:"category" validate:"omitempty,oneof=work personal study shopping other"`
	Priority    *string    `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate     *time.Time `json:"due_date"`
}

type todoResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Completed   bool       `json:"completed"`
	Category    string     `json:"category"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
	UserID      string     `json:"user_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type todoPageResponse struct {
	Todos []todoResponse `json:"todos"`
	Total int64          `json:"total"`
	Skip  int            `json:"skip"`
	Limit int            `json:"limit"`
}

func toTodoResponse(todo model.Todo) todoResponse {
	return todoResponse{
		ID:          todo.ID.String(),
		Title:       todo.Title,
		Description: todo.Description,
		Completed:   todo.Completed,
		Category:    string(todo.Category),
		Priority:    string(todo.Priority),
		DueDate:     todo.DueDate,
		UserID:      todo.OwnerID.String(),
		CreatedAt:   todo.CreatedAt,
		UpdatedAt:   todo.UpdatedAt,
	}
}

// List returns one page of the caller's todos with optional filters.
func (h *Todo) List(c *fiber.Ctx) error {
	user, ok := h.contextManager.GetUserFromContext(c.UserContext())
	if !ok {
		return unauthorized(c)
	}

	query := listTodosQuery{Limit: service.DefaultListLimit}
	if err := c.QueryParser(&query); err != nil {
		h.logger.Debug("Todo handler: failed to parse list query",
			"user_id", user.ID,
			"error", err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid query parameters"})
	}
	if err := h.validate.Struct(query); err != nil {
		h.logger.Debug("Todo handler: invalid list query",
			"user_id", user.ID,
			"error", err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	filter := model.TodoFilter{Completed: query.Completed}
	if query.Category != nil {
		category := model.Category(*query.Category)
		filter.Category = &category
	}
	if query.Priority != nil {
		priority := model.Priority(*query.Priority)
		filter.Priority = &priority
	}

	page, err := h.todoService.List(c.UserContext(), user.ID, model.ListTodosParams{
		Filter: filter,
		Skip:   query.Skip,
		Limit:  query.Limit,
	})
	if err != nil {
		return handleError(c, err)
	}

	todos := make([]todoResponse, 0, len(page.Todos))
	for _, todo := range page.Todos {
		todos = append(todos, toTodoResponse(todo))
	}

	return c.Status(fiber.StatusOK).JSON(todoPageResponse{
		Todos: todos,
		Total: page.Total,
		Skip:  page.Skip,
		Limit: page.Limit,
	})
}

// Create stores a new todo owned by the caller.
func (h *Todo) Create(c *fiber.Ctx) error {
	user, ok := h.contextManager.GetUserFromContext(c.UserContext())
	if !ok {
		return unauthorized(c)
	}

	req := createTodoRequest{}
	if err := c.BodyParser(&req); err != nil {
		h.logger.Debug("Todo handler: failed to parse create request",
			"user_id", user.ID,
			"error", err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		h.logger.Debug("Todo handler: invalid create request",
			"user_id", user.ID,
			"error", err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	todo, err := h.todoService.Create(c.UserContext(), user.ID, model.CreateTodoParams{
		Title:       req.Title,
		Description: req.Description,
		Category:    model.Category(req.Category),
		Priority:    model.Priority(req.Priority),
		DueDate:     req.DueDate,
	})
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(toTodoResponse(todo))
}

// Get returns one of the caller's todos by id.
func (h *Todo) Get(c *fiber.Ctx) error {
	user, ok := h.contextManager.GetUserFromContext(c.UserContext())
	if !ok {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		h.logger.Debug("Todo handler: malformed todo id",
			"user_id", user.ID,
			"raw_id", c.Params("id"))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid todo id"})
	}

	todo, err := h.todoService.Get(c.UserContext(), user.ID, id)
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(toTodoResponse(todo))
}

// Update applies a partial update to one of the caller's todos.
func (h *Todo) Update(c *fiber.Ctx) error {
	user, ok := h.contextManager.GetUserFromContext(c.UserContext())
	if !ok {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		h.logger.Debug("Todo handler: malformed todo id",
			"user_id", user.ID,
			"raw_id", c.Params("id"))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid todo id"})
	}

	req := updateTodoRequest{}
	if err := c.BodyParser(&req); err != nil {
		h.logger.Debug("Todo handler: failed to parse update request",
			"user_id", user.ID,
			"todo_id", id,
			"error", err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		h.logger.Debug("Todo handler: invalid update request",
			"user_id", user.ID,
			"todo_id", id,
			"error", err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	patch := model.TodoPatch{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		DueDate:     req.DueDate,
	}
	if req.Category != nil {
		category := model.Category(*req.Category)
		patch.Category = &category
	}
	if req.Priority != nil {
		priority := model.Priority(*req.Priority)
		patch.Priority = &priority
	}

	todo, err := h.todoService.Update(c.UserContext(), user.ID, id, patch)
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(toTodoResponse(todo))
}

// Delete removes one of the caller's todos.
func (h *Todo) Delete(c *fiber.Ctx) error {
	user, ok := h.contextManager.GetUserFromContext(c.UserContext())
	if !ok {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		h.logger.Debug("Todo handler: malformed todo id",
			"user_id", user.ID,
			"raw_id", c.Params("id"))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid todo id"})
	}

	if err := h.todoService.Delete(c.UserContext(), user.ID, id); err != nil {
		return handleError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
