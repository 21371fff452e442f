package handler

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/todokeeper/todokeeper-server/internal/logger"
	"github.com/todokeeper/todokeeper-server/internal/model"
)

// AuthService defines signup, login and profile operations.
type AuthService interface {
	Signup(ctx context.Context, params model.SignupParams) (model.Session, error)
	Login(ctx context.Context, params model.LoginParams) (model.Session, error)
	UpdateName(ctx context.Context, id uuid.UUID, name string) (model.User, error)
}

// Auth handles HTTP endpoints for authentication and the user profile.
type Auth struct {
	authService    AuthService
	contextManager model.ContextManager
	validate       *validator.Validate
	logger         *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, contextManager model.ContextManager, logger *logger.Logger) *Auth {
	return &Auth{
		authService:    authService,
		contextManager: contextManager,
		validate:       validator.New(),
		logger:         logger,
	}
}

type signupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Password string `json:"password" validate:"required,min=6,max=100"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateMeRequest struct {
	Name string `json:"name" validate:"required,min=2,max=50"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type sessionResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

func toUserResponse(user model.User) userResponse {
	return userResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
	}
}

// Signup registers a new user account.
func (h *Auth) Signup(c *fiber.Ctx) error {
	req := signupRequest{}
	if err := c.BodyParser(&req); err != nil {
		h.logger.Debug("Auth handler: failed to parse signup request",
			"error", err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		h.logger.Debug("Auth handler: invalid signup request",
			"error", err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	session, err := h.authService.Signup(c.UserContext(), model.SignupParams{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(sessionResponse{
		Token: session.Token,
		User:  toUserResponse(session.User),
	})
}

// Login authenticates with email and password.
func (h *Auth) Login(c *fiber.Ctx) error {
	req := loginRequest{}
	if err := c.BodyParser(&req); err != nil {
		h.logger.Debug("Auth handler: failed to parse login request",
			"error", err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		h.logger.Debug("Auth handler: invalid login request",
			"error", err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	session, err := h.authService.Login(c.UserContext(), model.LoginParams{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(sessionResponse{
		Token: session.Token,
		User:  toUserResponse(session.User),
	})
}

// Me returns the authenticated user.
func (h *Auth) Me(c *fiber.Ctx) error {
	user, ok := h.contextManager.GetUserFromContext(c.UserContext())
	if !ok {
		return unauthorized(c)
	}

	return c.Status(fiber.StatusOK).JSON(toUserResponse(user))
}

// UpdateMe changes the authenticated user's display name.
func (h *Auth) UpdateMe(c *fiber.Ctx) error {
	user, ok := h.contextManager.GetUserFromContext(c.UserContext())
	if !ok {
		return unauthorized(c)
	}

	req := updateMeRequest{}
	if err := c.BodyParser(&req); err != nil {
		h.logger.Debug("Auth handler: failed to parse profile update request",
			"user_id", user.ID,
			"error", err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		h.logger.Debug("Auth handler: invalid profile update request",
			"user_id", user.ID,
			"error", err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	updatedUser, err := h.authService.UpdateName(c.UserContext(), user.ID, req.Name)
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(toUserResponse(updatedUser))
}
