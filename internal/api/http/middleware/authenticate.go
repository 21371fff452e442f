package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/todokeeper/todokeeper-server/internal/logger"
	"github.com/todokeeper/todokeeper-server/internal/model"
)

// TokenParser resolves a user id from a bearer token.
type TokenParser interface {
	Parse(token string) (uuid.UUID, error)
}

// Authenticate validates bearer tokens, resolves the user and injects
// it into the request context.
type Authenticate struct {
	tokens         TokenParser
	userStore      model.UserStore
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokens TokenParser, userStore model.UserStore, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{
		tokens:         tokens,
		userStore:      userStore,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Handle parses the Authorization header, verifies the token and loads
// the user. Every failure mode gets the same 401 response so a caller
// cannot probe which step rejected it.
func (m *Authenticate) Handle(c *fiber.Ctx) error {
	user, err := m.authenticateUser(c.UserContext(), c.Get(fiber.HeaderAuthorization))
	if err != nil {
		m.logger.Debug("Authenticate middleware: request rejected",
			"path", c.Path(),
			"error", err.Error())
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "could not validate credentials",
		})
	}

	c.SetUserContext(m.contextManager.SetUserToContext(c.UserContext(), user))

	return c.Next()
}

func (m *Authenticate) authenticateUser(ctx context.Context, authHeader string) (model.User, error) {
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == "" || tokenString == authHeader {
		return model.User{}, model.ErrInvalidToken
	}

	userID, err := m.tokens.Parse(tokenString)
	if err != nil {
		return model.User{}, model.ErrInvalidToken
	}

	// A token whose subject no longer resolves to a user is treated as
	// invalid credentials, not as a distinct error.
	user, err := m.userStore.GetByID(ctx, userID)
	if err != nil {
		return model.User{}, model.ErrInvalidToken
	}

	return user, nil
}
