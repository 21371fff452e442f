package router

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpctx "github.com/todokeeper/todokeeper-server/internal/api/http/context"
	"github.com/todokeeper/todokeeper-server/internal/api/http/handler"
	"github.com/todokeeper/todokeeper-server/internal/api/http/middleware"
	"github.com/todokeeper/todokeeper-server/internal/mocks"
	"github.com/todokeeper/todokeeper-server/internal/testutil"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	lg := testutil.MakeNoopLogger()
	ctxMgr := httpctx.NewManager()

	authHandler := handler.NewAuth(mocks.NewAuthService(t), ctxMgr, lg)
	todoHandler := handler.NewTodo(mocks.NewTodoService(t), ctxMgr, lg)
	authenticate := middleware.NewAuthenticate(mocks.NewTokenManager(t), mocks.NewUserStore(t), ctxMgr, lg)
	logging := middleware.NewLogging(lg)

	return New(authHandler, todoHandler, authenticate, logging, "*").Register()
}

func TestRouter_Health(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/health", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRouter_ProtectedRoutesRequireToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		method string
		target string
	}{
		{fiber.MethodGet, "/auth/me"},
		{fiber.MethodPut, "/auth/me"},
		{fiber.MethodGet, "/todos"},
		{fiber.MethodPost, "/todos"},
		{fiber.MethodGet, "/todos/00000000-0000-0000-0000-000000000001"},
		{fiber.MethodPut, "/todos/00000000-0000-0000-0000-000000000001"},
		{fiber.MethodDelete, "/todos/00000000-0000-0000-0000-000000000001"},
	}

	app := newTestApp(t)

	for _, tt := range tests {
		resp, err := app.Test(httptest.NewRequest(tt.method, tt.target, nil))
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, "%s %s", tt.method, tt.target)
	}
}

func TestRouter_PublicAuthRoutesRegistered(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	// Empty bodies fail validation, which proves the route reached the
	// handler instead of a 404 or the auth middleware.
	for _, target := range []string{"/auth/signup", "/auth/login"} {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, target, nil))
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, target)
	}
}
