package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/todokeeper/todokeeper-server/internal/api/http/handler"
	"github.com/todokeeper/todokeeper-server/internal/api/http/middleware"
)

// Router wires handlers and middleware into a Fiber application.
type Router struct {
	authHandler  *handler.Auth
	todoHandler  *handler.Todo
	authenticate *middleware.Authenticate
	logging      *middleware.Logging
	allowOrigins string
}

// New creates a Router from its handlers and middleware.
func New(
	authHandler *handler.Auth,
	todoHandler *handler.Todo,
	authenticate *middleware.Authenticate,
	logging *middleware.Logging,
	allowOrigins string,
) *Router {
	return &Router{
		authHandler:  authHandler,
		todoHandler:  todoHandler,
		authenticate: authenticate,
		logging:      logging,
		allowOrigins: allowOrigins,
	}
}

// Register builds the Fiber app with all routes attached. Signup and
// login are public; everything else under /auth and /todos requires a
// bearer token.
func (r *Router) Register() *fiber.App {
	app := fiber.New()

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: r.allowOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))
	app.Use(r.logging.Handle)

	app.Get("/health", handler.Health)

	auth := app.Group("/auth")
	auth.Post("/signup", r.authHandler.Signup)
	auth.Post("/login", r.authHandler.Login)
	auth.Get("/me", r.authenticate.Handle, r.authHandler.Me)
	auth.Put("/me", r.authenticate.Handle, r.authHandler.UpdateMe)

	todos := app.Group("/todos", r.authenticate.Handle)
	todos.Get("/", r.todoHandler.List)
	todos.Post("/", r.todoHandler.Create)
	todos.Get("/:id", r.todoHandler.Get)
	todos.Put("/:id", r.todoHandler.Update)
	todos.Delete("/:id", r.todoHandler.Delete)

	return app
}
