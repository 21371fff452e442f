package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/todokeeper/todokeeper-server/internal/model"
)

// handleError maps service errors to HTTP responses. Anything outside
// the known sentinels becomes a generic 500 with no internal detail.
func handleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, model.ErrEmailTaken):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "email already registered"})
	case errors.Is(err, model.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "incorrect email or password"})
	case errors.Is(err, model.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}

// unauthorized is the uniform 401 response. Its body is identical for
// every auth failure mode.
func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "could not validate credentials"})
}
