package handler

import "github.com/gofiber/fiber/v2"

// Health reports service liveness.
func Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
}
