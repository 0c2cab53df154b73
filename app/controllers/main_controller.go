package controllers

import "github.com/gofiber/fiber/v2"

// HandleStatus reports service liveness for load balancers and smoke tests.
func HandleStatus(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "online",
	})
}
