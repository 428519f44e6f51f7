package helper

import (
	"github.com/gofiber/fiber/v2"
)

// ✅ Created: 201 with the {success,data} envelope used by the POST endpoints
func Created(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

// ❌ Error: plain {error} body, used by GET/PUT/DELETE failures
func Error(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"error": message,
	})
}

// ❌ Failure: {success:false,error} body, used by POST failures
func Failure(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}
