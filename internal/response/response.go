// Package response provides the standard JSON envelopes used by every
// endpoint. Successful responses wrap their payload in {"data": ...},
// optionally with a "_metadata" pagination block; errors use
// {"error": {"message": ...}}.
package response

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/tomplanche/vps-back/internal/pagination"
)

// Data sends a 200 response with the payload wrapped in the data envelope.
func Data(c *fiber.Ctx, data interface{}) error {
	return c.JSON(fiber.Map{
		"data": data,
	})
}

// DataWithMetadata sends a 200 response with data and pagination metadata.
func DataWithMetadata(c *fiber.Ctx, data interface{}, meta pagination.Metadata) error {
	return c.JSON(fiber.Map{
		"_metadata": meta,
		"data":      data,
	})
}

// BadRequest sends a 400 with a descriptive message.
func BadRequest(c *fiber.Ctx, message string) error {
	return errorResponse(c, fiber.StatusBadRequest, message)
}

// NotFound sends a 404 with a descriptive message.
func NotFound(c *fiber.Ctx, message string) error {
	return errorResponse(c, fiber.StatusNotFound, message)
}

// Internal logs the underlying cause server-side and sends a 500 with a
// generic message. Internal details never reach the client.
func Internal(c *fiber.Ctx, err error, message string) error {
	log.Printf("Internal error: %s: %v", message, err)
	return errorResponse(c, fiber.StatusInternalServerError, "Internal server error")
}

func errorResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"message": message,
		},
	})
}
