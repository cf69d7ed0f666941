package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"github.com/tomplanche/vps-back/internal/config"
)

// APIKeyAuth middleware to protect routes. It validates the `x-api-key`
// header against the configured API key.
func APIKeyAuth(cfg *config.Config) fiber.Handler {
	expected := []byte(cfg.APIKey)

	return func(c *fiber.Ctx) error {
		key := c.Get("x-api-key")
		if key == "" || subtle.ConstantTimeCompare([]byte(key), expected) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  fiber.StatusUnauthorized,
				"success": false,
				"error": fiber.Map{
					"message": "Invalid API key",
				},
			})
		}
		return c.Next()
	}
}
