// Package handlers implements the JSON API of the semantic engine service.
package handlers

import (
	"github.com/gofiber/fiber/v3"
)

// Service identity reported by the descriptor and health endpoints.
const (
	ServiceName    = "Thinkerbell Semantic Engine"
	ServiceVersion = "1.0.0"
)

// jsonError returns an error response with the given HTTP status code.
func jsonError(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}
