package handlers

import (
	"time"

	"github.com/gofiber/fiber/v3"

	engine "github.com/thinkerbell/semantic-engine"
	"github.com/thinkerbell/semantic-engine/internal/metrics"
)

// HealthHandler reports service liveness and pipeline state.
type HealthHandler struct {
	pipeline    *engine.Pipeline
	mlAvailable bool
}

// NewHealthHandler creates a new health handler. mlAvailable reports whether
// an embedding provider is configured at all.
func NewHealthHandler(pipeline *engine.Pipeline, mlAvailable bool) *HealthHandler {
	return &HealthHandler{pipeline: pipeline, mlAvailable: mlAvailable}
}

// Health handles the health check endpoint.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	metrics.RecordRequest("health")

	return c.JSON(fiber.Map{
		"status":       "healthy",
		"service":      ServiceName,
		"timestamp":    time.Now().Format(time.RFC3339),
		"ml_available": h.mlAvailable,
		"model_loaded": h.pipeline.Status().SimilarityModeActive,
	})
}

// Root handles the API information endpoint.
func (h *HealthHandler) Root(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"service":     ServiceName,
		"version":     ServiceVersion,
		"description": "Measured Magic for content classification",
		"endpoints": fiber.Map{
			"/health":  "Health check and system status",
			"/process": "Main semantic processing endpoint",
			"/explain": "Explain classification decisions",
			"/models":  "List available models",
			"/metrics": "Prometheus metrics",
		},
		"status":       "ready",
		"ml_available": h.mlAvailable,
	})
}
