package handlers

import (
	"github.com/gofiber/fiber/v3"

	engine "github.com/thinkerbell/semantic-engine"
	"github.com/thinkerbell/semantic-engine/adapters/openai"
	"github.com/thinkerbell/semantic-engine/adapters/voyage"
	"github.com/thinkerbell/semantic-engine/internal/metrics"
)

// ModelInfo describes one selectable embedding model.
type ModelInfo struct {
	Name        string `json:"name"`
	Provider    string `json:"provider"`
	Description string `json:"description"`
	Dimensions  int    `json:"dimensions"`
}

// ModelsHandler lists the embedding models the service can run on.
type ModelsHandler struct {
	pipeline    *engine.Pipeline
	mlAvailable bool
}

// NewModelsHandler creates a new models handler.
func NewModelsHandler(pipeline *engine.Pipeline, mlAvailable bool) *ModelsHandler {
	return &ModelsHandler{pipeline: pipeline, mlAvailable: mlAvailable}
}

// Models handles the model listing endpoint.
func (h *ModelsHandler) Models(c fiber.Ctx) error {
	status := h.pipeline.Status()
	current := status.ModelID
	if current == "" {
		current = "none"
	}

	metrics.RecordRequest("models")

	return c.JSON(fiber.Map{
		"current_model":        current,
		"similarity_available": h.mlAvailable,
		"model_loaded":         status.SimilarityModeActive,
		"available_models": []ModelInfo{
			{
				Name:        voyage.VOYAGEAI_EMBEDDING_MODEL,
				Provider:    "voyageai",
				Description: "Fast, lightweight embedding model (default)",
				Dimensions:  voyage.EMBEDDING_DIMENSIONS,
			},
			{
				Name:        openai.OPENAI_EMBEDDING_MODEL,
				Provider:    "openai",
				Description: "High quality text embeddings",
				Dimensions:  1536,
			},
		},
		"fallback_method": "keyword-based classification",
	})
}
