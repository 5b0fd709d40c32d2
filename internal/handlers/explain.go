package handlers

import (
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	engine "github.com/thinkerbell/semantic-engine"
	"github.com/thinkerbell/semantic-engine/internal/metrics"
)

// ExplainRequest is the body of POST /explain.
type ExplainRequest struct {
	Sentence string `json:"sentence"`
}

// ExplainHandler narrates single-sentence classification decisions.
type ExplainHandler struct {
	pipeline *engine.Pipeline
	logger   *slog.Logger
}

// NewExplainHandler creates a new explain handler.
func NewExplainHandler(pipeline *engine.Pipeline, logger *slog.Logger) *ExplainHandler {
	return &ExplainHandler{pipeline: pipeline, logger: logger}
}

// Explain classifies one sentence with the active strategy and explains the
// decision. Works in fallback mode too.
func (h *ExplainHandler) Explain(c fiber.Ctx) error {
	var req ExplainRequest
	if err := c.Bind().Body(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	category, confidence, err := h.pipeline.ClassifySentence(
		c.Context(), req.Sentence, h.pipeline.DefaultThreshold())
	if err != nil {
		h.logger.Error("explanation failed", "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "explanation failed")
	}

	method := engine.MethodKeyword
	if h.pipeline.Status().SimilarityModeActive {
		method = engine.MethodSimilarity
	}

	metrics.RecordRequest("explain")

	return c.JSON(fiber.Map{
		"sentence":    req.Sentence,
		"category":    category,
		"confidence":  confidence,
		"explanation": explain(category, confidence),
		"method":      method,
	})
}

// explain builds the reader-facing narration for a classification.
func explain(category engine.Category, confidence float64) string {
	explanation := fmt.Sprintf("Classified as '%s' with %.1f%% confidence. ", category, confidence*100)
	switch {
	case confidence > 0.7:
		explanation += "High confidence classification based on semantic similarity to category anchors."
	case confidence > 0.5:
		explanation += "Moderate confidence classification. Consider reviewing for accuracy."
	default:
		explanation += "Low confidence classification. Defaulted to 'Hunch' category."
	}
	return explanation
}
