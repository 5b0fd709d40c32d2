package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	engine "github.com/thinkerbell/semantic-engine"
	"github.com/thinkerbell/semantic-engine/internal/metrics"
)

// ProcessRequest is the body of POST /process. A zero confidence threshold
// means "use the configured default".
type ProcessRequest struct {
	Content             string  `json:"content"`
	TemplateType        string  `json:"template_type"`
	Title               string  `json:"title"`
	ConfidenceThreshold float64 `json:"confidence_threshold"`
}

// ProcessResponse wraps a classification result with request metadata.
type ProcessResponse struct {
	RoutedContent    map[engine.Category][]engine.ClassifiedSentence `json:"routed_content"`
	Analytics        *engine.AnalyticsReport                         `json:"analytics"`
	ProcessingTimeMS float64                                         `json:"processing_time_ms"`
	Method           string                                          `json:"method"`
	TemplateType     string                                          `json:"template_type"`
	Title            string                                          `json:"title"`
}

// ProcessHandler handles the main classification endpoint.
type ProcessHandler struct {
	pipeline *engine.Pipeline
	logger   *slog.Logger
}

// NewProcessHandler creates a new process handler.
func NewProcessHandler(pipeline *engine.Pipeline, logger *slog.Logger) *ProcessHandler {
	return &ProcessHandler{pipeline: pipeline, logger: logger}
}

// Process classifies the request content and returns routed sentences plus
// batch analytics.
func (h *ProcessHandler) Process(c fiber.Ctx) error {
	var req ProcessRequest
	if err := c.Bind().Body(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if req.TemplateType == "" {
		req.TemplateType = "slide_deck"
	}
	if req.Title == "" {
		req.Title = "Thinkerbell Brief"
	}
	threshold := req.ConfidenceThreshold
	if threshold == 0 {
		threshold = h.pipeline.DefaultThreshold()
	}

	h.logger.Info("processing content", "chars", len(req.Content))

	result, err := h.pipeline.ClassifyText(c.Context(), req.Content, threshold)
	if err != nil {
		if errors.Is(err, engine.ErrInvalidThreshold) {
			return jsonError(c, fiber.StatusBadRequest, err.Error())
		}
		h.logger.Error("processing failed", "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "processing failed")
	}

	metrics.RecordRequest("process")
	for category, sentences := range result.RoutedContent {
		metrics.RecordSentences(string(category), result.Analytics.Method, len(sentences))
	}
	metrics.ObserveProcessing(result.ProcessingTimeMS)

	h.logger.Info("processing complete", "sentences", result.Analytics.TotalSentences)

	return c.JSON(ProcessResponse{
		RoutedContent:    result.RoutedContent,
		Analytics:        result.Analytics,
		ProcessingTimeMS: result.ProcessingTimeMS,
		Method:           "go_backend",
		TemplateType:     req.TemplateType,
		Title:            req.Title,
	})
}
