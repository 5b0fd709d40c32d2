package server

import (
	"log/slog"

	"github.com/gofiber/fiber/v3/middleware/adaptor"

	engine "github.com/thinkerbell/semantic-engine"
	"github.com/thinkerbell/semantic-engine/internal/config"
	"github.com/thinkerbell/semantic-engine/internal/handlers"
	"github.com/thinkerbell/semantic-engine/internal/metrics"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(pipeline *engine.Pipeline, logger *slog.Logger) {
	mlAvailable := s.Cfg.Embedding.Provider != config.ProviderNone

	processHandler := handlers.NewProcessHandler(pipeline, logger)
	explainHandler := handlers.NewExplainHandler(pipeline, logger)
	healthHandler := handlers.NewHealthHandler(pipeline, mlAvailable)
	modelsHandler := handlers.NewModelsHandler(pipeline, mlAvailable)

	s.App.Get("/", healthHandler.Root)
	s.App.Get("/health", healthHandler.Health)
	s.App.Post("/process", processHandler.Process)
	s.App.Post("/explain", explainHandler.Explain)
	s.App.Get("/models", modelsHandler.Models)
	s.App.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))
}
