package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	engine "github.com/thinkerbell/semantic-engine"
	"github.com/thinkerbell/semantic-engine/adapters"
	"github.com/thinkerbell/semantic-engine/internal/config"
	"github.com/thinkerbell/semantic-engine/internal/logging"
	"github.com/thinkerbell/semantic-engine/internal/metrics"
	"github.com/thinkerbell/semantic-engine/internal/server"
)

func main() {
	slog.SetDefault(logging.New("info"))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config error", "err", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging.Level)
	slog.SetDefault(logger)

	pipeline := buildPipeline(cfg, logger)

	// Anchor embedding happens here; give the provider a bounded window.
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	if pipeline.Initialize(ctx) {
		logger.Info("server ready with semantic similarity", "model", pipeline.Status().ModelID)
	} else {
		logger.Info("server ready with keyword fallback")
	}
	cancel()

	metrics.Init()

	srv := server.New(cfg)
	srv.RegisterRoutes(pipeline, logger)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
	}()
	logger.Info("server started", "addr", cfg.Server.Addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.Info("shutting down", "signal", sig)

	if err := srv.Shutdown(); err != nil {
		logger.Error("shutdown error", "err", err)
		os.Exit(1)
	}
	logger.Info("server exited")
}

// buildPipeline assembles the classification core for the configured
// provider. A provider that cannot be constructed (missing credentials)
// demotes the service to keyword fallback rather than aborting startup.
func buildPipeline(cfg *config.Config, logger *slog.Logger) *engine.Pipeline {
	engineCfg := engine.Config{
		Threshold: cfg.Classification.ConfidenceThreshold,
		Logger:    logger,
	}

	switch cfg.Embedding.Provider {
	case config.ProviderNone:
		engineCfg.FallbackOnly = true

	case config.ProviderOpenAI:
		enc, err := adapters.NewOpenAIEncoder(nil)
		if err != nil {
			logger.Warn("openai encoder unavailable, relying on fallback", "err", err)
			engineCfg.FallbackOnly = true
			break
		}
		if cfg.Embedding.Model != "" {
			enc.SetModel(cfg.Embedding.Model)
		}
		if cfg.Embedding.Dimensions > 0 {
			enc.SetDimensions(cfg.Embedding.Dimensions)
		}
		engineCfg.Encoder = enc

	case config.ProviderVoyage:
		enc, err := adapters.NewVoyageEncoder(nil)
		if err != nil {
			logger.Warn("voyage encoder unavailable, relying on fallback", "err", err)
			engineCfg.FallbackOnly = true
			break
		}
		if cfg.Embedding.Model != "" {
			enc.SetModel(cfg.Embedding.Model)
		}
		if cfg.Embedding.Dimensions > 0 {
			enc.SetDimensions(cfg.Embedding.Dimensions)
		}
		engineCfg.Encoder = enc
	}

	return engine.NewPipeline(engineCfg)
}
