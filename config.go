package engine

import "log/slog"

const (
	// DefaultThreshold is the confidence floor applied when callers do not
	// supply their own.
	DefaultThreshold = 0.3
)

// Config holds configuration for the Pipeline.
type Config struct {
	// Encoder computes sentence embeddings. If nil, Initialize constructs
	// the default (Voyage AI); if that fails the pipeline runs in keyword
	// fallback mode instead of aborting.
	Encoder Encoder

	// FallbackOnly skips encoder construction entirely and pins the pipeline
	// to keyword classification. Used when no embedding provider is
	// configured for the process.
	FallbackOnly bool

	// Threshold is the default confidence floor in (0, 1]. If 0, uses
	// DefaultThreshold.
	Threshold float64

	// Logger receives lifecycle and degradation events. If nil, uses
	// slog.Default().
	Logger *slog.Logger
}

// applyDefaults fills in default values for unset config fields
func (c *Config) applyDefaults() {
	if c.Threshold == 0 {
		c.Threshold = DefaultThreshold
	}

	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}
