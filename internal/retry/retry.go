package retry

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"time"
)

// Config holds the configuration for retry logic
type Config struct {
	MaxRetries      int
	BaseDelay       time.Duration
	MaxDelay        time.Duration
	BackoffMultiple float64
}

// DefaultConfig returns a sensible default retry configuration
func DefaultConfig() Config {
	return Config{
		MaxRetries:      3,
		BaseDelay:       200 * time.Millisecond,
		MaxDelay:        5 * time.Second,
		BackoffMultiple: 2.0,
	}
}

// ErrorChecker determines whether an error should trigger another attempt.
type ErrorChecker func(err error) bool

// AttemptFunc is one attempt of the operation under retry.
type AttemptFunc func(ctx context.Context, attempt int) error

// Options configures retry behavior
type Options struct {
	Config       Config
	ErrorChecker ErrorChecker
	Logger       *slog.Logger
	APIName      string
}

// calculateDelay computes the delay for the given attempt using exponential backoff
func (c Config) calculateDelay(attempt int) time.Duration {
	delay := time.Duration(float64(c.BaseDelay) * math.Pow(c.BackoffMultiple, float64(attempt)))
	if delay > c.MaxDelay {
		delay = c.MaxDelay
	}
	return delay
}

// Transient is the default ErrorChecker: any failure is worth retrying
// except a cancelled or expired context, which means the caller gave up.
func Transient(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// Do runs fn with the configured retry logic. It returns nil as soon as an
// attempt succeeds, the last error once attempts are exhausted, and the first
// non-retryable error immediately.
func Do(ctx context.Context, opts Options, fn AttemptFunc) error {
	if opts.ErrorChecker == nil {
		opts.ErrorChecker = Transient
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	var lastErr error

	for attempt := 0; attempt <= opts.Config.MaxRetries; attempt++ {
		// Delay before retry, but not on the first attempt.
		if attempt > 0 {
			delay := opts.Config.calculateDelay(attempt - 1)
			opts.Logger.Debug("retrying API request",
				"api", opts.APIName,
				"attempt", attempt+1,
				"max_attempts", opts.Config.MaxRetries+1,
				"delay", delay)

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		err := fn(ctx, attempt)
		if err == nil {
			if attempt > 0 {
				opts.Logger.Debug("API request succeeded after retry",
					"api", opts.APIName, "attempt", attempt+1)
			}
			return nil
		}
		lastErr = err

		if !opts.ErrorChecker(err) {
			return err
		}
		opts.Logger.Warn("retryable API error",
			"api", opts.APIName,
			"attempt", attempt+1,
			"max_attempts", opts.Config.MaxRetries+1,
			"error", err)
	}

	return &ExhaustedError{
		APIName:     opts.APIName,
		MaxAttempts: opts.Config.MaxRetries + 1,
		LastErr:     lastErr,
	}
}

// ExhaustedError reports that every retry attempt failed.
type ExhaustedError struct {
	APIName     string
	MaxAttempts int
	LastErr     error
}

func (e *ExhaustedError) Error() string {
	return "retry attempts exhausted for " + e.APIName + " API"
}

func (e *ExhaustedError) Unwrap() error {
	return e.LastErr
}
