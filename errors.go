package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidThreshold is returned when a caller passes a confidence
// threshold outside (0, 1]. This is the only classification input error
// surfaced to callers; quality degradations are absorbed and logged.
var ErrInvalidThreshold = errors.New("confidence threshold must be in (0, 1]")

// InitializationError wraps an embedding-provider failure during anchor
// catalog construction. The pipeline treats it as non-fatal and switches to
// fallback mode instead of aborting.
type InitializationError struct {
	// Stage names the initialization step that failed ("encode_anchors",
	// "encoder_setup").
	Stage string
	Err   error
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("initialization failed at %s: %v", e.Stage, e.Err)
}

func (e *InitializationError) Unwrap() error {
	return e.Err
}

// ProviderError wraps an embedding-provider failure during classification of
// a single sentence. The similarity classifier absorbs it and degrades the
// affected sentence; it never propagates out of a request.
type ProviderError struct {
	Op  string
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("embedding provider %s failed: %v", e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
