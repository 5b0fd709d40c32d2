package engine

import "context"

// Encoder computes fixed-dimension embedding vectors for a batch of texts.
// Implementations wrap an external embedding provider; see the adapters
// package. Encode blocks on model inference and must honor ctx cancellation,
// but enforces no timeout of its own; callers needing bounded latency wrap
// the context. Implementations must be safe for concurrent use.
type Encoder interface {
	// Encode returns one vector per input text, in input order.
	Encode(ctx context.Context, texts []string) ([][]float32, error)

	// ModelName identifies the underlying embedding model.
	ModelName() string
}
