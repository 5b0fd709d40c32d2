package testutil

import (
	"context"
	"sync"
)

// MockEncoder is a mock embedding provider for testing. It satisfies the
// engine's Encoder capability without importing it.
type MockEncoder struct {
	EncodeFunc func(ctx context.Context, texts []string) ([][]float32, error)

	// Model is returned by ModelName; defaults to "mock-encoder".
	Model string

	mu        sync.Mutex
	CallCount int
	LastTexts []string
}

func (m *MockEncoder) Encode(ctx context.Context, texts []string) ([][]float32, error) {
	m.mu.Lock()
	m.CallCount++
	m.LastTexts = texts
	m.mu.Unlock()

	if m.EncodeFunc != nil {
		return m.EncodeFunc(ctx, texts)
	}

	// Default: one deterministic vector per text derived from its length
	out := make([][]float32, len(texts))
	for i, text := range texts {
		vec := make([]float32, 8)
		for j := range vec {
			vec[j] = float32((len(text)+j)%7+1) / 8.0
		}
		out[i] = vec
	}
	return out, nil
}

func (m *MockEncoder) ModelName() string {
	if m.Model != "" {
		return m.Model
	}
	return "mock-encoder"
}

// Calls reports how many Encode invocations the mock has served.
func (m *MockEncoder) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.CallCount
}
