package adapters

import (
	"context"
	"fmt"
	"os"

	"github.com/austinfhunter/voyageai"

	"github.com/thinkerbell/semantic-engine/adapters/openai"
	"github.com/thinkerbell/semantic-engine/adapters/voyage"
)

// VoyageEncoder adapts the Voyage embedding service to the engine's Encoder
// capability
type VoyageEncoder struct {
	service interface {
		GenerateEmbeddings(ctx context.Context, texts []string, embeddingType voyage.VoyageEmbeddingType) ([]voyageai.EmbeddingObject, error)
		SetModel(model string)
		SetDimensions(dimensions int)
		Model() string
	}
}

// NewVoyageEncoder creates a new encoder backed by Voyage AI
func NewVoyageEncoder(apiKey *string) (*VoyageEncoder, error) {
	key, err := loadEnvVar(apiKey, "VOYAGEAI_API_KEY")
	if err != nil {
		return nil, err
	}

	return &VoyageEncoder{
		service: voyage.NewEmbeddingService(*key),
	}, nil
}

// Encode implements the Encoder capability. Anchor descriptions and
// sentences are embedded the same way, so every text goes through as a
// document.
func (a *VoyageEncoder) Encode(ctx context.Context, texts []string) ([][]float32, error) {
	data, err := a.service.GenerateEmbeddings(ctx, texts, voyage.VoyageEmbeddingTypeDocument)
	if err != nil {
		return nil, err
	}

	out := make([][]float32, len(data))
	for i, obj := range data {
		out[i] = obj.Embedding
	}
	return out, nil
}

// ModelName implements the Encoder capability
func (a *VoyageEncoder) ModelName() string {
	return a.service.Model()
}

// SetModel overrides the default embedding model
func (a *VoyageEncoder) SetModel(model string) {
	a.service.SetModel(model)
}

// SetDimensions overrides the default output dimensions
func (a *VoyageEncoder) SetDimensions(dimensions int) {
	a.service.SetDimensions(dimensions)
}

// OpenAIEncoder adapts the OpenAI embedding service to the engine's Encoder
// capability
type OpenAIEncoder struct {
	service interface {
		GenerateEmbeddings(ctx context.Context, texts []string) ([][]float32, error)
		SetModel(model string)
		SetDimensions(dimensions int)
		Model() string
	}
}

// NewOpenAIEncoder creates a new encoder backed by the OpenAI embeddings API
func NewOpenAIEncoder(apiKey *string) (*OpenAIEncoder, error) {
	key, err := loadEnvVar(apiKey, "OPENAI_API_KEY")
	if err != nil {
		return nil, err
	}

	return &OpenAIEncoder{
		service: openai.NewEmbeddingService(*key),
	}, nil
}

// Encode implements the Encoder capability
func (a *OpenAIEncoder) Encode(ctx context.Context, texts []string) ([][]float32, error) {
	return a.service.GenerateEmbeddings(ctx, texts)
}

// ModelName implements the Encoder capability
func (a *OpenAIEncoder) ModelName() string {
	return a.service.Model()
}

// SetModel overrides the default embedding model
func (a *OpenAIEncoder) SetModel(model string) {
	a.service.SetModel(model)
}

// SetDimensions overrides the default output dimensions
func (a *OpenAIEncoder) SetDimensions(dimensions int) {
	a.service.SetDimensions(dimensions)
}

// loadEnvVar loads an environment variable into a pointer if no value is provided
func loadEnvVar(target *string, envKey string) (*string, error) {
	if target == nil {
		envVar := os.Getenv(envKey)
		if envVar == "" {
			return nil, fmt.Errorf("%s environment variable not set and no value provided", envKey)
		}
		return &envVar, nil
	}
	return target, nil
}
