package voyage

import (
	"context"
	"fmt"
	"sync"

	"github.com/austinfhunter/voyageai"

	"github.com/thinkerbell/semantic-engine/internal/retry"
)

var client *voyageai.VoyageClient
var once sync.Once

const EMBEDDING_DIMENSIONS = 1024

const VOYAGEAI_EMBEDDING_MODEL = "voyage-3.5-lite"

type VoyageEmbeddingType string

const (
	VoyageEmbeddingTypeDocument VoyageEmbeddingType = "document"
	VoyageEmbeddingTypeQuery    VoyageEmbeddingType = "query"
	VoyageEmbeddingTypeDefault  VoyageEmbeddingType = ""
)

// voyageService handles generating embeddings for text
type voyageService struct {
	dimensions int
	model      string
	retryCfg   retry.Config
}

// NewEmbeddingService creates a new embedding service
func NewEmbeddingService(apiKey string) *voyageService {
	once.Do(func() {
		client = voyageai.NewClient(&voyageai.VoyageClientOpts{
			Key: apiKey,
		})
	})

	instance := &voyageService{
		dimensions: EMBEDDING_DIMENSIONS,
		model:      VOYAGEAI_EMBEDDING_MODEL,
		retryCfg:   retry.DefaultConfig(),
	}

	return instance
}

// SetDimensions sets the dimensions for the embedding model
func (es *voyageService) SetDimensions(dimensions int) {
	es.dimensions = dimensions
}

// SetModel sets the model for the embedding model
func (es *voyageService) SetModel(model string) {
	es.model = model
}

// SetRetryConfig overrides the default retry policy
func (es *voyageService) SetRetryConfig(cfg retry.Config) {
	es.retryCfg = cfg
}

// Model returns the model identifier requests are sent with
func (es *voyageService) Model() string {
	return es.model
}

// GenerateEmbeddings generates embeddings for multiple texts in one VoyageAI
// call, in input order. The SDK does not accept a context, so ctx only gates
// the retry loop.
func (es *voyageService) GenerateEmbeddings(ctx context.Context, texts []string, embeddingType VoyageEmbeddingType) ([]voyageai.EmbeddingObject, error) {
	dimensions := es.GetEmbeddingDimensions()
	inputType := parseEmbeddingType(embeddingType)

	var embeddings *voyageai.EmbeddingResponse
	err := retry.Do(ctx, retry.Options{
		Config:  es.retryCfg,
		APIName: "VoyageAI",
	}, func(ctx context.Context, attempt int) error {
		var err error
		embeddings, err = client.Embed(
			texts,
			es.model,
			&voyageai.EmbeddingRequestOpts{
				InputType:       inputType,
				OutputDimension: &dimensions,
			},
		)
		return err
	})

	if err != nil {
		return nil, fmt.Errorf("could not get embeddings: %w", err)
	}

	return embeddings.Data, nil
}

// GenerateEmbedding generates an embedding for a single text using VoyageAI
func (es *voyageService) GenerateEmbedding(ctx context.Context, text string, embeddingType VoyageEmbeddingType) ([]float32, error) {
	data, err := es.GenerateEmbeddings(ctx, []string{text}, embeddingType)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("no embedding returned for text")
	}
	return data[0].Embedding, nil
}

func parseEmbeddingType(embeddingType VoyageEmbeddingType) *string {
	if embeddingType != VoyageEmbeddingTypeDefault {
		value := string(embeddingType)
		return &value
	}
	return nil
}

// GetEmbeddingDimensions returns the dimension count for the embedding model
func (es *voyageService) GetEmbeddingDimensions() int {
	return es.dimensions
}
