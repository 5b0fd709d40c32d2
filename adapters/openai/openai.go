package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"

	"github.com/thinkerbell/semantic-engine/internal/retry"
)

const OPENAI_EMBEDDING_MODEL = "text-embedding-3-small"

// openaiService handles generating embeddings through the OpenAI API
type openaiService struct {
	client     openai.Client
	model      string
	dimensions int
	retryCfg   retry.Config
}

// NewEmbeddingService creates a new embedding service
func NewEmbeddingService(apiKey string) *openaiService {
	return &openaiService{
		client:   openai.NewClient(option.WithAPIKey(apiKey)),
		model:    OPENAI_EMBEDDING_MODEL,
		retryCfg: retry.DefaultConfig(),
	}
}

// SetDimensions sets the requested output dimensions. Zero keeps the model's
// native dimension count.
func (es *openaiService) SetDimensions(dimensions int) {
	es.dimensions = dimensions
}

// SetModel sets the model for the embedding requests
func (es *openaiService) SetModel(model string) {
	es.model = model
}

// SetRetryConfig overrides the default retry policy
func (es *openaiService) SetRetryConfig(cfg retry.Config) {
	es.retryCfg = cfg
}

// Model returns the model identifier requests are sent with
func (es *openaiService) Model() string {
	return es.model
}

// GenerateEmbeddings generates embeddings for multiple texts in one OpenAI
// call. Vectors are placed in input order regardless of response ordering.
func (es *openaiService) GenerateEmbeddings(ctx context.Context, texts []string) ([][]float32, error) {
	params := openai.EmbeddingNewParams{
		Input: openai.EmbeddingNewParamsInputUnion{OfArrayOfStrings: texts},
		Model: openai.EmbeddingModel(es.model),
	}
	if es.dimensions > 0 {
		params.Dimensions = openai.Int(int64(es.dimensions))
	}

	var resp *openai.CreateEmbeddingResponse
	err := retry.Do(ctx, retry.Options{
		Config:       es.retryCfg,
		ErrorChecker: isRetryableError,
		APIName:      "OpenAI",
	}, func(ctx context.Context, attempt int) error {
		var err error
		resp, err = es.client.Embeddings.New(ctx, params)
		return err
	})

	if err != nil {
		return nil, fmt.Errorf("could not get embeddings: %w", err)
	}

	out := make([][]float32, len(texts))
	for _, item := range resp.Data {
		idx := int(item.Index)
		if idx < 0 || idx >= len(out) {
			return nil, fmt.Errorf("embedding response index %d out of range for %d inputs", idx, len(texts))
		}
		vec := make([]float32, len(item.Embedding))
		for i, v := range item.Embedding {
			vec[i] = float32(v)
		}
		out[idx] = vec
	}
	return out, nil
}

// isRetryableError retries rate limits and server-side failures, plus
// transport errors that are not a cancelled context.
func isRetryableError(err error) bool {
	var apierr *openai.Error
	if errors.As(err, &apierr) {
		return apierr.StatusCode == http.StatusTooManyRequests || apierr.StatusCode >= 500
	}
	return retry.Transient(err)
}
