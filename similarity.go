package engine

import (
	"context"
	"errors"
	"log/slog"
	"math"
)

// degradedConfidence is the score reported for a sentence whose embedding
// could not be computed. Requests are never failed for quality reasons, so a
// provider error turns into a low-confidence Hunch instead of propagating.
const degradedConfidence = 0.3

// similarityClassifier assigns categories by comparing sentence embeddings
// against the anchor catalog. It is read-only after construction and safe for
// concurrent use as long as the Encoder is.
type similarityClassifier struct {
	enc     Encoder
	catalog *AnchorCatalog
	logger  *slog.Logger
}

// Classify embeds the sentence and picks the category whose anchor is most
// similar. If the best score falls below threshold the category is forced to
// CategoryHunch but the score is reported as-is, so callers can see how far
// below threshold the match landed. Provider failures are logged and degrade
// to (CategoryHunch, degradedConfidence).
func (sc *similarityClassifier) Classify(ctx context.Context, sentence string, threshold float64) (Category, float64) {
	vecs, err := sc.enc.Encode(ctx, []string{sentence})
	if err == nil && len(vecs) == 0 {
		err = errors.New("provider returned no vectors")
	}
	if err != nil {
		perr := &ProviderError{Op: "encode_sentence", Err: err}
		sc.logger.Warn("sentence classification degraded", "error", perr)
		return CategoryHunch, degradedConfidence
	}

	best := CategoryHunch
	bestScore := -1.0
	for _, cat := range Categories {
		score := cosineSimilarity(vecs[0], sc.catalog.Vector(cat))
		if score > bestScore {
			best = cat
			bestScore = score
		}
	}

	if bestScore < threshold {
		return CategoryHunch, bestScore
	}
	return best, bestScore
}

// cosineSimilarity returns the cosine of the angle between a and b, clamped
// to [0, 1] so it can be used directly as a confidence score. Accumulation is
// done in float64 to avoid drift over long float32 vectors. Mismatched or
// zero-magnitude vectors score 0.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		x := float64(a[i])
		y := float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	score := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
