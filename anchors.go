package engine

import (
	"context"
	"fmt"
)

// anchorTexts are the reference descriptions each category is anchored to.
// Sentence classification compares sentence embeddings against the embeddings
// of these descriptions, so the wording is part of the model contract: the
// descriptions name the signals (speculation, evidence, recommendation,
// creative flourish) the categories are meant to capture.
var anchorTexts = map[Category]string{
	CategoryHunch: "A clever suspicion, intuitive idea, or hypothesis. " +
		"Often playful speculation without concrete proof yet. " +
		"Keywords: guess, intuition, feeling, suspect, theory, wonder, might, think.",
	CategoryWisdom: "Strategic insights backed by data, research, or experience. " +
		"Evidence-based knowledge and proven learnings. " +
		"Keywords: research, data, studies, evidence, analysis, statistics, shows, proves.",
	CategoryNudge: "Recommended actions, behavioral suggestions, or next steps. " +
		"Gentle pushes toward desired behaviors or decisions. " +
		"Keywords: should, recommend, suggest, action, try, implement, do, start.",
	CategorySpell: "Magical creative flourishes, surprising executions, or innovative ideas. " +
		"Unexpected solutions that feel almost magical in their creativity. " +
		"Keywords: magical, surprising, creative, innovative, extraordinary, imagine, picture.",
}

// AnchorCatalog holds the embedded anchor vectors the similarity classifier
// scores sentences against. A catalog is immutable once built and safe for
// concurrent readers.
type AnchorCatalog struct {
	vectors map[Category][]float32
}

// BuildAnchorCatalog embeds every anchor description in a single batched
// Encode call and returns the resulting catalog. Any provider failure is
// returned as an *InitializationError; no partial catalog is ever produced.
func BuildAnchorCatalog(ctx context.Context, enc Encoder) (*AnchorCatalog, error) {
	texts := make([]string, 0, len(Categories))
	for _, cat := range Categories {
		texts = append(texts, anchorTexts[cat])
	}

	vecs, err := enc.Encode(ctx, texts)
	if err != nil {
		return nil, &InitializationError{Stage: "encode_anchors", Err: err}
	}
	if len(vecs) != len(Categories) {
		return nil, &InitializationError{
			Stage: "encode_anchors",
			Err:   fmt.Errorf("expected %d anchor vectors, got %d", len(Categories), len(vecs)),
		}
	}

	vectors := make(map[Category][]float32, len(Categories))
	for i, cat := range Categories {
		vectors[cat] = vecs[i]
	}
	return &AnchorCatalog{vectors: vectors}, nil
}

// Vector returns the anchor embedding for cat, or nil if the catalog does not
// contain it.
func (c *AnchorCatalog) Vector(cat Category) []float32 {
	return c.vectors[cat]
}
