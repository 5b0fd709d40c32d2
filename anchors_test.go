package engine

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/thinkerbell/semantic-engine/pkg/testutil"
)

// TestBuildAnchorCatalog tests the single batched provider call and the
// category-to-vector mapping
func TestBuildAnchorCatalog(t *testing.T) {
	enc := &testutil.MockEncoder{
		EncodeFunc: func(ctx context.Context, texts []string) ([][]float32, error) {
			out := make([][]float32, len(texts))
			for i := range texts {
				vec := make([]float32, 4)
				vec[i] = 1
				out[i] = vec
			}
			return out, nil
		},
	}

	catalog, err := BuildAnchorCatalog(context.Background(), enc)

	if err != nil {
		t.Fatalf("BuildAnchorCatalog() unexpected error: %v", err)
	}

	if enc.Calls() != 1 {
		t.Errorf("Expected a single batched Encode call, got %d", enc.Calls())
	}

	if len(enc.LastTexts) != len(Categories) {
		t.Fatalf("Expected %d anchor texts, got %d", len(Categories), len(enc.LastTexts))
	}

	// Descriptions are submitted in enumeration order
	if !strings.Contains(enc.LastTexts[0], "suspicion") {
		t.Errorf("Expected the Hunch description first, got %q", enc.LastTexts[0])
	}
	if !strings.Contains(enc.LastTexts[1], "Strategic insights") {
		t.Errorf("Expected the Wisdom description second, got %q", enc.LastTexts[1])
	}

	for i, cat := range Categories {
		vec := catalog.Vector(cat)
		if vec == nil {
			t.Fatalf("Expected a vector for %s", cat)
		}
		if vec[i] != 1 {
			t.Errorf("Vector(%s) = %v, want unit on axis %d", cat, vec, i)
		}
	}
}

// TestBuildAnchorCatalogProviderError tests that failures surface as
// InitializationError
func TestBuildAnchorCatalogProviderError(t *testing.T) {
	cause := errors.New("provider unavailable")
	enc := &testutil.MockEncoder{
		EncodeFunc: func(ctx context.Context, texts []string) ([][]float32, error) {
			return nil, cause
		},
	}

	catalog, err := BuildAnchorCatalog(context.Background(), enc)

	if catalog != nil {
		t.Error("Expected no catalog on provider failure")
	}

	var ierr *InitializationError
	if !errors.As(err, &ierr) {
		t.Fatalf("Expected InitializationError, got: %v", err)
	}
	if !errors.Is(err, cause) {
		t.Error("Expected InitializationError to wrap the provider error")
	}
}

// TestBuildAnchorCatalogVectorCountMismatch tests the partial-response guard
func TestBuildAnchorCatalogVectorCountMismatch(t *testing.T) {
	enc := &testutil.MockEncoder{
		EncodeFunc: func(ctx context.Context, texts []string) ([][]float32, error) {
			return [][]float32{{1}, {2}}, nil
		},
	}

	_, err := BuildAnchorCatalog(context.Background(), enc)

	var ierr *InitializationError
	if !errors.As(err, &ierr) {
		t.Fatalf("Expected InitializationError for short response, got: %v", err)
	}
}

// TestAnchorCatalogVectorUnknownCategory tests the nil result for a category
// outside the fixed set
func TestAnchorCatalogVectorUnknownCategory(t *testing.T) {
	catalog := basisCatalog(t)

	if vec := catalog.Vector(Category("Whimsy")); vec != nil {
		t.Errorf("Expected nil vector for unknown category, got %v", vec)
	}
}

// TestAnchorTextsCoverAllCategories tests the fixed description table
func TestAnchorTextsCoverAllCategories(t *testing.T) {
	if len(anchorTexts) != len(Categories) {
		t.Fatalf("Expected %d anchor texts, got %d", len(Categories), len(anchorTexts))
	}

	for _, cat := range Categories {
		text, ok := anchorTexts[cat]
		if !ok {
			t.Errorf("Missing anchor description for %s", cat)
			continue
		}
		if strings.TrimSpace(text) == "" {
			t.Errorf("Empty anchor description for %s", cat)
		}
	}
}
