package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"

	engine "github.com/thinkerbell/semantic-engine"
)

func newProcessApp(t *testing.T, p *engine.Pipeline) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Post("/process", NewProcessHandler(p, discardLogger()).Process)
	return app
}

// TestProcessFallbackBatch tests the full response shape for a keyword-mode
// batch
func TestProcessFallbackBatch(t *testing.T) {
	app := newProcessApp(t, newFallbackPipeline(t))

	status, payload := postJSON(t, app, "/process", map[string]any{
		"content": "The data clearly shows improvement. We should implement this immediately. Imagine a magical new campaign.",
	})
	if status != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %v", status, payload)
	}

	if payload["method"] != "go_backend" {
		t.Errorf("Expected method go_backend, got %v", payload["method"])
	}
	if payload["template_type"] != "slide_deck" {
		t.Errorf("Expected default template_type, got %v", payload["template_type"])
	}
	if payload["title"] != "Thinkerbell Brief" {
		t.Errorf("Expected default title, got %v", payload["title"])
	}
	if _, ok := payload["processing_time_ms"].(float64); !ok {
		t.Errorf("Expected numeric processing_time_ms, got %v", payload["processing_time_ms"])
	}

	routed, ok := payload["routed_content"].(map[string]any)
	if !ok {
		t.Fatalf("Expected routed_content object, got %v", payload["routed_content"])
	}
	if len(routed) != len(engine.Categories) {
		t.Errorf("Expected %d routed categories, got %d", len(engine.Categories), len(routed))
	}
	wisdom, ok := routed["Wisdom"].([]any)
	if !ok || len(wisdom) != 1 {
		t.Fatalf("Expected 1 Wisdom sentence, got %v", routed["Wisdom"])
	}
	sentence, ok := wisdom[0].(map[string]any)
	if !ok {
		t.Fatalf("Expected sentence object, got %v", wisdom[0])
	}
	if sentence["text"] != "The data clearly shows improvement" {
		t.Errorf("Unexpected sentence text: %v", sentence["text"])
	}
	if sentence["confidence"] != 0.7 {
		t.Errorf("Expected confidence 0.7, got %v", sentence["confidence"])
	}
	if sentence["processing_method"] != engine.MethodKeyword {
		t.Errorf("Expected keyword method tag, got %v", sentence["processing_method"])
	}

	analytics, ok := payload["analytics"].(map[string]any)
	if !ok {
		t.Fatalf("Expected analytics object, got %v", payload["analytics"])
	}
	if analytics["total_sentences"] != float64(3) {
		t.Errorf("Expected 3 total sentences, got %v", analytics["total_sentences"])
	}
	if analytics["dominant_category"] != "Wisdom" {
		t.Errorf("Expected dominant Wisdom, got %v", analytics["dominant_category"])
	}
	if analytics["high_confidence_items"] != float64(0) {
		t.Errorf("Expected 0 high-confidence items, got %v", analytics["high_confidence_items"])
	}
}

// TestProcessEchoesMetadata tests that custom template metadata round-trips
func TestProcessEchoesMetadata(t *testing.T) {
	app := newProcessApp(t, newFallbackPipeline(t))

	status, payload := postJSON(t, app, "/process", map[string]any{
		"content":              "The data clearly shows improvement.",
		"template_type":        "one_pager",
		"title":                "Q3 Campaign Brief",
		"confidence_threshold": 0.6,
	})
	if status != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %v", status, payload)
	}

	if payload["template_type"] != "one_pager" {
		t.Errorf("Expected template_type one_pager, got %v", payload["template_type"])
	}
	if payload["title"] != "Q3 Campaign Brief" {
		t.Errorf("Expected custom title, got %v", payload["title"])
	}
}

// TestProcessEmptyContent tests that empty content is a valid request
func TestProcessEmptyContent(t *testing.T) {
	app := newProcessApp(t, newFallbackPipeline(t))

	status, payload := postJSON(t, app, "/process", map[string]any{"content": ""})
	if status != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %v", status, payload)
	}

	analytics, ok := payload["analytics"].(map[string]any)
	if !ok {
		t.Fatalf("Expected analytics object, got %v", payload["analytics"])
	}
	if analytics["total_sentences"] != float64(0) {
		t.Errorf("Expected 0 total sentences, got %v", analytics["total_sentences"])
	}
	if analytics["error"] != engine.NoContentMarker {
		t.Errorf("Expected no-content marker, got %v", analytics["error"])
	}
}

// TestProcessInvalidThreshold tests the 400 on an out-of-range threshold
func TestProcessInvalidThreshold(t *testing.T) {
	app := newProcessApp(t, newFallbackPipeline(t))

	status, payload := postJSON(t, app, "/process", map[string]any{
		"content":              "The data clearly shows improvement.",
		"confidence_threshold": 1.5,
	})
	if status != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %v", status, payload)
	}
	msg, _ := payload["error"].(string)
	if !strings.Contains(msg, "threshold") {
		t.Errorf("Expected threshold error message, got %q", msg)
	}
}

// TestProcessMalformedBody tests the 400 on unparseable JSON
func TestProcessMalformedBody(t *testing.T) {
	app := newProcessApp(t, newFallbackPipeline(t))

	req := httptest.NewRequest(http.MethodPost, "/process", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	status, payload := doRequest(t, app, req)

	if status != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %v", status, payload)
	}
	if payload["error"] != "invalid request body" {
		t.Errorf("Expected invalid body error, got %v", payload["error"])
	}
}

// TestProcessZeroThresholdUsesDefault tests that an omitted threshold falls
// back to the pipeline default instead of failing validation
func TestProcessZeroThresholdUsesDefault(t *testing.T) {
	app := newProcessApp(t, newFallbackPipeline(t))

	status, payload := postJSON(t, app, "/process", map[string]any{
		"content":              "The data clearly shows improvement.",
		"confidence_threshold": 0,
	})
	if status != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %v", status, payload)
	}
}
