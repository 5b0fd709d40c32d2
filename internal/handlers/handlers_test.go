package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"

	engine "github.com/thinkerbell/semantic-engine"
	"github.com/thinkerbell/semantic-engine/pkg/testutil"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newFallbackPipeline returns an initialized keyword-mode pipeline.
func newFallbackPipeline(t *testing.T) *engine.Pipeline {
	t.Helper()
	p := engine.NewPipeline(engine.Config{FallbackOnly: true, Logger: discardLogger()})
	p.Initialize(context.Background())
	return p
}

// newSimilarityPipeline returns a pipeline in similarity mode backed by a
// mock encoder that scores every sentence 1.0 against the Nudge anchor.
func newSimilarityPipeline(t *testing.T) *engine.Pipeline {
	t.Helper()
	enc := &testutil.MockEncoder{
		EncodeFunc: func(ctx context.Context, texts []string) ([][]float32, error) {
			out := make([][]float32, len(texts))
			if len(texts) == len(engine.Categories) {
				for i := range texts {
					vec := make([]float32, len(engine.Categories))
					vec[i] = 1
					out[i] = vec
				}
				return out, nil
			}
			for i := range texts {
				out[i] = []float32{0, 0, 1, 0}
			}
			return out, nil
		},
	}
	p := engine.NewPipeline(engine.Config{Encoder: enc, Logger: discardLogger()})
	if !p.Initialize(context.Background()) {
		t.Fatal("Expected similarity mode")
	}
	return p
}

// postJSON sends a JSON body through the app and decodes the JSON response.
func postJSON(t *testing.T, app *fiber.App, path string, body any) (int, map[string]any) {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshaling request body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return doRequest(t, app, req)
}

func getJSON(t *testing.T, app *fiber.App, path string) (int, map[string]any) {
	t.Helper()
	return doRequest(t, app, httptest.NewRequest(http.MethodGet, path, nil))
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading response body: %v", err)
	}

	var payload map[string]any
	if len(data) > 0 {
		if err := json.Unmarshal(data, &payload); err != nil {
			t.Fatalf("decoding response %q: %v", data, err)
		}
	}
	return resp.StatusCode, payload
}
