package adapters_test

import (
	"os"
	"testing"

	"github.com/thinkerbell/semantic-engine/adapters"
)

// Voyage Encoder Tests

func TestNewVoyageEncoder_WithAPIKey(t *testing.T) {
	apiKey := "test-api-key"
	encoder, err := adapters.NewVoyageEncoder(&apiKey)

	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if encoder == nil {
		t.Fatal("Expected non-nil encoder")
	}
}

func TestNewVoyageEncoder_FromEnv(t *testing.T) {
	t.Setenv("VOYAGEAI_API_KEY", "env-api-key")

	encoder, err := adapters.NewVoyageEncoder(nil)

	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if encoder == nil {
		t.Fatal("Expected non-nil encoder")
	}
}

func TestNewVoyageEncoder_MissingKey(t *testing.T) {
	// Ensure env var is not set
	os.Unsetenv("VOYAGEAI_API_KEY")

	_, err := adapters.NewVoyageEncoder(nil)

	if err == nil {
		t.Error("Expected error when API key is missing, got nil")
	}
}

func TestVoyageEncoder_ModelName(t *testing.T) {
	apiKey := "test-api-key"
	encoder, err := adapters.NewVoyageEncoder(&apiKey)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if encoder.ModelName() == "" {
		t.Error("Expected a default model name, got empty string")
	}
}

func TestVoyageEncoder_SetModel(t *testing.T) {
	apiKey := "test-api-key"
	encoder, err := adapters.NewVoyageEncoder(&apiKey)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	encoder.SetModel("voyage-custom-model")

	if encoder.ModelName() != "voyage-custom-model" {
		t.Errorf("Expected model 'voyage-custom-model', got '%s'", encoder.ModelName())
	}
}

// OpenAI Encoder Tests

func TestNewOpenAIEncoder_WithAPIKey(t *testing.T) {
	apiKey := "test-api-key"
	encoder, err := adapters.NewOpenAIEncoder(&apiKey)

	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if encoder == nil {
		t.Fatal("Expected non-nil encoder")
	}
}

func TestNewOpenAIEncoder_FromEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "env-api-key")

	encoder, err := adapters.NewOpenAIEncoder(nil)

	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if encoder == nil {
		t.Fatal("Expected non-nil encoder")
	}
}

func TestNewOpenAIEncoder_MissingKey(t *testing.T) {
	os.Unsetenv("OPENAI_API_KEY")

	_, err := adapters.NewOpenAIEncoder(nil)

	if err == nil {
		t.Error("Expected error when API key is missing, got nil")
	}
}

func TestOpenAIEncoder_SetModel(t *testing.T) {
	apiKey := "test-api-key"
	encoder, err := adapters.NewOpenAIEncoder(&apiKey)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	encoder.SetModel("text-embedding-3-large")

	if encoder.ModelName() != "text-embedding-3-large" {
		t.Errorf("Expected model 'text-embedding-3-large', got '%s'", encoder.ModelName())
	}
}

// Helper function tests
//
// loadEnvVar is private, so it is exercised indirectly through the
// constructors above: explicit key, env fallback, and the missing-key error.

func TestLoadEnvVar_WithValue(t *testing.T) {
	apiKey := "explicit-key"

	encoder, err := adapters.NewVoyageEncoder(&apiKey)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if encoder == nil {
		t.Fatal("Expected non-nil encoder")
	}
}

func TestLoadEnvVar_WithNil_Missing(t *testing.T) {
	os.Unsetenv("VOYAGEAI_API_KEY")

	_, err := adapters.NewVoyageEncoder(nil)
	if err == nil {
		t.Error("Expected error when env var is missing, got nil")
	}
}

// Note: Encode against the real Voyage and OpenAI APIs requires live
// credentials and is not exercised here. The conversion logic between SDK
// responses and [][]float32 is covered by the white-box tests in
// internal_test.go with mocked services.
