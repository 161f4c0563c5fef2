package extraction

import (
	"errors"
	"testing"

	"faturas/internal/usecase/interfaces"
)

func TestNewGatewayFromEnv(t *testing.T) {
	t.Run("default backend without credentials", func(t *testing.T) {
		t.Setenv("EXTRACTION_BACKEND", "")
		t.Setenv("OPENAI_API_KEY", "")
		if _, err := NewGatewayFromEnv(); !errors.Is(err, interfaces.ErrExtractionMissingCredentials) {
			t.Fatalf("expected ErrExtractionMissingCredentials, got %v", err)
		}
	})

	t.Run("openai backend", func(t *testing.T) {
		t.Setenv("EXTRACTION_BACKEND", "openai")
		t.Setenv("OPENAI_API_KEY", "sk-test")
		gw, err := NewGatewayFromEnv()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := gw.(*OpenAIGateway); !ok {
			t.Fatalf("expected OpenAIGateway, got %T", gw)
		}
	})

	t.Run("azure backend", func(t *testing.T) {
		t.Setenv("EXTRACTION_BACKEND", "azure")
		t.Setenv("AZURE_DOCUMENT_INTELLIGENCE_ENDPOINT", "https://example.cognitiveservices.azure.com")
		t.Setenv("AZURE_DOCUMENT_INTELLIGENCE_KEY", "key")
		gw, err := NewGatewayFromEnv()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := gw.(*AzureGateway); !ok {
			t.Fatalf("expected AzureGateway, got %T", gw)
		}
	})

	t.Run("azure backend without credentials", func(t *testing.T) {
		t.Setenv("EXTRACTION_BACKEND", "azure")
		t.Setenv("AZURE_DOCUMENT_INTELLIGENCE_ENDPOINT", "")
		t.Setenv("AZURE_DOCUMENT_INTELLIGENCE_KEY", "")
		if _, err := NewGatewayFromEnv(); !errors.Is(err, interfaces.ErrExtractionMissingCredentials) {
			t.Fatalf("expected ErrExtractionMissingCredentials, got %v", err)
		}
	})

	t.Run("unknown backend", func(t *testing.T) {
		t.Setenv("EXTRACTION_BACKEND", "tesseract")
		if _, err := NewGatewayFromEnv(); err == nil {
			t.Fatalf("expected error for unknown backend")
		}
	})
}
