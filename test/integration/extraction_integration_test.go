package integration

import (
	"context"
	"os"
	"testing"
	"time"

	"personal-crm-be/pkg/extraction"
	"personal-crm-be/pkg/llm/ollama"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// Exercises the full categorization chain against a local Ollama instance.
// Run with OLLAMA_INTEGRATION=true and a model pulled locally.
func TestExtractionAgainstOllama(t *testing.T) {
	if os.Getenv("OLLAMA_INTEGRATION") != "true" {
		t.Skip("Skipping: OLLAMA_INTEGRATION not set")
	}

	baseURL := os.Getenv("OLLAMA_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	model := os.Getenv("OLLAMA_MODEL")
	if model == "" {
		model = "gemma:2b"
	}

	provider := ollama.NewOllamaProvider(baseURL, model)
	categorizer := extraction.NewLLMCategorizer("ollama", provider, 2*time.Minute, zap.NewNop())
	svc := extraction.NewService(zap.NewNop(), categorizer)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	note := "Maya started training for a marathon. She wants to move into climate tech by next year. Follow up: intro her to Raj."
	result := svc.Analyze(ctx, note, "Maya Chen", "No relevant history found.")

	assert.NotEmpty(t, result)
	for category, cr := range result {
		t.Logf("%s (%.2f): %s", category, cr.Confidence, cr.Content)
		assert.NotEmpty(t, cr.Content)
		assert.GreaterOrEqual(t, cr.Confidence, 0.0)
		assert.LessOrEqual(t, cr.Confidence, 1.0)
	}
}
