package summarizer

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/nvhoang/meeting-digest/internal/logger"
)

type geminiGenerator struct {
	apiKeys    []string
	currentKey int
	logger     logger.Logger
}

// NewGeminiGenerator creates a Generator backed by the Gemini API that
// rotates through the supplied API keys when one is rate limited.
func NewGeminiGenerator(apiKeys []string, log logger.Logger) Generator {
	return &geminiGenerator{
		apiKeys: apiKeys,
		logger:  log,
	}
}

// Generate sends the prompt to Gemini and returns the concatenated text
// parts of the first candidate. On a rate limit the current key is rotated
// out before the error is returned, so the retry uses the next key.
func (g *geminiGenerator) Generate(ctx context.Context, model, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.apiKeys[g.currentKey],
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create genai client: %w", err)
	}

	result, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		if isTransient(err) && len(g.apiKeys) > 1 {
			g.logger.Warn(ctx, "Key %d rate limited, rotating...", g.currentKey+1)
			g.rotateKey()
		}
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", nil
	}

	var text strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text.WriteString(part.Text)
		}
	}
	return text.String(), nil
}

// Ping verifies the current API key can reach the model without paying for
// a generation, using a count-tokens call.
func (g *geminiGenerator) Ping(ctx context.Context, model string) error {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.apiKeys[g.currentKey],
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return fmt.Errorf("create genai client: %w", err)
	}

	if _, err := client.Models.CountTokens(ctx, model, genai.Text("ping"), nil); err != nil {
		return fmt.Errorf("gemini ping: %w", err)
	}
	return nil
}

func (g *geminiGenerator) rotateKey() {
	g.currentKey = (g.currentKey + 1) % len(g.apiKeys)
}
