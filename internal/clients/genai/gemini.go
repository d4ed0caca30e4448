package genai

import (
	"context"
	"strings"

	gemini "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/KirkDiggler/rpg-levelgen/internal/errors"
)

// DefaultModel is the Gemini model used when none is configured
const DefaultModel = "gemini-1.5-flash"

// GeminiConfig configures the Gemini client
type GeminiConfig struct {
	APIKey      string
	Model       string
	Temperature float32
}

// Validate ensures the config is usable
func (c *GeminiConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	vb := errors.NewValidationBuilder()
	if c.APIKey == "" {
		vb.RequiredField("api_key")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		vb.Field("temperature", "must be between 0 and 2")
	}
	return vb.Build()
}

// GeminiClient completes prompts with Google's Gemini API
type GeminiClient struct {
	client *gemini.Client
	model  *gemini.GenerativeModel
}

// NewGemini creates a Gemini-backed Client
func NewGemini(ctx context.Context, cfg *GeminiConfig) (*GeminiClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client, err := gemini.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create gemini client")
	}

	name := cfg.Model
	if name == "" {
		name = DefaultModel
	}
	model := client.GenerativeModel(name)
	model.SetTemperature(cfg.Temperature)

	return &GeminiClient{client: client, model: model}, nil
}

// Complete implements Client
func (c *GeminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.model.GenerateContent(ctx, gemini.Text(prompt))
	if err != nil {
		return "", errors.Wrapf(err, "gemini generate content")
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return "", errors.New(errors.CodeUnavailable, "gemini returned no candidates")
	}

	return extractText(resp), nil
}

// Close releases the underlying connection
func (c *GeminiClient) Close() error {
	return c.client.Close()
}

func extractText(resp *gemini.GenerateContentResponse) string {
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(gemini.Text); ok {
				sb.WriteString(string(text))
			}
		}
		// first candidate with content wins
		if sb.Len() > 0 {
			break
		}
	}
	return sb.String()
}
