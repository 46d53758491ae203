package ai

import (
	"context"
	"fmt"
	"strings"

	"framelight/models"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiResponder implements Responder on top of the Gemini API.
type GeminiResponder struct {
	model *genai.GenerativeModel
}

// NewGeminiResponder builds a Gemini-backed responder. modelName is e.g.
// "models/gemini-1.5-pro".
func NewGeminiResponder(apiKey, modelName string) (*GeminiResponder, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	return &GeminiResponder{model: model}, nil
}

// Reply generates the next assistant utterance.
func (g *GeminiResponder) Reply(ctx context.Context, history []models.Message) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(buildPrompt(history)))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	reply := strings.TrimSpace(sb.String())
	if reply == "" {
		return "", fmt.Errorf("gemini returned empty reply")
	}
	return reply, nil
}
