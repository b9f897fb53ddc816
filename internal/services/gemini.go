package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"bpo-website/internal/models"
)

// GeminiCompleter answers chat turns through the Gemini API.
type GeminiCompleter struct {
	client    *genai.Client
	modelName string
}

func NewGeminiCompleter(ctx context.Context, apiKey, model string) (*GeminiCompleter, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	if model == "" {
		model = "gemini-1.5-flash"
	}
	return &GeminiCompleter{client: client, modelName: model}, nil
}

func (c *GeminiCompleter) Close() {
	c.client.Close()
}

func (c *GeminiCompleter) Complete(ctx context.Context, system string, history []models.ChatMessage) (string, error) {
	if len(history) == 0 {
		return "", fmt.Errorf("empty conversation")
	}

	model := c.client.GenerativeModel(c.modelName)
	model.SetTemperature(ChatTemperature)
	model.SetMaxOutputTokens(ChatMaxTokens)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}

	cs := model.StartChat()
	cs.History = geminiHistory(history[:len(history)-1])

	resp, err := cs.SendMessage(ctx, genai.Text(history[len(history)-1].Content))
	if err != nil {
		return "", fmt.Errorf("gemini completion failed: %w", err)
	}
	return extractText(resp), nil
}

// geminiHistory maps widget roles onto Gemini roles.
func geminiHistory(messages []models.ChatMessage) []*genai.Content {
	out := make([]*genai.Content, 0, len(messages))
	for _, m := range messages {
		role := "user"
		if m.Role == "assistant" {
			role = "model"
		}
		out = append(out, &genai.Content{Role: role, Parts: []genai.Part{genai.Text(m.Content)}})
	}
	return out
}

func extractText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}
