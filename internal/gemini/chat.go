package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/abihisan/magicstudio/internal/studio"
)

const chatSystemPrompt = "You are a helpful creative assistant inside an image studio. Be concise and practical. You can discuss images the user attaches."

// Chat sends the whole conversation and returns the model's reply parts.
// The latest user turn is already part of history.
func (c *Client) Chat(ctx context.Context, history []studio.Message) ([]studio.Part, error) {
	contents, err := contentsFromHistory(history)
	if err != nil {
		return nil, fmt.Errorf("chat: %w", err)
	}
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{genai.NewPartFromText(chatSystemPrompt)},
		},
	}
	resp, err := c.api.Models.GenerateContent(ctx, c.textModel, contents, cfg)
	if err != nil {
		return nil, fmt.Errorf("chat: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("chat: empty response")
	}
	parts := partsToStudio(resp.Candidates[0].Content.Parts)
	if len(parts) == 0 {
		return nil, fmt.Errorf("chat: empty response")
	}
	return parts, nil
}
