// Package gemini is the boundary to the Gemini API. It maps the studio's
// domain types onto genai requests and back, and classifies quota failures.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Default model names. Both are overridable from config.
const (
	DefaultTextModel  = "gemini-2.5-flash"
	DefaultImageModel = "gemini-2.5-flash-image"
)

// Client wraps one authenticated genai client plus the model pair.
type Client struct {
	api        *genai.Client
	textModel  string
	imageModel string
}

// New dials the Gemini API backend with the given key.
func New(ctx context.Context, apiKey, textModel, imageModel string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: empty api key")
	}
	if textModel == "" {
		textModel = DefaultTextModel
	}
	if imageModel == "" {
		imageModel = DefaultImageModel
	}
	api, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &Client{api: api, textModel: textModel, imageModel: imageModel}, nil
}
