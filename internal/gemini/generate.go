package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/abihisan/magicstudio/internal/imaging"
)

func imageConfig(aspect string) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		ResponseModalities: []string{"TEXT", "IMAGE"},
	}
	if aspect != "" {
		cfg.ImageConfig = &genai.ImageConfig{AspectRatio: aspect}
	}
	return cfg
}

// GenerateImage renders a new image from a text prompt. The result is a
// data URI.
func (c *Client) GenerateImage(ctx context.Context, prompt, aspect string) (string, error) {
	contents := []*genai.Content{{
		Role:  "user",
		Parts: []*genai.Part{genai.NewPartFromText(prompt)},
	}}
	resp, err := c.api.Models.GenerateContent(ctx, c.imageModel, contents, imageConfig(aspect))
	if err != nil {
		return "", fmt.Errorf("generate image: %w", err)
	}
	img, ok := firstImage(resp)
	if !ok {
		return "", fmt.Errorf("generate image: no image in response")
	}
	return img, nil
}

// TransformImage renders a new image from a prompt plus reference images.
// References go first so the model reads them before the instruction, and
// oversized references are shrunk before upload.
func (c *Client) TransformImage(ctx context.Context, prompt, aspect string, refs []string) (string, error) {
	parts := make([]*genai.Part, 0, len(refs)+1)
	for _, ref := range refs {
		shrunk, err := imaging.ShrinkDataURL(ref, imaging.MaxReferenceDim)
		if err != nil {
			return "", fmt.Errorf("transform image: %w", err)
		}
		p, err := inlinePart(shrunk)
		if err != nil {
			return "", fmt.Errorf("transform image: %w", err)
		}
		parts = append(parts, p)
	}
	parts = append(parts, genai.NewPartFromText(prompt))

	contents := []*genai.Content{{Role: "user", Parts: parts}}
	resp, err := c.api.Models.GenerateContent(ctx, c.imageModel, contents, imageConfig(aspect))
	if err != nil {
		return "", fmt.Errorf("transform image: %w", err)
	}
	img, ok := firstImage(resp)
	if !ok {
		return "", fmt.Errorf("transform image: no image in response")
	}
	return img, nil
}
