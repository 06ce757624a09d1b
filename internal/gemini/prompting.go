package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/abihisan/magicstudio/internal/i18n"
)

func languageName(lang i18n.Lang) string {
	if lang == i18n.English {
		return "English"
	}
	return "Indonesian"
}

// GeneratePromptFromImage describes a reference image as a reusable
// generation prompt, in the UI language. The feature label anchors the
// description to the panel that will consume the prompt.
func (c *Client) GeneratePromptFromImage(ctx context.Context, dataURI, feature string, lang i18n.Lang) (string, error) {
	img, err := inlinePart(dataURI)
	if err != nil {
		return "", fmt.Errorf("describe image: %w", err)
	}
	instruction := fmt.Sprintf(
		"Describe this image as a detailed generation prompt for the %q feature. Capture subject, style, lighting and composition. Answer in %s with the prompt text only.",
		feature, languageName(lang))
	contents := []*genai.Content{{
		Role:  "user",
		Parts: []*genai.Part{img, genai.NewPartFromText(instruction)},
	}}
	resp, err := c.api.Models.GenerateContent(ctx, c.textModel, contents, nil)
	if err != nil {
		return "", fmt.Errorf("describe image: %w", err)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("describe image: empty response")
	}
	return text, nil
}

// RefinePrompt rewrites a draft prompt into a richer one. When a reference
// image is present it is passed along so the refinement stays anchored to
// the subject.
func (c *Client) RefinePrompt(ctx context.Context, draft, refDataURI, feature string, lang i18n.Lang) (string, error) {
	instruction := fmt.Sprintf(
		"Rewrite this image generation prompt for the %q feature to be more vivid and specific while keeping its intent: %q. Answer in %s with the improved prompt only.",
		feature, draft, languageName(lang))

	parts := []*genai.Part{}
	if refDataURI != "" {
		img, err := inlinePart(refDataURI)
		if err != nil {
			return "", fmt.Errorf("refine prompt: %w", err)
		}
		parts = append(parts, img)
	}
	parts = append(parts, genai.NewPartFromText(instruction))

	contents := []*genai.Content{{Role: "user", Parts: parts}}
	resp, err := c.api.Models.GenerateContent(ctx, c.textModel, contents, nil)
	if err != nil {
		return "", fmt.Errorf("refine prompt: %w", err)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("refine prompt: empty response")
	}
	return text, nil
}
