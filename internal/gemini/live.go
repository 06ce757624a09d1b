package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/abihisan/magicstudio/internal/studio"
)

// LiveVisuals answers a question with web grounding, then illustrates the
// answer. Two calls: search-grounded text first, then an image rendered
// from the summary. A failed illustration leaves Image empty rather than
// failing the whole answer.
func (c *Client) LiveVisuals(ctx context.Context, query string) (*studio.LiveVisual, error) {
	cfg := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
	}
	contents := []*genai.Content{{
		Role:  "user",
		Parts: []*genai.Part{genai.NewPartFromText(query)},
	}}
	resp, err := c.api.Models.GenerateContent(ctx, c.textModel, contents, cfg)
	if err != nil {
		return nil, fmt.Errorf("live search: %w", err)
	}
	summary := strings.TrimSpace(resp.Text())
	if summary == "" {
		return nil, fmt.Errorf("live search: empty response")
	}

	out := &studio.LiveVisual{
		Summary:   summary,
		Citations: citations(resp),
	}

	illustration := fmt.Sprintf("Create a photorealistic illustration of the following: %s", summary)
	img, err := c.GenerateImage(ctx, illustration, "16:9")
	if err == nil {
		out.Image = img
	} else if IsQuota(err) {
		return nil, err
	}
	return out, nil
}
