package gemini

import (
	"fmt"

	"google.golang.org/genai"

	"github.com/abihisan/magicstudio/internal/imaging"
	"github.com/abihisan/magicstudio/internal/studio"
)

func inlinePart(dataURI string) (*genai.Part, error) {
	mimeType, raw, err := imaging.DecodeDataURL(dataURI)
	if err != nil {
		return nil, fmt.Errorf("reference image: %w", err)
	}
	return genai.NewPartFromBytes(raw, mimeType), nil
}

// inlineParts converts reference data URIs into inline request parts.
func inlineParts(dataURIs []string) ([]*genai.Part, error) {
	parts := make([]*genai.Part, 0, len(dataURIs))
	for _, d := range dataURIs {
		p, err := inlinePart(d)
		if err != nil {
			return nil, err
		}
		parts = append(parts, p)
	}
	return parts, nil
}

// contentsFromHistory maps the chat history to request contents, keeping
// turn order and part order.
func contentsFromHistory(msgs []studio.Message) ([]*genai.Content, error) {
	contents := make([]*genai.Content, 0, len(msgs))
	for _, m := range msgs {
		parts := make([]*genai.Part, 0, len(m.Parts))
		for _, p := range m.Parts {
			switch p.Kind {
			case studio.PartImage:
				gp, err := inlinePart(p.Data)
				if err != nil {
					return nil, err
				}
				parts = append(parts, gp)
			default:
				parts = append(parts, genai.NewPartFromText(p.Text))
			}
		}
		contents = append(contents, &genai.Content{Role: string(m.Role), Parts: parts})
	}
	return contents, nil
}

// partsToStudio maps response parts back to the chat part union. Parts that
// are neither text nor inline images are dropped.
func partsToStudio(parts []*genai.Part) []studio.Part {
	var out []studio.Part
	for _, p := range parts {
		switch {
		case p.Text != "":
			out = append(out, studio.TextPart(p.Text))
		case p.InlineData != nil && len(p.InlineData.Data) > 0:
			out = append(out, studio.ImagePart(
				imaging.EncodeDataURL(p.InlineData.MIMEType, p.InlineData.Data)))
		}
	}
	return out
}

// firstImage returns the first inline image of a response as a data URI.
func firstImage(resp *genai.GenerateContentResponse) (string, bool) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", false
	}
	for _, p := range resp.Candidates[0].Content.Parts {
		if p.InlineData != nil && len(p.InlineData.Data) > 0 {
			return imaging.EncodeDataURL(p.InlineData.MIMEType, p.InlineData.Data), true
		}
	}
	return "", false
}

// citations extracts the grounded web sources of a response.
func citations(resp *genai.GenerateContentResponse) []studio.Citation {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil
	}
	meta := resp.Candidates[0].GroundingMetadata
	if meta == nil {
		return nil
	}
	var out []studio.Citation
	for _, c := range meta.GroundingChunks {
		if c.Web == nil || c.Web.URI == "" {
			continue
		}
		out = append(out, studio.Citation{Title: c.Web.Title, URI: c.Web.URI})
	}
	return out
}
