package gemini

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"google.golang.org/genai"

	"github.com/abihisan/magicstudio/internal/imaging"
	"github.com/abihisan/magicstudio/internal/studio"
)

func TestContentsFromHistory(t *testing.T) {
	uri := imaging.EncodeDataURL("image/png", []byte{1, 2, 3})
	history := []studio.Message{
		{Role: studio.RoleUser, Parts: []studio.Part{
			studio.ImagePart(uri),
			studio.TextPart("what is this?"),
		}},
		{Role: studio.RoleModel, Parts: []studio.Part{
			studio.TextPart("a picture"),
		}},
	}

	contents, err := contentsFromHistory(history)
	if err != nil {
		t.Fatalf("contentsFromHistory: %v", err)
	}
	if len(contents) != 2 {
		t.Fatalf("len(contents) = %d, want 2", len(contents))
	}
	if contents[0].Role != "user" || contents[1].Role != "model" {
		t.Errorf("roles = %q/%q, want user/model", contents[0].Role, contents[1].Role)
	}
	first := contents[0].Parts
	if len(first) != 2 {
		t.Fatalf("len(first.Parts) = %d, want 2", len(first))
	}
	if first[0].InlineData == nil || first[0].InlineData.MIMEType != "image/png" {
		t.Errorf("attachment must map to inline data first, got %+v", first[0])
	}
	if first[1].Text != "what is this?" {
		t.Errorf("text part = %q", first[1].Text)
	}
}

func TestContentsFromHistoryBadAttachment(t *testing.T) {
	history := []studio.Message{
		{Role: studio.RoleUser, Parts: []studio.Part{studio.ImagePart("not-a-data-uri")}},
	}
	if _, err := contentsFromHistory(history); err == nil {
		t.Errorf("bad attachment accepted")
	}
}

func TestPartsToStudio(t *testing.T) {
	parts := []*genai.Part{
		{Text: "hello"},
		{InlineData: &genai.Blob{MIMEType: "image/png", Data: []byte{9}}},
		{}, // neither text nor image, dropped
	}
	got := partsToStudio(parts)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Kind != studio.PartText || got[0].Text != "hello" {
		t.Errorf("got[0] = %+v", got[0])
	}
	if got[1].Kind != studio.PartImage || !strings.HasPrefix(got[1].Data, "data:image/png;base64,") {
		t.Errorf("got[1] = %+v", got[1])
	}
}

func TestFirstImage(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{
				{Text: "here you go"},
				{InlineData: &genai.Blob{MIMEType: "image/png", Data: []byte{1}}},
			}},
		}},
	}
	uri, ok := firstImage(resp)
	if !ok || !strings.HasPrefix(uri, "data:image/png;base64,") {
		t.Errorf("firstImage = %q, %v", uri, ok)
	}

	if _, ok := firstImage(nil); ok {
		t.Errorf("nil response should have no image")
	}
	if _, ok := firstImage(&genai.GenerateContentResponse{}); ok {
		t.Errorf("empty response should have no image")
	}
}

func TestCitations(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			GroundingMetadata: &genai.GroundingMetadata{
				GroundingChunks: []*genai.GroundingChunk{
					{Web: &genai.GroundingChunkWeb{Title: "Example", URI: "https://example.com"}},
					{Web: &genai.GroundingChunkWeb{Title: "no uri"}},
					{},
				},
			},
		}},
	}
	got := citations(resp)
	if len(got) != 1 {
		t.Fatalf("len(citations) = %d, want 1", len(got))
	}
	if got[0].Title != "Example" || got[0].URI != "https://example.com" {
		t.Errorf("citation = %+v", got[0])
	}
	if citations(nil) != nil {
		t.Errorf("nil response should give no citations")
	}
}

func TestIsQuota(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("googleapi: got HTTP response code 429"), true},
		{fmt.Errorf("wrap: %w", genai.APIError{Code: 429}), true},
		{fmt.Errorf("wrap: %w", genai.APIError{Code: 400, Status: "RESOURCE_EXHAUSTED"}), true},
		{fmt.Errorf("wrap: %w", genai.APIError{Code: 500, Status: "INTERNAL"}), false},
		{errors.New("connection refused"), false},
	}
	for _, tt := range tests {
		if got := IsQuota(tt.err); got != tt.want {
			t.Errorf("IsQuota(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
