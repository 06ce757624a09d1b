package gemini

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	"github.com/abihisan/magicstudio/internal/studio"
)

var recipeSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"recipe_name":       {Type: genai.TypeString},
		"prep_time_minutes": {Type: genai.TypeInteger},
		"ingredients": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"name":     {Type: genai.TypeString},
					"quantity": {Type: genai.TypeString},
				},
				Required: []string{"name", "quantity"},
			},
		},
		"instructions": {
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
	},
	Required: []string{"recipe_name", "prep_time_minutes", "ingredients", "instructions"},
}

// ExtractRecipe pulls a structured recipe out of free-form text.
func (c *Client) ExtractRecipe(ctx context.Context, text string) (*studio.Recipe, error) {
	prompt := fmt.Sprintf("Extract the recipe from the following text:\n\n%s", text)
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   recipeSchema,
	}
	contents := []*genai.Content{{
		Role:  "user",
		Parts: []*genai.Part{genai.NewPartFromText(prompt)},
	}}
	resp, err := c.api.Models.GenerateContent(ctx, c.textModel, contents, cfg)
	if err != nil {
		return nil, fmt.Errorf("extract recipe: %w", err)
	}
	var recipe studio.Recipe
	if err := json.Unmarshal([]byte(resp.Text()), &recipe); err != nil {
		return nil, fmt.Errorf("extract recipe: decode response: %w", err)
	}
	return &recipe, nil
}
