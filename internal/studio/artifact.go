package studio

// ArtifactKind discriminates what a panel produced.
type ArtifactKind string

const (
	ArtifactImage  ArtifactKind = "image"
	ArtifactRecipe ArtifactKind = "recipe"
	ArtifactLive   ArtifactKind = "live"
)

// Artifact is the tagged result of one completed generation. Exactly one
// payload field matches Kind.
type Artifact struct {
	Kind   ArtifactKind
	Image  string // ArtifactImage, data URI
	Recipe *Recipe
	Live   *LiveVisual
}

// Ingredient is one recipe line item.
type Ingredient struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
}

// Recipe is the structured extraction result.
type Recipe struct {
	RecipeName      string       `json:"recipe_name"`
	PrepTimeMinutes int          `json:"prep_time_minutes"`
	Ingredients     []Ingredient `json:"ingredients"`
	Instructions    []string     `json:"instructions"`
}

// Citation is one grounded web source behind a live-visuals answer.
type Citation struct {
	Title string
	URI   string
}

// LiveVisual pairs a search-grounded summary with its illustration.
type LiveVisual struct {
	Summary   string
	Image     string // data URI, may be empty when illustration failed
	Citations []Citation
}
