package studio

import (
	"strings"
	"testing"

	"github.com/abihisan/magicstudio/internal/i18n"
)

func TestComposePortrait(t *testing.T) {
	got := Compose(ComposeInput{
		Menu:       MenuRealFace,
		Text:       "wearing a red jacket",
		AngleLabel: "Low Angle",
	})

	if !strings.HasPrefix(got, "STRICT FACE IDENTITY:") {
		t.Fatalf("portrait prompt missing identity preamble: %q", got)
	}
	if !strings.Contains(got, "Current User Request: wearing a red jacket.") {
		t.Errorf("portrait prompt missing user request: %q", got)
	}
	if !strings.Contains(got, "Sudut kamera rendah (worm-eye view), memberikan kesan heroik dan dramatis.") {
		t.Errorf("portrait prompt missing angle fragment: %q", got)
	}
	if !strings.HasSuffix(got, "Technical Specs: Professional photography, 8k resolution, ultra-detailed skin textures, realistic lighting.") {
		t.Errorf("portrait prompt missing technical suffix: %q", got)
	}

	idx := strings.Index(got, "Current User Request:")
	angleIdx := strings.Index(got, "Camera Perspective:")
	if idx > angleIdx {
		t.Errorf("user request should come before camera perspective")
	}
}

func TestComposePortraitIgnoresMultiMode(t *testing.T) {
	got := Compose(ComposeInput{
		Menu:       MenuRealFace,
		Text:       "group shot",
		AngleLabel: DefaultAngleLabel,
		MultiMode:  true,
		ImageCount: 5,
	})
	if strings.Contains(got, "GABUNG FOTO") {
		t.Errorf("portrait prompt must not use the merge instruction, got %q", got)
	}
	if !strings.HasPrefix(got, "STRICT FACE IDENTITY:") {
		t.Errorf("portrait framing must win over multi mode, got %q", got)
	}
}

func TestComposeMerge(t *testing.T) {
	got := Compose(ComposeInput{
		Menu:       MenuFashion,
		Text:       "beach wedding",
		MultiMode:  true,
		ImageCount: 3,
	})
	want := "GABUNG FOTO: Gabungkan identitas dari semua gambar referensi ke satu subjek. Jaga kemiripan wajah semaksimal mungkin. Deskripsi: beach wedding."
	if got != want {
		t.Errorf("Compose = %q, want %q", got, want)
	}
}

func TestComposeMergeRequiresTwoImages(t *testing.T) {
	got := Compose(ComposeInput{
		Menu:       MenuFashion,
		Text:       "beach wedding",
		MultiMode:  true,
		ImageCount: 1,
	})
	if got != "beach wedding" {
		t.Errorf("single-image multi mode should pass text through, got %q", got)
	}
}

func TestComposeVerbatim(t *testing.T) {
	text := "  a logo with   odd spacing  "
	got := Compose(ComposeInput{Menu: MenuLogo, Text: text})
	if got != text {
		t.Errorf("Compose = %q, want verbatim %q", got, text)
	}
}

func TestComposeUnknownAngle(t *testing.T) {
	got := Compose(ComposeInput{
		Menu:       MenuRealFace,
		Text:       "x",
		AngleLabel: "no-such-angle",
	})
	if !strings.Contains(got, "Camera Perspective: .") {
		t.Errorf("unknown angle should compose with an empty fragment, got %q", got)
	}
}

func TestAngleByLabel(t *testing.T) {
	for _, a := range CameraAngles {
		got, ok := AngleByLabel(a.Label)
		if !ok {
			t.Fatalf("AngleByLabel(%q) not found", a.Label)
		}
		if got.Prompt != a.Prompt {
			t.Errorf("AngleByLabel(%q).Prompt = %q, want %q", a.Label, got.Prompt, a.Prompt)
		}
	}
	if _, ok := AngleByLabel("Dutch Tilt"); ok {
		t.Errorf("AngleByLabel should reject unknown labels")
	}
}

func TestApplyMenuResetsSelections(t *testing.T) {
	txt := i18n.For(i18n.English)

	p := NewPromptState()
	p.ApplyStyle(StyleCategories[0].Items[0])
	if p.SelectedStyle == "" {
		t.Fatalf("ApplyStyle did not record the preset")
	}
	p.SelectedCategory = "family"

	p.ApplyMenu(MenuSticker, txt)
	if p.SelectedCategory != "" || p.SelectedStyle != "" {
		t.Errorf("ApplyMenu should clear style selections, got category=%q style=%q",
			p.SelectedCategory, p.SelectedStyle)
	}
	if p.Text != txt.PromptSticker {
		t.Errorf("ApplyMenu text = %q, want %q", p.Text, txt.PromptSticker)
	}
}

func TestApplyMenuFashionUsesTitle(t *testing.T) {
	txt := i18n.For(i18n.Indonesian)
	p := NewPromptState()
	p.ApplyMenu(MenuFashion, txt)
	if p.Text != txt.MenuFashion {
		t.Errorf("fashion default prompt = %q, want the menu title %q", p.Text, txt.MenuFashion)
	}
}

func TestApplyStyleOverwritesText(t *testing.T) {
	preset := StyleCategories[1].Items[2]
	p := NewPromptState()
	p.Text = "something the user typed"
	p.ApplyStyle(preset)
	if p.Text != preset.Prompt {
		t.Errorf("ApplyStyle text = %q, want %q", p.Text, preset.Prompt)
	}
	if p.SelectedStyle != preset.ID {
		t.Errorf("SelectedStyle = %q, want %q", p.SelectedStyle, preset.ID)
	}
}

func TestPromptStateEmpty(t *testing.T) {
	p := NewPromptState()
	if !p.Empty() {
		t.Errorf("fresh state should be empty")
	}
	p.Text = "   \t\n "
	if !p.Empty() {
		t.Errorf("whitespace-only text should be empty")
	}
	p.Text = "ok"
	if p.Empty() {
		t.Errorf("non-blank text should not be empty")
	}
}

func TestStyleCategoriesShape(t *testing.T) {
	if len(StyleCategories) != 6 {
		t.Fatalf("len(StyleCategories) = %d, want 6", len(StyleCategories))
	}
	for _, c := range StyleCategories {
		if len(c.Items) != 4 {
			t.Errorf("category %q has %d presets, want 4", c.ID, len(c.Items))
		}
		for _, it := range c.Items {
			if it.Prompt == "" || it.LabelEN == "" || it.LabelID == "" {
				t.Errorf("preset %q incomplete", it.ID)
			}
		}
	}
}
