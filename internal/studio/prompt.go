package studio

import (
	"fmt"
	"strings"

	"github.com/abihisan/magicstudio/internal/i18n"
)

// CameraAngle is one virtual camera preset for the portrait panel.
type CameraAngle struct {
	ID     string
	Label  string
	Prompt string
}

// CameraAngles lists the five virtual camera presets. Labels are stable
// identifiers shown in the UI; prompt fragments are appended verbatim.
var CameraAngles = []CameraAngle{
	{ID: "eye", Label: "Eye Level", Prompt: "Kamera setinggi mata, sudut pandang natural."},
	{ID: "low", Label: "Low Angle", Prompt: "Sudut kamera rendah (worm-eye view), memberikan kesan heroik dan dramatis."},
	{ID: "high", Label: "High Angle", Prompt: "Sudut kamera tinggi (bird-eye view), memberikan kesan artistik dan sinematik."},
	{ID: "close", Label: "Close-up", Prompt: "Kamera makro sangat dekat, fokus pada detail tekstur pori-pori kulit, warna mata, dan detail bibir yang sangat tajam."},
	{ID: "profile", Label: "Side Profile", Prompt: "Kamera dari sudut samping 90 derajat, memperlihatkan siluet wajah dan garis rahang yang tegas."},
}

// DefaultAngleLabel is the camera preset a fresh panel starts with.
const DefaultAngleLabel = "Eye Level"

// AngleByLabel looks up a camera preset by its label.
func AngleByLabel(label string) (CameraAngle, bool) {
	for _, a := range CameraAngles {
		if a.Label == label {
			return a, true
		}
	}
	return CameraAngle{}, false
}

const (
	portraitPreamble = `STRICT FACE IDENTITY: Preserve 100% of the facial identity from the reference image. Every feature (eyes, lip shape, nose structure, skin texture, eyebrows, facial hair) MUST remain identical.
Exceptions: Only change features if user explicitly asks for it in prompt (e.g. "make younger", "blue hair").`

	portraitSuffix = "Technical Specs: Professional photography, 8k resolution, ultra-detailed skin textures, realistic lighting."

	mergeInstruction = "GABUNG FOTO: Gabungkan identitas dari semua gambar referensi ke satu subjek. Jaga kemiripan wajah semaksimal mungkin. Deskripsi: %s."
)

// ComposeInput carries everything the composer branches on. The reference
// images themselves are not needed, only mode and count.
type ComposeInput struct {
	Menu       MenuID
	Text       string
	AngleLabel string
	MultiMode  bool
	ImageCount int
}

// Compose derives the final instruction string sent to the generation call.
// It is deterministic and has no side effects.
//
// Portrait panel: identity preamble, then the user's text, then the camera
// angle, then the technical suffix. The user's request sits between the
// preamble and the directives so the model reads it as the override signal.
// Multi mode with more than one image (non-portrait): merge instruction
// followed by the user's text. Everything else passes through verbatim.
func Compose(in ComposeInput) string {
	if in.Menu == MenuRealFace {
		angle := ""
		if a, ok := AngleByLabel(in.AngleLabel); ok {
			angle = a.Prompt
		}
		return fmt.Sprintf("%s\nCurrent User Request: %s.\nCamera Perspective: %s.\n%s",
			portraitPreamble, in.Text, angle, portraitSuffix)
	}
	if in.MultiMode && in.ImageCount > 1 {
		return fmt.Sprintf(mergeInstruction, in.Text)
	}
	return in.Text
}

// StylePreset is one selectable prompt preset inside a category.
type StylePreset struct {
	ID      string
	LabelEN string
	LabelID string
	Prompt  string
}

// Label returns the preset label for the active language.
func (p StylePreset) Label(lang i18n.Lang) string {
	if lang == i18n.English {
		return p.LabelEN
	}
	return p.LabelID
}

// StyleCategory groups presets under a localized heading.
type StyleCategory struct {
	ID    string
	Items []StylePreset
}

// Label returns the category heading for the active language.
func (c StyleCategory) Label(txt *i18n.Table) string {
	switch c.ID {
	case "family":
		return txt.Family
	case "wedding":
		return txt.Wedding
	case "official":
		return txt.Official
	case "model":
		return txt.Pose
	case "business":
		return txt.Business
	case "cinema":
		return txt.Cinematic
	}
	return c.ID
}

// StyleCategories lists the portrait studio presets. Prompt bodies are kept
// exactly as shipped.
var StyleCategories = []StyleCategory{
	{ID: "family", Items: []StylePreset{
		{ID: "fam_studio", LabelID: "Studio Klasik", LabelEN: "Classic Studio", Prompt: "Foto keluarga besar di studio profesional, komposisi seimbang, pencahayaan lembut, senyum bahagia, nuansa hangat dan elegan."},
		{ID: "fam_outdoor", LabelID: "Outdoor Ceria", LabelEN: "Cheerful Outdoor", Prompt: "Foto keluarga di taman terbuka saat matahari terbenam, suasana ceria dan natural, gaya dokumenter yang estetik."},
		{ID: "fam_home", LabelID: "Ruang Keluarga", LabelEN: "Living Room", Prompt: "Foto keluarga hangat di dalam ruang tamu rumah yang nyaman, pencahayaan alami dari jendela, suasana santai dan penuh keakraban."},
		{ID: "fam_batik", LabelID: "Seragam Batik", LabelEN: "Batik Matching", Prompt: "Foto keluarga formal mengenakan seragam batik Indonesia yang serasi, latar belakang pelaminan atau studio mewah, aura profesional and budaya."},
	}},
	{ID: "wedding", Items: []StylePreset{
		{ID: "wedding_lux", LabelID: "Klasik Mewah", LabelEN: "Luxury Classic", Prompt: "Suasana pernikahan klasik mewah, dekorasi megah, pencahayaan kristal hangat, gaun dan jas pengantin sangat elegan."},
		{ID: "wedding_garden", LabelID: "Outdoor Garden", LabelEN: "Outdoor Garden", Prompt: "Suasana pernikahan taman outdoor, cahaya matahari alami tembus pepohonan, dekorasi bunga segar, suasana santai dan romantis."},
		{ID: "wedding_trad", LabelID: "Adat Tradisional", LabelEN: "Traditional Heritage", Prompt: "Suasana romantis pernikahan, pencahayaan lembut hangat, nuansa elegan dan penuh kebahagiaan. Pakaian adat pernikahan tradisional Indonesia dengan detail emas yang rumit dan latar pelaminan artistik."},
		{ID: "wedding_candid", LabelID: "Candid Emosional", LabelEN: "Emotional Candid", Prompt: "Momen pernikahan candid emosional, ekspresi wajah bahagia yang jujur, fokus pada perasaan, pencahayaan alami yang lembut."},
	}},
	{ID: "official", Items: []StylePreset{
		{ID: "off_suit", LabelID: "Jas & Dasi", LabelEN: "Suit & Tie", Prompt: "Foto resmi profesional memakai jas dan dasi rapi, latar belakang polos studio, pencahayaan formal yang bersih."},
		{ID: "off_batik", LabelID: "Batik Formal", LabelEN: "Formal Batik", Prompt: "Foto resmi memakai kemeja batik formal khas Indonesia, motif etnik yang tegas, latar belakang kantor atau studio profesional."},
		{ID: "off_work", LabelID: "Kemeja Kerja", LabelEN: "Work Shirt", Prompt: "Foto resmi memakai kemeja kerja rapi, suasana lingkungan kerja modern, pencahayaan terang dan aura profesional."},
		{ID: "off_smart", LabelID: "Kacamata Cerdas", LabelEN: "Smart Eyewear", Prompt: "Potret profil profesional dengan kacamata, tatapan cerdas dan fokus, latar belakang rak buku atau ruang kerja minimalis."},
	}},
	{ID: "model", Items: []StylePreset{
		{ID: "mod_vogue", LabelID: "Vogue Style", LabelEN: "Vogue Style", Prompt: "Gaya model editorial Vogue, pose dramatis high fashion, pencahayaan studio dengan kontras tinggi dan bayangan artistik."},
		{ID: "mod_urban", LabelID: "Urban Street", LabelEN: "Urban Street", Prompt: "Gaya model urban street fashion, latar belakang perkotaan yang estetik, pakaian kasual trendi, pencahayaan jalanan yang dinamis."},
		{ID: "mod_bw", LabelID: "B&W Artistic", LabelEN: "B&W Artistic", Prompt: "Gaya model hitam putih artistik, permainan cahaya dan bayangan yang dramatis, siluet tubuh yang elegan dan berkarakter."},
		{ID: "mod_avant", LabelID: "Avant-Garde", LabelEN: "Avant-Garde", Prompt: "Gaya model avant-garde, pakaian eksperimental yang unik, seni tata rias dramatis, suasana latar belakang yang abstrak dan futuristik."},
	}},
	{ID: "business", Items: []StylePreset{
		{ID: "biz_space", LabelID: "Ruang Kerja", LabelEN: "Workspace", Prompt: "Suasana bisnis di ruang kerja modern, elemen meja kerja dan laptop, fokus pada profesionalisme, latar belakang kantor eksekutif."},
		{ID: "biz_pres", LabelID: "Presentasi", LabelEN: "Presentation", Prompt: "Suasana bisnis sedang memberikan presentasi, gaya kepemimpinan yang percaya diri, latar belakang ruang rapat atau konferensi."},
		{ID: "biz_casual", LabelID: "Business Casual", LabelEN: "Business Casual", Prompt: "Gaya bisnis kasual santai, blazer tanpa dasi, suasana profesional namun nyaman di co-working space atau cafe modern."},
		{ID: "biz_lead", LabelID: "Leader Focus", LabelEN: "Leader Focus", Prompt: "Potret fokus pemimpin bisnis masa kini, pose berwibawa, latar belakang gedung perkantoran tinggi di sore hari."},
	}},
	{ID: "cinema", Items: []StylePreset{
		{ID: "cin_cyber", LabelID: "Cyberpunk", LabelEN: "Cyberpunk", Prompt: "Gaya sinematik cyberpunk, lampu neon warna-warni pink dan biru, suasana kota masa depan yang futuristik di malam hari."},
		{ID: "cin_70s", LabelID: "Vintage 70s", LabelEN: "Vintage 70s", Prompt: "Gaya sinematik vintage tahun 70-an, nuansa warna hangat butiran film lama, pakaian retro klasik, kesan nostalgia yang kuat."},
		{ID: "cin_noir", LabelID: "Film Noir", LabelEN: "Film Noir", Prompt: "Gaya sinematik film noir klasik, hitam putih kontras tinggi, bayangan tirai jendela, suasana misterius detektif."},
		{ID: "cin_ethereal", LabelID: "Ethereal Fantasy", LabelEN: "Ethereal Fantasy", Prompt: "Gaya sinematik fantasi etereal, cahaya berkilau lembut yang magis, suasana negeri dongeng yang indah and damai."},
	}},
}

// CategoryByID looks up a style category.
func CategoryByID(id string) (StyleCategory, bool) {
	for _, c := range StyleCategories {
		if c.ID == id {
			return c, true
		}
	}
	return StyleCategory{}, false
}

// PromptState is the prompt panel's editable state.
type PromptState struct {
	Text             string
	SelectedCategory string
	SelectedStyle    string
	AngleLabel       string
}

// NewPromptState returns the resting prompt state.
func NewPromptState() PromptState {
	return PromptState{AngleLabel: DefaultAngleLabel}
}

// ApplyMenu resets the prompt for a menu switch: selections cleared, text
// set to the menu's default.
func (p *PromptState) ApplyMenu(menu MenuID, txt *i18n.Table) {
	p.SelectedCategory = ""
	p.SelectedStyle = ""
	if def := menu.DefaultPrompt(txt); def != "" {
		p.Text = def
	}
}

// ApplyStyle overwrites the prompt text with a preset and records it.
func (p *PromptState) ApplyStyle(preset StylePreset) {
	p.SelectedStyle = preset.ID
	p.Text = preset.Prompt
}

// Empty reports whether the prompt has no usable text.
func (p *PromptState) Empty() bool {
	return strings.TrimSpace(p.Text) == ""
}
