package studio

import "github.com/abihisan/magicstudio/internal/i18n"

// MenuID identifies one feature panel.
type MenuID string

const (
	MenuHome     MenuID = "home"
	MenuTxtImg   MenuID = "text-to-image"
	MenuImgTrans MenuID = "image-to-image"
	MenuRealFace MenuID = "photorealistic-portrait"
	MenuSticker  MenuID = "sticker-design"
	MenuLogo     MenuID = "logo-creator"
	MenuProduct  MenuID = "product-mockup"
	MenuComic    MenuID = "sequential-art"
	MenuSmart    MenuID = "smart-editor"
	MenuStyle    MenuID = "style-transfer"
	MenuFashion  MenuID = "fashion-composite"
	MenuSketch   MenuID = "sketch-to-real"
	MenuChar     MenuID = "character-lab"
	MenuLive     MenuID = "live-visuals"
	MenuRecipe   MenuID = "recipe-extractor"
	MenuChat     MenuID = "chat"
)

// Menus lists every panel in sidebar order.
var Menus = []MenuID{
	MenuHome,
	MenuTxtImg,
	MenuImgTrans,
	MenuRealFace,
	MenuSticker,
	MenuLogo,
	MenuProduct,
	MenuComic,
	MenuSmart,
	MenuStyle,
	MenuFashion,
	MenuSketch,
	MenuChar,
	MenuLive,
	MenuRecipe,
	MenuChat,
}

// IsStudio reports whether the menu uses the shared image-generation panel
// (prompt, sources, aspect ratio) rather than a dedicated view.
func (m MenuID) IsStudio() bool {
	switch m {
	case MenuHome, MenuChat, MenuRecipe, MenuLive:
		return false
	}
	return true
}

// Title returns the localized title for the menu.
func (m MenuID) Title(txt *i18n.Table) string {
	switch m {
	case MenuTxtImg:
		return txt.MenuTxtImg
	case MenuImgTrans:
		return txt.MenuImgTrans
	case MenuRealFace:
		return txt.MenuRealFace
	case MenuSticker:
		return txt.MenuSticker
	case MenuLogo:
		return txt.MenuLogo
	case MenuProduct:
		return txt.MenuProduct
	case MenuComic:
		return txt.MenuComic
	case MenuSmart:
		return txt.MenuSmart
	case MenuStyle:
		return txt.MenuStyle
	case MenuFashion:
		return txt.MenuFashion
	case MenuSketch:
		return txt.MenuSketch
	case MenuChar:
		return txt.MenuChar
	case MenuLive:
		return txt.MenuLive
	case MenuRecipe:
		return txt.MenuRecipe
	case MenuChat:
		return txt.MenuChat
	}
	return txt.MenuHome
}

// DefaultPrompt returns the prompt text a menu starts with. The fashion
// composite panel deliberately starts with its own title, matching the
// behavior the product shipped with.
func (m MenuID) DefaultPrompt(txt *i18n.Table) string {
	switch m {
	case MenuTxtImg:
		return txt.PromptTxtImg
	case MenuImgTrans:
		return txt.PromptImgTrans
	case MenuRealFace:
		return txt.PromptRealFace
	case MenuSticker:
		return txt.PromptSticker
	case MenuLogo:
		return txt.PromptLogo
	case MenuProduct:
		return txt.PromptProduct
	case MenuComic:
		return txt.PromptComic
	case MenuSmart:
		return txt.PromptSmart
	case MenuStyle:
		return txt.PromptStyle
	case MenuFashion:
		return txt.MenuFashion
	case MenuSketch:
		return txt.PromptSketch
	case MenuChar:
		return txt.PromptChar
	case MenuLive:
		return txt.PromptLive
	case MenuRecipe:
		return txt.PromptRecipe
	}
	return ""
}
