package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/abihisan/magicstudio/internal/studio"
)

// styles
var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	dimStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	activeStyle = lipgloss.NewStyle().Bold(true)
)

func (a *App) View() string {
	var body string
	switch {
	case a.inSettings:
		body = a.renderSettings()
	case a.menu == studio.MenuHome:
		body = a.renderHome()
	case a.menu == studio.MenuChat:
		body = a.renderChat()
	case a.menu == studio.MenuRecipe:
		body = a.renderRecipe()
	case a.menu == studio.MenuLive:
		body = a.renderLive()
	default:
		body = a.renderStudio()
	}
	if a.modal != modalNone {
		body += "\n\n" + a.renderModal()
	}
	return body
}

func (a *App) renderHome() string {
	title := titleStyle.Render(a.txt.Welcome)
	out := title + "\n\n"
	for _, id := range studio.Menus {
		if id == studio.MenuHome {
			continue
		}
		out += fmt.Sprintf("  %s\n", id.Title(a.txt))
	}
	out += "\n[m] Menu  [p] Settings  [L] Language  [q] Quit"
	if a.status != "" {
		out += "\n" + a.status
	}
	return out
}

func (a *App) renderStudio() string {
	title := titleStyle.Render(a.menu.Title(a.txt))
	out := title + "\n"

	promptLine := a.prompt.Text
	if promptLine == "" {
		promptLine = dimStyle.Render("(empty)")
	}
	out += fmt.Sprintf("Prompt: %s\n", promptLine)
	if a.prompt.SelectedStyle != "" {
		out += fmt.Sprintf("Style: %s\n", a.prompt.SelectedStyle)
	}
	if a.menu == studio.MenuRealFace {
		out += fmt.Sprintf("Camera: %s\n", a.prompt.AngleLabel)
	}
	out += fmt.Sprintf("Aspect: %s\n", aspectRatios[a.aspectIdx])
	out += a.renderSources()
	out += a.renderResult()

	action := a.txt.Generate
	if a.refs.HasActive(a.sourceMode) {
		action = a.txt.Transform
	}
	out += "\n[enter] " + action
	out += "  [e] Prompt  [r] Refine  [s] Styles"
	if a.menu == studio.MenuRealFace {
		out += "  [c] Camera angle"
	}
	out += "  [a] Aspect\n"
	out += "[o] Image  [2] 2nd image  [v] Source mode  [+] Add multi  [-] Remove  [w] Webcam  [W] Webcam 2nd  [x] Clear\n"
	out += "[d] Save result  [m] Menu  [p] Settings  [L] Language  [q] Quit"
	if a.status != "" {
		out += "\n" + a.statusLine()
	}
	return out
}

func (a *App) renderSources() string {
	single := "Sources (single): "
	if a.refs.Single != "" {
		single += "primary set"
		if a.refs.Second != "" {
			single += ", second set"
		}
	} else if a.refs.Second != "" {
		single += "second set"
	} else {
		single += dimStyle.Render("none")
	}

	multi := fmt.Sprintf("Sources (multi): %d/%d", len(a.refs.Multi), studio.MaxMultiImages)
	if a.sourceMode == studio.SourceMulti && len(a.refs.Multi) > 0 {
		var slots []string
		for i := range a.refs.Multi {
			label := fmt.Sprintf("%d", i+1)
			if i == a.multiCursor {
				label = activeStyle.Render("[" + label + "]")
			}
			slots = append(slots, label)
		}
		multi += "  " + strings.Join(slots, " ")
	}

	if a.sourceMode == studio.SourceMulti {
		multi = activeStyle.Render("▶ ") + multi
		single = "  " + single
	} else {
		single = activeStyle.Render("▶ ") + single
		multi = "  " + multi
	}
	return single + "\n" + multi + "\n"
}

func (a *App) renderResult() string {
	if a.genReq.InFlight() {
		return "Result: " + a.txt.Loading + "\n"
	}
	if a.artifact != nil && a.artifact.Kind == studio.ArtifactImage {
		return fmt.Sprintf("Result: image ready (%s, %d bytes encoded) - [d] to save\n",
			aspectRatios[a.aspectIdx], len(a.artifact.Image))
	}
	return "Result: " + dimStyle.Render(a.txt.ResultIdle) + "\n"
}

func (a *App) renderChat() string {
	title := titleStyle.Render(a.menu.Title(a.txt))
	out := title + "\n"
	for _, msg := range a.chat.Messages {
		who := "you"
		if msg.Role == studio.RoleModel {
			who = "gemini"
		}
		for _, p := range msg.Parts {
			switch p.Kind {
			case studio.PartImage:
				out += fmt.Sprintf("%s: %s\n", who, dimStyle.Render("[image]"))
			default:
				out += fmt.Sprintf("%s: %s\n", who, p.Text)
			}
		}
	}
	if a.chatReq.InFlight() {
		out += dimStyle.Render("...") + "\n"
	}
	attach := ""
	if a.chatAttachment != "" {
		attach = " [image attached]"
	}
	out += fmt.Sprintf("\n> %s%s\n", a.chatInput, attach)
	out += "[enter] Send  [ctrl+o] Attach image  [esc] Back  [ctrl+c] Quit"
	if a.status != "" {
		out += "\n" + a.statusLine()
	}
	return out
}

func (a *App) renderRecipe() string {
	title := titleStyle.Render(a.menu.Title(a.txt))
	out := title + "\n"
	input := a.recipeInput
	if input == "" {
		input = dimStyle.Render(a.txt.PromptRecipe)
	}
	out += fmt.Sprintf("Text: %s\n", input)

	if a.recipeReq.InFlight() {
		out += a.txt.Loading + "\n"
	} else if a.recipe != nil {
		out += "\n" + titleStyle.Render(a.recipe.RecipeName) + "\n"
		out += fmt.Sprintf("Prep: %d min\n", a.recipe.PrepTimeMinutes)
		for _, ing := range a.recipe.Ingredients {
			out += fmt.Sprintf("- %s: %s\n", ing.Name, ing.Quantity)
		}
		for i, step := range a.recipe.Instructions {
			out += fmt.Sprintf("%d. %s\n", i+1, step)
		}
	}
	out += "\n[enter] " + a.txt.Extract + "  [esc] Back  [ctrl+c] Quit"
	if a.status != "" {
		out += "\n" + a.statusLine()
	}
	return out
}

func (a *App) renderLive() string {
	title := titleStyle.Render(a.menu.Title(a.txt))
	out := title + "\n"
	out += fmt.Sprintf("Query: %s\n", a.liveInput)

	if a.liveReq.InFlight() {
		out += a.txt.Loading + "\n"
	} else if a.live != nil {
		out += "\n" + a.live.Summary + "\n"
		if a.live.Image != "" {
			out += dimStyle.Render("(illustration ready)") + "\n"
		}
		for _, c := range a.live.Citations {
			label := c.Title
			if label == "" {
				label = c.URI
			}
			out += fmt.Sprintf("  %s <%s>\n", label, c.URI)
		}
	}
	out += "\n[enter] " + a.txt.Visualize + "  [esc] Back  [ctrl+c] Quit"
	if a.status != "" {
		out += "\n" + a.statusLine()
	}
	return out
}

func (a *App) renderSettings() string {
	title := titleStyle.Render("Settings")
	out := title + "\n"

	apiValue := "(not set)"
	if a.apiKeyCached != "" {
		if a.showAPIKey {
			apiValue = a.apiKeyCached
		} else {
			apiValue = strings.Repeat("*", len(a.apiKeyCached))
		}
	}
	out += fmt.Sprintf("Gemini API key (%s): %s\n", a.cfg.LLM.APIKeyEnv, apiValue)
	out += fmt.Sprintf("Text model: %s\n", a.cfg.LLM.TextModel)
	out += fmt.Sprintf("Image model: %s\n", a.cfg.LLM.ImageModel)
	out += fmt.Sprintf("Output dir: %s\n", a.cfg.UI.OutputDir)
	out += fmt.Sprintf("Language: %s\n", a.lang)
	out += "\n[e] Edit API key (stored encrypted)  [x] Clear API key  [v] Toggle visibility  [L] Language\n"
	out += "[esc] Back  [q] Quit"
	if a.status != "" {
		out += "\n" + a.statusLine()
	}
	return out
}

func (a *App) renderModal() string {
	switch a.modal {
	case modalMenuPicker:
		out := titleStyle.Render("Select Feature") + "\n"
		for i, id := range studio.Menus {
			marker := " "
			if i == a.menuCursor {
				marker = "▶"
			}
			out += fmt.Sprintf("%s %s\n", marker, id.Title(a.txt))
		}
		out += "[enter] Select  [esc] Cancel"
		return out
	case modalStylePicker:
		cat := studio.StyleCategories[a.styleCat]
		out := titleStyle.Render(cat.Label(a.txt)) + dimStyle.Render(fmt.Sprintf("  (%d/%d)", a.styleCat+1, len(studio.StyleCategories))) + "\n"
		for i, item := range cat.Items {
			marker := " "
			if i == a.styleItem {
				marker = "▶"
			}
			out += fmt.Sprintf("%s %s\n", marker, item.Label(a.lang))
		}
		out += "[←/→] Category  [enter] Apply  [esc] Cancel"
		return out
	case modalPromptEdit:
		return titleStyle.Render("Edit prompt") + fmt.Sprintf("\n%s\n[enter] Apply  [esc] Cancel", a.inputBuffer)
	case modalPathEntry:
		label := "Image path"
		if a.pathTarget == targetMulti {
			label = "Image paths (comma-separated)"
		}
		return titleStyle.Render(label) + fmt.Sprintf("\n%s\n[enter] Load  [esc] Cancel", a.inputBuffer)
	case modalEditAPIKey:
		return titleStyle.Render("Set Gemini API key") + fmt.Sprintf("\n%s\n[enter] Save  [esc] Cancel", a.inputBuffer)
	default:
		return ""
	}
}

func (a *App) statusLine() string {
	if a.genReq.Phase == studio.PhaseFailed || a.chatReq.Phase == studio.PhaseFailed ||
		a.recipeReq.Phase == studio.PhaseFailed || a.liveReq.Phase == studio.PhaseFailed ||
		a.refineReq.Phase == studio.PhaseFailed {
		return errorStyle.Render(a.status)
	}
	return a.status
}
