package tui

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/abihisan/magicstudio/internal/capture"
	"github.com/abihisan/magicstudio/internal/config"
	"github.com/abihisan/magicstudio/internal/gemini"
	"github.com/abihisan/magicstudio/internal/i18n"
	"github.com/abihisan/magicstudio/internal/imaging"
	"github.com/abihisan/magicstudio/internal/secrets"
	"github.com/abihisan/magicstudio/internal/studio"
)

// Generator is the slice of the Gemini client the UI drives.
type Generator interface {
	GenerateImage(ctx context.Context, prompt, aspect string) (string, error)
	TransformImage(ctx context.Context, prompt, aspect string, refs []string) (string, error)
	GeneratePromptFromImage(ctx context.Context, dataURI, feature string, lang i18n.Lang) (string, error)
	RefinePrompt(ctx context.Context, draft, refDataURI, feature string, lang i18n.Lang) (string, error)
	Chat(ctx context.Context, history []studio.Message) ([]studio.Part, error)
	ExtractRecipe(ctx context.Context, text string) (*studio.Recipe, error)
	LiveVisuals(ctx context.Context, query string) (*studio.LiveVisual, error)
}

// Services bundles what the app calls out to. Gen may be nil when no API
// key was found; actions then surface the localized key error.
type Services struct {
	Gen     Generator
	Grabber capture.FrameGrabber
}

// ResultFileName is the fixed download name, matching the original studio.
const ResultFileName = "magic_photo_studio_result.png"

var aspectRatios = []string{"1:1", "3:4", "4:3", "16:9", "9:16"}

// App ties together views.
type App struct {
	ctx      context.Context
	cfg      config.Config
	services Services
	lang     i18n.Lang
	txt      *i18n.Table

	menu       studio.MenuID
	inSettings bool
	modal      modalState

	inputBuffer string
	menuCursor  int
	styleCat    int
	styleItem   int
	pathTarget  pathTarget

	// shared studio panel
	prompt      studio.PromptState
	refs        studio.ReferenceSet
	sourceMode  studio.SourceMode
	multiCursor int
	aspectIdx   int
	genReq      studio.Request
	refineReq   studio.Request
	artifact    *studio.Artifact
	status      string

	// chat
	chat           studio.ChatSession
	chatInput      string
	chatAttachment string
	chatReq        studio.Request

	// recipe
	recipeInput string
	recipeReq   studio.Request
	recipe      *studio.Recipe

	// live visuals
	liveInput string
	liveReq   studio.Request
	live      *studio.LiveVisual

	// settings
	apiKeyCached string
	showAPIKey   bool
}

type modalState string

const (
	modalNone        modalState = ""
	modalMenuPicker  modalState = "menuPicker"
	modalPromptEdit  modalState = "promptEdit"
	modalPathEntry   modalState = "pathEntry"
	modalStylePicker modalState = "stylePicker"
	modalEditAPIKey  modalState = "editAPIKey"
)

type pathTarget string

const (
	targetSingle pathTarget = "single"
	targetSecond pathTarget = "second"
	targetMulti  pathTarget = "multi"
	targetChat   pathTarget = "chat"
)

func New(ctx context.Context, cfg config.Config, apiKey string, services Services) *App {
	lang := i18n.Lang(cfg.UI.Language)
	return &App{
		ctx:          ctx,
		cfg:          cfg,
		services:     services,
		lang:         lang,
		txt:          i18n.For(lang),
		menu:         studio.MenuHome,
		sourceMode:   studio.SourceSingle,
		prompt:       studio.NewPromptState(),
		apiKeyCached: apiKey,
	}
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		if a.modal != modalNone {
			return a.handleModalKey(m)
		}
		if a.inSettings {
			return a.handleSettingsKey(m)
		}
		switch a.menu {
		case studio.MenuChat:
			return a.handleChatKey(m)
		case studio.MenuRecipe:
			return a.handleRecipeKey(m)
		case studio.MenuLive:
			return a.handleLiveKey(m)
		case studio.MenuHome:
			return a.handleHomeKey(m)
		}
		return a.handleStudioKey(m)

	case describeDoneMsg:
		// best-effort auto-describe; may land after a refine, last write wins
		a.prompt.Text = string(m)
	case refineDoneMsg:
		if m.err != nil {
			a.refineReq.Fail(studio.FailureMessage(a.txt, m.err, gemini.IsQuota(m.err), studio.ActionRefine))
			a.status = a.refineReq.Err
			return a, nil
		}
		a.refineReq.Succeed()
		a.prompt.Text = m.text
		a.status = ""
	case generateDoneMsg:
		if m.err != nil {
			a.genReq.Fail(studio.FailureMessage(a.txt, m.err, gemini.IsQuota(m.err), studio.ActionGenerate))
			a.status = a.genReq.Err
			return a, nil
		}
		a.genReq.Succeed()
		a.artifact = &studio.Artifact{Kind: studio.ArtifactImage, Image: m.image}
		a.status = ""
	case chatDoneMsg:
		if m.err != nil {
			a.chatReq.Fail(studio.FailureMessage(a.txt, m.err, gemini.IsQuota(m.err), studio.ActionChat))
			a.status = a.chatReq.Err
			return a, nil
		}
		a.chatReq.Succeed()
		a.chat.AppendModel(m.parts)
		a.status = ""
	case recipeDoneMsg:
		if m.err != nil {
			a.recipeReq.Fail(studio.FailureMessage(a.txt, m.err, gemini.IsQuota(m.err), studio.ActionExtract))
			a.status = a.recipeReq.Err
			return a, nil
		}
		a.recipeReq.Succeed()
		a.recipe = m.recipe
		a.status = ""
	case liveDoneMsg:
		if m.err != nil {
			a.liveReq.Fail(studio.FailureMessage(a.txt, m.err, gemini.IsQuota(m.err), studio.ActionSearch))
			a.status = a.liveReq.Err
			return a, nil
		}
		a.liveReq.Succeed()
		a.live = m.visual
		a.status = ""
	case cameraDoneMsg:
		if m.err != nil {
			a.status = a.txt.ErrCamera
			return a, nil
		}
		a.status = ""
		return a, a.acceptImage(m.target, m.uri)
	case filesLoadedMsg:
		if m.err != nil {
			a.status = a.txt.ErrReadFile
			return a, nil
		}
		a.status = ""
		var cmds []tea.Cmd
		for _, uri := range m.uris {
			if cmd := a.acceptImage(m.target, uri); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		if len(cmds) > 0 {
			return a, tea.Batch(cmds...)
		}
	case keySavedMsg:
		a.apiKeyCached = m.key
		a.status = "API key saved (restart to apply)"
	case keyClearedMsg:
		a.apiKeyCached = ""
		a.status = "API key removed (restart to apply)"
	case savedMsg:
		if m.err != nil {
			a.status = a.txt.ErrSaveResult
			return a, nil
		}
		a.status = fmt.Sprintf("%s: %s", a.txt.Saved, m.path)
	case statusMsg:
		a.status = string(m)
	case errMsg:
		a.status = m.Error()
	}
	return a, nil
}

// acceptImage routes a loaded image data URI to its destination slot.
// Setting the primary single reference also kicks off the detached
// auto-describe task.
func (a *App) acceptImage(target pathTarget, uri string) tea.Cmd {
	switch target {
	case targetSecond:
		a.refs.SetSecond(uri)
	case targetMulti:
		a.refs.AddMulti(uri)
		if a.multiCursor >= len(a.refs.Multi) {
			a.multiCursor = 0
		}
	case targetChat:
		a.chatAttachment = uri
	default:
		a.refs.SetSingle(uri)
		return a.analyzeCmd(uri)
	}
	return nil
}

// key handlers

func (a *App) handleHomeKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "m", "enter":
		a.openMenuPicker()
	case "p":
		a.inSettings = true
		a.status = ""
	case "L":
		a.toggleLanguage()
	}
	return a, nil
}

func (a *App) handleStudioKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "m":
		a.openMenuPicker()
	case "p":
		a.inSettings = true
		a.status = ""
	case "L":
		a.toggleLanguage()
	case "e":
		a.modal = modalPromptEdit
		a.inputBuffer = a.prompt.Text
	case "s":
		a.modal = modalStylePicker
		a.styleCat, a.styleItem = 0, 0
	case "c":
		if a.menu == studio.MenuRealFace {
			a.cycleAngle()
		}
	case "a":
		a.aspectIdx = (a.aspectIdx + 1) % len(aspectRatios)
	case "v":
		if a.sourceMode == studio.SourceSingle {
			a.sourceMode = studio.SourceMulti
		} else {
			a.sourceMode = studio.SourceSingle
		}
	case "o":
		a.openPathEntry(targetSingle)
	case "2":
		a.openPathEntry(targetSecond)
	case "+", "=":
		a.openPathEntry(targetMulti)
	case "h", "left":
		if a.sourceMode == studio.SourceMulti && a.multiCursor > 0 {
			a.multiCursor--
		}
	case "l", "right":
		if a.sourceMode == studio.SourceMulti && a.multiCursor < len(a.refs.Multi)-1 {
			a.multiCursor++
		}
	case "-":
		if a.sourceMode == studio.SourceMulti {
			a.refs.RemoveMulti(a.multiCursor)
			if a.multiCursor >= len(a.refs.Multi) && a.multiCursor > 0 {
				a.multiCursor--
			}
		}
	case "x":
		a.refs.ClearSingle()
	case "w":
		target := targetSingle
		if a.sourceMode == studio.SourceMulti {
			target = targetMulti
		}
		a.status = a.txt.Analyzing
		return a, a.cameraCmd(target)
	case "W":
		a.status = a.txt.Analyzing
		return a, a.cameraCmd(targetSecond)
	case "r":
		return a, a.startRefine()
	case "d":
		return a, a.downloadCmd()
	case "enter":
		return a, a.startGenerate()
	}
	return a, nil
}

func (a *App) handleChatKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "ctrl+c":
		return a, tea.Quit
	case "ctrl+o":
		a.openPathEntry(targetChat)
		return a, nil
	}
	switch m.Type {
	case tea.KeyEsc:
		a.menu = studio.MenuHome
		a.status = ""
	case tea.KeyEnter:
		return a, a.startChat()
	case tea.KeyBackspace, tea.KeyCtrlH, tea.KeyDelete:
		if len(a.chatInput) > 0 {
			a.chatInput = a.chatInput[:len(a.chatInput)-1]
		}
	case tea.KeySpace:
		a.chatInput += " "
	case tea.KeyRunes:
		a.chatInput += string(m.Runes)
	}
	return a, nil
}

func (a *App) handleRecipeKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "ctrl+c":
		return a, tea.Quit
	}
	switch m.Type {
	case tea.KeyEsc:
		a.menu = studio.MenuHome
		a.status = ""
	case tea.KeyEnter:
		return a, a.startRecipe()
	case tea.KeyBackspace, tea.KeyCtrlH, tea.KeyDelete:
		if len(a.recipeInput) > 0 {
			a.recipeInput = a.recipeInput[:len(a.recipeInput)-1]
		}
	case tea.KeySpace:
		a.recipeInput += " "
	case tea.KeyRunes:
		a.recipeInput += string(m.Runes)
	}
	return a, nil
}

func (a *App) handleLiveKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "ctrl+c":
		return a, tea.Quit
	}
	switch m.Type {
	case tea.KeyEsc:
		a.menu = studio.MenuHome
		a.status = ""
	case tea.KeyEnter:
		return a, a.startLive()
	case tea.KeyBackspace, tea.KeyCtrlH, tea.KeyDelete:
		if len(a.liveInput) > 0 {
			a.liveInput = a.liveInput[:len(a.liveInput)-1]
		}
	case tea.KeySpace:
		a.liveInput += " "
	case tea.KeyRunes:
		a.liveInput += string(m.Runes)
	}
	return a, nil
}

func (a *App) handleSettingsKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "esc":
		a.inSettings = false
		a.status = ""
	case "e":
		a.modal = modalEditAPIKey
		a.inputBuffer = a.apiKeyCached
	case "v":
		a.showAPIKey = !a.showAPIKey
	case "x":
		return a, a.clearAPIKeyCmd()
	case "L":
		a.toggleLanguage()
	}
	return a, nil
}

func (a *App) handleModalKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.modal {
	case modalMenuPicker:
		switch m.String() {
		case "esc":
			a.modal = modalNone
		case "up", "k":
			if a.menuCursor > 0 {
				a.menuCursor--
			}
		case "down", "j":
			if a.menuCursor < len(studio.Menus)-1 {
				a.menuCursor++
			}
		case "enter":
			a.modal = modalNone
			a.switchMenu(studio.Menus[a.menuCursor])
		}
	case modalStylePicker:
		switch m.String() {
		case "esc":
			a.modal = modalNone
		case "up", "k":
			if a.styleItem > 0 {
				a.styleItem--
			}
		case "down", "j":
			if a.styleItem < len(studio.StyleCategories[a.styleCat].Items)-1 {
				a.styleItem++
			}
		case "left", "h":
			if a.styleCat > 0 {
				a.styleCat--
				a.styleItem = 0
			}
		case "right", "l":
			if a.styleCat < len(studio.StyleCategories)-1 {
				a.styleCat++
				a.styleItem = 0
			}
		case "enter":
			a.modal = modalNone
			cat := studio.StyleCategories[a.styleCat]
			a.prompt.SelectedCategory = cat.ID
			a.prompt.ApplyStyle(cat.Items[a.styleItem])
		}
	case modalPromptEdit, modalPathEntry, modalEditAPIKey:
		switch m.Type {
		case tea.KeyEsc:
			a.modal = modalNone
			a.inputBuffer = ""
		case tea.KeyEnter:
			text := strings.TrimSpace(a.inputBuffer)
			mode := a.modal
			a.modal = modalNone
			a.inputBuffer = ""
			switch mode {
			case modalPromptEdit:
				a.prompt.Text = text
				a.prompt.SelectedStyle = ""
			case modalPathEntry:
				if text == "" {
					return a, nil
				}
				return a, a.readFilesCmd(text, a.pathTarget)
			case modalEditAPIKey:
				if text == "" {
					return a, nil
				}
				return a, a.saveAPIKeyCmd(text)
			}
		case tea.KeyBackspace, tea.KeyCtrlH, tea.KeyDelete:
			if len(a.inputBuffer) > 0 {
				a.inputBuffer = a.inputBuffer[:len(a.inputBuffer)-1]
			}
		case tea.KeySpace:
			a.inputBuffer += " "
		case tea.KeyRunes:
			a.inputBuffer += string(m.Runes)
		}
	}
	return a, nil
}

// state transitions

func (a *App) openMenuPicker() {
	a.modal = modalMenuPicker
	for i, id := range studio.Menus {
		if id == a.menu {
			a.menuCursor = i
			break
		}
	}
}

func (a *App) openPathEntry(target pathTarget) {
	a.modal = modalPathEntry
	a.pathTarget = target
	a.inputBuffer = ""
}

// switchMenu resets the panel for the new feature. References and source
// mode survive the switch; prompt, selections, result and error do not.
func (a *App) switchMenu(menu studio.MenuID) {
	a.menu = menu
	a.inSettings = false
	a.prompt.ApplyMenu(menu, a.txt)
	a.genReq = studio.Request{}
	a.artifact = nil
	a.status = ""
	if menu == studio.MenuLive && a.liveInput == "" {
		a.liveInput = a.txt.PromptLive
	}
}

func (a *App) toggleLanguage() {
	a.lang = i18n.Toggle(a.lang)
	a.txt = i18n.For(a.lang)
	// same effect the original has on language change: menu defaults re-apply
	a.prompt.ApplyMenu(a.menu, a.txt)
}

func (a *App) cycleAngle() {
	for i, angle := range studio.CameraAngles {
		if angle.Label == a.prompt.AngleLabel {
			a.prompt.AngleLabel = studio.CameraAngles[(i+1)%len(studio.CameraAngles)].Label
			return
		}
	}
	a.prompt.AngleLabel = studio.DefaultAngleLabel
}

func (a *App) composed() string {
	return studio.Compose(studio.ComposeInput{
		Menu:       a.menu,
		Text:       a.prompt.Text,
		AngleLabel: a.prompt.AngleLabel,
		MultiMode:  a.sourceMode == studio.SourceMulti,
		ImageCount: len(a.refs.Multi),
	})
}

// commands

func (a *App) startGenerate() tea.Cmd {
	if a.services.Gen == nil {
		a.status = a.txt.ErrNoAPIKey
		return nil
	}
	prompt := a.composed()
	if !a.genReq.Begin(prompt) {
		return nil
	}
	a.artifact = nil
	a.status = a.txt.Loading
	refs := a.refs.Active(a.sourceMode)
	aspect := aspectRatios[a.aspectIdx]
	return func() tea.Msg {
		if len(refs) > 0 {
			img, err := a.services.Gen.TransformImage(a.ctx, prompt, aspect, refs)
			return generateDoneMsg{image: img, err: err}
		}
		img, err := a.services.Gen.GenerateImage(a.ctx, prompt, aspect)
		return generateDoneMsg{image: img, err: err}
	}
}

func (a *App) startRefine() tea.Cmd {
	if a.services.Gen == nil {
		a.status = a.txt.ErrNoAPIKey
		return nil
	}
	draft := a.prompt.Text
	if !a.refineReq.Begin(draft) {
		return nil
	}
	a.status = a.txt.Analyzing
	ref := a.refs.Single
	if ref == "" {
		ref = a.refs.Second
	}
	feature := a.menu.Title(a.txt)
	lang := a.lang
	return func() tea.Msg {
		text, err := a.services.Gen.RefinePrompt(a.ctx, draft, ref, feature, lang)
		return refineDoneMsg{text: text, err: err}
	}
}

// analyzeCmd is the detached auto-describe task. It never surfaces its
// failure; the log file gets it and the prompt stays untouched.
func (a *App) analyzeCmd(dataURI string) tea.Cmd {
	if a.services.Gen == nil {
		return nil
	}
	feature := a.menu.Title(a.txt)
	lang := a.lang
	return func() tea.Msg {
		text, err := a.services.Gen.GeneratePromptFromImage(a.ctx, dataURI, feature, lang)
		if err != nil {
			log.Printf("auto-describe failed: %v", err)
			return nil
		}
		return describeDoneMsg(text)
	}
}

func (a *App) startChat() tea.Cmd {
	if a.services.Gen == nil {
		a.status = a.txt.ErrNoAPIKey
		return nil
	}
	text := strings.TrimSpace(a.chatInput)
	att := a.chatAttachment
	if text == "" && att == "" {
		return nil
	}
	guard := text
	if guard == "" {
		guard = att
	}
	if !a.chatReq.Begin(guard) {
		return nil
	}
	// the user's turn lands in the transcript now; input and attachment
	// clear before the reply arrives
	a.chat.Submit(text, att)
	a.chatInput = ""
	a.chatAttachment = ""
	a.status = a.txt.Loading

	history := make([]studio.Message, len(a.chat.Messages))
	copy(history, a.chat.Messages)
	return func() tea.Msg {
		parts, err := a.services.Gen.Chat(a.ctx, history)
		return chatDoneMsg{parts: parts, err: err}
	}
}

func (a *App) startRecipe() tea.Cmd {
	if a.services.Gen == nil {
		a.status = a.txt.ErrNoAPIKey
		return nil
	}
	text := strings.TrimSpace(a.recipeInput)
	if !a.recipeReq.Begin(text) {
		return nil
	}
	a.recipe = nil
	a.status = a.txt.Loading
	return func() tea.Msg {
		recipe, err := a.services.Gen.ExtractRecipe(a.ctx, text)
		return recipeDoneMsg{recipe: recipe, err: err}
	}
}

func (a *App) startLive() tea.Cmd {
	if a.services.Gen == nil {
		a.status = a.txt.ErrNoAPIKey
		return nil
	}
	query := strings.TrimSpace(a.liveInput)
	if !a.liveReq.Begin(query) {
		return nil
	}
	a.live = nil
	a.status = a.txt.Loading
	return func() tea.Msg {
		visual, err := a.services.Gen.LiveVisuals(a.ctx, query)
		return liveDoneMsg{visual: visual, err: err}
	}
}

func (a *App) cameraCmd(target pathTarget) tea.Cmd {
	grabber := a.services.Grabber
	if grabber == nil {
		grabber = &capture.FFmpegGrabber{}
	}
	ctx := a.ctx
	return func() tea.Msg {
		uri, err := capture.Snapshot(ctx, grabber)
		return cameraDoneMsg{uri: uri, target: target, err: err}
	}
}

func (a *App) readFilesCmd(input string, target pathTarget) tea.Cmd {
	var paths []string
	if target == targetMulti {
		// multiple paths, comma-separated
		for _, p := range strings.Split(input, ",") {
			if p = strings.TrimSpace(p); p != "" {
				paths = append(paths, p)
			}
		}
	} else {
		paths = []string{input}
	}
	return func() tea.Msg {
		uris := make([]string, 0, len(paths))
		for _, p := range paths {
			uri, err := imaging.ReadFileAsDataURL(p)
			if err != nil {
				return filesLoadedMsg{err: err}
			}
			uris = append(uris, uri)
		}
		return filesLoadedMsg{uris: uris, target: target}
	}
}

func (a *App) downloadCmd() tea.Cmd {
	if a.artifact == nil || a.artifact.Kind != studio.ArtifactImage {
		return nil
	}
	uri := a.artifact.Image
	dir := a.cfg.UI.OutputDir
	if dir == "" {
		dir = "."
	}
	return func() tea.Msg {
		_, raw, err := imaging.DecodeDataURL(uri)
		if err != nil {
			return savedMsg{err: err}
		}
		path := filepath.Join(dir, ResultFileName)
		if err := os.WriteFile(path, raw, 0o644); err != nil {
			return savedMsg{err: err}
		}
		return savedMsg{path: path}
	}
}

func (a *App) saveAPIKeyCmd(key string) tea.Cmd {
	key = strings.TrimSpace(key)
	return func() tea.Msg {
		if err := secrets.StoreProviderKey("gemini", key); err != nil {
			return errMsg{err}
		}
		return keySavedMsg{key: key}
	}
}

func (a *App) clearAPIKeyCmd() tea.Cmd {
	return func() tea.Msg {
		if err := secrets.DeleteProviderKey("gemini"); err != nil {
			return errMsg{err}
		}
		return keyClearedMsg{}
	}
}

// messages
type describeDoneMsg string

type refineDoneMsg struct {
	text string
	err  error
}

type generateDoneMsg struct {
	image string
	err   error
}

type chatDoneMsg struct {
	parts []studio.Part
	err   error
}

type recipeDoneMsg struct {
	recipe *studio.Recipe
	err    error
}

type liveDoneMsg struct {
	visual *studio.LiveVisual
	err    error
}

type cameraDoneMsg struct {
	uri    string
	target pathTarget
	err    error
}

type filesLoadedMsg struct {
	uris   []string
	target pathTarget
	err    error
}

type keySavedMsg struct {
	key string
}

type keyClearedMsg struct{}

type savedMsg struct {
	path string
	err  error
}

type statusMsg string

type errMsg struct{ error }
