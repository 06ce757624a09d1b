package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/abihisan/magicstudio/internal/config"
	"github.com/abihisan/magicstudio/internal/gemini"
	"github.com/abihisan/magicstudio/internal/logging"
	"github.com/abihisan/magicstudio/internal/secrets"
	"github.com/abihisan/magicstudio/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if _, err := logging.Setup(); err != nil {
		log.Printf("warn: file logging unavailable: %v", err)
	}

	apiKey := resolveAPIKey(cfg)

	// no key is not fatal: the app starts and actions surface the hint
	var gen tui.Generator
	if apiKey != "" {
		client, err := gemini.New(ctx, apiKey, cfg.LLM.TextModel, cfg.LLM.ImageModel)
		if err != nil {
			log.Fatalf("gemini: %v", err)
		}
		gen = client
	}

	p := tea.NewProgram(
		tui.New(ctx, cfg, apiKey, tui.Services{Gen: gen}),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

func resolveAPIKey(cfg config.Config) string {
	env := strings.TrimSpace(cfg.LLM.APIKeyEnv)
	if env == "" {
		env = "GEMINI_API_KEY"
	}
	if v := os.Getenv(env); v != "" {
		return v
	}
	if k, err := secrets.FetchProviderKey("gemini"); err == nil {
		return k
	}
	return strings.TrimSpace(cfg.LLM.APIKey)
}
