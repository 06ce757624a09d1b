package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MAGICSTUDIO_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LLM.APIKeyEnv != "GEMINI_API_KEY" {
		t.Errorf("APIKeyEnv = %q, want GEMINI_API_KEY", cfg.LLM.APIKeyEnv)
	}
	if cfg.LLM.TextModel != "gemini-2.5-flash" {
		t.Errorf("TextModel = %q", cfg.LLM.TextModel)
	}
	if cfg.LLM.ImageModel != "gemini-2.5-flash-image" {
		t.Errorf("ImageModel = %q", cfg.LLM.ImageModel)
	}
	if cfg.UI.Language != "id" {
		t.Errorf("Language = %q, want id", cfg.UI.Language)
	}
	if cfg.UI.OutputDir != "." {
		t.Errorf("OutputDir = %q, want .", cfg.UI.OutputDir)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("MAGICSTUDIO_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("MAGICSTUDIO_LLM_TEXT_MODEL", "gemini-override")
	t.Setenv("MAGICSTUDIO_UI_LANGUAGE", "en")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LLM.TextModel != "gemini-override" {
		t.Errorf("TextModel = %q, want env override", cfg.LLM.TextModel)
	}
	if cfg.UI.Language != "en" {
		t.Errorf("Language = %q, want en", cfg.UI.Language)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("MAGICSTUDIO_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg.UI.OutputDir = "/tmp/out"
	cfg.LLM.ImageModel = "gemini-custom-image"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.UI.OutputDir != "/tmp/out" {
		t.Errorf("OutputDir = %q, want /tmp/out", got.UI.OutputDir)
	}
	if got.LLM.ImageModel != "gemini-custom-image" {
		t.Errorf("ImageModel = %q", got.LLM.ImageModel)
	}
}
