package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	LLM LLMConfig
	UI  UIConfig
}

// LLMConfig holds provider settings.
type LLMConfig struct {
	APIKeyEnv  string `mapstructure:"api_key_env"`
	APIKey     string `mapstructure:"api_key"`
	TextModel  string `mapstructure:"text_model"`
	ImageModel string `mapstructure:"image_model"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Language  string `mapstructure:"language"`
	OutputDir string `mapstructure:"output_dir"`
}

// Load reads configuration from file and env. Env var overrides use prefix MAGICSTUDIO_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("llm.api_key_env", "GEMINI_API_KEY")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.text_model", "gemini-2.5-flash")
	v.SetDefault("llm.image_model", "gemini-2.5-flash-image")
	v.SetDefault("ui.language", "id")
	v.SetDefault("ui.output_dir", ".")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("MAGICSTUDIO_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "magicstudio"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("MAGICSTUDIO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
// This is primarily used by the TUI settings view for non-sensitive preferences.
// The API key itself lives in the secret store, not here.
func Save(cfg Config) error {
	path := os.Getenv("MAGICSTUDIO_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "magicstudio", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("llm.api_key_env", cfg.LLM.APIKeyEnv)
	v.Set("llm.api_key", cfg.LLM.APIKey)
	v.Set("llm.text_model", cfg.LLM.TextModel)
	v.Set("llm.image_model", cfg.LLM.ImageModel)
	v.Set("ui.language", cfg.UI.Language)
	v.Set("ui.output_dir", cfg.UI.OutputDir)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
