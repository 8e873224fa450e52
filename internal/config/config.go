// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/textsmith/internal/llm"
)

// Config represents settings that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Server
	Port int `json:"port,omitempty"` // HTTP port for serve mode

	// Models
	APIKey string            `json:"api_key,omitempty"` // Gemini API key (GEMINI_API_KEY overrides)
	Models map[string]string `json:"models,omitempty"`  // Per-tier model overrides (lite/standard/advanced)

	// Summarizer defaults
	MaxWords int `json:"max_words,omitempty"` // Maximum summary length in words
	MinWords int `json:"min_words,omitempty"` // Minimum summary length in words

	// Story generator defaults
	StoryMaxWords int `json:"story_max_words,omitempty"` // Target story length in words

	// Bullet generator defaults
	BulletsPerSkill int `json:"bullets_per_skill,omitempty"` // Bullets to generate per skill

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print formatted detail output
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config in %s: %w", path, err)
	}

	return &cfg, nil
}

// Validate checks field ranges. Zero values are allowed everywhere and
// mean "use the default".
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port %d is out of range", c.Port)
	}
	if c.MaxWords < 0 || c.MinWords < 0 || c.StoryMaxWords < 0 || c.BulletsPerSkill < 0 {
		return fmt.Errorf("word and bullet counts must not be negative")
	}
	for tier := range c.Models {
		switch llm.ModelTier(tier) {
		case llm.TierLite, llm.TierStandard, llm.TierAdvanced:
		default:
			return fmt.Errorf("unknown model tier %q", tier)
		}
	}
	return nil
}

// LLMConfig returns the default LLM configuration with any per-tier
// model overrides applied.
func (c *Config) LLMConfig() *llm.Config {
	cfg := llm.DefaultConfig()
	for tier, model := range c.Models {
		cfg = cfg.WithModel(llm.ModelTier(tier), model)
	}
	return cfg
}
