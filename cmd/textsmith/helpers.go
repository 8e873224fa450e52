package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/textsmith/internal/config"
	"github.com/jonathan/textsmith/internal/llm"
)

var (
	configPath string
	apiKeyFlag string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a JSON config file")
	rootCmd.PersistentFlags().StringVar(&apiKeyFlag, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
}

// loadFileConfig loads the --config file, or returns an empty config
// when no file was given.
func loadFileConfig() (*config.Config, error) {
	if configPath == "" {
		return &config.Config{}, nil
	}
	return config.LoadConfig(configPath)
}

// resolveAPIKey picks the Gemini API key from the flag, the
// environment, or the config file, in that order.
func resolveAPIKey(cfg *config.Config) (string, error) {
	if apiKeyFlag != "" {
		return apiKeyFlag, nil
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key, nil
	}
	if cfg.APIKey != "" {
		return cfg.APIKey, nil
	}
	return "", fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
}

// newLLMClient builds a client from the resolved key and any model
// overrides in the config file.
func newLLMClient(ctx context.Context, cfg *config.Config) (llm.Client, error) {
	apiKey, err := resolveAPIKey(cfg)
	if err != nil {
		return nil, err
	}
	client, err := llm.NewClient(ctx, cfg.LLMConfig(), apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	return client, nil
}
