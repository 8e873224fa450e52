package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/textsmith/internal/config"
)

// TestMain runs before all tests and loads .env if available
func TestMain(m *testing.M) {
	_ = godotenv.Load()
	os.Exit(m.Run())
}

func TestResolveAPIKeyPrecedence(t *testing.T) {
	t.Run("flag wins", func(t *testing.T) {
		apiKeyFlag = "flag-key"
		defer func() { apiKeyFlag = "" }()
		t.Setenv("GEMINI_API_KEY", "env-key")

		key, err := resolveAPIKey(&config.Config{APIKey: "file-key"})
		require.NoError(t, err)
		assert.Equal(t, "flag-key", key)
	})

	t.Run("env beats config file", func(t *testing.T) {
		apiKeyFlag = ""
		t.Setenv("GEMINI_API_KEY", "env-key")

		key, err := resolveAPIKey(&config.Config{APIKey: "file-key"})
		require.NoError(t, err)
		assert.Equal(t, "env-key", key)
	})

	t.Run("config file fallback", func(t *testing.T) {
		apiKeyFlag = ""
		t.Setenv("GEMINI_API_KEY", "")

		key, err := resolveAPIKey(&config.Config{APIKey: "file-key"})
		require.NoError(t, err)
		assert.Equal(t, "file-key", key)
	})

	t.Run("missing everywhere", func(t *testing.T) {
		apiKeyFlag = ""
		t.Setenv("GEMINI_API_KEY", "")

		_, err := resolveAPIKey(&config.Config{})
		assert.ErrorContains(t, err, "API key is required")
	})
}

func TestLoadFileConfig(t *testing.T) {
	t.Run("no file gives empty config", func(t *testing.T) {
		configPath = ""
		cfg, err := loadFileConfig()
		require.NoError(t, err)
		assert.Equal(t, &config.Config{}, cfg)
	})

	t.Run("reads json file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"port": 9090, "max_words": 150}`), 0644))

		configPath = path
		defer func() { configPath = "" }()

		cfg, err := loadFileConfig()
		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.Port)
		assert.Equal(t, 150, cfg.MaxWords)
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"port": 99999}`), 0644))

		configPath = path
		defer func() { configPath = "" }()

		_, err := loadFileConfig()
		assert.ErrorContains(t, err, "out of range")
	})
}

func TestRunStoryRequiresPromptOrGuidedFields(t *testing.T) {
	storySuggest = false
	storyPrompt = ""
	storyCharacter = "a detective"
	storySetting = ""
	storyConflict = ""
	defer func() { storyCharacter = "" }()

	err := runStory(storyCmd, nil)
	assert.ErrorContains(t, err, "--prompt")
}

func TestRunBulletsRequiresSkillsAndContext(t *testing.T) {
	bulletsSuggest = false

	bulletsSkills = ""
	err := runBullets(bulletsCmd, nil)
	assert.ErrorContains(t, err, "--skills is required")

	bulletsSkills = "Go"
	bulletsContext = ""
	defer func() { bulletsSkills = "" }()
	err = runBullets(bulletsCmd, nil)
	assert.ErrorContains(t, err, "--context is required")
}

func TestSuggestFlagsNeedNoAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	storySuggest = true
	defer func() { storySuggest = false }()
	require.NoError(t, runStory(storyCmd, nil))

	bulletsSuggest = true
	defer func() { bulletsSuggest = false }()
	require.NoError(t, runBullets(bulletsCmd, nil))
}
