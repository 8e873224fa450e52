package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/textsmith/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeConfig(t, `{
		"port": 9090,
		"max_words": 150,
		"min_words": 40,
		"bullets_per_skill": 5,
		"models": {"lite": "gemini-custom-lite"}
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 150, cfg.MaxWords)
	assert.Equal(t, 40, cfg.MinWords)
	assert.Equal(t, 5, cfg.BulletsPerSkill)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestLoadConfig_MalformedJSON(t *testing.T) {
	path := writeConfig(t, `{"port":`)

	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "failed to parse config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"zero config", Config{}, ""},
		{"port too high", Config{Port: 70000}, "out of range"},
		{"negative words", Config{MaxWords: -1}, "must not be negative"},
		{"unknown tier", Config{Models: map[string]string{"huge": "x"}}, "unknown model tier"},
		{"known tiers", Config{Models: map[string]string{"lite": "a", "standard": "b", "advanced": "c"}}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestLLMConfig_AppliesOverrides(t *testing.T) {
	cfg := Config{Models: map[string]string{"advanced": "gemini-custom"}}

	llmCfg := cfg.LLMConfig()
	assert.Equal(t, "gemini-custom", llmCfg.GetModel(llm.TierAdvanced))
	assert.Equal(t, "gemini-2.5-flash", llmCfg.GetModel(llm.TierStandard))
}
