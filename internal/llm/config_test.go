package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, ProviderGemini, config.Provider)
	assert.Equal(t, "gemini-2.5-flash-lite", config.GetModel(TierLite))
	assert.Equal(t, "gemini-2.5-flash", config.GetModel(TierStandard))
	assert.Equal(t, "gemini-2.5-pro", config.GetModel(TierAdvanced))
}

func TestGetModel_FallbackChain(t *testing.T) {
	config := &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierStandard: "gemini-2.5-flash",
		},
	}

	// Missing tier falls back to standard
	assert.Equal(t, "gemini-2.5-flash", config.GetModel(TierAdvanced))
	assert.Equal(t, "gemini-2.5-flash", config.GetModel(TierLite))
}

func TestGetModel_LiteFallback(t *testing.T) {
	config := &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite: "gemini-2.5-flash-lite",
		},
	}

	assert.Equal(t, "gemini-2.5-flash-lite", config.GetModel(TierAdvanced))
}

func TestGetModel_NoModels(t *testing.T) {
	config := &Config{Provider: ProviderGemini, Models: map[ModelTier]string{}}

	assert.Equal(t, "", config.GetModel(TierStandard))
}

func TestWithModel(t *testing.T) {
	config := DefaultConfig()
	custom := config.WithModel(TierAdvanced, "gemini-custom")

	assert.Equal(t, "gemini-custom", custom.GetModel(TierAdvanced))
	// Original is untouched
	assert.Equal(t, "gemini-2.5-pro", config.GetModel(TierAdvanced))
	// Other tiers are copied over
	assert.Equal(t, "gemini-2.5-flash", custom.GetModel(TierStandard))
}
