package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := NewConfig()
		assert.Equal(t, ProviderCohere, cfg.Provider)
		assert.Equal(t, "https://api.cohere.ai", cfg.Host)
		assert.Equal(t, "embed-english-v3.0", cfg.Model)
	})

	t.Run("options override defaults", func(t *testing.T) {
		cfg := NewConfig(
			WithProvider(ProviderOpenAI),
			WithHost("http://localhost:11434/v1"),
			WithModel("text-embedding-3-small"),
			WithAPIKey("secret"),
		)
		assert.Equal(t, ProviderOpenAI, cfg.Provider)
		assert.Equal(t, "http://localhost:11434/v1", cfg.Host)
		assert.Equal(t, "text-embedding-3-small", cfg.Model)
		assert.Equal(t, "secret", cfg.APIKey)
	})
}

func TestConfig_Normalize(t *testing.T) {
	cfg := NewConfig(WithHost("https://api.cohere.ai/"))
	cfg.Normalize()
	assert.Equal(t, "https://api.cohere.ai", cfg.Host)
}

func TestConfig_Validate(t *testing.T) {
	t.Run("valid cohere config", func(t *testing.T) {
		cfg := NewConfig(WithAPIKey("secret"))
		require.NoError(t, cfg.Validate())
	})

	t.Run("cohere requires api key", func(t *testing.T) {
		assert.Error(t, NewConfig().Validate())
	})

	t.Run("openai allows missing api key", func(t *testing.T) {
		cfg := NewConfig(
			WithProvider(ProviderOpenAI),
			WithHost("http://localhost:11434/v1"),
			WithModel("embeddinggemma"),
		)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("unknown provider", func(t *testing.T) {
		cfg := NewConfig(WithProvider("tarot"))
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing host", func(t *testing.T) {
		cfg := NewConfig(WithAPIKey("secret"), WithHost(""))
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing model", func(t *testing.T) {
		cfg := NewConfig(WithAPIKey("secret"), WithModel(""))
		assert.Error(t, cfg.Validate())
	})

	t.Run("mock provider needs nothing", func(t *testing.T) {
		cfg := NewConfig(WithProvider(ProviderMock), WithHost(""), WithModel(""))
		assert.NoError(t, cfg.Validate())
	})

	t.Run("validate normalizes host", func(t *testing.T) {
		cfg := NewConfig(WithAPIKey("secret"), WithHost("https://api.cohere.ai/"))
		require.NoError(t, cfg.Validate())
		assert.Equal(t, "https://api.cohere.ai", cfg.Host)
	})
}
