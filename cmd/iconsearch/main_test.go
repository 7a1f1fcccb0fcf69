package main

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func contextWithLogLevel(t *testing.T, level string) *cli.Context {
	t.Helper()
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.String("log-level", level, "")
	return cli.NewContext(cli.NewApp(), set, nil)
}

func TestSetupLogLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "DEBUG"} {
		t.Run(level, func(t *testing.T) {
			require.NoError(t, setup(contextWithLogLevel(t, level)))
		})
	}
}

func TestSetupInvalidLogLevel(t *testing.T) {
	err := setup(contextWithLogLevel(t, "verbose"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestAIConfigFromEnv(t *testing.T) {
	t.Run("defaults to mock without a key", func(t *testing.T) {
		t.Setenv("ICONSEARCH_PROVIDER", "")
		t.Setenv("ICONSEARCH_API_KEY", "")

		config := aiConfigFromEnv()
		assert.Equal(t, "mock", config.Provider)
	})

	t.Run("key without provider selects cohere", func(t *testing.T) {
		t.Setenv("ICONSEARCH_PROVIDER", "")
		t.Setenv("ICONSEARCH_API_KEY", "secret")

		config := aiConfigFromEnv()
		assert.Equal(t, "cohere", config.Provider)
		assert.Equal(t, "secret", config.APIKey)
	})

	t.Run("explicit provider wins", func(t *testing.T) {
		t.Setenv("ICONSEARCH_PROVIDER", "openai")
		t.Setenv("ICONSEARCH_API_KEY", "secret")

		config := aiConfigFromEnv()
		assert.Equal(t, "openai", config.Provider)
	})
}
