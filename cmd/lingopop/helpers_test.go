package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/lingopop/internal/config"
	"github.com/at-ishikawa/lingopop/internal/testutil"
)

func TestNewInferenceClient(t *testing.T) {
	t.Run("requires an API key", func(t *testing.T) {
		_, err := newInferenceClient(&config.Config{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "OPENAI_API_KEY")
	})

	t.Run("creates a client", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.OpenAI.APIKey = "test-key"
		cfg.OpenAI.Model = "gpt-4o-mini"
		client, err := newInferenceClient(cfg)
		require.NoError(t, err)
		defer func() {
			_ = client.Close()
		}()
		assert.Equal(t, "gpt-4o-mini", client.GetModel())
	})
}

func TestOpenStore(t *testing.T) {
	tmpDir := t.TempDir()
	setConfigFile(t, testutil.SetupTestConfig(t, tmpDir))

	cfg, err := loadConfig()
	require.NoError(t, err)

	store, closeStore, err := openStore(cfg)
	require.NoError(t, err)
	defer func() {
		_ = closeStore()
	}()
	assert.Equal(t, 0, store.Len())
}
