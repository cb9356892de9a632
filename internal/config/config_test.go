package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigRequiresApiKey(t *testing.T) {
	t.Setenv("MISTRAL_API_KEY", "")

	cfg, err := NewConfig(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorIs(t, err, ErrMissingApiKey)
	assert.Nil(t, cfg)
}

func TestNewConfigFromFile(t *testing.T) {
	for _, key := range []string{"MISTRAL_API_KEY", "MISTRAL_MODEL", "MISTRAL_TIMEOUT", "MISTRAL_URL", "MISTRAL_TEMPERATURE", "PG_NAME"} {
		t.Setenv(key, "")
	}
	path := filepath.Join(t.TempDir(), ".env")
	content := "MISTRAL_API_KEY=file-key\nMISTRAL_MODEL=mistral-large-latest\nMISTRAL_TIMEOUT=5s\nPG_NAME=collections\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := NewConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "file-key", cfg.MistralApiKey)
	assert.Equal(t, "mistral-large-latest", cfg.ModelName)
	assert.Equal(t, 5*time.Second, cfg.MistralTimeout)
	assert.Equal(t, "https://api.mistral.ai/v1", cfg.MistralURL)
	assert.Equal(t, 0.7, cfg.Temperature)
	assert.Contains(t, cfg.PostgresDSN(), "dbname=collections")
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("MISTRAL_API_KEY=file-key\n"), 0o600))
	t.Setenv("MISTRAL_API_KEY", "env-key")

	cfg, err := NewConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.MistralApiKey)
}

func TestValidate(t *testing.T) {
	cfg := Config{MistralApiKey: "k", ModelName: "m", MistralTimeout: time.Second}
	assert.NoError(t, cfg.Validate())

	cfg.MistralTimeout = 0
	assert.Error(t, cfg.Validate())

	cfg.MistralTimeout = time.Second
	cfg.Temperature = -1
	assert.Error(t, cfg.Validate())
}
