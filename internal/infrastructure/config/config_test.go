package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Explorer config
	assert.Empty(t, cfg.Explorer.StartDir)
	assert.Equal(t, "table", cfg.Explorer.Output)
	assert.True(t, cfg.Explorer.DetectContent)

	// Logging config
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)

	// Metrics config
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "explorer", cfg.Metrics.Namespace)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "table", cfg.Explorer.Output)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadWithEnvironmentVariables(t *testing.T) {
	envVars := map[string]string{
		"EXPLORER_START_DIR":      "/tmp",
		"EXPLORER_OUTPUT":         "YAML",
		"EXPLORER_DETECT_CONTENT": "false",
		"LOG_LEVEL":               "debug",
		"LOG_DEV":                 "true",
		"METRICS_ENABLED":         "false",
		"METRICS_NAMESPACE":       "fsx",
	}
	for key, value := range envVars {
		t.Setenv(key, value)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp", cfg.Explorer.StartDir)
	assert.Equal(t, "yaml", cfg.Explorer.Output)
	assert.False(t, cfg.Explorer.DetectContent)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "fsx", cfg.Metrics.Namespace)
}

func TestLoadRejectsRelativeStartDir(t *testing.T) {
	t.Setenv("EXPLORER_START_DIR", "relative/dir")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EXPLORER_START_DIR")
}

func TestLoadRejectsUnknownOutput(t *testing.T) {
	t.Setenv("EXPLORER_OUTPUT", "xml")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
}

func TestLoadRejectsMalformedBool(t *testing.T) {
	t.Setenv("LOG_DEV", "maybe")

	_, err := Load()
	assert.Error(t, err)
}
