package config_test

import (
	"testing"

	"score-sync/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "3939", cfg.Server.Port)
	assert.Equal(t, "Score Sync", cfg.Server.Title)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "lib/repository", cfg.Repository.Root)
	assert.Equal(t, "levels", cfg.Charts.Dir)
	assert.Equal(t, "levels/scp", cfg.Bundles.Dir)
	assert.Equal(t, "lib/scp", cfg.Bundles.ExtractDir)
	assert.False(t, cfg.Storage.Enabled)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("CHARTS_DIR", "/srv/charts")
	t.Setenv("STORAGE_ENABLED", "true")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "/srv/charts", cfg.Charts.Dir)
	assert.True(t, cfg.Storage.Enabled)
}
