package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "wp_", cfg.Database.TablePrefix)
	assert.Equal(t, "memory", cfg.Cache.Driver)
	assert.Equal(t, 300, cfg.Cache.TTLSeconds)
	assert.Equal(t, "overview", cfg.Dashboard.DefaultFeature)
	assert.Equal(t, 10, cfg.Dashboard.InitTimeoutSeconds)
	assert.False(t, cfg.Dashboard.Debug)
	assert.Empty(t, cfg.Dashboard.DisabledFeatures)
	assert.Equal(t, 86400, cfg.Auth.NonceLifetimeSeconds)
	assert.Empty(t, cfg.Auth.BootstrapSecret)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	dir := t.TempDir()
	env := "DASHBOARD_DEFAULT_FEATURE=profile\nDASHBOARD_DEBUG=true\nCACHE_DRIVER=none\nDASHBOARD_DISABLED_FEATURES=equipment,workouts\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600))
	t.Cleanup(func() {
		for _, k := range []string{"DASHBOARD_DEFAULT_FEATURE", "DASHBOARD_DEBUG", "CACHE_DRIVER", "DASHBOARD_DISABLED_FEATURES"} {
			os.Unsetenv(k)
		}
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "profile", cfg.Dashboard.DefaultFeature)
	assert.True(t, cfg.Dashboard.Debug)
	assert.Equal(t, "none", cfg.Cache.Driver)
	assert.Equal(t, []string{"equipment", "workouts"}, cfg.Dashboard.DisabledFeatures)
}
