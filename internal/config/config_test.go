package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Environment)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, "*", cfg.CORSAllowedOrigin)
	assert.Equal(t, "memory", cfg.DBDriver)
	assert.Equal(t, 30, cfg.HealthIntervalSeconds)
	assert.Equal(t, 2, cfg.HealthProbeTimeoutSeconds)
	assert.Equal(t, ":8080", cfg.GetHTTPAddr())
	assert.False(t, cfg.IsProduction())
	assert.False(t, cfg.IsTesting())
}

func TestNewEnvOverrides(t *testing.T) {
	t.Setenv("CHRONLINE_ENVIRONMENT", "production")
	t.Setenv("CHRONLINE_HTTP_PORT", "9090")
	t.Setenv("CHRONLINE_DB_DRIVER", "sqlite")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, EnvProduction, cfg.Environment)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, ":9090", cfg.GetHTTPAddr())
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "./data/chronline.db", cfg.SQLitePath, "sqlite driver should get a default path")
}

func TestResolveDefaults(t *testing.T) {
	t.Run("sqlite keeps explicit path", func(t *testing.T) {
		cfg := &Config{DBDriver: "sqlite", SQLitePath: "/tmp/custom.db"}
		require.NoError(t, cfg.ResolveDefaults())
		assert.Equal(t, "/tmp/custom.db", cfg.SQLitePath)
	})

	t.Run("postgres requires dsn", func(t *testing.T) {
		cfg := &Config{DBDriver: "postgres"}
		err := cfg.ResolveDefaults()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "POSTGRES_DSN")
	})

	t.Run("unknown driver rejected", func(t *testing.T) {
		cfg := &Config{DBDriver: "spanner"}
		err := cfg.ResolveDefaults()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported DB_DRIVER")
	})
}
