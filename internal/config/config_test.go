package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "localhost", cfg.Postgres.Host)
	assert.Equal(t, 5432, cfg.Postgres.Port)
	assert.Equal(t, "disable", cfg.Postgres.SSLMode)
	assert.Equal(t, "localhost:8080", cfg.Docs.Host)
	assert.Empty(t, cfg.Redis.Host)
	assert.Empty(t, cfg.Redis.Addr(), "redis must stay disabled without a host")
}

func TestLoadEnvOverrides(t *testing.T) {
	viper.Reset()
	t.Setenv("SENSORHUB_SERVER__PORT", "9999")
	t.Setenv("SENSORHUB_POSTGRES__HOST", "db.internal")
	t.Setenv("SENSORHUB_REDIS__HOST", "cache.internal")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Postgres.Host)
	assert.Equal(t, "cache.internal:6379", cfg.Redis.Addr())
}
