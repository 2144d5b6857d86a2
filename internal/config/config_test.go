package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "erp-backend", cfg.App.Name)
	assert.Equal(t, "/api/v1", cfg.App.APIPrefix)
	assert.Equal(t, 30, cfg.App.RequestTimeoutSeconds)
	assert.Equal(t, 30, cfg.App.DashboardCacheSeconds)
	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.True(t, cfg.Postgres.RunMigrations)
	assert.Equal(t, int32(10), cfg.Postgres.MaxConns)
	assert.Equal(t, "127.0.0.1:6379", cfg.Redis.Addr)
	assert.Equal(t, 30, cfg.Auth.AccessTokenTTLMinutes)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_HOST", "localhost")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("API_PREFIX", "/api/v2")
	t.Setenv("POSTGRES_RUN_MIGRATIONS", "false")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("AUTH_ACCESS_TOKEN_TTL_MINUTES", "120")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost:9090", cfg.App.Addr())
	assert.Equal(t, "/api/v2", cfg.App.APIPrefix)
	assert.False(t, cfg.Postgres.RunMigrations)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, 120, cfg.Auth.AccessTokenTTLMinutes)
}

func TestLoadRejectsBadRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadIgnoresMalformedNumericEnv(t *testing.T) {
	t.Setenv("HTTP_REQUEST_TIMEOUT_SECONDS", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.App.RequestTimeoutSeconds)
}

func TestDurationHelpers(t *testing.T) {
	app := AppConfig{RequestTimeoutSeconds: 15, DashboardCacheSeconds: 60}
	assert.Equal(t, 15*time.Second, app.RequestTimeout())
	assert.Equal(t, time.Minute, app.DashboardCacheTTL())

	disabled := AppConfig{}
	assert.Equal(t, time.Duration(0), disabled.RequestTimeout())
	assert.Equal(t, time.Duration(0), disabled.DashboardCacheTTL())
}
