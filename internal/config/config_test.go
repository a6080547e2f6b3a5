package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/locker-service/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "locker-booking-service", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.Equal(t, 30*time.Second, cfg.App.RequestTimeout())
	assert.Equal(t, int32(10), cfg.Postgres.MaxConns)
	assert.True(t, cfg.Postgres.RunMigrations)
	assert.Equal(t, "127.0.0.1:6379", cfg.Redis.Addr)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, time.Hour, cfg.Auth.AccessTokenTTL())
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("POSTGRES_DSN", "postgres://locker:secret@db:5432/lockers")
	t.Setenv("POSTGRES_RUN_MIGRATIONS", "false")
	t.Setenv("AUTH_JWT_SECRET", "override-secret")
	t.Setenv("AUTH_ACCESS_TOKEN_TTL_SECONDS", "120")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.App.Addr())
	assert.Equal(t, "postgres://locker:secret@db:5432/lockers", cfg.Postgres.DSN)
	assert.False(t, cfg.Postgres.RunMigrations)
	assert.Equal(t, "override-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, 2*time.Minute, cfg.Auth.AccessTokenTTL())
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestLoadRejectsInvalidRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestAccessTokenTTLFallsBackToOneHour(t *testing.T) {
	auth := config.AuthConfig{AccessTokenTTLSeconds: 0}
	assert.Equal(t, time.Hour, auth.AccessTokenTTL())

	auth.AccessTokenTTLSeconds = -5
	assert.Equal(t, time.Hour, auth.AccessTokenTTL())
}

func TestRequestTimeoutDisabledWhenNonPositive(t *testing.T) {
	app := config.AppConfig{RequestTimeoutSeconds: 0}
	assert.Equal(t, time.Duration(0), app.RequestTimeout())
}
