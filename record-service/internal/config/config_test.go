package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	req := require.New(t)
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	req.NoError(err)
	req.Equal("3000", cfg.Port)
	req.Equal("info", cfg.LogLevel)
	req.Equal(24*time.Hour, cfg.TokenTTL)
	req.Equal("bcrypt", cfg.PasswordHashing)
	req.Equal("record.events", cfg.EventStream)
	req.Empty(cfg.RedisAddr)
	req.False(cfg.SeedDemoData)
}

func TestLoad_Overrides(t *testing.T) {
	req := require.New(t)
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "8080")
	t.Setenv("TOKEN_TTL", "15m")
	t.Setenv("PASSWORD_HASHING", "plain")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("SEED_DEMO_DATA", "true")

	cfg, err := Load()
	req.NoError(err)
	req.Equal("8080", cfg.Port)
	req.Equal(15*time.Minute, cfg.TokenTTL)
	req.Equal("plain", cfg.PasswordHashing)
	req.Equal("localhost:6379", cfg.RedisAddr)
	req.True(cfg.SeedDemoData)
}

func TestLoad_WithoutJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Empty(t, cfg.JWTSecret)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("unknown hashing scheme", func(t *testing.T) {
		t.Setenv("PASSWORD_HASHING", "md5")
		_, err := Load()
		require.Error(t, err)
	})
}
