package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "record.events", cfg.EventStream)
	require.Equal(t, "audit-service-group", cfg.ConsumerGroup)
	require.Equal(t, "audit-consumer-1", cfg.ConsumerName)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_RequiresRedis(t *testing.T) {
	t.Setenv("REDIS_ADDR", "")

	_, err := Load()
	require.Error(t, err)
}
