package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "test-token")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "test-token", cfg.DiscordToken)
	require.Equal(t, "!au", cfg.CommandPrefix)
	require.Equal(t, 6, cfg.CodeLength)
	require.Equal(t, 10, cfg.MaxCodeAttempts)
	require.Equal(t, "file", cfg.StoreBackend)
	require.Equal(t, "state.json", cfg.StatePath)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "test-token")
	t.Setenv("COMMAND_PREFIX", "!lobby")
	t.Setenv("CODE_LENGTH", "4")
	t.Setenv("MAX_CODE_ATTEMPTS", "25")
	t.Setenv("STORE_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "redis:6379")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "!lobby", cfg.CommandPrefix)
	require.Equal(t, 4, cfg.CodeLength)
	require.Equal(t, 25, cfg.MaxCodeAttempts)
	require.Equal(t, "redis", cfg.StoreBackend)
	require.Equal(t, "redis:6379", cfg.RedisAddr)
}
