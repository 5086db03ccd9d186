package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultWorldConfig(t *testing.T) {
	cfg := DefaultWorldConfig()

	require.Equal(t, 16, cfg.ArchetypeShards)
	require.Equal(t, 8, cfg.WorkerCount)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
}

func TestLoadJSON(t *testing.T) {
	t.Run("decodes a partial document over the defaults", func(t *testing.T) {
		cfg, err := LoadJSON(strings.NewReader(`{"worker_count": 32}`))
		require.NoError(t, err)

		require.Equal(t, 32, cfg.WorkerCount)
		require.Equal(t, DefaultWorldConfig().ArchetypeShards, cfg.ArchetypeShards)
	})

	t.Run("wraps malformed input in ErrInvalidConfig", func(t *testing.T) {
		_, err := LoadJSON(strings.NewReader(`not json`))
		require.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestLoadYAML(t *testing.T) {
	t.Run("decodes a partial document over the defaults", func(t *testing.T) {
		cfg, err := LoadYAML(strings.NewReader("log_level: debug\n"))
		require.NoError(t, err)

		require.Equal(t, "debug", cfg.LogLevel)
		require.Equal(t, DefaultWorldConfig().WorkerCount, cfg.WorkerCount)
	})

	t.Run("wraps malformed input in ErrInvalidConfig", func(t *testing.T) {
		_, err := LoadYAML(strings.NewReader("not: [valid: yaml"))
		require.ErrorIs(t, err, ErrInvalidConfig)
	})
}
