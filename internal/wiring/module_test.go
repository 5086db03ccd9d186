package wiring

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kestrelgame/entitycore/internal/config"
)

func TestResolveConfig(t *testing.T) {
	t.Run("falls back to DefaultWorldConfig for the zero value", func(t *testing.T) {
		resolved := ResolveConfig(config.WorldConfig{})
		require.Equal(t, config.DefaultWorldConfig(), resolved)
	})

	t.Run("passes a non-zero config through unchanged", func(t *testing.T) {
		cfg := config.WorldConfig{ArchetypeShards: 4, WorkerCount: 2, LogLevel: "warn"}
		resolved := ResolveConfig(cfg)
		require.Equal(t, cfg, resolved)
	})
}
