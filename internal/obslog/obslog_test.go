package obslog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want Level
		ok   bool
	}{
		{"debug", LevelDebug, true},
		{"info", LevelInfo, true},
		{"warn", LevelWarn, true},
		{"error", LevelError, true},
		{"silent", LevelSilent, true},
		{"bogus", 0, false},
	}

	for _, tc := range cases {
		got, ok := ParseLevel(tc.in)
		require.Equal(t, tc.ok, ok, tc.in)
		if tc.ok {
			require.Equal(t, tc.want, got, tc.in)
		}
	}
}

func TestLogger(t *testing.T) {
	t.Run("New builds a logger that does not panic on any level method", func(t *testing.T) {
		log := New(LevelDebug)
		defer log.Close()

		require.NotPanics(t, func() {
			log.Debug("debug message", String("k", "v"))
			log.Info("info message", Int("n", 1))
			log.Warn("warn message", Bool("b", true))
			log.Error("error message", Error(assert.AnError))
		})
	})

	t.Run("SetLevel and GetLevel round-trip", func(t *testing.T) {
		log := New(LevelInfo)
		defer log.Close()

		log.SetLevel(LevelWarn)
		require.Equal(t, LevelWarn, log.GetLevel())
	})

	t.Run("With returns a logger carrying the extra fields", func(t *testing.T) {
		log := New(LevelDebug)
		defer log.Close()

		derived := log.With(String("component", "test"))
		require.NotNil(t, derived)
	})
}
