package genericpool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPool(t *testing.T) {
	t.Run("Get uses the generator when the pool is empty", func(t *testing.T) {
		p := NewPool(func() []int { return make([]int, 0, 8) })

		got := p.Get()
		require.NotNil(t, got)
		require.Equal(t, 0, len(got))
		require.Equal(t, 8, cap(got))
	})

	t.Run("Put makes a value available for a later Get", func(t *testing.T) {
		p := NewPool(func() int { return -1 })

		p.Put(42)
		// sync.Pool makes no ordering guarantee across goroutines, but a
		// same-goroutine Put followed by Get reliably observes the pooled
		// value before the GC has any chance to run.
		got := p.Get()
		require.Equal(t, 42, got)
	})
}
