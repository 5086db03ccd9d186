package parallelquery

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollect(t *testing.T) {
	t.Run("applies fn to every item and preserves input order", func(t *testing.T) {
		items := []int{1, 2, 3, 4, 5}

		out := Collect(items, 2, func(v int) int { return v * v })

		require.Equal(t, []int{1, 4, 9, 16, 25}, out)
	})

	t.Run("workers <= 0 means unbounded concurrency, not zero", func(t *testing.T) {
		items := []int{1, 2, 3}

		out := Collect(items, 0, func(v int) int { return v + 1 })

		require.Equal(t, []int{2, 3, 4}, out)
	})

	t.Run("empty input returns an empty, non-nil-length-zero slice", func(t *testing.T) {
		out := Collect([]int{}, 4, func(v int) int { return v })
		require.Len(t, out, 0)
	})
}
