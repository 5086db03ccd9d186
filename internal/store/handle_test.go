package store

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHandle(t *testing.T) {
	t.Run("MakeHandle", func(t *testing.T) {
		t.Run("points at the record's own fields for an admitted sub-type", func(t *testing.T) {
			e := BuildExtractor[testRecord]()
			rec := NewRecord(testRecord{Position: position{X: 1, Y: 2}}, e)
			defer rec.Release()

			h, ok := MakeHandle[position](rec)
			require.True(t, ok)
			require.True(t, h.Valid())
			require.Equal(t, float64(1), h.Get().X)
			require.Equal(t, float64(2), h.Get().Y)
			h.Release()
		})

		t.Run("fails for a sub-type the record does not admit", func(t *testing.T) {
			e := BuildExtractor[testRecord]()
			rec := NewRecord(testRecord{}, e)
			defer rec.Release()

			h, ok := MakeHandle[inner](rec)
			require.False(t, ok)
			require.False(t, h.Valid())
		})

		t.Run("increments the record's refcount", func(t *testing.T) {
			e := BuildExtractor[testRecord]()
			rec := NewRecord(testRecord{}, e)
			defer rec.Release()

			require.EqualValues(t, 1, rec.RefCount())
			h, ok := MakeHandle[testRecord](rec)
			require.True(t, ok)
			require.EqualValues(t, 2, rec.RefCount())
			h.Release()
			require.EqualValues(t, 1, rec.RefCount())
		})
	})

	t.Run("ReExtract", func(t *testing.T) {
		t.Run("re-extracts a sibling sub-type sharing the same record", func(t *testing.T) {
			e := BuildExtractor[testRecord]()
			rec := NewRecord(testRecord{Velocity: velocity{DX: 3, DY: 4}}, e)
			defer rec.Release()

			posHandle, ok := MakeHandle[position](rec)
			require.True(t, ok)
			defer posHandle.Release()

			velHandle, ok := ReExtract[velocity](posHandle)
			require.True(t, ok)
			defer velHandle.Release()

			require.Equal(t, float64(3), velHandle.Get().DX)
		})

		t.Run("fails on the zero Handle", func(t *testing.T) {
			var zero Handle[position]
			_, ok := ReExtract[velocity](zero)
			require.False(t, ok)
		})
	})

	t.Run("Clone", func(t *testing.T) {
		t.Run("shares the target pointer and adds a holding", func(t *testing.T) {
			e := BuildExtractor[testRecord]()
			rec := NewRecord(testRecord{}, e)
			defer rec.Release()

			h, ok := MakeHandle[testRecord](rec)
			require.True(t, ok)

			cloned := h.Clone()
			require.Equal(t, h.Get(), cloned.Get())
			require.EqualValues(t, 3, rec.RefCount())

			h.Release()
			cloned.Release()
		})
	})
}
