package hash

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestLinearProbingHashAlgorithm_GetTableSize(t *testing.T) {
	t.Run("returns correct table size", func(t *testing.T) {
		// Prepare
		h := NewLinearProbingHashAlgorithm(10)

		// Execute
		tableSize := h.GetTableSize()

		// Check
		assert.Equal(t, int64(10), tableSize, "correct tableSize value")
	})
}

func TestLinearProbingHashAlgorithm_HashFunc1(t *testing.T) {
	t.Run("creates a valid bucket number", func(t *testing.T) {
		// Prepare
		h := NewLinearProbingHashAlgorithm(10)

		// Execute
		bucketNo := h.HashFunc1("key")

		// Check
		assert.Equal(t, int64(('k'+'e'+'y')%10), bucketNo, "create a valid bucket number")
	})
}

func TestLinearProbingHashAlgorithm_SetTableSize(t *testing.T) {
	t.Run("sets table size", func(t *testing.T) {
		// Prepare
		h := NewLinearProbingHashAlgorithm(10)

		// Execute
		h.SetTableSize(20)

		// Check
		tableSize := h.GetTableSize()
		assert.Equal(t, int64(20), tableSize, "correct tableSize value")
	})
}

func TestLinearProbingHashAlgorithm_ProbeIteration(t *testing.T) {
	t.Run("iterates through table", func(t *testing.T) {
		// Prepare
		h := NewLinearProbingHashAlgorithm(10)
		tableSize := h.GetTableSize()

		bucketNo := h.HashFunc1("key")

		visit := make([]int, tableSize)

		// Execute
		for i := int64(0); i < tableSize; i++ {
			probe := h.ProbeIteration(bucketNo, i)
			assert.GreaterOrEqualf(t, probe, int64(0), "probe not negative in iteration #%d", i)
			assert.Lessf(t, probe, tableSize, "probe less than table size in iteration #%d", i)
			visit[probe]++
		}

		// Check
		for i := int64(0); i < tableSize; i++ {
			assert.Equalf(t, 1, visit[i], "exactly one visit in bucket #%d", i)
		}
	})

	t.Run("wraps from last bucket to first", func(t *testing.T) {
		// Prepare
		h := NewLinearProbingHashAlgorithm(5)

		// Execute
		probes := []int64{h.ProbeIteration(3, 0), h.ProbeIteration(3, 1), h.ProbeIteration(3, 2), h.ProbeIteration(3, 3)}

		// Check
		assert.Equal(t, []int64{3, 4, 0, 1}, probes, "probe sequence wraps")
	})
}
