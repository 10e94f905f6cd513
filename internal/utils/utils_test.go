package utils

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestReachesLoadFactor(t *testing.T) {
	t.Run("threshold is three quarters of table size", func(t *testing.T) {
		assert.False(t, ReachesLoadFactor(3, 5), "3 of 5 is below 3.75")
		assert.True(t, ReachesLoadFactor(4, 5), "4 of 5 reaches 3.75")
		assert.False(t, ReachesLoadFactor(7, 10), "7 of 10 is below 7.5")
		assert.True(t, ReachesLoadFactor(8, 10), "8 of 10 reaches 7.5")
		assert.True(t, ReachesLoadFactor(15, 20), "15 of 20 is exactly 15")
	})
}

func TestLoadFactor(t *testing.T) {
	t.Run("calculates fraction", func(t *testing.T) {
		assert.InDelta(t, 0.5, LoadFactor(5, 10), 1e-9)
		assert.Equal(t, float64(0), LoadFactor(5, 0), "no division by zero")
	})
}

func TestGrownSize(t *testing.T) {
	t.Run("doubles table size", func(t *testing.T) {
		assert.Equal(t, int64(10), GrownSize(5))
		assert.Equal(t, int64(20), GrownSize(GrownSize(5)))
	})
}

func TestDiscardLogger(t *testing.T) {
	t.Run("returns usable entry", func(t *testing.T) {
		// Execute
		entry := DiscardLogger()

		// Check
		assert.NotNil(t, entry)
		assert.NotPanics(t, func() { entry.WithField("k", "v").Debug("discarded") })
	})
}
