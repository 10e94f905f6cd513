package containers

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestNewDeque(t *testing.T) {
	t.Run("creates deque with initial items", func(t *testing.T) {
		// Execute
		d, err := NewDeque(5, 2, 3)

		// Check
		assert.NoError(t, err, "creates deque")
		assert.Equal(t, 2, d.Len(), "length")
		assert.Equal(t, 5, d.MaxLength(), "max length")
	})

	t.Run("rejects too many initial items", func(t *testing.T) {
		// Execute
		d, err := NewDeque(2, 1, 2, 3)

		// Check
		assert.ErrorIs(t, err, CapacityExceeded{}, "get correct error")
		assert.Nil(t, d, "no deque")
	})

	t.Run("rejects negative max length", func(t *testing.T) {
		// Execute
		_, err := NewDeque[int](-1)

		// Check
		assert.Error(t, err, "negative max length")
	})
}

func TestDeque(t *testing.T) {
	t.Run("adds and pops at both ends within max length", func(t *testing.T) {
		// Prepare
		d, err := NewDeque(5, 2, 3)
		require.NoError(t, err, "creates deque")

		// Execute
		assert.NoError(t, d.AddBack(4), "adds back")
		assert.NoError(t, d.AddFront(1), "adds front")
		head, _ := d.Head()
		tail, _ := d.Tail()
		assert.Equal(t, 1, head, "head")
		assert.Equal(t, 4, tail, "tail")
		assert.NoError(t, d.AddBack(5), "fills up")
		errBack := d.AddBack(6)
		errFront := d.AddFront(0)

		// Check
		assert.ErrorIs(t, errBack, CapacityExceeded{}, "full at back")
		assert.ErrorIs(t, errFront, CapacityExceeded{}, "full at front")
		assert.Equal(t, []int{1, 2, 3, 4, 5}, d.Values(), "values unchanged by failed adds")

		front, err := d.PopFront()
		assert.NoError(t, err, "pops front")
		assert.Equal(t, 1, front, "front item")
		back, err := d.PopBack()
		assert.NoError(t, err, "pops back")
		assert.Equal(t, 5, back, "back item")
		assert.Equal(t, []int{2, 3, 4}, d.Values(), "remaining values")
		assert.Equal(t, "[2 3 4]", d.String(), "text")
	})

	t.Run("unbounded deque takes any number of items", func(t *testing.T) {
		// Prepare
		d, err := NewDeque[int](0)
		require.NoError(t, err, "creates deque")

		// Execute
		for i := 0; i < 1000; i++ {
			require.NoError(t, d.AddBack(i), "adds back")
		}

		// Check
		assert.Equal(t, 1000, d.Len(), "length")
	})

	t.Run("throws correct error on empty deque", func(t *testing.T) {
		// Prepare
		d, err := NewDeque[int](3)
		require.NoError(t, err, "creates deque")

		// Execute
		_, errFront := d.PopFront()
		_, errBack := d.PopBack()
		_, errHead := d.Head()
		_, errTail := d.Tail()

		// Check
		assert.True(t, d.IsEmpty(), "empty")
		assert.ErrorIs(t, errFront, OutOfBounds{}, "pop front")
		assert.ErrorIs(t, errBack, OutOfBounds{}, "pop back")
		assert.ErrorIs(t, errHead, OutOfBounds{}, "head")
		assert.ErrorIs(t, errTail, OutOfBounds{}, "tail")
	})

	t.Run("initial items are copied", func(t *testing.T) {
		// Prepare
		items := []int{1, 2}
		d, err := NewDeque(0, items...)
		require.NoError(t, err, "creates deque")

		// Execute
		items[0] = 100

		// Check
		head, _ := d.Head()
		assert.Equal(t, 1, head, "head not changed through caller slice")
	})
}
