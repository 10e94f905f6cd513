package tree

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"testing"
)

func newNumberedTree(from, to, step int) *BinaryTree[int] {
	b := NewBinaryTree(from)
	for i := from + step; i <= to; i += step {
		b.Insert(i)
	}
	return b
}

func TestNewBinaryTree(t *testing.T) {
	t.Run("creates single node tree", func(t *testing.T) {
		// Execute
		b := NewBinaryTree(1)

		// Check
		assert.Equal(t, 1, b.Value(), "value")
		assert.Nil(t, b.Left(), "no left subtree")
		assert.Nil(t, b.Right(), "no right subtree")
		assert.Equal(t, 1, b.CountLeaves(), "one node")
	})
}

func TestBinaryTree_Insert(t *testing.T) {
	t.Run("balances by node count", func(t *testing.T) {
		// Prepare
		b := NewBinaryTree(10)

		// Execute & Check
		b.Insert(20)
		assert.Equal(t, 2, b.CountLeaves(), "count after 20")
		assert.Equal(t, 20, b.Left().Value(), "20 goes left")

		b.Insert(30)
		assert.Equal(t, 3, b.CountLeaves(), "count after 30")
		assert.Equal(t, 30, b.Right().Value(), "30 goes right")

		b.Insert(40)
		assert.Equal(t, 2, b.Left().CountLeaves(), "left count after 40")
		assert.Equal(t, 1, b.Right().CountLeaves(), "right count after 40")
		assert.Equal(t, 40, b.Left().Left().Value(), "40 goes left left")

		b.Insert(50)
		assert.Equal(t, 3, b.Left().CountLeaves(), "left count after 50")
		assert.Equal(t, 50, b.Left().Right().Value(), "50 goes left right")

		b.Insert(60)
		assert.Equal(t, 2, b.Right().CountLeaves(), "right count after 60")
		assert.Equal(t, 60, b.Right().Left().Value(), "60 goes right left")

		b.Insert(70)
		assert.Equal(t, 7, b.CountLeaves(), "count after 70")
		assert.Equal(t, 3, b.Left().CountLeaves(), "left count after 70")
		assert.Equal(t, 3, b.Right().CountLeaves(), "right count after 70")
		assert.Equal(t, 70, b.Right().Right().Value(), "70 goes right right")
	})

	t.Run("fills next level from the left", func(t *testing.T) {
		// Prepare
		b := newNumberedTree(1, 7, 1)

		// Execute
		b.Insert(8)

		// Check
		assert.Equal(t, 8, b.Left().Left().Left().Value(), "8 goes left left left")
	})
}

func TestBinaryTree_String(t *testing.T) {
	t.Run("lists values in order", func(t *testing.T) {
		assert.Equal(t, "1", NewBinaryTree(1).String(), "single node")
		assert.Equal(t, "40 20 50 10 60 30 70", newNumberedTree(10, 70, 10).String(), "seven nodes")
		assert.Equal(t, "8 4 2 5 1 6 3 7", newNumberedTree(1, 8, 1).String(), "eight nodes")
	})
}

func TestBinaryTree_DrawHorizontal(t *testing.T) {
	t.Run("draws right subtree on top", func(t *testing.T) {
		// Prepare
		b := newNumberedTree(1, 8, 1)
		var buf bytes.Buffer

		// Execute
		err := b.DrawHorizontal(&buf)

		// Check
		assert.NoError(t, err, "draws tree")
		expected := "             7\n" +
			"       3\n" +
			"             6\n" +
			" 1\n" +
			"             5\n" +
			"       2\n" +
			"             4\n" +
			"                   8\n"
		assert.Equal(t, expected, buf.String(), "drawing")
	})
}

func TestBinaryTree_DrawVertical(t *testing.T) {
	t.Run("draws eight nodes top down", func(t *testing.T) {
		// Prepare
		b := newNumberedTree(1, 8, 1)
		var buf bytes.Buffer

		// Execute
		err := b.DrawVertical(&buf)

		// Check
		assert.NoError(t, err, "draws tree")
		expected := "          1\n" +
			"      /\n" +
			"     2\n" +
			"    /\n" +
			"   4\n" +
			"   /\n" +
			"  8\n" +
			"      \\\n" +
			"       5\n" +
			"           \\\n" +
			"            3\n" +
			"       /\n" +
			"      6\n" +
			"             \\\n" +
			"              7\n"
		assert.Equal(t, expected, buf.String(), "drawing")
	})

	t.Run("draws seven nodes top down", func(t *testing.T) {
		// Prepare
		b := newNumberedTree(10, 70, 10)
		var buf bytes.Buffer

		// Execute
		err := b.DrawVertical(&buf)

		// Check
		assert.NoError(t, err, "draws tree")
		expected := "          10\n" +
			"      /\n" +
			"     20\n" +
			"    /\n" +
			"   40\n" +
			"      \\\n" +
			"       50\n" +
			"           \\\n" +
			"            30\n" +
			"       /\n" +
			"      60\n" +
			"             \\\n" +
			"              70\n"
		assert.Equal(t, expected, buf.String(), "drawing")
	})
}

func TestIsqrt(t *testing.T) {
	for n, want := range map[int]int{0: 0, 1: 1, 3: 1, 4: 2, 8: 2, 9: 3, 15: 3, 16: 4} {
		assert.Equalf(t, want, isqrt(n), "isqrt(%d)", n)
	}
}
