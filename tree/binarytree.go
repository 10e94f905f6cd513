package tree

import (
	"fmt"
	"io"
	"strings"
)

// BinaryTree - A binary tree node that keeps itself balanced by node count on insertion
type BinaryTree[T any] struct {
	value       T
	left, right *BinaryTree[T]
}

// NewBinaryTree - Returns a pointer to a new single node BinaryTree
func NewBinaryTree[T any](value T) *BinaryTree[T] {
	return &BinaryTree[T]{value: value}
}

// Value - Returns the value of the node
func (B *BinaryTree[T]) Value() T {
	return B.value
}

// Left - Returns the left subtree, nil if there is none
func (B *BinaryTree[T]) Left() *BinaryTree[T] {
	return B.left
}

// Right - Returns the right subtree, nil if there is none
func (B *BinaryTree[T]) Right() *BinaryTree[T] {
	return B.right
}

// Insert - Adds value as a new node. A free left slot is taken first, then a free right slot. With both
// taken the value goes into the left subtree if both subtrees hold equally many nodes below their roots
// or that number is odd for the left one, otherwise into the right subtree.
func (B *BinaryTree[T]) Insert(value T) {
	switch {
	case B.left == nil:
		B.left = NewBinaryTree(value)
	case B.right == nil:
		B.right = NewBinaryTree(value)
	default:
		left := B.left.CountLeaves() - 1
		right := B.right.CountLeaves() - 1
		if left == right || left%2 == 1 {
			B.left.Insert(value)
		} else {
			B.right.Insert(value)
		}
	}
}

// CountLeaves - Returns the number of nodes in the tree, the root included
func (B *BinaryTree[T]) CountLeaves() int {
	count := 1
	if B.left != nil {
		count += B.left.CountLeaves()
	}
	if B.right != nil {
		count += B.right.CountLeaves()
	}
	return count
}

// String - Returns the values in order, left subtree first, separated by space
func (B *BinaryTree[T]) String() string {
	var sb strings.Builder
	if B.left != nil {
		sb.WriteString(B.left.String())
		sb.WriteString(" ")
	}
	sb.WriteString(fmt.Sprint(B.value))
	if B.right != nil {
		sb.WriteString(" ")
		sb.WriteString(B.right.String())
	}
	return sb.String()
}

// DrawHorizontal - Writes the tree to w lying down with the root to the left and the right subtree on top.
// Each level is indented another six spaces.
func (B *BinaryTree[T]) DrawHorizontal(w io.Writer) (err error) {
	return B.drawHorizontal(w, 0)
}

func (B *BinaryTree[T]) drawHorizontal(w io.Writer, level int) (err error) {
	if B.right != nil {
		if err = B.right.drawHorizontal(w, level+1); err != nil {
			return
		}
	}

	if _, err = fmt.Fprintln(w, strings.Repeat(" ", 6*level), B.value); err != nil {
		return
	}

	if B.left != nil {
		err = B.left.drawHorizontal(w, level+1)
	}

	return
}

// DrawVertical - Writes the tree to w top down, one node per line, with a "/" or "\" line above every
// child. The root indent is the square of the integer square root of the node count plus one, left
// children halve it and right children add two. A node whose indent has been halved down to zero starts
// over from its own node count.
func (B *BinaryTree[T]) DrawVertical(w io.Writer) (err error) {
	return B.drawVertical(w, 0, "")
}

func (B *BinaryTree[T]) drawVertical(w io.Writer, indent int, branch string) (err error) {
	if indent == 0 {
		root := isqrt(B.CountLeaves()) + 1
		indent = root * root
	}

	switch branch {
	case "/":
		_, err = fmt.Fprintln(w, spaces(indent+1), branch)
	case `\`:
		_, err = fmt.Fprintln(w, spaces(indent-1), branch)
	}
	if err != nil {
		return
	}

	if _, err = fmt.Fprintln(w, spaces(indent), B.value); err != nil {
		return
	}

	if B.left != nil {
		if err = B.left.drawVertical(w, indent/2, "/"); err != nil {
			return
		}
	}
	if B.right != nil {
		err = B.right.drawVertical(w, indent+2, `\`)
	}

	return
}

// spaces - Returns n spaces, none for n below 1
func spaces(n int) string {
	if n < 1 {
		return ""
	}
	return strings.Repeat(" ", n)
}

// isqrt - Returns the largest integer whose square is at most n
func isqrt(n int) int {
	r := 0
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}
