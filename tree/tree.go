package tree

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Tree - A node of a general tree with any number of ordered children
type Tree[T any] struct {
	data     T
	children []*Tree[T]
}

// NewTree - Returns a pointer to a new Tree without children
func NewTree[T any](data T) *Tree[T] {
	return &Tree[T]{data: data}
}

// Data - Returns the data of the node
func (N *Tree[T]) Data() T {
	return N.data
}

// Children - Returns the children in the order they were added
func (N *Tree[T]) Children() []*Tree[T] {
	return N.children
}

// AddChild - Appends child as the last child, a nil child is rejected with an error
func (N *Tree[T]) AddChild(child *Tree[T]) (err error) {
	if child == nil {
		err = errors.Errorf("tree %v: can not add nil as a child", N.data)
		return
	}

	N.children = append(N.children, child)

	return
}

// String - Returns the node and its children, as "Joe [Jan +2 children, Sam]" where a child having children
// of its own shows how many
func (N *Tree[T]) String() string {
	parts := make([]string, len(N.children))
	for i, child := range N.children {
		parts[i] = fmt.Sprint(child.data)
		if len(child.children) > 0 {
			parts[i] += fmt.Sprintf(" +%d children", len(child.children))
		}
	}

	return fmt.Sprintf("%v [%s]", N.data, strings.Join(parts, ", "))
}

// Draw - Writes the tree to w, one node per line, with box drawing branches
//
//	Root
//	  ├-Child 1
//	  │ └-Child 1.1
//	  └-Child 2
func (N *Tree[T]) Draw(w io.Writer) (err error) {
	if _, err = fmt.Fprintf(w, "%v\n", N.data); err != nil {
		return
	}

	return N.drawChildren(w, "", true)
}

// drawChildren - Writes the children of a node whose own line had prefix, last tells if that node was the last child
func (N *Tree[T]) drawChildren(w io.Writer, prefix string, last bool) (err error) {
	if last {
		prefix += "  "
	} else {
		prefix += "│ "
	}

	for i, child := range N.children {
		childLast := i == len(N.children)-1
		branch := "├-"
		if childLast {
			branch = "└-"
		}

		if _, err = fmt.Fprintf(w, "%s%s%v\n", prefix, branch, child.data); err != nil {
			return
		}
		if err = child.drawChildren(w, prefix, childLast); err != nil {
			return
		}
	}

	return
}
