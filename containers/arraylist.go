package containers

import (
	"fmt"

	"golang.org/x/exp/slices"
)

const arrayListName = "ArrayList"

// ArrayList - A list backed by a slice
type ArrayList[T any] struct {
	data []T
}

// NewArrayList - Returns a pointer to a new ArrayList holding items in given order
func NewArrayList[T any](items ...T) *ArrayList[T] {
	return &ArrayList[T]{data: slices.Clone(items)}
}

// Insert - Inserts item so that it ends up at index, moving later items one step back.
//   - item is the item to insert
//   - index is the position, 0 -> Len() where Len() appends
//
// It returns:
//   - err is of type OutOfBounds if index is outside 0 -> Len()
func (A *ArrayList[T]) Insert(item T, index int) (err error) {
	err = checkIndex(arrayListName, index, len(A.data)+1)
	if err != nil {
		return
	}

	A.data = slices.Insert(A.data, index, item)

	return
}

// AddFront - Adds item as new head
func (A *ArrayList[T]) AddFront(item T) {
	A.data = slices.Insert(A.data, 0, item)
}

// AddBack - Adds item as new tail
func (A *ArrayList[T]) AddBack(item T) {
	A.data = append(A.data, item)
}

// Pop - Removes and returns the tail, an error of type OutOfBounds is returned if the list is empty
func (A *ArrayList[T]) Pop() (item T, err error) {
	if len(A.data) == 0 {
		err = emptyError(arrayListName)
		return
	}

	return A.PopAt(len(A.data) - 1)
}

// PopAt - Removes and returns the item at pos.
//   - pos is the position, 0 -> Len() - 1
//
// It returns:
//   - item is the removed item
//   - err is of type OutOfBounds if pos is outside the list
func (A *ArrayList[T]) PopAt(pos int) (item T, err error) {
	err = checkIndex(arrayListName, pos, len(A.data))
	if err != nil {
		return
	}

	item = A.data[pos]
	A.data = slices.Delete(A.data, pos, pos+1)

	return
}

// Head - Returns the first item, an error of type OutOfBounds is returned if the list is empty
func (A *ArrayList[T]) Head() (item T, err error) {
	if len(A.data) == 0 {
		err = emptyError(arrayListName)
		return
	}

	item = A.data[0]

	return
}

// Tail - Returns the last item, an error of type OutOfBounds is returned if the list is empty
func (A *ArrayList[T]) Tail() (item T, err error) {
	if len(A.data) == 0 {
		err = emptyError(arrayListName)
		return
	}

	item = A.data[len(A.data)-1]

	return
}

// Len - Returns number of items
func (A *ArrayList[T]) Len() int {
	return len(A.data)
}

// IsEmpty - Returns true if there are no items
func (A *ArrayList[T]) IsEmpty() bool {
	return len(A.data) == 0
}

// Values - Returns a copy of the items from head to tail
func (A *ArrayList[T]) Values() []T {
	return slices.Clone(A.data)
}

// Iterator - Returns a new Iterator from head to tail
func (A *ArrayList[T]) Iterator() *Iterator[T] {
	return newIterator(A.Values())
}

// String - Returns the items as "[1 2 3]"
func (A *ArrayList[T]) String() string {
	return fmt.Sprintf("[%s]", joinItems(A.data, " "))
}
