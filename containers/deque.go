package containers

import (
	"fmt"

	"golang.org/x/exp/slices"
)

const dequeName = "Deque"

// Deque - A double-ended queue with an optional maximum length
type Deque[T any] struct {
	data      []T
	maxLength int
}

// NewDeque - Returns a pointer to a new Deque.
//   - maxLength is the maximum number of items, 0 (zero) means unbounded
//   - items are the initial items from head to tail
//
// It returns:
//   - deque is a pointer to the created Deque, nil on error
//   - err is of type CapacityExceeded if there are more items than maxLength, or a standard error for a negative maxLength
func NewDeque[T any](maxLength int, items ...T) (deque *Deque[T], err error) {
	if maxLength < 0 {
		err = fmt.Errorf("max length must not be negative, got %d", maxLength)
		return
	}
	err = checkCapacity(dequeName, len(items), maxLength)
	if err != nil {
		return
	}

	deque = &Deque[T]{data: slices.Clone(items), maxLength: maxLength}

	return
}

// MaxLength - Returns the maximum length, 0 (zero) if unbounded
func (D *Deque[T]) MaxLength() int {
	return D.maxLength
}

// AddFront - Adds item as new head, an error of type CapacityExceeded is returned if the deque is full
func (D *Deque[T]) AddFront(item T) (err error) {
	err = checkCapacity(dequeName, len(D.data)+1, D.maxLength)
	if err != nil {
		return
	}

	D.data = slices.Insert(D.data, 0, item)

	return
}

// AddBack - Adds item as new tail, an error of type CapacityExceeded is returned if the deque is full
func (D *Deque[T]) AddBack(item T) (err error) {
	err = checkCapacity(dequeName, len(D.data)+1, D.maxLength)
	if err != nil {
		return
	}

	D.data = append(D.data, item)

	return
}

// PopFront - Removes and returns the head, an error of type OutOfBounds is returned if the deque is empty
func (D *Deque[T]) PopFront() (item T, err error) {
	item, err = D.Head()
	if err != nil {
		return
	}

	D.data = slices.Delete(D.data, 0, 1)

	return
}

// PopBack - Removes and returns the tail, an error of type OutOfBounds is returned if the deque is empty
func (D *Deque[T]) PopBack() (item T, err error) {
	item, err = D.Tail()
	if err != nil {
		return
	}

	D.data = D.data[:len(D.data)-1]

	return
}

// Head - Returns the first item, an error of type OutOfBounds is returned if the deque is empty
func (D *Deque[T]) Head() (item T, err error) {
	if len(D.data) == 0 {
		err = emptyError(dequeName)
		return
	}

	item = D.data[0]

	return
}

// Tail - Returns the last item, an error of type OutOfBounds is returned if the deque is empty
func (D *Deque[T]) Tail() (item T, err error) {
	if len(D.data) == 0 {
		err = emptyError(dequeName)
		return
	}

	item = D.data[len(D.data)-1]

	return
}

// Len - Returns number of items
func (D *Deque[T]) Len() int {
	return len(D.data)
}

// IsEmpty - Returns true if there are no items
func (D *Deque[T]) IsEmpty() bool {
	return len(D.data) == 0
}

// Values - Returns a copy of the items from head to tail
func (D *Deque[T]) Values() []T {
	return slices.Clone(D.data)
}

// Iterator - Returns a new Iterator from head to tail
func (D *Deque[T]) Iterator() *Iterator[T] {
	return newIterator(D.Values())
}

// String - Returns the items as "[1 2 3]"
func (D *Deque[T]) String() string {
	return fmt.Sprintf("[%s]", joinItems(D.data, " "))
}
