package containers

import (
	"fmt"

	"golang.org/x/exp/slices"
)

const queueName = "Queue"

// Queue - A FIFO queue with an optional maximum length
type Queue[T any] struct {
	data      []T
	maxLength int
}

// NewQueue - Returns a pointer to a new Queue.
//   - maxLength is the maximum number of items, 0 (zero) means unbounded
//   - items are the initial items, the first one is the first to be removed
//
// It returns:
//   - queue is a pointer to the created Queue, nil on error
//   - err is of type CapacityExceeded if there are more items than maxLength, or a standard error for a negative maxLength
func NewQueue[T any](maxLength int, items ...T) (queue *Queue[T], err error) {
	if maxLength < 0 {
		err = fmt.Errorf("max length must not be negative, got %d", maxLength)
		return
	}
	err = checkCapacity(queueName, len(items), maxLength)
	if err != nil {
		return
	}

	queue = &Queue[T]{data: slices.Clone(items), maxLength: maxLength}

	return
}

// MaxLength - Returns the maximum length, 0 (zero) if unbounded
func (Q *Queue[T]) MaxLength() int {
	return Q.maxLength
}

// Put - Adds item last in the queue, an error of type CapacityExceeded is returned if the queue is full
func (Q *Queue[T]) Put(item T) (err error) {
	err = checkCapacity(queueName, len(Q.data)+1, Q.maxLength)
	if err != nil {
		return
	}

	Q.data = append(Q.data, item)

	return
}

// Get - Returns the first item without removing it, an error of type OutOfBounds is returned if the queue is empty
func (Q *Queue[T]) Get() (item T, err error) {
	if len(Q.data) == 0 {
		err = emptyError(queueName)
		return
	}

	item = Q.data[0]

	return
}

// Remove - Removes and returns the first item, an error of type OutOfBounds is returned if the queue is empty
func (Q *Queue[T]) Remove() (item T, err error) {
	item, err = Q.Get()
	if err != nil {
		return
	}

	Q.data = slices.Delete(Q.data, 0, 1)

	return
}

// Len - Returns number of items
func (Q *Queue[T]) Len() int {
	return len(Q.data)
}

// IsEmpty - Returns true if there are no items
func (Q *Queue[T]) IsEmpty() bool {
	return len(Q.data) == 0
}

// Values - Returns a copy of the items, first to be removed first
func (Q *Queue[T]) Values() []T {
	return slices.Clone(Q.data)
}

// Iterator - Returns a new Iterator, first to be removed first
func (Q *Queue[T]) Iterator() *Iterator[T] {
	return newIterator(Q.Values())
}

// String - Returns the items as "<<1 2 3<"
func (Q *Queue[T]) String() string {
	return fmt.Sprintf("<<%s<", joinItems(Q.data, " "))
}
