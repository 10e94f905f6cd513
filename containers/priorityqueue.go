package containers

import (
	"fmt"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

const priorityQueueName = "PriorityQueue"

// PriorityQueue - A queue that hands out its smallest item first, or its largest if reversed.
// Items are kept in insertion order, the priority item is searched for on every Get and Remove.
type PriorityQueue[T constraints.Ordered] struct {
	data      []T
	maxLength int
	reverse   bool
}

// NewPriorityQueue - Returns a pointer to a new PriorityQueue.
//   - maxLength is the maximum number of items, 0 (zero) means unbounded
//   - reverse set to true hands out the largest item first
//   - items are the initial items
//
// It returns:
//   - priorityQueue is a pointer to the created PriorityQueue, nil on error
//   - err is of type CapacityExceeded if there are more items than maxLength, or a standard error for a negative maxLength
func NewPriorityQueue[T constraints.Ordered](maxLength int, reverse bool, items ...T) (priorityQueue *PriorityQueue[T], err error) {
	if maxLength < 0 {
		err = fmt.Errorf("max length must not be negative, got %d", maxLength)
		return
	}
	err = checkCapacity(priorityQueueName, len(items), maxLength)
	if err != nil {
		return
	}

	priorityQueue = &PriorityQueue[T]{data: slices.Clone(items), maxLength: maxLength, reverse: reverse}

	return
}

// MaxLength - Returns the maximum length, 0 (zero) if unbounded
func (P *PriorityQueue[T]) MaxLength() int {
	return P.maxLength
}

// Put - Adds item, an error of type CapacityExceeded is returned if the queue is full
func (P *PriorityQueue[T]) Put(item T) (err error) {
	err = checkCapacity(priorityQueueName, len(P.data)+1, P.maxLength)
	if err != nil {
		return
	}

	P.data = append(P.data, item)

	return
}

// Get - Returns the priority item without removing it, an error of type OutOfBounds is returned if the queue is empty
func (P *PriorityQueue[T]) Get() (item T, err error) {
	i, err := P.priorityIndex()
	if err != nil {
		return
	}

	item = P.data[i]

	return
}

// Remove - Removes and returns the priority item. Among equal items the earliest inserted is removed.
// An error of type OutOfBounds is returned if the queue is empty.
func (P *PriorityQueue[T]) Remove() (item T, err error) {
	i, err := P.priorityIndex()
	if err != nil {
		return
	}

	item = P.data[i]
	P.data = slices.Delete(P.data, i, i+1)

	return
}

// Len - Returns number of items
func (P *PriorityQueue[T]) Len() int {
	return len(P.data)
}

// IsEmpty - Returns true if there are no items
func (P *PriorityQueue[T]) IsEmpty() bool {
	return len(P.data) == 0
}

// Values - Returns a copy of the items in insertion order
func (P *PriorityQueue[T]) Values() []T {
	return slices.Clone(P.data)
}

// Iterator - Returns a new Iterator in insertion order
func (P *PriorityQueue[T]) Iterator() *Iterator[T] {
	return newIterator(P.Values())
}

// String - Returns the items in insertion order as "<<9 1 5<"
func (P *PriorityQueue[T]) String() string {
	return fmt.Sprintf("<<%s<", joinItems(P.data, " "))
}

// priorityIndex - Returns the index of the first smallest, or largest if reversed, item
func (P *PriorityQueue[T]) priorityIndex() (index int, err error) {
	if len(P.data) == 0 {
		err = emptyError(priorityQueueName)
		return
	}

	for i := 1; i < len(P.data); i++ {
		if P.reverse && P.data[i] > P.data[index] || !P.reverse && P.data[i] < P.data[index] {
			index = i
		}
	}

	return
}
