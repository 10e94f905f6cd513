package containers

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Iterator - Is used to iterate over the items of a container one by one. It works on the items present
// when it was created, and once exhausted it stays exhausted.
type Iterator[T any] struct {
	items []T
	pos   int
}

// newIterator - Returns a pointer to a new Iterator struct
func newIterator[T any](items []T) *Iterator[T] {
	return &Iterator[T]{items: items}
}

// HasNext - Returns true if there are more items to be fetched from a call to Next.
func (I *Iterator[T]) HasNext() bool {
	return I.pos < len(I.items)
}

// Next - Returns the next item, or an error of type OutOfBounds if there are no more items.
func (I *Iterator[T]) Next() (item T, err error) {
	if !I.HasNext() {
		err = OutOfBounds{msg: "iterator exhausted"}
		return
	}

	item = I.items[I.pos]
	I.pos++

	return
}

// checkCapacity - Returns CapacityExceeded if length is more than maxLength, a maxLength of 0 (zero) means unbounded
func checkCapacity(container string, length, maxLength int) error {
	if maxLength > 0 && length > maxLength {
		return errors.WithMessagef(CapacityExceeded{}, "%s: length %d above max length %d", container, length, maxLength)
	}
	return nil
}

// checkIndex - Returns OutOfBounds if index is outside 0 -> length - 1
func checkIndex(container string, index, length int) error {
	if index < 0 || index >= length {
		return errors.WithMessagef(OutOfBounds{}, "%s: index %d with length %d", container, index, length)
	}
	return nil
}

// emptyError - Returns OutOfBounds telling that container is empty
func emptyError(container string) error {
	return errors.WithMessagef(OutOfBounds{}, "%s: is empty", container)
}

// joinItems - Returns items in text form joined by sep
func joinItems[T any](items []T, sep string) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = fmt.Sprint(item)
	}
	return strings.Join(parts, sep)
}
