package containers

import "strings"

const stackName = "Stack"

// Stack - A LIFO stack
type Stack[T any] struct {
	elements []T
}

// NewStack - Returns a pointer to a new Stack where the last of items is on top
func NewStack[T any](items ...T) *Stack[T] {
	s := &Stack[T]{}
	for _, item := range items {
		s.Push(item)
	}
	return s
}

// Push - Adds item on top
func (S *Stack[T]) Push(item T) {
	S.elements = append(S.elements, item)
}

// Pop - Removes and returns the top item, an error of type OutOfBounds is returned if the stack is empty
func (S *Stack[T]) Pop() (item T, err error) {
	item, err = S.Peek()
	if err != nil {
		return
	}

	S.elements = S.elements[:len(S.elements)-1]

	return
}

// Peek - Returns the top item without removing it, an error of type OutOfBounds is returned if the stack is empty
func (S *Stack[T]) Peek() (item T, err error) {
	if len(S.elements) == 0 {
		err = emptyError(stackName)
		return
	}

	item = S.elements[len(S.elements)-1]

	return
}

// Len - Returns number of items
func (S *Stack[T]) Len() int {
	return len(S.elements)
}

// IsEmpty - Returns true if there are no items
func (S *Stack[T]) IsEmpty() bool {
	return len(S.elements) == 0
}

// Values - Returns the items from top to bottom
func (S *Stack[T]) Values() []T {
	values := make([]T, len(S.elements))
	for i, item := range S.elements {
		values[len(S.elements)-1-i] = item
	}
	return values
}

// Iterator - Returns a new Iterator from top to bottom
func (S *Stack[T]) Iterator() *Iterator[T] {
	return newIterator(S.Values())
}

// String - Returns the items from top to bottom as "Stack: [3, 2, 1]"
func (S *Stack[T]) String() string {
	var sb strings.Builder
	sb.WriteString(stackName)
	sb.WriteString(": [")
	sb.WriteString(joinItems(S.Values(), ", "))
	sb.WriteString("]")
	return sb.String()
}
