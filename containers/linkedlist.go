package containers

import "fmt"

const linkedListName = "LinkedList"

type node[T any] struct {
	value      T
	prev, next *node[T]
}

// LinkedList - A doubly linked list
type LinkedList[T any] struct {
	head, tail *node[T]
	length     int
}

// NewLinkedList - Returns a pointer to a new LinkedList holding items in given order
func NewLinkedList[T any](items ...T) *LinkedList[T] {
	l := &LinkedList[T]{}
	for _, item := range items {
		l.AddBack(item)
	}
	return l
}

// Insert - Inserts item so that it ends up at index, moving later items one step back.
//   - item is the item to insert
//   - index is the position, 0 -> Len() where Len() appends
//
// It returns:
//   - err is of type OutOfBounds if index is outside 0 -> Len()
func (L *LinkedList[T]) Insert(item T, index int) (err error) {
	err = checkIndex(linkedListName, index, L.length+1)
	if err != nil {
		return
	}

	if index == L.length {
		L.AddBack(item)
		return
	}

	L.insertBefore(item, L.nodeAt(index))

	return
}

// AddFront - Adds item as new head
func (L *LinkedList[T]) AddFront(item T) {
	if L.head == nil {
		L.AddBack(item)
		return
	}
	L.insertBefore(item, L.head)
}

// AddBack - Adds item as new tail
func (L *LinkedList[T]) AddBack(item T) {
	n := &node[T]{value: item, prev: L.tail}
	if L.tail == nil {
		L.head = n
	} else {
		L.tail.next = n
	}
	L.tail = n
	L.length++
}

// Pop - Removes and returns the tail, an error of type OutOfBounds is returned if the list is empty
func (L *LinkedList[T]) Pop() (item T, err error) {
	if L.tail == nil {
		err = emptyError(linkedListName)
		return
	}

	item = L.tail.value
	L.unlink(L.tail)

	return
}

// PopAt - Removes and returns the item at pos.
//   - pos is the position, 0 -> Len() - 1
//
// It returns:
//   - item is the removed item
//   - err is of type OutOfBounds if pos is outside the list
func (L *LinkedList[T]) PopAt(pos int) (item T, err error) {
	err = checkIndex(linkedListName, pos, L.length)
	if err != nil {
		return
	}

	n := L.nodeAt(pos)
	item = n.value
	L.unlink(n)

	return
}

// Head - Returns the first item, an error of type OutOfBounds is returned if the list is empty
func (L *LinkedList[T]) Head() (item T, err error) {
	if L.head == nil {
		err = emptyError(linkedListName)
		return
	}

	item = L.head.value

	return
}

// Tail - Returns the last item, an error of type OutOfBounds is returned if the list is empty
func (L *LinkedList[T]) Tail() (item T, err error) {
	if L.tail == nil {
		err = emptyError(linkedListName)
		return
	}

	item = L.tail.value

	return
}

// Len - Returns number of items
func (L *LinkedList[T]) Len() int {
	return L.length
}

// IsEmpty - Returns true if there are no items
func (L *LinkedList[T]) IsEmpty() bool {
	return L.length == 0
}

// Values - Returns the items from head to tail
func (L *LinkedList[T]) Values() []T {
	values := make([]T, 0, L.length)
	for n := L.head; n != nil; n = n.next {
		values = append(values, n.value)
	}
	return values
}

// Iterator - Returns a new Iterator from head to tail
func (L *LinkedList[T]) Iterator() *Iterator[T] {
	return newIterator(L.Values())
}

// String - Returns the items as "[1 2 3]"
func (L *LinkedList[T]) String() string {
	return fmt.Sprintf("[%s]", joinItems(L.Values(), " "))
}

// nodeAt - Returns the node at a valid index, walking from the closer end
func (L *LinkedList[T]) nodeAt(index int) (n *node[T]) {
	if index < L.length/2 {
		n = L.head
		for i := 0; i < index; i++ {
			n = n.next
		}
		return
	}

	n = L.tail
	for i := L.length - 1; i > index; i-- {
		n = n.prev
	}
	return
}

// insertBefore - Links a new node holding item in front of at
func (L *LinkedList[T]) insertBefore(item T, at *node[T]) {
	n := &node[T]{value: item, prev: at.prev, next: at}
	if at.prev == nil {
		L.head = n
	} else {
		at.prev.next = n
	}
	at.prev = n
	L.length++
}

// unlink - Removes n from the list
func (L *LinkedList[T]) unlink(n *node[T]) {
	if n.prev == nil {
		L.head = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		L.tail = n.prev
	} else {
		n.next.prev = n.prev
	}
	n.prev, n.next = nil, nil
	L.length--
}
