// Package linked provides a generic doubly linked list.
//
// The list owns only its internal nodes; the values it stores remain the
// caller's. A List is not safe for concurrent use.
package linked

import "github.com/tkw1536/pkglib/iterator"

// node is a single element of a list.
type node[T any] struct {
	prev *node[T]
	next *node[T]
	data T
}

// List is a doubly linked list tracking both its head and tail.
//
// The zero value is an empty list ready for use; the nil list behaves like an
// empty read-only list.
type List[T any] struct {
	head   *node[T]
	tail   *node[T]
	length int
}

// Append adds a value at the end of the list.
func (l *List[T]) Append(data T) {
	if l == nil {
		return
	}

	n := &node[T]{prev: l.tail, data: data}
	if l.tail != nil {
		l.tail.next = n
	}
	l.tail = n
	if l.head == nil {
		l.head = n
	}
	l.length++
}

// Prepend adds a value at the beginning of the list.
func (l *List[T]) Prepend(data T) {
	if l == nil {
		return
	}

	n := &node[T]{next: l.head, data: data}
	if l.head != nil {
		l.head.prev = n
	}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.length++
}

// Pop removes and returns the last value of the list.
// The second value indicates if the list was non-empty.
func (l *List[T]) Pop() (T, bool) {
	var zero T
	if l == nil || l.tail == nil {
		return zero, false
	}

	last := l.tail
	l.tail = last.prev
	if l.tail != nil {
		l.tail.next = nil
	} else {
		l.head = nil
	}
	l.length--

	return last.data, true
}

// Shift removes and returns the first value of the list.
// The second value indicates if the list was non-empty.
func (l *List[T]) Shift() (T, bool) {
	var zero T
	if l == nil || l.head == nil {
		return zero, false
	}

	first := l.head
	l.head = first.next
	if l.head != nil {
		l.head.prev = nil
	} else {
		l.tail = nil
	}
	l.length--

	return first.data, true
}

// at returns the node at the given index, walking from the nearer end.
func (l *List[T]) at(index int) *node[T] {
	if l == nil || index < 0 || index >= l.length {
		return nil
	}
	if index < l.length/2 {
		n := l.head
		for i := 0; i < index; i++ {
			n = n.next
		}
		return n
	}
	n := l.tail
	for i := l.length - 1; i > index; i-- {
		n = n.prev
	}
	return n
}

// Insert adds a value at the given index, shifting later values towards the
// tail. The index may equal the length of the list, in which case Insert
// behaves like Append.
// Insert reports whether the index was in bounds.
func (l *List[T]) Insert(index int, data T) bool {
	if l == nil || index < 0 || index > l.length {
		return false
	}

	switch index {
	case 0:
		l.Prepend(data)
	case l.length:
		l.Append(data)
	default:
		curr := l.at(index)
		n := &node[T]{prev: curr.prev, next: curr, data: data}
		curr.prev.next = n
		curr.prev = n
		l.length++
	}
	return true
}

// Remove removes and returns the value at the given index.
// The second value indicates if the index was in bounds.
func (l *List[T]) Remove(index int) (T, bool) {
	n := l.at(index)
	if n == nil {
		var zero T
		return zero, false
	}

	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	l.length--

	return n.data, true
}

// Get returns the value at the given index.
// The second value indicates if the index was in bounds.
func (l *List[T]) Get(index int) (T, bool) {
	if n := l.at(index); n != nil {
		return n.data, true
	}
	var zero T
	return zero, false
}

// Set overwrites the value at the given index and reports whether the index
// was in bounds.
func (l *List[T]) Set(index int, data T) bool {
	n := l.at(index)
	if n == nil {
		return false
	}
	n.data = data
	return true
}

// Reverse reverses the list in place by swapping the links of every node and
// the head and tail of the list.
func (l *List[T]) Reverse() {
	if l == nil {
		return
	}
	for n := l.head; n != nil; n = n.prev {
		n.prev, n.next = n.next, n.prev
	}
	l.head, l.tail = l.tail, l.head
}

// ContainsFunc reports whether the list holds a value for which match returns
// true.
func (l *List[T]) ContainsFunc(match func(T) bool) bool {
	if l == nil || match == nil {
		return false
	}
	for n := l.head; n != nil; n = n.next {
		if match(n.data) {
			return true
		}
	}
	return false
}

// Len returns the number of values in the list, or 0 for a nil list.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.length
}

// Iter returns an iterator over the values of the list, from head to tail.
// The list must not be mutated while the iterator is in use.
func (l *List[T]) Iter() iterator.Iterator[T] {
	if l == nil {
		return iterator.Empty[T](nil)
	}
	return iterator.New(func(sender iterator.Generator[T]) {
		defer sender.Return()

		for n := l.head; n != nil; n = n.next {
			if sender.Yield(n.data) {
				break
			}
		}
	})
}
