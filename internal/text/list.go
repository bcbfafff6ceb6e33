package text

import (
	"fmt"
	"iter"
)

// List is a doubly linked list with a movable current position.
//
// Positions range over [-1, Len()-1]. Position -1 means "before the first
// element"; inserting there prepends. The zero value is an empty list
// positioned at -1.
type List[T any] struct {
	first   *Node[T]
	current *Node[T]
	// index is position+1.
	index  int
	length int
}

// Len returns the number of elements.
func (l *List[T]) Len() int { return l.length }

// Position returns the current position, -1 when no element is current.
func (l *List[T]) Position() int { return l.index - 1 }

// Current returns the element at the current position.
func (l *List[T]) Current() (T, error) {
	if l.current == nil {
		var zero T
		return zero, fmt.Errorf("current of %d at -1: %w", l.length, ErrOutOfRange)
	}
	return l.current.Value, nil
}

// At moves the current position to n and returns the element there.
// At(-1) moves before the first element and returns the zero value.
func (l *List[T]) At(n int) (T, error) {
	var zero T
	node, err := l.seek(n)
	if err != nil || node == nil {
		return zero, err
	}
	return node.Value, nil
}

func (l *List[T]) seek(n int) (*Node[T], error) {
	if n < -1 || n >= l.length {
		return nil, fmt.Errorf("at %d of %d: %w", n, l.length, ErrOutOfRange)
	}
	if n == -1 {
		l.current, l.index = nil, 0
		return nil, nil
	}
	node, i := l.first, 0
	if l.current != nil && n >= l.Position() {
		node, i = l.current, l.Position()
	}
	for ; i < n; i++ {
		node = node.next
	}
	l.current, l.index = node, n+1
	return node, nil
}

// Peek returns the element at n without moving the current position.
func (l *List[T]) Peek(n int) (T, bool) {
	var zero T
	if n < 0 || n >= l.length {
		return zero, false
	}
	node, i := l.first, 0
	if l.current != nil && n >= l.Position() {
		node, i = l.current, l.Position()
	}
	for ; i < n; i++ {
		node = node.next
	}
	return node.Value, true
}

// Insert adds v after the current element, or at the head when the position
// is -1, and makes it current.
func (l *List[T]) Insert(v T) *Node[T] {
	node := &Node[T]{Value: v}
	switch {
	case l.current == nil && l.first == nil:
		node.linked = true
		l.first = node
	case l.current == nil:
		l.first.InsertPrevious(node)
		l.first = node
	default:
		l.current.InsertNext(node)
	}
	l.current = node
	l.index++
	l.length++
	return node
}

// Remove unlinks the current element and returns it. The former predecessor
// becomes current.
func (l *List[T]) Remove() (T, error) {
	var zero T
	if l.length == 0 || l.current == nil {
		return zero, fmt.Errorf("remove at %d of %d: %w", l.Position(), l.length, ErrOutOfRange)
	}
	node := l.current
	if l.index == 1 {
		l.first = node.next
	}
	prev, err := node.Remove()
	if err != nil {
		return zero, err
	}
	l.current = prev
	l.index--
	l.length--
	return node.Value, nil
}

// Split detaches every element after the current position and returns them
// as a new list positioned at -1.
func (l *List[T]) Split() *List[T] {
	var head *Node[T]
	if l.current == nil {
		head, l.first = l.first, nil
	} else {
		head, l.current.next = l.current.next, nil
	}
	tail := &List[T]{}
	if head == nil {
		return tail
	}
	head.prev = nil
	tail.first = head
	tail.length = l.length - l.index
	l.length = l.index
	return tail
}

// First returns the head node or nil.
func (l *List[T]) First() *Node[T] { return l.first }

// All iterates over positions and values without moving the current position.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for node := l.first; node != nil; node = node.next {
			if !yield(i, node.Value) {
				return
			}
			i++
		}
	}
}
