package text

import "fmt"

// Node is one element of a doubly linked List.
type Node[T any] struct {
	Value T

	prev   *Node[T]
	next   *Node[T]
	linked bool
}

// Cell holds a single character of a Line.
type Cell = Node[rune]

// NewCell wraps r in an unlinked cell.
func NewCell(r rune) *Cell {
	return &Cell{Value: r}
}

// InsertNext splices item in directly after n.
// item must not belong to another list.
func (n *Node[T]) InsertNext(item *Node[T]) {
	item.prev = n
	item.next = n.next
	if n.next != nil {
		n.next.prev = item
	}
	n.next = item
	n.linked = true
	item.linked = true
}

// InsertPrevious splices item in directly before n.
// item must not belong to another list.
func (n *Node[T]) InsertPrevious(item *Node[T]) {
	item.next = n
	item.prev = n.prev
	if n.prev != nil {
		n.prev.next = item
	}
	n.prev = item
	n.linked = true
	item.linked = true
}

// Remove unlinks n from its neighbours and returns the node that preceded it,
// which is nil when n was the head.
func (n *Node[T]) Remove() (*Node[T], error) {
	if !n.linked {
		return nil, fmt.Errorf("remove node: %w", ErrInvalidOperation)
	}
	prev := n.prev
	if n.prev != nil {
		n.prev.next = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}
	n.prev, n.next, n.linked = nil, nil, false
	return prev, nil
}

// Next returns the following node or nil.
func (n *Node[T]) Next() *Node[T] { return n.next }

// Previous returns the preceding node or nil.
func (n *Node[T]) Previous() *Node[T] { return n.prev }
