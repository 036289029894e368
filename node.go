package txlog

import "fmt"

// A Node is a single entry in a [Log]. A node links to its neighbors
// in both directions; the links are unexported so that the chain can
// only be rewritten through [Log] methods that maintain its
// invariants.
type Node[T any] struct {
	val        T
	prev, next *Node[T]
}

// Value returns the value stored in the node.
func (n *Node[T]) Value() T {
	return n.val
}

// Next returns the node's successor, or nil if it is the last node.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Prev returns the node's predecessor, or nil if it is the first
// node.
func (n *Node[T]) Prev() *Node[T] {
	return n.prev
}

// String formats only the node's own value, representing its links as
// presence flags. The chain is cyclic through the back references, so
// formatting the linked nodes themselves would recurse without bound.
func (n *Node[T]) String() string {
	return fmt.Sprintf("Node(%v, prev: %t, next: %t)", n.val, n.prev != nil, n.next != nil)
}
