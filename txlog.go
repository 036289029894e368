// Package txlog implements an in-memory transaction log: a FIFO list
// of values linked in both directions. Values are appended at the
// tail, popped from the head, and can be traversed either way without
// modifying the log.
package txlog

import "fmt"

// A Log is a doubly linked FIFO list of values.
//
// A zero value Log is an empty log ready to use. A Log must not be
// accessed from multiple goroutines.
type Log[T any] struct {
	head, tail *Node[T]
	length     int
}

// Len returns the number of values in the log.
func (lg *Log[T]) Len() int {
	return lg.length
}

// Head returns the first node of the log, or nil if the log is empty.
func (lg *Log[T]) Head() *Node[T] {
	return lg.head
}

// Tail returns the last node of the log, or nil if the log is empty.
func (lg *Log[T]) Tail() *Node[T] {
	return lg.tail
}

// Append adds v in a new node at the tail of the log.
func (lg *Log[T]) Append(v T) {
	n := &Node[T]{val: v, prev: lg.tail}
	if lg.tail == nil {
		lg.head = n
	} else {
		lg.tail.next = n
	}
	lg.tail = n
	lg.length++
}

// Peek returns the value at the head of the log without removing it.
// It returns false if the log is empty.
func (lg *Log[T]) Peek() (T, bool) {
	if lg.head == nil {
		var zero T
		return zero, false
	}
	return lg.head.val, true
}

// Pop removes the head node from the log and returns its value. It
// returns false if the log is empty.
//
// The removed node is fully unlinked: it keeps no reference into the
// chain, and the new head keeps no back reference to it.
func (lg *Log[T]) Pop() (T, bool) {
	n := lg.head
	if n == nil {
		var zero T
		return zero, false
	}

	lg.head = n.next
	if lg.head == nil {
		lg.tail = nil
	} else {
		lg.head.prev = nil
	}
	n.next = nil
	lg.length--

	return reclaim(n), true
}

// reclaim moves the value out of a node that has been detached from
// the chain. A node that still links to a neighbor was not fully
// unlinked; that is a bug in the unlink path, not a state the caller
// can recover from.
func reclaim[T any](n *Node[T]) T {
	if n.next != nil || n.prev != nil {
		panic(fmt.Sprintf("txlog: reclaiming a node that is still linked: %v", n))
	}
	v := n.val
	var zero T
	n.val = zero
	return v
}

// Clear removes every value from the log. It detaches one node at a
// time from the head, so clearing an arbitrarily long log uses
// constant stack space.
func (lg *Log[T]) Clear() {
	for lg.head != nil {
		lg.Pop()
	}
}
