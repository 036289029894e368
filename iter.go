package txlog

import "iter"

// All returns an iterator over the values of the log from head to
// tail. Iterating does not modify the log.
func (lg *Log[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := lg.head; cur != nil; cur = cur.next {
			if !yield(cur.val) {
				return
			}
		}
	}
}

// Backward returns an iterator over the values of the log from tail
// to head. Iterating does not modify the log.
func (lg *Log[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := lg.tail; cur != nil; cur = cur.prev {
			if !yield(cur.val) {
				return
			}
		}
	}
}

// Nodes returns an iterator over the nodes of the log from head to
// tail. The yielded nodes must not be detached during iteration.
func (lg *Log[T]) Nodes() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		for cur := lg.head; cur != nil; cur = cur.next {
			if !yield(cur) {
				return
			}
		}
	}
}

// Drain returns an iterator that pops values from the head until the
// log is empty. Unlike [Log.All], it consumes the log; breaking out
// early leaves the values not yet yielded in place.
func (lg *Log[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := lg.Pop()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// A Cursor steps through a chain of nodes one at a time, in either
// direction, starting from a saved node. It holds its own position,
// independent of any [Log], and never modifies the nodes it visits.
//
// A cursor is exhausted once it steps off either end of the chain. To
// start over, construct a new cursor from the saved node.
type Cursor[T any] struct {
	current *Node[T]
}

// NewCursor returns a cursor positioned at start. A nil start yields
// a cursor that is already exhausted.
func NewCursor[T any](start *Node[T]) *Cursor[T] {
	return &Cursor[T]{current: start}
}

// Next returns the value at the cursor's position and advances the
// cursor to the successor. It returns false if the cursor is
// exhausted.
func (c *Cursor[T]) Next() (T, bool) {
	if c.current == nil {
		var zero T
		return zero, false
	}
	v := c.current.val
	c.current = c.current.next
	return v, true
}

// Prev returns the value at the cursor's position and moves the
// cursor to the predecessor. It returns false if the cursor is
// exhausted.
func (c *Cursor[T]) Prev() (T, bool) {
	if c.current == nil {
		var zero T
		return zero, false
	}
	v := c.current.val
	c.current = c.current.prev
	return v, true
}
