// Package heap implements a binary min-heap on top of a slice.
//
// For index i the parent lives at (i-1)/2 and the children at 2i+1 and
// 2i+2. Push and Pop are O(log n), Len, IsEmpty and Peek are O(1).
//
// A heap is not safe for concurrent use.
package heap

import "golang.org/x/exp/constraints"

type Ordered[T any] interface {
	// Less should return true if element's value is less than v
	Less(v T) bool
}

// Min is a min-heap. Use one of the constructors: the zero value has
// no ordering and panics on Push.
type Min[T any] struct {
	data []T
	less func(a, b T) bool
}

// NewMin returns an empty heap ordered by T's Less method.
func NewMin[T Ordered[T]]() Min[T] {
	return Min[T]{less: func(a, b T) bool { return a.Less(b) }}
}

// NewOrdered returns an empty heap ordered by the < operator.
func NewOrdered[T constraints.Ordered]() Min[T] {
	return Min[T]{less: func(a, b T) bool { return a < b }}
}

// NewFunc returns an empty heap ordered by less.
func NewFunc[T any](less func(a, b T) bool) Min[T] {
	if less == nil {
		panic("heap: nil less function")
	}
	return Min[T]{less: less}
}

func (h *Min[T]) Len() int {
	return len(h.data)
}

func (h *Min[T]) IsEmpty() bool {
	return len(h.data) == 0
}

// Push adds x to the heap.
func (h *Min[T]) Push(x T) {
	if h.less == nil {
		panic("heap: zero Min; use NewMin, NewOrdered or NewFunc")
	}
	h.data = append(h.data, x)
	h.up(len(h.data) - 1)
}

// Pop removes and returns the smallest element. The second return value
// is false if the heap is empty.
func (h *Min[T]) Pop() (T, bool) {
	var zero T

	n := len(h.data)
	if n == 0 {
		return zero, false
	}

	x := h.data[0]
	h.data[0] = h.data[n-1]
	// Don't keep the moved element reachable from the spare capacity.
	h.data[n-1] = zero
	h.data = h.data[:n-1]

	if len(h.data) > 0 {
		h.down(0)
	}
	return x, true
}

// Peek returns the smallest element without removing it.
func (h *Min[T]) Peek() (T, bool) {
	if len(h.data) == 0 {
		var zero T
		return zero, false
	}
	return h.data[0], true
}

func (h *Min[T]) swap(i, j int) {
	h.data[i], h.data[j] = h.data[j], h.data[i]
}

// up moves the element at i towards the root. Equal elements are swapped
// too: only a strictly smaller parent stops the walk.
func (h *Min[T]) up(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if h.less(h.data[p], h.data[i]) {
			return
		}
		h.swap(p, i)
		i = p
	}
}

func (h *Min[T]) down(i int) {
	n := len(h.data)
	for i < n {
		l, r := 2*i+1, 2*i+2

		smallest := i
		if l < n && h.less(h.data[l], h.data[smallest]) {
			smallest = l
		}
		if r < n && h.less(h.data[r], h.data[smallest]) {
			smallest = r
		}
		if smallest == i {
			return
		}

		h.swap(i, smallest)
		i = smallest
	}
}
