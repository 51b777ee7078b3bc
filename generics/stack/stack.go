// Package stack implements a LIFO stack on top of container/list.
package stack

import (
	"container/list"
	"iter"
)

// Stack is a last-in-first-out stack. The back of the list is the top
// of the stack. The zero value is an empty stack ready to use.
//
// A stack is not safe for concurrent use.
type Stack[T any] struct {
	l list.List
}

func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push puts x on top of the stack.
func (s *Stack[T]) Push(x T) {
	s.l.PushBack(x)
}

// Pop removes and returns the top element. The second return value is
// false if the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	e := s.l.Back()
	if e == nil {
		var zero T
		return zero, false
	}
	return s.l.Remove(e).(T), true
}

// Peek returns a copy of the top element without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	e := s.l.Back()
	if e == nil {
		var zero T
		return zero, false
	}
	return e.Value.(T), true
}

func (s *Stack[T]) Len() int {
	return s.l.Len()
}

func (s *Stack[T]) IsEmpty() bool {
	return s.l.Len() == 0
}

// All yields the elements in the order they were pushed: the oldest
// first and the top of the stack last. This is the reverse of the order
// Pop returns them in.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := s.l.Front(); e != nil; e = e.Next() {
			if !yield(e.Value.(T)) {
				return
			}
		}
	}
}
