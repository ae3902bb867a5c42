package stream

import (
	"sync"
)

type Stream[T any] struct {
	name     string
	elements []T
	closed   bool
	*sync.Cond
}

func NewStream[T any](name string) *Stream[T] {
	return &Stream[T]{
		Cond: sync.NewCond(&sync.Mutex{}),
		name: name,
	}
}

func (s *Stream[T]) Name() string {
	return s.name
}

// Push is a no-op after Close.
func (s *Stream[T]) Push(elem T) {
	s.Cond.L.Lock()
	if !s.closed {
		s.elements = append(s.elements, elem)
		s.Cond.Signal()
	}
	s.Cond.L.Unlock()
}

// Pull blocks until at least one element is available and returns all
// pending elements in push order. It returns nil once the stream is closed
// and drained.
func (s *Stream[T]) Pull() []T {
	s.Cond.L.Lock()
	defer s.Cond.L.Unlock()

	for len(s.elements) == 0 && !s.closed {
		s.Cond.Wait()
	}
	return s.take()
}

// PullAll returns the pending elements without blocking.
func (s *Stream[T]) PullAll() []T {
	s.Cond.L.Lock()
	defer s.Cond.L.Unlock()
	return s.take()
}

func (s *Stream[T]) Len() int {
	s.Cond.L.Lock()
	defer s.Cond.L.Unlock()
	return len(s.elements)
}

func (s *Stream[T]) Close() {
	s.Cond.L.Lock()
	s.closed = true
	s.Cond.Broadcast()
	s.Cond.L.Unlock()
}

func (s *Stream[T]) take() []T {
	if len(s.elements) == 0 {
		return nil
	}
	elems := s.elements
	s.elements = nil
	return elems
}
