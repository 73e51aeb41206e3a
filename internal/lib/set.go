package lib

import (
	"sync"
)

// Set is a thread-safe set of comparable values and can be passed by value.
type Set[T comparable] struct {
	data map[T]struct{}
	mu   *sync.RWMutex
}

func NewSet[T comparable]() Set[T] {
	return Set[T]{
		data: make(map[T]struct{}),
		mu:   &sync.RWMutex{},
	}
}

func (s Set[T]) Add(elem T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[elem] = struct{}{}
}

func (s Set[T]) Contains(elem T) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, exists := s.data[elem]
	return exists
}

func (s Set[T]) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

func (s Set[T]) AsSlice() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	elements := make([]T, 0, len(s.data))
	for elem := range s.data {
		elements = append(elements, elem)
	}

	return elements
}
