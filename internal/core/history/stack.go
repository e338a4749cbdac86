package history

import "fmt"

// DefaultMaxHistory is the undo depth used when none is configured.
const DefaultMaxHistory = 100

// Stack is a bounded LIFO backed by a ring buffer. When full, pushing
// discards the oldest entry.
type Stack[T any] struct {
	buf      []T
	head     int // index of the bottom entry
	size     int
	nonEmpty *Signal
}

// NewStack creates a stack holding at most capacity entries.
func NewStack[T any](capacity int) *Stack[T] {
	if capacity <= 0 {
		panic(fmt.Sprintf("history.NewStack: capacity must be positive, got %d", capacity))
	}
	return &Stack[T]{
		buf:      make([]T, capacity),
		nonEmpty: NewSignal(false),
	}
}

// Push places v on top. It reports whether the bottom entry was evicted to
// make room.
func (s *Stack[T]) Push(v T) (evicted bool) {
	if s.size == len(s.buf) {
		var zero T
		s.buf[s.head] = zero
		s.head = (s.head + 1) % len(s.buf)
		s.size--
		evicted = true
	}
	s.buf[(s.head+s.size)%len(s.buf)] = v
	s.size++
	s.nonEmpty.Set(true)
	return evicted
}

// TryPop removes and returns the top entry.
func (s *Stack[T]) TryPop() (T, bool) {
	var zero T
	if s.size == 0 {
		return zero, false
	}
	idx := (s.head + s.size - 1) % len(s.buf)
	v := s.buf[idx]
	s.buf[idx] = zero
	s.size--
	if s.size == 0 {
		s.head = 0
		s.nonEmpty.Set(false)
	}
	return v, true
}

// Peek returns the top entry without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	if s.size == 0 {
		var zero T
		return zero, false
	}
	return s.buf[(s.head+s.size-1)%len(s.buf)], true
}

// Len returns the number of entries.
func (s *Stack[T]) Len() int { return s.size }

// Cap returns the maximum number of entries.
func (s *Stack[T]) Cap() int { return len(s.buf) }

// Items returns a copy of the entries from bottom to top.
func (s *Stack[T]) Items() []T {
	out := make([]T, s.size)
	for i := range out {
		out[i] = s.buf[(s.head+i)%len(s.buf)]
	}
	return out
}

// Clear removes every entry.
func (s *Stack[T]) Clear() {
	var zero T
	for i := range s.buf {
		s.buf[i] = zero
	}
	s.head, s.size = 0, 0
	s.nonEmpty.Set(false)
}

// NonEmpty reports, reactively, whether the stack holds at least one entry.
func (s *Stack[T]) NonEmpty() BoolSignal {
	return s.nonEmpty
}
