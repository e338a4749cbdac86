package history

// BoolSignal is a read-only observable boolean.
type BoolSignal interface {
	Get() bool
	// Subscribe registers fn to be called with each new value. Subscribers
	// are called in registration order, only when the value changes.
	Subscribe(fn func(bool)) (unsubscribe func())
}

// Signal is a settable BoolSignal.
type Signal struct {
	value  bool
	nextID int
	subs   []subscription
}

type subscription struct {
	id int
	fn func(bool)
}

// NewSignal creates a signal holding initial.
func NewSignal(initial bool) *Signal {
	return &Signal{value: initial}
}

// Get returns the current value.
func (s *Signal) Get() bool {
	return s.value
}

// Set stores v and notifies subscribers if it differs from the current value.
func (s *Signal) Set(v bool) {
	if s.value == v {
		return
	}
	s.value = v
	// Snapshot so subscribers may unsubscribe while being notified.
	subs := append([]subscription(nil), s.subs...)
	for _, sub := range subs {
		sub.fn(v)
	}
}

// Subscribe implements BoolSignal.
func (s *Signal) Subscribe(fn func(bool)) func() {
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscription{id: id, fn: fn})
	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}
