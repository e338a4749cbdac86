package history

// OperationState is the lifecycle state of an Operation.
type OperationState int

const (
	NotStarted OperationState = iota
	Active
	Committed
	Cancelled
)

func (s OperationState) String() string {
	switch s {
	case NotStarted:
		return "not-started"
	case Active:
		return "active"
	case Committed:
		return "committed"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Lifecycle carries the state every Operation shares. Embed it by value in
// concrete operations and use them through pointers.
type Lifecycle struct {
	state OperationState
}

// State returns the current lifecycle state.
func (l *Lifecycle) State() OperationState {
	return l.state
}

// IsActive reports whether the operation has begun and not yet ended.
func (l *Lifecycle) IsActive() bool {
	return l.state == Active
}

func (l *Lifecycle) lifecycle() *Lifecycle {
	return l
}
