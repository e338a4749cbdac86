package history

import "errors"

// Protocol violations. The Handler panics with errors wrapping these.
var (
	ErrOperationActive    = errors.New("an operation is already active")
	ErrNotActiveOperation = errors.New("operation is not the active operation")
	ErrNoActiveOperation  = errors.New("no operation is active")
	ErrOperationReused    = errors.New("operation has already been started")
)
