// Package schedule defers and coalesces expensive recomputation so that it
// runs at most once per interval no matter how often it is requested.
package schedule

// Key identifies a registered task.
type Key string

// Task is a unit of deferred work. It reads whatever state is current at
// the moment it runs.
type Task func()

// Scheduler accepts requests to run a registered task later.
type Scheduler interface {
	Request(key Key)
}
