package schedule

import (
	"sync"
	"time"

	"github.com/bethropolis/tideboard/internal/logger"
)

// Coalescer collects task requests and runs each pending task once per
// interval. Requests may come from any goroutine; Flush must be called from
// the goroutine that owns the state the tasks read (the UI loop).
type Coalescer struct {
	interval time.Duration
	wake     func()

	mu      sync.Mutex
	tasks   map[Key]Task
	order   []Key
	pending map[Key]struct{}
	timer   *time.Timer
	closed  bool
	runs    int
}

// NewCoalescer creates a coalescer. wake is invoked from the timer goroutine
// once the interval elapses after the first request; it should arrange for
// Flush to be called on the owning goroutine.
func NewCoalescer(interval time.Duration, wake func()) *Coalescer {
	if wake == nil {
		panic("schedule.NewCoalescer requires a wake function")
	}
	return &Coalescer{
		interval: interval,
		wake:     wake,
		tasks:    make(map[Key]Task),
		pending:  make(map[Key]struct{}),
	}
}

// Register associates task with key. Re-registering replaces the task but
// keeps its original position in the run order.
func (c *Coalescer) Register(key Key, task Task) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.tasks[key]; !exists {
		c.order = append(c.order, key)
	}
	c.tasks[key] = task
}

// Request marks key pending and arms the timer if it is not already armed.
func (c *Coalescer) Request(key Key) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	if _, ok := c.tasks[key]; !ok {
		logger.WarnTagf("schedule", "Request for unregistered task %q ignored", key)
		return
	}
	c.pending[key] = struct{}{}
	if c.timer == nil {
		var t *time.Timer
		t = time.AfterFunc(c.interval, func() { c.fire(t) })
		c.timer = t
	}
}

// fire disarms t and calls wake. A later Request arms a fresh timer even if
// this wake never leads to a Flush.
func (c *Coalescer) fire(t *time.Timer) {
	c.mu.Lock()
	if c.timer == t {
		c.timer = nil
	}
	closed := c.closed
	c.mu.Unlock()

	if !closed {
		c.wake()
	}
}

// Pending reports whether any task is waiting to run.
func (c *Coalescer) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending) > 0
}

// Flush runs every pending task once, in registration order, and returns the
// number of tasks run. Requests made by the tasks themselves are left for
// the next interval.
func (c *Coalescer) Flush() int {
	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	var due []Task
	for _, key := range c.order {
		if _, ok := c.pending[key]; ok {
			due = append(due, c.tasks[key])
		}
	}
	c.pending = make(map[Key]struct{})
	c.runs += len(due)
	c.mu.Unlock()

	for _, task := range due {
		task()
	}
	if len(due) > 0 {
		logger.DebugTagf("schedule", "Flushed %d task(s)", len(due))
	}
	return len(due)
}

// Runs returns the total number of task executions so far.
func (c *Coalescer) Runs() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.runs
}

// Close stops the timer and drops pending work. Later requests are ignored.
func (c *Coalescer) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.pending = make(map[Key]struct{})
	c.closed = true
}
