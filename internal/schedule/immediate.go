package schedule

// Immediate runs a requested task synchronously. It stands in for a
// Coalescer in tests and headless use.
type Immediate struct {
	tasks map[Key]Task
	runs  map[Key]int
}

// NewImmediate creates an empty Immediate scheduler.
func NewImmediate() *Immediate {
	return &Immediate{
		tasks: make(map[Key]Task),
		runs:  make(map[Key]int),
	}
}

// Register associates task with key.
func (s *Immediate) Register(key Key, task Task) {
	s.tasks[key] = task
}

// Request runs the task for key now. Unknown keys are counted but not run.
func (s *Immediate) Request(key Key) {
	s.runs[key]++
	if task, ok := s.tasks[key]; ok {
		task()
	}
}

// Runs returns how many times key was requested.
func (s *Immediate) Runs(key Key) int {
	return s.runs[key]
}
