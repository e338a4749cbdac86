package schedule

import (
	"sync"
	"testing"
	"time"
)

// newTestCoalescer returns a coalescer whose wake signals on the returned channel.
func newTestCoalescer(interval time.Duration) (*Coalescer, chan struct{}) {
	woke := make(chan struct{}, 16)
	c := NewCoalescer(interval, func() { woke <- struct{}{} })
	return c, woke
}

func waitWake(t *testing.T, woke <-chan struct{}) {
	t.Helper()
	select {
	case <-woke:
	case <-time.After(2 * time.Second):
		t.Fatal("wake was not called")
	}
}

func TestCoalescerRunsBurstOnce(t *testing.T) {
	c, woke := newTestCoalescer(10 * time.Millisecond)

	state := 0
	var seen []int
	c.Register("layout", func() { seen = append(seen, state) })

	for i := 1; i <= 50; i++ {
		state = i
		c.Request("layout")
	}

	waitWake(t, woke)
	if n := c.Flush(); n != 1 {
		t.Fatalf("Flush() ran %d tasks, want 1", n)
	}
	if len(seen) != 1 || seen[0] != 50 {
		t.Errorf("task saw %v, want [50]", seen)
	}

	select {
	case <-woke:
		t.Error("timer fired again without new requests")
	case <-time.After(30 * time.Millisecond):
	}
}

func TestCoalescerRunsInRegistrationOrder(t *testing.T) {
	c, woke := newTestCoalescer(time.Millisecond)

	var order []string
	c.Register("a", func() { order = append(order, "a") })
	c.Register("b", func() { order = append(order, "b") })
	c.Register("c", func() { order = append(order, "c") })

	c.Request("c")
	c.Request("a")
	waitWake(t, woke)
	c.Flush()

	if len(order) != 2 || order[0] != "a" || order[1] != "c" {
		t.Errorf("order = %v, want [a c]", order)
	}
}

func TestCoalescerRequestDuringFlushDefers(t *testing.T) {
	c, woke := newTestCoalescer(time.Millisecond)

	runs := 0
	c.Register("again", func() {
		runs++
		if runs == 1 {
			c.Request("again")
		}
	})

	c.Request("again")
	waitWake(t, woke)
	if n := c.Flush(); n != 1 {
		t.Fatalf("first Flush() = %d, want 1", n)
	}
	if !c.Pending() {
		t.Fatal("request made during flush should stay pending")
	}

	waitWake(t, woke)
	if n := c.Flush(); n != 1 {
		t.Fatalf("second Flush() = %d, want 1", n)
	}
	if runs != 2 || c.Runs() != 2 {
		t.Errorf("runs = %d, Runs() = %d, want 2", runs, c.Runs())
	}
}

func TestCoalescerRearmsAfterLostWake(t *testing.T) {
	woke := make(chan struct{}, 16)
	wakes := 0
	var mu sync.Mutex
	c := NewCoalescer(5*time.Millisecond, func() {
		mu.Lock()
		defer mu.Unlock()
		wakes++
		if wakes > 1 {
			woke <- struct{}{}
		}
	})
	ran := 0
	c.Register("layout", func() { ran++ })

	// The first wake is dropped, as when the UI event queue is full.
	c.Request("layout")
	time.Sleep(30 * time.Millisecond)
	c.Request("layout")

	waitWake(t, woke)
	if n := c.Flush(); n != 1 || ran != 1 {
		t.Errorf("Flush() = %d, ran = %d, want 1 and 1", n, ran)
	}
}

func TestCoalescerIgnoresUnregistered(t *testing.T) {
	c, _ := newTestCoalescer(time.Millisecond)
	c.Request("nobody")
	if c.Pending() {
		t.Error("unregistered key should not be pending")
	}
	if n := c.Flush(); n != 0 {
		t.Errorf("Flush() = %d, want 0", n)
	}
}

func TestCoalescerClose(t *testing.T) {
	c, woke := newTestCoalescer(5 * time.Millisecond)
	ran := false
	c.Register("k", func() { ran = true })

	c.Request("k")
	c.Close()
	c.Request("k")

	select {
	case <-woke:
		t.Error("closed coalescer should not wake")
	case <-time.After(30 * time.Millisecond):
	}
	if c.Flush() != 0 || ran {
		t.Error("closed coalescer should not run tasks")
	}
}

func TestImmediate(t *testing.T) {
	s := NewImmediate()
	count := 0
	s.Register("k", func() { count++ })

	s.Request("k")
	s.Request("k")
	s.Request("other")

	if count != 2 {
		t.Errorf("task ran %d times, want 2", count)
	}
	if s.Runs("k") != 2 || s.Runs("other") != 1 {
		t.Errorf("Runs = %d/%d, want 2/1", s.Runs("k"), s.Runs("other"))
	}
}
