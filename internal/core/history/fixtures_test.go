package history

import (
	"errors"
	"fmt"
	"testing"

	"github.com/bethropolis/tideboard/internal/schedule"
)

// point is the minimal document used by the tests: named cells on a grid.
type point struct{ x, y int }

type doc struct {
	cells map[string]point
}

func newDoc() *doc {
	return &doc{cells: map[string]point{"a": {10, 10}}}
}

// setCmd places a cell at an absolute position.
type setCmd struct {
	name string
	to   point
}

func (c *setCmd) Apply(ctx Context[*doc]) {
	ctx.Doc.cells[c.name] = c.to
	ctx.Scheduler.Request("recompute")
}

func (c *setCmd) CreateUndo(ctx Context[*doc]) Command[*doc] {
	return &setCmd{name: c.name, to: ctx.Doc.cells[c.name]}
}

func (c *setCmd) Description() string {
	return fmt.Sprintf("set %s to %v", c.name, c.to)
}

// moveOp drags a cell towards a target, re-deriving from the baseline each update.
type moveOp struct {
	Lifecycle
	name     string
	baseline point
	target   point

	updates int
}

func (o *moveOp) Begin(ctx Context[*doc]) {
	o.baseline = ctx.Doc.cells[o.name]
	o.target = o.baseline
}

func (o *moveOp) Update(ctx Context[*doc]) {
	o.updates++
	ctx.Doc.cells[o.name] = o.target
	ctx.Scheduler.Request("recompute")
}

func (o *moveOp) Finish(ctx Context[*doc]) { o.Update(ctx) }

func (o *moveOp) Cancel(ctx Context[*doc]) {
	ctx.Doc.cells[o.name] = o.baseline
	ctx.Scheduler.Request("recompute")
}

func (o *moveOp) CreateUndo(ctx Context[*doc]) Command[*doc] {
	return &setCmd{name: o.name, to: o.baseline}
}

func (o *moveOp) Description() string { return "move " + o.name }

func newTestHandler(depth int) (*Handler[*doc], *doc, *schedule.Immediate) {
	d := newDoc()
	sched := schedule.NewImmediate()
	return NewHandler(Context[*doc]{Doc: d, Scheduler: sched}, depth), d, sched
}

// expectPanic runs fn and checks that it panics with an error wrapping target.
func expectPanic(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic wrapping %v", target)
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic value %v is not an error", r)
		}
		if !errors.Is(err, target) {
			t.Fatalf("panic %v does not wrap %v", err, target)
		}
	}()
	fn()
}
