package history

import (
	"fmt"

	"github.com/bethropolis/tideboard/internal/logger"
)

// Handler applies commands and operations to a document and records their
// inverses on bounded undo and redo stacks. At most one operation may be
// active at a time; while it is, every other mutating call panics.
//
// Handler is not safe for concurrent use. Call it from the UI goroutine.
type Handler[D any] struct {
	ctx    Context[D]
	undo   *Stack[Command[D]]
	redo   *Stack[Command[D]]
	active Operation[D]
}

// NewHandler creates a handler over ctx keeping at most depth undo entries.
// A non-positive depth selects DefaultMaxHistory.
func NewHandler[D any](ctx Context[D], depth int) *Handler[D] {
	if depth <= 0 {
		depth = DefaultMaxHistory
	}
	return &Handler[D]{
		ctx:  ctx,
		undo: NewStack[Command[D]](depth),
		redo: NewStack[Command[D]](depth),
	}
}

// Context returns the context commands are applied against.
func (h *Handler[D]) Context() Context[D] {
	return h.ctx
}

// Submit applies cmd and records its inverse. The redo stack is cleared.
func (h *Handler[D]) Submit(cmd Command[D]) {
	if h.active != nil {
		panic(fmt.Errorf("submit %q: %w (%q)", cmd.Description(), ErrOperationActive, h.active.Description()))
	}
	undo := cmd.CreateUndo(h.ctx)
	cmd.Apply(h.ctx)
	h.record(undo)
	logger.DebugTagf("history", "Submitted %q (undo=%d)", cmd.Description(), h.undo.Len())
}

// record pushes an inverse and invalidates the redo branch.
func (h *Handler[D]) record(undo Command[D]) {
	if h.undo.Push(undo) {
		logger.DebugTagf("history", "Undo stack full (%d), discarded oldest entry", h.undo.Cap())
	}
	h.redo.Clear()
}

// BeginOperation makes op the active operation and captures its baseline.
func (h *Handler[D]) BeginOperation(op Operation[D]) {
	if h.active != nil {
		panic(fmt.Errorf("begin %q: %w (%q)", op.Description(), ErrOperationActive, h.active.Description()))
	}
	lc := op.lifecycle()
	if lc.state != NotStarted {
		panic(fmt.Errorf("begin %q: %w (state %s)", op.Description(), ErrOperationReused, lc.state))
	}
	// Begin runs before the slot is taken so a panicking Begin leaves it free.
	op.Begin(h.ctx)
	h.active = op
	lc.state = Active
	logger.DebugTagf("history", "Began operation %q", op.Description())
}

// checkActive panics unless op is the active operation.
func (h *Handler[D]) checkActive(verb string, op Operation[D]) {
	if h.active == nil {
		panic(fmt.Errorf("%s %q: %w", verb, op.Description(), ErrNoActiveOperation))
	}
	if h.active != op {
		panic(fmt.Errorf("%s %q: %w (active is %q)", verb, op.Description(), ErrNotActiveOperation, h.active.Description()))
	}
}

// UpdateOperation re-applies the active operation with its current parameters.
func (h *Handler[D]) UpdateOperation(op Operation[D]) {
	h.checkActive("update", op)
	op.Update(h.ctx)
}

// FinishOperation commits op as a single undo entry restoring its baseline.
func (h *Handler[D]) FinishOperation(op Operation[D]) {
	h.checkActive("finish", op)
	op.Finish(h.ctx)
	h.record(op.CreateUndo(h.ctx))
	op.lifecycle().state = Committed
	h.active = nil
	logger.DebugTagf("history", "Finished operation %q (undo=%d)", op.Description(), h.undo.Len())
}

// CancelOperation restores op's baseline without recording anything.
func (h *Handler[D]) CancelOperation(op Operation[D]) {
	h.checkActive("cancel", op)
	op.Cancel(h.ctx)
	op.lifecycle().state = Cancelled
	h.active = nil
	logger.DebugTagf("history", "Cancelled operation %q", op.Description())
}

// Undo reverts the most recent entry. It returns false when there is nothing
// to undo.
func (h *Handler[D]) Undo() bool {
	return h.step("undo", h.undo, h.redo)
}

// Redo re-applies the most recently undone entry. It returns false when there
// is nothing to redo.
func (h *Handler[D]) Redo() bool {
	return h.step("redo", h.redo, h.undo)
}

// step pops from src, records the popped command's inverse on dst and applies it.
func (h *Handler[D]) step(verb string, src, dst *Stack[Command[D]]) bool {
	if h.active != nil {
		panic(fmt.Errorf("%s: %w (%q)", verb, ErrOperationActive, h.active.Description()))
	}
	cmd, ok := src.TryPop()
	if !ok {
		logger.DebugTagf("history", "Nothing to %s", verb)
		return false
	}
	if dst.Push(cmd.CreateUndo(h.ctx)) {
		logger.DebugTagf("history", "%s stack full, discarded oldest entry", verb)
	}
	cmd.Apply(h.ctx)
	logger.DebugTagf("history", "%s %q (undo=%d redo=%d)", verb, cmd.Description(), h.undo.Len(), h.redo.Len())
	return true
}

// CanUndo reports, reactively, whether Undo would do anything.
func (h *Handler[D]) CanUndo() BoolSignal { return h.undo.NonEmpty() }

// CanRedo reports, reactively, whether Redo would do anything.
func (h *Handler[D]) CanRedo() BoolSignal { return h.redo.NonEmpty() }

// Active returns the active operation, or nil.
func (h *Handler[D]) Active() Operation[D] { return h.active }

// UndoCount returns the number of undo entries.
func (h *Handler[D]) UndoCount() int { return h.undo.Len() }

// RedoCount returns the number of redo entries.
func (h *Handler[D]) RedoCount() int { return h.redo.Len() }

// Depth returns the capacity of each stack.
func (h *Handler[D]) Depth() int { return h.undo.Cap() }

// UndoDescriptions lists undo entries, most recent first.
func (h *Handler[D]) UndoDescriptions() []string { return describe(h.undo) }

// RedoDescriptions lists redo entries, most recent first.
func (h *Handler[D]) RedoDescriptions() []string { return describe(h.redo) }

func describe[D any](s *Stack[Command[D]]) []string {
	items := s.Items()
	out := make([]string, 0, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		out = append(out, items[i].Description())
	}
	return out
}

// Clear drops all history, e.g. after loading a different document.
func (h *Handler[D]) Clear() {
	if h.active != nil {
		panic(fmt.Errorf("clear: %w (%q)", ErrOperationActive, h.active.Description()))
	}
	h.undo.Clear()
	h.redo.Clear()
}
