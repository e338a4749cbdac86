package core

import (
	"github.com/bethropolis/tideboard/internal/core/edit"
	"github.com/bethropolis/tideboard/internal/core/history"
	"github.com/bethropolis/tideboard/internal/event"
	"github.com/bethropolis/tideboard/internal/layout"
	"github.com/bethropolis/tideboard/internal/logger"
	"github.com/bethropolis/tideboard/internal/types"
)

// Operation is a live board edit such as a drag or a retype.
type Operation = history.Operation[edit.Document]

// changer is implemented by operations that can tell whether they changed
// anything since Begin.
type changer interface {
	Changed() bool
}

// Busy reports whether a live operation is in progress.
func (e *Editor) Busy() bool {
	return e.history.Active() != nil
}

// Submit applies cmd through the history.
func (e *Editor) Submit(cmd edit.Command) bool {
	if e.Busy() {
		logger.Warnf("Editor: %q ignored while %q is active", cmd.Description(), e.history.Active().Description())
		return false
	}
	e.history.Submit(cmd)
	e.afterChange(cmd.Description(), false)
	return true
}

// Undo reverts the last edit. It returns false if there was nothing to undo
// or an operation is in progress.
func (e *Editor) Undo() bool {
	if e.Busy() {
		return false
	}
	if !e.history.Undo() {
		return false
	}
	e.afterChange("undo", false)
	return true
}

// Redo re-applies the last undone edit.
func (e *Editor) Redo() bool {
	if e.Busy() {
		return false
	}
	if !e.history.Redo() {
		return false
	}
	e.afterChange("redo", false)
	return true
}

func (e *Editor) afterChange(desc string, live bool) {
	e.pruneSelection()
	e.dispatch(event.TypeBoardModified, event.BoardModifiedData{Description: desc, Live: live})
}

// Nudge moves the selection by (dx, dy) steps of NudgeStep cells.
func (e *Editor) Nudge(dx, dy int) bool {
	if len(e.selection) == 0 {
		return false
	}
	delta := types.Point{X: dx * e.NudgeStep, Y: dy * e.NudgeStep}
	ok := e.Submit(edit.NewTranslate(e.board, delta, e.selection...))
	if ok {
		e.ScrollToSelection()
	}
	return ok
}

// AddEntity adds a labelled entity below the primary selection, or near the
// top-left of the view, and selects it.
func (e *Editor) AddEntity(label string) (types.EntityID, bool) {
	pos := e.viewOrigin.Add(types.Point{X: 2, Y: 1})
	if id, ok := e.Primary(); ok {
		if p, found := e.board.Position(id); found {
			pos = p.Add(types.Point{Y: layout.BoxHeight + 1})
		}
	}
	add := edit.NewAdd(e.board, label, pos)
	if !e.Submit(add) {
		return 0, false
	}
	id := add.IDs()[0]
	e.Select(id)
	e.ScrollToSelection()
	return id, true
}

// DeleteSelected removes every selected entity as one undo entry.
func (e *Editor) DeleteSelected() int {
	n := len(e.selection)
	if n == 0 {
		return 0
	}
	if !e.Submit(edit.NewRemove(e.selection...)) {
		return 0
	}
	return n
}

// Relabel sets the label of id.
func (e *Editor) Relabel(id types.EntityID, label string) bool {
	if _, ok := e.board.Entity(id); !ok {
		return false
	}
	return e.Submit(edit.NewRelabel(id, label))
}

// BeginOperation starts op.
func (e *Editor) BeginOperation(op Operation) {
	e.history.BeginOperation(op)
	e.dispatch(event.TypeOperationBegan, event.OperationBeganData{Description: op.Description()})
}

// UpdateOperation re-applies op with its current parameters.
func (e *Editor) UpdateOperation(op Operation) {
	e.history.UpdateOperation(op)
	e.dispatch(event.TypeBoardModified, event.BoardModifiedData{Description: op.Description(), Live: true})
}

// FinishOperation commits op. An operation that reports no change is
// cancelled instead, so it leaves no empty undo entry.
func (e *Editor) FinishOperation(op Operation) bool {
	if c, ok := op.(changer); ok && !c.Changed() {
		e.CancelOperation(op)
		return false
	}
	e.history.FinishOperation(op)
	e.afterChange(op.Description(), false)
	e.dispatch(event.TypeOperationEnded, event.OperationEndedData{Description: op.Description(), Committed: true})
	return true
}

// CancelOperation restores op's baseline.
func (e *Editor) CancelOperation(op Operation) {
	e.history.CancelOperation(op)
	e.afterChange(op.Description(), true)
	e.dispatch(event.TypeOperationEnded, event.OperationEndedData{Description: op.Description(), Committed: false})
}

// HitTest returns the top-most entity under a screen cell.
func (e *Editor) HitTest(screen types.Point) (types.EntityID, bool) {
	ent, ok := e.layout.HitTest(e.ScreenToBoard(screen))
	return ent.ID, ok
}
