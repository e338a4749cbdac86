package modehandler

import (
	"github.com/bethropolis/tideboard/internal/core/edit"
	"github.com/bethropolis/tideboard/internal/input"
	"github.com/bethropolis/tideboard/internal/types"
	"github.com/gdamore/tcell/v2"
)

// pressNormal handles a primary-button press in Normal mode. Ctrl+click
// toggles selection; a plain press on an entity starts dragging the
// selection; a press on empty space clears it.
func (mh *ModeHandler) pressNormal(screen types.Point, mods tcell.ModMask) bool {
	id, hit := mh.editor.HitTest(screen)
	if !hit {
		mh.mouse.Reset()
		if len(mh.editor.Selected()) == 0 {
			return false
		}
		mh.editor.ClearSelection()
		return true
	}
	if mods&tcell.ModCtrl != 0 {
		mh.mouse.Reset()
		mh.editor.ToggleSelect(id)
		return true
	}
	if !mh.editor.IsSelected(id) {
		mh.editor.Select(id)
	}

	mh.drag = edit.NewDrag(mh.editor.Selected()...)
	mh.dragAnchor = mh.editor.ScreenToBoard(screen)
	mh.editor.BeginOperation(mh.drag)
	mh.setMode(ModeDrag)
	return true
}

// updateDrag moves the dragged entities so they follow the pointer.
func (mh *ModeHandler) updateDrag(screen types.Point) bool {
	mh.drag.SetOffset(mh.editor.ScreenToBoard(screen).Sub(mh.dragAnchor))
	mh.editor.UpdateOperation(mh.drag)
	return true
}

// finishDrag commits the drag at the release position.
func (mh *ModeHandler) finishDrag(screen types.Point) bool {
	mh.drag.SetOffset(mh.editor.ScreenToBoard(screen).Sub(mh.dragAnchor))
	op := mh.drag
	mh.drag = nil
	mh.setMode(ModeNormal)
	mh.editor.FinishOperation(op)
	return true
}

// handleActionDrag handles keys while dragging. Esc puts everything back.
func (mh *ModeHandler) handleActionDrag(actionEvent input.ActionEvent) bool {
	if actionEvent.Action != input.ActionQuit {
		return false
	}
	mh.cancelDrag()
	mh.statusBar.SetTemporaryMessage("Drag cancelled")
	return true
}

func (mh *ModeHandler) cancelDrag() {
	op := mh.drag
	mh.drag = nil
	mh.mouse.Reset()
	mh.setMode(ModeNormal)
	mh.editor.CancelOperation(op)
}
