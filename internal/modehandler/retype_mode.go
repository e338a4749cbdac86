package modehandler

import (
	"github.com/bethropolis/tideboard/internal/core/edit"
	"github.com/bethropolis/tideboard/internal/input"
	"github.com/bethropolis/tideboard/internal/types"
)

// startRetype begins a live label edit of id.
func (mh *ModeHandler) startRetype(id types.EntityID) {
	mh.retype = edit.NewRetype(id)
	mh.editor.BeginOperation(mh.retype)
	mh.setMode(ModeRetype)
	mh.showRetype()
}

// handleActionRetype handles actions when in ModeRetype. Every keystroke
// updates the board; Enter commits and Esc restores the old label.
func (mh *ModeHandler) handleActionRetype(actionEvent input.ActionEvent) bool {
	switch actionEvent.Action {
	case input.ActionInsertRune:
		mh.retype.Insert(string(actionEvent.Rune))
		mh.editor.UpdateOperation(mh.retype)
		mh.showRetype()

	case input.ActionDeleteCharBackward:
		if !mh.retype.Backspace() {
			return false
		}
		mh.editor.UpdateOperation(mh.retype)
		mh.showRetype()

	case input.ActionConfirm:
		op := mh.retype
		mh.endRetype()
		if mh.editor.FinishOperation(op) {
			mh.statusBar.SetTemporaryMessage("%s", op.Description())
		}

	case input.ActionQuit:
		mh.cancelRetype()

	default:
		return false
	}
	return true
}

// cancelRetype restores the label and returns to Normal mode.
func (mh *ModeHandler) cancelRetype() {
	op := mh.retype
	mh.endRetype()
	mh.editor.CancelOperation(op)
}

func (mh *ModeHandler) endRetype() {
	mh.retype = nil
	mh.setMode(ModeNormal)
	mh.statusBar.SetInput("")
}

func (mh *ModeHandler) showRetype() {
	mh.statusBar.SetInput("Label: " + mh.retype.Text())
}
