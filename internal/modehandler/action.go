package modehandler

import (
	"errors"

	"github.com/bethropolis/tideboard/internal/board"
	"github.com/bethropolis/tideboard/internal/input"
	"github.com/bethropolis/tideboard/internal/logger"
)

// executeAction handles actions when in ModeNormal.
func (mh *ModeHandler) executeAction(actionEvent input.ActionEvent) bool {
	actionProcessed := true
	action := actionEvent.Action

	switch action {
	case input.ActionEnterCommandMode:
		mh.setMode(ModeCommand)
		mh.cmdBuffer = ""
		mh.statusBar.SetInput(":")

	case input.ActionQuit: // Esc, Ctrl+C, q
		switch {
		case len(mh.editor.Selected()) > 0:
			mh.editor.ClearSelection()
		case mh.editor.GetBoard().IsModified() && !mh.forceQuitPending:
			mh.statusBar.SetTemporaryMessage("Unsaved changes! Press ESC again or Ctrl+Q to force quit.")
			mh.forceQuitPending = true
			actionProcessed = false
		default:
			mh.Quit()
			actionProcessed = false
		}
	case input.ActionForceQuit:
		mh.Quit()
		actionProcessed = false

	case input.ActionSave:
		mh.save("")

	case input.ActionSelectNext:
		actionProcessed = mh.editor.SelectNext()
	case input.ActionSelectPrev:
		actionProcessed = mh.editor.SelectPrev()

	case input.ActionNudgeUp:
		actionProcessed = mh.nudge(0, -1)
	case input.ActionNudgeDown:
		actionProcessed = mh.nudge(0, 1)
	case input.ActionNudgeLeft:
		actionProcessed = mh.nudge(-1, 0)
	case input.ActionNudgeRight:
		actionProcessed = mh.nudge(1, 0)

	case input.ActionPanUp:
		mh.editor.Pan(0, -panStepY)
	case input.ActionPanDown:
		mh.editor.Pan(0, panStepY)
	case input.ActionPanLeft:
		mh.editor.Pan(-panStepX, 0)
	case input.ActionPanRight:
		mh.editor.Pan(panStepX, 0)

	case input.ActionAddEntity:
		id, ok := mh.editor.AddEntity("")
		if !ok {
			actionProcessed = false
			break
		}
		mh.startRetype(id)

	case input.ActionDeleteEntity:
		if n := mh.editor.DeleteSelected(); n > 0 {
			mh.statusBar.SetTemporaryMessage("Removed %d entities", n)
		} else {
			mh.statusBar.SetTemporaryMessage("Nothing selected")
			actionProcessed = false
		}

	case input.ActionRetype, input.ActionConfirm:
		id, ok := mh.editor.Primary()
		if !ok {
			mh.statusBar.SetTemporaryMessage("Nothing selected")
			actionProcessed = false
			break
		}
		mh.startRetype(id)

	case input.ActionYank:
		copied, err := mh.editor.YankLabel()
		switch {
		case !copied:
			mh.statusBar.SetTemporaryMessage("Nothing selected to copy")
			actionProcessed = false
		case err != nil:
			mh.statusBar.SetTemporaryMessage("Copied to internal clipboard only: %v", err)
		default:
			mh.statusBar.SetTemporaryMessage("Label copied to clipboard")
		}

	case input.ActionPaste:
		pasted, err := mh.editor.PasteLabel()
		if err != nil {
			mh.statusBar.SetTemporaryMessage("Paste failed: %v", err)
			logger.Debugf("Paste error: %v", err)
			actionProcessed = false
		} else if !pasted {
			mh.statusBar.SetTemporaryMessage("Nothing to paste into")
			actionProcessed = false
		}

	case input.ActionUndo:
		if !mh.editor.Undo() {
			mh.statusBar.SetTemporaryMessage("Nothing to undo")
			actionProcessed = false
		}
	case input.ActionRedo:
		if !mh.editor.Redo() {
			mh.statusBar.SetTemporaryMessage("Nothing to redo")
			actionProcessed = false
		}

	default:
		actionProcessed = false
	}

	if action != input.ActionQuit && action != input.ActionUnknown && actionProcessed {
		mh.forceQuitPending = false
	}
	return actionProcessed
}

func (mh *ModeHandler) nudge(dx, dy int) bool {
	if !mh.editor.Nudge(dx, dy) {
		mh.statusBar.SetTemporaryMessage("Nothing selected")
		return false
	}
	return true
}

// save writes the board, to path if given.
func (mh *ModeHandler) save(path string) error {
	err := mh.editor.SaveBoard(path)
	switch {
	case errors.Is(err, board.ErrNoFilePath):
		mh.statusBar.SetTemporaryMessage("No file name (use :w <path>)")
	case err != nil:
		mh.statusBar.SetTemporaryMessage("Save FAILED: %v", err)
	default:
		mh.statusBar.SetTemporaryMessage("Board saved to %s", mh.editor.GetBoard().FilePath())
	}
	return err
}
