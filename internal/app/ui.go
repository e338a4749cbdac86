package app

import (
	"github.com/bethropolis/tideboard/internal/logger"
	"github.com/bethropolis/tideboard/internal/tui"
)

// drawEditor clears screen and redraws all components.
func (a *App) drawEditor() {
	a.updateStatusBarContent()

	screen := a.tuiManager.GetScreen()
	width, height := a.tuiManager.Size()
	ov := tui.Overlay{
		Editing:  a.modeHandler.EditingID(),
		Dragging: a.modeHandler.Dragging(),
	}
	logger.DebugTagf("draw", "drawEditor: Screen Size (%d x %d), origin %v", width, height, a.editor.ViewOrigin())

	a.tuiManager.Clear()
	tui.DrawBoard(a.tuiManager, a.editor, a.activeTheme, ov)
	a.statusBar.Draw(screen, width, height)
	tui.DrawCursor(a.tuiManager, a.editor, ov)
	a.tuiManager.Show()
}

// updateStatusBarContent pushes current editor state to the status bar component.
func (a *App) updateStatusBarContent() {
	b := a.editor.GetBoard()
	h := a.editor.History()
	a.statusBar.SetFileInfo(b.FilePath(), b.IsModified())
	a.statusBar.SetBoardInfo(len(a.editor.Selected()), b.Len(), len(a.editor.Layout().Result().Overlaps))
	a.statusBar.SetHistoryInfo(h.CanUndo().Get(), h.CanRedo().Get())
	a.statusBar.SetEditorMode(a.modeHandler.GetCurrentMode().String())
}

// SetStatusMessage shows a temporary message. Safe from any goroutine.
func (a *App) SetStatusMessage(format string, args ...interface{}) {
	a.statusBar.SetTemporaryMessage(format, args...)
	a.requestRedraw()
}

// requestRedraw asks the main loop to redraw. Safe from any goroutine.
func (a *App) requestRedraw() {
	a.post(redrawToken{})
}
