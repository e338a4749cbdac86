// internal/core/editor.go
package core

import (
	"github.com/bethropolis/tideboard/internal/board"
	"github.com/bethropolis/tideboard/internal/clipboard"
	"github.com/bethropolis/tideboard/internal/config"
	"github.com/bethropolis/tideboard/internal/core/edit"
	"github.com/bethropolis/tideboard/internal/event"
	"github.com/bethropolis/tideboard/internal/layout"
	"github.com/bethropolis/tideboard/internal/logger"
	"github.com/bethropolis/tideboard/internal/schedule"
	"github.com/bethropolis/tideboard/internal/types"
)

// Editor is one editing session over a board: the document, its history,
// the derived layout, the selection and the viewport.
type Editor struct {
	board   *board.Board
	history *edit.Handler
	layout  *layout.Engine

	clipboard    *clipboard.Manager
	eventManager *event.Manager
	NudgeStep    int

	// Selection in selection order; the first entry is the primary.
	selection []types.EntityID

	// Board cell shown at the top-left of the view.
	viewOrigin types.Point
	viewWidth  int
	viewHeight int
}

// NewEditor creates an editor over b. Edits request layout through sched;
// depth bounds the undo history.
func NewEditor(b *board.Board, sched schedule.Scheduler, depth int) *Editor {
	e := &Editor{
		board:     b,
		history:   edit.NewHandler(b, sched, depth),
		layout:    layout.NewEngine(b),
		clipboard: clipboard.NewManager(false),
		NudgeStep: config.DefaultNudgeStep,
	}

	notify := func(bool) {
		e.dispatch(event.TypeHistoryChanged, event.HistoryChangedData{
			CanUndo: e.history.CanUndo().Get(),
			CanRedo: e.history.CanRedo().Get(),
		})
	}
	e.history.CanUndo().Subscribe(notify)
	e.history.CanRedo().Subscribe(notify)

	e.layout.OnUpdate(func(r layout.Result) {
		e.dispatch(event.TypeLayoutUpdated, event.LayoutUpdatedData{
			Run:      r.Run,
			Boxes:    len(r.Boxes),
			Overlaps: len(r.Overlaps),
		})
	})
	return e
}

// SetEventManager sets the event manager for dispatching events.
func (e *Editor) SetEventManager(mgr *event.Manager) {
	e.eventManager = mgr
}

// SetClipboard replaces the clipboard used for yank and paste.
func (e *Editor) SetClipboard(c *clipboard.Manager) {
	if c != nil {
		e.clipboard = c
	}
}

func (e *Editor) dispatch(t event.Type, data interface{}) {
	if e.eventManager != nil {
		e.eventManager.Dispatch(t, data)
	}
}

// GetBoard returns the edited board.
func (e *Editor) GetBoard() *board.Board {
	return e.board
}

// GetEventManager returns the event manager, if set.
func (e *Editor) GetEventManager() *event.Manager {
	return e.eventManager
}

// History returns the command handler recording this session's edits.
func (e *Editor) History() *edit.Handler {
	return e.history
}

// Layout returns the layout engine. Its Recompute is the task to register
// under board.LayoutKey.
func (e *Editor) Layout() *layout.Engine {
	return e.layout
}

// SaveBoard writes the board to path, or to its own path when empty.
func (e *Editor) SaveBoard(path string) error {
	if err := e.board.Save(path); err != nil {
		return err
	}
	logger.Infof("Saved board to %s", e.board.FilePath())
	e.dispatch(event.TypeBoardSaved, event.BoardSavedData{FilePath: e.board.FilePath()})
	return nil
}
