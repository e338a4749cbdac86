package app

import (
	"github.com/bethropolis/tideboard/internal/event"
	"github.com/bethropolis/tideboard/internal/logger"
)

// subscribeEvents wires the app's own reactions to editor events.
func (a *App) subscribeEvents() {
	for _, t := range []event.Type{
		event.TypeBoardModified,
		event.TypeBoardSaved,
		event.TypeSelectionChanged,
		event.TypeHistoryChanged,
		event.TypeLayoutUpdated,
	} {
		a.eventManager.Subscribe(t, a.handleStateChangedForStatus)
	}
	a.eventManager.Subscribe(event.TypeOperationEnded, a.handleOperationEnded)
}

// handleStateChangedForStatus refreshes the status bar from editor state.
func (a *App) handleStateChangedForStatus(e event.Event) bool {
	a.updateStatusBarContent()
	return false
}

// handleOperationEnded logs how a live operation ended.
func (a *App) handleOperationEnded(e event.Event) bool {
	if data, ok := e.Data.(event.OperationEndedData); ok {
		logger.DebugTagf("history", "App: operation %q ended, committed=%v", data.Description, data.Committed)
	}
	return false
}
