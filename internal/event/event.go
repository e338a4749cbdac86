// internal/event/event.go
package event

import (
	"github.com/bethropolis/tideboard/internal/types"
	"github.com/gdamore/tcell/v2"
)

// Type identifies the kind of event.
type Type int

// Define specific event types.
const (
	TypeUnknown Type = iota

	// Board events
	TypeBoardLoaded   // Fired after a board is loaded
	TypeBoardModified // Fired when board content changes (command, undo/redo, live operation)
	TypeBoardSaved    // Fired after a board is saved
	TypeSelectionChanged

	// History events
	TypeHistoryChanged // Fired when undo or redo availability changes
	TypeOperationBegan // Fired when a live operation (drag, retype) starts
	TypeOperationEnded // Fired when a live operation is finished or cancelled

	// Derived state
	TypeLayoutUpdated // Fired after the coalesced layout recompute ran

	// Input Events (potentially useful for plugins reacting to raw keys)
	TypeKeyPressed

	// Application Lifecycle Events
	TypeAppReady
	TypeAppQuit
)

func (t Type) String() string {
	switch t {
	case TypeBoardLoaded:
		return "BoardLoaded"
	case TypeBoardModified:
		return "BoardModified"
	case TypeBoardSaved:
		return "BoardSaved"
	case TypeSelectionChanged:
		return "SelectionChanged"
	case TypeHistoryChanged:
		return "HistoryChanged"
	case TypeOperationBegan:
		return "OperationBegan"
	case TypeOperationEnded:
		return "OperationEnded"
	case TypeLayoutUpdated:
		return "LayoutUpdated"
	case TypeKeyPressed:
		return "KeyPressed"
	case TypeAppReady:
		return "AppReady"
	case TypeAppQuit:
		return "AppQuit"
	default:
		return "Unknown"
	}
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// BoardLoadedData contains info about the loaded board.
type BoardLoadedData struct {
	FilePath string
	Entities int
}

// BoardModifiedData describes a change to the board.
type BoardModifiedData struct {
	Description string // history description, or the operation's while live
	Live        bool   // true for intermediate operation updates
}

// BoardSavedData contains info about the saved board.
type BoardSavedData struct {
	FilePath string
}

// SelectionChangedData carries the new selection, in selection order.
type SelectionChangedData struct {
	Selected []types.EntityID
}

// HistoryChangedData mirrors the handler's undo/redo availability.
type HistoryChangedData struct {
	CanUndo bool
	CanRedo bool
}

// OperationBeganData names the operation that started.
type OperationBeganData struct {
	Description string
}

// OperationEndedData reports how a live operation ended.
type OperationEndedData struct {
	Description string
	Committed   bool
}

// LayoutUpdatedData summarises the recomputed layout.
type LayoutUpdatedData struct {
	Run      int
	Boxes    int
	Overlaps int
}

// KeyPressedData contains the raw tcell key event.
type KeyPressedData struct {
	KeyEvent *tcell.EventKey
}

// AppQuitData could contain exit code or reason later.
type AppQuitData struct{}

// AppReadyData could contain initial config or state later.
type AppReadyData struct{}
