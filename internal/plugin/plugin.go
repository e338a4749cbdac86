// internal/plugin/plugin.go
package plugin

import (
	"github.com/bethropolis/tideboard/internal/board"
	"github.com/bethropolis/tideboard/internal/event"
	"github.com/bethropolis/tideboard/internal/layout"
	"github.com/bethropolis/tideboard/internal/types"
	"github.com/gdamore/tcell/v2"
)

// CommandFunc defines the signature for commands registered by plugins.
// It takes arguments (e.g., from user input) and returns an error.
type CommandFunc func(args []string) error

// EditorAPI defines the methods plugins can use to interact with the editor.
// Edits made through it are recorded in the undo history like user edits.
type EditorAPI interface {
	// --- Board Access (Read-Only) ---
	GetBoard() board.Reader
	GetSelection() []types.EntityID
	LayoutResult() layout.Result
	HistoryDepth() int
	HistoryCounts() (undo, redo int)
	GetUndoDescriptions() []string // most recent first
	Busy() bool                    // a drag or retype is in progress

	// --- Board Modification ---
	MoveEntities(delta types.Point, ids ...types.EntityID) error
	RelabelEntity(id types.EntityID, label string) error
	AddEntity(label string, pos types.Point) (types.EntityID, error)
	SaveBoard(path string) error // empty path saves to the board's own path

	// --- Event Bus Interaction ---
	DispatchEvent(eventType event.Type, data interface{})
	SubscribeEvent(eventType event.Type, handler event.Handler)

	// --- Command Registration ---
	RegisterCommand(name string, cmdFunc CommandFunc) error

	// --- Status Bar ---
	SetStatusMessage(format string, args ...interface{})

	// --- Theme Access ---
	GetThemeStyle(styleName string) tcell.Style

	// --- Configuration ---
	// GetPluginConfigValue reads [plugins.<plugin>] <key> from the config file.
	GetPluginConfigValue(pluginName, key string) (any, bool)

	// Enqueue runs fn on the UI goroutine. Plugins with their own goroutines
	// must use it before touching the board.
	Enqueue(fn func())
}

// Plugin defines the interface that all plugins must implement.
type Plugin interface {
	// Name returns the unique identifier name of the plugin.
	Name() string

	// Initialize is called once when the plugin is loaded.
	// Used for setup, subscribing to events, registering commands.
	Initialize(api EditorAPI) error

	// Shutdown is called once when the editor is closing.
	Shutdown() error
}
