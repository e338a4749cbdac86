// internal/app/editor_api.go
package app

import (
	"errors"
	"fmt"

	"github.com/bethropolis/tideboard/internal/board"
	"github.com/bethropolis/tideboard/internal/core/edit"
	"github.com/bethropolis/tideboard/internal/event"
	"github.com/bethropolis/tideboard/internal/layout"
	"github.com/bethropolis/tideboard/internal/logger"
	"github.com/bethropolis/tideboard/internal/plugin"
	"github.com/bethropolis/tideboard/internal/types"
	"github.com/gdamore/tcell/v2"
)

// Ensure appEditorAPI implements the plugin.EditorAPI interface.
var _ plugin.EditorAPI = (*appEditorAPI)(nil)

// ErrBusy is returned by board edits attempted during a live operation.
var ErrBusy = errors.New("an interactive edit is in progress")

// appEditorAPI provides the concrete implementation of the EditorAPI interface.
type appEditorAPI struct {
	app *App
}

func newEditorAPI(app *App) *appEditorAPI {
	return &appEditorAPI{app: app}
}

// --- Board Access ---

func (api *appEditorAPI) GetBoard() board.Reader {
	return api.app.editor.GetBoard()
}

func (api *appEditorAPI) GetSelection() []types.EntityID {
	return api.app.editor.Selected()
}

func (api *appEditorAPI) LayoutResult() layout.Result {
	return api.app.editor.Layout().Result()
}

func (api *appEditorAPI) HistoryDepth() int {
	return api.app.editor.History().Depth()
}

func (api *appEditorAPI) HistoryCounts() (undo, redo int) {
	h := api.app.editor.History()
	return h.UndoCount(), h.RedoCount()
}

func (api *appEditorAPI) GetUndoDescriptions() []string {
	return api.app.editor.History().UndoDescriptions()
}

func (api *appEditorAPI) Busy() bool {
	return api.app.editor.Busy()
}

// --- Board Modification ---

func (api *appEditorAPI) submit(cmd edit.Command) error {
	if !api.app.editor.Submit(cmd) {
		return ErrBusy
	}
	api.app.requestRedraw()
	return nil
}

func (api *appEditorAPI) MoveEntities(delta types.Point, ids ...types.EntityID) error {
	return api.submit(edit.NewTranslate(api.app.editor.GetBoard(), delta, ids...))
}

func (api *appEditorAPI) RelabelEntity(id types.EntityID, label string) error {
	if _, ok := api.app.editor.GetBoard().Entity(id); !ok {
		return fmt.Errorf("no entity #%d", id)
	}
	return api.submit(edit.NewRelabel(id, label))
}

func (api *appEditorAPI) AddEntity(label string, pos types.Point) (types.EntityID, error) {
	add := edit.NewAdd(api.app.editor.GetBoard(), label, pos)
	if err := api.submit(add); err != nil {
		return 0, err
	}
	return add.IDs()[0], nil
}

func (api *appEditorAPI) SaveBoard(path string) error {
	return api.app.editor.SaveBoard(path)
}

// --- Event Bus Interaction ---

func (api *appEditorAPI) DispatchEvent(eventType event.Type, data interface{}) {
	api.app.eventManager.Dispatch(eventType, data)
}

func (api *appEditorAPI) SubscribeEvent(eventType event.Type, handler event.Handler) {
	api.app.eventManager.Subscribe(eventType, handler)
}

// --- Command Registration ---

func (api *appEditorAPI) RegisterCommand(name string, cmdFunc plugin.CommandFunc) error {
	return api.app.GetModeHandler().RegisterCommand(name, cmdFunc)
}

// --- Status Bar ---

func (api *appEditorAPI) SetStatusMessage(format string, args ...interface{}) {
	api.app.SetStatusMessage(format, args...)
}

// --- Theme Access ---

func (api *appEditorAPI) GetThemeStyle(styleName string) tcell.Style {
	return api.app.activeTheme.GetStyle(styleName)
}

// --- Configuration ---

func (api *appEditorAPI) GetPluginConfigValue(pluginName, key string) (any, bool) {
	v, ok := api.app.cfg.PluginValue(pluginName, key)
	if !ok {
		logger.DebugTagf("plugin", "Config [plugins.%s] %s not set", pluginName, key)
	}
	return v, ok
}

// --- Scheduling ---

func (api *appEditorAPI) Enqueue(fn func()) {
	api.app.post(fn)
}
