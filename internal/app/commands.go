package app

import (
	"github.com/bethropolis/tideboard/internal/commands"
	"github.com/bethropolis/tideboard/internal/theme"
	"github.com/bethropolis/tideboard/internal/types"
)

// registerAppCommands registers the built-in ':' commands.
func registerAppCommands(a *App) {
	commands.RegisterAppCommands(a.editorAPI, appHost{a})
}

// appHost gives built-in commands the app-level actions plugins do not get.
type appHost struct {
	app *App
}

var _ commands.AppAPI = appHost{}

func (h appHost) Quit(force bool) error { return h.app.Quit(force) }

func (h appHost) Undo() bool { return h.app.editor.Undo() }

func (h appHost) Redo() bool { return h.app.editor.Redo() }

func (h appHost) AddNearSelection(label string) (types.EntityID, bool) {
	return h.app.editor.AddEntity(label)
}

func (h appHost) GetTheme() *theme.Theme { return h.app.activeTheme }

func (h appHost) LoadTheme(path string) error {
	t, err := theme.LoadThemeFromFile(path)
	if err != nil {
		return err
	}
	h.app.activeTheme = t
	theme.SetCurrentTheme(t)
	return nil
}
