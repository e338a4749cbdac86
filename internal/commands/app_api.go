package commands

import (
	"github.com/bethropolis/tideboard/internal/theme"
	"github.com/bethropolis/tideboard/internal/types"
)

// AppAPI exposes app-level actions that built-in commands need beyond
// what plugins get through plugin.EditorAPI.
type AppAPI interface {
	Quit(force bool) error
	Undo() bool
	Redo() bool
	AddNearSelection(label string) (types.EntityID, bool)

	GetTheme() *theme.Theme
	LoadTheme(path string) error
}
