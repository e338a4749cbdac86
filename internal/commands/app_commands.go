package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bethropolis/tideboard/internal/board"
	"github.com/bethropolis/tideboard/internal/logger"
	"github.com/bethropolis/tideboard/internal/plugin"
)

// historyPreview caps how many entries :history lists.
const historyPreview = 5

// RegisterAppCommands registers built-in commands like :w and :theme.
func RegisterAppCommands(api plugin.EditorAPI, app AppAPI) {
	register(api, map[string]plugin.CommandFunc{
		"w":       writeCmd(api),
		"q":       quitCmd(app, false),
		"q!":      quitCmd(app, true),
		"wq":      writeQuitCmd(api, app),
		"undo":    undoCmd(api, app),
		"redo":    redoCmd(api, app),
		"add":     addCmd(api, app),
		"history": historyCmd(api),
	})
	RegisterThemeCommands(api, app)
}

// RegisterThemeCommands registers only theme-related commands
func RegisterThemeCommands(api plugin.EditorAPI, app AppAPI) {
	register(api, map[string]plugin.CommandFunc{
		"theme": func(args []string) error {
			if len(args) == 0 {
				api.SetStatusMessage("Current theme: %s", app.GetTheme().Name)
				return nil
			}
			path := strings.Join(args, " ")
			if err := app.LoadTheme(path); err != nil {
				return err
			}
			api.SetStatusMessage("Theme set to: %s", app.GetTheme().Name)
			return nil
		},
	})
}

func register(api plugin.EditorAPI, cmds map[string]plugin.CommandFunc) {
	for name, fn := range cmds {
		if err := api.RegisterCommand(name, fn); err != nil {
			logger.Warnf("Failed to register ':%s' command: %v", name, err)
		}
	}
}

func save(api plugin.EditorAPI, args []string) error {
	path := strings.Join(args, " ")
	err := api.SaveBoard(path)
	if errors.Is(err, board.ErrNoFilePath) {
		return fmt.Errorf("no file name (use :w <path>)")
	}
	if err != nil {
		return err
	}
	api.SetStatusMessage("Board saved to %s", api.GetBoard().FilePath())
	return nil
}

func writeCmd(api plugin.EditorAPI) plugin.CommandFunc {
	return func(args []string) error {
		return save(api, args)
	}
}

func quitCmd(app AppAPI, force bool) plugin.CommandFunc {
	return func(args []string) error {
		return app.Quit(force)
	}
}

func writeQuitCmd(api plugin.EditorAPI, app AppAPI) plugin.CommandFunc {
	return func(args []string) error {
		if err := save(api, args); err != nil {
			return err
		}
		return app.Quit(false)
	}
}

func undoCmd(api plugin.EditorAPI, app AppAPI) plugin.CommandFunc {
	return func(args []string) error {
		if !app.Undo() {
			return fmt.Errorf("nothing to undo")
		}
		api.SetStatusMessage("Undone")
		return nil
	}
}

func redoCmd(api plugin.EditorAPI, app AppAPI) plugin.CommandFunc {
	return func(args []string) error {
		if !app.Redo() {
			return fmt.Errorf("nothing to redo")
		}
		api.SetStatusMessage("Redone")
		return nil
	}
}

func addCmd(api plugin.EditorAPI, app AppAPI) plugin.CommandFunc {
	return func(args []string) error {
		label := strings.Join(args, " ")
		id, ok := app.AddNearSelection(label)
		if !ok {
			return fmt.Errorf("cannot add while an edit is in progress")
		}
		api.SetStatusMessage("Added entity #%d", id)
		return nil
	}
}

func historyCmd(api plugin.EditorAPI) plugin.CommandFunc {
	return func(args []string) error {
		undo, redo := api.HistoryCounts()
		descs := api.GetUndoDescriptions()
		if len(descs) > historyPreview {
			descs = descs[:historyPreview]
		}
		msg := fmt.Sprintf("History %d/%d undo, %d redo", undo, api.HistoryDepth(), redo)
		if len(descs) > 0 {
			msg += ": " + strings.Join(descs, ", ")
		}
		api.SetStatusMessage("%s", msg)
		return nil
	}
}
