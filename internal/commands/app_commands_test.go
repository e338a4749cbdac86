package commands

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/bethropolis/tideboard/internal/board"
	"github.com/bethropolis/tideboard/internal/plugin"
	"github.com/bethropolis/tideboard/internal/theme"
	"github.com/bethropolis/tideboard/internal/types"
)

type fakeAPI struct {
	plugin.EditorAPI

	board    *board.Board
	commands map[string]plugin.CommandFunc
	saveErr  error
	saved    []string
	message  string
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{board: board.New(), commands: make(map[string]plugin.CommandFunc)}
}

func (f *fakeAPI) RegisterCommand(name string, fn plugin.CommandFunc) error {
	if _, ok := f.commands[name]; ok {
		return fmt.Errorf("command '%s' already registered", name)
	}
	f.commands[name] = fn
	return nil
}

func (f *fakeAPI) SaveBoard(path string) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, path)
	return nil
}

func (f *fakeAPI) GetBoard() board.Reader { return f.board }
func (f *fakeAPI) HistoryDepth() int { return 100 }
func (f *fakeAPI) HistoryCounts() (int, int) { return 2, 1 }
func (f *fakeAPI) GetUndoDescriptions() []string { return []string{"Move 1 entity", "Add entity"} }
func (f *fakeAPI) SetStatusMessage(format string, a ...any) { f.message = fmt.Sprintf(format, a...) }

type fakeApp struct {
	quits     []bool
	quitErr   error
	undoOK    bool
	added     []string
	themePath string
}

func (f *fakeApp) Quit(force bool) error {
	f.quits = append(f.quits, force)
	return f.quitErr
}
func (f *fakeApp) Undo() bool { return f.undoOK }
func (f *fakeApp) Redo() bool { return false }
func (f *fakeApp) AddNearSelection(label string) (types.EntityID, bool) {
	f.added = append(f.added, label)
	return types.EntityID(len(f.added)), true
}
func (f *fakeApp) GetTheme() *theme.Theme { return &theme.DevComfortDark }
func (f *fakeApp) LoadTheme(path string) error {
	f.themePath = path
	return nil
}

func setup(t *testing.T) (*fakeAPI, *fakeApp) {
	t.Helper()
	api, app := newFakeAPI(), &fakeApp{}
	RegisterAppCommands(api, app)
	return api, app
}

func run(t *testing.T, api *fakeAPI, name string, args ...string) error {
	t.Helper()
	fn, ok := api.commands[name]
	if !ok {
		t.Fatalf("command %q not registered", name)
	}
	return fn(args)
}

func TestRegisterAppCommands(t *testing.T) {
	api, _ := setup(t)
	for _, name := range []string{"w", "q", "q!", "wq", "undo", "redo", "add", "history", "theme"} {
		if _, ok := api.commands[name]; !ok {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestWrite(t *testing.T) {
	api, _ := setup(t)

	if err := run(t, api, "w", "out.toml"); err != nil {
		t.Fatalf("w: %v", err)
	}
	if len(api.saved) != 1 || api.saved[0] != "out.toml" {
		t.Errorf("saved = %v, want [out.toml]", api.saved)
	}

	api.saveErr = board.ErrNoFilePath
	err := run(t, api, "w")
	if err == nil || !strings.Contains(err.Error(), ":w <path>") {
		t.Errorf("w without path error = %v", err)
	}
}

func TestQuit(t *testing.T) {
	tests := []struct {
		cmd   string
		force bool
	}{
		{"q", false},
		{"q!", true},
	}
	for _, tt := range tests {
		t.Run(tt.cmd, func(t *testing.T) {
			api, app := setup(t)
			if err := run(t, api, tt.cmd); err != nil {
				t.Fatalf("%s: %v", tt.cmd, err)
			}
			if len(app.quits) != 1 || app.quits[0] != tt.force {
				t.Errorf("quits = %v, want [%v]", app.quits, tt.force)
			}
		})
	}
}

func TestWriteQuitStopsOnSaveError(t *testing.T) {
	api, app := setup(t)
	api.saveErr = errors.New("disk full")

	if err := run(t, api, "wq"); err == nil {
		t.Fatal("wq should fail when save fails")
	}
	if len(app.quits) != 0 {
		t.Error("wq should not quit after a failed save")
	}
}

func TestUndoRedo(t *testing.T) {
	api, app := setup(t)
	app.undoOK = true

	if err := run(t, api, "undo"); err != nil {
		t.Errorf("undo: %v", err)
	}
	if err := run(t, api, "redo"); err == nil {
		t.Error("redo with nothing to redo should fail")
	}
}

func TestAddJoinsArgs(t *testing.T) {
	api, app := setup(t)
	if err := run(t, api, "add", "two", "words"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if len(app.added) != 1 || app.added[0] != "two words" {
		t.Errorf("added = %q", app.added)
	}
	if api.message != "Added entity #1" {
		t.Errorf("message = %q", api.message)
	}
}

func TestHistory(t *testing.T) {
	api, _ := setup(t)
	if err := run(t, api, "history"); err != nil {
		t.Fatal(err)
	}
	want := "History 2/100 undo, 1 redo: Move 1 entity, Add entity"
	if api.message != want {
		t.Errorf("message = %q, want %q", api.message, want)
	}
}

func TestTheme(t *testing.T) {
	api, app := setup(t)

	if err := run(t, api, "theme"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(api.message, theme.DevComfortDark.Name) {
		t.Errorf("message = %q", api.message)
	}

	if err := run(t, api, "theme", "my", "theme.toml"); err != nil {
		t.Fatal(err)
	}
	if app.themePath != "my theme.toml" {
		t.Errorf("themePath = %q", app.themePath)
	}
}
