package modehandler

import (
	"testing"

	"github.com/bethropolis/tideboard/internal/board"
	"github.com/bethropolis/tideboard/internal/core"
	"github.com/bethropolis/tideboard/internal/event"
	"github.com/bethropolis/tideboard/internal/input"
	"github.com/bethropolis/tideboard/internal/schedule"
	"github.com/bethropolis/tideboard/internal/statusbar"
	"github.com/bethropolis/tideboard/internal/types"
	"github.com/gdamore/tcell/v2"
)

type fixture struct {
	mh     *ModeHandler
	editor *core.Editor
	quit   chan struct{}
}

func newFixture(t *testing.T, entities ...board.Entity) *fixture {
	t.Helper()
	b := board.New()
	for _, e := range entities {
		b.Insert(e, -1)
	}
	ed := core.NewEditor(b, schedule.NewImmediate(), 20)
	ed.SetViewSize(80, 25)
	quit := make(chan struct{})
	mh := New(Config{
		Editor:         ed,
		InputProcessor: input.NewInputProcessor(),
		EventManager:   event.NewManager(),
		StatusBar:      statusbar.New(statusbar.DefaultConfig()),
		QuitSignal:     quit,
	})
	return &fixture{mh: mh, editor: ed, quit: quit}
}

func defaultEntities() []board.Entity {
	return []board.Entity{
		{ID: 1, Label: "alpha", Pos: types.Point{X: 10, Y: 10}},
		{ID: 2, Label: "beta", Pos: types.Point{X: 30, Y: 2}},
	}
}

func (f *fixture) keys(s string) {
	for _, r := range s {
		f.mh.HandleKeyEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
}

func (f *fixture) key(k tcell.Key) {
	f.mh.HandleKeyEvent(tcell.NewEventKey(k, 0, tcell.ModNone))
}

func (f *fixture) mouse(x, y int, buttons tcell.ButtonMask) {
	f.mh.HandleMouseEvent(tcell.NewEventMouse(x, y, buttons, tcell.ModNone))
}

func (f *fixture) label(id types.EntityID) string {
	l, _ := f.editor.GetBoard().Label(id)
	return l
}

func (f *fixture) pos(id types.EntityID) types.Point {
	p, _ := f.editor.GetBoard().Position(id)
	return p
}

func TestCommandModeExecutes(t *testing.T) {
	f := newFixture(t, defaultEntities()...)
	var got []string
	if err := f.mh.RegisterCommand("tag", func(args []string) error {
		got = args
		return nil
	}); err != nil {
		t.Fatal(err)
	}
	if err := f.mh.RegisterCommand("tag", func([]string) error { return nil }); err == nil {
		t.Error("duplicate command should be rejected")
	}

	f.keys(":tag one two")
	if f.mh.GetCurrentMode() != ModeCommand {
		t.Fatalf("mode = %v, want COMMAND", f.mh.GetCurrentMode())
	}
	if buf := f.mh.GetCommandBuffer(); buf != "tag one two" {
		t.Errorf("command buffer = %q", buf)
	}
	f.key(tcell.KeyEnter)

	if f.mh.GetCurrentMode() != ModeNormal {
		t.Errorf("mode = %v, want NORMAL after Enter", f.mh.GetCurrentMode())
	}
	if len(got) != 2 || got[0] != "one" || got[1] != "two" {
		t.Errorf("command args = %v, want [one two]", got)
	}
}

func TestCommandModeBackspaceExits(t *testing.T) {
	f := newFixture(t)
	f.keys(":ab")
	f.key(tcell.KeyBackspace2)
	if buf := f.mh.GetCommandBuffer(); buf != "a" {
		t.Errorf("command buffer = %q, want %q", buf, "a")
	}
	f.key(tcell.KeyBackspace2)
	f.key(tcell.KeyBackspace2)
	if f.mh.GetCurrentMode() != ModeNormal {
		t.Errorf("mode = %v, want NORMAL after backspacing an empty line", f.mh.GetCurrentMode())
	}
}

func TestRetypeCommitAndCancel(t *testing.T) {
	f := newFixture(t, defaultEntities()...)
	f.editor.Select(1)

	f.keys("e")
	if f.mh.GetCurrentMode() != ModeRetype || f.mh.EditingID() != 1 {
		t.Fatalf("mode = %v editing = %d, want RETYPE on 1", f.mh.GetCurrentMode(), f.mh.EditingID())
	}
	// Letters bound in Normal mode are plain text here.
	f.keys("xu")
	if got := f.label(1); got != "alphaxu" {
		t.Errorf("live label = %q, want %q", got, "alphaxu")
	}
	f.key(tcell.KeyBackspace2)
	f.key(tcell.KeyEnter)

	if got := f.label(1); got != "alphax" {
		t.Errorf("label = %q, want %q", got, "alphax")
	}
	if n := f.editor.History().UndoCount(); n != 1 {
		t.Errorf("UndoCount() = %d, want 1", n)
	}

	f.keys("eqq")
	f.key(tcell.KeyEscape)
	if got := f.label(1); got != "alphax" {
		t.Errorf("label after cancel = %q, want %q", got, "alphax")
	}
	if n := f.editor.History().UndoCount(); n != 1 {
		t.Errorf("cancelled retype recorded history: UndoCount() = %d", n)
	}
	if f.mh.GetCurrentMode() != ModeNormal || f.mh.EditingID() != 0 {
		t.Errorf("mode = %v editing = %d after cancel", f.mh.GetCurrentMode(), f.mh.EditingID())
	}
}

func TestAddEntersRetype(t *testing.T) {
	f := newFixture(t, defaultEntities()...)
	f.keys("a")
	id := f.mh.EditingID()
	if id == 0 {
		t.Fatal("adding should start a retype of the new entity")
	}
	f.keys("hi")
	f.key(tcell.KeyEnter)

	if got := f.label(id); got != "hi" {
		t.Errorf("label = %q, want %q", got, "hi")
	}
	if got := f.editor.History().UndoDescriptions(); len(got) != 2 {
		t.Errorf("UndoDescriptions() = %v, want add and relabel", got)
	}
}

func TestMouseDragCommits(t *testing.T) {
	f := newFixture(t, defaultEntities()...)

	f.mouse(11, 11, tcell.Button1)
	if f.mh.GetCurrentMode() != ModeDrag || !f.mh.Dragging() {
		t.Fatalf("mode = %v, want DRAG after pressing on an entity", f.mh.GetCurrentMode())
	}
	if got := f.editor.Selected(); len(got) != 1 || got[0] != 1 {
		t.Errorf("Selected() = %v, want [1]", got)
	}

	f.mouse(14, 12, tcell.Button1)
	if got := f.pos(1); got != (types.Point{X: 13, Y: 11}) {
		t.Errorf("live position = %v, want (13,11)", got)
	}
	f.mouse(15, 13, tcell.ButtonNone)

	if got := f.pos(1); got != (types.Point{X: 14, Y: 12}) {
		t.Errorf("position = %v, want (14,12)", got)
	}
	if f.mh.GetCurrentMode() != ModeNormal {
		t.Errorf("mode = %v, want NORMAL after release", f.mh.GetCurrentMode())
	}

	f.keys("u")
	if got := f.pos(1); got != (types.Point{X: 10, Y: 10}) {
		t.Errorf("after undo position = %v, want (10,10)", got)
	}
}

func TestMouseDragEscapeCancels(t *testing.T) {
	f := newFixture(t, defaultEntities()...)

	f.mouse(11, 11, tcell.Button1)
	f.mouse(20, 20, tcell.Button1)
	f.key(tcell.KeyEscape)

	if got := f.pos(1); got != (types.Point{X: 10, Y: 10}) {
		t.Errorf("position = %v, want the baseline (10,10)", got)
	}
	if f.editor.History().CanUndo().Get() {
		t.Error("cancelled drag must not be recorded")
	}
	// The release after a cancel is ignored.
	f.mouse(20, 20, tcell.ButtonNone)
	if f.mh.GetCurrentMode() != ModeNormal {
		t.Errorf("mode = %v, want NORMAL", f.mh.GetCurrentMode())
	}
}

func TestClickSelection(t *testing.T) {
	f := newFixture(t, defaultEntities()...)

	f.mh.HandleMouseEvent(tcell.NewEventMouse(31, 3, tcell.Button1, tcell.ModCtrl))
	f.mouse(31, 3, tcell.ButtonNone)
	f.mh.HandleMouseEvent(tcell.NewEventMouse(11, 11, tcell.Button1, tcell.ModCtrl))
	f.mouse(11, 11, tcell.ButtonNone)
	if got := f.editor.Selected(); len(got) != 2 {
		t.Fatalf("Selected() = %v, want both entities", got)
	}

	f.mouse(0, 0, tcell.Button1)
	f.mouse(0, 0, tcell.ButtonNone)
	if got := f.editor.Selected(); len(got) != 0 {
		t.Errorf("Selected() = %v, want empty after clicking empty space", got)
	}
}

func TestQuit(t *testing.T) {
	closed := func(ch chan struct{}) bool {
		select {
		case <-ch:
			return true
		default:
			return false
		}
	}

	t.Run("clean board quits", func(t *testing.T) {
		f := newFixture(t)
		f.key(tcell.KeyEscape)
		if !closed(f.quit) {
			t.Error("quit signal not sent")
		}
		f.mh.HandleKeyEvent(tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)) // a second quit must not panic
	})

	t.Run("modified board asks first", func(t *testing.T) {
		f := newFixture(t, defaultEntities()...)
		f.key(tcell.KeyEscape)
		if closed(f.quit) {
			t.Fatal("modified board should not quit on the first Esc")
		}
		f.key(tcell.KeyEscape)
		if !closed(f.quit) {
			t.Error("second Esc should quit")
		}
	})

	t.Run("escape clears selection first", func(t *testing.T) {
		f := newFixture(t, defaultEntities()...)
		f.editor.Select(1)
		f.key(tcell.KeyEscape)
		if closed(f.quit) || len(f.editor.Selected()) != 0 {
			t.Error("Esc with a selection should only clear it")
		}
	})
}

func TestDropLastGrapheme(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"abc", "ab"},
		{"a", ""},
		{"", ""},
		{"aé", "a"},
		{"a🇩🇪", "a"},
	}
	for _, tt := range tests {
		if got := dropLastGrapheme(tt.in); got != tt.want {
			t.Errorf("dropLastGrapheme(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
