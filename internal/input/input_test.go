package input

import (
	"testing"

	"github.com/bethropolis/tideboard/internal/types"
	"github.com/gdamore/tcell/v2"
)

func TestProcessEventNormalBindings(t *testing.T) {
	p := NewInputProcessor()
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want ActionEvent
	}{
		{"arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), ActionEvent{Action: ActionNudgeLeft}},
		{"shift arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModShift), ActionEvent{Action: ActionPanUp}},
		{"ctrl s", tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl), ActionEvent{Action: ActionSave}},
		{"ctrl r", tcell.NewEventKey(tcell.KeyCtrlR, 0, tcell.ModCtrl), ActionEvent{Action: ActionRedo}},
		{"undo rune", tcell.NewEventKey(tcell.KeyRune, 'u', tcell.ModNone), ActionEvent{Action: ActionUndo, Rune: 'u'}},
		{"redo rune", tcell.NewEventKey(tcell.KeyRune, 'U', tcell.ModShift), ActionEvent{Action: ActionRedo, Rune: 'U'}},
		{"colon", tcell.NewEventKey(tcell.KeyRune, ':', tcell.ModNone), ActionEvent{Action: ActionEnterCommandMode, Rune: ':'}},
		{"unbound rune", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), ActionEvent{Action: ActionInsertRune, Rune: 'z'}},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionEvent{Action: ActionQuit}},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), ActionEvent{Action: ActionConfirm}},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), ActionEvent{Action: ActionSelectNext}},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModAlt), ActionEvent{Action: ActionUnknown}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.ProcessEvent(tt.ev); got != tt.want {
				t.Errorf("ProcessEvent() = %+v (%v), want %+v (%v)", got, got.Action, tt.want, tt.want.Action)
			}
		})
	}
}

func TestProcessTextEventInsertsBoundRunes(t *testing.T) {
	p := NewInputProcessor()
	for _, r := range "aeuqx:" {
		got := p.ProcessTextEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
		if got.Action != ActionInsertRune || got.Rune != r {
			t.Errorf("ProcessTextEvent(%q) = %+v, want insert", r, got)
		}
	}
	got := p.ProcessTextEvent(tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone))
	if got.Action != ActionDeleteCharBackward {
		t.Errorf("backspace = %v", got.Action)
	}
}

func TestMouseTracker(t *testing.T) {
	var m MouseTracker
	steps := []struct {
		x, y    int
		buttons tcell.ButtonMask
		want    MouseKind
	}{
		{1, 1, tcell.ButtonNone, MouseNone},
		{2, 3, tcell.Button1, MousePress},
		{2, 3, tcell.Button1, MouseNone},
		{4, 3, tcell.Button1, MouseDrag},
		{6, 5, tcell.Button1, MouseDrag},
		{6, 5, tcell.ButtonNone, MouseRelease},
		{7, 5, tcell.ButtonNone, MouseNone},
	}
	for i, s := range steps {
		got := m.Process(tcell.NewEventMouse(s.x, s.y, s.buttons, tcell.ModNone))
		if got.Kind != s.want {
			t.Fatalf("step %d: kind = %v, want %v", i, got.Kind, s.want)
		}
		if got.Pos != (types.Point{X: s.x, Y: s.y}) {
			t.Fatalf("step %d: pos = %v", i, got.Pos)
		}
	}
	if m.Dragging() {
		t.Error("tracker should not be dragging after release")
	}
}
