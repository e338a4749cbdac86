package input

import (
	"github.com/bethropolis/tideboard/internal/types"
	"github.com/gdamore/tcell/v2"
)

// MouseKind classifies a primary-button mouse event.
type MouseKind int

const (
	MouseNone    MouseKind = iota
	MousePress             // button went down
	MouseDrag              // moved with the button held
	MouseRelease           // button came up
)

func (k MouseKind) String() string {
	switch k {
	case MousePress:
		return "press"
	case MouseDrag:
		return "drag"
	case MouseRelease:
		return "release"
	default:
		return "none"
	}
}

// MouseEvent is a decoded mouse event in screen cells.
type MouseEvent struct {
	Kind MouseKind
	Pos  types.Point
}

// MouseTracker turns tcell's level-triggered button state into press, drag
// and release edges for the primary button.
type MouseTracker struct {
	down bool
	last types.Point
}

// Process decodes one tcell mouse event.
func (m *MouseTracker) Process(ev *tcell.EventMouse) MouseEvent {
	x, y := ev.Position()
	pos := types.Point{X: x, Y: y}
	pressed := ev.Buttons()&tcell.Button1 != 0

	switch {
	case pressed && !m.down:
		m.down = true
		m.last = pos
		return MouseEvent{Kind: MousePress, Pos: pos}
	case pressed && m.down:
		if pos == m.last {
			return MouseEvent{Kind: MouseNone, Pos: pos}
		}
		m.last = pos
		return MouseEvent{Kind: MouseDrag, Pos: pos}
	case !pressed && m.down:
		m.down = false
		return MouseEvent{Kind: MouseRelease, Pos: pos}
	}
	return MouseEvent{Kind: MouseNone, Pos: pos}
}

// Dragging reports whether the primary button is held.
func (m *MouseTracker) Dragging() bool {
	return m.down
}

// Reset forgets the button state, e.g. after a drag was cancelled by key.
func (m *MouseTracker) Reset() {
	m.down = false
}
