package core

import (
	"github.com/bethropolis/tideboard/internal/config"
	"github.com/bethropolis/tideboard/internal/layout"
	"github.com/bethropolis/tideboard/internal/types"
)

// SetViewSize updates the cached view dimensions. Called on resize or before drawing.
func (e *Editor) SetViewSize(width, height int) {
	e.viewWidth = width
	if height > config.StatusBarHeight {
		e.viewHeight = height - config.StatusBarHeight
	} else {
		e.viewHeight = 0
	}
}

// ViewSize returns the board area size in cells.
func (e *Editor) ViewSize() (int, int) {
	return e.viewWidth, e.viewHeight
}

// ViewOrigin returns the board cell drawn at the top-left of the view.
func (e *Editor) ViewOrigin() types.Point {
	return e.viewOrigin
}

// Pan scrolls the view by (dx, dy) cells.
func (e *Editor) Pan(dx, dy int) {
	e.viewOrigin = e.viewOrigin.Add(types.Point{X: dx, Y: dy})
}

// ScreenToBoard converts a screen cell to a board cell.
func (e *Editor) ScreenToBoard(p types.Point) types.Point {
	return p.Add(e.viewOrigin)
}

// BoardToScreen converts a board cell to a screen cell.
func (e *Editor) BoardToScreen(p types.Point) types.Point {
	return p.Sub(e.viewOrigin)
}

// ScrollToSelection pans just enough to bring the primary selection's box
// into view.
func (e *Editor) ScrollToSelection() {
	if e.viewWidth <= 0 || e.viewHeight <= 0 {
		return
	}
	id, ok := e.Primary()
	if !ok {
		return
	}
	ent, ok := e.board.Entity(id)
	if !ok {
		return
	}
	box := layout.Measure(ent)

	if box.Min.X < e.viewOrigin.X {
		e.viewOrigin.X = box.Min.X
	} else if box.Max.X > e.viewOrigin.X+e.viewWidth {
		e.viewOrigin.X = min(box.Max.X-e.viewWidth, box.Min.X)
	}
	if box.Min.Y < e.viewOrigin.Y {
		e.viewOrigin.Y = box.Min.Y
	} else if box.Max.Y > e.viewOrigin.Y+e.viewHeight {
		e.viewOrigin.Y = min(box.Max.Y-e.viewHeight, box.Min.Y)
	}
}
