// internal/tui/drawing.go
package tui

import (
	"github.com/bethropolis/tideboard/internal/core"
	"github.com/bethropolis/tideboard/internal/layout"
	"github.com/bethropolis/tideboard/internal/logger"
	"github.com/bethropolis/tideboard/internal/theme"
	"github.com/bethropolis/tideboard/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Grid marks are drawn every gridX columns and gridY rows of board space.
const (
	gridX = 10
	gridY = 5
)

// Overlay carries transient UI state the board itself does not know.
type Overlay struct {
	Editing  types.EntityID // entity being retyped, 0 if none
	Dragging bool           // the selection is being dragged
}

// boxStyle picks the style for one entity, most specific state first.
func boxStyle(t *theme.Theme, editor *core.Editor, res layout.Result, ov Overlay, id types.EntityID) tcell.Style {
	selected := editor.IsSelected(id)
	switch {
	case ov.Dragging && selected:
		return t.GetStyle("Box.Dragging")
	case ov.Editing == id:
		return t.GetStyle("Box.Editing")
	case selected:
		return t.GetStyle("Box.Selected")
	case res.Overlapping(id):
		return t.GetStyle("Box.Overlap")
	}
	return t.GetStyle("Box")
}

// DrawBoard draws the visible part of the board.
func DrawBoard(tuiManager *TUI, editor *core.Editor, activeTheme *theme.Theme, ov Overlay) {
	if activeTheme == nil {
		logger.Warnf("DrawBoard called with nil theme, using package default.")
		activeTheme = &theme.DevComfortDark
	}
	defaultStyle := activeTheme.GetStyle("Default")
	gridStyle := activeTheme.GetStyle("Grid")

	width, _ := tuiManager.Size()
	_, viewHeight := editor.ViewSize()
	if viewHeight <= 0 || width <= 0 {
		return
	}
	s := tuiManager.screen
	origin := editor.ViewOrigin()

	for y := 0; y < viewHeight; y++ {
		for x := 0; x < width; x++ {
			p := editor.ScreenToBoard(types.Point{X: x, Y: y})
			if p.X%gridX == 0 && p.Y%gridY == 0 {
				s.SetContent(x, y, tcell.RuneBullet, nil, gridStyle)
			} else {
				s.SetContent(x, y, ' ', nil, defaultStyle)
			}
		}
	}

	view := types.Rect{Min: origin, Max: origin.Add(types.Point{X: width, Y: viewHeight})}
	res := editor.Layout().Result()
	labelStyle := activeTheme.GetStyle("Label")

	// Bottom of the z-order first so later entities paint over earlier ones.
	for _, ent := range editor.GetBoard().Entities() {
		bounds := layout.Measure(ent)
		if !bounds.Overlaps(view) {
			continue
		}
		style := boxStyle(activeTheme, editor, res, ov, ent.ID)
		r := types.Rect{Min: editor.BoardToScreen(bounds.Min), Max: editor.BoardToScreen(bounds.Max)}
		drawBox(s, r, width, viewHeight, style)

		ls := labelStyle
		if ent.Label == "" {
			ls = activeTheme.GetStyle("Label.Empty")
		}
		drawLabel(s, r.Min.X+1, r.Min.Y+1, width, viewHeight, ent.Label, ls)
	}
}

// drawBox draws a single-line border around r, clipped to the view.
func drawBox(s tcell.Screen, r types.Rect, width, height int, style tcell.Style) {
	set := func(x, y int, ch rune) {
		if x >= 0 && x < width && y >= 0 && y < height {
			s.SetContent(x, y, ch, nil, style)
		}
	}
	x0, y0, x1, y1 := r.Min.X, r.Min.Y, r.Max.X-1, r.Max.Y-1
	for x := x0 + 1; x < x1; x++ {
		set(x, y0, tcell.RuneHLine)
		set(x, y1, tcell.RuneHLine)
	}
	for y := y0 + 1; y < y1; y++ {
		set(x0, y, tcell.RuneVLine)
		set(x1, y, tcell.RuneVLine)
		for x := x0 + 1; x < x1; x++ {
			set(x, y, ' ')
		}
	}
	set(x0, y0, tcell.RuneULCorner)
	set(x1, y0, tcell.RuneURCorner)
	set(x0, y1, tcell.RuneLLCorner)
	set(x1, y1, tcell.RuneLRCorner)
}

// drawLabel draws text from (x, y) by grapheme cluster, clipped to the view.
func drawLabel(s tcell.Screen, x, y, width, height int, text string, style tcell.Style) {
	if y < 0 || y >= height {
		return
	}
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		runes := gr.Runes()
		w := gr.Width()
		if x >= width {
			return
		}
		if x >= 0 {
			s.SetContent(x, y, runes[0], runes[1:], style)
		}
		x += w
	}
}

// DrawCursor shows the terminal cursor after the label being retyped and
// hides it otherwise.
func DrawCursor(tuiManager *TUI, editor *core.Editor, ov Overlay) {
	if ov.Editing == 0 {
		tuiManager.screen.HideCursor()
		return
	}
	ent, ok := editor.GetBoard().Entity(ov.Editing)
	if !ok {
		tuiManager.screen.HideCursor()
		return
	}
	p := editor.BoardToScreen(ent.Pos.Add(types.Point{X: 1 + uniseg.StringWidth(ent.Label), Y: 1}))
	width, _ := tuiManager.Size()
	_, viewHeight := editor.ViewSize()
	if p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= viewHeight {
		tuiManager.screen.HideCursor()
		return
	}
	tuiManager.screen.ShowCursor(p.X, p.Y)
}
