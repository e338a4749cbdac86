package core

import (
	"github.com/bethropolis/tideboard/internal/event"
	"github.com/bethropolis/tideboard/internal/types"
)

// Selected returns the selected entities; the first is the primary.
func (e *Editor) Selected() []types.EntityID {
	return append([]types.EntityID(nil), e.selection...)
}

// Primary returns the primary selected entity.
func (e *Editor) Primary() (types.EntityID, bool) {
	if len(e.selection) == 0 {
		return 0, false
	}
	return e.selection[0], true
}

// IsSelected reports whether id is selected.
func (e *Editor) IsSelected(id types.EntityID) bool {
	for _, s := range e.selection {
		if s == id {
			return true
		}
	}
	return false
}

// Select replaces the selection with ids that exist on the board.
func (e *Editor) Select(ids ...types.EntityID) {
	next := make([]types.EntityID, 0, len(ids))
	for _, id := range ids {
		if _, ok := e.board.Entity(id); ok && !containsID(next, id) {
			next = append(next, id)
		}
	}
	e.setSelection(next)
}

// ToggleSelect adds id to the selection, or removes it if present.
func (e *Editor) ToggleSelect(id types.EntityID) {
	if e.IsSelected(id) {
		next := make([]types.EntityID, 0, len(e.selection))
		for _, s := range e.selection {
			if s != id {
				next = append(next, s)
			}
		}
		e.setSelection(next)
		return
	}
	e.Select(append(e.Selected(), id)...)
}

// ClearSelection deselects everything.
func (e *Editor) ClearSelection() {
	e.setSelection(nil)
}

// SelectNext selects the entity after the primary in z-order, wrapping.
func (e *Editor) SelectNext() bool { return e.cycle(1) }

// SelectPrev selects the entity before the primary in z-order, wrapping.
func (e *Editor) SelectPrev() bool { return e.cycle(-1) }

func (e *Editor) cycle(dir int) bool {
	entities := e.board.Entities()
	if len(entities) == 0 {
		return false
	}
	idx := -1
	if id, ok := e.Primary(); ok {
		idx = e.board.IndexOf(id)
	}
	switch {
	case idx < 0 && dir > 0:
		idx = 0
	case idx < 0:
		idx = len(entities) - 1
	default:
		idx = (idx + dir + len(entities)) % len(entities)
	}
	e.Select(entities[idx].ID)
	e.ScrollToSelection()
	return true
}

// pruneSelection drops selected entities that no longer exist.
func (e *Editor) pruneSelection() {
	next := e.selection[:0:0]
	for _, id := range e.selection {
		if _, ok := e.board.Entity(id); ok {
			next = append(next, id)
		}
	}
	if len(next) != len(e.selection) {
		e.setSelection(next)
	}
}

func (e *Editor) setSelection(ids []types.EntityID) {
	if sameIDs(ids, e.selection) {
		return
	}
	e.selection = ids
	e.dispatch(event.TypeSelectionChanged, event.SelectionChangedData{Selected: e.Selected()})
}

func containsID(ids []types.EntityID, id types.EntityID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func sameIDs(a, b []types.EntityID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
