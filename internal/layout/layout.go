// Package layout derives box geometry, overlaps and the board extent from
// the entities on a board. Recompute is the expensive step that the
// scheduler coalesces.
package layout

import (
	"sort"

	"github.com/bethropolis/tideboard/internal/board"
	"github.com/bethropolis/tideboard/internal/logger"
	"github.com/bethropolis/tideboard/internal/types"
	"github.com/rivo/uniseg"
)

// BoxHeight is the rendered height of every entity: border, label, border.
const BoxHeight = 3

// Box is the measured rectangle of one entity.
type Box struct {
	ID     types.EntityID
	Bounds types.Rect
}

// Result is a snapshot of the derived layout.
type Result struct {
	Boxes    []Box // z-order, bottom first
	Overlaps [][2]types.EntityID
	Extent   types.Rect
	Revision uint64 // board revision the result was computed from
	Run      int
}

// Overlapping reports whether id overlaps any other box.
func (r Result) Overlapping(id types.EntityID) bool {
	for _, pair := range r.Overlaps {
		if pair[0] == id || pair[1] == id {
			return true
		}
	}
	return false
}

// Measure returns the rectangle an entity occupies: label width plus one
// border cell each side, and BoxHeight rows.
func Measure(e board.Entity) types.Rect {
	w := uniseg.StringWidth(e.Label) + 2
	return types.Rect{
		Min: e.Pos,
		Max: types.Point{X: e.Pos.X + w, Y: e.Pos.Y + BoxHeight},
	}
}

// Engine recomputes the layout of a board on request.
type Engine struct {
	doc      board.Reader
	result   Result
	runs     int
	onUpdate func(Result)
}

// NewEngine creates an engine over doc.
func NewEngine(doc board.Reader) *Engine {
	return &Engine{doc: doc}
}

// SetDocument switches the engine to another board, e.g. after loading.
func (e *Engine) SetDocument(doc board.Reader) {
	e.doc = doc
}

// OnUpdate registers a callback invoked after every recompute.
func (e *Engine) OnUpdate(fn func(Result)) {
	e.onUpdate = fn
}

// Recompute measures every entity and finds overlapping pairs.
func (e *Engine) Recompute() {
	entities := e.doc.Entities()
	boxes := make([]Box, len(entities))
	var extent types.Rect
	for i, ent := range entities {
		boxes[i] = Box{ID: ent.ID, Bounds: Measure(ent)}
		extent = extent.Union(boxes[i].Bounds)
	}

	e.runs++
	e.result = Result{
		Boxes:    boxes,
		Overlaps: overlaps(boxes),
		Extent:   extent,
		Revision: e.doc.Revision(),
		Run:      e.runs,
	}
	logger.DebugTagf("layout", "Recomputed layout run=%d boxes=%d overlaps=%d", e.runs, len(boxes), len(e.result.Overlaps))

	if e.onUpdate != nil {
		e.onUpdate(e.result)
	}
}

// overlaps sweeps boxes sorted by left edge and returns each overlapping
// pair once, lower ID first.
func overlaps(boxes []Box) [][2]types.EntityID {
	sorted := append([]Box(nil), boxes...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Bounds.Min.X != sorted[j].Bounds.Min.X {
			return sorted[i].Bounds.Min.X < sorted[j].Bounds.Min.X
		}
		return sorted[i].ID < sorted[j].ID
	})

	var pairs [][2]types.EntityID
	for i := range sorted {
		a := sorted[i]
		for j := i + 1; j < len(sorted); j++ {
			b := sorted[j]
			if b.Bounds.Min.X >= a.Bounds.Max.X {
				break
			}
			if a.Bounds.Overlaps(b.Bounds) {
				lo, hi := a.ID, b.ID
				if lo > hi {
					lo, hi = hi, lo
				}
				pairs = append(pairs, [2]types.EntityID{lo, hi})
			}
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return pairs[i][0] < pairs[j][0]
		}
		return pairs[i][1] < pairs[j][1]
	})
	return pairs
}

// Result returns the most recent layout.
func (e *Engine) Result() Result {
	return e.result
}

// Runs returns how many times Recompute has run.
func (e *Engine) Runs() int {
	return e.runs
}

// Stale reports whether the board changed since the last recompute.
func (e *Engine) Stale() bool {
	return e.runs == 0 || e.result.Revision != e.doc.Revision()
}

// HitTest returns the top-most entity whose box contains p. It measures the
// current board directly so it is never stale.
func (e *Engine) HitTest(p types.Point) (board.Entity, bool) {
	entities := e.doc.Entities()
	for i := len(entities) - 1; i >= 0; i-- {
		if Measure(entities[i]).Contains(p) {
			return entities[i], true
		}
	}
	return board.Entity{}, false
}
