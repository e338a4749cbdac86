package edit

import (
	"fmt"
	"sort"

	"github.com/bethropolis/tideboard/internal/board"
	"github.com/bethropolis/tideboard/internal/logger"
	"github.com/bethropolis/tideboard/internal/types"
)

// Placement is an absolute position for one entity.
type Placement struct {
	ID  types.EntityID
	Pos types.Point
}

// Place moves entities to absolute positions.
type Place struct {
	desc       string
	placements []Placement
}

// NewPlace creates a Place command.
func NewPlace(desc string, placements ...Placement) *Place {
	return &Place{desc: desc, placements: placements}
}

// NewTranslate builds a Place that moves ids by delta from their current
// positions. Unknown ids are skipped.
func NewTranslate(doc board.Positions, delta types.Point, ids ...types.EntityID) *Place {
	placements := make([]Placement, 0, len(ids))
	for _, id := range ids {
		if pos, ok := doc.Position(id); ok {
			placements = append(placements, Placement{ID: id, Pos: pos.Add(delta)})
		}
	}
	return NewPlace(fmt.Sprintf("Move %s by %s", countEntities(len(placements)), delta), placements...)
}

// Placements returns the target positions.
func (c *Place) Placements() []Placement {
	return append([]Placement(nil), c.placements...)
}

func (c *Place) Apply(ctx Context) {
	place(ctx.Doc, c.placements)
	requestLayout(ctx)
}

func (c *Place) CreateUndo(ctx Context) Command {
	return NewPlace(c.desc, capturePositions(ctx.Doc, c.placements)...)
}

func (c *Place) Description() string { return c.desc }

func place(doc board.Positions, placements []Placement) {
	for _, p := range placements {
		if !doc.SetPosition(p.ID, p.Pos) {
			logger.DebugTagf("edit", "Place: entity %d no longer exists", p.ID)
		}
	}
}

// capturePositions records the current position of each placed entity.
func capturePositions(doc board.Positions, placements []Placement) []Placement {
	out := make([]Placement, 0, len(placements))
	for _, p := range placements {
		if pos, ok := doc.Position(p.ID); ok {
			out = append(out, Placement{ID: p.ID, Pos: pos})
		}
	}
	return out
}

// Relabel sets the label of one entity.
type Relabel struct {
	id    types.EntityID
	label string
}

// NewRelabel creates a Relabel command.
func NewRelabel(id types.EntityID, label string) *Relabel {
	return &Relabel{id: id, label: label}
}

func (c *Relabel) Apply(ctx Context) {
	if !ctx.Doc.SetLabel(c.id, c.label) {
		logger.DebugTagf("edit", "Relabel: entity %d no longer exists", c.id)
	}
	requestLayout(ctx)
}

func (c *Relabel) CreateUndo(ctx Context) Command {
	current, _ := ctx.Doc.Label(c.id)
	return NewRelabel(c.id, current)
}

func (c *Relabel) Description() string {
	return fmt.Sprintf("Relabel #%d to %q", c.id, c.label)
}

// slotted is an entity together with its z-order index.
type slotted struct {
	entity board.Entity
	index  int
}

// Add inserts entities at given z-order indices.
type Add struct {
	items []slotted
}

// NewAdd creates a command adding a new entity on top of the board.
func NewAdd(doc board.Roster, label string, pos types.Point) *Add {
	e := board.Entity{ID: doc.NextID(), Label: label, Pos: pos}
	return &Add{items: []slotted{{entity: e, index: -1}}}
}

// IDs returns the entities this command inserts.
func (c *Add) IDs() []types.EntityID {
	ids := make([]types.EntityID, len(c.items))
	for i, it := range c.items {
		ids[i] = it.entity.ID
	}
	return ids
}

func (c *Add) Apply(ctx Context) {
	insertAll(ctx.Doc, c.items)
	requestLayout(ctx)
}

func (c *Add) CreateUndo(ctx Context) Command {
	return NewRemove(c.IDs()...)
}

func (c *Add) Description() string {
	if len(c.items) == 1 {
		return fmt.Sprintf("Add %q", c.items[0].entity.Label)
	}
	return "Add " + countEntities(len(c.items))
}

// insertAll inserts in ascending index order so each entity lands back at
// the index it was removed from.
func insertAll(doc board.Roster, items []slotted) {
	sorted := append([]slotted(nil), items...)
	sort.SliceStable(sorted, func(i, j int) bool {
		// Appends (negative index) go last.
		if sorted[i].index < 0 || sorted[j].index < 0 {
			return sorted[j].index < 0 && sorted[i].index >= 0
		}
		return sorted[i].index < sorted[j].index
	})
	for _, it := range sorted {
		if !doc.Insert(it.entity, it.index) {
			logger.WarnTagf("edit", "Add: entity %d already exists", it.entity.ID)
		}
	}
}

// Remove deletes entities.
type Remove struct {
	ids []types.EntityID
}

// NewRemove creates a Remove command.
func NewRemove(ids ...types.EntityID) *Remove {
	return &Remove{ids: ids}
}

func (c *Remove) Apply(ctx Context) {
	for _, id := range c.ids {
		ctx.Doc.Remove(id)
	}
	requestLayout(ctx)
}

func (c *Remove) CreateUndo(ctx Context) Command {
	items := make([]slotted, 0, len(c.ids))
	for _, id := range c.ids {
		if e, ok := ctx.Doc.Entity(id); ok {
			items = append(items, slotted{entity: e, index: ctx.Doc.IndexOf(id)})
		}
	}
	return &Add{items: items}
}

func (c *Remove) Description() string {
	return "Remove " + countEntities(len(c.ids))
}

func countEntities(n int) string {
	if n == 1 {
		return "1 entity"
	}
	return fmt.Sprintf("%d entities", n)
}
