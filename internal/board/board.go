// internal/board/board.go
package board

import (
	"github.com/bethropolis/tideboard/internal/schedule"
	"github.com/bethropolis/tideboard/internal/types"
)

// LayoutKey is the scheduler key of the board's derived layout.
const LayoutKey schedule.Key = "board.layout"

// Entity is a labelled box on the board.
type Entity struct {
	ID    types.EntityID
	Label string
	Pos   types.Point
}

// Board is the editable document: entities kept in z-order (bottom first).
type Board struct {
	entities map[types.EntityID]*Entity
	order    []types.EntityID
	nextID   types.EntityID
	filePath string
	revision uint64

	// Content as last loaded or saved. modified is recomputed against it
	// when the revision moves past checkedRev.
	saved      map[types.EntityID]Entity
	savedOrder []types.EntityID
	modified   bool
	checkedRev uint64
}

// New creates an empty board.
func New() *Board {
	return &Board{
		entities: make(map[types.EntityID]*Entity),
		nextID:   1,
	}
}

// touch records a content change.
func (b *Board) touch() {
	b.revision++
}

// markSaved records the current content as the clean state.
func (b *Board) markSaved() {
	b.saved = make(map[types.EntityID]Entity, len(b.entities))
	for id, e := range b.entities {
		b.saved[id] = *e
	}
	b.savedOrder = append(b.savedOrder[:0], b.order...)
	b.modified = false
	b.checkedRev = b.revision
}

// matchesSaved reports whether the content equals the clean state.
func (b *Board) matchesSaved() bool {
	if len(b.order) != len(b.savedOrder) {
		return false
	}
	for i, id := range b.order {
		if b.savedOrder[i] != id || *b.entities[id] != b.saved[id] {
			return false
		}
	}
	return true
}

// NextID allocates an unused entity ID.
func (b *Board) NextID() types.EntityID {
	id := b.nextID
	b.nextID++
	return id
}

// Position returns the position of id.
func (b *Board) Position(id types.EntityID) (types.Point, bool) {
	e, ok := b.entities[id]
	if !ok {
		return types.Point{}, false
	}
	return e.Pos, true
}

// SetPosition moves id to p. It returns false if id is unknown.
func (b *Board) SetPosition(id types.EntityID, p types.Point) bool {
	e, ok := b.entities[id]
	if !ok {
		return false
	}
	if e.Pos != p {
		e.Pos = p
		b.touch()
	}
	return true
}

// Label returns the label of id.
func (b *Board) Label(id types.EntityID) (string, bool) {
	e, ok := b.entities[id]
	if !ok {
		return "", false
	}
	return e.Label, true
}

// SetLabel relabels id. It returns false if id is unknown.
func (b *Board) SetLabel(id types.EntityID, label string) bool {
	e, ok := b.entities[id]
	if !ok {
		return false
	}
	if e.Label != label {
		e.Label = label
		b.touch()
	}
	return true
}

// Entity returns a copy of the entity with id.
func (b *Board) Entity(id types.EntityID) (Entity, bool) {
	e, ok := b.entities[id]
	if !ok {
		return Entity{}, false
	}
	return *e, true
}

// IndexOf returns the z-order index of id, or -1.
func (b *Board) IndexOf(id types.EntityID) int {
	for i, v := range b.order {
		if v == id {
			return i
		}
	}
	return -1
}

// Insert adds e at z-order index (clamped; negative appends on top).
// It returns false if an entity with the same ID exists.
func (b *Board) Insert(e Entity, index int) bool {
	if e.ID <= 0 {
		return false
	}
	if _, exists := b.entities[e.ID]; exists {
		return false
	}
	if index < 0 || index > len(b.order) {
		index = len(b.order)
	}
	stored := e
	b.entities[e.ID] = &stored
	b.order = append(b.order, 0)
	copy(b.order[index+1:], b.order[index:])
	b.order[index] = e.ID
	if e.ID >= b.nextID {
		b.nextID = e.ID + 1
	}
	b.touch()
	return true
}

// Remove deletes id and returns the removed entity and its former z-order index.
func (b *Board) Remove(id types.EntityID) (Entity, int, bool) {
	e, ok := b.entities[id]
	if !ok {
		return Entity{}, -1, false
	}
	index := b.IndexOf(id)
	delete(b.entities, id)
	b.order = append(b.order[:index], b.order[index+1:]...)
	b.touch()
	return *e, index, true
}

// Entities returns copies of all entities in z-order, bottom first.
func (b *Board) Entities() []Entity {
	out := make([]Entity, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, *b.entities[id])
	}
	return out
}

// Len returns the number of entities.
func (b *Board) Len() int { return len(b.order) }

// FilePath returns the path the board was loaded from or last saved to.
func (b *Board) FilePath() string { return b.filePath }

// IsModified returns true if the board content differs from what was last
// loaded or saved. Edits that are later reverted leave it clean.
func (b *Board) IsModified() bool {
	if b.checkedRev != b.revision {
		b.modified = !b.matchesSaved()
		b.checkedRev = b.revision
	}
	return b.modified
}

// Revision increases with every change to the board's content.
func (b *Board) Revision() uint64 { return b.revision }
