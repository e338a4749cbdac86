package board

import "github.com/bethropolis/tideboard/internal/types"

// Positions gives access to entity positions only.
type Positions interface {
	Position(id types.EntityID) (types.Point, bool)
	SetPosition(id types.EntityID, p types.Point) bool
}

// Labels gives access to entity labels only.
type Labels interface {
	Label(id types.EntityID) (string, bool)
	SetLabel(id types.EntityID, label string) bool
}

// Roster adds and removes entities.
type Roster interface {
	NextID() types.EntityID
	Entity(id types.EntityID) (Entity, bool)
	IndexOf(id types.EntityID) int
	Insert(e Entity, index int) bool
	Remove(id types.EntityID) (Entity, int, bool)
}

// Reader is read-only access for rendering, layout and plugins.
type Reader interface {
	Entities() []Entity
	Entity(id types.EntityID) (Entity, bool)
	Len() int
	FilePath() string
	IsModified() bool
	Revision() uint64
}

var (
	_ Positions = (*Board)(nil)
	_ Labels    = (*Board)(nil)
	_ Roster    = (*Board)(nil)
	_ Reader    = (*Board)(nil)
)
