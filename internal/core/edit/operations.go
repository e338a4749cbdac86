package edit

import (
	"fmt"

	"github.com/bethropolis/tideboard/internal/core/history"
	"github.com/bethropolis/tideboard/internal/types"
	"github.com/rivo/uniseg"
)

// Drag moves a group of entities live. The offset (or the anchor target) may
// be changed any number of times between updates; every update re-derives
// positions from the baseline captured at Begin.
type Drag struct {
	history.Lifecycle

	ids       []types.EntityID
	baseline  []Placement
	anchor    types.Point
	hasAnchor bool // ids[0] existed at Begin
	offset    types.Point
	target    types.Point
	useTarget bool
}

// NewDrag creates a drag over ids. The first id is the anchor for SetTarget.
func NewDrag(ids ...types.EntityID) *Drag {
	return &Drag{ids: ids}
}

// SetOffset sets the displacement from the baseline.
func (o *Drag) SetOffset(offset types.Point) {
	o.offset = offset
	o.useTarget = false
}

// SetTarget sets where the anchor entity should end up.
func (o *Drag) SetTarget(p types.Point) {
	o.target = p
	o.useTarget = true
}

// Offset returns the displacement the next update applies.
func (o *Drag) Offset() types.Point {
	if o.useTarget {
		if !o.hasAnchor {
			return types.Point{}
		}
		return o.target.Sub(o.anchor)
	}
	return o.offset
}

// Changed reports whether the current parameters differ from the baseline.
func (o *Drag) Changed() bool {
	return o.Offset() != types.Point{}
}

// IDs returns the dragged entities.
func (o *Drag) IDs() []types.EntityID {
	return append([]types.EntityID(nil), o.ids...)
}

func (o *Drag) Begin(ctx Context) {
	o.baseline = o.baseline[:0]
	o.hasAnchor = false
	if len(o.ids) > 0 {
		o.anchor, o.hasAnchor = ctx.Doc.Position(o.ids[0])
	}
	for _, id := range o.ids {
		if pos, ok := ctx.Doc.Position(id); ok {
			o.baseline = append(o.baseline, Placement{ID: id, Pos: pos})
		}
	}
}

func (o *Drag) Update(ctx Context) {
	offset := o.Offset()
	moved := make([]Placement, len(o.baseline))
	for i, b := range o.baseline {
		moved[i] = Placement{ID: b.ID, Pos: b.Pos.Add(offset)}
	}
	place(ctx.Doc, moved)
	requestLayout(ctx)
}

func (o *Drag) Finish(ctx Context) { o.Update(ctx) }

func (o *Drag) Cancel(ctx Context) {
	place(ctx.Doc, o.baseline)
	requestLayout(ctx)
}

func (o *Drag) CreateUndo(ctx Context) Command {
	return NewPlace(o.Description(), o.baseline...)
}

func (o *Drag) Description() string {
	return "Drag " + countEntities(len(o.ids))
}

// Retype edits one entity's label live.
type Retype struct {
	history.Lifecycle

	id       types.EntityID
	baseline string
	text     string
}

// NewRetype creates a label editing operation for id.
func NewRetype(id types.EntityID) *Retype {
	return &Retype{id: id}
}

// ID returns the entity being edited.
func (o *Retype) ID() types.EntityID { return o.id }

// Text returns the label as currently edited.
func (o *Retype) Text() string { return o.text }

// Changed reports whether the edited text differs from the baseline.
func (o *Retype) Changed() bool { return o.text != o.baseline }

// Insert appends s to the edited text.
func (o *Retype) Insert(s string) { o.text += s }

// SetText replaces the edited text.
func (o *Retype) SetText(s string) { o.text = s }

// Backspace removes the last grapheme cluster. It returns false if the text
// was already empty.
func (o *Retype) Backspace() bool {
	if o.text == "" {
		return false
	}
	rest := o.text
	state := -1
	start, pos := 0, 0
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		start = pos
		pos += len(cluster)
	}
	o.text = o.text[:start]
	return true
}

func (o *Retype) Begin(ctx Context) {
	o.baseline, _ = ctx.Doc.Label(o.id)
	o.text = o.baseline
}

func (o *Retype) Update(ctx Context) {
	ctx.Doc.SetLabel(o.id, o.text)
	requestLayout(ctx)
}

func (o *Retype) Finish(ctx Context) { o.Update(ctx) }

func (o *Retype) Cancel(ctx Context) {
	ctx.Doc.SetLabel(o.id, o.baseline)
	requestLayout(ctx)
}

func (o *Retype) CreateUndo(ctx Context) Command {
	return NewRelabel(o.id, o.baseline)
}

func (o *Retype) Description() string {
	return fmt.Sprintf("Retype #%d", o.id)
}

var (
	_ history.Operation[Document] = (*Drag)(nil)
	_ history.Operation[Document] = (*Retype)(nil)
)
