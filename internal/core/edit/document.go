// Package edit holds the undoable commands and interactive operations that
// mutate a board.
package edit

import (
	"github.com/bethropolis/tideboard/internal/board"
	"github.com/bethropolis/tideboard/internal/core/history"
	"github.com/bethropolis/tideboard/internal/schedule"
)

// Document is the set of board capabilities edits may touch.
type Document interface {
	board.Positions
	board.Labels
	board.Roster
}

// Context is the history context edits run in.
type Context = history.Context[Document]

// Command is an undoable board edit.
type Command = history.Command[Document]

// Handler records edits against a Document.
type Handler = history.Handler[Document]

// NewHandler creates a handler for doc that requests layout through sched.
func NewHandler(doc Document, sched schedule.Scheduler, depth int) *Handler {
	return history.NewHandler(Context{Doc: doc, Scheduler: sched}, depth)
}

// requestLayout asks for the board layout to be recomputed.
func requestLayout(ctx Context) {
	if ctx.Scheduler != nil {
		ctx.Scheduler.Request(board.LayoutKey)
	}
}
