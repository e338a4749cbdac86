// Package history implements undoable commands, long-lived interactive
// operations and the handler that records them on bounded undo/redo stacks.
package history

import "github.com/bethropolis/tideboard/internal/schedule"

// Context is handed to every command and operation. Doc is the mutable
// document; Scheduler defers expensive derived recomputation.
type Context[D any] struct {
	Doc       D
	Scheduler schedule.Scheduler
}

// Command is a single undoable mutation of a document.
type Command[D any] interface {
	// Apply performs the mutation.
	Apply(ctx Context[D])
	// CreateUndo returns a command that restores the current state of
	// everything Apply touches. It is called before Apply.
	CreateUndo(ctx Context[D]) Command[D]
	// Description is a short human-readable label for history listings.
	Description() string
}

// Operation is a continuously updated interaction, such as a drag, that
// collapses into one undo entry when finished. Implementations must embed
// Lifecycle; the Handler drives its state.
type Operation[D any] interface {
	// Begin captures the baseline state of everything the operation touches.
	Begin(ctx Context[D])
	// Update re-applies the full effect from the baseline and the current
	// parameters. It should request deferred recomputation rather than
	// recompute synchronously.
	Update(ctx Context[D])
	// Finish applies the final parameters.
	Finish(ctx Context[D])
	// Cancel restores the baseline exactly.
	Cancel(ctx Context[D])
	// CreateUndo returns a command restoring the baseline.
	CreateUndo(ctx Context[D]) Command[D]
	Description() string

	lifecycle() *Lifecycle
}
