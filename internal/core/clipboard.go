package core

import (
	"errors"
	"fmt"

	"github.com/bethropolis/tideboard/internal/clipboard"
	"github.com/bethropolis/tideboard/internal/logger"
)

// YankLabel copies the primary selection's label. It returns false when
// nothing is selected.
func (e *Editor) YankLabel() (bool, error) {
	id, ok := e.Primary()
	if !ok {
		return false, nil
	}
	label, _ := e.board.Label(id)
	if err := e.clipboard.Copy(label); err != nil {
		// The internal register still holds the label.
		return true, err
	}
	logger.DebugTagf("clipboard", "Yanked label of #%d", id)
	return true, nil
}

// PasteLabel relabels the primary selection with the clipboard text. It
// returns false when nothing is selected or the clipboard is empty.
func (e *Editor) PasteLabel() (bool, error) {
	id, ok := e.Primary()
	if !ok {
		return false, nil
	}
	text, err := e.clipboard.Paste()
	if errors.Is(err, clipboard.ErrEmpty) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("paste failed: %w", err)
	}
	return e.Relabel(id, text), nil
}
