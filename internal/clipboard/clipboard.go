// Package clipboard holds yanked entity labels, backed by the system
// clipboard when it is enabled and available.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/bethropolis/tideboard/internal/logger"
)

// ErrEmpty is returned by Paste when nothing has been copied.
var ErrEmpty = errors.New("clipboard is empty")

// System is the platform clipboard.
type System interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

type atottoClipboard struct{}

func (atottoClipboard) ReadAll() (string, error)   { return clipboard.ReadAll() }
func (atottoClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

// Manager copies and pastes text. The internal register always holds the
// last copied text so paste keeps working when the system clipboard fails.
type Manager struct {
	system   System
	register string
	filled   bool
}

// NewManager creates a clipboard manager. With useSystem false, or when the
// platform has no clipboard utility, only the internal register is used.
func NewManager(useSystem bool) *Manager {
	m := &Manager{}
	if useSystem {
		if clipboard.Unsupported {
			logger.Warnf("System clipboard unsupported on this platform, using internal register")
		} else {
			m.system = atottoClipboard{}
		}
	}
	return m
}

// NewManagerWithSystem creates a manager over a specific system clipboard.
func NewManagerWithSystem(system System) *Manager {
	return &Manager{system: system}
}

// UsesSystem reports whether a system clipboard is attached.
func (m *Manager) UsesSystem() bool {
	return m.system != nil
}

// Copy stores text. A system clipboard failure is returned, but the text is
// still kept in the internal register.
func (m *Manager) Copy(text string) error {
	m.register = text
	m.filled = true
	if m.system == nil {
		return nil
	}
	if err := m.system.WriteAll(text); err != nil {
		logger.Warnf("Clipboard: system write failed: %v", err)
		return fmt.Errorf("failed to write system clipboard: %w", err)
	}
	logger.DebugTagf("clipboard", "Copied %d bytes", len(text))
	return nil
}

// Paste returns the clipboard text, preferring the system clipboard.
func (m *Manager) Paste() (string, error) {
	if m.system != nil {
		text, err := m.system.ReadAll()
		if err == nil && text != "" {
			return text, nil
		}
		if err != nil {
			logger.Warnf("Clipboard: system read failed, using internal register: %v", err)
		}
	}
	if !m.filled {
		return "", ErrEmpty
	}
	return m.register, nil
}
