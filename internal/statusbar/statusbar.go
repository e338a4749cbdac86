// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bethropolis/tideboard/internal/config"
	"github.com/bethropolis/tideboard/internal/theme"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Config defines the appearance and behavior of the status bar.
type Config struct {
	StyleDefault   tcell.Style
	StyleModified  tcell.Style
	StyleMessage   tcell.Style
	StyleCommand   tcell.Style // command line and retype input
	StyleIndicator tcell.Style // undo/redo availability
	MessageTimeout time.Duration
}

// DefaultConfig takes the styles from the current theme.
func DefaultConfig() Config {
	t := theme.GetCurrentTheme()
	return Config{
		StyleDefault:   t.GetStyle("StatusBar"),
		StyleModified:  t.GetStyle("StatusBarModified"),
		StyleMessage:   t.GetStyle("StatusBarMessage"),
		StyleCommand:   t.GetStyle("StatusBarCommand"),
		StyleIndicator: t.GetStyle("StatusBarIndicator"),
		MessageTimeout: config.MessageTimeout,
	}
}

// StatusBar represents the UI component for the status line.
type StatusBar struct {
	config Config
	mu     sync.RWMutex

	filePath   string
	isModified bool
	editorMode string
	selected   int
	entities   int
	overlaps   int
	canUndo    bool
	canRedo    bool

	// Input line shown instead of the status while non-empty.
	input string

	tempMessage     string
	tempMessageTime time.Time
}

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{
		config: config,
	}
}

// SetFileInfo updates the file path shown in the status bar.
func (sb *StatusBar) SetFileInfo(path string, modified bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.filePath = path
	sb.isModified = modified
}

// SetBoardInfo updates the selection, entity and overlap counts.
func (sb *StatusBar) SetBoardInfo(selected, entities, overlaps int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.selected = selected
	sb.entities = entities
	sb.overlaps = overlaps
}

// SetHistoryInfo updates the undo/redo indicators.
func (sb *StatusBar) SetHistoryInfo(canUndo, canRedo bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.canUndo = canUndo
	sb.canRedo = canRedo
}

// SetEditorMode updates the displayed editor mode.
func (sb *StatusBar) SetEditorMode(mode string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.editorMode = mode
}

// SetInput shows an input line (":w", a label being typed). Empty restores
// the normal status.
func (sb *StatusBar) SetInput(text string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.input = text
}

// SetTemporaryMessage displays a message for a configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = time.Now()
}

// ResetTemporaryMessage clears any temporary message being displayed
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

// statusText builds the left-hand status text. Caller holds the lock.
func (sb *StatusBar) statusText() string {
	fPath := sb.filePath
	if fPath == "" {
		fPath = "[No Name]"
	}
	var b strings.Builder
	b.WriteString(fPath)
	if sb.isModified {
		b.WriteString(" [Modified]")
	}
	fmt.Fprintf(&b, " -- %d/%d selected", sb.selected, sb.entities)
	if sb.overlaps > 0 {
		fmt.Fprintf(&b, ", %d overlapping", sb.overlaps)
	}
	if sb.editorMode != "" {
		fmt.Fprintf(&b, " -- %s", sb.editorMode)
	}
	return b.String()
}

// indicatorText builds the right-aligned history indicator. Caller holds the lock.
func (sb *StatusBar) indicatorText() string {
	var parts []string
	if sb.canUndo {
		parts = append(parts, "[undo]")
	}
	if sb.canRedo {
		parts = append(parts, "[redo]")
	}
	return strings.Join(parts, " ")
}

// Draw renders the status bar onto the last screen line.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1

	sb.mu.Lock()
	isTempMsgActive := !sb.tempMessageTime.IsZero() && time.Since(sb.tempMessageTime) <= sb.config.MessageTimeout
	if !sb.tempMessageTime.IsZero() && !isTempMsgActive {
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
	}

	var style tcell.Style
	var text, indicator string
	switch {
	case sb.input != "":
		text, style = sb.input, sb.config.StyleCommand
	case isTempMsgActive:
		text, style = sb.tempMessage, sb.config.StyleMessage
	default:
		text, indicator = sb.statusText(), sb.indicatorText()
		style = sb.config.StyleDefault
		if sb.isModified {
			style = sb.config.StyleModified
		}
	}
	sb.mu.Unlock()

	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, sb.config.StyleDefault)
	}
	drawText(screen, 0, y, width, text, style)

	if indicator != "" {
		w := uniseg.StringWidth(indicator)
		if x := width - w - 1; x > uniseg.StringWidth(text) {
			drawText(screen, x, y, width, indicator, sb.config.StyleIndicator)
		}
	}
}

// drawText draws text from x, stopping at maxX, using grapheme widths.
func drawText(screen tcell.Screen, x, y, maxX int, text string, style tcell.Style) {
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusterWidth := gr.Width()
		if x+clusterWidth > maxX {
			break
		}
		runes := gr.Runes()
		if len(runes) > 0 {
			screen.SetContent(x, y, runes[0], runes[1:], style)
		}
		x += clusterWidth
	}
}
