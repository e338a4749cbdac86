// internal/modehandler/modehandler.go
package modehandler

import (
	"fmt"
	"sort"

	"github.com/bethropolis/tideboard/internal/core"
	"github.com/bethropolis/tideboard/internal/core/edit"
	"github.com/bethropolis/tideboard/internal/event"
	"github.com/bethropolis/tideboard/internal/input"
	"github.com/bethropolis/tideboard/internal/logger"
	"github.com/bethropolis/tideboard/internal/plugin"
	"github.com/bethropolis/tideboard/internal/statusbar"
	"github.com/bethropolis/tideboard/internal/types"
	"github.com/gdamore/tcell/v2"
)

// InputMode defines the different states for user input.
type InputMode int

const (
	ModeNormal InputMode = iota
	ModeCommand
	ModeRetype // typing a new label, live
	ModeDrag   // mouse drag of the selection, live
)

func (m InputMode) String() string {
	switch m {
	case ModeCommand:
		return "COMMAND"
	case ModeRetype:
		return "RETYPE"
	case ModeDrag:
		return "DRAG"
	default:
		return "NORMAL"
	}
}

// Pan steps in cells.
const (
	panStepX = 4
	panStepY = 2
)

// ModeHandler manages input modes, command execution, and related state.
type ModeHandler struct {
	editor         *core.Editor
	inputProcessor *input.InputProcessor
	eventManager   *event.Manager
	statusBar      *statusbar.StatusBar
	quitSignal     chan<- struct{}

	currentMode      InputMode
	cmdBuffer        string
	commands         map[string]plugin.CommandFunc
	forceQuitPending bool
	quitting         bool

	// Live operations; non-nil only in their mode.
	retype     *edit.Retype
	drag       *edit.Drag
	dragAnchor types.Point // board cell where the drag started
	mouse      input.MouseTracker
}

// Config holds dependencies for the ModeHandler.
type Config struct {
	Editor         *core.Editor
	InputProcessor *input.InputProcessor
	EventManager   *event.Manager
	StatusBar      *statusbar.StatusBar
	QuitSignal     chan<- struct{}
}

// New creates a new ModeHandler.
func New(cfg Config) *ModeHandler {
	if cfg.Editor == nil || cfg.InputProcessor == nil || cfg.EventManager == nil || cfg.StatusBar == nil || cfg.QuitSignal == nil {
		panic("modehandler.New: Missing required dependencies in Config")
	}
	return &ModeHandler{
		editor:         cfg.Editor,
		inputProcessor: cfg.InputProcessor,
		eventManager:   cfg.EventManager,
		statusBar:      cfg.StatusBar,
		quitSignal:     cfg.QuitSignal,
		currentMode:    ModeNormal,
		commands:       make(map[string]plugin.CommandFunc),
	}
}

// HandleKeyEvent decides what to do based on current mode and key event.
// Returns true if the event resulted in an action requiring redraw.
func (mh *ModeHandler) HandleKeyEvent(ev *tcell.EventKey) bool {
	if mh.eventManager.Dispatch(event.TypeKeyPressed, event.KeyPressedData{KeyEvent: ev}) {
		return true
	}

	var actionProcessed bool
	switch mh.currentMode {
	case ModeNormal:
		actionProcessed = mh.executeAction(mh.inputProcessor.ProcessEvent(ev))
	case ModeCommand:
		actionProcessed = mh.handleActionCommand(mh.inputProcessor.ProcessTextEvent(ev))
	case ModeRetype:
		actionProcessed = mh.handleActionRetype(mh.inputProcessor.ProcessTextEvent(ev))
	case ModeDrag:
		actionProcessed = mh.handleActionDrag(mh.inputProcessor.ProcessEvent(ev))
	default:
		logger.Warnf("ModeHandler: Unknown input mode: %v", mh.currentMode)
	}
	return actionProcessed || mh.forceQuitPending
}

// HandleMouseEvent drives selection and dragging. Returns true if a redraw
// is needed.
func (mh *ModeHandler) HandleMouseEvent(ev *tcell.EventMouse) bool {
	me := mh.mouse.Process(ev)
	switch mh.currentMode {
	case ModeNormal:
		if me.Kind == input.MousePress {
			return mh.pressNormal(me.Pos, ev.Modifiers())
		}
	case ModeDrag:
		switch me.Kind {
		case input.MouseDrag:
			return mh.updateDrag(me.Pos)
		case input.MouseRelease:
			return mh.finishDrag(me.Pos)
		}
	}
	return false
}

// RegisterCommand adds a command to the registry. Called via EditorAPI.
func (mh *ModeHandler) RegisterCommand(name string, cmdFunc plugin.CommandFunc) error {
	if name == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	if _, exists := mh.commands[name]; exists {
		return fmt.Errorf("command '%s' already registered", name)
	}
	mh.commands[name] = cmdFunc
	logger.DebugTagf("command", "ModeHandler: Registered command ':%s'", name)
	return nil
}

// CommandNames lists registered commands, sorted.
func (mh *ModeHandler) CommandNames() []string {
	names := make([]string, 0, len(mh.commands))
	for name := range mh.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetCurrentMode returns the current input mode.
func (mh *ModeHandler) GetCurrentMode() InputMode {
	return mh.currentMode
}

// GetCommandBuffer returns the current command buffer content.
func (mh *ModeHandler) GetCommandBuffer() string {
	if mh.currentMode == ModeCommand {
		return mh.cmdBuffer
	}
	return ""
}

// EditingID returns the entity being retyped, or 0.
func (mh *ModeHandler) EditingID() types.EntityID {
	if mh.retype == nil {
		return 0
	}
	return mh.retype.ID()
}

// Dragging reports whether a drag is in progress.
func (mh *ModeHandler) Dragging() bool {
	return mh.drag != nil
}

// Abort cancels any live operation, e.g. before the app exits.
func (mh *ModeHandler) Abort() {
	switch {
	case mh.retype != nil:
		mh.cancelRetype()
	case mh.drag != nil:
		mh.cancelDrag()
	}
}

// Quit cancels any live operation and closes the quit channel once.
func (mh *ModeHandler) Quit() {
	if mh.quitting {
		return
	}
	mh.quitting = true
	mh.Abort()
	close(mh.quitSignal)
}

func (mh *ModeHandler) setMode(m InputMode) {
	if mh.currentMode != m {
		logger.DebugTagf("mode", "ModeHandler: %s -> %s", mh.currentMode, m)
		mh.currentMode = m
	}
}
