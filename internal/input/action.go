// internal/input/action.go
package input

// Action represents a command or operation to be performed by the editor.
type Action int

// Define the set of possible editor actions.
const (
	// --- Meta Actions ---
	ActionUnknown Action = iota
	ActionQuit           // Esc / Ctrl+C: quit in Normal mode, cancel elsewhere
	ActionForceQuit      // Quit without checking modified status
	ActionSave

	// --- Selection ---
	ActionSelectNext
	ActionSelectPrev

	// --- Board edits ---
	ActionNudgeUp
	ActionNudgeDown
	ActionNudgeLeft
	ActionNudgeRight
	ActionAddEntity
	ActionDeleteEntity
	ActionRetype
	ActionYank
	ActionPaste
	ActionUndo
	ActionRedo

	// --- Viewport ---
	ActionPanUp
	ActionPanDown
	ActionPanLeft
	ActionPanRight

	// --- Text entry (Command and Retype modes) ---
	ActionInsertRune
	ActionConfirm // Enter
	ActionDeleteCharBackward

	// --- Editor Mode ---
	ActionEnterCommandMode
)

var actionNames = map[Action]string{
	ActionUnknown:            "Unknown",
	ActionQuit:               "Quit",
	ActionForceQuit:          "ForceQuit",
	ActionSave:               "Save",
	ActionSelectNext:         "SelectNext",
	ActionSelectPrev:         "SelectPrev",
	ActionNudgeUp:            "NudgeUp",
	ActionNudgeDown:          "NudgeDown",
	ActionNudgeLeft:          "NudgeLeft",
	ActionNudgeRight:         "NudgeRight",
	ActionAddEntity:          "AddEntity",
	ActionDeleteEntity:       "DeleteEntity",
	ActionRetype:             "Retype",
	ActionYank:               "Yank",
	ActionPaste:              "Paste",
	ActionUndo:               "Undo",
	ActionRedo:               "Redo",
	ActionPanUp:              "PanUp",
	ActionPanDown:            "PanDown",
	ActionPanLeft:            "PanLeft",
	ActionPanRight:           "PanRight",
	ActionInsertRune:         "InsertRune",
	ActionConfirm:            "Confirm",
	ActionDeleteCharBackward: "DeleteCharBackward",
	ActionEnterCommandMode:   "EnterCommandMode",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// ActionEvent represents a decoded input event resulting in an action.
type ActionEvent struct {
	Action Action
	Rune   rune // Used for ActionInsertRune
}
