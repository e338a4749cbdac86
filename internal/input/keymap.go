// internal/input/keymap.go
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Keymap maps specific key events to editor actions.
type Keymap map[tcell.Key]Action        // For special keys (Enter, Arrows, etc.)
type RuneKeymap map[rune]Action         // For Normal-mode letter bindings
type ModKeymap map[tcell.ModMask]Keymap // For keys combined with modifiers (Ctrl, Shift)

// InputProcessor translates tcell key events into ActionEvents.
type InputProcessor struct {
	keymap     Keymap
	runeKeymap RuneKeymap
	modKeymap  ModKeymap
}

// NewInputProcessor creates a processor with default keybindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{
		keymap:     make(Keymap),
		runeKeymap: make(RuneKeymap),
		modKeymap:  make(ModKeymap),
	}
	p.loadDefaultBindings()
	return p
}

// loadDefaultBindings sets up the initial key mappings.
func (p *InputProcessor) loadDefaultBindings() {
	p.keymap[tcell.KeyUp] = ActionNudgeUp
	p.keymap[tcell.KeyDown] = ActionNudgeDown
	p.keymap[tcell.KeyLeft] = ActionNudgeLeft
	p.keymap[tcell.KeyRight] = ActionNudgeRight
	p.keymap[tcell.KeyTab] = ActionSelectNext
	p.keymap[tcell.KeyBacktab] = ActionSelectPrev
	p.keymap[tcell.KeyEnter] = ActionConfirm
	p.keymap[tcell.KeyBackspace] = ActionDeleteCharBackward
	p.keymap[tcell.KeyBackspace2] = ActionDeleteCharBackward
	p.keymap[tcell.KeyDelete] = ActionDeleteEntity
	p.keymap[tcell.KeyEscape] = ActionQuit
	p.keymap[tcell.KeyCtrlC] = ActionQuit

	ctrlMap := make(Keymap)
	ctrlMap[tcell.KeyCtrlS] = ActionSave
	ctrlMap[tcell.KeyCtrlQ] = ActionForceQuit
	ctrlMap[tcell.KeyCtrlR] = ActionRedo
	ctrlMap[tcell.KeyCtrlZ] = ActionUndo
	ctrlMap[tcell.KeyCtrlY] = ActionRedo
	p.modKeymap[tcell.ModCtrl] = ctrlMap

	shiftMap := make(Keymap)
	shiftMap[tcell.KeyUp] = ActionPanUp
	shiftMap[tcell.KeyDown] = ActionPanDown
	shiftMap[tcell.KeyLeft] = ActionPanLeft
	shiftMap[tcell.KeyRight] = ActionPanRight
	p.modKeymap[tcell.ModShift] = shiftMap

	p.runeKeymap[':'] = ActionEnterCommandMode
	p.runeKeymap['a'] = ActionAddEntity
	p.runeKeymap['x'] = ActionDeleteEntity
	p.runeKeymap['e'] = ActionRetype
	p.runeKeymap['u'] = ActionUndo
	p.runeKeymap['U'] = ActionRedo
	p.runeKeymap['y'] = ActionYank
	p.runeKeymap['p'] = ActionPaste
	p.runeKeymap['q'] = ActionQuit
}

// ProcessEvent maps a key event using the Normal-mode bindings.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey) ActionEvent {
	return p.process(ev, true)
}

// ProcessTextEvent maps a key event for text entry: every printable rune is
// an insertion, so letters bound in Normal mode can still be typed.
func (p *InputProcessor) ProcessTextEvent(ev *tcell.EventKey) ActionEvent {
	return p.process(ev, false)
}

func (p *InputProcessor) process(ev *tcell.EventKey, runeBindings bool) ActionEvent {
	key := ev.Key()
	mod := ev.Modifiers()
	runeVal := ev.Rune()

	// 1. Modifier + key combinations
	if modKeyMap, modOk := p.modKeymap[mod]; modOk {
		if action, keyOk := modKeyMap[key]; keyOk {
			return ActionEvent{Action: action}
		}
	}
	// Ctrl+letter keys already encode Ctrl in the key itself.
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		mod &^= tcell.ModCtrl
	}

	// 2. Plain special keys
	if key != tcell.KeyRune && (mod == tcell.ModNone || mod == tcell.ModShift) {
		if action, ok := p.keymap[key]; ok {
			return ActionEvent{Action: action}
		}
	}

	// 3. Runes. Shift is part of the rune itself ('U').
	if key == tcell.KeyRune && (mod == tcell.ModNone || mod == tcell.ModShift) {
		if runeBindings {
			if action, ok := p.runeKeymap[runeVal]; ok {
				return ActionEvent{Action: action, Rune: runeVal}
			}
		}
		return ActionEvent{Action: ActionInsertRune, Rune: runeVal}
	}

	return ActionEvent{Action: ActionUnknown}
}
