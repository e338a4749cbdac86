package modehandler

import (
	"strings"

	"github.com/bethropolis/tideboard/internal/input"
	"github.com/bethropolis/tideboard/internal/logger"
	"github.com/rivo/uniseg"
)

// handleActionCommand handles actions when in ModeCommand.
func (mh *ModeHandler) handleActionCommand(actionEvent input.ActionEvent) bool {
	actionProcessed := true

	switch actionEvent.Action {
	case input.ActionInsertRune:
		mh.cmdBuffer += string(actionEvent.Rune)

	case input.ActionDeleteCharBackward:
		if mh.cmdBuffer != "" {
			mh.cmdBuffer = dropLastGrapheme(mh.cmdBuffer)
		} else {
			mh.exitCommandMode()
		}

	case input.ActionConfirm:
		cmd := mh.cmdBuffer
		mh.exitCommandMode()
		mh.ExecuteCommand(cmd)

	case input.ActionQuit:
		mh.exitCommandMode()

	default:
		actionProcessed = false
	}

	if mh.currentMode == ModeCommand {
		mh.statusBar.SetInput(":" + mh.cmdBuffer)
	}
	return actionProcessed
}

func (mh *ModeHandler) exitCommandMode() {
	mh.setMode(ModeNormal)
	mh.cmdBuffer = ""
	mh.statusBar.SetInput("")
}

// ExecuteCommand parses and runs a command line such as "w out.toml".
func (mh *ModeHandler) ExecuteCommand(cmdStr string) {
	parts := strings.Fields(cmdStr)
	if len(parts) == 0 {
		return
	}
	cmdName, args := parts[0], parts[1:]

	cmdFunc, exists := mh.commands[cmdName]
	if !exists {
		mh.statusBar.SetTemporaryMessage("Unknown command: %s", cmdName)
		return
	}
	logger.DebugTagf("command", "ModeHandler: Executing command ':%s' with args %v", cmdName, args)
	if err := cmdFunc(args); err != nil {
		mh.statusBar.SetTemporaryMessage("Error executing command '%s': %v", cmdName, err)
	}
}

// dropLastGrapheme removes the final user-perceived character of s.
func dropLastGrapheme(s string) string {
	var last int
	rest, state := s, -1
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		last = len(s) - len(rest) - len(cluster)
	}
	return s[:last]
}
