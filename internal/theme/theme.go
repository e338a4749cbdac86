// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/bethropolis/tideboard/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// Theme maps style names to tcell styles.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle returns the named style, falling back to the part before the
// first dot ("Box.Selected" -> "Box") and then to "Default".
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}

	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		baseName := name[:dotIndex]
		if style, ok := t.Styles[baseName]; ok {
			logger.DebugTagf("theme", "Theme '%s': Style '%s' not found, using base '%s'", t.Name, name, baseName)
			return style
		}
	}

	if defStyle, ok := t.Styles["Default"]; ok {
		if name != "Default" {
			logger.DebugTagf("theme", "Theme '%s': Style '%s' not found, falling back to 'Default'", t.Name, name)
		}
		return defStyle
	}

	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// DevComfortDark is the built-in theme.
var DevComfortDark Theme

func init() {
	dcBackground := tcell.NewHexColor(0x2a2f38)
	dcForeground := tcell.NewHexColor(0xc5cdd9)
	dcComment := tcell.NewHexColor(0x5c6370)
	dcOrange := tcell.NewHexColor(0xd19a66)
	dcYellow := tcell.NewHexColor(0xe5c07b)
	dcGreen := tcell.NewHexColor(0x98c379)
	dcCyan := tcell.NewHexColor(0x56b6c2)
	dcBlue := tcell.NewHexColor(0x61afef)

	baseStyle := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(dcForeground)

	DevComfortDark = Theme{
		Name:   "DevComfort Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			"Default": baseStyle,
			"Grid":    baseStyle.Foreground(dcComment),

			// Entity boxes
			"Box":          baseStyle.Foreground(dcCyan),
			"Box.Selected": baseStyle.Foreground(dcYellow).Bold(true),
			"Box.Overlap":  baseStyle.Foreground(dcOrange),
			"Box.Editing":  baseStyle.Foreground(dcGreen).Bold(true),
			"Box.Dragging": baseStyle.Foreground(dcBlue).Bold(true),
			"Label":        baseStyle,
			"Label.Empty":  baseStyle.Foreground(dcComment).Italic(true),

			"StatusBar":          tcell.StyleDefault.Background(dcBackground).Foreground(dcForeground),
			"StatusBarModified":  tcell.StyleDefault.Background(dcBackground).Foreground(dcYellow),
			"StatusBarMessage":   tcell.StyleDefault.Background(dcBackground).Foreground(dcForeground).Bold(true),
			"StatusBarCommand":   tcell.StyleDefault.Background(dcBackground).Foreground(dcGreen).Bold(true),
			"StatusBarIndicator": tcell.StyleDefault.Background(dcBackground).Foreground(dcBlue),
		},
	}

	CurrentTheme = &DevComfortDark
}

// CurrentTheme is the active theme.
var CurrentTheme *Theme

func GetCurrentTheme() *Theme {
	if CurrentTheme == nil {
		CurrentTheme = &DevComfortDark
	}
	return CurrentTheme
}

func SetCurrentTheme(theme *Theme) {
	if theme != nil {
		CurrentTheme = theme
		logger.Infof("Theme switched to: %s", theme.Name)
	}
}
