package config

import "time"

// Base application details
const AppName = "tideboard"
const ThemesDirName = "themes"
const DefaultThemeFileName = "theme.toml"   // Active theme file
const DefaultConfigFileName = "config.toml" // Main config file
const DefaultLogFileName = "tideboard.log"

// UI Layout
const StatusBarHeight = 1

// Status Bar
const MessageTimeout = 4 * time.Second

// History
const DefaultHistoryDepth = 100

// Scheduler frame interval for coalesced recomputation (one display frame).
const DefaultFrameInterval = 16 * time.Millisecond

// Cells moved per arrow-key nudge.
const DefaultNudgeStep = 1

const SystemClipboard = true

// Version is reported by --version.
const Version = "0.1.0"
