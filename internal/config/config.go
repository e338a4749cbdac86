// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/tideboard/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger  logger.Config             `toml:"logger"`  // [logger] table
	Editor  EditorConfig              `toml:"editor"`  // [editor] table
	Plugins map[string]map[string]any `toml:"plugins"` // [plugins.<name>] tables
}

// EditorConfig holds editor-specific settings.
type EditorConfig struct {
	HistoryDepth    int      `toml:"history_depth"`
	FrameInterval   Duration `toml:"frame_interval"`
	NudgeStep       int      `toml:"nudge_step"`
	SystemClipboard bool     `toml:"system_clipboard"`
	ThemeFile       string   `toml:"theme_file"`
	StatusBarHeight int      `toml:"status_bar_height"`
}

// Duration is a time.Duration read from a string such as "16ms".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML decoding.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

var (
	loadedConfig *Config
	loadOnce     sync.Once
	loadErr      error
)

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Editor: EditorConfig{
			HistoryDepth:    DefaultHistoryDepth,
			FrameInterval:   Duration{DefaultFrameInterval},
			NudgeStep:       DefaultNudgeStep,
			SystemClipboard: SystemClipboard,
			StatusBarHeight: StatusBarHeight,
		},
		Plugins: make(map[string]map[string]any),
	}
}

// DefaultPath returns the config file location under the user config dir,
// or "" when it cannot be determined.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, AppName, DefaultConfigFileName)
}

// loadFromFile decodes filePath over cfg. A missing file is not an error.
func loadFromFile(filePath string, cfg *Config, verbose bool) error {
	_, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		if verbose {
			logger.Debugf("Config file not found: %s", filePath)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if len(metadata.Undecoded()) > 0 && verbose {
		logger.Warnf("Config file '%s': Unrecognized keys: %v", filePath, metadata.Undecoded())
	}
	if verbose {
		logger.Infof("Successfully loaded configuration from: %s", filePath)
	}
	return nil
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.HistoryDepth <= 0 {
		c.Editor.HistoryDepth = defaults.Editor.HistoryDepth
	}
	if c.Editor.FrameInterval.Duration <= 0 {
		c.Editor.FrameInterval = defaults.Editor.FrameInterval
	}
	if c.Editor.NudgeStep <= 0 {
		c.Editor.NudgeStep = defaults.Editor.NudgeStep
	}
	if c.Editor.StatusBarHeight <= 0 {
		c.Editor.StatusBarHeight = defaults.Editor.StatusBarHeight
	}
	if _, ok := logger.ParseLevel(c.Logger.LogLevel); !ok || c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
	if c.Plugins == nil {
		c.Plugins = defaults.Plugins
	}
}

// Load builds a configuration from defaults, the file at configFilePath
// (the default location when empty) and flag overrides. The returned config
// is always usable; the error reports a file problem.
func Load(configFilePath string, flags *Flags, verbose bool) (*Config, error) {
	cfg := NewDefaultConfig()

	effectivePath := configFilePath
	if effectivePath == "" {
		effectivePath = DefaultPath()
	}

	var err error
	if effectivePath != "" {
		if err = loadFromFile(effectivePath, cfg, verbose); err != nil {
			// Keep going on defaults; a broken file should not block startup.
			cfg = NewDefaultConfig()
		}
	}

	if flags != nil {
		flags.ApplyOverrides(cfg, verbose)
	}

	cfg.validate()
	return cfg, err
}

// LoadConfig loads the configuration once and stores it for Get.
// It should be called only once, typically from main.
func LoadConfig(configFilePath string, flags *Flags) (*Config, error) {
	loadOnce.Do(func() {
		// Logger is not initialized yet during the first load.
		loadedConfig, loadErr = Load(configFilePath, flags, false)
	})
	return loadedConfig, loadErr
}

// Get returns the loaded application configuration. Panics if LoadConfig wasn't called.
func Get() *Config {
	if loadedConfig == nil {
		panic("config.Get() called before config.LoadConfig()")
	}
	return loadedConfig
}

// PluginValue looks up a key in the [plugins.<name>] table.
func (c *Config) PluginValue(pluginName, key string) (any, bool) {
	table, ok := c.Plugins[pluginName]
	if !ok {
		return nil, false
	}
	v, ok := table[key]
	return v, ok
}
