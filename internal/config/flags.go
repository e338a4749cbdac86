// internal/config/flags.go
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/bethropolis/tideboard/internal/logger"
	"github.com/spf13/pflag"
)

// Flags holds values parsed from command-line flags.
// Only flags the user actually set are applied over the config.
type Flags struct {
	fs *pflag.FlagSet

	ConfigFilePath  string
	Version         bool
	LogLevel        string
	LogFilePath     string
	HistoryDepth    int
	FrameInterval   time.Duration
	SystemClipboard bool
	EnableTags      string
	DisableTags     string
	EnablePkgs      string
	DisablePkgs     string
	EnableFiles     string
	DisableFiles    string
	DebugLog        bool
}

// DefineFlags registers the command-line flags on fs.
func (f *Flags) DefineFlags(fs *pflag.FlagSet) {
	f.fs = fs
	fs.StringVar(&f.ConfigFilePath, "config", "", fmt.Sprintf("Path to TOML configuration file (default ~/.config/%s/%s)", AppName, DefaultConfigFileName))
	fs.BoolVar(&f.Version, "version", false, "Show version information and exit")
	fs.StringVar(&f.LogLevel, "loglevel", "", "Log level (debug, info, warn, error) - Overrides config file")
	fs.StringVar(&f.LogFilePath, "logfile", "", "Path to write log file (use '-' for stderr) - Overrides config file")
	fs.IntVar(&f.HistoryDepth, "history-depth", DefaultHistoryDepth, "Maximum undo entries kept - Overrides config file")
	fs.DurationVar(&f.FrameInterval, "frame-interval", DefaultFrameInterval, "Coalescing interval for layout recomputation - Overrides config file")
	fs.BoolVar(&f.SystemClipboard, "system-clipboard", SystemClipboard, "Use system clipboard instead of internal register")
	fs.StringVar(&f.EnableTags, "log-tags", "", "Comma-separated list of tags to enable - Overrides config file")
	fs.StringVar(&f.DisableTags, "log-disable-tags", "", "Comma-separated list of tags to disable - Overrides config file")
	fs.StringVar(&f.EnablePkgs, "log-packages", "", "Comma-separated list of packages to enable - Overrides config file")
	fs.StringVar(&f.DisablePkgs, "log-disable-packages", "", "Comma-separated list of packages to disable - Overrides config file")
	fs.StringVar(&f.EnableFiles, "log-files", "", "Comma-separated list of files to enable - Overrides config file")
	fs.StringVar(&f.DisableFiles, "log-disable-files", "", "Comma-separated list of files to disable - Overrides config file")
	fs.BoolVar(&f.DebugLog, "debug-log", false, "Enable verbose debug logging for the logger filtering system")
}

// changed reports whether the named flag was set on the command line.
func (f *Flags) changed(name string) bool {
	return f.fs != nil && f.fs.Changed(name)
}

// ApplyOverrides updates the Config with values from flags *if* they were set.
func (f *Flags) ApplyOverrides(cfg *Config, verbose bool) {
	if f.fs == nil {
		return
	}
	f.fs.Visit(func(fl *pflag.Flag) {
		if verbose {
			logger.DebugTagf("config", "Applying flag override: %s=%s", fl.Name, fl.Value.String())
		}
	})

	if f.changed("loglevel") && f.LogLevel != "" {
		cfg.Logger.LogLevel = f.LogLevel
	}
	if f.changed("logfile") {
		cfg.Logger.LogFilePath = f.LogFilePath
	}
	if f.changed("history-depth") && f.HistoryDepth > 0 {
		cfg.Editor.HistoryDepth = f.HistoryDepth
	}
	if f.changed("frame-interval") && f.FrameInterval > 0 {
		cfg.Editor.FrameInterval = Duration{f.FrameInterval}
	}
	if f.changed("system-clipboard") {
		cfg.Editor.SystemClipboard = f.SystemClipboard
	}
	if f.changed("log-tags") {
		cfg.Logger.EnabledTags = splitCommaList(f.EnableTags)
	}
	if f.changed("log-disable-tags") {
		cfg.Logger.DisabledTags = splitCommaList(f.DisableTags)
	}
	if f.changed("log-packages") {
		cfg.Logger.EnabledPackages = splitCommaList(f.EnablePkgs)
	}
	if f.changed("log-disable-packages") {
		cfg.Logger.DisabledPackages = splitCommaList(f.DisablePkgs)
	}
	if f.changed("log-files") {
		cfg.Logger.EnabledFiles = splitCommaList(f.EnableFiles)
	}
	if f.changed("log-disable-files") {
		cfg.Logger.DisabledFiles = splitCommaList(f.DisableFiles)
	}
}

// splitCommaList splits a comma-separated list, dropping blanks.
func splitCommaList(list string) []string {
	if list == "" {
		return nil
	}
	items := strings.Split(list, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
