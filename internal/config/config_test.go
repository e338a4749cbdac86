package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"), nil, false)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Editor.HistoryDepth != DefaultHistoryDepth {
		t.Errorf("HistoryDepth = %d, want %d", cfg.Editor.HistoryDepth, DefaultHistoryDepth)
	}
	if cfg.Editor.FrameInterval.Duration != DefaultFrameInterval {
		t.Errorf("FrameInterval = %v, want %v", cfg.Editor.FrameInterval.Duration, DefaultFrameInterval)
	}
	if !cfg.Editor.SystemClipboard {
		t.Error("SystemClipboard should default to true")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
[logger]
log_level = "debug"
disabled_tags = ["layout"]

[editor]
history_depth = 25
frame_interval = "40ms"
nudge_step = 2
system_clipboard = false

[plugins.autosave]
interval = "30s"
`)
	cfg, err := Load(path, nil, false)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Logger.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.Logger.LogLevel)
	}
	if len(cfg.Logger.DisabledTags) != 1 || cfg.Logger.DisabledTags[0] != "layout" {
		t.Errorf("DisabledTags = %v", cfg.Logger.DisabledTags)
	}
	if cfg.Editor.HistoryDepth != 25 {
		t.Errorf("HistoryDepth = %d, want 25", cfg.Editor.HistoryDepth)
	}
	if cfg.Editor.FrameInterval.Duration != 40*time.Millisecond {
		t.Errorf("FrameInterval = %v, want 40ms", cfg.Editor.FrameInterval.Duration)
	}
	if cfg.Editor.NudgeStep != 2 {
		t.Errorf("NudgeStep = %d, want 2", cfg.Editor.NudgeStep)
	}
	if cfg.Editor.SystemClipboard {
		t.Error("SystemClipboard should be false")
	}
	v, ok := cfg.PluginValue("autosave", "interval")
	if !ok || v != "30s" {
		t.Errorf("PluginValue(autosave, interval) = %v, %v", v, ok)
	}
	if _, ok := cfg.PluginValue("stats", "x"); ok {
		t.Error("PluginValue for unknown plugin should be absent")
	}
}

func TestValidateResetsInvalidValues(t *testing.T) {
	path := writeConfig(t, `
[logger]
log_level = "chatty"

[editor]
history_depth = -3
nudge_step = 0
`)
	cfg, err := Load(path, nil, false)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Editor.HistoryDepth != DefaultHistoryDepth {
		t.Errorf("HistoryDepth = %d, want default", cfg.Editor.HistoryDepth)
	}
	if cfg.Editor.NudgeStep != DefaultNudgeStep {
		t.Errorf("NudgeStep = %d, want default", cfg.Editor.NudgeStep)
	}
	if cfg.Logger.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.Logger.LogLevel)
	}
}

func TestLoadParseErrorFallsBackToDefaults(t *testing.T) {
	path := writeConfig(t, "[editor\nhistory_depth = ")
	cfg, err := Load(path, nil, false)
	if err == nil {
		t.Fatal("Load() should report a parse error")
	}
	if cfg == nil || cfg.Editor.HistoryDepth != DefaultHistoryDepth {
		t.Errorf("config should fall back to defaults, got %+v", cfg)
	}
}

func TestFlagOverrides(t *testing.T) {
	path := writeConfig(t, `
[editor]
history_depth = 25
frame_interval = "40ms"
`)

	tests := []struct {
		name      string
		args      []string
		wantDepth int
		wantFrame time.Duration
		wantLevel string
		wantTags  []string
	}{
		{"no flags", nil, 25, 40 * time.Millisecond, "info", nil},
		{"depth only", []string{"--history-depth=7"}, 7, 40 * time.Millisecond, "info", nil},
		{"frame and level", []string{"--frame-interval=5ms", "--loglevel=debug"}, 25, 5 * time.Millisecond, "debug", nil},
		{"tags", []string{"--log-tags=history, schedule"}, 25, 40 * time.Millisecond, "info", []string{"history", "schedule"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
			var flags Flags
			flags.DefineFlags(fs)
			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("parse: %v", err)
			}

			cfg, err := Load(path, &flags, false)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if cfg.Editor.HistoryDepth != tt.wantDepth {
				t.Errorf("HistoryDepth = %d, want %d", cfg.Editor.HistoryDepth, tt.wantDepth)
			}
			if cfg.Editor.FrameInterval.Duration != tt.wantFrame {
				t.Errorf("FrameInterval = %v, want %v", cfg.Editor.FrameInterval.Duration, tt.wantFrame)
			}
			if cfg.Logger.LogLevel != tt.wantLevel {
				t.Errorf("LogLevel = %q, want %q", cfg.Logger.LogLevel, tt.wantLevel)
			}
			if len(cfg.Logger.EnabledTags) != len(tt.wantTags) {
				t.Fatalf("EnabledTags = %v, want %v", cfg.Logger.EnabledTags, tt.wantTags)
			}
			for i := range tt.wantTags {
				if cfg.Logger.EnabledTags[i] != tt.wantTags[i] {
					t.Errorf("EnabledTags[%d] = %q, want %q", i, cfg.Logger.EnabledTags[i], tt.wantTags[i])
				}
			}
		})
	}
}
