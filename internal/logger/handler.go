package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const tagKey = "tag" // The slog attribute key used for filtering tags

// debugFilter prints filter decisions to stderr. Toggled by SetFilterDebug.
var debugFilter bool

// SetFilterDebug enables verbose tracing of the filtering handler itself.
func SetFilterDebug(enabled bool) {
	debugFilter = enabled
}

// filteringHandler wraps a base slog.Handler to add custom filtering.
type filteringHandler struct {
	baseHandler slog.Handler
	cfg         *Config // Reference to processed config
	tag         string  // Tag attached through WithAttrs, if any
}

// newFilteringHandler creates a handler with filtering capabilities.
func newFilteringHandler(base slog.Handler, cfg *Config) *filteringHandler {
	return &filteringHandler{
		baseHandler: base,
		cfg:         cfg,
	}
}

// Enabled checks if the level is enabled by the base handler.
func (h *filteringHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.baseHandler.Enabled(ctx, level)
}

// recordSource extracts the package directory and file name of the call site.
func recordSource(r slog.Record) (pkg, file string, ok bool) {
	if r.PC == 0 {
		return "", "", false
	}
	frames := runtime.CallersFrames([]uintptr{r.PC})
	frame, _ := frames.Next()
	if frame.File == "" {
		return "", "", false
	}
	return filepath.Base(filepath.Dir(frame.File)), filepath.Base(frame.File), true
}

// passes applies allow/deny sets to a single lowercase key.
func passes(key string, enabled, disabled map[string]struct{}) bool {
	if disabled != nil {
		if _, found := disabled[key]; found {
			return false
		}
	}
	if enabled != nil {
		if _, found := enabled[key]; !found {
			return false
		}
	}
	return true
}

// Handle applies filtering logic before passing the record to the base handler.
func (h *filteringHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.cfg == nil {
		return h.baseHandler.Handle(ctx, r)
	}

	if debugFilter {
		fmt.Fprintf(os.Stderr, "[FILTER] Message: Level=%s, Msg=%s\n", r.Level, r.Message)
	}

	// --- Package and file filtering ---
	if pkg, file, ok := recordSource(r); ok {
		if !passes(strings.ToLower(pkg), h.cfg.enabledPackagesSet, h.cfg.disabledPackagesSet) {
			if debugFilter {
				fmt.Fprintf(os.Stderr, "[FILTER] FILTERED OUT: package '%s'\n", pkg)
			}
			return nil
		}
		if !passes(strings.ToLower(file), h.cfg.enabledFilesSet, h.cfg.disabledFilesSet) {
			if debugFilter {
				fmt.Fprintf(os.Stderr, "[FILTER] FILTERED OUT: file '%s'\n", file)
			}
			return nil
		}
	}

	// --- Tag filtering ---
	tagValue := h.tag
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == tagKey {
			tagValue = strings.ToLower(a.Value.String())
			return false
		}
		return true
	})

	if tagValue != "" {
		if !passes(tagValue, h.cfg.enabledTagsSet, h.cfg.disabledTagsSet) {
			if debugFilter {
				fmt.Fprintf(os.Stderr, "[FILTER] FILTERED OUT: tag '%s'\n", tagValue)
			}
			return nil
		}
	} else if h.cfg.enabledTagsSet != nil {
		// Filtering for specific tags and this message has none
		if debugFilter {
			fmt.Fprintln(os.Stderr, "[FILTER] FILTERED OUT: Message has no tag but specific tags are enabled")
		}
		return nil
	}

	if debugFilter {
		fmt.Fprintln(os.Stderr, "[FILTER] PASSED")
	}
	return h.baseHandler.Handle(ctx, r)
}

// WithAttrs returns a new handler with attributes added.
func (h *filteringHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := newFilteringHandler(h.baseHandler.WithAttrs(attrs), h.cfg)
	nh.tag = h.tag
	for _, a := range attrs {
		if a.Key == tagKey {
			nh.tag = strings.ToLower(a.Value.String())
		}
	}
	return nh
}

// WithGroup returns a new handler with a group added.
func (h *filteringHandler) WithGroup(name string) slog.Handler {
	nh := newFilteringHandler(h.baseHandler.WithGroup(name), h.cfg)
	nh.tag = h.tag
	return nh
}
