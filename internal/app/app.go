// internal/app/app.go
package app

import (
	"fmt"

	"github.com/bethropolis/tideboard/internal/board"
	"github.com/bethropolis/tideboard/internal/clipboard"
	"github.com/bethropolis/tideboard/internal/config"
	"github.com/bethropolis/tideboard/internal/core"
	"github.com/bethropolis/tideboard/internal/event"
	"github.com/bethropolis/tideboard/internal/input"
	"github.com/bethropolis/tideboard/internal/logger"
	"github.com/bethropolis/tideboard/internal/modehandler"
	"github.com/bethropolis/tideboard/internal/plugin"
	"github.com/bethropolis/tideboard/internal/schedule"
	"github.com/bethropolis/tideboard/internal/statusbar"
	"github.com/bethropolis/tideboard/internal/theme"
	"github.com/bethropolis/tideboard/internal/tui"
	"github.com/gdamore/tcell/v2"
)

// Interrupt payloads posted to the tcell event queue. A func() payload is
// a plugin callback queued through EditorAPI.Enqueue.
type (
	flushToken  struct{}
	redrawToken struct{}
)

// App encapsulates the core components and main loop of the editor.
type App struct {
	cfg           *config.Config
	tuiManager    *tui.TUI
	editor        *core.Editor
	scheduler     *schedule.Coalescer
	statusBar     *statusbar.StatusBar
	eventManager  *event.Manager
	pluginManager *plugin.Manager
	modeHandler   *modehandler.ModeHandler
	editorAPI     plugin.EditorAPI
	activeTheme   *theme.Theme

	quit chan struct{}
}

// NewApp creates an application editing the board at filePath on the
// terminal. An empty path starts an unnamed board.
func NewApp(cfg *config.Config, filePath string) (*App, error) {
	return newApp(cfg, filePath, nil)
}

// newApp builds the application on screen s, or on the terminal when s is nil.
func newApp(cfg *config.Config, filePath string, s tcell.Screen) (*App, error) {
	b := board.New()
	if filePath != "" {
		loaded, err := board.Load(filePath)
		if err != nil {
			return nil, err
		}
		b = loaded
	}

	// The theme must be set before the status bar reads its styles.
	activeTheme := theme.LoadOrDefault(cfg.Editor.ThemeFile)
	theme.SetCurrentTheme(activeTheme)

	var tuiManager *tui.TUI
	var err error
	if s == nil {
		tuiManager, err = tui.New()
	} else {
		tuiManager, err = tui.NewWithScreen(s)
	}
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	a := &App{
		cfg:           cfg,
		tuiManager:    tuiManager,
		statusBar:     statusbar.New(statusbar.DefaultConfig()),
		eventManager:  event.NewManager(),
		pluginManager: plugin.NewManager(),
		activeTheme:   activeTheme,
		quit:          make(chan struct{}),
	}

	// Timer callbacks only post an interrupt; tasks run in handleEvent.
	a.scheduler = schedule.NewCoalescer(cfg.Editor.FrameInterval.Duration, func() {
		a.post(flushToken{})
	})

	a.editor = core.NewEditor(b, a.scheduler, cfg.Editor.HistoryDepth)
	a.editor.NudgeStep = cfg.Editor.NudgeStep
	a.editor.SetClipboard(clipboard.NewManager(cfg.Editor.SystemClipboard))
	a.editor.SetEventManager(a.eventManager)
	a.scheduler.Register(board.LayoutKey, a.editor.Layout().Recompute)

	a.modeHandler = modehandler.New(modehandler.Config{
		Editor:         a.editor,
		InputProcessor: input.NewInputProcessor(),
		EventManager:   a.eventManager,
		StatusBar:      a.statusBar,
		QuitSignal:     a.quit,
	})

	a.editorAPI = newEditorAPI(a)

	a.subscribeEvents()
	registerAppCommands(a)
	if err := registerPlugins(a.pluginManager); err != nil {
		logger.Warnf("App: %v", err)
	}
	a.pluginManager.InitializePlugins(a.editorAPI)

	width, height := tuiManager.Size()
	a.editor.SetViewSize(width, height)

	a.eventManager.Dispatch(event.TypeBoardLoaded, event.BoardLoadedData{FilePath: b.FilePath(), Entities: b.Len()})
	a.scheduler.Request(board.LayoutKey)
	return a, nil
}

// Run starts the main loop. It returns when the user quits.
func (a *App) Run() error {
	defer a.tuiManager.Close()
	defer a.pluginManager.ShutdownPlugins()
	defer a.scheduler.Close()

	events := make(chan tcell.Event)
	go a.pollEvents(events)

	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})
	a.statusBar.SetTemporaryMessage("tideboard - a add | e edit | arrows nudge | u undo | Ctrl+S save | q quit")
	a.drawEditor()

	for {
		select {
		case <-a.quit:
			a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
			if a.editor.GetBoard().IsModified() {
				logger.Warnf("Exited with unsaved changes.")
			}
			logger.Infof("Exiting application.")
			return nil
		case ev := <-events:
			if ev == nil {
				return nil
			}
			if a.handleEvent(ev) {
				a.drawEditor()
			}
		}
	}
}

// pollEvents forwards terminal events to the main loop until quit.
func (a *App) pollEvents(out chan<- tcell.Event) {
	for {
		ev := a.tuiManager.PollEvent()
		select {
		case out <- ev:
		case <-a.quit:
			return
		}
		if ev == nil {
			return
		}
	}
}

// handleEvent processes one terminal event on the UI goroutine and reports
// whether a redraw is needed.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.tuiManager.GetScreen().Sync()
		w, h := a.tuiManager.Size()
		a.editor.SetViewSize(w, h)
		return true

	case *tcell.EventKey:
		return a.modeHandler.HandleKeyEvent(ev)

	case *tcell.EventMouse:
		return a.modeHandler.HandleMouseEvent(ev)

	case *tcell.EventInterrupt:
		switch data := ev.Data().(type) {
		case flushToken:
			return a.scheduler.Flush() > 0
		case redrawToken:
			return true
		case func():
			data()
			return true
		default:
			logger.Warnf("App: unexpected interrupt payload %T", data)
		}
	}
	return false
}

// post queues an interrupt for the main loop. Safe from any goroutine.
func (a *App) post(data interface{}) {
	if err := a.tuiManager.PostEvent(tcell.NewEventInterrupt(data)); err != nil {
		logger.Warnf("App: event queue full, dropped %T: %v", data, err)
	}
}

// Quit ends the session. Without force it refuses while the board has
// unsaved changes.
func (a *App) Quit(force bool) error {
	if !force && a.editor.GetBoard().IsModified() {
		return fmt.Errorf("unsaved changes (add ! to override)")
	}
	a.modeHandler.Quit()
	return nil
}

// GetModeHandler allows the API adapter to access the mode handler for command registration.
func (a *App) GetModeHandler() *modehandler.ModeHandler {
	return a.modeHandler
}

// GetEditor returns the editing session.
func (a *App) GetEditor() *core.Editor {
	return a.editor
}
