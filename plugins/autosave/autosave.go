package autosave

import (
	"sync"
	"time"

	"github.com/bethropolis/tideboard/internal/logger"
	"github.com/bethropolis/tideboard/internal/plugin"
)

// Ensure AutoSave implements plugin.Plugin
var _ plugin.Plugin = (*AutoSave)(nil)

const (
	// Default configuration values
	defaultEnabled  = false
	defaultInterval = 1 * time.Minute
)

// AutoSave plugin periodically saves a modified board to its own path.
type AutoSave struct {
	api plugin.EditorAPI

	// Configuration, fixed after Initialize.
	enabled  bool
	interval time.Duration

	// Runtime state
	stopChan chan struct{}
	wg       sync.WaitGroup
}

// New creates a new instance of the AutoSave plugin.
func New() plugin.Plugin {
	return &AutoSave{
		enabled:  defaultEnabled,
		interval: defaultInterval,
	}
}

// Name returns the unique name of the plugin.
func (p *AutoSave) Name() string {
	return "autosave"
}

// Initialize reads configuration and starts the auto-save loop if enabled.
func (p *AutoSave) Initialize(api plugin.EditorAPI) error {
	p.api = api
	pluginName := p.Name()

	if enabledVal, ok := api.GetPluginConfigValue(pluginName, "enabled"); ok {
		if boolVal, isBool := enabledVal.(bool); isBool {
			p.enabled = boolVal
		} else {
			logger.Warnf("%s: Invalid type for 'enabled' config (%T), using default (%v)", pluginName, enabledVal, p.enabled)
		}
	}

	if intervalVal, ok := api.GetPluginConfigValue(pluginName, "interval"); ok {
		if strVal, isStr := intervalVal.(string); isStr {
			parsedInterval, err := time.ParseDuration(strVal)
			if err != nil {
				logger.Warnf("%s: Invalid format for 'interval' config ('%s'): %v. Using default (%v)", pluginName, strVal, err, p.interval)
			} else if parsedInterval <= 0 {
				logger.Warnf("%s: 'interval' config must be positive ('%s'). Using default (%v)", pluginName, strVal, p.interval)
			} else {
				p.interval = parsedInterval
			}
		} else {
			logger.Warnf("%s: Invalid type for 'interval' config (%T), using default (%v)", pluginName, intervalVal, p.interval)
		}
	}

	logger.Infof("%s initialized. Enabled: %v, Interval: %v", pluginName, p.enabled, p.interval)

	if p.enabled {
		p.stopChan = make(chan struct{})
		p.wg.Add(1)
		go p.saverLoop(p.interval)
	}
	return nil
}

// Shutdown signals the saver goroutine to stop and waits for it.
func (p *AutoSave) Shutdown() error {
	if p.stopChan != nil {
		close(p.stopChan)
		p.wg.Wait()
		p.stopChan = nil
		logger.Debugf("%s: Saver goroutine stopped.", p.Name())
	}
	return nil
}

// saverLoop ticks until stopped. The save itself runs on the UI goroutine.
func (p *AutoSave) saverLoop(interval time.Duration) {
	defer p.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.api.Enqueue(p.saveIfModified)
		case <-p.stopChan:
			return
		}
	}
}

// saveIfModified saves the board if it has unsaved changes, a path, and no
// interactive edit is half done.
func (p *AutoSave) saveIfModified() {
	b := p.api.GetBoard()
	if !b.IsModified() {
		return
	}
	if b.FilePath() == "" {
		logger.Debugf("%s: Board is modified but has no name, skipping auto-save.", p.Name())
		return
	}
	if p.api.Busy() {
		logger.Debugf("%s: Edit in progress, skipping auto-save.", p.Name())
		return
	}

	if err := p.api.SaveBoard(""); err != nil {
		logger.Errorf("%s: Auto-save failed for '%s': %v", p.Name(), b.FilePath(), err)
		return
	}
	logger.Debugf("%s: Auto-saved '%s'", p.Name(), b.FilePath())
}
