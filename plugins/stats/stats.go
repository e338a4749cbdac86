// plugins/stats/stats.go
package stats

import (
	"fmt"

	"github.com/bethropolis/tideboard/internal/event"
	"github.com/bethropolis/tideboard/internal/plugin"
)

// Ensure Stats implements plugin.Plugin
var _ plugin.Plugin = (*Stats)(nil)

// Stats reports board and history statistics through the :stats command.
type Stats struct {
	api plugin.EditorAPI

	commits int // committed live operations this session
	cancels int
}

// New creates a new instance of the Stats plugin.
func New() plugin.Plugin {
	return &Stats{}
}

// Name returns the unique name of the plugin.
func (p *Stats) Name() string {
	return "stats"
}

// Initialize registers :stats and starts counting operation outcomes.
func (p *Stats) Initialize(api plugin.EditorAPI) error {
	p.api = api
	if err := api.RegisterCommand("stats", p.executeStats); err != nil {
		return fmt.Errorf("failed to register 'stats' command: %w", err)
	}
	api.SubscribeEvent(event.TypeOperationEnded, p.onOperationEnded)
	return nil
}

// Shutdown performs cleanup (nothing needed for this plugin).
func (p *Stats) Shutdown() error {
	return nil
}

func (p *Stats) onOperationEnded(e event.Event) bool {
	if data, ok := e.Data.(event.OperationEndedData); ok {
		if data.Committed {
			p.commits++
		} else {
			p.cancels++
		}
	}
	return false
}

// Summary formats the current statistics.
func (p *Stats) Summary() string {
	b := p.api.GetBoard()
	undo, redo := p.api.HistoryCounts()
	return fmt.Sprintf("Entities: %d, Selected: %d, Overlaps: %d, Undo: %d/%d, Redo: %d, Ops: %d committed %d cancelled",
		b.Len(), len(p.api.GetSelection()), len(p.api.LayoutResult().Overlaps),
		undo, p.api.HistoryDepth(), redo, p.commits, p.cancels)
}

func (p *Stats) executeStats(args []string) error {
	if p.api == nil {
		return fmt.Errorf("stats plugin not initialized with API")
	}
	p.api.SetStatusMessage("%s", p.Summary())
	return nil
}
