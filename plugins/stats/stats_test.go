package stats

import (
	"fmt"
	"testing"

	"github.com/bethropolis/tideboard/internal/board"
	"github.com/bethropolis/tideboard/internal/event"
	"github.com/bethropolis/tideboard/internal/layout"
	"github.com/bethropolis/tideboard/internal/plugin"
	"github.com/bethropolis/tideboard/internal/types"
)

type fakeAPI struct {
	plugin.EditorAPI

	board    *board.Board
	events   *event.Manager
	commands map[string]plugin.CommandFunc
	message  string
}

func (f *fakeAPI) GetBoard() board.Reader { return f.board }
func (f *fakeAPI) GetSelection() []types.EntityID { return []types.EntityID{1} }
func (f *fakeAPI) HistoryDepth() int { return 50 }
func (f *fakeAPI) HistoryCounts() (int, int) { return 3, 1 }

func (f *fakeAPI) LayoutResult() layout.Result {
	return layout.Result{Overlaps: [][2]types.EntityID{{1, 2}}}
}

func (f *fakeAPI) RegisterCommand(name string, fn plugin.CommandFunc) error {
	f.commands[name] = fn
	return nil
}

func (f *fakeAPI) SubscribeEvent(t event.Type, h event.Handler) { f.events.Subscribe(t, h) }

func (f *fakeAPI) SetStatusMessage(format string, args ...interface{}) {
	f.message = fmt.Sprintf(format, args...)
}

func TestStatsCommand(t *testing.T) {
	b := board.New()
	b.Insert(board.Entity{ID: 1, Label: "a"}, -1)
	b.Insert(board.Entity{ID: 2, Label: "b"}, -1)
	api := &fakeAPI{board: b, events: event.NewManager(), commands: make(map[string]plugin.CommandFunc)}

	p := New()
	if err := p.Initialize(api); err != nil {
		t.Fatal(err)
	}
	api.events.Dispatch(event.TypeOperationEnded, event.OperationEndedData{Description: "Move", Committed: true})
	api.events.Dispatch(event.TypeOperationEnded, event.OperationEndedData{Description: "Retype", Committed: false})

	cmd, ok := api.commands["stats"]
	if !ok {
		t.Fatal(":stats not registered")
	}
	if err := cmd(nil); err != nil {
		t.Fatal(err)
	}
	want := "Entities: 2, Selected: 1, Overlaps: 1, Undo: 3/50, Redo: 1, Ops: 1 committed 1 cancelled"
	if api.message != want {
		t.Errorf("message = %q\nwant      %q", api.message, want)
	}
}

func TestStatsWithoutAPI(t *testing.T) {
	p := &Stats{}
	if err := p.executeStats(nil); err == nil {
		t.Error("executeStats should fail before Initialize")
	}
}
