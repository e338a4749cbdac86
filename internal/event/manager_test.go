package event

import "testing"

func TestDispatchOrderAndConsume(t *testing.T) {
	m := NewManager()
	var calls []string
	m.Subscribe(TypeHistoryChanged, func(e Event) bool {
		calls = append(calls, "first")
		return false
	})
	m.Subscribe(TypeHistoryChanged, func(e Event) bool {
		calls = append(calls, "second")
		data := e.Data.(HistoryChangedData)
		return data.CanUndo
	})
	m.Subscribe(TypeHistoryChanged, func(e Event) bool {
		calls = append(calls, "third")
		return false
	})

	if m.Dispatch(TypeHistoryChanged, HistoryChangedData{CanUndo: false}) {
		t.Error("event should not be consumed")
	}
	if !m.Dispatch(TypeHistoryChanged, HistoryChangedData{CanUndo: true}) {
		t.Error("event should be consumed by the second handler")
	}

	want := []string{"first", "second", "third", "first", "second"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", calls, want)
		}
	}
}

func TestDispatchWithoutHandlers(t *testing.T) {
	if NewManager().Dispatch(TypeAppQuit, AppQuitData{}) {
		t.Error("no handler should consume")
	}
	if TypeLayoutUpdated.String() != "LayoutUpdated" || Type(999).String() != "Unknown" {
		t.Error("unexpected Type names")
	}
}
