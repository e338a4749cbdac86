package history

import "testing"

func TestSignalNotifiesOnChangeOnly(t *testing.T) {
	s := NewSignal(false)
	var got []bool
	s.Subscribe(func(v bool) { got = append(got, v) })

	s.Set(false)
	s.Set(true)
	s.Set(true)
	s.Set(false)

	if len(got) != 2 || got[0] != true || got[1] != false {
		t.Errorf("notifications = %v, want [true false]", got)
	}
}

func TestSignalSubscriberOrderAndUnsubscribe(t *testing.T) {
	s := NewSignal(false)
	var order []string
	s.Subscribe(func(bool) { order = append(order, "first") })
	unsub := s.Subscribe(func(bool) { order = append(order, "second") })
	s.Subscribe(func(bool) { order = append(order, "third") })

	s.Set(true)
	unsub()
	s.Set(false)

	want := []string{"first", "second", "third", "first", "third"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestSignalUnsubscribeDuringNotify(t *testing.T) {
	s := NewSignal(false)
	calls := 0
	var unsub func()
	unsub = s.Subscribe(func(bool) {
		calls++
		unsub()
	})
	s.Set(true)
	s.Set(false)
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}
