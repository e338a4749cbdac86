package history

import "testing"

func TestOperationStateString(t *testing.T) {
	tests := []struct {
		state OperationState
		want  string
	}{
		{NotStarted, "not-started"},
		{Active, "active"},
		{Committed, "committed"},
		{Cancelled, "cancelled"},
		{OperationState(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", int(tt.state), got, tt.want)
		}
	}
}

func TestLifecycleTransitions(t *testing.T) {
	h, _, _ := newTestHandler(0)
	op := &moveOp{name: "a"}
	if op.State() != NotStarted || op.IsActive() {
		t.Fatalf("new operation state = %v", op.State())
	}
	h.BeginOperation(op)
	if !op.IsActive() {
		t.Fatalf("state after begin = %v, want active", op.State())
	}
	h.FinishOperation(op)
	if op.State() != Committed || op.IsActive() {
		t.Errorf("state after finish = %v, want committed", op.State())
	}
}
