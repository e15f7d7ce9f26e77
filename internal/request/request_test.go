package request

import (
	"testing"

	"elevatorsim/internal/elevator"
)

func TestExternalLifecycle(t *testing.T) {
	r := NewExternal(1, 5, elevator.Up, 0)
	if r.Status() != Pending {
		t.Fatalf("Status() = %v, expected Pending", r.Status())
	}
	if _, ok := r.Destination(); ok {
		t.Errorf("external request should have no destination")
	}

	if err := r.MarkPickedUp(); err == nil {
		t.Errorf("MarkPickedUp() before assignment should fail")
	}
	if err := r.Assign(3, 2); err != nil {
		t.Fatalf("Assign() = %v, expected no error", err)
	}
	if r.ElevatorID() != 3 || r.Status() != Assigned {
		t.Errorf("after Assign: elevator=%d status=%v", r.ElevatorID(), r.Status())
	}
	if err := r.Assign(4, 3); err == nil {
		t.Errorf("second Assign() should fail, binding is immutable")
	}

	if err := r.MarkPickedUp(); err != nil {
		t.Fatalf("MarkPickedUp() = %v, expected no error", err)
	}
	if err := r.Complete(7); err != nil {
		t.Fatalf("Complete() = %v, expected no error", err)
	}
	if err := r.Complete(8); err == nil {
		t.Errorf("Complete() twice should fail")
	}
}

func TestInternalStartsPickedUp(t *testing.T) {
	r := NewInternal(2, 1, 4, 0, 3)
	if r.Status() != PickedUp {
		t.Errorf("Status() = %v, expected PickedUp at creation", r.Status())
	}
	if r.Direction() != elevator.Down {
		t.Errorf("Direction() = %v, expected Down for destination below origin", r.Direction())
	}
	dest, ok := r.Destination()
	if !ok || dest != 0 {
		t.Errorf("Destination() = (%d, %v), expected (0, true)", dest, ok)
	}
}

func TestWaitTicks(t *testing.T) {
	r := NewExternal(1, 5, elevator.Up, 2)
	if got := r.WaitTicks(9); got != 7 {
		t.Errorf("WaitTicks(9) = %d, expected 7 while pending", got)
	}
	r.Assign(1, 5)
	if got := r.WaitTicks(20); got != 3 {
		t.Errorf("WaitTicks(20) = %d, expected 3 once assigned", got)
	}
}
