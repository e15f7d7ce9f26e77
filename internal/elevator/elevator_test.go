package elevator

import (
	"reflect"
	"testing"
)

func newTestElevator(t *testing.T, startFloor int) *Elevator {
	t.Helper()
	e, err := New(1, startFloor, -2, 10, 8)
	if err != nil {
		t.Fatalf("New() = %v, expected no error", err)
	}
	return e
}

func TestNewValidation(t *testing.T) {
	if _, err := New(1, 11, 0, 10, 8); err == nil {
		t.Errorf("New() with start floor above range should fail")
	}
	if _, err := New(1, -1, 0, 10, 8); err == nil {
		t.Errorf("New() with start floor below range should fail")
	}
	if _, err := New(1, 0, 0, 10, 0); err == nil {
		t.Errorf("New() with zero capacity should fail")
	}
}

func TestAddStopRange(t *testing.T) {
	e := newTestElevator(t, 0)
	if err := e.AddStop(11); err == nil {
		t.Errorf("AddStop(11) should fail outside range")
	}
	if err := e.AddStop(-2); err != nil {
		t.Errorf("AddStop(-2) = %v, expected no error", err)
	}
	if got := e.PendingStops(); !reflect.DeepEqual(got, []int{-2}) {
		t.Errorf("PendingStops() = %v, expected [-2]", got)
	}
}

func TestIdleWithoutStops(t *testing.T) {
	e := newTestElevator(t, 3)
	if _, served := e.Tick(); served {
		t.Errorf("Tick() served a floor with no pending stops")
	}
	if e.Floor() != 3 || e.Status() != StatusIdle || e.Direction() != Idle {
		t.Errorf("expected idle car at floor 3, got floor=%d status=%v dir=%v", e.Floor(), e.Status(), e.Direction())
	}
}

func TestTravelToStop(t *testing.T) {
	e := newTestElevator(t, 0)
	if err := e.AddStop(3); err != nil {
		t.Fatalf("AddStop(3) = %v", err)
	}

	for tick := 1; tick <= 2; tick++ {
		if _, served := e.Tick(); served {
			t.Fatalf("tick %d: served early at floor %d", tick, e.Floor())
		}
		if e.Floor() != tick {
			t.Fatalf("tick %d: floor = %d, expected %d", tick, e.Floor(), tick)
		}
		if e.Status() != StatusMoving || e.Direction() != Up {
			t.Fatalf("tick %d: status=%v dir=%v, expected moving up", tick, e.Status(), e.Direction())
		}
	}

	floor, served := e.Tick()
	if !served || floor != 3 {
		t.Fatalf("Tick() = (%d, %v), expected arrival at floor 3", floor, served)
	}
	if e.Status() != StatusDoorsOpen {
		t.Errorf("Status() = %v, expected DoorsOpen on arrival", e.Status())
	}
}

func TestDoorsCloseBeforeMoving(t *testing.T) {
	e := newTestElevator(t, 0)
	e.AddStop(1)
	if _, served := e.Tick(); !served {
		t.Fatalf("expected arrival at floor 1")
	}
	e.AddStop(4)

	// Door-close tick: direction is chosen but the car does not move.
	if _, served := e.Tick(); served {
		t.Errorf("served during door-close tick")
	}
	if e.Floor() != 1 || e.Status() != StatusMoving {
		t.Errorf("floor=%d status=%v after door close, expected floor 1 moving", e.Floor(), e.Status())
	}

	if _, served := e.Tick(); served || e.Floor() != 2 {
		t.Errorf("floor=%d served=%v, expected plain move to floor 2", e.Floor(), served)
	}
}

func TestStopAddedWhileDoorsOpen(t *testing.T) {
	e := newTestElevator(t, 0)
	e.AddStop(2)
	e.Tick() // -> 1
	e.Tick() // -> 2, doors open
	if e.Status() != StatusDoorsOpen {
		t.Fatalf("Status() = %v, expected DoorsOpen", e.Status())
	}

	e.AddStop(2)
	floor, served := e.Tick()
	if !served || floor != 2 {
		t.Errorf("Tick() = (%d, %v), expected re-serving floor 2", floor, served)
	}
}

// Sweep rule: a car moving up with stops at 5 and 8 must not reverse at an
// intermediate stop added below its farthest target.
func TestSweepKeepsDirection(t *testing.T) {
	e := newTestElevator(t, 3)
	e.AddStop(5)
	e.AddStop(8)

	e.Tick() // -> 4
	e.AddStop(4)
	floor, served := e.Tick()
	if !served || floor != 4 {
		t.Fatalf("Tick() = (%d, %v), expected stop at current-floor request 4", floor, served)
	}

	var arrivals []int
	for tick := 0; tick < 12; tick++ {
		if f, ok := e.Tick(); ok {
			arrivals = append(arrivals, f)
		}
		if e.Direction() == Down && len(arrivals) < 2 {
			t.Fatalf("reversed down before serving floor 8, arrivals so far %v", arrivals)
		}
	}
	if !reflect.DeepEqual(arrivals, []int{5, 8}) {
		t.Errorf("arrivals = %v, expected [5 8]", arrivals)
	}
}

func TestReverseToNearestFromIdle(t *testing.T) {
	e := newTestElevator(t, 4)
	e.AddStop(2)
	e.AddStop(9)

	e.Tick()
	if e.Direction() != Down {
		t.Errorf("Direction() = %v, expected Down toward nearest stop 2", e.Direction())
	}
}

func TestReversalBookkeeping(t *testing.T) {
	e := newTestElevator(t, 0)
	e.AddStop(2)
	e.Tick() // -> 1
	e.Tick() // -> 2, doors open
	e.AddStop(0)
	e.Tick() // close doors, reverse down
	snap := e.Snapshot()
	if snap.Reversals != 1 {
		t.Errorf("Reversals = %d, expected 1", snap.Reversals)
	}
	e.Tick() // -> 1
	e.Tick() // -> 0, doors open
	snap = e.Snapshot()
	if snap.FloorsTraveled != 4 {
		t.Errorf("FloorsTraveled = %d, expected 4", snap.FloorsTraveled)
	}
}

func TestBoardAlightCapacity(t *testing.T) {
	e, err := New(1, 0, 0, 10, 2)
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	if err := e.Board(); err != nil {
		t.Errorf("Board() = %v, expected no error", err)
	}
	if err := e.Board(); err != nil {
		t.Errorf("Board() = %v, expected no error", err)
	}
	if !e.Full() {
		t.Errorf("Full() = false at capacity")
	}
	if err := e.Board(); err == nil {
		t.Errorf("Board() above capacity should fail")
	}
	e.Alight()
	if e.Load() != 1 {
		t.Errorf("Load() = %d, expected 1", e.Load())
	}
}

func TestMaintenanceImmediate(t *testing.T) {
	e := newTestElevator(t, 0)
	e.StartMaintenance()
	if e.Status() != StatusMaintenance {
		t.Fatalf("Status() = %v, expected Maintenance", e.Status())
	}
	if e.AcceptsAssignments() {
		t.Errorf("AcceptsAssignments() = true in maintenance")
	}
	if _, served := e.Tick(); served || e.Floor() != 0 {
		t.Errorf("car moved while in maintenance")
	}
	if !e.EndMaintenance() {
		t.Errorf("EndMaintenance() = false, expected true")
	}
	if e.Status() != StatusIdle {
		t.Errorf("Status() = %v after EndMaintenance, expected Idle", e.Status())
	}
}

func TestMaintenanceDrainsFirst(t *testing.T) {
	e := newTestElevator(t, 0)
	e.Board()
	e.AddStop(2)
	e.StartMaintenance()

	if e.Status() == StatusMaintenance {
		t.Fatalf("entered maintenance with a passenger aboard")
	}
	if e.AcceptsAssignments() {
		t.Errorf("draining car still accepts assignments")
	}

	e.Tick() // -> 1
	floor, served := e.Tick()
	if !served || floor != 2 {
		t.Fatalf("Tick() = (%d, %v), expected drop-off stop at 2", floor, served)
	}
	e.Alight()
	e.Tick()
	if e.Status() != StatusMaintenance {
		t.Errorf("Status() = %v after draining, expected Maintenance", e.Status())
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	e := newTestElevator(t, 0)
	e.AddStop(5)
	snap := e.Snapshot()
	snap.PendingStops[0] = 9
	if got := e.PendingStops(); !reflect.DeepEqual(got, []int{5}) {
		t.Errorf("PendingStops() = %v, snapshot mutation leaked into car", got)
	}
}
