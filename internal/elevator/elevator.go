package elevator

import (
	"fmt"
)

// Elevator is the state machine for a single car. It owns its pending-stop
// set and motion state and advances one discrete tick at a time. All request
// bookkeeping lives with the manager; the car only knows floors.
type Elevator struct {
	id       int
	floor    int
	dir      Direction
	status   Status
	stops    stopSet
	capacity int
	load     int

	minFloor int
	maxFloor int

	// travel bookkeeping, consumed by the energy-efficient strategy
	reversals      int
	floorsTraveled int

	// draining means maintenance was requested while passengers were still
	// aboard or stops were outstanding; the car serves them, accepts nothing
	// new, and enters maintenance once empty.
	draining bool
}

func New(id, startFloor, minFloor, maxFloor, capacity int) (*Elevator, error) {
	if startFloor < minFloor || startFloor > maxFloor {
		return nil, fmt.Errorf("start floor %d outside range [%d,%d]", startFloor, minFloor, maxFloor)
	}
	if capacity < 1 {
		return nil, fmt.Errorf("capacity must be at least 1, got %d", capacity)
	}
	return &Elevator{
		id:       id,
		floor:    startFloor,
		dir:      Idle,
		status:   StatusIdle,
		stops:    newStopSet(),
		capacity: capacity,
		minFloor: minFloor,
		maxFloor: maxFloor,
	}, nil
}

func (e *Elevator) ID() int              { return e.id }
func (e *Elevator) Floor() int           { return e.floor }
func (e *Elevator) Direction() Direction { return e.dir }
func (e *Elevator) Status() Status       { return e.status }
func (e *Elevator) Capacity() int        { return e.capacity }
func (e *Elevator) Load() int            { return e.load }
func (e *Elevator) Full() bool           { return e.load >= e.capacity }
func (e *Elevator) Draining() bool       { return e.draining }
func (e *Elevator) PendingStops() []int  { return e.stops.sorted() }

// AcceptsAssignments reports whether the car is a valid target for new
// external assignments.
func (e *Elevator) AcceptsAssignments() bool {
	return e.status != StatusMaintenance && !e.draining && !e.Full()
}

func (e *Elevator) AddStop(floor int) error {
	if floor < e.minFloor || floor > e.maxFloor {
		return fmt.Errorf("stop floor %d outside range [%d,%d]", floor, e.minFloor, e.maxFloor)
	}
	e.stops.add(floor)
	return nil
}

// Board adds one passenger. The scheduler excludes full cars, so hitting the
// capacity limit here is a caller bug.
func (e *Elevator) Board() error {
	if e.Full() {
		return fmt.Errorf("elevator %d at capacity %d", e.id, e.capacity)
	}
	e.load++
	return nil
}

func (e *Elevator) Alight() {
	if e.load > 0 {
		e.load--
	}
}

// StartMaintenance takes the car out of service. With passengers aboard or
// stops outstanding the car drains first: it serves what it already owes and
// enters maintenance on the first tick it is empty.
func (e *Elevator) StartMaintenance() {
	if e.status == StatusMaintenance {
		return
	}
	if e.load == 0 && e.stops.empty() {
		e.status = StatusMaintenance
		e.dir = Idle
		return
	}
	e.draining = true
}

func (e *Elevator) EndMaintenance() bool {
	e.draining = false
	if e.status != StatusMaintenance {
		return false
	}
	e.status = StatusIdle
	return true
}

// Tick advances the car by one simulation step. It returns the floor served
// this tick, if any: the car stopped there, removed the pending stop, and
// opened its doors.
func (e *Elevator) Tick() (int, bool) {
	if e.status == StatusMaintenance {
		return 0, false
	}

	closing := e.status == StatusDoorsOpen
	if closing {
		e.status = StatusIdle
	}

	if e.stops.empty() {
		e.dir = Idle
		if e.draining && e.load == 0 {
			e.status = StatusMaintenance
			e.draining = false
		} else {
			e.status = StatusIdle
		}
		return 0, false
	}

	// A pending stop at the current floor is served without moving. This also
	// covers stops added while the doors were open.
	if e.stops.has(e.floor) {
		return e.serveCurrentFloor()
	}

	dir := e.chooseDirection()
	e.setDirection(dir)
	e.status = StatusMoving
	if closing {
		// Doors just closed; movement resumes next tick.
		return 0, false
	}

	e.floor += int(dir)
	e.floorsTraveled++
	if e.stops.has(e.floor) {
		return e.serveCurrentFloor()
	}
	return 0, false
}

func (e *Elevator) serveCurrentFloor() (int, bool) {
	e.stops.remove(e.floor)
	e.status = StatusDoorsOpen
	return e.floor, true
}

// chooseDirection applies the sweep rule: keep going while pending stops
// remain strictly ahead in the travel direction, otherwise reverse. From
// idle the car heads for the nearest pending stop.
func (e *Elevator) chooseDirection() Direction {
	switch e.dir {
	case Up:
		if e.stops.anyAbove(e.floor) {
			return Up
		}
		if e.stops.anyBelow(e.floor) {
			return Down
		}
	case Down:
		if e.stops.anyBelow(e.floor) {
			return Down
		}
		if e.stops.anyAbove(e.floor) {
			return Up
		}
	case Idle:
		if target, ok := e.stops.nearest(e.floor); ok {
			if target > e.floor {
				return Up
			}
			return Down
		}
	}
	return Idle
}

func (e *Elevator) setDirection(dir Direction) {
	if (e.dir == Up && dir == Down) || (e.dir == Down && dir == Up) {
		e.reversals++
	}
	e.dir = dir
}
