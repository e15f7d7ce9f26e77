package request

import (
	"encoding/json"
	"fmt"

	"elevatorsim/internal/elevator"
	"elevatorsim/internal/logger"
)

var Log = logger.GetLogger()

type Kind int

const (
	External Kind = iota
	Internal
)

func (k Kind) String() string {
	switch k {
	case External:
		return "External"
	case Internal:
		return "Internal"
	default:
		return "Undefined"
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

type Status int

const (
	Pending Status = iota
	Assigned
	PickedUp
	Completed
	Rejected
)

func (s Status) String() string {
	switch s {
	case Pending:
		return "Pending"
	case Assigned:
		return "Assigned"
	case PickedUp:
		return "PickedUp"
	case Completed:
		return "Completed"
	case Rejected:
		return "Rejected"
	default:
		return "Undefined"
	}
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Request describes one desired trip. External requests are hall calls and
// carry only a travel direction; internal requests are cab calls and carry a
// destination. Tick stamps use -1 for "not yet".
type Request struct {
	id          int
	kind        Kind
	origin      int
	direction   elevator.Direction
	destination *int
	status      Status
	elevatorID  int

	createdAtTick   int
	assignedAtTick  int
	completedAtTick int
}

func NewExternal(id, floor int, dir elevator.Direction, tick int) *Request {
	return &Request{
		id:              id,
		kind:            External,
		origin:          floor,
		direction:       dir,
		status:          Pending,
		createdAtTick:   tick,
		assignedAtTick:  -1,
		completedAtTick: -1,
	}
}

func NewInternal(id, elevatorID, origin, destination, tick int) *Request {
	dest := destination
	dir := elevator.Up
	if destination < origin {
		dir = elevator.Down
	}
	return &Request{
		id:              id,
		kind:            Internal,
		origin:          origin,
		direction:       dir,
		destination:     &dest,
		status:          PickedUp, // the passenger is already aboard
		elevatorID:      elevatorID,
		createdAtTick:   tick,
		assignedAtTick:  tick,
		completedAtTick: -1,
	}
}

func (r *Request) ID() int                       { return r.id }
func (r *Request) Kind() Kind                    { return r.kind }
func (r *Request) Origin() int                   { return r.origin }
func (r *Request) Direction() elevator.Direction { return r.direction }
func (r *Request) Status() Status                { return r.status }
func (r *Request) ElevatorID() int               { return r.elevatorID }
func (r *Request) CreatedAtTick() int            { return r.createdAtTick }

// Destination returns the target floor and whether one is known.
func (r *Request) Destination() (int, bool) {
	if r.destination == nil {
		return 0, false
	}
	return *r.destination, true
}

// Assign binds the request to an elevator. Once assigned the binding is
// immutable; a second Assign is an error.
func (r *Request) Assign(elevatorID, tick int) error {
	if r.status != Pending {
		return fmt.Errorf("request %d is %v, only pending requests can be assigned", r.id, r.status)
	}
	r.elevatorID = elevatorID
	r.status = Assigned
	r.assignedAtTick = tick
	return nil
}

func (r *Request) MarkPickedUp() error {
	if r.status != Assigned {
		return fmt.Errorf("request %d is %v, only assigned requests can be picked up", r.id, r.status)
	}
	r.status = PickedUp
	return nil
}

func (r *Request) Complete(tick int) error {
	if r.status != PickedUp {
		return fmt.Errorf("request %d is %v, only picked-up requests can complete", r.id, r.status)
	}
	r.status = Completed
	r.completedAtTick = tick
	return nil
}

// WaitTicks is the number of ticks the request waited for assignment, judged
// against the given current tick while still pending.
func (r *Request) WaitTicks(currentTick int) int {
	if r.assignedAtTick >= 0 {
		return r.assignedAtTick - r.createdAtTick
	}
	return currentTick - r.createdAtTick
}

// Snapshot is the read-only view of a request exposed through GetStatus.
type Snapshot struct {
	ID              int                `json:"id"`
	Kind            Kind               `json:"kind"`
	Origin          int                `json:"origin"`
	Direction       elevator.Direction `json:"direction"`
	Destination     *int               `json:"destination,omitempty"`
	Status          Status             `json:"status"`
	Elevator        int                `json:"elevator,omitempty"`
	CreatedAtTick   int                `json:"created_at_tick"`
	AssignedAtTick  int                `json:"assigned_at_tick"`
	CompletedAtTick int                `json:"completed_at_tick"`
	Starved         bool               `json:"starved,omitempty"`
}

func (r *Request) Snapshot() Snapshot {
	return Snapshot{
		ID:              r.id,
		Kind:            r.kind,
		Origin:          r.origin,
		Direction:       r.direction,
		Destination:     r.destination,
		Status:          r.status,
		Elevator:        r.elevatorID,
		CreatedAtTick:   r.createdAtTick,
		AssignedAtTick:  r.assignedAtTick,
		CompletedAtTick: r.completedAtTick,
	}
}

func (s Snapshot) String() string {
	jsonData, err := json.Marshal(s)
	if err != nil {
		Log.Error().Msg("Error Serialising Snapshot Object to JSON")
		return ""
	}
	return string(jsonData)
}
