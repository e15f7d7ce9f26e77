package simevent

// Event wraps one of the concrete tick-event structs below. Go has no union
// types, so the wrapper carries the variant as an any.
type Event struct {
	Value any
}

// Arrived is emitted when a car stops at a floor and opens its doors.
type Arrived struct {
	Tick     int
	Elevator int
	Floor    int
}

func (e Arrived) Wrap() Event {
	return Event{Value: e}
}

// PickedUp is emitted when a hall call is served at its origin floor.
type PickedUp struct {
	Tick     int
	Elevator int
	Request  int
	Floor    int
}

func (e PickedUp) Wrap() Event {
	return Event{Value: e}
}

// DroppedOff is emitted when a cab call completes at its destination floor.
type DroppedOff struct {
	Tick     int
	Elevator int
	Request  int
	Floor    int
}

func (e DroppedOff) Wrap() Event {
	return Event{Value: e}
}

func (e *Event) Type() string {
	switch e.Value.(type) {
	case Arrived:
		return "Arrived"
	case PickedUp:
		return "PickedUp"
	case DroppedOff:
		return "DroppedOff"
	default:
		return "UnknownEvent"
	}
}
