package elevator

type Direction int

const (
	Down Direction = -1
	Idle Direction = 0
	Up   Direction = 1
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Idle:
		return "Idle"
	default:
		return "Undefined"
	}
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	default:
		return Idle
	}
}

type Status int

const (
	StatusIdle Status = iota
	StatusMoving
	StatusDoorsOpen
	StatusMaintenance
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "Idle"
	case StatusMoving:
		return "Moving"
	case StatusDoorsOpen:
		return "DoorsOpen"
	case StatusMaintenance:
		return "Maintenance"
	default:
		return "Undefined"
	}
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
