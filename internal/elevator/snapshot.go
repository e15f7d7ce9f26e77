package elevator

import (
	"encoding/json"

	"elevatorsim/internal/logger"
)

var Log = logger.GetLogger()

// Snapshot is a read-only copy of a car's state, handed to scheduling
// strategies and status consumers. Mutating it never affects the car.
type Snapshot struct {
	ID             int       `json:"id"`
	Floor          int       `json:"floor"`
	Direction      Direction `json:"direction"`
	Status         Status    `json:"status"`
	PendingStops   []int     `json:"pending_stops"`
	Capacity       int       `json:"capacity"`
	Load           int       `json:"load"`
	Reversals      int       `json:"reversals"`
	FloorsTraveled int       `json:"floors_traveled"`
}

func (e *Elevator) Snapshot() Snapshot {
	return Snapshot{
		ID:             e.id,
		Floor:          e.floor,
		Direction:      e.dir,
		Status:         e.status,
		PendingStops:   e.stops.sorted(),
		Capacity:       e.capacity,
		Load:           e.load,
		Reversals:      e.reversals,
		FloorsTraveled: e.floorsTraveled,
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

// DistanceTo is the absolute floor distance from the car to the given floor.
func (s Snapshot) DistanceTo(floor int) int {
	return distance(s.Floor, floor)
}

// MovingAwayFrom reports whether the car is traveling away from the given
// floor and would need a full reversal to reach it.
func (s Snapshot) MovingAwayFrom(floor int) bool {
	switch s.Direction {
	case Up:
		return floor < s.Floor
	case Down:
		return floor > s.Floor
	}
	return false
}

// FarthestStopToward returns the pending stop farthest from the car in the
// given travel direction, or false if none lies that way.
func (s Snapshot) FarthestStopToward(dir Direction) (int, bool) {
	found := false
	best := 0
	for _, f := range s.PendingStops {
		if (dir == Up && f > s.Floor) || (dir == Down && f < s.Floor) {
			if !found || distance(f, s.Floor) > distance(best, s.Floor) {
				best, found = f, true
			}
		}
	}
	return best, found
}
