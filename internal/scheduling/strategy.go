package scheduling

import (
	"fmt"

	"elevatorsim/internal/building"
	"elevatorsim/internal/elevator"
	"elevatorsim/internal/request"
)

// Strategy scores how well a car fits a request; lower is better. Eligibility
// (maintenance, full car) is the manager's concern, so Cost only sees cars
// that are valid targets.
type Strategy interface {
	Name() string
	Cost(req *request.Request, snap elevator.Snapshot, b *building.Building) float64
}

const (
	ShortestPathName    = "shortest_path"
	LeastBusyName       = "least_busy"
	EnergyEfficientName = "energy_efficient"
)

// New builds the strategy selected by name. reversalPenalty and loadFactor
// only apply to the energy-efficient strategy.
func New(name string, reversalPenalty, loadFactor float64) (Strategy, error) {
	switch name {
	case ShortestPathName:
		return ShortestPath{}, nil
	case LeastBusyName:
		return LeastBusy{}, nil
	case EnergyEfficientName:
		return EnergyEfficient{ReversalPenalty: reversalPenalty, LoadFactor: loadFactor}, nil
	default:
		return nil, fmt.Errorf("unknown scheduling strategy %q", name)
	}
}

// ShortestPath charges the floor distance to the request's origin, plus a
// detour penalty of twice the remaining travel to the car's farthest pending
// stop when the car is moving away and must finish its sweep first.
type ShortestPath struct{}

func (ShortestPath) Name() string { return ShortestPathName }

func (ShortestPath) Cost(req *request.Request, snap elevator.Snapshot, b *building.Building) float64 {
	cost := snap.DistanceTo(req.Origin())
	if snap.MovingAwayFrom(req.Origin()) {
		if far, ok := snap.FarthestStopToward(snap.Direction); ok {
			cost += 2 * snap.DistanceTo(far)
		}
	}
	return float64(cost)
}

// LeastBusy charges the size of the car's commitment, using the shortest-path
// cost as a fractional tie-break so equally busy cars are split by distance
// before the id tie-break.
type LeastBusy struct{}

func (LeastBusy) Name() string { return LeastBusyName }

func (LeastBusy) Cost(req *request.Request, snap elevator.Snapshot, b *building.Building) float64 {
	// Shortest-path cost is bounded by 3x the floor span, so dividing keeps
	// the tie-break strictly below one commitment step.
	tieBreak := ShortestPath{}.Cost(req, snap, b) / float64(3*b.FloorSpan()+1)
	return float64(len(snap.PendingStops)) + tieBreak
}

// EnergyEfficient favors cars already sweeping in a compatible direction with
// few reversals and a light load.
type EnergyEfficient struct {
	ReversalPenalty float64
	LoadFactor      float64
}

func (EnergyEfficient) Name() string { return EnergyEfficientName }

func (s EnergyEfficient) Cost(req *request.Request, snap elevator.Snapshot, b *building.Building) float64 {
	cost := float64(snap.DistanceTo(req.Origin()))
	cost += s.ReversalPenalty * float64(snap.Reversals)
	if snap.Capacity > 0 {
		cost += s.LoadFactor * float64(snap.Load) / float64(snap.Capacity)
	}
	return cost
}
