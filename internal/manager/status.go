package manager

import (
	"github.com/tiendc/go-deepcopy"

	"elevatorsim/internal/elevator"
	"elevatorsim/internal/request"
)

// Status is the read-only snapshot returned by GetStatus.
type Status struct {
	Tick      int                 `json:"tick"`
	Building  BuildingStatus      `json:"building"`
	Elevators []elevator.Snapshot `json:"elevators"`
	Requests  []request.Snapshot  `json:"requests"`
}

type BuildingStatus struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	MinFloor int    `json:"min_floor"`
	MaxFloor int    `json:"max_floor"`
}

// GetStatus reports every elevator and request, in ascending id order.
// Pending requests that have outlived the starvation threshold are flagged;
// they are never dropped and keep being retried every tick. The result is a
// deep copy, so callers can hold or mutate it freely.
func (m *Manager) GetStatus() Status {
	m.mu.Lock()
	defer m.mu.Unlock()

	st := Status{
		Tick: m.tick,
		Building: BuildingStatus{
			ID:       m.building.ID().String(),
			Name:     m.building.Name(),
			MinFloor: m.building.MinFloor(),
			MaxFloor: m.building.MaxFloor(),
		},
		Elevators: make([]elevator.Snapshot, 0, len(m.elevatorIDs)),
		Requests:  make([]request.Snapshot, 0, len(m.requestIDs)),
	}

	for _, eid := range m.elevatorIDs {
		st.Elevators = append(st.Elevators, m.elevators[eid].Snapshot())
	}
	for _, rid := range m.requestIDs {
		req := m.requests[rid]
		snap := req.Snapshot()
		snap.Starved = req.Status() == request.Pending && req.WaitTicks(m.tick) >= m.starvationTicks
		st.Requests = append(st.Requests, snap)
	}

	var out Status
	if err := deepcopy.Copy(&out, &st); err != nil {
		Log.Error().Msgf("Deep-copying status snapshot: %v", err)
		return st
	}
	return out
}

// RequestsByStatus filters the request snapshots by lifecycle status.
func (m *Manager) RequestsByStatus(status request.Status) []request.Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []request.Snapshot
	for _, rid := range m.requestIDs {
		req := m.requests[rid]
		if req.Status() != status {
			continue
		}
		snap := req.Snapshot()
		snap.Starved = req.Status() == request.Pending && req.WaitTicks(m.tick) >= m.starvationTicks
		out = append(out, snap)
	}
	return out
}
