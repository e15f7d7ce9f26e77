package manager

import (
	"math"
	"sync"

	"elevatorsim/internal/building"
	"elevatorsim/internal/elevator"
	"elevatorsim/internal/logger"
	"elevatorsim/internal/request"
	"elevatorsim/internal/scheduling"
	"elevatorsim/internal/simevent"
)

var Log = logger.GetLogger()

const defaultStarvationTicks = 10

// Manager owns the elevator collection and the request queue of one building
// and advances the simulation clock. All mutation funnels through a single
// mutex, so a tick is atomic from the caller's perspective and concurrent
// request submissions land entirely before or after it.
type Manager struct {
	mu sync.Mutex

	building *building.Building
	strategy scheduling.Strategy

	elevators   map[int]*elevator.Elevator
	elevatorIDs []int // ascending; fixes iteration order for determinism
	requests    map[int]*request.Request
	requestIDs  []int

	nextElevatorID  int
	nextRequestID   int
	tick            int
	starvationTicks int
}

type Option func(*Manager)

// WithStarvationThreshold sets after how many unassigned ticks a pending
// request is flagged as starved in status output.
func WithStarvationThreshold(ticks int) Option {
	return func(m *Manager) {
		if ticks > 0 {
			m.starvationTicks = ticks
		}
	}
}

func New(b *building.Building, strategy scheduling.Strategy, opts ...Option) *Manager {
	m := &Manager{
		building:        b,
		strategy:        strategy,
		elevators:       make(map[int]*elevator.Elevator),
		requests:        make(map[int]*request.Request),
		nextElevatorID:  1,
		nextRequestID:   1,
		starvationTicks: defaultStarvationTicks,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AddElevator creates a car at startFloor and returns its id. Ids are small
// sequential ints: the scheduler's tie-break and the event ordering both rely
// on a stable total order over cars.
func (m *Manager) AddElevator(startFloor, capacity int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.building.InRange(startFloor) {
		return 0, validationErrorf("start floor %d outside building range [%d,%d]",
			startFloor, m.building.MinFloor(), m.building.MaxFloor())
	}

	id := m.nextElevatorID
	car, err := elevator.New(id, startFloor, m.building.MinFloor(), m.building.MaxFloor(), capacity)
	if err != nil {
		return 0, validationErrorf("%v", err)
	}

	m.nextElevatorID++
	m.elevators[id] = car
	m.elevatorIDs = append(m.elevatorIDs, id)
	Log.Debug().Msgf("Added elevator %d at floor %d with capacity %d", id, startFloor, capacity)
	return id, nil
}

// CreateExternalRequest registers a hall call. The request stays pending
// until the assignment pass of a later tick finds an eligible car.
func (m *Manager) CreateExternalRequest(floor int, dir elevator.Direction) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.building.InRange(floor) {
		return 0, validationErrorf("floor %d outside building range [%d,%d]",
			floor, m.building.MinFloor(), m.building.MaxFloor())
	}
	if dir != elevator.Up && dir != elevator.Down {
		return 0, validationErrorf("hall call direction must be Up or Down, got %v", dir)
	}

	id := m.nextRequestID
	m.nextRequestID++
	m.requests[id] = request.NewExternal(id, floor, dir, m.tick)
	m.requestIDs = append(m.requestIDs, id)
	Log.Debug().Msgf("External request %d: floor %d going %v", id, floor, dir)
	return id, nil
}

// CreateInternalRequest registers a cab call. The passenger is already
// aboard, so the request is born picked-up and the car's load grows now.
func (m *Manager) CreateInternalRequest(elevatorID, destination int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	car, ok := m.elevators[elevatorID]
	if !ok {
		return 0, &NotFoundError{Resource: "elevator", ID: elevatorID}
	}
	if car.Status() == elevator.StatusMaintenance {
		return 0, validationErrorf("elevator %d is in maintenance", elevatorID)
	}
	if !m.building.InRange(destination) {
		return 0, validationErrorf("destination floor %d outside building range [%d,%d]",
			destination, m.building.MinFloor(), m.building.MaxFloor())
	}
	if destination == car.Floor() {
		return 0, validationErrorf("destination floor %d equals the elevator's current floor", destination)
	}
	if err := car.Board(); err != nil {
		return 0, validationErrorf("%v", err)
	}
	if err := car.AddStop(destination); err != nil {
		car.Alight()
		return 0, validationErrorf("%v", err)
	}

	id := m.nextRequestID
	m.nextRequestID++
	m.requests[id] = request.NewInternal(id, elevatorID, car.Floor(), destination, m.tick)
	m.requestIDs = append(m.requestIDs, id)
	Log.Debug().Msgf("Internal request %d: elevator %d to floor %d", id, elevatorID, destination)
	return id, nil
}

// StartMaintenance takes a car out of service. A car with passengers aboard
// or stops outstanding drains first and accepts no new assignments meanwhile.
func (m *Manager) StartMaintenance(elevatorID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	car, ok := m.elevators[elevatorID]
	if !ok {
		return &NotFoundError{Resource: "elevator", ID: elevatorID}
	}
	car.StartMaintenance()
	Log.Info().Msgf("Maintenance requested for elevator %d", elevatorID)
	return nil
}

func (m *Manager) EndMaintenance(elevatorID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	car, ok := m.elevators[elevatorID]
	if !ok {
		return &NotFoundError{Resource: "elevator", ID: elevatorID}
	}
	car.EndMaintenance()
	Log.Info().Msgf("Maintenance ended for elevator %d", elevatorID)
	return nil
}

// StepSimulation advances the clock by the given number of ticks. Each tick
// runs one assignment pass over pending requests and then advances every
// non-maintenance car exactly once. Events come back in elevator-id order,
// then ascending request id within each stop.
func (m *Manager) StepSimulation(ticks int) []simevent.Event {
	m.mu.Lock()
	defer m.mu.Unlock()

	var events []simevent.Event
	for i := 0; i < ticks; i++ {
		m.tick++
		m.assignPending()
		events = append(events, m.advanceElevators()...)
	}
	return events
}

// Tick returns the current simulation time.
func (m *Manager) Tick() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tick
}

// assignPending scores every eligible car for every pending request and
// binds the cheapest one. Strict less-than on the cost comparison keeps the
// lowest-id car on ties, since ids are scanned in ascending order. Requests
// with no eligible car stay pending and are retried next tick.
func (m *Manager) assignPending() {
	for _, rid := range m.requestIDs {
		req := m.requests[rid]
		if req.Status() != request.Pending {
			continue
		}

		bestID := 0
		bestCost := math.Inf(1)
		for _, eid := range m.elevatorIDs {
			car := m.elevators[eid]
			if !car.AcceptsAssignments() {
				continue
			}
			cost := m.strategy.Cost(req, car.Snapshot(), m.building)
			if cost < bestCost {
				bestID, bestCost = eid, cost
			}
		}

		if bestID == 0 {
			if req.WaitTicks(m.tick) == m.starvationTicks {
				Log.Warn().Msgf("Request %d has waited %d ticks without an eligible elevator", rid, m.starvationTicks)
			}
			continue
		}

		if err := req.Assign(bestID, m.tick); err != nil {
			Log.Error().Msgf("Assigning request %d: %v", rid, err)
			continue
		}
		if err := m.elevators[bestID].AddStop(req.Origin()); err != nil {
			Log.Error().Msgf("Adding stop for request %d: %v", rid, err)
			continue
		}
		Log.Debug().Msgf("Request %d assigned to elevator %d at cost %.2f", rid, bestID, bestCost)
	}
}

func (m *Manager) advanceElevators() []simevent.Event {
	var events []simevent.Event
	for _, eid := range m.elevatorIDs {
		car := m.elevators[eid]
		if car.Status() == elevator.StatusMaintenance {
			continue
		}
		floor, served := car.Tick()
		if !served {
			continue
		}
		events = append(events, simevent.Arrived{Tick: m.tick, Elevator: eid, Floor: floor}.Wrap())
		events = append(events, m.resolveStop(car, floor)...)
	}
	return events
}

// resolveStop transitions every request of this car that the stop satisfies,
// in ascending request-id order. A hall call is picked up at its origin; a
// cab call completes at its destination.
func (m *Manager) resolveStop(car *elevator.Elevator, floor int) []simevent.Event {
	var events []simevent.Event
	for _, rid := range m.requestIDs {
		req := m.requests[rid]
		if req.ElevatorID() != car.ID() {
			continue
		}

		switch {
		case req.Kind() == request.External && req.Status() == request.Assigned && req.Origin() == floor:
			if err := req.MarkPickedUp(); err != nil {
				Log.Error().Msgf("Picking up request %d: %v", rid, err)
				continue
			}
			events = append(events, simevent.PickedUp{Tick: m.tick, Elevator: car.ID(), Request: rid, Floor: floor}.Wrap())
			// A hall call carries no destination of its own; the passenger's
			// onward trip arrives as a cab call. The hall call is done once
			// the car has opened its doors at the origin.
			if err := req.Complete(m.tick); err != nil {
				Log.Error().Msgf("Completing request %d: %v", rid, err)
			}

		case req.Status() == request.PickedUp:
			dest, ok := req.Destination()
			if !ok || dest != floor {
				continue
			}
			if err := req.Complete(m.tick); err != nil {
				Log.Error().Msgf("Completing request %d: %v", rid, err)
				continue
			}
			car.Alight()
			events = append(events, simevent.DroppedOff{Tick: m.tick, Elevator: car.ID(), Request: rid, Floor: floor}.Wrap())
		}
	}
	return events
}
