package elevator

import "sort"

// stopSet maintains the pending-stop floors of a single car. Floors may be
// negative (basements), so it is keyed rather than indexed.
type stopSet map[int]struct{}

func newStopSet() stopSet {
	return make(stopSet)
}

func (s stopSet) add(floor int) {
	s[floor] = struct{}{}
}

func (s stopSet) remove(floor int) {
	delete(s, floor)
}

func (s stopSet) has(floor int) bool {
	_, ok := s[floor]
	return ok
}

func (s stopSet) empty() bool {
	return len(s) == 0
}

func (s stopSet) anyAbove(floor int) bool {
	for f := range s {
		if f > floor {
			return true
		}
	}
	return false
}

func (s stopSet) anyBelow(floor int) bool {
	for f := range s {
		if f < floor {
			return true
		}
	}
	return false
}

// nearest returns the pending stop closest to floor. Ties go to the stop
// above, keeping the choice deterministic.
func (s stopSet) nearest(floor int) (int, bool) {
	best, found := 0, false
	for f := range s {
		if !found {
			best, found = f, true
			continue
		}
		df, dbest := distance(f, floor), distance(best, floor)
		if df < dbest || (df == dbest && f > best) {
			best = f
		}
	}
	return best, found
}

func (s stopSet) sorted() []int {
	floors := make([]int, 0, len(s))
	for f := range s {
		floors = append(floors, f)
	}
	sort.Ints(floors)
	return floors
}

func distance(a, b int) int {
	if a < b {
		return b - a
	}
	return a - b
}
