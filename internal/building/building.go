package building

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/xyproto/randomstring"

	"elevatorsim/internal/logger"
)

var Log = logger.GetLogger()

const generatedNameLen = 10

// Building is the static floor-range context shared read-only by the
// scheduler. It is immutable after creation: the valid floor range is
// [-floorsBelow, floorsAbove] with ground floor 0.
type Building struct {
	id          uuid.UUID
	name        string
	floorsAbove int
	floorsBelow int
}

func New(name string, floorsAbove, floorsBelow int) (*Building, error) {
	if floorsAbove < 1 {
		return nil, fmt.Errorf("building needs at least one floor above ground, got %d", floorsAbove)
	}
	if floorsBelow < 0 {
		return nil, fmt.Errorf("basement floor count must not be negative, got %d", floorsBelow)
	}

	if name == "" {
		name = randomstring.EnglishFrequencyString(generatedNameLen)
		Log.Warn().Msgf("No building name provided, generated random name \"%v\"", name)
	}

	return &Building{
		id:          uuid.New(),
		name:        name,
		floorsAbove: floorsAbove,
		floorsBelow: floorsBelow,
	}, nil
}

func (b *Building) ID() uuid.UUID { return b.id }

func (b *Building) Name() string { return b.name }

func (b *Building) MinFloor() int { return -b.floorsBelow }

func (b *Building) MaxFloor() int { return b.floorsAbove }

// FloorSpan is the number of distinct floors, basements included.
func (b *Building) FloorSpan() int { return b.floorsAbove + b.floorsBelow + 1 }

func (b *Building) InRange(floor int) bool {
	return floor >= b.MinFloor() && floor <= b.MaxFloor()
}

func (b *Building) String() string {
	return fmt.Sprintf("Building(id=%s, name=%s, floors=[%d,%d])", b.id, b.name, b.MinFloor(), b.MaxFloor())
}
