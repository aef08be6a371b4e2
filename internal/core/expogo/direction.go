package expogo

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidDirection indicates a direction outside N, E, S, W.
	ErrInvalidDirection = errors.New("invalid direction")
	// ErrInvalidTrialOrder indicates a trial order that is not a permutation of N, E, S, W.
	ErrInvalidTrialOrder = errors.New("trial order must be a permutation of NESW")
)

// Direction is one of the four cardinal jump directions.
type Direction byte

const (
	North Direction = 'N'
	East  Direction = 'E'
	South Direction = 'S'
	West  Direction = 'W'
)

// ParseDirection converts a single letter into a Direction.
// Lowercase letters are accepted.
func ParseDirection(r rune) (Direction, error) {
	switch r {
	case 'N', 'n':
		return North, nil
	case 'E', 'e':
		return East, nil
	case 'S', 's':
		return South, nil
	case 'W', 'w':
		return West, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, r)
	}
}

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	switch d {
	case North, East, South, West:
		return true
	default:
		return false
	}
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", byte(d))
	}
	return string(rune(d))
}

// Delta returns the forward unit vector for d. North is +y and East is +x.
func (d Direction) Delta() (dx, dy int64) {
	switch d {
	case North:
		return 0, 1
	case East:
		return 1, 0
	case South:
		return 0, -1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// Path is an ordered jump sequence. Index i holds the direction of the
// jump of length 2^i.
type Path []Direction

// ParsePath converts a string such as "SEN" into a Path.
func ParsePath(value string) (Path, error) {
	value = strings.TrimSpace(value)
	path := make(Path, 0, len(value))
	for i, r := range value {
		d, err := ParseDirection(r)
		if err != nil {
			return nil, fmt.Errorf("jump %d: %w", i+1, err)
		}
		path = append(path, d)
	}
	return path, nil
}

func (p Path) String() string {
	var b strings.Builder
	b.Grow(len(p))
	for _, d := range p {
		b.WriteByte(byte(d))
	}
	return b.String()
}

// TrialOrder is the order in which the search tries directions at each
// bit. The first direction that keeps the remaining target reachable wins,
// so the order decides which of the valid paths is produced.
type TrialOrder [4]Direction

// DefaultTrialOrder tries North, East, South, then West.
var DefaultTrialOrder = TrialOrder{North, East, South, West}

// ParseTrialOrder parses a four letter permutation such as "NESW".
func ParseTrialOrder(value string) (TrialOrder, error) {
	value = strings.TrimSpace(value)
	if len(value) != len(TrialOrder{}) {
		return TrialOrder{}, fmt.Errorf("%w: %q", ErrInvalidTrialOrder, value)
	}

	var order TrialOrder
	seen := make(map[Direction]bool, len(order))
	for i, r := range value {
		d, err := ParseDirection(r)
		if err != nil {
			return TrialOrder{}, fmt.Errorf("%w: %q", ErrInvalidTrialOrder, value)
		}
		if seen[d] {
			return TrialOrder{}, fmt.Errorf("%w: %q repeats %s", ErrInvalidTrialOrder, value, d)
		}
		seen[d] = true
		order[i] = d
	}
	return order, nil
}

// Valid reports whether o contains each cardinal direction exactly once.
func (o TrialOrder) Valid() bool {
	_, err := ParseTrialOrder(o.String())
	return err == nil
}

func (o TrialOrder) String() string {
	return Path(o[:]).String()
}
