// Package expogo decides whether a target can be reached by jumps of
// length 1, 2, 4, ... along the cardinal directions, and builds one
// jump sequence when it can.
package expogo

import (
	"errors"
	"fmt"
)

// Impossible is the rendered result for unreachable targets.
const Impossible = "IMPOSSIBLE"

// MaxCoordinate bounds |X| and |Y| so every intermediate sum fits in int64.
const MaxCoordinate int64 = 1 << 60

var (
	// ErrOutOfRange indicates a coordinate beyond MaxCoordinate.
	ErrOutOfRange = errors.New("coordinate out of range")
	// ErrUnreachable indicates the search ran out of directions or finished
	// away from the origin.
	ErrUnreachable = errors.New("search did not reach the origin")
)

// Target is a destination relative to the origin.
type Target struct {
	X int64
	Y int64
}

// Validate checks that both coordinates are within MaxCoordinate.
func (t Target) Validate() error {
	if !inRange(t.X) || !inRange(t.Y) {
		return fmt.Errorf("%w: (%d, %d) exceeds %d", ErrOutOfRange, t.X, t.Y, MaxCoordinate)
	}
	return nil
}

// inRange compares the raw value so that math.MinInt64, whose absolute
// value does not fit in int64, is rejected too.
func inRange(v int64) bool {
	return v >= -MaxCoordinate && v <= MaxCoordinate
}

// Goal returns the Manhattan sum |X|+|Y|. It is only meaningful for a
// target that passes Validate.
func (t Target) Goal() int64 {
	return abs(t.X) + abs(t.Y)
}

func (t Target) String() string {
	return fmt.Sprintf("(%d, %d)", t.X, t.Y)
}

// Result is the outcome of solving one target.
type Result struct {
	Target   Target
	Path     Path
	Possible bool
}

// String renders the path, or Impossible when no path exists.
func (r Result) String() string {
	if !r.Possible {
		return Impossible
	}
	return r.Path.String()
}

// Solver searches for jump sequences using a fixed trial order.
// A Solver holds no per-target state and is safe for concurrent use.
type Solver struct {
	order TrialOrder
}

// NewSolver returns a Solver that tries directions in order. An invalid
// order falls back to DefaultTrialOrder.
func NewSolver(order TrialOrder) *Solver {
	if !order.Valid() {
		order = DefaultTrialOrder
	}
	return &Solver{order: order}
}

// Order returns the trial order used by s.
func (s *Solver) Order() TrialOrder {
	if s == nil || s.order == (TrialOrder{}) {
		return DefaultTrialOrder
	}
	return s.order
}

var defaultSolver = NewSolver(DefaultTrialOrder)

// Solve solves target with DefaultTrialOrder.
func Solve(target Target) (Result, error) {
	return defaultSolver.Solve(target)
}

// Solve decides whether target is reachable and returns one path if so.
//
// An even Manhattan sum is unreachable: the first jump has length 1 and
// every later jump is even, so the sum's parity is fixed at odd. This
// includes the origin itself. For an odd sum the search starts at its
// most significant bit and places one jump per bit down to bit 0, so the
// path has MostSignificantBit(goal)+1 jumps.
func (s *Solver) Solve(target Target) (Result, error) {
	if err := target.Validate(); err != nil {
		return Result{}, err
	}

	goal := target.Goal()
	if goal%2 == 0 {
		return Result{Target: target}, nil
	}

	msb := MostSignificantBit(goal)
	path, err := s.search(msb, target.X, target.Y, make(Path, 0, msb+1))
	if err != nil {
		return Result{}, fmt.Errorf("solve %s: %w", target, err)
	}
	return Result{Target: target, Path: path, Possible: true}, nil
}

// search places the jump of length 2^bit and then everything smaller.
// Directions are appended after the recursive call returns, so the path
// comes out with the length-1 jump first.
func (s *Solver) search(bit int, x, y int64, path Path) (Path, error) {
	if bit == -1 {
		if x != 0 || y != 0 {
			return nil, fmt.Errorf("%w: residue (%d, %d)", ErrUnreachable, x, y)
		}
		return path, nil
	}

	for _, d := range s.Order() {
		nextX := JumpX(bit, x, d)
		nextY := JumpY(bit, y, d)
		if !CanReach(bit-1, abs(nextX)+abs(nextY)) {
			continue
		}
		rest, err := s.search(bit-1, nextX, nextY, path)
		if err != nil {
			return nil, err
		}
		return append(rest, d), nil
	}
	return nil, fmt.Errorf("%w: no direction fits bit %d at (%d, %d)", ErrUnreachable, bit, x, y)
}
