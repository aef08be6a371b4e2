package expogo

import (
	"errors"
	"fmt"
)

// MaxPathLength is the longest path Walk accepts. Paths produced by Solve
// for targets within MaxCoordinate are never longer.
const MaxPathLength = 62

// ErrPathMismatch indicates a path that does not land on its target.
var ErrPathMismatch = errors.New("path does not land on target")

// Walk applies path forward from the origin, jump i having length 2^i,
// and returns the landing point.
func Walk(path Path) (Target, error) {
	if len(path) > MaxPathLength {
		return Target{}, fmt.Errorf("%w: path has %d jumps, limit %d", ErrOutOfRange, len(path), MaxPathLength)
	}

	var at Target
	for i, d := range path {
		if !d.Valid() {
			return Target{}, fmt.Errorf("jump %d: %w: %s", i+1, ErrInvalidDirection, d)
		}
		dx, dy := d.Delta()
		step := int64(1) << i
		at.X += dx * step
		at.Y += dy * step
	}
	return at, nil
}

// Verify checks that path lands exactly on target.
func Verify(target Target, path Path) error {
	landed, err := Walk(path)
	if err != nil {
		return err
	}
	if landed != target {
		return fmt.Errorf("%w: %q lands on %s, want %s", ErrPathMismatch, path.String(), landed, target)
	}
	return nil
}
