package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound indicates a requested solution is missing.
var ErrNotFound = errors.New("record not found")

// Solution is one solved target. Result holds the rendered outcome: the
// direction string, or IMPOSSIBLE when Possible is false.
type Solution struct {
	X          int64
	Y          int64
	TrialOrder string
	Result     string
	Possible   bool
	SolvedAt   time.Time
}

// SolutionStore persists solved targets keyed by (X, Y, TrialOrder).
type SolutionStore interface {
	PutSolution(ctx context.Context, solution Solution) error
	GetSolution(ctx context.Context, x, y int64, trialOrder string) (Solution, error)
	ListSolutions(ctx context.Context, limit int) ([]Solution, error)
}
