// Package ledger solves targets through an optional solution store.
//
// With a store, every solved target is recorded under its trial order and
// rows that disagree with the solver are replaced. Without one the Service
// is a thin wrapper around the solver.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/louisbranch/expogo/internal/core/expogo"
	"github.com/louisbranch/expogo/internal/storage"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Service solves targets, consulting and filling a SolutionStore.
type Service struct {
	solver *expogo.Solver
	store  storage.SolutionStore
	clock  func() time.Time
}

// NewService builds a Service. A nil solver uses the default trial order
// and a nil store disables the ledger.
func NewService(solver *expogo.Solver, store storage.SolutionStore) *Service {
	if solver == nil {
		solver = expogo.NewSolver(expogo.DefaultTrialOrder)
	}
	return &Service{solver: solver, store: store, clock: time.Now}
}

// Order returns the trial order the service solves with.
func (s *Service) Order() expogo.TrialOrder {
	return s.solver.Order()
}

// Solve returns the result for target.
//
// The solver always runs; the ledger only counts as a hit when it already
// holds exactly that result under the same trial order. Any other recorded
// row, even one whose path lands on the target, is overwritten.
func (s *Service) Solve(ctx context.Context, target expogo.Target) (expogo.Result, error) {
	if err := target.Validate(); err != nil {
		return expogo.Result{}, err
	}
	span := trace.SpanFromContext(ctx)

	var recorded storage.Solution
	found := false
	if s.store != nil {
		solution, err := s.store.GetSolution(ctx, target.X, target.Y, s.Order().String())
		switch {
		case err == nil:
			recorded, found = solution, true
		case errors.Is(err, storage.ErrNotFound):
			// not recorded yet
		default:
			return expogo.Result{}, fmt.Errorf("read ledger: %w", err)
		}
	}

	result, err := s.solver.Solve(target)
	if err != nil {
		return expogo.Result{}, err
	}

	hit := found && matches(recorded, result)
	span.SetAttributes(attribute.Bool("expogo.ledger.hit", hit))
	if s.store == nil || hit {
		return result, nil
	}

	if err := s.store.PutSolution(ctx, storage.Solution{
		X:          target.X,
		Y:          target.Y,
		TrialOrder: s.Order().String(),
		Result:     result.String(),
		Possible:   result.Possible,
		SolvedAt:   s.clock().UTC(),
	}); err != nil {
		return expogo.Result{}, fmt.Errorf("write ledger: %w", err)
	}
	return result, nil
}

// matches reports whether recorded holds result as the solver renders it.
func matches(recorded storage.Solution, result expogo.Result) bool {
	return recorded.Possible == result.Possible && recorded.Result == result.String()
}
