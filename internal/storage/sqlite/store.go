// Package sqlite provides a SQLite-backed solution ledger.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/louisbranch/expogo/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/expogo/internal/storage"
	"github.com/louisbranch/expogo/internal/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store persists solutions in SQLite.
type Store struct {
	sqlDB *sql.DB
}

var _ storage.SolutionStore = (*Store)(nil)

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite ledger at path and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(context.Background(), sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// PutSolution records a solution, replacing any row with the same key.
func (s *Store) PutSolution(ctx context.Context, solution storage.Solution) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	trialOrder := strings.TrimSpace(solution.TrialOrder)
	result := strings.TrimSpace(solution.Result)
	if trialOrder == "" {
		return fmt.Errorf("trial order is required")
	}
	if result == "" {
		return fmt.Errorf("result is required")
	}
	solvedAt := solution.SolvedAt.UTC()
	if solvedAt.IsZero() {
		solvedAt = time.Now().UTC()
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO solutions (x, y, trial_order, result, possible, solved_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (x, y, trial_order) DO UPDATE SET
		   result = excluded.result,
		   possible = excluded.possible,
		   solved_at = excluded.solved_at`,
		solution.X,
		solution.Y,
		trialOrder,
		result,
		boolToInt(solution.Possible),
		toMillis(solvedAt),
	)
	if err != nil {
		return fmt.Errorf("put solution: %w", err)
	}
	return nil
}

// GetSolution returns the solution recorded for (x, y) under trialOrder.
func (s *Store) GetSolution(ctx context.Context, x, y int64, trialOrder string) (storage.Solution, error) {
	if err := ctx.Err(); err != nil {
		return storage.Solution{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Solution{}, fmt.Errorf("storage is not configured")
	}
	trialOrder = strings.TrimSpace(trialOrder)
	if trialOrder == "" {
		return storage.Solution{}, fmt.Errorf("trial order is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT x, y, trial_order, result, possible, solved_at
		   FROM solutions
		  WHERE x = ? AND y = ? AND trial_order = ?`,
		x, y, trialOrder,
	)
	solution, err := scanSolution(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Solution{}, storage.ErrNotFound
		}
		return storage.Solution{}, fmt.Errorf("get solution: %w", err)
	}
	return solution, nil
}

// ListSolutions returns up to limit solutions, most recently solved first.
func (s *Store) ListSolutions(ctx context.Context, limit int) ([]storage.Solution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than zero")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT x, y, trial_order, result, possible, solved_at
		   FROM solutions
		  ORDER BY solved_at DESC, x ASC, y ASC, trial_order ASC
		  LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list solutions: %w", err)
	}
	defer rows.Close()

	solutions := make([]storage.Solution, 0, limit)
	for rows.Next() {
		solution, err := scanSolution(rows)
		if err != nil {
			return nil, fmt.Errorf("scan solution: %w", err)
		}
		solutions = append(solutions, solution)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate solutions: %w", err)
	}
	return solutions, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSolution(row rowScanner) (storage.Solution, error) {
	var solution storage.Solution
	var possible int64
	var solvedAt int64
	if err := row.Scan(
		&solution.X,
		&solution.Y,
		&solution.TrialOrder,
		&solution.Result,
		&possible,
		&solvedAt,
	); err != nil {
		return storage.Solution{}, err
	}
	solution.Possible = possible != 0
	solution.SolvedAt = fromMillis(solvedAt)
	return solution, nil
}

func boolToInt(value bool) int64 {
	if value {
		return 1
	}
	return 0
}
