package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/louisbranch/expogo/internal/storage"
)

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open(" "); err == nil {
		t.Fatal("expected empty path error")
	}
}

func TestPutGetSolutionRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	now := time.Date(2026, time.October, 16, 9, 30, 0, 0, time.UTC)
	input := storage.Solution{X: 2, Y: 3, TrialOrder: "NESW", Result: "SEN", Possible: true, SolvedAt: now}
	if err := store.PutSolution(context.Background(), input); err != nil {
		t.Fatalf("put solution: %v", err)
	}

	got, err := store.GetSolution(context.Background(), 2, 3, "NESW")
	if err != nil {
		t.Fatalf("get solution: %v", err)
	}
	if got.X != input.X || got.Y != input.Y || got.TrialOrder != input.TrialOrder {
		t.Fatalf("key = (%d, %d, %q), want (%d, %d, %q)", got.X, got.Y, got.TrialOrder, input.X, input.Y, input.TrialOrder)
	}
	if got.Result != input.Result || got.Possible != input.Possible {
		t.Fatalf("result = %q possible=%v, want %q possible=%v", got.Result, got.Possible, input.Result, input.Possible)
	}
	if !got.SolvedAt.Equal(now) {
		t.Fatalf("solved_at = %v, want %v", got.SolvedAt, now)
	}
}

func TestPutSolutionUpsertsSameKey(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	first := time.Date(2026, time.October, 16, 9, 0, 0, 0, time.UTC)
	if err := store.PutSolution(context.Background(), storage.Solution{X: 2, Y: 2, TrialOrder: "NESW", Result: "IMPOSSIBLE", SolvedAt: first}); err != nil {
		t.Fatalf("put first: %v", err)
	}
	second := first.Add(time.Hour)
	if err := store.PutSolution(context.Background(), storage.Solution{X: 2, Y: 2, TrialOrder: "NESW", Result: "IMPOSSIBLE", SolvedAt: second}); err != nil {
		t.Fatalf("put second: %v", err)
	}

	got, err := store.GetSolution(context.Background(), 2, 2, "NESW")
	if err != nil {
		t.Fatalf("get solution: %v", err)
	}
	if !got.SolvedAt.Equal(second) {
		t.Fatalf("solved_at = %v, want %v", got.SolvedAt, second)
	}
	if got.Possible {
		t.Fatal("expected impossible solution")
	}

	all, err := store.ListSolutions(context.Background(), 10)
	if err != nil {
		t.Fatalf("list solutions: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected one row after upsert, got %d", len(all))
	}
}

func TestGetSolutionKeysOnTrialOrder(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	if err := store.PutSolution(context.Background(), storage.Solution{X: 3, Y: 0, TrialOrder: "NESW", Result: "EE", Possible: true}); err != nil {
		t.Fatalf("put solution: %v", err)
	}
	_, err := store.GetSolution(context.Background(), 3, 0, "WSEN")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("get with other order error = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestListSolutionsNewestFirst(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	base := time.Date(2026, time.October, 16, 10, 0, 0, 0, time.UTC)
	inputs := []storage.Solution{
		{X: 2, Y: 3, TrialOrder: "NESW", Result: "SEN", Possible: true, SolvedAt: base},
		{X: -2, Y: -3, TrialOrder: "NESW", Result: "NWS", Possible: true, SolvedAt: base.Add(2 * time.Minute)},
		{X: 3, Y: 0, TrialOrder: "NESW", Result: "EE", Possible: true, SolvedAt: base.Add(time.Minute)},
	}
	for _, input := range inputs {
		if err := store.PutSolution(context.Background(), input); err != nil {
			t.Fatalf("put solution: %v", err)
		}
	}

	got, err := store.ListSolutions(context.Background(), 2)
	if err != nil {
		t.Fatalf("list solutions: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 solutions, got %d", len(got))
	}
	if got[0].Result != "NWS" || got[1].Result != "EE" {
		t.Fatalf("unexpected order: %q, %q", got[0].Result, got[1].Result)
	}
}

func TestStoreValidation(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	if err := store.PutSolution(ctx, storage.Solution{Result: "N"}); err == nil {
		t.Fatal("expected missing trial order error")
	}
	if err := store.PutSolution(ctx, storage.Solution{TrialOrder: "NESW"}); err == nil {
		t.Fatal("expected missing result error")
	}
	if _, err := store.GetSolution(ctx, 0, 1, ""); err == nil {
		t.Fatal("expected missing trial order error")
	}
	if _, err := store.ListSolutions(ctx, 0); err == nil {
		t.Fatal("expected non-positive limit error")
	}
}

func TestStoreRejectsCancelledContext(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := store.PutSolution(ctx, storage.Solution{TrialOrder: "NESW", Result: "N"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("put error = %v, want %v", err, context.Canceled)
	}
}

func TestNilStore(t *testing.T) {
	t.Parallel()

	var store *Store
	if err := store.Close(); err != nil {
		t.Fatalf("close nil store: %v", err)
	}
	if err := store.PutSolution(context.Background(), storage.Solution{}); err == nil {
		t.Fatal("expected unconfigured storage error")
	}
}

func TestReopenKeepsSolutions(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "ledger.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := store.PutSolution(context.Background(), storage.Solution{X: 0, Y: 1, TrialOrder: "NESW", Result: "N", Possible: true}); err != nil {
		t.Fatalf("put solution: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer reopened.Close()
	got, err := reopened.GetSolution(context.Background(), 0, 1, "NESW")
	if err != nil {
		t.Fatalf("get after reopen: %v", err)
	}
	if got.Result != "N" {
		t.Fatalf("result = %q, want %q", got.Result, "N")
	}
}

func openTempStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "ledger.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}
	})
	return store
}
