package summing

import (
	"context"
	"errors"
	"math"
	"testing"

	apperrors "github.com/AniDashyan/parallel-summation/internal/errors"
)

// allSummers returns the four strategy implementations in run order.
func allSummers() []Summer {
	return []Summer{SequentialSummer{}, LockSummer{}, AtomicSummer{}, ReduceSummer{}}
}

// parallelSummers returns only the three concurrent strategies.
func parallelSummers() []Summer {
	return []Summer{LockSummer{}, AtomicSummer{}, ReduceSummer{}}
}

// TestScenarioEightElements walks the reference scenario: arr = [1..8] with
// four workers partitions into [0,2) [2,4) [4,6) [6,8) with local sums
// 3, 7, 11, 15, and every strategy totals 36.
func TestScenarioEightElements(t *testing.T) {
	t.Parallel()

	arr := []int64{1, 2, 3, 4, 5, 6, 7, 8}
	const workers = 4

	wantLocals := []int64{3, 7, 11, 15}
	for i, want := range wantLocals {
		start, end := Partition(len(arr), workers, i)
		if got := SumRange(arr, start, end); got != want {
			t.Errorf("local sum for chunk %d [%d, %d) = %d, want %d", i, start, end, got, want)
		}
	}

	for _, s := range allSummers() {
		got, err := s.Sum(context.Background(), arr, workers)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", s.Name(), err)
		}
		if got != 36 {
			t.Errorf("%s: total = %d, want 36", s.Name(), got)
		}
	}
}

// TestStrategiesMatchBaseline checks cross-strategy equivalence over a grid
// of array shapes and worker counts, including degenerate and empty-chunk
// cases.
func TestStrategiesMatchBaseline(t *testing.T) {
	t.Parallel()

	arrays := map[string][]int64{
		"empty":          {},
		"single":         {41},
		"negatives":      {-3, -1, 4, -1, 5, -9, 2, 6},
		"uniform":        {7, 7, 7, 7, 7, 7, 7},
		"random small":   NewRandomArray(100, 1),
		"random larger":  NewRandomArray(10_000, 2),
		"three elements": {10, 20, 30},
	}

	for name, arr := range arrays {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			want := SumRange(arr, 0, len(arr))

			for workers := 1; workers <= len(arr)+8; workers++ {
				for _, s := range parallelSummers() {
					got, err := s.Sum(context.Background(), arr, workers)
					if err != nil {
						t.Fatalf("%s (workers=%d): unexpected error: %v", s.Name(), workers, err)
					}
					if got != want {
						t.Errorf("%s (workers=%d): total = %d, want %d", s.Name(), workers, got, want)
					}
				}
			}
		})
	}
}

// TestWraparoundIsIdenticalAcrossStrategies verifies that int64 overflow
// wraps the same way for every strategy: correctness is defined as matching
// the single-threaded baseline, not the true mathematical sum.
func TestWraparoundIsIdenticalAcrossStrategies(t *testing.T) {
	t.Parallel()

	arr := []int64{math.MaxInt64, 1, math.MaxInt64, 5, math.MinInt64, -1}
	want := SumRange(arr, 0, len(arr))

	for _, s := range allSummers() {
		for workers := 1; workers <= len(arr)+2; workers++ {
			got, err := s.Sum(context.Background(), arr, workers)
			if err != nil {
				t.Fatalf("%s (workers=%d): unexpected error: %v", s.Name(), workers, err)
			}
			if got != want {
				t.Errorf("%s (workers=%d): total = %d, want %d (wraparound divergence)",
					s.Name(), workers, got, want)
			}
		}
	}
}

// TestDeterminismUnderConcurrency runs the atomic and reduce strategies
// repeatedly on a fixed workload: the total must never vary with the
// interleaving.
func TestDeterminismUnderConcurrency(t *testing.T) {
	t.Parallel()

	arr := NewRandomArray(50_000, 7)
	const workers = 8
	want := SumRange(arr, 0, len(arr))

	for _, s := range []Summer{AtomicSummer{}, ReduceSummer{}} {
		t.Run(s.Name(), func(t *testing.T) {
			t.Parallel()
			for run := 0; run < 100; run++ {
				got, err := s.Sum(context.Background(), arr, workers)
				if err != nil {
					t.Fatalf("run %d: unexpected error: %v", run, err)
				}
				if got != want {
					t.Fatalf("run %d: total = %d, want %d", run, got, want)
				}
			}
		})
	}
}

// TestSumContractViolations verifies that every strategy rejects an invalid
// worker count with a ConfigError instead of panicking or hanging.
func TestSumContractViolations(t *testing.T) {
	t.Parallel()

	arr := []int64{1, 2, 3}
	for _, s := range allSummers() {
		for _, workers := range []int{0, -1} {
			_, err := s.Sum(context.Background(), arr, workers)
			var cfgErr apperrors.ConfigError
			if !errors.As(err, &cfgErr) {
				t.Errorf("%s (workers=%d): error = %v, want ConfigError", s.Name(), workers, err)
			}
		}
	}
}

// TestSumCancelledContext verifies that a context cancelled before the call
// prevents workers from being spawned.
func TestSumCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, s := range allSummers() {
		_, err := s.Sum(ctx, []int64{1, 2, 3}, 2)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("%s: error = %v, want context.Canceled", s.Name(), err)
		}
	}
}

// TestStrategyNames pins the display names the report table depends on.
func TestStrategyNames(t *testing.T) {
	t.Parallel()

	want := []string{"Single-threaded", "Lock-based", "Atomic-based", "Reduce-based"}
	for i, s := range allSummers() {
		if s.Name() != want[i] {
			t.Errorf("summer %d: Name() = %q, want %q", i, s.Name(), want[i])
		}
	}
}
