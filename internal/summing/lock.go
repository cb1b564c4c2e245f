package summing

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// LockSummer combines partial sums through a single mutex-guarded total.
//
// Each worker computes its local sum with no lock held, then acquires the
// mutex for exactly one add. The critical section is O(1) per worker, so as
// the worker count grows the acquisition cost dominates the combine phase;
// that contention is precisely what this strategy exists to measure.
type LockSummer struct{}

// Verify interface compliance.
var _ Summer = LockSummer{}

// Name returns the strategy's display name.
func (LockSummer) Name() string { return NameLock }

// Sum partitions the array, sums each chunk in its own goroutine, and merges
// the local sums into a shared total under a mutex. The errgroup Wait is the
// join barrier: the total is read only after every worker has released the
// lock and returned.
func (LockSummer) Sum(ctx context.Context, arr []int64, workers int) (int64, error) {
	if err := checkSumArgs(ctx, workers); err != nil {
		return 0, err
	}

	var (
		mu    sync.Mutex
		total int64
	)

	g := new(errgroup.Group)
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			start, end := Partition(len(arr), workers, i)
			local := SumRange(arr, start, end)

			mu.Lock()
			total += local
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	return total, nil
}
