package summing

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// AtomicSummer combines partial sums with one atomic fetch-and-add per worker.
//
// The add must be a true read-modify-write primitive; a load-then-store pair
// would reintroduce the lost-update race this strategy eliminates. The design
// only needs relaxed ordering (the total is the sole shared mutable state and
// nothing else is published alongside it); Go's sync/atomic is sequentially
// consistent, which is strictly stronger and therefore safe.
type AtomicSummer struct{}

// Verify interface compliance.
var _ Summer = AtomicSummer{}

// Name returns the strategy's display name.
func (AtomicSummer) Name() string { return NameAtomic }

// Sum partitions the array, sums each chunk in its own goroutine, and folds
// the local sums into the shared total via atomic.Int64.Add. Fetch-and-add is
// linearizable, so the final value equals the exact sum of the locals for any
// interleaving; the errgroup Wait still gates the read for visibility.
func (AtomicSummer) Sum(ctx context.Context, arr []int64, workers int) (int64, error) {
	if err := checkSumArgs(ctx, workers); err != nil {
		return 0, err
	}

	var total atomic.Int64

	g := new(errgroup.Group)
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			start, end := Partition(len(arr), workers, i)
			total.Add(SumRange(arr, start, end))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	return total.Load(), nil
}
