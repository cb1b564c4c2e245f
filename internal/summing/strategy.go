package summing

import (
	"context"

	apperrors "github.com/AniDashyan/parallel-summation/internal/errors"
)

// Canonical strategy names. These are part of the external interface: the
// report table prints them verbatim, in this order.
const (
	NameSingle = "Single-threaded"
	NameLock   = "Lock-based"
	NameAtomic = "Atomic-based"
	NameReduce = "Reduce-based"
)

// Summer is the common contract of all summation strategies.
//
// Sum computes the total of arr using the requested number of workers. The
// parallel strategies spawn a fresh set of workers per invocation and block
// until every worker has finished (join barrier) before the total is read;
// workers are never reused across invocations. The returned total must equal
// the single-threaded scan of the same array bit-for-bit, wraparound included.
type Summer interface {
	// Name returns the strategy's display name (one of the Name* constants).
	Name() string

	// Sum computes the total of arr across the given number of workers.
	// workers < 1 is a caller contract violation and yields a ConfigError.
	// The context is consulted only before workers are spawned; a running
	// worker set is never cancelled mid-chunk.
	Sum(ctx context.Context, arr []int64, workers int) (int64, error)
}

// checkSumArgs validates the shared Sum preconditions.
func checkSumArgs(ctx context.Context, workers int) error {
	if workers < 1 {
		return apperrors.NewConfigError("summing: worker count must be >= 1, got %d", workers)
	}
	return ctx.Err()
}
