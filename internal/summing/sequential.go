package summing

import "context"

// SequentialSummer is the single-threaded baseline: one scan over the whole
// array, no partitioning. It is both a performance reference and the
// correctness oracle the parallel strategies are checked against.
type SequentialSummer struct{}

// Verify interface compliance.
var _ Summer = SequentialSummer{}

// Name returns the strategy's display name.
func (SequentialSummer) Name() string { return NameSingle }

// Sum scans the array on the calling goroutine. The workers argument is
// accepted for interface uniformity and validated, but does not influence
// the scan.
func (SequentialSummer) Sum(ctx context.Context, arr []int64, workers int) (int64, error) {
	if err := checkSumArgs(ctx, workers); err != nil {
		return 0, err
	}
	return SumRange(arr, 0, len(arr)), nil
}
