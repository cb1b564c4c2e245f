package summing

import (
	"context"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestPartitionInvariant_PropertyBased verifies the partition invariant for
// arbitrary (n, workers): the generated chunks tile [0, n) exactly with no
// gaps, no overlaps, and the last chunk's end equal to n.
func TestPartitionInvariant_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("chunks tile [0, n) exactly", prop.ForAll(
		func(n, workers int) bool {
			next := 0
			for i := 0; i < workers; i++ {
				start, end := Partition(n, workers, i)
				if start != next || end < start {
					return false
				}
				next = end
			}
			return next == n
		},
		gen.IntRange(0, 5000),
		gen.IntRange(1, 64),
	))

	properties.Property("remainder always lands in the last chunk", prop.ForAll(
		func(n, workers int) bool {
			chunkSize := n / workers
			start, end := Partition(n, workers, workers-1)
			return end == n && end-start == chunkSize+n%workers
		},
		gen.IntRange(0, 5000),
		gen.IntRange(1, 64),
	))

	properties.TestingRun(t)
}

// TestEquivalence_PropertyBased verifies the system's central property: for
// arbitrary arrays and worker counts, every parallel strategy produces the
// same total as the single-threaded baseline. Element values span the full
// int64 range so the property also covers wraparound equivalence.
func TestEquivalence_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	arrayGen := gen.SliceOf(gen.Int64())

	for _, s := range []Summer{LockSummer{}, AtomicSummer{}, ReduceSummer{}} {
		properties.Property(s.Name()+" matches the single-threaded baseline", prop.ForAll(
			func(arr []int64, workers int) bool {
				if workers < 1 {
					workers = 1
				}
				if limit := len(arr) + 8; workers > limit {
					workers = limit
				}

				want := SumRange(arr, 0, len(arr))
				got, err := s.Sum(context.Background(), arr, workers)
				return err == nil && got == want
			},
			arrayGen,
			gen.IntRange(1, 40),
		))
	}

	properties.TestingRun(t)
}
