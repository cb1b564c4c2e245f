package summing

import "fmt"

// Partition computes the half-open index range [start, end) assigned to the
// worker at the given index when n elements are divided across the given
// number of workers.
//
// The chunk size is n/workers with truncating division; the last worker
// absorbs the n%workers remainder so the chunks always cover [0, n) exactly,
// with no gaps and no overlaps. The remainder deliberately goes to the last
// worker unconditionally; the resulting slight load imbalance affects timing
// only, never the total.
//
// When workers exceeds n, the non-final workers receive empty chunks
// (start == end); summing an empty chunk is a no-op, not an error.
//
// The caller must guarantee workers >= 1 and 0 <= index < workers; violating
// that contract is a programming defect and fails fast.
func Partition(n, workers, index int) (start, end int) {
	if workers < 1 || index < 0 || index >= workers {
		panic(fmt.Sprintf("summing: invalid partition request: n=%d workers=%d index=%d", n, workers, index))
	}

	chunkSize := n / workers
	start = index * chunkSize
	if index == workers-1 {
		end = n
	} else {
		end = start + chunkSize
	}
	return start, end
}
