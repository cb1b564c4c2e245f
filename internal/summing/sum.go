package summing

// SumRange accumulates arr[start:end] sequentially using native int64
// addition. Overflow wraps around; it is neither detected nor reported, and
// every strategy wraps identically because they all accumulate through this
// same function.
//
// SumRange is pure and safe to call concurrently from independent workers
// against disjoint ranges of the same slice, provided no goroutine mutates
// the slice while summation is in progress.
func SumRange(arr []int64, start, end int) int64 {
	var sum int64
	for i := start; i < end; i++ {
		sum += arr[i]
	}
	return sum
}
