package summing

import "math/rand/v2"

// Bounds of the generated element values. The range includes negatives so a
// generated workload exercises sign handling, and is small enough that a
// million-element sum stays far from the int64 limits (overflow remains
// well-defined wraparound either way, but reference runs should be readable).
const (
	GenerateMin = -1000
	GenerateMax = 1000
)

// NewRandomArray builds an array of n pseudo-random values in
// [GenerateMin, GenerateMax]. The same seed always produces the same array,
// which is what makes benchmark runs reproducible and lets every strategy be
// measured against an identical workload.
func NewRandomArray(n int, seed uint64) []int64 {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	arr := make([]int64, n)
	span := int64(GenerateMax - GenerateMin + 1)
	for i := range arr {
		arr[i] = GenerateMin + rng.Int64N(span)
	}
	return arr
}
