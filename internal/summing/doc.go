// Package summing implements the core of the benchmark: partitioning an
// integer array across a fixed number of workers, the per-chunk worker task,
// and four interchangeable summation strategies that differ only in how
// per-worker partial sums are combined.
//
// The strategies share one partition/worker-task abstraction and must produce
// bit-identical totals (including int64 wraparound) for the same array at any
// worker count and under any scheduling interleaving. The single-threaded
// strategy is the correctness oracle the others are measured against.
package summing
