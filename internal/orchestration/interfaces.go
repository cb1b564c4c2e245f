//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

package orchestration

import (
	"io"
	"time"
)

// BenchmarkResult encapsulates the outcome of a single strategy run.
// It serves as the shared domain type between orchestration and presentation
// layers.
type BenchmarkResult struct {
	// Name is the display name of the strategy (e.g., "Lock-based").
	Name string
	// Sum is the computed total. It is meaningless if an error occurred.
	Sum int64
	// Duration is the wall-clock time taken to complete the run.
	Duration time.Duration
	// Err contains any error that occurred during the run.
	Err error
}

// RunInfo describes the workload shared by every strategy in a run.
type RunInfo struct {
	// Size is the array length.
	Size int
	// Workers is the worker count used by the parallel strategies.
	Workers int
}

// ProgressReporter receives phase notifications while strategies execute.
// This interface decouples the orchestration layer from the presentation
// layer; implementations handle the visual representation (spinner, TUI)
// while the driver focuses on running and timing strategies.
type ProgressReporter interface {
	// StrategyStarted is called immediately before a strategy begins.
	StrategyStarted(name string)
	// StrategyFinished is called after the strategy's workers have joined.
	StrategyFinished(name string, d time.Duration)
	// Done is called once after the last strategy completes.
	Done()
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
// Useful for quiet mode or testing.
type NullProgressReporter struct{}

func (NullProgressReporter) StrategyStarted(string)                 {}
func (NullProgressReporter) StrategyFinished(string, time.Duration) {}
func (NullProgressReporter) Done()                                  {}

// ResultPresenter renders a completed benchmark to an output sink.
// This decouples the orchestration layer from presentation concerns, allowing
// different output formats (plain table, file, TUI) without modifying the
// driver logic.
type ResultPresenter interface {
	// PresentReport writes the result table for the run.
	PresentReport(info RunInfo, results []BenchmarkResult, out io.Writer)
}

// StrategyObserver records per-strategy measurements (e.g., into Prometheus
// collectors).
type StrategyObserver interface {
	// ObserveStrategy records one strategy execution.
	ObserveStrategy(name string, d time.Duration)
	// RecordRun records the shape of a completed benchmark run.
	RecordRun(size, workers int)
}

// NullObserver is a no-op StrategyObserver for runs without metrics.
type NullObserver struct{}

func (NullObserver) ObserveStrategy(string, time.Duration) {}
func (NullObserver) RecordRun(int, int)                    {}
