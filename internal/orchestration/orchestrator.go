// Package orchestration contains the benchmark driver: it runs the selected
// summation strategies against one shared array, times each run, and checks
// every total against the single-threaded baseline.
package orchestration

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	apperrors "github.com/AniDashyan/parallel-summation/internal/errors"
	"github.com/AniDashyan/parallel-summation/internal/summing"
)

// tracerName identifies this package's spans.
const tracerName = "github.com/AniDashyan/parallel-summation/internal/orchestration"

// ExecuteBenchmarks runs the given strategies sequentially, in slice order,
// against the same array and worker count, and returns one result per
// strategy in that same order.
//
// Strategies run one at a time, not concurrently with each other: a strategy
// owns all cores while it is being timed, otherwise the strategies would
// contend for CPU and corrupt the comparison that is the program's entire
// purpose. Within a strategy the workers run concurrently and the strategy's
// own join barrier guarantees completion before its result is recorded.
//
// Parameters:
//   - ctx: The context bounding the whole run (timeout, SIGINT).
//   - summers: The strategies to execute, in run order.
//   - arr: The shared read-only array; never mutated during the run.
//   - workers: The worker count for the parallel strategies.
//   - progress: Receiver for phase notifications (use NullProgressReporter
//     for quiet mode).
//   - observer: Receiver for measurements (use NullObserver when metrics are
//     disabled).
//
// Returns:
//   - []BenchmarkResult: One result per strategy, in run order.
func ExecuteBenchmarks(ctx context.Context, summers []summing.Summer, arr []int64, workers int, progress ProgressReporter, observer StrategyObserver) []BenchmarkResult {
	tracer := otel.Tracer(tracerName)
	results := make([]BenchmarkResult, len(summers))

	for i, s := range summers {
		progress.StrategyStarted(s.Name())

		runCtx, span := tracer.Start(ctx, "parsum.strategy.run")
		span.SetAttributes(
			attribute.String("strategy", s.Name()),
			attribute.Int("workers", workers),
			attribute.Int("size", len(arr)),
		)

		startTime := time.Now()
		sum, err := s.Sum(runCtx, arr, workers)
		elapsed := time.Since(startTime)

		span.End()

		results[i] = BenchmarkResult{Name: s.Name(), Sum: sum, Duration: elapsed, Err: err}
		observer.ObserveStrategy(s.Name(), elapsed)
		progress.StrategyFinished(s.Name(), elapsed)
	}

	observer.RecordRun(len(arr), workers)
	progress.Done()
	return results
}

// AnalyzeComparisonResults validates a completed run and renders the report.
//
// Every successful total is compared against the baseline: the
// Single-threaded row when present, otherwise the first successful result.
// The strategies' synchronization guarantees make a divergence impossible on
// the defined input domain, so a detected mismatch is reported as a critical
// inconsistency and mapped to its own exit code; it signals a regression, not
// a runtime condition.
//
// Parameters:
//   - info: The workload shape for the report header.
//   - results: The per-strategy results, in run order.
//   - presenter: The result presenter for display formatting.
//   - out: The io.Writer for the report.
//
// Returns:
//   - int: An exit code indicating success (0) or the type of failure.
func AnalyzeComparisonResults(info RunInfo, results []BenchmarkResult, presenter ResultPresenter, out io.Writer) int {
	presenter.PresentReport(info, results, out)

	var baseline *BenchmarkResult
	var firstError error
	for i := range results {
		if results[i].Err != nil {
			if firstError == nil {
				firstError = results[i].Err
			}
			continue
		}
		if baseline == nil || results[i].Name == summing.NameSingle {
			baseline = &results[i]
		}
	}

	if baseline == nil {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No strategy could complete the run.\n")
		return apperrors.ExitCodeForError(firstError)
	}

	for _, res := range results {
		if res.Err == nil && res.Sum != baseline.Sum {
			fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! %v\n",
				apperrors.MismatchError{Strategy: res.Name, Got: res.Sum, Want: baseline.Sum})
			return apperrors.ExitErrorMismatch
		}
	}

	if firstError != nil {
		fmt.Fprintf(out, "\nGlobal Status: Partial failure: %v\n", firstError)
		return apperrors.ExitCodeForError(firstError)
	}

	return apperrors.ExitSuccess
}
