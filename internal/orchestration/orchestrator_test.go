package orchestration_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	apperrors "github.com/AniDashyan/parallel-summation/internal/errors"
	"github.com/AniDashyan/parallel-summation/internal/orchestration"
	"github.com/AniDashyan/parallel-summation/internal/orchestration/mocks"
	"github.com/AniDashyan/parallel-summation/internal/summing"
)

// FakeSummer is a hand-rolled summing.Summer used to exercise the driver
// without running real strategies.
type FakeSummer struct {
	NameValue string
	SumFunc   func(ctx context.Context, arr []int64, workers int) (int64, error)
}

func (f *FakeSummer) Name() string { return f.NameValue }

func (f *FakeSummer) Sum(ctx context.Context, arr []int64, workers int) (int64, error) {
	if f.SumFunc != nil {
		return f.SumFunc(ctx, arr, workers)
	}
	return 0, nil
}

// TestExecuteBenchmarks verifies that the driver runs every strategy, keeps
// run order, and records results and measurements.
func TestExecuteBenchmarks(t *testing.T) {
	t.Parallel()

	arr := []int64{1, 2, 3, 4}
	summers := []summing.Summer{
		&FakeSummer{NameValue: "First", SumFunc: func(context.Context, []int64, int) (int64, error) {
			return 10, nil
		}},
		&FakeSummer{NameValue: "Second", SumFunc: func(context.Context, []int64, int) (int64, error) {
			return 10, nil
		}},
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	observer := mocks.NewMockStrategyObserver(ctrl)
	gomock.InOrder(
		observer.EXPECT().ObserveStrategy("First", gomock.Any()),
		observer.EXPECT().ObserveStrategy("Second", gomock.Any()),
		observer.EXPECT().RecordRun(len(arr), 2),
	)

	progress := mocks.NewMockProgressReporter(ctrl)
	gomock.InOrder(
		progress.EXPECT().StrategyStarted("First"),
		progress.EXPECT().StrategyFinished("First", gomock.Any()),
		progress.EXPECT().StrategyStarted("Second"),
		progress.EXPECT().StrategyFinished("Second", gomock.Any()),
		progress.EXPECT().Done(),
	)

	results := orchestration.ExecuteBenchmarks(context.Background(), summers, arr, 2, progress, observer)

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for i, name := range []string{"First", "Second"} {
		if results[i].Name != name {
			t.Errorf("results[%d].Name = %q, want %q (run order must be preserved)", i, results[i].Name, name)
		}
		if results[i].Err != nil {
			t.Errorf("results[%d]: unexpected error: %v", i, results[i].Err)
		}
		if results[i].Sum != 10 {
			t.Errorf("results[%d].Sum = %d, want 10", i, results[i].Sum)
		}
	}
}

// TestExecuteBenchmarksStrategyError verifies a failing strategy does not
// abort the remaining ones.
func TestExecuteBenchmarksStrategyError(t *testing.T) {
	t.Parallel()

	summers := []summing.Summer{
		&FakeSummer{NameValue: "Broken", SumFunc: func(context.Context, []int64, int) (int64, error) {
			return 0, errors.New("mock error")
		}},
		&FakeSummer{NameValue: "Fine", SumFunc: func(context.Context, []int64, int) (int64, error) {
			return 5, nil
		}},
	}

	results := orchestration.ExecuteBenchmarks(context.Background(), summers, []int64{5}, 1,
		orchestration.NullProgressReporter{}, orchestration.NullObserver{})

	if results[0].Err == nil {
		t.Errorf("expected error from Broken, got nil")
	}
	if results[1].Err != nil || results[1].Sum != 5 {
		t.Errorf("Fine should still run: sum=%d err=%v", results[1].Sum, results[1].Err)
	}
}

// TestExecuteBenchmarksRealStrategies runs the actual factory strategies
// end-to-end through the driver against a known array.
func TestExecuteBenchmarksRealStrategies(t *testing.T) {
	t.Parallel()

	arr := []int64{1, 2, 3, 4, 5, 6, 7, 8}
	summers := summing.NewDefaultFactory().GetAll()

	results := orchestration.ExecuteBenchmarks(context.Background(), summers, arr, 4,
		orchestration.NullProgressReporter{}, orchestration.NullObserver{})

	wantNames := []string{"Single-threaded", "Lock-based", "Atomic-based", "Reduce-based"}
	for i, res := range results {
		if res.Name != wantNames[i] {
			t.Errorf("results[%d].Name = %q, want %q", i, res.Name, wantNames[i])
		}
		if res.Err != nil {
			t.Errorf("%s: unexpected error: %v", res.Name, res.Err)
		}
		if res.Sum != 36 {
			t.Errorf("%s: sum = %d, want 36", res.Name, res.Sum)
		}
	}
}

// TestAnalyzeComparisonResults verifies the mismatch detection and exit code
// mapping over a completed run.
func TestAnalyzeComparisonResults(t *testing.T) {
	t.Parallel()

	info := orchestration.RunInfo{Size: 3, Workers: 2}

	tests := []struct {
		name       string
		results    []orchestration.BenchmarkResult
		wantStatus int
		wantOutput string
	}{
		{
			name: "all consistent",
			results: []orchestration.BenchmarkResult{
				{Name: "Single-threaded", Sum: 6, Duration: time.Millisecond},
				{Name: "Lock-based", Sum: 6, Duration: time.Millisecond},
			},
			wantStatus: apperrors.ExitSuccess,
		},
		{
			name: "mismatch",
			results: []orchestration.BenchmarkResult{
				{Name: "Single-threaded", Sum: 6, Duration: time.Millisecond},
				{Name: "Atomic-based", Sum: 7, Duration: time.Millisecond},
			},
			wantStatus: apperrors.ExitErrorMismatch,
			wantOutput: "CRITICAL ERROR",
		},
		{
			name: "all failed",
			results: []orchestration.BenchmarkResult{
				{Name: "Single-threaded", Err: errors.New("fail")},
			},
			wantStatus: apperrors.ExitErrorGeneric,
			wantOutput: "No strategy could complete",
		},
		{
			name: "partial failure keeps error code",
			results: []orchestration.BenchmarkResult{
				{Name: "Single-threaded", Sum: 6},
				{Name: "Lock-based", Err: context.DeadlineExceeded},
			},
			wantStatus: apperrors.ExitErrorTimeout,
			wantOutput: "Partial failure",
		},
		{
			name: "baseline preferred over faster row",
			results: []orchestration.BenchmarkResult{
				{Name: "Lock-based", Sum: 9},
				{Name: "Single-threaded", Sum: 6},
			},
			wantStatus: apperrors.ExitErrorMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			presenter := mocks.NewMockResultPresenter(ctrl)
			var out bytes.Buffer
			presenter.EXPECT().PresentReport(info, tt.results, &out)

			status := orchestration.AnalyzeComparisonResults(info, tt.results, presenter, &out)
			if status != tt.wantStatus {
				t.Errorf("status = %d, want %d", status, tt.wantStatus)
			}
			if tt.wantOutput != "" && !strings.Contains(out.String(), tt.wantOutput) {
				t.Errorf("output should contain %q, got: %s", tt.wantOutput, out.String())
			}
		})
	}
}
