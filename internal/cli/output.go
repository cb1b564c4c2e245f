package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/AniDashyan/parallel-summation/internal/format"
	"github.com/AniDashyan/parallel-summation/internal/metrics"
	"github.com/AniDashyan/parallel-summation/internal/orchestration"
	"github.com/AniDashyan/parallel-summation/internal/sysmon"
	"github.com/AniDashyan/parallel-summation/internal/ui"
)

// DisplayRunBanner prints the run parameters before the benchmark starts.
// Suppressed in quiet mode so scripted callers only see the report itself.
func DisplayRunBanner(out io.Writer, size, workers int, seed uint64) {
	fmt.Fprintf(out, "%sParallel summation benchmark%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(out, "  elements : %s%d%s\n", ui.ColorPrimary(), size, ui.ColorReset())
	fmt.Fprintf(out, "  workers  : %s%d%s\n", ui.ColorPrimary(), workers, ui.ColorReset())
	fmt.Fprintf(out, "  seed     : %s%d%s\n\n", ui.ColorSecondary(), seed, ui.ColorReset())
}

// WriteReportToFile renders the benchmark report to a file with a small
// metadata header. The parent directory is created if needed.
func WriteReportToFile(path string, info orchestration.RunInfo, results []orchestration.BenchmarkResult) error {
	if path == "" {
		return nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# Parallel Summation Benchmark\n")
	fmt.Fprintf(&buf, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(&buf, "\n")
	CLIResultPresenter{}.PresentReport(info, results, &buf)

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// DisplayMemoryStats shows process memory and host utilization after a run.
func DisplayMemoryStats(out io.Writer, snap metrics.MemorySnapshot, host sysmon.Stats) {
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Heap in use:     %s\n", format.FormatBytes(snap.HeapAlloc))
	fmt.Fprintf(out, "  Heap from OS:    %s\n", format.FormatBytes(snap.HeapSys))
	fmt.Fprintf(out, "  Total from OS:   %s\n", format.FormatBytes(snap.Sys))
	fmt.Fprintf(out, "  GC cycles:       %d\n", snap.NumGC)
	if snap.PauseTotalNs > 0 {
		fmt.Fprintf(out, "  GC pause total:  %.2fms\n", float64(snap.PauseTotalNs)/1e6)
	} else {
		fmt.Fprintf(out, "  GC pause total:  0ms\n")
	}
	fmt.Fprintf(out, "  Host CPU:        %.1f%%\n", host.CPUPercent)
	fmt.Fprintf(out, "  Host memory:     %.1f%%\n", host.MemPercent)
}
