package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/AniDashyan/parallel-summation/internal/orchestration"
)

const (
	// reportSeparatorWidth is the width of the dashed rule between the run
	// parameters and the result table.
	reportSeparatorWidth = 54

	methodColumnWidth = 20
	valueColumnWidth  = 15
)

// CLIResultPresenter implements orchestration.ResultPresenter for CLI output.
// The table layout is kept free of ANSI escapes so the report stays parseable
// when piped to a file or another tool.
type CLIResultPresenter struct{}

// Verify interface compliance.
var _ orchestration.ResultPresenter = CLIResultPresenter{}

// PresentReport writes the run parameters followed by one row per strategy.
// Times are reported in integer microseconds so runs of very different sizes
// stay comparable at a glance.
func (CLIResultPresenter) PresentReport(info orchestration.RunInfo, results []orchestration.BenchmarkResult, out io.Writer) {
	separator := strings.Repeat("-", reportSeparatorWidth)

	fmt.Fprintf(out, "Array size     : %d\n", info.Size)
	fmt.Fprintf(out, "Thread count   : %d\n", info.Workers)
	fmt.Fprintln(out, separator)

	fmt.Fprintf(out, "%-*s %*s %*s\n",
		methodColumnWidth, "Method",
		valueColumnWidth, "Sum",
		valueColumnWidth, "Time (us)")
	fmt.Fprintln(out, separator)

	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(out, "%-*s %*s %*s\n",
				methodColumnWidth, res.Name,
				valueColumnWidth, "FAILED",
				valueColumnWidth, "-")
			continue
		}
		fmt.Fprintf(out, "%-*s %*d %*d\n",
			methodColumnWidth, res.Name,
			valueColumnWidth, res.Sum,
			valueColumnWidth, res.Duration.Microseconds())
	}

	fmt.Fprintln(out, separator)
}
