package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"

	"github.com/AniDashyan/parallel-summation/internal/format"
	"github.com/AniDashyan/parallel-summation/internal/orchestration"
	"github.com/AniDashyan/parallel-summation/internal/ui"
)

// ProgressRefreshRate defines the spinner animation interval. 200ms keeps the
// terminal responsive without flooding slow TTYs with redraws.
const ProgressRefreshRate = 200 * time.Millisecond

// Spinner abstracts the behavior of a terminal spinner. This decouples
// CLIProgressReporter from a specific spinner implementation, facilitating
// easier testing.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts the spinner library to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }
func (rs *realSpinner) Stop()  { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Suffix = suffix
}

// newSpinner is a package-level constructor so tests can substitute a fake.
var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// CLIProgressReporter implements orchestration.ProgressReporter with a
// terminal spinner. Completed strategies are echoed with their duration so
// the user sees intermediate timings while later strategies run.
type CLIProgressReporter struct {
	spin Spinner
	out  io.Writer
}

// Verify that CLIProgressReporter implements orchestration.ProgressReporter.
var _ orchestration.ProgressReporter = (*CLIProgressReporter)(nil)

// NewCLIProgressReporter creates a progress reporter writing to out.
func NewCLIProgressReporter(out io.Writer) *CLIProgressReporter {
	return &CLIProgressReporter{
		spin: newSpinner(spinner.WithWriter(out)),
		out:  out,
	}
}

// StrategyStarted updates the spinner with the currently running strategy.
func (p *CLIProgressReporter) StrategyStarted(name string) {
	p.spin.UpdateSuffix(fmt.Sprintf(" running %s...", name))
	p.spin.Start()
}

// StrategyFinished stops the spinner and echoes the completed strategy.
func (p *CLIProgressReporter) StrategyFinished(name string, d time.Duration) {
	p.spin.Stop()
	fmt.Fprintf(p.out, "%s✓%s %s done in %s\n",
		ui.ColorSuccess(), ui.ColorReset(), name, format.FormatExecutionDuration(d))
}

// Done clears the spinner once every strategy has run.
func (p *CLIProgressReporter) Done() {
	p.spin.Stop()
	fmt.Fprintln(p.out)
}
