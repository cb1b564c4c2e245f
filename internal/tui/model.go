package tui

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	apperrors "github.com/AniDashyan/parallel-summation/internal/errors"
	"github.com/AniDashyan/parallel-summation/internal/orchestration"
	"github.com/AniDashyan/parallel-summation/internal/summing"
	"github.com/AniDashyan/parallel-summation/internal/sysmon"
)

// BenchmarkDoneMsg carries the finished run back into the update loop.
type BenchmarkDoneMsg struct {
	Results    []orchestration.BenchmarkResult
	ExitCode   int
	Generation uint64
}

// SysStatsMsg carries a host utilization sample.
type SysStatsMsg struct {
	CPUPercent float64
	MemPercent float64
}

// TickMsg drives periodic host sampling.
type TickMsg time.Time

// ContextCancelledMsg signals that the parent context was cancelled.
type ContextCancelledMsg struct {
	Generation uint64
}

// discardPresenter satisfies orchestration.ResultPresenter for the TUI path,
// where the table is rendered by View instead of written to a stream.
type discardPresenter struct{}

func (discardPresenter) PresentReport(orchestration.RunInfo, []orchestration.BenchmarkResult, io.Writer) {
}

// Model is the root bubbletea model. It shows a spinner while the benchmark
// runs and a styled comparison table once it completes.
type Model struct {
	spin   spinner.Model
	keymap KeyMap
	help   help.Model

	summers  []summing.Summer
	arr      []int64
	info     orchestration.RunInfo
	observer orchestration.StrategyObserver

	results  []orchestration.BenchmarkResult
	exitCode int
	done     bool

	cpuPercent float64
	memPercent float64

	parentCtx  context.Context
	ctx        context.Context
	cancel     context.CancelFunc
	generation uint64

	startTime time.Time
	elapsed   time.Duration
	version   string
	width     int
}

// NewModel creates a new TUI model for the given benchmark inputs.
func NewModel(parentCtx context.Context, summers []summing.Summer, arr []int64, workers int, observer orchestration.StrategyObserver, version string) Model {
	ctx, cancel := context.WithCancel(parentCtx)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	return Model{
		spin:      sp,
		keymap:    DefaultKeyMap(),
		help:      help.New(),
		summers:   summers,
		arr:       arr,
		info:      orchestration.RunInfo{Size: len(arr), Workers: workers},
		observer:  observer,
		exitCode:  apperrors.ExitSuccess,
		parentCtx: parentCtx,
		ctx:       ctx,
		cancel:    cancel,
		startTime: time.Now(),
		version:   version,
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spin.Tick,
		tickCmd(),
		runBenchmarkCmd(m.ctx, m.summers, m.arr, m.info, m.observer, m.generation),
		watchContextCmd(m.ctx, m.generation),
	)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case TickMsg:
		if m.done {
			return m, nil
		}
		return m, tea.Batch(sampleSysStatsCmd(), tickCmd())

	case SysStatsMsg:
		m.cpuPercent = msg.CPUPercent
		m.memPercent = msg.MemPercent
		return m, nil

	case BenchmarkDoneMsg:
		if msg.Generation != m.generation {
			return m, nil // stale message from a previous run
		}
		m.results = msg.Results
		m.exitCode = msg.ExitCode
		m.done = true
		m.elapsed = time.Since(m.startTime)
		return m, nil

	case ContextCancelledMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keymap.Rerun):
		if !m.done {
			return m, nil
		}
		if m.cancel != nil {
			m.cancel()
		}
		m.generation++
		ctx, cancel := context.WithCancel(m.parentCtx)
		m.ctx = ctx
		m.cancel = cancel
		m.results = nil
		m.done = false
		m.exitCode = apperrors.ExitSuccess
		m.startTime = time.Now()
		return m, tea.Batch(
			m.spin.Tick,
			tickCmd(),
			runBenchmarkCmd(m.ctx, m.summers, m.arr, m.info, m.observer, m.generation),
			watchContextCmd(m.ctx, m.generation),
		)
	}

	return m, nil
}

// View renders the benchmark screen.
func (m Model) View() string {
	title := titleStyle.Render("Parallel Summation Benchmark")
	if m.version != "" {
		title += paramStyle.Render("  v" + m.version)
	}
	params := paramStyle.Render(fmt.Sprintf("elements %d · workers %d · cpu %.0f%% · mem %.0f%%",
		m.info.Size, m.info.Workers, m.cpuPercent, m.memPercent))

	var body string
	if m.done {
		body = m.renderResults()
	} else {
		body = m.spin.View() + " running strategies..."
	}

	content := lipgloss.JoinVertical(lipgloss.Left, title, params, "", body)
	return lipgloss.JoinVertical(lipgloss.Left,
		panelStyle.Render(content),
		helpStyle.Render(m.help.View(m.keymap)))
}

func (m Model) renderResults() string {
	fastest := -1
	for i, res := range m.results {
		if res.Err != nil {
			continue
		}
		if fastest == -1 || res.Duration < m.results[fastest].Duration {
			fastest = i
		}
	}

	lines := make([]string, 0, len(m.results)+2)
	lines = append(lines, tableHeaderStyle.Render(
		fmt.Sprintf("%-20s %15s %15s", "Method", "Sum", "Time (us)")))

	for i, res := range m.results {
		switch {
		case res.Err != nil:
			lines = append(lines, rowErrorStyle.Render(
				fmt.Sprintf("%-20s %15s %15s", res.Name, "FAILED", "-")))
		case i == fastest:
			lines = append(lines, fastestStyle.Render(
				fmt.Sprintf("%-20s %15d %15d", res.Name, res.Sum, res.Duration.Microseconds())))
		default:
			lines = append(lines, rowStyle.Render(
				fmt.Sprintf("%-20s %15d %15d", res.Name, res.Sum, res.Duration.Microseconds())))
		}
	}

	status := statusOKStyle.Render(fmt.Sprintf("✓ completed in %s", m.elapsed.Round(time.Millisecond)))
	if m.exitCode != apperrors.ExitSuccess {
		status = statusErrStyle.Render(fmt.Sprintf("✗ finished with exit code %d", m.exitCode))
	}
	lines = append(lines, "", status)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Run is the public entry point for the TUI mode.
// It creates the bubbletea program, runs it, and returns the exit code.
func Run(ctx context.Context, summers []summing.Summer, arr []int64, workers int, observer orchestration.StrategyObserver, version string) int {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model := NewModel(ctx, summers, arr, workers, observer, version)
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}

	if m, ok := finalModel.(Model); ok {
		m.cancel()
		return m.exitCode
	}
	return apperrors.ExitSuccess
}

// runBenchmarkCmd returns a tea.Cmd that executes the full benchmark run.
func runBenchmarkCmd(ctx context.Context, summers []summing.Summer, arr []int64, info orchestration.RunInfo, observer orchestration.StrategyObserver, gen uint64) tea.Cmd {
	return func() tea.Msg {
		results := orchestration.ExecuteBenchmarks(ctx, summers, arr, info.Workers,
			orchestration.NullProgressReporter{}, observer)
		exitCode := orchestration.AnalyzeComparisonResults(info, results, discardPresenter{}, io.Discard)
		return BenchmarkDoneMsg{Results: results, ExitCode: exitCode, Generation: gen}
	}
}

// tickCmd returns a command that sends a TickMsg after one second.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// sampleSysStatsCmd reads system-wide CPU and memory stats.
func sampleSysStatsCmd() tea.Cmd {
	return func() tea.Msg {
		s := sysmon.Sample()
		return SysStatsMsg{CPUPercent: s.CPUPercent, MemPercent: s.MemPercent}
	}
}

// watchContextCmd waits for context cancellation and sends a message.
func watchContextCmd(ctx context.Context, gen uint64) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Generation: gen}
	}
}
