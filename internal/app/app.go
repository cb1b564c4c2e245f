package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/AniDashyan/parallel-summation/internal/cli"
	"github.com/AniDashyan/parallel-summation/internal/config"
	apperrors "github.com/AniDashyan/parallel-summation/internal/errors"
	"github.com/AniDashyan/parallel-summation/internal/logging"
	"github.com/AniDashyan/parallel-summation/internal/metrics"
	"github.com/AniDashyan/parallel-summation/internal/orchestration"
	"github.com/AniDashyan/parallel-summation/internal/server"
	"github.com/AniDashyan/parallel-summation/internal/summing"
	"github.com/AniDashyan/parallel-summation/internal/sysmon"
	"github.com/AniDashyan/parallel-summation/internal/tui"
	"github.com/AniDashyan/parallel-summation/internal/ui"
)

// Application represents the parsum application instance.
type Application struct {
	Config    config.AppConfig
	Factory   summing.SummerFactory
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets a custom SummerFactory for the application.
func WithFactory(f summing.SummerFactory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Factory == nil {
		app.Factory = summing.NewDefaultFactory()
	}

	programName := "parsum"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	app.Config = cfg
	return app, nil
}

// Run executes the benchmark based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else if a.Config.Quiet {
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	ui.InitTheme(a.Config.NoColor)

	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	summers, err := orchestration.GetSummersToRun(a.Config.Strategy, a.Factory)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitCodeForError(err)
	}

	logger := logging.NewDefaultLogger()
	logger.Debug("generating input array",
		logging.Int("size", a.Config.Size),
		logging.Uint64("seed", a.Config.Seed))
	arr := summing.NewRandomArray(a.Config.Size, a.Config.Seed)

	var observer orchestration.StrategyObserver = orchestration.NullObserver{}
	if a.Config.MetricsAddr != "" {
		bm := metrics.NewBenchmarkMetrics()
		observer = bm

		srv := server.New(a.Config.MetricsAddr, bm.Registry(), logger)
		srv.Start()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("metrics server shutdown failed", err)
			}
		}()
	}

	if a.Config.TUI {
		return tui.Run(ctx, summers, arr, a.Config.Workers, observer, Version)
	}

	return a.runCLI(ctx, summers, arr, observer, out)
}

// runCLI executes the benchmark in standard command-line mode.
func (a *Application) runCLI(ctx context.Context, summers []summing.Summer, arr []int64, observer orchestration.StrategyObserver, out io.Writer) int {
	if !a.Config.Quiet {
		cli.DisplayRunBanner(out, a.Config.Size, a.Config.Workers, a.Config.Seed)
	}

	var progress orchestration.ProgressReporter = orchestration.NullProgressReporter{}
	if !a.Config.Quiet {
		progress = cli.NewCLIProgressReporter(out)
	}

	results := orchestration.ExecuteBenchmarks(ctx, summers, arr, a.Config.Workers, progress, observer)

	info := orchestration.RunInfo{Size: a.Config.Size, Workers: a.Config.Workers}
	exitCode := orchestration.AnalyzeComparisonResults(info, results, cli.CLIResultPresenter{}, out)

	if a.Config.OutputFile != "" {
		if err := cli.WriteReportToFile(a.Config.OutputFile, info, results); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error writing report: %v\n", err)
			if exitCode == apperrors.ExitSuccess {
				exitCode = apperrors.ExitErrorGeneric
			}
		} else if !a.Config.Quiet {
			fmt.Fprintf(out, "\n%s✓ Report saved to: %s%s\n",
				ui.ColorSuccess(), a.Config.OutputFile, ui.ColorReset())
		}
	}

	if a.Config.Verbose {
		snap := metrics.NewMemoryCollector().Snapshot()
		cli.DisplayMemoryStats(out, snap, sysmon.Sample())
	}

	return exitCode
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
