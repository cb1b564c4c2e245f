// Package config parses command-line flags and environment overrides into
// the application configuration.
//
// Malformed or missing values never abort the program: the parser warns on
// the error writer and falls back to defaults, so a bare invocation always
// produces a benchmark run.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/AniDashyan/parallel-summation/internal/sysmon"
)

const (
	// EnvPrefix is the prefix for all environment variable overrides.
	EnvPrefix = "PARSUM_"

	// DefaultSize is the array length used when --size is absent or invalid.
	DefaultSize = 1_000_000

	// DefaultStrategy runs every strategy and compares them.
	DefaultStrategy = "all"

	// DefaultTimeout bounds a whole run. Generous: even huge arrays sum in
	// well under a minute on commodity hardware.
	DefaultTimeout = 5 * time.Minute

	// DefaultSeed makes runs reproducible unless the user asks otherwise.
	DefaultSeed = 42
)

// AppConfig holds the full runtime configuration.
type AppConfig struct {
	// Size is the number of array elements to sum.
	Size int
	// Workers is the number of goroutines used by the parallel strategies.
	Workers int
	// Seed initializes the random array generator.
	Seed uint64
	// Strategy selects which strategies run: "all" or a single key.
	Strategy string
	// Quiet suppresses the banner and progress output.
	Quiet bool
	// Verbose enables debug logging and post-run memory statistics.
	Verbose bool
	// OutputFile is the path to save the report (empty for no file output).
	OutputFile string
	// MetricsAddr is the listen address for the Prometheus endpoint
	// (empty disables the metrics server).
	MetricsAddr string
	// TUI enables the interactive terminal dashboard.
	TUI bool
	// NoColor disables ANSI colors in CLI output.
	NoColor bool
	// Timeout bounds the whole run.
	Timeout time.Duration
}

// DefaultConfig returns the configuration used when no flags are given.
// The worker count follows the machine's logical CPU count.
func DefaultConfig() AppConfig {
	return AppConfig{
		Size:     DefaultSize,
		Workers:  sysmon.HardwareConcurrency(),
		Seed:     DefaultSeed,
		Strategy: DefaultStrategy,
		Timeout:  DefaultTimeout,
	}
}

// ParseConfig parses command-line arguments into an AppConfig.
//
// Priority: CLI flags > environment variables > defaults. Any malformed or
// out-of-range value triggers a warning on errWriter and falls back to the
// default, matching the tool's promise that a bad invocation still runs.
// The only error ever returned is flag.ErrHelp.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	cfg := DefaultConfig()

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.IntVar(&cfg.Size, "size", cfg.Size, "Number of array elements to sum")
	fs.IntVar(&cfg.Workers, "thread", cfg.Workers, "Number of worker goroutines")
	fs.IntVar(&cfg.Workers, "threads", cfg.Workers, "Alias for -thread")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Seed for the random array generator")
	fs.StringVar(&cfg.Strategy, "strategy", cfg.Strategy,
		"Strategy to run: all, single, lock, atomic, reduce")
	fs.BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "Suppress banner and progress output")
	fs.BoolVar(&cfg.Quiet, "q", cfg.Quiet, "Alias for -quiet")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Enable debug logging and memory statistics")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Alias for -verbose")
	fs.StringVar(&cfg.OutputFile, "output", cfg.OutputFile, "Write the report to a file")
	fs.StringVar(&cfg.OutputFile, "o", cfg.OutputFile, "Alias for -output")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr,
		"Listen address for the Prometheus endpoint (empty disables it)")
	fs.BoolVar(&cfg.TUI, "tui", cfg.TUI, "Run the interactive terminal dashboard")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Disable ANSI colors")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Maximum duration for the whole run")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cfg, err
		}
		fmt.Fprintf(errWriter, "Warning: invalid arguments (%v). Using default values.\n", err)
		return DefaultConfig(), nil
	}

	applyEnvOverrides(&cfg, fs)

	if !isFlagSet(fs, "size") || !isFlagSetAny(fs, "thread", "threads") {
		fmt.Fprintln(errWriter, "Warning: missing required arguments. Using default values.")
	}

	return validate(cfg, errWriter), nil
}

// validate clamps out-of-range values back to defaults, warning per field.
func validate(cfg AppConfig, errWriter io.Writer) AppConfig {
	if cfg.Size < 0 {
		fmt.Fprintf(errWriter, "Warning: invalid size %d. Using default %d.\n", cfg.Size, DefaultSize)
		cfg.Size = DefaultSize
	}
	if cfg.Workers < 1 {
		def := sysmon.HardwareConcurrency()
		fmt.Fprintf(errWriter, "Warning: invalid thread count %d. Using default %d.\n", cfg.Workers, def)
		cfg.Workers = def
	}
	if cfg.Timeout <= 0 {
		fmt.Fprintf(errWriter, "Warning: invalid timeout %v. Using default %v.\n", cfg.Timeout, DefaultTimeout)
		cfg.Timeout = DefaultTimeout
	}
	return cfg
}
