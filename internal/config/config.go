// Package config defines the application configuration and its sources.
// Values are resolved with the priority: CLI flags > environment variables
// (BIGCALC_ prefix) > built-in defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	apperrors "github.com/agbru/bignum/internal/errors"
)

// EnvPrefix is prepended to every environment variable the application reads.
const EnvPrefix = "BIGCALC_"

// Default values for the configurable settings.
const (
	DefaultTimeout = 5 * time.Minute
	DefaultBase    = 10
)

// Radix limits accepted by the -in-base and -out-base flags. They mirror the
// range the arithmetic library supports.
const (
	MinBase = 2
	MaxBase = 36
)

// AppConfig holds the fully resolved application configuration.
type AppConfig struct {
	// Op is the operation to evaluate (e.g. "add", "modpow", "sqrt").
	Op string
	// Operands are the raw positional operands, interpreted in InBase.
	Operands []string
	// InBase is the radix used to parse operands.
	InBase int
	// OutBase is the radix used to format results.
	OutBase int
	// Timeout bounds the total evaluation time.
	Timeout time.Duration
	// Jobs caps the number of requests evaluated concurrently (0 = NumCPU).
	Jobs int
	// Verbose prints the full result regardless of its length.
	Verbose bool
	// Quiet restricts output to one result per line, for scripting.
	Quiet bool
	// NoColor disables ANSI colors in the output.
	NoColor bool
	// Debug enables debug-level diagnostics on stderr.
	Debug bool
	// OutputFile is a path to also write the result to (empty = none).
	OutputFile string
}

// ParseConfig parses command-line arguments into an AppConfig and applies
// environment overrides for any flag left at its default.
//
// Parameters:
//   - programName: The name used in usage output.
//   - args: The command-line arguments, without the program name.
//   - errWriter: Destination for usage and error output.
//   - availableOps: The operation names accepted as the first positional
//     argument, used for validation and usage text.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: flag.ErrHelp when help was requested, or a ConfigError.
func ParseConfig(programName string, args []string, errWriter io.Writer, availableOps []string) (AppConfig, error) {
	var cfg AppConfig

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.IntVar(&cfg.InBase, "in-base", DefaultBase, "radix of the input operands (2..36)")
	fs.IntVar(&cfg.OutBase, "out-base", DefaultBase, "radix of the printed result (2..36)")
	fs.IntVar(&cfg.InBase, "base", DefaultBase, "shorthand setting both -in-base and -out-base")
	fs.DurationVar(&cfg.Timeout, "timeout", DefaultTimeout, "maximum total evaluation time")
	fs.IntVar(&cfg.Jobs, "jobs", 0, "maximum concurrent requests (0 = number of CPUs)")
	fs.BoolVar(&cfg.Verbose, "v", false, "print the full result regardless of length")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "print the full result regardless of length")
	fs.BoolVar(&cfg.Quiet, "q", false, "one result per line, no decoration")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "one result per line, no decoration")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable ANSI colors")
	fs.BoolVar(&cfg.Debug, "debug", false, "enable debug diagnostics on stderr")
	fs.StringVar(&cfg.OutputFile, "o", "", "also write the result to this file")
	fs.StringVar(&cfg.OutputFile, "output", "", "also write the result to this file")

	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [flags] <operation> <operand>...\n\n", programName)
		fmt.Fprintf(errWriter, "Operations: %s\n\n", strings.Join(sortedCopy(availableOps), ", "))
		fmt.Fprintf(errWriter, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return cfg, err
		}
		return cfg, apperrors.NewConfigError("invalid arguments: %v", err)
	}

	// -base sets both radixes unless the specific flag was also given.
	if isFlagSet(fs, "base") && !isFlagSet(fs, "out-base") {
		cfg.OutBase = cfg.InBase
	}

	applyEnvOverrides(&cfg, fs)

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return cfg, apperrors.NewConfigError("missing operation")
	}
	cfg.Op = strings.ToLower(rest[0])
	cfg.Operands = rest[1:]

	if err := validate(cfg, availableOps); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// validate checks the resolved configuration for values the application
// cannot work with.
func validate(cfg AppConfig, availableOps []string) error {
	if cfg.InBase < MinBase || cfg.InBase > MaxBase {
		return apperrors.NewConfigError("in-base %d out of range [%d, %d]", cfg.InBase, MinBase, MaxBase)
	}
	if cfg.OutBase < MinBase || cfg.OutBase > MaxBase {
		return apperrors.NewConfigError("out-base %d out of range [%d, %d]", cfg.OutBase, MinBase, MaxBase)
	}
	if cfg.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %s", cfg.Timeout)
	}
	if cfg.Jobs < 0 {
		return apperrors.NewConfigError("jobs must be non-negative, got %d", cfg.Jobs)
	}
	for _, op := range availableOps {
		if cfg.Op == op {
			return nil
		}
	}
	return apperrors.NewConfigError("unknown operation %q (available: %s)",
		cfg.Op, strings.Join(sortedCopy(availableOps), ", "))
}

func sortedCopy(ops []string) []string {
	out := append([]string(nil), ops...)
	sort.Strings(out)
	return out
}
