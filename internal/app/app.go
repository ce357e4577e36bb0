// Package app wires configuration, evaluation and presentation into the
// bigcalc application. It owns the process lifecycle: flag parsing, timeout
// and signal handling, concurrent request evaluation, and exit codes.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/agbru/bignum/internal/cli"
	"github.com/agbru/bignum/internal/config"
	apperrors "github.com/agbru/bignum/internal/errors"
	"github.com/agbru/bignum/internal/logging"
	"github.com/agbru/bignum/internal/ui"
)

// Version is the application version string, intended to be overridden at
// build time via -ldflags "-X ...app.Version=v1.2.3".
var Version = "dev"

// Application represents the bigcalc application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
	Log       logging.Logger
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger sets a custom logger for the application.
func WithLogger(log logging.Logger) AppOption {
	return func(a *Application) { a.Log = log }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Log == nil {
		app.Log = logging.NewDefaultLogger()
	}

	programName := "bigcalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, OperationNames())
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(errWriter, "Error: %v\n", err)
		}
		return nil, err
	}

	app.Config = cfg
	return app, nil
}

// Run executes the application and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	ui.InitTheme(a.Config.NoColor || a.Config.Quiet)

	requests, err := buildRequests(a.Config)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitCodeFor(err)
	}

	// Lifecycle: overall timeout plus SIGINT/SIGTERM cancellation.
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	a.Log.Debug("evaluating requests",
		logging.String("op", a.Config.Op),
		logging.Int("requests", len(requests)),
		logging.Int("in_base", a.Config.InBase),
		logging.Int("out_base", a.Config.OutBase),
	)

	tracker := newProgressTracker(len(requests))

	// The spinner runs beside the evaluation and is torn down before any
	// result line is printed.
	done := make(chan struct{})
	spinnerStopped := make(chan struct{})
	if a.Config.Quiet {
		close(spinnerStopped)
	} else {
		go func() {
			defer close(spinnerStopped)
			cli.DisplayProgress(done, a.Config.Op, tracker.snapshot)
		}()
	}

	results := a.executeRequests(ctx, requests, tracker)

	close(done)
	<-spinnerStopped

	return a.presentResults(results, out)
}

// presentResults prints every result, saves the first successful one to the
// output file when configured, and derives the process exit code.
func (a *Application) presentResults(results []Result, out io.Writer) int {
	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		OutBase:    a.Config.OutBase,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
	}

	exitCode := apperrors.ExitSuccess
	var saved bool
	for _, res := range results {
		if res.Err != nil {
			cli.DisplayError(a.ErrWriter, res.Request.Desc, res.Err)
			a.Log.Error("request failed", res.Err, logging.String("request", res.Request.Desc))
			if exitCode == apperrors.ExitSuccess {
				exitCode = apperrors.ExitCodeFor(res.Err)
			}
			continue
		}

		if outputCfg.Quiet {
			cli.DisplayQuietResult(out, res.Value, outputCfg)
		} else {
			cli.DisplayResult(out, res.Request.Desc, res.Value, res.Duration, outputCfg)
		}

		if !saved && outputCfg.OutputFile != "" {
			if err := cli.WriteResultToFile(res.Value, res.Request.Desc, res.Duration, outputCfg); err != nil {
				fmt.Fprintf(a.ErrWriter, "Error saving result: %v\n", err)
				if exitCode == apperrors.ExitSuccess {
					exitCode = apperrors.ExitErrorGeneric
				}
			} else {
				saved = true
				if !outputCfg.Quiet {
					fmt.Fprintf(out, "%s✓ Result saved to: %s%s\n",
						ui.ColorSuccess(), outputCfg.OutputFile, ui.ColorReset())
				}
			}
		}
	}
	return exitCode
}

// HasVersionFlag checks whether the arguments request the version banner.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--version" || arg == "-version" {
			return true
		}
	}
	return false
}

// PrintVersion writes the version banner.
func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, "bigcalc %s\n", Version)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
