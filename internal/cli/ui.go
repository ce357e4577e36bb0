package cli

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/bignum/internal/format"
)

const (
	// TruncationLimit is the digit threshold from which a result is truncated
	// in standard output to avoid cluttering the terminal.
	TruncationLimit = 100
	// DisplayEdges specifies the number of digits to display at the beginning
	// and end of a truncated number.
	DisplayEdges = 25
	// ProgressRefreshRate defines the refresh frequency of the progress display.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 30
)

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// It decouples DisplayProgress from a specific spinner implementation,
// facilitating easier testing.
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

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) { rs.s.Suffix = suffix }

var newSpinner = func(options ...spinner.Option) Spinner {
	// Using the same interval as ProgressRefreshRate to synchronize
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// ProgressSnapshot reports the current overall progress and remaining-time
// estimate of the running evaluation.
type ProgressSnapshot func() (progress float64, eta time.Duration)

// DisplayProgress animates a spinner with a consolidated progress bar until
// done is closed. It blocks the calling goroutine; run it alongside the
// evaluation and close done when the work finishes.
//
// Parameters:
//   - done: Closed by the caller when the evaluation completes.
//   - label: A short description shown next to the bar.
//   - snapshot: Called on every refresh to obtain the current progress.
func DisplayProgress(done <-chan struct{}, label string, snapshot ProgressSnapshot) {
	sp := newSpinner()
	sp.Start()
	defer sp.Stop()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			progress, eta := snapshot()
			sp.UpdateSuffix(fmt.Sprintf(" %s %s", label,
				format.FormatProgressBarWithETA(progress, eta, ProgressBarWidth)))
		}
	}
}
