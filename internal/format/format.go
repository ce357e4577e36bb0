// Package format provides display formatting helpers shared by the CLI:
// durations, digit grouping, and textual progress reporting.
package format

import (
	"fmt"
	"strings"
	"time"
)

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds for
// durations less than a second, and the default string representation otherwise.
// This approach provides a more human-readable output for short durations.
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: A formatted string representing the duration.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// FormatNumberString inserts comma separators every three digits into a
// decimal number string. A leading sign is preserved. The input is assumed to
// be a plain integer string; anything else is returned unchanged.
//
// Parameters:
//   - s: The decimal string to group.
//
// Returns:
//   - string: The grouped string, e.g. "1234567" becomes "1,234,567".
func FormatNumberString(s string) string {
	if s == "" {
		return s
	}
	sign := ""
	digits := s
	if digits[0] == '-' || digits[0] == '+' {
		sign = digits[:1]
		digits = digits[1:]
	}
	if len(digits) <= 3 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + len(digits)/3)
	b.WriteString(sign)
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// ProgressBar generates a string representing a textual progress bar.
//
// Parameters:
//   - progress: The normalized progress value (0.0 to 1.0).
//   - length: The total character width of the progress bar.
//
// Returns:
//   - string: A string representation of the progress bar.
func ProgressBar(progress float64, length int) string {
	if progress > 1.0 {
		progress = 1.0
	}
	if progress < 0.0 {
		progress = 0.0
	}
	count := int(progress * float64(length))
	var builder strings.Builder
	builder.Grow(length)
	for i := 0; i < length; i++ {
		if i < count {
			builder.WriteRune('█')
		} else {
			builder.WriteRune('░')
		}
	}
	return builder.String()
}

// maxETA caps the reported estimate so that a near-stalled computation does
// not display an absurd remaining time.
const maxETA = 24 * time.Hour

// FormatETA formats an estimated remaining duration in a compact h/m/s form.
// Non-positive estimates render as "calculating..." since no rate has been
// established yet.
//
// Parameters:
//   - eta: The estimated remaining duration.
//
// Returns:
//   - string: The formatted estimate.
func FormatETA(eta time.Duration) string {
	switch {
	case eta <= 0:
		return "calculating..."
	case eta < time.Second:
		return "< 1s"
	}
	eta = eta.Round(time.Second)
	h := int(eta.Hours())
	m := int(eta.Minutes()) % 60
	s := int(eta.Seconds()) % 60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh%dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	case m > 0 && s > 0:
		return fmt.Sprintf("%dm%ds", m, s)
	case m > 0:
		return fmt.Sprintf("%dm", m)
	default:
		return fmt.Sprintf("%ds", s)
	}
}

// FormatProgressBarWithETA renders a progress bar annotated with the current
// percentage and remaining-time estimate.
//
// Parameters:
//   - progress: The normalized progress value (0.0 to 1.0).
//   - eta: The estimated remaining duration.
//   - width: The character width of the bar portion.
//
// Returns:
//   - string: The combined display string.
func FormatProgressBarWithETA(progress float64, eta time.Duration, width int) string {
	if progress > 1.0 {
		progress = 1.0
	}
	if progress < 0.0 {
		progress = 0.0
	}
	return fmt.Sprintf("[%s] %3.0f%% ETA: %s", ProgressBar(progress, width), progress*100, FormatETA(eta))
}

// ProgressState tracks the individual progress of several concurrent requests
// and computes their average for a single consolidated display.
type ProgressState struct {
	progresses  []float64
	numRequests int
}

// NewProgressState creates a ProgressState tracking the given number of
// requests.
func NewProgressState(numRequests int) *ProgressState {
	return &ProgressState{
		progresses:  make([]float64, numRequests),
		numRequests: numRequests,
	}
}

// Update records a new progress value for a specific request. Updates with an
// out-of-range index are ignored.
//
// Parameters:
//   - index: The index of the request (0 to numRequests-1).
//   - value: The progress value (0.0 to 1.0).
func (ps *ProgressState) Update(index int, value float64) {
	if index >= 0 && index < len(ps.progresses) {
		ps.progresses[index] = value
	}
}

// CalculateAverage computes the average progress across all tracked requests.
//
// Returns:
//   - float64: The average progress (0.0 to 1.0).
func (ps *ProgressState) CalculateAverage() float64 {
	var total float64
	for _, p := range ps.progresses {
		total += p
	}
	if ps.numRequests == 0 {
		return 0.0
	}
	return total / float64(ps.numRequests)
}

// ProgressWithETA couples a ProgressState with a remaining-time estimate
// derived from the elapsed wall-clock time and the average progress so far.
type ProgressWithETA struct {
	*ProgressState
	startTime time.Time
}

// NewProgressWithETA creates a ProgressWithETA for the given number of
// requests, starting its clock immediately.
func NewProgressWithETA(numRequests int) *ProgressWithETA {
	return &ProgressWithETA{
		ProgressState: NewProgressState(numRequests),
		startTime:     time.Now(),
	}
}

// UpdateWithETA records a progress value and returns the new average progress
// together with the current remaining-time estimate.
//
// Parameters:
//   - index: The index of the request.
//   - value: The progress value (0.0 to 1.0).
//
// Returns:
//   - float64: The average progress after the update.
//   - time.Duration: The estimated remaining duration (0 when unknown).
func (p *ProgressWithETA) UpdateWithETA(index int, value float64) (float64, time.Duration) {
	p.Update(index, value)
	return p.CalculateAverage(), p.GetETA()
}

// GetETA estimates the remaining duration by extrapolating the elapsed time
// over the remaining fraction of work. Returns 0 until measurable progress
// exists; the estimate is capped at maxETA.
//
// Returns:
//   - time.Duration: The estimated remaining duration.
func (p *ProgressWithETA) GetETA() time.Duration {
	progress := p.CalculateAverage()
	if progress <= 0 {
		return 0
	}
	if progress >= 1 {
		return 0
	}
	elapsed := time.Since(p.startTime)
	eta := time.Duration(float64(elapsed) * (1 - progress) / progress)
	if eta > maxETA {
		eta = maxETA
	}
	return eta
}
