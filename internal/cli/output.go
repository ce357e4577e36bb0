// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayResult], [DisplayQuietResult], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatTruncated].
//
//   - Write* functions write data to files on the filesystem.
//     They handle file creation, directory setup, and error handling.
//     Examples: [WriteResultToFile].

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/agbru/bignum"
	"github.com/agbru/bignum/internal/format"
	"github.com/agbru/bignum/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// OutBase is the radix used to format result values.
	OutBase int
	// Quiet mode suppresses everything but the result values.
	Quiet bool
	// Verbose shows the full result value regardless of its length.
	Verbose bool
}

// FormatTruncated shortens a formatted number for terminal display. Values at
// or below TruncationLimit characters pass through unchanged; longer values
// keep DisplayEdges characters from each end with the total digit count in
// between.
//
// Parameters:
//   - s: The formatted number.
//
// Returns:
//   - string: The display form.
func FormatTruncated(s string) string {
	if len(s) <= TruncationLimit {
		return s
	}
	return fmt.Sprintf("%s...%s (%s digits)",
		s[:DisplayEdges],
		s[len(s)-DisplayEdges:],
		format.FormatNumberString(strconv.Itoa(len(s))))
}

// DisplayResult writes one evaluated result with its request description and
// timing. The value is truncated unless verbose output was requested.
//
// Parameters:
//   - out: The output writer.
//   - desc: A short description of the request (e.g. "sqrt(144)").
//   - value: The evaluated result.
//   - duration: The evaluation duration.
//   - cfg: Output configuration.
func DisplayResult(out io.Writer, desc string, value bignum.Int, duration time.Duration, cfg OutputConfig) {
	text := value.Text(cfg.OutBase)
	if !cfg.Verbose {
		text = FormatTruncated(text)
	}
	fmt.Fprintf(out, "%s%s%s = %s%s%s  %s(%s)%s\n",
		ui.ColorPrimary(), desc, ui.ColorReset(),
		ui.ColorBold(), text, ui.ColorReset(),
		ui.ColorSecondary(), format.FormatExecutionDuration(duration), ui.ColorReset())
}

// DisplayQuietResult writes only the result value, one per line, suitable for
// scripting.
//
// Parameters:
//   - out: The output writer.
//   - value: The evaluated result.
//   - cfg: Output configuration.
func DisplayQuietResult(out io.Writer, value bignum.Int, cfg OutputConfig) {
	fmt.Fprintln(out, value.Text(cfg.OutBase))
}

// DisplayError reports a failed request on the error stream.
//
// Parameters:
//   - out: The output writer.
//   - desc: A short description of the request.
//   - err: The failure.
func DisplayError(out io.Writer, desc string, err error) {
	fmt.Fprintf(out, "%s%s: %v%s\n", ui.ColorError(), desc, err, ui.ColorReset())
}

// WriteResultToFile writes an evaluated result to a file with a small header
// describing the request.
//
// Parameters:
//   - value: The evaluated result.
//   - desc: A short description of the request.
//   - duration: The evaluation duration.
//   - cfg: Output configuration; cfg.OutputFile names the destination.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteResultToFile(value bignum.Int, desc string, duration time.Duration, cfg OutputConfig) error {
	if cfg.OutputFile == "" {
		return nil
	}

	// Ensure directory exists
	dir := filepath.Dir(cfg.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(cfg.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	text := value.Text(cfg.OutBase)

	// Write header
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Request: %s\n", desc)
	fmt.Fprintf(file, "# Duration: %s\n", duration)
	fmt.Fprintf(file, "# Base: %d\n", cfg.OutBase)
	fmt.Fprintf(file, "# Bits: %d\n", value.BitLen())
	fmt.Fprintf(file, "# Digits: %d\n", len(text))
	fmt.Fprintf(file, "\n")

	// Write result
	fmt.Fprintf(file, "%s =\n%s\n", desc, text)

	return nil
}
