package apperrors

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the operation timed out.
	ExitErrorInput    = 3   // Indicates an operand could not be parsed or violates an operation's domain.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
//
// Returns:
//   - string: The error message string.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
// It allows for the creation of configuration-specific errors with dynamic
// content.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// EvaluationError encapsulates a failure while evaluating an arithmetic
// request, preserving the original cause. This allows for structured error
// handling and inspection of what went wrong during evaluation.
type EvaluationError struct {
	// Op is the name of the operation being evaluated.
	Op string
	// Cause is the underlying error that triggered this evaluation error.
	Cause error
}

// Error returns a formatted message naming the failed operation.
//
// Returns:
//   - string: The error message string.
func (e EvaluationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
//
// Returns:
//   - error: The underlying cause of the EvaluationError.
func (e EvaluationError) Unwrap() error { return e.Cause }

// InputError represents an operand that could not be interpreted. It
// identifies which positional operand failed and carries the parse failure.
type InputError struct {
	// Position is the zero-based index of the offending operand.
	Position int
	// Cause is the underlying parse error.
	Cause error
}

// Error returns a formatted message locating the bad operand.
//
// Returns:
//   - string: The error message string.
func (e InputError) Error() string {
	return fmt.Sprintf("operand %d: %v", e.Position, e.Cause)
}

// Unwrap returns the underlying parse error.
//
// Returns:
//   - error: The underlying cause of the InputError.
func (e InputError) Unwrap() error { return e.Cause }

// TimeoutError represents an evaluation timeout. It captures the operation
// name and the duration limit that was exceeded.
type TimeoutError struct {
	// Operation is the name of the operation that timed out.
	Operation string
	// Limit is the duration after which the operation was considered timed out.
	Limit time.Duration
}

// Error returns a formatted message describing the timeout.
//
// Returns:
//   - string: The error message string.
func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error is a context error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCodeFor maps an error to the application exit code that should be
// reported to the OS. Context errors take precedence so that interrupted runs
// are distinguishable from genuine failures.
//
// Parameters:
//   - err: The error to classify.
//
// Returns:
//   - int: The corresponding exit code.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		return ExitErrorCanceled
	}
	var cfgErr ConfigError
	if errors.As(err, &cfgErr) {
		return ExitErrorConfig
	}
	var inErr InputError
	if errors.As(err, &inErr) {
		return ExitErrorInput
	}
	var toErr TimeoutError
	if errors.As(err, &toErr) {
		return ExitErrorTimeout
	}
	return ExitErrorGeneric
}
