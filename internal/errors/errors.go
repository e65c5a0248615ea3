package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Exit codes for the CLI.
const (
	// ExitSuccess indicates the command completed successfully, including
	// handled conditions such as an unknown command name or a cancelled prompt.
	ExitSuccess = 0

	// ExitFailure indicates an unhandled failure (filesystem, I/O, configuration).
	ExitFailure = 1
)

// Sentinel errors for common failure conditions.
var (
	// ErrUnknownCommand indicates a command name that is not in the catalog.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrTemplateNotFound indicates the template store has no file for a
	// catalog entry.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrInvalidConfig indicates configuration loading or validation failed.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Re-exports of github.com/cockroachdb/errors so callers only need one
// errors import.
var (
	New      = errors.New
	Newf     = errors.Newf
	Wrap     = errors.Wrap
	Wrapf    = errors.Wrapf
	Is       = errors.Is
	As       = errors.As
	Mark     = errors.Mark
	WithHint = errors.WithHint
)

// ExitError wraps an error with an exit code and optional suggestion for CLI applications.
// It implements the error interface and supports unwrapping via errors.Unwrap.
type ExitError struct {
	// Err is the underlying error that caused the exit.
	Err error

	// Code is the exit code to return to the operating system.
	Code int

	// Suggestion is an optional actionable suggestion for the user.
	Suggestion string
}

// NewExitError creates an ExitError with the given underlying error and exit code.
// If err is nil, the returned ExitError will have a nil Err field.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{
		Err:  err,
		Code: code,
	}
}

// NewUserError creates an ExitError with ExitFailure code for invalid
// flags or arguments.
func NewUserError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitFailure,
		Suggestion: suggestion,
	}
}

// NewInstallError creates an ExitError with ExitFailure code for a failed
// installation step.
func NewInstallError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitFailure,
		Suggestion: suggestion,
	}
}

// NewConfigError creates an ExitError with ExitFailure code and a standard suggestion.
func NewConfigError(err error) *ExitError {
	return &ExitError{
		Err:        errors.Mark(err, ErrInvalidConfig),
		Code:       ExitFailure,
		Suggestion: "Check ~/.config/dev-agents/config.yaml or the --config path",
	}
}

// Error returns the error message from the underlying error.
// If the underlying error is nil, it returns a generic message with the exit code.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error, enabling errors.Is and errors.As
// to examine the error chain.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode extracts the exit code from err. A nil error maps to ExitSuccess
// and any error without an ExitError in its chain maps to ExitFailure.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}
