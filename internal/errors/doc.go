// Package errors provides error handling conventions for the dev-agents CLI.
//
// It re-exports the wrapping helpers of github.com/cockroachdb/errors,
// defines sentinel errors for the handled conditions of the installer,
// and an ExitError type that carries the process exit code.
//
// # Sentinel Errors
//
//	if errors.Is(err, deverrors.ErrUnknownCommand) {
//	    // print the catalog, exit 0
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): success, or a handled non-fatal condition
//   - ExitFailure (1): filesystem, I/O or configuration failure
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and an optional
// suggestion. [ExitCode] resolves the code for any error chain:
//
//	err := deverrors.NewInstallError(cause, "Check directory permissions")
//	os.Exit(deverrors.ExitCode(err))
package errors
