package output

import "errors"

// Process exit statuses.
const (
	ExitSuccess     = 0
	ExitUserError   = 1 // bad mode, bad flag, bad config
	ExitSystemError = 2 // unreadable source, unwritable artifact
)

// ExitError is a failed run: what went wrong and the status to exit with.
// Usage, when set, is the command synopsis shown after the message.
type ExitError struct {
	Code    int
	Message string
	Usage   string
	Cause   error
}

// Error returns the message, or the usage line for a bare usage error.
func (e *ExitError) Error() string {
	if e.Message == "" {
		return e.Usage
	}
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/errors.As support.
func (e *ExitError) Unwrap() error {
	return e.Cause
}

// NewUsageError reports a bad invocation. With an empty message only the
// usage line is shown.
func NewUsageError(message, usage string) *ExitError {
	return &ExitError{
		Code:    ExitUserError,
		Message: message,
		Usage:   usage,
	}
}

// NewUserError reports an invalid flag value.
func NewUserError(message string) *ExitError {
	return &ExitError{
		Code:    ExitUserError,
		Message: message,
	}
}

// ConfigError reports a config file, env file or source pattern that cannot
// be used as given.
func ConfigError(err error) *ExitError {
	return &ExitError{
		Code:    ExitUserError,
		Message: err.Error(),
		Cause:   err,
	}
}

// IOError reports a source that cannot be read or an artifact that cannot
// be written.
func IOError(err error) *ExitError {
	return &ExitError{
		Code:    ExitSystemError,
		Message: err.Error(),
		Cause:   err,
	}
}

// GetExitCode maps a command error to the process exit status.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	// Untyped errors come from flag parsing and argument validation.
	return ExitUserError
}
