// SPDX-License-Identifier: MPL-2.0

package runtime

// Result is the outcome of a single external command execution.
type Result struct {
	// ExitCode is the child's exit status, passed through unmodified.
	ExitCode ExitCode
	// Error is set only for djrun-side failures (spawn, interpreter
	// resolution); child failures are expressed by ExitCode alone.
	Error error
	// Output holds captured stdout when the command was run with capture.
	Output string
	// ErrOutput holds captured stderr when the command was run with capture.
	ErrOutput string
}

// NewErrorResult creates a Result with the given exit code and error.
func NewErrorResult(code ExitCode, err error) *Result {
	return &Result{ExitCode: code, Error: err}
}

// NewSuccessResult creates a Result with exit code 0 and no error.
func NewSuccessResult() *Result {
	return &Result{}
}

// NewExitCodeResult creates a Result with the given exit code and no error.
// Use this for non-zero exits that represent normal process termination
// rather than infrastructure failures.
func NewExitCodeResult(code ExitCode) *Result {
	return &Result{ExitCode: code}
}
