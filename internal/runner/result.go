// SPDX-License-Identifier: MPL-2.0

package runner

import "time"

// Result is the outcome of one harness launch.
type Result struct {
	// ExitCode is the child JVM exit status.
	ExitCode ExitCode
	// Error is set when the child could not be started, was killed by a
	// timeout, or reported an out-of-range status. A non-zero exit alone
	// leaves it nil.
	Error error
	// Output contains captured stdout (RunCapture only).
	Output string
	// ErrOutput contains captured stderr (RunCapture only).
	ErrOutput string
	// Duration is the wall time from start to exit.
	Duration time.Duration
}

// Success reports whether the child exited 0 without error.
func (r *Result) Success() bool {
	return r.Error == nil && r.ExitCode.IsSuccess()
}

// NewErrorResult creates a Result with the given exit code and error.
func NewErrorResult(code ExitCode, err error) *Result {
	return &Result{ExitCode: code, Error: err}
}
