// SPDX-License-Identifier: MPL-2.0

package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
)

type (
	// executeOutput configures where the child's output goes. It hides the
	// difference between streaming to the invocation writers and capturing
	// into buffers.
	executeOutput struct {
		stdout io.Writer
		stderr io.Writer
	}

	// capturedOutput holds the buffers filled in capture mode.
	capturedOutput struct {
		stdout bytes.Buffer
		stderr bytes.Buffer
	}
)

func newStreamingOutput(stdout, stderr io.Writer) *executeOutput {
	return &executeOutput{stdout: stdout, stderr: stderr}
}

func newCapturingOutput() (*executeOutput, *capturedOutput) {
	captured := &capturedOutput{}
	return &executeOutput{stdout: &captured.stdout, stderr: &captured.stderr}, captured
}

// extractExitCode turns the error from cmd.Wait into a Result. ctxErr is the
// run context's error, used to tell a timeout apart from a crash.
func extractExitCode(err, ctxErr error, captured *capturedOutput) *Result {
	result := &Result{}
	if captured != nil {
		result.Output = captured.stdout.String()
		result.ErrOutput = captured.stderr.String()
	}

	if err == nil {
		return result
	}

	if errors.Is(ctxErr, context.DeadlineExceeded) {
		result.ExitCode = 1
		result.Error = fmt.Errorf("%w: %w", ErrTimedOut, err)
		return result
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := ExitCode(exitErr.ExitCode())
		if ok, errs := code.IsValid(); !ok {
			// -1 means the child was killed by a signal.
			result.ExitCode = 1
			result.Error = fmt.Errorf("child jvm terminated abnormally: %w", errors.Join(append(errs, err)...))
			return result
		}
		result.ExitCode = code
		return result
	}

	result.ExitCode = 1
	result.Error = fmt.Errorf("failed to run java: %w", err)
	return result
}
