// SPDX-License-Identifier: MPL-2.0

package runner

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"time"

	"github.com/google/uuid"

	"github.com/jmhrun/jmhrun/internal/classpath"
)

// DefaultMainClass is the entry point of the benchmark harness.
const DefaultMainClass = "org.openjdk.jmh.Main"

// RunIDEnvVar is exported to the child JVM with the invocation's run id.
const RunIDEnvVar = "JMHRUN_RUN_ID"

// waitDelay bounds how long Wait blocks on open output pipes after the child is killed.
const waitDelay = 2 * time.Second

// ErrTimedOut is wrapped by Result.Error when Invocation.Timeout elapses.
var ErrTimedOut = errors.New("benchmark run timed out")

type (
	// Invocation describes one launch of the harness.
	Invocation struct {
		// MainClass defaults to DefaultMainClass.
		MainClass string
		Classpath classpath.Classpath
		// Args are the harness arguments, placed after the main class.
		Args []string
		// JVMArgs are placed before -cp.
		JVMArgs []string
		// WorkDir is the child's working directory. Empty means the current one.
		WorkDir string
		// Env holds variables added to the inherited environment.
		Env map[string]string

		Stdout io.Writer
		Stderr io.Writer
		Stdin  io.Reader

		// Timeout kills the child after the given duration. Zero means no limit.
		Timeout time.Duration
		// RunID tags log records and is exported as JMHRUN_RUN_ID. Generated when empty.
		RunID string
	}

	// Runner executes harness invocations.
	Runner interface {
		// Run streams output to the invocation writers.
		Run(ctx context.Context, inv Invocation) *Result
		// RunCapture captures output into the result.
		RunCapture(ctx context.Context, inv Invocation) *Result
	}

	// JavaRunner runs invocations with a local java launcher.
	JavaRunner struct {
		// Binary is an explicit java executable path.
		Binary string
		// JavaHome is a JDK directory containing bin/java.
		JavaHome string
		// Getenv replaces os.Getenv for the JAVA_HOME lookup.
		Getenv func(string) string
	}
)

var _ Runner = (*JavaRunner)(nil)

// NewJavaRunner creates a JavaRunner. Empty arguments fall back to JAVA_HOME and PATH.
func NewJavaRunner(binary, javaHome string) *JavaRunner {
	return &JavaRunner{Binary: binary, JavaHome: javaHome}
}

// Command returns the full argv for inv:
//
//	java <JVMArgs...> [-cp <classpath>] <MainClass> <Args...>
func (r *JavaRunner) Command(inv Invocation) ([]string, error) {
	java, err := r.ResolveJava()
	if err != nil {
		return nil, err
	}
	return commandLine(java, inv), nil
}

// Run launches inv and streams its output.
func (r *JavaRunner) Run(ctx context.Context, inv Invocation) *Result {
	return r.run(ctx, inv, newStreamingOutput(inv.Stdout, inv.Stderr), nil)
}

// RunCapture launches inv and returns its output in the Result.
func (r *JavaRunner) RunCapture(ctx context.Context, inv Invocation) *Result {
	out, captured := newCapturingOutput()
	return r.run(ctx, inv, out, captured)
}

func (r *JavaRunner) run(ctx context.Context, inv Invocation, out *executeOutput, captured *capturedOutput) *Result {
	if inv.RunID == "" {
		inv.RunID = uuid.NewString()
	}

	argv, err := r.Command(inv)
	if err != nil {
		return NewErrorResult(1, err)
	}

	if inv.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, inv.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = inv.WorkDir
	cmd.Env = buildEnv(inv)
	cmd.Stdout = out.stdout
	cmd.Stderr = out.stderr
	cmd.Stdin = inv.Stdin
	cmd.WaitDelay = waitDelay

	slog.Debug("starting benchmark jvm", "run_id", inv.RunID, "argv", argv, "dir", inv.WorkDir)

	start := time.Now()
	runErr := cmd.Run()
	result := extractExitCode(runErr, ctx.Err(), captured)
	result.Duration = time.Since(start)

	slog.Debug("benchmark jvm exited",
		"run_id", inv.RunID,
		"exit_code", result.ExitCode,
		"duration", result.Duration,
		"error", result.Error,
	)
	return result
}

func commandLine(java string, inv Invocation) []string {
	mainClass := inv.MainClass
	if mainClass == "" {
		mainClass = DefaultMainClass
	}

	argv := make([]string, 0, len(inv.JVMArgs)+len(inv.Args)+4)
	argv = append(argv, java)
	argv = append(argv, inv.JVMArgs...)
	if !inv.Classpath.IsEmpty() {
		argv = append(argv, "-cp", inv.Classpath.String())
	}
	argv = append(argv, mainClass)
	argv = append(argv, inv.Args...)
	return argv
}

func buildEnv(inv Invocation) []string {
	env := os.Environ()
	for k, v := range inv.Env {
		env = append(env, k+"="+v)
	}
	if inv.RunID != "" {
		env = append(env, RunIDEnvVar+"="+inv.RunID)
	}
	return env
}
