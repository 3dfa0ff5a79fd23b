// SPDX-License-Identifier: MPL-2.0

// Package runner launches the benchmark harness in a child JVM.
//
// An Invocation describes one launch: main class, classpath, harness
// arguments and JVM arguments. JavaRunner resolves the java executable,
// assembles the command line and runs it either streaming output to the
// caller's writers (Run) or capturing it (RunCapture). A non-zero child exit
// is reported through Result.ExitCode, not as an error.
package runner
