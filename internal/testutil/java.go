// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// fakeJavaScript echoes each argument on its own line prefixed with "arg:",
// and exits with $FAKE_JAVA_EXIT (default 0). When FAKE_JAVA_SLEEP is set it
// sleeps that many seconds first.
const fakeJavaScript = `#!/bin/sh
if [ -n "$FAKE_JAVA_SLEEP" ]; then
	sleep "$FAKE_JAVA_SLEEP"
fi
for a in "$@"; do
	printf 'arg:%s\n' "$a"
done
echo "stderr-line" >&2
exit "${FAKE_JAVA_EXIT:-0}"
`

// WriteFakeJava creates a JAVA_HOME-style directory containing bin/java that
// prints its arguments instead of starting a JVM. It returns the java home.
// Tests are skipped on Windows, where the shell script cannot run.
func WriteFakeJava(t testing.TB) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake java launcher requires a POSIX shell")
	}

	home := t.TempDir()
	if err := InstallFakeJava(home); err != nil {
		t.Fatalf("failed to install fake java: %v", err)
	}
	return home
}

// InstallFakeJava writes the fake launcher to <home>/bin/java. It is the
// testing.TB-free variant for script test setup hooks.
func InstallFakeJava(home string) error {
	bin := filepath.Join(home, "bin")
	if err := os.MkdirAll(bin, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(bin, "java"), []byte(fakeJavaScript), 0o755)
}

// FakeJavaArgs extracts the arguments recorded by the fake java launcher from its stdout.
func FakeJavaArgs(stdout string) []string {
	var args []string
	for line := range strings.SplitSeq(stdout, "\n") {
		if a, ok := strings.CutPrefix(line, "arg:"); ok {
			args = append(args, a)
		}
	}
	return args
}
