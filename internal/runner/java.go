// SPDX-License-Identifier: MPL-2.0

package runner

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/jmhrun/jmhrun/internal/issue"
)

// ErrJavaNotFound is returned when no java executable can be located.
var ErrJavaNotFound = errors.New("java executable not found")

// javaExecutable is the launcher name inside <java home>/bin.
func javaExecutable() string {
	if runtime.GOOS == "windows" {
		return "java.exe"
	}
	return "java"
}

// ResolveJava locates the java launcher: the explicit Binary, then
// <JavaHome>/bin/java, then $JAVA_HOME/bin/java, then PATH.
func (r *JavaRunner) ResolveJava() (string, error) {
	if r.Binary != "" {
		return checkExecutable(r.Binary, "java binary")
	}
	if r.JavaHome != "" {
		return checkExecutable(filepath.Join(r.JavaHome, "bin", javaExecutable()), "java home")
	}
	if home := r.getenv("JAVA_HOME"); home != "" {
		return checkExecutable(filepath.Join(home, "bin", javaExecutable()), "JAVA_HOME")
	}

	path, err := exec.LookPath("java")
	if err != nil {
		return "", javaNotFound("PATH", err)
	}
	return path, nil
}

func (r *JavaRunner) getenv(key string) string {
	if r.Getenv != nil {
		return r.Getenv(key)
	}
	return os.Getenv(key)
}

func checkExecutable(path, source string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", javaNotFound(source, fmt.Errorf("%s: %w", path, err))
	}
	if info.IsDir() {
		return "", javaNotFound(source, fmt.Errorf("%s is a directory", path))
	}
	return path, nil
}

func javaNotFound(source string, cause error) error {
	return issue.NewErrorContext().
		WithOperation("resolve java launcher").
		WithResource(source).
		WithSuggestion("Set JAVA_HOME to a JDK installation").
		WithSuggestion("Pass --java with the path to the java executable").
		Wrap(fmt.Errorf("%w: %w", ErrJavaNotFound, cause)).
		BuildError()
}
