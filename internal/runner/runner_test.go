// SPDX-License-Identifier: MPL-2.0

package runner

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/jmhrun/jmhrun/internal/classpath"
	"github.com/jmhrun/jmhrun/internal/testutil"
)

func noEnv(string) string { return "" }

func TestCommandLine(t *testing.T) {
	t.Parallel()

	sep := string(os.PathListSeparator)
	tests := []struct {
		name string
		inv  Invocation
		want []string
	}{
		{
			name: "default main class without classpath",
			inv:  Invocation{Args: []string{"-o", "out.txt"}},
			want: []string{"java", DefaultMainClass, "-o", "out.txt"},
		},
		{
			name: "jvm args precede classpath",
			inv: Invocation{
				JVMArgs:   []string{"-Xmx2g", "-Dfoo=bar"},
				Classpath: classpath.Classpath{"a", "b.jar"},
				Args:      []string{"-wi", "3"},
			},
			want: []string{"java", "-Xmx2g", "-Dfoo=bar", "-cp", "a" + sep + "b.jar", DefaultMainClass, "-wi", "3"},
		},
		{
			name: "custom main class",
			inv:  Invocation{MainClass: "com.example.Bench", Args: []string{"-h"}},
			want: []string{"java", "com.example.Bench", "-h"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := commandLine("java", tt.inv); !slices.Equal(got, tt.want) {
				t.Errorf("commandLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveJava_Order(t *testing.T) {
	t.Parallel()

	home := testutil.WriteFakeJava(t)
	java := filepath.Join(home, "bin", "java")

	t.Run("binary wins", func(t *testing.T) {
		t.Parallel()
		r := &JavaRunner{Binary: java, JavaHome: "/nonexistent", Getenv: noEnv}
		got, err := r.ResolveJava()
		if err != nil || got != java {
			t.Errorf("ResolveJava() = %q, %v", got, err)
		}
	})

	t.Run("java home", func(t *testing.T) {
		t.Parallel()
		r := &JavaRunner{JavaHome: home, Getenv: noEnv}
		got, err := r.ResolveJava()
		if err != nil || got != java {
			t.Errorf("ResolveJava() = %q, %v", got, err)
		}
	})

	t.Run("JAVA_HOME", func(t *testing.T) {
		t.Parallel()
		r := &JavaRunner{Getenv: func(k string) string {
			if k == "JAVA_HOME" {
				return home
			}
			return ""
		}}
		got, err := r.ResolveJava()
		if err != nil || got != java {
			t.Errorf("ResolveJava() = %q, %v", got, err)
		}
	})

	t.Run("missing java home", func(t *testing.T) {
		t.Parallel()
		r := &JavaRunner{JavaHome: t.TempDir(), Getenv: noEnv}
		_, err := r.ResolveJava()
		if !errors.Is(err, ErrJavaNotFound) {
			t.Errorf("ResolveJava() error = %v, want ErrJavaNotFound", err)
		}
	})

	t.Run("binary is a directory", func(t *testing.T) {
		t.Parallel()
		r := &JavaRunner{Binary: home, Getenv: noEnv}
		if _, err := r.ResolveJava(); !errors.Is(err, ErrJavaNotFound) {
			t.Errorf("ResolveJava() error = %v, want ErrJavaNotFound", err)
		}
	})
}

func TestResolveJava_PathFallback(t *testing.T) {
	home := testutil.WriteFakeJava(t)
	t.Setenv("PATH", filepath.Join(home, "bin"))

	r := &JavaRunner{Getenv: noEnv}
	got, err := r.ResolveJava()
	if err != nil {
		t.Fatalf("ResolveJava() error: %v", err)
	}
	if got != filepath.Join(home, "bin", "java") {
		t.Errorf("ResolveJava() = %q", got)
	}

	t.Setenv("PATH", t.TempDir())
	if _, err := r.ResolveJava(); !errors.Is(err, ErrJavaNotFound) {
		t.Errorf("ResolveJava() error = %v, want ErrJavaNotFound", err)
	}
}

func TestRunCapture_PassesArguments(t *testing.T) {
	t.Parallel()

	r := &JavaRunner{JavaHome: testutil.WriteFakeJava(t), Getenv: noEnv}
	inv := Invocation{
		JVMArgs:   []string{"-Xmx1g"},
		Classpath: classpath.Classpath{"classes"},
		Args:      []string{"-wi", "3", "-o", "build/jmh-output.txt"},
	}

	result := r.RunCapture(context.Background(), inv)
	if !result.Success() {
		t.Fatalf("RunCapture() = exit %d, err %v", result.ExitCode, result.Error)
	}

	want := []string{"-Xmx1g", "-cp", "classes", DefaultMainClass, "-wi", "3", "-o", "build/jmh-output.txt"}
	if got := testutil.FakeJavaArgs(result.Output); !slices.Equal(got, want) {
		t.Errorf("child args = %q, want %q", got, want)
	}
	if !strings.Contains(result.ErrOutput, "stderr-line") {
		t.Errorf("ErrOutput = %q, want stderr captured", result.ErrOutput)
	}
	if result.Duration <= 0 {
		t.Error("Duration should be positive")
	}
}

func TestRun_StreamsOutput(t *testing.T) {
	t.Parallel()

	r := &JavaRunner{JavaHome: testutil.WriteFakeJava(t), Getenv: noEnv}
	var stdout, stderr bytes.Buffer
	result := r.Run(context.Background(), Invocation{Args: []string{"-h"}, Stdout: &stdout, Stderr: &stderr})

	if !result.Success() {
		t.Fatalf("Run() = exit %d, err %v", result.ExitCode, result.Error)
	}
	if result.Output != "" {
		t.Errorf("Run() should not capture, got Output %q", result.Output)
	}
	if got := testutil.FakeJavaArgs(stdout.String()); !slices.Equal(got, []string{DefaultMainClass, "-h"}) {
		t.Errorf("streamed args = %q", got)
	}
	if !strings.Contains(stderr.String(), "stderr-line") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestRun_NonZeroExitIsNotAnError(t *testing.T) {
	t.Parallel()

	r := &JavaRunner{JavaHome: testutil.WriteFakeJava(t), Getenv: noEnv}
	result := r.RunCapture(context.Background(), Invocation{Env: map[string]string{"FAKE_JAVA_EXIT": "3"}})

	if result.Error != nil {
		t.Fatalf("Error = %v, want nil", result.Error)
	}
	if result.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", result.ExitCode)
	}
	if result.Success() {
		t.Error("Success() should be false")
	}
}

func TestRun_Timeout(t *testing.T) {
	t.Parallel()

	r := &JavaRunner{JavaHome: testutil.WriteFakeJava(t), Getenv: noEnv}
	result := r.RunCapture(context.Background(), Invocation{
		Env:     map[string]string{"FAKE_JAVA_SLEEP": "10"},
		Timeout: 200 * time.Millisecond,
	})

	if !errors.Is(result.Error, ErrTimedOut) {
		t.Fatalf("Error = %v, want ErrTimedOut", result.Error)
	}
	if result.ExitCode == 0 {
		t.Error("ExitCode should be non-zero after a timeout")
	}
}

func TestRun_JavaNotFound(t *testing.T) {
	t.Parallel()

	r := &JavaRunner{JavaHome: t.TempDir(), Getenv: noEnv}
	result := r.Run(context.Background(), Invocation{})
	if !errors.Is(result.Error, ErrJavaNotFound) {
		t.Errorf("Error = %v, want ErrJavaNotFound", result.Error)
	}
	if result.ExitCode != 1 {
		t.Errorf("ExitCode = %d, want 1", result.ExitCode)
	}
}

func TestBuildEnv_RunID(t *testing.T) {
	t.Parallel()

	env := buildEnv(Invocation{RunID: "abc", Env: map[string]string{"EXTRA": "1"}})
	if !slices.Contains(env, RunIDEnvVar+"=abc") {
		t.Errorf("env missing run id: %v", env)
	}
	if !slices.Contains(env, "EXTRA=1") {
		t.Errorf("env missing extra variable: %v", env)
	}
}
