// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestPlan_PrintsInvocation(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	err := env.execute(t, "plan", "--java", env.java, "-P-wi=3", "-P-jvmArgs=-Xmx2g -Dname=two words", "--timeout", "5m")
	if err != nil {
		t.Fatalf("plan error: %v", err)
	}

	out := env.stdout.String()
	output := filepath.Join(env.workDir, "build", "jmh-output.txt")
	for _, want := range []string{
		"harness args: -wi 3 -o " + output,
		"jvm args: -Xmx2g -Dname=two words",
		"main class: org.openjdk.jmh.Main",
		"output file: " + output,
		"timeout: 5m0s",
		"command: " + env.java + " -Xmx2g '-Dname=two words' -cp ",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("plan output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "arg:") {
		t.Error("plan must not launch the JVM")
	}
}

func TestPlan_HelpDoesNotPrintUsage(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	if err := env.execute(t, "plan", "--java", env.java, "-Phelp"); err != nil {
		t.Fatalf("plan error: %v", err)
	}
	out := env.stdout.String()
	if !strings.Contains(out, "harness args: -h\n") || !strings.Contains(out, "help: true") {
		t.Errorf("plan output:\n%s", out)
	}
	if strings.Contains(out, "All benchmarks must be compilable") {
		t.Error("plan should not print the usage text")
	}
}

func TestPlan_UnresolvableJava(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	if err := env.execute(t, "plan", "--java", filepath.Join(t.TempDir(), "nope")); err != nil {
		t.Fatalf("plan should still succeed, got %v", err)
	}
	if !strings.Contains(env.stdout.String(), "resolve java launcher") {
		t.Errorf("plan output should explain the java problem:\n%s", env.stdout)
	}
}

func TestShellQuote(t *testing.T) {
	t.Parallel()

	got, err := shellQuote([]string{"java", "-Dmsg=hello world", "-cp", "classes", ""})
	if err != nil {
		t.Fatalf("shellQuote() error: %v", err)
	}
	want := `java '-Dmsg=hello world' -cp classes ''`
	if got != want {
		t.Errorf("shellQuote() = %s, want %s", got, want)
	}
}
