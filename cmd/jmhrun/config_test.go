// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmhrun/jmhrun/internal/testutil"
)

func TestConfigShow(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	env.writeConfig(t, `
java: home: "/opt/jdk"
properties: "-wi": "2"
`)

	if err := env.execute(t, "config", "show"); err != nil {
		t.Fatalf("config show error: %v", err)
	}
	out := env.stdout.String()
	for _, want := range []string{
		"Config file: " + filepath.Join(env.cfgDir, "config.cue"),
		"home: /opt/jdk",
		"-wi = 2",
		"main_class: org.openjdk.jmh.Main",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("config show missing %q:\n%s", want, out)
		}
	}
}

func TestConfigShow_InvalidFile(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	env.writeConfig(t, `ui: color_scheme: "neon"`)

	if err := env.execute(t, "config", "show"); err == nil {
		t.Fatal("expected an error for an invalid config")
	}
	if !strings.Contains(env.stderr.String(), "Failed to load configuration") {
		t.Errorf("stderr should carry the config guidance:\n%s", env.stderr)
	}
}

func TestConfigDump(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	if err := env.execute(t, "config", "dump"); err != nil {
		t.Fatalf("config dump error: %v", err)
	}
	out := env.stdout.String()
	if !strings.Contains(out, `main_class: "org.openjdk.jmh.Main"`) || !strings.Contains(out, `"build/libs/**/*.jar"`) {
		t.Errorf("config dump output:\n%s", out)
	}
}

func TestConfigPath_NotCreated(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	if err := env.execute(t, "config", "path"); err != nil {
		t.Fatalf("config path error: %v", err)
	}
	want := filepath.Join(env.cfgDir, "config.cue") + " (not created)"
	if got := strings.TrimSpace(env.stdout.String()); got != want {
		t.Errorf("config path = %q, want %q", got, want)
	}
}

func TestConfigPath_ExplicitFile(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	explicit := filepath.Join(t.TempDir(), "bench.cue")
	testutil.MustWriteFile(t, explicit, []byte(`ui: verbose: false`), 0o644)

	if err := env.execute(t, "--config", explicit, "config", "path"); err != nil {
		t.Fatalf("config path error: %v", err)
	}
	if got := strings.TrimSpace(env.stdout.String()); got != explicit {
		t.Errorf("config path = %q, want %q", got, explicit)
	}
}

func TestConfigInit(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	want := filepath.Join(env.cfgDir, "config.cue")

	if err := env.execute(t, "config", "init"); err != nil {
		t.Fatalf("config init error: %v", err)
	}
	if !strings.Contains(env.stdout.String(), "Created configuration file:") {
		t.Errorf("stdout = %q", env.stdout)
	}
	if !strings.Contains(env.stdout.String(), want) {
		t.Errorf("config should be created at %s: %s", want, env.stdout)
	}

	env.stdout.Reset()
	if err := env.execute(t, "config", "init"); err != nil {
		t.Fatalf("second config init error: %v", err)
	}
	if !strings.Contains(env.stdout.String(), "already exists") {
		t.Errorf("second init stdout = %q", env.stdout)
	}
}
