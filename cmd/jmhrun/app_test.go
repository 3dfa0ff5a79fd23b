// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/jmhrun/jmhrun/internal/config"
	"github.com/jmhrun/jmhrun/internal/testutil"
)

type (
	testEnv struct {
		app     *App
		stdout  *bytes.Buffer
		stderr  *bytes.Buffer
		workDir string
		cfgDir  string
		java    string
	}
)

// newTestEnv creates an App rooted in a temporary project with compiled
// benchmark classes and a fake java launcher.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		stdout:  &bytes.Buffer{},
		stderr:  &bytes.Buffer{},
		workDir: t.TempDir(),
		cfgDir:  t.TempDir(),
		java:    filepath.Join(testutil.WriteFakeJava(t), "bin", "java"),
	}
	testutil.MustMkdirAll(t, filepath.Join(env.workDir, "build", "classes", "java", "benchmark"), 0o755)

	app, err := NewApp(Dependencies{
		Stdout:    env.stdout,
		Stderr:    env.stderr,
		Stdin:     &bytes.Buffer{},
		WorkDir:   env.workDir,
		ConfigDir: env.cfgDir,
	})
	if err != nil {
		t.Fatalf("NewApp() error: %v", err)
	}
	env.app = app
	return env
}

func (e *testEnv) writeConfig(t *testing.T, content string) {
	t.Helper()
	testutil.MustWriteFile(t, filepath.Join(e.cfgDir, "config.cue"), []byte(content), 0o644)
}

// execute runs the command tree with args and returns the handler error.
func (e *testEnv) execute(t *testing.T, args ...string) error {
	t.Helper()
	root := NewRootCommand(e.app)
	root.SetArgs(args)
	root.SetOut(e.stdout)
	root.SetErr(e.stderr)
	return root.ExecuteContext(context.Background())
}

func TestNewApp_Defaults(t *testing.T) {
	t.Parallel()

	app, err := NewApp(Dependencies{WorkDir: t.TempDir()})
	if err != nil {
		t.Fatalf("NewApp() error: %v", err)
	}
	if app.Config == nil || app.NewRunner == nil {
		t.Fatal("NewApp() should fill default config provider and runner factory")
	}
	if app.stdout == nil || app.stderr == nil || app.stdin == nil {
		t.Error("NewApp() should default the standard streams")
	}
	if _, ok := app.NewRunner("", "").(BenchmarkRunner); !ok {
		t.Error("default runner factory should return a BenchmarkRunner")
	}
}

func TestGlamourStyle(t *testing.T) {
	t.Parallel()

	if got := glamourStyle(nil); got != "auto" {
		t.Errorf("glamourStyle(nil) = %q", got)
	}
	cfg := config.DefaultConfig()
	cfg.UI.ColorScheme = config.ColorSchemeLight
	if got := glamourStyle(cfg); got != "light" {
		t.Errorf("glamourStyle(light) = %q", got)
	}
}
