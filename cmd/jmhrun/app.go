// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/jmhrun/jmhrun/internal/config"
	"github.com/jmhrun/jmhrun/internal/runner"
)

type (
	// App wires CLI services and shared dependencies. It is the composition
	// root for the CLI layer: every Cobra handler receives an App and goes
	// through its Config provider and runner factory.
	App struct {
		Config    ConfigProvider
		NewRunner RunnerFactory
		stdout    io.Writer
		stderr    io.Writer
		stdin     io.Reader
		workDir   string
		configDir string
		logger    *log.Logger

		// global flags
		verbose    bool
		configPath string
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Config    ConfigProvider
		NewRunner RunnerFactory
		Stdout    io.Writer
		Stderr    io.Writer
		Stdin     io.Reader
		// WorkDir is where relative build paths resolve. Empty means the current directory.
		WorkDir string
		// ConfigDir replaces the per-user configuration directory when set.
		ConfigDir string
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}

	// BenchmarkRunner launches the harness and can describe the command it would run.
	BenchmarkRunner interface {
		runner.Runner
		Command(inv runner.Invocation) ([]string, error)
	}

	// RunnerFactory creates a BenchmarkRunner for the configured java binary or home.
	RunnerFactory func(binary, javaHome string) BenchmarkRunner
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) (*App, error) {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Stdin == nil {
		deps.Stdin = os.Stdin
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.NewRunner == nil {
		deps.NewRunner = func(binary, javaHome string) BenchmarkRunner {
			return runner.NewJavaRunner(binary, javaHome)
		}
	}
	if deps.WorkDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		deps.WorkDir = wd
	}

	return &App{
		Config:    deps.Config,
		NewRunner: deps.NewRunner,
		stdout:    deps.Stdout,
		stderr:    deps.Stderr,
		stdin:     deps.Stdin,
		workDir:   deps.WorkDir,
		configDir: deps.ConfigDir,
		logger:    newLogger(deps.Stderr, false),
	}, nil
}

// loadOptions returns the config lookup inputs for the current invocation.
func (a *App) loadOptions() config.LoadOptions {
	return config.LoadOptions{
		ConfigFilePath: a.configPath,
		ConfigDirPath:  a.configDir,
		WorkDir:        a.workDir,
	}
}

// loadConfig loads configuration and applies ui.verbose to the logger.
func (a *App) loadConfig(ctx context.Context) (*config.Config, error) {
	cfg, err := a.Config.Load(ctx, a.loadOptions())
	if err != nil {
		return nil, err
	}
	if cfg.UI.Verbose && !a.verbose {
		a.verbose = true
		setVerbose(a.logger, true)
	}
	return cfg, nil
}

// glamourStyle maps the ui.color_scheme setting to a glamour standard style.
func glamourStyle(cfg *config.Config) string {
	if cfg == nil || cfg.UI.ColorScheme == "" {
		return string(config.ColorSchemeAuto)
	}
	return string(cfg.UI.ColorScheme)
}
