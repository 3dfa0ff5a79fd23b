// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmhrun/jmhrun/internal/classpath"
	"github.com/jmhrun/jmhrun/internal/config"
	"github.com/jmhrun/jmhrun/internal/issue"
	"github.com/jmhrun/jmhrun/internal/jmh"
	"github.com/jmhrun/jmhrun/internal/props"
	"github.com/jmhrun/jmhrun/internal/runner"
)

type (
	// benchOptions are the inputs shared by run and plan.
	benchOptions struct {
		properties     []string
		propertyFiles  []string
		buildDir       string
		classpath      []string
		java           string
		timeout        time.Duration
		timeoutChanged bool
	}

	// preparedRun is a fully resolved harness launch.
	preparedRun struct {
		cfg        *config.Config
		props      jmh.Properties
		plan       *jmh.Plan
		invocation runner.Invocation
		runner     BenchmarkRunner
	}
)

func (o *benchOptions) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringArrayVarP(&o.properties, "property", "P", nil, "harness property as key=value, e.g. -P-wi=3 (repeatable)")
	f.StringArrayVar(&o.propertyFiles, "properties-file", nil, "load properties from a .properties or .toml file (repeatable)")
	f.StringVar(&o.buildDir, "build-dir", "", "build directory for harness output (default from config: build)")
	f.StringArrayVar(&o.classpath, "classpath", nil, "classpath entry or doublestar glob, replaces the configured entries (repeatable)")
	f.StringVar(&o.java, "java", "", "path to the java executable")
	f.DurationVar(&o.timeout, "timeout", 0, "stop the benchmark JVM after this duration (0 = no limit)")
}

// prepare loads configuration, merges the property layers and builds the
// harness invocation. Usage text for help requests goes to usageOut.
func (a *App) prepare(ctx context.Context, cmd *cobra.Command, opts *benchOptions, usageOut io.Writer) (*preparedRun, error) {
	cfg, err := a.loadConfig(ctx)
	if err != nil {
		a.renderIssue(nil, issue.ConfigLoadFailedId)
		return nil, err
	}
	opts.timeoutChanged = cmd.Flags().Changed("timeout")

	bag, err := a.collectProperties(cfg, opts)
	if err != nil {
		return nil, err
	}

	buildDir := string(cfg.Project.BuildDir)
	if opts.buildDir != "" {
		buildDir = opts.buildDir
	}

	entries := cfg.Project.Classpath
	if len(opts.classpath) > 0 {
		entries = opts.classpath
	}
	cp, err := classpath.Resolve(a.workDir, entries)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("resolve classpath").
			WithSuggestion("Quote glob entries so the shell does not expand them").
			Wrap(err).
			BuildError()
	}
	if cp.IsEmpty() {
		a.renderIssue(cfg, issue.ClasspathEmptyId)
		return nil, issue.NewErrorContext().
			WithOperation("resolve classpath").
			WithSuggestion("Compile the benchmark source set before running").
			Wrap(errors.New("no classpath entries matched")).
			BuildError()
	}

	builder := jmh.NewBuilder(jmh.Environment{
		BuildDir:       a.absPath(buildDir),
		OutputFileName: string(cfg.Project.OutputFile),
		Stdout:         usageOut,
	})
	plan := builder.Build(bag)

	timeout := cfg.Runner.Timeout.Duration()
	if opts.timeoutChanged {
		timeout = opts.timeout
	}

	binary := string(cfg.Java.Binary)
	if opts.java != "" {
		binary = opts.java
	}

	return &preparedRun{
		cfg:   cfg,
		props: bag,
		plan:  plan,
		invocation: runner.Invocation{
			MainClass: string(cfg.Runner.MainClass),
			Classpath: cp,
			Args:      plan.Args,
			JVMArgs:   plan.JVMArgs,
			WorkDir:   a.workDir,
			Stdout:    a.stdout,
			Stderr:    a.stderr,
			Stdin:     a.stdin,
			Timeout:   timeout,
		},
		runner: a.NewRunner(binary, string(cfg.Java.Home)),
	}, nil
}

// collectProperties merges config properties, property files and -P
// assignments, later layers winning.
func (a *App) collectProperties(cfg *config.Config, opts *benchOptions) (jmh.Properties, error) {
	layers := []jmh.Properties{jmh.Properties(cfg.Properties)}

	for _, file := range opts.propertyFiles {
		loaded, err := props.LoadFile(a.absPath(file))
		if err != nil {
			if errors.Is(err, props.ErrUnsupportedFormat) {
				a.renderIssue(cfg, issue.PropertyFileInvalidId)
			}
			return nil, issue.NewErrorContext().
				WithOperation("load property file").
				WithResource(file).
				Wrap(err).
				BuildError()
		}
		layers = append(layers, loaded)
	}

	cli, err := props.ParseAssignments(opts.properties)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("parse properties").
			WithSuggestion("Use -P<flag>=<value>, for example -P-wi=3").
			Wrap(err).
			BuildError()
	}
	layers = append(layers, cli)

	return props.Merge(layers...), nil
}

func (a *App) absPath(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(a.workDir, p)
}

// renderIssue prints catalog guidance to stderr. Rendering problems are not
// worth failing the command over.
func (a *App) renderIssue(cfg *config.Config, id issue.Id) {
	rendered, err := issue.Get(id).Render(glamourStyle(cfg))
	if err != nil {
		a.logger.Debug("render issue", "id", id, "error", err)
		return
	}
	fmt.Fprint(a.stderr, rendered)
}
