// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jmhrun/jmhrun/internal/issue"
	"github.com/jmhrun/jmhrun/internal/runner"
	"github.com/jmhrun/jmhrun/internal/watch"
)

func newRunCommand(app *App) *cobra.Command {
	var (
		opts      benchOptions
		watchMode bool
	)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the benchmarks in a child JVM",
		Long: `Run the benchmarks in a child JVM.

Properties come from the config file, then --properties-file, then -P, each
layer overriding the previous one. Only properties named after a recognized
harness flag reach the harness; see 'jmhrun flags'.`,
		Example: `  jmhrun run -P-wi=3 -P-i=5 -P-f=1
  jmhrun run -P-jvmArgs="-Xmx2g -XX:+UseG1GC"
  jmhrun run --properties-file bench.toml -P-o=results/run1.txt
  jmhrun run --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if watchMode {
				return app.watchBenchmarks(cmd, &opts)
			}
			return app.runBenchmarks(cmd, &opts)
		},
	}

	opts.register(runCmd)
	runCmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "re-run when compiled classes or jars change")
	return runCmd
}

func (a *App) runBenchmarks(cmd *cobra.Command, opts *benchOptions) error {
	ctx := cmd.Context()
	prepared, err := a.prepare(ctx, cmd, opts, a.stdout)
	if err != nil {
		return err
	}
	return a.launch(ctx, prepared)
}

// launch runs one prepared invocation and maps its outcome to an error.
func (a *App) launch(ctx context.Context, p *preparedRun) error {
	inv := p.invocation
	inv.RunID = uuid.NewString()

	if p.plan.Help {
		a.logger.Debug("help requested, launching harness with -h", "run_id", inv.RunID)
	} else {
		a.logger.Info("running benchmarks", "output", p.plan.OutputFile)
	}

	result := p.runner.Run(ctx, inv)
	switch {
	case result.Error != nil && errors.Is(result.Error, runner.ErrJavaNotFound):
		a.renderIssue(p.cfg, issue.JavaNotFoundId)
		return &ExitError{Code: 1, Err: result.Error}
	case result.Error != nil && errors.Is(result.Error, runner.ErrTimedOut):
		a.renderIssue(p.cfg, issue.BenchmarkTimedOutId)
		return &ExitError{Code: result.ExitCode, Err: result.Error}
	case result.Error != nil:
		return &ExitError{Code: result.ExitCode, Err: result.Error}
	case !result.ExitCode.IsSuccess():
		a.logger.Debug("harness exited with failure", "run_id", inv.RunID, "exit_code", result.ExitCode)
		return &ExitError{Code: result.ExitCode}
	}

	a.logger.Debug("benchmarks finished", "run_id", inv.RunID, "duration", result.Duration)
	return nil
}

// watchBenchmarks runs once and then again whenever the classpath
// directories change, until the context is cancelled.
func (a *App) watchBenchmarks(cmd *cobra.Command, opts *benchOptions) error {
	ctx := cmd.Context()
	prepared, err := a.prepare(ctx, cmd, opts, a.stdout)
	if err != nil {
		return err
	}

	roots := prepared.invocation.Classpath.Dirs()
	if len(roots) == 0 {
		return issue.NewErrorContext().
			WithOperation("watch build output").
			WithSuggestion("Compile the benchmarks once so the class directories exist").
			Wrap(watch.ErrNoRoots).
			BuildError()
	}

	if err := a.reportRun(a.launch(ctx, prepared)); err != nil {
		return err
	}

	w, err := watch.New(watch.Config{
		Roots:    roots,
		Patterns: prepared.cfg.Watch.Patterns,
		Debounce: prepared.cfg.Watch.Debounce.Duration(),
		OnChange: func(ctx context.Context, changed []string) error {
			fmt.Fprintln(a.stderr, SubtitleStyle.Render(fmt.Sprintf("%d file(s) changed, re-running benchmarks", len(changed))))
			// Reload so edits to property files between runs take effect.
			next, err := a.prepare(ctx, cmd, opts, a.stdout)
			if err != nil {
				return err
			}
			return a.reportRun(a.launch(ctx, next))
		},
	})
	if err != nil {
		return issue.WrapWithOperation(err, "watch build output")
	}

	a.logger.Info("watching for changes", "dirs", len(roots))
	return w.Run(ctx)
}

// reportRun keeps a failing benchmark from ending watch mode. Only errors
// that are not a plain harness exit status are returned.
func (a *App) reportRun(err error) error {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		fmt.Fprintln(a.stderr, WarningStyle.Render(fmt.Sprintf("benchmarks exited with status %d", exitErr.Code)))
		return nil
	}
	return err
}
