// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"mvdan.cc/sh/v3/syntax"

	"github.com/jmhrun/jmhrun/internal/runner"
)

func newPlanCommand(app *App) *cobra.Command {
	var opts benchOptions

	planCmd := &cobra.Command{
		Use:   "plan",
		Short: "Print the harness invocation without running it",
		Long: `Print the harness invocation without running it.

Takes the same inputs as 'jmhrun run' and shows the harness arguments, the
child JVM arguments, the classpath, the output file and the full command
line, quoted for a POSIX shell.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prepared, err := app.prepare(cmd.Context(), cmd, &opts, io.Discard)
			if err != nil {
				return err
			}
			return app.renderPlan(prepared)
		},
	}

	opts.register(planCmd)
	return planCmd
}

func (a *App) renderPlan(p *preparedRun) error {
	w := a.stdout
	keyStyle := CmdStyle

	fmt.Fprintln(w, TitleStyle.Render("Benchmark plan"))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("harness args"), strings.Join(p.plan.Args, " "))
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("jvm args"), orNone(strings.Join(p.plan.JVMArgs, " ")))
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("main class"), mainClassOrDefault(p.invocation.MainClass))
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("classpath"))
	for _, entry := range p.invocation.Classpath {
		fmt.Fprintf(w, "  - %s\n", entry)
	}
	if p.plan.Help {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("help"), SuccessStyle.Render("true"))
	} else {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("output file"), p.plan.OutputFile)
	}
	if p.invocation.Timeout > 0 {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("timeout"), p.invocation.Timeout)
	}

	argv, err := p.runner.Command(p.invocation)
	if err != nil {
		// The plan is still useful without a resolvable java.
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("command"), WarningStyle.Render(err.Error()))
		return nil
	}
	line, err := shellQuote(argv)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("command"), line)
	return nil
}

// shellQuote renders argv as a single bash-compatible command line.
func shellQuote(argv []string) (string, error) {
	quoted := make([]string, len(argv))
	for i, arg := range argv {
		q, err := syntax.Quote(arg, syntax.LangBash)
		if err != nil {
			return "", fmt.Errorf("quote argument %q: %w", arg, err)
		}
		quoted[i] = q
	}
	return strings.Join(quoted, " "), nil
}

func orNone(s string) string {
	if s == "" {
		return SubtitleStyle.Render("(none)")
	}
	return s
}

func mainClassOrDefault(mainClass string) string {
	if mainClass == "" {
		return runner.DefaultMainClass
	}
	return mainClass
}
