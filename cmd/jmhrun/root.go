// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the jmhrun command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "jmhrun",
		Short: "Run JMH benchmarks from compiled build output",
		Long: TitleStyle.Render("jmhrun") + SubtitleStyle.Render(" - Run JMH benchmarks from compiled build output") + `

jmhrun turns build properties into a JMH harness invocation and launches
it in a child JVM. Properties whose name is a recognized harness flag are
passed through; -jvmArgs becomes the child JVM's launch arguments.

` + SubtitleStyle.Render("Examples:") + `
  jmhrun run -P-wi=3 -P-i=5          Run with 3 warmup and 5 measurement iterations
  jmhrun run -Phelp                  Show the harness options
  jmhrun plan -P-jvmArgs="-Xmx2g"    Print the command line without running it
  jmhrun flags                       List recognized harness flags
  jmhrun config show                 Show current configuration`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setVerbose(app.logger, app.verbose)
			installLogger(app.logger)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&app.configPath, "config", "", "config file (default is $HOME/.config/jmhrun/config.cue)")

	rootCmd.AddCommand(newRunCommand(app))
	rootCmd.AddCommand(newPlanCommand(app))
	rootCmd.AddCommand(newFlagsCommand(app))
	rootCmd.AddCommand(newConfigCommand(app))

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the CLI and exits the process with its status.
// This is called by main.main().
func Execute() {
	os.Exit(Run())
}

// Run executes the command tree against os.Args and returns the exit status.
func Run() int {
	app, err := NewApp(Dependencies{})
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+err.Error())
		return 1
	}

	// fang overrides rootCmd.Version, so the version goes through WithVersion.
	if err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return int(exitErr.Code)
		}
		return 1
	}
	return 0
}
