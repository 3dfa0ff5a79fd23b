// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmhrun/jmhrun/internal/config"
	"github.com/jmhrun/jmhrun/internal/issue"
)

// newConfigCommand creates the `jmhrun config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage jmhrun configuration",
		Long: `Manage jmhrun configuration.

Configuration is stored in:
  - Linux: ~/.config/jmhrun/config.cue
  - macOS: ~/Library/Application Support/jmhrun/config.cue
  - Windows: %APPDATA%\jmhrun\config.cue

A jmhrun.cue file in the working directory is used when the user file is absent.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.loadConfig(cmd.Context())
			if err != nil {
				app.renderIssue(nil, issue.ConfigLoadFailedId)
				return err
			}
			path, _ := config.Locate(app.loadOptions())
			showConfig(app.stdout, cfg, path)
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, created, err := config.CreateDefaultConfig(app.configDir)
			if err != nil {
				return issue.WrapWithOperation(err, "create configuration file")
			}
			if !created {
				fmt.Fprintf(app.stdout, "%s %s\n", WarningStyle.Render("Configuration file already exists:"), path)
				return nil
			}
			fmt.Fprintf(app.stdout, "%s %s\n", SuccessStyle.Render("Created configuration file:"), path)
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Locate(app.loadOptions())
			if err != nil {
				return err
			}
			if path == "" {
				dir := app.configDir
				if dir == "" {
					if dir, err = config.ConfigDir(); err != nil {
						return err
					}
				}
				path = filepath.Join(dir, config.ConfigFileName+"."+config.ConfigFileExt)
				fmt.Fprintf(app.stdout, "%s %s\n", path, SubtitleStyle.Render("(not created)"))
				return nil
			}
			fmt.Fprintln(app.stdout, path)
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output effective configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(app.stdout, config.GenerateCUE(cfg))
			return nil
		},
	})

	return cfgCmd
}

func showConfig(w io.Writer, cfg *config.Config, path string) {
	keyStyle := CmdStyle
	valueStyle := SuccessStyle
	value := func(s string) string {
		if s == "" {
			return SubtitleStyle.Render("(not set)")
		}
		return valueStyle.Render(s)
	}

	fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)
	if path != "" {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), path)
	} else {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}

	fmt.Fprintf(w, "\n%s:\n", keyStyle.Render("java"))
	fmt.Fprintf(w, "  home: %s\n", value(string(cfg.Java.Home)))
	fmt.Fprintf(w, "  binary: %s\n", value(string(cfg.Java.Binary)))

	fmt.Fprintf(w, "\n%s:\n", keyStyle.Render("project"))
	fmt.Fprintf(w, "  build_dir: %s\n", value(string(cfg.Project.BuildDir)))
	fmt.Fprintf(w, "  output_file: %s\n", value(string(cfg.Project.OutputFile)))
	fmt.Fprintf(w, "  classpath:\n")
	for _, entry := range cfg.Project.Classpath {
		fmt.Fprintf(w, "    - %s\n", valueStyle.Render(entry))
	}

	fmt.Fprintf(w, "\n%s:\n", keyStyle.Render("runner"))
	fmt.Fprintf(w, "  main_class: %s\n", value(string(cfg.Runner.MainClass)))
	fmt.Fprintf(w, "  timeout: %s\n", value(string(cfg.Runner.Timeout)))

	fmt.Fprintf(w, "\n%s:\n", keyStyle.Render("properties"))
	if len(cfg.Properties) == 0 {
		fmt.Fprintf(w, "  %s\n", SubtitleStyle.Render("(none configured)"))
	} else {
		keys := make([]string, 0, len(cfg.Properties))
		for k := range cfg.Properties {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(w, "  %s = %s\n", k, valueStyle.Render(cfg.Properties[k]))
		}
	}

	fmt.Fprintf(w, "\n%s:\n", keyStyle.Render("watch"))
	fmt.Fprintf(w, "  patterns: %s\n", valueStyle.Render(strings.Join(cfg.Watch.Patterns, ", ")))
	fmt.Fprintf(w, "  debounce: %s\n", value(string(cfg.Watch.Debounce)))

	fmt.Fprintf(w, "\n%s:\n", keyStyle.Render("ui"))
	fmt.Fprintf(w, "  color_scheme: %s\n", valueStyle.Render(string(cfg.UI.ColorScheme)))
	fmt.Fprintf(w, "  verbose: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))
}
