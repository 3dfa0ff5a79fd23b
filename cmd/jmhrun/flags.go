// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmhrun/jmhrun/internal/jmh"
)

// flagColumn is the width of the flag name column, wide enough for -jvmArgsPrepend.
const flagColumn = 17

func newFlagsCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "flags",
		Short: "List the harness flags accepted as properties",
		Long: `List the harness flags accepted as properties.

Reserved flags are not passed through verbatim: -o is resolved against the
build directory, -h replaces every other argument, and the -jvmArgs family
becomes launch arguments of the child JVM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := app.stdout
			fmt.Fprintln(w, TitleStyle.Render("Harness flags"))
			fmt.Fprintln(w)
			for _, f := range jmh.HarnessFlags() {
				name := CmdStyle.Render(f.Name) + strings.Repeat(" ", max(1, flagColumn-len(f.Name)))
				desc := f.Description
				if jmh.IsReserved(f.Name) {
					desc += " " + SubtitleStyle.Render("(reserved)")
				}
				fmt.Fprintf(w, "  %s%s\n", name, desc)
			}
			return nil
		},
	}
}
