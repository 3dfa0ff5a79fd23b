// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/jmhrun/jmhrun/cmd/jmhrun"

func main() {
	cmd.Execute()
}
