// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the jmhrun CLI.
//
// The command tree is built around an App composition root. Handlers load
// configuration through App.Config, translate properties into a harness
// invocation with the jmh package and hand it to the runner created by
// App.NewRunner. Child exit codes travel back to main through ExitError.
package cmd
