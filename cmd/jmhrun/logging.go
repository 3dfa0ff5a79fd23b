// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
)

// newLogger creates the CLI logger. It writes to w, which is normally stderr
// so harness output on stdout stays clean.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: "jmhrun",
		Level:  log.InfoLevel,
	})
	setVerbose(logger, verbose)
	return logger
}

// installLogger routes log/slog through logger so library packages log
// with the CLI's formatting and level.
func installLogger(logger *log.Logger) {
	slog.SetDefault(slog.New(logger))
}

func setVerbose(logger *log.Logger, verbose bool) {
	if verbose {
		logger.SetLevel(log.DebugLevel)
		logger.SetReportTimestamp(true)
	}
}
