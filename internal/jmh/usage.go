// SPDX-License-Identifier: MPL-2.0

package jmh

import (
	"fmt"
	"io"
	"path/filepath"
)

// BenchmarkSourceDir is where benchmark sources are expected, relative to the project root.
var BenchmarkSourceDir = filepath.Join("src", "benchmark", "java")

// Usage returns the operator-facing text printed on help requests.
func Usage(defaultOutput string) string {
	return fmt.Sprintf(`All benchmarks must be compilable, valid JMH benchmarks.
Place benchmarks in %s/<your own package structure>.
Pass harness arguments with the property syntax: -P<flag>=<value> (for example -P-wi=3 -P-i=5).
By default, harness output is written to %s.
`, filepath.ToSlash(BenchmarkSourceDir), defaultOutput)
}

func writeUsage(w io.Writer, defaultOutput string) {
	_, _ = io.WriteString(w, Usage(defaultOutput))
}
