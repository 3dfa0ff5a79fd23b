// SPDX-License-Identifier: MPL-2.0

// Package classpath assembles the child JVM classpath from the compiled
// benchmark output and its runtime dependencies.
package classpath

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrInvalidPattern is returned when a classpath entry is a malformed glob.
var ErrInvalidPattern = errors.New("invalid classpath pattern")

// DefaultEntries are the compiled benchmark classes, their resources and the
// packaged runtime dependencies of a conventional Gradle layout.
var DefaultEntries = []string{
	"build/classes/java/benchmark",
	"build/resources/benchmark",
	"build/libs/**/*.jar",
}

// Classpath is an ordered list of filesystem entries for the JVM -cp option.
type Classpath []string

// Resolve expands entries relative to baseDir. Plain paths are kept as given
// (the JVM tolerates missing entries); glob entries expand in lexical order
// and are dropped when nothing matches. Duplicates keep their first position.
func Resolve(baseDir string, entries []string) (Classpath, error) {
	var (
		cp   Classpath
		seen = make(map[string]struct{})
	)
	add := func(p string) {
		p = filepath.Clean(p)
		if _, dup := seen[p]; dup {
			return
		}
		seen[p] = struct{}{}
		cp = append(cp, p)
	}

	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		path := entry
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}

		if !isGlob(entry) {
			add(path)
			continue
		}

		pattern := filepath.ToSlash(path)
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPattern, entry)
		}
		matches, err := doublestar.FilepathGlob(path)
		if err != nil {
			return nil, fmt.Errorf("expand classpath entry %q: %w", entry, err)
		}
		if len(matches) == 0 {
			slog.Debug("classpath pattern matched nothing", "pattern", entry)
			continue
		}
		slices.Sort(matches)
		for _, m := range matches {
			add(m)
		}
	}
	return cp, nil
}

// String joins the entries with the platform list separator.
func (c Classpath) String() string {
	return strings.Join(c, string(os.PathListSeparator))
}

// Dirs returns the entries that currently exist as directories.
func (c Classpath) Dirs() []string {
	var dirs []string
	for _, e := range c {
		if info, err := os.Stat(e); err == nil && info.IsDir() {
			dirs = append(dirs, e)
		}
	}
	return dirs
}

// IsEmpty reports whether the classpath has no entries.
func (c Classpath) IsEmpty() bool {
	return len(c) == 0
}

func isGlob(entry string) bool {
	return strings.ContainsAny(entry, "*?[{")
}
