// SPDX-License-Identifier: MPL-2.0

// Package watch re-runs benchmarks when the compiled benchmark output changes.
//
// A Watcher monitors one or more root directories (usually the classpath
// directories) recursively. Events whose root-relative path matches one of the
// doublestar patterns are collected, and once the debounce window closes the
// OnChange callback fires with the full set of changed paths. Callbacks never
// overlap: events arriving during a run are delivered after it finishes.
package watch
