// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// ActionableError carries the failed operation, the resource involved and
// remediation hints. The Issue catalog holds longer Markdown guidance for the
// failures operators hit most often (no java launcher, empty classpath, broken
// config or property files), rendered for the terminal with glamour.
package issue
