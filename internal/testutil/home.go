// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"path/filepath"
	"runtime"
	"testing"
)

// SetHomeDir sets the platform's home directory variable (USERPROFILE on
// Windows, HOME elsewhere) and returns a cleanup function restoring it.
func SetHomeDir(t testing.TB, dir string) func() {
	t.Helper()

	switch runtime.GOOS {
	case "windows":
		return MustSetenv(t, "USERPROFILE", dir)
	default:
		return MustSetenv(t, "HOME", dir)
	}
}

// IsolateUserDirs points the home and per-user config locations at a fresh
// temporary directory so config lookups never see the developer's files.
// Restoration is registered with t.Cleanup. It returns the temporary home.
//
// Tests calling this must not run in parallel: it mutates process environment.
func IsolateUserDirs(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Cleanup(SetHomeDir(t, home))
	t.Cleanup(MustSetenv(t, "XDG_CONFIG_HOME", filepath.Join(home, ".config")))
	t.Cleanup(MustSetenv(t, "APPDATA", filepath.Join(home, "AppData", "Roaming")))
	return home
}
