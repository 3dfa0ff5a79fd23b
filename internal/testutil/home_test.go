// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func homeVar() string {
	if runtime.GOOS == "windows" {
		return "USERPROFILE"
	}
	return "HOME"
}

func TestSetHomeDir(t *testing.T) {
	tmpDir := t.TempDir()
	original, hadOriginal := os.LookupEnv(homeVar())

	cleanup := SetHomeDir(t, tmpDir)
	if got := os.Getenv(homeVar()); got != tmpDir {
		t.Errorf("%s = %q, want %q", homeVar(), got, tmpDir)
	}

	cleanup()
	got, has := os.LookupEnv(homeVar())
	if has != hadOriginal || got != original {
		t.Errorf("after cleanup %s = %q (set %v), want %q (set %v)", homeVar(), got, has, original, hadOriginal)
	}
}

func TestIsolateUserDirs(t *testing.T) {
	home := IsolateUserDirs(t)

	if got := os.Getenv(homeVar()); got != home {
		t.Errorf("%s = %q, want %q", homeVar(), got, home)
	}
	if got := os.Getenv("XDG_CONFIG_HOME"); got != filepath.Join(home, ".config") {
		t.Errorf("XDG_CONFIG_HOME = %q, want under %q", got, home)
	}
}

func TestFakeJavaArgs(t *testing.T) {
	t.Parallel()

	out := "arg:-cp\narg:a:b\nnoise\narg:\narg:org.openjdk.jmh.Main\n"
	got := FakeJavaArgs(out)
	want := []string{"-cp", "a:b", "", "org.openjdk.jmh.Main"}
	if len(got) != len(want) {
		t.Fatalf("FakeJavaArgs() = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("FakeJavaArgs()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
