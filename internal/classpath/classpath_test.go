// SPDX-License-Identifier: MPL-2.0

package classpath

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/jmhrun/jmhrun/internal/testutil"
)

func touch(t *testing.T, path string) {
	t.Helper()
	testutil.MustMkdirAll(t, filepath.Dir(path), 0o755)
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
}

func TestResolve_PlainEntries(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	cp, err := Resolve(base, []string{"build/classes/java/benchmark", "", "  ", "missing/dir"})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	want := Classpath{
		filepath.Join(base, "build", "classes", "java", "benchmark"),
		filepath.Join(base, "missing", "dir"),
	}
	if !slices.Equal(cp, want) {
		t.Errorf("Resolve() = %v, want %v", cp, want)
	}
}

func TestResolve_AbsoluteEntryKept(t *testing.T) {
	t.Parallel()

	abs := filepath.Join(t.TempDir(), "deps", "jmh-core.jar")
	cp, err := Resolve(t.TempDir(), []string{abs})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if !slices.Equal(cp, Classpath{abs}) {
		t.Errorf("Resolve() = %v, want [%s]", cp, abs)
	}
}

func TestResolve_GlobExpansion(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	touch(t, filepath.Join(base, "build", "libs", "b.jar"))
	touch(t, filepath.Join(base, "build", "libs", "a.jar"))
	touch(t, filepath.Join(base, "build", "libs", "nested", "c.jar"))
	touch(t, filepath.Join(base, "build", "libs", "notes.txt"))

	cp, err := Resolve(base, []string{"build/libs/**/*.jar", "build/none/*.jar"})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	want := Classpath{
		filepath.Join(base, "build", "libs", "a.jar"),
		filepath.Join(base, "build", "libs", "b.jar"),
		filepath.Join(base, "build", "libs", "nested", "c.jar"),
	}
	if !slices.Equal(cp, want) {
		t.Errorf("Resolve() = %v, want %v", cp, want)
	}
}

func TestResolve_Deduplicates(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	touch(t, filepath.Join(base, "lib", "x.jar"))

	cp, err := Resolve(base, []string{"lib/x.jar", "lib/*.jar", "./lib/x.jar"})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if want := (Classpath{filepath.Join(base, "lib", "x.jar")}); !slices.Equal(cp, want) {
		t.Errorf("Resolve() = %v, want %v", cp, want)
	}
}

func TestResolve_InvalidPattern(t *testing.T) {
	t.Parallel()

	_, err := Resolve(t.TempDir(), []string{"lib/[*.jar"})
	if !errors.Is(err, ErrInvalidPattern) {
		t.Errorf("Resolve() error = %v, want ErrInvalidPattern", err)
	}
}

func TestClasspathString(t *testing.T) {
	t.Parallel()

	cp := Classpath{"a", "b", "c"}
	want := strings.Join([]string{"a", "b", "c"}, string(os.PathListSeparator))
	if got := cp.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got := (Classpath{}).String(); got != "" {
		t.Errorf("empty String() = %q, want empty", got)
	}
	if !(Classpath{}).IsEmpty() || cp.IsEmpty() {
		t.Error("IsEmpty() mismatch")
	}
}

func TestClasspathDirs(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	classes := filepath.Join(base, "classes")
	testutil.MustMkdirAll(t, classes, 0o755)
	jar := filepath.Join(base, "x.jar")
	touch(t, jar)

	cp := Classpath{classes, jar, filepath.Join(base, "missing")}
	if got := cp.Dirs(); !slices.Equal(got, []string{classes}) {
		t.Errorf("Dirs() = %v, want [%s]", got, classes)
	}
}
