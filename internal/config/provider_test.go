// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmhrun/jmhrun/internal/testutil"
)

func TestProvider_Load(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(dir, "config.cue"), []byte(`watch: debounce: "1s"`), 0o644)

	cfg, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir, WorkDir: t.TempDir()})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Watch.Debounce != "1s" {
		t.Errorf("Watch.Debounce = %q", cfg.Watch.Debounce)
	}
}

func TestLocate(t *testing.T) {
	t.Parallel()

	dir, work := t.TempDir(), t.TempDir()
	if got, err := Locate(LoadOptions{ConfigDirPath: dir, WorkDir: work}); err != nil || got != "" {
		t.Errorf("Locate() with no files = %q, %v", got, err)
	}

	local := filepath.Join(work, LocalConfigFile)
	testutil.MustWriteFile(t, local, []byte(`ui: verbose: false`), 0o644)
	if got, _ := Locate(LoadOptions{ConfigDirPath: dir, WorkDir: work}); got != local {
		t.Errorf("Locate() = %q, want %q", got, local)
	}
}
