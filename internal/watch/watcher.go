// SPDX-License-Identifier: MPL-2.0

package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// defaultDebounce lets a compiler finish writing a batch of class files
// before the benchmarks re-run.
const defaultDebounce = 500 * time.Millisecond

var (
	// ErrInvalidPattern is returned for malformed watch or ignore globs.
	ErrInvalidPattern = errors.New("invalid watch pattern")
	// ErrNoRoots is returned when none of the configured roots exists.
	ErrNoRoots = errors.New("no watchable directories")
	// ErrAlreadyStarted is returned by a second call to Run.
	ErrAlreadyStarted = errors.New("watcher already started")
)

type (
	// Config holds the parameters for a Watcher.
	Config struct {
		// Roots are the directories watched recursively. Missing roots are
		// skipped. Empty means the current working directory.
		Roots []string
		// Patterns select the root-relative paths that trigger a re-run.
		// Empty means DefaultPatterns.
		Patterns []string
		// Ignore adds to the built-in ignore patterns.
		Ignore []string
		// Debounce is the quiet period before OnChange fires. Zero or
		// negative values mean 500ms.
		Debounce time.Duration
		// OnChange receives the sorted absolute paths that changed. Its error
		// is logged and does not stop the watcher.
		OnChange func(ctx context.Context, changed []string) error
	}

	// Watcher fires OnChange when matching files under its roots change.
	Watcher struct {
		cfg      Config
		fsw      *fsnotify.Watcher
		match    *matcher
		roots    []string
		debounce time.Duration
		started  atomic.Bool
	}
)

// New creates a Watcher and registers every non-ignored directory under the
// existing roots.
func New(cfg Config) (*Watcher, error) {
	m, err := newMatcher(cfg.Patterns, cfg.Ignore)
	if err != nil {
		return nil, err
	}

	roots, err := existingRoots(cfg.Roots)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}

	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	w := &Watcher{cfg: cfg, fsw: fsw, match: m, roots: roots, debounce: debounce}
	for _, root := range roots {
		if err := w.addTree(root); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}
	return w, nil
}

// Roots returns the absolute directories being watched.
func (w *Watcher) Roots() []string {
	return append([]string(nil), w.roots...)
}

// Run processes events until ctx is cancelled. It returns nil on
// cancellation and an error when fsnotify fails fatally. Run may only be
// called once.
func (w *Watcher) Run(ctx context.Context) error {
	if !w.started.CompareAndSwap(false, true) {
		return ErrAlreadyStarted
	}

	d := newDebouncer(w.debounce, func(changed []string) {
		if ctx.Err() != nil || w.cfg.OnChange == nil {
			return
		}
		slog.Debug("benchmark output changed", "files", len(changed))
		if err := w.cfg.OnChange(ctx, changed); err != nil {
			slog.Error("re-run failed", "error", err)
		}
	})
	defer func() {
		d.stop()
		if err := w.fsw.Close(); err != nil {
			slog.Warn("close fsnotify watcher", "error", err)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case evt, ok := <-w.fsw.Events:
			if !ok {
				return errors.New("fsnotify event channel closed unexpectedly")
			}
			w.handle(evt, d)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return errors.New("fsnotify error channel closed unexpectedly")
			}
			if isFatalFsnotifyError(err) {
				return fmt.Errorf("fatal fsnotify error: %w", err)
			}
			slog.Warn("fsnotify error", "error", err)
		}
	}
}

func (w *Watcher) handle(evt fsnotify.Event, d *debouncer) {
	if evt.Has(fsnotify.Chmod) && !evt.Has(fsnotify.Write) {
		return
	}
	rel := w.relative(evt.Name)

	if evt.Has(fsnotify.Create) {
		if info, err := os.Stat(evt.Name); err == nil && info.IsDir() {
			if !w.match.ignored(rel) {
				// New package directories appear while the compiler runs.
				if err := w.addTree(evt.Name); err != nil {
					slog.Warn("watch new directory", "path", evt.Name, "error", err)
				}
			}
			return
		}
	}

	if w.match.accepts(rel) {
		d.add(evt.Name)
	}
}

// relative returns path relative to the root containing it.
func (w *Watcher) relative(path string) string {
	best := ""
	for _, root := range w.roots {
		if (path == root || strings.HasPrefix(path, root+string(filepath.Separator))) && len(root) > len(best) {
			best = root
		}
	}
	if best == "" {
		return path
	}
	rel, err := filepath.Rel(best, path)
	if err != nil {
		return path
	}
	return rel
}

func (w *Watcher) addTree(dir string) error {
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			slog.Warn("skipping inaccessible path", "path", path, "error", walkErr)
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if rel := w.relative(path); rel != "." && (w.match.ignored(rel) || w.match.ignored(rel+"/")) {
			return filepath.SkipDir
		}
		if err := w.fsw.Add(path); err != nil {
			return fmt.Errorf("watch directory %q: %w", path, err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk %s: %w", dir, err)
	}
	return nil
}

func existingRoots(roots []string) ([]string, error) {
	if len(roots) == 0 {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("determine working directory: %w", err)
		}
		roots = []string{wd}
	}

	var out []string
	for _, r := range roots {
		abs, err := filepath.Abs(r)
		if err != nil {
			return nil, fmt.Errorf("resolve watch root %q: %w", r, err)
		}
		info, err := os.Stat(abs)
		if err != nil || !info.IsDir() {
			slog.Warn("watch root is not a directory, skipping", "path", abs)
			continue
		}
		out = append(out, abs)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoRoots, strings.Join(roots, ", "))
	}
	return out, nil
}
