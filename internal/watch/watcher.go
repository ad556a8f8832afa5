// SPDX-License-Identifier: MPL-2.0

// Package watch re-runs a callback when specific files change.
//
// Watches are placed on the parent directory of each file so that editors
// which save by writing a temporary file and renaming it are still seen.
// Events are debounced: a burst of writes results in one callback carrying
// every file that changed.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// defaultDebounce is the quiet period before the callback fires.
const defaultDebounce = 300 * time.Millisecond

// ErrAlreadyRunning is returned by a second call to Run.
var ErrAlreadyRunning = errors.New("watch: Run called more than once")

type (
	// Config holds the parameters for a Watcher.
	Config struct {
		// Files are the paths whose changes trigger the callback. They need
		// not exist yet, but their parent directories must.
		Files []string

		// Debounce is the quiet period after the last event before the
		// callback fires. Zero or negative values use defaultDebounce.
		Debounce time.Duration

		// OnChange receives the absolute paths that changed, sorted. A nil
		// callback is a no-op.
		OnChange func(ctx context.Context, changed []string) error

		// Stderr receives non-fatal watcher diagnostics; nil means os.Stderr.
		Stderr io.Writer
	}

	// Watcher monitors a fixed set of files. Run must be called exactly once.
	Watcher struct {
		cfg      Config
		fsw      *fsnotify.Watcher
		files    map[string]struct{}
		stderr   io.Writer
		debounce time.Duration
		started  atomic.Bool
		busy     atomic.Bool
	}
)

// New creates a Watcher and registers the parent directory of every file.
func New(cfg Config) (*Watcher, error) {
	if len(cfg.Files) == 0 {
		return nil, errors.New("watch: no files to watch")
	}

	files := make(map[string]struct{}, len(cfg.Files))
	dirs := make(map[string]struct{})
	for _, f := range cfg.Files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return nil, fmt.Errorf("watch: resolve %s: %w", f, err)
		}
		files[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: create fsnotify watcher: %w", err)
	}

	for _, dir := range slices.Sorted(maps.Keys(dirs)) {
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return nil, fmt.Errorf("watch: watch %s: %w", dir, err)
		}
	}

	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	stderr := cfg.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Watcher{
		cfg:      cfg,
		fsw:      fsw,
		files:    files,
		stderr:   stderr,
		debounce: debounce,
	}, nil
}

// Run blocks until ctx is cancelled, dispatching debounced callbacks. It
// returns nil on cancellation and an error if the watcher breaks. A
// callback in progress is waited for before Run returns.
func (w *Watcher) Run(ctx context.Context) error {
	if !w.started.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}

	b := &batch{paths: make(map[string]struct{})}
	fire := func() { w.dispatch(ctx, b) }
	defer func() {
		b.stop()
		b.inflight.Wait()
		if err := w.fsw.Close(); err != nil {
			fmt.Fprintf(w.stderr, "watch: close fsnotify: %v\n", err)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case evt, ok := <-w.fsw.Events:
			if !ok {
				return errors.New("watch: event stream closed")
			}
			if w.relevant(evt) {
				b.add(filepath.Clean(evt.Name), w.debounce, fire)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return errors.New("watch: error stream closed")
			}
			if isFatalFsnotifyError(err) {
				return fmt.Errorf("watch: fatal fsnotify error: %w", err)
			}
			fmt.Fprintf(w.stderr, "watch: fsnotify error: %v\n", err)
		}
	}
}

// dispatch runs on the timer goroutine. While a callback is in flight the
// batch is postponed by another debounce period rather than run alongside.
func (w *Watcher) dispatch(ctx context.Context, b *batch) {
	if !b.begin() {
		return
	}
	defer b.inflight.Done()

	if ctx.Err() != nil {
		return
	}
	if !w.busy.CompareAndSwap(false, true) {
		b.postpone(w.debounce)
		return
	}
	defer w.busy.Store(false)

	changed := b.take()
	if len(changed) == 0 || w.cfg.OnChange == nil {
		return
	}
	if err := w.cfg.OnChange(ctx, changed); err != nil {
		fmt.Fprintf(w.stderr, "watch: callback error: %v\n", err)
	}
}

// relevant reports whether evt touches a watched file. Chmod-only events
// are ignored.
func (w *Watcher) relevant(evt fsnotify.Event) bool {
	if evt.Op == fsnotify.Chmod {
		return false
	}
	_, ok := w.files[filepath.Clean(evt.Name)]
	return ok
}

// batch collects changed paths between debounce ticks.
type batch struct {
	mu       sync.Mutex
	paths    map[string]struct{}
	timer    *time.Timer
	stopped  bool
	inflight sync.WaitGroup
}

// begin registers a dispatch with inflight. It fails once the batch is
// stopped so that stop followed by inflight.Wait sees every dispatch.
func (b *batch) begin() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.stopped {
		return false
	}
	b.inflight.Add(1)
	return true
}

// add records path and restarts the quiet period.
func (b *batch) add(path string, delay time.Duration, fire func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.paths[path] = struct{}{}
	if b.timer == nil {
		b.timer = time.AfterFunc(delay, fire)
		return
	}
	b.timer.Reset(delay)
}

func (b *batch) postpone(delay time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.timer != nil {
		b.timer.Reset(delay)
	}
}

// take empties the batch and returns its paths sorted.
func (b *batch) take() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.paths) == 0 {
		return nil
	}
	out := slices.Sorted(maps.Keys(b.paths))
	clear(b.paths)
	return out
}

func (b *batch) stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stopped = true
	if b.timer != nil {
		b.timer.Stop()
	}
}
