// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package watch observes the content roots for filesystem changes. Every
// page render re-scans the content tree, so the only state that can go
// stale is the full-page HTML cache; the watcher's single job is to fire a
// callback (wired to cache invalidation) once a burst of file events
// settles.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits after the last event before
// firing the change callback. Editors and git checkouts touch many files in
// quick succession; one invalidation at the end covers them all.
const DefaultDebounce = 500 * time.Millisecond

// Watcher wraps fsnotify with recursive directory registration and
// debounced change notification.
type Watcher struct {
	fsw      *fsnotify.Watcher
	debounce time.Duration
	onChange func()
}

// New creates a Watcher that calls onChange after file events settle.
// A zero debounce uses DefaultDebounce.
func New(debounce time.Duration, onChange func()) (*Watcher, error) {
	if debounce == 0 {
		debounce = DefaultDebounce
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	return &Watcher{fsw: fsw, debounce: debounce, onChange: onChange}, nil
}

// AddRoot registers root and every directory below it. Hidden directories
// are skipped. Returns an error when the root itself cannot be watched.
func (w *Watcher) AddRoot(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return fmt.Errorf("watch root %s: %w", root, err)
			}
			slog.Warn("skipping unreadable directory", "path", path, "error", err)
			return fs.SkipDir
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return fs.SkipDir
		}
		if err := w.fsw.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}

// Run blocks processing events until ctx is cancelled, then releases the
// underlying watcher. Directories created while running are added to the
// watch set, so a freshly checked-out content tree stays covered.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()

	timer := time.NewTimer(w.debounce)
	defer timer.Stop()
	pending := false

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !relevant(ev) {
				continue
			}
			if ev.Op.Has(fsnotify.Create) {
				if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
					if err := w.AddRoot(ev.Name); err != nil {
						slog.Warn("could not watch new directory", "path", ev.Name, "error", err)
					}
				}
			}
			timer.Reset(w.debounce)
			pending = true

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watcher error", "error", err)

		case <-timer.C:
			if pending {
				pending = false
				slog.Info("content change detected")
				w.onChange()
			}
		}
	}
}

// relevant filters out chmod noise and editor scratch files.
func relevant(ev fsnotify.Event) bool {
	if ev.Op == fsnotify.Chmod {
		return false
	}
	base := filepath.Base(ev.Name)
	if strings.HasPrefix(base, ".") || strings.HasSuffix(base, "~") {
		return false
	}
	return true
}
