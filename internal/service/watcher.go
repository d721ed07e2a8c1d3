// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

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

// DefaultDebounce is how long the watcher waits for changes to settle.
const DefaultDebounce = 500 * time.Millisecond

// ContentWatcher re-runs the link check when the content directory changes.
type ContentWatcher struct {
	svc      *SiteService
	root     string
	debounce time.Duration
	watcher  *fsnotify.Watcher

	// OnRefresh, if set, is called after every refresh attempt.
	OnRefresh func(err error)
}

// NewContentWatcher creates a watcher over root and all its subdirectories.
func NewContentWatcher(svc *SiteService, root string, debounce time.Duration) (*ContentWatcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	w := &ContentWatcher{svc: svc, root: root, debounce: debounce, watcher: watcher}
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if isHidden(path, root) {
			return filepath.SkipDir
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
	if err != nil {
		_ = watcher.Close()
		return nil, err
	}
	return w, nil
}

// Run processes file events until ctx is cancelled. It closes the
// underlying watcher before returning.
func (w *ContentWatcher) Run(ctx context.Context) {
	defer func() { _ = w.watcher.Close() }()

	// Armed by the first event; Stop leaves no stale tick behind.
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Debug("content watcher stopped")
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() && !isHidden(event.Name, w.root) {
					if err := w.watcher.Add(event.Name); err != nil {
						slog.Warn("failed to watch new directory", "path", event.Name, "error", err)
					}
				}
			}
			slog.Debug("content changed", "path", event.Name, "op", event.Op.String())
			timer.Reset(w.debounce)

		case <-timer.C:
			_, err := w.svc.RefreshLinks(ctx)
			if err != nil {
				slog.Error("link refresh failed", "error", err)
			}
			if w.OnRefresh != nil {
				w.OnRefresh(err)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("content watcher error", "error", err)
		}
	}
}

// isHidden skips generator state such as .vitepress/cache and node_modules.
func isHidden(path, root string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return false
	}
	for _, part := range strings.Split(rel, string(filepath.Separator)) {
		if strings.HasPrefix(part, ".") || part == "node_modules" {
			return true
		}
	}
	return false
}
