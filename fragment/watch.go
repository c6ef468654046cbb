package fragment

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// pollInterval is the fallback polling cadence when fsnotify is
// unavailable on the platform.
const pollInterval = 500 * time.Millisecond

// Watch watches the manifest file at path and delivers a signal on the
// returned channel whenever it is written or replaced. The channel is
// closed when ctx is cancelled.
//
// The Library itself stays immutable; on a signal the caller reloads the
// manifest and builds a fresh Library. Uses fsnotify with a polling
// fallback.
func Watch(ctx context.Context, path string) (<-chan struct{}, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("stat manifest: %w", err)
	}

	ch := make(chan struct{}, 1)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		go pollLoop(ctx, ch, path)
		return ch, nil
	}

	// Watch the directory rather than the file: editors replace files on
	// save, which drops a direct file watch.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		go pollLoop(ctx, ch, path)
		return ch, nil
	}

	go watchLoop(ctx, ch, watcher, path)
	return ch, nil
}

// watchLoop forwards write/create events for the manifest file.
func watchLoop(ctx context.Context, ch chan<- struct{}, watcher *fsnotify.Watcher, path string) {
	defer close(ch)
	defer watcher.Close()

	baseName := filepath.Base(path)
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != baseName {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			notify(ch)

		case _, ok := <-watcher.Errors:
			if !ok {
				return
			}
			// Watcher errors are usually transient; keep watching.
		}
	}
}

// pollLoop compares modification times on a ticker.
func pollLoop(ctx context.Context, ch chan<- struct{}, path string) {
	defer close(ch)

	var lastMod time.Time
	if info, err := os.Stat(path); err == nil {
		lastMod = info.ModTime()
	}

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			info, err := os.Stat(path)
			if err != nil {
				continue
			}
			if mod := info.ModTime(); mod.After(lastMod) {
				lastMod = mod
				notify(ch)
			}
		}
	}
}

// notify delivers a signal without blocking; a pending signal already
// tells the caller everything a second one would.
func notify(ch chan<- struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}
