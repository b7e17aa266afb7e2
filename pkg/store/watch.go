package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event is emitted by Watch when the persisted log changes.
type Event struct{}

// Watch streams change notifications until ctx is cancelled. Bursts of
// filesystem activity are coalesced so consumers redraw once per burst. The
// channel is closed when ctx is done or the watcher fails.
func (s *Store) Watch(ctx context.Context) (<-chan Event, error) {
	basePath := s.d.BasePath
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	if err := watcher.Add(basePath); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("store: watch %s: %w", basePath, err)
	}

	events := make(chan Event, 1)

	go func() {
		defer close(events)
		defer func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		}()

		send := func() {
			select {
			case events <- Event{}:
			default:
				// Consumer not ready; the pending event already signals a
				// refresh is due.
			}
		}

		var (
			mu    sync.Mutex
			timer *time.Timer
		)
		enqueue := func() {
			mu.Lock()
			if timer == nil {
				timer = time.AfterFunc(100*time.Millisecond, func() {
					mu.Lock()
					timer = nil
					mu.Unlock()
					send()
				})
			}
			mu.Unlock()
		}
		defer func() {
			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			mu.Unlock()
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				enqueue()
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				// Scratch files from atomic writes settle into place via
				// rename; only the final name matters.
				if filepath.Base(filepath.Dir(evt.Name)) == ".tmp" {
					continue
				}
				enqueue()
			}
		}
	}()

	return events, nil
}
