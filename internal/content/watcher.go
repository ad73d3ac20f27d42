package content

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"art-portfolio/internal/ratelimit"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the catalog when its file changes, until ctx is done.
// Editors often save through a rename, so the parent directory is watched
// and events are filtered by name. Bursts of events collapse into a single
// reload after wait of quiet.
func (c *Catalog) Watch(ctx context.Context, wait time.Duration, sched ratelimit.Scheduler) error {
	if c.path == "" {
		return fmt.Errorf("catalog has no backing file")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	target := filepath.Clean(c.path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}

	reload := ratelimit.NewDebouncer(func(string) { _ = c.Reload() }, wait, sched)
	defer reload.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				c.log.Debug("content file changed: " + ev.Op.String())
				reload.Call(ev.Name)
			}

		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			c.log.Error(werr, "content watcher error")
		}
	}
}
