// Package watcher bridges file-system change events to hot-reload signals.
//
// The substrate itself is transport-agnostic: it only exposes the hotload
// Apply/Reload API. This package is the default collaborator that drives it
// from fsnotify events on the configuration path.
package watcher

import (
	"context"

	"github.com/fsnotify/fsnotify"
	"github.com/specialistvlad/botflow/internal/ctxlog"
)

// Watch observes path and invokes onChange for every relevant file event
// until ctx is cancelled. Watch blocks; run it in its own goroutine.
func Watch(ctx context.Context, path string, onChange func()) error {
	logger := ctxlog.FromContext(ctx)

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := fw.Add(path); err != nil {
		return err
	}
	logger.Debug("Config watcher started.", "path", path)

	for {
		select {
		case <-ctx.Done():
			logger.Debug("Config watcher stopped.")
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			logger.Debug("Config change detected.", "file", event.Name, "op", event.Op.String())
			onChange()
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Error("Config watcher error.", "error", err)
		}
	}
}
