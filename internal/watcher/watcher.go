// Package watcher implements the optional watch mode: after the initial full
// build, changed shader sources are recompiled one at a time as they are
// written.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/vk/spvbuildgo/internal/config"
	"github.com/vk/spvbuildgo/internal/ctxlog"
	"github.com/vk/spvbuildgo/internal/fsutil"
)

// Watch observes dir for writes to shader sources and invokes build for each
// changed file. Events are handled strictly sequentially; a rebuild blocks
// the loop just like the initial build does. Watch returns nil once ctx is
// cancelled.
func Watch(ctx context.Context, dir string, settings *config.Settings, build func(context.Context, string) error) error {
	logger := ctxlog.FromContext(ctx)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	logger.Info("👀 Watching for shader changes.", "dir", dir)

	for {
		select {
		case <-ctx.Done():
			logger.Info("Watch mode stopped.")
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			name := filepath.Base(event.Name)
			if !fsutil.HasMatchingExtension(name, settings.Extensions) {
				continue
			}
			logger.Debug("Source changed, rebuilding.", "shader", name)
			if err := build(ctx, name); err != nil {
				return err
			}
		case werr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("File watcher reported an error.", "error", werr)
		}
	}
}
