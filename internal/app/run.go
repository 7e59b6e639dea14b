package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/vk/spvbuildgo/internal/ctxlog"
	"github.com/vk/spvbuildgo/internal/driver"
	"github.com/vk/spvbuildgo/internal/fsutil"
	"github.com/vk/spvbuildgo/internal/guard"
	"github.com/vk/spvbuildgo/internal/watcher"
)

// Run executes the build: guard check, source discovery, then one sequential
// compile pass. With Watch set it afterwards keeps rebuilding changed
// sources until ctx is cancelled.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	dir, err := filepath.Abs(cfg.Dir)
	if err != nil {
		return fmt.Errorf("failed to resolve scan directory: %w", err)
	}
	if err := guard.Check(dir, a.settings.Marker); err != nil {
		return err
	}
	a.logger.Debug("Working-directory guard passed.", "dir", dir)

	sources, err := fsutil.FindByExtensions(cfg.Dir, a.settings.Extensions)
	if err != nil {
		return fmt.Errorf("failed to list shader sources: %w", err)
	}
	if len(sources) == 0 {
		a.logger.Warn("No shader sources found, nothing to compile.", "dir", dir)
	}

	d := driver.New(a.settings, a.runner, a.outW)

	a.logger.Info("🚀 Starting shader build.", "sources", len(sources))
	if err := d.BuildAll(ctx, sources); err != nil {
		return fmt.Errorf("build failed: %w", err)
	}
	a.logger.Info("🏁 Build finished.")

	if cfg.Watch {
		return watcher.Watch(ctx, cfg.Dir, a.settings, d.BuildOne)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
