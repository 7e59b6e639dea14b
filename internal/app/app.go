package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vk/spvbuildgo/internal/config"
	"github.com/vk/spvbuildgo/internal/ctxlog"
	"github.com/vk/spvbuildgo/internal/invoke"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	settings *config.Settings
	runner   invoke.Runner
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger. A nil runner
// selects the real os/exec implementation; tests inject a fake instead.
func NewApp(outW io.Writer, cfg *Config, loader config.Loader, runner invoke.Runner) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW).With("run_id", uuid.NewString())
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	settings, err := loader.Load(ctx, cfg.Dir)
	if err != nil {
		// A failure to load the manifest is a fatal startup error.
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}
	applyOverrides(settings, cfg)
	logger.Debug("Build settings resolved.",
		"compiler", settings.Compiler,
		"out_dir", settings.OutDir,
		"extensions", settings.Extensions,
	)

	if runner == nil {
		runner = &invoke.ExecRunner{Dir: cfg.Dir}
	}

	return &App{
		outW:     outW,
		logger:   logger,
		settings: settings,
		runner:   runner,
	}
}

// Settings returns the resolved build settings. This is primarily for testing.
func (a *App) Settings() *config.Settings {
	return a.settings
}

// applyOverrides layers non-empty flag values over the manifest-resolved
// settings. Flags always win.
func applyOverrides(settings *config.Settings, cfg *Config) {
	if cfg.Compiler != "" {
		settings.Compiler = cfg.Compiler
	}
	if cfg.OutDir != "" {
		settings.OutDir = cfg.OutDir
	}
	if cfg.Marker != "" {
		settings.Marker = cfg.Marker
	}
}
