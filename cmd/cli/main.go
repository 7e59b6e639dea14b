package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/vk/spvbuildgo/internal/app"
	"github.com/vk/spvbuildgo/internal/cli"
	"github.com/vk/spvbuildgo/internal/hclconf"
)

// main is the entrypoint for the spvbuild tool.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. Individual shader failures are reported by the driver and do not
// surface here; only startup problems and fatal invocation errors do.
func run(outW io.Writer, args []string) (retErr error) {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// The app panics on critical config errors, so we recover here to provide
	// a clean exit message to the user.
	defer func() {
		if r := recover(); r != nil {
			retErr = fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	// Ctrl-C cancels the context, which ends watch mode cleanly and kills
	// any in-flight compiler invocation.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	loader := hclconf.NewLoader()
	buildApp := app.NewApp(outW, appConfig, loader, nil)

	return buildApp.Run(ctx, appConfig)
}
