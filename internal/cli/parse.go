// Package cli parses command-line arguments into an app.Config.
package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/spvbuildgo/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("spvbuild", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
spvbuild - compiles every shader source in a directory to SPIR-V, producing
a debug and an optimized artifact per source.

Usage:
  spvbuild [options] [DIR]

Arguments:
  DIR
    Directory to scan for shader sources. Defaults to the current directory.

Options:
`)
		flagSet.PrintDefaults()
	}

	dirFlag := flagSet.String("dir", "", "Directory to scan for shader sources.")
	compilerFlag := flagSet.String("compiler", "", "Shader compiler executable. Overrides the manifest.")
	outFlag := flagSet.String("out", "", "Output subdirectory for compiled artifacts. Overrides the manifest.")
	markerFlag := flagSet.String("marker", "", "Substring the working directory path must contain. Overrides the manifest.")
	watchFlag := flagSet.Bool("watch", false, "After the initial build, rebuild sources as they change.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	dir := *dirFlag
	if dir == "" && flagSet.NArg() > 0 {
		dir = flagSet.Arg(0)
	}
	slog.Debug("Scan directory determined.", "dir", dir)

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		Dir:       dir,
		Compiler:  *compilerFlag,
		OutDir:    *outFlag,
		Marker:    *markerFlag,
		Watch:     *watchFlag,
		LogFormat: logFormat,
		LogLevel:  logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, false, nil
}
