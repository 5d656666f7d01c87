package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/arceos-hypervisor/axtask/internal"
	"github.com/arceos-hypervisor/axtask/internal/cli"
	"github.com/arceos-hypervisor/axtask/internal/executor"
)

// Exit code reported when the user interrupts an operation.
const exitInterrupted = 130

// The entry point for the axtask tool.
//
// Initializes logging, executes the root command, and maps the result onto
// the process exit code: 0 on success, the build tool's own exit code when
// it failed, 130 on interruption, and 1 for anything else.
func main() {
	slog.SetDefault(logger())

	slog.Debug("build", "version", internal.VersionString())

	slog.Debug("axtask is running",
		"pid", os.Getpid(),
		"cwd", cwd(),
		"args", os.Args,
	)

	if err := cli.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(exitCode(err))
	}
}

// Creates the default logger seeded from build-time linker flags.
//
// The level var is shared with the cli package, which adjusts it after flag
// parsing.
func logger() *slog.Logger {
	internal.LogLevel.Set(logLevel())

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: &internal.LogLevel,
	})
	return slog.New(handler.WithGroup(internal.Name))
}

// Returns the log level derived from build-time linker flags.
func logLevel() slog.Level {
	if internal.IsDebug() {
		return slog.LevelDebug
	}
	if internal.IsQuiet() {
		return slog.LevelWarn
	}
	return slog.LevelInfo
}

// Maps a command error onto a process exit code.
func exitCode(err error) int {
	var process *executor.ProcessError
	if errors.As(err, &process) {
		return process.Code
	}
	if errors.Is(err, context.Canceled) {
		return exitInterrupted
	}
	return 1
}

// Returns the current working directory or "(unknown)".
func cwd() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "(unknown)"
	}
	return cwd
}
