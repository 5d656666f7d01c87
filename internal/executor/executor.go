package executor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// Describes one external tool invocation.
type Command struct {
	Args []string          // Argument vector; Args[0] is the executable.
	Env  map[string]string // Variables overlaid on the parent environment.
	Dir  string            // Working directory; empty inherits the caller's.
}

// Returns the command line as a single display string.
func (c Command) String() string {
	return strings.Join(c.Args, " ")
}

// Executes external commands and reports their exit status.
//
// Run returns nil when the process exits zero, a [ProcessError] when it exits
// non-zero, and a wrapped [ErrSpawn] when the process could not be started at
// all.
type Runner interface {
	Run(ctx context.Context, cmd Command) error
}

// The default [Runner], backed by os/exec.
//
// Processes inherit the parent's standard streams so build tool output
// reaches the user unaltered.
type Exec struct {
	Stdout io.Writer // Defaults to os.Stdout.
	Stderr io.Writer // Defaults to os.Stderr.
}

// Creates a new [Exec] writing to the process standard streams.
func New() *Exec {
	return &Exec{Stdout: os.Stdout, Stderr: os.Stderr}
}

// Runs the command and blocks until it exits.
func (e *Exec) Run(ctx context.Context, cmd Command) error {
	if len(cmd.Args) == 0 {
		return fmt.Errorf("%w: empty command", ErrSpawn)
	}

	slog.Debug("exec", "command", cmd.String(), "dir", cmd.Dir)

	c := exec.CommandContext(ctx, cmd.Args[0], cmd.Args[1:]...)
	c.Dir = cmd.Dir
	c.Env = overlayEnviron(os.Environ(), cmd.Env)
	c.Stdin = os.Stdin
	c.Stdout = e.Stdout
	c.Stderr = e.Stderr

	err := c.Run()
	if err == nil {
		return nil
	}

	// A cancelled context means the user interrupted the run; surface that
	// instead of the kill-induced exit status.
	if ctx.Err() != nil {
		return fmt.Errorf("%s interrupted: %w", cmd.Args[0], ctx.Err())
	}

	var exit *exec.ExitError
	if errors.As(err, &exit) {
		return &ProcessError{Command: cmd.Args[0], Code: exit.ExitCode()}
	}

	return fmt.Errorf("%w: %s: %v", ErrSpawn, cmd.Args[0], err)
}

// Overlays override variables on top of a base "key=value" environment.
//
// Later values win. Entries without an equals sign are dropped. The result
// order is unspecified.
func overlayEnviron(base []string, overrides map[string]string) []string {
	merged := make(map[string]string, len(base)+len(overrides))
	for _, entry := range base {
		if k, v, ok := strings.Cut(entry, "="); ok {
			merged[k] = v
		}
	}
	for k, v := range overrides {
		merged[k] = v
	}

	result := make([]string, 0, len(merged))
	for k, v := range merged {
		result = append(result, k+"="+v)
	}
	return result
}
