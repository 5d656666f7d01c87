package cli

import (
	"context"
	"log/slog"

	"github.com/arceos-hypervisor/axtask/internal/config"
	"github.com/arceos-hypervisor/axtask/internal/executor"
)

// Represents the 'axtask run' command.
type RunCmd struct {
	BuildCmd
}

// Executes the run command.
//
// Builds first with the same configuration; a build failure aborts before
// anything is launched.
func (c *RunCmd) Run(ctx context.Context) error {
	model, err := build(ctx, c.overrides())
	if err != nil {
		return err
	}

	argv, env := config.Render(model, "run")
	slog.Info("running", "platform", model.Platform, "command", executor.Command{Args: argv}.String())

	if err := runner.Run(ctx, executor.Command{Args: argv, Env: env, Dir: projectRoot}); err != nil {
		return err
	}

	slog.Info("run completed")
	return nil
}
