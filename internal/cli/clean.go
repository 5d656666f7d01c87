package cli

import (
	"context"
	"log/slog"

	"github.com/arceos-hypervisor/axtask/internal/config"
	"github.com/arceos-hypervisor/axtask/internal/deps"
	"github.com/arceos-hypervisor/axtask/internal/executor"
)

// Represents the 'axtask clean' command.
type CleanCmd struct{}

// Executes the clean command.
func (c *CleanCmd) Run(ctx context.Context) error {
	if err := deps.Ensure(ctx, runner, projectRoot); err != nil {
		return err
	}

	argv := config.RenderBase("clean")
	if err := runner.Run(ctx, executor.Command{Args: argv, Dir: projectRoot}); err != nil {
		return err
	}

	slog.Info("clean succeeded")
	return nil
}
