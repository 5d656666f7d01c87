package cli

import (
	"context"

	"github.com/arceos-hypervisor/axtask/internal/deps"
)

// Represents the 'axtask setup' command.
type SetupCmd struct{}

// Executes the setup command.
func (c *SetupCmd) Run(ctx context.Context) error {
	return deps.Ensure(ctx, runner, projectRoot)
}
