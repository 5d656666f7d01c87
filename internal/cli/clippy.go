package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/arceos-hypervisor/axtask/internal/deps"
	"github.com/arceos-hypervisor/axtask/internal/manifest"
	"github.com/arceos-hypervisor/axtask/internal/matrix"
)

// Represents the 'axtask clippy' command.
type ClippyCmd struct {
	Arch string `help:"Only check platform features for this architecture." placeholder:"ARCH"`
}

// Executes the clippy command.
//
// Resolves the lint matrix from the manifest's feature declarations and
// checks every cell, fail-soft: all cells run regardless of earlier
// failures, and the aggregate outcome is reported at the end.
func (c *ClippyCmd) Run(ctx context.Context) error {
	if err := deps.Ensure(ctx, runner, projectRoot); err != nil {
		return err
	}

	man, err := manifest.Load(projectRoot)
	if err != nil {
		return err
	}

	cells := matrix.Resolve(man.Features)
	cells = matrix.FilterArch(cells, c.Arch)
	if len(cells) == 0 {
		slog.Warn("no platform features match the requested architecture", "arch", c.Arch)
		return nil
	}

	r := &matrix.Runner{Exec: runner, Dir: projectRoot}
	results := r.Run(ctx, cells)

	failed := 0
	for _, res := range results {
		if !res.Passed() {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("clippy failed for %d of %d feature combinations", failed, len(results))
	}

	slog.Info("clippy passed", "combinations", len(results))
	return nil
}
