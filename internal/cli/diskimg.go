package cli

import (
	"context"
	"log/slog"

	"github.com/arceos-hypervisor/axtask/internal/config"
	"github.com/arceos-hypervisor/axtask/internal/deps"
	"github.com/arceos-hypervisor/axtask/internal/executor"
)

// Represents the 'axtask disk_img' command.
type DiskImgCmd struct {
	Image string `default:"disk.img" help:"Disk image path." placeholder:"PATH"`
}

// Executes the disk_img command.
func (c *DiskImgCmd) Run(ctx context.Context) error {
	if err := deps.Ensure(ctx, runner, projectRoot); err != nil {
		return err
	}

	image := config.AbsPath(projectRoot, c.Image)
	argv := config.RenderBase("disk_img", "DISK_IMG="+image)

	if err := runner.Run(ctx, executor.Command{Args: argv, Dir: projectRoot}); err != nil {
		return err
	}

	slog.Info("disk image created", "path", image)
	return nil
}
