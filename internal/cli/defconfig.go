package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/arceos-hypervisor/axtask/internal/paths"
)

// Represents the 'axtask defconfig' command.
type DefconfigCmd struct {
	Board string `arg:"" help:"Board configuration name (e.g. qemu-aarch64)."`
}

// Executes the defconfig command.
//
// Copies the named board preset over the project build config. An existing
// config is backed up next to itself with a UTC timestamp suffix first, so
// switching boards never loses a hand-tuned configuration.
func (c *DefconfigCmd) Run(ctx context.Context) error {
	source := filepath.Join(projectRoot, "configs", "board", c.Board+".toml")
	if _, err := os.Stat(source); err != nil {
		return fmt.Errorf("board configuration %q not found at %s", c.Board, source)
	}

	target := configPath()
	if _, err := os.Stat(target); err == nil {
		backup := fmt.Sprintf("%s.backup_%s", target, time.Now().UTC().Format("20060102_150405"))
		if err := copyFile(target, backup); err != nil {
			return fmt.Errorf("backup existing config: %w", err)
		}
		slog.Info("backed up existing config", "path", backup)
	}

	if err := copyFile(source, target); err != nil {
		return fmt.Errorf("apply board configuration: %w", err)
	}

	slog.Info("board configuration applied", "board", c.Board, "config", target)
	return nil
}

// Copies src to dst with the default file mode.
func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, paths.DefaultFileMode)
}
