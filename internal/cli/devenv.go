package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/arceos-hypervisor/axtask/internal/executor"
	"github.com/arceos-hypervisor/axtask/internal/paths"
)

// Crates patched into the local workspace for development.
var devCrates = []string{
	"axvm",
	"axvcpu",
	"axaddrspace",
	"arm_vcpu",
	"axdevice",
	"arm_vgic",
	"axhvc",
}

// Editor settings pointing rust-analyzer at the default development target.
const vscodeSettings = `{
    "rust-analyzer.cargo.target": "aarch64-unknown-none-softfloat",
    "rust-analyzer.check.allTargets": false,
    "rust-analyzer.cargo.features": ["fs"],
}
`

// Represents the 'axtask dev_env' command.
type DevEnvCmd struct{}

// Executes the dev_env command.
//
// Installs cargo-lpatch, patches the hypervisor crates into the local
// workspace, and writes editor settings for rust-analyzer.
func (c *DevEnvCmd) Run(ctx context.Context) error {
	install := executor.Command{
		Args: []string{"cargo", "install", "cargo-lpatch"},
		Dir:  projectRoot,
	}
	if err := runner.Run(ctx, install); err != nil {
		return fmt.Errorf("install cargo-lpatch: %w", err)
	}

	for _, crate := range devCrates {
		patch := executor.Command{
			Args: []string{"cargo", "lpatch", "-n", crate},
			Dir:  projectRoot,
		}
		if err := runner.Run(ctx, patch); err != nil {
			return fmt.Errorf("patch crate %s: %w", crate, err)
		}
	}

	vscodeDir := filepath.Join(projectRoot, ".vscode")
	if err := os.MkdirAll(vscodeDir, paths.DefaultDirMode); err != nil {
		return fmt.Errorf("create %s: %w", vscodeDir, err)
	}

	settings := filepath.Join(vscodeDir, "settings.json")
	if err := os.WriteFile(settings, []byte(vscodeSettings), paths.DefaultFileMode); err != nil {
		return fmt.Errorf("write %s: %w", settings, err)
	}

	slog.Info("development workspace ready", "crates", len(devCrates))
	return nil
}
