package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/arceos-hypervisor/axtask/internal/config"
	"github.com/arceos-hypervisor/axtask/internal/deps"
	"github.com/arceos-hypervisor/axtask/internal/executor"
	"github.com/arceos-hypervisor/axtask/internal/paths"
)

// Represents the 'axtask build' command.
type BuildCmd struct {
	Plat      string   `help:"Target platform (e.g. aarch64-qemu-virt-hv)." placeholder:"PLAT"`
	Arch      string   `help:"Target architecture; derived from the platform when unset." placeholder:"ARCH"`
	VMConfigs []string `name:"vmconfigs" help:"Guest VM config files." placeholder:"PATH,..."`
	Features  []string `help:"Feature flags to enable." placeholder:"FEAT,..."`
	MakeArgs  []string `name:"make-args" help:"Extra make arguments, passed through verbatim." placeholder:"ARG,..."`
}

// Executes the build command.
func (c *BuildCmd) Run(ctx context.Context) error {
	_, err := build(ctx, c.overrides())
	return err
}

// Returns the CLI-supplied configuration fields.
func (c *BuildCmd) overrides() config.Overrides {
	return config.Overrides{
		Platform:  c.Plat,
		Arch:      c.Arch,
		VMConfigs: c.VMConfigs,
		Features:  c.Features,
		ExtraArgs: c.MakeArgs,
	}
}

// Resolves the configuration and executes the build.
//
// The resolved model is returned so run can render follow-up goals from the
// exact configuration the build used. When no project config file existed
// before a successful build, the resolved model is persisted for reruns;
// a persistence failure is a warning, never a build failure.
func build(ctx context.Context, ov config.Overrides) (config.Model, error) {
	cfgPath := configPath()
	_, statErr := os.Stat(cfgPath)
	cfgExisted := statErr == nil

	if err := deps.Ensure(ctx, runner, projectRoot); err != nil {
		return config.Model{}, err
	}

	model, err := resolveConfig(ov)
	if err != nil {
		return config.Model{}, err
	}

	argv, env := config.Render(model, "")
	slog.Info("building", "platform", model.Platform, "command", executor.Command{Args: argv}.String())

	if err := runner.Run(ctx, executor.Command{Args: argv, Env: env, Dir: projectRoot}); err != nil {
		return model, err
	}
	slog.Info("build succeeded")

	if !cfgExisted {
		if err := config.Save(cfgPath, model); err != nil {
			slog.Warn("could not persist build config", "path", cfgPath, "error", err)
		} else {
			slog.Info("build config persisted; reruns pick it up automatically", "path", cfgPath)
		}
	}

	return model, nil
}

// Resolves the build configuration from CLI overrides and persisted layers.
//
// A malformed project config aborts: building with silently substituted
// defaults would hide the user's intent. The user-level file only carries
// personal defaults, so a malformed one is skipped with a warning.
func resolveConfig(ov config.Overrides) (config.Model, error) {
	project, err := config.Load(configPath())
	if err != nil {
		return config.Model{}, err
	}

	user, err := config.Load(paths.UserConfig())
	if err != nil {
		slog.Warn("ignoring unreadable user config", "path", paths.UserConfig(), "error", err)
		user = nil
	}

	return config.Resolve(projectRoot, ov, project, user), nil
}
