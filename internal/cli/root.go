package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/arceos-hypervisor/axtask/internal"
	"github.com/arceos-hypervisor/axtask/internal/executor"
	"github.com/arceos-hypervisor/axtask/internal/manifest"
)

// Default path of the project build config, relative to the project root.
const defaultConfigName = ".hvconfig.toml"

// Represents the root command for the axtask tool.
var RootCmd struct {
	Quiet   bool   `short:"q" help:"Suppress informational output."`
	Verbose bool   `short:"v" help:"Enable verbose output."`
	Debug   bool   `short:"d" help:"Enable debug output."`
	Config  string `short:"c" default:".hvconfig.toml" help:"Project build config path." placeholder:"PATH"`

	Setup     SetupCmd     `cmd:"" help:"Clone the arceos source dependency."`
	Build     BuildCmd     `cmd:"" help:"Build the hypervisor."`
	Run       RunCmd       `cmd:"" help:"Build and run the hypervisor."`
	Clippy    ClippyCmd    `cmd:"" help:"Run clippy across all platform feature combinations."`
	Clean     CleanCmd     `cmd:"" help:"Clean build artifacts."`
	DiskImg   DiskImgCmd   `cmd:"" name:"disk_img" help:"Create a guest disk image."`
	DevEnv    DevEnvCmd    `cmd:"" name:"dev_env" help:"Prepare a local development workspace."`
	Defconfig DefconfigCmd `cmd:"" help:"Apply a board configuration preset."`
	Version   VersionCmd   `cmd:"" help:"Show version information."`
}

var (
	// Root of the project being built, the invocation working directory.
	projectRoot string

	// Process collaborator; replaced by fakes in tests.
	runner executor.Runner = executor.New()
)

// Parses arguments, configures logging, and runs the selected subcommand.
func Execute() error {

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	kongCtx := kong.Parse(&RootCmd,
		kong.Name(internal.Name),
		kong.Description("Build orchestrator for the Axvisor hypervisor.\n\nResolves the build configuration, drives make and cargo, and manages the arceos source checkout."),
		kong.UsageOnError(),
		kong.Vars{
			"version": internal.VersionString(),
		},
		kong.BindTo(ctx, (*context.Context)(nil)),
	)

	configureLogger()

	root, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("determine working directory: %w", err)
	}
	projectRoot = root

	if commandName(kongCtx) != "version" {
		if _, err := os.Stat(filepath.Join(projectRoot, manifest.FileName)); err != nil {
			return fmt.Errorf("not an Axvisor project directory: no %s in %s", manifest.FileName, projectRoot)
		}
	}

	return kongCtx.Run()
}

// Reconfigures the global log level based on CLI flags.
//
// Flags are merged with the build-time defaults; the most talkative wins
// between verbose and debug, quiet drops everything below warnings.
func configureLogger() {
	debug := RootCmd.Debug || internal.IsDebug()
	quiet := RootCmd.Quiet || internal.IsQuiet()
	verbose := RootCmd.Verbose || internal.IsVerbose()

	switch {
	case debug || verbose:
		internal.LogLevel.Set(slog.LevelDebug)
	case quiet:
		internal.LogLevel.Set(slog.LevelWarn)
	default:
		internal.LogLevel.Set(slog.LevelInfo)
	}
}

// Returns the leading name of the selected command ("build", "disk_img").
func commandName(kongCtx *kong.Context) string {
	name, _, _ := strings.Cut(kongCtx.Command(), " ")
	return name
}

// Path of the project build config for this invocation.
func configPath() string {
	path := RootCmd.Config
	if path == "" {
		path = defaultConfigName
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(projectRoot, path)
}
