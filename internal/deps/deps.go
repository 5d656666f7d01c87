// Package deps manages the one-time checkout of the arceos source tree.
//
// Every build, run, clean, and lint operation depends on the companion
// arceos repository being present under the project root. The checkout is
// presence-check-then-clone with no locking: first-time setup is a one-off
// developer action, and concurrent first runs racing on the clone are out
// of scope.
package deps

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/arceos-hypervisor/axtask/internal/executor"
)

const (

	// Dir of the arceos checkout, relative to the project root.
	Dir = ".arceos"

	// Upstream repository for the checkout.
	repoURL = "https://github.com/arceos-hypervisor/arceos"

	// Branch tracked by the checkout.
	repoBranch = "hypervisor"
)

// Makes the arceos checkout available under root.
//
// An existing checkout directory short-circuits; otherwise the repository is
// cloned. Failure to produce the checkout yields [ErrUnavailable], which
// aborts the calling operation.
func Ensure(ctx context.Context, run executor.Runner, root string) error {
	target := filepath.Join(root, Dir)

	if _, err := os.Stat(target); err == nil {
		slog.Debug("arceos checkout present", "path", target)
		return nil
	}

	slog.Info("cloning arceos", "url", repoURL, "branch", repoBranch, "path", target)

	cmd := executor.Command{
		Args: []string{"git", "clone", repoURL, "-b", repoBranch, target},
		Dir:  root,
	}
	if err := run.Run(ctx, cmd); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	slog.Info("arceos checkout ready", "path", target)
	return nil
}
