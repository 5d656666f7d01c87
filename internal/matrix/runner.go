package matrix

import (
	"context"
	"log/slog"

	"github.com/arceos-hypervisor/axtask/internal/executor"
)

// Records the outcome of one cell. A nil Err is a pass.
type Result struct {
	Cell Cell
	Err  error
}

// Whether the cell passed.
func (r Result) Passed() bool {
	return r.Err == nil
}

// Executes matrix cells sequentially against an [executor.Runner].
type Runner struct {
	Exec executor.Runner
	Dir  string // Working directory for every cell.
}

// Runs every cell in order and returns one result per cell.
//
// A failing cell does not stop the sweep; all cells are always attempted
// and the caller reduces the results with [AllPassed].
func (r *Runner) Run(ctx context.Context, cells []Cell) []Result {
	results := make([]Result, 0, len(cells))

	for _, cell := range cells {
		cmd := executor.Command{Args: Command(cell), Dir: r.Dir}

		slog.Info("checking", "platform", label(cell), "target", cell.Target)
		slog.Debug("exec", "command", cmd.String())

		err := r.Exec.Run(ctx, cmd)
		if err != nil {
			slog.Warn("check failed", "platform", label(cell), "error", err)
		} else {
			slog.Info("check passed", "platform", label(cell))
		}

		results = append(results, Result{Cell: cell, Err: err})
	}

	return results
}

// Reduces a result sequence to the sweep's aggregate outcome.
func AllPassed(results []Result) bool {
	ok := true
	for _, r := range results {
		ok = ok && r.Passed()
	}
	return ok
}

// Returns a display label for a cell.
func label(cell Cell) string {
	if cell.Platform == "" {
		return "(all features)"
	}
	return cell.Platform
}
