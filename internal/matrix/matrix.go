package matrix

import (
	"strings"
)

// PlatformPrefix marks manifest features that select a target platform.
const PlatformPrefix = "plat-"

// Maps architecture tokens to build target triples.
//
// Tokens absent from the table render no target override; the build proceeds
// with the toolchain default rather than failing.
var archTargets = map[string]string{
	"aarch64": "aarch64-unknown-none-softfloat",
	"x86":     "x86_64-unknown-none",
	"x86_64":  "x86_64-unknown-none",
	"riscv":   "riscv64gc-unknown-none-elf",
	"riscv64": "riscv64gc-unknown-none-elf",
}

// One independently checked combination of platform feature, target triple,
// and feature set.
//
// Cells are derived, never persisted: every sweep recomputes them from the
// manifest's current feature declarations.
type Cell struct {
	Platform string   // Platform feature name; empty for the single all-features pass.
	Target   string   // Target triple; empty means no override.
	Features []string // Features enabled for this cell, in declaration order.
}

// Expands manifest feature declarations into matrix cells.
//
// Platform features are partitioned from the rest by [PlatformPrefix]. With
// no platform features the result is a single cell enabling everything.
// Otherwise each platform feature yields one cell pairing it with all
// non-platform features, in the manifest's declaration order. No cell ever
// carries two platform features.
func Resolve(features []string) []Cell {
	var platforms, globals []string
	for _, f := range features {
		if strings.HasPrefix(f, PlatformPrefix) {
			platforms = append(platforms, f)
		} else {
			globals = append(globals, f)
		}
	}

	if len(platforms) == 0 {
		return []Cell{{Features: globals}}
	}

	cells := make([]Cell, 0, len(platforms))
	for _, plat := range platforms {
		combined := make([]string, 0, 1+len(globals))
		combined = append(combined, plat)
		combined = append(combined, globals...)

		cells = append(cells, Cell{
			Platform: plat,
			Target:   archTargets[ArchToken(plat)],
			Features: combined,
		})
	}
	return cells
}

// Extracts the architecture token from a platform feature name.
//
// The token is the second dash-separated segment ("plat-aarch64-qemu"
// yields "aarch64"). Names without a second segment yield "".
func ArchToken(feature string) string {
	parts := strings.Split(feature, "-")
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

// Keeps only cells whose architecture token matches arch.
//
// The degenerate all-features cell has no platform and always passes the
// filter. An empty arch keeps everything.
func FilterArch(cells []Cell, arch string) []Cell {
	if arch == "" {
		return cells
	}

	var out []Cell
	for _, c := range cells {
		if c.Platform == "" || ArchToken(c.Platform) == arch {
			out = append(out, c)
		}
	}
	return out
}

// Renders the cargo invocation for a cell.
//
// Platform cells deny warnings; the degenerate all-features pass does not.
func Command(cell Cell) []string {
	args := []string{"cargo", "clippy"}

	if cell.Target != "" {
		args = append(args, "--target", cell.Target)
	}
	if len(cell.Features) > 0 {
		args = append(args, "--features", strings.Join(cell.Features, ","))
	}
	if cell.Platform != "" {
		args = append(args, "--", "-D", "warnings")
	}

	return args
}
