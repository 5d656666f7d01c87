// Package matrix resolves and runs the feature-to-target lint matrix.
//
// Manifest features whose names carry the "plat-" prefix select a target
// platform and are mutually exclusive: enabling two of them at once would
// describe an ambiguous target. [Resolve] therefore produces one [Cell] per
// platform feature, each combining that single platform feature with every
// non-platform feature, and maps the feature's architecture token to a build
// target triple. A manifest with no platform features resolves to a single
// all-features cell with no target override.
//
// [Runner] executes the cells strictly in sequence. Platform builds share
// mutable cargo cache directories, so running them concurrently risks cache
// corruption; correctness wins over wall-clock time. A failing cell never
// stops the sweep: every cell is attempted and the outcomes are aggregated
// at the end, so one broken platform cannot hide the results of the others.
package matrix
