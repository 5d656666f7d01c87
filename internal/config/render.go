package config

import (
	"path/filepath"
	"strings"
)

// Build tool invoked for every non-lint operation.
const makeTool = "make"

// Delimiter used when serializing lists into a single make variable.
const listSeparator = ","

// Renders the model into a make argument vector and environment.
//
// Pure: the same model and goal always produce identical output. Path
// arguments are absolutized against the model root so the rendered command
// is location-independent; no existence checks are performed. The
// environment mirrors the make variables so nested tool invocations see the
// same configuration. An empty goal renders the default build invocation.
func Render(m Model, goal string) ([]string, map[string]string) {
	vars := makeVars(m)

	argv := []string{makeTool}
	for _, v := range vars {
		argv = append(argv, v.name+"="+v.value)
	}
	argv = append(argv, m.ExtraArgs...)
	if goal != "" {
		argv = append(argv, goal)
	}

	env := make(map[string]string, len(vars))
	for _, v := range vars {
		env[v.name] = v.value
	}

	return argv, env
}

// Renders a make invocation that does not depend on a resolved model.
//
// Used by operations like clean and disk_img that pass at most a few
// explicit "NAME=value" assignments.
func RenderBase(goal string, assignments ...string) []string {
	argv := []string{makeTool}
	argv = append(argv, assignments...)
	if goal != "" {
		argv = append(argv, goal)
	}
	return argv
}

type makeVar struct {
	name  string
	value string
}

// Returns the model's make variables in a fixed order.
func makeVars(m Model) []makeVar {
	vars := []makeVar{
		{"PLAT", m.Platform},
		{"ARCH", m.Arch},
	}

	if len(m.Features) > 0 {
		vars = append(vars, makeVar{"FEATURES", strings.Join(m.Features, listSeparator)})
	}
	if len(m.VMConfigs) > 0 {
		vars = append(vars, makeVar{"VM_CONFIGS", strings.Join(absPaths(m.Root, m.VMConfigs), listSeparator)})
	}
	if m.DiskImg != "" {
		vars = append(vars, makeVar{"DISK_IMG", AbsPath(m.Root, m.DiskImg)})
	}

	return vars
}

// Absolutizes a path against root. Already-absolute paths pass through.
func AbsPath(root, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(root, path)
}

func absPaths(root string, paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = AbsPath(root, p)
	}
	return out
}
