// Package config resolves and renders the build configuration.
//
// A [Model] is the single authoritative configuration for one invocation.
// [Resolve] merges the CLI-supplied [Overrides] with any number of persisted
// [File] layers, field by field: an explicitly set CLI value always wins,
// then the first layer that sets the field, then a built-in default. Every
// field has a default, so resolution never fails on missing input. Once a
// model has been rendered it is never mutated; reruns resolve a fresh one.
//
// [Load] and [Save] handle the on-disk TOML snapshot. [Render] is a pure
// function from a model and a make goal to the argument vector and
// environment for the build tool.
//
// Example usage:
//
//	project, err := config.Load(".hvconfig.toml")
//	if err != nil {
//	    return err
//	}
//
//	model := config.Resolve(root, overrides, project)
//	argv, env := config.Render(model, "run")
package config
