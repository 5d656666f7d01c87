package config

import (
	"slices"
	"strings"
)

// Platform used when neither the CLI nor any persisted layer selects one.
const DefaultPlatform = "aarch64-qemu-virt-hv"

// The resolved build configuration for one invocation.
//
// Immutable after resolution: rendering reads the model, nothing writes it.
type Model struct {
	Root      string   // Project root; relative paths resolve against it.
	Platform  string   // Target platform (e.g. "aarch64-qemu-virt-hv").
	Arch      string   // Target architecture, explicit or derived from Platform.
	VMConfigs []string // Guest VM config files, in order.
	DiskImg   string   // Guest disk image path; empty means none.
	Features  []string // Feature flags, in order.
	ExtraArgs []string // Extra make arguments, passed through verbatim.
}

// CLI-supplied configuration fields. Zero-valued fields are unset.
type Overrides struct {
	Platform  string
	Arch      string
	VMConfigs []string
	DiskImg   string
	Features  []string
	ExtraArgs []string
}

// The on-disk snapshot of a resolved model.
type File struct {
	Platform  string   `toml:"platform,omitempty"`
	Arch      string   `toml:"arch,omitempty"`
	VMConfigs []string `toml:"vmconfigs,omitempty"`
	DiskImg   string   `toml:"disk_img,omitempty"`
	Features  []string `toml:"features,omitempty"`
	ExtraArgs []string `toml:"extra_args,omitempty"`
}

// Merges CLI overrides with persisted layers into a resolved [Model].
//
// Per field: the CLI value if set, else the first layer that sets it, else
// the built-in default. Nil layers are skipped, so callers can pass Load
// results straight through. The architecture defaults to the leading segment
// of the resolved platform when nothing sets it explicitly.
func Resolve(root string, cli Overrides, layers ...*File) Model {
	m := Model{Root: root}

	m.Platform = pick(cli.Platform, layers, func(f *File) string { return f.Platform }, DefaultPlatform)
	m.Arch = pick(cli.Arch, layers, func(f *File) string { return f.Arch }, archFromPlatform(m.Platform))
	m.VMConfigs = pickList(cli.VMConfigs, layers, func(f *File) []string { return f.VMConfigs })
	m.DiskImg = pick(cli.DiskImg, layers, func(f *File) string { return f.DiskImg }, "")
	m.Features = pickList(cli.Features, layers, func(f *File) []string { return f.Features })
	m.ExtraArgs = pickList(cli.ExtraArgs, layers, func(f *File) []string { return f.ExtraArgs })

	return m
}

// Returns the model as a persistable snapshot.
func Snapshot(m Model) *File {
	return &File{
		Platform:  m.Platform,
		Arch:      m.Arch,
		VMConfigs: slices.Clone(m.VMConfigs),
		DiskImg:   m.DiskImg,
		Features:  slices.Clone(m.Features),
		ExtraArgs: slices.Clone(m.ExtraArgs),
	}
}

// Resolves one string field across the precedence chain.
func pick(cli string, layers []*File, field func(*File) string, def string) string {
	if cli != "" {
		return cli
	}
	for _, layer := range layers {
		if layer == nil {
			continue
		}
		if v := field(layer); v != "" {
			return v
		}
	}
	return def
}

// Resolves one list field across the precedence chain. The default for every
// list field is empty.
func pickList(cli []string, layers []*File, field func(*File) []string) []string {
	if len(cli) > 0 {
		return slices.Clone(cli)
	}
	for _, layer := range layers {
		if layer == nil {
			continue
		}
		if v := field(layer); len(v) > 0 {
			return slices.Clone(v)
		}
	}
	return nil
}

// Derives the architecture from a platform name.
//
// Platform names lead with the architecture ("aarch64-qemu-virt-hv" is an
// aarch64 platform). A platform without a dash is its own architecture.
func archFromPlatform(platform string) string {
	arch, _, _ := strings.Cut(platform, "-")
	return arch
}
