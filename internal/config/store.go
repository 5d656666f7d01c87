package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/arceos-hypervisor/axtask/internal/paths"
)

// Reads a persisted config snapshot.
//
// Returns (nil, nil) when no file exists at path; the caller resolves from
// defaults. A file that exists but does not parse yields [ErrMalformed],
// never a partially populated snapshot.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}
	return &f, nil
}

// Writes the model snapshot to path.
//
// The snapshot is written to a temporary file in the target directory and
// renamed into place, so a crash mid-write never leaves a torn config behind.
func Save(path string, m Model) error {
	data, err := toml.Marshal(Snapshot(m))
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".hvconfig-*")
	if err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write config %s: %w", path, err)
	}
	if err := tmp.Chmod(paths.DefaultFileMode); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write config %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write config %s: %w", path, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}
