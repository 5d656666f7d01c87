package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadAbsent(t *testing.T) {
	f, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load on absent file: %v", err)
	}
	if f != nil {
		t.Fatalf("Load on absent file = %+v, want nil", f)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".hvconfig.toml")
	if err := os.WriteFile(path, []byte("platform = [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	f, err := Load(path)
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("Load error = %v, want ErrMalformed", err)
	}
	if f != nil {
		t.Fatalf("Load returned partial snapshot %+v alongside error", f)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".hvconfig.toml")

	model := Model{
		Root:      "/proj",
		Platform:  "aarch64-qemu-virt-hv",
		Arch:      "aarch64",
		VMConfigs: []string{"configs/vms/linux-qemu-aarch64.toml", "configs/vms/nimbos.toml"},
		DiskImg:   "disk.img",
		Features:  []string{"fs", "hv"},
		ExtraArgs: []string{"LOG=info"},
	}

	if err := Save(path, model); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	resolved := Resolve("/proj", Overrides{}, loaded)
	if diff := cmp.Diff(model, resolved); diff != "" {
		t.Fatalf("round-trip mismatch (-saved +resolved):\n%s", diff)
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".hvconfig.toml")

	if err := Save(path, Model{Platform: "aarch64-qemu-virt-hv", Arch: "aarch64"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != ".hvconfig.toml" {
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name()
		}
		t.Fatalf("directory contents = %v, want only .hvconfig.toml", names)
	}
}

func TestSaveReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".hvconfig.toml")

	if err := Save(path, Model{Platform: "x86_64-pc", Arch: "x86_64"}); err != nil {
		t.Fatal(err)
	}
	if err := Save(path, Model{Platform: "aarch64-qemu-virt-hv", Arch: "aarch64"}); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Platform != "aarch64-qemu-virt-hv" {
		t.Fatalf("Platform = %q after rewrite, want aarch64-qemu-virt-hv", loaded.Platform)
	}
}
