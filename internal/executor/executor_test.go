package executor

import (
	"errors"
	"sort"
	"testing"
)

func TestOverlayEnviron(t *testing.T) {
	tests := []struct {
		name      string
		base      []string
		overrides map[string]string
		want      []string
	}{
		{
			name:      "override existing key",
			base:      []string{"A=1", "B=2"},
			overrides: map[string]string{"A": "override"},
			want:      []string{"A=override", "B=2"},
		},
		{
			name:      "add new key",
			base:      []string{"A=1"},
			overrides: map[string]string{"B": "2"},
			want:      []string{"A=1", "B=2"},
		},
		{
			name:      "empty base",
			base:      nil,
			overrides: map[string]string{"A": "1"},
			want:      []string{"A=1"},
		},
		{
			name:      "empty overrides",
			base:      []string{"A=1"},
			overrides: nil,
			want:      []string{"A=1"},
		},
		{
			name:      "value with equals sign",
			base:      []string{"CMD=foo=bar"},
			overrides: nil,
			want:      []string{"CMD=foo=bar"},
		},
		{
			name:      "malformed entries skipped",
			base:      []string{"NOEQUALS", "A=1"},
			overrides: map[string]string{"B": "2"},
			want:      []string{"A=1", "B=2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := overlayEnviron(tt.base, tt.overrides)
			sort.Strings(got)
			sort.Strings(tt.want)

			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d\ngot:  %v\nwant: %v", len(got), len(tt.want), got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("got[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestProcessError(t *testing.T) {
	err := &ProcessError{Command: "make", Code: 2}
	if err.Error() != "make exited with code 2" {
		t.Fatalf("Error() = %q", err.Error())
	}

	var target *ProcessError
	if !errors.As(error(err), &target) {
		t.Fatal("errors.As failed to match ProcessError")
	}
	if target.Code != 2 {
		t.Fatalf("Code = %d, want 2", target.Code)
	}
}

func TestCommandString(t *testing.T) {
	cmd := Command{Args: []string{"make", "PLAT=aarch64-qemu-virt-hv", "run"}}
	if cmd.String() != "make PLAT=aarch64-qemu-virt-hv run" {
		t.Fatalf("String() = %q", cmd.String())
	}
}
