package matrix

import (
	"context"
	"testing"

	"github.com/arceos-hypervisor/axtask/internal/executor"
)

// Runner fake that fails cells by platform name.
type fakeExec struct {
	fail     map[string]error
	commands []executor.Command
}

func (f *fakeExec) Run(_ context.Context, cmd executor.Command) error {
	f.commands = append(f.commands, cmd)
	for plat, err := range f.fail {
		if argsContain(cmd.Args, plat) {
			return err
		}
	}
	return nil
}

func containsFeature(arg, feature string) bool {
	if arg == feature {
		return true
	}
	// Feature lists are comma-joined into a single argument.
	for rest := arg; rest != ""; {
		var head string
		head, rest = cutComma(rest)
		if head == feature {
			return true
		}
	}
	return false
}

func cutComma(s string) (string, string) {
	for i := 0; i < len(s); i++ {
		if s[i] == ',' {
			return s[:i], s[i+1:]
		}
	}
	return s, ""
}

func TestRunnerFailSoft(t *testing.T) {
	cells := []Cell{
		{Platform: "plat-aarch64-qemu", Features: []string{"plat-aarch64-qemu"}},
		{Platform: "plat-x86_64-pc", Features: []string{"plat-x86_64-pc"}},
		{Platform: "plat-riscv64-qemu", Features: []string{"plat-riscv64-qemu"}},
	}

	exec := &fakeExec{fail: map[string]error{
		"plat-aarch64-qemu": &executor.ProcessError{Command: "cargo", Code: 101},
		"plat-riscv64-qemu": &executor.ProcessError{Command: "cargo", Code: 1},
	}}

	r := &Runner{Exec: exec, Dir: "/proj"}
	results := r.Run(context.Background(), cells)

	if len(exec.commands) != 3 {
		t.Fatalf("executed %d commands, want all 3 despite failures", len(exec.commands))
	}
	if len(results) != 3 {
		t.Fatalf("len(results) = %d, want 3", len(results))
	}

	wantPass := []bool{false, true, false}
	for i, res := range results {
		if res.Passed() != wantPass[i] {
			t.Errorf("results[%d].Passed() = %v, want %v", i, res.Passed(), wantPass[i])
		}
	}

	if AllPassed(results) {
		t.Fatal("AllPassed = true for a sweep with failures")
	}
}

func TestRunnerAllPass(t *testing.T) {
	cells := Resolve([]string{"plat-aarch64-qemu", "fs"})
	exec := &fakeExec{}

	r := &Runner{Exec: exec, Dir: "/proj"}
	results := r.Run(context.Background(), cells)

	if !AllPassed(results) {
		t.Fatal("AllPassed = false for a clean sweep")
	}
	if len(exec.commands) != len(cells) {
		t.Fatalf("executed %d commands, want %d", len(exec.commands), len(cells))
	}
	for _, cmd := range exec.commands {
		if cmd.Dir != "/proj" {
			t.Fatalf("command ran in %q, want /proj", cmd.Dir)
		}
	}
}

func TestRunnerSequentialOrder(t *testing.T) {
	cells := Resolve([]string{"plat-x86_64-pc", "plat-aarch64-qemu"})
	exec := &fakeExec{}

	r := &Runner{Exec: exec}
	r.Run(context.Background(), cells)

	if !argsContain(exec.commands[0].Args, "plat-x86_64-pc") {
		t.Fatalf("first command %v does not target the first-declared platform", exec.commands[0].Args)
	}
	if !argsContain(exec.commands[1].Args, "plat-aarch64-qemu") {
		t.Fatalf("second command %v does not target the second-declared platform", exec.commands[1].Args)
	}
}

func argsContain(args []string, feature string) bool {
	for _, a := range args {
		if containsFeature(a, feature) {
			return true
		}
	}
	return false
}

func TestAllPassedEmpty(t *testing.T) {
	if !AllPassed(nil) {
		t.Fatal("AllPassed(nil) = false, want vacuous true")
	}
}
