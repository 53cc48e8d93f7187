// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"djrun-cli/internal/config"
	"djrun-cli/internal/project"
)

// newFakeProject creates a project whose "interpreter" is /bin/sh and whose
// manage.py is a shell script, so tests exercise the real subprocess path
// without requiring Python.
func newFakeProject(t *testing.T, manageScript string) *project.Project {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("fake interpreter tests require a POSIX sh")
	}
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not found on PATH")
	}

	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "manage.py"), []byte(manageScript), 0o755); err != nil {
		t.Fatal(err)
	}

	cfg := config.DefaultConfig()
	cfg.Python = sh

	p, err := project.At(root, cfg)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestManageRuntime_ExecuteCapture(t *testing.T) {
	p := newFakeProject(t, "echo \"manage $@\"\n")

	r := NewManageRuntime()
	result := r.ExecuteCapture(&ExecutionContext{
		Project: p,
		Args:    []string{"migrate", "booking"},
	})

	if result.Error != nil {
		t.Fatalf("unexpected error: %v", result.Error)
	}
	if !result.ExitCode.IsSuccess() {
		t.Fatalf("exit code = %s, want 0", result.ExitCode)
	}
	if !strings.Contains(result.Output, "manage migrate booking") {
		t.Errorf("output = %q, want the forwarded arguments", result.Output)
	}
}

func TestManageRuntime_ExitCodePassthrough(t *testing.T) {
	p := newFakeProject(t, "exit 3\n")

	r := NewManageRuntime()
	result := r.ExecuteCapture(&ExecutionContext{
		Project: p,
		Args:    []string{"test"},
	})

	if result.ExitCode != 3 {
		t.Errorf("exit code = %s, want 3 (no remapping)", result.ExitCode)
	}
	if result.Error != nil {
		t.Errorf("child failure must not set Error, got %v", result.Error)
	}
}

func TestManageRuntime_ExtraEnv(t *testing.T) {
	p := newFakeProject(t, "echo \"user=$DJRUN_USERNAME\"\n")

	r := NewManageRuntime()
	result := r.ExecuteCapture(&ExecutionContext{
		Project:  p,
		Args:     []string{"shell"},
		ExtraEnv: map[string]string{"DJRUN_USERNAME": "alice"},
	})

	if !strings.Contains(result.Output, "user=alice") {
		t.Errorf("output = %q, want the extra env var", result.Output)
	}
}

func TestManageRuntime_RunsInProjectRoot(t *testing.T) {
	p := newFakeProject(t, "pwd\n")

	r := NewManageRuntime()
	result := r.ExecuteCapture(&ExecutionContext{
		Project: p,
		Args:    []string{"shell"},
	})

	got, err := filepath.EvalSymlinks(strings.TrimSpace(result.Output))
	if err != nil {
		t.Fatal(err)
	}
	want, err := filepath.EvalSymlinks(p.Root)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("working dir = %q, want project root %q", got, want)
	}
}

func TestManageRuntime_SpawnFailure(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "manage.py"), []byte(""), 0o755); err != nil {
		t.Fatal(err)
	}

	cfg := config.DefaultConfig()
	cfg.Python = filepath.Join(root, "does-not-exist")

	p, err := project.At(root, cfg)
	if err != nil {
		t.Fatal(err)
	}

	r := NewManageRuntime()
	result := r.ExecuteCapture(&ExecutionContext{Project: p, Args: []string{"shell"}})

	if result.ExitCode != 1 {
		t.Errorf("exit code = %s, want 1", result.ExitCode)
	}
	if result.Error == nil {
		t.Error("spawn failure should set Error")
	}
}

func TestManageRuntime_Validate(t *testing.T) {
	t.Parallel()

	r := NewManageRuntime()

	if err := r.Validate(&ExecutionContext{Project: nil, Args: []string{"x"}}); err == nil {
		t.Error("Validate() should reject a nil project")
	}

	p := &project.Project{Root: "/tmp", ManagePy: "/tmp/manage.py"}
	if err := r.Validate(&ExecutionContext{Project: p, Args: nil}); err == nil {
		t.Error("Validate() should reject empty args")
	}
}
