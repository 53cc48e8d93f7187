// SPDX-License-Identifier: MPL-2.0

package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"djrun-cli/internal/config"
)

// stubLookPath replaces PATH lookups for the duration of a test.
// Not parallel-safe; tests using it must not call t.Parallel().
func stubLookPath(t *testing.T, found map[string]string) {
	t.Helper()
	orig := lookPath
	lookPath = func(name string) (string, error) {
		if path, ok := found[name]; ok {
			return path, nil
		}
		return "", fmt.Errorf("%s: executable file not found", name)
	}
	t.Cleanup(func() { lookPath = orig })
}

func venvPythonRelPath() string {
	if runtime.GOOS == "windows" {
		return filepath.Join("Scripts", "python.exe")
	}
	return filepath.Join("bin", "python")
}

func newProjectWithVenv(t *testing.T) *Project {
	t.Helper()
	root := newProjectTree(t)
	p, err := Discover(root, config.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	pyPath := filepath.Join(p.VenvDir, venvPythonRelPath())
	if err := os.MkdirAll(filepath.Dir(pyPath), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(pyPath, []byte(""), 0o755); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestPython_PrefersVenvInterpreter(t *testing.T) {
	stubLookPath(t, map[string]string{"python3": "/usr/bin/python3"})

	p := newProjectWithVenv(t)
	got, err := p.Python()
	if err != nil {
		t.Fatalf("Python() error: %v", err)
	}

	want := filepath.Join(p.VenvDir, venvPythonRelPath())
	if got != want {
		t.Errorf("Python() = %q, want venv interpreter %q", got, want)
	}
}

func TestPython_FallsBackToPath(t *testing.T) {
	stubLookPath(t, map[string]string{"python3": "/usr/bin/python3"})

	root := newProjectTree(t)
	p, err := Discover(root, config.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	got, err := p.Python()
	if err != nil {
		t.Fatalf("Python() error: %v", err)
	}
	if got != "/usr/bin/python3" {
		t.Errorf("Python() = %q, want /usr/bin/python3", got)
	}
}

func TestPython_ConfigOverrideWins(t *testing.T) {
	stubLookPath(t, map[string]string{"python3": "/usr/bin/python3"})

	cfg := config.DefaultConfig()
	cfg.Python = string(filepath.Separator) + filepath.Join("opt", "py", "bin", "python")

	p, err := Discover(newProjectTree(t), cfg)
	if err != nil {
		t.Fatal(err)
	}

	got, err := p.Python()
	if err != nil {
		t.Fatalf("Python() error: %v", err)
	}
	if got != cfg.Python {
		t.Errorf("Python() = %q, want config override %q", got, cfg.Python)
	}
}

func TestPython_NotFound(t *testing.T) {
	stubLookPath(t, nil)

	p, err := Discover(newProjectTree(t), config.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	if _, err := p.Python(); !errors.Is(err, ErrPythonNotFound) {
		t.Errorf("Python() error = %v, want ErrPythonNotFound", err)
	}
}

func TestBootstrapPython_IgnoresVenv(t *testing.T) {
	stubLookPath(t, map[string]string{"python3": "/usr/bin/python3"})

	p := newProjectWithVenv(t)
	got, err := p.BootstrapPython()
	if err != nil {
		t.Fatalf("BootstrapPython() error: %v", err)
	}
	if got != "/usr/bin/python3" {
		t.Errorf("BootstrapPython() = %q, want host interpreter", got)
	}
}
