// SPDX-License-Identifier: MPL-2.0

package project

import (
	"errors"
	"os/exec"
	"path/filepath"
	"runtime"

	"djrun-cli/internal/issue"
)

// ErrPythonNotFound is returned when no usable Python interpreter exists.
var ErrPythonNotFound = errors.New("no Python interpreter found")

// lookPath is swapped in tests to avoid depending on the host PATH.
var lookPath = exec.LookPath

// VenvPython returns the interpreter inside the project virtualenv and
// whether it exists. The layout differs per platform: bin/python on
// Unix-likes, Scripts\python.exe on Windows.
func (p *Project) VenvPython() (string, bool) {
	var candidate string
	if runtime.GOOS == "windows" {
		candidate = filepath.Join(p.VenvDir, "Scripts", "python.exe")
	} else {
		candidate = filepath.Join(p.VenvDir, "bin", "python")
	}
	return candidate, fileExists(candidate)
}

// Python resolves the interpreter used for every management command.
// Precedence: config override > virtualenv interpreter > python3 > python.
func (p *Project) Python() (string, error) {
	if p.pythonOverride != "" {
		if filepath.IsAbs(p.pythonOverride) || fileExists(p.pythonOverride) {
			return p.pythonOverride, nil
		}
		if path, err := lookPath(p.pythonOverride); err == nil {
			return path, nil
		}
		return "", issue.NewErrorContext().
			WithOperation("resolve Python interpreter").
			WithResource(p.pythonOverride).
			WithSuggestion("Check the 'python' value in your djrun config").
			Wrap(ErrPythonNotFound).
			BuildError()
	}

	if venvPython, ok := p.VenvPython(); ok {
		return venvPython, nil
	}

	if path, err := lookPath("python3"); err == nil {
		return path, nil
	}
	if path, err := lookPath("python"); err == nil {
		return path, nil
	}

	return "", issue.NewErrorContext().
		WithOperation("resolve Python interpreter").
		WithResource(p.Root).
		WithSuggestion("Run 'djrun setup' to create the project virtualenv").
		WithSuggestion("Install Python 3 and ensure it is on your PATH").
		Wrap(ErrPythonNotFound).
		BuildError()
}

// BootstrapPython resolves the interpreter used to create the virtualenv
// during setup. The virtualenv itself is never a candidate here.
func (p *Project) BootstrapPython() (string, error) {
	if p.pythonOverride != "" {
		if filepath.IsAbs(p.pythonOverride) || fileExists(p.pythonOverride) {
			return p.pythonOverride, nil
		}
		if path, err := lookPath(p.pythonOverride); err == nil {
			return path, nil
		}
	}
	if path, err := lookPath("python3"); err == nil {
		return path, nil
	}
	if path, err := lookPath("python"); err == nil {
		return path, nil
	}
	return "", issue.NewErrorContext().
		WithOperation("resolve Python interpreter").
		WithResource(p.Root).
		WithSuggestion("Install Python 3 and ensure it is on your PATH").
		Wrap(ErrPythonNotFound).
		BuildError()
}
