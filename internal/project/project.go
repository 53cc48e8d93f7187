// SPDX-License-Identifier: MPL-2.0

package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"djrun-cli/internal/config"
	"djrun-cli/internal/issue"
)

// ErrNotFound is returned when no management script is found in the start
// directory or any of its parents.
var ErrNotFound = errors.New("no Django project found")

// Project describes a located Django project.
type Project struct {
	// Root is the directory containing the management script.
	Root string
	// ManagePy is the absolute path of the management script.
	ManagePy string
	// VenvDir is the absolute path of the virtualenv directory (may not exist yet).
	VenvDir string
	// Requirements is the absolute path of the requirements file (may not exist yet).
	Requirements string

	// pythonOverride is the configured interpreter, empty for auto-discovery.
	pythonOverride string
}

// Discover walks up from startDir looking for the management script named in
// cfg and resolves the project layout around it. An empty startDir means the
// current working directory.
func Discover(startDir string, cfg *config.Config) (*Project, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	dir := startDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		dir = wd
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve start directory: %w", err)
	}

	root, err := findUp(abs, cfg.ManagePy)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("locate Django project").
			WithResource(abs).
			WithSuggestion("Run djrun from inside a Django project").
			WithSuggestion("Use --project to point at the project directory").
			WithSuggestion(fmt.Sprintf("Expected to find a %s file", cfg.ManagePy)).
			Wrap(err).
			BuildError()
	}

	return &Project{
		Root:           root,
		ManagePy:       filepath.Join(root, cfg.ManagePy),
		VenvDir:        resolvePath(root, cfg.VenvDir),
		Requirements:   resolvePath(root, cfg.Requirements),
		pythonOverride: cfg.Python,
	}, nil
}

// At builds a Project rooted at an explicit directory (--project flag),
// without walking up. The management script must exist there.
func At(dir string, cfg *config.Config) (*Project, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project directory: %w", err)
	}

	managePy := filepath.Join(abs, cfg.ManagePy)
	if !fileExists(managePy) {
		return nil, issue.NewErrorContext().
			WithOperation("locate Django project").
			WithResource(abs).
			WithSuggestion(fmt.Sprintf("Check that %s contains a %s file", abs, cfg.ManagePy)).
			Wrap(ErrNotFound).
			BuildError()
	}

	return &Project{
		Root:           abs,
		ManagePy:       managePy,
		VenvDir:        resolvePath(abs, cfg.VenvDir),
		Requirements:   resolvePath(abs, cfg.Requirements),
		pythonOverride: cfg.Python,
	}, nil
}

// HasVirtualenv reports whether the project virtualenv directory exists.
func (p *Project) HasVirtualenv() bool {
	info, err := os.Stat(p.VenvDir)
	return err == nil && info.IsDir()
}

// HasRequirements reports whether the requirements file exists.
func (p *Project) HasRequirements() bool {
	return fileExists(p.Requirements)
}

// resolvePath anchors a configured path at the project root unless it is
// already absolute.
func resolvePath(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

// findUp walks from dir toward the filesystem root looking for name.
// Returns the directory containing it.
func findUp(dir, name string) (string, error) {
	for {
		if fileExists(filepath.Join(dir, name)) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotFound
		}
		dir = parent
	}
}

// fileExists reports whether path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
