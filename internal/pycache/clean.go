// SPDX-License-Identifier: MPL-2.0

package pycache

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const cacheDirName = "__pycache__"

// Report summarizes one cleanup pass.
type Report struct {
	// FilesRemoved counts deleted bytecode files, including files inside
	// removed __pycache__ directories.
	FilesRemoved int
	// DirsRemoved counts deleted __pycache__ directories.
	DirsRemoved int
	// BytesFreed is the total size of all removed files.
	BytesFreed int64
}

// Options controls which parts of the tree a cleanup pass may touch.
type Options struct {
	// SkipDirs are directory names never descended into (e.g. the
	// virtualenv and .git). Matched by base name at any depth.
	SkipDirs []string
}

// DefaultOptions skips VCS metadata and the common virtualenv directories.
func DefaultOptions() Options {
	return Options{SkipDirs: []string{".git", ".hg", ".venv", "venv"}}
}

// Clean removes every *.pyc / *.pyo file and every __pycache__ directory
// under root, and nothing else. It keeps going after individual removal
// failures and returns the first error encountered alongside the report of
// what was removed.
func Clean(root string, opts Options) (*Report, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to clean bytecode: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("failed to clean bytecode: %s is not a directory", root)
	}

	skip := make(map[string]bool, len(opts.SkipDirs))
	for _, name := range opts.SkipDirs {
		skip[name] = true
	}

	report := &Report{}
	var firstErr error

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			return nil
		}

		if d.IsDir() {
			if path != root && skip[d.Name()] {
				return filepath.SkipDir
			}
			if d.Name() == cacheDirName {
				files, bytes := dirContents(path)
				if rmErr := os.RemoveAll(path); rmErr != nil {
					if firstErr == nil {
						firstErr = rmErr
					}
					return filepath.SkipDir
				}
				report.DirsRemoved++
				report.FilesRemoved += files
				report.BytesFreed += bytes
				return filepath.SkipDir
			}
			return nil
		}

		ext := filepath.Ext(d.Name())
		if ext != ".pyc" && ext != ".pyo" {
			return nil
		}

		var size int64
		if fi, statErr := d.Info(); statErr == nil {
			size = fi.Size()
		}
		if rmErr := os.Remove(path); rmErr != nil {
			if firstErr == nil {
				firstErr = rmErr
			}
			return nil
		}
		report.FilesRemoved++
		report.BytesFreed += size
		return nil
	})

	if walkErr != nil && firstErr == nil {
		firstErr = walkErr
	}
	return report, firstErr
}

// dirContents counts regular files and their total size under dir.
// Best effort: unreadable entries are simply not counted.
func dirContents(dir string) (int, int64) {
	files := 0
	var bytes int64
	_ = filepath.WalkDir(dir, func(_ string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil //nolint:nilerr // best-effort accounting
		}
		files++
		if fi, statErr := d.Info(); statErr == nil {
			bytes += fi.Size()
		}
		return nil
	})
	return files, bytes
}
