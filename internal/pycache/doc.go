// SPDX-License-Identifier: MPL-2.0

// Package pycache removes compiled Python bytecode artifacts from a project
// tree: *.pyc / *.pyo files and __pycache__ directories. The virtualenv and
// VCS metadata directories are left alone.
package pycache
