// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"path/filepath"

	"djrun-cli/internal/pycache"

	"github.com/spf13/cobra"
)

// cleanCmd removes compiled bytecode artifacts.
var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Delete *.pyc files and __pycache__ directories",
	Long: `Delete compiled bytecode artifacts (*.pyc, *.pyo files and
__pycache__ directories) under the project tree. The virtualenv and VCS
metadata are left alone.`,
	Args: cobra.NoArgs,
	RunE: runClean,
}

func runClean(cmd *cobra.Command, args []string) error {
	p, err := resolveProject()
	if err != nil {
		return err
	}

	opts := pycache.DefaultOptions()
	// The configured venv dir may not be one of the conventional names.
	opts.SkipDirs = append(opts.SkipDirs, filepath.Base(p.VenvDir))

	report, err := pycache.Clean(p.Root, opts)
	if err != nil {
		return fmt.Errorf("failed to clean bytecode: %w", err)
	}

	fmt.Printf("%s Removed %d files and %d __pycache__ directories (%d bytes)\n",
		SuccessStyle.Render("✓"), report.FilesRemoved, report.DirsRemoved, report.BytesFreed)
	return nil
}
