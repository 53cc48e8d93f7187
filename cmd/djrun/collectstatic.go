// SPDX-License-Identifier: MPL-2.0

package cmd

import "github.com/spf13/cobra"

// collectstaticCmd gathers static assets into STATIC_ROOT.
var collectstaticCmd = &cobra.Command{
	Use:   "collectstatic",
	Short: "Collect static files into STATIC_ROOT",
	Long: `Collect static assets via 'manage.py collectstatic --noinput'.

The --noinput flag suppresses Django's overwrite confirmation so the
command is safe to run from scripts and CI.`,
	Args: cobra.NoArgs,
	RunE: runCollectstatic,
}

func runCollectstatic(cmd *cobra.Command, args []string) error {
	return runManage(collectstaticArgs(), nil)
}

// collectstaticArgs maps the collectstatic operation to its single
// manage.py command line.
func collectstaticArgs() []string {
	return []string{"collectstatic", "--noinput"}
}
