// SPDX-License-Identifier: MPL-2.0

package cmd

import "github.com/spf13/cobra"

// makemigrationsCmd generates migration files from model changes.
var makemigrationsCmd = &cobra.Command{
	Use:   "makemigrations [app...]",
	Short: "Generate migration files from model changes",
	Long: `Generate migration files via 'manage.py makemigrations'.

Without arguments Django scans every installed app; app labels restrict
generation to those apps.`,
	Args: cobra.ArbitraryArgs,
	RunE: runMakemigrations,
}

func runMakemigrations(cmd *cobra.Command, args []string) error {
	return runManage(makemigrationsArgs(args), nil)
}

// makemigrationsArgs maps the makemigrations operation to its single
// manage.py command line.
func makemigrationsArgs(args []string) []string {
	return append([]string{"makemigrations"}, args...)
}
