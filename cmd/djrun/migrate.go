// SPDX-License-Identifier: MPL-2.0

package cmd

import "github.com/spf13/cobra"

// migrateCmd applies database migrations.
var migrateCmd = &cobra.Command{
	Use:   "migrate [app [migration]]",
	Short: "Apply database migrations",
	Long: `Apply database migrations via 'manage.py migrate'.

Without arguments every pending migration is applied. An app label limits
the run to one app, and an app label plus migration name migrates (or
unmigrates) to that exact state.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	return runManage(migrateArgs(args), nil)
}

// migrateArgs maps the migrate operation to its single manage.py command line.
func migrateArgs(args []string) []string {
	return append([]string{"migrate"}, args...)
}
