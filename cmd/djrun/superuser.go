// SPDX-License-Identifier: MPL-2.0

package cmd

import "github.com/spf13/cobra"

// superuserCmd creates an admin account through Django's own prompts.
var superuserCmd = &cobra.Command{
	Use:   "superuser",
	Short: "Create a Django superuser account",
	Long: `Create a superuser account via 'manage.py createsuperuser'.

Django handles the prompting itself; djrun only forwards stdio.`,
	Args: cobra.NoArgs,
	RunE: runSuperuser,
}

func runSuperuser(cmd *cobra.Command, args []string) error {
	return runManage(superuserArgs(), nil)
}

// superuserArgs maps the superuser operation to its single manage.py command line.
func superuserArgs() []string {
	return []string{"createsuperuser"}
}
