// SPDX-License-Identifier: MPL-2.0

package cmd

import "github.com/spf13/cobra"

// shellCmd opens the Django interactive shell.
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Open the Django interactive shell",
	Long:  `Open the interactive Python shell with the project loaded, via 'manage.py shell'.`,
	Args:  cobra.NoArgs,
	RunE:  runShell,
}

func runShell(cmd *cobra.Command, args []string) error {
	return runManage(shellArgs(), nil)
}

// shellArgs maps the shell operation to its single manage.py command line.
func shellArgs() []string {
	return []string{"shell"}
}
