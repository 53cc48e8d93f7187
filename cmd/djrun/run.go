// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"djrun-cli/internal/config"

	"github.com/spf13/cobra"
)

// runCmd starts the Django development server.
var runCmd = &cobra.Command{
	Use:   "run [addr:port]",
	Short: "Start the Django development server",
	Long: `Start the Django development server via 'manage.py runserver'.

The listen address comes from the server.addr config key (default
127.0.0.1:8000) and can be overridden with a positional argument:

  djrun run
  djrun run 0.0.0.0:9000
  djrun run 8080`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	addr := config.Get().Server.Addr
	if len(args) > 0 {
		addr = args[0]
	}
	return runManage(runserverArgs(addr), nil)
}

// runserverArgs maps the run operation to its single manage.py command line.
func runserverArgs(addr string) []string {
	args := []string{"runserver"}
	if addr != "" {
		args = append(args, addr)
	}
	return args
}
