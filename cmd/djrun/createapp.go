// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"djrun-cli/internal/tui"

	"github.com/spf13/cobra"
)

// createappCmd scaffolds a new Django app.
var createappCmd = &cobra.Command{
	Use:   "createapp [name]",
	Short: "Scaffold a new Django app",
	Long: `Scaffold a new app via 'manage.py startapp'.

The app name can be given as an argument or entered at the prompt:

  djrun createapp
  djrun createapp luggage`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCreateapp,
}

func runCreateapp(cmd *cobra.Command, args []string) error {
	var name string
	if len(args) > 0 {
		name = args[0]
	} else {
		var err error
		name, err = tui.NewPrompter().AskRequired(tui.InputOptions{
			Title:       "App name",
			Placeholder: "myapp",
		})
		if err != nil {
			return err
		}
	}

	if err := runManage(createappArgs(name), nil); err != nil {
		return err
	}

	fmt.Printf("%s Created app %s\n", SuccessStyle.Render("✓"), CmdStyle.Render(name))
	fmt.Println()
	fmt.Println(SubtitleStyle.Render("Next steps:"))
	fmt.Printf("  1. Add '%s' to INSTALLED_APPS in your settings module\n", name)
	fmt.Println("  2. Define models, then run 'djrun makemigrations' and 'djrun migrate'")
	return nil
}

// createappArgs maps the createapp operation to its single manage.py
// command line.
func createappArgs(name string) []string {
	return []string{"startapp", name}
}
