// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"djrun-cli/internal/issue"
	"djrun-cli/internal/tui"

	"github.com/spf13/cobra"
)

// createUserScript builds the account inside Django's scripting interface.
// The values travel through environment variables, never through the command
// line, so they stay out of process listings and need no shell quoting.
const createUserScript = `import os
from django.contrib.auth import get_user_model
User = get_user_model()
User.objects.create_user(
    os.environ["DJRUN_USERNAME"],
    os.environ["DJRUN_EMAIL"],
    os.environ["DJRUN_PASSWORD"],
)
print("Created user " + os.environ["DJRUN_USERNAME"])
`

// createuserCmd creates a regular user account.
var createuserCmd = &cobra.Command{
	Use:   "createuser",
	Short: "Create a regular user account",
	Long: `Create a regular (non-admin) user account.

Prompts for username, email, and password (hidden), then creates the
account through Django's user model. When stdin is not a terminal the
three values are read as lines from stdin instead:

  printf 'alice\nalice@example.com\ns3cret\n' | djrun createuser`,
	Args: cobra.NoArgs,
	RunE: runCreateuser,
}

func runCreateuser(cmd *cobra.Command, args []string) error {
	prompter := tui.NewPrompter()
	username, email, password, err := collectUserInputs(prompter)
	if err != nil {
		if !prompter.IsInteractive() {
			renderIssue(issue.PromptUnavailableId)
		}
		return err
	}

	// All three inputs are in hand before manage.py is ever invoked.
	return runManage(createuserArgs(), map[string]string{
		"DJRUN_USERNAME": username,
		"DJRUN_EMAIL":    email,
		"DJRUN_PASSWORD": password,
	})
}

// collectUserInputs gathers the full input set, aborting before any
// subprocess starts if a prompt fails or is cancelled.
func collectUserInputs(p *tui.Prompter) (username, email, password string, err error) {
	username, err = p.AskRequired(tui.InputOptions{Title: "Username"})
	if err != nil {
		return "", "", "", err
	}
	email, err = p.AskRequired(tui.InputOptions{Title: "Email", Placeholder: "user@example.com"})
	if err != nil {
		return "", "", "", err
	}
	password, err = p.AskRequired(tui.InputOptions{Title: "Password", Password: true})
	if err != nil {
		return "", "", "", err
	}
	return username, email, password, nil
}

// createuserArgs maps the createuser operation to its single manage.py
// command line.
func createuserArgs() []string {
	return []string{"shell", "-c", createUserScript}
}
