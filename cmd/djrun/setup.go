// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"path/filepath"

	"djrun-cli/internal/issue"
	"djrun-cli/internal/runtime"

	"github.com/spf13/cobra"
)

// setupRecipe bootstraps the project environment. It runs in the embedded
// shell interpreter, so it behaves the same on hosts without a usable shell.
// The interpreter and paths travel through environment variables to avoid
// any quoting concerns.
const setupRecipe = `set -e
"$DJRUN_PYTHON" -m venv "$DJRUN_VENV"
"$DJRUN_VENV_PYTHON" -m pip install --upgrade pip
"$DJRUN_VENV_PYTHON" -m pip install -r "$DJRUN_REQUIREMENTS"
`

// setupCmd bootstraps the project environment.
var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create the virtualenv and install dependencies",
	Long: `Bootstrap the project environment:

  1. Create the virtualenv (default: .venv in the project root)
  2. Upgrade pip inside it
  3. Install the requirements file (default: requirements.txt)

The virtualenv location and requirements file come from your djrun config.`,
	Args: cobra.NoArgs,
	RunE: runSetup,
}

func runSetup(cmd *cobra.Command, args []string) error {
	p, err := resolveProject()
	if err != nil {
		return err
	}

	if !p.HasRequirements() {
		renderIssue(issue.RequirementsNotFoundId)
		return issue.NewErrorContext().
			WithOperation("install requirements").
			WithResource(p.Requirements).
			WithSuggestion("Create the requirements file, or point the 'requirements' config key at it").
			Wrap(fmt.Errorf("requirements file not found")).
			BuildError()
	}

	python, err := p.BootstrapPython()
	if err != nil {
		renderIssue(issue.PythonNotFoundId)
		return err
	}

	venvPython, _ := p.VenvPython()

	r := runtime.NewVirtualRuntime()
	result := r.Execute(&runtime.ScriptContext{
		Context: cmd.Context(),
		Script:  setupRecipe,
		Dir:     p.Root,
		ExtraEnv: map[string]string{
			"DJRUN_PYTHON":       python,
			"DJRUN_VENV":         p.VenvDir,
			"DJRUN_VENV_PYTHON":  venvPython,
			"DJRUN_REQUIREMENTS": p.Requirements,
		},
	})
	if err := resultToError(result); err != nil {
		return err
	}

	fmt.Printf("%s Environment ready at %s\n", SuccessStyle.Render("✓"), filepath.Base(p.VenvDir))
	fmt.Println()
	fmt.Println(SubtitleStyle.Render("Next steps:"))
	fmt.Println("  1. Run 'djrun migrate' to initialize the database")
	fmt.Println("  2. Run 'djrun run' to start the development server")
	return nil
}
