// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"

	"djrun-cli/internal/config"
	"djrun-cli/internal/issue"
	"djrun-cli/internal/project"
	"djrun-cli/internal/runtime"
)

// resolveProject locates the Django project for the current invocation,
// honoring the --project flag.
func resolveProject() (*project.Project, error) {
	cfg := config.Get()
	if projectDir != "" {
		return project.At(projectDir, cfg)
	}

	p, err := project.Discover("", cfg)
	if err != nil {
		renderIssue(issue.ProjectNotFoundId)
		return nil, err
	}
	return p, nil
}

// runManage executes one management command against the resolved project and
// maps the result to the CLI's exit semantics: the child's exit code becomes
// djrun's exit code, untouched.
func runManage(args []string, extraEnv map[string]string) error {
	p, err := resolveProject()
	if err != nil {
		return err
	}

	r := runtime.NewManageRuntime()
	result := r.Execute(&runtime.ExecutionContext{
		Project:  p,
		Args:     args,
		ExtraEnv: extraEnv,
	})

	if id := failureIssue(p, result, verbose); id != 0 {
		renderIssue(id)
	}
	return resultToError(result)
}

// failureIssue picks the registry issue rendered alongside a failed
// execution, or 0 when nothing beyond the child's own output is warranted.
// Child failures stay silent by default: Django's diagnostics pass through
// untouched, and the guidance block appears only under --verbose.
func failureIssue(p *project.Project, result *runtime.Result, verboseMode bool) issue.Id {
	if result.Error != nil {
		if errors.Is(result.Error, project.ErrPythonNotFound) {
			if p != nil && !p.HasVirtualenv() {
				return issue.VirtualenvMissingId
			}
			return issue.PythonNotFoundId
		}
		return 0
	}
	if verboseMode && !result.ExitCode.IsSuccess() {
		return issue.ManageCommandFailedId
	}
	return 0
}

// resultToError converts a runtime Result into the error returned from a
// cobra RunE handler. Child failures carry only the exit code; djrun-side
// failures carry the error as well.
func resultToError(result *runtime.Result) error {
	if result.Error != nil {
		return &ExitError{Code: result.ExitCode, Err: result.Error}
	}
	if !result.ExitCode.IsSuccess() {
		return &ExitError{Code: result.ExitCode}
	}
	return nil
}

// issueStyle maps the configured color scheme to a glamour style name.
// The values line up one to one (auto, dark, light).
func issueStyle() string {
	return string(config.Get().UI.ColorScheme)
}

// renderIssue prints one registry issue to stderr using the configured
// color scheme.
func renderIssue(id issue.Id) {
	rendered, err := issue.Get(id).Render(issueStyle())
	if err == nil {
		fmt.Fprint(os.Stderr, rendered)
	}
}
