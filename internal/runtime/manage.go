// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"djrun-cli/internal/project"

	"github.com/charmbracelet/log"
)

// ExecutionContext carries everything needed to run one management command.
type ExecutionContext struct {
	// Context cancels the subprocess when done. Nil means context.Background().
	Context context.Context
	// Project is the located Django project.
	Project *project.Project
	// Args is the management subcommand and its arguments, e.g. ["migrate", "app"].
	Args []string
	// ExtraEnv is layered on top of the inherited host environment.
	ExtraEnv map[string]string

	// Stdin/Stdout/Stderr default to the process streams when nil.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// ManageRuntime executes Django management commands as subprocesses.
type ManageRuntime struct{}

// NewManageRuntime creates a new manage.py runtime.
func NewManageRuntime() *ManageRuntime {
	return &ManageRuntime{}
}

// Name returns the runtime name.
func (r *ManageRuntime) Name() string {
	return "manage"
}

// Validate checks if a management command can be executed.
func (r *ManageRuntime) Validate(ctx *ExecutionContext) error {
	if ctx.Project == nil {
		return fmt.Errorf("no project selected for execution")
	}
	if len(ctx.Args) == 0 {
		return fmt.Errorf("no management subcommand to execute")
	}
	return nil
}

// Execute runs a management command with inherited stdio.
// The child's exit code passes through unmodified.
func (r *ManageRuntime) Execute(ctx *ExecutionContext) *Result {
	cmd, err := r.prepare(ctx)
	if err != nil {
		return NewErrorResult(1, err)
	}

	cmd.Stdin = ctx.Stdin
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	cmd.Stdout = ctx.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = ctx.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return NewExitCodeResult(ExitCode(exitErr.ExitCode()))
		}
		return NewErrorResult(1, fmt.Errorf("failed to execute management command: %w", err))
	}

	return NewSuccessResult()
}

// ExecuteCapture runs a management command and captures its output.
func (r *ManageRuntime) ExecuteCapture(ctx *ExecutionContext) *Result {
	cmd, err := r.prepare(ctx)
	if err != nil {
		return NewErrorResult(1, err)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	result := &Result{
		Output:    stdout.String(),
		ErrOutput: stderr.String(),
	}

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			result.ExitCode = ExitCode(exitErr.ExitCode())
		} else {
			result.ExitCode = 1
			result.Error = err
		}
	}

	return result
}

// prepare builds the exec.Cmd for a management command invocation.
func (r *ManageRuntime) prepare(ctx *ExecutionContext) (*exec.Cmd, error) {
	if err := r.Validate(ctx); err != nil {
		return nil, err
	}

	python, err := ctx.Project.Python()
	if err != nil {
		return nil, err
	}

	execCtx := ctx.Context
	if execCtx == nil {
		execCtx = context.Background()
	}

	args := append([]string{ctx.Project.ManagePy}, ctx.Args...)
	cmd := exec.CommandContext(execCtx, python, args...)
	cmd.Dir = ctx.Project.Root
	cmd.Env = buildEnv(ctx.ExtraEnv)

	log.Debug("executing management command",
		"python", python,
		"args", strings.Join(ctx.Args, " "),
		"dir", cmd.Dir)

	return cmd, nil
}
