// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// ScriptContext carries everything needed to run one shell recipe.
type ScriptContext struct {
	// Context cancels the script when done. Nil means context.Background().
	Context context.Context
	// Script is the POSIX shell recipe to run.
	Script string
	// Dir is the working directory for the script.
	Dir string
	// ExtraEnv is layered on top of the inherited host environment.
	ExtraEnv map[string]string

	// Stdin/Stdout/Stderr default to the process streams when nil.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// VirtualRuntime executes shell recipes using the embedded mvdan/sh
// interpreter. It needs no shell on the host, so bootstrap recipes behave
// the same on every platform.
type VirtualRuntime struct{}

// NewVirtualRuntime creates a new virtual runtime.
func NewVirtualRuntime() *VirtualRuntime {
	return &VirtualRuntime{}
}

// Name returns the runtime name.
func (r *VirtualRuntime) Name() string {
	return "virtual"
}

// Validate checks if a recipe can be executed, including a syntax parse.
func (r *VirtualRuntime) Validate(ctx *ScriptContext) error {
	if ctx.Script == "" {
		return fmt.Errorf("script has no content to execute")
	}
	if _, err := syntax.NewParser().Parse(strings.NewReader(ctx.Script), "script"); err != nil {
		return fmt.Errorf("script syntax error: %w", err)
	}
	return nil
}

// Execute runs a recipe in the embedded shell.
// A non-zero script exit maps to the Result's ExitCode, not an error.
func (r *VirtualRuntime) Execute(ctx *ScriptContext) *Result {
	prog, err := syntax.NewParser().Parse(strings.NewReader(ctx.Script), "script")
	if err != nil {
		return NewErrorResult(1, fmt.Errorf("failed to parse script: %w", err))
	}

	stdin := ctx.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	stdout := ctx.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := ctx.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	opts := []interp.RunnerOption{
		interp.Env(expand.ListEnviron(buildEnv(ctx.ExtraEnv)...)),
		interp.StdIO(stdin, stdout, stderr),
	}
	if ctx.Dir != "" {
		opts = append(opts, interp.Dir(ctx.Dir))
	}

	runner, err := interp.New(opts...)
	if err != nil {
		return NewErrorResult(1, fmt.Errorf("failed to create interpreter: %w", err))
	}

	execCtx := ctx.Context
	if execCtx == nil {
		execCtx = context.Background()
	}

	if err := runner.Run(execCtx, prog); err != nil {
		var exitStatus interp.ExitStatus
		if errors.As(err, &exitStatus) {
			return NewExitCodeResult(ExitCode(exitStatus))
		}
		return NewErrorResult(1, fmt.Errorf("script execution failed: %w", err))
	}

	return NewSuccessResult()
}
