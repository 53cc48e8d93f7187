// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"strings"
	"testing"

	"djrun-cli/internal/runtime"
)

func TestSetupRecipe(t *testing.T) {
	t.Parallel()

	t.Run("parses as a valid shell script", func(t *testing.T) {
		t.Parallel()
		r := runtime.NewVirtualRuntime()
		if err := r.Validate(&runtime.ScriptContext{Script: setupRecipe}); err != nil {
			t.Errorf("setup recipe failed validation: %v", err)
		}
	})

	t.Run("stops at the first failing step", func(t *testing.T) {
		t.Parallel()
		if !strings.HasPrefix(setupRecipe, "set -e") {
			t.Error("recipe must run under set -e so a failed venv creation aborts the install")
		}
	})

	t.Run("takes every path from the environment", func(t *testing.T) {
		t.Parallel()
		for _, v := range []string{"$DJRUN_PYTHON", "$DJRUN_VENV", "$DJRUN_VENV_PYTHON", "$DJRUN_REQUIREMENTS"} {
			if !strings.Contains(setupRecipe, `"`+v+`"`) {
				t.Errorf("recipe does not expand %s (quoted)", v)
			}
		}
	})
}
