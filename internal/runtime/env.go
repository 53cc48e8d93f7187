// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"os"
	"sort"
)

// EnvToSlice converts an environment map to KEY=VALUE form, sorted by key
// for deterministic command construction.
func EnvToSlice(env map[string]string) []string {
	if len(env) == 0 {
		return nil
	}

	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]string, 0, len(env))
	for _, k := range keys {
		out = append(out, k+"="+env[k])
	}
	return out
}

// buildEnv layers extra variables on top of the host environment.
// Extras win over inherited values with the same key because exec uses the
// last occurrence of a duplicated variable.
func buildEnv(extra map[string]string) []string {
	return append(os.Environ(), EnvToSlice(extra)...)
}
