// SPDX-License-Identifier: MPL-2.0

// Package runtime executes external commands for djrun.
//
// Two runtime implementations are available:
//   - manage: runs Django management commands as `python manage.py ...`
//     subprocesses with inherited stdio
//   - virtual: runs bootstrap shell recipes through an embedded shell
//     interpreter (mvdan/sh), so setup works on hosts without a usable shell
//
// Both report results through Result/ExitCode. Subprocess exit codes pass
// through unmodified; infrastructure failures (interpreter missing, spawn
// failure) get exit code 1 plus an error. djrun never retries or reinterprets
// a child's failure.
package runtime
