// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for djrun.
//
// This package implements the Cobra command hierarchy for the djrun CLI:
// one subcommand per Django project operation (setup, run, migrate,
// makemigrations, superuser, createuser, createapp, test, clean, shell,
// collectstatic) plus config management and shell completion.
package cmd
