// SPDX-License-Identifier: MPL-2.0

// Package tui provides the interactive prompt used by djrun commands that
// collect input before invoking manage.py (createuser, createapp).
//
// On a terminal, prompts are rendered with bubbletea/bubbles text inputs
// (password mode hides the echo). When stdin is not a terminal, prompts fall
// back to reading lines from stdin so the commands stay scriptable.
package tui
