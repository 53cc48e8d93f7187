// SPDX-License-Identifier: MPL-2.0

// djrun is a task runner for Django projects.
package main

import cmd "djrun-cli/cmd/djrun"

func main() {
	cmd.Execute()
}
