// SPDX-License-Identifier: MPL-2.0

package cmd

import "github.com/spf13/cobra"

// testCmd runs the project test suite.
var testCmd = &cobra.Command{
	Use:   "test [label...]",
	Short: "Run the project test suite",
	Long: `Run the test suite via 'manage.py test'.

Labels (app names, test modules, or dotted test paths) restrict the run:

  djrun test
  djrun test booking
  djrun test booking.tests.BookingModelTest`,
	Args: cobra.ArbitraryArgs,
	RunE: runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	return runManage(testArgs(args), nil)
}

// testArgs maps the test operation to its single manage.py command line.
func testArgs(args []string) []string {
	return append([]string{"test"}, args...)
}
