// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// File: root.go
// Package: cmd
//
// Description:
// This file contains the entry point and base configuration for the `gstoolbox` CLI.
// It defines the root command (`rootCmd`) that acts as the main command for the
// application and manages subcommands like `du`, `cat`, `rm`, `sign-url` and
// `check`. The root command also handles application-wide configuration and flags.
//
// Features:
// - Serves as the primary entry point for the `gstoolbox` CLI application.
// - Defines global flags and configurations for the application.
// - Organizes and executes subcommands, such as `du` and `check`.
//
// Usage:
// - Run the `gstoolbox` command without any arguments to see the help message:
//   `./gstoolbox`
// - Add subcommands like `du` to extend functionality.

package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
// This command provides a help message and serves as the entry point for
// executing subcommands within the `gstoolbox` CLI.
var rootCmd = &cobra.Command{
	Use:   "gstoolbox",
	Short: "A toolbox for Google Cloud Storage CLI diagnostics",
	Long: `The gstoolbox CLI drives Google Cloud Storage command-line
operations (gsutil du/cat/rm, gcloud storage sign-url) through a
timed shell executor and validates the captured output before
presenting it in JSON or YAML format.

Examples:
  - Display help for the root command:
    ./gstoolbox --help

  - Report object sizes:
    ./gstoolbox du gs://my-bucket --format json

  - Run the end-to-end self test against a scratch bucket:
    ./gstoolbox check`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This function is called by main.main() to start the application.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// init initializes the root command by defining global flags and configurations.
// Subcommands such as `du` are added to the root command during this phase.
func init() {
	initSharedFlags()
}
