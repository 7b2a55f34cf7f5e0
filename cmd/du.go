// File: cmd/du.go
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// duCmd represents the du command, reporting object sizes via gsutil.
var duCmd = &cobra.Command{
	Use:   "du [gs-path]",
	Short: "Report object sizes",
	Long: `Report the size of one or more objects using 'gsutil du'.
The captured report is validated line by line before printing; a single
malformed line fails the whole command.

Examples:
  gstoolbox du gs://my-bucket/file.txt
  gstoolbox du "-s gs://my-bucket" --format json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("please specify a gs:// path")
		}
		return runDu(args[0])
	},
}

func init() {
	rootCmd.AddCommand(duCmd)
}

func runDu(path string) error {
	if err := validateFormat(formatFlag); err != nil {
		return err
	}

	du := NewDuCommand(commandRunner, bucketFromPath(path), timeoutFlag)
	sizes, err := du.Execute(path)
	if err != nil {
		return err
	}
	return printResult(sizes)
}
