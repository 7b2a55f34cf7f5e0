// File: cmd/rm.go
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// rmCmd represents the rm command, removing one object via gsutil.
var rmCmd = &cobra.Command{
	Use:   "rm [gs-path]",
	Short: "Remove an object",
	Long: `Remove one object using 'gsutil rm' and report the outcome as
removed, not-found or no-output.

Examples:
  gstoolbox rm gs://my-bucket/file.txt
  gstoolbox rm gs://my-bucket/file.txt --format json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("please specify a gs:// path")
		}
		return runRm(args[0])
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRm(path string) error {
	if err := validateFormat(formatFlag); err != nil {
		return err
	}

	rm := NewRmCommand(commandRunner, bucketFromPath(path), timeoutFlag)
	status, err := rm.Execute(path)
	if err != nil {
		return err
	}
	return printResult(RemoveResult{Path: path, Status: status.String()})
}
