// File: cmd/cat.go
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// catCmd represents the cat command, dumping object content via gsutil.
var catCmd = &cobra.Command{
	Use:   "cat [gs-path]...",
	Short: "Print object content",
	Long: `Print the content of one or more objects using 'gsutil cat'.
Contents are concatenated in the order the paths are given.

Examples:
  gstoolbox cat gs://my-bucket/file.txt
  gstoolbox cat gs://my-bucket/a.txt gs://my-bucket/b.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("please specify at least one gs:// path")
		}
		return runCat(args)
	},
}

func init() {
	rootCmd.AddCommand(catCmd)
}

func runCat(paths []string) error {
	cat := NewCatCommand(commandRunner, bucketFromPath(paths[0]), timeoutFlag)
	content, err := cat.ExecuteAll(paths...)
	if err != nil {
		return err
	}

	// Object content is raw text; the --format flag does not apply here.
	fmt.Println(content)
	return nil
}
