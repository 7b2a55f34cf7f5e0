// File: cmd/signurl.go
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var signDuration string

// signURLCmd represents the sign-url command, generating a signed link
// via 'gcloud storage sign-url' with service-account impersonation.
var signURLCmd = &cobra.Command{
	Use:   "sign-url [gs-path]",
	Short: "Generate a signed URL for an object",
	Long: `Generate a time-limited signed URL for one object using
'gcloud storage sign-url'. The service account to impersonate is read
from the JSON key file named by GOOGLE_APPLICATION_CREDENTIALS.

Examples:
  gstoolbox sign-url gs://my-bucket/file.txt
  gstoolbox sign-url --duration=1h gs://my-bucket/file.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("please specify a gs:// path")
		}
		return runSignURL(args[0])
	},
}

func init() {
	rootCmd.AddCommand(signURLCmd)
	signURLCmd.Flags().StringVar(&signDuration, "duration", "10m", "Validity window for the signed URL")
}

func runSignURL(path string) error {
	if err := validateFormat(formatFlag); err != nil {
		return err
	}

	sign := NewSignURLCommand(commandRunner, bucketFromPath(path), signDuration, EnvCredentialSource{}, timeoutFlag)
	url, err := sign.Execute(path)
	if err != nil {
		return err
	}
	return printResult(SignURLResult{Path: path, Duration: signDuration, URL: url})
}
