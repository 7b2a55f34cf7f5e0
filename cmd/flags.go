// File: cmd/flags.go
package cmd

import (
	"fmt"
	"time"
)

// Shared command flags
var (
	formatFlag  string        // Common flag for output format (yaml/json)
	timeoutFlag time.Duration // Upper bound on any single CLI invocation
)

// validateFormat checks if the provided format is either "json" or "yaml"
func validateFormat(format string) error {
	if format != "json" && format != "yaml" {
		return fmt.Errorf("invalid format: %s. Valid options are 'json' or 'yaml'", format)
	}
	return nil
}

// initSharedFlags initializes flags that are shared across multiple commands
func initSharedFlags() {
	// Add shared flags to the root command so they're available to all subcommands
	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", "yaml", "Output format: yaml or json")
	rootCmd.PersistentFlags().DurationVar(&timeoutFlag, "timeout", DefaultTimeout, "Maximum wait for a single gsutil/gcloud invocation")
}
