// File: cmd/printer.go
package cmd

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v2"
)

// printResult marshals v according to the --format flag and writes it to
// stdout.
func printResult(v interface{}) error {
	var output []byte
	var err error
	if formatFlag == "json" {
		output, err = json.MarshalIndent(v, "", "  ")
	} else {
		output, err = yaml.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("output: failed to generate: %w", err)
	}

	fmt.Println(string(output))
	return nil
}
