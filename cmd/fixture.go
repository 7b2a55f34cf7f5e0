// File: cmd/fixture.go
package cmd

import (
	"os"
	"path/filepath"
)

// createFixtureFile writes a file of sizeInBytes zero bytes, used by the
// check subcommand to exercise the du size report.
func createFixtureFile(path string, sizeInBytes int) error {
	return os.WriteFile(path, make([]byte, sizeInBytes), 0644)
}

// createFixtureContent writes content to path, creating parent
// directories as needed.
func createFixtureContent(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0644)
}
