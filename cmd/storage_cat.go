// File: cmd/storage_cat.go
package cmd

import (
	"fmt"
	"strings"
	"time"
)

// CatCommand wraps `gsutil cat`, returning the content of one or more
// objects. The underlying tool writes contents in argument order, so the
// returned text concatenates in exactly the order the paths were given.
type CatCommand struct {
	gcsCommand
}

func NewCatCommand(runner Runner, bucket string, timeout time.Duration) *CatCommand {
	return &CatCommand{gcsCommand{runner: runner, bucket: bucket, timeout: timeout}}
}

var _ StorageCommand[string] = (*CatCommand)(nil)

// ValidateFormat rejects empty output; object content is otherwise
// arbitrary text.
func (c *CatCommand) ValidateFormat(output string) error {
	if output == "" {
		return &FormatError{Reason: "cat output is empty", Output: output}
	}
	return nil
}

// Execute retrieves the content of a single object.
func (c *CatCommand) Execute(path string) (string, error) {
	return c.ExecuteAll(path)
}

// ExecuteAll retrieves and concatenates the content of several objects.
// At least one path must be supplied; the check happens before the
// runner is invoked.
func (c *CatCommand) ExecuteAll(paths ...string) (string, error) {
	if len(paths) == 0 {
		return "", fmt.Errorf("at least one object path must be provided")
	}

	output, err := c.run("gsutil cat " + strings.Join(paths, " "))
	if err != nil {
		return "", err
	}
	if err := c.ValidateFormat(output); err != nil {
		return "", err
	}
	return output, nil
}
