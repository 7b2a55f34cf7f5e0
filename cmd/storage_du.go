// File: cmd/storage_du.go
package cmd

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// duLinePattern matches one `gsutil du` report line: a non-negative size
// in bytes followed by the object path.
var duLinePattern = regexp.MustCompile(`^(\d+)\s+(.+)$`)

// DuCommand wraps `gsutil du` and maps each reported path to its size,
// kept verbatim as a string.
type DuCommand struct {
	gcsCommand
}

func NewDuCommand(runner Runner, bucket string, timeout time.Duration) *DuCommand {
	return &DuCommand{gcsCommand{runner: runner, bucket: bucket, timeout: timeout}}
}

var _ StorageCommand[map[string]string] = (*DuCommand)(nil)

// ValidateFormat checks every line of the report against the size/path
// grammar. A single malformed line (non-numeric size, negative size, or
// missing path) invalidates the entire report.
func (c *DuCommand) ValidateFormat(output string) error {
	if output == "" {
		return &FormatError{Reason: "du output is empty", Output: output}
	}

	for _, line := range strings.Split(output, "\n") {
		matches := duLinePattern.FindStringSubmatch(strings.TrimSpace(line))
		if matches == nil {
			return &FormatError{Reason: fmt.Sprintf("invalid du output line: %q", line), Output: output}
		}

		size, err := strconv.ParseInt(matches[1], 10, 64)
		if err != nil {
			return &FormatError{Reason: fmt.Sprintf("unparsable size in line: %q", line), Output: output}
		}
		if size < 0 {
			return &FormatError{Reason: fmt.Sprintf("negative file size found: %d", size), Output: output}
		}
	}
	return nil
}

// Execute runs `gsutil du` for the given path and returns the path→size
// mapping. Fail fast: no partial map survives a malformed line.
func (c *DuCommand) Execute(path string) (map[string]string, error) {
	output, err := c.run("gsutil du " + path)
	if err != nil {
		return nil, err
	}
	if err := c.ValidateFormat(output); err != nil {
		return nil, err
	}

	sizes := make(map[string]string)
	for _, line := range strings.Split(output, "\n") {
		matches := duLinePattern.FindStringSubmatch(strings.TrimSpace(line))
		sizes[matches[2]] = matches[1]
	}
	return sizes, nil
}
