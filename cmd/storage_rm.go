// File: cmd/storage_rm.go
package cmd

import "time"

// notFoundMarkers are the gsutil phrases that identify a missing object.
var notFoundMarkers = []string{"No URLs matched", "does not exist"}

// RmCommand wraps `gsutil rm` and classifies the outcome into a
// RemoveStatus.
type RmCommand struct {
	gcsCommand
}

func NewRmCommand(runner Runner, bucket string, timeout time.Duration) *RmCommand {
	return &RmCommand{gcsCommand{runner: runner, bucket: bucket, timeout: timeout}}
}

var _ StorageCommand[RemoveStatus] = (*RmCommand)(nil)

// ValidateFormat accepts every output shape: rm's grammar is "any text",
// and each shape maps to a RemoveStatus rather than an error.
func (c *RmCommand) ValidateFormat(output string) error {
	return nil
}

// Execute removes one object and classifies the outcome. An executor
// failure is folded into RemoveNotFound (see RemoveStatus).
func (c *RmCommand) Execute(path string) (RemoveStatus, error) {
	output, err := c.run("gsutil rm " + path)
	if err != nil {
		return RemoveNotFound, nil
	}
	if err := c.ValidateFormat(output); err != nil {
		return RemoveNoOutput, err
	}

	switch {
	case containsAny(output, notFoundMarkers):
		return RemoveNotFound, nil
	case output == "":
		return RemoveNoOutput, nil
	default:
		return RemoveRemoved, nil
	}
}
