// File: cmd/storage.go
//
// Shared contract for the gsutil/gcloud command wrappers. Each variant
// supplies its own output grammar and result type while sharing the same
// invocation path: build a command line, hand it to the Runner, validate
// the captured text, then parse.

package cmd

import (
	"strings"
	"time"
)

// StorageCommand is the capability set every wrapper implements:
// ValidateFormat rejects captured text that does not match the variant's
// grammar, Execute runs the underlying tool and returns the typed result.
// Validation always happens before parsing; malformed output is never
// silently accepted.
type StorageCommand[T any] interface {
	ValidateFormat(output string) error
	Execute(path string) (T, error)
}

// gcsCommand holds the immutable construction-time configuration shared
// by the wrappers. A wrapper never touches the network or filesystem
// directly; every effect goes through the Runner, which is what makes
// the family testable without a live backend.
type gcsCommand struct {
	runner  Runner
	bucket  string
	timeout time.Duration
}

func (c gcsCommand) run(commandLine string) (string, error) {
	return c.runner.Run(commandLine, c.timeout)
}

// containsAny reports whether any of the needles occurs in haystack.
func containsAny(haystack string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}

// bucketFromPath extracts the bucket component of a gs:// path.
func bucketFromPath(path string) string {
	trimmed := strings.TrimPrefix(path, "gs://")
	if i := strings.IndexByte(trimmed, '/'); i >= 0 {
		return trimmed[:i]
	}
	return trimmed
}

// Default runner instance used by the subcommands.
var commandRunner Runner = ShellRunner{}

// SetRunner allows changing the runner for tests.
func SetRunner(r Runner) {
	commandRunner = r
}
