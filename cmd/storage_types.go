// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// File: cmd/storage_types.go
// Purpose: Type definitions for the storage command wrappers: the format
// failure type, the tri-state removal status, and the result structures
// printed by the subcommands.

package cmd

import "fmt"

// FormatError reports captured CLI text that does not match the expected
// grammar of the command that produced it. It is always fatal to the
// current call and never downgraded to an empty result.
type FormatError struct {
	Reason string
	Output string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid output format: %s", e.Reason)
}

// RemoveStatus is the tri-state outcome of a removal.
//
// A transport failure during removal is folded into RemoveNotFound: an
// unreachable object is treated as nothing to remove. This is a lossy
// simplification: it conflates "truly absent" with "could not
// determine". Callers that need to distinguish an outage must probe
// separately.
type RemoveStatus int

const (
	// RemoveNoOutput: the command finished without producing any output.
	RemoveNoOutput RemoveStatus = iota

	// RemoveRemoved: the command produced output with no not-found marker.
	RemoveRemoved

	// RemoveNotFound: the output carried an explicit not-found marker, or
	// the invocation itself failed.
	RemoveNotFound
)

func (s RemoveStatus) String() string {
	switch s {
	case RemoveNoOutput:
		return "no-output"
	case RemoveRemoved:
		return "removed"
	case RemoveNotFound:
		return "not-found"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// RemoveResult is the printable outcome of the rm subcommand.
type RemoveResult struct {
	Path   string `json:"path" yaml:"path"`
	Status string `json:"status" yaml:"status"`
}

// SignURLResult is the printable outcome of the sign-url subcommand.
type SignURLResult struct {
	Path     string `json:"path" yaml:"path"`
	Duration string `json:"duration" yaml:"duration"`
	URL      string `json:"url" yaml:"url"`
}

// CheckStep records one probe of the end-to-end check.
type CheckStep struct {
	Name   string `json:"name" yaml:"name"`
	Status string `json:"status" yaml:"status"`
	Detail string `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// CheckReport is the aggregate result of the check subcommand.
type CheckReport struct {
	Bucket    string      `json:"bucket" yaml:"bucket"`
	Timestamp string      `json:"timestamp" yaml:"timestamp"`
	Steps     []CheckStep `json:"steps" yaml:"steps"`
	Passed    bool        `json:"passed" yaml:"passed"`
}
