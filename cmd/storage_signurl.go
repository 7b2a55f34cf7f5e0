// File: cmd/storage_signurl.go
package cmd

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// signedURLPattern locates the signed link inside the full captured
// text; the first match in scan order wins.
var signedURLPattern = regexp.MustCompile(`https://storage\.googleapis\.com/\S+`)

// SignURLCommand wraps `gcloud storage sign-url`, impersonating the
// service account supplied by the injected credential source. The
// signing duration is fixed at construction.
type SignURLCommand struct {
	gcsCommand
	duration    string
	credentials CredentialSource
}

func NewSignURLCommand(runner Runner, bucket, duration string, credentials CredentialSource, timeout time.Duration) *SignURLCommand {
	return &SignURLCommand{
		gcsCommand:  gcsCommand{runner: runner, bucket: bucket, timeout: timeout},
		duration:    duration,
		credentials: credentials,
	}
}

var _ StorageCommand[string] = (*SignURLCommand)(nil)

// ValidateFormat requires non-empty output containing a signed URL.
func (c *SignURLCommand) ValidateFormat(output string) error {
	if output == "" {
		return &FormatError{Reason: "sign-url output is empty", Output: output}
	}
	if !signedURLPattern.MatchString(output) {
		return &FormatError{Reason: "no signed URL found in output", Output: output}
	}
	return nil
}

// Execute generates a signed URL for the given object path. The identity
// to impersonate is resolved first; a credential failure surfaces before
// the runner is invoked.
func (c *SignURLCommand) Execute(path string) (string, error) {
	email, err := c.credentials.ServiceAccountEmail()
	if err != nil {
		return "", err
	}

	command := fmt.Sprintf(
		"gcloud storage sign-url --duration=%s --impersonate-service-account=%s %s",
		c.duration, email, path,
	)

	output, err := c.run(command)
	if err != nil {
		return "", err
	}
	if err := c.ValidateFormat(output); err != nil {
		return "", err
	}
	return strings.TrimSpace(signedURLPattern.FindString(output)), nil
}
