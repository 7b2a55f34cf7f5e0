// File: cmd/credentials.go
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
)

// credentialsEnvVar names the service-account JSON key file used for URL
// signing.
const credentialsEnvVar = "GOOGLE_APPLICATION_CREDENTIALS"

// CredentialSource supplies the service-account identity to impersonate
// when signing URLs. Injected into SignURLCommand so tests can
// substitute a fake.
type CredentialSource interface {
	ServiceAccountEmail() (string, error)
}

// EnvCredentialSource reads the key file named by
// GOOGLE_APPLICATION_CREDENTIALS and extracts its client_email field.
type EnvCredentialSource struct{}

func (EnvCredentialSource) ServiceAccountEmail() (string, error) {
	keyPath := os.Getenv(credentialsEnvVar)
	if keyPath == "" {
		return "", fmt.Errorf("%s: environment variable not set", credentialsEnvVar)
	}
	return serviceAccountEmailFromFile(keyPath)
}

// serviceAccountEmailFromFile parses a service-account key file and
// returns its client_email.
func serviceAccountEmailFromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("credentials: failed to read key file: %w", err)
	}

	var key struct {
		ClientEmail string `json:"client_email"`
	}
	if err := json.Unmarshal(data, &key); err != nil {
		return "", fmt.Errorf("credentials: failed to parse key file %s: %w", path, err)
	}
	if key.ClientEmail == "" {
		return "", fmt.Errorf("credentials: client_email not found in %s", path)
	}
	return key.ClientEmail, nil
}
