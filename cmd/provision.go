// File: cmd/provision.go
//
// Bucket and object provisioning for the check subcommand. Provisioning
// goes through the same Runner as the command wrappers, so the mock
// runner covers it in tests and no cloud SDK is needed.

package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// bucketLocation is where scratch buckets are created.
const bucketLocation = "us-central1"

// StorageManager provisions the buckets and objects the toolbox
// operates on.
type StorageManager struct {
	runner  Runner
	timeout time.Duration
}

func NewStorageManager(runner Runner, timeout time.Duration) *StorageManager {
	return &StorageManager{runner: runner, timeout: timeout}
}

// CreateBucket creates a standard-class bucket in bucketLocation.
func (m *StorageManager) CreateBucket(name string) error {
	_, err := m.runner.Run(fmt.Sprintf("gsutil mb -l %s gs://%s", bucketLocation, name), m.timeout)
	if err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", name, err)
	}
	return nil
}

// Upload copies a local file into the bucket under objectName. The local
// file must exist; the check happens before the runner is invoked.
func (m *StorageManager) Upload(bucket, localPath, objectName string) error {
	if _, err := os.Stat(localPath); err != nil {
		return fmt.Errorf("local file does not exist: %s", localPath)
	}

	_, err := m.runner.Run(fmt.Sprintf("gsutil cp %s gs://%s/%s", localPath, bucket, objectName), m.timeout)
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", localPath, err)
	}
	return nil
}

// DeleteObject removes one object from the bucket.
func (m *StorageManager) DeleteObject(bucket, objectName string) error {
	_, err := m.runner.Run(fmt.Sprintf("gsutil rm gs://%s/%s", bucket, objectName), m.timeout)
	if err != nil {
		return fmt.Errorf("failed to delete gs://%s/%s: %w", bucket, objectName, err)
	}
	return nil
}

// ObjectExists reports whether the object is listable. A non-zero exit
// means the object is absent; a timeout is a real error.
func (m *StorageManager) ObjectExists(bucket, objectName string) (bool, error) {
	_, err := m.runner.Run(fmt.Sprintf("gsutil ls gs://%s/%s", bucket, objectName), m.timeout)
	if err != nil {
		var execErr *ExecError
		if errors.As(err, &execErr) && execErr.Kind == ExecNonZeroExit {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// RemoveBucket deletes the bucket and everything in it.
func (m *StorageManager) RemoveBucket(name string) error {
	_, err := m.runner.Run(fmt.Sprintf("gsutil rm -r gs://%s", name), m.timeout)
	if err != nil {
		return fmt.Errorf("failed to remove bucket %s: %w", name, err)
	}
	return nil
}
