// File: cmd/check_test.go
package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stepStatuses(report CheckReport) map[string]string {
	statuses := make(map[string]string)
	for _, step := range report.Steps {
		statuses[step.Name] = step.Status
	}
	return statuses
}

func TestExecuteCheckPasses(t *testing.T) {
	runner := newMockRunner()
	runner.stub("gsutil du gs://checkbkt/testfile1.txt", "1024 gs://checkbkt/testfile1.txt", nil)
	runner.stub("gsutil du gs://checkbkt/testfile2.txt", "2048 gs://checkbkt/testfile2.txt", nil)
	runner.stub("gsutil cat gs://checkbkt/testfile1.txt gs://checkbkt/testfile2.txt", "fixture bytes", nil)
	runner.stub("gsutil rm gs://checkbkt/testfile1.txt", "Removing gs://checkbkt/testfile1.txt...", nil)
	runner.stub("gsutil rm gs://checkbkt/testfile1.txt", "CommandException: No URLs matched: gs://checkbkt/testfile1.txt", nil)

	creds := fakeCredentials{err: errors.New("credentials not configured")}
	report := executeCheck(runner, creds, "checkbkt", "10m", false)

	require.True(t, report.Passed, "report: %+v", report)
	statuses := stepStatuses(report)
	assert.Equal(t, "ok", statuses["create-bucket"])
	assert.Equal(t, "ok", statuses["upload"])
	assert.Equal(t, "ok", statuses["du-testfile1"])
	assert.Equal(t, "ok", statuses["du-testfile2"])
	assert.Equal(t, "ok", statuses["cat"])
	assert.Equal(t, "skipped", statuses["sign-url"], "no credentials must skip, not fail")
	assert.Equal(t, "ok", statuses["rm"])
	assert.Equal(t, "ok", statuses["rm-again"])
	assert.Equal(t, "ok", statuses["teardown"])

	assert.Contains(t, runner.calls, "gsutil mb -l us-central1 gs://checkbkt")
	assert.Contains(t, runner.calls, "gsutil rm -r gs://checkbkt")
}

func TestExecuteCheckSignURL(t *testing.T) {
	runner := newMockRunner()
	runner.stub("gsutil du gs://checkbkt/testfile1.txt", "1024 gs://checkbkt/testfile1.txt", nil)
	runner.stub("gsutil du gs://checkbkt/testfile2.txt", "2048 gs://checkbkt/testfile2.txt", nil)
	runner.stub("gsutil cat gs://checkbkt/testfile1.txt gs://checkbkt/testfile2.txt", "fixture bytes", nil)
	runner.stub(
		"gcloud storage sign-url --duration=10m --impersonate-service-account=qa@proj.iam.gserviceaccount.com gs://checkbkt/testfile1.txt",
		"signed_url: https://storage.googleapis.com/checkbkt/testfile1.txt?sig=abc", nil)
	runner.stub("gsutil rm gs://checkbkt/testfile1.txt", "Removing gs://checkbkt/testfile1.txt...", nil)
	runner.stub("gsutil rm gs://checkbkt/testfile1.txt", "CommandException: No URLs matched: gs://checkbkt/testfile1.txt", nil)

	creds := fakeCredentials{email: "qa@proj.iam.gserviceaccount.com"}
	report := executeCheck(runner, creds, "checkbkt", "10m", false)

	require.True(t, report.Passed, "report: %+v", report)
	statuses := stepStatuses(report)
	assert.Equal(t, "ok", statuses["sign-url"])
}

func TestExecuteCheckSizeMismatchFails(t *testing.T) {
	runner := newMockRunner()
	runner.stub("gsutil du gs://checkbkt/testfile1.txt", "999 gs://checkbkt/testfile1.txt", nil)
	runner.stub("gsutil du gs://checkbkt/testfile2.txt", "2048 gs://checkbkt/testfile2.txt", nil)
	runner.stub("gsutil cat gs://checkbkt/testfile1.txt gs://checkbkt/testfile2.txt", "fixture bytes", nil)
	runner.stub("gsutil rm gs://checkbkt/testfile1.txt", "Removing gs://checkbkt/testfile1.txt...", nil)
	runner.stub("gsutil rm gs://checkbkt/testfile1.txt", "CommandException: No URLs matched: gs://checkbkt/testfile1.txt", nil)

	report := executeCheck(runner, fakeCredentials{err: errors.New("unset")}, "checkbkt", "10m", false)

	assert.False(t, report.Passed)
	assert.Equal(t, "failed", stepStatuses(report)["du-testfile1"])
}

func TestExecuteCheckBucketCreationFailureStopsEarly(t *testing.T) {
	runner := newMockRunner()
	runner.stub("gsutil mb -l us-central1 gs://checkbkt",
		"", &ExecError{Kind: ExecNonZeroExit, Command: "gsutil mb -l us-central1 gs://checkbkt", ExitCode: 1})

	report := executeCheck(runner, fakeCredentials{err: errors.New("unset")}, "checkbkt", "10m", false)

	assert.False(t, report.Passed)
	require.Len(t, report.Steps, 1)
	assert.Equal(t, "create-bucket", report.Steps[0].Name)
	assert.Equal(t, "failed", report.Steps[0].Status)
	assert.Len(t, runner.calls, 1, "nothing runs after bucket creation fails")
}

func TestExecuteCheckKeepBucketSkipsTeardown(t *testing.T) {
	runner := newMockRunner()
	runner.stub("gsutil du gs://checkbkt/testfile1.txt", "1024 gs://checkbkt/testfile1.txt", nil)
	runner.stub("gsutil du gs://checkbkt/testfile2.txt", "2048 gs://checkbkt/testfile2.txt", nil)
	runner.stub("gsutil cat gs://checkbkt/testfile1.txt gs://checkbkt/testfile2.txt", "fixture bytes", nil)
	runner.stub("gsutil rm gs://checkbkt/testfile1.txt", "Removing gs://checkbkt/testfile1.txt...", nil)
	runner.stub("gsutil rm gs://checkbkt/testfile1.txt", "CommandException: No URLs matched: gs://checkbkt/testfile1.txt", nil)

	report := executeCheck(runner, fakeCredentials{err: errors.New("unset")}, "checkbkt", "10m", true)

	require.True(t, report.Passed, "report: %+v", report)
	assert.Equal(t, "skipped", stepStatuses(report)["teardown"])
	assert.NotContains(t, runner.calls, "gsutil rm -r gs://checkbkt")
}
