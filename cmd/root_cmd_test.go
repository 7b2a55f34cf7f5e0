// File: cmd/root_cmd_test.go
package cmd

import (
	"strings"
	"testing"
)

func TestRootSubcommands(t *testing.T) {
	runner := newMockRunner()
	runner.stub("gsutil du gs://b", "1024 gs://b/testfile1.txt", nil)
	runner.stub("gsutil cat gs://b/file.txt", "content", nil)
	runner.stub("gsutil rm gs://b/file.txt", "Removing gs://b/file.txt...", nil)

	// Store original values
	origRunner := commandRunner
	origFormat := formatFlag

	// Restore original values after test
	defer func() {
		SetRunner(origRunner)
		formatFlag = origFormat
	}()

	SetRunner(runner)

	tests := []struct {
		name        string
		args        []string
		expectError bool
		errorMsg    string
	}{
		{
			name:        "du without args",
			args:        []string{"du"},
			expectError: true,
			errorMsg:    "please specify a gs:// path",
		},
		{
			name:        "du with invalid format",
			args:        []string{"du", "--format", "invalid", "gs://b"},
			expectError: true,
			errorMsg:    "invalid format",
		},
		{
			name: "du with stubbed report",
			args: []string{"du", "--format", "yaml", "gs://b"},
		},
		{
			name: "cat with stubbed content",
			args: []string{"cat", "gs://b/file.txt"},
		},
		{
			name:        "cat without args",
			args:        []string{"cat"},
			expectError: true,
			errorMsg:    "please specify at least one gs:// path",
		},
		{
			name: "rm with stubbed removal",
			args: []string{"rm", "--format", "json", "gs://b/file.txt"},
		},
		{
			name:        "rm without args",
			args:        []string{"rm"},
			expectError: true,
			errorMsg:    "please specify a gs:// path",
		},
		{
			name:        "sign-url without args",
			args:        []string{"sign-url"},
			expectError: true,
			errorMsg:    "please specify a gs:// path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rootCmd.SetArgs(tt.args)
			err := rootCmd.Execute()

			if tt.expectError {
				if err == nil {
					t.Error("expected error but got none")
				} else if tt.errorMsg != "" && !strings.Contains(err.Error(), tt.errorMsg) {
					t.Errorf("error message = %q, want to contain %q", err.Error(), tt.errorMsg)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
