// File: cmd/flags_test.go
package cmd

import "testing"

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{name: "yaml", format: "yaml"},
		{name: "json", format: "json"},
		{name: "empty", format: "", wantErr: true},
		{name: "unknown", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFormat(tt.format)
			if tt.wantErr && err == nil {
				t.Errorf("validateFormat(%q) = nil, want error", tt.format)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("validateFormat(%q) = %v, want nil", tt.format, err)
			}
		})
	}
}

func TestBucketFromPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "object path", path: "gs://my-bucket/dir/file.txt", want: "my-bucket"},
		{name: "bucket only", path: "gs://my-bucket", want: "my-bucket"},
		{name: "no scheme", path: "my-bucket/file.txt", want: "my-bucket"},
		{name: "empty", path: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bucketFromPath(tt.path); got != tt.want {
				t.Errorf("bucketFromPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestContainsAny(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		needles  []string
		want     bool
	}{
		{name: "empty haystack and needles", haystack: "", needles: []string{}, want: false},
		{name: "marker present", haystack: "CommandException: No URLs matched: gs://b/x", needles: notFoundMarkers, want: true},
		{name: "marker absent", haystack: "Removing gs://b/x...", needles: notFoundMarkers, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := containsAny(tt.haystack, tt.needles); got != tt.want {
				t.Errorf("containsAny(%q, %v) = %v, want %v", tt.haystack, tt.needles, got, tt.want)
			}
		})
	}
}
