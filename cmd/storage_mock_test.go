// File: cmd/storage_mock_test.go
package cmd

import "time"

type mockResult struct {
	output string
	err    error
}

// mockRunner is a canned-response Runner that records every command line
// it receives. Responses queue per command line so repeated invocations
// of the same command can answer differently.
type mockRunner struct {
	calls   []string
	results map[string][]mockResult
}

func newMockRunner() *mockRunner {
	return &mockRunner{results: make(map[string][]mockResult)}
}

func (m *mockRunner) stub(command, output string, err error) {
	m.results[command] = append(m.results[command], mockResult{output: output, err: err})
}

func (m *mockRunner) Run(command string, _ time.Duration) (string, error) {
	m.calls = append(m.calls, command)
	queue := m.results[command]
	if len(queue) == 0 {
		return "", nil
	}
	next := queue[0]
	m.results[command] = queue[1:]
	return next.output, next.err
}

// fakeCredentials satisfies CredentialSource without touching the
// environment.
type fakeCredentials struct {
	email string
	err   error
}

func (f fakeCredentials) ServiceAccountEmail() (string, error) {
	return f.email, f.err
}
