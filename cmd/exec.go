// File: cmd/exec.go
//
// The command executor. Runs one shell command line to completion with a
// bounded wait, capturing stdout and stderr merged into a single stream.
// The capture/wait runs on its own goroutine so the timed join below can
// never deadlock against subprocess buffer back-pressure; on timeout the
// subprocess is killed before the call returns.

package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"
)

// DefaultTimeout bounds a single CLI invocation unless overridden.
const DefaultTimeout = 60 * time.Second

// Runner executes one shell command line to completion and returns its
// combined, whitespace-trimmed output.
type Runner interface {
	Run(command string, timeout time.Duration) (string, error)
}

// ExecErrorKind distinguishes the two ways an invocation can fail at the
// transport layer.
type ExecErrorKind int

const (
	// ExecTimeout: output capture did not complete within the bound.
	// The subprocess has been killed; no partial output is returned.
	ExecTimeout ExecErrorKind = iota

	// ExecNonZeroExit: the process finished with a non-zero status.
	// The captured output is preserved for diagnostics.
	ExecNonZeroExit
)

// ExecError reports a failed CLI invocation. Both kinds are fatal to the
// current call; retry is the caller's decision.
type ExecError struct {
	Kind     ExecErrorKind
	Command  string
	ExitCode int
	Output   string
}

func (e *ExecError) Error() string {
	if e.Kind == ExecTimeout {
		return fmt.Sprintf("command timed out: %s", e.Command)
	}
	return fmt.Sprintf("command failed: %s\nexit code: %d\noutput: %s", e.Command, e.ExitCode, e.Output)
}

// ShellRunner runs command lines through the host shell: bash on
// Unix-like systems, cmd.exe on Windows. It holds no state; concurrent
// calls each spawn their own process.
type ShellRunner struct{}

// Run starts the command line under the host shell and waits for it to
// finish, up to timeout. A non-positive timeout falls back to
// DefaultTimeout.
func (ShellRunner) Run(command string, timeout time.Duration) (string, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	shell, shellFlag := "bash", "-c"
	if runtime.GOOS == "windows" {
		shell, shellFlag = "cmd.exe", "/c"
	}

	cmd := exec.Command(shell, shellFlag, command)

	// Merge stderr into stdout; diagnostic text and payload text
	// interleave, and callers must tolerate that.
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	if err := cmd.Start(); err != nil {
		return "", fmt.Errorf("failed to start %q: %w", command, err)
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case err := <-done:
		output := strings.TrimSpace(buf.String())
		if err != nil {
			exitCode := -1
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				exitCode = exitErr.ExitCode()
			}
			return "", &ExecError{
				Kind:     ExecNonZeroExit,
				Command:  command,
				ExitCode: exitCode,
				Output:   output,
			}
		}
		return output, nil
	case <-timer.C:
		_ = cmd.Process.Kill()
		// Reap the killed process so it cannot outlive the call.
		<-done
		return "", &ExecError{Kind: ExecTimeout, Command: command}
	}
}
