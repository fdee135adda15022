package testutil

import (
	"bytes"
	"errors"
	"os/exec"
	"testing"
)

// Command wraps exec.Command for test helpers.
func Command(name string, args ...string) *exec.Cmd {
	return exec.Command(name, args...) // #nosec G204 -- test helper for external command
}

// RunCommand runs cmd to completion and returns stdout, stderr and the
// exit code. Failing to start the command fails the test.
func RunCommand(t *testing.T, cmd *exec.Cmd) (string, string, int) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	err := cmd.Run()
	exitCode := 0
	if err != nil {
		var ee *exec.ExitError
		if !errors.As(err, &ee) {
			t.Fatalf("run %s: %v", cmd.Path, err)
		}
		exitCode = ee.ExitCode()
	}
	return outBuf.String(), errBuf.String(), exitCode
}
