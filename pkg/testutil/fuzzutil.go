package testutil

import (
	"os"
	"sync"
	"testing"
)

const MaxFuzzBytes = 2048

var cwdMu sync.Mutex

func ClampBytes(data []byte, max int) []byte {
	if len(data) > max {
		return data[:max]
	}
	return data
}

// RunAppletInDir runs an applet with dir as the working directory.
// Returns stdout, stderr and the exit code.
func RunAppletInDir(t *testing.T, run RunApplet, args []string, input string, dir string) (string, string, int) {
	t.Helper()
	cwdMu.Lock()
	defer cwdMu.Unlock()

	oldDir, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.Chdir(oldDir) }()

	stdio, out, errBuf := CaptureStdio(input)
	code := run(stdio, args)
	return out.String(), errBuf.String(), code
}

// FuzzRun writes files into a fresh directory and runs the applet there.
func FuzzRun(t *testing.T, run RunApplet, args []string, input string, files map[string]string) (string, string, int) {
	t.Helper()
	dir := TempDirWithFiles(t, files)
	return RunAppletInDir(t, run, args, input, dir)
}
