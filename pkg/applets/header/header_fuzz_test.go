package header_test

import (
	"strings"
	"testing"

	"github.com/rcarmo/go-header/pkg/applets/header"
	"github.com/rcarmo/go-header/pkg/core"
	"github.com/rcarmo/go-header/pkg/testutil"
)

func FuzzHeader(f *testing.F) {
	f.Add([]byte("field1\tfield2\tfield3\n"), ",")
	f.Add([]byte(""), "\t")
	f.Add([]byte("a,,b\r\nrest"), ",")
	if testing.Short() {
		f.Skip("fuzzing skipped in short mode")
	}
	f.Fuzz(func(t *testing.T, data []byte, delim string) {
		if delim == "" || strings.Contains(delim, "\n") {
			t.Skip()
		}
		data = testutil.ClampBytes(data, testutil.MaxFuzzBytes)
		files := map[string]string{
			"input.txt": string(data),
		}
		out, errOut, code := testutil.FuzzRun(t, header.Run, []string{"-d", delim, "input.txt"}, "", files)
		if code != core.ExitSuccess {
			t.Fatalf("exit code %d, stderr %q", code, errOut)
		}

		line, ok, err := core.ReadFirstLine(strings.NewReader(string(data)))
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			testutil.AssertEmpty(t, "stdout", out)
			return
		}
		want := strings.Count(line, delim) + 1
		if got := strings.Count(out, "\n"); got != want {
			t.Fatalf("%q on %q: %d lines, want %d", line, delim, got, want)
		}
	})
}
