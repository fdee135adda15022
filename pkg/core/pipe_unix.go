//go:build unix

package core

import (
	"errors"
	"io"
	"os/signal"

	"golang.org/x/sys/unix"
)

// IsBrokenPipe reports whether err means the reading side of the output
// has been closed.
func IsBrokenPipe(err error) bool {
	return errors.Is(err, unix.EPIPE) || errors.Is(err, io.ErrClosedPipe)
}

// IgnoreSIGPIPE stops the runtime from killing the process when stdout is
// a closed pipe. Writes then fail with EPIPE, which IsBrokenPipe detects.
func IgnoreSIGPIPE() {
	signal.Ignore(unix.SIGPIPE)
}
