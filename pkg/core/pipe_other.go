//go:build !unix

package core

import (
	"errors"
	"io"
	"syscall"
)

// IsBrokenPipe reports whether err means the reading side of the output
// has been closed.
func IsBrokenPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe)
}

// IgnoreSIGPIPE is a no-op on platforms without SIGPIPE.
func IgnoreSIGPIPE() {}
