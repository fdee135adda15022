package core

import (
	"errors"
	"fmt"
	"io"
)

// ErrOutputClosed is returned by WriteLine when the reader on the other
// end of the output has gone away. Applets treat it as a normal stop.
var ErrOutputClosed = errors.New("output closed")

type flusher interface {
	Flush() error
}

// WriteLine writes text and a trailing newline to w in a single write.
// Buffered writers are flushed so every line reaches the consumer before
// the next one is produced.
//
// The returned error wraps ErrOutputClosed when the consumer closed its
// read end, and is the raw write error otherwise.
func WriteLine(w io.Writer, text string) error {
	buf := make([]byte, 0, len(text)+1)
	buf = append(buf, text...)
	buf = append(buf, '\n')

	_, err := w.Write(buf)
	if err == nil {
		if f, ok := w.(flusher); ok {
			err = f.Flush()
		}
	}
	if err == nil {
		return nil
	}
	if IsBrokenPipe(err) {
		return fmt.Errorf("%w: %w", ErrOutputClosed, err)
	}
	return err
}
