// firstline.go provides the first-line reader shared by line-oriented applets.
package core

import (
	"bufio"
	"io"
	"strings"
)

// ReadFirstLine reads r up to the first newline or end of input.
// The newline, and a carriage return right before it, are not part of
// the returned line. ok is false when r has no data at all.
func ReadFirstLine(r io.Reader) (line string, ok bool, err error) {
	br := bufio.NewReader(r)
	line, err = br.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", false, err
	}
	if err == io.EOF && line == "" {
		return "", false, nil
	}
	if strings.HasSuffix(line, "\n") {
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
	}
	return line, true, nil
}
