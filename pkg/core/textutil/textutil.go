// Package textutil provides shared helpers for text applets.
package textutil

import (
	"strconv"
	"strings"
)

// NumberSeparator sits between a field and its index when numbering is on.
// It does not follow the input delimiter.
const NumberSeparator = "\t"

// SplitFields splits line on every literal occurrence of delim.
// Adjacent delimiters yield empty fields; nothing is collapsed.
//
// An empty delimiter matches at every character boundary, including both
// ends of the line, so "ab" becomes "", "a", "b", "".
func SplitFields(line, delim string) []string {
	if delim == "" {
		fields := make([]string, 0, len(line)+2)
		fields = append(fields, "")
		fields = append(fields, strings.Split(line, "")...)
		return append(fields, "")
	}
	return strings.Split(line, delim)
}

// FormatField renders one output line for field. index is 1-based.
func FormatField(field string, index int, number bool) string {
	if !number {
		return field
	}
	return field + NumberSeparator + strconv.Itoa(index)
}
