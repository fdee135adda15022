package textutil_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/rcarmo/go-header/pkg/core/textutil"
)

func TestSplitFields(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		delim string
		want  []string
	}{
		{name: "tab", line: "field1\tfield2\tfield3", delim: "\t", want: []string{"field1", "field2", "field3"}},
		{name: "empty_middle", line: "a,,b", delim: ",", want: []string{"a", "", "b"}},
		{name: "edges", line: ",a,", delim: ",", want: []string{"", "a", ""}},
		{name: "no_delimiter", line: "abc", delim: ",", want: []string{"abc"}},
		{name: "empty_line", line: "", delim: ",", want: []string{""}},
		{name: "multi_char", line: "a<>b<><>c", delim: "<>", want: []string{"a", "b", "", "c"}},
		{name: "overlapping", line: "aaa", delim: "aa", want: []string{"", "a"}},
		{name: "empty_delimiter", line: "ab", delim: "", want: []string{"", "a", "b", ""}},
		{name: "empty_delimiter_empty_line", line: "", delim: "", want: []string{"", ""}},
		{name: "empty_delimiter_utf8", line: "é!", delim: "", want: []string{"", "é", "!", ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := textutil.SplitFields(tt.line, tt.delim)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SplitFields(%q, %q) mismatch (-want +got):\n%s", tt.line, tt.delim, diff)
			}
		})
	}
}

func TestFormatField(t *testing.T) {
	tests := []struct {
		field  string
		index  int
		number bool
		want   string
	}{
		{"field1", 1, false, "field1"},
		{"field1", 1, true, "field1\t1"},
		{"", 12, true, "\t12"},
		{"a,b", 3, true, "a,b\t3"},
	}
	for _, tt := range tests {
		if got := textutil.FormatField(tt.field, tt.index, tt.number); got != tt.want {
			t.Errorf("FormatField(%q, %d, %v) = %q, want %q", tt.field, tt.index, tt.number, got, tt.want)
		}
	}
}

func FuzzSplitFields(f *testing.F) {
	f.Add("a,,b", ",")
	f.Add("field1\tfield2", "\t")
	f.Add("", "")
	f.Fuzz(func(t *testing.T, line, delim string) {
		fields := textutil.SplitFields(line, delim)
		if got, want := len(fields), strings.Count(line, delim)+1; got != want {
			t.Fatalf("SplitFields(%q, %q): %d fields, want %d", line, delim, got, want)
		}
		if delim != "" && strings.Join(fields, delim) != line {
			t.Fatalf("SplitFields(%q, %q) does not join back", line, delim)
		}
	})
}
