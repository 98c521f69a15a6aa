package parser

import (
	"strings"
)

// SplitLine splits a line into whitespace-delimited fields.
// Runs of whitespace separate fields; leading and trailing whitespace yields no field.
func SplitLine(line string) []string {
	return strings.Fields(line)
}

// TrimNewline strips a trailing "\n" or "\r\n" from s.
// A lone "\r" is kept.
func TrimNewline(s string) string {
	if !strings.HasSuffix(s, "\n") {
		return s
	}
	s = s[:len(s)-1]
	return strings.TrimSuffix(s, "\r")
}
