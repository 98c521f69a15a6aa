// Package models defines data structures for field selection.
package models

import (
	"strconv"
	"strings"
)

// Range represents inclusive field index bounds.
type Range struct {
	// Lo is the first selected field (0-based).
	Lo int `json:"lo"`
	// Hi is the last selected field (0-based, inclusive).
	Hi int `json:"hi"`
}

// Single returns the range selecting only field n.
func Single(n int) Range {
	return Range{Lo: n, Hi: n}
}

// String renders the range as "n" or "lo-hi".
func (r Range) String() string {
	if r.Lo == r.Hi {
		return strconv.Itoa(r.Lo)
	}
	return strconv.Itoa(r.Lo) + "-" + strconv.Itoa(r.Hi)
}

// Spec is an ordered list of ranges describing which fields to emit.
// A normalized Spec is sorted by Lo and its ranges neither overlap nor touch.
type Spec []Range

// String renders the spec in the same syntax it is parsed from.
func (s Spec) String() string {
	parts := make([]string, len(s))
	for i, r := range s {
		parts[i] = r.String()
	}
	return strings.Join(parts, ",")
}

// Clamp restricts the spec to the indices of a line with n fields.
// Ranges starting at or after n are dropped; the rest end no later than n-1.
func (s Spec) Clamp(n int) Spec {
	var out Spec
	for _, r := range s {
		if r.Lo >= n {
			continue
		}
		if r.Hi >= n {
			r.Hi = n - 1
		}
		out = append(out, r)
	}
	return out
}

// FirstMissing returns the first index, in spec order, that a line with n
// fields does not have, or -1 when every selected index exists.
func (s Spec) FirstMissing(n int) int {
	for _, r := range s {
		if r.Hi < n {
			continue
		}
		if r.Lo >= n {
			return r.Lo
		}
		return n
	}
	return -1
}
