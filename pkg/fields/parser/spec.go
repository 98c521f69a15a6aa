// Package parser provides field specification and input line parsing.
package parser

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/ukaji3/fields-go/pkg/fields/models"
)

// ErrInvalidSpec indicates the field specification does not match the grammar.
var ErrInvalidSpec = errors.New("invalid field specification")

// ParseError describes where a field specification stopped matching.
type ParseError struct {
	Input  string
	Offset int // byte offset into Input
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v %q: %s at offset %d", ErrInvalidSpec, e.Input, e.Reason, e.Offset)
}

func (e *ParseError) Unwrap() error {
	return ErrInvalidSpec
}

// ParseSpec parses a specification such as "0,2-4" and returns it normalized.
//
//	spec    := term (',' term)*
//	term    := integer | integer '-' integer
//	integer := digit+
//
// The whole input must match; trailing characters are an error.
func ParseSpec(input string) (models.Spec, error) {
	p := &specParser{input: input}
	ranges, err := p.parse()
	if err != nil {
		return nil, err
	}
	return Normalize(ranges), nil
}

// Normalize sorts ranges by lower bound and merges overlapping or adjacent ones.
// The input slice is not modified.
func Normalize(ranges models.Spec) models.Spec {
	if len(ranges) == 0 {
		return nil
	}

	sorted := make(models.Spec, len(ranges))
	copy(sorted, ranges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Lo < sorted[j].Lo
	})

	merged := sorted[:1]
	for _, r := range sorted[1:] {
		last := &merged[len(merged)-1]
		// r.Lo-1 avoids overflow of last.Hi+1 at the int limit
		if r.Lo-1 <= last.Hi {
			if r.Hi > last.Hi {
				last.Hi = r.Hi
			}
			continue
		}
		merged = append(merged, r)
	}
	return merged
}

type specParser struct {
	input string
	pos   int
}

func (p *specParser) parse() (models.Spec, error) {
	if p.input == "" {
		return nil, p.fail("empty specification")
	}

	var out models.Spec
	for {
		r, err := p.term()
		if err != nil {
			return nil, err
		}
		out = append(out, r)

		if p.eof() {
			return out, nil
		}
		if p.peek() != ',' {
			return nil, p.fail(fmt.Sprintf("unexpected %q", p.peek()))
		}
		p.pos++
	}
}

func (p *specParser) term() (models.Range, error) {
	lo, err := p.integer()
	if err != nil {
		return models.Range{}, err
	}
	if p.eof() || p.peek() != '-' {
		return models.Single(lo), nil
	}

	p.pos++
	start := p.pos
	hi, err := p.integer()
	if err != nil {
		return models.Range{}, err
	}
	if hi < lo {
		p.pos = start
		return models.Range{}, p.fail(fmt.Sprintf("range end %d is before start %d", hi, lo))
	}
	return models.Range{Lo: lo, Hi: hi}, nil
}

func (p *specParser) integer() (int, error) {
	start := p.pos
	for !p.eof() && isDigit(p.peek()) {
		p.pos++
	}
	if p.pos == start {
		if p.eof() {
			return 0, p.fail("expected digit, got end of input")
		}
		return 0, p.fail(fmt.Sprintf("expected digit, got %q", p.peek()))
	}

	n, err := strconv.Atoi(p.input[start:p.pos])
	if err != nil {
		p.pos = start
		return 0, p.fail("integer out of range")
	}
	return n, nil
}

func (p *specParser) eof() bool {
	return p.pos >= len(p.input)
}

func (p *specParser) peek() byte {
	return p.input[p.pos]
}

func (p *specParser) fail(reason string) *ParseError {
	return &ParseError{Input: p.input, Offset: p.pos, Reason: reason}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
