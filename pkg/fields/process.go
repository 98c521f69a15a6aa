package fields

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/ukaji3/fields-go/pkg/fields/models"
	"github.com/ukaji3/fields-go/pkg/fields/output"
	"github.com/ukaji3/fields-go/pkg/fields/parser"
)

// Stats summarizes a Process run.
type Stats struct {
	// Lines is the number of input lines written to the output.
	Lines int
	// Short is the number of lines that lacked at least one requested field.
	Short int
}

// Project returns the fields selected by spec, in range order.
// Indices beyond the end of fields are left out; firstMissing reports the
// first such index in spec order, or -1 when every index was present.
func Project(fields []string, spec models.Spec) (selected []string, firstMissing int) {
	n := len(fields)
	for _, r := range spec.Clamp(n) {
		selected = append(selected, fields[r.Lo:r.Hi+1]...)
	}
	return selected, spec.FirstMissing(n)
}

// selectLine splits line number lineNo and projects it with spec.
// short reports whether a requested field was missing under the skip policy.
func selectLine(line string, lineNo int, spec models.Spec, opts Options) (selected []string, short bool, err error) {
	fields := parser.SplitLine(line)
	selected, missing := Project(fields, spec)
	if missing < 0 {
		return selected, false, nil
	}
	if opts.FailOnMissing() {
		return nil, false, NewFieldRangeError(lineNo, missing, len(fields))
	}
	opts.logger().Debug("line is missing fields", "line", lineNo, "index", missing, "fields", len(fields))
	return selected, true, nil
}

// Process reads lines from r until end of input and writes the fields
// selected by spec to w, one output line per input line.
// On error, output already produced is flushed before returning.
func Process(r io.Reader, w io.Writer, spec models.Spec, opts Options) (Stats, error) {
	log := opts.logger()
	log.Debug("processing started", "spec", spec.String(), "policy", string(opts.Policy))

	in := bufio.NewReader(r)
	out := output.NewWriter(w)
	var stats Stats

	fail := func(err error) (Stats, error) {
		if ferr := out.Flush(); ferr != nil {
			log.Debug("flush after error failed", "error", ferr)
		}
		return stats, err
	}

	for lineNo := 1; ; lineNo++ {
		// Read the next line, including a final line without a newline
		raw, err := in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fail(NewReadError(lineNo, err))
		}
		if raw == "" {
			break
		}
		if !utf8.ValidString(raw) {
			return fail(NewReadError(lineNo, ErrInvalidEncoding))
		}

		selected, short, serr := selectLine(parser.TrimNewline(raw), lineNo, spec, opts)
		if serr != nil {
			return fail(serr)
		}
		if short {
			stats.Short++
		}

		if werr := out.WriteRecord(selected); werr != nil {
			return stats, fmt.Errorf("%w: %w", ErrWrite, werr)
		}
		stats.Lines++

		if err != nil {
			break
		}
	}

	if err := out.Flush(); err != nil {
		return stats, fmt.Errorf("%w: %w", ErrWrite, err)
	}

	log.Debug("processing finished", "lines", stats.Lines, "short", stats.Short)
	return stats, nil
}
