package fields

import (
	"errors"
	"fmt"

	"github.com/ukaji3/fields-go/pkg/fields/parser"
)

// ErrInvalidSpec indicates the field specification could not be parsed.
var ErrInvalidSpec = parser.ErrInvalidSpec

// ErrInvalidEncoding indicates an input line is not valid UTF-8.
var ErrInvalidEncoding = errors.New("stream did not contain valid UTF-8")

// ErrFieldOutOfRange indicates a requested field does not exist on a line.
var ErrFieldOutOfRange = errors.New("field index out of range")

// ErrWrite indicates the output could not be written.
var ErrWrite = errors.New("write failed")

// ReadError represents a failure to read an input line.
type ReadError struct {
	Line int // 1-based number of the line being read
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// NewReadError creates a new ReadError.
func NewReadError(line int, err error) *ReadError {
	return &ReadError{
		Line: line,
		Err:  err,
	}
}

// FieldRangeError represents a requested index beyond the fields of a line.
type FieldRangeError struct {
	Line  int
	Index int
	Count int
}

func (e *FieldRangeError) Error() string {
	return fmt.Sprintf("line %d: %v: index %d but the line has %d fields", e.Line, ErrFieldOutOfRange, e.Index, e.Count)
}

func (e *FieldRangeError) Unwrap() error {
	return ErrFieldOutOfRange
}

// NewFieldRangeError creates a new FieldRangeError.
func NewFieldRangeError(line, index, count int) *FieldRangeError {
	return &FieldRangeError{
		Line:  line,
		Index: index,
		Count: count,
	}
}
