// Package output writes selected fields as tab-separated lines.
package output

import (
	"bufio"
	"io"
)

// Delimiter separates values within one output line.
const Delimiter = '\t'

// Writer writes records as tab-joined, newline-terminated lines.
// Output is buffered; call Flush when done.
type Writer struct {
	w *bufio.Writer
}

// NewWriter returns a Writer that writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// WriteRecord writes values joined by Delimiter followed by a newline.
// An empty record produces an empty line.
func (w *Writer) WriteRecord(values []string) error {
	for i, v := range values {
		if i > 0 {
			if err := w.w.WriteByte(Delimiter); err != nil {
				return err
			}
		}
		if _, err := w.w.WriteString(v); err != nil {
			return err
		}
	}
	return w.w.WriteByte('\n')
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}
