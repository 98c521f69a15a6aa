package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// contextError prefixes an error with what the command was doing.
type contextError struct {
	Context string
	Err     error
}

func (e *contextError) Error() string {
	return fmt.Sprintf("%s: %v", e.Context, e.Err)
}

func (e *contextError) Unwrap() error {
	return e.Err
}

func withContext(context string, err error) error {
	return &contextError{Context: context, Err: err}
}

// reportError writes a one-line diagnostic. The context is colored only
// when w is a terminal.
func reportError(w io.Writer, err error) {
	red := color.New(color.FgRed, color.Bold)
	if isTerminal(w) {
		red.EnableColor()
	} else {
		red.DisableColor()
	}

	var ce *contextError
	if errors.As(err, &ce) {
		fmt.Fprintf(w, "%s: %v\n", red.Sprint(ce.Context), ce.Err)
		return
	}
	fmt.Fprintln(w, err)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
