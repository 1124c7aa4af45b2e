/*
File    : ponylex/diag/diag.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package diag is the lexer's diagnostic sink contract: every lexical error
is reported through a Sink rather than via panic or an out-of-band error
return, so scanning can continue after a bad token. The default
terminal-facing Sink colorizes its output with github.com/fatih/color, the
same library the teacher's main and repl packages use for their error and
status lines.
*/
package diag

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Diagnostic is one reported error: the origin it came from, its 1-based
// line and column, and the formatted message.
type Diagnostic struct {
	Origin  string
	Line    int
	Column  int
	Message string
}

// String renders a Diagnostic as "origin:line:col: message".
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d:%d: %s", d.Origin, d.Line, d.Column, d.Message)
}

// Sink is the narrow contract the lexer depends on. Errorf formats its
// arguments the way fmt.Sprintf would and reports the result at the given
// position.
type Sink interface {
	Errorf(origin string, line, column int, format string, args ...any)
}

// TermSink writes diagnostics to w, colorized in red, matching the
// teacher's redColor convention for error output.
type TermSink struct {
	w     io.Writer
	color *color.Color
}

// NewTermSink creates a Sink that writes to w. If colorize is false the
// output is the same text with no ANSI codes, useful when w isn't a
// terminal (redirected output, CI logs).
func NewTermSink(w io.Writer, colorize bool) *TermSink {
	c := color.New(color.FgRed)
	if !colorize {
		c.DisableColor()
	}
	return &TermSink{w: w, color: c}
}

// Errorf implements Sink.
func (s *TermSink) Errorf(origin string, line, column int, format string, args ...any) {
	d := Diagnostic{Origin: origin, Line: line, Column: column, Message: fmt.Sprintf(format, args...)}
	s.color.Fprintln(s.w, d.String())
}

// CollectingSink appends every reported Diagnostic to Diagnostics instead
// of writing anywhere; tests use it to assert on exact messages and
// positions without capturing stdout.
type CollectingSink struct {
	Diagnostics []Diagnostic
}

// Errorf implements Sink.
func (s *CollectingSink) Errorf(origin string, line, column int, format string, args ...any) {
	s.Diagnostics = append(s.Diagnostics, Diagnostic{
		Origin:  origin,
		Line:    line,
		Column:  column,
		Message: fmt.Sprintf(format, args...),
	})
}

// NopSink discards every diagnostic. Useful when a caller only wants the
// (possibly erroneous) token stream and not error text.
type NopSink struct{}

// Errorf implements Sink.
func (NopSink) Errorf(string, int, int, string, ...any) {}
