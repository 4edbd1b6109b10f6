// errors.go: lexical error kinds, the reporting sink, and snippet rendering
//
// The scanner itself only knows the reporting contract: a (line, message)
// pair pushed into a Reporter. This file defines the canonical error kinds
// those messages come from, a collecting Reporter implementation, and a
// renderer that turns a collected diagnostic back into a readable,
// line-numbered snippet of the offending source:
//
//	LEXICAL ERROR in demo.lox at line 3: Unterminated string.
//
//	   2 | var x = 10:
//	   3 | var y = "oops
//
// Rendering is line-granular because the report contract carries no column.
package lox

import (
	"fmt"
	"strings"

	errors "gopkg.in/src-d/go-errors.v1"
)

// Lexical error kinds. The messages are the exact strings the scanner
// reports; the kinds let callers that build errors from diagnostics
// classify them with kind.Is.
var (
	ErrUnexpectedCharacter = errors.NewKind("Unexpected character")
	ErrUnterminatedString  = errors.NewKind("Unterminated string.")
	ErrUnterminatedComment = errors.NewKind("Comment was not closed.")
)

// Reporter is the scanner's error sink. The scanner calls it once per
// detected problem and ignores anything the sink does with the report.
type Reporter func(line int, message string)

// Diagnostic is one collected report.
type Diagnostic struct {
	Line    int
	Message string
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("[line %d] %s", d.Line, d.Message)
}

// DiagnosticList collects reports in the order they were made. Its Report
// method is a Reporter; the zero value is ready to use.
type DiagnosticList struct {
	diags []Diagnostic
}

func (l *DiagnosticList) Report(line int, message string) {
	l.diags = append(l.diags, Diagnostic{Line: line, Message: message})
}

// HadError reports whether anything was collected. Downstream code uses
// this, not the token stream, to decide whether a scan was clean.
func (l *DiagnosticList) HadError() bool { return len(l.diags) > 0 }

func (l *DiagnosticList) Len() int { return len(l.diags) }

// All returns the collected diagnostics in report order.
func (l *DiagnosticList) All() []Diagnostic { return l.diags }

// FormatDiagnostic builds a line-numbered snippet for a diagnostic against
// the source it came from. name labels the source (usually a file path) and
// may be empty. Up to one line of context is shown before and after the
// offending line; out-of-range line numbers are clamped so rendering never
// fails on truncated or empty sources.
func FormatDiagnostic(src, name string, d Diagnostic) string {
	lines := strings.Split(src, "\n")
	line := d.Line
	if line < 1 {
		line = 1
	}
	if line > len(lines) {
		line = len(lines)
	}

	var b strings.Builder
	if name != "" {
		fmt.Fprintf(&b, "LEXICAL ERROR in %s at line %d: %s\n\n", name, line, d.Message)
	} else {
		fmt.Fprintf(&b, "LEXICAL ERROR at line %d: %s\n\n", line, d.Message)
	}
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lines[line-1])
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
