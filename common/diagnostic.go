package common

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

type Severity uint8

const (
	SeverityError Severity = iota + 1
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		panic("unreachable")
	}
}

// Diagnostic is a message tied to a source range.
type Diagnostic struct {
	Severity Severity
	Message  string
	Span     Span
}

func NewDiagnostic(severity Severity, message string, span Span) Diagnostic {
	return Diagnostic{
		Severity: severity,
		Message:  message,
		Span:     span,
	}
}

func ErrorDiag(msg string, span Span) Diagnostic {
	return NewDiagnostic(SeverityError, msg, span)
}

func WarningDiag(msg string, span Span) Diagnostic {
	return NewDiagnostic(SeverityWarning, msg, span)
}

var (
	errorLabel   = color.New(color.FgRed, color.Bold)
	warningLabel = color.New(color.FgYellow, color.Bold)
)

// AutoColor disables colored rendering when stderr is not a terminal.
func AutoColor() {
	fd := os.Stderr.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		color.NoColor = true
	}
}

// Render writes the diagnostic in the compiler's standard textual form.
func (d Diagnostic) Render(w io.Writer) {
	label := errorLabel
	if d.Severity == SeverityWarning {
		label = warningLabel
	}
	fmt.Fprintf(w, "%s: %s\n", label.Sprint(d.Severity.String()), d.Message)
	if d.Span.Source != "" || d.Span.LineStart != 0 {
		fmt.Fprintf(w, "  --> %s\n", d.Span)
	}
}
