package common

import (
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestDiagnosticRender(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	var sb strings.Builder
	ErrorDiag("unknown method", spanCreate(3, 3, 1, 8, "main.fl")).Render(&sb)
	got := sb.String()
	if !strings.HasPrefix(got, "error: unknown method\n") {
		t.Errorf("rendered = %q", got)
	}
	if !strings.Contains(got, "main.fl") {
		t.Errorf("rendered = %q, want the source location", got)
	}

	sb.Reset()
	WarningDiag("unused action", SpanDefault()).Render(&sb)
	got = sb.String()
	if got != "warning: unused action\n" {
		t.Errorf("rendered = %q, want no location for an unknown span", got)
	}
}
