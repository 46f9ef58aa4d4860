package ast

import "github.com/flume-lang/flume/common"

// Ident is a source identifier with its span.
type Ident struct {
	Raw  string
	span common.Span
}

func NewIdent(raw string, span common.Span) Ident {
	return Ident{Raw: raw, span: span}
}

func (i Ident) Span() common.Span { return i.span }
func (i Ident) String() string    { return i.Raw }

// Node is anything with a source position; used to anchor bindings and
// diagnostics.
type Node interface {
	Span() common.Span
}
