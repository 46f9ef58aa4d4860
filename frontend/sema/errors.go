package sema

import (
	"errors"
	"fmt"

	"github.com/flume-lang/flume/common"
)

// Resolution failures are compiler defects, not source diagnostics: by
// the time this stage runs, syntax and name resolution have already
// rejected ill-formed programs.
var (
	// ErrUnresolvableCall reports a call expression that matches none of
	// the recognized call kinds.
	ErrUnresolvableCall = errors.New("unresolvable call")
	// ErrNoMatchingConstructor reports that no declared constructor is
	// compatible with the supplied arguments.
	ErrNoMatchingConstructor = errors.New("no matching constructor")
	// ErrIncompleteBinding reports missing type arguments outside
	// incomplete mode.
	ErrIncompleteBinding = errors.New("incomplete type binding")
)

// ICE is an internal compiler error raised by the resolution stage.
type ICE struct {
	Kind error
	Msg  string
	Span common.Span
}

func (e *ICE) Error() string {
	return fmt.Sprintf("internal error: %s: %s", e.Kind, e.Msg)
}

func (e *ICE) Unwrap() error { return e.Kind }

func (e *ICE) Diagnostic() common.Diagnostic {
	return common.ErrorDiag(e.Error(), e.Span)
}

func icef(kind error, span common.Span, format string, args ...any) *ICE {
	return &ICE{Kind: kind, Msg: fmt.Sprintf(format, args...), Span: span}
}
