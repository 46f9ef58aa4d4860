package sema

import (
	"github.com/flume-lang/flume/common"
	"github.com/flume-lang/flume/frontend/ast"
)

// The five built-in operations synthesized by header, header-union and
// stack types. They have no declaration; their signatures derive from
// the receiver's type.
const (
	BuiltinSetValid   = "setValid"
	BuiltinSetInvalid = "setInvalid"
	BuiltinIsValid    = "isValid"
	BuiltinPushFront  = "push_front"
	BuiltinPopFront   = "pop_front"
)

// builtinMethodType synthesizes the signature of a built-in operation
// applied to a receiver of the given type, or nil if the name/receiver
// pair is not a built-in.
func builtinMethodType(name string, recv ast.Type, span common.Span) *ast.TypeMethod {
	if !recv.IsValid() {
		return nil
	}
	switch recv.Kind() {
	case ast.TypeHeaderKind:
		switch name {
		case BuiltinSetValid, BuiltinSetInvalid:
			return ast.NewMethodType(nil, nil, ast.NewVoidType(span))
		case BuiltinIsValid:
			return ast.NewMethodType(nil, nil, ast.NewBoolType(span))
		}
	case ast.TypeHeaderUnionKind:
		if name == BuiltinIsValid {
			return ast.NewMethodType(nil, nil, ast.NewBoolType(span))
		}
	case ast.TypeStackKind:
		switch name {
		case BuiltinPushFront, BuiltinPopFront:
			count := &ast.Param{
				Name: ast.NewIdent("count", span),
				Type: ast.NewBitsType(32, true, span),
			}
			return ast.NewMethodType(nil, ast.NewParamList(count), ast.NewVoidType(span))
		}
	}
	return nil
}
