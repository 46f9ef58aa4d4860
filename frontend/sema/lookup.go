package sema

import "github.com/flume-lang/flume/frontend/ast"

// DeclarationLookup resolves a reference expression to its declaring
// entity. It is populated by the name-resolution stage and only read
// here, so it may be shared between concurrent resolutions.
type DeclarationLookup interface {
	Lookup(e ast.Expr) ast.Declaration
}

// RefMap is a map-backed DeclarationLookup.
type RefMap struct {
	refs map[ast.Expr]ast.Declaration
}

func NewRefMap() *RefMap {
	return &RefMap{refs: make(map[ast.Expr]ast.Declaration)}
}

func (m *RefMap) Set(e ast.Expr, d ast.Declaration) {
	m.refs[e] = d
}

func (m *RefMap) Lookup(e ast.Expr) ast.Declaration {
	return m.refs[e]
}

// TypeStore answers the resolved type of an expression. It is populated
// by the type-inference stage; types may still contain unbound type
// variables while inference is running.
type TypeStore interface {
	TypeOf(e ast.Expr) ast.Type
}

// TypeMap is a map-backed TypeStore.
type TypeMap struct {
	types map[ast.Expr]ast.Type
}

func NewTypeMap() *TypeMap {
	return &TypeMap{types: make(map[ast.Expr]ast.Type)}
}

func (m *TypeMap) Set(e ast.Expr, t ast.Type) {
	m.types[e] = t
}

func (m *TypeMap) TypeOf(e ast.Expr) ast.Type {
	return m.types[e]
}

// exprTypes reads the types already recorded on the expression nodes
// themselves, for resolving while no type store is available.
type exprTypes struct{}

func (exprTypes) TypeOf(e ast.Expr) ast.Type { return e.Type() }
