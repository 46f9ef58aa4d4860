package sema

import "github.com/flume-lang/flume/frontend/ast"

// SubstituteType rewrites every bound type variable in t. Unbound
// variables are left in place.
func SubstituteType(t ast.Type, b *TypeBindings) ast.Type {
	if !t.IsValid() || b.Empty() {
		return t
	}
	switch t.Kind() {
	case ast.TypeVarKind:
		if concrete, ok := b.Lookup(t.Var().Def); ok {
			return concrete
		}
		return t
	case ast.TypeStackKind:
		stack := t.Stack()
		elem := SubstituteType(stack.Elem, b)
		if elem == stack.Elem {
			return t
		}
		return ast.NewType(ast.TypeStack{Elem: elem, Size: stack.Size}, t.Span())
	case ast.TypeExternKind:
		return ast.NewType(SubstituteExtern(t.Extern(), b), t.Span())
	case ast.TypeMethodKind:
		return ast.NewType(SubstituteMethodType(t.Method(), b), t.Span())
	default:
		return t
	}
}

// SubstituteMethodType builds the actual form of a signature under the
// given bindings. The signature's own type-parameter list is carried
// over unchanged; binding it is the caller's concern. Returns the same
// object when the bindings are empty.
func SubstituteMethodType(mt *ast.TypeMethod, b *TypeBindings) *ast.TypeMethod {
	if b.Empty() {
		return mt
	}
	return ast.NewMethodType(
		mt.TypeParams,
		SubstituteParams(mt.Params, b),
		SubstituteType(mt.Return, b),
	)
}

// SubstituteParams rewrites parameter types under the given bindings,
// keeping names and defaults.
func SubstituteParams(params *ast.ParamList, b *TypeBindings) *ast.ParamList {
	if params.Len() == 0 || b.Empty() {
		return params
	}
	out := make([]*ast.Param, params.Len())
	for i, p := range params.Params {
		out[i] = &ast.Param{
			Name:    p.Name,
			Type:    SubstituteType(p.Type, b),
			Default: p.Default,
		}
	}
	return ast.NewParamList(out...)
}

// SubstituteExtern builds the specialized form of an extern type: one
// concrete type argument per declared type parameter, taken from the
// bindings. Parameters the bindings do not cover stay as type variables.
func SubstituteExtern(ext *ast.TypeExtern, b *TypeBindings) *ast.TypeExtern {
	if ext.Def.TypeParams.Len() == 0 {
		return ext
	}
	args := make([]ast.Type, ext.Def.TypeParams.Len())
	for i, tp := range ext.Def.TypeParams.Params {
		if len(ext.TypeArgs) > i {
			args[i] = SubstituteType(ext.TypeArgs[i], b)
			continue
		}
		if concrete, ok := b.Lookup(tp); ok {
			args[i] = concrete
		} else {
			args[i] = ast.NewVarType(tp)
		}
	}
	return &ast.TypeExtern{Def: ext.Def, TypeArgs: args}
}
