package sema

import (
	"fmt"

	"github.com/flume-lang/flume/frontend/ast"
)

// ParamBindings maps each formal parameter of the actual (substituted)
// parameter list to the argument bound to it, in parameter order.
// Defaults fill in for omitted optional parameters, so a populated
// binding always covers the parameter list one-to-one.
type ParamBindings struct {
	params []*ast.Param
	args   map[*ast.Param]*ast.Argument
}

// Populate binds arguments to parameters by position, then by name,
// applying declared defaults for omitted optional parameters.
func (b *ParamBindings) Populate(params *ast.ParamList, args []*ast.Argument) error {
	b.params = nil
	b.args = make(map[*ast.Param]*ast.Argument, params.Len())

	if len(args) > params.MaxArgs() {
		return fmt.Errorf("%d argument(s) supplied for %d parameter(s)", len(args), params.Len())
	}

	bound := make(map[*ast.Param]*ast.Argument, params.Len())
	pos := 0
	sawNamed := false
	for _, arg := range args {
		if arg.Name == nil {
			if sawNamed {
				return fmt.Errorf("positional argument after named argument")
			}
			p := params.Params[pos]
			bound[p] = arg
			pos++
			continue
		}
		sawNamed = true
		p := params.Get(arg.Name.Raw)
		if p == nil {
			return fmt.Errorf("no parameter named %q", arg.Name.Raw)
		}
		if _, ok := bound[p]; ok {
			return fmt.Errorf("parameter %q bound twice", arg.Name.Raw)
		}
		bound[p] = arg
	}

	if params.Len() > 0 {
		for _, p := range params.Params {
			arg, ok := bound[p]
			if !ok {
				if p.Default == nil {
					return fmt.Errorf("no argument for parameter %q", p.Name.Raw)
				}
				arg = ast.NewArgument(p.Default)
			}
			b.params = append(b.params, p)
			b.args[p] = arg
		}
	}
	return nil
}

func (b *ParamBindings) Len() int    { return len(b.params) }
func (b *ParamBindings) Empty() bool { return len(b.params) == 0 }

// Params returns the bound parameters in parameter-list order.
func (b *ParamBindings) Params() []*ast.Param { return b.params }

func (b *ParamBindings) Lookup(p *ast.Param) *ast.Argument {
	return b.args[p]
}

func (b *ParamBindings) LookupName(name string) *ast.Argument {
	for _, p := range b.params {
		if p.Name.Raw == name {
			return b.args[p]
		}
	}
	return nil
}

// TypeBindings maps declared type parameters to the concrete types they
// are instantiated with at one call or construction site. A populated
// TypeBindings is total over the type-parameter list it was bound
// against; partial bindings only exist as PartialTypeBindings.
type TypeBindings struct {
	order []*ast.TypeParam
	types map[*ast.TypeParam]ast.Type
}

// Bind records one concrete type per declared type parameter. The anchor
// is used to report where the binding was requested.
func (b *TypeBindings) Bind(anchor ast.Node, typeParams *ast.TypeParams, typeArgs []ast.Type) error {
	if len(typeArgs) != typeParams.Len() {
		return icef(ErrIncompleteBinding, anchor.Span(),
			"%d type argument(s) for %d type parameter(s)", len(typeArgs), typeParams.Len())
	}
	b.bind(typeParams, typeArgs)
	return nil
}

func (b *TypeBindings) bind(typeParams *ast.TypeParams, typeArgs []ast.Type) {
	b.order = nil
	b.types = make(map[*ast.TypeParam]ast.Type, typeParams.Len())
	if typeParams == nil {
		return
	}
	for i, tp := range typeParams.Params {
		if i >= len(typeArgs) {
			break
		}
		b.order = append(b.order, tp)
		b.types[tp] = typeArgs[i]
	}
}

func (b *TypeBindings) Len() int    { return len(b.order) }
func (b *TypeBindings) Empty() bool { return len(b.order) == 0 }

func (b *TypeBindings) Lookup(tp *ast.TypeParam) (ast.Type, bool) {
	t, ok := b.types[tp]
	return t, ok
}

func (b *TypeBindings) LookupName(name string) (ast.Type, bool) {
	for _, tp := range b.order {
		if tp.Name.Raw == name {
			return b.types[tp], true
		}
	}
	return ast.Type{}, false
}

// ContainsAll reports whether every type parameter in the list is bound.
func (b *TypeBindings) ContainsAll(typeParams *ast.TypeParams) bool {
	if typeParams == nil {
		return true
	}
	for _, tp := range typeParams.Params {
		if _, ok := b.types[tp]; !ok {
			return false
		}
	}
	return true
}

// PartialTypeBindings may leave declared type parameters unbound. It is
// only produced by incomplete-mode resolution, so the type system keeps
// callers from treating a partial binding as total.
type PartialTypeBindings struct {
	TypeBindings
}

// bindPrefix binds as many type parameters as there are type arguments
// and leaves the rest unbound.
func (b *PartialTypeBindings) bindPrefix(typeParams *ast.TypeParams, typeArgs []ast.Type) {
	b.bind(typeParams, typeArgs)
}
