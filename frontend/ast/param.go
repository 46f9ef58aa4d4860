package ast

import "github.com/flume-lang/flume/common"

// Param is a formal runtime or constructor parameter.
type Param struct {
	Name    Ident
	Type    Type
	Default Expr // non-nil for optional parameters
}

func (p *Param) Span() common.Span { return p.Name.Span() }

// ParamList is an ordered formal parameter list. A nil *ParamList is an
// empty list.
type ParamList struct {
	Params []*Param
}

func NewParamList(params ...*Param) *ParamList {
	return &ParamList{Params: params}
}

func (pl *ParamList) Len() int {
	if pl == nil {
		return 0
	}
	return len(pl.Params)
}

func (pl *ParamList) Empty() bool { return pl.Len() == 0 }

func (pl *ParamList) Get(name string) *Param {
	if pl == nil {
		return nil
	}
	for _, p := range pl.Params {
		if p.Name.Raw == name {
			return p
		}
	}
	return nil
}

// MinArgs is the number of parameters without declared defaults.
func (pl *ParamList) MinArgs() int {
	if pl == nil {
		return 0
	}
	n := 0
	for _, p := range pl.Params {
		if p.Default == nil {
			n++
		}
	}
	return n
}

// MaxArgs is the total number of parameters.
func (pl *ParamList) MaxArgs() int { return pl.Len() }

// TypeParam is a declared generic type parameter.
type TypeParam struct {
	Name Ident
}

func (tp *TypeParam) Span() common.Span { return tp.Name.Span() }

// TypeParams is an ordered type-parameter list. A nil *TypeParams is an
// empty list.
type TypeParams struct {
	Params []*TypeParam
}

func NewTypeParams(params ...*TypeParam) *TypeParams {
	return &TypeParams{Params: params}
}

func (tp *TypeParams) Len() int {
	if tp == nil {
		return 0
	}
	return len(tp.Params)
}

func (tp *TypeParams) Empty() bool { return tp.Len() == 0 }

func (tp *TypeParams) Get(name string) *TypeParam {
	if tp == nil {
		return nil
	}
	for _, p := range tp.Params {
		if p.Name.Raw == name {
			return p
		}
	}
	return nil
}
