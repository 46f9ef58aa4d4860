package ast

import "github.com/flume-lang/flume/common"

// Declaration is implemented by every named IR declaration.
type Declaration interface {
	Node
	DeclName() Ident
	declNode()
}

// Apply is the capability of objects exposing the well-known zero-overload
// apply entry point: tables, parsers and controls. Apply objects are never
// generic, so the returned signature is shared between the original and
// the actual method type of a resolved apply call.
type Apply interface {
	Declaration
	ApplyMethodType() *TypeMethod
}

// Container is the capability of constructible containers: parsers,
// controls and packages. Containers have exactly one constructor
// signature, derived from their declared constructor parameter list.
type Container interface {
	Declaration
	ConstructorParameters() *ParamList
	TypeParameters() *TypeParams
}

/* Header declarations */

type StructField struct {
	Name Ident
	Type Type
}

// Header declares a header type.
type Header struct {
	Name   Ident
	Fields []*StructField
}

func (d *Header) DeclName() Ident   { return d.Name }
func (d *Header) Span() common.Span { return d.Name.Span() }
func (*Header) declNode()           {}

func (d *Header) Type() Type { return NewType(TypeHeader{Def: d}, d.Span()) }

// HeaderUnion declares a header union type.
type HeaderUnion struct {
	Name   Ident
	Fields []*StructField
}

func (d *HeaderUnion) DeclName() Ident   { return d.Name }
func (d *HeaderUnion) Span() common.Span { return d.Name.Span() }
func (*HeaderUnion) declNode()           {}

func (d *HeaderUnion) Type() Type { return NewType(TypeHeaderUnion{Def: d}, d.Span()) }

/* Annotations */

// Annotation attaches out-of-band facts to a declaration, e.g.
// @synchronous(names of peer methods).
type Annotation struct {
	Name Ident
	Refs []Ident
}

const AnnotationSynchronous = "synchronous"

/* Extern declarations */

// Method declares an extern method or a free extern function. Owner is
// nil for free extern functions. A method whose name matches its owner's
// name is a constructor.
type Method struct {
	Name        Ident
	Type        *TypeMethod
	Owner       *Extern
	Abstract    bool
	Annotations []*Annotation
}

func (d *Method) DeclName() Ident   { return d.Name }
func (d *Method) Span() common.Span { return d.Name.Span() }
func (*Method) declNode()           {}

func (d *Method) IsConstructor() bool {
	return d.Owner != nil && d.Name.Raw == d.Owner.Name.Raw
}

// Synchronous returns the peer methods named by an @synchronous
// annotation, if any.
func (d *Method) Synchronous() []Ident {
	for _, ann := range d.Annotations {
		if ann.Name.Raw == AnnotationSynchronous {
			return ann.Refs
		}
	}
	return nil
}

// Extern declares an extern object type: a signature provided by the
// target platform. Constructors are the methods named after the extern.
type Extern struct {
	Name       Ident
	TypeParams *TypeParams
	Methods    []*Method

	typ *TypeExtern
}

func NewExtern(name Ident, typeParams *TypeParams, methods []*Method) *Extern {
	e := &Extern{Name: name, TypeParams: typeParams, Methods: methods}
	for _, m := range methods {
		m.Owner = e
	}
	e.typ = &TypeExtern{Def: e}
	return e
}

func (d *Extern) DeclName() Ident   { return d.Name }
func (d *Extern) Span() common.Span { return d.Name.Span() }
func (*Extern) declNode()           {}

// Type returns the declared generic form of the extern's type. The same
// descriptor is shared by every call site that resolves against it.
func (d *Extern) Type() *TypeExtern { return d.typ }

// Method returns the first non-constructor method with the given name.
func (d *Extern) Method(name string) *Method {
	for _, m := range d.Methods {
		if m.Name.Raw == name && !m.IsConstructor() {
			return m
		}
	}
	return nil
}

func (d *Extern) Constructors() []*Method {
	var out []*Method
	for _, m := range d.Methods {
		if m.IsConstructor() {
			out = append(out, m)
		}
	}
	return out
}

// LookupConstructor selects the first declared constructor whose
// parameter list is compatible with the given arguments: the argument
// count must fall inside the constructor's arity window once defaults are
// considered, and every named argument must name a declared parameter.
// Returns nil if no constructor matches.
func (d *Extern) LookupConstructor(args []*Argument) *Method {
	for _, ctor := range d.Constructors() {
		if constructorAccepts(ctor.Type.Params, args) {
			return ctor
		}
	}
	return nil
}

func constructorAccepts(params *ParamList, args []*Argument) bool {
	if len(args) < params.MinArgs() || len(args) > params.MaxArgs() {
		return false
	}
	for _, arg := range args {
		if arg.Name != nil && params.Get(arg.Name.Raw) == nil {
			return false
		}
	}
	return true
}

/* Callables */

// Function is a user-defined function.
type Function struct {
	Name Ident
	Type *TypeMethod
	Body []Stmt
}

func (d *Function) DeclName() Ident   { return d.Name }
func (d *Function) Span() common.Span { return d.Name.Span() }
func (*Function) declNode()           {}

// Action declares an action. Actions are never generic; their method type
// is built once so the original and actual signatures of a resolved
// action call are the same object.
type Action struct {
	Name   Ident
	Params *ParamList
	Body   []Stmt

	methodType *TypeMethod
}

func NewAction(name Ident, params *ParamList, body []Stmt) *Action {
	return &Action{
		Name:       name,
		Params:     params,
		Body:       body,
		methodType: NewMethodType(nil, params, NewVoidType(name.Span())),
	}
}

func (d *Action) DeclName() Ident   { return d.Name }
func (d *Action) Span() common.Span { return d.Name.Span() }
func (*Action) declNode()           {}

func (d *Action) MethodType() *TypeMethod { return d.methodType }

/* Apply objects and containers */

// Table declares a match-action table.
type Table struct {
	Name    Ident
	Actions []*Action

	applyType *TypeMethod
}

func NewTable(name Ident, actions []*Action) *Table {
	return &Table{
		Name:      name,
		Actions:   actions,
		applyType: NewMethodType(nil, nil, NewVoidType(name.Span())),
	}
}

func (d *Table) DeclName() Ident   { return d.Name }
func (d *Table) Span() common.Span { return d.Name.Span() }
func (*Table) declNode()           {}

func (d *Table) ApplyMethodType() *TypeMethod { return d.applyType }

// State is one parser state.
type State struct {
	Name Ident
	Body []Stmt
}

// Parser declares a parser container.
type Parser struct {
	Name        Ident
	TypeParams  *TypeParams
	ApplyParams *ParamList
	CtorParams  *ParamList
	States      []*State

	applyType *TypeMethod
}

func NewParser(name Ident, typeParams *TypeParams, applyParams, ctorParams *ParamList, states []*State) *Parser {
	return &Parser{
		Name:        name,
		TypeParams:  typeParams,
		ApplyParams: applyParams,
		CtorParams:  ctorParams,
		States:      states,
		applyType:   NewMethodType(nil, applyParams, NewVoidType(name.Span())),
	}
}

func (d *Parser) DeclName() Ident   { return d.Name }
func (d *Parser) Span() common.Span { return d.Name.Span() }
func (*Parser) declNode()           {}

func (d *Parser) ApplyMethodType() *TypeMethod      { return d.applyType }
func (d *Parser) ConstructorParameters() *ParamList { return d.CtorParams }
func (d *Parser) TypeParameters() *TypeParams       { return d.TypeParams }

// Control declares a control-block container.
type Control struct {
	Name        Ident
	TypeParams  *TypeParams
	ApplyParams *ParamList
	CtorParams  *ParamList
	Locals      []Declaration
	Body        []Stmt

	applyType *TypeMethod
}

func NewControl(name Ident, typeParams *TypeParams, applyParams, ctorParams *ParamList, locals []Declaration, body []Stmt) *Control {
	return &Control{
		Name:        name,
		TypeParams:  typeParams,
		ApplyParams: applyParams,
		CtorParams:  ctorParams,
		Locals:      locals,
		Body:        body,
		applyType:   NewMethodType(nil, applyParams, NewVoidType(name.Span())),
	}
}

func (d *Control) DeclName() Ident   { return d.Name }
func (d *Control) Span() common.Span { return d.Name.Span() }
func (*Control) declNode()           {}

func (d *Control) ApplyMethodType() *TypeMethod      { return d.applyType }
func (d *Control) ConstructorParameters() *ParamList { return d.CtorParams }
func (d *Control) TypeParameters() *TypeParams       { return d.TypeParams }

// Package declares a package container.
type Package struct {
	Name       Ident
	TypeParams *TypeParams
	CtorParams *ParamList
}

func (d *Package) DeclName() Ident   { return d.Name }
func (d *Package) Span() common.Span { return d.Name.Span() }
func (*Package) declNode()           {}

func (d *Package) ConstructorParameters() *ParamList { return d.CtorParams }
func (d *Package) TypeParameters() *TypeParams       { return d.TypeParams }

/* Instances */

// Instance declares an object instantiated without call syntax. TypeRef
// references the constructed extern or container declaration; Init holds
// the concrete implementations of abstract extern methods, when any.
type Instance struct {
	Name     Ident
	TypeRef  *PathExpr
	TypeArgs []Type
	Args     []*Argument
	Init     []*Function
}

func (d *Instance) DeclName() Ident   { return d.Name }
func (d *Instance) Span() common.Span { return d.Name.Span() }
func (*Instance) declNode()           {}

/* Program */

// Program is one compilation unit's worth of top-level declarations.
type Program struct {
	Decls []Declaration
}
