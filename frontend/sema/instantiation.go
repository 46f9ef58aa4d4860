package sema

import "github.com/flume-lang/flume/frontend/ast"

type InstantiationKind uint8

const (
	_ InstantiationKind = iota
	InstantiateExtern
	InstantiatePackage
	InstantiateParser
	InstantiateControl
)

func (k InstantiationKind) String() string {
	switch k {
	case InstantiateExtern:
		return "extern"
	case InstantiatePackage:
		return "package"
	case InstantiateParser:
		return "parser"
	case InstantiateControl:
		return "control"
	default:
		panic("unreachable")
	}
}

// ResolvedInstantiation describes an object declaration instantiated
// without call syntax. Instantiations are always fully bound: there is
// no incomplete mode at this layer.
type ResolvedInstantiation interface {
	InstantiationKind() InstantiationKind
	Instance() *ast.Instance
	TypeArguments() []ast.Type
	ConstructorArguments() []*ast.Argument
	ConstructorParameters() *ast.ParamList
	TypeParameters() *ast.TypeParams
	Args() *ParamBindings
	TypeArgs() *TypeBindings

	isResolvedInstantiation()
}

type instBase struct {
	instance   *ast.Instance
	ctorParams *ast.ParamList
	typeParams *ast.TypeParams
	args       ParamBindings
	typeBind   TypeBindings
}

func (b *instBase) Instance() *ast.Instance               { return b.instance }
func (b *instBase) TypeArguments() []ast.Type             { return b.instance.TypeArgs }
func (b *instBase) ConstructorArguments() []*ast.Argument { return b.instance.Args }
func (b *instBase) ConstructorParameters() *ast.ParamList { return b.ctorParams }
func (b *instBase) TypeParameters() *ast.TypeParams       { return b.typeParams }
func (b *instBase) Args() *ParamBindings                  { return &b.args }
func (b *instBase) TypeArgs() *TypeBindings               { return &b.typeBind }
func (b *instBase) isResolvedInstantiation()              {}

func (b *instBase) substitute() error {
	if err := b.args.Populate(b.ctorParams, b.instance.Args); err != nil {
		return icef(ErrNoMatchingConstructor, b.instance.Span(),
			"cannot bind constructor arguments of %q: %v", b.instance.Name.Raw, err)
	}
	return b.typeBind.Bind(b.instance, b.typeParams, b.instance.TypeArgs)
}

type ExternInstantiation struct {
	instBase
	Type        *ast.TypeExtern
	Constructor *ast.Method
}

func (*ExternInstantiation) InstantiationKind() InstantiationKind { return InstantiateExtern }

type PackageInstantiation struct {
	instBase
	Package *ast.Package
}

func (*PackageInstantiation) InstantiationKind() InstantiationKind { return InstantiatePackage }

type ParserInstantiation struct {
	instBase
	Parser *ast.Parser
}

func (*ParserInstantiation) InstantiationKind() InstantiationKind { return InstantiateParser }

type ControlInstantiation struct {
	instBase
	Control *ast.Control
}

func (*ControlInstantiation) InstantiationKind() InstantiationKind { return InstantiateControl }

// ResolveInstantiation classifies an object declaration and binds its
// constructor arguments and type arguments.
func ResolveInstantiation(inst *ast.Instance, decls DeclarationLookup, types TypeStore) (ResolvedInstantiation, error) {
	target := decls.Lookup(inst.TypeRef)
	if target == nil {
		return nil, icef(ErrUnresolvableCall, inst.Span(),
			"instance %q has no target declaration", inst.Name.Raw)
	}
	switch d := target.(type) {
	case *ast.Extern:
		return resolveExternInstantiation(inst, d)
	case *ast.Package:
		ri := &PackageInstantiation{
			instBase: instBase{
				instance:   inst,
				ctorParams: d.CtorParams,
				typeParams: d.TypeParams,
			},
			Package: d,
		}
		return finishInstantiation(ri, &ri.instBase)
	case *ast.Parser:
		ri := &ParserInstantiation{
			instBase: instBase{
				instance:   inst,
				ctorParams: d.CtorParams,
				typeParams: d.TypeParams,
			},
			Parser: d,
		}
		return finishInstantiation(ri, &ri.instBase)
	case *ast.Control:
		ri := &ControlInstantiation{
			instBase: instBase{
				instance:   inst,
				ctorParams: d.CtorParams,
				typeParams: d.TypeParams,
			},
			Control: d,
		}
		return finishInstantiation(ri, &ri.instBase)
	default:
		return nil, icef(ErrUnresolvableCall, inst.Span(),
			"instance %q constructs %q, which is neither extern nor container",
			inst.Name.Raw, target.DeclName().Raw)
	}
}

func resolveExternInstantiation(inst *ast.Instance, ext *ast.Extern) (ResolvedInstantiation, error) {
	ctor := ext.LookupConstructor(inst.Args)
	if ctor == nil {
		return nil, icef(ErrNoMatchingConstructor, inst.Span(),
			"no constructor of %s accepts the arguments of %q", ext.Name.Raw, inst.Name.Raw)
	}
	var classBind TypeBindings
	if err := classBind.Bind(inst, ext.TypeParams, inst.TypeArgs); err != nil {
		return nil, err
	}
	ri := &ExternInstantiation{
		instBase: instBase{
			instance:   inst,
			ctorParams: SubstituteParams(ctor.Type.Params, &classBind),
			typeParams: ext.TypeParams,
		},
		Type:        SubstituteExtern(ext.Type(), &classBind),
		Constructor: ctor,
	}
	if err := ri.substitute(); err != nil {
		return nil, err
	}
	return ri, nil
}

func finishInstantiation(ri ResolvedInstantiation, base *instBase) (ResolvedInstantiation, error) {
	if err := base.substitute(); err != nil {
		return nil, err
	}
	return ri, nil
}
