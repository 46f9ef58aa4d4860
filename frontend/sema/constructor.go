package sema

import "github.com/flume-lang/flume/frontend/ast"

type ConstructorKind uint8

const (
	_ ConstructorKind = iota
	ConstructExtern
	ConstructContainer
)

func (k ConstructorKind) String() string {
	switch k {
	case ConstructExtern:
		return "extern"
	case ConstructContainer:
		return "container"
	default:
		panic("unreachable")
	}
}

// ResolvedConstructor disambiguates a constructor-call expression: it
// either allocates an extern object, picking one constructor overload,
// or a container (parser, control or package).
type ResolvedConstructor interface {
	ConstructorKind() ConstructorKind
	Expr() *ast.ConstructorCallExpr
	TypeArguments() []ast.Type
	ConstructorParameters() *ast.ParamList
	Args() *ParamBindings
	TypeArgs() *TypeBindings

	isResolvedConstructor()
}

type ctorBase struct {
	cce        *ast.ConstructorCallExpr
	typeArgs   []ast.Type
	ctorParams *ast.ParamList
	args       ParamBindings
	typeBind   TypeBindings
}

func (b *ctorBase) Expr() *ast.ConstructorCallExpr        { return b.cce }
func (b *ctorBase) TypeArguments() []ast.Type             { return b.typeArgs }
func (b *ctorBase) ConstructorParameters() *ast.ParamList { return b.ctorParams }
func (b *ctorBase) Args() *ParamBindings                  { return &b.args }
func (b *ctorBase) TypeArgs() *TypeBindings               { return &b.typeBind }
func (b *ctorBase) isResolvedConstructor()                {}

// bind populates both substitutions; constructor calls have no
// incomplete mode.
func (b *ctorBase) bind(typeParams *ast.TypeParams) error {
	if err := b.args.Populate(b.ctorParams, b.cce.Args); err != nil {
		return icef(ErrNoMatchingConstructor, b.cce.Span(), "cannot bind constructor arguments: %v", err)
	}
	return b.typeBind.Bind(b.cce, typeParams, b.typeArgs)
}

// ExternConstruction allocates an extern object with the selected
// constructor overload.
type ExternConstruction struct {
	ctorBase
	Type        *ast.TypeExtern
	Constructor *ast.Method
}

func (*ExternConstruction) ConstructorKind() ConstructorKind { return ConstructExtern }

// ContainerConstruction allocates a parser, control or package.
type ContainerConstruction struct {
	ctorBase
	Container ast.Container
}

func (*ContainerConstruction) ConstructorKind() ConstructorKind { return ConstructContainer }

// ResolveConstructorCall classifies a constructor-call expression by the
// resolved type of the constructed object. Overload ambiguity has been
// rejected by earlier checking; the first declared compatible
// constructor wins.
func ResolveConstructorCall(cce *ast.ConstructorCallExpr, decls DeclarationLookup, types TypeStore) (ResolvedConstructor, error) {
	t := types.TypeOf(cce)
	if !t.IsValid() {
		t = cce.Constructed
	}
	switch {
	case t.IsValid() && t.IsExtern():
		return resolveExternConstruction(cce, t.Extern())
	case t.IsValid() && t.IsContainer():
		return resolveContainerConstruction(cce, t.Container().Decl)
	default:
		return nil, icef(ErrUnresolvableCall, cce.Span(),
			"constructed type %s is neither extern nor container", t)
	}
}

func resolveExternConstruction(cce *ast.ConstructorCallExpr, ext *ast.TypeExtern) (ResolvedConstructor, error) {
	ctor := ext.Def.LookupConstructor(cce.Args)
	if ctor == nil {
		return nil, icef(ErrNoMatchingConstructor, cce.Span(),
			"no constructor of %s accepts these arguments", ext.Def.Name.Raw)
	}
	typeArgs := ext.TypeArgs
	if len(typeArgs) == 0 {
		typeArgs = cce.TypeArgs
	}
	var classBind TypeBindings
	if err := classBind.Bind(cce, ext.Def.TypeParams, typeArgs); err != nil {
		return nil, err
	}
	c := &ExternConstruction{
		ctorBase: ctorBase{
			cce:        cce,
			typeArgs:   typeArgs,
			ctorParams: SubstituteParams(ctor.Type.Params, &classBind),
		},
		Type:        SubstituteExtern(ext.Def.Type(), &classBind),
		Constructor: ctor,
	}
	if err := c.bind(ext.Def.TypeParams); err != nil {
		return nil, err
	}
	return c, nil
}

func resolveContainerConstruction(cce *ast.ConstructorCallExpr, cont ast.Container) (ResolvedConstructor, error) {
	var classBind TypeBindings
	if err := classBind.Bind(cce, cont.TypeParameters(), cce.TypeArgs); err != nil {
		return nil, err
	}
	c := &ContainerConstruction{
		ctorBase: ctorBase{
			cce:        cce,
			typeArgs:   cce.TypeArgs,
			ctorParams: SubstituteParams(cont.ConstructorParameters(), &classBind),
		},
		Container: cont,
	}
	if err := c.bind(cont.TypeParameters()); err != nil {
		return nil, err
	}
	return c, nil
}
