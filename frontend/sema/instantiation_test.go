package sema

import (
	"errors"
	"testing"

	"github.com/flume-lang/flume/frontend/ast"
)

func instanceOf(decls *RefMap, target ast.Declaration, typeArgs []ast.Type, args ...*ast.Argument) *ast.Instance {
	typeRef := ast.NewPathExpr(target.DeclName())
	decls.Set(typeRef, target)
	return &ast.Instance{
		Name:     ident("inst"),
		TypeRef:  typeRef,
		TypeArgs: typeArgs,
		Args:     args,
	}
}

func TestResolveExternInstantiation(t *testing.T) {
	reg := registerExtern()
	decls := NewRefMap()
	inst := instanceOf(decls, reg, []ast.Type{bit(32)}, ast.NewArgument(num(128)))

	ri, err := ResolveInstantiation(inst, decls, NewTypeMap())
	if err != nil {
		t.Fatalf("ResolveInstantiation: %v", err)
	}
	ei, ok := ri.(*ExternInstantiation)
	if !ok {
		t.Fatalf("resolved to %T, want *ExternInstantiation", ri)
	}
	if ei.Constructor != reg.Constructors()[0] {
		t.Error("Constructor is not the one-parameter overload")
	}
	if got := ei.Type.String(); got != "Register<bit<32>>" {
		t.Errorf("Type = %s, want Register<bit<32>>", got)
	}
	if got := ei.Args().LookupName("size"); got == nil {
		t.Error("parameter size is unbound")
	}
	if got, ok := ei.TypeArgs().LookupName("T"); !ok || got.String() != "bit<32>" {
		t.Errorf("TypeArgs[T] = %s, %v; want bit<32>, true", got, ok)
	}
}

func TestResolveExternInstantiationNoConstructor(t *testing.T) {
	reg := registerExtern()
	decls := NewRefMap()
	inst := instanceOf(decls, reg, []ast.Type{bit(32)},
		ast.NewArgument(num(1)), ast.NewArgument(num(2)), ast.NewArgument(num(3)))

	_, err := ResolveInstantiation(inst, decls, NewTypeMap())
	if !errors.Is(err, ErrNoMatchingConstructor) {
		t.Fatalf("err = %v, want ErrNoMatchingConstructor", err)
	}
}

func TestResolvePackageInstantiation(t *testing.T) {
	pkg := &ast.Package{
		Name:       ident("pipeline"),
		CtorParams: ast.NewParamList(param("ports", bit(32))),
	}
	decls := NewRefMap()
	inst := instanceOf(decls, pkg, nil, ast.NewNamedArgument(ident("ports"), num(4)))

	ri, err := ResolveInstantiation(inst, decls, NewTypeMap())
	if err != nil {
		t.Fatalf("ResolveInstantiation: %v", err)
	}
	pi, ok := ri.(*PackageInstantiation)
	if !ok {
		t.Fatalf("resolved to %T, want *PackageInstantiation", ri)
	}
	if pi.Package != pkg {
		t.Error("Package is not the declaration")
	}
	if got := pi.Args().LookupName("ports"); got == nil {
		t.Error("parameter ports is unbound")
	}
}

func TestResolveParserAndControlInstantiation(t *testing.T) {
	prs := ast.NewParser(ident("eth_parser"), nil, nil,
		ast.NewParamList(optParam("depth", bit(8), num(1))), nil)
	ctl := ast.NewControl(ident("ingress"), nil, nil,
		ast.NewParamList(), nil, nil)

	decls := NewRefMap()
	pInst := instanceOf(decls, prs, nil)
	cInst := instanceOf(decls, ctl, nil)

	ri, err := ResolveInstantiation(pInst, decls, NewTypeMap())
	if err != nil {
		t.Fatalf("ResolveInstantiation(parser): %v", err)
	}
	if ri.InstantiationKind() != InstantiateParser {
		t.Errorf("kind = %v, want parser", ri.InstantiationKind())
	}
	if got := ri.Args().LookupName("depth"); got == nil {
		t.Error("optional parameter depth is unbound")
	}

	ri, err = ResolveInstantiation(cInst, decls, NewTypeMap())
	if err != nil {
		t.Fatalf("ResolveInstantiation(control): %v", err)
	}
	if ri.InstantiationKind() != InstantiateControl {
		t.Errorf("kind = %v, want control", ri.InstantiationKind())
	}
}

func TestResolveInstantiationBadTarget(t *testing.T) {
	hdr := &ast.Header{Name: ident("ethernet")}
	decls := NewRefMap()
	inst := instanceOf(decls, hdr, nil)

	if _, err := ResolveInstantiation(inst, decls, NewTypeMap()); !errors.Is(err, ErrUnresolvableCall) {
		t.Fatalf("err = %v, want ErrUnresolvableCall", err)
	}

	orphan := &ast.Instance{Name: ident("lost"), TypeRef: ast.NewPathExpr(ident("nowhere"))}
	if _, err := ResolveInstantiation(orphan, NewRefMap(), NewTypeMap()); !errors.Is(err, ErrUnresolvableCall) {
		t.Fatalf("err = %v, want ErrUnresolvableCall", err)
	}
}
