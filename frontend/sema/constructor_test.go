package sema

import (
	"errors"
	"testing"

	"github.com/flume-lang/flume/frontend/ast"
)

func TestResolveExternConstruction(t *testing.T) {
	reg := registerExtern()
	constructed := ast.NewType(&ast.TypeExtern{Def: reg, TypeArgs: []ast.Type{bit(32)}}, sp())

	cce := ast.NewConstructorCallExpr(constructed, nil,
		[]*ast.Argument{ast.NewArgument(num(1024))}, sp())

	rc, err := ResolveConstructorCall(cce, NewRefMap(), NewTypeMap())
	if err != nil {
		t.Fatalf("ResolveConstructorCall: %v", err)
	}
	ec, ok := rc.(*ExternConstruction)
	if !ok {
		t.Fatalf("resolved to %T, want *ExternConstruction", rc)
	}
	// first declared overload with a compatible arity wins
	if ec.Constructor != reg.Constructors()[0] {
		t.Error("Constructor is not the one-parameter overload")
	}
	if got := ec.Type.String(); got != "Register<bit<32>>" {
		t.Errorf("Type = %s, want Register<bit<32>>", got)
	}
	if got := ec.Args().LookupName("size"); got == nil {
		t.Error("parameter size is unbound")
	}
	if got, ok := ec.TypeArgs().LookupName("T"); !ok || got.String() != "bit<32>" {
		t.Errorf("TypeArgs[T] = %s, %v; want bit<32>, true", got, ok)
	}
}

func TestResolveExternConstructionOverloads(t *testing.T) {
	reg := registerExtern()
	constructed := ast.NewType(&ast.TypeExtern{Def: reg, TypeArgs: []ast.Type{bit(8)}}, sp())

	// zero arguments select the second overload
	cce := ast.NewConstructorCallExpr(constructed, nil, nil, sp())
	rc, err := ResolveConstructorCall(cce, NewRefMap(), NewTypeMap())
	if err != nil {
		t.Fatalf("ResolveConstructorCall: %v", err)
	}
	if got := rc.(*ExternConstruction).Constructor; got != reg.Constructors()[1] {
		t.Error("Constructor is not the zero-parameter overload")
	}

	// no overload takes two arguments
	cce = ast.NewConstructorCallExpr(constructed, nil,
		[]*ast.Argument{ast.NewArgument(num(1)), ast.NewArgument(num(2))}, sp())
	if _, err := ResolveConstructorCall(cce, NewRefMap(), NewTypeMap()); !errors.Is(err, ErrNoMatchingConstructor) {
		t.Fatalf("err = %v, want ErrNoMatchingConstructor", err)
	}
}

func TestResolveExternConstructionRecordedType(t *testing.T) {
	// the written type carries no arguments; the canonical type recorded
	// by inference does
	reg := registerExtern()
	cce := ast.NewConstructorCallExpr(ast.NewType(reg.Type(), sp()), nil,
		[]*ast.Argument{ast.NewArgument(num(16))}, sp())

	types := NewTypeMap()
	types.Set(cce, ast.NewType(&ast.TypeExtern{Def: reg, TypeArgs: []ast.Type{bit(16)}}, sp()))

	rc, err := ResolveConstructorCall(cce, NewRefMap(), types)
	if err != nil {
		t.Fatalf("ResolveConstructorCall: %v", err)
	}
	if got := rc.(*ExternConstruction).Type.String(); got != "Register<bit<16>>" {
		t.Errorf("Type = %s, want Register<bit<16>>", got)
	}
}

func TestResolveContainerConstruction(t *testing.T) {
	pkg := &ast.Package{
		Name:       ident("pipeline"),
		CtorParams: ast.NewParamList(param("ports", bit(32))),
	}
	constructed := ast.NewType(ast.TypeContainer{Decl: pkg}, sp())
	cce := ast.NewConstructorCallExpr(constructed, nil,
		[]*ast.Argument{ast.NewArgument(num(4))}, sp())

	rc, err := ResolveConstructorCall(cce, NewRefMap(), NewTypeMap())
	if err != nil {
		t.Fatalf("ResolveConstructorCall: %v", err)
	}
	cc, ok := rc.(*ContainerConstruction)
	if !ok {
		t.Fatalf("resolved to %T, want *ContainerConstruction", rc)
	}
	if cc.Container != ast.Container(pkg) {
		t.Error("Container is not the package")
	}
	if got := cc.Args().LookupName("ports"); got == nil {
		t.Error("parameter ports is unbound")
	}
}

func TestResolveConstructorCallBadType(t *testing.T) {
	cce := ast.NewConstructorCallExpr(ast.NewBoolType(sp()), nil, nil, sp())
	if _, err := ResolveConstructorCall(cce, NewRefMap(), NewTypeMap()); !errors.Is(err, ErrUnresolvableCall) {
		t.Fatalf("err = %v, want ErrUnresolvableCall", err)
	}
}
