package sema

import (
	"testing"

	"github.com/flume-lang/flume/frontend/ast"
)

func TestMayCallAbstractMethod(t *testing.T) {
	digest := ast.NewExtern(ident("Digest"), nil, []*ast.Method{
		{Name: ident("Digest"), Type: ast.NewMethodType(nil, ast.NewParamList(), ast.NewVoidType(sp()))},
		{
			Name:     ident("pack"),
			Type:     ast.NewMethodType(nil, ast.NewParamList(), ast.NewVoidType(sp())),
			Abstract: true,
		},
	})
	impl := &ast.Function{
		Name: ident("pack"),
		Type: ast.NewMethodType(nil, ast.NewParamList(), ast.NewVoidType(sp())),
	}
	decls := NewRefMap()
	inst := instanceOf(decls, digest, nil)
	inst.Init = []*ast.Function{impl}

	recv := ast.NewPathExpr(ident("inst"))
	decls.Set(recv, inst)
	types := NewTypeMap()
	types.Set(recv, ast.NewType(digest.Type(), sp()))

	rc, err := ResolveCall(methodCall(recv, "pack", nil), decls, types)
	if err != nil {
		t.Fatalf("ResolveCall: %v", err)
	}
	targets := rc.(*ExternMethodCall).MayCall()
	if len(targets) != 1 || targets[0] != ast.Declaration(impl) {
		t.Fatalf("MayCall() = %v, want the instance's pack implementation", targets)
	}
}

func TestMayCallAbstractWithoutInstance(t *testing.T) {
	digest := ast.NewExtern(ident("Digest"), nil, []*ast.Method{
		{
			Name:     ident("pack"),
			Type:     ast.NewMethodType(nil, ast.NewParamList(), ast.NewVoidType(sp())),
			Abstract: true,
		},
	})
	recv := ast.NewPathExpr(ident("d"))
	types := NewTypeMap()
	types.Set(recv, ast.NewType(digest.Type(), sp()))

	rc, err := ResolveCall(methodCall(recv, "pack", nil), NewRefMap(), types)
	if err != nil {
		t.Fatalf("ResolveCall: %v", err)
	}
	if targets := rc.(*ExternMethodCall).MayCall(); targets != nil {
		t.Fatalf("MayCall() = %v, want nil without a receiver instance", targets)
	}
}

func TestMayCallSynchronousPeers(t *testing.T) {
	void := func() *ast.TypeMethod {
		return ast.NewMethodType(nil, ast.NewParamList(), ast.NewVoidType(sp()))
	}
	ext := ast.NewExtern(ident("Lock"), nil, []*ast.Method{
		{
			Name: ident("acquire"),
			Type: void(),
			Annotations: []*ast.Annotation{{
				Name: ident(ast.AnnotationSynchronous),
				Refs: []ast.Ident{ident("release"), ident("missing")},
			}},
		},
		{Name: ident("release"), Type: void()},
	})

	recv := ast.NewPathExpr(ident("l"))
	types := NewTypeMap()
	types.Set(recv, ast.NewType(ext.Type(), sp()))

	rc, err := ResolveCall(methodCall(recv, "acquire", nil), NewRefMap(), types)
	if err != nil {
		t.Fatalf("ResolveCall: %v", err)
	}
	targets := rc.(*ExternMethodCall).MayCall()
	if len(targets) != 1 {
		t.Fatalf("MayCall() returned %d targets, want 1", len(targets))
	}
	if targets[0] != ast.Declaration(ext.Method("release")) {
		t.Error("MayCall() target is not Lock.release")
	}
}
