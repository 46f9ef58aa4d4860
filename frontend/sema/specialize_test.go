package sema

import (
	"testing"

	"github.com/flume-lang/flume/frontend/ast"
)

func resolveAction(t *testing.T, act *ast.Action, args ...*ast.Argument) *ActionCall {
	t.Helper()
	callee := ast.NewPathExpr(act.Name)
	decls := NewRefMap()
	decls.Set(callee, act)
	rc, err := ResolveCall(ast.NewCallExpr(callee, nil, args, sp()), decls, NewTypeMap())
	if err != nil {
		t.Fatalf("ResolveCall: %v", err)
	}
	return rc.(*ActionCall)
}

func TestSpecializeAction(t *testing.T) {
	// action set_port(port) { fwd(port); meta.egress = port; }
	body := []ast.Stmt{
		ast.NewExprStmt(pathCall("fwd", nil, ast.NewArgument(ast.NewPathExpr(ident("port"))))),
		ast.NewAssignStmt(
			ast.NewMemberExpr(ast.NewPathExpr(ident("meta")), ident("egress")),
			ast.NewPathExpr(ident("port")),
		),
	}
	act := ast.NewAction(ident("set_port"), ast.NewParamList(param("port", bit(9))), body)

	ac := resolveAction(t, act, ast.NewArgument(num(7)))
	spec, err := ac.Specialize()
	if err != nil {
		t.Fatalf("Specialize: %v", err)
	}
	if !spec.Params.Empty() {
		t.Fatalf("specialized action has %d parameter(s), want 0", spec.Params.Len())
	}
	if spec.Name.Raw != act.Name.Raw {
		t.Errorf("name = %q, want %q", spec.Name.Raw, act.Name.Raw)
	}

	call := spec.Body[0].(*ast.ExprStmt).E.(*ast.CallExpr)
	if lit, ok := call.Args[0].Value.(*ast.NumberLit); !ok || lit.Value != 7 {
		t.Errorf("fwd argument = %v, want the bound literal 7", call.Args[0].Value)
	}
	assign := spec.Body[1].(*ast.AssignStmt)
	if lit, ok := assign.RHS.(*ast.NumberLit); !ok || lit.Value != 7 {
		t.Errorf("assignment RHS = %v, want the bound literal 7", assign.RHS)
	}
	// the member receiver does not mention the parameter and is shared
	if assign.LHS != body[1].(*ast.AssignStmt).LHS {
		t.Error("untouched expressions must be shared, not cloned")
	}

	// the original action is left alone
	if act.Params.Empty() {
		t.Error("specialization mutated the original parameter list")
	}
	orig := act.Body[0].(*ast.ExprStmt).E.(*ast.CallExpr)
	if _, ok := orig.Args[0].Value.(*ast.PathExpr); !ok {
		t.Error("specialization mutated the original body")
	}
}

func TestSpecializeAppliesDefaults(t *testing.T) {
	body := []ast.Stmt{
		ast.NewExprStmt(pathCall("fwd", nil, ast.NewArgument(ast.NewPathExpr(ident("port"))))),
	}
	act := ast.NewAction(ident("to_cpu"),
		ast.NewParamList(optParam("port", bit(9), num(64))), body)

	ac := resolveAction(t, act)
	spec, err := ac.Specialize()
	if err != nil {
		t.Fatalf("Specialize: %v", err)
	}
	call := spec.Body[0].(*ast.ExprStmt).E.(*ast.CallExpr)
	if lit, ok := call.Args[0].Value.(*ast.NumberLit); !ok || lit.Value != 64 {
		t.Errorf("fwd argument = %v, want the default 64", call.Args[0].Value)
	}
}
