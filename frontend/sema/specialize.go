package sema

import "github.com/flume-lang/flume/frontend/ast"

// Specialize produces a copy of the called action in which every formal
// parameter has been replaced by its bound argument. The copy takes no
// parameters, as required for default actions and table entries, which
// need a fully applied action body.
func (c *ActionCall) Specialize() (*ast.Action, error) {
	repl := make(map[string]ast.Expr, c.args.Len())
	for _, p := range c.args.Params() {
		arg := c.args.Lookup(p)
		if arg == nil {
			return nil, icef(ErrUnresolvableCall, c.expr.Span(),
				"parameter %q of action %q is unbound", p.Name.Raw, c.Action.Name.Raw)
		}
		repl[p.Name.Raw] = arg.Value
	}
	body := make([]ast.Stmt, len(c.Action.Body))
	for i, s := range c.Action.Body {
		body[i] = substStmt(s, repl)
	}
	return ast.NewAction(c.Action.Name, ast.NewParamList(), body), nil
}

func substStmt(s ast.Stmt, repl map[string]ast.Expr) ast.Stmt {
	switch s := s.(type) {
	case *ast.ExprStmt:
		return ast.NewExprStmt(substExpr(s.E, repl))
	case *ast.AssignStmt:
		return ast.NewAssignStmt(substExpr(s.LHS, repl), substExpr(s.RHS, repl))
	default:
		return s
	}
}

func substExpr(e ast.Expr, repl map[string]ast.Expr) ast.Expr {
	switch e := e.(type) {
	case *ast.PathExpr:
		if r, ok := repl[e.Name.Raw]; ok {
			return r
		}
		return e
	case *ast.MemberExpr:
		recv := substExpr(e.Recv, repl)
		if recv == e.Recv {
			return e
		}
		return ast.NewMemberExpr(recv, e.Member)
	case *ast.CallExpr:
		callee := substExpr(e.Callee, repl)
		args := make([]*ast.Argument, len(e.Args))
		changed := callee != e.Callee
		for i, arg := range e.Args {
			v := substExpr(arg.Value, repl)
			if v != arg.Value {
				changed = true
			}
			if arg.Name != nil {
				args[i] = ast.NewNamedArgument(*arg.Name, v)
			} else {
				args[i] = ast.NewArgument(v)
			}
		}
		if !changed {
			return e
		}
		return ast.NewCallExpr(callee, e.TypeArgs, args, e.Span())
	default:
		return e
	}
}
