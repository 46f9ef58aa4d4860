package ast

// CallSites returns every call expression reachable from the declaration,
// in source order.
func CallSites(d Declaration) []*CallExpr {
	var acc []*CallExpr
	declCalls(d, &acc)
	return acc
}

// CallSites returns every call expression in the program, in declaration
// order.
func (p *Program) CallSites() []*CallExpr {
	var acc []*CallExpr
	for _, d := range p.Decls {
		declCalls(d, &acc)
	}
	return acc
}

func declCalls(d Declaration, acc *[]*CallExpr) {
	switch d := d.(type) {
	case *Action:
		stmtsCalls(d.Body, acc)
	case *Function:
		stmtsCalls(d.Body, acc)
	case *Control:
		for _, local := range d.Locals {
			declCalls(local, acc)
		}
		stmtsCalls(d.Body, acc)
	case *Parser:
		for _, st := range d.States {
			stmtsCalls(st.Body, acc)
		}
	case *Instance:
		for _, fn := range d.Init {
			declCalls(fn, acc)
		}
	}
}

func stmtsCalls(stmts []Stmt, acc *[]*CallExpr) {
	for _, s := range stmts {
		switch s := s.(type) {
		case *ExprStmt:
			exprCalls(s.E, acc)
		case *AssignStmt:
			exprCalls(s.LHS, acc)
			exprCalls(s.RHS, acc)
		}
	}
}

func exprCalls(e Expr, acc *[]*CallExpr) {
	switch e := e.(type) {
	case *CallExpr:
		// nested calls first, matching evaluation order
		exprCalls(e.Callee, acc)
		for _, arg := range e.Args {
			exprCalls(arg.Value, acc)
		}
		*acc = append(*acc, e)
	case *ConstructorCallExpr:
		for _, arg := range e.Args {
			exprCalls(arg.Value, acc)
		}
	case *MemberExpr:
		exprCalls(e.Recv, acc)
	}
}
